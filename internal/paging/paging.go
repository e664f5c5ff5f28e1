// Package paging converts page/size request parameters into store-level
// limit/offset pairs and assembles paginated result envelopes.
package paging

import "github.com/f-r00t/hugin-api/internal/models"

// DefaultSize is the page size applied when the request omits size or sends
// something unusable.
const DefaultSize = 10

// GetPagination derives limit/offset from page/size. Negative or absent pages
// collapse to 0, non-positive sizes to DefaultSize; the result is always a
// valid non-negative pair. No upper bound on size is enforced here.
func GetPagination(page, size int) (limit, offset int) {
	if size <= 0 {
		size = DefaultSize
	}
	if page < 0 {
		page = 0
	}
	return size, page * size
}

// TotalPages computes the page count for totalItems at the given limit.
func TotalPages(totalItems int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((totalItems + int64(limit) - 1) / int64(limit))
}

// NewPage assembles a generic page envelope.
func NewPage[T any](items []T, totalItems int64, page, limit int) models.Page[T] {
	if items == nil {
		items = []T{}
	}
	if page < 0 {
		page = 0
	}
	return models.Page[T]{
		TotalItems:  totalItems,
		TotalPages:  TotalPages(totalItems, limit),
		CurrentPage: page,
		Items:       items,
	}
}
