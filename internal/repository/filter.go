package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// postFilter builds the listing predicate. The date-range clause is applied
// only when both bounds are present; a lone bound means no date filter. The
// keyword clause matches a case-insensitive substring of message or board.
// Active clauses are OR-combined: a post matches if it falls inside the date
// window or matches the keyword. With no active clause no WHERE is emitted.
func postFilter(keyword string, startDate, endDate *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		hasRange := startDate != nil && endDate != nil
		hasKeyword := keyword != ""
		pattern := "%" + keyword + "%"

		switch {
		case hasRange && hasKeyword:
			return db.Where("created_at BETWEEN ? AND ? OR message ILIKE ? OR board ILIKE ?",
				*startDate, *endDate, pattern, pattern)
		case hasRange:
			return db.Where("created_at BETWEEN ? AND ?", *startDate, *endDate)
		case hasKeyword:
			return db.Where("message ILIKE ? OR board ILIKE ?", pattern, pattern)
		default:
			return db
		}
	}
}

// dateRangeFilter is the encrypted-group variant: the payload is opaque
// ciphertext, so only the date window applies.
func dateRangeFilter(startDate, endDate *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if startDate == nil || endDate == nil {
			return db
		}
		return db.Where("created_at BETWEEN ? AND ?", *startDate, *endDate)
	}
}

// idOrder normalizes a user-supplied order token into an ORDER BY id clause.
// Anything other than case-insensitive "asc" sorts descending.
func idOrder(order string) string {
	if strings.EqualFold(order, "asc") {
		return "id asc"
	}
	return "id desc"
}

// countOrder is idOrder's counterpart for aggregated rankings.
func countOrder(order string) string {
	if strings.EqualFold(order, "asc") {
		return "count asc"
	}
	return "count desc"
}
