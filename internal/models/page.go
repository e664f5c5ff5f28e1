package models

// Page is a generic paginated result set.
type Page[T any] struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Items       []T   `json:"items"`
}

// PostPage is the listing payload; the items key is "posts" for compatibility
// with existing Hugin clients.
type PostPage struct {
	TotalItems  int64          `json:"totalItems"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Posts       []EnrichedPost `json:"posts"`
}

// EncryptedGroupPage is the listing payload for encrypted group posts.
type EncryptedGroupPage struct {
	TotalItems  int64                        `json:"totalItems"`
	TotalPages  int                          `json:"totalPages"`
	CurrentPage int                          `json:"currentPage"`
	Posts       []EnrichedPostEncryptedGroup `json:"posts"`
}

// PopularityEntry is one (subject, count) ranking row. Subject is a post hash
// for reply rankings and a board name for board rankings.
type PopularityEntry struct {
	Subject string `json:"subject"`
	Count   int64  `json:"count"`
}
