package models

import (
	"time"
)

// Post is one message indexed from the Hugin network. Rows are written by the
// syncer process; this API only reads them.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Message   string    `json:"message"`
	Key       string    `json:"key"`
	Signature string    `json:"signature"`
	Board     string    `json:"board"`
	Time      int64     `json:"time"`
	Nickname  string    `json:"nickname"`
	TxHash    string    `gorm:"column:tx_hash" json:"tx_hash"`
	// Reply holds the tx_hash of the parent post, or "" for a top-level post.
	Reply  string  `json:"reply"`
	Avatar *string `json:"avatar,omitempty"`
	// Network-asserted Time above is distinct from these ingestion timestamps.
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName overrides GORM's pluralized default; the syncer writes to "post".
func (Post) TableName() string {
	return "post"
}

// EnrichedPost is the externally served shape of a Post: ingestion timestamps
// recast as unix epoch seconds and the one-hop reply list attached.
type EnrichedPost struct {
	ID        uint     `json:"id"`
	Message   string   `json:"message"`
	Key       string   `json:"key"`
	Signature string   `json:"signature"`
	Board     string   `json:"board"`
	Time      int64    `json:"time"`
	Nickname  string   `json:"nickname"`
	TxHash    string   `json:"tx_hash"`
	Reply     string   `json:"reply"`
	Avatar    *string  `json:"avatar,omitempty"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
	Replies   []string `json:"replies"`
}
