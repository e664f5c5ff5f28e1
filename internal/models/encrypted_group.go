package models

import "time"

// PostEncryptedGroup is an encrypted group message. The payload is an opaque
// sealed box; nothing inside it is readable by the API.
type PostEncryptedGroup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TxBox     string    `gorm:"column:tx_box" json:"tx_box"`
	TxHash    string    `gorm:"column:tx_hash" json:"tx_hash"`
	Time      int64     `json:"time"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName overrides GORM's pluralized default.
func (PostEncryptedGroup) TableName() string {
	return "post_encrypted_group"
}

// EnrichedPostEncryptedGroup is the served shape with timestamps recast as
// unix epoch seconds.
type EnrichedPostEncryptedGroup struct {
	ID        uint   `json:"id"`
	TxBox     string `json:"tx_box"`
	TxHash    string `json:"tx_hash"`
	Time      int64  `json:"time"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}
