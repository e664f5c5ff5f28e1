package models

import "time"

// Hashtag is a tag extracted from post messages by the syncer.
type Hashtag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName overrides GORM's pluralized default.
func (Hashtag) TableName() string {
	return "hashtag"
}
