package models

import (
	"time"
)

// Saved is a per-user bookmark collection, a first-class entity that
// SaveItem rows reference. Nothing in the exposed operations
// differentiates collections yet, so each user effectively has one
// implicit collection, auto-created on first save.
type Saved struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User  User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Items []SaveItem `gorm:"foreignKey:SavedID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// TableName specifies the table name for GORM
func (Saved) TableName() string {
	return "saved_collections"
}

// SaveItem links a post into a saved collection.
type SaveItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	SavedID   uint      `gorm:"not null;index" json:"saved_id"`
	CreatedAt time.Time `json:"created_at"`

	Post  Post  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	Saved Saved `gorm:"foreignKey:SavedID;constraint:OnDelete:CASCADE" json:"-"`
}
