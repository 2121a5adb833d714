package models

import (
	"time"
)

// Story is a media-only post. Stories are ephemeral by convention only;
// no expiry is enforced at the model level.
type Story struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ImageURL  string    `json:"image_url"`
	VideoURL  string    `json:"video_url"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for GORM
func (Story) TableName() string {
	return "stories"
}
