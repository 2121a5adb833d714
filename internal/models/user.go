// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a user profile in the Lumagram application.
// Age is optional; when set it must be within [16, 60], enforced in the
// validation layer on every write.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Nickname  string    `gorm:"size:32" json:"nickname"`
	Bio       string    `gorm:"type:text" json:"bio"`
	ImageURL  string    `json:"image_url"`
	Website   string    `json:"website"`
	Age       *int      `json:"age,omitempty"`
	Phone     string    `gorm:"size:32" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships. Deleting a user cascades through every one of them,
	// plus follow edges in both directions (constraint on Follow).
	Posts   []Post  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
	Stories []Story `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"stories,omitempty"`
}

// UserSummary is the minimal projection embedded in list responses.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	ImageURL string `json:"image_url"`
}

// Summary returns the minimal projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Nickname: u.Nickname,
		ImageURL: u.ImageURL,
	}
}
