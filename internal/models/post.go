// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a photo/video post in the Lumagram application.
// Image and video are URLs into external media storage; either or both
// may be set. The hashtag reference is mandatory.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	ImageURL    string    `json:"image_url"`
	VideoURL    string    `json:"video_url"`
	Description string    `gorm:"type:text" json:"description"`
	HashtagID   uint      `gorm:"not null;index" json:"hashtag_id"`
	Hashtag     Hashtag   `gorm:"foreignKey:HashtagID;constraint:OnDelete:CASCADE" json:"hashtag,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Comments  []Comment  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Likes     []PostLike `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
	SaveItems []SaveItem `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// PostSummary is the minimal list projection: id plus media URLs.
type PostSummary struct {
	ID       uint   `json:"id"`
	ImageURL string `json:"image_url"`
	VideoURL string `json:"video_url"`
}

// Summary returns the minimal projection of the post.
func (p *Post) Summary() PostSummary {
	return PostSummary{
		ID:       p.ID,
		ImageURL: p.ImageURL,
		VideoURL: p.VideoURL,
	}
}

// PostLike is a single mutable like/dislike record per (user, post) pair.
// Re-liking overwrites the boolean rather than appending a new row; the
// unique index makes concurrent duplicate creates fail with a conflict.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_like_user_post" json:"post_id"`
	Like      bool      `gorm:"not null" json:"like"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
}
