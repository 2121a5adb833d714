package models

import (
	"time"
)

// Chat is an unordered set of participants. Membership carries no
// uniqueness guard: two chats may share an identical participant set.
type Chat struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Participants []User    `gorm:"many2many:chat_participants;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	Messages     []Message `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

// ChatParticipant is the join table backing the many2many membership.
type ChatParticipant struct {
	ChatID   uint      `gorm:"primaryKey" json:"chat_id"`
	UserID   uint      `gorm:"primaryKey" json:"user_id"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// Message is an append log scoped to a chat, ordered by creation time.
// Text and media are both optional but at least one must be present,
// enforced in the service layer.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChatID    uint      `gorm:"not null;index" json:"chat_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Text      string    `gorm:"type:text" json:"text"`
	ImageURL  string    `json:"image_url"`
	VideoURL  string    `json:"video_url"`
	CreatedAt time.Time `json:"created_at"`

	Chat   *Chat `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"chat,omitempty"`
	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}
