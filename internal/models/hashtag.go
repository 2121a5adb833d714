package models

// Hashtag is a single tag attached to posts. Despite the plural
// connotation of the name, a post references exactly one hashtag.
type Hashtag struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Tag string `gorm:"size:100;uniqueIndex;not null" json:"tag"`
}
