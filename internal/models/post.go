package models

import (
	"time"
)

type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	Author     User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	CategoryID *uint     `gorm:"index" json:"category_id"` // Nulled out when the category is deleted
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`
	LocationID *uint     `gorm:"index" json:"location_id"`
	Location   *Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"location"`
	Title      string    `gorm:"size:256;not null" json:"title"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	PubDate    time.Time `gorm:"not null;index" json:"pub_date"` // May be in the future (deferred publication)
	Published  bool      `gorm:"index" json:"published"`
	Image      string    `json:"image"` // Opaque reference, storage lives elsewhere
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Filled by queries, not a column
	CommentCount int `gorm:"-" json:"comment_count"`
}
