package models

import "time"

// Post represents a blog post.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	Slug       string    `gorm:"size:220;not null;uniqueIndex" json:"slug"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	ImagePath  string    `gorm:"size:255" json:"image_path,omitempty"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// ReactionsCount is not persisted; computed at query time
	ReactionsCount int `gorm:"->" json:"reactions_count"`
	// MyReaction holds the requesting user's reaction kind, if any (computed)
	MyReaction string    `gorm:"->" json:"my_reaction,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
