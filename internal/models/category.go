package models

// Category groups posts. Deleting a category nulls the reference on posts
// instead of deleting them.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	// PostsCount is not persisted; computed at query time
	PostsCount int `gorm:"->" json:"posts_count"`
}
