package models

import "time"

type News struct {
	BaseModelWithDeleted
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string     `gorm:"not null" json:"title"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `gorm:"type:text" json:"body"`
	CoverImage  string     `json:"cover_image"`
	AuthorID    string     `gorm:"index" json:"author_id"`
	PublishedAt *time.Time `json:"published_at"`
}
