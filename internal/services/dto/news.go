package dto

import "time"

type CreateNewsRequest struct {
	Slug        string     `json:"slug" validate:"required,slug,max=120"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Excerpt     string     `json:"excerpt" validate:"omitempty,max=500"`
	Body        string     `json:"body" validate:"required"`
	CoverImage  string     `json:"cover_image" validate:"omitempty,max=500"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type UpdateNewsRequest struct {
	Slug        *string    `json:"slug,omitempty" validate:"omitempty,slug,max=120"`
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Excerpt     *string    `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Body        *string    `json:"body,omitempty"`
	CoverImage  *string    `json:"cover_image,omitempty" validate:"omitempty,max=500"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
