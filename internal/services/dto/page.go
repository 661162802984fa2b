package dto

import "encoding/json"

// --- Page Requests ---

type CreatePageRequest struct {
	Slug        string `json:"slug" validate:"required,slug,max=120"`
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Published   bool   `json:"published"`
}

type UpdatePageRequest struct {
	Slug        *string `json:"slug,omitempty" validate:"omitempty,slug,max=120"`
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Published   *bool   `json:"published,omitempty"`
}

// --- Section Requests ---

// CreateSectionRequest - содержимое секции приходит как непрозрачный JSON:
// его структуру определяет редактор, сервер только хранит.
type CreateSectionRequest struct {
	Kind     string          `json:"kind" validate:"required,min=1,max=50"`
	Position int             `json:"position" validate:"min=0"`
	Content  json.RawMessage `json:"content" validate:"required"`
}

type UpdateSectionRequest struct {
	Kind     *string         `json:"kind,omitempty" validate:"omitempty,min=1,max=50"`
	Position *int            `json:"position,omitempty" validate:"omitempty,min=0"`
	Content  json.RawMessage `json:"content,omitempty"`
}
