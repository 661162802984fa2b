package models

import "gorm.io/datatypes"

type Page struct {
	BaseModelWithDeleted
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Published   bool   `gorm:"default:false" json:"published"`

	// Relations
	Sections []Section `gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE" json:"sections,omitempty"`
}

// Section - блок контента страницы. Содержимое хранится как непрозрачный
// JSON-документ, его структуру определяет редактор на фронтенде.
type Section struct {
	BaseModel
	PageID   string         `gorm:"not null;index" json:"page_id"`
	Kind     string         `gorm:"type:varchar(50);not null" json:"kind"`
	Position int            `gorm:"not null;default:0" json:"position"`
	Content  datatypes.JSON `gorm:"type:jsonb" json:"content"`
}
