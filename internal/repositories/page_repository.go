package repositories

import (
	"context"

	"github.com/hredostate/upss-webly/internal/models"
	"gorm.io/gorm"
)

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) Create(ctx context.Context, page *models.Page) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *PageRepository) FindByID(ctx context.Context, id string) (*models.Page, error) {
	var page models.Page
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&page, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PageRepository) FindBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&page, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PageRepository) List(ctx context.Context, publishedOnly bool) ([]models.Page, error) {
	var pages []models.Page
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	if err := q.Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *PageRepository) Update(ctx context.Context, page *models.Page) error {
	return r.db.WithContext(ctx).Omit("Sections").Save(page).Error
}

func (r *PageRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Page{}, "id = ?", id).Error
}
