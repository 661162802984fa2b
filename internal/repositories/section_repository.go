package repositories

import (
	"context"

	"github.com/hredostate/upss-webly/internal/models"
	"gorm.io/gorm"
)

type SectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	return r.db.WithContext(ctx).Create(section).Error
}

func (r *SectionRepository) FindByID(ctx context.Context, id string) (*models.Section, error) {
	var section models.Section
	if err := r.db.WithContext(ctx).First(&section, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *SectionRepository) Update(ctx context.Context, section *models.Section) error {
	return r.db.WithContext(ctx).Save(section).Error
}

func (r *SectionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Section{}, "id = ?", id).Error
}
