package repositories

import (
	"context"
	"time"

	"github.com/hredostate/upss-webly/internal/models"
	"gorm.io/gorm"
)

type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(ctx context.Context, article *models.News) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *NewsRepository) FindByID(ctx context.Context, id string) (*models.News, error) {
	var article models.News
	if err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *NewsRepository) FindBySlug(ctx context.Context, slug string) (*models.News, error) {
	var article models.News
	if err := r.db.WithContext(ctx).First(&article, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// ListPublished возвращает опубликованные новости, свежие первыми
func (r *NewsRepository) ListPublished(ctx context.Context, limit, offset int) ([]models.News, int64, error) {
	var (
		articles []models.News
		total    int64
	)
	base := r.db.WithContext(ctx).Model(&models.News{}).
		Where("published_at IS NOT NULL AND published_at <= ?", time.Now())

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("published_at DESC").Limit(limit).Offset(offset).Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *NewsRepository) ListAll(ctx context.Context, limit, offset int) ([]models.News, int64, error) {
	var (
		articles []models.News
		total    int64
	)
	base := r.db.WithContext(ctx).Model(&models.News{})
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("created_at DESC").Limit(limit).Offset(offset).Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *NewsRepository) Update(ctx context.Context, article *models.News) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.News{}, "id = ?", id).Error
}
