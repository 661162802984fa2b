package repositories

import (
	"context"

	"github.com/hredostate/upss-webly/internal/models"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *models.JobListing) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*models.JobListing, error) {
	var job models.JobListing
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// ListPublic возвращает вакансии, видимые на сайте (open и closed, но не draft)
func (r *JobRepository) ListPublic(ctx context.Context) ([]models.JobListing, error) {
	var jobs []models.JobListing
	err := r.db.WithContext(ctx).
		Where("status <> ?", models.JobStatusDraft).
		Order("posted_at DESC NULLS LAST").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) ListAll(ctx context.Context) ([]models.JobListing, error) {
	var jobs []models.JobListing
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) Update(ctx context.Context, job *models.JobListing) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.JobListing{}, "id = ?", id).Error
}
