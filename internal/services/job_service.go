package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hredostate/upss-webly/internal/models"
	"github.com/hredostate/upss-webly/internal/repositories"
	"github.com/hredostate/upss-webly/internal/services/dto"
	"github.com/hredostate/upss-webly/pkg/apperrors"
)

type JobService struct {
	jobs *repositories.JobRepository
}

func NewJobService(jobs *repositories.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

// ListPublic возвращает вакансии для сайта (черновики скрыты)
func (s *JobService) ListPublic(ctx context.Context) ([]models.JobListing, error) {
	jobs, err := s.jobs.ListPublic(ctx)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return jobs, nil
}

func (s *JobService) ListAll(ctx context.Context) ([]models.JobListing, error) {
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return jobs, nil
}

// GetByID возвращает вакансию. Черновик виден только в админке.
func (s *JobService) GetByID(ctx context.Context, id string, includeDrafts bool) (*models.JobListing, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if job.Status == models.JobStatusDraft && !includeDrafts {
		return nil, apperrors.ErrJobNotFound
	}
	return job, nil
}

func (s *JobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.JobListing, error) {
	job := &models.JobListing{
		Title:          req.Title,
		Department:     req.Department,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Description:    req.Description,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Status:         models.JobStatusDraft,
		ClosesAt:       req.ClosesAt,
	}

	if req.Status != "" {
		job.Status = models.JobStatus(req.Status)
	}
	if job.Status == models.JobStatusOpen {
		now := time.Now()
		job.PostedAt = &now
	}

	if len(req.Requirements) > 0 {
		raw, err := json.Marshal(req.Requirements)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.Requirements = datatypes.JSON(raw)
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return job, nil
}

func (s *JobService) Update(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.JobListing, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Department != nil {
		job.Department = *req.Department
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.ClosesAt != nil {
		job.ClosesAt = req.ClosesAt
	}
	if req.Requirements != nil {
		raw, err := json.Marshal(req.Requirements)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.Requirements = datatypes.JSON(raw)
	}
	if req.Status != nil {
		next := models.JobStatus(*req.Status)
		// Первая публикация фиксирует posted_at
		if next == models.JobStatusOpen && job.PostedAt == nil {
			now := time.Now()
			job.PostedAt = &now
		}
		job.Status = next
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	if _, err := s.jobs.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.StorageError(err)
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}
