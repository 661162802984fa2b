package services

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hredostate/upss-webly/internal/models"
	"github.com/hredostate/upss-webly/internal/repositories"
	"github.com/hredostate/upss-webly/internal/services/dto"
	"github.com/hredostate/upss-webly/pkg/apperrors"
)

type PageService struct {
	pages    *repositories.PageRepository
	sections *repositories.SectionRepository
}

func NewPageService(pages *repositories.PageRepository, sections *repositories.SectionRepository) *PageService {
	return &PageService{pages: pages, sections: sections}
}

// GetBySlug возвращает страницу для публичного сайта.
// Неопубликованная страница для посетителя не существует.
func (s *PageService) GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*models.Page, error) {
	page, err := s.pages.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPageNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if !page.Published && !includeUnpublished {
		return nil, apperrors.ErrPageNotFound
	}
	return page, nil
}

func (s *PageService) GetByID(ctx context.Context, id string) (*models.Page, error) {
	page, err := s.pages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPageNotFound
		}
		return nil, apperrors.StorageError(err)
	}
	return page, nil
}

func (s *PageService) List(ctx context.Context, publishedOnly bool) ([]models.Page, error) {
	pages, err := s.pages.List(ctx, publishedOnly)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return pages, nil
}

func (s *PageService) Create(ctx context.Context, req *dto.CreatePageRequest) (*models.Page, error) {
	if _, err := s.pages.FindBySlug(ctx, req.Slug); err == nil {
		return nil, apperrors.ErrSlugAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.StorageError(err)
	}

	page := &models.Page{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Published:   req.Published,
	}
	if err := s.pages.Create(ctx, page); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return page, nil
}

func (s *PageService) Update(ctx context.Context, id string, req *dto.UpdatePageRequest) (*models.Page, error) {
	page, err := s.pages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPageNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if req.Slug != nil && *req.Slug != page.Slug {
		if _, err := s.pages.FindBySlug(ctx, *req.Slug); err == nil {
			return nil, apperrors.ErrSlugAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.StorageError(err)
		}
		page.Slug = *req.Slug
	}
	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Description != nil {
		page.Description = *req.Description
	}
	if req.Published != nil {
		page.Published = *req.Published
	}

	if err := s.pages.Update(ctx, page); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return page, nil
}

func (s *PageService) Delete(ctx context.Context, id string) error {
	if _, err := s.pages.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPageNotFound
		}
		return apperrors.StorageError(err)
	}
	if err := s.pages.Delete(ctx, id); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

// --- Sections ---

func (s *PageService) AddSection(ctx context.Context, pageID string, req *dto.CreateSectionRequest) (*models.Section, error) {
	if _, err := s.pages.FindByID(ctx, pageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPageNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	section := &models.Section{
		PageID:   pageID,
		Kind:     req.Kind,
		Position: req.Position,
		Content:  datatypes.JSON(req.Content),
	}
	if err := s.sections.Create(ctx, section); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return section, nil
}

func (s *PageService) UpdateSection(ctx context.Context, sectionID string, req *dto.UpdateSectionRequest) (*models.Section, error) {
	section, err := s.sections.FindByID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if req.Kind != nil {
		section.Kind = *req.Kind
	}
	if req.Position != nil {
		section.Position = *req.Position
	}
	if len(req.Content) > 0 {
		section.Content = datatypes.JSON(req.Content)
	}

	if err := s.sections.Update(ctx, section); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return section, nil
}

func (s *PageService) DeleteSection(ctx context.Context, sectionID string) error {
	if _, err := s.sections.FindByID(ctx, sectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSectionNotFound
		}
		return apperrors.StorageError(err)
	}
	if err := s.sections.Delete(ctx, sectionID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}
