package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hredostate/upss-webly/internal/models"
	"github.com/hredostate/upss-webly/internal/repositories"
	"github.com/hredostate/upss-webly/internal/services/dto"
	"github.com/hredostate/upss-webly/pkg/apperrors"
)

type NewsService struct {
	news *repositories.NewsRepository
}

func NewNewsService(news *repositories.NewsRepository) *NewsService {
	return &NewsService{news: news}
}

// ListPublished возвращает опубликованные новости для сайта
func (s *NewsService) ListPublished(ctx context.Context, limit, offset int) ([]models.News, int64, error) {
	articles, total, err := s.news.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperrors.StorageError(err)
	}
	return articles, total, nil
}

// ListAll возвращает все новости для админки, включая черновики
func (s *NewsService) ListAll(ctx context.Context, limit, offset int) ([]models.News, int64, error) {
	articles, total, err := s.news.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperrors.StorageError(err)
	}
	return articles, total, nil
}

// GetBySlug возвращает новость. Черновик (published_at == null) виден
// только в админке.
func (s *NewsService) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*models.News, error) {
	article, err := s.news.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if article.PublishedAt == nil && !includeDrafts {
		return nil, apperrors.ErrNewsNotFound
	}
	return article, nil
}

func (s *NewsService) Create(ctx context.Context, authorID string, req *dto.CreateNewsRequest) (*models.News, error) {
	if _, err := s.news.FindBySlug(ctx, req.Slug); err == nil {
		return nil, apperrors.ErrSlugAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.StorageError(err)
	}

	article := &models.News{
		Slug:        req.Slug,
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Body:        req.Body,
		CoverImage:  req.CoverImage,
		AuthorID:    authorID,
		PublishedAt: req.PublishedAt,
	}
	if err := s.news.Create(ctx, article); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return article, nil
}

func (s *NewsService) Update(ctx context.Context, id string, req *dto.UpdateNewsRequest) (*models.News, error) {
	article, err := s.news.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if req.Slug != nil && *req.Slug != article.Slug {
		if _, err := s.news.FindBySlug(ctx, *req.Slug); err == nil {
			return nil, apperrors.ErrSlugAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.StorageError(err)
		}
		article.Slug = *req.Slug
	}
	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Excerpt != nil {
		article.Excerpt = *req.Excerpt
	}
	if req.Body != nil {
		article.Body = *req.Body
	}
	if req.CoverImage != nil {
		article.CoverImage = *req.CoverImage
	}
	if req.PublishedAt != nil {
		article.PublishedAt = req.PublishedAt
	}

	if err := s.news.Update(ctx, article); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return article, nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	if _, err := s.news.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNewsNotFound
		}
		return apperrors.StorageError(err)
	}
	if err := s.news.Delete(ctx, id); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}
