package services

import (
	"gorm.io/gorm"

	"github.com/hredostate/upss-webly/internal/config"
	"github.com/hredostate/upss-webly/internal/email"
	"github.com/hredostate/upss-webly/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        *AuthService
	PageService        *PageService
	NewsService        *NewsService
	JobService         *JobService
	ApplicationService *ApplicationService
}

// NewServiceContainer собирает репозитории и сервисы поверх одного
// подключения к базе.
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewRefreshTokenRepository(db)
	pageRepo := repositories.NewPageRepository(db)
	sectionRepo := repositories.NewSectionRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	historyRepo := repositories.NewHistoryRepository(db)

	sender := email.NewSender(cfg)

	return &ServiceContainer{
		AuthService:        NewAuthService(userRepo, tokenRepo),
		PageService:        NewPageService(pageRepo, sectionRepo),
		NewsService:        NewNewsService(newsRepo),
		JobService:         NewJobService(jobRepo),
		ApplicationService: NewApplicationService(appRepo, jobRepo, historyRepo, userRepo, sender),
	}
}
