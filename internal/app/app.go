package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hredostate/upss-webly/database"
	"github.com/hredostate/upss-webly/internal/auth"
	"github.com/hredostate/upss-webly/internal/config"
	"github.com/hredostate/upss-webly/internal/handlers"
	"github.com/hredostate/upss-webly/internal/logger"
	"github.com/hredostate/upss-webly/internal/middleware"
	"github.com/hredostate/upss-webly/internal/models"
	"github.com/hredostate/upss-webly/internal/repositories"
	"github.com/hredostate/upss-webly/internal/routes"
	"github.com/hredostate/upss-webly/internal/services"
	"github.com/hredostate/upss-webly/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Init(cfg.JWT.Secret, cfg.JWT.TTL)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	// Просроченные refresh-токены чистятся при старте
	if err := repositories.NewRefreshTokenRepository(gormDB).DeleteExpired(context.Background()); err != nil {
		logger.Warn("Failed to purge expired refresh tokens", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := services.NewServiceContainer(gormDB, cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, sc.AuthService),
		PageHandler:        handlers.NewPageHandler(baseHandler, sc.PageService),
		NewsHandler:        handlers.NewNewsHandler(baseHandler, sc.NewsService),
		JobHandler:         handlers.NewJobHandler(baseHandler, sc.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, sc.ApplicationService),
		HealthHandler:      handlers.NewHealthHandler(),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin создает первого админа из переменных окружения.
// Публичной регистрации с ролью admin нет, это единственный путь.
func seedFirstAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("FIRST_ADMIN_EMAIL")
	adminPassword := os.Getenv("FIRST_ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		FullName:     "Site Administrator",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
