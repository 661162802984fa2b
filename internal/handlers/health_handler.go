package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hredostate/upss-webly/pkg/contextkeys"
)

// HealthHandler отвечает на проверки живости.
// Пул соединений берется из контекста, куда его кладет DBMiddleware.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Check)
}

func (h *HealthHandler) Check(c *gin.Context) {
	dbVal, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "not configured"})
		return
	}

	db, ok := dbVal.(*gorm.DB)
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "not configured"})
		return
	}

	sqlDB, err := db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
