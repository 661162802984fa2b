package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hredostate/upss-webly/internal/middleware"
	"github.com/hredostate/upss-webly/internal/models"
	"github.com/hredostate/upss-webly/internal/services"
	"github.com/hredostate/upss-webly/internal/services/dto"
)

type NewsHandler struct {
	*BaseHandler
	newsService *services.NewsService
}

func NewNewsHandler(base *BaseHandler, newsService *services.NewsService) *NewsHandler {
	return &NewsHandler{
		BaseHandler: base,
		newsService: newsService,
	}
}

func (h *NewsHandler) RegisterRoutes(r *gin.RouterGroup) {
	news := r.Group("/news")
	{
		news.GET("", h.ListPublished)
		news.GET("/:slug", h.GetBySlug)
	}

	admin := r.Group("/admin/news")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.PUT("/:newsId", h.Update)
		admin.DELETE("/:newsId", h.Delete)
	}
}

func (h *NewsHandler) ListPublished(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	articles, total, err := h.newsService.ListPublished(c.Request.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"news":      articles,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *NewsHandler) GetBySlug(c *gin.Context) {
	article, err := h.newsService.GetBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *NewsHandler) ListAll(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	articles, total, err := h.newsService.ListAll(c.Request.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"news":      articles,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *NewsHandler) Create(c *gin.Context) {
	authorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateNewsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	article, err := h.newsService.Create(c.Request.Context(), authorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

func (h *NewsHandler) Update(c *gin.Context) {
	var req dto.UpdateNewsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	article, err := h.newsService.Update(c.Request.Context(), c.Param("newsId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	if err := h.newsService.Delete(c.Request.Context(), c.Param("newsId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "News article deleted successfully"})
}
