package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hredostate/upss-webly/internal/middleware"
	"github.com/hredostate/upss-webly/internal/models"
	"github.com/hredostate/upss-webly/internal/services"
	"github.com/hredostate/upss-webly/internal/services/dto"
)

type PageHandler struct {
	*BaseHandler
	pageService *services.PageService
}

func NewPageHandler(base *BaseHandler, pageService *services.PageService) *PageHandler {
	return &PageHandler{
		BaseHandler: base,
		pageService: pageService,
	}
}

func (h *PageHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Публичный сайт
	pages := r.Group("/pages")
	{
		pages.GET("", h.ListPublished)
		pages.GET("/:slug", h.GetBySlug)
	}

	// Админка
	admin := r.Group("/admin/pages")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.PUT("/:pageId", h.Update)
		admin.DELETE("/:pageId", h.Delete)

		admin.POST("/:pageId/sections", h.AddSection)
		admin.PUT("/sections/:sectionId", h.UpdateSection)
		admin.DELETE("/sections/:sectionId", h.DeleteSection)
	}
}

// --- Public handlers ---

func (h *PageHandler) ListPublished(c *gin.Context) {
	pages, err := h.pageService.List(c.Request.Context(), true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pages": pages,
		"total": len(pages),
	})
}

func (h *PageHandler) GetBySlug(c *gin.Context) {
	page, err := h.pageService.GetBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// --- Admin handlers ---

func (h *PageHandler) ListAll(c *gin.Context) {
	pages, err := h.pageService.List(c.Request.Context(), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pages": pages,
		"total": len(pages),
	})
}

func (h *PageHandler) Create(c *gin.Context) {
	var req dto.CreatePageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	page, err := h.pageService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, page)
}

func (h *PageHandler) Update(c *gin.Context) {
	var req dto.UpdatePageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	page, err := h.pageService.Update(c.Request.Context(), c.Param("pageId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *PageHandler) Delete(c *gin.Context) {
	if err := h.pageService.Delete(c.Request.Context(), c.Param("pageId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Page deleted successfully"})
}

func (h *PageHandler) AddSection(c *gin.Context) {
	var req dto.CreateSectionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	section, err := h.pageService.AddSection(c.Request.Context(), c.Param("pageId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, section)
}

func (h *PageHandler) UpdateSection(c *gin.Context) {
	var req dto.UpdateSectionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	section, err := h.pageService.UpdateSection(c.Request.Context(), c.Param("sectionId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

func (h *PageHandler) DeleteSection(c *gin.Context) {
	if err := h.pageService.DeleteSection(c.Request.Context(), c.Param("sectionId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Section deleted successfully"})
}
