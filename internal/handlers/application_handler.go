package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hredostate/upss-webly/internal/middleware"
	"github.com/hredostate/upss-webly/internal/models"
	"github.com/hredostate/upss-webly/internal/services"
	"github.com/hredostate/upss-webly/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Кандидат
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("/:jobId/applications", middleware.RoleMiddleware(models.UserRoleApplicant), h.Submit)
	}

	apps := r.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.GET("/my", middleware.RoleMiddleware(models.UserRoleApplicant), h.ListMine)
		apps.GET("/:applicationId", h.GetByID)
		apps.GET("/:applicationId/history", h.GetHistory)
		apps.POST("/:applicationId/withdraw", middleware.RoleMiddleware(models.UserRoleApplicant), h.Withdraw)
	}

	// Админка
	admin := r.Group("/admin/applications")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.GET("/:applicationId", h.GetByID)
		admin.PATCH("/:applicationId/status", h.ChangeStatus)
		admin.PUT("/:applicationId", h.Update)
		admin.DELETE("/:applicationId", h.Delete)
	}
}

// --- Applicant handlers ---

func (h *ApplicationHandler) Submit(c *gin.Context) {
	applicantID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.applicationService.Submit(c.Request.Context(), applicantID, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	applicantID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	views, err := h.applicationService.ListMine(c.Request.Context(), applicantID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": views,
		"total":        len(views),
	})
}

func (h *ApplicationHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	view, err := h.applicationService.GetByID(c.Request.Context(), c.Param("applicationId"), userID, h.IsAdmin(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *ApplicationHandler) GetHistory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	entries, err := h.applicationService.GetHistory(c.Request.Context(), c.Param("applicationId"), userID, h.IsAdmin(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": entries,
		"total":   len(entries),
	})
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	applicantID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	view, err := h.applicationService.Withdraw(c.Request.Context(), c.Param("applicationId"), applicantID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// --- Admin handlers ---

func (h *ApplicationHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	jobID := c.Query("job_id")
	status := models.ApplicationStatus(c.Query("status"))

	views, total, err := h.applicationService.List(c.Request.Context(), jobID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": views,
		"total":        total,
		"page":         page,
		"page_size":    pageSize,
	})
}

func (h *ApplicationHandler) ChangeStatus(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.applicationService.ChangeStatus(c.Request.Context(), c.Param("applicationId"), &req, actorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	var req dto.UpdateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.applicationService.Update(c.Request.Context(), c.Param("applicationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.applicationService.Delete(c.Request.Context(), c.Param("applicationId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}
