package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hredostate/upss-webly/internal/middleware"
	"github.com/hredostate/upss-webly/internal/models"
	"github.com/hredostate/upss-webly/internal/services"
	"github.com/hredostate/upss-webly/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.ListPublic)
		jobs.GET("/:jobId", h.GetByID)
	}

	admin := r.Group("/admin/jobs")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.PUT("/:jobId", h.Update)
		admin.DELETE("/:jobId", h.Delete)
	}
}

func (h *JobHandler) ListPublic(c *gin.Context) {
	jobs, err := h.jobService.ListPublic(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobService.GetByID(c.Request.Context(), c.Param("jobId"), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.jobService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobService.Delete(c.Request.Context(), c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job listing deleted successfully"})
}
