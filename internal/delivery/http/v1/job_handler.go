package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hirelens-backend/internal/delivery/http/response"
	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/apperror"
	"hirelens-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - browsing the catalog needs no account.
	// These only ever expose active jobs (server-side enforced).
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:slug", handler.GetBySlug)
	}

	protected.POST("/jobs", handler.Create)

	// Management routes address jobs by id and live under /recruiters so
	// the public catalog keeps the slug as its only path parameter
	recruiterJobs := protected.Group("/recruiters/jobs")
	{
		recruiterJobs.GET("", handler.ListMine)
		recruiterJobs.PATCH("/:id", handler.Update)
		recruiterJobs.POST("/:id/activate", handler.Activate)
		recruiterJobs.POST("/:id/deactivate", handler.Deactivate)
	}

	admin := protected.Group("/admin/jobs")
	{
		admin.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	Title            string   `json:"title" binding:"required"`
	CompanyName      string   `json:"company_name" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Location         string   `json:"location"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	JobType          string   `json:"job_type"`
	SalaryMin        *float64 `json:"salary_min"`
	SalaryMax        *float64 `json:"salary_max"`
}

// Create godoc
// @Summary      Create a new job
// @Description  Create a new job posting (recruiter only). The slug is derived once at creation and never changes.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	job := &domain.Job{
		Title:            req.Title,
		CompanyName:      req.CompanyName,
		Description:      req.Description,
		Location:         req.Location,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		JobType:          req.JobType,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
	}

	created, path, err := h.jobUC.CreateJob(c, job)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Location", path)
	response.Success(c, http.StatusCreated, "Job created", gin.H{
		"job":  created,
		"path": path,
	})
}

// List godoc
// @Summary      List active jobs
// @Description  Browse active job postings with optional filters and pagination
// @Tags         jobs
// @Produce      json
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size (max 50)"
// @Param        title     query     string  false  "Title substring filter"
// @Param        location  query     string  false  "Location substring filter"
// @Param        job_type  query     string  false  "Exact job type filter"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	filter := domain.JobFilter{
		Title:    c.Query("title"),
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
	}

	result, err := h.jobUC.ListJobs(c, filter, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", result)
}

// GetBySlug godoc
// @Summary      Get job by slug
// @Description  Get an active job posting by its URL slug
// @Tags         jobs
// @Produce      json
// @Param        slug  path      string  true  "Job slug"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{slug} [get]
func (h *JobHandler) GetBySlug(c *gin.Context) {
	job, err := h.jobUC.GetJobBySlug(c, c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// ListMine godoc
// @Summary      List own jobs
// @Description  List the authenticated recruiter's jobs, including inactive ones
// @Tags         recruiters
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size (max 50)"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /recruiters/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	result, err := h.jobUC.ListMyJobs(c, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My job list", result)
}

// Update godoc
// @Summary      Update a job
// @Description  Partially update an owned job posting. Unknown fields are rejected; company_name and slug are immutable.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string           true  "Job ID"
// @Param        job  body      domain.JobPatch  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruiters/jobs/{id} [patch]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	// DisallowUnknownFields turns an attempt to patch an immutable field
	// (slug, company_name, created_by) into a 400 instead of a silent no-op
	var patch domain.JobPatch
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	job, err := h.jobUC.UpdateJob(c, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Activate godoc
// @Summary      Activate a job
// @Description  Make an owned job visible in the public catalog (idempotent)
// @Tags         jobs
// @Produce      json
// @Param        id  path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruiters/jobs/{id}/activate [post]
// @Security     BearerAuth
func (h *JobHandler) Activate(c *gin.Context) {
	job, err := h.jobUC.SetActive(c, c.Param("id"), true)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job activated", job)
}

// Deactivate godoc
// @Summary      Deactivate a job
// @Description  Hide an owned job from the public catalog (idempotent)
// @Tags         jobs
// @Produce      json
// @Param        id  path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruiters/jobs/{id}/deactivate [post]
// @Security     BearerAuth
func (h *JobHandler) Deactivate(c *gin.Context) {
	job, err := h.jobUC.SetActive(c, c.Param("id"), false)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deactivated", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Permanently delete a job posting (admin only). Existing applications keep their records with a null job snapshot.
// @Tags         jobs
// @Produce      json
// @Param        id  path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
