package v1

import (
	"net/http"
	"strconv"

	"hirelens-backend/internal/delivery/http/response"
	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/apperror"
	"hirelens-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := r.Group("/applications")
	{
		applications.POST("", handler.Apply)
		applications.GET("/me", handler.ListMine)
		applications.PATCH("/:id/status", handler.UpdateStatus)
		applications.POST("/:id/withdraw", handler.Withdraw)
	}

	r.GET("/recruiters/jobs/:id/applications", handler.ListForJob)
}

type ApplyRequest struct {
	JobID string `json:"job_id" binding:"required"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application to an active job. One application per candidate per job; a resume must be on the profile.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      ApplyRequest  true  "Job to apply to"
// @Success      201  {object}  response.Response{data=domain.Application}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	app, err := h.applicationUC.Apply(c, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMine godoc
// @Summary      List own applications
// @Description  List the authenticated candidate's applications with a snapshot of each job. The job is null when the posting was deleted.
// @Tags         applications
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size (max 20)"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /applications/me [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	result, err := h.applicationUC.ListMyApplications(c, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My applications", result)
}

// ListForJob godoc
// @Summary      List applications for a job
// @Description  List applications submitted to an owned job (recruiter only)
// @Tags         applications
// @Produce      json
// @Param        id     path      string  true   "Job ID"
// @Param        page   query     int     false  "Page number"
// @Param        limit  query     int     false  "Page size (max 20)"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruiters/jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	result, err := h.applicationUC.ListApplicationsForJob(c, c.Param("id"), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications for job", result)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Move an application through the pipeline (recruiter owning the job only). Withdrawn applications cannot be edited.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      string                          true  "Application ID"
// @Param        status  body      UpdateApplicationStatusRequest  true  "New status"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	app, err := h.applicationUC.UpdateStatus(c, c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Description  Withdraw an own application. Terminal: recruiters can no longer change its status.
// @Tags         applications
// @Produce      json
// @Param        id  path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/withdraw [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	app, err := h.applicationUC.Withdraw(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application withdrawn", app)
}
