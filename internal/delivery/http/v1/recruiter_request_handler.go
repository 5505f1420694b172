package v1

import (
	"net/http"

	"hirelens-backend/internal/delivery/http/response"
	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/apperror"
	"hirelens-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type RecruiterRequestHandler struct {
	requestUC domain.RecruiterRequestUsecase
}

func NewRecruiterRequestHandler(r *gin.RouterGroup, requestUC domain.RecruiterRequestUsecase) {
	handler := &RecruiterRequestHandler{requestUC: requestUC}

	requests := r.Group("/recruiter-requests")
	{
		requests.POST("", handler.Submit)
		requests.GET("/me", handler.GetMine)
	}

	admin := r.Group("/admin/recruiter-requests")
	{
		admin.GET("", handler.ListPending)
		admin.POST("/:id/approve", handler.Approve)
		admin.POST("/:id/reject", handler.Reject)
	}
}

type SubmitRecruiterRequest struct {
	CompanyName   string `json:"company_name" binding:"required,no_emoji"`
	OfficialEmail string `json:"official_email" binding:"required,email"`
	Website       string `json:"website" binding:"omitempty,url"`
	LinkedIn      string `json:"linkedin" binding:"omitempty,url"`
	Designation   string `json:"designation" binding:"required"`
}

// Submit godoc
// @Summary      Submit recruiter request
// @Description  Ask to be promoted to recruiter. At most one pending request per user.
// @Tags         recruiter-requests
// @Accept       json
// @Produce      json
// @Param        request  body      SubmitRecruiterRequest  true  "Company details"
// @Success      201  {object}  response.Response{data=domain.RecruiterRequest}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /recruiter-requests [post]
// @Security     BearerAuth
func (h *RecruiterRequestHandler) Submit(c *gin.Context) {
	var req SubmitRecruiterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	request := &domain.RecruiterRequest{
		CompanyName:   req.CompanyName,
		OfficialEmail: req.OfficialEmail,
		Website:       req.Website,
		LinkedIn:      req.LinkedIn,
		Designation:   req.Designation,
	}

	created, err := h.requestUC.Submit(c, request)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Recruiter request submitted", created)
}

// GetMine godoc
// @Summary      Get own recruiter request
// @Description  Get the authenticated user's latest recruiter request and its status
// @Tags         recruiter-requests
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.RecruiterRequest}
// @Failure      404  {object}  response.Response
// @Router       /recruiter-requests/me [get]
// @Security     BearerAuth
func (h *RecruiterRequestHandler) GetMine(c *gin.Context) {
	request, err := h.requestUC.GetMyRequest(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruiter request", request)
}

// ListPending godoc
// @Summary      List pending recruiter requests
// @Description  Admin moderation queue, newest first
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/recruiter-requests [get]
// @Security     BearerAuth
func (h *RecruiterRequestHandler) ListPending(c *gin.Context) {
	requests, err := h.requestUC.ListPending(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Pending recruiter requests", requests)
}

// Approve godoc
// @Summary      Approve recruiter request
// @Description  Approve a pending request and promote the user to recruiter (admin only)
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Request ID"
// @Success      200  {object}  response.Response{data=domain.RecruiterRequest}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /admin/recruiter-requests/{id}/approve [post]
// @Security     BearerAuth
func (h *RecruiterRequestHandler) Approve(c *gin.Context) {
	request, err := h.requestUC.Approve(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruiter request approved", request)
}

// Reject godoc
// @Summary      Reject recruiter request
// @Description  Reject a pending request (admin only). The user may submit again.
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Request ID"
// @Success      200  {object}  response.Response{data=domain.RecruiterRequest}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /admin/recruiter-requests/{id}/reject [post]
// @Security     BearerAuth
func (h *RecruiterRequestHandler) Reject(c *gin.Context) {
	request, err := h.requestUC.Reject(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruiter request rejected", request)
}
