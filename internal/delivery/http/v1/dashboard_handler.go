package v1

import (
	"net/http"

	"hirelens-backend/internal/delivery/http/response"
	"hirelens-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(r *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	recruiters := r.Group("/recruiters")
	{
		recruiters.GET("/dashboard", handler.Stats)
	}
}

// Stats godoc
// @Summary      Recruiter dashboard
// @Description  Aggregate stats over the recruiter's jobs and received applications
// @Tags         recruiters
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.RecruiterStats}
// @Failure      403  {object}  response.Response
// @Router       /recruiters/dashboard [get]
// @Security     BearerAuth
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUC.RecruiterStats(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruiter dashboard", stats)
}
