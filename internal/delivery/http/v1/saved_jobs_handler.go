package v1

import (
	"net/http"

	"hirelens-backend/internal/delivery/http/response"
	"hirelens-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	savedJobUC domain.SavedJobUsecase
}

func NewSavedJobHandler(r *gin.RouterGroup, savedJobUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedJobUC: savedJobUC}

	saved := r.Group("/saved-jobs")
	{
		saved.GET("", handler.List)
		saved.POST("/:jobId", handler.Save)
		saved.DELETE("/:jobId", handler.Remove)
	}
}

// List godoc
// @Summary      List saved jobs
// @Description  List the authenticated candidate's bookmarked jobs
// @Tags         saved-jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /saved-jobs [get]
// @Security     BearerAuth
func (h *SavedJobHandler) List(c *gin.Context) {
	saved, err := h.savedJobUC.ListSavedJobs(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Saved jobs", saved)
}

// Save godoc
// @Summary      Save a job
// @Description  Bookmark an active job (candidate only)
// @Tags         saved-jobs
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      201  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /saved-jobs/{jobId} [post]
// @Security     BearerAuth
func (h *SavedJobHandler) Save(c *gin.Context) {
	saved, err := h.savedJobUC.SaveJob(c, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job saved", saved)
}

// Remove godoc
// @Summary      Remove a saved job
// @Description  Remove a bookmark; removing a job that was never saved still succeeds
// @Tags         saved-jobs
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /saved-jobs/{jobId} [delete]
// @Security     BearerAuth
func (h *SavedJobHandler) Remove(c *gin.Context) {
	saved, err := h.savedJobUC.RemoveJob(c, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job removed from saved list", saved)
}
