package v1

import (
	"net/http"

	"hirelens-backend/internal/delivery/http/response"
	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/apperror"
	"hirelens-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// 5 MB resume cap
const maxResumeSize = 5 << 20

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, uploadLimiter gin.HandlerFunc) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	profile := r.Group("/candidates/profile")
	{
		profile.GET("", handler.GetProfile)
		profile.PUT("", handler.UpsertProfile)

		profile.POST("/experience", handler.AddExperience)
		profile.PATCH("/experience/:id", handler.UpdateExperience)
		profile.DELETE("/experience/:id", handler.DeleteExperience)

		profile.POST("/education", handler.AddEducation)
		profile.PATCH("/education/:id", handler.UpdateEducation)
		profile.DELETE("/education/:id", handler.DeleteEducation)

		profile.POST("/skills", handler.AddSkills)
		profile.DELETE("/skills/:skill", handler.RemoveSkill)

		profile.POST("/resume", uploadLimiter, handler.UploadResume)
		profile.DELETE("/resume", handler.DeleteResume)
	}
}

type AddSkillsRequest struct {
	Skills []string `json:"skills" binding:"required"`
}

// GetProfile godoc
// @Summary      Get candidate profile
// @Description  Get the profile of the currently logged-in candidate
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/profile [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.candidateUC.GetProfile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// UpsertProfile godoc
// @Summary      Create or update profile
// @Description  Create the candidate profile on first call, merge scalar fields afterwards
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileFields  true  "Profile fields"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Success      201  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400  {object}  response.Response
// @Router       /candidates/profile [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpsertProfile(c *gin.Context) {
	var fields domain.ProfileFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile, created, err := h.candidateUC.CreateOrUpdateProfile(c, userID, fields)
	if err != nil {
		c.Error(err)
		return
	}

	if created {
		response.Success(c, http.StatusCreated, "Profile created", profile)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// AddExperience godoc
// @Summary      Add experience entry
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        experience  body      domain.Experience  true  "Experience entry"
// @Success      201  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/profile/experience [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddExperience(c *gin.Context) {
	var exp domain.Experience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.candidateUC.AddExperience(c, userID, exp)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience added", profile)
}

// UpdateExperience godoc
// @Summary      Update experience entry
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id          path      string                  true  "Experience ID"
// @Param        experience  body      domain.ExperiencePatch  true  "Fields to update"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/profile/experience/{id} [patch]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateExperience(c *gin.Context) {
	var patch domain.ExperiencePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.candidateUC.UpdateExperience(c, userID, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", profile)
}

// DeleteExperience godoc
// @Summary      Delete experience entry
// @Tags         candidates
// @Produce      json
// @Param        id  path      string  true  "Experience ID"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      404  {object}  response.Response
// @Router       /candidates/profile/experience/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteExperience(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.candidateUC.DeleteExperience(c, userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience deleted", profile)
}

// AddEducation godoc
// @Summary      Add education entry
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        education  body      domain.Education  true  "Education entry"
// @Success      201  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/profile/education [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddEducation(c *gin.Context) {
	var edu domain.Education
	if err := c.ShouldBindJSON(&edu); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.candidateUC.AddEducation(c, userID, edu)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education added", profile)
}

// UpdateEducation godoc
// @Summary      Update education entry
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path      string                 true  "Education ID"
// @Param        education  body      domain.EducationPatch  true  "Fields to update"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/profile/education/{id} [patch]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateEducation(c *gin.Context) {
	var patch domain.EducationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.candidateUC.UpdateEducation(c, userID, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education updated", profile)
}

// DeleteEducation godoc
// @Summary      Delete education entry
// @Tags         candidates
// @Produce      json
// @Param        id  path      string  true  "Education ID"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      404  {object}  response.Response
// @Router       /candidates/profile/education/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteEducation(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.candidateUC.DeleteEducation(c, userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education deleted", profile)
}

// AddSkills godoc
// @Summary      Add skills
// @Description  Merge skills into the profile; duplicates are ignored
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        skills  body      AddSkillsRequest  true  "Skills to add"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/profile/skills [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddSkills(c *gin.Context) {
	var req AddSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	skills, err := h.candidateUC.AddSkills(c, userID, req.Skills)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills updated", gin.H{"skills": skills})
}

// RemoveSkill godoc
// @Summary      Remove a skill
// @Description  Remove a skill from the profile; removing an absent skill is a no-op
// @Tags         candidates
// @Produce      json
// @Param        skill  path      string  true  "Skill"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/profile/skills/{skill} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) RemoveSkill(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	skills, err := h.candidateUC.RemoveSkill(c, userID, c.Param("skill"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills updated", gin.H{"skills": skills})
}

// UploadResume godoc
// @Summary      Upload resume
// @Description  Upload a resume file (PDF, DOC, or DOCX, max 5 MB) to object storage
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/profile/resume [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}
	if fileHeader.Size > maxResumeSize {
		c.Error(apperror.BadRequest("Resume file exceeds the 5 MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	userID := c.GetString(string(domain.KeyUserID))
	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.candidateUC.UploadResume(c, userID, fileHeader.Filename, contentType, file)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded", gin.H{"resume_url": url})
}

// DeleteResume godoc
// @Summary      Delete resume
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/profile/resume [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteResume(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if err := h.candidateUC.DeleteResume(c, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted", nil)
}
