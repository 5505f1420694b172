package usecase

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/apperror"
	"hirelens-backend/pkg/logger"

	"github.com/google/uuid"
)

type candidateUsecase struct {
	repo    domain.CandidateRepository
	resumes domain.ResumeStorage
}

func NewCandidateUsecase(repo domain.CandidateRepository, resumes domain.ResumeStorage) domain.CandidateUsecase {
	return &candidateUsecase{repo: repo, resumes: resumes}
}

// requireOwn prevents IDOR: every profile operation acts on the caller's own
// profile, so the context identity must match the argument.
func (u *candidateUsecase) requireOwn(ctx context.Context, userID string) error {
	ctxUserID, err := callerID(ctx)
	if err != nil {
		return err
	}
	if ctxUserID != userID {
		return apperror.Forbidden("You can only access your own profile")
	}
	return nil
}

func (u *candidateUsecase) GetProfile(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	if err := u.requireOwn(ctx, userID); err != nil {
		return nil, err
	}
	return u.ownProfile(ctx, userID, "Candidate profile not found")
}

// CreateOrUpdateProfile is an upsert: the profile is created lazily on the
// first write and shallow-merged on later ones. The created flag lets the
// handler answer 201 vs 200.
func (u *candidateUsecase) CreateOrUpdateProfile(ctx context.Context, userID string, fields domain.ProfileFields) (*domain.CandidateProfile, bool, error) {
	if err := u.requireOwn(ctx, userID); err != nil {
		return nil, false, err
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, false, apperror.Internal(err)
	}

	now := time.Now()
	created := profile == nil

	if created {
		profile = &domain.CandidateProfile{
			ID:        uuid.NewString(),
			UserID:    userID,
			Skills:    []string{},
			CreatedAt: now,
		}
	}

	if fields.Phone != nil {
		profile.Phone = strings.TrimSpace(*fields.Phone)
	}
	if fields.Summary != nil {
		profile.Summary = strings.TrimSpace(*fields.Summary)
	}
	if fields.LinkedInURL != nil {
		profile.LinkedInURL = strings.TrimSpace(*fields.LinkedInURL)
	}
	if fields.GithubURL != nil {
		profile.GithubURL = strings.TrimSpace(*fields.GithubURL)
	}
	if fields.PortfolioURL != nil {
		profile.PortfolioURL = strings.TrimSpace(*fields.PortfolioURL)
	}
	profile.UpdatedAt = now

	if created {
		if err := u.repo.Create(ctx, profile); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return nil, false, apperror.Conflict("Profile already exists")
			}
			return nil, false, apperror.Internal(err)
		}
		profile.Experience = []domain.Experience{}
		profile.Education = []domain.Education{}
		return profile, true, nil
	}

	if err := u.repo.UpdateFields(ctx, profile); err != nil {
		return nil, false, apperror.Internal(err)
	}
	return profile, false, nil
}

func (u *candidateUsecase) AddExperience(ctx context.Context, userID string, exp domain.Experience) (*domain.CandidateProfile, error) {
	if err := u.requireOwn(ctx, userID); err != nil {
		return nil, err
	}
	// Deliberately no auto-create: the scalar profile must exist first
	profile, err := u.ownProfile(ctx, userID, "Create profile first")
	if err != nil {
		return nil, err
	}
	if err := validateExperience(&exp); err != nil {
		return nil, err
	}

	exp.ID = uuid.NewString()
	if err := u.repo.AddExperience(ctx, profile.ID, &exp); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.ownProfile(ctx, userID, "Candidate profile not found")
}

func (u *candidateUsecase) UpdateExperience(ctx context.Context, userID, experienceID string, patch domain.ExperiencePatch) (*domain.CandidateProfile, error) {
	if err := u.requireOwn(ctx, userID); err != nil {
		return nil, err
	}
	if patch == (domain.ExperiencePatch{}) {
		return nil, apperror.BadRequest("At least one field is required")
	}
	profile, err := u.ownProfile(ctx, userID, "Candidate profile not found")
	if err != nil {
		return nil, err
	}

	// The lookup is scoped to the caller's own profile: a sub-record id
	// guessed from another profile cannot resolve here
	exp := findExperience(profile.Experience, experienceID)
	if exp == nil {
		return nil, apperror.NotFound("Experience entry not found")
	}

	if patch.Company != nil {
		exp.Company = strings.TrimSpace(*patch.Company)
	}
	if patch.Role != nil {
		exp.Role = strings.TrimSpace(*patch.Role)
	}
	if patch.StartDate != nil {
		exp.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		exp.EndDate = patch.EndDate
	}
	if patch.Description != nil {
		exp.Description = *patch.Description
	}
	if err := validateExperience(exp); err != nil {
		return nil, err
	}

	if err := u.repo.UpdateExperience(ctx, profile.ID, exp); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Experience entry not found")
		}
		return nil, apperror.Internal(err)
	}
	return u.ownProfile(ctx, userID, "Candidate profile not found")
}

func (u *candidateUsecase) DeleteExperience(ctx context.Context, userID, experienceID string) (*domain.CandidateProfile, error) {
	if err := u.requireOwn(ctx, userID); err != nil {
		return nil, err
	}
	profile, err := u.ownProfile(ctx, userID, "Candidate profile not found")
	if err != nil {
		return nil, err
	}

	if err := u.repo.DeleteExperience(ctx, profile.ID, experienceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Experience entry not found")
		}
		return nil, apperror.Internal(err)
	}
	return u.ownProfile(ctx, userID, "Candidate profile not found")
}

func (u *candidateUsecase) AddEducation(ctx context.Context, userID string, edu domain.Education) (*domain.CandidateProfile, error) {
	if err := u.requireOwn(ctx, userID); err != nil {
		return nil, err
	}
	profile, err := u.ownProfile(ctx, userID, "Create profile first")
	if err != nil {
		return nil, err
	}
	if err := validateEducation(&edu); err != nil {
		return nil, err
	}

	edu.ID = uuid.NewString()
	if err := u.repo.AddEducation(ctx, profile.ID, &edu); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.ownProfile(ctx, userID, "Candidate profile not found")
}

func (u *candidateUsecase) UpdateEducation(ctx context.Context, userID, educationID string, patch domain.EducationPatch) (*domain.CandidateProfile, error) {
	if err := u.requireOwn(ctx, userID); err != nil {
		return nil, err
	}
	if patch == (domain.EducationPatch{}) {
		return nil, apperror.BadRequest("At least one field is required")
	}
	profile, err := u.ownProfile(ctx, userID, "Candidate profile not found")
	if err != nil {
		return nil, err
	}

	edu := findEducation(profile.Education, educationID)
	if edu == nil {
		return nil, apperror.NotFound("Education entry not found")
	}

	if patch.Institution != nil {
		edu.Institution = strings.TrimSpace(*patch.Institution)
	}
	if patch.Degree != nil {
		edu.Degree = strings.TrimSpace(*patch.Degree)
	}
	if patch.FieldOfStudy != nil {
		edu.FieldOfStudy = strings.TrimSpace(*patch.FieldOfStudy)
	}
	if patch.StartDate != nil {
		edu.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		edu.EndDate = patch.EndDate
	}
	if err := validateEducation(edu); err != nil {
		return nil, err
	}

	if err := u.repo.UpdateEducation(ctx, profile.ID, edu); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Education entry not found")
		}
		return nil, apperror.Internal(err)
	}
	return u.ownProfile(ctx, userID, "Candidate profile not found")
}

func (u *candidateUsecase) DeleteEducation(ctx context.Context, userID, educationID string) (*domain.CandidateProfile, error) {
	if err := u.requireOwn(ctx, userID); err != nil {
		return nil, err
	}
	profile, err := u.ownProfile(ctx, userID, "Candidate profile not found")
	if err != nil {
		return nil, err
	}

	if err := u.repo.DeleteEducation(ctx, profile.ID, educationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Education entry not found")
		}
		return nil, apperror.Internal(err)
	}
	return u.ownProfile(ctx, userID, "Candidate profile not found")
}

// AddSkills merges skills as a set: entries are trimmed, duplicates against
// both the stored list and the request itself are dropped, order of first
// appearance is kept.
func (u *candidateUsecase) AddSkills(ctx context.Context, userID string, skills []string) ([]string, error) {
	if err := u.requireOwn(ctx, userID); err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, apperror.BadRequest("Skills must be a non-empty array")
	}

	trimmed := make([]string, 0, len(skills))
	for _, s := range skills {
		t := strings.TrimSpace(s)
		if t == "" {
			return nil, apperror.BadRequest("Each skill must be a non-empty string")
		}
		trimmed = append(trimmed, t)
	}

	profile, err := u.ownProfile(ctx, userID, "Candidate profile not found")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(profile.Skills)+len(trimmed))
	merged := make([]string, 0, len(profile.Skills)+len(trimmed))
	for _, s := range append(append([]string{}, profile.Skills...), trimmed...) {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}

	if err := u.repo.SetSkills(ctx, profile.ID, merged); err != nil {
		return nil, apperror.Internal(err)
	}
	return merged, nil
}

// RemoveSkill removes the exact trimmed match; absence is not an error.
func (u *candidateUsecase) RemoveSkill(ctx context.Context, userID, skill string) ([]string, error) {
	if err := u.requireOwn(ctx, userID); err != nil {
		return nil, err
	}
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, apperror.BadRequest("Skill is required")
	}

	profile, err := u.ownProfile(ctx, userID, "Candidate profile not found")
	if err != nil {
		return nil, err
	}

	remaining := make([]string, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		if s != skill {
			remaining = append(remaining, s)
		}
	}
	if len(remaining) == len(profile.Skills) {
		return profile.Skills, nil
	}

	if err := u.repo.SetSkills(ctx, profile.ID, remaining); err != nil {
		return nil, apperror.Internal(err)
	}
	return remaining, nil
}

func (u *candidateUsecase) UploadResume(ctx context.Context, userID, filename, contentType string, file io.Reader) (string, error) {
	if err := u.requireOwn(ctx, userID); err != nil {
		return "", err
	}
	profile, err := u.ownProfile(ctx, userID, "Candidate profile not found")
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext != ".pdf" && ext != ".doc" && ext != ".docx" {
		return "", apperror.BadRequest("Resume must be a PDF, DOC, or DOCX file")
	}

	key := "resumes/" + userID + "/" + uuid.NewString() + ext
	url, err := u.resumes.Upload(ctx, key, file, contentType)
	if err != nil {
		return "", apperror.Internal(err)
	}

	if err := u.repo.SetResumeURL(ctx, profile.ID, url); err != nil {
		return "", apperror.Internal(err)
	}
	return url, nil
}

// DeleteResume clears the stored reference; the object deletion itself is
// best-effort and a failure there is logged, not surfaced.
func (u *candidateUsecase) DeleteResume(ctx context.Context, userID string) error {
	if err := u.requireOwn(ctx, userID); err != nil {
		return err
	}
	profile, err := u.ownProfile(ctx, userID, "Candidate profile not found")
	if err != nil {
		return err
	}
	if profile.ResumeURL == "" {
		return apperror.BadRequest("No resume file found to delete")
	}

	if err := u.resumes.Delete(ctx, profile.ResumeURL); err != nil {
		logger.Log.Warn("Failed to delete resume object", "user_id", userID, "error", err)
	}

	if err := u.repo.SetResumeURL(ctx, profile.ID, ""); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *candidateUsecase) ownProfile(ctx context.Context, userID, notFoundMsg string) (*domain.CandidateProfile, error) {
	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(notFoundMsg)
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func findExperience(list []domain.Experience, id string) *domain.Experience {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

func findEducation(list []domain.Education, id string) *domain.Education {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

func validateExperience(exp *domain.Experience) error {
	if strings.TrimSpace(exp.Company) == "" || strings.TrimSpace(exp.Role) == "" || strings.TrimSpace(exp.Description) == "" {
		return apperror.BadRequest("Company, role, and description are required")
	}
	if exp.StartDate.IsZero() {
		return apperror.BadRequest("Start date is required")
	}
	if exp.EndDate != nil && exp.EndDate.Before(exp.StartDate) {
		return apperror.BadRequest("End date cannot be before start date")
	}
	return nil
}

func validateEducation(edu *domain.Education) error {
	if strings.TrimSpace(edu.Institution) == "" || strings.TrimSpace(edu.Degree) == "" {
		return apperror.BadRequest("Institution and degree are required")
	}
	if edu.StartDate.IsZero() {
		return apperror.BadRequest("Start date is required")
	}
	if edu.EndDate != nil && edu.EndDate.Before(edu.StartDate) {
		return apperror.BadRequest("End date cannot be before start date")
	}
	return nil
}
