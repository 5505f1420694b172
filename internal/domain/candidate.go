package domain

import (
	"context"
	"io"
	"time"
)

type CandidateProfile struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	Phone        string       `json:"phone,omitempty"`
	Summary      string       `json:"summary,omitempty"`
	Skills       []string     `json:"skills"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	ResumeURL    string       `json:"resume_url,omitempty"`
	LinkedInURL  string       `json:"linkedin_url,omitempty"`
	GithubURL    string       `json:"github_url,omitempty"`
	PortfolioURL string       `json:"portfolio_url,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Experience is an owned child record; its id is only meaningful within the
// parent profile and every lookup is scoped through it.
type Experience struct {
	ID          string     `json:"id"`
	Company     string     `json:"company"`
	Role        string     `json:"role"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description"`
}

type Education struct {
	ID           string     `json:"id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study,omitempty"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

// ProfileFields is the upsert payload for the scalar part of a profile;
// nil fields are left untouched on update.
type ProfileFields struct {
	Phone        *string `json:"phone" binding:"omitempty,valid_phone"`
	Summary      *string `json:"summary"`
	LinkedInURL  *string `json:"linkedin_url" binding:"omitempty,url"`
	GithubURL    *string `json:"github_url" binding:"omitempty,url"`
	PortfolioURL *string `json:"portfolio_url" binding:"omitempty,url"`
}

// ExperiencePatch / EducationPatch are partial sub-record updates.
type ExperiencePatch struct {
	Company     *string    `json:"company"`
	Role        *string    `json:"role"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description *string    `json:"description"`
}

type EducationPatch struct {
	Institution  *string    `json:"institution"`
	Degree       *string    `json:"degree"`
	FieldOfStudy *string    `json:"field_of_study"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

// ResumeStorage is the external object-storage collaborator. Only the
// returned URL is persisted; Delete failures are best-effort.
type ResumeStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	Create(ctx context.Context, profile *CandidateProfile) error
	UpdateFields(ctx context.Context, profile *CandidateProfile) error
	SetSkills(ctx context.Context, profileID string, skills []string) error
	SetResumeURL(ctx context.Context, profileID string, resumeURL string) error

	AddExperience(ctx context.Context, profileID string, exp *Experience) error
	UpdateExperience(ctx context.Context, profileID string, exp *Experience) error
	DeleteExperience(ctx context.Context, profileID, experienceID string) error

	AddEducation(ctx context.Context, profileID string, edu *Education) error
	UpdateEducation(ctx context.Context, profileID string, edu *Education) error
	DeleteEducation(ctx context.Context, profileID, educationID string) error
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CandidateProfile, error)
	// CreateOrUpdateProfile reports whether the profile was created so the
	// handler can answer 201 vs 200.
	CreateOrUpdateProfile(ctx context.Context, userID string, fields ProfileFields) (*CandidateProfile, bool, error)

	AddExperience(ctx context.Context, userID string, exp Experience) (*CandidateProfile, error)
	UpdateExperience(ctx context.Context, userID, experienceID string, patch ExperiencePatch) (*CandidateProfile, error)
	DeleteExperience(ctx context.Context, userID, experienceID string) (*CandidateProfile, error)

	AddEducation(ctx context.Context, userID string, edu Education) (*CandidateProfile, error)
	UpdateEducation(ctx context.Context, userID, educationID string, patch EducationPatch) (*CandidateProfile, error)
	DeleteEducation(ctx context.Context, userID, educationID string) (*CandidateProfile, error)

	AddSkills(ctx context.Context, userID string, skills []string) ([]string, error)
	RemoveSkill(ctx context.Context, userID, skill string) ([]string, error)

	UploadResume(ctx context.Context, userID, filename, contentType string, file io.Reader) (string, error)
	DeleteResume(ctx context.Context, userID string) error
}
