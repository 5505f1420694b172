package domain

import "context"

// SavedJob is a candidate's bookmark of a job posting.
type SavedJob struct {
	JobID       string   `json:"job_id"`
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	JobType     string   `json:"job_type"`
	SalaryMin   *float64 `json:"salary_min,omitempty"`
	SalaryMax   *float64 `json:"salary_max,omitempty"`
	Slug        string   `json:"slug"`
}

type SavedJobRepository interface {
	Save(ctx context.Context, userID, jobID string) error
	Remove(ctx context.Context, userID, jobID string) error
	IsSaved(ctx context.Context, userID, jobID string) (bool, error)
	FetchByUser(ctx context.Context, userID string) ([]SavedJob, error)
}

type SavedJobUsecase interface {
	SaveJob(ctx context.Context, jobID string) ([]SavedJob, error)
	RemoveJob(ctx context.Context, jobID string) ([]SavedJob, error)
	ListSavedJobs(ctx context.Context) ([]SavedJob, error)
}
