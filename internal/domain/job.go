package domain

import (
	"context"
	"time"
)

// Job types accepted by the catalog
var JobTypes = []string{"Full-time", "Part-time", "Internship", "Contract"}

type Job struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	CompanyName      string    `json:"company_name"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	JobType          string    `json:"job_type"`
	SalaryMin        *float64  `json:"salary_min,omitempty"`
	SalaryMax        *float64  `json:"salary_max,omitempty"`
	IsActive         bool      `json:"is_active"`
	Slug             string    `json:"slug"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// JobFilter narrows the public listing. Title and Location are
// case-insensitive substring matches; JobType is exact.
type JobFilter struct {
	Title    string
	Location string
	JobType  string
}

// JobPatch is a partial update; nil fields are left untouched.
// Only these fields may change after creation - CompanyName participates in
// the slug and is frozen, the slug itself is never recomputed.
type JobPatch struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	Location         *string   `json:"location"`
	JobType          *string   `json:"job_type"`
	SalaryMin        *float64  `json:"salary_min"`
	SalaryMax        *float64  `json:"salary_max"`
	IsActive         *bool     `json:"is_active"`
	Requirements     *[]string `json:"requirements"`
	Responsibilities *[]string `json:"responsibilities"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	GetBySlug(ctx context.Context, slug string) (*Job, error)
	FetchActive(ctx context.Context, filter JobFilter, limit, offset int) ([]Job, int64, error)
	FetchByCreator(ctx context.Context, creatorID string, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
	CountByCreator(ctx context.Context, creatorID string) (int64, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) (*Job, string, error)
	ListJobs(ctx context.Context, filter JobFilter, page, limit int) (*PaginatedResult[Job], error)
	GetJobBySlug(ctx context.Context, slug string) (*Job, error)
	ListMyJobs(ctx context.Context, page, limit int) (*PaginatedResult[Job], error)
	UpdateJob(ctx context.Context, jobID string, patch JobPatch) (*Job, error)
	SetActive(ctx context.Context, jobID string, active bool) (*Job, error)
	DeleteJob(ctx context.Context, jobID string) error
}
