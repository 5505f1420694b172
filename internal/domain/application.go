package domain

import (
	"context"
	"time"
)

// Application status values. "applied" is the unique initial status;
// "withdrawn" is terminal and blocks further recruiter edits.
const (
	ApplicationStatusApplied     = "applied"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusInterview   = "interview"
	ApplicationStatusSelected    = "selected"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusWithdrawn   = "withdrawn"
)

// ApplicationStatuses lists every status a recruiter may set.
// Withdrawn is excluded: only the owning candidate reaches it, through
// Withdraw.
var ApplicationStatuses = []string{
	ApplicationStatusApplied,
	ApplicationStatusShortlisted,
	ApplicationStatusInterview,
	ApplicationStatusSelected,
	ApplicationStatusRejected,
}

// Application links a candidate to a job. RecruiterID is snapshotted from
// the job's creator at apply time for fast authorization and querying.
type Application struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	JobID       string    `json:"job_id"`
	RecruiterID string    `json:"recruiter_id"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobSnapshot is the read-time join added to a candidate's application list.
// Nil when the job has been hard-deleted; readers must render that case
// instead of breaking.
type JobSnapshot struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	JobType     string `json:"job_type"`
	IsActive    bool   `json:"is_active"`
	Slug        string `json:"slug"`
}

// CandidateSnapshot is the read-time join added to a recruiter's per-job
// application list.
type CandidateSnapshot struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	ResumeURL string `json:"resume_url,omitempty"`
}

type ApplicationWithJob struct {
	Application
	Job *JobSnapshot `json:"job"`
}

type ApplicationWithCandidate struct {
	Application
	Candidate *CandidateSnapshot `json:"candidate"`
}

// RecruiterStats aggregates a recruiter's jobs and applications for the
// dashboard.
type RecruiterStats struct {
	TotalJobs          int64            `json:"totalJobs"`
	TotalApplications  int64            `json:"totalApplications"`
	StatusBreakdown    map[string]int64 `json:"statusBreakdown"`
	ApplicationsPerJob map[string]int64 `json:"applicationsPerJob"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	Exists(ctx context.Context, candidateID, jobID string) (bool, error)
	FetchByCandidate(ctx context.Context, candidateID string, limit, offset int) ([]ApplicationWithJob, int64, error)
	FetchByJob(ctx context.Context, jobID string, limit, offset int) ([]ApplicationWithCandidate, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
	StatsByRecruiter(ctx context.Context, recruiterID string) (*RecruiterStats, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID string) (*Application, error)
	ListMyApplications(ctx context.Context, page, limit int) (*PaginatedResult[ApplicationWithJob], error)
	ListApplicationsForJob(ctx context.Context, jobID string, page, limit int) (*PaginatedResult[ApplicationWithCandidate], error)
	UpdateStatus(ctx context.Context, applicationID, status string) (*Application, error)
	Withdraw(ctx context.Context, applicationID string) (*Application, error)
}

type DashboardUsecase interface {
	RecruiterStats(ctx context.Context) (*RecruiterStats, error)
}
