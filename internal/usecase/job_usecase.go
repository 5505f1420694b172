package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/apperror"
	"hirelens-backend/pkg/slugger"

	"github.com/google/uuid"
)

const (
	jobPageLimitDefault = 10
	jobPageLimitMax     = 50
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// CreateJob returns the created job and its canonical path.
func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, string, error) {
	if err := requireRole(ctx, domain.RoleRecruiter); err != nil {
		return nil, "", err
	}
	creatorID, err := callerID(ctx)
	if err != nil {
		return nil, "", err
	}

	job.Title = strings.TrimSpace(job.Title)
	job.CompanyName = strings.TrimSpace(job.CompanyName)
	job.Location = strings.TrimSpace(job.Location)

	if job.Title == "" || job.CompanyName == "" || job.Description == "" || job.Location == "" {
		return nil, "", apperror.BadRequest("Title, Company Name, Description, and Location are required")
	}
	if err := validateSalaryRange(job.SalaryMin, job.SalaryMax); err != nil {
		return nil, "", err
	}
	if job.JobType != "" && !contains(domain.JobTypes, job.JobType) {
		return nil, "", apperror.BadRequest("Invalid job type. Allowed values: " + strings.Join(domain.JobTypes, ", "))
	}
	if job.JobType == "" {
		job.JobType = "Full-time"
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Responsibilities == nil {
		job.Responsibilities = []string{}
	}

	now := time.Now()
	job.ID = uuid.NewString()
	job.CreatedBy = creatorID
	job.IsActive = true
	job.Slug = slugger.JobSlug(job.Title, job.CompanyName, job.Location, job.ID)
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, "", apperror.Internal(err)
	}
	return job, "/jobs/" + job.Slug, nil
}

// ListJobs is the public listing; only active jobs are returned and an empty
// page is a normal response, not an error.
func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter, page, limit int) (*domain.PaginatedResult[domain.Job], error) {
	page, limit = domain.ClampPage(page, limit, jobPageLimitDefault, jobPageLimitMax)
	if filter.JobType != "" && !contains(domain.JobTypes, filter.JobType) {
		return nil, apperror.BadRequest("Invalid job type filter")
	}

	jobs, total, err := u.jobRepo.FetchActive(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(jobs, total, page, limit), nil
}

func (u *jobUsecase) GetJobBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	if slug == "" {
		return nil, apperror.BadRequest("Job slug is required")
	}
	job, err := u.jobRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	// Inactive jobs are indistinguishable from absent ones on the public path
	if !job.IsActive {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, page, limit int) (*domain.PaginatedResult[domain.Job], error) {
	if err := requireRole(ctx, domain.RoleRecruiter); err != nil {
		return nil, err
	}
	creatorID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	page, limit = domain.ClampPage(page, limit, jobPageLimitDefault, jobPageLimitMax)
	jobs, total, err := u.jobRepo.FetchByCreator(ctx, creatorID, limit, (page-1)*limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(jobs, total, page, limit), nil
}

// UpdateJob applies an allow-listed patch. Unknown fields are rejected at
// the binding layer before this runs; here the merged result is re-validated
// so a patch can never leave the job with salaryMax < salaryMin.
func (u *jobUsecase) UpdateJob(ctx context.Context, jobID string, patch domain.JobPatch) (*domain.Job, error) {
	if err := requireRole(ctx, domain.RoleRecruiter); err != nil {
		return nil, err
	}
	job, err := u.ownedJob(ctx, jobID, "update")
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, apperror.BadRequest("Title cannot be empty")
		}
		job.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			return nil, apperror.BadRequest("Description cannot be empty")
		}
		job.Description = *patch.Description
	}
	if patch.Location != nil {
		job.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.JobType != nil {
		if !contains(domain.JobTypes, *patch.JobType) {
			return nil, apperror.BadRequest("Invalid job type. Allowed values: " + strings.Join(domain.JobTypes, ", "))
		}
		job.JobType = *patch.JobType
	}
	if patch.SalaryMin != nil {
		job.SalaryMin = patch.SalaryMin
	}
	if patch.SalaryMax != nil {
		job.SalaryMax = patch.SalaryMax
	}
	if patch.IsActive != nil {
		job.IsActive = *patch.IsActive
	}
	if patch.Requirements != nil {
		job.Requirements = *patch.Requirements
	}
	if patch.Responsibilities != nil {
		job.Responsibilities = *patch.Responsibilities
	}

	if err := validateSalaryRange(job.SalaryMin, job.SalaryMax); err != nil {
		return nil, err
	}

	job.UpdatedAt = time.Now()
	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// SetActive is the owner-only activation toggle; setting the current value
// again is not an error.
func (u *jobUsecase) SetActive(ctx context.Context, jobID string, active bool) (*domain.Job, error) {
	if err := requireRole(ctx, domain.RoleRecruiter); err != nil {
		return nil, err
	}
	job, err := u.ownedJob(ctx, jobID, "change activation of")
	if err != nil {
		return nil, err
	}

	if job.IsActive == active {
		return job, nil
	}

	job.IsActive = active
	job.UpdatedAt = time.Now()
	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// DeleteJob is a hard delete and deliberately admin-only: owners manage
// content, only admins remove it permanently.
func (u *jobUsecase) DeleteJob(ctx context.Context, jobID string) error {
	if err := requireRole(ctx, domain.RoleAdmin); err != nil {
		return err
	}

	if err := u.jobRepo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// ownedJob loads the job and applies the ownership gate. Ownership is
// re-derived from the stored created_by column, never from caller input.
func (u *jobUsecase) ownedJob(ctx context.Context, jobID, action string) (*domain.Job, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.CreatedBy != caller {
		return nil, apperror.Forbidden("You are not authorized to " + action + " this job")
	}
	return job, nil
}

func validateSalaryRange(min, max *float64) error {
	if min != nil && *min < 0 {
		return apperror.BadRequest("salaryMin cannot be negative")
	}
	if max != nil && *max < 0 {
		return apperror.BadRequest("salaryMax cannot be negative")
	}
	if min != nil && max != nil && *max < *min {
		return apperror.BadRequest("salaryMax must be greater than or equal to salaryMin")
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
