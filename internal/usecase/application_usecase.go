package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/apperror"

	"github.com/google/uuid"
)

const (
	appPageLimitDefault = 10
	appPageLimitMax     = 20
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
	}
}

// Apply creates the application in "applied" status, snapshotting the job's
// owning recruiter. Every guard runs before any write.
func (uc *applicationUsecase) Apply(ctx context.Context, jobID string) (*domain.Application, error) {
	candidateID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if jobID == "" {
		return nil, apperror.BadRequest("Job ID is required")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil || !job.IsActive {
		return nil, apperror.NotFound("Job not found or inactive")
	}

	if job.CreatedBy == candidateID {
		return nil, apperror.BadRequest("Cannot apply to your own job")
	}

	// Resume policy: the resume must already be on the candidate profile
	profile, err := uc.candidateRepo.GetByUserID(ctx, candidateID)
	if err != nil || profile.ResumeURL == "" {
		return nil, apperror.BadRequest("Please upload your resume in profile first")
	}

	exists, err := uc.applicationRepo.Exists(ctx, candidateID, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	app := &domain.Application{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		JobID:       jobID,
		RecruiterID: job.CreatedBy,
		Status:      domain.ApplicationStatusApplied,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		// The unique (candidate_id, job_id) constraint closes the race
		// between the existence check and the insert
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (uc *applicationUsecase) ListMyApplications(ctx context.Context, page, limit int) (*domain.PaginatedResult[domain.ApplicationWithJob], error) {
	candidateID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	page, limit = domain.ClampPage(page, limit, appPageLimitDefault, appPageLimitMax)
	apps, total, err := uc.applicationRepo.FetchByCandidate(ctx, candidateID, limit, (page-1)*limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(apps, total, page, limit), nil
}

func (uc *applicationUsecase) ListApplicationsForJob(ctx context.Context, jobID string, page, limit int) (*domain.PaginatedResult[domain.ApplicationWithCandidate], error) {
	if err := requireRole(ctx, domain.RoleRecruiter); err != nil {
		return nil, err
	}
	recruiterID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.CreatedBy != recruiterID {
		return nil, apperror.Forbidden("Unauthorized to access applications of this job")
	}

	page, limit = domain.ClampPage(page, limit, appPageLimitDefault, appPageLimitMax)
	apps, total, err := uc.applicationRepo.FetchByJob(ctx, jobID, limit, (page-1)*limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(apps, total, page, limit), nil
}

// UpdateStatus lets the owning recruiter move an application to any status
// in the enum, except that a withdrawn application is closed for edits.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, applicationID, status string) (*domain.Application, error) {
	if err := requireRole(ctx, domain.RoleRecruiter); err != nil {
		return nil, err
	}
	recruiterID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if !contains(domain.ApplicationStatuses, status) {
		return nil, apperror.BadRequest(
			"Invalid status value. Allowed values: " + strings.Join(domain.ApplicationStatuses, ", "))
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	// Ownership is re-derived from the job's stored creator, not from the
	// denormalized snapshot, so a job ownership change is honored
	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, apperror.NotFound("Job related to application not found")
	}
	if job.CreatedBy != recruiterID {
		return nil, apperror.Forbidden("Unauthorized to update this application")
	}

	if app.Status == domain.ApplicationStatusWithdrawn {
		return nil, apperror.Conflict("Application has been withdrawn by the candidate")
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, apperror.Internal(err)
	}
	app.Status = status
	app.UpdatedAt = time.Now()
	return app, nil
}

// Withdraw is the candidate's own terminal transition; it succeeds from any
// current status.
func (uc *applicationUsecase) Withdraw(ctx context.Context, applicationID string) (*domain.Application, error) {
	candidateID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if app.CandidateID != candidateID {
		return nil, apperror.Forbidden("Unauthorized to withdraw this application")
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusWithdrawn); err != nil {
		return nil, apperror.Internal(err)
	}
	app.Status = domain.ApplicationStatusWithdrawn
	app.UpdatedAt = time.Now()
	return app, nil
}
