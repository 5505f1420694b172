package usecase

import (
	"context"
	"errors"

	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/apperror"
)

type savedJobUsecase struct {
	repo    domain.SavedJobRepository
	jobRepo domain.JobRepository
}

func NewSavedJobUsecase(repo domain.SavedJobRepository, jobRepo domain.JobRepository) domain.SavedJobUsecase {
	return &savedJobUsecase{repo: repo, jobRepo: jobRepo}
}

func (u *savedJobUsecase) SaveJob(ctx context.Context, jobID string) ([]domain.SavedJob, error) {
	if err := requireRole(ctx, domain.RoleCandidate); err != nil {
		return nil, err
	}
	userID, err := callerID(ctx)
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
	if !job.IsActive {
		return nil, apperror.NotFound("Job not found")
	}

	if err := u.repo.Save(ctx, userID, jobID); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Job already saved")
		}
		return nil, apperror.Internal(err)
	}
	return u.list(ctx, userID)
}

// RemoveJob is idempotent: removing a job that was never saved still
// succeeds and returns the current list.
func (u *savedJobUsecase) RemoveJob(ctx context.Context, jobID string) ([]domain.SavedJob, error) {
	if err := requireRole(ctx, domain.RoleCandidate); err != nil {
		return nil, err
	}
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.repo.Remove(ctx, userID, jobID); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.list(ctx, userID)
}

func (u *savedJobUsecase) ListSavedJobs(ctx context.Context) ([]domain.SavedJob, error) {
	if err := requireRole(ctx, domain.RoleCandidate); err != nil {
		return nil, err
	}
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	return u.list(ctx, userID)
}

func (u *savedJobUsecase) list(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	saved, err := u.repo.FetchByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return saved, nil
}
