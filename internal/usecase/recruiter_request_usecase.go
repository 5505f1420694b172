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

type recruiterRequestUsecase struct {
	repo domain.RecruiterRequestRepository
}

// NewRecruiterRequestUsecase wires the moderation workflow; the role
// promotion itself lives inside the repository's transactional Decide.
func NewRecruiterRequestUsecase(repo domain.RecruiterRequestRepository) domain.RecruiterRequestUsecase {
	return &recruiterRequestUsecase{repo: repo}
}

func (u *recruiterRequestUsecase) Submit(ctx context.Context, req *domain.RecruiterRequest) (*domain.RecruiterRequest, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	role := domain.RoleFromContext(ctx)
	if role == domain.RoleRecruiter || role == domain.RoleAdmin {
		return nil, apperror.Forbidden("You are already authorized to post jobs")
	}

	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.OfficialEmail = strings.ToLower(strings.TrimSpace(req.OfficialEmail))
	req.Website = strings.TrimSpace(req.Website)
	req.LinkedIn = strings.TrimSpace(req.LinkedIn)
	req.Designation = strings.TrimSpace(req.Designation)
	if req.CompanyName == "" || req.OfficialEmail == "" || req.Designation == "" {
		return nil, apperror.BadRequest("Company name, official email, and designation are required")
	}

	pending, err := u.repo.HasPending(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if pending {
		return nil, apperror.Conflict("You already have a pending recruiter request")
	}

	now := time.Now()
	req.ID = uuid.NewString()
	req.UserID = userID
	req.Status = domain.RequestStatusPending
	req.ReviewedBy = nil
	req.ReviewedAt = nil
	req.CreatedAt = now
	req.UpdatedAt = now

	if err := u.repo.Create(ctx, req); err != nil {
		// Partial unique index closes the check-then-insert race
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You already have a pending recruiter request")
		}
		return nil, apperror.Internal(err)
	}
	return req, nil
}

func (u *recruiterRequestUsecase) GetMyRequest(ctx context.Context) (*domain.RecruiterRequest, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	req, err := u.repo.GetLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("No recruiter request found")
		}
		return nil, apperror.Internal(err)
	}
	return req, nil
}

func (u *recruiterRequestUsecase) ListPending(ctx context.Context) ([]domain.RecruiterRequestWithUser, error) {
	if err := requireRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	requests, err := u.repo.FetchPending(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return requests, nil
}

func (u *recruiterRequestUsecase) Approve(ctx context.Context, requestID string) (*domain.RecruiterRequest, error) {
	return u.decide(ctx, requestID, domain.RequestStatusApproved)
}

func (u *recruiterRequestUsecase) Reject(ctx context.Context, requestID string) (*domain.RecruiterRequest, error) {
	return u.decide(ctx, requestID, domain.RequestStatusRejected)
}

func (u *recruiterRequestUsecase) decide(ctx context.Context, requestID, status string) (*domain.RecruiterRequest, error) {
	if err := requireRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}
	reviewerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	req, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recruiter request not found")
		}
		return nil, apperror.Internal(err)
	}
	if req.Status != domain.RequestStatusPending {
		return nil, apperror.Conflict("Request already processed")
	}

	reviewedAt := time.Now()
	if err := u.repo.Decide(ctx, requestID, reviewerID, status, reviewedAt); err != nil {
		// The update is guarded on status='pending'; losing the race to a
		// concurrent decision surfaces as not-found here
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Conflict("Request already processed")
		}
		return nil, apperror.Internal(err)
	}

	req.Status = status
	req.ReviewedBy = &reviewerID
	req.ReviewedAt = &reviewedAt
	req.UpdatedAt = reviewedAt
	return req, nil
}
