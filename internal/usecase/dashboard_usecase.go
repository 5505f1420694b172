package usecase

import (
	"context"

	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/apperror"
)

type dashboardUsecase struct {
	jobRepo         domain.JobRepository
	applicationRepo domain.ApplicationRepository
}

func NewDashboardUsecase(jobRepo domain.JobRepository, applicationRepo domain.ApplicationRepository) domain.DashboardUsecase {
	return &dashboardUsecase{jobRepo: jobRepo, applicationRepo: applicationRepo}
}

func (u *dashboardUsecase) RecruiterStats(ctx context.Context) (*domain.RecruiterStats, error) {
	if err := requireRole(ctx, domain.RoleRecruiter); err != nil {
		return nil, err
	}
	recruiterID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := u.applicationRepo.StatsByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	totalJobs, err := u.jobRepo.CountByCreator(ctx, recruiterID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	stats.TotalJobs = totalJobs
	return stats, nil
}
