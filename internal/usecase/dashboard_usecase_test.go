package usecase_test

import (
	"testing"

	"hirelens-backend/internal/domain"
	"hirelens-backend/internal/usecase"
	"hirelens-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecruiterStats(t *testing.T) {
	t.Run("Should merge application stats with the job count", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewDashboardUsecase(jobRepo, appRepo)

		appRepo.On("StatsByRecruiter", mock.Anything, "rec1").Return(&domain.RecruiterStats{
			TotalApplications: 12,
			StatusBreakdown: map[string]int64{
				domain.ApplicationStatusApplied:     7,
				domain.ApplicationStatusShortlisted: 3,
				domain.ApplicationStatusRejected:    2,
			},
		}, nil)
		jobRepo.On("CountByCreator", mock.Anything, "rec1").Return(int64(4), nil)

		stats, err := uc.RecruiterStats(authCtx("rec1", domain.RoleRecruiter))
		assert.NoError(t, err)
		assert.Equal(t, int64(4), stats.TotalJobs)
		assert.Equal(t, int64(12), stats.TotalApplications)
		assert.Equal(t, int64(3), stats.StatusBreakdown[domain.ApplicationStatusShortlisted])
	})

	t.Run("Candidates have no dashboard", func(t *testing.T) {
		uc := usecase.NewDashboardUsecase(new(MockJobRepo), new(MockApplicationRepo))
		_, err := uc.RecruiterStats(authCtx("cand1", domain.RoleCandidate))
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})
}
