package usecase_test

import (
	"testing"

	"hirelens-backend/internal/domain"
	"hirelens-backend/internal/usecase"
	"hirelens-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSaveJob(t *testing.T) {
	t.Run("Should save an active job and return the current list", func(t *testing.T) {
		repo := new(MockSavedJobRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewSavedJobUsecase(repo, jobRepo)

		jobRepo.On("GetByID", mock.Anything, "j1").Return(activeJob(), nil)
		repo.On("Save", mock.Anything, "cand1", "j1").Return(nil)
		repo.On("FetchByUser", mock.Anything, "cand1").
			Return([]domain.SavedJob{{JobID: "j1", Title: "Backend Engineer"}}, nil)

		saved, err := uc.SaveJob(authCtx("cand1", domain.RoleCandidate), "j1")
		assert.NoError(t, err)
		assert.Len(t, saved, 1)
		assert.Equal(t, "j1", saved[0].JobID)
	})

	t.Run("Only candidates have a saved list", func(t *testing.T) {
		repo := new(MockSavedJobRepo)
		uc := usecase.NewSavedJobUsecase(repo, new(MockJobRepo))

		_, err := uc.SaveJob(authCtx("rec1", domain.RoleRecruiter), "j1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("An inactive job reads as not found", func(t *testing.T) {
		repo := new(MockSavedJobRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewSavedJobUsecase(repo, jobRepo)

		inactive := activeJob()
		inactive.IsActive = false
		jobRepo.On("GetByID", mock.Anything, "j1").Return(inactive, nil)

		_, err := uc.SaveJob(authCtx("cand1", domain.RoleCandidate), "j1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Saving twice conflicts", func(t *testing.T) {
		repo := new(MockSavedJobRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewSavedJobUsecase(repo, jobRepo)

		jobRepo.On("GetByID", mock.Anything, "j1").Return(activeJob(), nil)
		repo.On("Save", mock.Anything, "cand1", "j1").Return(domain.ErrDuplicate)

		_, err := uc.SaveJob(authCtx("cand1", domain.RoleCandidate), "j1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
		assert.Contains(t, err.Error(), "already saved")
	})
}

func TestRemoveSavedJob(t *testing.T) {
	t.Run("Removing a never-saved job still succeeds", func(t *testing.T) {
		repo := new(MockSavedJobRepo)
		uc := usecase.NewSavedJobUsecase(repo, new(MockJobRepo))

		repo.On("Remove", mock.Anything, "cand1", "j9").Return(nil)
		repo.On("FetchByUser", mock.Anything, "cand1").Return([]domain.SavedJob{}, nil)

		saved, err := uc.RemoveJob(authCtx("cand1", domain.RoleCandidate), "j9")
		assert.NoError(t, err)
		assert.Empty(t, saved)
	})
}

func TestListSavedJobs(t *testing.T) {
	t.Run("Should return the caller's saved jobs", func(t *testing.T) {
		repo := new(MockSavedJobRepo)
		uc := usecase.NewSavedJobUsecase(repo, new(MockJobRepo))

		repo.On("FetchByUser", mock.Anything, "cand1").
			Return([]domain.SavedJob{{JobID: "j1"}, {JobID: "j2"}}, nil)

		saved, err := uc.ListSavedJobs(authCtx("cand1", domain.RoleCandidate))
		assert.NoError(t, err)
		assert.Len(t, saved, 2)
	})

	t.Run("Recruiters are rejected", func(t *testing.T) {
		uc := usecase.NewSavedJobUsecase(new(MockSavedJobRepo), new(MockJobRepo))
		_, err := uc.ListSavedJobs(authCtx("rec1", domain.RoleRecruiter))
		assert.Error(t, err)
	})
}
