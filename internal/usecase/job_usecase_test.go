package usecase_test

import (
	"context"
	"strings"
	"testing"

	"hirelens-backend/internal/domain"
	"hirelens-backend/internal/usecase"
	"hirelens-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validJob() *domain.Job {
	return &domain.Job{
		Title:       "Backend Engineer",
		CompanyName: "Acme Corp",
		Description: "Build services",
		Location:    "Berlin",
	}
}

func TestCreateJob(t *testing.T) {
	t.Run("Should reject non-recruiters", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		_, _, err := uc.CreateJob(authCtx("u1", domain.RoleCandidate), validJob())
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("Should fail safe without a role in context", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		_, _, err := uc.CreateJob(context.Background(), validJob())
		assert.Error(t, err)
	})

	t.Run("Should derive a frozen slug ending in the job id", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		job, path, err := uc.CreateJob(authCtx("rec1", domain.RoleRecruiter), validJob())
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(job.Slug, "backend-engineer-at-acme-corp-in-berlin-"))
		assert.True(t, strings.HasSuffix(job.Slug, job.ID))
		assert.Equal(t, "/jobs/"+job.Slug, path)
		assert.True(t, job.IsActive)
		assert.Equal(t, "rec1", job.CreatedBy)
		assert.Equal(t, "Full-time", job.JobType)
	})

	t.Run("Should slot remote into the slug when location is empty", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		j := validJob()
		j.Location = "Remote"
		job, _, err := uc.CreateJob(authCtx("rec1", domain.RoleRecruiter), j)
		assert.NoError(t, err)
		assert.Contains(t, job.Slug, "-in-remote-")
	})

	t.Run("Should reject an unknown job type", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		j := validJob()
		j.JobType = "Gig"
		_, _, err := uc.CreateJob(authCtx("rec1", domain.RoleRecruiter), j)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid job type")
	})

	t.Run("Should reject inverted salary range", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		j := validJob()
		min, max := 90000.0, 50000.0
		j.SalaryMin, j.SalaryMax = &min, &max
		_, _, err := uc.CreateJob(authCtx("rec1", domain.RoleRecruiter), j)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "salaryMax")
	})
}

func TestListJobs(t *testing.T) {
	t.Run("Should clamp page and limit", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		// limit above max gets clamped to 50; page below 1 becomes 1
		mockRepo.On("FetchActive", mock.Anything, domain.JobFilter{}, 50, 0).
			Return([]domain.Job{}, int64(0), nil)

		result, err := uc.ListJobs(context.Background(), domain.JobFilter{}, -3, 999)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 50, result.Limit)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject invalid job type filter", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		_, err := uc.ListJobs(context.Background(), domain.JobFilter{JobType: "Gig"}, 1, 10)
		assert.Error(t, err)
	})

	t.Run("Empty result is a normal page", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("FetchActive", mock.Anything, mock.Anything, 10, 0).
			Return([]domain.Job{}, int64(0), nil)

		result, err := uc.ListJobs(context.Background(), domain.JobFilter{}, 1, 10)
		assert.NoError(t, err)
		assert.Empty(t, result.Results)
		assert.Equal(t, int64(0), result.Total)
	})
}

func TestGetJobBySlug(t *testing.T) {
	t.Run("Inactive job reads as not found", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("GetBySlug", mock.Anything, "some-slug").
			Return(&domain.Job{ID: "j1", Slug: "some-slug", IsActive: false}, nil)

		_, err := uc.GetJobBySlug(context.Background(), "some-slug")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestUpdateJob(t *testing.T) {
	owned := func() *domain.Job {
		return &domain.Job{ID: "j1", Title: "Old", CompanyName: "Acme Corp", Description: "d",
			Location: "Berlin", JobType: "Full-time", Slug: "old-at-acme-corp-in-berlin-j1",
			IsActive: true, CreatedBy: "rec1"}
	}

	t.Run("Should forbid non-owners", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, "j1").Return(owned(), nil)

		title := "New Title"
		_, err := uc.UpdateJob(authCtx("rec2", domain.RoleRecruiter), "j1", domain.JobPatch{Title: &title})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("Should keep the slug when patchable fields change", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, "j1").Return(owned(), nil)
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		title := "Entirely New Title"
		job, err := uc.UpdateJob(authCtx("rec1", domain.RoleRecruiter), "j1", domain.JobPatch{Title: &title})
		assert.NoError(t, err)
		assert.Equal(t, "Entirely New Title", job.Title)
		assert.Equal(t, "old-at-acme-corp-in-berlin-j1", job.Slug)
	})

	t.Run("Should re-validate the merged salary range", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		existing := owned()
		min := 80000.0
		existing.SalaryMin = &min
		mockRepo.On("GetByID", mock.Anything, "j1").Return(existing, nil)

		max := 40000.0
		_, err := uc.UpdateJob(authCtx("rec1", domain.RoleRecruiter), "j1", domain.JobPatch{SalaryMax: &max})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "salaryMax")
	})
}

func TestSetActive(t *testing.T) {
	t.Run("Setting the current state is a no-op success", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, "j1").
			Return(&domain.Job{ID: "j1", IsActive: true, CreatedBy: "rec1"}, nil)

		job, err := uc.SetActive(authCtx("rec1", domain.RoleRecruiter), "j1", true)
		assert.NoError(t, err)
		assert.True(t, job.IsActive)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestDeleteJob(t *testing.T) {
	t.Run("Owners cannot delete, only admins", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		err := uc.DeleteJob(authCtx("rec1", domain.RoleRecruiter), "j1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("Admins can delete", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("Delete", mock.Anything, "j1").Return(nil)

		err := uc.DeleteJob(authCtx("admin1", domain.RoleAdmin), "j1")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
