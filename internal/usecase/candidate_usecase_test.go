package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"hirelens-backend/internal/domain"
	"hirelens-backend/internal/usecase"
	"hirelens-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strptr(s string) *string { return &s }

func TestProfileOwnership(t *testing.T) {
	t.Run("Should refuse to read another user's profile", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockResumeStorage))

		_, err := uc.GetProfile(authCtx("cand1", domain.RoleCandidate), "cand2")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		assert.Contains(t, err.Error(), "your own profile")
		repo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})

	t.Run("Should fail safe without an authenticated caller", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(new(MockCandidateRepo), new(MockResumeStorage))
		_, err := uc.GetProfile(context.Background(), "cand1")
		assert.Error(t, err)
	})
}

func TestCreateOrUpdateProfile(t *testing.T) {
	t.Run("First write creates the profile and reports created", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockResumeStorage))

		repo.On("GetByUserID", mock.Anything, "cand1").Return(nil, domain.ErrNotFound)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.CandidateProfile) bool {
			return p.UserID == "cand1" && p.Phone == "+49 151 000" && p.ID != ""
		})).Return(nil)

		profile, created, err := uc.CreateOrUpdateProfile(authCtx("cand1", domain.RoleCandidate), "cand1",
			domain.ProfileFields{Phone: strptr("  +49 151 000  ")})
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "+49 151 000", profile.Phone)
		assert.NotNil(t, profile.Experience)
		assert.NotNil(t, profile.Education)
	})

	t.Run("Later writes shallow-merge only the provided fields", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockResumeStorage))

		existing := &domain.CandidateProfile{ID: "p1", UserID: "cand1", Phone: "old", Summary: "keep me"}
		repo.On("GetByUserID", mock.Anything, "cand1").Return(existing, nil)
		repo.On("UpdateFields", mock.Anything, mock.Anything).Return(nil)

		profile, created, err := uc.CreateOrUpdateProfile(authCtx("cand1", domain.RoleCandidate), "cand1",
			domain.ProfileFields{Phone: strptr("new")})
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "new", profile.Phone)
		assert.Equal(t, "keep me", profile.Summary)
	})

	t.Run("Duplicate create race conflicts", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockResumeStorage))

		repo.On("GetByUserID", mock.Anything, "cand1").Return(nil, domain.ErrNotFound)
		repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

		_, _, err := uc.CreateOrUpdateProfile(authCtx("cand1", domain.RoleCandidate), "cand1", domain.ProfileFields{})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})
}

func TestExperience(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Adding requires an existing profile", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockResumeStorage))

		repo.On("GetByUserID", mock.Anything, "cand1").Return(nil, domain.ErrNotFound)

		_, err := uc.AddExperience(authCtx("cand1", domain.RoleCandidate), "cand1", domain.Experience{
			Company: "Acme", Role: "Engineer", Description: "Built things", StartDate: start,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Create profile first")
	})

	t.Run("End date before start date is rejected", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockResumeStorage))

		repo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: "p1", UserID: "cand1"}, nil)

		end := start.AddDate(-1, 0, 0)
		_, err := uc.AddExperience(authCtx("cand1", domain.RoleCandidate), "cand1", domain.Experience{
			Company: "Acme", Role: "Engineer", Description: "Built things", StartDate: start, EndDate: &end,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "before start date")
		repo.AssertNotCalled(t, "AddExperience", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty patch is rejected before any lookup", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockResumeStorage))

		_, err := uc.UpdateExperience(authCtx("cand1", domain.RoleCandidate), "cand1", "e1", domain.ExperiencePatch{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "At least one field is required")
		repo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})

	t.Run("Entry ids from other profiles do not resolve", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockResumeStorage))

		repo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: "p1", UserID: "cand1", Experience: []domain.Experience{{ID: "mine"}}}, nil)

		_, err := uc.UpdateExperience(authCtx("cand1", domain.RoleCandidate), "cand1", "someone-elses",
			domain.ExperiencePatch{Role: strptr("Staff Engineer")})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestSkills(t *testing.T) {
	t.Run("Merging dedupes against stored and request skills, keeping order", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockResumeStorage))

		repo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: "p1", UserID: "cand1", Skills: []string{"Go", "SQL"}}, nil)
		repo.On("SetSkills", mock.Anything, "p1", []string{"Go", "SQL", "Redis", "Docker"}).Return(nil)

		skills, err := uc.AddSkills(authCtx("cand1", domain.RoleCandidate), "cand1",
			[]string{" Redis ", "Go", "Docker", "Redis"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Go", "SQL", "Redis", "Docker"}, skills)
		repo.AssertExpectations(t)
	})

	t.Run("Blank entries are rejected", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(new(MockCandidateRepo), new(MockResumeStorage))
		_, err := uc.AddSkills(authCtx("cand1", domain.RoleCandidate), "cand1", []string{"Go", "   "})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "non-empty string")
	})

	t.Run("Removing an absent skill is a no-op, not an error", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockResumeStorage))

		repo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: "p1", UserID: "cand1", Skills: []string{"Go"}}, nil)

		skills, err := uc.RemoveSkill(authCtx("cand1", domain.RoleCandidate), "cand1", "Rust")
		assert.NoError(t, err)
		assert.Equal(t, []string{"Go"}, skills)
		repo.AssertNotCalled(t, "SetSkills", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestResume(t *testing.T) {
	t.Run("Upload stores under the caller's key prefix and saves the URL", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		store := new(MockResumeStorage)
		uc := usecase.NewCandidateUsecase(repo, store)

		repo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: "p1", UserID: "cand1"}, nil)
		store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "resumes/cand1/") && strings.HasSuffix(key, ".pdf")
		}), mock.Anything, "application/pdf").Return("https://bucket/resumes/cand1/x.pdf", nil)
		repo.On("SetResumeURL", mock.Anything, "p1", "https://bucket/resumes/cand1/x.pdf").Return(nil)

		url, err := uc.UploadResume(authCtx("cand1", domain.RoleCandidate), "cand1",
			"CV Final.PDF", "application/pdf", strings.NewReader("%PDF-"))
		assert.NoError(t, err)
		assert.Equal(t, "https://bucket/resumes/cand1/x.pdf", url)
		store.AssertExpectations(t)
	})

	t.Run("Only pdf, doc and docx are accepted", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		store := new(MockResumeStorage)
		uc := usecase.NewCandidateUsecase(repo, store)

		repo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: "p1", UserID: "cand1"}, nil)

		_, err := uc.UploadResume(authCtx("cand1", domain.RoleCandidate), "cand1",
			"resume.exe", "application/octet-stream", strings.NewReader("MZ"))
		assert.Error(t, err)
		store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Deleting without a resume on file is a bad request", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockResumeStorage))

		repo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: "p1", UserID: "cand1"}, nil)

		err := uc.DeleteResume(authCtx("cand1", domain.RoleCandidate), "cand1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No resume file found to delete")
	})

	t.Run("Object deletion failure does not block clearing the reference", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		store := new(MockResumeStorage)
		uc := usecase.NewCandidateUsecase(repo, store)

		repo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: "p1", UserID: "cand1", ResumeURL: "https://bucket/r.pdf"}, nil)
		store.On("Delete", mock.Anything, "https://bucket/r.pdf").Return(assert.AnError)
		repo.On("SetResumeURL", mock.Anything, "p1", "").Return(nil)

		err := uc.DeleteResume(authCtx("cand1", domain.RoleCandidate), "cand1")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
