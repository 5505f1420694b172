package usecase_test

import (
	"context"
	"io"
	"time"

	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/token"

	"github.com/stretchr/testify/mock"
)

// authCtx builds a request context the way the auth middleware does.
func authCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	if role != "" {
		ctx = context.WithValue(ctx, domain.KeyUserRole, role)
	}
	return ctx
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdateRefreshToken(ctx context.Context, id, refreshToken string) error {
	return m.Called(ctx, id, refreshToken).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchActive(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchByCreator(ctx context.Context, creatorID string, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, creatorID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) CountByCreator(ctx context.Context, creatorID string) (int64, error) {
	args := m.Called(ctx, creatorID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}
func (m *MockCandidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockCandidateRepo) UpdateFields(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockCandidateRepo) SetSkills(ctx context.Context, profileID string, skills []string) error {
	return m.Called(ctx, profileID, skills).Error(0)
}
func (m *MockCandidateRepo) SetResumeURL(ctx context.Context, profileID string, resumeURL string) error {
	return m.Called(ctx, profileID, resumeURL).Error(0)
}
func (m *MockCandidateRepo) AddExperience(ctx context.Context, profileID string, exp *domain.Experience) error {
	return m.Called(ctx, profileID, exp).Error(0)
}
func (m *MockCandidateRepo) UpdateExperience(ctx context.Context, profileID string, exp *domain.Experience) error {
	return m.Called(ctx, profileID, exp).Error(0)
}
func (m *MockCandidateRepo) DeleteExperience(ctx context.Context, profileID, experienceID string) error {
	return m.Called(ctx, profileID, experienceID).Error(0)
}
func (m *MockCandidateRepo) AddEducation(ctx context.Context, profileID string, edu *domain.Education) error {
	return m.Called(ctx, profileID, edu).Error(0)
}
func (m *MockCandidateRepo) UpdateEducation(ctx context.Context, profileID string, edu *domain.Education) error {
	return m.Called(ctx, profileID, edu).Error(0)
}
func (m *MockCandidateRepo) DeleteEducation(ctx context.Context, profileID, educationID string) error {
	return m.Called(ctx, profileID, educationID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, candidateID, jobID string) (bool, error) {
	args := m.Called(ctx, candidateID, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) FetchByCandidate(ctx context.Context, candidateID string, limit, offset int) ([]domain.ApplicationWithJob, int64, error) {
	args := m.Called(ctx, candidateID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ApplicationWithJob), args.Get(1).(int64), args.Error(2)
}
func (m *MockApplicationRepo) FetchByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.ApplicationWithCandidate, int64, error) {
	args := m.Called(ctx, jobID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ApplicationWithCandidate), args.Get(1).(int64), args.Error(2)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockApplicationRepo) StatsByRecruiter(ctx context.Context, recruiterID string) (*domain.RecruiterStats, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterStats), args.Error(1)
}

type MockRecruiterRequestRepo struct {
	mock.Mock
}

func (m *MockRecruiterRequestRepo) Create(ctx context.Context, req *domain.RecruiterRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *MockRecruiterRequestRepo) GetByID(ctx context.Context, id string) (*domain.RecruiterRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterRequest), args.Error(1)
}
func (m *MockRecruiterRequestRepo) GetLatestByUser(ctx context.Context, userID string) (*domain.RecruiterRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterRequest), args.Error(1)
}
func (m *MockRecruiterRequestRepo) HasPending(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRecruiterRequestRepo) FetchPending(ctx context.Context) ([]domain.RecruiterRequestWithUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecruiterRequestWithUser), args.Error(1)
}
func (m *MockRecruiterRequestRepo) Decide(ctx context.Context, id, reviewerID, status string, reviewedAt time.Time) error {
	return m.Called(ctx, id, reviewerID, status, reviewedAt).Error(0)
}

type MockSavedJobRepo struct {
	mock.Mock
}

func (m *MockSavedJobRepo) Save(ctx context.Context, userID, jobID string) error {
	return m.Called(ctx, userID, jobID).Error(0)
}
func (m *MockSavedJobRepo) Remove(ctx context.Context, userID, jobID string) error {
	return m.Called(ctx, userID, jobID).Error(0)
}
func (m *MockSavedJobRepo) IsSaved(ctx context.Context, userID, jobID string) (bool, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *MockSavedJobRepo) FetchByUser(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedJob), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
func (m *MockTokenService) GenerateRefreshToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
func (m *MockTokenService) ParseRefreshToken(tokenString string) (*token.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.Claims), args.Error(1)
}

type MockResumeStorage struct {
	mock.Mock
}

func (m *MockResumeStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}
func (m *MockResumeStorage) Delete(ctx context.Context, fileURL string) error {
	return m.Called(ctx, fileURL).Error(0)
}
