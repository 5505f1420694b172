package usecase_test

import (
	"context"
	"testing"

	"hirelens-backend/internal/domain"
	"hirelens-backend/internal/usecase"
	"hirelens-backend/pkg/apperror"
	"hirelens-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	t.Run("Should always create candidates regardless of input", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockTokenService))

		mockRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleCandidate && u.Email == "alice@example.com"
		})).Return(nil)

		user, err := uc.Register(context.Background(), "Alice", "  ALICE@example.com ", "supersecret")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleCandidate, user.Role)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEmpty(t, user.PasswordHash)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject short passwords", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), new(MockTokenService))
		_, err := uc.Register(context.Background(), "Alice", "alice@example.com", "short")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("Should conflict on taken email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockTokenService))

		mockRepo.On("GetByEmail", mock.Anything, "alice@example.com").
			Return(&domain.User{ID: "u1", Email: "alice@example.com"}, nil)

		_, err := uc.Register(context.Background(), "Alice", "alice@example.com", "supersecret")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	stored := &domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: string(hash), Role: domain.RoleCandidate}

	t.Run("Should issue and persist a token pair", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockTokens := new(MockTokenService)
		uc := usecase.NewAuthUsecase(mockRepo, mockTokens)

		mockRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
		mockTokens.On("GenerateAccessToken", "u1").Return("access", nil)
		mockTokens.On("GenerateRefreshToken", "u1").Return("refresh", nil)
		mockRepo.On("UpdateRefreshToken", mock.Anything, "u1", "refresh").Return(nil)

		user, pair, err := uc.Login(context.Background(), "alice@example.com", "supersecret")
		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "access", pair.AccessToken)
		assert.Equal(t, "refresh", pair.RefreshToken)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should return 404 for unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockTokenService))

		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, _, err := uc.Login(context.Background(), "ghost@example.com", "whatever")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should return 401 for wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockTokenService))

		mockRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "alice@example.com", "wrongpass")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
	})
}

func TestRefreshRotation(t *testing.T) {
	t.Run("Should reject a refresh token that is not the stored one", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockTokens := new(MockTokenService)
		uc := usecase.NewAuthUsecase(mockRepo, mockTokens)

		mockTokens.On("ParseRefreshToken", "old-token").Return(&token.Claims{UserID: "u1"}, nil)
		mockRepo.On("GetByID", mock.Anything, "u1").
			Return(&domain.User{ID: "u1", RefreshToken: "current-token"}, nil)

		_, err := uc.Refresh(context.Background(), "old-token")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not valid")
	})

	t.Run("Should rotate when the stored token matches", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockTokens := new(MockTokenService)
		uc := usecase.NewAuthUsecase(mockRepo, mockTokens)

		mockTokens.On("ParseRefreshToken", "current-token").Return(&token.Claims{UserID: "u1"}, nil)
		mockRepo.On("GetByID", mock.Anything, "u1").
			Return(&domain.User{ID: "u1", RefreshToken: "current-token"}, nil)
		mockTokens.On("GenerateAccessToken", "u1").Return("access2", nil)
		mockTokens.On("GenerateRefreshToken", "u1").Return("refresh2", nil)
		mockRepo.On("UpdateRefreshToken", mock.Anything, "u1", "refresh2").Return(nil)

		pair, err := uc.Refresh(context.Background(), "current-token")
		assert.NoError(t, err)
		assert.Equal(t, "refresh2", pair.RefreshToken)
		mockRepo.AssertExpectations(t)
	})
}

func TestChangePassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)

	t.Run("Should reject wrong old password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockTokenService))

		mockRepo.On("GetByID", mock.Anything, "u1").
			Return(&domain.User{ID: "u1", PasswordHash: string(hash)}, nil)

		err := uc.ChangePassword(context.Background(), "u1", "notit", "newpassword")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid old password")
	})

	t.Run("Should reject reusing the old password", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), new(MockTokenService))
		err := uc.ChangePassword(context.Background(), "u1", "samepassword", "samepassword")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "different")
	})
}
