package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/apperror"
	"hirelens-backend/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenService abstracts pkg/token for the usecase so tests can stub it.
type TokenService interface {
	GenerateAccessToken(userID string) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	ParseRefreshToken(tokenString string) (*token.Claims, error)
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   TokenService
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens TokenService) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" {
		return nil, apperror.BadRequest("Name and email are required")
	}
	if len(password) < 8 {
		return nil, apperror.BadRequest("Password must be at least 8 characters")
	}

	if existing, _ := u.userRepo.GetByEmail(ctx, email); existing != nil {
		return nil, apperror.Conflict("User with email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		// recruiter and admin are never self-assignable; promotion goes
		// through the recruiter request workflow
		Role:      domain.RoleCandidate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("User with email already exists")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, *domain.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("User does not exist")
		}
		return nil, nil, apperror.Internal(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, apperror.Unauthorized("Invalid credentials")
	}

	pair, err := u.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := u.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired refresh token")
	}

	// Rotation: only the most recently issued refresh token is accepted
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, apperror.Unauthorized("Refresh token is not valid")
	}

	return u.issueTokens(ctx, user.ID)
}

func (u *authUsecase) issueTokens(ctx context.Context, userID string) (*domain.TokenPair, error) {
	access, err := u.tokens.GenerateAccessToken(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	refresh, err := u.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := u.userRepo.UpdateRefreshToken(ctx, userID, refresh); err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID string) error {
	if err := u.userRepo.UpdateRefreshToken(ctx, userID, ""); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apperror.BadRequest("Old and new password are required")
	}
	if oldPassword == newPassword {
		return apperror.BadRequest("New password must be different from the old password")
	}
	if len(newPassword) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.NotFound("User not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return apperror.BadRequest("Invalid old password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) UpdateAccount(ctx context.Context, userID string, name, email *string) (*domain.User, error) {
	if name == nil && email == nil {
		return nil, apperror.BadRequest("At least one of name or email is required")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperror.BadRequest("Name cannot be empty")
		}
		user.Name = trimmed
	}
	if email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*email))
		if normalized == "" {
			return nil, apperror.BadRequest("Email cannot be empty")
		}
		if normalized != user.Email {
			if existing, _ := u.userRepo.GetByEmail(ctx, normalized); existing != nil {
				return nil, apperror.Conflict("Email is already in use")
			}
			user.Email = normalized
		}
	}

	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Email is already in use")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
