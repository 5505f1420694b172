package usecase

import (
	"context"

	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/apperror"
)

// callerID resolves the authenticated caller from the request context.
// Works with both gin contexts (c.Set) and standard context.WithValue.
func callerID(ctx context.Context) (string, error) {
	id := domain.UserIDFromContext(ctx)
	if id == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return id, nil
}

// requireRole is the role gate: the caller's role must be in the
// operation's allow-list. Fails safe when no role is present at all.
func requireRole(ctx context.Context, allowed ...string) error {
	role := domain.RoleFromContext(ctx)
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}
	return apperror.Forbidden("You are not allowed to perform this action")
}
