package middleware

import (
	"errors"
	"net/http"
	"strings"

	"hirelens-backend/internal/delivery/http/response"
	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates requests via a Bearer header or the
// accessToken cookie and loads the caller into the request context.
// The role is re-read from the database on every request: the token only
// proves identity, so a recruiter promotion takes effect without re-login.
func AuthMiddleware(tokens *token.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// 1. Try to get token from Header
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("accessToken")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or accessToken cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.ParseAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				response.Error(c, http.StatusUnauthorized, "Access token expired", nil)
			} else {
				response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			}
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			// Valid token for a user that no longer exists
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		role := user.Role
		if role == "" {
			role = domain.RoleCandidate
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), role)

		c.Next()
	}
}
