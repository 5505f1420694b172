package v1

import (
	"net/http"
	"time"

	"hirelens-backend/config"
	"hirelens-backend/internal/delivery/http/response"
	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/apperror"
	"hirelens-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC: authUC,
		config: cfg,
	}

	// Public Routes
	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", loginLimiter, handler.Register)
		publicAuth.POST("/login", loginLimiter, handler.Login)
		publicAuth.POST("/refresh", handler.Refresh)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/logout", handler.Logout)
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.PATCH("/me", handler.UpdateAccount)
		protectedAuth.POST("/change-password", handler.ChangePassword)
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,no_emoji"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type UpdateAccountRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// setAuthCookies stores the pair as httpOnly cookies so browser clients
// never touch the tokens from JS; API clients use the JSON body instead.
func (h *AuthHandler) setAuthCookies(c *gin.Context, pair *domain.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	accessMaxAge := int(h.config.AccessTokenTTL / time.Second)
	refreshMaxAge := int(h.config.RefreshTokenTTL / time.Second)
	c.SetCookie("accessToken", pair.AccessToken, accessMaxAge, "/", "", h.config.CookieSecure, true)
	c.SetCookie("refreshToken", pair.RefreshToken, refreshMaxAge, "/", "", h.config.CookieSecure, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("accessToken", "", -1, "/", "", h.config.CookieSecure, true)
	c.SetCookie("refreshToken", "", -1, "/", "", h.config.CookieSecure, true)
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account. Every new account starts as a candidate.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	user, err := h.authUC.Register(c, req.Name, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", user)
}

// Login godoc
// @Summary      User Login
// @Description  Login with email and password, issuing an access/refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	user, pair, err := h.authUC.Login(c, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookies(c, pair)
	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// Refresh godoc
// @Summary      Refresh Tokens
// @Description  Exchange a valid refresh token for a new token pair (rotation)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        refresh  body      RefreshRequest  false  "Refresh token (falls back to refreshToken cookie)"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	_ = c.ShouldBindJSON(&req)

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		cookie, err := c.Cookie("refreshToken")
		if err == nil {
			refreshToken = cookie
		}
	}
	if refreshToken == "" {
		c.Error(apperror.Unauthorized("Refresh token required"))
		return
	}

	pair, err := h.authUC.Refresh(c, refreshToken)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookies(c, pair)
	response.Success(c, http.StatusOK, "Tokens refreshed", pair)
}

// Logout godoc
// @Summary      Logout
// @Description  Revoke the stored refresh token and clear auth cookies
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if err := h.authUC.Logout(c, userID); err != nil {
		c.Error(err)
		return
	}

	h.clearAuthCookies(c)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Current User
// @Description  Get the authenticated user's account
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}

// UpdateAccount godoc
// @Summary      Update Account
// @Description  Update the authenticated user's name and/or email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        account  body      UpdateAccountRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/me [patch]
// @Security     BearerAuth
func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.UpdateAccount(c, userID, req.Name, req.Email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account updated", user)
}

// ChangePassword godoc
// @Summary      Change Password
// @Description  Change the authenticated user's password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        password  body      ChangePasswordRequest  true  "Old and new password"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/change-password [post]
// @Security     BearerAuth
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.authUC.ChangePassword(c, userID, req.OldPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password changed", nil)
}
