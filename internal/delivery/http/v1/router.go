package v1

import (
	"net/http"
	"time"

	"hirelens-backend/config"
	"hirelens-backend/internal/delivery/http/middleware"
	"hirelens-backend/internal/delivery/http/response"
	"hirelens-backend/internal/domain"
	"hirelens-backend/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC             domain.AuthUsecase
	JobUC              domain.JobUsecase
	CandidateUC        domain.CandidateUsecase
	ApplicationUC      domain.ApplicationUsecase
	RecruiterRequestUC domain.RecruiterRequestUsecase
	SavedJobUC         domain.SavedJobUsecase
	DashboardUC        domain.DashboardUsecase
	Tokens             *token.Manager
	Config             *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	loginLimiter := middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))
	uploadLimiter := middleware.RateLimitMiddleware(
		middleware.UploadRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.Config, loginLimiter)
		NewJobHandler(v1, protected, deps.JobUC)
		NewCandidateHandler(protected, deps.CandidateUC, uploadLimiter)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewRecruiterRequestHandler(protected, deps.RecruiterRequestUC)
		NewSavedJobHandler(protected, deps.SavedJobUC)
		NewDashboardHandler(protected, deps.DashboardUC)
	}

	return r
}
