package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hirelens-backend/config"
	_ "hirelens-backend/docs" // swagger docs registration
	v1 "hirelens-backend/internal/delivery/http/v1"
	"hirelens-backend/internal/repository/postgres"
	"hirelens-backend/internal/usecase"
	"hirelens-backend/pkg/database"
	"hirelens-backend/pkg/logger"
	"hirelens-backend/pkg/redis"
	"hirelens-backend/pkg/storage"
	"hirelens-backend/pkg/token"
	"hirelens-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           HireLens API
// @version         1.0
// @description     Job board backend: catalog, candidate profiles, applications, and recruiter onboarding.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting hirelens backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when unavailable)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Resume Storage
	resumeStore, err := storage.NewResumeStore(context.Background(), storage.Config{
		Provider:        storage.Provider(cfg.S3Provider),
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		WasabiEndpoint:  cfg.WasabiEndpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to configure resume storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	requestRepo := postgres.NewRecruiterRequestRepository(dbPool)
	savedJobRepo := postgres.NewSavedJobRepository(dbPool)

	// 7. Setup Tokens and UseCases
	tokens := token.NewManager(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Register(v)
	}

	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, resumeStore)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateRepo)
	requestUC := usecase.NewRecruiterRequestUsecase(requestRepo)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo)
	dashboardUC := usecase.NewDashboardUsecase(jobRepo, applicationRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:             authUC,
		JobUC:              jobUC,
		CandidateUC:        candidateUC,
		ApplicationUC:      applicationUC,
		RecruiterRequestUC: requestUC,
		SavedJobUC:         savedJobUC,
		DashboardUC:        dashboardUC,
		Tokens:             tokens,
		Config:             cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
