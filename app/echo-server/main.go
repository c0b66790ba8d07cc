package main

import (
	"context"
	"fmt"
	"insureAdvisor/app/echo-server/router"
	"insureAdvisor/business/activity"
	"insureAdvisor/business/contact"
	"insureAdvisor/business/dashboard"
	"insureAdvisor/business/premium"
	"insureAdvisor/business/recommend"
	"insureAdvisor/business/scoring"
	"insureAdvisor/business/transactions"
	userService "insureAdvisor/business/user"
	"insureAdvisor/internal/middleware"
	"insureAdvisor/internal/predictor"
	"insureAdvisor/internal/repository/catalog"
	"insureAdvisor/internal/repository/notification"
	psqlRepo "insureAdvisor/internal/repository/postgres"
	redisRepo "insureAdvisor/internal/repository/redis"
	"insureAdvisor/internal/rest"
	"insureAdvisor/pkg/config"
	"insureAdvisor/pkg/database"
	redisdb "insureAdvisor/pkg/database/redis"
	"insureAdvisor/pkg/logger"
	"insureAdvisor/pkg/metrics"
	"insureAdvisor/pkg/utils"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Insurance Advisor", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	prominenceModel, err := predictor.LoadLinear(cfg.Scoring.ModelPath)
	if err != nil {
		logger.Fatal("Failed to load prominence model", "error", err)
	}

	logger.Info("Prominence model loaded", "path", cfg.Scoring.ModelPath)

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	policyRepo := psqlRepo.NewPolicyRepository(db)
	recoRepo := psqlRepo.NewRecommendationRepository(db)
	txRepo := psqlRepo.NewTransactionRepository(db)
	activityRepo := psqlRepo.NewActivityRepository(db)
	inquiryRepo := psqlRepo.NewInquiryRepository(db)
	verificationRepo := redisRepo.NewVerificationRepository(redisClient)

	// Seed the policy catalog. A missing dataset is survivable; the matcher
	// reports an empty catalog instead.
	if cfg.Scoring.DatasetPath != "" {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := catalog.NewImporter(policyRepo).Seed(seedCtx, cfg.Scoring.DatasetPath); err != nil {
			logger.Warn("Policy catalog seeding failed", "error", err.Error())
		}
		cancel()
	}

	// Init service
	accountService := userService.NewUserService(userRepo, validate, mailjetEmail, verificationRepo, activityRepo)
	scoringService := scoring.NewScoringService(userRepo, prominenceModel)
	recommendService := recommend.NewRecommendService(policyRepo, recoRepo)
	premiumService := premium.NewPremiumService()
	txService := transactions.NewTransactionsService(txRepo)
	activityService := activity.NewActivityService(activityRepo)
	contactService := contact.NewContactService(inquiryRepo)
	dashboardService := dashboard.NewDashboardService(policyRepo, userRepo, txRepo)

	// Init handler
	userHandler := rest.NewUserHandler(accountService)
	scoringHandler := rest.NewScoringHandler(scoringService)
	recommendHandler := rest.NewRecommendHandler(recommendService)
	premiumHandler := rest.NewPremiumHandler(premiumService)
	txHandler := rest.NewTransactionsHandler(txService)
	activityHandler := rest.NewActivityHandler(activityService)
	contactHandler := rest.NewContactHandler(contactService)
	dashboardHandler := rest.NewDashboardHandler(dashboardService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/health", rest.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(userRepo)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupAuthRoutes(api, userHandler, authRequired)
	router.SetupScoringRoutes(api, scoringHandler, authRequired)
	router.SetupRecommendationRoutes(api, recommendHandler, authRequired)
	router.SetupPremiumRoutes(api, premiumHandler, authRequired)
	router.SetupTransactionRoutes(api, txHandler, authRequired)
	router.SetupActivityRoutes(api, activityHandler, authRequired)
	router.SetupContactRoutes(api, contactHandler, authRequired)
	router.SetupDashboardRoutes(api, dashboardHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
