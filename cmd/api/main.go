// @title Health Screen API
// @version 1.0
// @description Campus health self-screening: survey scoring, dashboards and a health assistant.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "health-screen/cmd/api/docs"
	"health-screen/internal/adapter"
	"health-screen/internal/cache"
	"health-screen/internal/chatbot"
	"health-screen/internal/config"
	"health-screen/internal/database"
	"health-screen/internal/domain"
	"health-screen/internal/handler"
	"health-screen/internal/logger"
	"health-screen/internal/metrics"
	"health-screen/internal/middleware"
	"health-screen/internal/posture"
	"health-screen/internal/repository"
	"health-screen/internal/scoring"
	"health-screen/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	profile, err := scoring.ProfileByName(cfg.Scoring.Profile)
	if err != nil {
		appLogger.Fatal("Invalid scoring profile", zap.Error(err))
	}
	engine := scoring.NewEngine(profile)
	appLogger.Info("Scoring engine initialized", zap.String("profile", profile.Name))

	ctx := context.Background()

	// Connect to database
	db, err := database.Open(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional; without it results are not cached.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, running without cache", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	}

	var responder service.Responder
	if cfg.LLM.Enabled {
		model, err := chatbot.NewModel(cfg.LLM)
		if err != nil {
			appLogger.Warn("LLM unavailable, chat uses rule-based answers", zap.Error(err))
		} else {
			responder = chatbot.NewLLMResponder(model, cfg.LLM)
			appLogger.Info("LLM chat enabled", zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))
		}
	}

	appMetrics := metrics.New()

	// Initialize repositories
	txManager := repository.NewTransactionManagerAdapter(db)
	userRepository := repository.NewUserRepository(db)
	surveyRepository := repository.NewSurveyRepository(db)
	postureRepository := repository.NewPostureRepository(db)
	dashboardRepository := repository.NewDashboardRepository(db)

	// Initialize services
	authService, err := service.NewAuthService(userRepository, cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	userService := service.NewUserService(userRepository, txManager, cacheAdapter)
	resultCache := service.NewResultCacheService(cacheAdapter, cfg.Cache.ResultTTL)
	analysisService := service.NewAnalysisService(engine, surveyRepository, txManager, resultCache, cacheAdapter, appMetrics)
	dashboardService := service.NewDashboardService(dashboardRepository, cacheAdapter, cfg.Cache.DashboardTTL)
	chatService := service.NewChatService(responder, cfg.LLM, appMetrics)
	postureService := service.NewPostureService(postureRepository, posture.NewGenerator(cfg.Posture.SimulatorSeed))

	// Initialize handlers
	handlers := handler.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		User:      handler.NewUserHandler(userService),
		Survey:    handler.NewSurveyHandler(analysisService),
		Analysis:  handler.NewAnalysisHandler(analysisService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Chat:      handler.NewChatHandler(chatService),
		Posture:   handler.NewPostureHandler(postureService),
		Health:    handler.NewHealthHandler(db, cacheAdapter),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.WriteTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(middleware.RequestLogger(appMetrics))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(appMetrics.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, handlers, authService)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
