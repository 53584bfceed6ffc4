// VitaPulse Health Tracker API
//
// REST API for personal health metrics, diet tracking, and an AI assistant.
//
//	@title			VitaPulse Health Tracker API
//	@version		1.0
//	@description	Track health metrics, diet logs, and a wearable simulation feed, with an AI health assistant.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			metrics
//	@tag.description	Health metric recording and history endpoints
//
//	@tag.name			diet-logs
//	@tag.description	Meal and water tracking endpoints
//
//	@tag.name			simulation
//	@tag.description	Wearable data simulation endpoints
//
//	@tag.name			assistant
//	@tag.description	AI health assistant endpoints
//
//	@tag.name			community
//	@tag.description	Community message stream endpoints
//
//	@tag.name			admin
//	@tag.description	College administration endpoints
package main

import (
	"context"
	"net/http"

	"github.com/vitapulse/health-tracker/internal/api"
	"github.com/vitapulse/health-tracker/internal/api/handler"
	"github.com/vitapulse/health-tracker/internal/cache"
	"github.com/vitapulse/health-tracker/internal/config"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/internal/langfuse"
	"github.com/vitapulse/health-tracker/internal/llm"
	"github.com/vitapulse/health-tracker/internal/repository"
	"github.com/vitapulse/health-tracker/internal/seed"
	"github.com/vitapulse/health-tracker/internal/service"
	"github.com/vitapulse/health-tracker/internal/simulation"
	"github.com/vitapulse/health-tracker/internal/telemetry"
	"github.com/vitapulse/health-tracker/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New()
	if cfg.LogLevel == "debug" {
		log = logger.NewDevelopment()
	}
	defer log.Sync()

	langfuseCfg := langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}

	// Initialize tracing (no-op when Langfuse is not configured)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, langfuseCfg, "health-tracker-api")
	if err != nil {
		log.Fatalw("failed to initialize tracing", "error", err)
	}
	defer shutdownTracer(ctx)

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{}, &domain.MetricSample{}, &domain.DietLogEntry{},
		&domain.CommunityMessage{}, &domain.College{},
	); err != nil {
		log.Fatalw("failed to migrate database", "error", err)
	}
	log.Info("database migration completed")

	if cfg.Seed {
		log.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(db, log); err != nil {
			log.Fatalw("failed to seed database", "error", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	metricRepo := repository.NewMetricRepository(db)
	dietLogRepo := repository.NewDietLogRepository(db)
	resetRepo := repository.NewResetRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	collegeRepo := repository.NewCollegeRepository(db)

	// Redis latest-value cache (optional; nil when REDIS_URL is unset)
	latestCache, err := cache.NewLatestCache(cfg.RedisURL)
	if err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	if latestCache == nil {
		log.Info("redis not configured, latest-value cache disabled")
	}

	// Langfuse client (no-op when not configured)
	langfuseClient := langfuse.NewClient(langfuseCfg, log)

	// Gemini client (may be nil if not configured)
	geminiClient := llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	if geminiClient == nil {
		log.Warn("gemini api key not configured, assistant endpoint will be unavailable")
	}

	// System prompt, tunable via Langfuse with a built-in fallback
	systemPrompt := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.LangfusePromptName,
		PromptLabel: cfg.LangfusePromptLabel,
	}, service.DefaultSystemPrompt)

	// Initialize services
	userService := service.NewUserService(userRepo)
	metricService := service.NewMetricService(metricRepo, resetRepo, userRepo, latestCache, log)
	dietService := service.NewDietService(dietLogRepo, userRepo)
	assistantService := service.NewAssistantService(geminiClient, userRepo, langfuseClient, systemPrompt)
	communityService := service.NewCommunityService(communityRepo, userRepo)
	adminService := service.NewAdminService(collegeRepo, userRepo, metricRepo)

	// Wearable simulation replayer
	dataset, err := simulation.LoadDataset()
	if err != nil {
		log.Fatalw("failed to load simulation dataset", "error", err)
	}
	replayer := simulation.NewReplayer(metricService, dataset, cfg.SimulationInterval, log)
	defer replayer.Stop()

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	metricHandler := handler.NewMetricHandler(metricService)
	dietLogHandler := handler.NewDietLogHandler(dietService)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	simulationHandler := handler.NewSimulationHandler(userService, replayer)
	communityHandler := handler.NewCommunityHandler(communityService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Setup router
	router := api.NewRouter(
		log,
		userHandler,
		metricHandler,
		dietLogHandler,
		assistantHandler,
		simulationHandler,
		communityHandler,
		adminHandler,
	)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Infow("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalw("server failed", "error", err)
	}
}
