package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lumistudy/lumistudy-backend/internal/db"
	"github.com/lumistudy/lumistudy-backend/internal/handlers"
	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/middleware"
	"github.com/lumistudy/lumistudy-backend/internal/observability"
	"github.com/lumistudy/lumistudy-backend/internal/repos"
	"github.com/lumistudy/lumistudy-backend/internal/scheduler"
	"github.com/lumistudy/lumistudy-backend/internal/server"
	"github.com/lumistudy/lumistudy-backend/internal/services"
	"github.com/lumistudy/lumistudy-backend/internal/utils"
)

const serviceName = "lumistudy-backend"

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownTracing := observability.InitTracing(context.Background(), log, serviceName)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	port := utils.GetEnv("PORT", "8080", log)
	allowOrigins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173", log), ",")

	// Scheduler config
	schedulerCfg := scheduler.DefaultConfig()
	if path := utils.GetEnv("SCHEDULER_CONFIG_PATH", "", log); path != "" {
		schedulerCfg, err = scheduler.LoadConfig(path)
		if err != nil {
			log.Error("Failed to load scheduler config", "path", path, "error", err)
			os.Exit(1)
		}
	}

	// Database
	dbService, err := db.NewService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	gdb := dbService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(gdb, log)
	userTokenRepo := repos.NewUserTokenRepo(gdb, log)
	goalRepo := repos.NewLearningGoalRepo(gdb, log)
	commitmentRepo := repos.NewFixedCommitmentRepo(gdb, log)
	sessionRepo := repos.NewStudySessionRepo(gdb, log)
	breakRepo := repos.NewPlanBreakRepo(gdb, log)
	taskRepo := repos.NewTaskRepo(gdb, log)

	// Plan cache (optional, redis-backed)
	planCache, err := services.NewPlanCache(log)
	if err != nil {
		log.Warn("Plan cache unavailable, continuing without it", "error", err)
		planCache = nil
	}

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(gdb, log, userRepo, userTokenRepo, jwtSecretKey,
		time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(gdb, log, userRepo)
	goalService := services.NewGoalService(gdb, log, goalRepo)
	commitmentService := services.NewCommitmentService(gdb, log, commitmentRepo)
	scheduleService := services.NewScheduleService(gdb, log, goalRepo, commitmentRepo, sessionRepo, breakRepo, planCache, schedulerCfg)
	taskService := services.NewTaskService(gdb, log, taskRepo, goalRepo, schedulerCfg)

	// Handlers
	log.Info("Setting up Handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	goalHandler := handlers.NewGoalHandler(goalService)
	commitmentHandler := handlers.NewCommitmentHandler(commitmentService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		ServiceName:       serviceName,
		AllowOrigins:      allowOrigins,
		AuthHandler:       authHandler,
		AuthMiddleware:    authMiddleware,
		UserHandler:       userHandler,
		GoalHandler:       goalHandler,
		CommitmentHandler: commitmentHandler,
		ScheduleHandler:   scheduleHandler,
		TaskHandler:       taskHandler,
	})

	log.Info("Starting server...", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
