package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/lumistudy/lumistudy-backend/internal/handlers"
	"github.com/lumistudy/lumistudy-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName       string
	AllowOrigins      []string
	AuthHandler       *handlers.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	UserHandler       *handlers.UserHandler
	GoalHandler       *handlers.GoalHandler
	CommitmentHandler *handlers.CommitmentHandler
	ScheduleHandler   *handlers.ScheduleHandler
	TaskHandler       *handlers.TaskHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Refresh-Token"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)

	// Protected
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	// Learning goals
	protected.GET("/goals", cfg.GoalHandler.List)
	protected.POST("/goals", cfg.GoalHandler.Create)
	protected.PUT("/goals/:id", cfg.GoalHandler.Update)
	protected.DELETE("/goals/:id", cfg.GoalHandler.Delete)
	// Fixed commitments
	protected.GET("/commitments", cfg.CommitmentHandler.List)
	protected.POST("/commitments", cfg.CommitmentHandler.Create)
	protected.DELETE("/commitments/:id", cfg.CommitmentHandler.Delete)
	// Daily plans
	protected.POST("/schedule/generate", cfg.ScheduleHandler.Generate)
	protected.GET("/schedule/:date", cfg.ScheduleHandler.Get)
	// Weekly tasks
	protected.GET("/tasks", cfg.TaskHandler.List)
	protected.POST("/tasks", cfg.TaskHandler.Create)
	protected.DELETE("/tasks/:id", cfg.TaskHandler.Delete)
	protected.POST("/tasks/generate", cfg.TaskHandler.GenerateWeek)

	return router
}
