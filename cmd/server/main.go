package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/miniactivity/server/internal/auth"
	"github.com/miniactivity/server/internal/handlers"
	"github.com/miniactivity/server/internal/middleware"
	"github.com/miniactivity/server/internal/repositories"
	"github.com/miniactivity/server/internal/services"
	"github.com/miniactivity/server/internal/validation"
	"github.com/miniactivity/server/pkg/config"
	"github.com/miniactivity/server/pkg/database"
	"github.com/miniactivity/server/pkg/logger"
)

func main() {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Load configuration; fails fast on missing JWT secret or bad expiry
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	tokens := auth.NewTokenManager(config.AppConfig.JWT.Secret, config.AppConfig.JWT.ExpiresIn)
	validator := validation.New()

	accountRepo := repositories.NewSQLiteAccountRepository(database.DB)
	eventRepo := repositories.NewSQLiteEventRepository(database.DB)
	tagRepo := repositories.NewSQLiteTagRepository(database.DB)

	authService := services.NewAuthService(accountRepo, tokens)
	eventService := services.NewEventService(eventRepo, tagRepo)
	tagService := services.NewTagService(tagRepo)
	exportService := services.NewExportService()
	githubService := services.NewGitHubService()

	// Initialize router
	router := gin.Default()

	// Request pipeline: correlation id, error formatting, identity resolution
	router.Use(middleware.CorrelationID())
	router.Use(middleware.ErrorFormatter())
	router.Use(middleware.Authenticate(tokens))

	// Setup routes
	setupRoutes(router, validator, authService, eventService, tagService, exportService, githubService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

func setupRoutes(router *gin.Engine, validator *validation.Validator,
	authService *services.AuthService, eventService *services.EventService,
	tagService *services.TagService, exportService *services.ExportService,
	githubService *services.GitHubService) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, githubService)
	eventHandler := handlers.NewEventHandler(eventService, exportService)
	tagHandler := handlers.NewTagHandler(tagService)
	healthHandler := handlers.NewHealthHandler()

	// Auth routes
	router.POST("/auth/register", middleware.ValidateBody[validation.RegisterRequest](validator), authHandler.Register)
	router.POST("/auth/login", middleware.ValidateBody[validation.LoginRequest](validator), authHandler.Login)
	router.GET("/auth/github", authHandler.GitHubLogin)
	router.GET("/auth/github/callback", authHandler.GitHubCallback)

	// Event routes
	events := router.Group("/events")
	{
		events.GET("", eventHandler.ListEvents)
		events.GET("/:id", eventHandler.GetEvent)
		events.POST("",
			middleware.ValidateBody[validation.CreateEventRequest](validator),
			middleware.RequireAuth(),
			eventHandler.CreateEvent)
		events.PATCH("/:id",
			middleware.ValidateBody[validation.UpdateEventRequest](validator),
			middleware.RequireOwnership(eventHandler.ResolveOwner),
			eventHandler.UpdateEvent)
		events.DELETE("/:id",
			middleware.RequireOwnership(eventHandler.ResolveOwner),
			eventHandler.DeleteEvent)

		// Anyone may RSVP; only the creator manages the list
		events.POST("/:id/attendees",
			middleware.ValidateBody[validation.AddAttendeeRequest](validator),
			eventHandler.AddAttendee)
		events.DELETE("/:id/attendees/:attendee_id",
			middleware.RequireOwnership(eventHandler.ResolveOwner),
			eventHandler.RemoveAttendee)
		events.GET("/:id/attendees/export",
			middleware.RequireOwnership(eventHandler.ResolveOwner),
			eventHandler.ExportAttendees)
	}

	// Tag routes
	tags := router.Group("/tags")
	{
		tags.GET("", tagHandler.ListTags)
		tags.GET("/search", tagHandler.SearchTags)
		tags.POST("",
			middleware.ValidateBody[validation.CreateTagRequest](validator),
			middleware.RequireAuth(),
			tagHandler.CreateTag)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}
