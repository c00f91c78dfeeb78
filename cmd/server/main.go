package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"github.com/prajuktadey/storyweave-learn/internal/config"
	"github.com/prajuktadey/storyweave-learn/internal/delivery/websocket"
	"github.com/prajuktadey/storyweave-learn/internal/handler"
	"github.com/prajuktadey/storyweave-learn/internal/logger"
	"github.com/prajuktadey/storyweave-learn/internal/middleware"
	"github.com/prajuktadey/storyweave-learn/internal/service"
	"github.com/prajuktadey/storyweave-learn/pkg/ai"
)

func main() {
	// --- Configuration ---
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Setup ---
	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Logger initialized successfully", zap.String("logLevel", cfg.LogLevel))
	zap.L().Info("Configuration loaded", zap.String("generationMode", cfg.GenerationMode))

	// --- AI Client (только в remote режиме) ---
	var aiClient ai.Client
	if cfg.IsRemote() {
		aiClient, err = ai.NewClient(ai.Config{
			ClientType: cfg.AIClientType,
			APIKey:     cfg.AIAPIKey,
			BaseURL:    cfg.AIBaseURL,
			Model:      cfg.AIModel,
			Timeout:    cfg.AITimeout,
		})
		if err != nil {
			zap.L().Fatal("Failed to initialize AI client", zap.Error(err))
		}
		zap.L().Info("AI client initialized",
			zap.String("type", cfg.AIClientType),
			zap.String("model", cfg.AIModel))
	}

	// --- Dependency Injection ---
	hub := websocket.NewHub(log.Named("WebSocketHub"))
	hub.Start()
	notifier := websocket.NewHubNotifier(hub)

	characters, narrative, playlists := service.NewGenerationStrategies(cfg, aiClient, log)

	storySvc := service.NewStoryService(characters, narrative, notifier, log.Named("StoryService"), cfg.StoryDelay)
	playlistSvc := service.NewPlaylistService(playlists, notifier, log.Named("PlaylistService"), cfg.PlaylistDelay, nil)

	apiHandler := handler.New(storySvc, playlistSvc, hub.Handler(), log.Named("Handler"))

	// --- HTTP Server Setup (Gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(middleware.ZapLogger(log))
	router.Use(gin.Recovery())

	p := ginprometheus.NewPrometheus("gin")

	// Configure CORS Middleware
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
		zap.L().Info("CORSAllowedOrigins not set, allowing default", zap.String("origin", "http://localhost:3000"))
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Register Application Routes
	apiHandler.RegisterRoutes(router, cfg.ServerBasePath)

	// Prometheus middleware применяется после регистрации роутов
	p.Use(router)

	// --- Start HTTP Server ---
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}
