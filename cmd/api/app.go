package main

import (
	"log/slog"

	"powdercast/internal/config"
	"powdercast/internal/forecast"
	"powdercast/internal/resort"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	catalog         *resort.Catalog
	forecastService forecast.Service
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Cors.AllowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))
	router.Use(requestMetrics())

	// Build the static resort catalog
	catalog, err := resort.DefaultCatalog()
	if err != nil {
		return nil, err
	}

	app := &App{
		router:          router,
		logger:          logger,
		catalog:         catalog,
		forecastService: forecast.NewForecastService(cfg, logger),
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
