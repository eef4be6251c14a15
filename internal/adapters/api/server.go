// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatheractivity.app/internal/core/dashboard"
	"weatheractivity.app/internal/core/weather"
	"weatheractivity.app/internal/ports"
	"weatheractivity.app/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	weatherUseCase   WeatherUseCase
	favoritesUseCase FavoritesUseCase
	dashboardUseCase DashboardUseCase
	healthChecker    ports.SystemHealthChecker
	metricsCollector MetricsCollector
}

// Use case interfaces that the HTTP adapter depends on
type WeatherUseCase interface {
	CheckConfigured() error
	Lookup(ctx context.Context, request weather.LookupRequest) (*weather.Snapshot, error)
}

type FavoritesUseCase interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, location string) ([]string, error)
	Remove(ctx context.Context, location string) ([]string, error)
	Contains(ctx context.Context, location string) (bool, error)
}

type DashboardUseCase interface {
	Home(ctx context.Context) *dashboard.View
	Search(ctx context.Context, location string) *dashboard.View
	Locate(ctx context.Context) *dashboard.View
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
	RecordSuggestion(rule string)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	WeatherUseCase      WeatherUseCase
	FavoritesUseCase    FavoritesUseCase
	DashboardUseCase    DashboardUseCase
	SystemHealthChecker ports.SystemHealthChecker
	MetricsCollector    MetricsCollector
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	RegisterValidators()

	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.Default()
	router.Use(requestIDMiddleware())
	router.SetHTMLTemplate(tmpl)

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		weatherUseCase:   opts.WeatherUseCase,
		favoritesUseCase: opts.FavoritesUseCase,
		dashboardUseCase: opts.DashboardUseCase,
		healthChecker:    opts.SystemHealthChecker,
		metricsCollector: opts.MetricsCollector,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.FavoritesUseCase == nil {
		return errors.NewValidationError("favorites use case is required")
	}
	if opts.DashboardUseCase == nil {
		return errors.NewValidationError("dashboard use case is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/activity", s.getActivity)
		api.GET("/favorites", s.listFavorites)
		api.POST("/favorites", s.addFavorite)
		api.DELETE("/favorites/:location", s.removeFavorite)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/", s.showDashboard)
	s.router.POST("/favorites", s.saveFavoriteForm)
	s.router.POST("/favorites/remove", s.removeFavoriteForm)

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
