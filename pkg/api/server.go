package api

import (
	"context"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/trendscope/trendscope/pkg/audit"
	"github.com/trendscope/trendscope/pkg/config"
	"github.com/trendscope/trendscope/pkg/database"
	"github.com/trendscope/trendscope/pkg/events"
	"github.com/trendscope/trendscope/pkg/services"
)

// Server is the HTTP API surface: audit orchestration, profile and
// competitor views, workflow launches, trend results, and the realtime
// WebSocket endpoint.
type Server struct {
	cfg          *config.Config
	dbClient     *database.Client
	orchestrator *audit.Orchestrator
	executions   *services.ExecutionService
	auditLogs    *services.AuditLogService
	metrics      *services.MetricService
	profiles     *services.ProfileService
	competitors  *services.CompetitorService
	articles     *services.ArticleService
	trends       *services.TrendService
	connManager  *events.ConnectionManager
	logger       *slog.Logger

	echo *echo.Echo
	http *http.Server
}

// Deps bundles the server's collaborators.
type Deps struct {
	DBClient     *database.Client
	Orchestrator *audit.Orchestrator
	Executions   *services.ExecutionService
	AuditLogs    *services.AuditLogService
	Metrics      *services.MetricService
	Profiles     *services.ProfileService
	Competitors  *services.CompetitorService
	Articles     *services.ArticleService
	Trends       *services.TrendService
	ConnManager  *events.ConnectionManager
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(cfg *config.Config, deps Deps, logger *slog.Logger) *Server {
	s := &Server{
		cfg:          cfg,
		dbClient:     deps.DBClient,
		orchestrator: deps.Orchestrator,
		executions:   deps.Executions,
		auditLogs:    deps.AuditLogs,
		metrics:      deps.Metrics,
		profiles:     deps.Profiles,
		competitors:  deps.Competitors,
		articles:     deps.Articles,
		trends:       deps.Trends,
		connManager:  deps.ConnManager,
		logger:       logger.With("component", "http_server"),
	}

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(securityHeaders())
	e.Use(requestLogger(s.logger))

	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)

	v1 := e.Group("/api/v1")

	sites := v1.Group("/sites")
	sites.POST("/analyze", s.analyzeSiteHandler)
	sites.GET("/:domain", s.getSiteProfileHandler)
	sites.GET("/:domain/history", s.getProfileHistoryHandler)
	sites.GET("/:domain/audit", s.auditSiteHandler)
	sites.GET("/:domain/audit/status/:execution_id", s.siteAuditStatusHandler)

	v1.GET("/audit/status/:execution_id", s.auditStatusHandler)
	v1.POST("/audit/:execution_id/cancel", s.cancelAuditHandler)

	competitors := v1.Group("/competitors")
	competitors.POST("/search", s.searchCompetitorsHandler)
	competitors.GET("/:domain", s.listCompetitorsHandler)
	competitors.POST("/:domain/validate", s.validateCompetitorHandler)

	v1.POST("/scraping/scrape", s.scrapeHandler)

	v1.POST("/articles/training/analyze", s.trainingAnalyzeHandler)

	trends := v1.Group("/trends")
	trends.POST("/analyze", s.analyzeTrendsHandler)
	trends.GET("/topics", s.getTopicsHandler)

	v1.GET("/executions/:execution_id", s.getExecutionHandler)

	s.echo = e
	return s
}

// Handler exposes the routed handler for embedding in test servers.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start runs the HTTP server, blocking until it stops.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
