// TrendScope server — provides the HTTP API, runs audit orchestration,
// and executes the trend analysis pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/trendscope/trendscope/pkg/api"
	"github.com/trendscope/trendscope/pkg/audit"
	"github.com/trendscope/trendscope/pkg/cleanup"
	"github.com/trendscope/trendscope/pkg/collab"
	"github.com/trendscope/trendscope/pkg/compute"
	"github.com/trendscope/trendscope/pkg/config"
	"github.com/trendscope/trendscope/pkg/database"
	"github.com/trendscope/trendscope/pkg/embeddings"
	"github.com/trendscope/trendscope/pkg/events"
	"github.com/trendscope/trendscope/pkg/llm"
	"github.com/trendscope/trendscope/pkg/services"
	"github.com/trendscope/trendscope/pkg/trends"
	"github.com/trendscope/trendscope/pkg/vectorstore"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func collabConfig(cfg config.CollabConfig, baseURL string) collab.ClientConfig {
	return collab.ClientConfig{
		BaseURL:     baseURL,
		Timeout:     cfg.Timeout,
		MaxRetries:  cfg.RetryAttempts,
		MinInterval: cfg.RetryMinInterval,
		MaxInterval: cfg.RetryMaxInterval,
	}
}

// pipelineConfig maps the YAML-facing trends section onto the pipeline's
// own config types.
func pipelineConfig(cfg *config.Config) trends.PipelineConfig {
	t := cfg.Trends
	return trends.PipelineConfig{
		Clusterer: trends.ClustererConfig{
			MinArticles:        t.MinArticles,
			MaxArticles:        t.MaxArticles,
			MinClusterSize:     t.MinClusterSize,
			ReducedDims:        t.ReducedDims,
			NeighborCount:      t.NeighborCount,
			TopTerms:           t.TopTerms,
			Seed:               t.Seed,
			NormalizeCentroids: t.NormalizeEmbeddings,
		},
		Temporal: trends.TemporalConfig{
			WindowsDays:    t.WindowsDays,
			HistogramBins:  t.HistogramBins,
			DriftThreshold: t.DriftThreshold,
			Weights: trends.PotentialWeights{
				Velocity:  t.PotentialWeights.Velocity,
				Freshness: t.PotentialWeights.Freshness,
				Diversity: t.PotentialWeights.Diversity,
				Cohesion:  t.PotentialWeights.Cohesion,
				Size:      t.PotentialWeights.Size,
			},
		},
		Gaps: trends.GapConfig{
			Weights: trends.GapWeights{
				CoverageGap:        t.GapWeights.CoverageGap,
				TopicPotential:     t.GapWeights.TopicPotential,
				Velocity:           t.GapWeights.Velocity,
				CompetitorPresence: t.GapWeights.CompetitorPresence,
				Effort:             t.GapWeights.Effort,
			},
			StrengthThreshold:    t.StrengthSignificantThreshold,
			PriorityDistribution: t.PriorityDistribution,
			EffortDistribution:   t.EffortDistribution,
			MaxRoadmapItems:      t.MaxRoadmapItems,
		},
		TopClustersLLM: t.TopClustersForLLM,
		AnglesPerTopic: t.AnglesPerTopic,
		LLMConcurrency: cfg.LLM.Concurrency,
		NormalizeFetch: t.NormalizeEmbeddings,
	}
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	logger := slog.Default()
	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	httpPort := getEnv("HTTP_PORT", cfg.Server.Port)
	slog.Info("Starting TrendScope",
		"http_port", httpPort,
		"config_dir", *configDir)

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	executionService := services.NewExecutionService(dbClient.Client)
	auditLogService := services.NewAuditLogService(dbClient.Client, logger)
	metricService := services.NewMetricService(dbClient.Client)
	profileService := services.NewProfileService(dbClient.Client)
	competitorService := services.NewCompetitorService(dbClient.Client, logger)
	articleService := services.NewArticleService(dbClient.Client)
	trendService := services.NewTrendService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. External backends: vector store and LLM
	vectorClient, err := vectorstore.NewClient(vectorstore.Config{
		URL:    cfg.Vector.URL,
		APIKey: cfg.Vector.APIKey,
	}, logger)
	if err != nil {
		slog.Error("Failed to initialize vector store client", "url", cfg.Vector.URL, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := vectorClient.Close(); err != nil {
			slog.Error("Error closing vector store client", "error", err)
		}
	}()
	fetcher := embeddings.NewFetcher(vectorClient, logger)

	llmClient, err := llm.NewClient(llm.Config{
		BackendURL:     cfg.LLM.BackendURL,
		DefaultModel:   cfg.LLM.Model,
		Timeout:        cfg.LLM.Timeout,
		ModelCacheSize: cfg.LLM.ModelCacheSize,
	}, logger)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "backend", cfg.LLM.BackendURL, "error", err)
		os.Exit(1)
	}
	enricher := llm.NewEnricher(llmClient, logger)

	// 5. Collaborator services
	scraperClient := collab.NewScraperClient(collabConfig(cfg.Collab, cfg.Collab.ScraperURL), logger)
	analysisClient := collab.NewAnalysisClient(collabConfig(cfg.Collab, cfg.Collab.AnalysisURL), logger)
	searchClient := collab.NewCompetitorSearchClient(collabConfig(cfg.Collab, cfg.Collab.CompetitorSearchURL), logger)

	// 6. Streaming infrastructure
	eventService := services.NewEventService(dbClient.Client)
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager, logger)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	progressBridge := events.NewProgressBridge(eventPublisher, logger)
	slog.Info("Streaming infrastructure initialized")

	// 7. Trend pipeline and audit orchestrator
	pool := compute.NewPool(compute.PhysicalCores(), logger)
	pipeline := trends.NewPipeline(
		pipelineConfig(cfg),
		fetcher,
		vectorClient,
		enricher,
		trendService,
		articleService,
		auditLogService,
		pool,
		logger,
	)
	pipeline.SetStageNotifier(progressBridge)

	orchestrator := audit.NewOrchestrator(cfg.Audit, audit.Deps{
		Executions:  executionService,
		AuditLog:    auditLogService,
		Profiles:    profileService,
		Competitors: competitorService,
		Articles:    articleService,
		Trends:      trendService,
		Pipeline:    pipeline,
		Analysis:    analysisClient,
		Search:      searchClient,
		Scraper:     scraperClient,
		Publisher:   progressBridge,
	}, logger)

	// 8. Background maintenance: retention sweeps and orphan recovery
	cleanupService := cleanup.NewService(cfg.Retention, executionService, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	orchestrator.StartOrphanScan(ctx)
	defer orchestrator.StopOrphanScan()

	// 9. HTTP server
	httpServer := api.NewServer(cfg, api.Deps{
		DBClient:     dbClient,
		Orchestrator: orchestrator,
		Executions:   executionService,
		AuditLogs:    auditLogService,
		Metrics:      metricService,
		Profiles:     profileService,
		Competitors:  competitorService,
		Articles:     articleService,
		Trends:       trendService,
		ConnManager:  connManager,
	}, logger)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("TrendScope started successfully")

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain running audits first, then the server.
	drainCtx, drainCancel := context.WithTimeout(ctx, cfg.Audit.GracefulShutdownTimeout)
	defer drainCancel()
	orchestrator.Drain(drainCtx)
	slog.Info("Audit workers drained")

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
