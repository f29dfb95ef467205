package config

import "time"

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port             string   `yaml:"port"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// TrendsConfig contains the parameters of the four-stage trend pipeline.
type TrendsConfig struct {
	// Clustering (stage 1)
	MinArticles         int   `yaml:"min_articles"`
	MaxArticles         int   `yaml:"max_articles"`
	MinClusterSize      int   `yaml:"min_cluster_size"`
	ReducedDims         int   `yaml:"reduced_dims"`
	NeighborCount       int   `yaml:"neighbor_count"`
	TopTerms            int   `yaml:"top_terms"`
	Seed                int64 `yaml:"seed"`
	NormalizeEmbeddings bool  `yaml:"normalize_embeddings"`

	// Temporal metrics (stage 2)
	WindowsDays      []int            `yaml:"windows_days"`
	HistogramBins    int              `yaml:"histogram_bins"`
	DriftThreshold   float64          `yaml:"drift_threshold"`
	PotentialWeights PotentialWeights `yaml:"potential_weights"`

	// LLM enrichment (stage 3)
	TopClustersForLLM int `yaml:"top_clusters_for_llm"`
	AnglesPerTopic    int `yaml:"angles_per_topic"`

	// Gap analysis and roadmap (stage 4)
	GapWeights                   GapWeights         `yaml:"gap_weights"`
	StrengthSignificantThreshold float64            `yaml:"strength_significant_threshold"`
	PriorityDistribution         map[string]int     `yaml:"priority_distribution"`
	EffortDistribution           map[string]float64 `yaml:"effort_distribution"`
	MaxRoadmapItems              int                `yaml:"max_roadmap_items"`
}

// PotentialWeights weight the normalized components of the potential score.
type PotentialWeights struct {
	Velocity  float64 `yaml:"velocity"`
	Freshness float64 `yaml:"freshness"`
	Diversity float64 `yaml:"diversity"`
	Cohesion  float64 `yaml:"cohesion"`
	Size      float64 `yaml:"size"`
}

// GapWeights weight the components of the gap priority score.
type GapWeights struct {
	CoverageGap        float64 `yaml:"coverage_gap"`
	TopicPotential     float64 `yaml:"topic_potential"`
	Velocity           float64 `yaml:"velocity"`
	CompetitorPresence float64 `yaml:"competitor_presence"`
	Effort             float64 `yaml:"effort"`
}

// AuditConfig contains audit orchestrator thresholds and timeouts.
type AuditConfig struct {
	MinClientArticles     int `yaml:"min_client_articles"`
	MinCompetitorArticles int `yaml:"min_competitor_articles"`
	MaxCompetitors        int `yaml:"max_competitors"`

	// Per-workflow timeouts for child executions.
	WorkflowTimeouts map[string]time.Duration `yaml:"workflow_timeouts"`

	// GracefulShutdownTimeout is the max time to wait for running audits
	// during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanThreshold marks an in-flight execution as orphaned when its
	// last update is older than this. OrphanScanInterval is the scan period.
	OrphanThreshold    time.Duration `yaml:"orphan_threshold"`
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`
}

// RetentionConfig controls the background retention sweeps.
type RetentionConfig struct {
	// ExecutionRetentionDays soft-deletes terminal workflow executions
	// older than this many days. 0 disables the sweep.
	ExecutionRetentionDays int `yaml:"execution_retention_days"`

	// EventTTL hard-deletes persisted realtime events past this age; they
	// only exist for WebSocket catchup.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is the period between sweeps.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// LLMConfig contains settings for the external chat completion backend.
type LLMConfig struct {
	BackendURL     string        `yaml:"backend_url"`
	Model          string        `yaml:"model"`
	Timeout        time.Duration `yaml:"timeout"`
	Concurrency    int           `yaml:"concurrency"`
	ModelCacheSize int           `yaml:"model_cache_size"`
}

// VectorConfig contains settings for the external vector store.
type VectorConfig struct {
	URL     string        `yaml:"url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// CollabConfig contains endpoints and retry settings for the external
// collaborator services (crawler, editorial analysis, competitor search).
type CollabConfig struct {
	ScraperURL          string        `yaml:"scraper_url"`
	AnalysisURL         string        `yaml:"analysis_url"`
	CompetitorSearchURL string        `yaml:"competitor_search_url"`
	Timeout             time.Duration `yaml:"timeout"`
	RetryAttempts       int           `yaml:"retry_attempts"`
	RetryMinInterval    time.Duration `yaml:"retry_min_interval"`
	RetryMaxInterval    time.Duration `yaml:"retry_max_interval"`
}
