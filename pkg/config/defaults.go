package config

import "time"

// defaultConfig returns the built-in defaults. YAML and environment values
// overlay these.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Trends: TrendsConfig{
			MinArticles:         30,
			MaxArticles:         50000,
			MinClusterSize:      5,
			ReducedDims:         5,
			NeighborCount:       15,
			TopTerms:            10,
			Seed:                42,
			NormalizeEmbeddings: true,
			WindowsDays:         []int{7, 30, 90, 365},
			HistogramBins:       20,
			DriftThreshold:      0.35,
			PotentialWeights: PotentialWeights{
				Velocity:  0.30,
				Freshness: 0.25,
				Diversity: 0.15,
				Cohesion:  0.15,
				Size:      0.15,
			},
			TopClustersForLLM: 10,
			AnglesPerTopic:    3,
			GapWeights: GapWeights{
				CoverageGap:        0.35,
				TopicPotential:     0.25,
				Velocity:           0.15,
				CompetitorPresence: 0.15,
				Effort:             0.10,
			},
			StrengthSignificantThreshold: 1.5,
			PriorityDistribution: map[string]int{
				"high":   3,
				"medium": 4,
				"low":    3,
			},
			EffortDistribution: map[string]float64{
				"easy":    0.30,
				"medium":  0.45,
				"complex": 0.25,
			},
			MaxRoadmapItems: 10,
		},
		Audit: AuditConfig{
			MinClientArticles:     5,
			MinCompetitorArticles: 10,
			MaxCompetitors:        10,
			WorkflowTimeouts: map[string]time.Duration{
				"editorial_analysis": 10 * time.Minute,
				"competitor_search":  5 * time.Minute,
				"client_scraping":    20 * time.Minute,
				"scraping":           30 * time.Minute,
				"trend_pipeline":     15 * time.Minute,
			},
			GracefulShutdownTimeout: 5 * time.Minute,
			OrphanThreshold:         30 * time.Minute,
			OrphanScanInterval:      5 * time.Minute,
		},
		LLM: LLMConfig{
			BackendURL:     "http://localhost:11434",
			Model:          "mistral",
			Timeout:        60 * time.Second,
			Concurrency:    1,
			ModelCacheSize: 4,
		},
		Vector: VectorConfig{
			URL:     "localhost:6334",
			Timeout: 10 * time.Second,
		},
		Collab: CollabConfig{
			Timeout:          30 * time.Second,
			RetryAttempts:    3,
			RetryMinInterval: 1 * time.Second,
			RetryMaxInterval: 10 * time.Second,
		},
		Retention: RetentionConfig{
			ExecutionRetentionDays: 90,
			EventTTL:               24 * time.Hour,
			CleanupInterval:        1 * time.Hour,
		},
	}
}
