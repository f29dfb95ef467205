package models

import "time"

// TrendsAnalyzeRequest launches the four-stage trend pipeline.
type TrendsAnalyzeRequest struct {
	ClientDomain   string   `json:"client_domain,omitempty"`
	Domains        []string `json:"domains,omitempty"`
	TimeWindowDays int      `json:"time_window_days,omitempty"`
	MinTopicSize   int      `json:"min_topic_size,omitempty"`
	NrTopics       int      `json:"nr_topics,omitempty"`
}

// TermWeight is one weighted term of a topic.
type TermWeight struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// TemporalMetricsResponse is the windowed dynamics view of a topic.
type TemporalMetricsResponse struct {
	Volume          int      `json:"volume"`
	Velocity        float64  `json:"velocity"`
	VelocityTrend   string   `json:"velocity_trend"`
	FreshnessRatio  float64  `json:"freshness_ratio"`
	FreshnessLabel  string   `json:"freshness_label,omitempty"`
	SourceDiversity int      `json:"source_diversity"`
	CohesionScore   float64  `json:"cohesion_score"`
	PotentialScore  float64  `json:"potential_score"`
	DriftDetected   bool     `json:"drift_detected"`
	DriftDistance   *float64 `json:"drift_distance,omitempty"`
}

// TrendAnalysisResponse is the LLM synthesis view of a topic.
type TrendAnalysisResponse struct {
	Synthesis       string   `json:"synthesis,omitempty"`
	SaturatedAngles []string `json:"saturated_angles,omitempty"`
	Opportunities   []string `json:"opportunities,omitempty"`
	LLMModelUsed    string   `json:"llm_model_used,omitempty"`
}

// RecommendationResponse is one article idea.
type RecommendationResponse struct {
	ID                   int      `json:"id"`
	Title                string   `json:"title"`
	Hook                 string   `json:"hook,omitempty"`
	Outline              []string `json:"outline,omitempty"`
	DifferentiationScore float64  `json:"differentiation_score"`
	EffortLevel          string   `json:"effort_level"`
	Status               string   `json:"status"`
}

// TopicResponse is the full per-topic view.
type TopicResponse struct {
	TopicID         int                      `json:"topic_id"`
	Label           string                   `json:"label"`
	Size            int                      `json:"size"`
	TopTerms        []TermWeight             `json:"top_terms,omitempty"`
	CoherenceScore  float64                  `json:"coherence_score"`
	Temporal        *TemporalMetricsResponse `json:"temporal,omitempty"`
	Analysis        *TrendAnalysisResponse   `json:"analysis,omitempty"`
	Recommendations []RecommendationResponse `json:"recommendations,omitempty"`
	Coverage        *CoverageResponse        `json:"coverage,omitempty"`
}

// OutlierResponse is one surfaced outlier document.
type OutlierResponse struct {
	DocumentID        string  `json:"document_id"`
	NearestTopicID    *int    `json:"nearest_topic_id,omitempty"`
	PotentialCategory string  `json:"potential_category,omitempty"`
	EmbeddingDistance float64 `json:"embedding_distance"`
}

// TrendsTopicsResponse is the topics endpoint shape.
type TrendsTopicsResponse struct {
	AnalysisID      int                    `json:"analysis_id"`
	ExecutionID     string                 `json:"execution_id"`
	ClientDomain    string                 `json:"client_domain,omitempty"`
	TimeWindowDays  int                    `json:"time_window_days"`
	TotalArticles   int                    `json:"total_articles"`
	TotalClusters   int                    `json:"total_clusters"`
	TotalOutliers   int                    `json:"total_outliers"`
	Topics          []TopicResponse        `json:"topics"`
	Outliers        []OutlierResponse      `json:"outliers,omitempty"`
	OutlierAnalysis map[string]interface{} `json:"outlier_analysis,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// CoverageResponse is the client-vs-competitor coverage view of a topic.
type CoverageResponse struct {
	ClientCount     int     `json:"client_count"`
	CompetitorCount int     `json:"competitor_count"`
	AvgCompetitor   float64 `json:"avg_competitor"`
	CoverageScore   float64 `json:"coverage_score"`
	Level           string  `json:"level"`
}

// GapResponse is one editorial gap.
type GapResponse struct {
	ID              int     `json:"id"`
	TopicClusterID  int     `json:"topic_cluster_id"`
	Label           string  `json:"label,omitempty"`
	ClientCount     int     `json:"client_count"`
	CompetitorCount int     `json:"competitor_count"`
	AvgCompetitor   float64 `json:"avg_competitor"`
	CoverageScore   float64 `json:"coverage_score"`
	Level           string  `json:"level"`
	PriorityScore   float64 `json:"priority_score"`
}

// StrengthResponse is one client strength.
type StrengthResponse struct {
	TopicClusterID  int     `json:"topic_cluster_id"`
	Label           string  `json:"label,omitempty"`
	ClientCount     int     `json:"client_count"`
	CompetitorCount int     `json:"competitor_count"`
	CoverageScore   float64 `json:"coverage_score"`
}

// RoadmapEntryResponse is one prioritized content-plan entry.
type RoadmapEntryResponse struct {
	PriorityOrder   int     `json:"priority_order"`
	PriorityTier    string  `json:"priority_tier"`
	EstimatedEffort string  `json:"estimated_effort"`
	GapID           int     `json:"gap_id"`
	Recommendation  *RecommendationResponse `json:"recommendation,omitempty"`
	PriorityScore   float64 `json:"priority_score"`
}
