package models

import "time"

// AnalyzeSiteRequest launches an editorial analysis of a domain.
type AnalyzeSiteRequest struct {
	Domain   string `json:"domain"`
	MaxPages int    `json:"max_pages,omitempty"`
}

// ExecutionAccepted is the 202 body for launched workflows.
type ExecutionAccepted struct {
	ExecutionID string    `json:"execution_id"`
	Status      string    `json:"status"`
	StartTime   time.Time `json:"start_time"`
}

// SiteProfileResponse is the editorial profile view of a domain.
type SiteProfileResponse struct {
	ID               int            `json:"id"`
	Domain           string         `json:"domain"`
	AnalysisDate     time.Time      `json:"analysis_date"`
	LanguageLevel    string         `json:"language_level"`
	EditorialTone    string         `json:"editorial_tone,omitempty"`
	TargetAudience   map[string]any `json:"target_audience,omitempty"`
	ActivityDomains  map[string]any `json:"activity_domains,omitempty"`
	ContentStructure map[string]any `json:"content_structure,omitempty"`
	Keywords         map[string]any `json:"keywords,omitempty"`
	StyleFeatures    map[string]any `json:"style_features,omitempty"`
	PagesAnalyzed    int            `json:"pages_analyzed"`
	LLMModelsUsed    []string       `json:"llm_models_used,omitempty"`
	IsValid          bool           `json:"is_valid"`
}

// MetricComparisonResponse is one field-level diff between profile versions.
type MetricComparisonResponse struct {
	Field    string `json:"field"`
	Previous any    `json:"previous"`
	Current  any    `json:"current"`
	Changed  bool   `json:"changed"`
}

// ProfileHistoryResponse returns prior profile versions with comparisons.
type ProfileHistoryResponse struct {
	Domain            string                     `json:"domain"`
	Total             int                        `json:"total"`
	Profiles          []SiteProfileResponse      `json:"profiles"`
	MetricComparisons []MetricComparisonResponse `json:"metric_comparisons,omitempty"`
}
