package collab

import (
	"context"
	"log/slog"
)

// AnalysisClient talks to the external editorial analysis service.
type AnalysisClient struct {
	http *httpClient
}

// NewAnalysisClient creates an AnalysisClient.
func NewAnalysisClient(cfg ClientConfig, logger *slog.Logger) *AnalysisClient {
	return &AnalysisClient{http: newHTTPClient(cfg, logger, "analysis")}
}

// EditorialAnalysis is the analysis service's profile of a domain.
type EditorialAnalysis struct {
	Domain           string         `json:"domain"`
	LanguageLevel    string         `json:"language_level"`
	EditorialTone    string         `json:"editorial_tone"`
	TargetAudience   map[string]any `json:"target_audience"`
	ActivityDomains  map[string]any `json:"activity_domains"`
	ContentStructure map[string]any `json:"content_structure"`
	Keywords         map[string]any `json:"keywords"`
	StyleFeatures    map[string]any `json:"style_features"`
	PagesAnalyzed    int            `json:"pages_analyzed"`
	LLMModelsUsed    []string       `json:"llm_models_used"`
}

type analyzeRequest struct {
	Domain   string `json:"domain"`
	MaxPages int    `json:"max_pages,omitempty"`
}

// Analyze runs an editorial analysis of a domain.
func (c *AnalysisClient) Analyze(ctx context.Context, domain string, maxPages int) (*EditorialAnalysis, error) {
	var result EditorialAnalysis
	err := c.http.postJSON(ctx, "/analyze", analyzeRequest{Domain: domain, MaxPages: maxPages}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
