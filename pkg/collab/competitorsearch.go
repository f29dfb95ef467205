package collab

import (
	"context"
	"log/slog"
)

// CompetitorSearchClient talks to the external competitor discovery service.
type CompetitorSearchClient struct {
	http *httpClient
}

// NewCompetitorSearchClient creates a CompetitorSearchClient.
func NewCompetitorSearchClient(cfg ClientConfig, logger *slog.Logger) *CompetitorSearchClient {
	return &CompetitorSearchClient{http: newHTTPClient(cfg, logger, "competitor_search")}
}

// FoundCompetitor is one discovered competitor domain.
type FoundCompetitor struct {
	Domain         string  `json:"domain"`
	Source         string  `json:"source"`
	RelevanceScore float64 `json:"relevance_score"`
}

// SearchResult is the discovery response.
type SearchResult struct {
	ClientDomain string            `json:"client_domain"`
	Competitors  []FoundCompetitor `json:"competitors"`
}

type searchRequest struct {
	Domain         string `json:"domain"`
	MaxCompetitors int    `json:"max_competitors,omitempty"`
}

// Search discovers competitors of a client domain.
func (c *CompetitorSearchClient) Search(ctx context.Context, domain string, maxCompetitors int) (*SearchResult, error) {
	var result SearchResult
	err := c.http.postJSON(ctx, "/search", searchRequest{Domain: domain, MaxCompetitors: maxCompetitors}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
