package models

import "time"

// CompetitorSearchRequest launches competitor discovery for a domain.
type CompetitorSearchRequest struct {
	Domain         string `json:"domain"`
	MaxCompetitors int    `json:"max_competitors,omitempty"`
}

// CompetitorResponse is one competitor of a client domain.
type CompetitorResponse struct {
	ID             int        `json:"id"`
	ClientDomain   string     `json:"client_domain"`
	Domain         string     `json:"domain"`
	Source         string     `json:"source,omitempty"`
	RelevanceScore float64    `json:"relevance_score"`
	Validated      bool       `json:"validated"`
	Excluded       bool       `json:"excluded"`
	ValidationDate *time.Time `json:"validation_date,omitempty"`
}

// CompetitorListResponse wraps the competitor list endpoint.
type CompetitorListResponse struct {
	ClientDomain string               `json:"client_domain"`
	Total        int                  `json:"total"`
	Competitors  []CompetitorResponse `json:"competitors"`
}

// ValidateCompetitorRequest is the manual validation override.
type ValidateCompetitorRequest struct {
	CompetitorDomain string `json:"competitor_domain"`
	Validated        bool   `json:"validated"`
	Excluded         bool   `json:"excluded"`
}

// ScrapeRequest launches article scraping.
type ScrapeRequest struct {
	Domains              []string `json:"domains,omitempty"`
	ClientDomain         string   `json:"client_domain,omitempty"`
	MaxArticlesPerDomain int      `json:"max_articles_per_domain,omitempty"`
}
