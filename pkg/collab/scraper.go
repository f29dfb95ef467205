package collab

import (
	"context"
	"log/slog"
	"time"
)

// ScraperClient talks to the external article scraping service.
type ScraperClient struct {
	http *httpClient
}

// NewScraperClient creates a ScraperClient.
func NewScraperClient(cfg ClientConfig, logger *slog.Logger) *ScraperClient {
	return &ScraperClient{http: newHTTPClient(cfg, logger, "scraper")}
}

// ScrapedArticle is one article returned by the scraper.
type ScrapedArticle struct {
	Domain        string   `json:"domain"`
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	ContentText   string   `json:"content_text"`
	Author        string   `json:"author,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
}

// ScrapeResult is the scraper's response for a batch of domains.
type ScrapeResult struct {
	Articles  []ScrapedArticle `json:"articles"`
	Scraped   int              `json:"scraped"`
	Failed    int              `json:"failed"`
	StartedAt time.Time        `json:"started_at"`
}

type scrapeRequest struct {
	Domains              []string `json:"domains"`
	MaxArticlesPerDomain int      `json:"max_articles_per_domain,omitempty"`
}

// Scrape requests articles for the given domains.
func (c *ScraperClient) Scrape(ctx context.Context, domains []string, maxPerDomain int) (*ScrapeResult, error) {
	var result ScrapeResult
	err := c.http.postJSON(ctx, "/scrape", scrapeRequest{
		Domains:              domains,
		MaxArticlesPerDomain: maxPerDomain,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
