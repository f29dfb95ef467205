package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trendscope/trendscope/pkg/models"
)

// scrapeHandler handles POST /api/v1/scraping/scrape.
// Launches an article scraping workflow and returns 202 immediately.
func (s *Server) scrapeHandler(c *echo.Context) error {
	var req models.ScrapeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	clientDomain := req.ClientDomain
	if clientDomain == "" && len(req.Domains) == 1 {
		clientDomain = req.Domains[0]
	}
	if clientDomain == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client_domain is required")
	}

	exec, err := s.orchestrator.LaunchScrape(c.Request().Context(), clientDomain, req.Domains, req.MaxArticlesPerDomain)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, executionAccepted(exec))
}
