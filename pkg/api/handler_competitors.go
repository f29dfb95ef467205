package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trendscope/trendscope/pkg/models"
)

// searchCompetitorsHandler handles POST /api/v1/competitors/search.
// Launches a competitor discovery workflow and returns 202 immediately.
func (s *Server) searchCompetitorsHandler(c *echo.Context) error {
	var req models.CompetitorSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Domain == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "domain is required")
	}

	exec, err := s.orchestrator.LaunchWorkflow(c.Request().Context(), models.StepCompetitorSearch, req.Domain)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, executionAccepted(exec))
}

// listCompetitorsHandler handles GET /api/v1/competitors/:domain.
func (s *Server) listCompetitorsHandler(c *echo.Context) error {
	domain := c.Param("domain")
	if domain == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "domain is required")
	}

	competitors, err := s.competitors.ListCompetitors(c.Request().Context(), domain)
	if err != nil {
		return mapServiceError(err)
	}

	resp := models.CompetitorListResponse{
		ClientDomain: domain,
		Total:        len(competitors),
	}
	for _, comp := range competitors {
		resp.Competitors = append(resp.Competitors, models.CompetitorResponse{
			ID:             comp.ID,
			ClientDomain:   comp.ClientDomain,
			Domain:         comp.Domain,
			Source:         comp.Source,
			RelevanceScore: comp.RelevanceScore,
			Validated:      comp.Validated,
			Excluded:       comp.Excluded,
			ValidationDate: comp.ValidationDate,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// validateCompetitorHandler handles POST /api/v1/competitors/:domain/validate.
// Manual override of the automatic validation decision.
func (s *Server) validateCompetitorHandler(c *echo.Context) error {
	domain := c.Param("domain")
	if domain == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "domain is required")
	}

	var req models.ValidateCompetitorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.CompetitorDomain == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "competitor_domain is required")
	}

	updated, err := s.competitors.SetValidation(c.Request().Context(), domain, req.CompetitorDomain, req.Validated, req.Excluded)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.CompetitorResponse{
		ID:             updated.ID,
		ClientDomain:   updated.ClientDomain,
		Domain:         updated.Domain,
		Source:         updated.Source,
		RelevanceScore: updated.RelevanceScore,
		Validated:      updated.Validated,
		Excluded:       updated.Excluded,
		ValidationDate: updated.ValidationDate,
	})
}
