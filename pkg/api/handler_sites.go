package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/pkg/models"
	"github.com/trendscope/trendscope/pkg/services"
)

// analyzeSiteHandler handles POST /api/v1/sites/analyze.
// Launches an editorial analysis workflow and returns 202 immediately.
func (s *Server) analyzeSiteHandler(c *echo.Context) error {
	var req models.AnalyzeSiteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Domain == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "domain is required")
	}

	exec, err := s.orchestrator.LaunchWorkflow(c.Request().Context(), models.StepEditorialAnalysis, req.Domain)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, executionAccepted(exec))
}

// getSiteProfileHandler handles GET /api/v1/sites/:domain.
func (s *Server) getSiteProfileHandler(c *echo.Context) error {
	domain := c.Param("domain")
	if domain == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "domain is required")
	}

	profile, err := s.profiles.GetLatestProfile(c.Request().Context(), domain)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, siteProfileResponse(profile))
}

// getProfileHistoryHandler handles GET /api/v1/sites/:domain/history.
func (s *Server) getProfileHistoryHandler(c *echo.Context) error {
	domain := c.Param("domain")
	if domain == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "domain is required")
	}

	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	ctx := c.Request().Context()
	profiles, err := s.profiles.GetProfileHistory(ctx, domain, limit)
	if err != nil {
		return mapServiceError(err)
	}

	resp := models.ProfileHistoryResponse{
		Domain: domain,
		Total:  len(profiles),
	}
	for _, p := range profiles {
		resp.Profiles = append(resp.Profiles, *siteProfileResponse(p))
	}

	// Field-level diff between the two most recent versions.
	if len(profiles) >= 2 {
		for _, cmp := range services.CompareProfiles(profiles[1], profiles[0]) {
			resp.MetricComparisons = append(resp.MetricComparisons, models.MetricComparisonResponse{
				Field:    cmp.Field,
				Previous: cmp.Previous,
				Current:  cmp.Current,
				Changed:  cmp.Changed,
			})
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func siteProfileResponse(p *ent.SiteProfile) *models.SiteProfileResponse {
	return &models.SiteProfileResponse{
		ID:               p.ID,
		Domain:           p.Domain,
		AnalysisDate:     p.AnalysisDate,
		LanguageLevel:    string(p.LanguageLevel),
		EditorialTone:    p.EditorialTone,
		TargetAudience:   p.TargetAudience,
		ActivityDomains:  p.ActivityDomains,
		ContentStructure: p.ContentStructure,
		Keywords:         p.Keywords,
		StyleFeatures:    p.StyleFeatures,
		PagesAnalyzed:    p.PagesAnalyzed,
		LLMModelsUsed:    p.LlmModelsUsed,
		IsValid:          p.IsValid,
	}
}

func executionAccepted(exec *ent.WorkflowExecution) models.ExecutionAccepted {
	start := exec.CreatedAt
	if exec.StartTime != nil {
		start = *exec.StartTime
	}
	return models.ExecutionAccepted{
		ExecutionID: exec.ID,
		Status:      string(exec.Status),
		StartTime:   start.UTC().Truncate(time.Millisecond),
	}
}
