package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trendscope/trendscope/pkg/models"
)

// auditSiteHandler handles GET /api/v1/sites/:domain/audit.
// Returns 200 with the full audit view when it can be assembled from
// persisted data, 202 with the pending shape when a background audit was
// started or joined.
func (s *Server) auditSiteHandler(c *echo.Context) error {
	domain := c.Param("domain")
	if domain == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "domain is required")
	}
	flags := auditViewFlags(c)

	result, err := s.orchestrator.RequestAudit(c.Request().Context(), domain, flags)
	if err != nil {
		return mapServiceError(err)
	}
	if result.Full != nil {
		return c.JSON(http.StatusOK, result.Full)
	}
	return c.JSON(http.StatusAccepted, result.Pending)
}

// auditStatusHandler handles GET /api/v1/audit/status/:execution_id.
// The "already-completed" sentinel id requires a domain query parameter to
// resolve the most recent finished audit.
func (s *Server) auditStatusHandler(c *echo.Context) error {
	executionID := c.Param("execution_id")
	if executionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "execution_id is required")
	}

	status, err := s.orchestrator.GetAuditStatus(c.Request().Context(), executionID, c.QueryParam("domain"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// siteAuditStatusHandler handles GET /api/v1/sites/:domain/audit/status/:execution_id,
// the domain-scoped variant. The path domain resolves the sentinel id.
func (s *Server) siteAuditStatusHandler(c *echo.Context) error {
	executionID := c.Param("execution_id")
	if executionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "execution_id is required")
	}

	status, err := s.orchestrator.GetAuditStatus(c.Request().Context(), executionID, c.Param("domain"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// cancelAuditHandler handles POST /api/v1/audit/:execution_id/cancel.
// Cancellation is cooperative: the worker notices the flag between steps.
func (s *Server) cancelAuditHandler(c *echo.Context) error {
	executionID := c.Param("execution_id")
	if executionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "execution_id is required")
	}

	if err := s.orchestrator.Cancel(c.Request().Context(), executionID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{
		"execution_id": executionID,
		"status":       "cancel_requested",
	})
}

// auditViewFlags parses the include_* query parameters; everything defaults
// to enabled, "false" disables a section.
func auditViewFlags(c *echo.Context) models.AuditViewFlags {
	flags := models.DefaultAuditViewFlags()
	include := func(name string, target *bool) {
		if c.QueryParam(name) == "false" {
			*target = false
		}
	}
	include("include_topics", &flags.IncludeTopics)
	include("include_trending", &flags.IncludeTrending)
	include("include_analyses", &flags.IncludeAnalyses)
	include("include_temporal", &flags.IncludeTemporal)
	include("include_opportunities", &flags.IncludeOpportunities)
	return flags
}
