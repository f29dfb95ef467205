package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/pkg/models"
	"github.com/trendscope/trendscope/pkg/services"
)

// analyzeTrendsHandler handles POST /api/v1/trends/analyze.
// Launches the four-stage trend pipeline and returns 202 immediately.
func (s *Server) analyzeTrendsHandler(c *echo.Context) error {
	var req models.TrendsAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	exec, err := s.orchestrator.LaunchTrendPipeline(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, executionAccepted(exec))
}

// getTopicsHandler handles GET /api/v1/trends/topics.
// Selects a pipeline run by analysis_id or execution_id, or the latest valid
// run for client_domain (domain is accepted as an alias).
func (s *Server) getTopicsHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	clientDomain := c.QueryParam("client_domain")
	if clientDomain == "" {
		clientDomain = c.QueryParam("domain")
	}

	var (
		pipeline *ent.TrendPipelineExecution
		err      error
	)
	switch {
	case c.QueryParam("analysis_id") != "":
		id, perr := strconv.Atoi(c.QueryParam("analysis_id"))
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "analysis_id must be an integer")
		}
		pipeline, err = s.trends.GetPipelineByID(ctx, id)
	case c.QueryParam("execution_id") != "":
		pipeline, err = s.trends.GetPipeline(ctx, c.QueryParam("execution_id"))
	case clientDomain != "":
		pipeline, err = s.trends.GetLatestPipeline(ctx, clientDomain)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "analysis_id, execution_id or client_domain is required")
	}
	if err != nil {
		return mapServiceError(err)
	}

	details, err := s.trends.GetTopics(ctx, pipeline.ID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := models.TrendsTopicsResponse{
		AnalysisID:     pipeline.ID,
		ExecutionID:    pipeline.ExecutionID,
		ClientDomain:   pipeline.ClientDomain,
		TimeWindowDays: pipeline.TimeWindowDays,
		TotalArticles:  pipeline.TotalArticles,
		TotalClusters:  pipeline.TotalClusters,
		TotalOutliers:  pipeline.TotalOutliers,
		CreatedAt:      pipeline.CreatedAt,
	}
	for _, d := range details {
		resp.Topics = append(resp.Topics, topicResponse(d))
	}

	if c.QueryParam("include_outliers") == "true" {
		resp.OutlierAnalysis = pipeline.OutlierAnalysis
		outliers, err := s.trends.GetOutliers(ctx, pipeline.ID)
		if err != nil {
			return mapServiceError(err)
		}
		limit := 50
		if v := c.QueryParam("outlier_limit"); v != "" {
			if n, perr := strconv.Atoi(v); perr == nil && n > 0 && n <= 500 {
				limit = n
			}
		}
		for i, o := range outliers {
			if i == limit {
				break
			}
			resp.Outliers = append(resp.Outliers, models.OutlierResponse{
				DocumentID:        o.DocumentID,
				NearestTopicID:    o.NearestTopicID,
				PotentialCategory: o.PotentialCategory,
				EmbeddingDistance: o.EmbeddingDistance,
			})
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func topicResponse(d services.TopicDetail) models.TopicResponse {
	topic := models.TopicResponse{
		TopicID:        d.Cluster.TopicID,
		Label:          d.Cluster.Label,
		Size:           d.Cluster.Size,
		CoherenceScore: d.Cluster.CoherenceScore,
	}
	for _, m := range d.Cluster.TopTerms {
		term, _ := m["term"].(string)
		if term == "" {
			continue
		}
		weight, _ := m["weight"].(float64)
		topic.TopTerms = append(topic.TopTerms, models.TermWeight{Term: term, Weight: weight})
	}
	if d.TemporalMetrics != nil {
		topic.Temporal = &models.TemporalMetricsResponse{
			Volume:          d.TemporalMetrics.Volume,
			Velocity:        d.TemporalMetrics.Velocity,
			VelocityTrend:   d.TemporalMetrics.VelocityTrend,
			FreshnessRatio:  d.TemporalMetrics.FreshnessRatio,
			SourceDiversity: d.TemporalMetrics.SourceDiversity,
			CohesionScore:   d.TemporalMetrics.CohesionScore,
			PotentialScore:  d.TemporalMetrics.PotentialScore,
			DriftDetected:   d.TemporalMetrics.DriftDetected,
			DriftDistance:   d.TemporalMetrics.DriftDistance,
		}
	}
	if d.Analysis != nil {
		topic.Analysis = &models.TrendAnalysisResponse{
			Synthesis:       d.Analysis.Synthesis,
			SaturatedAngles: d.Analysis.SaturatedAngles,
			Opportunities:   d.Analysis.Opportunities,
			LLMModelUsed:    d.Analysis.LlmModelUsed,
		}
	}
	for _, rec := range d.Recommendations {
		topic.Recommendations = append(topic.Recommendations, models.RecommendationResponse{
			ID:                   rec.ID,
			Title:                rec.Title,
			Hook:                 rec.Hook,
			Outline:              rec.Outline,
			DifferentiationScore: rec.DifferentiationScore,
			EffortLevel:          string(rec.EffortLevel),
			Status:               string(rec.Status),
		})
	}
	if d.Coverage != nil {
		topic.Coverage = &models.CoverageResponse{
			ClientCount:     d.Coverage.ClientCount,
			CompetitorCount: d.Coverage.CompetitorCount,
			AvgCompetitor:   d.Coverage.AvgCompetitor,
			CoverageScore:   d.Coverage.CoverageScore,
			Level:           string(d.Coverage.Level),
		}
	}
	return topic
}
