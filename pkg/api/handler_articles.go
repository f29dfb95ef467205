package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trendscope/trendscope/pkg/models"
)

// trainingAnalyzeHandler handles POST /api/v1/articles/training/analyze.
// Computes publication patterns over the domain's stored articles; it reads
// persisted data only, so the analysis is synchronous.
func (s *Server) trainingAnalyzeHandler(c *echo.Context) error {
	var req models.TrainingAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Domain == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "domain is required")
	}

	patterns, err := s.articles.AnalyzeTrainingPatterns(c.Request().Context(), req.Domain, req.MaxArticles)
	if err != nil {
		return mapServiceError(err)
	}

	resp := models.TrainingPatternsResponse{
		Domain:           patterns.Domain,
		ArticlesAnalyzed: patterns.ArticlesAnalyzed,
		AvgWordCount:     patterns.AvgWordCount,
		ArticlesPerWeek:  patterns.ArticlesPerWeek,
		EarliestArticle:  patterns.EarliestArticle,
		LatestArticle:    patterns.LatestArticle,
	}
	for _, kw := range patterns.TopKeywords {
		resp.TopKeywords = append(resp.TopKeywords, models.KeywordCountResponse{Keyword: kw.Keyword, Count: kw.Count})
	}
	for _, a := range patterns.TopAuthors {
		resp.TopAuthors = append(resp.TopAuthors, models.AuthorCountResponse{Author: a.Author, Count: a.Count})
	}
	return c.JSON(http.StatusOK, resp)
}
