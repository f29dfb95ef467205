package e2e

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/pkg/models"
	"github.com/trendscope/trendscope/pkg/services"
)

// TestTrendTopicsEndpoint seeds a finished pipeline with clusters and
// metrics through the service layer, then reads it back over HTTP.
func TestTrendTopicsEndpoint(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()
	domain := "topics.example.com"

	pipeline, err := app.Trends.CreatePipeline(ctx, "exec-topics", domain, []string{domain}, 90, 8)
	require.NoError(t, err)

	clusters, err := app.Trends.SaveClusters(ctx, pipeline.ID, []services.ClusterInput{
		{
			TopicID:         0,
			Label:           "vaccine / trial / phase",
			TopTerms:        []map[string]any{{"term": "vaccine", "weight": 0.8}},
			Size:            3,
			DocumentIndices: []int{0, 1, 2},
			DocumentIDs:     []string{"d0", "d1", "d2"},
			CoherenceScore:  0.88,
		},
		{
			TopicID:         1,
			Label:           "budget / deficit",
			Size:            2,
			DocumentIndices: []int{3, 4},
			DocumentIDs:     []string{"d3", "d4"},
			CoherenceScore:  0.72,
		},
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, app.Trends.SaveTemporalMetrics(ctx, []services.TemporalMetricsInput{{
		TopicClusterID: clusters[0].ID,
		WindowStart:    now.AddDate(-1, 0, 0),
		WindowEnd:      now,
		Volume:         3,
		Velocity:       1.8,
		VelocityTrend:  "accelerating",
		FreshnessRatio: 0.5,
		CohesionScore:  0.9,
		PotentialScore: 0.61,
	}}))
	require.NoError(t, app.Trends.SaveOutliers(ctx, pipeline.ID, []services.OutlierInput{
		{DocumentID: "d7", PotentialCategory: "technology", EmbeddingDistance: 0.42},
	}))
	require.NoError(t, app.Trends.SaveOutlierAnalysis(ctx, pipeline.ID, map[string]interface{}{
		"common_thread":  "quantum sensors",
		"recommendation": "investigate",
	}))

	var resp models.TrendsTopicsResponse
	code := app.GetJSON("/api/v1/trends/topics?client_domain="+domain+"&include_outliers=true", &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, pipeline.ID, resp.AnalysisID)
	assert.Equal(t, "exec-topics", resp.ExecutionID)
	require.Len(t, resp.Topics, 2)

	// Topics come back largest first, with temporal metrics attached where
	// stage 2 produced them.
	first := resp.Topics[0]
	assert.Equal(t, 0, first.TopicID)
	assert.Equal(t, "vaccine / trial / phase", first.Label)
	require.NotNil(t, first.Temporal)
	assert.Equal(t, "accelerating", first.Temporal.VelocityTrend)
	require.Len(t, first.TopTerms, 1)
	assert.Equal(t, "vaccine", first.TopTerms[0].Term)
	assert.Nil(t, resp.Topics[1].Temporal)

	require.Len(t, resp.Outliers, 1)
	assert.Equal(t, "d7", resp.Outliers[0].DocumentID)
	require.NotNil(t, resp.OutlierAnalysis)
	assert.Equal(t, "investigate", resp.OutlierAnalysis["recommendation"])

	// Selecting by execution id resolves the same run.
	var byExec models.TrendsTopicsResponse
	code = app.GetJSON("/api/v1/trends/topics?execution_id=exec-topics", &byExec)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, resp.AnalysisID, byExec.AnalysisID)
	assert.Nil(t, byExec.Outliers, "outliers stay opt-in")
	assert.Nil(t, byExec.OutlierAnalysis)

	// analysis_id and the domain alias select the same run as well.
	var byID models.TrendsTopicsResponse
	code = app.GetJSON(fmt.Sprintf("/api/v1/trends/topics?analysis_id=%d", pipeline.ID), &byID)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "exec-topics", byID.ExecutionID)

	var byDomain models.TrendsTopicsResponse
	code = app.GetJSON("/api/v1/trends/topics?domain="+domain, &byDomain)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, resp.AnalysisID, byDomain.AnalysisID)

	code = app.GetJSON("/api/v1/trends/topics?analysis_id=not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	code = app.GetJSON("/api/v1/trends/topics?analysis_id=999999", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code = app.GetJSON("/api/v1/trends/topics", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	code = app.GetJSON("/api/v1/trends/topics?client_domain=unknown.example.com", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

// TestTrainingPatternsEndpoint seeds stored client articles and asks for
// their publication patterns.
func TestTrainingPatternsEndpoint(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()
	domain := "training.example.com"

	published := time.Now().UTC().AddDate(0, 0, -7)
	_, err := app.Articles.SaveClientArticles(ctx, []services.ArticleInput{
		{
			Domain:        domain,
			URL:           "https://training.example.com/a",
			ContentText:   "alpha beta gamma",
			Author:        "Lin",
			Keywords:      []string{"solar"},
			PublishedDate: &published,
		},
		{
			Domain:      domain,
			URL:         "https://training.example.com/b",
			ContentText: "alpha beta",
			Keywords:    []string{"solar", "wind"},
		},
	})
	require.NoError(t, err)

	var resp models.TrainingPatternsResponse
	code := app.PostJSON("/api/v1/articles/training/analyze", models.TrainingAnalyzeRequest{Domain: domain}, &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, domain, resp.Domain)
	assert.Equal(t, 2, resp.ArticlesAnalyzed)
	assert.InDelta(t, 2.5, resp.AvgWordCount, 0.001)
	require.NotEmpty(t, resp.TopKeywords)
	assert.Equal(t, "solar", resp.TopKeywords[0].Keyword)
	assert.Equal(t, 2, resp.TopKeywords[0].Count)
	require.Len(t, resp.TopAuthors, 1)
	assert.Equal(t, "Lin", resp.TopAuthors[0].Author)

	code = app.PostJSON("/api/v1/articles/training/analyze", models.TrainingAnalyzeRequest{Domain: "empty.example.com"}, nil)
	assert.Equal(t, http.StatusNotFound, code)
	code = app.PostJSON("/api/v1/articles/training/analyze", models.TrainingAnalyzeRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

// TestCompetitorValidationOverride covers the manual validation endpoint on
// top of discovery results.
func TestCompetitorValidationOverride(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()
	domain := "override.example.com"

	_, err := app.Competitors.SaveDiscovered(ctx, domain, []services.DiscoveredCompetitor{
		{Domain: "rival-a.example.com", Source: "serp", RelevanceScore: 0.9},
		{Domain: "rival-b.example.com", Source: "serp", RelevanceScore: 0.6},
	})
	require.NoError(t, err)

	var updated models.CompetitorResponse
	code := app.PostJSON("/api/v1/competitors/"+domain+"/validate", models.ValidateCompetitorRequest{
		CompetitorDomain: "rival-b.example.com",
		Validated:        true,
	}, &updated)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, updated.Validated)
	require.NotNil(t, updated.ValidationDate)

	code = app.PostJSON("/api/v1/competitors/"+domain+"/validate", models.ValidateCompetitorRequest{
		CompetitorDomain: "nobody.example.com",
		Validated:        true,
	}, nil)
	assert.Equal(t, http.StatusNotFound, code)

	var list models.CompetitorListResponse
	code = app.GetJSON("/api/v1/competitors/"+domain, &list)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, list.Total)
}

func TestHealthEndpoint(t *testing.T) {
	app := NewTestApp(t)
	var health map[string]any
	code := app.GetJSON("/health", &health)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", health["status"])
	checks, _ := health["checks"].(map[string]any)
	require.Contains(t, checks, "database")
}
