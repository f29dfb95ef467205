package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/coverageanalysis"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
	"github.com/trendscope/trendscope/pkg/services"
	testdb "github.com/trendscope/trendscope/test/database"
)

func newTrendService(t *testing.T) *services.TrendService {
	t.Helper()
	return services.NewTrendService(testdb.NewTestClient(t).Client)
}

func createTestPipeline(t *testing.T, svc *services.TrendService, executionID string) *ent.TrendPipelineExecution {
	t.Helper()
	pipeline, err := svc.CreatePipeline(context.Background(), executionID, "client.example.com",
		[]string{"rival-a.com", "rival-b.com"}, 365, 80)
	require.NoError(t, err)
	return pipeline
}

func saveTestClusters(t *testing.T, svc *services.TrendService, pipelineID int) map[int]*ent.TopicCluster {
	t.Helper()
	clusters, err := svc.SaveClusters(context.Background(), pipelineID, []services.ClusterInput{
		{
			TopicID:         0,
			Label:           "vaccine / clinical / trial",
			TopTerms:        []map[string]any{{"term": "vaccine", "weight": 3.1}},
			Size:            2,
			DocumentIndices: []int{0, 1},
			DocumentIDs:     []string{"doc-0", "doc-1"},
			CoherenceScore:  0.91,
		},
		{
			TopicID:         1,
			Label:           "startup / funding / venture",
			Size:            1,
			DocumentIndices: []int{2},
			DocumentIDs:     []string{"doc-2"},
			CoherenceScore:  0.84,
		},
	})
	require.NoError(t, err)
	return clusters
}

func TestPipelineLifecycle(t *testing.T) {
	svc := newTrendService(t)
	ctx := context.Background()

	pipeline := createTestPipeline(t, svc, "exec-1")
	assert.Equal(t, trendpipelineexecution.Stage1ClusteringStatusPending, pipeline.Stage1ClusteringStatus)
	assert.Equal(t, 80, pipeline.TotalArticles)

	_, err := svc.CreatePipeline(ctx, "exec-1", "client.example.com", nil, 0, 0)
	assert.ErrorIs(t, err, services.ErrAlreadyExists, "execution_id is unique")

	got, err := svc.GetPipeline(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, pipeline.ID, got.ID)

	_, err = svc.GetPipeline(ctx, "nope")
	assert.ErrorIs(t, err, services.ErrNotFound)

	require.NoError(t, svc.FinishPipeline(ctx, pipeline.ID, services.PipelineTotals{
		Clusters: 2, Outliers: 1, Recommendations: 4, Gaps: 3,
	}, ""))

	finished, err := svc.GetPipeline(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, 2, finished.TotalClusters)
	assert.Equal(t, 3, finished.TotalGaps)
	require.NotNil(t, finished.EndTime)
	require.NotNil(t, finished.DurationSeconds)
	assert.Nil(t, finished.ErrorMessage)
}

func TestGetLatestPipeline(t *testing.T) {
	svc := newTrendService(t)
	ctx := context.Background()

	createTestPipeline(t, svc, "exec-old")
	time.Sleep(5 * time.Millisecond)
	newest := createTestPipeline(t, svc, "exec-new")

	latest, err := svc.GetLatestPipeline(ctx, "client.example.com")
	require.NoError(t, err)
	assert.Equal(t, newest.ID, latest.ID)

	_, err = svc.GetLatestPipeline(ctx, "never-analyzed.com")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSetStageStatus_ForwardOnly(t *testing.T) {
	svc := newTrendService(t)
	ctx := context.Background()
	pipeline := createTestPipeline(t, svc, "exec-stages")

	require.NoError(t, svc.SetStageStatus(ctx, pipeline.ID, services.StageClustering, "in_progress"))
	require.NoError(t, svc.SetStageStatus(ctx, pipeline.ID, services.StageClustering, "completed"))

	// Repeating the current status is a no-op.
	require.NoError(t, svc.SetStageStatus(ctx, pipeline.ID, services.StageClustering, "completed"))

	// Backward transitions are rejected.
	err := svc.SetStageStatus(ctx, pipeline.ID, services.StageClustering, "in_progress")
	assert.ErrorIs(t, err, services.ErrTerminalState)
	err = svc.SetStageStatus(ctx, pipeline.ID, services.StageClustering, "failed")
	assert.ErrorIs(t, err, services.ErrTerminalState)

	// Stages advance independently; skipping in_progress is allowed.
	require.NoError(t, svc.SetStageStatus(ctx, pipeline.ID, services.StageTemporal, "skipped"))
	require.NoError(t, svc.SetStageStatus(ctx, pipeline.ID, services.StageLLM, "failed"))
	require.NoError(t, svc.SetStageStatus(ctx, pipeline.ID, services.StageGap, "in_progress"))

	got, err := svc.GetPipeline(ctx, "exec-stages")
	require.NoError(t, err)
	assert.Equal(t, trendpipelineexecution.Stage1ClusteringStatusCompleted, got.Stage1ClusteringStatus)
	assert.Equal(t, trendpipelineexecution.Stage2TemporalStatusSkipped, got.Stage2TemporalStatus)
	assert.Equal(t, trendpipelineexecution.Stage3LlmStatusFailed, got.Stage3LlmStatus)
	assert.Equal(t, trendpipelineexecution.Stage4GapStatusInProgress, got.Stage4GapStatus)

	assert.True(t, services.IsValidationError(
		svc.SetStageStatus(ctx, pipeline.ID, services.StageGap, "exploded")))
	assert.ErrorIs(t, svc.SetStageStatus(ctx, 999999, services.StageGap, "completed"), services.ErrNotFound)
}

func TestSaveClusters_Validation(t *testing.T) {
	svc := newTrendService(t)
	ctx := context.Background()
	pipeline := createTestPipeline(t, svc, "exec-validate")

	_, err := svc.SaveClusters(ctx, pipeline.ID, []services.ClusterInput{
		{TopicID: -1, Label: "outliers", Size: 0},
	})
	assert.True(t, services.IsValidationError(err), "the outlier bucket is not a cluster")

	_, err = svc.SaveClusters(ctx, pipeline.ID, []services.ClusterInput{
		{TopicID: 0, Label: "x", Size: 3, DocumentIndices: []int{1}, DocumentIDs: []string{"a"}},
	})
	assert.True(t, services.IsValidationError(err), "size must match document indices")
}

func TestTopicPersistence(t *testing.T) {
	svc := newTrendService(t)
	ctx := context.Background()
	pipeline := createTestPipeline(t, svc, "exec-topics")
	clusters := saveTestClusters(t, svc, pipeline.ID)
	require.Len(t, clusters, 2)

	drift := 0.12
	require.NoError(t, svc.SaveTemporalMetrics(ctx, []services.TemporalMetricsInput{
		{
			TopicClusterID: clusters[0].ID,
			WindowStart:    time.Now().AddDate(0, 0, -365),
			WindowEnd:      time.Now(),
			Volume:         2,
			Velocity:       1.8,
			VelocityTrend:  "accelerating",
			FreshnessRatio: 0.5,
			SourceDiversity: 2,
			CohesionScore:  0.91,
			PotentialScore: 0.72,
			DriftDetected:  false,
			DriftDistance:  &drift,
		},
	}))

	require.NoError(t, svc.SaveTrendAnalysis(ctx, services.TrendAnalysisInput{
		TopicClusterID:  clusters[0].ID,
		Synthesis:       "Vaccines back in the cycle.",
		SaturatedAngles: []string{"approval timelines"},
		Opportunities:   []string{"logistics"},
		LLMModelUsed:    "test-model",
		ProcessingTime:  1.2,
	}))

	recs, err := svc.SaveRecommendations(ctx, []services.RecommendationInput{
		{
			TopicClusterID:       clusters[0].ID,
			Title:                "Cold chain logistics deep dive",
			Hook:                 "Distribution is the bottleneck.",
			Outline:              []string{"intro", "data"},
			DifferentiationScore: 0.9,
			EffortLevel:          articlerecommendation.EffortLevelComplex,
		},
		{
			TopicClusterID:       clusters[0].ID,
			Title:                "Explainer",
			DifferentiationScore: 0.4,
			// Empty effort defaults to medium.
		},
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	require.NoError(t, svc.SaveCoverage(ctx, []services.CoverageInput{
		{
			ClientDomain:   "client.example.com",
			TopicClusterID: clusters[0].ID,
			ClientCount:    1,
			CompetitorCount: 1,
			DistinctCompetitorDomains: 1,
			AvgCompetitor:  1,
			CoverageScore:  1.0,
			Level:          coverageanalysis.LevelGood,
		},
	}))

	topics, err := svc.GetTopics(ctx, pipeline.ID)
	require.NoError(t, err)
	require.Len(t, topics, 2)

	// Ordered by descending size.
	top := topics[0]
	assert.Equal(t, 0, top.Cluster.TopicID)
	require.NotNil(t, top.TemporalMetrics)
	assert.Equal(t, "accelerating", top.TemporalMetrics.VelocityTrend)
	require.NotNil(t, top.Analysis)
	assert.Equal(t, "Vaccines back in the cycle.", top.Analysis.Synthesis)
	require.Len(t, top.Recommendations, 2)
	assert.Equal(t, "Cold chain logistics deep dive", top.Recommendations[0].Title,
		"recommendations ordered by differentiation")
	assert.Equal(t, articlerecommendation.EffortLevelMedium, top.Recommendations[1].EffortLevel)
	require.NotNil(t, top.Coverage)
	assert.Equal(t, coverageanalysis.LevelGood, top.Coverage.Level)

	second := topics[1]
	assert.Equal(t, 1, second.Cluster.TopicID)
	assert.Nil(t, second.TemporalMetrics)
	assert.Nil(t, second.Analysis)
	assert.Empty(t, second.Recommendations)
}

func TestOutlierPersistence(t *testing.T) {
	svc := newTrendService(t)
	ctx := context.Background()
	pipeline := createTestPipeline(t, svc, "exec-outliers")

	near := 0
	require.NoError(t, svc.SaveOutliers(ctx, pipeline.ID, []services.OutlierInput{
		{DocumentID: "doc-9", NearestTopicID: &near, PotentialCategory: "health", EmbeddingDistance: 0.4},
		{DocumentID: "doc-8", EmbeddingDistance: 0.9},
	}))

	outliers, err := svc.GetOutliers(ctx, pipeline.ID)
	require.NoError(t, err)
	require.Len(t, outliers, 2)
	assert.Equal(t, "doc-8", outliers[0].DocumentID, "farthest outlier first")

	assert.NoError(t, svc.SaveOutliers(ctx, pipeline.ID, nil))
}

func TestSaveOutlierAnalysis(t *testing.T) {
	svc := newTrendService(t)
	ctx := context.Background()
	pipeline := createTestPipeline(t, svc, "exec-outlier-verdict")

	require.NoError(t, svc.SaveOutlierAnalysis(ctx, pipeline.ID, map[string]interface{}{
		"common_thread":        "quantum networking",
		"disruption_potential": "high",
		"recommendation":       "investigate",
	}))

	got, err := svc.GetPipeline(ctx, "exec-outlier-verdict")
	require.NoError(t, err)
	require.NotNil(t, got.OutlierAnalysis)
	assert.Equal(t, "investigate", got.OutlierAnalysis["recommendation"])
	assert.Equal(t, "quantum networking", got.OutlierAnalysis["common_thread"])

	assert.ErrorIs(t, svc.SaveOutlierAnalysis(ctx, 999999, map[string]interface{}{"recommendation": "watch"}),
		services.ErrNotFound)
}

func TestStage4AndRoadmap(t *testing.T) {
	svc := newTrendService(t)
	ctx := context.Background()
	pipeline := createTestPipeline(t, svc, "exec-roadmap")
	clusters := saveTestClusters(t, svc, pipeline.ID)
	client := "client.example.com"

	gaps, err := svc.SaveGaps(ctx, []services.GapInput{
		{
			ClientDomain:   client,
			TopicClusterID: clusters[0].ID,
			CompetitorCount: 6,
			AvgCompetitor:  3,
			CoverageScore:  0.1,
			Level:          editorialgap.LevelGap,
			PriorityScore:  0.81,
		},
		{
			ClientDomain:   client,
			TopicClusterID: clusters[1].ID,
			ClientCount:    1,
			CompetitorCount: 3,
			AvgCompetitor:  3,
			CoverageScore:  0.33,
			Level:          editorialgap.LevelWeak,
			PriorityScore:  0.55,
		},
	})
	require.NoError(t, err)
	require.Len(t, gaps, 2)

	require.NoError(t, svc.SaveStrengths(ctx, []services.StrengthInput{
		{ClientDomain: client, TopicClusterID: clusters[0].ID, ClientCount: 9, CoverageScore: 1.8},
	}))

	recs, err := svc.SaveRecommendations(ctx, []services.RecommendationInput{
		{TopicClusterID: clusters[0].ID, Title: "Idea A", EffortLevel: articlerecommendation.EffortLevelEasy},
		{TopicClusterID: clusters[1].ID, Title: "Idea B", EffortLevel: articlerecommendation.EffortLevelMedium},
	})
	require.NoError(t, err)

	require.NoError(t, svc.ReplaceRoadmap(ctx, client, []services.RoadmapEntryInput{
		{
			GapID:            gaps[0].ID,
			RecommendationID: recs[0].ID,
			PriorityTier:     contentroadmap.PriorityTierHigh,
			EstimatedEffort:  contentroadmap.EstimatedEffortEasy,
		},
		{
			GapID:            gaps[1].ID,
			RecommendationID: recs[1].ID,
			PriorityTier:     contentroadmap.PriorityTierMedium,
			EstimatedEffort:  contentroadmap.EstimatedEffortMedium,
		},
	}))

	roadmap, err := svc.GetRoadmap(ctx, client)
	require.NoError(t, err)
	require.Len(t, roadmap, 2)
	assert.Equal(t, 1, roadmap[0].PriorityOrder)
	assert.Equal(t, 2, roadmap[1].PriorityOrder)
	assert.Equal(t, contentroadmap.PriorityTierHigh, roadmap[0].PriorityTier)

	// Replacing drops the old plan entirely.
	require.NoError(t, svc.ReplaceRoadmap(ctx, client, []services.RoadmapEntryInput{
		{
			GapID:            gaps[1].ID,
			RecommendationID: recs[1].ID,
			PriorityTier:     contentroadmap.PriorityTierHigh,
			EstimatedEffort:  contentroadmap.EstimatedEffortMedium,
		},
	}))
	roadmap, err = svc.GetRoadmap(ctx, client)
	require.NoError(t, err)
	require.Len(t, roadmap, 1)
	assert.Equal(t, gaps[1].ID, roadmap[0].GapID)
	assert.Equal(t, 1, roadmap[0].PriorityOrder)

	storedGaps, err := svc.GetGaps(ctx, client)
	require.NoError(t, err)
	require.Len(t, storedGaps, 2)
	assert.Equal(t, 0.81, storedGaps[0].PriorityScore, "descending priority")

	strengths, err := svc.GetStrengths(ctx, client)
	require.NoError(t, err)
	require.Len(t, strengths, 1)
}

func TestSetRecommendationStatus(t *testing.T) {
	svc := newTrendService(t)
	ctx := context.Background()
	pipeline := createTestPipeline(t, svc, "exec-rec-status")
	clusters := saveTestClusters(t, svc, pipeline.ID)

	recs, err := svc.SaveRecommendations(ctx, []services.RecommendationInput{
		{TopicClusterID: clusters[0].ID, Title: "Idea"},
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, articlerecommendation.StatusSuggested, recs[0].Status)

	require.NoError(t, svc.SetRecommendationStatus(ctx, recs[0].ID, articlerecommendation.StatusAccepted))
	assert.ErrorIs(t, svc.SetRecommendationStatus(ctx, 999999, articlerecommendation.StatusRejected),
		services.ErrNotFound)
}

func TestConcurrentStageAdvance(t *testing.T) {
	svc := newTrendService(t)
	ctx := context.Background()
	pipeline := createTestPipeline(t, svc, "exec-concurrent")

	// Two workers racing the same forward transition: exactly one outcome,
	// no torn state, and the losing repeat is a no-op.
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			results <- svc.SetStageStatus(ctx, pipeline.ID, services.StageClustering, "in_progress")
		}()
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, <-results, fmt.Sprintf("worker %d", i))
	}

	got, err := svc.GetPipeline(ctx, "exec-concurrent")
	require.NoError(t, err)
	assert.Equal(t, trendpipelineexecution.Stage1ClusteringStatusInProgress, got.Stage1ClusteringStatus)
}
