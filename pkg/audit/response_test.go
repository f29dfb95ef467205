package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/coverageanalysis"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/pkg/models"
	"github.com/trendscope/trendscope/pkg/services"
)

// seedAuditView persists a finished pipeline with one accelerating topic and
// one under-covered topic, plus a recommendation, a gap and a roadmap entry.
func seedAuditView(t *testing.T, f *auditFixture, domain string) {
	t.Helper()
	ctx := context.Background()

	pipeline, err := f.trends.CreatePipeline(ctx, "exec-view-"+domain, domain, []string{domain}, 90, 6)
	require.NoError(t, err)

	clusters, err := f.trends.SaveClusters(ctx, pipeline.ID, []services.ClusterInput{
		{
			TopicID:         0,
			Label:           "grid / storage / battery",
			Size:            4,
			DocumentIndices: []int{0, 1, 2, 3},
			DocumentIDs:     []string{"d0", "d1", "d2", "d3"},
			CoherenceScore:  0.81,
		},
		{
			TopicID:         1,
			Label:           "hydrogen / pipeline",
			Size:            2,
			DocumentIndices: []int{4, 5},
			DocumentIDs:     []string{"d4", "d5"},
			CoherenceScore:  0.7,
		},
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, f.trends.SaveTemporalMetrics(ctx, []services.TemporalMetricsInput{
		{
			TopicClusterID: clusters[0].ID,
			WindowStart:    now.AddDate(0, -3, 0),
			WindowEnd:      now,
			Volume:         4,
			Velocity:       2.1,
			VelocityTrend:  "accelerating",
			FreshnessRatio: 0.5,
			CohesionScore:  0.9,
			PotentialScore: 0.72,
		},
		{
			TopicClusterID: clusters[1].ID,
			WindowStart:    now.AddDate(0, -3, 0),
			WindowEnd:      now,
			Volume:         2,
			Velocity:       0.3,
			VelocityTrend:  "stable",
			FreshnessRatio: 0.1,
			CohesionScore:  0.6,
			PotentialScore: 0.2,
		},
	}))

	recs, err := f.trends.SaveRecommendations(ctx, []services.RecommendationInput{{
		TopicClusterID:       clusters[0].ID,
		Title:                "Grid storage beyond lithium",
		Hook:                 "Sodium cells reach price parity.",
		DifferentiationScore: 0.8,
	}})
	require.NoError(t, err)
	require.Len(t, recs, 1)

	require.NoError(t, f.trends.SaveCoverage(ctx, []services.CoverageInput{{
		ClientDomain:   domain,
		TopicClusterID: clusters[1].ID,
		ClientCount:    0,
		AvgCompetitor:  2,
		Level:          coverageanalysis.LevelGap,
	}}))
	gaps, err := f.trends.SaveGaps(ctx, []services.GapInput{{
		ClientDomain:   domain,
		TopicClusterID: clusters[1].ID,
		AvgCompetitor:  2,
		Level:          editorialgap.LevelGap,
		PriorityScore:  0.65,
	}})
	require.NoError(t, err)
	require.Len(t, gaps, 1)

	require.NoError(t, f.trends.ReplaceRoadmap(ctx, domain, []services.RoadmapEntryInput{{
		GapID:            gaps[0].ID,
		RecommendationID: recs[0].ID,
		PriorityTier:     contentroadmap.PriorityTierHigh,
		EstimatedEffort:  contentroadmap.EstimatedEffortMedium,
	}}))
}

func TestBuildResponse_TrendingIndependentOfTemporalFlag(t *testing.T) {
	f := newAuditFixture(t, collabStub{})
	ctx := context.Background()
	domain := "view.example.com"
	seedAuditView(t, f, domain)

	flags := models.AuditViewFlags{
		IncludeTopics:   true,
		IncludeTrending: true,
		IncludeTemporal: false,
		IncludeAnalyses: true,
	}
	resp, err := f.orch.BuildResponse(ctx, domain, models.DataStatus{}, flags)
	require.NoError(t, err)

	// Trending is selected from temporal data even when the temporal block is
	// excluded from the serialized topics.
	require.Len(t, resp.Trending, 1)
	assert.Equal(t, "grid / storage / battery", resp.Trending[0].Label)
	assert.Nil(t, resp.Trending[0].Temporal)
	require.Len(t, resp.Topics, 2)
	for _, topic := range resp.Topics {
		assert.Nil(t, topic.Temporal)
	}

	// With the flag on, the same selection carries the metrics.
	full, err := f.orch.BuildResponse(ctx, domain, models.DataStatus{}, models.DefaultAuditViewFlags())
	require.NoError(t, err)
	require.Len(t, full.Trending, 1)
	require.NotNil(t, full.Trending[0].Temporal)
	assert.Equal(t, "accelerating", full.Trending[0].Temporal.VelocityTrend)
}

func TestBuildResponse_RoadmapKeepsRecommendationsWithoutAnalyses(t *testing.T) {
	f := newAuditFixture(t, collabStub{})
	ctx := context.Background()
	domain := "roadmap.example.com"
	seedAuditView(t, f, domain)

	flags := models.AuditViewFlags{
		IncludeTopics:        true,
		IncludeOpportunities: true,
		IncludeAnalyses:      false,
	}
	resp, err := f.orch.BuildResponse(ctx, domain, models.DataStatus{}, flags)
	require.NoError(t, err)

	// The roadmap resolves its recommendation from the full topic data, not
	// from the flag-pruned view.
	require.Len(t, resp.Roadmap, 1)
	require.NotNil(t, resp.Roadmap[0].Recommendation)
	assert.Equal(t, "Grid storage beyond lithium", resp.Roadmap[0].Recommendation.Title)

	require.Len(t, resp.Opportunities, 1)
	assert.Equal(t, "hydrogen / pipeline", resp.Opportunities[0].Label)
	for _, topic := range resp.Topics {
		assert.Nil(t, topic.Analysis)
		assert.Empty(t, topic.Recommendations)
	}
}
