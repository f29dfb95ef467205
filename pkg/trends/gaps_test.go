package trends

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGapAnalyzer() *GapAnalyzer {
	return NewGapAnalyzer(GapConfig{})
}

func TestComputeCoverage(t *testing.T) {
	g := testGapAnalyzer()
	client := "client.example.com"

	t.Run("balanced topic", func(t *testing.T) {
		domains := []string{
			client, client, client,
			"comp-a.com", "comp-a.com", "comp-b.com", "comp-b.com",
		}
		cov := g.ComputeCoverage(7, domains, client)

		assert.Equal(t, 7, cov.TopicID)
		assert.Equal(t, 3, cov.ClientCount)
		assert.Equal(t, 4, cov.CompetitorCount)
		assert.Equal(t, 2, cov.DistinctCompetitorDomains)
		assert.InDelta(t, 2.0, cov.AvgCompetitor, 1e-9)
		assert.InDelta(t, 1.5, cov.CoverageScore, 1e-9)
		assert.Equal(t, LevelExcellent, cov.Level)
	})

	t.Run("client only scores as good", func(t *testing.T) {
		cov := g.ComputeCoverage(1, []string{client, client}, client)
		assert.Equal(t, 1.0, cov.CoverageScore)
		assert.Equal(t, LevelGood, cov.Level)
	})

	t.Run("competitors only is a gap", func(t *testing.T) {
		cov := g.ComputeCoverage(2, []string{"comp-a.com", "comp-b.com"}, client)
		assert.Equal(t, 0.0, cov.CoverageScore)
		assert.Equal(t, LevelGap, cov.Level)
	})

	t.Run("empty topic scores zero", func(t *testing.T) {
		cov := g.ComputeCoverage(3, nil, client)
		assert.Equal(t, 0.0, cov.CoverageScore)
		assert.Equal(t, LevelGap, cov.Level)
	})
}

func TestClassifyCoverage(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.5, LevelExcellent},
		{1.49, LevelGood},
		{0.8, LevelGood},
		{0.79, LevelWeak},
		{0.3, LevelWeak},
		{0.29, LevelGap},
		{0.0, LevelGap},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyCoverage(tt.score), "score %v", tt.score)
	}
}

func TestPriorityScore(t *testing.T) {
	g := testGapAnalyzer()
	w := DefaultGapWeights()

	cov := Coverage{
		TopicID:                   1,
		CoverageScore:             0.2,
		DistinctCompetitorDomains: 4,
	}
	got := g.PriorityScore(cov, 0.7, 1.8)

	want := w.CoverageGap*0.8 +
		w.TopicPotential*0.7 +
		w.Velocity*(1.8/2) +
		w.CompetitorPresence*0.4 +
		w.Effort*0.5
	assert.InDelta(t, want, got, 1e-4)

	t.Run("coverage above parity clamps the deficit", func(t *testing.T) {
		over := Coverage{CoverageScore: 1.4}
		base := Coverage{CoverageScore: 1.0}
		assert.Equal(t, g.PriorityScore(base, 0, 0), g.PriorityScore(over, 0, 0))
	})
}

func TestDetectGaps(t *testing.T) {
	g := testGapAnalyzer()
	coverages := []Coverage{
		{TopicID: 0, CoverageScore: 1.6, Level: LevelExcellent},
		{TopicID: 1, CoverageScore: 0.9, Level: LevelGood},
		{TopicID: 2, CoverageScore: 0.1, Level: LevelGap, DistinctCompetitorDomains: 3},
		{TopicID: 3, CoverageScore: 0.5, Level: LevelWeak, DistinctCompetitorDomains: 1},
	}
	potentials := map[int]float64{2: 0.8, 3: 0.2}
	velocities := map[int]float64{2: 1.9, 3: 0.5}

	gaps := g.DetectGaps(coverages, potentials, velocities)
	require.Len(t, gaps, 2, "good and excellent topics are not gaps")

	// Topic 2 has the larger deficit, potential and velocity, so it ranks
	// first.
	assert.Equal(t, 2, gaps[0].TopicID)
	assert.Equal(t, 3, gaps[1].TopicID)
	assert.Greater(t, gaps[0].PriorityScore, gaps[1].PriorityScore)
}

func TestDetectGaps_TieBreaksOnTopicID(t *testing.T) {
	g := testGapAnalyzer()
	coverages := []Coverage{
		{TopicID: 9, CoverageScore: 0.1, Level: LevelGap},
		{TopicID: 4, CoverageScore: 0.1, Level: LevelGap},
	}
	gaps := g.DetectGaps(coverages, nil, nil)
	require.Len(t, gaps, 2)
	assert.Equal(t, 4, gaps[0].TopicID)
	assert.Equal(t, 9, gaps[1].TopicID)
}

func TestDetectStrengths(t *testing.T) {
	g := testGapAnalyzer()
	coverages := []Coverage{
		{TopicID: 0, CoverageScore: 1.3, ClientCount: 8, CompetitorCount: 4},
		{TopicID: 1, CoverageScore: 1.19},
		{TopicID: 2, CoverageScore: 2.5, ClientCount: 10},
	}

	strengths := g.DetectStrengths(coverages)
	require.Len(t, strengths, 2)
	assert.Equal(t, 2, strengths[0].TopicID, "sorted by descending score")
	assert.Equal(t, 0, strengths[1].TopicID)
	assert.Equal(t, 8, strengths[1].ClientCount)
}

func makeGaps(n int) []Gap {
	gaps := make([]Gap, n)
	for i := range gaps {
		gaps[i] = Gap{
			Coverage:      Coverage{TopicID: i},
			PriorityScore: float64(n-i) / float64(n),
		}
	}
	return gaps
}

func singleOption(gaps []Gap, effort string) map[int][]RecommendationOption {
	options := map[int][]RecommendationOption{}
	for _, gap := range gaps {
		options[gap.TopicID] = []RecommendationOption{
			{ID: 100 + gap.TopicID, EffortLevel: effort},
		}
	}
	return options
}

func TestBuildRoadmap_TierQuotas(t *testing.T) {
	g := testGapAnalyzer()
	gaps := makeGaps(12)

	entries := g.BuildRoadmap(gaps, singleOption(gaps, "medium"))
	require.Len(t, entries, 10, "capped at MaxRoadmapItems")

	tiers := map[string]int{}
	for i, e := range entries {
		tiers[e.PriorityTier]++
		assert.Equal(t, i+1, e.PriorityOrder, "priority order is dense")
		assert.Equal(t, 100+e.Gap.TopicID, e.RecommendationID)
	}
	assert.Equal(t, map[string]int{"high": 3, "medium": 4, "low": 3}, tiers)

	// The highest-priority gaps land in the high tier.
	assert.Equal(t, "high", entries[0].PriorityTier)
	assert.Equal(t, 0, entries[0].Gap.TopicID)
	assert.Equal(t, "low", entries[9].PriorityTier)
}

func TestBuildRoadmap_SkipsGapsWithoutOptions(t *testing.T) {
	g := testGapAnalyzer()
	gaps := makeGaps(4)

	options := singleOption(gaps, "easy")
	delete(options, 1)

	entries := g.BuildRoadmap(gaps, options)
	require.Len(t, entries, 3)
	assert.Equal(t, 0, entries[0].Gap.TopicID)
	assert.Equal(t, 2, entries[1].Gap.TopicID)
	assert.Equal(t, 2, entries[1].PriorityOrder, "order stays dense across skips")
	assert.Equal(t, 3, entries[2].Gap.TopicID)
}

func TestBuildRoadmap_EffortBalance(t *testing.T) {
	g := testGapAnalyzer()
	gaps := makeGaps(10)

	// Every gap offers all three effort levels; the balance rule should
	// track the configured 30/45/25 split across 10 items.
	options := map[int][]RecommendationOption{}
	for _, gap := range gaps {
		options[gap.TopicID] = []RecommendationOption{
			{ID: gap.TopicID*10 + 1, EffortLevel: "easy"},
			{ID: gap.TopicID*10 + 2, EffortLevel: "medium"},
			{ID: gap.TopicID*10 + 3, EffortLevel: "complex"},
		}
	}

	entries := g.BuildRoadmap(gaps, options)
	require.Len(t, entries, 10)

	efforts := map[string]int{}
	for _, e := range entries {
		efforts[e.EstimatedEffort]++
	}
	assert.Equal(t, 3, efforts["easy"])
	assert.Equal(t, 5, efforts["medium"], "0.45 rounds to a 5-item target")
	assert.Equal(t, 2, efforts["complex"])
}

func TestBuildRoadmap_Empty(t *testing.T) {
	g := testGapAnalyzer()
	assert.Empty(t, g.BuildRoadmap(nil, nil))
}
