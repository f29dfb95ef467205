package trends

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendscope/trendscope/pkg/embeddings"
)

func fixedAnalyzer(now time.Time) *TemporalAnalyzer {
	a := NewTemporalAnalyzer(TemporalConfig{})
	a.now = func() time.Time { return now }
	return a
}

func payloadAt(domain string, published time.Time) embeddings.ArticlePayload {
	return embeddings.ArticlePayload{Domain: domain, PublishedDate: &published}
}

func TestClassifyVelocity(t *testing.T) {
	tests := []struct {
		velocity float64
		want     string
	}{
		{1.5, TrendAccelerating},
		{2.3, TrendAccelerating},
		{1.49, TrendStable},
		{1.0, TrendStable},
		{0.68, TrendStable},
		{0.67, TrendDecelerating},
		{0.1, TrendDecelerating},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyVelocity(tt.velocity), "velocity %v", tt.velocity)
	}
}

func TestClassifyFreshness(t *testing.T) {
	tests := []struct {
		freshness float64
		want      string
	}{
		{0.4, FreshnessHot}, // boundary is inclusive
		{0.9, FreshnessHot},
		{0.39, FreshnessWarm},
		{0.06, FreshnessWarm},
		{0.05, FreshnessCold},
		{0.0, FreshnessCold},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyFreshness(tt.freshness), "freshness %v", tt.freshness)
	}
}

func TestClassifyDiversity(t *testing.T) {
	assert.Equal(t, DiversityNiche, classifyDiversity(0))
	assert.Equal(t, DiversityNiche, classifyDiversity(1))
	assert.Equal(t, DiversityModerate, classifyDiversity(2))
	assert.Equal(t, DiversityModerate, classifyDiversity(4))
	assert.Equal(t, DiversityMainstream, classifyDiversity(5))
	assert.Equal(t, DiversityMainstream, classifyDiversity(12))
}

func TestAnalyze_WindowVolumesAndFreshness(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	a := fixedAnalyzer(now)

	payloads := []embeddings.ArticlePayload{
		payloadAt("a.com", now.AddDate(0, 0, -1)),  // in 7d
		payloadAt("a.com", now.AddDate(0, 0, -3)),  // in 7d
		payloadAt("b.com", now.AddDate(0, 0, -20)), // in 30d
		payloadAt("c.com", now.AddDate(0, 0, -60)), // in 90d
		{Domain: "d.com"},                          // no date: counted in volume only
	}
	vectors := [][]float32{{1, 0}, {1, 0}, {1, 0}, {1, 0}, {1, 0}}

	m := a.Analyze(vectors, payloads, nil)

	assert.Equal(t, 5, m.Volume)
	assert.Equal(t, 2, m.WindowVolumes[7])
	assert.Equal(t, 3, m.WindowVolumes[30])
	assert.Equal(t, 4, m.WindowVolumes[90])
	assert.Equal(t, 4, m.WindowVolumes[365])

	// velocity = (2/7) / (3/30)
	assert.InDelta(t, (2.0/7.0)/(3.0/30.0), m.Velocity, 1e-9)
	assert.Equal(t, TrendAccelerating, m.VelocityTrend)

	assert.InDelta(t, 0.4, m.FreshnessRatio, 1e-9)
	assert.Equal(t, FreshnessHot, m.FreshnessLabel)

	assert.Equal(t, 4, m.SourceDiversity)
	assert.Equal(t, DiversityModerate, m.DiversityLabel)

	// Identical vectors: perfect cohesion.
	assert.InDelta(t, 1.0, m.CohesionScore, 1e-9)

	assert.Nil(t, m.DriftDistance, "no persisted centroid, drift not evaluated")
	assert.False(t, m.DriftDetected)

	assert.Equal(t, now.AddDate(0, 0, -365), m.WindowStart)
	assert.Equal(t, now, m.WindowEnd)
}

func TestAnalyze_VelocityDefaultsToStable(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	a := fixedAnalyzer(now)

	// No activity in the last 7 days: the ratio is undefined, velocity
	// defaults to 1.0 (stable).
	payloads := []embeddings.ArticlePayload{
		payloadAt("a.com", now.AddDate(0, 0, -10)),
		payloadAt("a.com", now.AddDate(0, 0, -15)),
	}
	m := a.Analyze([][]float32{{1}, {1}}, payloads, nil)

	assert.Equal(t, 1.0, m.Velocity)
	assert.Equal(t, TrendStable, m.VelocityTrend)
}

func TestAnalyze_PotentialScoreRounding(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	a := fixedAnalyzer(now)

	var payloads []embeddings.ArticlePayload
	var vectors [][]float32
	for i := 0; i < 10; i++ {
		payloads = append(payloads, payloadAt("a.com", now.AddDate(0, 0, -i)))
		vectors = append(vectors, []float32{1, 0})
	}
	m := a.Analyze(vectors, payloads, nil)

	assert.GreaterOrEqual(t, m.PotentialScore, 0.0)
	assert.LessOrEqual(t, m.PotentialScore, 1.0)
	// Rounded to 4 decimals.
	assert.Equal(t, m.PotentialScore, math.Round(m.PotentialScore*10000)/10000)
}

func TestAnalyze_Drift(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	a := fixedAnalyzer(now)

	recent := []float32{1, 0}
	older := []float32{0, 1}
	var payloads []embeddings.ArticlePayload
	var vectors [][]float32
	for i := 0; i < 3; i++ {
		payloads = append(payloads, payloadAt("a.com", now.AddDate(0, 0, -1)))
		vectors = append(vectors, recent)
	}
	for i := 0; i < 3; i++ {
		payloads = append(payloads, payloadAt("a.com", now.AddDate(0, 0, -30)))
		vectors = append(vectors, older)
	}

	t.Run("detected when recent centroid moved", func(t *testing.T) {
		m := a.Analyze(vectors, payloads, []float32{0, 1})
		require.NotNil(t, m.DriftDistance)
		// Recent centroid (1,0) vs persisted (0,1): distance sqrt(2).
		assert.InDelta(t, 1.4142, *m.DriftDistance, 1e-3)
		assert.True(t, m.DriftDetected)
	})

	t.Run("not detected when centroid unchanged", func(t *testing.T) {
		m := a.Analyze(vectors, payloads, []float32{1, 0})
		require.NotNil(t, m.DriftDistance)
		assert.InDelta(t, 0.0, *m.DriftDistance, 1e-9)
		assert.False(t, m.DriftDetected)
	})

	t.Run("skipped with fewer than 3 older members", func(t *testing.T) {
		m := a.Analyze(vectors[:4], payloads[:4], []float32{0, 1})
		assert.Nil(t, m.DriftDistance)
	})
}

func TestTopicsOverTime(t *testing.T) {
	now := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	a := fixedAnalyzer(now)

	var payloads []embeddings.ArticlePayload
	for i := 0; i < 40; i++ {
		payloads = append(payloads, payloadAt("a.com", now.AddDate(0, 0, -i)))
	}
	payloads = append(payloads, embeddings.ArticlePayload{Domain: "a.com"}) // undated

	bins := a.TopicsOverTime(payloads)
	require.Len(t, bins, 20)

	total := 0
	for i, bin := range bins {
		total += bin.Count
		if i > 0 {
			assert.Equal(t, bins[i-1].End, bin.Start, "bins must be contiguous")
		}
	}
	assert.Equal(t, 40, total, "every dated document lands in exactly one bin")
}

func TestTopicsOverTime_DegenerateRange(t *testing.T) {
	now := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	a := fixedAnalyzer(now)

	same := now.AddDate(0, 0, -5)
	payloads := []embeddings.ArticlePayload{
		payloadAt("a.com", same),
		payloadAt("b.com", same),
	}
	assert.Nil(t, a.TopicsOverTime(payloads), "zero time span yields no histogram")
}
