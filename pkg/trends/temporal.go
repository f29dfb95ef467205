package trends

import (
	"math"
	"time"

	"github.com/trendscope/trendscope/pkg/embeddings"
)

// Trend buckets for velocity.
const (
	TrendAccelerating = "accelerating"
	TrendStable       = "stable"
	TrendDecelerating = "decelerating"
)

// Freshness buckets.
const (
	FreshnessHot  = "hot"
	FreshnessWarm = "warm"
	FreshnessCold = "cold"
)

// Diversity buckets.
const (
	DiversityNiche      = "niche"
	DiversityModerate   = "moderate"
	DiversityMainstream = "mainstream"
)

// PotentialWeights are the weights of the potential score components.
type PotentialWeights struct {
	Velocity  float64
	Freshness float64
	Diversity float64
	Cohesion  float64
	Size      float64
}

// DefaultPotentialWeights balances recency-driven and volume-driven signals.
func DefaultPotentialWeights() PotentialWeights {
	return PotentialWeights{
		Velocity:  0.30,
		Freshness: 0.25,
		Diversity: 0.15,
		Cohesion:  0.15,
		Size:      0.15,
	}
}

// TemporalConfig controls the analyzer.
type TemporalConfig struct {
	WindowsDays    []int
	HistogramBins  int
	DriftThreshold float64
	Weights        PotentialWeights
}

// TemporalMetrics is the Stage 2 output for one cluster.
type TemporalMetrics struct {
	WindowStart     time.Time
	WindowEnd       time.Time
	Volume          int
	WindowVolumes   map[int]int // window days -> volume
	Velocity        float64
	VelocityTrend   string
	FreshnessRatio  float64
	FreshnessLabel  string
	SourceDiversity int
	DiversityLabel  string
	CohesionScore   float64
	PotentialScore  float64
	DriftDetected   bool
	DriftDistance   *float64
}

// HistogramBin is one bin of the topics-over-time histogram.
type HistogramBin struct {
	Start time.Time
	End   time.Time
	Count int
}

// TemporalAnalyzer computes the windowed dynamics of topic clusters.
type TemporalAnalyzer struct {
	cfg TemporalConfig
	now func() time.Time
}

// NewTemporalAnalyzer creates an analyzer.
func NewTemporalAnalyzer(cfg TemporalConfig) *TemporalAnalyzer {
	if len(cfg.WindowsDays) == 0 {
		cfg.WindowsDays = []int{7, 30, 90, 365}
	}
	if cfg.HistogramBins <= 0 {
		cfg.HistogramBins = 20
	}
	if cfg.DriftThreshold <= 0 {
		cfg.DriftThreshold = 0.35
	}
	if cfg.Weights == (PotentialWeights{}) {
		cfg.Weights = DefaultPotentialWeights()
	}
	return &TemporalAnalyzer{cfg: cfg, now: time.Now}
}

// Analyze computes metrics for one cluster. vectors and payloads are the
// cluster's members; persistedCentroid may be nil (drift not evaluated).
func (a *TemporalAnalyzer) Analyze(vectors [][]float32, payloads []embeddings.ArticlePayload, persistedCentroid []float32) TemporalMetrics {
	now := a.now().UTC()
	total := len(payloads)

	windowVolumes := make(map[int]int, len(a.cfg.WindowsDays))
	maxWindow := 0
	for _, w := range a.cfg.WindowsDays {
		if w > maxWindow {
			maxWindow = w
		}
		cutoff := now.AddDate(0, 0, -w)
		count := 0
		for _, p := range payloads {
			if p.PublishedDate != nil && !p.PublishedDate.Before(cutoff) {
				count++
			}
		}
		windowVolumes[w] = count
	}

	vol7 := windowVolumes[7]
	vol30 := windowVolumes[30]

	velocity := 1.0
	rate7 := float64(vol7) / 7
	rate30 := float64(vol30) / 30
	if rate7 > 0 && rate30 > 0 {
		velocity = rate7 / rate30
	}

	freshness := 0.0
	if total > 0 {
		freshness = float64(vol7) / float64(total)
	}

	domains := map[string]struct{}{}
	for _, p := range payloads {
		if p.Domain != "" {
			domains[p.Domain] = struct{}{}
		}
	}
	diversity := len(domains)

	cohesion := pairwiseCosineMean(vectors)

	metrics := TemporalMetrics{
		WindowStart:     now.AddDate(0, 0, -maxWindow),
		WindowEnd:       now,
		Volume:          total,
		WindowVolumes:   windowVolumes,
		Velocity:        velocity,
		VelocityTrend:   classifyVelocity(velocity),
		FreshnessRatio:  freshness,
		FreshnessLabel:  classifyFreshness(freshness),
		SourceDiversity: diversity,
		DiversityLabel:  classifyDiversity(diversity),
		CohesionScore:   cohesion,
	}

	if dist, evaluated := a.driftDistance(vectors, payloads, persistedCentroid, now); evaluated {
		metrics.DriftDistance = &dist
		metrics.DriftDetected = dist > a.cfg.DriftThreshold
	}

	metrics.PotentialScore = a.potentialScore(metrics)
	return metrics
}

func classifyVelocity(v float64) string {
	switch {
	case v >= 1.5:
		return TrendAccelerating
	case v <= 0.67:
		return TrendDecelerating
	default:
		return TrendStable
	}
}

func classifyFreshness(f float64) string {
	switch {
	case f >= 0.4:
		return FreshnessHot
	case f <= 0.05:
		return FreshnessCold
	default:
		return FreshnessWarm
	}
}

func classifyDiversity(d int) string {
	switch {
	case d <= 1:
		return DiversityNiche
	case d >= 5:
		return DiversityMainstream
	default:
		return DiversityModerate
	}
}

// driftDistance compares the centroid of the last-7d members against the
// persisted centroid. Requires at least 3 recent and 3 older members.
func (a *TemporalAnalyzer) driftDistance(vectors [][]float32, payloads []embeddings.ArticlePayload, persisted []float32, now time.Time) (float64, bool) {
	if persisted == nil {
		return 0, false
	}
	cutoff := now.AddDate(0, 0, -7)

	var recent []int
	older := 0
	for i, p := range payloads {
		if p.PublishedDate == nil {
			continue
		}
		if p.PublishedDate.Before(cutoff) {
			older++
		} else {
			recent = append(recent, i)
		}
	}
	if len(recent) < 3 || older < 3 {
		return 0, false
	}

	recentCentroid := meanVector(vectors, recent)
	return euclideanDistance32(recentCentroid, persisted), true
}

// potentialScore is the weighted sum of capped-normalized components,
// rounded to 4 decimals.
func (a *TemporalAnalyzer) potentialScore(m TemporalMetrics) float64 {
	w := a.cfg.Weights
	score := w.Velocity*capNorm(m.Velocity, 2) +
		w.Freshness*capNorm(m.FreshnessRatio, 0.5) +
		w.Diversity*capNorm(float64(m.SourceDiversity), 10) +
		w.Cohesion*capNorm(m.CohesionScore, 1) +
		w.Size*capNorm(float64(m.Volume), 100)
	return math.Round(score*10000) / 10000
}

func capNorm(v, cap float64) float64 {
	if v > cap {
		v = cap
	}
	if v < 0 {
		v = 0
	}
	return v / cap
}

// pairwiseCosineMean is the self-pair-corrected mean pairwise cosine
// similarity.
func pairwiseCosineMean(vectors [][]float32) float64 {
	n := len(vectors)
	if n < 2 {
		return 1.0
	}
	var sum float64
	var pairs int
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			sum += CosineSimilarity32(vectors[a], vectors[b])
			pairs++
		}
	}
	return sum / float64(pairs)
}

// TopicsOverTime builds an N-bin histogram over the documents' timestamp
// range.
func (a *TemporalAnalyzer) TopicsOverTime(payloads []embeddings.ArticlePayload) []HistogramBin {
	var min, max time.Time
	for _, p := range payloads {
		if p.PublishedDate == nil {
			continue
		}
		t := *p.PublishedDate
		if min.IsZero() || t.Before(min) {
			min = t
		}
		if max.IsZero() || t.After(max) {
			max = t
		}
	}
	if min.IsZero() || !max.After(min) {
		return nil
	}

	bins := make([]HistogramBin, a.cfg.HistogramBins)
	span := max.Sub(min)
	binWidth := span / time.Duration(a.cfg.HistogramBins)
	for i := range bins {
		bins[i].Start = min.Add(time.Duration(i) * binWidth)
		bins[i].End = bins[i].Start.Add(binWidth)
	}
	for _, p := range payloads {
		if p.PublishedDate == nil {
			continue
		}
		idx := int(float64(p.PublishedDate.Sub(min)) / float64(span) * float64(a.cfg.HistogramBins))
		if idx >= a.cfg.HistogramBins {
			idx = a.cfg.HistogramBins - 1
		}
		bins[idx].Count++
	}
	return bins
}
