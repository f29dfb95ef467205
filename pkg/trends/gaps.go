package trends

import (
	"math"
	"sort"
)

// Coverage levels.
const (
	LevelExcellent = "excellent"
	LevelGood      = "good"
	LevelWeak      = "weak"
	LevelGap       = "gap"
)

// GapWeights are the components of the gap priority score.
type GapWeights struct {
	CoverageGap        float64
	TopicPotential     float64
	Velocity           float64
	CompetitorPresence float64
	Effort             float64
}

// DefaultGapWeights favors coverage deficit and topic momentum.
func DefaultGapWeights() GapWeights {
	return GapWeights{
		CoverageGap:        0.35,
		TopicPotential:     0.25,
		Velocity:           0.15,
		CompetitorPresence: 0.15,
		Effort:             0.10,
	}
}

// GapConfig controls the analyzer.
type GapConfig struct {
	Weights              GapWeights
	StrengthThreshold    float64
	PriorityDistribution map[string]int     // tier -> quota
	EffortDistribution   map[string]float64 // effort level -> target share
	MaxRoadmapItems      int
}

// Coverage is the client-vs-competitor picture of one topic.
type Coverage struct {
	TopicID                   int
	ClientCount               int
	CompetitorCount           int
	DistinctCompetitorDomains int
	AvgCompetitor             float64
	CoverageScore             float64
	Level                     string
}

// Gap is one detected editorial gap with its priority.
type Gap struct {
	Coverage
	PriorityScore float64
}

// Strength is a topic where the client meets the significance threshold.
type Strength struct {
	TopicID         int
	ClientCount     int
	CompetitorCount int
	CoverageScore   float64
}

// GapAnalyzer computes coverage, gaps, strengths and the roadmap.
type GapAnalyzer struct {
	cfg GapConfig
}

// NewGapAnalyzer creates an analyzer.
func NewGapAnalyzer(cfg GapConfig) *GapAnalyzer {
	if cfg.Weights == (GapWeights{}) {
		cfg.Weights = DefaultGapWeights()
	}
	if cfg.StrengthThreshold <= 0 {
		cfg.StrengthThreshold = 1.2
	}
	if len(cfg.PriorityDistribution) == 0 {
		cfg.PriorityDistribution = map[string]int{"high": 3, "medium": 4, "low": 3}
	}
	if len(cfg.EffortDistribution) == 0 {
		cfg.EffortDistribution = map[string]float64{"easy": 0.30, "medium": 0.45, "complex": 0.25}
	}
	if cfg.MaxRoadmapItems <= 0 {
		cfg.MaxRoadmapItems = 10
	}
	return &GapAnalyzer{cfg: cfg}
}

// ComputeCoverage derives the coverage picture of one cluster from its
// member domains.
func (g *GapAnalyzer) ComputeCoverage(topicID int, memberDomains []string, clientDomain string) Coverage {
	cov := Coverage{TopicID: topicID}
	competitorDomains := map[string]struct{}{}
	for _, d := range memberDomains {
		if d == clientDomain {
			cov.ClientCount++
		} else {
			cov.CompetitorCount++
			competitorDomains[d] = struct{}{}
		}
	}
	cov.DistinctCompetitorDomains = len(competitorDomains)

	distinct := cov.DistinctCompetitorDomains
	if distinct < 1 {
		distinct = 1
	}
	cov.AvgCompetitor = float64(cov.CompetitorCount) / float64(distinct)

	switch {
	case cov.CompetitorCount > 0:
		cov.CoverageScore = float64(cov.ClientCount) / cov.AvgCompetitor
	case cov.ClientCount > 0:
		cov.CoverageScore = 1.0
	default:
		cov.CoverageScore = 0.0
	}

	cov.Level = classifyCoverage(cov.CoverageScore)
	return cov
}

func classifyCoverage(score float64) string {
	switch {
	case score >= 1.5:
		return LevelExcellent
	case score >= 0.8:
		return LevelGood
	case score >= 0.3:
		return LevelWeak
	default:
		return LevelGap
	}
}

// PriorityScore computes the gap priority from coverage and the cluster's
// temporal metrics, rounded to 4 decimals.
func (g *GapAnalyzer) PriorityScore(cov Coverage, potential, velocity float64) float64 {
	w := g.cfg.Weights

	coverageGap := 1 - cov.CoverageScore
	if coverageGap < 0 {
		coverageGap = 0
	}

	score := w.CoverageGap*coverageGap +
		w.TopicPotential*capNorm(potential, 1) +
		w.Velocity*capNorm(velocity, 2) +
		w.CompetitorPresence*capNorm(float64(cov.DistinctCompetitorDomains), 10) +
		w.Effort*0.5
	return math.Round(score*10000) / 10000
}

// DetectGaps returns topics whose coverage falls below good, as gaps with
// priority scores, sorted by descending priority.
func (g *GapAnalyzer) DetectGaps(coverages []Coverage, potentials, velocities map[int]float64) []Gap {
	var gaps []Gap
	for _, cov := range coverages {
		if cov.Level == LevelExcellent || cov.Level == LevelGood {
			continue
		}
		gaps = append(gaps, Gap{
			Coverage:      cov,
			PriorityScore: g.PriorityScore(cov, potentials[cov.TopicID], velocities[cov.TopicID]),
		})
	}
	sort.Slice(gaps, func(a, b int) bool {
		if gaps[a].PriorityScore != gaps[b].PriorityScore {
			return gaps[a].PriorityScore > gaps[b].PriorityScore
		}
		return gaps[a].TopicID < gaps[b].TopicID
	})
	return gaps
}

// DetectStrengths returns topics at or above the significance threshold.
func (g *GapAnalyzer) DetectStrengths(coverages []Coverage) []Strength {
	var strengths []Strength
	for _, cov := range coverages {
		if cov.CoverageScore >= g.cfg.StrengthThreshold {
			strengths = append(strengths, Strength{
				TopicID:         cov.TopicID,
				ClientCount:     cov.ClientCount,
				CompetitorCount: cov.CompetitorCount,
				CoverageScore:   cov.CoverageScore,
			})
		}
	}
	sort.Slice(strengths, func(a, b int) bool {
		return strengths[a].CoverageScore > strengths[b].CoverageScore
	})
	return strengths
}

// RecommendationOption is one candidate recommendation for a gap's topic.
type RecommendationOption struct {
	ID          int
	EffortLevel string
}

// RoadmapEntry is one planned item: a gap paired with the recommendation
// picked by the effort-balance rule.
type RoadmapEntry struct {
	Gap              Gap
	RecommendationID int
	PriorityTier     string
	EstimatedEffort  string
	PriorityOrder    int
}

// BuildRoadmap fills the {high, medium, low} tiers in priority order under
// the per-tier quotas, picking each gap's recommendation by the
// effort-balance rule, capped at MaxRoadmapItems. Gaps whose topic has no
// recommendations are skipped. PriorityOrder is dense 1..N.
func (g *GapAnalyzer) BuildRoadmap(gaps []Gap, options map[int][]RecommendationOption) []RoadmapEntry {
	quotas := map[string]int{
		"high":   g.cfg.PriorityDistribution["high"],
		"medium": g.cfg.PriorityDistribution["medium"],
		"low":    g.cfg.PriorityDistribution["low"],
	}
	tierUsed := map[string]int{}

	// Targets per effort level over the whole roadmap.
	targets := map[string]int{}
	for level, share := range g.cfg.EffortDistribution {
		targets[level] = int(math.Round(share * float64(g.cfg.MaxRoadmapItems)))
	}
	effortUsed := map[string]int{}

	var entries []RoadmapEntry
	for _, gap := range gaps {
		if len(entries) >= g.cfg.MaxRoadmapItems {
			break
		}
		opts := options[gap.TopicID]
		if len(opts) == 0 {
			continue
		}

		tier := nextTier(quotas, tierUsed)
		if tier == "" {
			break
		}

		chosen := g.pickByEffortBalance(opts, targets, effortUsed)
		tierUsed[tier]++
		effortUsed[chosen.EffortLevel]++

		entries = append(entries, RoadmapEntry{
			Gap:              gap,
			RecommendationID: chosen.ID,
			PriorityTier:     tier,
			EstimatedEffort:  chosen.EffortLevel,
			PriorityOrder:    len(entries) + 1,
		})
	}
	return entries
}

// nextTier returns the highest tier with remaining quota.
func nextTier(quotas, used map[string]int) string {
	for _, tier := range []string{"high", "medium", "low"} {
		if used[tier] < quotas[tier] {
			return tier
		}
	}
	return ""
}

// pickByEffortBalance prefers the effort level with the largest remaining
// deficit (target − used) among the gap's available options.
func (g *GapAnalyzer) pickByEffortBalance(opts []RecommendationOption, targets, used map[string]int) RecommendationOption {
	best := opts[0]
	bestDeficit := math.Inf(-1)
	for _, opt := range opts {
		deficit := float64(targets[opt.EffortLevel] - used[opt.EffortLevel])
		if deficit > bestDeficit {
			bestDeficit = deficit
			best = opt
		}
	}
	return best
}
