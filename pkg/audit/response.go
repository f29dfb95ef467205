package audit

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/pkg/models"
	"github.com/trendscope/trendscope/pkg/services"
)

// Freshness threshold above which a topic counts as trending, mirroring the
// temporal analyzer's "hot" label.
const trendingFreshness = 0.4

// BuildResponse assembles the full audit view from persisted data. Missing
// sections degrade to empty rather than failing the whole response.
func (o *Orchestrator) BuildResponse(ctx context.Context, domain string, status models.DataStatus, flags models.AuditViewFlags) (*models.SiteAuditResponse, error) {
	resp := &models.SiteAuditResponse{
		Domain:      domain,
		GeneratedAt: time.Now().UTC(),
		DataStatus:  status,
	}

	profile, err := o.profiles.GetLatestProfile(ctx, domain)
	if err == nil {
		resp.Profile = profileResponse(profile)
	} else if !errors.Is(err, services.ErrNotFound) {
		return nil, err
	}

	competitors, err := o.competitors.ListCompetitors(ctx, domain)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return nil, err
	}
	for _, c := range competitors {
		resp.Competitors = append(resp.Competitors, competitorResponse(c))
	}

	pipeline, err := o.trends.GetLatestPipeline(ctx, domain)
	if errors.Is(err, services.ErrNotFound) {
		return resp, nil
	}
	if err != nil {
		return nil, err
	}
	resp.AnalysisID = pipeline.ID

	details, err := o.trends.GetTopics(ctx, pipeline.ID)
	if err != nil {
		return nil, err
	}

	// Topics are built in full first. Trending, opportunities and the roadmap
	// select on the full data; the view flags only prune what is serialized.
	topics := make([]models.TopicResponse, 0, len(details))
	labels := make(map[int]string, len(details))
	recsByID := make(map[int]models.RecommendationResponse)
	for _, d := range details {
		labels[d.Cluster.ID] = d.Cluster.Label
		topic := topicResponse(d)
		for _, rec := range topic.Recommendations {
			recsByID[rec.ID] = rec
		}
		topics = append(topics, topic)
	}

	if flags.IncludeTopics {
		resp.Topics = pruneTopics(topics, flags)
	}
	if flags.IncludeTrending {
		resp.Trending = pruneTopics(trendingTopics(topics), flags)
	}
	if flags.IncludeOpportunities {
		resp.Opportunities = pruneTopics(opportunityTopics(topics), flags)
	}

	gaps, err := o.trends.GetGaps(ctx, domain)
	if err != nil {
		return nil, err
	}
	gapScores := make(map[int]float64, len(gaps))
	for _, g := range gaps {
		gapScores[g.ID] = g.PriorityScore
		resp.Gaps = append(resp.Gaps, gapResponse(g, labels))
	}

	strengths, err := o.trends.GetStrengths(ctx, domain)
	if err != nil {
		return nil, err
	}
	for _, s := range strengths {
		resp.Strengths = append(resp.Strengths, models.StrengthResponse{
			TopicClusterID:  s.TopicClusterID,
			Label:           labels[s.TopicClusterID],
			ClientCount:     s.ClientCount,
			CompetitorCount: s.CompetitorCount,
			CoverageScore:   s.CoverageScore,
		})
	}

	roadmap, err := o.trends.GetRoadmap(ctx, domain)
	if err != nil {
		return nil, err
	}
	for _, entry := range roadmap {
		item := models.RoadmapEntryResponse{
			PriorityOrder:   entry.PriorityOrder,
			PriorityTier:    string(entry.PriorityTier),
			EstimatedEffort: string(entry.EstimatedEffort),
			GapID:           entry.GapID,
			PriorityScore:   gapScores[entry.GapID],
		}
		if rec, ok := recsByID[entry.RecommendationID]; ok {
			item.Recommendation = &rec
		}
		resp.Roadmap = append(resp.Roadmap, item)
	}

	return resp, nil
}

// ── Row conversions ─────────────────────────────────────────────────────────

func profileResponse(p *ent.SiteProfile) *models.SiteProfileResponse {
	return &models.SiteProfileResponse{
		ID:               p.ID,
		Domain:           p.Domain,
		AnalysisDate:     p.AnalysisDate,
		LanguageLevel:    string(p.LanguageLevel),
		EditorialTone:    p.EditorialTone,
		TargetAudience:   p.TargetAudience,
		ActivityDomains:  p.ActivityDomains,
		ContentStructure: p.ContentStructure,
		Keywords:         p.Keywords,
		StyleFeatures:    p.StyleFeatures,
		PagesAnalyzed:    p.PagesAnalyzed,
		LLMModelsUsed:    p.LlmModelsUsed,
		IsValid:          p.IsValid,
	}
}

func competitorResponse(c *ent.Competitor) models.CompetitorResponse {
	return models.CompetitorResponse{
		ID:             c.ID,
		ClientDomain:   c.ClientDomain,
		Domain:         c.Domain,
		Source:         c.Source,
		RelevanceScore: c.RelevanceScore,
		Validated:      c.Validated,
		Excluded:       c.Excluded,
		ValidationDate: c.ValidationDate,
	}
}

func topicResponse(d services.TopicDetail) models.TopicResponse {
	topic := models.TopicResponse{
		TopicID:        d.Cluster.TopicID,
		Label:          d.Cluster.Label,
		Size:           d.Cluster.Size,
		TopTerms:       termWeights(d.Cluster.TopTerms),
		CoherenceScore: d.Cluster.CoherenceScore,
	}
	if d.TemporalMetrics != nil {
		topic.Temporal = temporalResponse(d.TemporalMetrics)
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
		topic.Recommendations = append(topic.Recommendations, recommendationResponse(rec))
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

// pruneTopics drops the sections the view flags exclude. Selection has
// already happened on the full structs, so a topic can make the trending
// list even when its temporal block is not serialized.
func pruneTopics(topics []models.TopicResponse, flags models.AuditViewFlags) []models.TopicResponse {
	if flags.IncludeTemporal && flags.IncludeAnalyses {
		return topics
	}
	pruned := make([]models.TopicResponse, len(topics))
	for i, t := range topics {
		if !flags.IncludeTemporal {
			t.Temporal = nil
		}
		if !flags.IncludeAnalyses {
			t.Analysis = nil
			t.Recommendations = nil
		}
		pruned[i] = t
	}
	return pruned
}

func temporalResponse(m *ent.TopicTemporalMetrics) *models.TemporalMetricsResponse {
	return &models.TemporalMetricsResponse{
		Volume:          m.Volume,
		Velocity:        m.Velocity,
		VelocityTrend:   m.VelocityTrend,
		FreshnessRatio:  m.FreshnessRatio,
		FreshnessLabel:  freshnessLabel(m.FreshnessRatio),
		SourceDiversity: m.SourceDiversity,
		CohesionScore:   m.CohesionScore,
		PotentialScore:  m.PotentialScore,
		DriftDetected:   m.DriftDetected,
		DriftDistance:   m.DriftDistance,
	}
}

func recommendationResponse(rec *ent.ArticleRecommendation) models.RecommendationResponse {
	return models.RecommendationResponse{
		ID:                   rec.ID,
		Title:                rec.Title,
		Hook:                 rec.Hook,
		Outline:              rec.Outline,
		DifferentiationScore: rec.DifferentiationScore,
		EffortLevel:          string(rec.EffortLevel),
		Status:               string(rec.Status),
	}
}

func freshnessLabel(ratio float64) string {
	switch {
	case ratio >= trendingFreshness:
		return "hot"
	case ratio <= 0.05:
		return "cold"
	}
	return "normal"
}

func gapResponse(g *ent.EditorialGap, labels map[int]string) models.GapResponse {
	return models.GapResponse{
		ID:              g.ID,
		TopicClusterID:  g.TopicClusterID,
		Label:           labels[g.TopicClusterID],
		ClientCount:     g.ClientCount,
		CompetitorCount: g.CompetitorCount,
		AvgCompetitor:   g.AvgCompetitor,
		CoverageScore:   g.CoverageScore,
		Level:           string(g.Level),
		PriorityScore:   g.PriorityScore,
	}
}

func termWeights(raw []map[string]any) []models.TermWeight {
	terms := make([]models.TermWeight, 0, len(raw))
	for _, m := range raw {
		term, _ := m["term"].(string)
		if term == "" {
			continue
		}
		weight, _ := m["weight"].(float64)
		terms = append(terms, models.TermWeight{Term: term, Weight: weight})
	}
	return terms
}

// trendingTopics surfaces accelerating or hot topics, strongest potential
// first.
func trendingTopics(topics []models.TopicResponse) []models.TopicResponse {
	var trending []models.TopicResponse
	for _, t := range topics {
		if t.Temporal == nil {
			continue
		}
		if t.Temporal.VelocityTrend == "accelerating" || t.Temporal.FreshnessRatio >= trendingFreshness {
			trending = append(trending, t)
		}
	}
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Temporal.PotentialScore > trending[j].Temporal.PotentialScore
	})
	return trending
}

// opportunityTopics surfaces under-covered topics, strongest potential first.
func opportunityTopics(topics []models.TopicResponse) []models.TopicResponse {
	var opportunities []models.TopicResponse
	for _, t := range topics {
		if t.Coverage == nil {
			continue
		}
		if t.Coverage.Level == "gap" || t.Coverage.Level == "weak" {
			opportunities = append(opportunities, t)
		}
	}
	sort.SliceStable(opportunities, func(i, j int) bool {
		pi, pj := 0.0, 0.0
		if opportunities[i].Temporal != nil {
			pi = opportunities[i].Temporal.PotentialScore
		}
		if opportunities[j].Temporal != nil {
			pj = opportunities[j].Temporal.PotentialScore
		}
		return pi > pj
	})
	return opportunities
}
