package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"
)

// Enricher implements the LLM-backed trend operations. All three carry a
// strict JSON-output contract; responses go through ParseJSONResponse and a
// parse failure degrades to a raw-response stub instead of failing the call.
type Enricher struct {
	client *Client
	logger *slog.Logger
}

// NewEnricher creates an Enricher.
func NewEnricher(client *Client, logger *slog.Logger) *Enricher {
	return &Enricher{
		client: client,
		logger: logger.With("component", "enricher"),
	}
}

// TrendSynthesis is the output of SynthesizeTrend.
type TrendSynthesis struct {
	Synthesis       string
	SaturatedAngles []string
	Opportunities   []string
	ModelUsed       string
	ProcessingTime  time.Duration
	Degraded        bool
	RawResponse     string
}

// TrendContext is the per-topic input to SynthesizeTrend.
type TrendContext struct {
	Label         string
	Keywords      []string
	Volume        int
	Velocity      float64
	VelocityTrend string
	Diversity     int
	SampleDocs    []string
}

const synthesizePrompt = `You are an editorial trend analyst. Analyze this topic cluster and respond with JSON only.

Topic: %s
Keywords: %s
Article volume: %d
Velocity: %.2f (%s)
Source diversity: %d distinct domains
Sample articles:
%s

Respond with a JSON object:
{
  "synthesis": "2-3 sentence synthesis of what this trend is about and where it is heading",
  "saturated_angles": ["angles competitors have already covered heavily"],
  "opportunities": ["underexplored angles worth pursuing"]
}`

// SynthesizeTrend produces a synthesis, saturated angles and opportunities
// for one topic cluster.
func (e *Enricher) SynthesizeTrend(ctx context.Context, tc TrendContext) (*TrendSynthesis, error) {
	prompt := fmt.Sprintf(synthesizePrompt,
		tc.Label,
		strings.Join(tc.Keywords, ", "),
		tc.Volume,
		tc.Velocity,
		tc.VelocityTrend,
		tc.Diversity,
		sampleBlock(tc.SampleDocs))

	start := time.Now()
	response, err := e.client.Generate(ctx, "", prompt)
	if err != nil {
		return nil, fmt.Errorf("trend synthesis failed for %q: %w", tc.Label, err)
	}

	result := &TrendSynthesis{
		ModelUsed:      e.client.DefaultModel(),
		ProcessingTime: time.Since(start),
	}

	parsed := ParseJSONResponse(response, e.logger)
	if raw, ok := parsed["raw_response"].(string); ok && len(parsed) == 1 {
		result.Degraded = true
		result.RawResponse = raw
		e.logger.Warn("trend synthesis degraded to raw response", "label", tc.Label)
		return result, nil
	}

	if s, ok := parsed["synthesis"].(string); ok {
		result.Synthesis = s
	}
	result.SaturatedAngles = StringSlice(parsed["saturated_angles"])
	result.Opportunities = StringSlice(parsed["opportunities"])
	return result, nil
}

// ArticleAngle is one generated article idea.
type ArticleAngle struct {
	Title                string
	Hook                 string
	Outline              []string
	EffortLevel          string
	DifferentiationScore float64
}

const anglesPrompt = `You are an editorial planner. Propose %d article angles for this topic and respond with JSON only.

Topic: %s
Keywords: %s
Angles already saturated by competitors: %s
Open opportunities: %s

Respond with a JSON object:
{
  "angles": [
    {
      "title": "article title",
      "hook": "one-sentence hook",
      "outline": ["section 1", "section 2"],
      "effort_level": "easy|medium|complex",
      "differentiation_score": 0.0
    }
  ]
}`

// GenerateArticleAngles proposes n article ideas avoiding saturated angles.
func (e *Enricher) GenerateArticleAngles(ctx context.Context, label string, keywords, saturated, opportunities []string, n int) ([]ArticleAngle, error) {
	prompt := fmt.Sprintf(anglesPrompt,
		n,
		label,
		strings.Join(keywords, ", "),
		strings.Join(saturated, "; "),
		strings.Join(opportunities, "; "))

	response, err := e.client.Generate(ctx, "", prompt)
	if err != nil {
		return nil, fmt.Errorf("angle generation failed for %q: %w", label, err)
	}

	parsed := ParseJSONResponse(response, e.logger)
	rawAngles, ok := parsed["angles"].([]any)
	if !ok {
		e.logger.Warn("angle generation returned no parseable angles", "label", label)
		return nil, nil
	}

	angles := make([]ArticleAngle, 0, len(rawAngles))
	for _, raw := range rawAngles {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		angle := ArticleAngle{EffortLevel: "medium"}
		if v, ok := m["title"].(string); ok {
			angle.Title = v
		}
		if v, ok := m["hook"].(string); ok {
			angle.Hook = v
		}
		angle.Outline = StringSlice(m["outline"])
		if v, ok := m["effort_level"].(string); ok && isEffortLevel(v) {
			angle.EffortLevel = v
		}
		if v, ok := m["differentiation_score"].(float64); ok {
			angle.DifferentiationScore = clamp01(v)
		}
		if angle.Title != "" {
			angles = append(angles, angle)
		}
	}
	return angles, nil
}

// OutlierAnalysis is the output of AnalyzeOutliers.
type OutlierAnalysis struct {
	CommonThread        string
	DisruptionPotential string
	Recommendation      string // ignore / watch / investigate
	Degraded            bool
	RawResponse         string
}

const outliersPrompt = `You are an editorial trend analyst. These article snippets did not fit any established topic cluster. Respond with JSON only.

Snippets:
%s

Respond with a JSON object:
{
  "common_thread": "what, if anything, connects these articles",
  "disruption_potential": "could this become a new topic",
  "recommendation": "ignore|watch|investigate"
}`

// AnalyzeOutliers asks whether unclustered documents hint at an emerging
// topic.
func (e *Enricher) AnalyzeOutliers(ctx context.Context, texts []string) (*OutlierAnalysis, error) {
	response, err := e.client.Generate(ctx, "", fmt.Sprintf(outliersPrompt, sampleBlock(texts)))
	if err != nil {
		return nil, fmt.Errorf("outlier analysis failed: %w", err)
	}

	parsed := ParseJSONResponse(response, e.logger)
	if raw, ok := parsed["raw_response"].(string); ok && len(parsed) == 1 {
		return &OutlierAnalysis{Degraded: true, RawResponse: raw, Recommendation: "watch"}, nil
	}

	result := &OutlierAnalysis{Recommendation: "watch"}
	if v, ok := parsed["common_thread"].(string); ok {
		result.CommonThread = v
	}
	if v, ok := parsed["disruption_potential"].(string); ok {
		result.DisruptionPotential = v
	}
	if v, ok := parsed["recommendation"].(string); ok {
		switch v {
		case "ignore", "watch", "investigate":
			result.Recommendation = v
		}
	}
	return result, nil
}

func sampleBlock(docs []string) string {
	const maxDocs = 5
	const maxChars = 400
	if len(docs) > maxDocs {
		docs = docs[:maxDocs]
	}
	var b strings.Builder
	for i, doc := range docs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, truncateRunes(doc, maxChars))
	}
	return b.String()
}

// truncateRunes cuts s to at most max bytes without splitting a multi-byte
// rune, stepping back to the nearest rune start.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func isEffortLevel(v string) bool {
	return v == "easy" || v == "medium" || v == "complex"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
