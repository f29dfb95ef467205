package trends

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/auditlog"
	"github.com/trendscope/trendscope/ent/coverageanalysis"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/pkg/compute"
	"github.com/trendscope/trendscope/pkg/embeddings"
	"github.com/trendscope/trendscope/pkg/llm"
	"github.com/trendscope/trendscope/pkg/services"
	"github.com/trendscope/trendscope/pkg/vectorstore"
)

// PipelineConfig controls one pipeline instance.
type PipelineConfig struct {
	Clusterer       ClustererConfig
	Temporal        TemporalConfig
	Gaps            GapConfig
	TopClustersLLM  int
	AnglesPerTopic  int
	LLMConcurrency  int
	NormalizeFetch  bool
}

// StageNotifier receives stage transition events for realtime delivery.
// Notification failures must not affect the run; implementations swallow
// their own errors.
type StageNotifier interface {
	NotifyStage(ctx context.Context, executionID string, pipelineID, stage int, stageName, status string)
}

// Pipeline runs the four-stage trend analysis and persists after each stage.
type Pipeline struct {
	cfg      PipelineConfig
	fetcher  *embeddings.Fetcher
	store    *vectorstore.Client
	enricher *llm.Enricher
	trends   *services.TrendService
	articles *services.ArticleService
	auditLog *services.AuditLogService
	pool     *compute.Pool
	notifier StageNotifier
	logger   *slog.Logger
}

// SetStageNotifier attaches an optional stage event notifier.
func (p *Pipeline) SetStageNotifier(n StageNotifier) { p.notifier = n }

// NewPipeline wires a Pipeline.
func NewPipeline(
	cfg PipelineConfig,
	fetcher *embeddings.Fetcher,
	store *vectorstore.Client,
	enricher *llm.Enricher,
	trends *services.TrendService,
	articles *services.ArticleService,
	auditLog *services.AuditLogService,
	pool *compute.Pool,
	logger *slog.Logger,
) *Pipeline {
	if cfg.TopClustersLLM <= 0 {
		cfg.TopClustersLLM = 10
	}
	if cfg.AnglesPerTopic <= 0 {
		cfg.AnglesPerTopic = 3
	}
	if cfg.LLMConcurrency <= 0 {
		cfg.LLMConcurrency = 1
	}
	return &Pipeline{
		cfg:      cfg,
		fetcher:  fetcher,
		store:    store,
		enricher: enricher,
		trends:   trends,
		articles: articles,
		auditLog: auditLog,
		pool:     pool,
		logger:   logger.With("component", "trend_pipeline"),
	}
}

// ExecuteInput parameterizes one run.
type ExecuteInput struct {
	ExecutionID     string
	ClientDomain    string
	Domains         []string
	TimeWindowDays  int
	MinTopicSize    int // optional override
	SkipLLM         bool
	SkipGapAnalysis bool
}

// ExecuteResult summarizes a completed run.
type ExecuteResult struct {
	PipelineID      int
	TotalArticles   int
	TotalClusters   int
	TotalOutliers   int
	Recommendations int
	Gaps            int
}

// Execute runs the pipeline. Stage 1 failure aborts; per-topic LLM failures
// are isolated; stage 4 is skipped without a client domain.
func (p *Pipeline) Execute(ctx context.Context, in ExecuteInput) (*ExecuteResult, error) {
	logger := p.logger.With("execution_id", in.ExecutionID, "client_domain", in.ClientDomain)

	// ── Stage 1: fetch + cluster ────────────────────────────────────────────

	fetched, err := p.fetcher.Fetch(ctx, embeddings.FetchOptions{
		Domains:    in.Domains,
		MaxAgeDays: in.TimeWindowDays,
		Normalize:  p.cfg.NormalizeFetch,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding fetch failed: %w", err)
	}

	pipeline, err := p.trends.CreatePipeline(ctx, in.ExecutionID, in.ClientDomain, in.Domains, in.TimeWindowDays, len(fetched.IDs))
	if err != nil {
		return nil, err
	}
	result := &ExecuteResult{PipelineID: pipeline.ID}

	if err := p.setStage(ctx, in.ExecutionID, pipeline.ID, services.StageClustering, "in_progress"); err != nil {
		return nil, err
	}

	clustererCfg := p.cfg.Clusterer
	if in.MinTopicSize > 0 {
		clustererCfg.MinClusterSize = in.MinTopicSize
	}
	clusterer := NewClusterer(clustererCfg)

	var clustering *ClusteringResult
	err = p.pool.Run(ctx, func() error {
		var cerr error
		clustering, cerr = clusterer.Cluster(fetched.Embeddings, fetched.Payloads, fetched.IDs)
		return cerr
	})
	if err != nil {
		p.failStage(ctx, in.ExecutionID, pipeline.ID, services.StageClustering, err)
		p.finish(ctx, pipeline.ID, result, err.Error())
		var notEnough *ErrNotEnoughArticles
		if errors.As(err, &notEnough) {
			return result, err
		}
		return result, fmt.Errorf("clustering failed: %w", err)
	}

	savedClusters, err := p.persistClustering(ctx, pipeline.ID, clustering, fetched)
	if err != nil {
		p.failStage(ctx, in.ExecutionID, pipeline.ID, services.StageClustering, err)
		p.finish(ctx, pipeline.ID, result, err.Error())
		return result, err
	}
	result.TotalClusters = len(clustering.Clusters)
	result.TotalOutliers = len(clustering.Outliers)
	result.TotalArticles = len(fetched.IDs)

	if err := p.setStage(ctx, in.ExecutionID, pipeline.ID, services.StageClustering, "completed"); err != nil {
		return result, err
	}
	logger.Info("stage 1 complete",
		"clusters", result.TotalClusters,
		"outliers", result.TotalOutliers,
		"dropped_nan", clustering.DroppedNaN)

	// ── Stage 2: temporal metrics ───────────────────────────────────────────

	if err := p.setStage(ctx, in.ExecutionID, pipeline.ID, services.StageTemporal, "in_progress"); err != nil {
		return result, err
	}
	analyzer := NewTemporalAnalyzer(p.cfg.Temporal)
	temporalByTopic, err := p.runTemporal(ctx, analyzer, clustering, fetched, savedClusters)
	if err != nil {
		p.failStage(ctx, in.ExecutionID, pipeline.ID, services.StageTemporal, err)
		p.finish(ctx, pipeline.ID, result, err.Error())
		return result, err
	}
	if err := p.setStage(ctx, in.ExecutionID, pipeline.ID, services.StageTemporal, "completed"); err != nil {
		return result, err
	}
	logger.Info("stage 2 complete", "topics", len(temporalByTopic))

	// ── Stage 3: LLM enrichment ─────────────────────────────────────────────

	if in.SkipLLM {
		if err := p.setStage(ctx, in.ExecutionID, pipeline.ID, services.StageLLM, "skipped"); err != nil {
			return result, err
		}
	} else {
		if err := p.setStage(ctx, in.ExecutionID, pipeline.ID, services.StageLLM, "in_progress"); err != nil {
			return result, err
		}
		recs := p.runEnrichment(ctx, pipeline.ID, clustering, fetched, savedClusters, temporalByTopic, logger)
		result.Recommendations = recs
		if err := p.setStage(ctx, in.ExecutionID, pipeline.ID, services.StageLLM, "completed"); err != nil {
			return result, err
		}
		logger.Info("stage 3 complete", "recommendations", recs)
	}

	// ── Stage 4: gap analysis ───────────────────────────────────────────────

	if in.SkipGapAnalysis || in.ClientDomain == "" {
		if err := p.setStage(ctx, in.ExecutionID, pipeline.ID, services.StageGap, "skipped"); err != nil {
			return result, err
		}
	} else {
		if err := p.setStage(ctx, in.ExecutionID, pipeline.ID, services.StageGap, "in_progress"); err != nil {
			return result, err
		}
		gapCount, err := p.runGapAnalysis(ctx, in.ClientDomain, clustering, fetched, savedClusters, temporalByTopic)
		if err != nil {
			p.failStage(ctx, in.ExecutionID, pipeline.ID, services.StageGap, err)
			p.finish(ctx, pipeline.ID, result, err.Error())
			return result, err
		}
		result.Gaps = gapCount
		if err := p.setStage(ctx, in.ExecutionID, pipeline.ID, services.StageGap, "completed"); err != nil {
			return result, err
		}
		logger.Info("stage 4 complete", "gaps", gapCount)
	}

	p.finish(ctx, pipeline.ID, result, "")
	return result, nil
}

// setStage records a stage transition and notifies listeners.
func (p *Pipeline) setStage(ctx context.Context, executionID string, pipelineID int, stage services.PipelineStage, status string) error {
	if err := p.trends.SetStageStatus(ctx, pipelineID, stage, status); err != nil {
		return err
	}
	if p.notifier != nil {
		p.notifier.NotifyStage(ctx, executionID, pipelineID, int(stage), stageName(stage), status)
	}
	return nil
}

func stageName(stage services.PipelineStage) string {
	switch stage {
	case services.StageClustering:
		return "clustering"
	case services.StageTemporal:
		return "temporal"
	case services.StageLLM:
		return "llm"
	case services.StageGap:
		return "gap_analysis"
	}
	return "unknown"
}

func (p *Pipeline) failStage(ctx context.Context, executionID string, pipelineID int, stage services.PipelineStage, cause error) {
	if err := p.setStage(ctx, executionID, pipelineID, stage, "failed"); err != nil {
		p.logger.Error("failed to mark stage failed", "stage", stage, "error", err)
	}
	p.auditLog.Append(ctx, services.AppendInput{
		Action:  "trend_pipeline_stage_failed",
		Status:  auditlog.StatusError,
		Message: cause.Error(),
		Details: map[string]any{"pipeline_id": pipelineID, "stage": int(stage)},
	})
}

func (p *Pipeline) finish(ctx context.Context, pipelineID int, result *ExecuteResult, errorMessage string) {
	err := p.trends.FinishPipeline(ctx, pipelineID, services.PipelineTotals{
		Clusters:        result.TotalClusters,
		Outliers:        result.TotalOutliers,
		Recommendations: result.Recommendations,
		Gaps:            result.Gaps,
	}, errorMessage)
	if err != nil {
		p.logger.Error("failed to finish pipeline row", "pipeline_id", pipelineID, "error", err)
	}
}

// persistClustering writes clusters and outliers, upserts centroids
// best-effort, and writes topic assignments back onto client articles.
func (p *Pipeline) persistClustering(ctx context.Context, pipelineID int, clustering *ClusteringResult, fetched *embeddings.FetchResult) (map[int]*ent.TopicCluster, error) {
	clusterInputs := make([]services.ClusterInput, 0, len(clustering.Clusters))
	for _, c := range clustering.Clusters {
		terms := make([]map[string]any, 0, len(c.TopTerms))
		for _, tw := range c.TopTerms {
			terms = append(terms, map[string]any{"term": tw.Term, "weight": tw.Weight})
		}
		clusterInputs = append(clusterInputs, services.ClusterInput{
			TopicID:         c.TopicID,
			Label:           c.Label,
			TopTerms:        terms,
			Size:            c.Size,
			DocumentIndices: c.MemberIndices,
			DocumentIDs:     c.MemberIDs,
			CoherenceScore:  c.CoherenceScore,
		})
	}

	saved, err := p.trends.SaveClusters(ctx, pipelineID, clusterInputs)
	if err != nil {
		return nil, err
	}

	outlierInputs := make([]services.OutlierInput, 0, len(clustering.Outliers))
	for _, o := range clustering.Outliers {
		outlier := services.OutlierInput{
			DocumentID:        o.DocumentID,
			PotentialCategory: o.PotentialCategory,
			EmbeddingDistance: o.EmbeddingDistance,
		}
		if o.NearestTopicID != Noise {
			nearest := o.NearestTopicID
			outlier.NearestTopicID = &nearest
		}
		outlierInputs = append(outlierInputs, outlier)
	}
	if err := p.trends.SaveOutliers(ctx, pipelineID, outlierInputs); err != nil {
		return nil, err
	}

	p.upsertCentroids(ctx, pipelineID, clustering, saved)
	p.assignTopics(ctx, clustering)
	return saved, nil
}

// upsertCentroids pushes cluster centroids into the centroids collection.
// Best-effort: failures log, they never fail the stage.
func (p *Pipeline) upsertCentroids(ctx context.Context, pipelineID int, clustering *ClusteringResult, saved map[int]*ent.TopicCluster) {
	if len(clustering.Clusters) == 0 {
		return
	}
	dim := len(clustering.Clusters[0].Centroid)
	if err := p.store.EnsureCollection(ctx, vectorstore.CentroidsCollection, dim); err != nil {
		p.logger.Warn("centroid collection unavailable", "error", err)
		return
	}

	points := make([]vectorstore.Point, 0, len(clustering.Clusters))
	for _, c := range clustering.Clusters {
		points = append(points, vectorstore.Point{
			ID:     uuid.New().String(),
			Vector: c.Centroid,
			Payload: map[string]any{
				"analysis_id": pipelineID,
				"topic_id":    c.TopicID,
				"label":       c.Label,
			},
		})
	}
	if err := p.store.Upsert(ctx, vectorstore.CentroidsCollection, points); err != nil {
		p.logger.Warn("centroid upsert failed", "error", err)
		return
	}

	for i, c := range clustering.Clusters {
		if row, ok := saved[c.TopicID]; ok {
			err := row.Update().SetCentroidVectorID(points[i].ID).Exec(ctx)
			if err != nil {
				p.logger.Warn("failed to link centroid vector", "topic_id", c.TopicID, "error", err)
			}
		}
	}
}

// assignTopics writes topic ids back onto client articles, best-effort.
func (p *Pipeline) assignTopics(ctx context.Context, clustering *ClusteringResult) {
	assignments := map[string]int{}
	for _, c := range clustering.Clusters {
		for _, id := range c.MemberIDs {
			assignments[id] = c.TopicID
		}
	}
	for _, o := range clustering.Outliers {
		assignments[o.DocumentID] = Noise
	}
	if err := p.articles.UpdateTopicAssignments(ctx, assignments); err != nil {
		p.logger.Warn("topic assignment writeback failed", "error", err)
	}
}

func (p *Pipeline) runTemporal(ctx context.Context, analyzer *TemporalAnalyzer, clustering *ClusteringResult, fetched *embeddings.FetchResult, saved map[int]*ent.TopicCluster) (map[int]TemporalMetrics, error) {
	byTopic := make(map[int]TemporalMetrics, len(clustering.Clusters))
	inputs := make([]services.TemporalMetricsInput, 0, len(clustering.Clusters))

	for _, c := range clustering.Clusters {
		vectors := make([][]float32, len(c.MemberIndices))
		payloads := make([]embeddings.ArticlePayload, len(c.MemberIndices))
		for j, idx := range c.MemberIndices {
			vectors[j] = fetched.Embeddings[idx]
			payloads[j] = fetched.Payloads[idx]
		}

		metrics := analyzer.Analyze(vectors, payloads, c.Centroid)
		byTopic[c.TopicID] = metrics

		row, ok := saved[c.TopicID]
		if !ok {
			continue
		}
		inputs = append(inputs, services.TemporalMetricsInput{
			TopicClusterID:  row.ID,
			WindowStart:     metrics.WindowStart,
			WindowEnd:       metrics.WindowEnd,
			Volume:          metrics.Volume,
			Velocity:        metrics.Velocity,
			VelocityTrend:   metrics.VelocityTrend,
			FreshnessRatio:  metrics.FreshnessRatio,
			SourceDiversity: metrics.SourceDiversity,
			CohesionScore:   metrics.CohesionScore,
			PotentialScore:  metrics.PotentialScore,
			DriftDetected:   metrics.DriftDetected,
			DriftDistance:   metrics.DriftDistance,
		})
	}

	return byTopic, p.trends.SaveTemporalMetrics(ctx, inputs)
}

// runEnrichment enriches the top-N clusters by potential score and, when the
// run produced outliers, asks for a verdict on them under the same
// concurrency bound. Per-task failures are logged and isolated; the stage
// itself never fails here.
func (p *Pipeline) runEnrichment(ctx context.Context, pipelineID int, clustering *ClusteringResult, fetched *embeddings.FetchResult, saved map[int]*ent.TopicCluster, temporal map[int]TemporalMetrics, logger *slog.Logger) int {
	ranked := make([]Cluster, len(clustering.Clusters))
	copy(ranked, clustering.Clusters)
	sort.Slice(ranked, func(a, b int) bool {
		return temporal[ranked[a].TopicID].PotentialScore > temporal[ranked[b].TopicID].PotentialScore
	})
	if len(ranked) > p.cfg.TopClustersLLM {
		ranked = ranked[:p.cfg.TopClustersLLM]
	}

	var group errgroup.Group
	group.SetLimit(p.cfg.LLMConcurrency)

	recCounts := make([]int, len(ranked))
	for i, cluster := range ranked {
		group.Go(func() error {
			count, err := p.enrichTopic(ctx, cluster, fetched, saved, temporal[cluster.TopicID])
			if err != nil {
				logger.Warn("topic enrichment failed", "topic_id", cluster.TopicID, "error", err)
				return nil // isolated
			}
			recCounts[i] = count
			return nil
		})
	}
	if len(clustering.Outliers) > 0 {
		group.Go(func() error {
			if err := p.analyzeOutliers(ctx, pipelineID, clustering, fetched); err != nil {
				logger.Warn("outlier analysis failed", "outliers", len(clustering.Outliers), "error", err)
			}
			return nil // isolated
		})
	}
	_ = group.Wait()

	total := 0
	for _, c := range recCounts {
		total += c
	}
	return total
}

// analyzeOutliers asks whether the unclustered documents hint at an emerging
// topic and stores the verdict on the pipeline row.
func (p *Pipeline) analyzeOutliers(ctx context.Context, pipelineID int, clustering *ClusteringResult, fetched *embeddings.FetchResult) error {
	texts := make([]string, 0, 5)
	for _, o := range clustering.Outliers {
		if len(texts) == 5 {
			break
		}
		payload := fetched.Payloads[o.Index]
		texts = append(texts, payload.Title+": "+payload.ContentText)
	}

	analysis, err := p.enricher.AnalyzeOutliers(ctx, texts)
	if err != nil {
		return err
	}

	verdict := map[string]interface{}{
		"common_thread":        analysis.CommonThread,
		"disruption_potential": analysis.DisruptionPotential,
		"recommendation":       analysis.Recommendation,
	}
	if analysis.Degraded {
		verdict["degraded"] = true
		verdict["raw_response"] = analysis.RawResponse
	}
	return p.trends.SaveOutlierAnalysis(ctx, pipelineID, verdict)
}

func (p *Pipeline) enrichTopic(ctx context.Context, cluster Cluster, fetched *embeddings.FetchResult, saved map[int]*ent.TopicCluster, metrics TemporalMetrics) (int, error) {
	row, ok := saved[cluster.TopicID]
	if !ok {
		return 0, fmt.Errorf("no persisted row for topic %d", cluster.TopicID)
	}

	keywords := make([]string, 0, len(cluster.TopTerms))
	for _, tw := range cluster.TopTerms {
		keywords = append(keywords, tw.Term)
	}
	samples := make([]string, 0, 5)
	for _, idx := range cluster.MemberIndices {
		if len(samples) == 5 {
			break
		}
		samples = append(samples, fetched.Payloads[idx].Title+": "+fetched.Payloads[idx].ContentText)
	}

	start := time.Now()
	synthesis, err := p.enricher.SynthesizeTrend(ctx, llm.TrendContext{
		Label:         cluster.Label,
		Keywords:      keywords,
		Volume:        metrics.Volume,
		Velocity:      metrics.Velocity,
		VelocityTrend: metrics.VelocityTrend,
		Diversity:     metrics.SourceDiversity,
		SampleDocs:    samples,
	})
	if err != nil {
		return 0, err
	}

	synthesisText := synthesis.Synthesis
	if synthesis.Degraded {
		synthesisText = synthesis.RawResponse
	}
	err = p.trends.SaveTrendAnalysis(ctx, services.TrendAnalysisInput{
		TopicClusterID:  row.ID,
		Synthesis:       synthesisText,
		SaturatedAngles: synthesis.SaturatedAngles,
		Opportunities:   synthesis.Opportunities,
		LLMModelUsed:    synthesis.ModelUsed,
		ProcessingTime:  time.Since(start).Seconds(),
	})
	if err != nil {
		return 0, err
	}

	angles, err := p.enricher.GenerateArticleAngles(ctx, cluster.Label, keywords, synthesis.SaturatedAngles, synthesis.Opportunities, p.cfg.AnglesPerTopic)
	if err != nil {
		return 0, err
	}

	recInputs := make([]services.RecommendationInput, 0, len(angles))
	for _, angle := range angles {
		recInputs = append(recInputs, services.RecommendationInput{
			TopicClusterID:       row.ID,
			Title:                angle.Title,
			Hook:                 angle.Hook,
			Outline:              angle.Outline,
			DifferentiationScore: angle.DifferentiationScore,
			EffortLevel:          articlerecommendation.EffortLevel(angle.EffortLevel),
		})
	}
	recs, err := p.trends.SaveRecommendations(ctx, recInputs)
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

func (p *Pipeline) runGapAnalysis(ctx context.Context, clientDomain string, clustering *ClusteringResult, fetched *embeddings.FetchResult, saved map[int]*ent.TopicCluster, temporal map[int]TemporalMetrics) (int, error) {
	analyzer := NewGapAnalyzer(p.cfg.Gaps)

	coverages := make([]Coverage, 0, len(clustering.Clusters))
	potentials := map[int]float64{}
	velocities := map[int]float64{}
	for _, c := range clustering.Clusters {
		domains := make([]string, 0, len(c.MemberIndices))
		for _, idx := range c.MemberIndices {
			domains = append(domains, fetched.Payloads[idx].Domain)
		}
		coverages = append(coverages, analyzer.ComputeCoverage(c.TopicID, domains, clientDomain))
		potentials[c.TopicID] = temporal[c.TopicID].PotentialScore
		velocities[c.TopicID] = temporal[c.TopicID].Velocity
	}

	coverageRows := make([]services.CoverageInput, 0, len(coverages))
	for _, cov := range coverages {
		row, ok := saved[cov.TopicID]
		if !ok {
			continue
		}
		coverageRows = append(coverageRows, services.CoverageInput{
			ClientDomain:              clientDomain,
			TopicClusterID:            row.ID,
			ClientCount:               cov.ClientCount,
			CompetitorCount:           cov.CompetitorCount,
			DistinctCompetitorDomains: cov.DistinctCompetitorDomains,
			AvgCompetitor:             cov.AvgCompetitor,
			CoverageScore:             cov.CoverageScore,
			Level:                     coverageanalysis.Level(cov.Level),
		})
	}
	if err := p.trends.SaveCoverage(ctx, coverageRows); err != nil {
		return 0, err
	}

	gaps := analyzer.DetectGaps(coverages, potentials, velocities)
	gapInputs := make([]services.GapInput, 0, len(gaps))
	for _, gap := range gaps {
		row, ok := saved[gap.TopicID]
		if !ok {
			continue
		}
		gapInputs = append(gapInputs, services.GapInput{
			ClientDomain:    clientDomain,
			TopicClusterID:  row.ID,
			ClientCount:     gap.ClientCount,
			CompetitorCount: gap.CompetitorCount,
			AvgCompetitor:   gap.AvgCompetitor,
			CoverageScore:   gap.CoverageScore,
			Level:           editorialgap.Level(gap.Level),
			PriorityScore:   gap.PriorityScore,
		})
	}
	savedGaps, err := p.trends.SaveGaps(ctx, gapInputs)
	if err != nil {
		return 0, err
	}

	strengths := analyzer.DetectStrengths(coverages)
	strengthInputs := make([]services.StrengthInput, 0, len(strengths))
	for _, st := range strengths {
		row, ok := saved[st.TopicID]
		if !ok {
			continue
		}
		strengthInputs = append(strengthInputs, services.StrengthInput{
			ClientDomain:    clientDomain,
			TopicClusterID:  row.ID,
			ClientCount:     st.ClientCount,
			CompetitorCount: st.CompetitorCount,
			CoverageScore:   st.CoverageScore,
		})
	}
	if err := p.trends.SaveStrengths(ctx, strengthInputs); err != nil {
		return 0, err
	}

	if err := p.buildAndSaveRoadmap(ctx, clientDomain, analyzer, gaps, savedGaps, saved); err != nil {
		return 0, err
	}
	return len(savedGaps), nil
}

func (p *Pipeline) buildAndSaveRoadmap(ctx context.Context, clientDomain string, analyzer *GapAnalyzer, gaps []Gap, savedGaps []*ent.EditorialGap, savedClusters map[int]*ent.TopicCluster) error {
	// Collect each gap topic's recommendations as effort-balance options.
	options := map[int][]RecommendationOption{}
	gapRowByTopic := map[int]*ent.EditorialGap{}
	for i, gap := range gaps {
		if i >= len(savedGaps) {
			break
		}
		gapRowByTopic[gap.TopicID] = savedGaps[i]

		row, ok := savedClusters[gap.TopicID]
		if !ok {
			continue
		}
		recs, err := row.QueryRecommendations().All(ctx)
		if err != nil {
			return fmt.Errorf("failed to load recommendations for topic %d: %w", gap.TopicID, err)
		}
		for _, rec := range recs {
			options[gap.TopicID] = append(options[gap.TopicID], RecommendationOption{
				ID:          rec.ID,
				EffortLevel: string(rec.EffortLevel),
			})
		}
	}

	entries := analyzer.BuildRoadmap(gaps, options)
	roadmapInputs := make([]services.RoadmapEntryInput, 0, len(entries))
	for _, entry := range entries {
		gapRow, ok := gapRowByTopic[entry.Gap.TopicID]
		if !ok {
			continue
		}
		roadmapInputs = append(roadmapInputs, services.RoadmapEntryInput{
			GapID:            gapRow.ID,
			RecommendationID: entry.RecommendationID,
			PriorityTier:     contentroadmapTier(entry.PriorityTier),
			EstimatedEffort:  contentroadmapEffort(entry.EstimatedEffort),
		})
	}
	return p.trends.ReplaceRoadmap(ctx, clientDomain, roadmapInputs)
}
