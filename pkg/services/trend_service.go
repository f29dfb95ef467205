package services

import (
	"context"
	"fmt"
	"time"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/clientstrength"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/coverageanalysis"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/topicoutlier"
	"github.com/trendscope/trendscope/ent/topictemporalmetrics"
	"github.com/trendscope/trendscope/ent/trendanalysis"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// PipelineStage identifies one of the four pipeline stages.
type PipelineStage int

const (
	StageClustering PipelineStage = iota + 1
	StageTemporal
	StageLLM
	StageGap
)

// stageRank orders stage statuses; transitions may only move forward.
var stageRank = map[trendpipelineexecution.Stage1ClusteringStatus]int{
	trendpipelineexecution.Stage1ClusteringStatusPending:    0,
	trendpipelineexecution.Stage1ClusteringStatusInProgress: 1,
	trendpipelineexecution.Stage1ClusteringStatusCompleted:  2,
	trendpipelineexecution.Stage1ClusteringStatusFailed:     2,
	trendpipelineexecution.Stage1ClusteringStatusSkipped:    2,
}

// TrendService persists trend pipeline runs and every derived entity:
// clusters, outliers, temporal metrics, syntheses, recommendations, gaps,
// strengths, coverage rows and the roadmap.
type TrendService struct {
	client *ent.Client
}

// NewTrendService creates a new TrendService.
func NewTrendService(client *ent.Client) *TrendService {
	return &TrendService{client: client}
}

// ─────────────────────────────────────────────────────────────────────────────
// Pipeline execution rows
// ─────────────────────────────────────────────────────────────────────────────

// CreatePipeline opens a new pipeline run row.
func (s *TrendService) CreatePipeline(ctx context.Context, executionID, clientDomain string, domains []string, windowDays, totalArticles int) (*ent.TrendPipelineExecution, error) {
	if executionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	pipeline, err := s.client.TrendPipelineExecution.Create().
		SetExecutionID(executionID).
		SetClientDomain(clientDomain).
		SetDomainsAnalyzed(domains).
		SetTimeWindowDays(windowDays).
		SetTotalArticles(totalArticles).
		SetStartTime(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, classifyDBError("create pipeline", err)
	}
	return pipeline, nil
}

// GetPipeline retrieves a pipeline run by its workflow execution id.
func (s *TrendService) GetPipeline(ctx context.Context, executionID string) (*ent.TrendPipelineExecution, error) {
	pipeline, err := s.client.TrendPipelineExecution.Query().
		Where(trendpipelineexecution.ExecutionIDEQ(executionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, classifyDBError("get pipeline", err)
	}
	return pipeline, nil
}

// GetPipelineByID retrieves a pipeline run by its numeric analysis id.
func (s *TrendService) GetPipelineByID(ctx context.Context, id int) (*ent.TrendPipelineExecution, error) {
	pipeline, err := s.client.TrendPipelineExecution.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, classifyDBError("get pipeline by id", err)
	}
	return pipeline, nil
}

// GetLatestPipeline returns the newest valid pipeline run for a client
// domain.
func (s *TrendService) GetLatestPipeline(ctx context.Context, clientDomain string) (*ent.TrendPipelineExecution, error) {
	pipeline, err := s.client.TrendPipelineExecution.Query().
		Where(
			trendpipelineexecution.ClientDomainEQ(clientDomain),
			trendpipelineexecution.IsValid(true),
		).
		Order(ent.Desc(trendpipelineexecution.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, classifyDBError("get latest pipeline", err)
	}
	return pipeline, nil
}

// SetStageStatus advances one stage status. Transitions only move forward:
// a completed, failed or skipped stage is never reverted, and repeating the
// current status is a no-op.
func (s *TrendService) SetStageStatus(ctx context.Context, pipelineID int, stage PipelineStage, status string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return classifyDBError("begin stage update", err)
	}
	defer func() { _ = tx.Rollback() }()

	pipeline, err := tx.TrendPipelineExecution.Query().
		Where(trendpipelineexecution.IDEQ(pipelineID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return classifyDBError("lock pipeline", err)
	}

	next := trendpipelineexecution.Stage1ClusteringStatus(status)
	if _, ok := stageRank[next]; !ok {
		return NewValidationError("status", fmt.Sprintf("unknown stage status %q", status))
	}

	var current trendpipelineexecution.Stage1ClusteringStatus
	switch stage {
	case StageClustering:
		current = pipeline.Stage1ClusteringStatus
	case StageTemporal:
		current = trendpipelineexecution.Stage1ClusteringStatus(pipeline.Stage2TemporalStatus)
	case StageLLM:
		current = trendpipelineexecution.Stage1ClusteringStatus(pipeline.Stage3LlmStatus)
	case StageGap:
		current = trendpipelineexecution.Stage1ClusteringStatus(pipeline.Stage4GapStatus)
	default:
		return NewValidationError("stage", "unknown pipeline stage")
	}

	if next == current {
		return tx.Commit()
	}
	if stageRank[next] <= stageRank[current] {
		return fmt.Errorf("%w: stage %d cannot move %s -> %s", ErrTerminalState, stage, current, next)
	}

	update := pipeline.Update()
	switch stage {
	case StageClustering:
		update.SetStage1ClusteringStatus(next)
	case StageTemporal:
		update.SetStage2TemporalStatus(trendpipelineexecution.Stage2TemporalStatus(next))
	case StageLLM:
		update.SetStage3LlmStatus(trendpipelineexecution.Stage3LlmStatus(next))
	case StageGap:
		update.SetStage4GapStatus(trendpipelineexecution.Stage4GapStatus(next))
	}

	if err := update.Exec(ctx); err != nil {
		return classifyDBError("update stage status", err)
	}
	return tx.Commit()
}

// FinishPipeline stamps totals, end time and optional error on the run.
func (s *TrendService) FinishPipeline(ctx context.Context, pipelineID int, totals PipelineTotals, errorMessage string) error {
	pipeline, err := s.client.TrendPipelineExecution.Get(ctx, pipelineID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return classifyDBError("get pipeline for finish", err)
	}

	now := time.Now()
	update := pipeline.Update().
		SetTotalClusters(totals.Clusters).
		SetTotalOutliers(totals.Outliers).
		SetTotalRecommendations(totals.Recommendations).
		SetTotalGaps(totals.Gaps).
		SetEndTime(now).
		SetDurationSeconds(now.Sub(pipeline.StartTime).Seconds())
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}

	if err := update.Exec(ctx); err != nil {
		return classifyDBError("finish pipeline", err)
	}
	return nil
}

// PipelineTotals rolls up the per-stage counts written by FinishPipeline.
type PipelineTotals struct {
	Clusters        int
	Outliers        int
	Recommendations int
	Gaps            int
}

// ─────────────────────────────────────────────────────────────────────────────
// Stage 1: clusters and outliers
// ─────────────────────────────────────────────────────────────────────────────

// ClusterInput is one cluster row to persist.
type ClusterInput struct {
	TopicID          int
	Label            string
	TopTerms         []map[string]any
	Size             int
	DocumentIndices  []int
	DocumentIDs      []string
	CentroidVectorID string
	CoherenceScore   float64
}

// SaveClusters persists the clustering result in one transaction and returns
// the created rows keyed by topic_id.
func (s *TrendService) SaveClusters(ctx context.Context, pipelineID int, clusters []ClusterInput) (map[int]*ent.TopicCluster, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, classifyDBError("begin save clusters", err)
	}
	defer func() { _ = tx.Rollback() }()

	saved := make(map[int]*ent.TopicCluster, len(clusters))
	for _, c := range clusters {
		if c.TopicID < 0 {
			return nil, NewValidationError("topic_id", "outlier bucket (-1) is not a cluster")
		}
		if c.Size != len(c.DocumentIndices) {
			return nil, NewValidationError("document_ids",
				fmt.Sprintf("cluster %d size %d does not match %d document indices", c.TopicID, c.Size, len(c.DocumentIndices)))
		}

		builder := tx.TopicCluster.Create().
			SetAnalysisID(pipelineID).
			SetTopicID(c.TopicID).
			SetLabel(c.Label).
			SetSize(c.Size).
			SetDocumentIds(map[string]any{
				"indices": c.DocumentIndices,
				"ids":     c.DocumentIDs,
			}).
			SetCoherenceScore(c.CoherenceScore)
		if len(c.TopTerms) > 0 {
			builder.SetTopTerms(c.TopTerms)
		}
		if c.CentroidVectorID != "" {
			builder.SetCentroidVectorID(c.CentroidVectorID)
		}

		row, err := builder.Save(ctx)
		if err != nil {
			return nil, classifyDBError("save cluster", err)
		}
		saved[c.TopicID] = row
	}

	if err := tx.Commit(); err != nil {
		return nil, classifyDBError("commit save clusters", err)
	}
	return saved, nil
}

// OutlierInput is one outlier row to persist.
type OutlierInput struct {
	DocumentID        string
	ArticleID         *int
	NearestTopicID    *int
	PotentialCategory string
	EmbeddingDistance float64
}

// SaveOutliers persists outlier documents for a pipeline run.
func (s *TrendService) SaveOutliers(ctx context.Context, pipelineID int, outliers []OutlierInput) error {
	if len(outliers) == 0 {
		return nil
	}

	builders := make([]*ent.TopicOutlierCreate, 0, len(outliers))
	for _, o := range outliers {
		b := s.client.TopicOutlier.Create().
			SetAnalysisID(pipelineID).
			SetDocumentID(o.DocumentID).
			SetEmbeddingDistance(o.EmbeddingDistance)
		if o.ArticleID != nil {
			b.SetArticleID(*o.ArticleID)
		}
		if o.NearestTopicID != nil {
			b.SetNearestTopicID(*o.NearestTopicID)
		}
		if o.PotentialCategory != "" {
			b.SetPotentialCategory(o.PotentialCategory)
		}
		builders = append(builders, b)
	}

	if err := s.client.TopicOutlier.CreateBulk(builders...).Exec(ctx); err != nil {
		return classifyDBError("save outliers", err)
	}
	return nil
}

// SaveOutlierAnalysis stores the LLM verdict on a run's unclustered documents
// on the pipeline row.
func (s *TrendService) SaveOutlierAnalysis(ctx context.Context, pipelineID int, analysis map[string]interface{}) error {
	err := s.client.TrendPipelineExecution.UpdateOneID(pipelineID).
		SetOutlierAnalysis(analysis).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return classifyDBError("save outlier analysis", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Stage 2: temporal metrics
// ─────────────────────────────────────────────────────────────────────────────

// TemporalMetricsInput is the windowed dynamics of one cluster.
type TemporalMetricsInput struct {
	TopicClusterID  int
	WindowStart     time.Time
	WindowEnd       time.Time
	Volume          int
	Velocity        float64
	VelocityTrend   string
	FreshnessRatio  float64
	SourceDiversity int
	CohesionScore   float64
	PotentialScore  float64
	DriftDetected   bool
	DriftDistance   *float64
}

// SaveTemporalMetrics persists stage 2 output.
func (s *TrendService) SaveTemporalMetrics(ctx context.Context, metrics []TemporalMetricsInput) error {
	if len(metrics) == 0 {
		return nil
	}

	builders := make([]*ent.TopicTemporalMetricsCreate, 0, len(metrics))
	for _, m := range metrics {
		b := s.client.TopicTemporalMetrics.Create().
			SetTopicClusterID(m.TopicClusterID).
			SetWindowStart(m.WindowStart).
			SetWindowEnd(m.WindowEnd).
			SetVolume(m.Volume).
			SetVelocity(m.Velocity).
			SetVelocityTrend(m.VelocityTrend).
			SetFreshnessRatio(m.FreshnessRatio).
			SetSourceDiversity(m.SourceDiversity).
			SetCohesionScore(m.CohesionScore).
			SetPotentialScore(m.PotentialScore).
			SetDriftDetected(m.DriftDetected)
		if m.DriftDistance != nil {
			b.SetDriftDistance(*m.DriftDistance)
		}
		builders = append(builders, b)
	}

	if err := s.client.TopicTemporalMetrics.CreateBulk(builders...).Exec(ctx); err != nil {
		return classifyDBError("save temporal metrics", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Stage 3: LLM syntheses and recommendations
// ─────────────────────────────────────────────────────────────────────────────

// TrendAnalysisInput is one LLM synthesis row.
type TrendAnalysisInput struct {
	TopicClusterID  int
	Synthesis       string
	SaturatedAngles []string
	Opportunities   []string
	LLMModelUsed    string
	ProcessingTime  float64
}

// SaveTrendAnalysis persists one synthesis.
func (s *TrendService) SaveTrendAnalysis(ctx context.Context, in TrendAnalysisInput) error {
	builder := s.client.TrendAnalysis.Create().
		SetTopicClusterID(in.TopicClusterID).
		SetSynthesis(in.Synthesis).
		SetLlmModelUsed(in.LLMModelUsed).
		SetProcessingTimeSeconds(in.ProcessingTime)
	if len(in.SaturatedAngles) > 0 {
		builder.SetSaturatedAngles(in.SaturatedAngles)
	}
	if len(in.Opportunities) > 0 {
		builder.SetOpportunities(in.Opportunities)
	}

	if err := builder.Exec(ctx); err != nil {
		return classifyDBError("save trend analysis", err)
	}
	return nil
}

// RecommendationInput is one article idea.
type RecommendationInput struct {
	TopicClusterID       int
	Title                string
	Hook                 string
	Outline              []string
	DifferentiationScore float64
	EffortLevel          articlerecommendation.EffortLevel
}

// SaveRecommendations persists article recommendations for a cluster.
func (s *TrendService) SaveRecommendations(ctx context.Context, recs []RecommendationInput) ([]*ent.ArticleRecommendation, error) {
	if len(recs) == 0 {
		return nil, nil
	}

	builders := make([]*ent.ArticleRecommendationCreate, 0, len(recs))
	for _, r := range recs {
		effort := r.EffortLevel
		if effort == "" {
			effort = articlerecommendation.EffortLevelMedium
		}
		b := s.client.ArticleRecommendation.Create().
			SetTopicClusterID(r.TopicClusterID).
			SetTitle(r.Title).
			SetHook(r.Hook).
			SetDifferentiationScore(r.DifferentiationScore).
			SetEffortLevel(effort)
		if len(r.Outline) > 0 {
			b.SetOutline(r.Outline)
		}
		builders = append(builders, b)
	}

	saved, err := s.client.ArticleRecommendation.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, classifyDBError("save recommendations", err)
	}
	return saved, nil
}

// SetRecommendationStatus applies an editorial decision to a recommendation.
func (s *TrendService) SetRecommendationStatus(ctx context.Context, recommendationID int, status articlerecommendation.Status) error {
	err := s.client.ArticleRecommendation.UpdateOneID(recommendationID).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return classifyDBError("set recommendation status", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Stage 4: coverage, gaps, strengths, roadmap
// ─────────────────────────────────────────────────────────────────────────────

// CoverageInput is the raw coverage computation for one topic.
type CoverageInput struct {
	ClientDomain              string
	TopicClusterID            int
	ClientCount               int
	CompetitorCount           int
	DistinctCompetitorDomains int
	AvgCompetitor             float64
	CoverageScore             float64
	Level                     coverageanalysis.Level
}

// SaveCoverage persists per-topic coverage rows.
func (s *TrendService) SaveCoverage(ctx context.Context, rows []CoverageInput) error {
	if len(rows) == 0 {
		return nil
	}

	builders := make([]*ent.CoverageAnalysisCreate, 0, len(rows))
	for _, r := range rows {
		builders = append(builders, s.client.CoverageAnalysis.Create().
			SetClientDomain(r.ClientDomain).
			SetTopicClusterID(r.TopicClusterID).
			SetClientCount(r.ClientCount).
			SetCompetitorCount(r.CompetitorCount).
			SetDistinctCompetitorDomains(r.DistinctCompetitorDomains).
			SetAvgCompetitor(r.AvgCompetitor).
			SetCoverageScore(r.CoverageScore).
			SetLevel(r.Level))
	}

	if err := s.client.CoverageAnalysis.CreateBulk(builders...).Exec(ctx); err != nil {
		return classifyDBError("save coverage", err)
	}
	return nil
}

// GapInput is one detected editorial gap.
type GapInput struct {
	ClientDomain    string
	TopicClusterID  int
	ClientCount     int
	CompetitorCount int
	AvgCompetitor   float64
	CoverageScore   float64
	Level           editorialgap.Level
	PriorityScore   float64
}

// SaveGaps persists editorial gaps and returns the created rows.
func (s *TrendService) SaveGaps(ctx context.Context, gaps []GapInput) ([]*ent.EditorialGap, error) {
	if len(gaps) == 0 {
		return nil, nil
	}

	builders := make([]*ent.EditorialGapCreate, 0, len(gaps))
	for _, g := range gaps {
		builders = append(builders, s.client.EditorialGap.Create().
			SetClientDomain(g.ClientDomain).
			SetTopicClusterID(g.TopicClusterID).
			SetClientCount(g.ClientCount).
			SetCompetitorCount(g.CompetitorCount).
			SetAvgCompetitor(g.AvgCompetitor).
			SetCoverageScore(g.CoverageScore).
			SetLevel(g.Level).
			SetPriorityScore(g.PriorityScore))
	}

	saved, err := s.client.EditorialGap.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, classifyDBError("save gaps", err)
	}
	return saved, nil
}

// StrengthInput is one client strength row.
type StrengthInput struct {
	ClientDomain    string
	TopicClusterID  int
	ClientCount     int
	CompetitorCount int
	CoverageScore   float64
}

// SaveStrengths persists client strengths.
func (s *TrendService) SaveStrengths(ctx context.Context, strengths []StrengthInput) error {
	if len(strengths) == 0 {
		return nil
	}

	builders := make([]*ent.ClientStrengthCreate, 0, len(strengths))
	for _, st := range strengths {
		builders = append(builders, s.client.ClientStrength.Create().
			SetClientDomain(st.ClientDomain).
			SetTopicClusterID(st.TopicClusterID).
			SetClientCount(st.ClientCount).
			SetCompetitorCount(st.CompetitorCount).
			SetCoverageScore(st.CoverageScore))
	}

	if err := s.client.ClientStrength.CreateBulk(builders...).Exec(ctx); err != nil {
		return classifyDBError("save strengths", err)
	}
	return nil
}

// RoadmapEntryInput pairs a gap with its chosen recommendation.
type RoadmapEntryInput struct {
	GapID           int
	RecommendationID int
	PriorityTier    contentroadmap.PriorityTier
	EstimatedEffort contentroadmap.EstimatedEffort
}

// ReplaceRoadmap atomically replaces the roadmap of a client domain.
// priority_order is assigned densely 1..N in input order.
func (s *TrendService) ReplaceRoadmap(ctx context.Context, clientDomain string, entries []RoadmapEntryInput) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return classifyDBError("begin replace roadmap", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ContentRoadmap.Delete().
		Where(contentroadmap.ClientDomainEQ(clientDomain)).
		Exec(ctx)
	if err != nil {
		return classifyDBError("clear roadmap", err)
	}

	for i, e := range entries {
		err := tx.ContentRoadmap.Create().
			SetClientDomain(clientDomain).
			SetGapID(e.GapID).
			SetRecommendationID(e.RecommendationID).
			SetPriorityOrder(i + 1).
			SetPriorityTier(e.PriorityTier).
			SetEstimatedEffort(e.EstimatedEffort).
			Exec(ctx)
		if err != nil {
			return classifyDBError("insert roadmap entry", err)
		}
	}
	return tx.Commit()
}

// ─────────────────────────────────────────────────────────────────────────────
// Topic queries
// ─────────────────────────────────────────────────────────────────────────────

// TopicDetail is the query shape for the topics endpoint: one cluster with
// everything derived from it.
type TopicDetail struct {
	Cluster         *ent.TopicCluster
	TemporalMetrics *ent.TopicTemporalMetrics
	Analysis        *ent.TrendAnalysis
	Recommendations []*ent.ArticleRecommendation
	Coverage        *ent.CoverageAnalysis
}

// GetTopics returns the full topic picture of a pipeline run, ordered by
// descending size.
func (s *TrendService) GetTopics(ctx context.Context, pipelineID int) ([]TopicDetail, error) {
	clusters, err := s.client.TopicCluster.Query().
		Where(topiccluster.AnalysisIDEQ(pipelineID)).
		Order(ent.Desc(topiccluster.FieldSize), ent.Asc(topiccluster.FieldTopicID)).
		All(ctx)
	if err != nil {
		return nil, classifyDBError("query clusters", err)
	}

	details := make([]TopicDetail, 0, len(clusters))
	for _, cluster := range clusters {
		detail := TopicDetail{Cluster: cluster}

		metrics, err := s.client.TopicTemporalMetrics.Query().
			Where(topictemporalmetrics.TopicClusterIDEQ(cluster.ID)).
			Order(ent.Desc(topictemporalmetrics.FieldCreatedAt)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, classifyDBError("query temporal metrics", err)
		}
		detail.TemporalMetrics = metrics

		analysis, err := s.client.TrendAnalysis.Query().
			Where(trendanalysis.TopicClusterIDEQ(cluster.ID)).
			Order(ent.Desc(trendanalysis.FieldCreatedAt)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, classifyDBError("query trend analysis", err)
		}
		detail.Analysis = analysis

		recs, err := s.client.ArticleRecommendation.Query().
			Where(articlerecommendation.TopicClusterIDEQ(cluster.ID)).
			Order(ent.Desc(articlerecommendation.FieldDifferentiationScore)).
			All(ctx)
		if err != nil {
			return nil, classifyDBError("query recommendations", err)
		}
		detail.Recommendations = recs

		coverage, err := s.client.CoverageAnalysis.Query().
			Where(coverageanalysis.TopicClusterIDEQ(cluster.ID)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, classifyDBError("query coverage", err)
		}
		detail.Coverage = coverage

		details = append(details, detail)
	}
	return details, nil
}

// GetOutliers returns the outliers of a pipeline run.
func (s *TrendService) GetOutliers(ctx context.Context, pipelineID int) ([]*ent.TopicOutlier, error) {
	outliers, err := s.client.TopicOutlier.Query().
		Where(topicoutlier.AnalysisIDEQ(pipelineID)).
		Order(ent.Desc(topicoutlier.FieldEmbeddingDistance)).
		All(ctx)
	if err != nil {
		return nil, classifyDBError("query outliers", err)
	}
	return outliers, nil
}

// GetGaps returns gaps for a client domain by descending priority.
func (s *TrendService) GetGaps(ctx context.Context, clientDomain string) ([]*ent.EditorialGap, error) {
	gaps, err := s.client.EditorialGap.Query().
		Where(editorialgap.ClientDomainEQ(clientDomain)).
		Order(ent.Desc(editorialgap.FieldPriorityScore)).
		All(ctx)
	if err != nil {
		return nil, classifyDBError("query gaps", err)
	}
	return gaps, nil
}

// GetStrengths returns strengths for a client domain.
func (s *TrendService) GetStrengths(ctx context.Context, clientDomain string) ([]*ent.ClientStrength, error) {
	strengths, err := s.client.ClientStrength.Query().
		Where(clientstrength.ClientDomainEQ(clientDomain)).
		Order(ent.Desc(clientstrength.FieldCoverageScore)).
		All(ctx)
	if err != nil {
		return nil, classifyDBError("query strengths", err)
	}
	return strengths, nil
}

// GetRoadmap returns the roadmap of a client domain in priority order.
func (s *TrendService) GetRoadmap(ctx context.Context, clientDomain string) ([]*ent.ContentRoadmap, error) {
	entries, err := s.client.ContentRoadmap.Query().
		Where(contentroadmap.ClientDomainEQ(clientDomain)).
		Order(ent.Asc(contentroadmap.FieldPriorityOrder)).
		All(ctx)
	if err != nil {
		return nil, classifyDBError("query roadmap", err)
	}
	return entries, nil
}
