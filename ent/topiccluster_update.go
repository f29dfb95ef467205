// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/clientstrength"
	"github.com/trendscope/trendscope/ent/coverageanalysis"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/topictemporalmetrics"
	"github.com/trendscope/trendscope/ent/trendanalysis"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// TopicClusterUpdate is the builder for updating TopicCluster entities.
type TopicClusterUpdate struct {
	config
	hooks    []Hook
	mutation *TopicClusterMutation
}

// Where appends a list predicates to the TopicClusterUpdate builder.
func (_u *TopicClusterUpdate) Where(ps ...predicate.TopicCluster) *TopicClusterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *TopicClusterUpdate) SetAnalysisID(v int) *TopicClusterUpdate {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *TopicClusterUpdate) SetNillableAnalysisID(v *int) *TopicClusterUpdate {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *TopicClusterUpdate) SetTopicID(v int) *TopicClusterUpdate {
	_u.mutation.ResetTopicID()
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *TopicClusterUpdate) SetNillableTopicID(v *int) *TopicClusterUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// AddTopicID adds value to the "topic_id" field.
func (_u *TopicClusterUpdate) AddTopicID(v int) *TopicClusterUpdate {
	_u.mutation.AddTopicID(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *TopicClusterUpdate) SetLabel(v string) *TopicClusterUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *TopicClusterUpdate) SetNillableLabel(v *string) *TopicClusterUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetTopTerms sets the "top_terms" field.
func (_u *TopicClusterUpdate) SetTopTerms(v []map[string]interface{}) *TopicClusterUpdate {
	_u.mutation.SetTopTerms(v)
	return _u
}

// AppendTopTerms appends value to the "top_terms" field.
func (_u *TopicClusterUpdate) AppendTopTerms(v []map[string]interface{}) *TopicClusterUpdate {
	_u.mutation.AppendTopTerms(v)
	return _u
}

// ClearTopTerms clears the value of the "top_terms" field.
func (_u *TopicClusterUpdate) ClearTopTerms() *TopicClusterUpdate {
	_u.mutation.ClearTopTerms()
	return _u
}

// SetSize sets the "size" field.
func (_u *TopicClusterUpdate) SetSize(v int) *TopicClusterUpdate {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *TopicClusterUpdate) SetNillableSize(v *int) *TopicClusterUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *TopicClusterUpdate) AddSize(v int) *TopicClusterUpdate {
	_u.mutation.AddSize(v)
	return _u
}

// SetDocumentIds sets the "document_ids" field.
func (_u *TopicClusterUpdate) SetDocumentIds(v map[string]interface{}) *TopicClusterUpdate {
	_u.mutation.SetDocumentIds(v)
	return _u
}

// SetCentroidVectorID sets the "centroid_vector_id" field.
func (_u *TopicClusterUpdate) SetCentroidVectorID(v string) *TopicClusterUpdate {
	_u.mutation.SetCentroidVectorID(v)
	return _u
}

// SetNillableCentroidVectorID sets the "centroid_vector_id" field if the given value is not nil.
func (_u *TopicClusterUpdate) SetNillableCentroidVectorID(v *string) *TopicClusterUpdate {
	if v != nil {
		_u.SetCentroidVectorID(*v)
	}
	return _u
}

// ClearCentroidVectorID clears the value of the "centroid_vector_id" field.
func (_u *TopicClusterUpdate) ClearCentroidVectorID() *TopicClusterUpdate {
	_u.mutation.ClearCentroidVectorID()
	return _u
}

// SetCoherenceScore sets the "coherence_score" field.
func (_u *TopicClusterUpdate) SetCoherenceScore(v float64) *TopicClusterUpdate {
	_u.mutation.ResetCoherenceScore()
	_u.mutation.SetCoherenceScore(v)
	return _u
}

// SetNillableCoherenceScore sets the "coherence_score" field if the given value is not nil.
func (_u *TopicClusterUpdate) SetNillableCoherenceScore(v *float64) *TopicClusterUpdate {
	if v != nil {
		_u.SetCoherenceScore(*v)
	}
	return _u
}

// AddCoherenceScore adds value to the "coherence_score" field.
func (_u *TopicClusterUpdate) AddCoherenceScore(v float64) *TopicClusterUpdate {
	_u.mutation.AddCoherenceScore(v)
	return _u
}

// SetAnalysis sets the "analysis" edge to the TrendPipelineExecution entity.
func (_u *TopicClusterUpdate) SetAnalysis(v *TrendPipelineExecution) *TopicClusterUpdate {
	return _u.SetAnalysisID(v.ID)
}

// AddTemporalMetricIDs adds the "temporal_metrics" edge to the TopicTemporalMetrics entity by IDs.
func (_u *TopicClusterUpdate) AddTemporalMetricIDs(ids ...int) *TopicClusterUpdate {
	_u.mutation.AddTemporalMetricIDs(ids...)
	return _u
}

// AddTemporalMetrics adds the "temporal_metrics" edges to the TopicTemporalMetrics entity.
func (_u *TopicClusterUpdate) AddTemporalMetrics(v ...*TopicTemporalMetrics) *TopicClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTemporalMetricIDs(ids...)
}

// AddTrendAnalysisIDs adds the "trend_analyses" edge to the TrendAnalysis entity by IDs.
func (_u *TopicClusterUpdate) AddTrendAnalysisIDs(ids ...int) *TopicClusterUpdate {
	_u.mutation.AddTrendAnalysisIDs(ids...)
	return _u
}

// AddTrendAnalyses adds the "trend_analyses" edges to the TrendAnalysis entity.
func (_u *TopicClusterUpdate) AddTrendAnalyses(v ...*TrendAnalysis) *TopicClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrendAnalysisIDs(ids...)
}

// AddRecommendationIDs adds the "recommendations" edge to the ArticleRecommendation entity by IDs.
func (_u *TopicClusterUpdate) AddRecommendationIDs(ids ...int) *TopicClusterUpdate {
	_u.mutation.AddRecommendationIDs(ids...)
	return _u
}

// AddRecommendations adds the "recommendations" edges to the ArticleRecommendation entity.
func (_u *TopicClusterUpdate) AddRecommendations(v ...*ArticleRecommendation) *TopicClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecommendationIDs(ids...)
}

// AddGapIDs adds the "gaps" edge to the EditorialGap entity by IDs.
func (_u *TopicClusterUpdate) AddGapIDs(ids ...int) *TopicClusterUpdate {
	_u.mutation.AddGapIDs(ids...)
	return _u
}

// AddGaps adds the "gaps" edges to the EditorialGap entity.
func (_u *TopicClusterUpdate) AddGaps(v ...*EditorialGap) *TopicClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGapIDs(ids...)
}

// AddStrengthIDs adds the "strengths" edge to the ClientStrength entity by IDs.
func (_u *TopicClusterUpdate) AddStrengthIDs(ids ...int) *TopicClusterUpdate {
	_u.mutation.AddStrengthIDs(ids...)
	return _u
}

// AddStrengths adds the "strengths" edges to the ClientStrength entity.
func (_u *TopicClusterUpdate) AddStrengths(v ...*ClientStrength) *TopicClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStrengthIDs(ids...)
}

// AddCoverageAnalysisIDs adds the "coverage_analyses" edge to the CoverageAnalysis entity by IDs.
func (_u *TopicClusterUpdate) AddCoverageAnalysisIDs(ids ...int) *TopicClusterUpdate {
	_u.mutation.AddCoverageAnalysisIDs(ids...)
	return _u
}

// AddCoverageAnalyses adds the "coverage_analyses" edges to the CoverageAnalysis entity.
func (_u *TopicClusterUpdate) AddCoverageAnalyses(v ...*CoverageAnalysis) *TopicClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCoverageAnalysisIDs(ids...)
}

// Mutation returns the TopicClusterMutation object of the builder.
func (_u *TopicClusterUpdate) Mutation() *TopicClusterMutation {
	return _u.mutation
}

// ClearAnalysis clears the "analysis" edge to the TrendPipelineExecution entity.
func (_u *TopicClusterUpdate) ClearAnalysis() *TopicClusterUpdate {
	_u.mutation.ClearAnalysis()
	return _u
}

// ClearTemporalMetrics clears all "temporal_metrics" edges to the TopicTemporalMetrics entity.
func (_u *TopicClusterUpdate) ClearTemporalMetrics() *TopicClusterUpdate {
	_u.mutation.ClearTemporalMetrics()
	return _u
}

// RemoveTemporalMetricIDs removes the "temporal_metrics" edge to TopicTemporalMetrics entities by IDs.
func (_u *TopicClusterUpdate) RemoveTemporalMetricIDs(ids ...int) *TopicClusterUpdate {
	_u.mutation.RemoveTemporalMetricIDs(ids...)
	return _u
}

// RemoveTemporalMetrics removes "temporal_metrics" edges to TopicTemporalMetrics entities.
func (_u *TopicClusterUpdate) RemoveTemporalMetrics(v ...*TopicTemporalMetrics) *TopicClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTemporalMetricIDs(ids...)
}

// ClearTrendAnalyses clears all "trend_analyses" edges to the TrendAnalysis entity.
func (_u *TopicClusterUpdate) ClearTrendAnalyses() *TopicClusterUpdate {
	_u.mutation.ClearTrendAnalyses()
	return _u
}

// RemoveTrendAnalysisIDs removes the "trend_analyses" edge to TrendAnalysis entities by IDs.
func (_u *TopicClusterUpdate) RemoveTrendAnalysisIDs(ids ...int) *TopicClusterUpdate {
	_u.mutation.RemoveTrendAnalysisIDs(ids...)
	return _u
}

// RemoveTrendAnalyses removes "trend_analyses" edges to TrendAnalysis entities.
func (_u *TopicClusterUpdate) RemoveTrendAnalyses(v ...*TrendAnalysis) *TopicClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrendAnalysisIDs(ids...)
}

// ClearRecommendations clears all "recommendations" edges to the ArticleRecommendation entity.
func (_u *TopicClusterUpdate) ClearRecommendations() *TopicClusterUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// RemoveRecommendationIDs removes the "recommendations" edge to ArticleRecommendation entities by IDs.
func (_u *TopicClusterUpdate) RemoveRecommendationIDs(ids ...int) *TopicClusterUpdate {
	_u.mutation.RemoveRecommendationIDs(ids...)
	return _u
}

// RemoveRecommendations removes "recommendations" edges to ArticleRecommendation entities.
func (_u *TopicClusterUpdate) RemoveRecommendations(v ...*ArticleRecommendation) *TopicClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecommendationIDs(ids...)
}

// ClearGaps clears all "gaps" edges to the EditorialGap entity.
func (_u *TopicClusterUpdate) ClearGaps() *TopicClusterUpdate {
	_u.mutation.ClearGaps()
	return _u
}

// RemoveGapIDs removes the "gaps" edge to EditorialGap entities by IDs.
func (_u *TopicClusterUpdate) RemoveGapIDs(ids ...int) *TopicClusterUpdate {
	_u.mutation.RemoveGapIDs(ids...)
	return _u
}

// RemoveGaps removes "gaps" edges to EditorialGap entities.
func (_u *TopicClusterUpdate) RemoveGaps(v ...*EditorialGap) *TopicClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGapIDs(ids...)
}

// ClearStrengths clears all "strengths" edges to the ClientStrength entity.
func (_u *TopicClusterUpdate) ClearStrengths() *TopicClusterUpdate {
	_u.mutation.ClearStrengths()
	return _u
}

// RemoveStrengthIDs removes the "strengths" edge to ClientStrength entities by IDs.
func (_u *TopicClusterUpdate) RemoveStrengthIDs(ids ...int) *TopicClusterUpdate {
	_u.mutation.RemoveStrengthIDs(ids...)
	return _u
}

// RemoveStrengths removes "strengths" edges to ClientStrength entities.
func (_u *TopicClusterUpdate) RemoveStrengths(v ...*ClientStrength) *TopicClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStrengthIDs(ids...)
}

// ClearCoverageAnalyses clears all "coverage_analyses" edges to the CoverageAnalysis entity.
func (_u *TopicClusterUpdate) ClearCoverageAnalyses() *TopicClusterUpdate {
	_u.mutation.ClearCoverageAnalyses()
	return _u
}

// RemoveCoverageAnalysisIDs removes the "coverage_analyses" edge to CoverageAnalysis entities by IDs.
func (_u *TopicClusterUpdate) RemoveCoverageAnalysisIDs(ids ...int) *TopicClusterUpdate {
	_u.mutation.RemoveCoverageAnalysisIDs(ids...)
	return _u
}

// RemoveCoverageAnalyses removes "coverage_analyses" edges to CoverageAnalysis entities.
func (_u *TopicClusterUpdate) RemoveCoverageAnalyses(v ...*CoverageAnalysis) *TopicClusterUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCoverageAnalysisIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicClusterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicClusterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicClusterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicClusterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicClusterUpdate) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := topiccluster.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TopicCluster.topic_id": %w`, err)}
		}
	}
	if _u.mutation.AnalysisCleared() && len(_u.mutation.AnalysisIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TopicCluster.analysis"`)
	}
	return nil
}

func (_u *TopicClusterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topiccluster.Table, topiccluster.Columns, sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(topiccluster.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicID(); ok {
		_spec.AddField(topiccluster.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(topiccluster.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopTerms(); ok {
		_spec.SetField(topiccluster.FieldTopTerms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopTerms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topiccluster.FieldTopTerms, value)
		})
	}
	if _u.mutation.TopTermsCleared() {
		_spec.ClearField(topiccluster.FieldTopTerms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(topiccluster.FieldSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(topiccluster.FieldSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentIds(); ok {
		_spec.SetField(topiccluster.FieldDocumentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CentroidVectorID(); ok {
		_spec.SetField(topiccluster.FieldCentroidVectorID, field.TypeString, value)
	}
	if _u.mutation.CentroidVectorIDCleared() {
		_spec.ClearField(topiccluster.FieldCentroidVectorID, field.TypeString)
	}
	if value, ok := _u.mutation.CoherenceScore(); ok {
		_spec.SetField(topiccluster.FieldCoherenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoherenceScore(); ok {
		_spec.AddField(topiccluster.FieldCoherenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.AnalysisCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topiccluster.AnalysisTable,
			Columns: []string{topiccluster.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topiccluster.AnalysisTable,
			Columns: []string{topiccluster.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemporalMetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.TemporalMetricsTable,
			Columns: []string{topiccluster.TemporalMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topictemporalmetrics.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTemporalMetricsIDs(); len(nodes) > 0 && !_u.mutation.TemporalMetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.TemporalMetricsTable,
			Columns: []string{topiccluster.TemporalMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topictemporalmetrics.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemporalMetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.TemporalMetricsTable,
			Columns: []string{topiccluster.TemporalMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topictemporalmetrics.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrendAnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.TrendAnalysesTable,
			Columns: []string{topiccluster.TrendAnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendanalysis.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrendAnalysesIDs(); len(nodes) > 0 && !_u.mutation.TrendAnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.TrendAnalysesTable,
			Columns: []string{topiccluster.TrendAnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendanalysis.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrendAnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.TrendAnalysesTable,
			Columns: []string{topiccluster.TrendAnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendanalysis.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecommendationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.RecommendationsTable,
			Columns: []string{topiccluster.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecommendationsIDs(); len(nodes) > 0 && !_u.mutation.RecommendationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.RecommendationsTable,
			Columns: []string{topiccluster.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecommendationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.RecommendationsTable,
			Columns: []string{topiccluster.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GapsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.GapsTable,
			Columns: []string{topiccluster.GapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGapsIDs(); len(nodes) > 0 && !_u.mutation.GapsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.GapsTable,
			Columns: []string{topiccluster.GapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GapsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.GapsTable,
			Columns: []string{topiccluster.GapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StrengthsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.StrengthsTable,
			Columns: []string{topiccluster.StrengthsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientstrength.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStrengthsIDs(); len(nodes) > 0 && !_u.mutation.StrengthsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.StrengthsTable,
			Columns: []string{topiccluster.StrengthsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientstrength.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StrengthsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.StrengthsTable,
			Columns: []string{topiccluster.StrengthsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientstrength.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CoverageAnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.CoverageAnalysesTable,
			Columns: []string{topiccluster.CoverageAnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCoverageAnalysesIDs(); len(nodes) > 0 && !_u.mutation.CoverageAnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.CoverageAnalysesTable,
			Columns: []string{topiccluster.CoverageAnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CoverageAnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.CoverageAnalysesTable,
			Columns: []string{topiccluster.CoverageAnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topiccluster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicClusterUpdateOne is the builder for updating a single TopicCluster entity.
type TopicClusterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicClusterMutation
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *TopicClusterUpdateOne) SetAnalysisID(v int) *TopicClusterUpdateOne {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *TopicClusterUpdateOne) SetNillableAnalysisID(v *int) *TopicClusterUpdateOne {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *TopicClusterUpdateOne) SetTopicID(v int) *TopicClusterUpdateOne {
	_u.mutation.ResetTopicID()
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *TopicClusterUpdateOne) SetNillableTopicID(v *int) *TopicClusterUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// AddTopicID adds value to the "topic_id" field.
func (_u *TopicClusterUpdateOne) AddTopicID(v int) *TopicClusterUpdateOne {
	_u.mutation.AddTopicID(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *TopicClusterUpdateOne) SetLabel(v string) *TopicClusterUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *TopicClusterUpdateOne) SetNillableLabel(v *string) *TopicClusterUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetTopTerms sets the "top_terms" field.
func (_u *TopicClusterUpdateOne) SetTopTerms(v []map[string]interface{}) *TopicClusterUpdateOne {
	_u.mutation.SetTopTerms(v)
	return _u
}

// AppendTopTerms appends value to the "top_terms" field.
func (_u *TopicClusterUpdateOne) AppendTopTerms(v []map[string]interface{}) *TopicClusterUpdateOne {
	_u.mutation.AppendTopTerms(v)
	return _u
}

// ClearTopTerms clears the value of the "top_terms" field.
func (_u *TopicClusterUpdateOne) ClearTopTerms() *TopicClusterUpdateOne {
	_u.mutation.ClearTopTerms()
	return _u
}

// SetSize sets the "size" field.
func (_u *TopicClusterUpdateOne) SetSize(v int) *TopicClusterUpdateOne {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *TopicClusterUpdateOne) SetNillableSize(v *int) *TopicClusterUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *TopicClusterUpdateOne) AddSize(v int) *TopicClusterUpdateOne {
	_u.mutation.AddSize(v)
	return _u
}

// SetDocumentIds sets the "document_ids" field.
func (_u *TopicClusterUpdateOne) SetDocumentIds(v map[string]interface{}) *TopicClusterUpdateOne {
	_u.mutation.SetDocumentIds(v)
	return _u
}

// SetCentroidVectorID sets the "centroid_vector_id" field.
func (_u *TopicClusterUpdateOne) SetCentroidVectorID(v string) *TopicClusterUpdateOne {
	_u.mutation.SetCentroidVectorID(v)
	return _u
}

// SetNillableCentroidVectorID sets the "centroid_vector_id" field if the given value is not nil.
func (_u *TopicClusterUpdateOne) SetNillableCentroidVectorID(v *string) *TopicClusterUpdateOne {
	if v != nil {
		_u.SetCentroidVectorID(*v)
	}
	return _u
}

// ClearCentroidVectorID clears the value of the "centroid_vector_id" field.
func (_u *TopicClusterUpdateOne) ClearCentroidVectorID() *TopicClusterUpdateOne {
	_u.mutation.ClearCentroidVectorID()
	return _u
}

// SetCoherenceScore sets the "coherence_score" field.
func (_u *TopicClusterUpdateOne) SetCoherenceScore(v float64) *TopicClusterUpdateOne {
	_u.mutation.ResetCoherenceScore()
	_u.mutation.SetCoherenceScore(v)
	return _u
}

// SetNillableCoherenceScore sets the "coherence_score" field if the given value is not nil.
func (_u *TopicClusterUpdateOne) SetNillableCoherenceScore(v *float64) *TopicClusterUpdateOne {
	if v != nil {
		_u.SetCoherenceScore(*v)
	}
	return _u
}

// AddCoherenceScore adds value to the "coherence_score" field.
func (_u *TopicClusterUpdateOne) AddCoherenceScore(v float64) *TopicClusterUpdateOne {
	_u.mutation.AddCoherenceScore(v)
	return _u
}

// SetAnalysis sets the "analysis" edge to the TrendPipelineExecution entity.
func (_u *TopicClusterUpdateOne) SetAnalysis(v *TrendPipelineExecution) *TopicClusterUpdateOne {
	return _u.SetAnalysisID(v.ID)
}

// AddTemporalMetricIDs adds the "temporal_metrics" edge to the TopicTemporalMetrics entity by IDs.
func (_u *TopicClusterUpdateOne) AddTemporalMetricIDs(ids ...int) *TopicClusterUpdateOne {
	_u.mutation.AddTemporalMetricIDs(ids...)
	return _u
}

// AddTemporalMetrics adds the "temporal_metrics" edges to the TopicTemporalMetrics entity.
func (_u *TopicClusterUpdateOne) AddTemporalMetrics(v ...*TopicTemporalMetrics) *TopicClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTemporalMetricIDs(ids...)
}

// AddTrendAnalysisIDs adds the "trend_analyses" edge to the TrendAnalysis entity by IDs.
func (_u *TopicClusterUpdateOne) AddTrendAnalysisIDs(ids ...int) *TopicClusterUpdateOne {
	_u.mutation.AddTrendAnalysisIDs(ids...)
	return _u
}

// AddTrendAnalyses adds the "trend_analyses" edges to the TrendAnalysis entity.
func (_u *TopicClusterUpdateOne) AddTrendAnalyses(v ...*TrendAnalysis) *TopicClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrendAnalysisIDs(ids...)
}

// AddRecommendationIDs adds the "recommendations" edge to the ArticleRecommendation entity by IDs.
func (_u *TopicClusterUpdateOne) AddRecommendationIDs(ids ...int) *TopicClusterUpdateOne {
	_u.mutation.AddRecommendationIDs(ids...)
	return _u
}

// AddRecommendations adds the "recommendations" edges to the ArticleRecommendation entity.
func (_u *TopicClusterUpdateOne) AddRecommendations(v ...*ArticleRecommendation) *TopicClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecommendationIDs(ids...)
}

// AddGapIDs adds the "gaps" edge to the EditorialGap entity by IDs.
func (_u *TopicClusterUpdateOne) AddGapIDs(ids ...int) *TopicClusterUpdateOne {
	_u.mutation.AddGapIDs(ids...)
	return _u
}

// AddGaps adds the "gaps" edges to the EditorialGap entity.
func (_u *TopicClusterUpdateOne) AddGaps(v ...*EditorialGap) *TopicClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGapIDs(ids...)
}

// AddStrengthIDs adds the "strengths" edge to the ClientStrength entity by IDs.
func (_u *TopicClusterUpdateOne) AddStrengthIDs(ids ...int) *TopicClusterUpdateOne {
	_u.mutation.AddStrengthIDs(ids...)
	return _u
}

// AddStrengths adds the "strengths" edges to the ClientStrength entity.
func (_u *TopicClusterUpdateOne) AddStrengths(v ...*ClientStrength) *TopicClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStrengthIDs(ids...)
}

// AddCoverageAnalysisIDs adds the "coverage_analyses" edge to the CoverageAnalysis entity by IDs.
func (_u *TopicClusterUpdateOne) AddCoverageAnalysisIDs(ids ...int) *TopicClusterUpdateOne {
	_u.mutation.AddCoverageAnalysisIDs(ids...)
	return _u
}

// AddCoverageAnalyses adds the "coverage_analyses" edges to the CoverageAnalysis entity.
func (_u *TopicClusterUpdateOne) AddCoverageAnalyses(v ...*CoverageAnalysis) *TopicClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCoverageAnalysisIDs(ids...)
}

// Mutation returns the TopicClusterMutation object of the builder.
func (_u *TopicClusterUpdateOne) Mutation() *TopicClusterMutation {
	return _u.mutation
}

// ClearAnalysis clears the "analysis" edge to the TrendPipelineExecution entity.
func (_u *TopicClusterUpdateOne) ClearAnalysis() *TopicClusterUpdateOne {
	_u.mutation.ClearAnalysis()
	return _u
}

// ClearTemporalMetrics clears all "temporal_metrics" edges to the TopicTemporalMetrics entity.
func (_u *TopicClusterUpdateOne) ClearTemporalMetrics() *TopicClusterUpdateOne {
	_u.mutation.ClearTemporalMetrics()
	return _u
}

// RemoveTemporalMetricIDs removes the "temporal_metrics" edge to TopicTemporalMetrics entities by IDs.
func (_u *TopicClusterUpdateOne) RemoveTemporalMetricIDs(ids ...int) *TopicClusterUpdateOne {
	_u.mutation.RemoveTemporalMetricIDs(ids...)
	return _u
}

// RemoveTemporalMetrics removes "temporal_metrics" edges to TopicTemporalMetrics entities.
func (_u *TopicClusterUpdateOne) RemoveTemporalMetrics(v ...*TopicTemporalMetrics) *TopicClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTemporalMetricIDs(ids...)
}

// ClearTrendAnalyses clears all "trend_analyses" edges to the TrendAnalysis entity.
func (_u *TopicClusterUpdateOne) ClearTrendAnalyses() *TopicClusterUpdateOne {
	_u.mutation.ClearTrendAnalyses()
	return _u
}

// RemoveTrendAnalysisIDs removes the "trend_analyses" edge to TrendAnalysis entities by IDs.
func (_u *TopicClusterUpdateOne) RemoveTrendAnalysisIDs(ids ...int) *TopicClusterUpdateOne {
	_u.mutation.RemoveTrendAnalysisIDs(ids...)
	return _u
}

// RemoveTrendAnalyses removes "trend_analyses" edges to TrendAnalysis entities.
func (_u *TopicClusterUpdateOne) RemoveTrendAnalyses(v ...*TrendAnalysis) *TopicClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrendAnalysisIDs(ids...)
}

// ClearRecommendations clears all "recommendations" edges to the ArticleRecommendation entity.
func (_u *TopicClusterUpdateOne) ClearRecommendations() *TopicClusterUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// RemoveRecommendationIDs removes the "recommendations" edge to ArticleRecommendation entities by IDs.
func (_u *TopicClusterUpdateOne) RemoveRecommendationIDs(ids ...int) *TopicClusterUpdateOne {
	_u.mutation.RemoveRecommendationIDs(ids...)
	return _u
}

// RemoveRecommendations removes "recommendations" edges to ArticleRecommendation entities.
func (_u *TopicClusterUpdateOne) RemoveRecommendations(v ...*ArticleRecommendation) *TopicClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecommendationIDs(ids...)
}

// ClearGaps clears all "gaps" edges to the EditorialGap entity.
func (_u *TopicClusterUpdateOne) ClearGaps() *TopicClusterUpdateOne {
	_u.mutation.ClearGaps()
	return _u
}

// RemoveGapIDs removes the "gaps" edge to EditorialGap entities by IDs.
func (_u *TopicClusterUpdateOne) RemoveGapIDs(ids ...int) *TopicClusterUpdateOne {
	_u.mutation.RemoveGapIDs(ids...)
	return _u
}

// RemoveGaps removes "gaps" edges to EditorialGap entities.
func (_u *TopicClusterUpdateOne) RemoveGaps(v ...*EditorialGap) *TopicClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGapIDs(ids...)
}

// ClearStrengths clears all "strengths" edges to the ClientStrength entity.
func (_u *TopicClusterUpdateOne) ClearStrengths() *TopicClusterUpdateOne {
	_u.mutation.ClearStrengths()
	return _u
}

// RemoveStrengthIDs removes the "strengths" edge to ClientStrength entities by IDs.
func (_u *TopicClusterUpdateOne) RemoveStrengthIDs(ids ...int) *TopicClusterUpdateOne {
	_u.mutation.RemoveStrengthIDs(ids...)
	return _u
}

// RemoveStrengths removes "strengths" edges to ClientStrength entities.
func (_u *TopicClusterUpdateOne) RemoveStrengths(v ...*ClientStrength) *TopicClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStrengthIDs(ids...)
}

// ClearCoverageAnalyses clears all "coverage_analyses" edges to the CoverageAnalysis entity.
func (_u *TopicClusterUpdateOne) ClearCoverageAnalyses() *TopicClusterUpdateOne {
	_u.mutation.ClearCoverageAnalyses()
	return _u
}

// RemoveCoverageAnalysisIDs removes the "coverage_analyses" edge to CoverageAnalysis entities by IDs.
func (_u *TopicClusterUpdateOne) RemoveCoverageAnalysisIDs(ids ...int) *TopicClusterUpdateOne {
	_u.mutation.RemoveCoverageAnalysisIDs(ids...)
	return _u
}

// RemoveCoverageAnalyses removes "coverage_analyses" edges to CoverageAnalysis entities.
func (_u *TopicClusterUpdateOne) RemoveCoverageAnalyses(v ...*CoverageAnalysis) *TopicClusterUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCoverageAnalysisIDs(ids...)
}

// Where appends a list predicates to the TopicClusterUpdate builder.
func (_u *TopicClusterUpdateOne) Where(ps ...predicate.TopicCluster) *TopicClusterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicClusterUpdateOne) Select(field string, fields ...string) *TopicClusterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicCluster entity.
func (_u *TopicClusterUpdateOne) Save(ctx context.Context) (*TopicCluster, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicClusterUpdateOne) SaveX(ctx context.Context) *TopicCluster {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicClusterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicClusterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicClusterUpdateOne) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := topiccluster.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TopicCluster.topic_id": %w`, err)}
		}
	}
	if _u.mutation.AnalysisCleared() && len(_u.mutation.AnalysisIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TopicCluster.analysis"`)
	}
	return nil
}

func (_u *TopicClusterUpdateOne) sqlSave(ctx context.Context) (_node *TopicCluster, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topiccluster.Table, topiccluster.Columns, sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicCluster.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topiccluster.FieldID)
		for _, f := range fields {
			if !topiccluster.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topiccluster.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(topiccluster.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicID(); ok {
		_spec.AddField(topiccluster.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(topiccluster.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopTerms(); ok {
		_spec.SetField(topiccluster.FieldTopTerms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopTerms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topiccluster.FieldTopTerms, value)
		})
	}
	if _u.mutation.TopTermsCleared() {
		_spec.ClearField(topiccluster.FieldTopTerms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(topiccluster.FieldSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(topiccluster.FieldSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentIds(); ok {
		_spec.SetField(topiccluster.FieldDocumentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CentroidVectorID(); ok {
		_spec.SetField(topiccluster.FieldCentroidVectorID, field.TypeString, value)
	}
	if _u.mutation.CentroidVectorIDCleared() {
		_spec.ClearField(topiccluster.FieldCentroidVectorID, field.TypeString)
	}
	if value, ok := _u.mutation.CoherenceScore(); ok {
		_spec.SetField(topiccluster.FieldCoherenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoherenceScore(); ok {
		_spec.AddField(topiccluster.FieldCoherenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.AnalysisCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topiccluster.AnalysisTable,
			Columns: []string{topiccluster.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topiccluster.AnalysisTable,
			Columns: []string{topiccluster.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemporalMetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.TemporalMetricsTable,
			Columns: []string{topiccluster.TemporalMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topictemporalmetrics.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTemporalMetricsIDs(); len(nodes) > 0 && !_u.mutation.TemporalMetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.TemporalMetricsTable,
			Columns: []string{topiccluster.TemporalMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topictemporalmetrics.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemporalMetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.TemporalMetricsTable,
			Columns: []string{topiccluster.TemporalMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topictemporalmetrics.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrendAnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.TrendAnalysesTable,
			Columns: []string{topiccluster.TrendAnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendanalysis.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrendAnalysesIDs(); len(nodes) > 0 && !_u.mutation.TrendAnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.TrendAnalysesTable,
			Columns: []string{topiccluster.TrendAnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendanalysis.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrendAnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.TrendAnalysesTable,
			Columns: []string{topiccluster.TrendAnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendanalysis.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecommendationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.RecommendationsTable,
			Columns: []string{topiccluster.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecommendationsIDs(); len(nodes) > 0 && !_u.mutation.RecommendationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.RecommendationsTable,
			Columns: []string{topiccluster.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecommendationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.RecommendationsTable,
			Columns: []string{topiccluster.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GapsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.GapsTable,
			Columns: []string{topiccluster.GapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGapsIDs(); len(nodes) > 0 && !_u.mutation.GapsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.GapsTable,
			Columns: []string{topiccluster.GapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GapsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.GapsTable,
			Columns: []string{topiccluster.GapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StrengthsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.StrengthsTable,
			Columns: []string{topiccluster.StrengthsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientstrength.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStrengthsIDs(); len(nodes) > 0 && !_u.mutation.StrengthsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.StrengthsTable,
			Columns: []string{topiccluster.StrengthsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientstrength.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StrengthsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.StrengthsTable,
			Columns: []string{topiccluster.StrengthsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientstrength.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CoverageAnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.CoverageAnalysesTable,
			Columns: []string{topiccluster.CoverageAnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCoverageAnalysesIDs(); len(nodes) > 0 && !_u.mutation.CoverageAnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.CoverageAnalysesTable,
			Columns: []string{topiccluster.CoverageAnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CoverageAnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topiccluster.CoverageAnalysesTable,
			Columns: []string{topiccluster.CoverageAnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TopicCluster{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topiccluster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
