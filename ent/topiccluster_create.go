// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/clientstrength"
	"github.com/trendscope/trendscope/ent/coverageanalysis"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/topictemporalmetrics"
	"github.com/trendscope/trendscope/ent/trendanalysis"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// TopicClusterCreate is the builder for creating a TopicCluster entity.
type TopicClusterCreate struct {
	config
	mutation *TopicClusterMutation
	hooks    []Hook
}

// SetAnalysisID sets the "analysis_id" field.
func (_c *TopicClusterCreate) SetAnalysisID(v int) *TopicClusterCreate {
	_c.mutation.SetAnalysisID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *TopicClusterCreate) SetTopicID(v int) *TopicClusterCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *TopicClusterCreate) SetLabel(v string) *TopicClusterCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetTopTerms sets the "top_terms" field.
func (_c *TopicClusterCreate) SetTopTerms(v []map[string]interface{}) *TopicClusterCreate {
	_c.mutation.SetTopTerms(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *TopicClusterCreate) SetSize(v int) *TopicClusterCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetDocumentIds sets the "document_ids" field.
func (_c *TopicClusterCreate) SetDocumentIds(v map[string]interface{}) *TopicClusterCreate {
	_c.mutation.SetDocumentIds(v)
	return _c
}

// SetCentroidVectorID sets the "centroid_vector_id" field.
func (_c *TopicClusterCreate) SetCentroidVectorID(v string) *TopicClusterCreate {
	_c.mutation.SetCentroidVectorID(v)
	return _c
}

// SetNillableCentroidVectorID sets the "centroid_vector_id" field if the given value is not nil.
func (_c *TopicClusterCreate) SetNillableCentroidVectorID(v *string) *TopicClusterCreate {
	if v != nil {
		_c.SetCentroidVectorID(*v)
	}
	return _c
}

// SetCoherenceScore sets the "coherence_score" field.
func (_c *TopicClusterCreate) SetCoherenceScore(v float64) *TopicClusterCreate {
	_c.mutation.SetCoherenceScore(v)
	return _c
}

// SetNillableCoherenceScore sets the "coherence_score" field if the given value is not nil.
func (_c *TopicClusterCreate) SetNillableCoherenceScore(v *float64) *TopicClusterCreate {
	if v != nil {
		_c.SetCoherenceScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TopicClusterCreate) SetCreatedAt(v time.Time) *TopicClusterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TopicClusterCreate) SetNillableCreatedAt(v *time.Time) *TopicClusterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAnalysis sets the "analysis" edge to the TrendPipelineExecution entity.
func (_c *TopicClusterCreate) SetAnalysis(v *TrendPipelineExecution) *TopicClusterCreate {
	return _c.SetAnalysisID(v.ID)
}

// AddTemporalMetricIDs adds the "temporal_metrics" edge to the TopicTemporalMetrics entity by IDs.
func (_c *TopicClusterCreate) AddTemporalMetricIDs(ids ...int) *TopicClusterCreate {
	_c.mutation.AddTemporalMetricIDs(ids...)
	return _c
}

// AddTemporalMetrics adds the "temporal_metrics" edges to the TopicTemporalMetrics entity.
func (_c *TopicClusterCreate) AddTemporalMetrics(v ...*TopicTemporalMetrics) *TopicClusterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTemporalMetricIDs(ids...)
}

// AddTrendAnalysisIDs adds the "trend_analyses" edge to the TrendAnalysis entity by IDs.
func (_c *TopicClusterCreate) AddTrendAnalysisIDs(ids ...int) *TopicClusterCreate {
	_c.mutation.AddTrendAnalysisIDs(ids...)
	return _c
}

// AddTrendAnalyses adds the "trend_analyses" edges to the TrendAnalysis entity.
func (_c *TopicClusterCreate) AddTrendAnalyses(v ...*TrendAnalysis) *TopicClusterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTrendAnalysisIDs(ids...)
}

// AddRecommendationIDs adds the "recommendations" edge to the ArticleRecommendation entity by IDs.
func (_c *TopicClusterCreate) AddRecommendationIDs(ids ...int) *TopicClusterCreate {
	_c.mutation.AddRecommendationIDs(ids...)
	return _c
}

// AddRecommendations adds the "recommendations" edges to the ArticleRecommendation entity.
func (_c *TopicClusterCreate) AddRecommendations(v ...*ArticleRecommendation) *TopicClusterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecommendationIDs(ids...)
}

// AddGapIDs adds the "gaps" edge to the EditorialGap entity by IDs.
func (_c *TopicClusterCreate) AddGapIDs(ids ...int) *TopicClusterCreate {
	_c.mutation.AddGapIDs(ids...)
	return _c
}

// AddGaps adds the "gaps" edges to the EditorialGap entity.
func (_c *TopicClusterCreate) AddGaps(v ...*EditorialGap) *TopicClusterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGapIDs(ids...)
}

// AddStrengthIDs adds the "strengths" edge to the ClientStrength entity by IDs.
func (_c *TopicClusterCreate) AddStrengthIDs(ids ...int) *TopicClusterCreate {
	_c.mutation.AddStrengthIDs(ids...)
	return _c
}

// AddStrengths adds the "strengths" edges to the ClientStrength entity.
func (_c *TopicClusterCreate) AddStrengths(v ...*ClientStrength) *TopicClusterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStrengthIDs(ids...)
}

// AddCoverageAnalysisIDs adds the "coverage_analyses" edge to the CoverageAnalysis entity by IDs.
func (_c *TopicClusterCreate) AddCoverageAnalysisIDs(ids ...int) *TopicClusterCreate {
	_c.mutation.AddCoverageAnalysisIDs(ids...)
	return _c
}

// AddCoverageAnalyses adds the "coverage_analyses" edges to the CoverageAnalysis entity.
func (_c *TopicClusterCreate) AddCoverageAnalyses(v ...*CoverageAnalysis) *TopicClusterCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCoverageAnalysisIDs(ids...)
}

// Mutation returns the TopicClusterMutation object of the builder.
func (_c *TopicClusterCreate) Mutation() *TopicClusterMutation {
	return _c.mutation
}

// Save creates the TopicCluster in the database.
func (_c *TopicClusterCreate) Save(ctx context.Context) (*TopicCluster, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicClusterCreate) SaveX(ctx context.Context) *TopicCluster {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicClusterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicClusterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicClusterCreate) defaults() {
	if _, ok := _c.mutation.CoherenceScore(); !ok {
		v := topiccluster.DefaultCoherenceScore
		_c.mutation.SetCoherenceScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := topiccluster.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicClusterCreate) check() error {
	if _, ok := _c.mutation.AnalysisID(); !ok {
		return &ValidationError{Name: "analysis_id", err: errors.New(`ent: missing required field "TopicCluster.analysis_id"`)}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "TopicCluster.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := topiccluster.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TopicCluster.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "TopicCluster.label"`)}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "TopicCluster.size"`)}
	}
	if _, ok := _c.mutation.DocumentIds(); !ok {
		return &ValidationError{Name: "document_ids", err: errors.New(`ent: missing required field "TopicCluster.document_ids"`)}
	}
	if _, ok := _c.mutation.CoherenceScore(); !ok {
		return &ValidationError{Name: "coherence_score", err: errors.New(`ent: missing required field "TopicCluster.coherence_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TopicCluster.created_at"`)}
	}
	if len(_c.mutation.AnalysisIDs()) == 0 {
		return &ValidationError{Name: "analysis", err: errors.New(`ent: missing required edge "TopicCluster.analysis"`)}
	}
	return nil
}

func (_c *TopicClusterCreate) sqlSave(ctx context.Context) (*TopicCluster, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TopicClusterCreate) createSpec() (*TopicCluster, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicCluster{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topiccluster.Table, sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(topiccluster.FieldTopicID, field.TypeInt, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(topiccluster.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.TopTerms(); ok {
		_spec.SetField(topiccluster.FieldTopTerms, field.TypeJSON, value)
		_node.TopTerms = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(topiccluster.FieldSize, field.TypeInt, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.DocumentIds(); ok {
		_spec.SetField(topiccluster.FieldDocumentIds, field.TypeJSON, value)
		_node.DocumentIds = value
	}
	if value, ok := _c.mutation.CentroidVectorID(); ok {
		_spec.SetField(topiccluster.FieldCentroidVectorID, field.TypeString, value)
		_node.CentroidVectorID = &value
	}
	if value, ok := _c.mutation.CoherenceScore(); ok {
		_spec.SetField(topiccluster.FieldCoherenceScore, field.TypeFloat64, value)
		_node.CoherenceScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(topiccluster.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AnalysisIDs(); len(nodes) > 0 {
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
		_node.AnalysisID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TemporalMetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TrendAnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecommendationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GapsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StrengthsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CoverageAnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TopicClusterCreateBulk is the builder for creating many TopicCluster entities in bulk.
type TopicClusterCreateBulk struct {
	config
	err      error
	builders []*TopicClusterCreate
}

// Save creates the TopicCluster entities in the database.
func (_c *TopicClusterCreateBulk) Save(ctx context.Context) ([]*TopicCluster, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicCluster, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicClusterMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TopicClusterCreateBulk) SaveX(ctx context.Context) []*TopicCluster {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicClusterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicClusterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
