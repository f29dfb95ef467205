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
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/trendanalysis"
)

// TrendAnalysisUpdate is the builder for updating TrendAnalysis entities.
type TrendAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *TrendAnalysisMutation
}

// Where appends a list predicates to the TrendAnalysisUpdate builder.
func (_u *TrendAnalysisUpdate) Where(ps ...predicate.TrendAnalysis) *TrendAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_u *TrendAnalysisUpdate) SetTopicClusterID(v int) *TrendAnalysisUpdate {
	_u.mutation.SetTopicClusterID(v)
	return _u
}

// SetNillableTopicClusterID sets the "topic_cluster_id" field if the given value is not nil.
func (_u *TrendAnalysisUpdate) SetNillableTopicClusterID(v *int) *TrendAnalysisUpdate {
	if v != nil {
		_u.SetTopicClusterID(*v)
	}
	return _u
}

// SetSynthesis sets the "synthesis" field.
func (_u *TrendAnalysisUpdate) SetSynthesis(v string) *TrendAnalysisUpdate {
	_u.mutation.SetSynthesis(v)
	return _u
}

// SetNillableSynthesis sets the "synthesis" field if the given value is not nil.
func (_u *TrendAnalysisUpdate) SetNillableSynthesis(v *string) *TrendAnalysisUpdate {
	if v != nil {
		_u.SetSynthesis(*v)
	}
	return _u
}

// ClearSynthesis clears the value of the "synthesis" field.
func (_u *TrendAnalysisUpdate) ClearSynthesis() *TrendAnalysisUpdate {
	_u.mutation.ClearSynthesis()
	return _u
}

// SetSaturatedAngles sets the "saturated_angles" field.
func (_u *TrendAnalysisUpdate) SetSaturatedAngles(v []string) *TrendAnalysisUpdate {
	_u.mutation.SetSaturatedAngles(v)
	return _u
}

// AppendSaturatedAngles appends value to the "saturated_angles" field.
func (_u *TrendAnalysisUpdate) AppendSaturatedAngles(v []string) *TrendAnalysisUpdate {
	_u.mutation.AppendSaturatedAngles(v)
	return _u
}

// ClearSaturatedAngles clears the value of the "saturated_angles" field.
func (_u *TrendAnalysisUpdate) ClearSaturatedAngles() *TrendAnalysisUpdate {
	_u.mutation.ClearSaturatedAngles()
	return _u
}

// SetOpportunities sets the "opportunities" field.
func (_u *TrendAnalysisUpdate) SetOpportunities(v []string) *TrendAnalysisUpdate {
	_u.mutation.SetOpportunities(v)
	return _u
}

// AppendOpportunities appends value to the "opportunities" field.
func (_u *TrendAnalysisUpdate) AppendOpportunities(v []string) *TrendAnalysisUpdate {
	_u.mutation.AppendOpportunities(v)
	return _u
}

// ClearOpportunities clears the value of the "opportunities" field.
func (_u *TrendAnalysisUpdate) ClearOpportunities() *TrendAnalysisUpdate {
	_u.mutation.ClearOpportunities()
	return _u
}

// SetLlmModelUsed sets the "llm_model_used" field.
func (_u *TrendAnalysisUpdate) SetLlmModelUsed(v string) *TrendAnalysisUpdate {
	_u.mutation.SetLlmModelUsed(v)
	return _u
}

// SetNillableLlmModelUsed sets the "llm_model_used" field if the given value is not nil.
func (_u *TrendAnalysisUpdate) SetNillableLlmModelUsed(v *string) *TrendAnalysisUpdate {
	if v != nil {
		_u.SetLlmModelUsed(*v)
	}
	return _u
}

// ClearLlmModelUsed clears the value of the "llm_model_used" field.
func (_u *TrendAnalysisUpdate) ClearLlmModelUsed() *TrendAnalysisUpdate {
	_u.mutation.ClearLlmModelUsed()
	return _u
}

// SetProcessingTimeSeconds sets the "processing_time_seconds" field.
func (_u *TrendAnalysisUpdate) SetProcessingTimeSeconds(v float64) *TrendAnalysisUpdate {
	_u.mutation.ResetProcessingTimeSeconds()
	_u.mutation.SetProcessingTimeSeconds(v)
	return _u
}

// SetNillableProcessingTimeSeconds sets the "processing_time_seconds" field if the given value is not nil.
func (_u *TrendAnalysisUpdate) SetNillableProcessingTimeSeconds(v *float64) *TrendAnalysisUpdate {
	if v != nil {
		_u.SetProcessingTimeSeconds(*v)
	}
	return _u
}

// AddProcessingTimeSeconds adds value to the "processing_time_seconds" field.
func (_u *TrendAnalysisUpdate) AddProcessingTimeSeconds(v float64) *TrendAnalysisUpdate {
	_u.mutation.AddProcessingTimeSeconds(v)
	return _u
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_u *TrendAnalysisUpdate) SetClusterID(id int) *TrendAnalysisUpdate {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_u *TrendAnalysisUpdate) SetCluster(v *TopicCluster) *TrendAnalysisUpdate {
	return _u.SetClusterID(v.ID)
}

// Mutation returns the TrendAnalysisMutation object of the builder.
func (_u *TrendAnalysisUpdate) Mutation() *TrendAnalysisMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (_u *TrendAnalysisUpdate) ClearCluster() *TrendAnalysisUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrendAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrendAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrendAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrendAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrendAnalysisUpdate) check() error {
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrendAnalysis.cluster"`)
	}
	return nil
}

func (_u *TrendAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trendanalysis.Table, trendanalysis.Columns, sqlgraph.NewFieldSpec(trendanalysis.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Synthesis(); ok {
		_spec.SetField(trendanalysis.FieldSynthesis, field.TypeString, value)
	}
	if _u.mutation.SynthesisCleared() {
		_spec.ClearField(trendanalysis.FieldSynthesis, field.TypeString)
	}
	if value, ok := _u.mutation.SaturatedAngles(); ok {
		_spec.SetField(trendanalysis.FieldSaturatedAngles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSaturatedAngles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trendanalysis.FieldSaturatedAngles, value)
		})
	}
	if _u.mutation.SaturatedAnglesCleared() {
		_spec.ClearField(trendanalysis.FieldSaturatedAngles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Opportunities(); ok {
		_spec.SetField(trendanalysis.FieldOpportunities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOpportunities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trendanalysis.FieldOpportunities, value)
		})
	}
	if _u.mutation.OpportunitiesCleared() {
		_spec.ClearField(trendanalysis.FieldOpportunities, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmModelUsed(); ok {
		_spec.SetField(trendanalysis.FieldLlmModelUsed, field.TypeString, value)
	}
	if _u.mutation.LlmModelUsedCleared() {
		_spec.ClearField(trendanalysis.FieldLlmModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeSeconds(); ok {
		_spec.SetField(trendanalysis.FieldProcessingTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeSeconds(); ok {
		_spec.AddField(trendanalysis.FieldProcessingTimeSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trendanalysis.ClusterTable,
			Columns: []string{trendanalysis.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trendanalysis.ClusterTable,
			Columns: []string{trendanalysis.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trendanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrendAnalysisUpdateOne is the builder for updating a single TrendAnalysis entity.
type TrendAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrendAnalysisMutation
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_u *TrendAnalysisUpdateOne) SetTopicClusterID(v int) *TrendAnalysisUpdateOne {
	_u.mutation.SetTopicClusterID(v)
	return _u
}

// SetNillableTopicClusterID sets the "topic_cluster_id" field if the given value is not nil.
func (_u *TrendAnalysisUpdateOne) SetNillableTopicClusterID(v *int) *TrendAnalysisUpdateOne {
	if v != nil {
		_u.SetTopicClusterID(*v)
	}
	return _u
}

// SetSynthesis sets the "synthesis" field.
func (_u *TrendAnalysisUpdateOne) SetSynthesis(v string) *TrendAnalysisUpdateOne {
	_u.mutation.SetSynthesis(v)
	return _u
}

// SetNillableSynthesis sets the "synthesis" field if the given value is not nil.
func (_u *TrendAnalysisUpdateOne) SetNillableSynthesis(v *string) *TrendAnalysisUpdateOne {
	if v != nil {
		_u.SetSynthesis(*v)
	}
	return _u
}

// ClearSynthesis clears the value of the "synthesis" field.
func (_u *TrendAnalysisUpdateOne) ClearSynthesis() *TrendAnalysisUpdateOne {
	_u.mutation.ClearSynthesis()
	return _u
}

// SetSaturatedAngles sets the "saturated_angles" field.
func (_u *TrendAnalysisUpdateOne) SetSaturatedAngles(v []string) *TrendAnalysisUpdateOne {
	_u.mutation.SetSaturatedAngles(v)
	return _u
}

// AppendSaturatedAngles appends value to the "saturated_angles" field.
func (_u *TrendAnalysisUpdateOne) AppendSaturatedAngles(v []string) *TrendAnalysisUpdateOne {
	_u.mutation.AppendSaturatedAngles(v)
	return _u
}

// ClearSaturatedAngles clears the value of the "saturated_angles" field.
func (_u *TrendAnalysisUpdateOne) ClearSaturatedAngles() *TrendAnalysisUpdateOne {
	_u.mutation.ClearSaturatedAngles()
	return _u
}

// SetOpportunities sets the "opportunities" field.
func (_u *TrendAnalysisUpdateOne) SetOpportunities(v []string) *TrendAnalysisUpdateOne {
	_u.mutation.SetOpportunities(v)
	return _u
}

// AppendOpportunities appends value to the "opportunities" field.
func (_u *TrendAnalysisUpdateOne) AppendOpportunities(v []string) *TrendAnalysisUpdateOne {
	_u.mutation.AppendOpportunities(v)
	return _u
}

// ClearOpportunities clears the value of the "opportunities" field.
func (_u *TrendAnalysisUpdateOne) ClearOpportunities() *TrendAnalysisUpdateOne {
	_u.mutation.ClearOpportunities()
	return _u
}

// SetLlmModelUsed sets the "llm_model_used" field.
func (_u *TrendAnalysisUpdateOne) SetLlmModelUsed(v string) *TrendAnalysisUpdateOne {
	_u.mutation.SetLlmModelUsed(v)
	return _u
}

// SetNillableLlmModelUsed sets the "llm_model_used" field if the given value is not nil.
func (_u *TrendAnalysisUpdateOne) SetNillableLlmModelUsed(v *string) *TrendAnalysisUpdateOne {
	if v != nil {
		_u.SetLlmModelUsed(*v)
	}
	return _u
}

// ClearLlmModelUsed clears the value of the "llm_model_used" field.
func (_u *TrendAnalysisUpdateOne) ClearLlmModelUsed() *TrendAnalysisUpdateOne {
	_u.mutation.ClearLlmModelUsed()
	return _u
}

// SetProcessingTimeSeconds sets the "processing_time_seconds" field.
func (_u *TrendAnalysisUpdateOne) SetProcessingTimeSeconds(v float64) *TrendAnalysisUpdateOne {
	_u.mutation.ResetProcessingTimeSeconds()
	_u.mutation.SetProcessingTimeSeconds(v)
	return _u
}

// SetNillableProcessingTimeSeconds sets the "processing_time_seconds" field if the given value is not nil.
func (_u *TrendAnalysisUpdateOne) SetNillableProcessingTimeSeconds(v *float64) *TrendAnalysisUpdateOne {
	if v != nil {
		_u.SetProcessingTimeSeconds(*v)
	}
	return _u
}

// AddProcessingTimeSeconds adds value to the "processing_time_seconds" field.
func (_u *TrendAnalysisUpdateOne) AddProcessingTimeSeconds(v float64) *TrendAnalysisUpdateOne {
	_u.mutation.AddProcessingTimeSeconds(v)
	return _u
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_u *TrendAnalysisUpdateOne) SetClusterID(id int) *TrendAnalysisUpdateOne {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_u *TrendAnalysisUpdateOne) SetCluster(v *TopicCluster) *TrendAnalysisUpdateOne {
	return _u.SetClusterID(v.ID)
}

// Mutation returns the TrendAnalysisMutation object of the builder.
func (_u *TrendAnalysisUpdateOne) Mutation() *TrendAnalysisMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (_u *TrendAnalysisUpdateOne) ClearCluster() *TrendAnalysisUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// Where appends a list predicates to the TrendAnalysisUpdate builder.
func (_u *TrendAnalysisUpdateOne) Where(ps ...predicate.TrendAnalysis) *TrendAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrendAnalysisUpdateOne) Select(field string, fields ...string) *TrendAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrendAnalysis entity.
func (_u *TrendAnalysisUpdateOne) Save(ctx context.Context) (*TrendAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrendAnalysisUpdateOne) SaveX(ctx context.Context) *TrendAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrendAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrendAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrendAnalysisUpdateOne) check() error {
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrendAnalysis.cluster"`)
	}
	return nil
}

func (_u *TrendAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *TrendAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trendanalysis.Table, trendanalysis.Columns, sqlgraph.NewFieldSpec(trendanalysis.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrendAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trendanalysis.FieldID)
		for _, f := range fields {
			if !trendanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trendanalysis.FieldID {
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
	if value, ok := _u.mutation.Synthesis(); ok {
		_spec.SetField(trendanalysis.FieldSynthesis, field.TypeString, value)
	}
	if _u.mutation.SynthesisCleared() {
		_spec.ClearField(trendanalysis.FieldSynthesis, field.TypeString)
	}
	if value, ok := _u.mutation.SaturatedAngles(); ok {
		_spec.SetField(trendanalysis.FieldSaturatedAngles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSaturatedAngles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trendanalysis.FieldSaturatedAngles, value)
		})
	}
	if _u.mutation.SaturatedAnglesCleared() {
		_spec.ClearField(trendanalysis.FieldSaturatedAngles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Opportunities(); ok {
		_spec.SetField(trendanalysis.FieldOpportunities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOpportunities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trendanalysis.FieldOpportunities, value)
		})
	}
	if _u.mutation.OpportunitiesCleared() {
		_spec.ClearField(trendanalysis.FieldOpportunities, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmModelUsed(); ok {
		_spec.SetField(trendanalysis.FieldLlmModelUsed, field.TypeString, value)
	}
	if _u.mutation.LlmModelUsedCleared() {
		_spec.ClearField(trendanalysis.FieldLlmModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeSeconds(); ok {
		_spec.SetField(trendanalysis.FieldProcessingTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeSeconds(); ok {
		_spec.AddField(trendanalysis.FieldProcessingTimeSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trendanalysis.ClusterTable,
			Columns: []string{trendanalysis.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trendanalysis.ClusterTable,
			Columns: []string{trendanalysis.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TrendAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trendanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
