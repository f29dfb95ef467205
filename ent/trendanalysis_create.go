// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/trendanalysis"
)

// TrendAnalysisCreate is the builder for creating a TrendAnalysis entity.
type TrendAnalysisCreate struct {
	config
	mutation *TrendAnalysisMutation
	hooks    []Hook
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_c *TrendAnalysisCreate) SetTopicClusterID(v int) *TrendAnalysisCreate {
	_c.mutation.SetTopicClusterID(v)
	return _c
}

// SetSynthesis sets the "synthesis" field.
func (_c *TrendAnalysisCreate) SetSynthesis(v string) *TrendAnalysisCreate {
	_c.mutation.SetSynthesis(v)
	return _c
}

// SetNillableSynthesis sets the "synthesis" field if the given value is not nil.
func (_c *TrendAnalysisCreate) SetNillableSynthesis(v *string) *TrendAnalysisCreate {
	if v != nil {
		_c.SetSynthesis(*v)
	}
	return _c
}

// SetSaturatedAngles sets the "saturated_angles" field.
func (_c *TrendAnalysisCreate) SetSaturatedAngles(v []string) *TrendAnalysisCreate {
	_c.mutation.SetSaturatedAngles(v)
	return _c
}

// SetOpportunities sets the "opportunities" field.
func (_c *TrendAnalysisCreate) SetOpportunities(v []string) *TrendAnalysisCreate {
	_c.mutation.SetOpportunities(v)
	return _c
}

// SetLlmModelUsed sets the "llm_model_used" field.
func (_c *TrendAnalysisCreate) SetLlmModelUsed(v string) *TrendAnalysisCreate {
	_c.mutation.SetLlmModelUsed(v)
	return _c
}

// SetNillableLlmModelUsed sets the "llm_model_used" field if the given value is not nil.
func (_c *TrendAnalysisCreate) SetNillableLlmModelUsed(v *string) *TrendAnalysisCreate {
	if v != nil {
		_c.SetLlmModelUsed(*v)
	}
	return _c
}

// SetProcessingTimeSeconds sets the "processing_time_seconds" field.
func (_c *TrendAnalysisCreate) SetProcessingTimeSeconds(v float64) *TrendAnalysisCreate {
	_c.mutation.SetProcessingTimeSeconds(v)
	return _c
}

// SetNillableProcessingTimeSeconds sets the "processing_time_seconds" field if the given value is not nil.
func (_c *TrendAnalysisCreate) SetNillableProcessingTimeSeconds(v *float64) *TrendAnalysisCreate {
	if v != nil {
		_c.SetProcessingTimeSeconds(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrendAnalysisCreate) SetCreatedAt(v time.Time) *TrendAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrendAnalysisCreate) SetNillableCreatedAt(v *time.Time) *TrendAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_c *TrendAnalysisCreate) SetClusterID(id int) *TrendAnalysisCreate {
	_c.mutation.SetClusterID(id)
	return _c
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_c *TrendAnalysisCreate) SetCluster(v *TopicCluster) *TrendAnalysisCreate {
	return _c.SetClusterID(v.ID)
}

// Mutation returns the TrendAnalysisMutation object of the builder.
func (_c *TrendAnalysisCreate) Mutation() *TrendAnalysisMutation {
	return _c.mutation
}

// Save creates the TrendAnalysis in the database.
func (_c *TrendAnalysisCreate) Save(ctx context.Context) (*TrendAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrendAnalysisCreate) SaveX(ctx context.Context) *TrendAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrendAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrendAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrendAnalysisCreate) defaults() {
	if _, ok := _c.mutation.ProcessingTimeSeconds(); !ok {
		v := trendanalysis.DefaultProcessingTimeSeconds
		_c.mutation.SetProcessingTimeSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trendanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrendAnalysisCreate) check() error {
	if _, ok := _c.mutation.TopicClusterID(); !ok {
		return &ValidationError{Name: "topic_cluster_id", err: errors.New(`ent: missing required field "TrendAnalysis.topic_cluster_id"`)}
	}
	if _, ok := _c.mutation.ProcessingTimeSeconds(); !ok {
		return &ValidationError{Name: "processing_time_seconds", err: errors.New(`ent: missing required field "TrendAnalysis.processing_time_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrendAnalysis.created_at"`)}
	}
	if len(_c.mutation.ClusterIDs()) == 0 {
		return &ValidationError{Name: "cluster", err: errors.New(`ent: missing required edge "TrendAnalysis.cluster"`)}
	}
	return nil
}

func (_c *TrendAnalysisCreate) sqlSave(ctx context.Context) (*TrendAnalysis, error) {
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

func (_c *TrendAnalysisCreate) createSpec() (*TrendAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &TrendAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trendanalysis.Table, sqlgraph.NewFieldSpec(trendanalysis.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Synthesis(); ok {
		_spec.SetField(trendanalysis.FieldSynthesis, field.TypeString, value)
		_node.Synthesis = value
	}
	if value, ok := _c.mutation.SaturatedAngles(); ok {
		_spec.SetField(trendanalysis.FieldSaturatedAngles, field.TypeJSON, value)
		_node.SaturatedAngles = value
	}
	if value, ok := _c.mutation.Opportunities(); ok {
		_spec.SetField(trendanalysis.FieldOpportunities, field.TypeJSON, value)
		_node.Opportunities = value
	}
	if value, ok := _c.mutation.LlmModelUsed(); ok {
		_spec.SetField(trendanalysis.FieldLlmModelUsed, field.TypeString, value)
		_node.LlmModelUsed = value
	}
	if value, ok := _c.mutation.ProcessingTimeSeconds(); ok {
		_spec.SetField(trendanalysis.FieldProcessingTimeSeconds, field.TypeFloat64, value)
		_node.ProcessingTimeSeconds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trendanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClusterIDs(); len(nodes) > 0 {
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
		_node.TopicClusterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TrendAnalysisCreateBulk is the builder for creating many TrendAnalysis entities in bulk.
type TrendAnalysisCreateBulk struct {
	config
	err      error
	builders []*TrendAnalysisCreate
}

// Save creates the TrendAnalysis entities in the database.
func (_c *TrendAnalysisCreateBulk) Save(ctx context.Context) ([]*TrendAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrendAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrendAnalysisMutation)
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
func (_c *TrendAnalysisCreateBulk) SaveX(ctx context.Context) []*TrendAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrendAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrendAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
