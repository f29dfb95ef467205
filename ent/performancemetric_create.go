// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/performancemetric"
	"github.com/trendscope/trendscope/ent/workflowexecution"
)

// PerformanceMetricCreate is the builder for creating a PerformanceMetric entity.
type PerformanceMetricCreate struct {
	config
	mutation *PerformanceMetricMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *PerformanceMetricCreate) SetExecutionID(v string) *PerformanceMetricCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *PerformanceMetricCreate) SetAgentName(v string) *PerformanceMetricCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_c *PerformanceMetricCreate) SetNillableAgentName(v *string) *PerformanceMetricCreate {
	if v != nil {
		_c.SetAgentName(*v)
	}
	return _c
}

// SetMetricType sets the "metric_type" field.
func (_c *PerformanceMetricCreate) SetMetricType(v string) *PerformanceMetricCreate {
	_c.mutation.SetMetricType(v)
	return _c
}

// SetMetricValue sets the "metric_value" field.
func (_c *PerformanceMetricCreate) SetMetricValue(v float64) *PerformanceMetricCreate {
	_c.mutation.SetMetricValue(v)
	return _c
}

// SetMetricUnit sets the "metric_unit" field.
func (_c *PerformanceMetricCreate) SetMetricUnit(v string) *PerformanceMetricCreate {
	_c.mutation.SetMetricUnit(v)
	return _c
}

// SetNillableMetricUnit sets the "metric_unit" field if the given value is not nil.
func (_c *PerformanceMetricCreate) SetNillableMetricUnit(v *string) *PerformanceMetricCreate {
	if v != nil {
		_c.SetMetricUnit(*v)
	}
	return _c
}

// SetAdditionalData sets the "additional_data" field.
func (_c *PerformanceMetricCreate) SetAdditionalData(v map[string]interface{}) *PerformanceMetricCreate {
	_c.mutation.SetAdditionalData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PerformanceMetricCreate) SetCreatedAt(v time.Time) *PerformanceMetricCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PerformanceMetricCreate) SetNillableCreatedAt(v *time.Time) *PerformanceMetricCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_c *PerformanceMetricCreate) SetExecution(v *WorkflowExecution) *PerformanceMetricCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the PerformanceMetricMutation object of the builder.
func (_c *PerformanceMetricCreate) Mutation() *PerformanceMetricMutation {
	return _c.mutation
}

// Save creates the PerformanceMetric in the database.
func (_c *PerformanceMetricCreate) Save(ctx context.Context) (*PerformanceMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PerformanceMetricCreate) SaveX(ctx context.Context) *PerformanceMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PerformanceMetricCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := performancemetric.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PerformanceMetricCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "PerformanceMetric.execution_id"`)}
	}
	if _, ok := _c.mutation.MetricType(); !ok {
		return &ValidationError{Name: "metric_type", err: errors.New(`ent: missing required field "PerformanceMetric.metric_type"`)}
	}
	if _, ok := _c.mutation.MetricValue(); !ok {
		return &ValidationError{Name: "metric_value", err: errors.New(`ent: missing required field "PerformanceMetric.metric_value"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PerformanceMetric.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "PerformanceMetric.execution"`)}
	}
	return nil
}

func (_c *PerformanceMetricCreate) sqlSave(ctx context.Context) (*PerformanceMetric, error) {
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

func (_c *PerformanceMetricCreate) createSpec() (*PerformanceMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &PerformanceMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(performancemetric.Table, sqlgraph.NewFieldSpec(performancemetric.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(performancemetric.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.MetricType(); ok {
		_spec.SetField(performancemetric.FieldMetricType, field.TypeString, value)
		_node.MetricType = value
	}
	if value, ok := _c.mutation.MetricValue(); ok {
		_spec.SetField(performancemetric.FieldMetricValue, field.TypeFloat64, value)
		_node.MetricValue = value
	}
	if value, ok := _c.mutation.MetricUnit(); ok {
		_spec.SetField(performancemetric.FieldMetricUnit, field.TypeString, value)
		_node.MetricUnit = value
	}
	if value, ok := _c.mutation.AdditionalData(); ok {
		_spec.SetField(performancemetric.FieldAdditionalData, field.TypeJSON, value)
		_node.AdditionalData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(performancemetric.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   performancemetric.ExecutionTable,
			Columns: []string{performancemetric.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PerformanceMetricCreateBulk is the builder for creating many PerformanceMetric entities in bulk.
type PerformanceMetricCreateBulk struct {
	config
	err      error
	builders []*PerformanceMetricCreate
}

// Save creates the PerformanceMetric entities in the database.
func (_c *PerformanceMetricCreateBulk) Save(ctx context.Context) ([]*PerformanceMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PerformanceMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PerformanceMetricMutation)
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
func (_c *PerformanceMetricCreateBulk) SaveX(ctx context.Context) []*PerformanceMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
