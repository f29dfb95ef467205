// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/performancemetric"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/workflowexecution"
)

// PerformanceMetricUpdate is the builder for updating PerformanceMetric entities.
type PerformanceMetricUpdate struct {
	config
	hooks    []Hook
	mutation *PerformanceMetricMutation
}

// Where appends a list predicates to the PerformanceMetricUpdate builder.
func (_u *PerformanceMetricUpdate) Where(ps ...predicate.PerformanceMetric) *PerformanceMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *PerformanceMetricUpdate) SetExecutionID(v string) *PerformanceMetricUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *PerformanceMetricUpdate) SetNillableExecutionID(v *string) *PerformanceMetricUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *PerformanceMetricUpdate) SetAgentName(v string) *PerformanceMetricUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *PerformanceMetricUpdate) SetNillableAgentName(v *string) *PerformanceMetricUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *PerformanceMetricUpdate) ClearAgentName() *PerformanceMetricUpdate {
	_u.mutation.ClearAgentName()
	return _u
}

// SetMetricType sets the "metric_type" field.
func (_u *PerformanceMetricUpdate) SetMetricType(v string) *PerformanceMetricUpdate {
	_u.mutation.SetMetricType(v)
	return _u
}

// SetNillableMetricType sets the "metric_type" field if the given value is not nil.
func (_u *PerformanceMetricUpdate) SetNillableMetricType(v *string) *PerformanceMetricUpdate {
	if v != nil {
		_u.SetMetricType(*v)
	}
	return _u
}

// SetMetricValue sets the "metric_value" field.
func (_u *PerformanceMetricUpdate) SetMetricValue(v float64) *PerformanceMetricUpdate {
	_u.mutation.ResetMetricValue()
	_u.mutation.SetMetricValue(v)
	return _u
}

// SetNillableMetricValue sets the "metric_value" field if the given value is not nil.
func (_u *PerformanceMetricUpdate) SetNillableMetricValue(v *float64) *PerformanceMetricUpdate {
	if v != nil {
		_u.SetMetricValue(*v)
	}
	return _u
}

// AddMetricValue adds value to the "metric_value" field.
func (_u *PerformanceMetricUpdate) AddMetricValue(v float64) *PerformanceMetricUpdate {
	_u.mutation.AddMetricValue(v)
	return _u
}

// SetMetricUnit sets the "metric_unit" field.
func (_u *PerformanceMetricUpdate) SetMetricUnit(v string) *PerformanceMetricUpdate {
	_u.mutation.SetMetricUnit(v)
	return _u
}

// SetNillableMetricUnit sets the "metric_unit" field if the given value is not nil.
func (_u *PerformanceMetricUpdate) SetNillableMetricUnit(v *string) *PerformanceMetricUpdate {
	if v != nil {
		_u.SetMetricUnit(*v)
	}
	return _u
}

// ClearMetricUnit clears the value of the "metric_unit" field.
func (_u *PerformanceMetricUpdate) ClearMetricUnit() *PerformanceMetricUpdate {
	_u.mutation.ClearMetricUnit()
	return _u
}

// SetAdditionalData sets the "additional_data" field.
func (_u *PerformanceMetricUpdate) SetAdditionalData(v map[string]interface{}) *PerformanceMetricUpdate {
	_u.mutation.SetAdditionalData(v)
	return _u
}

// ClearAdditionalData clears the value of the "additional_data" field.
func (_u *PerformanceMetricUpdate) ClearAdditionalData() *PerformanceMetricUpdate {
	_u.mutation.ClearAdditionalData()
	return _u
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_u *PerformanceMetricUpdate) SetExecution(v *WorkflowExecution) *PerformanceMetricUpdate {
	return _u.SetExecutionID(v.ID)
}

// Mutation returns the PerformanceMetricMutation object of the builder.
func (_u *PerformanceMetricUpdate) Mutation() *PerformanceMetricMutation {
	return _u.mutation
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (_u *PerformanceMetricUpdate) ClearExecution() *PerformanceMetricUpdate {
	_u.mutation.ClearExecution()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PerformanceMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PerformanceMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceMetricUpdate) check() error {
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PerformanceMetric.execution"`)
	}
	return nil
}

func (_u *PerformanceMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performancemetric.Table, performancemetric.Columns, sqlgraph.NewFieldSpec(performancemetric.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(performancemetric.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(performancemetric.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.MetricType(); ok {
		_spec.SetField(performancemetric.FieldMetricType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MetricValue(); ok {
		_spec.SetField(performancemetric.FieldMetricValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMetricValue(); ok {
		_spec.AddField(performancemetric.FieldMetricValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MetricUnit(); ok {
		_spec.SetField(performancemetric.FieldMetricUnit, field.TypeString, value)
	}
	if _u.mutation.MetricUnitCleared() {
		_spec.ClearField(performancemetric.FieldMetricUnit, field.TypeString)
	}
	if value, ok := _u.mutation.AdditionalData(); ok {
		_spec.SetField(performancemetric.FieldAdditionalData, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalDataCleared() {
		_spec.ClearField(performancemetric.FieldAdditionalData, field.TypeJSON)
	}
	if _u.mutation.ExecutionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancemetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PerformanceMetricUpdateOne is the builder for updating a single PerformanceMetric entity.
type PerformanceMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PerformanceMetricMutation
}

// SetExecutionID sets the "execution_id" field.
func (_u *PerformanceMetricUpdateOne) SetExecutionID(v string) *PerformanceMetricUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *PerformanceMetricUpdateOne) SetNillableExecutionID(v *string) *PerformanceMetricUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *PerformanceMetricUpdateOne) SetAgentName(v string) *PerformanceMetricUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *PerformanceMetricUpdateOne) SetNillableAgentName(v *string) *PerformanceMetricUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *PerformanceMetricUpdateOne) ClearAgentName() *PerformanceMetricUpdateOne {
	_u.mutation.ClearAgentName()
	return _u
}

// SetMetricType sets the "metric_type" field.
func (_u *PerformanceMetricUpdateOne) SetMetricType(v string) *PerformanceMetricUpdateOne {
	_u.mutation.SetMetricType(v)
	return _u
}

// SetNillableMetricType sets the "metric_type" field if the given value is not nil.
func (_u *PerformanceMetricUpdateOne) SetNillableMetricType(v *string) *PerformanceMetricUpdateOne {
	if v != nil {
		_u.SetMetricType(*v)
	}
	return _u
}

// SetMetricValue sets the "metric_value" field.
func (_u *PerformanceMetricUpdateOne) SetMetricValue(v float64) *PerformanceMetricUpdateOne {
	_u.mutation.ResetMetricValue()
	_u.mutation.SetMetricValue(v)
	return _u
}

// SetNillableMetricValue sets the "metric_value" field if the given value is not nil.
func (_u *PerformanceMetricUpdateOne) SetNillableMetricValue(v *float64) *PerformanceMetricUpdateOne {
	if v != nil {
		_u.SetMetricValue(*v)
	}
	return _u
}

// AddMetricValue adds value to the "metric_value" field.
func (_u *PerformanceMetricUpdateOne) AddMetricValue(v float64) *PerformanceMetricUpdateOne {
	_u.mutation.AddMetricValue(v)
	return _u
}

// SetMetricUnit sets the "metric_unit" field.
func (_u *PerformanceMetricUpdateOne) SetMetricUnit(v string) *PerformanceMetricUpdateOne {
	_u.mutation.SetMetricUnit(v)
	return _u
}

// SetNillableMetricUnit sets the "metric_unit" field if the given value is not nil.
func (_u *PerformanceMetricUpdateOne) SetNillableMetricUnit(v *string) *PerformanceMetricUpdateOne {
	if v != nil {
		_u.SetMetricUnit(*v)
	}
	return _u
}

// ClearMetricUnit clears the value of the "metric_unit" field.
func (_u *PerformanceMetricUpdateOne) ClearMetricUnit() *PerformanceMetricUpdateOne {
	_u.mutation.ClearMetricUnit()
	return _u
}

// SetAdditionalData sets the "additional_data" field.
func (_u *PerformanceMetricUpdateOne) SetAdditionalData(v map[string]interface{}) *PerformanceMetricUpdateOne {
	_u.mutation.SetAdditionalData(v)
	return _u
}

// ClearAdditionalData clears the value of the "additional_data" field.
func (_u *PerformanceMetricUpdateOne) ClearAdditionalData() *PerformanceMetricUpdateOne {
	_u.mutation.ClearAdditionalData()
	return _u
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_u *PerformanceMetricUpdateOne) SetExecution(v *WorkflowExecution) *PerformanceMetricUpdateOne {
	return _u.SetExecutionID(v.ID)
}

// Mutation returns the PerformanceMetricMutation object of the builder.
func (_u *PerformanceMetricUpdateOne) Mutation() *PerformanceMetricMutation {
	return _u.mutation
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (_u *PerformanceMetricUpdateOne) ClearExecution() *PerformanceMetricUpdateOne {
	_u.mutation.ClearExecution()
	return _u
}

// Where appends a list predicates to the PerformanceMetricUpdate builder.
func (_u *PerformanceMetricUpdateOne) Where(ps ...predicate.PerformanceMetric) *PerformanceMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PerformanceMetricUpdateOne) Select(field string, fields ...string) *PerformanceMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PerformanceMetric entity.
func (_u *PerformanceMetricUpdateOne) Save(ctx context.Context) (*PerformanceMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceMetricUpdateOne) SaveX(ctx context.Context) *PerformanceMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PerformanceMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceMetricUpdateOne) check() error {
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PerformanceMetric.execution"`)
	}
	return nil
}

func (_u *PerformanceMetricUpdateOne) sqlSave(ctx context.Context) (_node *PerformanceMetric, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performancemetric.Table, performancemetric.Columns, sqlgraph.NewFieldSpec(performancemetric.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PerformanceMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, performancemetric.FieldID)
		for _, f := range fields {
			if !performancemetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != performancemetric.FieldID {
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
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(performancemetric.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(performancemetric.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.MetricType(); ok {
		_spec.SetField(performancemetric.FieldMetricType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MetricValue(); ok {
		_spec.SetField(performancemetric.FieldMetricValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMetricValue(); ok {
		_spec.AddField(performancemetric.FieldMetricValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MetricUnit(); ok {
		_spec.SetField(performancemetric.FieldMetricUnit, field.TypeString, value)
	}
	if _u.mutation.MetricUnitCleared() {
		_spec.ClearField(performancemetric.FieldMetricUnit, field.TypeString)
	}
	if value, ok := _u.mutation.AdditionalData(); ok {
		_spec.SetField(performancemetric.FieldAdditionalData, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalDataCleared() {
		_spec.ClearField(performancemetric.FieldAdditionalData, field.TypeJSON)
	}
	if _u.mutation.ExecutionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PerformanceMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancemetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
