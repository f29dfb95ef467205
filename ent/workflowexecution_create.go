// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/auditlog"
	"github.com/trendscope/trendscope/ent/performancemetric"
	"github.com/trendscope/trendscope/ent/workflowexecution"
)

// WorkflowExecutionCreate is the builder for creating a WorkflowExecution entity.
type WorkflowExecutionCreate struct {
	config
	mutation *WorkflowExecutionMutation
	hooks    []Hook
}

// SetWorkflowType sets the "workflow_type" field.
func (_c *WorkflowExecutionCreate) SetWorkflowType(v workflowexecution.WorkflowType) *WorkflowExecutionCreate {
	_c.mutation.SetWorkflowType(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *WorkflowExecutionCreate) SetDomain(v string) *WorkflowExecutionCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableDomain(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowExecutionCreate) SetStatus(v workflowexecution.Status) *WorkflowExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableStatus(v *workflowexecution.Status) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetWasSuccess sets the "was_success" field.
func (_c *WorkflowExecutionCreate) SetWasSuccess(v bool) *WorkflowExecutionCreate {
	_c.mutation.SetWasSuccess(v)
	return _c
}

// SetNillableWasSuccess sets the "was_success" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableWasSuccess(v *bool) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetWasSuccess(*v)
	}
	return _c
}

// SetInputData sets the "input_data" field.
func (_c *WorkflowExecutionCreate) SetInputData(v map[string]interface{}) *WorkflowExecutionCreate {
	_c.mutation.SetInputData(v)
	return _c
}

// SetOutputData sets the "output_data" field.
func (_c *WorkflowExecutionCreate) SetOutputData(v map[string]interface{}) *WorkflowExecutionCreate {
	_c.mutation.SetOutputData(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkflowExecutionCreate) SetErrorMessage(v string) *WorkflowExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableErrorMessage(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *WorkflowExecutionCreate) SetStartTime(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableStartTime(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *WorkflowExecutionCreate) SetEndTime(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableEndTime(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *WorkflowExecutionCreate) SetDurationSeconds(v float64) *WorkflowExecutionCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableDurationSeconds(v *float64) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetParentExecutionID sets the "parent_execution_id" field.
func (_c *WorkflowExecutionCreate) SetParentExecutionID(v string) *WorkflowExecutionCreate {
	_c.mutation.SetParentExecutionID(v)
	return _c
}

// SetNillableParentExecutionID sets the "parent_execution_id" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableParentExecutionID(v *string) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetParentExecutionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowExecutionCreate) SetCreatedAt(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableCreatedAt(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowExecutionCreate) SetUpdatedAt(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *WorkflowExecutionCreate) SetDeletedAt(v time.Time) *WorkflowExecutionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableDeletedAt(v *time.Time) *WorkflowExecutionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowExecutionCreate) SetID(v string) *WorkflowExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetParentID sets the "parent" edge to the WorkflowExecution entity by ID.
func (_c *WorkflowExecutionCreate) SetParentID(id string) *WorkflowExecutionCreate {
	_c.mutation.SetParentID(id)
	return _c
}

// SetNillableParentID sets the "parent" edge to the WorkflowExecution entity by ID if the given value is not nil.
func (_c *WorkflowExecutionCreate) SetNillableParentID(id *string) *WorkflowExecutionCreate {
	if id != nil {
		_c = _c.SetParentID(*id)
	}
	return _c
}

// SetParent sets the "parent" edge to the WorkflowExecution entity.
func (_c *WorkflowExecutionCreate) SetParent(v *WorkflowExecution) *WorkflowExecutionCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the WorkflowExecution entity by IDs.
func (_c *WorkflowExecutionCreate) AddChildIDs(ids ...string) *WorkflowExecutionCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the WorkflowExecution entity.
func (_c *WorkflowExecutionCreate) AddChildren(v ...*WorkflowExecution) *WorkflowExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_c *WorkflowExecutionCreate) AddAuditLogIDs(ids ...int) *WorkflowExecutionCreate {
	_c.mutation.AddAuditLogIDs(ids...)
	return _c
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_c *WorkflowExecutionCreate) AddAuditLogs(v ...*AuditLog) *WorkflowExecutionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditLogIDs(ids...)
}

// AddPerformanceMetricIDs adds the "performance_metrics" edge to the PerformanceMetric entity by IDs.
func (_c *WorkflowExecutionCreate) AddPerformanceMetricIDs(ids ...int) *WorkflowExecutionCreate {
	_c.mutation.AddPerformanceMetricIDs(ids...)
	return _c
}

// AddPerformanceMetrics adds the "performance_metrics" edges to the PerformanceMetric entity.
func (_c *WorkflowExecutionCreate) AddPerformanceMetrics(v ...*PerformanceMetric) *WorkflowExecutionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPerformanceMetricIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_c *WorkflowExecutionCreate) Mutation() *WorkflowExecutionMutation {
	return _c.mutation
}

// Save creates the WorkflowExecution in the database.
func (_c *WorkflowExecutionCreate) Save(ctx context.Context) (*WorkflowExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowExecutionCreate) SaveX(ctx context.Context) *WorkflowExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflowexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflowexecution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowExecutionCreate) check() error {
	if _, ok := _c.mutation.WorkflowType(); !ok {
		return &ValidationError{Name: "workflow_type", err: errors.New(`ent: missing required field "WorkflowExecution.workflow_type"`)}
	}
	if v, ok := _c.mutation.WorkflowType(); ok {
		if err := workflowexecution.WorkflowTypeValidator(v); err != nil {
			return &ValidationError{Name: "workflow_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.workflow_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowExecution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowExecution.updated_at"`)}
	}
	return nil
}

func (_c *WorkflowExecutionCreate) sqlSave(ctx context.Context) (*WorkflowExecution, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected WorkflowExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowExecutionCreate) createSpec() (*WorkflowExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowexecution.Table, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkflowType(); ok {
		_spec.SetField(workflowexecution.FieldWorkflowType, field.TypeEnum, value)
		_node.WorkflowType = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(workflowexecution.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.WasSuccess(); ok {
		_spec.SetField(workflowexecution.FieldWasSuccess, field.TypeBool, value)
		_node.WasSuccess = &value
	}
	if value, ok := _c.mutation.InputData(); ok {
		_spec.SetField(workflowexecution.FieldInputData, field.TypeJSON, value)
		_node.InputData = value
	}
	if value, ok := _c.mutation.OutputData(); ok {
		_spec.SetField(workflowexecution.FieldOutputData, field.TypeJSON, value)
		_node.OutputData = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(workflowexecution.FieldStartTime, field.TypeTime, value)
		_node.StartTime = &value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(workflowexecution.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(workflowexecution.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowexecution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(workflowexecution.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowexecution.ParentTable,
			Columns: []string{workflowexecution.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentExecutionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.ChildrenTable,
			Columns: []string{workflowexecution.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.AuditLogsTable,
			Columns: []string{workflowexecution.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PerformanceMetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.PerformanceMetricsTable,
			Columns: []string{workflowexecution.PerformanceMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(performancemetric.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowExecutionCreateBulk is the builder for creating many WorkflowExecution entities in bulk.
type WorkflowExecutionCreateBulk struct {
	config
	err      error
	builders []*WorkflowExecutionCreate
}

// Save creates the WorkflowExecution entities in the database.
func (_c *WorkflowExecutionCreateBulk) Save(ctx context.Context) ([]*WorkflowExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowExecutionMutation)
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
func (_c *WorkflowExecutionCreateBulk) SaveX(ctx context.Context) []*WorkflowExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
