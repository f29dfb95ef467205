// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/auditlog"
	"github.com/trendscope/trendscope/ent/performancemetric"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/workflowexecution"
)

// WorkflowExecutionUpdate is the builder for updating WorkflowExecution entities.
type WorkflowExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowExecutionMutation
}

// Where appends a list predicates to the WorkflowExecutionUpdate builder.
func (_u *WorkflowExecutionUpdate) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkflowType sets the "workflow_type" field.
func (_u *WorkflowExecutionUpdate) SetWorkflowType(v workflowexecution.WorkflowType) *WorkflowExecutionUpdate {
	_u.mutation.SetWorkflowType(v)
	return _u
}

// SetNillableWorkflowType sets the "workflow_type" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableWorkflowType(v *workflowexecution.WorkflowType) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetWorkflowType(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *WorkflowExecutionUpdate) SetDomain(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableDomain(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *WorkflowExecutionUpdate) ClearDomain() *WorkflowExecutionUpdate {
	_u.mutation.ClearDomain()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowExecutionUpdate) SetStatus(v workflowexecution.Status) *WorkflowExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStatus(v *workflowexecution.Status) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWasSuccess sets the "was_success" field.
func (_u *WorkflowExecutionUpdate) SetWasSuccess(v bool) *WorkflowExecutionUpdate {
	_u.mutation.SetWasSuccess(v)
	return _u
}

// SetNillableWasSuccess sets the "was_success" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableWasSuccess(v *bool) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetWasSuccess(*v)
	}
	return _u
}

// ClearWasSuccess clears the value of the "was_success" field.
func (_u *WorkflowExecutionUpdate) ClearWasSuccess() *WorkflowExecutionUpdate {
	_u.mutation.ClearWasSuccess()
	return _u
}

// SetInputData sets the "input_data" field.
func (_u *WorkflowExecutionUpdate) SetInputData(v map[string]interface{}) *WorkflowExecutionUpdate {
	_u.mutation.SetInputData(v)
	return _u
}

// ClearInputData clears the value of the "input_data" field.
func (_u *WorkflowExecutionUpdate) ClearInputData() *WorkflowExecutionUpdate {
	_u.mutation.ClearInputData()
	return _u
}

// SetOutputData sets the "output_data" field.
func (_u *WorkflowExecutionUpdate) SetOutputData(v map[string]interface{}) *WorkflowExecutionUpdate {
	_u.mutation.SetOutputData(v)
	return _u
}

// ClearOutputData clears the value of the "output_data" field.
func (_u *WorkflowExecutionUpdate) ClearOutputData() *WorkflowExecutionUpdate {
	_u.mutation.ClearOutputData()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowExecutionUpdate) SetErrorMessage(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableErrorMessage(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowExecutionUpdate) ClearErrorMessage() *WorkflowExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *WorkflowExecutionUpdate) SetStartTime(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStartTime(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *WorkflowExecutionUpdate) ClearStartTime() *WorkflowExecutionUpdate {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *WorkflowExecutionUpdate) SetEndTime(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableEndTime(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *WorkflowExecutionUpdate) ClearEndTime() *WorkflowExecutionUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *WorkflowExecutionUpdate) SetDurationSeconds(v float64) *WorkflowExecutionUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableDurationSeconds(v *float64) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *WorkflowExecutionUpdate) AddDurationSeconds(v float64) *WorkflowExecutionUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *WorkflowExecutionUpdate) ClearDurationSeconds() *WorkflowExecutionUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetParentExecutionID sets the "parent_execution_id" field.
func (_u *WorkflowExecutionUpdate) SetParentExecutionID(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetParentExecutionID(v)
	return _u
}

// SetNillableParentExecutionID sets the "parent_execution_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableParentExecutionID(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetParentExecutionID(*v)
	}
	return _u
}

// ClearParentExecutionID clears the value of the "parent_execution_id" field.
func (_u *WorkflowExecutionUpdate) ClearParentExecutionID() *WorkflowExecutionUpdate {
	_u.mutation.ClearParentExecutionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowExecutionUpdate) SetUpdatedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *WorkflowExecutionUpdate) SetDeletedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableDeletedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *WorkflowExecutionUpdate) ClearDeletedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetParentID sets the "parent" edge to the WorkflowExecution entity by ID.
func (_u *WorkflowExecutionUpdate) SetParentID(id string) *WorkflowExecutionUpdate {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the WorkflowExecution entity by ID if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableParentID(id *string) *WorkflowExecutionUpdate {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the WorkflowExecution entity.
func (_u *WorkflowExecutionUpdate) SetParent(v *WorkflowExecution) *WorkflowExecutionUpdate {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the WorkflowExecution entity by IDs.
func (_u *WorkflowExecutionUpdate) AddChildIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the WorkflowExecution entity.
func (_u *WorkflowExecutionUpdate) AddChildren(v ...*WorkflowExecution) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *WorkflowExecutionUpdate) AddAuditLogIDs(ids ...int) *WorkflowExecutionUpdate {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *WorkflowExecutionUpdate) AddAuditLogs(v ...*AuditLog) *WorkflowExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// AddPerformanceMetricIDs adds the "performance_metrics" edge to the PerformanceMetric entity by IDs.
func (_u *WorkflowExecutionUpdate) AddPerformanceMetricIDs(ids ...int) *WorkflowExecutionUpdate {
	_u.mutation.AddPerformanceMetricIDs(ids...)
	return _u
}

// AddPerformanceMetrics adds the "performance_metrics" edges to the PerformanceMetric entity.
func (_u *WorkflowExecutionUpdate) AddPerformanceMetrics(v ...*PerformanceMetric) *WorkflowExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPerformanceMetricIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_u *WorkflowExecutionUpdate) Mutation() *WorkflowExecutionMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the WorkflowExecution entity.
func (_u *WorkflowExecutionUpdate) ClearParent() *WorkflowExecutionUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the WorkflowExecution entity.
func (_u *WorkflowExecutionUpdate) ClearChildren() *WorkflowExecutionUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to WorkflowExecution entities by IDs.
func (_u *WorkflowExecutionUpdate) RemoveChildIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to WorkflowExecution entities.
func (_u *WorkflowExecutionUpdate) RemoveChildren(v ...*WorkflowExecution) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *WorkflowExecutionUpdate) ClearAuditLogs() *WorkflowExecutionUpdate {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *WorkflowExecutionUpdate) RemoveAuditLogIDs(ids ...int) *WorkflowExecutionUpdate {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *WorkflowExecutionUpdate) RemoveAuditLogs(v ...*AuditLog) *WorkflowExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// ClearPerformanceMetrics clears all "performance_metrics" edges to the PerformanceMetric entity.
func (_u *WorkflowExecutionUpdate) ClearPerformanceMetrics() *WorkflowExecutionUpdate {
	_u.mutation.ClearPerformanceMetrics()
	return _u
}

// RemovePerformanceMetricIDs removes the "performance_metrics" edge to PerformanceMetric entities by IDs.
func (_u *WorkflowExecutionUpdate) RemovePerformanceMetricIDs(ids ...int) *WorkflowExecutionUpdate {
	_u.mutation.RemovePerformanceMetricIDs(ids...)
	return _u
}

// RemovePerformanceMetrics removes "performance_metrics" edges to PerformanceMetric entities.
func (_u *WorkflowExecutionUpdate) RemovePerformanceMetrics(v ...*PerformanceMetric) *WorkflowExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePerformanceMetricIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowExecutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowExecutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowExecutionUpdate) check() error {
	if v, ok := _u.mutation.WorkflowType(); ok {
		if err := workflowexecution.WorkflowTypeValidator(v); err != nil {
			return &ValidationError{Name: "workflow_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.workflow_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkflowType(); ok {
		_spec.SetField(workflowexecution.FieldWorkflowType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(workflowexecution.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(workflowexecution.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WasSuccess(); ok {
		_spec.SetField(workflowexecution.FieldWasSuccess, field.TypeBool, value)
	}
	if _u.mutation.WasSuccessCleared() {
		_spec.ClearField(workflowexecution.FieldWasSuccess, field.TypeBool)
	}
	if value, ok := _u.mutation.InputData(); ok {
		_spec.SetField(workflowexecution.FieldInputData, field.TypeJSON, value)
	}
	if _u.mutation.InputDataCleared() {
		_spec.ClearField(workflowexecution.FieldInputData, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputData(); ok {
		_spec.SetField(workflowexecution.FieldOutputData, field.TypeJSON, value)
	}
	if _u.mutation.OutputDataCleared() {
		_spec.ClearField(workflowexecution.FieldOutputData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(workflowexecution.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(workflowexecution.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(workflowexecution.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(workflowexecution.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(workflowexecution.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(workflowexecution.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(workflowexecution.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(workflowexecution.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PerformanceMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPerformanceMetricsIDs(); len(nodes) > 0 && !_u.mutation.PerformanceMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PerformanceMetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowExecutionUpdateOne is the builder for updating a single WorkflowExecution entity.
type WorkflowExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowExecutionMutation
}

// SetWorkflowType sets the "workflow_type" field.
func (_u *WorkflowExecutionUpdateOne) SetWorkflowType(v workflowexecution.WorkflowType) *WorkflowExecutionUpdateOne {
	_u.mutation.SetWorkflowType(v)
	return _u
}

// SetNillableWorkflowType sets the "workflow_type" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableWorkflowType(v *workflowexecution.WorkflowType) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetWorkflowType(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *WorkflowExecutionUpdateOne) SetDomain(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableDomain(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *WorkflowExecutionUpdateOne) ClearDomain() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearDomain()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowExecutionUpdateOne) SetStatus(v workflowexecution.Status) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStatus(v *workflowexecution.Status) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWasSuccess sets the "was_success" field.
func (_u *WorkflowExecutionUpdateOne) SetWasSuccess(v bool) *WorkflowExecutionUpdateOne {
	_u.mutation.SetWasSuccess(v)
	return _u
}

// SetNillableWasSuccess sets the "was_success" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableWasSuccess(v *bool) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetWasSuccess(*v)
	}
	return _u
}

// ClearWasSuccess clears the value of the "was_success" field.
func (_u *WorkflowExecutionUpdateOne) ClearWasSuccess() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearWasSuccess()
	return _u
}

// SetInputData sets the "input_data" field.
func (_u *WorkflowExecutionUpdateOne) SetInputData(v map[string]interface{}) *WorkflowExecutionUpdateOne {
	_u.mutation.SetInputData(v)
	return _u
}

// ClearInputData clears the value of the "input_data" field.
func (_u *WorkflowExecutionUpdateOne) ClearInputData() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearInputData()
	return _u
}

// SetOutputData sets the "output_data" field.
func (_u *WorkflowExecutionUpdateOne) SetOutputData(v map[string]interface{}) *WorkflowExecutionUpdateOne {
	_u.mutation.SetOutputData(v)
	return _u
}

// ClearOutputData clears the value of the "output_data" field.
func (_u *WorkflowExecutionUpdateOne) ClearOutputData() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearOutputData()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowExecutionUpdateOne) SetErrorMessage(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableErrorMessage(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowExecutionUpdateOne) ClearErrorMessage() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *WorkflowExecutionUpdateOne) SetStartTime(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStartTime(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *WorkflowExecutionUpdateOne) ClearStartTime() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *WorkflowExecutionUpdateOne) SetEndTime(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableEndTime(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *WorkflowExecutionUpdateOne) ClearEndTime() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *WorkflowExecutionUpdateOne) SetDurationSeconds(v float64) *WorkflowExecutionUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableDurationSeconds(v *float64) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *WorkflowExecutionUpdateOne) AddDurationSeconds(v float64) *WorkflowExecutionUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *WorkflowExecutionUpdateOne) ClearDurationSeconds() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetParentExecutionID sets the "parent_execution_id" field.
func (_u *WorkflowExecutionUpdateOne) SetParentExecutionID(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetParentExecutionID(v)
	return _u
}

// SetNillableParentExecutionID sets the "parent_execution_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableParentExecutionID(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetParentExecutionID(*v)
	}
	return _u
}

// ClearParentExecutionID clears the value of the "parent_execution_id" field.
func (_u *WorkflowExecutionUpdateOne) ClearParentExecutionID() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearParentExecutionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowExecutionUpdateOne) SetUpdatedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *WorkflowExecutionUpdateOne) SetDeletedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableDeletedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearDeletedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetParentID sets the "parent" edge to the WorkflowExecution entity by ID.
func (_u *WorkflowExecutionUpdateOne) SetParentID(id string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the WorkflowExecution entity by ID if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableParentID(id *string) *WorkflowExecutionUpdateOne {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the WorkflowExecution entity.
func (_u *WorkflowExecutionUpdateOne) SetParent(v *WorkflowExecution) *WorkflowExecutionUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the WorkflowExecution entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddChildIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the WorkflowExecution entity.
func (_u *WorkflowExecutionUpdateOne) AddChildren(v ...*WorkflowExecution) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddAuditLogIDs(ids ...int) *WorkflowExecutionUpdateOne {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *WorkflowExecutionUpdateOne) AddAuditLogs(v ...*AuditLog) *WorkflowExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// AddPerformanceMetricIDs adds the "performance_metrics" edge to the PerformanceMetric entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddPerformanceMetricIDs(ids ...int) *WorkflowExecutionUpdateOne {
	_u.mutation.AddPerformanceMetricIDs(ids...)
	return _u
}

// AddPerformanceMetrics adds the "performance_metrics" edges to the PerformanceMetric entity.
func (_u *WorkflowExecutionUpdateOne) AddPerformanceMetrics(v ...*PerformanceMetric) *WorkflowExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPerformanceMetricIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_u *WorkflowExecutionUpdateOne) Mutation() *WorkflowExecutionMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the WorkflowExecution entity.
func (_u *WorkflowExecutionUpdateOne) ClearParent() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the WorkflowExecution entity.
func (_u *WorkflowExecutionUpdateOne) ClearChildren() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to WorkflowExecution entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemoveChildIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to WorkflowExecution entities.
func (_u *WorkflowExecutionUpdateOne) RemoveChildren(v ...*WorkflowExecution) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *WorkflowExecutionUpdateOne) ClearAuditLogs() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemoveAuditLogIDs(ids ...int) *WorkflowExecutionUpdateOne {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *WorkflowExecutionUpdateOne) RemoveAuditLogs(v ...*AuditLog) *WorkflowExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// ClearPerformanceMetrics clears all "performance_metrics" edges to the PerformanceMetric entity.
func (_u *WorkflowExecutionUpdateOne) ClearPerformanceMetrics() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearPerformanceMetrics()
	return _u
}

// RemovePerformanceMetricIDs removes the "performance_metrics" edge to PerformanceMetric entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemovePerformanceMetricIDs(ids ...int) *WorkflowExecutionUpdateOne {
	_u.mutation.RemovePerformanceMetricIDs(ids...)
	return _u
}

// RemovePerformanceMetrics removes "performance_metrics" edges to PerformanceMetric entities.
func (_u *WorkflowExecutionUpdateOne) RemovePerformanceMetrics(v ...*PerformanceMetric) *WorkflowExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePerformanceMetricIDs(ids...)
}

// Where appends a list predicates to the WorkflowExecutionUpdate builder.
func (_u *WorkflowExecutionUpdateOne) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowExecutionUpdateOne) Select(field string, fields ...string) *WorkflowExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowExecution entity.
func (_u *WorkflowExecutionUpdateOne) Save(ctx context.Context) (*WorkflowExecution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowExecutionUpdateOne) SaveX(ctx context.Context) *WorkflowExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowExecutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.WorkflowType(); ok {
		if err := workflowexecution.WorkflowTypeValidator(v); err != nil {
			return &ValidationError{Name: "workflow_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.workflow_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowExecutionUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowexecution.FieldID)
		for _, f := range fields {
			if !workflowexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowexecution.FieldID {
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
	if value, ok := _u.mutation.WorkflowType(); ok {
		_spec.SetField(workflowexecution.FieldWorkflowType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(workflowexecution.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(workflowexecution.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WasSuccess(); ok {
		_spec.SetField(workflowexecution.FieldWasSuccess, field.TypeBool, value)
	}
	if _u.mutation.WasSuccessCleared() {
		_spec.ClearField(workflowexecution.FieldWasSuccess, field.TypeBool)
	}
	if value, ok := _u.mutation.InputData(); ok {
		_spec.SetField(workflowexecution.FieldInputData, field.TypeJSON, value)
	}
	if _u.mutation.InputDataCleared() {
		_spec.ClearField(workflowexecution.FieldInputData, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputData(); ok {
		_spec.SetField(workflowexecution.FieldOutputData, field.TypeJSON, value)
	}
	if _u.mutation.OutputDataCleared() {
		_spec.ClearField(workflowexecution.FieldOutputData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(workflowexecution.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(workflowexecution.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(workflowexecution.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(workflowexecution.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(workflowexecution.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(workflowexecution.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(workflowexecution.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(workflowexecution.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PerformanceMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPerformanceMetricsIDs(); len(nodes) > 0 && !_u.mutation.PerformanceMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PerformanceMetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
