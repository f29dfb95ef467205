// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/auditlog"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/workflowexecution"
)

// AuditLogUpdate is the builder for updating AuditLog entities.
type AuditLogUpdate struct {
	config
	hooks    []Hook
	mutation *AuditLogMutation
}

// Where appends a list predicates to the AuditLogUpdate builder.
func (_u *AuditLogUpdate) Where(ps ...predicate.AuditLog) *AuditLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *AuditLogUpdate) SetExecutionID(v string) *AuditLogUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableExecutionID(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *AuditLogUpdate) ClearExecutionID() *AuditLogUpdate {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetAction sets the "action" field.
func (_u *AuditLogUpdate) SetAction(v string) *AuditLogUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableAction(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AuditLogUpdate) SetAgentName(v string) *AuditLogUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableAgentName(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *AuditLogUpdate) ClearAgentName() *AuditLogUpdate {
	_u.mutation.ClearAgentName()
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *AuditLogUpdate) SetStepName(v string) *AuditLogUpdate {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableStepName(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// ClearStepName clears the value of the "step_name" field.
func (_u *AuditLogUpdate) ClearStepName() *AuditLogUpdate {
	_u.mutation.ClearStepName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditLogUpdate) SetStatus(v auditlog.Status) *AuditLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableStatus(v *auditlog.Status) *AuditLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AuditLogUpdate) SetMessage(v string) *AuditLogUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableMessage(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *AuditLogUpdate) ClearMessage() *AuditLogUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetDetails sets the "details" field.
func (_u *AuditLogUpdate) SetDetails(v map[string]interface{}) *AuditLogUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *AuditLogUpdate) ClearDetails() *AuditLogUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetErrorTraceback sets the "error_traceback" field.
func (_u *AuditLogUpdate) SetErrorTraceback(v string) *AuditLogUpdate {
	_u.mutation.SetErrorTraceback(v)
	return _u
}

// SetNillableErrorTraceback sets the "error_traceback" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableErrorTraceback(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetErrorTraceback(*v)
	}
	return _u
}

// ClearErrorTraceback clears the value of the "error_traceback" field.
func (_u *AuditLogUpdate) ClearErrorTraceback() *AuditLogUpdate {
	_u.mutation.ClearErrorTraceback()
	return _u
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_u *AuditLogUpdate) SetExecution(v *WorkflowExecution) *AuditLogUpdate {
	return _u.SetExecutionID(v.ID)
}

// Mutation returns the AuditLogMutation object of the builder.
func (_u *AuditLogUpdate) Mutation() *AuditLogMutation {
	return _u.mutation
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (_u *AuditLogUpdate) ClearExecution() *AuditLogUpdate {
	_u.mutation.ClearExecution()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := auditlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditlog.Table, auditlog.Columns, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(auditlog.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(auditlog.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(auditlog.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(auditlog.FieldStepName, field.TypeString, value)
	}
	if _u.mutation.StepNameCleared() {
		_spec.ClearField(auditlog.FieldStepName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(auditlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(auditlog.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(auditlog.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(auditlog.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(auditlog.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorTraceback(); ok {
		_spec.SetField(auditlog.FieldErrorTraceback, field.TypeString, value)
	}
	if _u.mutation.ErrorTracebackCleared() {
		_spec.ClearField(auditlog.FieldErrorTraceback, field.TypeString)
	}
	if _u.mutation.ExecutionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditlog.ExecutionTable,
			Columns: []string{auditlog.ExecutionColumn},
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
			Table:   auditlog.ExecutionTable,
			Columns: []string{auditlog.ExecutionColumn},
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
			err = &NotFoundError{auditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditLogUpdateOne is the builder for updating a single AuditLog entity.
type AuditLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditLogMutation
}

// SetExecutionID sets the "execution_id" field.
func (_u *AuditLogUpdateOne) SetExecutionID(v string) *AuditLogUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableExecutionID(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *AuditLogUpdateOne) ClearExecutionID() *AuditLogUpdateOne {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetAction sets the "action" field.
func (_u *AuditLogUpdateOne) SetAction(v string) *AuditLogUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableAction(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AuditLogUpdateOne) SetAgentName(v string) *AuditLogUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableAgentName(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *AuditLogUpdateOne) ClearAgentName() *AuditLogUpdateOne {
	_u.mutation.ClearAgentName()
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *AuditLogUpdateOne) SetStepName(v string) *AuditLogUpdateOne {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableStepName(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// ClearStepName clears the value of the "step_name" field.
func (_u *AuditLogUpdateOne) ClearStepName() *AuditLogUpdateOne {
	_u.mutation.ClearStepName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditLogUpdateOne) SetStatus(v auditlog.Status) *AuditLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableStatus(v *auditlog.Status) *AuditLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AuditLogUpdateOne) SetMessage(v string) *AuditLogUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableMessage(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *AuditLogUpdateOne) ClearMessage() *AuditLogUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetDetails sets the "details" field.
func (_u *AuditLogUpdateOne) SetDetails(v map[string]interface{}) *AuditLogUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *AuditLogUpdateOne) ClearDetails() *AuditLogUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetErrorTraceback sets the "error_traceback" field.
func (_u *AuditLogUpdateOne) SetErrorTraceback(v string) *AuditLogUpdateOne {
	_u.mutation.SetErrorTraceback(v)
	return _u
}

// SetNillableErrorTraceback sets the "error_traceback" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableErrorTraceback(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetErrorTraceback(*v)
	}
	return _u
}

// ClearErrorTraceback clears the value of the "error_traceback" field.
func (_u *AuditLogUpdateOne) ClearErrorTraceback() *AuditLogUpdateOne {
	_u.mutation.ClearErrorTraceback()
	return _u
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_u *AuditLogUpdateOne) SetExecution(v *WorkflowExecution) *AuditLogUpdateOne {
	return _u.SetExecutionID(v.ID)
}

// Mutation returns the AuditLogMutation object of the builder.
func (_u *AuditLogUpdateOne) Mutation() *AuditLogMutation {
	return _u.mutation
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (_u *AuditLogUpdateOne) ClearExecution() *AuditLogUpdateOne {
	_u.mutation.ClearExecution()
	return _u
}

// Where appends a list predicates to the AuditLogUpdate builder.
func (_u *AuditLogUpdateOne) Where(ps ...predicate.AuditLog) *AuditLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditLogUpdateOne) Select(field string, fields ...string) *AuditLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditLog entity.
func (_u *AuditLogUpdateOne) Save(ctx context.Context) (*AuditLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditLogUpdateOne) SaveX(ctx context.Context) *AuditLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := auditlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditLogUpdateOne) sqlSave(ctx context.Context) (_node *AuditLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditlog.Table, auditlog.Columns, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditlog.FieldID)
		for _, f := range fields {
			if !auditlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditlog.FieldID {
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
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(auditlog.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(auditlog.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(auditlog.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(auditlog.FieldStepName, field.TypeString, value)
	}
	if _u.mutation.StepNameCleared() {
		_spec.ClearField(auditlog.FieldStepName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(auditlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(auditlog.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(auditlog.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(auditlog.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(auditlog.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorTraceback(); ok {
		_spec.SetField(auditlog.FieldErrorTraceback, field.TypeString, value)
	}
	if _u.mutation.ErrorTracebackCleared() {
		_spec.ClearField(auditlog.FieldErrorTraceback, field.TypeString)
	}
	if _u.mutation.ExecutionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditlog.ExecutionTable,
			Columns: []string{auditlog.ExecutionColumn},
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
			Table:   auditlog.ExecutionTable,
			Columns: []string{auditlog.ExecutionColumn},
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
	_node = &AuditLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
