// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// TrendPipelineExecutionDelete is the builder for deleting a TrendPipelineExecution entity.
type TrendPipelineExecutionDelete struct {
	config
	hooks    []Hook
	mutation *TrendPipelineExecutionMutation
}

// Where appends a list predicates to the TrendPipelineExecutionDelete builder.
func (_d *TrendPipelineExecutionDelete) Where(ps ...predicate.TrendPipelineExecution) *TrendPipelineExecutionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TrendPipelineExecutionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TrendPipelineExecutionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TrendPipelineExecutionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(trendpipelineexecution.Table, sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TrendPipelineExecutionDeleteOne is the builder for deleting a single TrendPipelineExecution entity.
type TrendPipelineExecutionDeleteOne struct {
	_d *TrendPipelineExecutionDelete
}

// Where appends a list predicates to the TrendPipelineExecutionDelete builder.
func (_d *TrendPipelineExecutionDeleteOne) Where(ps ...predicate.TrendPipelineExecution) *TrendPipelineExecutionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TrendPipelineExecutionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{trendpipelineexecution.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TrendPipelineExecutionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
