// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/performancemetric"
	"github.com/trendscope/trendscope/ent/predicate"
)

// PerformanceMetricDelete is the builder for deleting a PerformanceMetric entity.
type PerformanceMetricDelete struct {
	config
	hooks    []Hook
	mutation *PerformanceMetricMutation
}

// Where appends a list predicates to the PerformanceMetricDelete builder.
func (_d *PerformanceMetricDelete) Where(ps ...predicate.PerformanceMetric) *PerformanceMetricDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PerformanceMetricDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PerformanceMetricDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PerformanceMetricDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(performancemetric.Table, sqlgraph.NewFieldSpec(performancemetric.FieldID, field.TypeInt))
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

// PerformanceMetricDeleteOne is the builder for deleting a single PerformanceMetric entity.
type PerformanceMetricDeleteOne struct {
	_d *PerformanceMetricDelete
}

// Where appends a list predicates to the PerformanceMetricDelete builder.
func (_d *PerformanceMetricDeleteOne) Where(ps ...predicate.PerformanceMetric) *PerformanceMetricDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PerformanceMetricDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{performancemetric.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PerformanceMetricDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
