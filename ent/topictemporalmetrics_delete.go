// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topictemporalmetrics"
)

// TopicTemporalMetricsDelete is the builder for deleting a TopicTemporalMetrics entity.
type TopicTemporalMetricsDelete struct {
	config
	hooks    []Hook
	mutation *TopicTemporalMetricsMutation
}

// Where appends a list predicates to the TopicTemporalMetricsDelete builder.
func (_d *TopicTemporalMetricsDelete) Where(ps ...predicate.TopicTemporalMetrics) *TopicTemporalMetricsDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TopicTemporalMetricsDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TopicTemporalMetricsDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TopicTemporalMetricsDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(topictemporalmetrics.Table, sqlgraph.NewFieldSpec(topictemporalmetrics.FieldID, field.TypeInt))
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

// TopicTemporalMetricsDeleteOne is the builder for deleting a single TopicTemporalMetrics entity.
type TopicTemporalMetricsDeleteOne struct {
	_d *TopicTemporalMetricsDelete
}

// Where appends a list predicates to the TopicTemporalMetricsDelete builder.
func (_d *TopicTemporalMetricsDeleteOne) Where(ps ...predicate.TopicTemporalMetrics) *TopicTemporalMetricsDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TopicTemporalMetricsDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{topictemporalmetrics.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TopicTemporalMetricsDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
