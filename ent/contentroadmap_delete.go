// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ContentRoadmapDelete is the builder for deleting a ContentRoadmap entity.
type ContentRoadmapDelete struct {
	config
	hooks    []Hook
	mutation *ContentRoadmapMutation
}

// Where appends a list predicates to the ContentRoadmapDelete builder.
func (_d *ContentRoadmapDelete) Where(ps ...predicate.ContentRoadmap) *ContentRoadmapDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ContentRoadmapDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContentRoadmapDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ContentRoadmapDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(contentroadmap.Table, sqlgraph.NewFieldSpec(contentroadmap.FieldID, field.TypeInt))
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

// ContentRoadmapDeleteOne is the builder for deleting a single ContentRoadmap entity.
type ContentRoadmapDeleteOne struct {
	_d *ContentRoadmapDelete
}

// Where appends a list predicates to the ContentRoadmapDelete builder.
func (_d *ContentRoadmapDeleteOne) Where(ps ...predicate.ContentRoadmap) *ContentRoadmapDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ContentRoadmapDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{contentroadmap.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContentRoadmapDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
