// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ArticleRecommendationDelete is the builder for deleting a ArticleRecommendation entity.
type ArticleRecommendationDelete struct {
	config
	hooks    []Hook
	mutation *ArticleRecommendationMutation
}

// Where appends a list predicates to the ArticleRecommendationDelete builder.
func (_d *ArticleRecommendationDelete) Where(ps ...predicate.ArticleRecommendation) *ArticleRecommendationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ArticleRecommendationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArticleRecommendationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ArticleRecommendationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(articlerecommendation.Table, sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt))
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

// ArticleRecommendationDeleteOne is the builder for deleting a single ArticleRecommendation entity.
type ArticleRecommendationDeleteOne struct {
	_d *ArticleRecommendationDelete
}

// Where appends a list predicates to the ArticleRecommendationDelete builder.
func (_d *ArticleRecommendationDeleteOne) Where(ps ...predicate.ArticleRecommendation) *ArticleRecommendationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ArticleRecommendationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{articlerecommendation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArticleRecommendationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
