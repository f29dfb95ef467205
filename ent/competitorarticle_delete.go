// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/competitorarticle"
	"github.com/trendscope/trendscope/ent/predicate"
)

// CompetitorArticleDelete is the builder for deleting a CompetitorArticle entity.
type CompetitorArticleDelete struct {
	config
	hooks    []Hook
	mutation *CompetitorArticleMutation
}

// Where appends a list predicates to the CompetitorArticleDelete builder.
func (_d *CompetitorArticleDelete) Where(ps ...predicate.CompetitorArticle) *CompetitorArticleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CompetitorArticleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompetitorArticleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CompetitorArticleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(competitorarticle.Table, sqlgraph.NewFieldSpec(competitorarticle.FieldID, field.TypeInt))
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

// CompetitorArticleDeleteOne is the builder for deleting a single CompetitorArticle entity.
type CompetitorArticleDeleteOne struct {
	_d *CompetitorArticleDelete
}

// Where appends a list predicates to the CompetitorArticleDelete builder.
func (_d *CompetitorArticleDeleteOne) Where(ps ...predicate.CompetitorArticle) *CompetitorArticleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CompetitorArticleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{competitorarticle.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompetitorArticleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
