// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/topicoutlier"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// TopicOutlierCreate is the builder for creating a TopicOutlier entity.
type TopicOutlierCreate struct {
	config
	mutation *TopicOutlierMutation
	hooks    []Hook
}

// SetAnalysisID sets the "analysis_id" field.
func (_c *TopicOutlierCreate) SetAnalysisID(v int) *TopicOutlierCreate {
	_c.mutation.SetAnalysisID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *TopicOutlierCreate) SetDocumentID(v string) *TopicOutlierCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetArticleID sets the "article_id" field.
func (_c *TopicOutlierCreate) SetArticleID(v int) *TopicOutlierCreate {
	_c.mutation.SetArticleID(v)
	return _c
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_c *TopicOutlierCreate) SetNillableArticleID(v *int) *TopicOutlierCreate {
	if v != nil {
		_c.SetArticleID(*v)
	}
	return _c
}

// SetNearestTopicID sets the "nearest_topic_id" field.
func (_c *TopicOutlierCreate) SetNearestTopicID(v int) *TopicOutlierCreate {
	_c.mutation.SetNearestTopicID(v)
	return _c
}

// SetNillableNearestTopicID sets the "nearest_topic_id" field if the given value is not nil.
func (_c *TopicOutlierCreate) SetNillableNearestTopicID(v *int) *TopicOutlierCreate {
	if v != nil {
		_c.SetNearestTopicID(*v)
	}
	return _c
}

// SetPotentialCategory sets the "potential_category" field.
func (_c *TopicOutlierCreate) SetPotentialCategory(v string) *TopicOutlierCreate {
	_c.mutation.SetPotentialCategory(v)
	return _c
}

// SetNillablePotentialCategory sets the "potential_category" field if the given value is not nil.
func (_c *TopicOutlierCreate) SetNillablePotentialCategory(v *string) *TopicOutlierCreate {
	if v != nil {
		_c.SetPotentialCategory(*v)
	}
	return _c
}

// SetEmbeddingDistance sets the "embedding_distance" field.
func (_c *TopicOutlierCreate) SetEmbeddingDistance(v float64) *TopicOutlierCreate {
	_c.mutation.SetEmbeddingDistance(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TopicOutlierCreate) SetCreatedAt(v time.Time) *TopicOutlierCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TopicOutlierCreate) SetNillableCreatedAt(v *time.Time) *TopicOutlierCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAnalysis sets the "analysis" edge to the TrendPipelineExecution entity.
func (_c *TopicOutlierCreate) SetAnalysis(v *TrendPipelineExecution) *TopicOutlierCreate {
	return _c.SetAnalysisID(v.ID)
}

// Mutation returns the TopicOutlierMutation object of the builder.
func (_c *TopicOutlierCreate) Mutation() *TopicOutlierMutation {
	return _c.mutation
}

// Save creates the TopicOutlier in the database.
func (_c *TopicOutlierCreate) Save(ctx context.Context) (*TopicOutlier, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicOutlierCreate) SaveX(ctx context.Context) *TopicOutlier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicOutlierCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicOutlierCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicOutlierCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := topicoutlier.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicOutlierCreate) check() error {
	if _, ok := _c.mutation.AnalysisID(); !ok {
		return &ValidationError{Name: "analysis_id", err: errors.New(`ent: missing required field "TopicOutlier.analysis_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "TopicOutlier.document_id"`)}
	}
	if _, ok := _c.mutation.EmbeddingDistance(); !ok {
		return &ValidationError{Name: "embedding_distance", err: errors.New(`ent: missing required field "TopicOutlier.embedding_distance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TopicOutlier.created_at"`)}
	}
	if len(_c.mutation.AnalysisIDs()) == 0 {
		return &ValidationError{Name: "analysis", err: errors.New(`ent: missing required edge "TopicOutlier.analysis"`)}
	}
	return nil
}

func (_c *TopicOutlierCreate) sqlSave(ctx context.Context) (*TopicOutlier, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TopicOutlierCreate) createSpec() (*TopicOutlier, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicOutlier{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicoutlier.Table, sqlgraph.NewFieldSpec(topicoutlier.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(topicoutlier.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.ArticleID(); ok {
		_spec.SetField(topicoutlier.FieldArticleID, field.TypeInt, value)
		_node.ArticleID = &value
	}
	if value, ok := _c.mutation.NearestTopicID(); ok {
		_spec.SetField(topicoutlier.FieldNearestTopicID, field.TypeInt, value)
		_node.NearestTopicID = &value
	}
	if value, ok := _c.mutation.PotentialCategory(); ok {
		_spec.SetField(topicoutlier.FieldPotentialCategory, field.TypeString, value)
		_node.PotentialCategory = value
	}
	if value, ok := _c.mutation.EmbeddingDistance(); ok {
		_spec.SetField(topicoutlier.FieldEmbeddingDistance, field.TypeFloat64, value)
		_node.EmbeddingDistance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(topicoutlier.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topicoutlier.AnalysisTable,
			Columns: []string{topicoutlier.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AnalysisID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TopicOutlierCreateBulk is the builder for creating many TopicOutlier entities in bulk.
type TopicOutlierCreateBulk struct {
	config
	err      error
	builders []*TopicOutlierCreate
}

// Save creates the TopicOutlier entities in the database.
func (_c *TopicOutlierCreateBulk) Save(ctx context.Context) ([]*TopicOutlier, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicOutlier, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicOutlierMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *TopicOutlierCreateBulk) SaveX(ctx context.Context) []*TopicOutlier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicOutlierCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicOutlierCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
