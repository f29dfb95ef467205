// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/competitorarticle"
)

// CompetitorArticleCreate is the builder for creating a CompetitorArticle entity.
type CompetitorArticleCreate struct {
	config
	mutation *CompetitorArticleMutation
	hooks    []Hook
}

// SetDomain sets the "domain" field.
func (_c *CompetitorArticleCreate) SetDomain(v string) *CompetitorArticleCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *CompetitorArticleCreate) SetURL(v string) *CompetitorArticleCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetURLHash sets the "url_hash" field.
func (_c *CompetitorArticleCreate) SetURLHash(v string) *CompetitorArticleCreate {
	_c.mutation.SetURLHash(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CompetitorArticleCreate) SetTitle(v string) *CompetitorArticleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *CompetitorArticleCreate) SetNillableTitle(v *string) *CompetitorArticleCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetContentText sets the "content_text" field.
func (_c *CompetitorArticleCreate) SetContentText(v string) *CompetitorArticleCreate {
	_c.mutation.SetContentText(v)
	return _c
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_c *CompetitorArticleCreate) SetNillableContentText(v *string) *CompetitorArticleCreate {
	if v != nil {
		_c.SetContentText(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *CompetitorArticleCreate) SetAuthor(v string) *CompetitorArticleCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *CompetitorArticleCreate) SetNillableAuthor(v *string) *CompetitorArticleCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetPublishedDate sets the "published_date" field.
func (_c *CompetitorArticleCreate) SetPublishedDate(v time.Time) *CompetitorArticleCreate {
	_c.mutation.SetPublishedDate(v)
	return _c
}

// SetNillablePublishedDate sets the "published_date" field if the given value is not nil.
func (_c *CompetitorArticleCreate) SetNillablePublishedDate(v *time.Time) *CompetitorArticleCreate {
	if v != nil {
		_c.SetPublishedDate(*v)
	}
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *CompetitorArticleCreate) SetKeywords(v []string) *CompetitorArticleCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *CompetitorArticleCreate) SetTopicID(v int) *CompetitorArticleCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *CompetitorArticleCreate) SetNillableTopicID(v *int) *CompetitorArticleCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetQdrantPointID sets the "qdrant_point_id" field.
func (_c *CompetitorArticleCreate) SetQdrantPointID(v string) *CompetitorArticleCreate {
	_c.mutation.SetQdrantPointID(v)
	return _c
}

// SetNillableQdrantPointID sets the "qdrant_point_id" field if the given value is not nil.
func (_c *CompetitorArticleCreate) SetNillableQdrantPointID(v *string) *CompetitorArticleCreate {
	if v != nil {
		_c.SetQdrantPointID(*v)
	}
	return _c
}

// SetIsValid sets the "is_valid" field.
func (_c *CompetitorArticleCreate) SetIsValid(v bool) *CompetitorArticleCreate {
	_c.mutation.SetIsValid(v)
	return _c
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_c *CompetitorArticleCreate) SetNillableIsValid(v *bool) *CompetitorArticleCreate {
	if v != nil {
		_c.SetIsValid(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompetitorArticleCreate) SetCreatedAt(v time.Time) *CompetitorArticleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompetitorArticleCreate) SetNillableCreatedAt(v *time.Time) *CompetitorArticleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CompetitorArticleMutation object of the builder.
func (_c *CompetitorArticleCreate) Mutation() *CompetitorArticleMutation {
	return _c.mutation
}

// Save creates the CompetitorArticle in the database.
func (_c *CompetitorArticleCreate) Save(ctx context.Context) (*CompetitorArticle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompetitorArticleCreate) SaveX(ctx context.Context) *CompetitorArticle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompetitorArticleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompetitorArticleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompetitorArticleCreate) defaults() {
	if _, ok := _c.mutation.IsValid(); !ok {
		v := competitorarticle.DefaultIsValid
		_c.mutation.SetIsValid(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := competitorarticle.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompetitorArticleCreate) check() error {
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "CompetitorArticle.domain"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "CompetitorArticle.url"`)}
	}
	if _, ok := _c.mutation.URLHash(); !ok {
		return &ValidationError{Name: "url_hash", err: errors.New(`ent: missing required field "CompetitorArticle.url_hash"`)}
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		return &ValidationError{Name: "is_valid", err: errors.New(`ent: missing required field "CompetitorArticle.is_valid"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CompetitorArticle.created_at"`)}
	}
	return nil
}

func (_c *CompetitorArticleCreate) sqlSave(ctx context.Context) (*CompetitorArticle, error) {
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

func (_c *CompetitorArticleCreate) createSpec() (*CompetitorArticle, *sqlgraph.CreateSpec) {
	var (
		_node = &CompetitorArticle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(competitorarticle.Table, sqlgraph.NewFieldSpec(competitorarticle.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(competitorarticle.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(competitorarticle.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.URLHash(); ok {
		_spec.SetField(competitorarticle.FieldURLHash, field.TypeString, value)
		_node.URLHash = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(competitorarticle.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ContentText(); ok {
		_spec.SetField(competitorarticle.FieldContentText, field.TypeString, value)
		_node.ContentText = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(competitorarticle.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.PublishedDate(); ok {
		_spec.SetField(competitorarticle.FieldPublishedDate, field.TypeTime, value)
		_node.PublishedDate = &value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(competitorarticle.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(competitorarticle.FieldTopicID, field.TypeInt, value)
		_node.TopicID = &value
	}
	if value, ok := _c.mutation.QdrantPointID(); ok {
		_spec.SetField(competitorarticle.FieldQdrantPointID, field.TypeString, value)
		_node.QdrantPointID = &value
	}
	if value, ok := _c.mutation.IsValid(); ok {
		_spec.SetField(competitorarticle.FieldIsValid, field.TypeBool, value)
		_node.IsValid = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(competitorarticle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CompetitorArticleCreateBulk is the builder for creating many CompetitorArticle entities in bulk.
type CompetitorArticleCreateBulk struct {
	config
	err      error
	builders []*CompetitorArticleCreate
}

// Save creates the CompetitorArticle entities in the database.
func (_c *CompetitorArticleCreateBulk) Save(ctx context.Context) ([]*CompetitorArticle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompetitorArticle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompetitorArticleMutation)
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
func (_c *CompetitorArticleCreateBulk) SaveX(ctx context.Context) []*CompetitorArticle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompetitorArticleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompetitorArticleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
