// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/clientarticle"
	"github.com/trendscope/trendscope/ent/siteprofile"
)

// ClientArticleCreate is the builder for creating a ClientArticle entity.
type ClientArticleCreate struct {
	config
	mutation *ClientArticleMutation
	hooks    []Hook
}

// SetSiteProfileID sets the "site_profile_id" field.
func (_c *ClientArticleCreate) SetSiteProfileID(v int) *ClientArticleCreate {
	_c.mutation.SetSiteProfileID(v)
	return _c
}

// SetNillableSiteProfileID sets the "site_profile_id" field if the given value is not nil.
func (_c *ClientArticleCreate) SetNillableSiteProfileID(v *int) *ClientArticleCreate {
	if v != nil {
		_c.SetSiteProfileID(*v)
	}
	return _c
}

// SetDomain sets the "domain" field.
func (_c *ClientArticleCreate) SetDomain(v string) *ClientArticleCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *ClientArticleCreate) SetURL(v string) *ClientArticleCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetURLHash sets the "url_hash" field.
func (_c *ClientArticleCreate) SetURLHash(v string) *ClientArticleCreate {
	_c.mutation.SetURLHash(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ClientArticleCreate) SetTitle(v string) *ClientArticleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ClientArticleCreate) SetNillableTitle(v *string) *ClientArticleCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetContentText sets the "content_text" field.
func (_c *ClientArticleCreate) SetContentText(v string) *ClientArticleCreate {
	_c.mutation.SetContentText(v)
	return _c
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_c *ClientArticleCreate) SetNillableContentText(v *string) *ClientArticleCreate {
	if v != nil {
		_c.SetContentText(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *ClientArticleCreate) SetAuthor(v string) *ClientArticleCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *ClientArticleCreate) SetNillableAuthor(v *string) *ClientArticleCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetPublishedDate sets the "published_date" field.
func (_c *ClientArticleCreate) SetPublishedDate(v time.Time) *ClientArticleCreate {
	_c.mutation.SetPublishedDate(v)
	return _c
}

// SetNillablePublishedDate sets the "published_date" field if the given value is not nil.
func (_c *ClientArticleCreate) SetNillablePublishedDate(v *time.Time) *ClientArticleCreate {
	if v != nil {
		_c.SetPublishedDate(*v)
	}
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *ClientArticleCreate) SetKeywords(v []string) *ClientArticleCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *ClientArticleCreate) SetTopicID(v int) *ClientArticleCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *ClientArticleCreate) SetNillableTopicID(v *int) *ClientArticleCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetQdrantPointID sets the "qdrant_point_id" field.
func (_c *ClientArticleCreate) SetQdrantPointID(v string) *ClientArticleCreate {
	_c.mutation.SetQdrantPointID(v)
	return _c
}

// SetNillableQdrantPointID sets the "qdrant_point_id" field if the given value is not nil.
func (_c *ClientArticleCreate) SetNillableQdrantPointID(v *string) *ClientArticleCreate {
	if v != nil {
		_c.SetQdrantPointID(*v)
	}
	return _c
}

// SetIsValid sets the "is_valid" field.
func (_c *ClientArticleCreate) SetIsValid(v bool) *ClientArticleCreate {
	_c.mutation.SetIsValid(v)
	return _c
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_c *ClientArticleCreate) SetNillableIsValid(v *bool) *ClientArticleCreate {
	if v != nil {
		_c.SetIsValid(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClientArticleCreate) SetCreatedAt(v time.Time) *ClientArticleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClientArticleCreate) SetNillableCreatedAt(v *time.Time) *ClientArticleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSiteProfile sets the "site_profile" edge to the SiteProfile entity.
func (_c *ClientArticleCreate) SetSiteProfile(v *SiteProfile) *ClientArticleCreate {
	return _c.SetSiteProfileID(v.ID)
}

// Mutation returns the ClientArticleMutation object of the builder.
func (_c *ClientArticleCreate) Mutation() *ClientArticleMutation {
	return _c.mutation
}

// Save creates the ClientArticle in the database.
func (_c *ClientArticleCreate) Save(ctx context.Context) (*ClientArticle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClientArticleCreate) SaveX(ctx context.Context) *ClientArticle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientArticleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientArticleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClientArticleCreate) defaults() {
	if _, ok := _c.mutation.IsValid(); !ok {
		v := clientarticle.DefaultIsValid
		_c.mutation.SetIsValid(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clientarticle.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClientArticleCreate) check() error {
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "ClientArticle.domain"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "ClientArticle.url"`)}
	}
	if _, ok := _c.mutation.URLHash(); !ok {
		return &ValidationError{Name: "url_hash", err: errors.New(`ent: missing required field "ClientArticle.url_hash"`)}
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		return &ValidationError{Name: "is_valid", err: errors.New(`ent: missing required field "ClientArticle.is_valid"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClientArticle.created_at"`)}
	}
	return nil
}

func (_c *ClientArticleCreate) sqlSave(ctx context.Context) (*ClientArticle, error) {
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

func (_c *ClientArticleCreate) createSpec() (*ClientArticle, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientArticle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clientarticle.Table, sqlgraph.NewFieldSpec(clientarticle.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(clientarticle.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(clientarticle.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.URLHash(); ok {
		_spec.SetField(clientarticle.FieldURLHash, field.TypeString, value)
		_node.URLHash = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(clientarticle.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ContentText(); ok {
		_spec.SetField(clientarticle.FieldContentText, field.TypeString, value)
		_node.ContentText = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(clientarticle.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.PublishedDate(); ok {
		_spec.SetField(clientarticle.FieldPublishedDate, field.TypeTime, value)
		_node.PublishedDate = &value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(clientarticle.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(clientarticle.FieldTopicID, field.TypeInt, value)
		_node.TopicID = &value
	}
	if value, ok := _c.mutation.QdrantPointID(); ok {
		_spec.SetField(clientarticle.FieldQdrantPointID, field.TypeString, value)
		_node.QdrantPointID = &value
	}
	if value, ok := _c.mutation.IsValid(); ok {
		_spec.SetField(clientarticle.FieldIsValid, field.TypeBool, value)
		_node.IsValid = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clientarticle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SiteProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clientarticle.SiteProfileTable,
			Columns: []string{clientarticle.SiteProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(siteprofile.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SiteProfileID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClientArticleCreateBulk is the builder for creating many ClientArticle entities in bulk.
type ClientArticleCreateBulk struct {
	config
	err      error
	builders []*ClientArticleCreate
}

// Save creates the ClientArticle entities in the database.
func (_c *ClientArticleCreateBulk) Save(ctx context.Context) ([]*ClientArticle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClientArticle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientArticleMutation)
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
func (_c *ClientArticleCreateBulk) SaveX(ctx context.Context) []*ClientArticle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientArticleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientArticleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
