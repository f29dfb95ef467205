// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/competitor"
)

// CompetitorCreate is the builder for creating a Competitor entity.
type CompetitorCreate struct {
	config
	mutation *CompetitorMutation
	hooks    []Hook
}

// SetClientDomain sets the "client_domain" field.
func (_c *CompetitorCreate) SetClientDomain(v string) *CompetitorCreate {
	_c.mutation.SetClientDomain(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *CompetitorCreate) SetDomain(v string) *CompetitorCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *CompetitorCreate) SetSource(v string) *CompetitorCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *CompetitorCreate) SetNillableSource(v *string) *CompetitorCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetRelevanceScore sets the "relevance_score" field.
func (_c *CompetitorCreate) SetRelevanceScore(v float64) *CompetitorCreate {
	_c.mutation.SetRelevanceScore(v)
	return _c
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_c *CompetitorCreate) SetNillableRelevanceScore(v *float64) *CompetitorCreate {
	if v != nil {
		_c.SetRelevanceScore(*v)
	}
	return _c
}

// SetValidated sets the "validated" field.
func (_c *CompetitorCreate) SetValidated(v bool) *CompetitorCreate {
	_c.mutation.SetValidated(v)
	return _c
}

// SetNillableValidated sets the "validated" field if the given value is not nil.
func (_c *CompetitorCreate) SetNillableValidated(v *bool) *CompetitorCreate {
	if v != nil {
		_c.SetValidated(*v)
	}
	return _c
}

// SetExcluded sets the "excluded" field.
func (_c *CompetitorCreate) SetExcluded(v bool) *CompetitorCreate {
	_c.mutation.SetExcluded(v)
	return _c
}

// SetNillableExcluded sets the "excluded" field if the given value is not nil.
func (_c *CompetitorCreate) SetNillableExcluded(v *bool) *CompetitorCreate {
	if v != nil {
		_c.SetExcluded(*v)
	}
	return _c
}

// SetValidationDate sets the "validation_date" field.
func (_c *CompetitorCreate) SetValidationDate(v time.Time) *CompetitorCreate {
	_c.mutation.SetValidationDate(v)
	return _c
}

// SetNillableValidationDate sets the "validation_date" field if the given value is not nil.
func (_c *CompetitorCreate) SetNillableValidationDate(v *time.Time) *CompetitorCreate {
	if v != nil {
		_c.SetValidationDate(*v)
	}
	return _c
}

// SetIsValid sets the "is_valid" field.
func (_c *CompetitorCreate) SetIsValid(v bool) *CompetitorCreate {
	_c.mutation.SetIsValid(v)
	return _c
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_c *CompetitorCreate) SetNillableIsValid(v *bool) *CompetitorCreate {
	if v != nil {
		_c.SetIsValid(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompetitorCreate) SetCreatedAt(v time.Time) *CompetitorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompetitorCreate) SetNillableCreatedAt(v *time.Time) *CompetitorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CompetitorMutation object of the builder.
func (_c *CompetitorCreate) Mutation() *CompetitorMutation {
	return _c.mutation
}

// Save creates the Competitor in the database.
func (_c *CompetitorCreate) Save(ctx context.Context) (*Competitor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompetitorCreate) SaveX(ctx context.Context) *Competitor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompetitorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompetitorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompetitorCreate) defaults() {
	if _, ok := _c.mutation.RelevanceScore(); !ok {
		v := competitor.DefaultRelevanceScore
		_c.mutation.SetRelevanceScore(v)
	}
	if _, ok := _c.mutation.Validated(); !ok {
		v := competitor.DefaultValidated
		_c.mutation.SetValidated(v)
	}
	if _, ok := _c.mutation.Excluded(); !ok {
		v := competitor.DefaultExcluded
		_c.mutation.SetExcluded(v)
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		v := competitor.DefaultIsValid
		_c.mutation.SetIsValid(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := competitor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompetitorCreate) check() error {
	if _, ok := _c.mutation.ClientDomain(); !ok {
		return &ValidationError{Name: "client_domain", err: errors.New(`ent: missing required field "Competitor.client_domain"`)}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Competitor.domain"`)}
	}
	if _, ok := _c.mutation.RelevanceScore(); !ok {
		return &ValidationError{Name: "relevance_score", err: errors.New(`ent: missing required field "Competitor.relevance_score"`)}
	}
	if _, ok := _c.mutation.Validated(); !ok {
		return &ValidationError{Name: "validated", err: errors.New(`ent: missing required field "Competitor.validated"`)}
	}
	if _, ok := _c.mutation.Excluded(); !ok {
		return &ValidationError{Name: "excluded", err: errors.New(`ent: missing required field "Competitor.excluded"`)}
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		return &ValidationError{Name: "is_valid", err: errors.New(`ent: missing required field "Competitor.is_valid"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Competitor.created_at"`)}
	}
	return nil
}

func (_c *CompetitorCreate) sqlSave(ctx context.Context) (*Competitor, error) {
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

func (_c *CompetitorCreate) createSpec() (*Competitor, *sqlgraph.CreateSpec) {
	var (
		_node = &Competitor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(competitor.Table, sqlgraph.NewFieldSpec(competitor.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ClientDomain(); ok {
		_spec.SetField(competitor.FieldClientDomain, field.TypeString, value)
		_node.ClientDomain = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(competitor.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(competitor.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.RelevanceScore(); ok {
		_spec.SetField(competitor.FieldRelevanceScore, field.TypeFloat64, value)
		_node.RelevanceScore = value
	}
	if value, ok := _c.mutation.Validated(); ok {
		_spec.SetField(competitor.FieldValidated, field.TypeBool, value)
		_node.Validated = value
	}
	if value, ok := _c.mutation.Excluded(); ok {
		_spec.SetField(competitor.FieldExcluded, field.TypeBool, value)
		_node.Excluded = value
	}
	if value, ok := _c.mutation.ValidationDate(); ok {
		_spec.SetField(competitor.FieldValidationDate, field.TypeTime, value)
		_node.ValidationDate = &value
	}
	if value, ok := _c.mutation.IsValid(); ok {
		_spec.SetField(competitor.FieldIsValid, field.TypeBool, value)
		_node.IsValid = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(competitor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CompetitorCreateBulk is the builder for creating many Competitor entities in bulk.
type CompetitorCreateBulk struct {
	config
	err      error
	builders []*CompetitorCreate
}

// Save creates the Competitor entities in the database.
func (_c *CompetitorCreateBulk) Save(ctx context.Context) ([]*Competitor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Competitor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompetitorMutation)
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
func (_c *CompetitorCreateBulk) SaveX(ctx context.Context) []*Competitor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompetitorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompetitorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
