// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/editorialgap"
)

// ContentRoadmapCreate is the builder for creating a ContentRoadmap entity.
type ContentRoadmapCreate struct {
	config
	mutation *ContentRoadmapMutation
	hooks    []Hook
}

// SetClientDomain sets the "client_domain" field.
func (_c *ContentRoadmapCreate) SetClientDomain(v string) *ContentRoadmapCreate {
	_c.mutation.SetClientDomain(v)
	return _c
}

// SetGapID sets the "gap_id" field.
func (_c *ContentRoadmapCreate) SetGapID(v int) *ContentRoadmapCreate {
	_c.mutation.SetGapID(v)
	return _c
}

// SetRecommendationID sets the "recommendation_id" field.
func (_c *ContentRoadmapCreate) SetRecommendationID(v int) *ContentRoadmapCreate {
	_c.mutation.SetRecommendationID(v)
	return _c
}

// SetPriorityOrder sets the "priority_order" field.
func (_c *ContentRoadmapCreate) SetPriorityOrder(v int) *ContentRoadmapCreate {
	_c.mutation.SetPriorityOrder(v)
	return _c
}

// SetPriorityTier sets the "priority_tier" field.
func (_c *ContentRoadmapCreate) SetPriorityTier(v contentroadmap.PriorityTier) *ContentRoadmapCreate {
	_c.mutation.SetPriorityTier(v)
	return _c
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (_c *ContentRoadmapCreate) SetEstimatedEffort(v contentroadmap.EstimatedEffort) *ContentRoadmapCreate {
	_c.mutation.SetEstimatedEffort(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContentRoadmapCreate) SetCreatedAt(v time.Time) *ContentRoadmapCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContentRoadmapCreate) SetNillableCreatedAt(v *time.Time) *ContentRoadmapCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetGap sets the "gap" edge to the EditorialGap entity.
func (_c *ContentRoadmapCreate) SetGap(v *EditorialGap) *ContentRoadmapCreate {
	return _c.SetGapID(v.ID)
}

// SetRecommendation sets the "recommendation" edge to the ArticleRecommendation entity.
func (_c *ContentRoadmapCreate) SetRecommendation(v *ArticleRecommendation) *ContentRoadmapCreate {
	return _c.SetRecommendationID(v.ID)
}

// Mutation returns the ContentRoadmapMutation object of the builder.
func (_c *ContentRoadmapCreate) Mutation() *ContentRoadmapMutation {
	return _c.mutation
}

// Save creates the ContentRoadmap in the database.
func (_c *ContentRoadmapCreate) Save(ctx context.Context) (*ContentRoadmap, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentRoadmapCreate) SaveX(ctx context.Context) *ContentRoadmap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentRoadmapCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentRoadmapCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentRoadmapCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contentroadmap.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentRoadmapCreate) check() error {
	if _, ok := _c.mutation.ClientDomain(); !ok {
		return &ValidationError{Name: "client_domain", err: errors.New(`ent: missing required field "ContentRoadmap.client_domain"`)}
	}
	if _, ok := _c.mutation.GapID(); !ok {
		return &ValidationError{Name: "gap_id", err: errors.New(`ent: missing required field "ContentRoadmap.gap_id"`)}
	}
	if _, ok := _c.mutation.RecommendationID(); !ok {
		return &ValidationError{Name: "recommendation_id", err: errors.New(`ent: missing required field "ContentRoadmap.recommendation_id"`)}
	}
	if _, ok := _c.mutation.PriorityOrder(); !ok {
		return &ValidationError{Name: "priority_order", err: errors.New(`ent: missing required field "ContentRoadmap.priority_order"`)}
	}
	if v, ok := _c.mutation.PriorityOrder(); ok {
		if err := contentroadmap.PriorityOrderValidator(v); err != nil {
			return &ValidationError{Name: "priority_order", err: fmt.Errorf(`ent: validator failed for field "ContentRoadmap.priority_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriorityTier(); !ok {
		return &ValidationError{Name: "priority_tier", err: errors.New(`ent: missing required field "ContentRoadmap.priority_tier"`)}
	}
	if v, ok := _c.mutation.PriorityTier(); ok {
		if err := contentroadmap.PriorityTierValidator(v); err != nil {
			return &ValidationError{Name: "priority_tier", err: fmt.Errorf(`ent: validator failed for field "ContentRoadmap.priority_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstimatedEffort(); !ok {
		return &ValidationError{Name: "estimated_effort", err: errors.New(`ent: missing required field "ContentRoadmap.estimated_effort"`)}
	}
	if v, ok := _c.mutation.EstimatedEffort(); ok {
		if err := contentroadmap.EstimatedEffortValidator(v); err != nil {
			return &ValidationError{Name: "estimated_effort", err: fmt.Errorf(`ent: validator failed for field "ContentRoadmap.estimated_effort": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContentRoadmap.created_at"`)}
	}
	if len(_c.mutation.GapIDs()) == 0 {
		return &ValidationError{Name: "gap", err: errors.New(`ent: missing required edge "ContentRoadmap.gap"`)}
	}
	if len(_c.mutation.RecommendationIDs()) == 0 {
		return &ValidationError{Name: "recommendation", err: errors.New(`ent: missing required edge "ContentRoadmap.recommendation"`)}
	}
	return nil
}

func (_c *ContentRoadmapCreate) sqlSave(ctx context.Context) (*ContentRoadmap, error) {
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

func (_c *ContentRoadmapCreate) createSpec() (*ContentRoadmap, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentRoadmap{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentroadmap.Table, sqlgraph.NewFieldSpec(contentroadmap.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ClientDomain(); ok {
		_spec.SetField(contentroadmap.FieldClientDomain, field.TypeString, value)
		_node.ClientDomain = value
	}
	if value, ok := _c.mutation.PriorityOrder(); ok {
		_spec.SetField(contentroadmap.FieldPriorityOrder, field.TypeInt, value)
		_node.PriorityOrder = value
	}
	if value, ok := _c.mutation.PriorityTier(); ok {
		_spec.SetField(contentroadmap.FieldPriorityTier, field.TypeEnum, value)
		_node.PriorityTier = value
	}
	if value, ok := _c.mutation.EstimatedEffort(); ok {
		_spec.SetField(contentroadmap.FieldEstimatedEffort, field.TypeEnum, value)
		_node.EstimatedEffort = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contentroadmap.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.GapIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contentroadmap.GapTable,
			Columns: []string{contentroadmap.GapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.GapID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecommendationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contentroadmap.RecommendationTable,
			Columns: []string{contentroadmap.RecommendationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RecommendationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContentRoadmapCreateBulk is the builder for creating many ContentRoadmap entities in bulk.
type ContentRoadmapCreateBulk struct {
	config
	err      error
	builders []*ContentRoadmapCreate
}

// Save creates the ContentRoadmap entities in the database.
func (_c *ContentRoadmapCreateBulk) Save(ctx context.Context) ([]*ContentRoadmap, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentRoadmap, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentRoadmapMutation)
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
func (_c *ContentRoadmapCreateBulk) SaveX(ctx context.Context) []*ContentRoadmap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentRoadmapCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentRoadmapCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
