// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/clientstrength"
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// ClientStrengthCreate is the builder for creating a ClientStrength entity.
type ClientStrengthCreate struct {
	config
	mutation *ClientStrengthMutation
	hooks    []Hook
}

// SetClientDomain sets the "client_domain" field.
func (_c *ClientStrengthCreate) SetClientDomain(v string) *ClientStrengthCreate {
	_c.mutation.SetClientDomain(v)
	return _c
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_c *ClientStrengthCreate) SetTopicClusterID(v int) *ClientStrengthCreate {
	_c.mutation.SetTopicClusterID(v)
	return _c
}

// SetClientCount sets the "client_count" field.
func (_c *ClientStrengthCreate) SetClientCount(v int) *ClientStrengthCreate {
	_c.mutation.SetClientCount(v)
	return _c
}

// SetCompetitorCount sets the "competitor_count" field.
func (_c *ClientStrengthCreate) SetCompetitorCount(v int) *ClientStrengthCreate {
	_c.mutation.SetCompetitorCount(v)
	return _c
}

// SetCoverageScore sets the "coverage_score" field.
func (_c *ClientStrengthCreate) SetCoverageScore(v float64) *ClientStrengthCreate {
	_c.mutation.SetCoverageScore(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClientStrengthCreate) SetCreatedAt(v time.Time) *ClientStrengthCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClientStrengthCreate) SetNillableCreatedAt(v *time.Time) *ClientStrengthCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_c *ClientStrengthCreate) SetClusterID(id int) *ClientStrengthCreate {
	_c.mutation.SetClusterID(id)
	return _c
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_c *ClientStrengthCreate) SetCluster(v *TopicCluster) *ClientStrengthCreate {
	return _c.SetClusterID(v.ID)
}

// Mutation returns the ClientStrengthMutation object of the builder.
func (_c *ClientStrengthCreate) Mutation() *ClientStrengthMutation {
	return _c.mutation
}

// Save creates the ClientStrength in the database.
func (_c *ClientStrengthCreate) Save(ctx context.Context) (*ClientStrength, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClientStrengthCreate) SaveX(ctx context.Context) *ClientStrength {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientStrengthCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientStrengthCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClientStrengthCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clientstrength.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClientStrengthCreate) check() error {
	if _, ok := _c.mutation.ClientDomain(); !ok {
		return &ValidationError{Name: "client_domain", err: errors.New(`ent: missing required field "ClientStrength.client_domain"`)}
	}
	if _, ok := _c.mutation.TopicClusterID(); !ok {
		return &ValidationError{Name: "topic_cluster_id", err: errors.New(`ent: missing required field "ClientStrength.topic_cluster_id"`)}
	}
	if _, ok := _c.mutation.ClientCount(); !ok {
		return &ValidationError{Name: "client_count", err: errors.New(`ent: missing required field "ClientStrength.client_count"`)}
	}
	if _, ok := _c.mutation.CompetitorCount(); !ok {
		return &ValidationError{Name: "competitor_count", err: errors.New(`ent: missing required field "ClientStrength.competitor_count"`)}
	}
	if _, ok := _c.mutation.CoverageScore(); !ok {
		return &ValidationError{Name: "coverage_score", err: errors.New(`ent: missing required field "ClientStrength.coverage_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClientStrength.created_at"`)}
	}
	if len(_c.mutation.ClusterIDs()) == 0 {
		return &ValidationError{Name: "cluster", err: errors.New(`ent: missing required edge "ClientStrength.cluster"`)}
	}
	return nil
}

func (_c *ClientStrengthCreate) sqlSave(ctx context.Context) (*ClientStrength, error) {
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

func (_c *ClientStrengthCreate) createSpec() (*ClientStrength, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientStrength{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clientstrength.Table, sqlgraph.NewFieldSpec(clientstrength.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ClientDomain(); ok {
		_spec.SetField(clientstrength.FieldClientDomain, field.TypeString, value)
		_node.ClientDomain = value
	}
	if value, ok := _c.mutation.ClientCount(); ok {
		_spec.SetField(clientstrength.FieldClientCount, field.TypeInt, value)
		_node.ClientCount = value
	}
	if value, ok := _c.mutation.CompetitorCount(); ok {
		_spec.SetField(clientstrength.FieldCompetitorCount, field.TypeInt, value)
		_node.CompetitorCount = value
	}
	if value, ok := _c.mutation.CoverageScore(); ok {
		_spec.SetField(clientstrength.FieldCoverageScore, field.TypeFloat64, value)
		_node.CoverageScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clientstrength.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clientstrength.ClusterTable,
			Columns: []string{clientstrength.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TopicClusterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClientStrengthCreateBulk is the builder for creating many ClientStrength entities in bulk.
type ClientStrengthCreateBulk struct {
	config
	err      error
	builders []*ClientStrengthCreate
}

// Save creates the ClientStrength entities in the database.
func (_c *ClientStrengthCreateBulk) Save(ctx context.Context) ([]*ClientStrength, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClientStrength, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientStrengthMutation)
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
func (_c *ClientStrengthCreateBulk) SaveX(ctx context.Context) []*ClientStrength {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientStrengthCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientStrengthCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
