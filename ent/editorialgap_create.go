// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// EditorialGapCreate is the builder for creating a EditorialGap entity.
type EditorialGapCreate struct {
	config
	mutation *EditorialGapMutation
	hooks    []Hook
}

// SetClientDomain sets the "client_domain" field.
func (_c *EditorialGapCreate) SetClientDomain(v string) *EditorialGapCreate {
	_c.mutation.SetClientDomain(v)
	return _c
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_c *EditorialGapCreate) SetTopicClusterID(v int) *EditorialGapCreate {
	_c.mutation.SetTopicClusterID(v)
	return _c
}

// SetClientCount sets the "client_count" field.
func (_c *EditorialGapCreate) SetClientCount(v int) *EditorialGapCreate {
	_c.mutation.SetClientCount(v)
	return _c
}

// SetCompetitorCount sets the "competitor_count" field.
func (_c *EditorialGapCreate) SetCompetitorCount(v int) *EditorialGapCreate {
	_c.mutation.SetCompetitorCount(v)
	return _c
}

// SetAvgCompetitor sets the "avg_competitor" field.
func (_c *EditorialGapCreate) SetAvgCompetitor(v float64) *EditorialGapCreate {
	_c.mutation.SetAvgCompetitor(v)
	return _c
}

// SetCoverageScore sets the "coverage_score" field.
func (_c *EditorialGapCreate) SetCoverageScore(v float64) *EditorialGapCreate {
	_c.mutation.SetCoverageScore(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *EditorialGapCreate) SetLevel(v editorialgap.Level) *EditorialGapCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetPriorityScore sets the "priority_score" field.
func (_c *EditorialGapCreate) SetPriorityScore(v float64) *EditorialGapCreate {
	_c.mutation.SetPriorityScore(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EditorialGapCreate) SetCreatedAt(v time.Time) *EditorialGapCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EditorialGapCreate) SetNillableCreatedAt(v *time.Time) *EditorialGapCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_c *EditorialGapCreate) SetClusterID(id int) *EditorialGapCreate {
	_c.mutation.SetClusterID(id)
	return _c
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_c *EditorialGapCreate) SetCluster(v *TopicCluster) *EditorialGapCreate {
	return _c.SetClusterID(v.ID)
}

// AddRoadmapEntryIDs adds the "roadmap_entries" edge to the ContentRoadmap entity by IDs.
func (_c *EditorialGapCreate) AddRoadmapEntryIDs(ids ...int) *EditorialGapCreate {
	_c.mutation.AddRoadmapEntryIDs(ids...)
	return _c
}

// AddRoadmapEntries adds the "roadmap_entries" edges to the ContentRoadmap entity.
func (_c *EditorialGapCreate) AddRoadmapEntries(v ...*ContentRoadmap) *EditorialGapCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRoadmapEntryIDs(ids...)
}

// Mutation returns the EditorialGapMutation object of the builder.
func (_c *EditorialGapCreate) Mutation() *EditorialGapMutation {
	return _c.mutation
}

// Save creates the EditorialGap in the database.
func (_c *EditorialGapCreate) Save(ctx context.Context) (*EditorialGap, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EditorialGapCreate) SaveX(ctx context.Context) *EditorialGap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EditorialGapCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EditorialGapCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EditorialGapCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := editorialgap.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EditorialGapCreate) check() error {
	if _, ok := _c.mutation.ClientDomain(); !ok {
		return &ValidationError{Name: "client_domain", err: errors.New(`ent: missing required field "EditorialGap.client_domain"`)}
	}
	if _, ok := _c.mutation.TopicClusterID(); !ok {
		return &ValidationError{Name: "topic_cluster_id", err: errors.New(`ent: missing required field "EditorialGap.topic_cluster_id"`)}
	}
	if _, ok := _c.mutation.ClientCount(); !ok {
		return &ValidationError{Name: "client_count", err: errors.New(`ent: missing required field "EditorialGap.client_count"`)}
	}
	if _, ok := _c.mutation.CompetitorCount(); !ok {
		return &ValidationError{Name: "competitor_count", err: errors.New(`ent: missing required field "EditorialGap.competitor_count"`)}
	}
	if _, ok := _c.mutation.AvgCompetitor(); !ok {
		return &ValidationError{Name: "avg_competitor", err: errors.New(`ent: missing required field "EditorialGap.avg_competitor"`)}
	}
	if _, ok := _c.mutation.CoverageScore(); !ok {
		return &ValidationError{Name: "coverage_score", err: errors.New(`ent: missing required field "EditorialGap.coverage_score"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "EditorialGap.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := editorialgap.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "EditorialGap.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriorityScore(); !ok {
		return &ValidationError{Name: "priority_score", err: errors.New(`ent: missing required field "EditorialGap.priority_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EditorialGap.created_at"`)}
	}
	if len(_c.mutation.ClusterIDs()) == 0 {
		return &ValidationError{Name: "cluster", err: errors.New(`ent: missing required edge "EditorialGap.cluster"`)}
	}
	return nil
}

func (_c *EditorialGapCreate) sqlSave(ctx context.Context) (*EditorialGap, error) {
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

func (_c *EditorialGapCreate) createSpec() (*EditorialGap, *sqlgraph.CreateSpec) {
	var (
		_node = &EditorialGap{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(editorialgap.Table, sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ClientDomain(); ok {
		_spec.SetField(editorialgap.FieldClientDomain, field.TypeString, value)
		_node.ClientDomain = value
	}
	if value, ok := _c.mutation.ClientCount(); ok {
		_spec.SetField(editorialgap.FieldClientCount, field.TypeInt, value)
		_node.ClientCount = value
	}
	if value, ok := _c.mutation.CompetitorCount(); ok {
		_spec.SetField(editorialgap.FieldCompetitorCount, field.TypeInt, value)
		_node.CompetitorCount = value
	}
	if value, ok := _c.mutation.AvgCompetitor(); ok {
		_spec.SetField(editorialgap.FieldAvgCompetitor, field.TypeFloat64, value)
		_node.AvgCompetitor = value
	}
	if value, ok := _c.mutation.CoverageScore(); ok {
		_spec.SetField(editorialgap.FieldCoverageScore, field.TypeFloat64, value)
		_node.CoverageScore = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(editorialgap.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.PriorityScore(); ok {
		_spec.SetField(editorialgap.FieldPriorityScore, field.TypeFloat64, value)
		_node.PriorityScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(editorialgap.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   editorialgap.ClusterTable,
			Columns: []string{editorialgap.ClusterColumn},
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
	if nodes := _c.mutation.RoadmapEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   editorialgap.RoadmapEntriesTable,
			Columns: []string{editorialgap.RoadmapEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentroadmap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EditorialGapCreateBulk is the builder for creating many EditorialGap entities in bulk.
type EditorialGapCreateBulk struct {
	config
	err      error
	builders []*EditorialGapCreate
}

// Save creates the EditorialGap entities in the database.
func (_c *EditorialGapCreateBulk) Save(ctx context.Context) ([]*EditorialGap, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EditorialGap, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EditorialGapMutation)
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
func (_c *EditorialGapCreateBulk) SaveX(ctx context.Context) []*EditorialGap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EditorialGapCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EditorialGapCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
