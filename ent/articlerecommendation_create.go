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
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// ArticleRecommendationCreate is the builder for creating a ArticleRecommendation entity.
type ArticleRecommendationCreate struct {
	config
	mutation *ArticleRecommendationMutation
	hooks    []Hook
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_c *ArticleRecommendationCreate) SetTopicClusterID(v int) *ArticleRecommendationCreate {
	_c.mutation.SetTopicClusterID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ArticleRecommendationCreate) SetTitle(v string) *ArticleRecommendationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetHook sets the "hook" field.
func (_c *ArticleRecommendationCreate) SetHook(v string) *ArticleRecommendationCreate {
	_c.mutation.SetHook(v)
	return _c
}

// SetNillableHook sets the "hook" field if the given value is not nil.
func (_c *ArticleRecommendationCreate) SetNillableHook(v *string) *ArticleRecommendationCreate {
	if v != nil {
		_c.SetHook(*v)
	}
	return _c
}

// SetOutline sets the "outline" field.
func (_c *ArticleRecommendationCreate) SetOutline(v []string) *ArticleRecommendationCreate {
	_c.mutation.SetOutline(v)
	return _c
}

// SetDifferentiationScore sets the "differentiation_score" field.
func (_c *ArticleRecommendationCreate) SetDifferentiationScore(v float64) *ArticleRecommendationCreate {
	_c.mutation.SetDifferentiationScore(v)
	return _c
}

// SetNillableDifferentiationScore sets the "differentiation_score" field if the given value is not nil.
func (_c *ArticleRecommendationCreate) SetNillableDifferentiationScore(v *float64) *ArticleRecommendationCreate {
	if v != nil {
		_c.SetDifferentiationScore(*v)
	}
	return _c
}

// SetEffortLevel sets the "effort_level" field.
func (_c *ArticleRecommendationCreate) SetEffortLevel(v articlerecommendation.EffortLevel) *ArticleRecommendationCreate {
	_c.mutation.SetEffortLevel(v)
	return _c
}

// SetNillableEffortLevel sets the "effort_level" field if the given value is not nil.
func (_c *ArticleRecommendationCreate) SetNillableEffortLevel(v *articlerecommendation.EffortLevel) *ArticleRecommendationCreate {
	if v != nil {
		_c.SetEffortLevel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ArticleRecommendationCreate) SetStatus(v articlerecommendation.Status) *ArticleRecommendationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ArticleRecommendationCreate) SetNillableStatus(v *articlerecommendation.Status) *ArticleRecommendationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArticleRecommendationCreate) SetCreatedAt(v time.Time) *ArticleRecommendationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArticleRecommendationCreate) SetNillableCreatedAt(v *time.Time) *ArticleRecommendationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_c *ArticleRecommendationCreate) SetClusterID(id int) *ArticleRecommendationCreate {
	_c.mutation.SetClusterID(id)
	return _c
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_c *ArticleRecommendationCreate) SetCluster(v *TopicCluster) *ArticleRecommendationCreate {
	return _c.SetClusterID(v.ID)
}

// AddRoadmapEntryIDs adds the "roadmap_entries" edge to the ContentRoadmap entity by IDs.
func (_c *ArticleRecommendationCreate) AddRoadmapEntryIDs(ids ...int) *ArticleRecommendationCreate {
	_c.mutation.AddRoadmapEntryIDs(ids...)
	return _c
}

// AddRoadmapEntries adds the "roadmap_entries" edges to the ContentRoadmap entity.
func (_c *ArticleRecommendationCreate) AddRoadmapEntries(v ...*ContentRoadmap) *ArticleRecommendationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRoadmapEntryIDs(ids...)
}

// Mutation returns the ArticleRecommendationMutation object of the builder.
func (_c *ArticleRecommendationCreate) Mutation() *ArticleRecommendationMutation {
	return _c.mutation
}

// Save creates the ArticleRecommendation in the database.
func (_c *ArticleRecommendationCreate) Save(ctx context.Context) (*ArticleRecommendation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArticleRecommendationCreate) SaveX(ctx context.Context) *ArticleRecommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArticleRecommendationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArticleRecommendationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArticleRecommendationCreate) defaults() {
	if _, ok := _c.mutation.DifferentiationScore(); !ok {
		v := articlerecommendation.DefaultDifferentiationScore
		_c.mutation.SetDifferentiationScore(v)
	}
	if _, ok := _c.mutation.EffortLevel(); !ok {
		v := articlerecommendation.DefaultEffortLevel
		_c.mutation.SetEffortLevel(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := articlerecommendation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := articlerecommendation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArticleRecommendationCreate) check() error {
	if _, ok := _c.mutation.TopicClusterID(); !ok {
		return &ValidationError{Name: "topic_cluster_id", err: errors.New(`ent: missing required field "ArticleRecommendation.topic_cluster_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ArticleRecommendation.title"`)}
	}
	if _, ok := _c.mutation.DifferentiationScore(); !ok {
		return &ValidationError{Name: "differentiation_score", err: errors.New(`ent: missing required field "ArticleRecommendation.differentiation_score"`)}
	}
	if _, ok := _c.mutation.EffortLevel(); !ok {
		return &ValidationError{Name: "effort_level", err: errors.New(`ent: missing required field "ArticleRecommendation.effort_level"`)}
	}
	if v, ok := _c.mutation.EffortLevel(); ok {
		if err := articlerecommendation.EffortLevelValidator(v); err != nil {
			return &ValidationError{Name: "effort_level", err: fmt.Errorf(`ent: validator failed for field "ArticleRecommendation.effort_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ArticleRecommendation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := articlerecommendation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ArticleRecommendation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ArticleRecommendation.created_at"`)}
	}
	if len(_c.mutation.ClusterIDs()) == 0 {
		return &ValidationError{Name: "cluster", err: errors.New(`ent: missing required edge "ArticleRecommendation.cluster"`)}
	}
	return nil
}

func (_c *ArticleRecommendationCreate) sqlSave(ctx context.Context) (*ArticleRecommendation, error) {
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

func (_c *ArticleRecommendationCreate) createSpec() (*ArticleRecommendation, *sqlgraph.CreateSpec) {
	var (
		_node = &ArticleRecommendation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(articlerecommendation.Table, sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(articlerecommendation.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Hook(); ok {
		_spec.SetField(articlerecommendation.FieldHook, field.TypeString, value)
		_node.Hook = value
	}
	if value, ok := _c.mutation.Outline(); ok {
		_spec.SetField(articlerecommendation.FieldOutline, field.TypeJSON, value)
		_node.Outline = value
	}
	if value, ok := _c.mutation.DifferentiationScore(); ok {
		_spec.SetField(articlerecommendation.FieldDifferentiationScore, field.TypeFloat64, value)
		_node.DifferentiationScore = value
	}
	if value, ok := _c.mutation.EffortLevel(); ok {
		_spec.SetField(articlerecommendation.FieldEffortLevel, field.TypeEnum, value)
		_node.EffortLevel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(articlerecommendation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(articlerecommendation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   articlerecommendation.ClusterTable,
			Columns: []string{articlerecommendation.ClusterColumn},
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
			Table:   articlerecommendation.RoadmapEntriesTable,
			Columns: []string{articlerecommendation.RoadmapEntriesColumn},
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

// ArticleRecommendationCreateBulk is the builder for creating many ArticleRecommendation entities in bulk.
type ArticleRecommendationCreateBulk struct {
	config
	err      error
	builders []*ArticleRecommendationCreate
}

// Save creates the ArticleRecommendation entities in the database.
func (_c *ArticleRecommendationCreateBulk) Save(ctx context.Context) ([]*ArticleRecommendation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ArticleRecommendation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArticleRecommendationMutation)
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
func (_c *ArticleRecommendationCreateBulk) SaveX(ctx context.Context) []*ArticleRecommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArticleRecommendationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArticleRecommendationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
