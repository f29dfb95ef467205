// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/topictemporalmetrics"
)

// TopicTemporalMetricsCreate is the builder for creating a TopicTemporalMetrics entity.
type TopicTemporalMetricsCreate struct {
	config
	mutation *TopicTemporalMetricsMutation
	hooks    []Hook
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_c *TopicTemporalMetricsCreate) SetTopicClusterID(v int) *TopicTemporalMetricsCreate {
	_c.mutation.SetTopicClusterID(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *TopicTemporalMetricsCreate) SetWindowStart(v time.Time) *TopicTemporalMetricsCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetWindowEnd sets the "window_end" field.
func (_c *TopicTemporalMetricsCreate) SetWindowEnd(v time.Time) *TopicTemporalMetricsCreate {
	_c.mutation.SetWindowEnd(v)
	return _c
}

// SetVolume sets the "volume" field.
func (_c *TopicTemporalMetricsCreate) SetVolume(v int) *TopicTemporalMetricsCreate {
	_c.mutation.SetVolume(v)
	return _c
}

// SetVelocity sets the "velocity" field.
func (_c *TopicTemporalMetricsCreate) SetVelocity(v float64) *TopicTemporalMetricsCreate {
	_c.mutation.SetVelocity(v)
	return _c
}

// SetVelocityTrend sets the "velocity_trend" field.
func (_c *TopicTemporalMetricsCreate) SetVelocityTrend(v string) *TopicTemporalMetricsCreate {
	_c.mutation.SetVelocityTrend(v)
	return _c
}

// SetNillableVelocityTrend sets the "velocity_trend" field if the given value is not nil.
func (_c *TopicTemporalMetricsCreate) SetNillableVelocityTrend(v *string) *TopicTemporalMetricsCreate {
	if v != nil {
		_c.SetVelocityTrend(*v)
	}
	return _c
}

// SetFreshnessRatio sets the "freshness_ratio" field.
func (_c *TopicTemporalMetricsCreate) SetFreshnessRatio(v float64) *TopicTemporalMetricsCreate {
	_c.mutation.SetFreshnessRatio(v)
	return _c
}

// SetSourceDiversity sets the "source_diversity" field.
func (_c *TopicTemporalMetricsCreate) SetSourceDiversity(v int) *TopicTemporalMetricsCreate {
	_c.mutation.SetSourceDiversity(v)
	return _c
}

// SetCohesionScore sets the "cohesion_score" field.
func (_c *TopicTemporalMetricsCreate) SetCohesionScore(v float64) *TopicTemporalMetricsCreate {
	_c.mutation.SetCohesionScore(v)
	return _c
}

// SetPotentialScore sets the "potential_score" field.
func (_c *TopicTemporalMetricsCreate) SetPotentialScore(v float64) *TopicTemporalMetricsCreate {
	_c.mutation.SetPotentialScore(v)
	return _c
}

// SetDriftDetected sets the "drift_detected" field.
func (_c *TopicTemporalMetricsCreate) SetDriftDetected(v bool) *TopicTemporalMetricsCreate {
	_c.mutation.SetDriftDetected(v)
	return _c
}

// SetNillableDriftDetected sets the "drift_detected" field if the given value is not nil.
func (_c *TopicTemporalMetricsCreate) SetNillableDriftDetected(v *bool) *TopicTemporalMetricsCreate {
	if v != nil {
		_c.SetDriftDetected(*v)
	}
	return _c
}

// SetDriftDistance sets the "drift_distance" field.
func (_c *TopicTemporalMetricsCreate) SetDriftDistance(v float64) *TopicTemporalMetricsCreate {
	_c.mutation.SetDriftDistance(v)
	return _c
}

// SetNillableDriftDistance sets the "drift_distance" field if the given value is not nil.
func (_c *TopicTemporalMetricsCreate) SetNillableDriftDistance(v *float64) *TopicTemporalMetricsCreate {
	if v != nil {
		_c.SetDriftDistance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TopicTemporalMetricsCreate) SetCreatedAt(v time.Time) *TopicTemporalMetricsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TopicTemporalMetricsCreate) SetNillableCreatedAt(v *time.Time) *TopicTemporalMetricsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_c *TopicTemporalMetricsCreate) SetClusterID(id int) *TopicTemporalMetricsCreate {
	_c.mutation.SetClusterID(id)
	return _c
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_c *TopicTemporalMetricsCreate) SetCluster(v *TopicCluster) *TopicTemporalMetricsCreate {
	return _c.SetClusterID(v.ID)
}

// Mutation returns the TopicTemporalMetricsMutation object of the builder.
func (_c *TopicTemporalMetricsCreate) Mutation() *TopicTemporalMetricsMutation {
	return _c.mutation
}

// Save creates the TopicTemporalMetrics in the database.
func (_c *TopicTemporalMetricsCreate) Save(ctx context.Context) (*TopicTemporalMetrics, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicTemporalMetricsCreate) SaveX(ctx context.Context) *TopicTemporalMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicTemporalMetricsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicTemporalMetricsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicTemporalMetricsCreate) defaults() {
	if _, ok := _c.mutation.DriftDetected(); !ok {
		v := topictemporalmetrics.DefaultDriftDetected
		_c.mutation.SetDriftDetected(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := topictemporalmetrics.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicTemporalMetricsCreate) check() error {
	if _, ok := _c.mutation.TopicClusterID(); !ok {
		return &ValidationError{Name: "topic_cluster_id", err: errors.New(`ent: missing required field "TopicTemporalMetrics.topic_cluster_id"`)}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "TopicTemporalMetrics.window_start"`)}
	}
	if _, ok := _c.mutation.WindowEnd(); !ok {
		return &ValidationError{Name: "window_end", err: errors.New(`ent: missing required field "TopicTemporalMetrics.window_end"`)}
	}
	if _, ok := _c.mutation.Volume(); !ok {
		return &ValidationError{Name: "volume", err: errors.New(`ent: missing required field "TopicTemporalMetrics.volume"`)}
	}
	if _, ok := _c.mutation.Velocity(); !ok {
		return &ValidationError{Name: "velocity", err: errors.New(`ent: missing required field "TopicTemporalMetrics.velocity"`)}
	}
	if _, ok := _c.mutation.FreshnessRatio(); !ok {
		return &ValidationError{Name: "freshness_ratio", err: errors.New(`ent: missing required field "TopicTemporalMetrics.freshness_ratio"`)}
	}
	if _, ok := _c.mutation.SourceDiversity(); !ok {
		return &ValidationError{Name: "source_diversity", err: errors.New(`ent: missing required field "TopicTemporalMetrics.source_diversity"`)}
	}
	if _, ok := _c.mutation.CohesionScore(); !ok {
		return &ValidationError{Name: "cohesion_score", err: errors.New(`ent: missing required field "TopicTemporalMetrics.cohesion_score"`)}
	}
	if _, ok := _c.mutation.PotentialScore(); !ok {
		return &ValidationError{Name: "potential_score", err: errors.New(`ent: missing required field "TopicTemporalMetrics.potential_score"`)}
	}
	if _, ok := _c.mutation.DriftDetected(); !ok {
		return &ValidationError{Name: "drift_detected", err: errors.New(`ent: missing required field "TopicTemporalMetrics.drift_detected"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TopicTemporalMetrics.created_at"`)}
	}
	if len(_c.mutation.ClusterIDs()) == 0 {
		return &ValidationError{Name: "cluster", err: errors.New(`ent: missing required edge "TopicTemporalMetrics.cluster"`)}
	}
	return nil
}

func (_c *TopicTemporalMetricsCreate) sqlSave(ctx context.Context) (*TopicTemporalMetrics, error) {
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

func (_c *TopicTemporalMetricsCreate) createSpec() (*TopicTemporalMetrics, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicTemporalMetrics{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topictemporalmetrics.Table, sqlgraph.NewFieldSpec(topictemporalmetrics.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(topictemporalmetrics.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.WindowEnd(); ok {
		_spec.SetField(topictemporalmetrics.FieldWindowEnd, field.TypeTime, value)
		_node.WindowEnd = value
	}
	if value, ok := _c.mutation.Volume(); ok {
		_spec.SetField(topictemporalmetrics.FieldVolume, field.TypeInt, value)
		_node.Volume = value
	}
	if value, ok := _c.mutation.Velocity(); ok {
		_spec.SetField(topictemporalmetrics.FieldVelocity, field.TypeFloat64, value)
		_node.Velocity = value
	}
	if value, ok := _c.mutation.VelocityTrend(); ok {
		_spec.SetField(topictemporalmetrics.FieldVelocityTrend, field.TypeString, value)
		_node.VelocityTrend = value
	}
	if value, ok := _c.mutation.FreshnessRatio(); ok {
		_spec.SetField(topictemporalmetrics.FieldFreshnessRatio, field.TypeFloat64, value)
		_node.FreshnessRatio = value
	}
	if value, ok := _c.mutation.SourceDiversity(); ok {
		_spec.SetField(topictemporalmetrics.FieldSourceDiversity, field.TypeInt, value)
		_node.SourceDiversity = value
	}
	if value, ok := _c.mutation.CohesionScore(); ok {
		_spec.SetField(topictemporalmetrics.FieldCohesionScore, field.TypeFloat64, value)
		_node.CohesionScore = value
	}
	if value, ok := _c.mutation.PotentialScore(); ok {
		_spec.SetField(topictemporalmetrics.FieldPotentialScore, field.TypeFloat64, value)
		_node.PotentialScore = value
	}
	if value, ok := _c.mutation.DriftDetected(); ok {
		_spec.SetField(topictemporalmetrics.FieldDriftDetected, field.TypeBool, value)
		_node.DriftDetected = value
	}
	if value, ok := _c.mutation.DriftDistance(); ok {
		_spec.SetField(topictemporalmetrics.FieldDriftDistance, field.TypeFloat64, value)
		_node.DriftDistance = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(topictemporalmetrics.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topictemporalmetrics.ClusterTable,
			Columns: []string{topictemporalmetrics.ClusterColumn},
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

// TopicTemporalMetricsCreateBulk is the builder for creating many TopicTemporalMetrics entities in bulk.
type TopicTemporalMetricsCreateBulk struct {
	config
	err      error
	builders []*TopicTemporalMetricsCreate
}

// Save creates the TopicTemporalMetrics entities in the database.
func (_c *TopicTemporalMetricsCreateBulk) Save(ctx context.Context) ([]*TopicTemporalMetrics, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicTemporalMetrics, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicTemporalMetricsMutation)
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
func (_c *TopicTemporalMetricsCreateBulk) SaveX(ctx context.Context) []*TopicTemporalMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicTemporalMetricsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicTemporalMetricsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
