// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/topictemporalmetrics"
)

// TopicTemporalMetricsUpdate is the builder for updating TopicTemporalMetrics entities.
type TopicTemporalMetricsUpdate struct {
	config
	hooks    []Hook
	mutation *TopicTemporalMetricsMutation
}

// Where appends a list predicates to the TopicTemporalMetricsUpdate builder.
func (_u *TopicTemporalMetricsUpdate) Where(ps ...predicate.TopicTemporalMetrics) *TopicTemporalMetricsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_u *TopicTemporalMetricsUpdate) SetTopicClusterID(v int) *TopicTemporalMetricsUpdate {
	_u.mutation.SetTopicClusterID(v)
	return _u
}

// SetNillableTopicClusterID sets the "topic_cluster_id" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdate) SetNillableTopicClusterID(v *int) *TopicTemporalMetricsUpdate {
	if v != nil {
		_u.SetTopicClusterID(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *TopicTemporalMetricsUpdate) SetWindowStart(v time.Time) *TopicTemporalMetricsUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdate) SetNillableWindowStart(v *time.Time) *TopicTemporalMetricsUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *TopicTemporalMetricsUpdate) SetWindowEnd(v time.Time) *TopicTemporalMetricsUpdate {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdate) SetNillableWindowEnd(v *time.Time) *TopicTemporalMetricsUpdate {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// SetVolume sets the "volume" field.
func (_u *TopicTemporalMetricsUpdate) SetVolume(v int) *TopicTemporalMetricsUpdate {
	_u.mutation.ResetVolume()
	_u.mutation.SetVolume(v)
	return _u
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdate) SetNillableVolume(v *int) *TopicTemporalMetricsUpdate {
	if v != nil {
		_u.SetVolume(*v)
	}
	return _u
}

// AddVolume adds value to the "volume" field.
func (_u *TopicTemporalMetricsUpdate) AddVolume(v int) *TopicTemporalMetricsUpdate {
	_u.mutation.AddVolume(v)
	return _u
}

// SetVelocity sets the "velocity" field.
func (_u *TopicTemporalMetricsUpdate) SetVelocity(v float64) *TopicTemporalMetricsUpdate {
	_u.mutation.ResetVelocity()
	_u.mutation.SetVelocity(v)
	return _u
}

// SetNillableVelocity sets the "velocity" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdate) SetNillableVelocity(v *float64) *TopicTemporalMetricsUpdate {
	if v != nil {
		_u.SetVelocity(*v)
	}
	return _u
}

// AddVelocity adds value to the "velocity" field.
func (_u *TopicTemporalMetricsUpdate) AddVelocity(v float64) *TopicTemporalMetricsUpdate {
	_u.mutation.AddVelocity(v)
	return _u
}

// SetVelocityTrend sets the "velocity_trend" field.
func (_u *TopicTemporalMetricsUpdate) SetVelocityTrend(v string) *TopicTemporalMetricsUpdate {
	_u.mutation.SetVelocityTrend(v)
	return _u
}

// SetNillableVelocityTrend sets the "velocity_trend" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdate) SetNillableVelocityTrend(v *string) *TopicTemporalMetricsUpdate {
	if v != nil {
		_u.SetVelocityTrend(*v)
	}
	return _u
}

// ClearVelocityTrend clears the value of the "velocity_trend" field.
func (_u *TopicTemporalMetricsUpdate) ClearVelocityTrend() *TopicTemporalMetricsUpdate {
	_u.mutation.ClearVelocityTrend()
	return _u
}

// SetFreshnessRatio sets the "freshness_ratio" field.
func (_u *TopicTemporalMetricsUpdate) SetFreshnessRatio(v float64) *TopicTemporalMetricsUpdate {
	_u.mutation.ResetFreshnessRatio()
	_u.mutation.SetFreshnessRatio(v)
	return _u
}

// SetNillableFreshnessRatio sets the "freshness_ratio" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdate) SetNillableFreshnessRatio(v *float64) *TopicTemporalMetricsUpdate {
	if v != nil {
		_u.SetFreshnessRatio(*v)
	}
	return _u
}

// AddFreshnessRatio adds value to the "freshness_ratio" field.
func (_u *TopicTemporalMetricsUpdate) AddFreshnessRatio(v float64) *TopicTemporalMetricsUpdate {
	_u.mutation.AddFreshnessRatio(v)
	return _u
}

// SetSourceDiversity sets the "source_diversity" field.
func (_u *TopicTemporalMetricsUpdate) SetSourceDiversity(v int) *TopicTemporalMetricsUpdate {
	_u.mutation.ResetSourceDiversity()
	_u.mutation.SetSourceDiversity(v)
	return _u
}

// SetNillableSourceDiversity sets the "source_diversity" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdate) SetNillableSourceDiversity(v *int) *TopicTemporalMetricsUpdate {
	if v != nil {
		_u.SetSourceDiversity(*v)
	}
	return _u
}

// AddSourceDiversity adds value to the "source_diversity" field.
func (_u *TopicTemporalMetricsUpdate) AddSourceDiversity(v int) *TopicTemporalMetricsUpdate {
	_u.mutation.AddSourceDiversity(v)
	return _u
}

// SetCohesionScore sets the "cohesion_score" field.
func (_u *TopicTemporalMetricsUpdate) SetCohesionScore(v float64) *TopicTemporalMetricsUpdate {
	_u.mutation.ResetCohesionScore()
	_u.mutation.SetCohesionScore(v)
	return _u
}

// SetNillableCohesionScore sets the "cohesion_score" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdate) SetNillableCohesionScore(v *float64) *TopicTemporalMetricsUpdate {
	if v != nil {
		_u.SetCohesionScore(*v)
	}
	return _u
}

// AddCohesionScore adds value to the "cohesion_score" field.
func (_u *TopicTemporalMetricsUpdate) AddCohesionScore(v float64) *TopicTemporalMetricsUpdate {
	_u.mutation.AddCohesionScore(v)
	return _u
}

// SetPotentialScore sets the "potential_score" field.
func (_u *TopicTemporalMetricsUpdate) SetPotentialScore(v float64) *TopicTemporalMetricsUpdate {
	_u.mutation.ResetPotentialScore()
	_u.mutation.SetPotentialScore(v)
	return _u
}

// SetNillablePotentialScore sets the "potential_score" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdate) SetNillablePotentialScore(v *float64) *TopicTemporalMetricsUpdate {
	if v != nil {
		_u.SetPotentialScore(*v)
	}
	return _u
}

// AddPotentialScore adds value to the "potential_score" field.
func (_u *TopicTemporalMetricsUpdate) AddPotentialScore(v float64) *TopicTemporalMetricsUpdate {
	_u.mutation.AddPotentialScore(v)
	return _u
}

// SetDriftDetected sets the "drift_detected" field.
func (_u *TopicTemporalMetricsUpdate) SetDriftDetected(v bool) *TopicTemporalMetricsUpdate {
	_u.mutation.SetDriftDetected(v)
	return _u
}

// SetNillableDriftDetected sets the "drift_detected" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdate) SetNillableDriftDetected(v *bool) *TopicTemporalMetricsUpdate {
	if v != nil {
		_u.SetDriftDetected(*v)
	}
	return _u
}

// SetDriftDistance sets the "drift_distance" field.
func (_u *TopicTemporalMetricsUpdate) SetDriftDistance(v float64) *TopicTemporalMetricsUpdate {
	_u.mutation.ResetDriftDistance()
	_u.mutation.SetDriftDistance(v)
	return _u
}

// SetNillableDriftDistance sets the "drift_distance" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdate) SetNillableDriftDistance(v *float64) *TopicTemporalMetricsUpdate {
	if v != nil {
		_u.SetDriftDistance(*v)
	}
	return _u
}

// AddDriftDistance adds value to the "drift_distance" field.
func (_u *TopicTemporalMetricsUpdate) AddDriftDistance(v float64) *TopicTemporalMetricsUpdate {
	_u.mutation.AddDriftDistance(v)
	return _u
}

// ClearDriftDistance clears the value of the "drift_distance" field.
func (_u *TopicTemporalMetricsUpdate) ClearDriftDistance() *TopicTemporalMetricsUpdate {
	_u.mutation.ClearDriftDistance()
	return _u
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_u *TopicTemporalMetricsUpdate) SetClusterID(id int) *TopicTemporalMetricsUpdate {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_u *TopicTemporalMetricsUpdate) SetCluster(v *TopicCluster) *TopicTemporalMetricsUpdate {
	return _u.SetClusterID(v.ID)
}

// Mutation returns the TopicTemporalMetricsMutation object of the builder.
func (_u *TopicTemporalMetricsUpdate) Mutation() *TopicTemporalMetricsMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (_u *TopicTemporalMetricsUpdate) ClearCluster() *TopicTemporalMetricsUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicTemporalMetricsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicTemporalMetricsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicTemporalMetricsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicTemporalMetricsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicTemporalMetricsUpdate) check() error {
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TopicTemporalMetrics.cluster"`)
	}
	return nil
}

func (_u *TopicTemporalMetricsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topictemporalmetrics.Table, topictemporalmetrics.Columns, sqlgraph.NewFieldSpec(topictemporalmetrics.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(topictemporalmetrics.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(topictemporalmetrics.FieldWindowEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Volume(); ok {
		_spec.SetField(topictemporalmetrics.FieldVolume, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVolume(); ok {
		_spec.AddField(topictemporalmetrics.FieldVolume, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Velocity(); ok {
		_spec.SetField(topictemporalmetrics.FieldVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVelocity(); ok {
		_spec.AddField(topictemporalmetrics.FieldVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VelocityTrend(); ok {
		_spec.SetField(topictemporalmetrics.FieldVelocityTrend, field.TypeString, value)
	}
	if _u.mutation.VelocityTrendCleared() {
		_spec.ClearField(topictemporalmetrics.FieldVelocityTrend, field.TypeString)
	}
	if value, ok := _u.mutation.FreshnessRatio(); ok {
		_spec.SetField(topictemporalmetrics.FieldFreshnessRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreshnessRatio(); ok {
		_spec.AddField(topictemporalmetrics.FieldFreshnessRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceDiversity(); ok {
		_spec.SetField(topictemporalmetrics.FieldSourceDiversity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceDiversity(); ok {
		_spec.AddField(topictemporalmetrics.FieldSourceDiversity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CohesionScore(); ok {
		_spec.SetField(topictemporalmetrics.FieldCohesionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCohesionScore(); ok {
		_spec.AddField(topictemporalmetrics.FieldCohesionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PotentialScore(); ok {
		_spec.SetField(topictemporalmetrics.FieldPotentialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPotentialScore(); ok {
		_spec.AddField(topictemporalmetrics.FieldPotentialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DriftDetected(); ok {
		_spec.SetField(topictemporalmetrics.FieldDriftDetected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DriftDistance(); ok {
		_spec.SetField(topictemporalmetrics.FieldDriftDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDriftDistance(); ok {
		_spec.AddField(topictemporalmetrics.FieldDriftDistance, field.TypeFloat64, value)
	}
	if _u.mutation.DriftDistanceCleared() {
		_spec.ClearField(topictemporalmetrics.FieldDriftDistance, field.TypeFloat64)
	}
	if _u.mutation.ClusterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topictemporalmetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicTemporalMetricsUpdateOne is the builder for updating a single TopicTemporalMetrics entity.
type TopicTemporalMetricsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicTemporalMetricsMutation
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_u *TopicTemporalMetricsUpdateOne) SetTopicClusterID(v int) *TopicTemporalMetricsUpdateOne {
	_u.mutation.SetTopicClusterID(v)
	return _u
}

// SetNillableTopicClusterID sets the "topic_cluster_id" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdateOne) SetNillableTopicClusterID(v *int) *TopicTemporalMetricsUpdateOne {
	if v != nil {
		_u.SetTopicClusterID(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *TopicTemporalMetricsUpdateOne) SetWindowStart(v time.Time) *TopicTemporalMetricsUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdateOne) SetNillableWindowStart(v *time.Time) *TopicTemporalMetricsUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *TopicTemporalMetricsUpdateOne) SetWindowEnd(v time.Time) *TopicTemporalMetricsUpdateOne {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdateOne) SetNillableWindowEnd(v *time.Time) *TopicTemporalMetricsUpdateOne {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// SetVolume sets the "volume" field.
func (_u *TopicTemporalMetricsUpdateOne) SetVolume(v int) *TopicTemporalMetricsUpdateOne {
	_u.mutation.ResetVolume()
	_u.mutation.SetVolume(v)
	return _u
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdateOne) SetNillableVolume(v *int) *TopicTemporalMetricsUpdateOne {
	if v != nil {
		_u.SetVolume(*v)
	}
	return _u
}

// AddVolume adds value to the "volume" field.
func (_u *TopicTemporalMetricsUpdateOne) AddVolume(v int) *TopicTemporalMetricsUpdateOne {
	_u.mutation.AddVolume(v)
	return _u
}

// SetVelocity sets the "velocity" field.
func (_u *TopicTemporalMetricsUpdateOne) SetVelocity(v float64) *TopicTemporalMetricsUpdateOne {
	_u.mutation.ResetVelocity()
	_u.mutation.SetVelocity(v)
	return _u
}

// SetNillableVelocity sets the "velocity" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdateOne) SetNillableVelocity(v *float64) *TopicTemporalMetricsUpdateOne {
	if v != nil {
		_u.SetVelocity(*v)
	}
	return _u
}

// AddVelocity adds value to the "velocity" field.
func (_u *TopicTemporalMetricsUpdateOne) AddVelocity(v float64) *TopicTemporalMetricsUpdateOne {
	_u.mutation.AddVelocity(v)
	return _u
}

// SetVelocityTrend sets the "velocity_trend" field.
func (_u *TopicTemporalMetricsUpdateOne) SetVelocityTrend(v string) *TopicTemporalMetricsUpdateOne {
	_u.mutation.SetVelocityTrend(v)
	return _u
}

// SetNillableVelocityTrend sets the "velocity_trend" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdateOne) SetNillableVelocityTrend(v *string) *TopicTemporalMetricsUpdateOne {
	if v != nil {
		_u.SetVelocityTrend(*v)
	}
	return _u
}

// ClearVelocityTrend clears the value of the "velocity_trend" field.
func (_u *TopicTemporalMetricsUpdateOne) ClearVelocityTrend() *TopicTemporalMetricsUpdateOne {
	_u.mutation.ClearVelocityTrend()
	return _u
}

// SetFreshnessRatio sets the "freshness_ratio" field.
func (_u *TopicTemporalMetricsUpdateOne) SetFreshnessRatio(v float64) *TopicTemporalMetricsUpdateOne {
	_u.mutation.ResetFreshnessRatio()
	_u.mutation.SetFreshnessRatio(v)
	return _u
}

// SetNillableFreshnessRatio sets the "freshness_ratio" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdateOne) SetNillableFreshnessRatio(v *float64) *TopicTemporalMetricsUpdateOne {
	if v != nil {
		_u.SetFreshnessRatio(*v)
	}
	return _u
}

// AddFreshnessRatio adds value to the "freshness_ratio" field.
func (_u *TopicTemporalMetricsUpdateOne) AddFreshnessRatio(v float64) *TopicTemporalMetricsUpdateOne {
	_u.mutation.AddFreshnessRatio(v)
	return _u
}

// SetSourceDiversity sets the "source_diversity" field.
func (_u *TopicTemporalMetricsUpdateOne) SetSourceDiversity(v int) *TopicTemporalMetricsUpdateOne {
	_u.mutation.ResetSourceDiversity()
	_u.mutation.SetSourceDiversity(v)
	return _u
}

// SetNillableSourceDiversity sets the "source_diversity" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdateOne) SetNillableSourceDiversity(v *int) *TopicTemporalMetricsUpdateOne {
	if v != nil {
		_u.SetSourceDiversity(*v)
	}
	return _u
}

// AddSourceDiversity adds value to the "source_diversity" field.
func (_u *TopicTemporalMetricsUpdateOne) AddSourceDiversity(v int) *TopicTemporalMetricsUpdateOne {
	_u.mutation.AddSourceDiversity(v)
	return _u
}

// SetCohesionScore sets the "cohesion_score" field.
func (_u *TopicTemporalMetricsUpdateOne) SetCohesionScore(v float64) *TopicTemporalMetricsUpdateOne {
	_u.mutation.ResetCohesionScore()
	_u.mutation.SetCohesionScore(v)
	return _u
}

// SetNillableCohesionScore sets the "cohesion_score" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdateOne) SetNillableCohesionScore(v *float64) *TopicTemporalMetricsUpdateOne {
	if v != nil {
		_u.SetCohesionScore(*v)
	}
	return _u
}

// AddCohesionScore adds value to the "cohesion_score" field.
func (_u *TopicTemporalMetricsUpdateOne) AddCohesionScore(v float64) *TopicTemporalMetricsUpdateOne {
	_u.mutation.AddCohesionScore(v)
	return _u
}

// SetPotentialScore sets the "potential_score" field.
func (_u *TopicTemporalMetricsUpdateOne) SetPotentialScore(v float64) *TopicTemporalMetricsUpdateOne {
	_u.mutation.ResetPotentialScore()
	_u.mutation.SetPotentialScore(v)
	return _u
}

// SetNillablePotentialScore sets the "potential_score" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdateOne) SetNillablePotentialScore(v *float64) *TopicTemporalMetricsUpdateOne {
	if v != nil {
		_u.SetPotentialScore(*v)
	}
	return _u
}

// AddPotentialScore adds value to the "potential_score" field.
func (_u *TopicTemporalMetricsUpdateOne) AddPotentialScore(v float64) *TopicTemporalMetricsUpdateOne {
	_u.mutation.AddPotentialScore(v)
	return _u
}

// SetDriftDetected sets the "drift_detected" field.
func (_u *TopicTemporalMetricsUpdateOne) SetDriftDetected(v bool) *TopicTemporalMetricsUpdateOne {
	_u.mutation.SetDriftDetected(v)
	return _u
}

// SetNillableDriftDetected sets the "drift_detected" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdateOne) SetNillableDriftDetected(v *bool) *TopicTemporalMetricsUpdateOne {
	if v != nil {
		_u.SetDriftDetected(*v)
	}
	return _u
}

// SetDriftDistance sets the "drift_distance" field.
func (_u *TopicTemporalMetricsUpdateOne) SetDriftDistance(v float64) *TopicTemporalMetricsUpdateOne {
	_u.mutation.ResetDriftDistance()
	_u.mutation.SetDriftDistance(v)
	return _u
}

// SetNillableDriftDistance sets the "drift_distance" field if the given value is not nil.
func (_u *TopicTemporalMetricsUpdateOne) SetNillableDriftDistance(v *float64) *TopicTemporalMetricsUpdateOne {
	if v != nil {
		_u.SetDriftDistance(*v)
	}
	return _u
}

// AddDriftDistance adds value to the "drift_distance" field.
func (_u *TopicTemporalMetricsUpdateOne) AddDriftDistance(v float64) *TopicTemporalMetricsUpdateOne {
	_u.mutation.AddDriftDistance(v)
	return _u
}

// ClearDriftDistance clears the value of the "drift_distance" field.
func (_u *TopicTemporalMetricsUpdateOne) ClearDriftDistance() *TopicTemporalMetricsUpdateOne {
	_u.mutation.ClearDriftDistance()
	return _u
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_u *TopicTemporalMetricsUpdateOne) SetClusterID(id int) *TopicTemporalMetricsUpdateOne {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_u *TopicTemporalMetricsUpdateOne) SetCluster(v *TopicCluster) *TopicTemporalMetricsUpdateOne {
	return _u.SetClusterID(v.ID)
}

// Mutation returns the TopicTemporalMetricsMutation object of the builder.
func (_u *TopicTemporalMetricsUpdateOne) Mutation() *TopicTemporalMetricsMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (_u *TopicTemporalMetricsUpdateOne) ClearCluster() *TopicTemporalMetricsUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// Where appends a list predicates to the TopicTemporalMetricsUpdate builder.
func (_u *TopicTemporalMetricsUpdateOne) Where(ps ...predicate.TopicTemporalMetrics) *TopicTemporalMetricsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicTemporalMetricsUpdateOne) Select(field string, fields ...string) *TopicTemporalMetricsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicTemporalMetrics entity.
func (_u *TopicTemporalMetricsUpdateOne) Save(ctx context.Context) (*TopicTemporalMetrics, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicTemporalMetricsUpdateOne) SaveX(ctx context.Context) *TopicTemporalMetrics {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicTemporalMetricsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicTemporalMetricsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicTemporalMetricsUpdateOne) check() error {
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TopicTemporalMetrics.cluster"`)
	}
	return nil
}

func (_u *TopicTemporalMetricsUpdateOne) sqlSave(ctx context.Context) (_node *TopicTemporalMetrics, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topictemporalmetrics.Table, topictemporalmetrics.Columns, sqlgraph.NewFieldSpec(topictemporalmetrics.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicTemporalMetrics.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topictemporalmetrics.FieldID)
		for _, f := range fields {
			if !topictemporalmetrics.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topictemporalmetrics.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(topictemporalmetrics.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(topictemporalmetrics.FieldWindowEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Volume(); ok {
		_spec.SetField(topictemporalmetrics.FieldVolume, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVolume(); ok {
		_spec.AddField(topictemporalmetrics.FieldVolume, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Velocity(); ok {
		_spec.SetField(topictemporalmetrics.FieldVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVelocity(); ok {
		_spec.AddField(topictemporalmetrics.FieldVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VelocityTrend(); ok {
		_spec.SetField(topictemporalmetrics.FieldVelocityTrend, field.TypeString, value)
	}
	if _u.mutation.VelocityTrendCleared() {
		_spec.ClearField(topictemporalmetrics.FieldVelocityTrend, field.TypeString)
	}
	if value, ok := _u.mutation.FreshnessRatio(); ok {
		_spec.SetField(topictemporalmetrics.FieldFreshnessRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreshnessRatio(); ok {
		_spec.AddField(topictemporalmetrics.FieldFreshnessRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceDiversity(); ok {
		_spec.SetField(topictemporalmetrics.FieldSourceDiversity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceDiversity(); ok {
		_spec.AddField(topictemporalmetrics.FieldSourceDiversity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CohesionScore(); ok {
		_spec.SetField(topictemporalmetrics.FieldCohesionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCohesionScore(); ok {
		_spec.AddField(topictemporalmetrics.FieldCohesionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PotentialScore(); ok {
		_spec.SetField(topictemporalmetrics.FieldPotentialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPotentialScore(); ok {
		_spec.AddField(topictemporalmetrics.FieldPotentialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DriftDetected(); ok {
		_spec.SetField(topictemporalmetrics.FieldDriftDetected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DriftDistance(); ok {
		_spec.SetField(topictemporalmetrics.FieldDriftDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDriftDistance(); ok {
		_spec.AddField(topictemporalmetrics.FieldDriftDistance, field.TypeFloat64, value)
	}
	if _u.mutation.DriftDistanceCleared() {
		_spec.ClearField(topictemporalmetrics.FieldDriftDistance, field.TypeFloat64)
	}
	if _u.mutation.ClusterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TopicTemporalMetrics{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topictemporalmetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
