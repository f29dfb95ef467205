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
	"github.com/trendscope/trendscope/ent/topicoutlier"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// TrendPipelineExecutionCreate is the builder for creating a TrendPipelineExecution entity.
type TrendPipelineExecutionCreate struct {
	config
	mutation *TrendPipelineExecutionMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *TrendPipelineExecutionCreate) SetExecutionID(v string) *TrendPipelineExecutionCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetClientDomain sets the "client_domain" field.
func (_c *TrendPipelineExecutionCreate) SetClientDomain(v string) *TrendPipelineExecutionCreate {
	_c.mutation.SetClientDomain(v)
	return _c
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableClientDomain(v *string) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetClientDomain(*v)
	}
	return _c
}

// SetDomainsAnalyzed sets the "domains_analyzed" field.
func (_c *TrendPipelineExecutionCreate) SetDomainsAnalyzed(v []string) *TrendPipelineExecutionCreate {
	_c.mutation.SetDomainsAnalyzed(v)
	return _c
}

// SetTimeWindowDays sets the "time_window_days" field.
func (_c *TrendPipelineExecutionCreate) SetTimeWindowDays(v int) *TrendPipelineExecutionCreate {
	_c.mutation.SetTimeWindowDays(v)
	return _c
}

// SetNillableTimeWindowDays sets the "time_window_days" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableTimeWindowDays(v *int) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetTimeWindowDays(*v)
	}
	return _c
}

// SetStage1ClusteringStatus sets the "stage_1_clustering_status" field.
func (_c *TrendPipelineExecutionCreate) SetStage1ClusteringStatus(v trendpipelineexecution.Stage1ClusteringStatus) *TrendPipelineExecutionCreate {
	_c.mutation.SetStage1ClusteringStatus(v)
	return _c
}

// SetNillableStage1ClusteringStatus sets the "stage_1_clustering_status" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableStage1ClusteringStatus(v *trendpipelineexecution.Stage1ClusteringStatus) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetStage1ClusteringStatus(*v)
	}
	return _c
}

// SetStage2TemporalStatus sets the "stage_2_temporal_status" field.
func (_c *TrendPipelineExecutionCreate) SetStage2TemporalStatus(v trendpipelineexecution.Stage2TemporalStatus) *TrendPipelineExecutionCreate {
	_c.mutation.SetStage2TemporalStatus(v)
	return _c
}

// SetNillableStage2TemporalStatus sets the "stage_2_temporal_status" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableStage2TemporalStatus(v *trendpipelineexecution.Stage2TemporalStatus) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetStage2TemporalStatus(*v)
	}
	return _c
}

// SetStage3LlmStatus sets the "stage_3_llm_status" field.
func (_c *TrendPipelineExecutionCreate) SetStage3LlmStatus(v trendpipelineexecution.Stage3LlmStatus) *TrendPipelineExecutionCreate {
	_c.mutation.SetStage3LlmStatus(v)
	return _c
}

// SetNillableStage3LlmStatus sets the "stage_3_llm_status" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableStage3LlmStatus(v *trendpipelineexecution.Stage3LlmStatus) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetStage3LlmStatus(*v)
	}
	return _c
}

// SetStage4GapStatus sets the "stage_4_gap_status" field.
func (_c *TrendPipelineExecutionCreate) SetStage4GapStatus(v trendpipelineexecution.Stage4GapStatus) *TrendPipelineExecutionCreate {
	_c.mutation.SetStage4GapStatus(v)
	return _c
}

// SetNillableStage4GapStatus sets the "stage_4_gap_status" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableStage4GapStatus(v *trendpipelineexecution.Stage4GapStatus) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetStage4GapStatus(*v)
	}
	return _c
}

// SetTotalArticles sets the "total_articles" field.
func (_c *TrendPipelineExecutionCreate) SetTotalArticles(v int) *TrendPipelineExecutionCreate {
	_c.mutation.SetTotalArticles(v)
	return _c
}

// SetNillableTotalArticles sets the "total_articles" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableTotalArticles(v *int) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetTotalArticles(*v)
	}
	return _c
}

// SetTotalClusters sets the "total_clusters" field.
func (_c *TrendPipelineExecutionCreate) SetTotalClusters(v int) *TrendPipelineExecutionCreate {
	_c.mutation.SetTotalClusters(v)
	return _c
}

// SetNillableTotalClusters sets the "total_clusters" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableTotalClusters(v *int) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetTotalClusters(*v)
	}
	return _c
}

// SetTotalOutliers sets the "total_outliers" field.
func (_c *TrendPipelineExecutionCreate) SetTotalOutliers(v int) *TrendPipelineExecutionCreate {
	_c.mutation.SetTotalOutliers(v)
	return _c
}

// SetNillableTotalOutliers sets the "total_outliers" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableTotalOutliers(v *int) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetTotalOutliers(*v)
	}
	return _c
}

// SetTotalRecommendations sets the "total_recommendations" field.
func (_c *TrendPipelineExecutionCreate) SetTotalRecommendations(v int) *TrendPipelineExecutionCreate {
	_c.mutation.SetTotalRecommendations(v)
	return _c
}

// SetNillableTotalRecommendations sets the "total_recommendations" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableTotalRecommendations(v *int) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetTotalRecommendations(*v)
	}
	return _c
}

// SetTotalGaps sets the "total_gaps" field.
func (_c *TrendPipelineExecutionCreate) SetTotalGaps(v int) *TrendPipelineExecutionCreate {
	_c.mutation.SetTotalGaps(v)
	return _c
}

// SetNillableTotalGaps sets the "total_gaps" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableTotalGaps(v *int) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetTotalGaps(*v)
	}
	return _c
}

// SetOutlierAnalysis sets the "outlier_analysis" field.
func (_c *TrendPipelineExecutionCreate) SetOutlierAnalysis(v map[string]interface{}) *TrendPipelineExecutionCreate {
	_c.mutation.SetOutlierAnalysis(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *TrendPipelineExecutionCreate) SetStartTime(v time.Time) *TrendPipelineExecutionCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableStartTime(v *time.Time) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *TrendPipelineExecutionCreate) SetEndTime(v time.Time) *TrendPipelineExecutionCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableEndTime(v *time.Time) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *TrendPipelineExecutionCreate) SetDurationSeconds(v float64) *TrendPipelineExecutionCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableDurationSeconds(v *float64) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TrendPipelineExecutionCreate) SetErrorMessage(v string) *TrendPipelineExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableErrorMessage(v *string) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetIsValid sets the "is_valid" field.
func (_c *TrendPipelineExecutionCreate) SetIsValid(v bool) *TrendPipelineExecutionCreate {
	_c.mutation.SetIsValid(v)
	return _c
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableIsValid(v *bool) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetIsValid(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrendPipelineExecutionCreate) SetCreatedAt(v time.Time) *TrendPipelineExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrendPipelineExecutionCreate) SetNillableCreatedAt(v *time.Time) *TrendPipelineExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddClusterIDs adds the "clusters" edge to the TopicCluster entity by IDs.
func (_c *TrendPipelineExecutionCreate) AddClusterIDs(ids ...int) *TrendPipelineExecutionCreate {
	_c.mutation.AddClusterIDs(ids...)
	return _c
}

// AddClusters adds the "clusters" edges to the TopicCluster entity.
func (_c *TrendPipelineExecutionCreate) AddClusters(v ...*TopicCluster) *TrendPipelineExecutionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClusterIDs(ids...)
}

// AddOutlierIDs adds the "outliers" edge to the TopicOutlier entity by IDs.
func (_c *TrendPipelineExecutionCreate) AddOutlierIDs(ids ...int) *TrendPipelineExecutionCreate {
	_c.mutation.AddOutlierIDs(ids...)
	return _c
}

// AddOutliers adds the "outliers" edges to the TopicOutlier entity.
func (_c *TrendPipelineExecutionCreate) AddOutliers(v ...*TopicOutlier) *TrendPipelineExecutionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutlierIDs(ids...)
}

// Mutation returns the TrendPipelineExecutionMutation object of the builder.
func (_c *TrendPipelineExecutionCreate) Mutation() *TrendPipelineExecutionMutation {
	return _c.mutation
}

// Save creates the TrendPipelineExecution in the database.
func (_c *TrendPipelineExecutionCreate) Save(ctx context.Context) (*TrendPipelineExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrendPipelineExecutionCreate) SaveX(ctx context.Context) *TrendPipelineExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrendPipelineExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrendPipelineExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrendPipelineExecutionCreate) defaults() {
	if _, ok := _c.mutation.TimeWindowDays(); !ok {
		v := trendpipelineexecution.DefaultTimeWindowDays
		_c.mutation.SetTimeWindowDays(v)
	}
	if _, ok := _c.mutation.Stage1ClusteringStatus(); !ok {
		v := trendpipelineexecution.DefaultStage1ClusteringStatus
		_c.mutation.SetStage1ClusteringStatus(v)
	}
	if _, ok := _c.mutation.Stage2TemporalStatus(); !ok {
		v := trendpipelineexecution.DefaultStage2TemporalStatus
		_c.mutation.SetStage2TemporalStatus(v)
	}
	if _, ok := _c.mutation.Stage3LlmStatus(); !ok {
		v := trendpipelineexecution.DefaultStage3LlmStatus
		_c.mutation.SetStage3LlmStatus(v)
	}
	if _, ok := _c.mutation.Stage4GapStatus(); !ok {
		v := trendpipelineexecution.DefaultStage4GapStatus
		_c.mutation.SetStage4GapStatus(v)
	}
	if _, ok := _c.mutation.TotalArticles(); !ok {
		v := trendpipelineexecution.DefaultTotalArticles
		_c.mutation.SetTotalArticles(v)
	}
	if _, ok := _c.mutation.TotalClusters(); !ok {
		v := trendpipelineexecution.DefaultTotalClusters
		_c.mutation.SetTotalClusters(v)
	}
	if _, ok := _c.mutation.TotalOutliers(); !ok {
		v := trendpipelineexecution.DefaultTotalOutliers
		_c.mutation.SetTotalOutliers(v)
	}
	if _, ok := _c.mutation.TotalRecommendations(); !ok {
		v := trendpipelineexecution.DefaultTotalRecommendations
		_c.mutation.SetTotalRecommendations(v)
	}
	if _, ok := _c.mutation.TotalGaps(); !ok {
		v := trendpipelineexecution.DefaultTotalGaps
		_c.mutation.SetTotalGaps(v)
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		v := trendpipelineexecution.DefaultStartTime()
		_c.mutation.SetStartTime(v)
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		v := trendpipelineexecution.DefaultIsValid
		_c.mutation.SetIsValid(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trendpipelineexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrendPipelineExecutionCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "TrendPipelineExecution.execution_id"`)}
	}
	if _, ok := _c.mutation.TimeWindowDays(); !ok {
		return &ValidationError{Name: "time_window_days", err: errors.New(`ent: missing required field "TrendPipelineExecution.time_window_days"`)}
	}
	if _, ok := _c.mutation.Stage1ClusteringStatus(); !ok {
		return &ValidationError{Name: "stage_1_clustering_status", err: errors.New(`ent: missing required field "TrendPipelineExecution.stage_1_clustering_status"`)}
	}
	if v, ok := _c.mutation.Stage1ClusteringStatus(); ok {
		if err := trendpipelineexecution.Stage1ClusteringStatusValidator(v); err != nil {
			return &ValidationError{Name: "stage_1_clustering_status", err: fmt.Errorf(`ent: validator failed for field "TrendPipelineExecution.stage_1_clustering_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage2TemporalStatus(); !ok {
		return &ValidationError{Name: "stage_2_temporal_status", err: errors.New(`ent: missing required field "TrendPipelineExecution.stage_2_temporal_status"`)}
	}
	if v, ok := _c.mutation.Stage2TemporalStatus(); ok {
		if err := trendpipelineexecution.Stage2TemporalStatusValidator(v); err != nil {
			return &ValidationError{Name: "stage_2_temporal_status", err: fmt.Errorf(`ent: validator failed for field "TrendPipelineExecution.stage_2_temporal_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage3LlmStatus(); !ok {
		return &ValidationError{Name: "stage_3_llm_status", err: errors.New(`ent: missing required field "TrendPipelineExecution.stage_3_llm_status"`)}
	}
	if v, ok := _c.mutation.Stage3LlmStatus(); ok {
		if err := trendpipelineexecution.Stage3LlmStatusValidator(v); err != nil {
			return &ValidationError{Name: "stage_3_llm_status", err: fmt.Errorf(`ent: validator failed for field "TrendPipelineExecution.stage_3_llm_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage4GapStatus(); !ok {
		return &ValidationError{Name: "stage_4_gap_status", err: errors.New(`ent: missing required field "TrendPipelineExecution.stage_4_gap_status"`)}
	}
	if v, ok := _c.mutation.Stage4GapStatus(); ok {
		if err := trendpipelineexecution.Stage4GapStatusValidator(v); err != nil {
			return &ValidationError{Name: "stage_4_gap_status", err: fmt.Errorf(`ent: validator failed for field "TrendPipelineExecution.stage_4_gap_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalArticles(); !ok {
		return &ValidationError{Name: "total_articles", err: errors.New(`ent: missing required field "TrendPipelineExecution.total_articles"`)}
	}
	if _, ok := _c.mutation.TotalClusters(); !ok {
		return &ValidationError{Name: "total_clusters", err: errors.New(`ent: missing required field "TrendPipelineExecution.total_clusters"`)}
	}
	if _, ok := _c.mutation.TotalOutliers(); !ok {
		return &ValidationError{Name: "total_outliers", err: errors.New(`ent: missing required field "TrendPipelineExecution.total_outliers"`)}
	}
	if _, ok := _c.mutation.TotalRecommendations(); !ok {
		return &ValidationError{Name: "total_recommendations", err: errors.New(`ent: missing required field "TrendPipelineExecution.total_recommendations"`)}
	}
	if _, ok := _c.mutation.TotalGaps(); !ok {
		return &ValidationError{Name: "total_gaps", err: errors.New(`ent: missing required field "TrendPipelineExecution.total_gaps"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "TrendPipelineExecution.start_time"`)}
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		return &ValidationError{Name: "is_valid", err: errors.New(`ent: missing required field "TrendPipelineExecution.is_valid"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrendPipelineExecution.created_at"`)}
	}
	return nil
}

func (_c *TrendPipelineExecutionCreate) sqlSave(ctx context.Context) (*TrendPipelineExecution, error) {
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

func (_c *TrendPipelineExecutionCreate) createSpec() (*TrendPipelineExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &TrendPipelineExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trendpipelineexecution.Table, sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(trendpipelineexecution.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.ClientDomain(); ok {
		_spec.SetField(trendpipelineexecution.FieldClientDomain, field.TypeString, value)
		_node.ClientDomain = value
	}
	if value, ok := _c.mutation.DomainsAnalyzed(); ok {
		_spec.SetField(trendpipelineexecution.FieldDomainsAnalyzed, field.TypeJSON, value)
		_node.DomainsAnalyzed = value
	}
	if value, ok := _c.mutation.TimeWindowDays(); ok {
		_spec.SetField(trendpipelineexecution.FieldTimeWindowDays, field.TypeInt, value)
		_node.TimeWindowDays = value
	}
	if value, ok := _c.mutation.Stage1ClusteringStatus(); ok {
		_spec.SetField(trendpipelineexecution.FieldStage1ClusteringStatus, field.TypeEnum, value)
		_node.Stage1ClusteringStatus = value
	}
	if value, ok := _c.mutation.Stage2TemporalStatus(); ok {
		_spec.SetField(trendpipelineexecution.FieldStage2TemporalStatus, field.TypeEnum, value)
		_node.Stage2TemporalStatus = value
	}
	if value, ok := _c.mutation.Stage3LlmStatus(); ok {
		_spec.SetField(trendpipelineexecution.FieldStage3LlmStatus, field.TypeEnum, value)
		_node.Stage3LlmStatus = value
	}
	if value, ok := _c.mutation.Stage4GapStatus(); ok {
		_spec.SetField(trendpipelineexecution.FieldStage4GapStatus, field.TypeEnum, value)
		_node.Stage4GapStatus = value
	}
	if value, ok := _c.mutation.TotalArticles(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalArticles, field.TypeInt, value)
		_node.TotalArticles = value
	}
	if value, ok := _c.mutation.TotalClusters(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalClusters, field.TypeInt, value)
		_node.TotalClusters = value
	}
	if value, ok := _c.mutation.TotalOutliers(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalOutliers, field.TypeInt, value)
		_node.TotalOutliers = value
	}
	if value, ok := _c.mutation.TotalRecommendations(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalRecommendations, field.TypeInt, value)
		_node.TotalRecommendations = value
	}
	if value, ok := _c.mutation.TotalGaps(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalGaps, field.TypeInt, value)
		_node.TotalGaps = value
	}
	if value, ok := _c.mutation.OutlierAnalysis(); ok {
		_spec.SetField(trendpipelineexecution.FieldOutlierAnalysis, field.TypeJSON, value)
		_node.OutlierAnalysis = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(trendpipelineexecution.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(trendpipelineexecution.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(trendpipelineexecution.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(trendpipelineexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.IsValid(); ok {
		_spec.SetField(trendpipelineexecution.FieldIsValid, field.TypeBool, value)
		_node.IsValid = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trendpipelineexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClustersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trendpipelineexecution.ClustersTable,
			Columns: []string{trendpipelineexecution.ClustersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutliersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trendpipelineexecution.OutliersTable,
			Columns: []string{trendpipelineexecution.OutliersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicoutlier.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TrendPipelineExecutionCreateBulk is the builder for creating many TrendPipelineExecution entities in bulk.
type TrendPipelineExecutionCreateBulk struct {
	config
	err      error
	builders []*TrendPipelineExecutionCreate
}

// Save creates the TrendPipelineExecution entities in the database.
func (_c *TrendPipelineExecutionCreateBulk) Save(ctx context.Context) ([]*TrendPipelineExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrendPipelineExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrendPipelineExecutionMutation)
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
func (_c *TrendPipelineExecutionCreateBulk) SaveX(ctx context.Context) []*TrendPipelineExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrendPipelineExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrendPipelineExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
