// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/topicoutlier"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// TrendPipelineExecutionUpdate is the builder for updating TrendPipelineExecution entities.
type TrendPipelineExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *TrendPipelineExecutionMutation
}

// Where appends a list predicates to the TrendPipelineExecutionUpdate builder.
func (_u *TrendPipelineExecutionUpdate) Where(ps ...predicate.TrendPipelineExecution) *TrendPipelineExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *TrendPipelineExecutionUpdate) SetExecutionID(v string) *TrendPipelineExecutionUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableExecutionID(v *string) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetClientDomain sets the "client_domain" field.
func (_u *TrendPipelineExecutionUpdate) SetClientDomain(v string) *TrendPipelineExecutionUpdate {
	_u.mutation.SetClientDomain(v)
	return _u
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableClientDomain(v *string) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetClientDomain(*v)
	}
	return _u
}

// ClearClientDomain clears the value of the "client_domain" field.
func (_u *TrendPipelineExecutionUpdate) ClearClientDomain() *TrendPipelineExecutionUpdate {
	_u.mutation.ClearClientDomain()
	return _u
}

// SetDomainsAnalyzed sets the "domains_analyzed" field.
func (_u *TrendPipelineExecutionUpdate) SetDomainsAnalyzed(v []string) *TrendPipelineExecutionUpdate {
	_u.mutation.SetDomainsAnalyzed(v)
	return _u
}

// AppendDomainsAnalyzed appends value to the "domains_analyzed" field.
func (_u *TrendPipelineExecutionUpdate) AppendDomainsAnalyzed(v []string) *TrendPipelineExecutionUpdate {
	_u.mutation.AppendDomainsAnalyzed(v)
	return _u
}

// ClearDomainsAnalyzed clears the value of the "domains_analyzed" field.
func (_u *TrendPipelineExecutionUpdate) ClearDomainsAnalyzed() *TrendPipelineExecutionUpdate {
	_u.mutation.ClearDomainsAnalyzed()
	return _u
}

// SetTimeWindowDays sets the "time_window_days" field.
func (_u *TrendPipelineExecutionUpdate) SetTimeWindowDays(v int) *TrendPipelineExecutionUpdate {
	_u.mutation.ResetTimeWindowDays()
	_u.mutation.SetTimeWindowDays(v)
	return _u
}

// SetNillableTimeWindowDays sets the "time_window_days" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableTimeWindowDays(v *int) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetTimeWindowDays(*v)
	}
	return _u
}

// AddTimeWindowDays adds value to the "time_window_days" field.
func (_u *TrendPipelineExecutionUpdate) AddTimeWindowDays(v int) *TrendPipelineExecutionUpdate {
	_u.mutation.AddTimeWindowDays(v)
	return _u
}

// SetStage1ClusteringStatus sets the "stage_1_clustering_status" field.
func (_u *TrendPipelineExecutionUpdate) SetStage1ClusteringStatus(v trendpipelineexecution.Stage1ClusteringStatus) *TrendPipelineExecutionUpdate {
	_u.mutation.SetStage1ClusteringStatus(v)
	return _u
}

// SetNillableStage1ClusteringStatus sets the "stage_1_clustering_status" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableStage1ClusteringStatus(v *trendpipelineexecution.Stage1ClusteringStatus) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetStage1ClusteringStatus(*v)
	}
	return _u
}

// SetStage2TemporalStatus sets the "stage_2_temporal_status" field.
func (_u *TrendPipelineExecutionUpdate) SetStage2TemporalStatus(v trendpipelineexecution.Stage2TemporalStatus) *TrendPipelineExecutionUpdate {
	_u.mutation.SetStage2TemporalStatus(v)
	return _u
}

// SetNillableStage2TemporalStatus sets the "stage_2_temporal_status" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableStage2TemporalStatus(v *trendpipelineexecution.Stage2TemporalStatus) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetStage2TemporalStatus(*v)
	}
	return _u
}

// SetStage3LlmStatus sets the "stage_3_llm_status" field.
func (_u *TrendPipelineExecutionUpdate) SetStage3LlmStatus(v trendpipelineexecution.Stage3LlmStatus) *TrendPipelineExecutionUpdate {
	_u.mutation.SetStage3LlmStatus(v)
	return _u
}

// SetNillableStage3LlmStatus sets the "stage_3_llm_status" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableStage3LlmStatus(v *trendpipelineexecution.Stage3LlmStatus) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetStage3LlmStatus(*v)
	}
	return _u
}

// SetStage4GapStatus sets the "stage_4_gap_status" field.
func (_u *TrendPipelineExecutionUpdate) SetStage4GapStatus(v trendpipelineexecution.Stage4GapStatus) *TrendPipelineExecutionUpdate {
	_u.mutation.SetStage4GapStatus(v)
	return _u
}

// SetNillableStage4GapStatus sets the "stage_4_gap_status" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableStage4GapStatus(v *trendpipelineexecution.Stage4GapStatus) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetStage4GapStatus(*v)
	}
	return _u
}

// SetTotalArticles sets the "total_articles" field.
func (_u *TrendPipelineExecutionUpdate) SetTotalArticles(v int) *TrendPipelineExecutionUpdate {
	_u.mutation.ResetTotalArticles()
	_u.mutation.SetTotalArticles(v)
	return _u
}

// SetNillableTotalArticles sets the "total_articles" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableTotalArticles(v *int) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetTotalArticles(*v)
	}
	return _u
}

// AddTotalArticles adds value to the "total_articles" field.
func (_u *TrendPipelineExecutionUpdate) AddTotalArticles(v int) *TrendPipelineExecutionUpdate {
	_u.mutation.AddTotalArticles(v)
	return _u
}

// SetTotalClusters sets the "total_clusters" field.
func (_u *TrendPipelineExecutionUpdate) SetTotalClusters(v int) *TrendPipelineExecutionUpdate {
	_u.mutation.ResetTotalClusters()
	_u.mutation.SetTotalClusters(v)
	return _u
}

// SetNillableTotalClusters sets the "total_clusters" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableTotalClusters(v *int) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetTotalClusters(*v)
	}
	return _u
}

// AddTotalClusters adds value to the "total_clusters" field.
func (_u *TrendPipelineExecutionUpdate) AddTotalClusters(v int) *TrendPipelineExecutionUpdate {
	_u.mutation.AddTotalClusters(v)
	return _u
}

// SetTotalOutliers sets the "total_outliers" field.
func (_u *TrendPipelineExecutionUpdate) SetTotalOutliers(v int) *TrendPipelineExecutionUpdate {
	_u.mutation.ResetTotalOutliers()
	_u.mutation.SetTotalOutliers(v)
	return _u
}

// SetNillableTotalOutliers sets the "total_outliers" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableTotalOutliers(v *int) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetTotalOutliers(*v)
	}
	return _u
}

// AddTotalOutliers adds value to the "total_outliers" field.
func (_u *TrendPipelineExecutionUpdate) AddTotalOutliers(v int) *TrendPipelineExecutionUpdate {
	_u.mutation.AddTotalOutliers(v)
	return _u
}

// SetTotalRecommendations sets the "total_recommendations" field.
func (_u *TrendPipelineExecutionUpdate) SetTotalRecommendations(v int) *TrendPipelineExecutionUpdate {
	_u.mutation.ResetTotalRecommendations()
	_u.mutation.SetTotalRecommendations(v)
	return _u
}

// SetNillableTotalRecommendations sets the "total_recommendations" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableTotalRecommendations(v *int) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetTotalRecommendations(*v)
	}
	return _u
}

// AddTotalRecommendations adds value to the "total_recommendations" field.
func (_u *TrendPipelineExecutionUpdate) AddTotalRecommendations(v int) *TrendPipelineExecutionUpdate {
	_u.mutation.AddTotalRecommendations(v)
	return _u
}

// SetTotalGaps sets the "total_gaps" field.
func (_u *TrendPipelineExecutionUpdate) SetTotalGaps(v int) *TrendPipelineExecutionUpdate {
	_u.mutation.ResetTotalGaps()
	_u.mutation.SetTotalGaps(v)
	return _u
}

// SetNillableTotalGaps sets the "total_gaps" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableTotalGaps(v *int) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetTotalGaps(*v)
	}
	return _u
}

// AddTotalGaps adds value to the "total_gaps" field.
func (_u *TrendPipelineExecutionUpdate) AddTotalGaps(v int) *TrendPipelineExecutionUpdate {
	_u.mutation.AddTotalGaps(v)
	return _u
}

// SetOutlierAnalysis sets the "outlier_analysis" field.
func (_u *TrendPipelineExecutionUpdate) SetOutlierAnalysis(v map[string]interface{}) *TrendPipelineExecutionUpdate {
	_u.mutation.SetOutlierAnalysis(v)
	return _u
}

// ClearOutlierAnalysis clears the value of the "outlier_analysis" field.
func (_u *TrendPipelineExecutionUpdate) ClearOutlierAnalysis() *TrendPipelineExecutionUpdate {
	_u.mutation.ClearOutlierAnalysis()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TrendPipelineExecutionUpdate) SetStartTime(v time.Time) *TrendPipelineExecutionUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableStartTime(v *time.Time) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TrendPipelineExecutionUpdate) SetEndTime(v time.Time) *TrendPipelineExecutionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableEndTime(v *time.Time) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *TrendPipelineExecutionUpdate) ClearEndTime() *TrendPipelineExecutionUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *TrendPipelineExecutionUpdate) SetDurationSeconds(v float64) *TrendPipelineExecutionUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableDurationSeconds(v *float64) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *TrendPipelineExecutionUpdate) AddDurationSeconds(v float64) *TrendPipelineExecutionUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *TrendPipelineExecutionUpdate) ClearDurationSeconds() *TrendPipelineExecutionUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TrendPipelineExecutionUpdate) SetErrorMessage(v string) *TrendPipelineExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableErrorMessage(v *string) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TrendPipelineExecutionUpdate) ClearErrorMessage() *TrendPipelineExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *TrendPipelineExecutionUpdate) SetIsValid(v bool) *TrendPipelineExecutionUpdate {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdate) SetNillableIsValid(v *bool) *TrendPipelineExecutionUpdate {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// AddClusterIDs adds the "clusters" edge to the TopicCluster entity by IDs.
func (_u *TrendPipelineExecutionUpdate) AddClusterIDs(ids ...int) *TrendPipelineExecutionUpdate {
	_u.mutation.AddClusterIDs(ids...)
	return _u
}

// AddClusters adds the "clusters" edges to the TopicCluster entity.
func (_u *TrendPipelineExecutionUpdate) AddClusters(v ...*TopicCluster) *TrendPipelineExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClusterIDs(ids...)
}

// AddOutlierIDs adds the "outliers" edge to the TopicOutlier entity by IDs.
func (_u *TrendPipelineExecutionUpdate) AddOutlierIDs(ids ...int) *TrendPipelineExecutionUpdate {
	_u.mutation.AddOutlierIDs(ids...)
	return _u
}

// AddOutliers adds the "outliers" edges to the TopicOutlier entity.
func (_u *TrendPipelineExecutionUpdate) AddOutliers(v ...*TopicOutlier) *TrendPipelineExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutlierIDs(ids...)
}

// Mutation returns the TrendPipelineExecutionMutation object of the builder.
func (_u *TrendPipelineExecutionUpdate) Mutation() *TrendPipelineExecutionMutation {
	return _u.mutation
}

// ClearClusters clears all "clusters" edges to the TopicCluster entity.
func (_u *TrendPipelineExecutionUpdate) ClearClusters() *TrendPipelineExecutionUpdate {
	_u.mutation.ClearClusters()
	return _u
}

// RemoveClusterIDs removes the "clusters" edge to TopicCluster entities by IDs.
func (_u *TrendPipelineExecutionUpdate) RemoveClusterIDs(ids ...int) *TrendPipelineExecutionUpdate {
	_u.mutation.RemoveClusterIDs(ids...)
	return _u
}

// RemoveClusters removes "clusters" edges to TopicCluster entities.
func (_u *TrendPipelineExecutionUpdate) RemoveClusters(v ...*TopicCluster) *TrendPipelineExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClusterIDs(ids...)
}

// ClearOutliers clears all "outliers" edges to the TopicOutlier entity.
func (_u *TrendPipelineExecutionUpdate) ClearOutliers() *TrendPipelineExecutionUpdate {
	_u.mutation.ClearOutliers()
	return _u
}

// RemoveOutlierIDs removes the "outliers" edge to TopicOutlier entities by IDs.
func (_u *TrendPipelineExecutionUpdate) RemoveOutlierIDs(ids ...int) *TrendPipelineExecutionUpdate {
	_u.mutation.RemoveOutlierIDs(ids...)
	return _u
}

// RemoveOutliers removes "outliers" edges to TopicOutlier entities.
func (_u *TrendPipelineExecutionUpdate) RemoveOutliers(v ...*TopicOutlier) *TrendPipelineExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutlierIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrendPipelineExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrendPipelineExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrendPipelineExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrendPipelineExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrendPipelineExecutionUpdate) check() error {
	if v, ok := _u.mutation.Stage1ClusteringStatus(); ok {
		if err := trendpipelineexecution.Stage1ClusteringStatusValidator(v); err != nil {
			return &ValidationError{Name: "stage_1_clustering_status", err: fmt.Errorf(`ent: validator failed for field "TrendPipelineExecution.stage_1_clustering_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage2TemporalStatus(); ok {
		if err := trendpipelineexecution.Stage2TemporalStatusValidator(v); err != nil {
			return &ValidationError{Name: "stage_2_temporal_status", err: fmt.Errorf(`ent: validator failed for field "TrendPipelineExecution.stage_2_temporal_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage3LlmStatus(); ok {
		if err := trendpipelineexecution.Stage3LlmStatusValidator(v); err != nil {
			return &ValidationError{Name: "stage_3_llm_status", err: fmt.Errorf(`ent: validator failed for field "TrendPipelineExecution.stage_3_llm_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage4GapStatus(); ok {
		if err := trendpipelineexecution.Stage4GapStatusValidator(v); err != nil {
			return &ValidationError{Name: "stage_4_gap_status", err: fmt.Errorf(`ent: validator failed for field "TrendPipelineExecution.stage_4_gap_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TrendPipelineExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trendpipelineexecution.Table, trendpipelineexecution.Columns, sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(trendpipelineexecution.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientDomain(); ok {
		_spec.SetField(trendpipelineexecution.FieldClientDomain, field.TypeString, value)
	}
	if _u.mutation.ClientDomainCleared() {
		_spec.ClearField(trendpipelineexecution.FieldClientDomain, field.TypeString)
	}
	if value, ok := _u.mutation.DomainsAnalyzed(); ok {
		_spec.SetField(trendpipelineexecution.FieldDomainsAnalyzed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDomainsAnalyzed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trendpipelineexecution.FieldDomainsAnalyzed, value)
		})
	}
	if _u.mutation.DomainsAnalyzedCleared() {
		_spec.ClearField(trendpipelineexecution.FieldDomainsAnalyzed, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeWindowDays(); ok {
		_spec.SetField(trendpipelineexecution.FieldTimeWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeWindowDays(); ok {
		_spec.AddField(trendpipelineexecution.FieldTimeWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stage1ClusteringStatus(); ok {
		_spec.SetField(trendpipelineexecution.FieldStage1ClusteringStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage2TemporalStatus(); ok {
		_spec.SetField(trendpipelineexecution.FieldStage2TemporalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage3LlmStatus(); ok {
		_spec.SetField(trendpipelineexecution.FieldStage3LlmStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage4GapStatus(); ok {
		_spec.SetField(trendpipelineexecution.FieldStage4GapStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalArticles(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalArticles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalArticles(); ok {
		_spec.AddField(trendpipelineexecution.FieldTotalArticles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalClusters(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalClusters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalClusters(); ok {
		_spec.AddField(trendpipelineexecution.FieldTotalClusters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOutliers(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalOutliers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOutliers(); ok {
		_spec.AddField(trendpipelineexecution.FieldTotalOutliers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalRecommendations(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalRecommendations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRecommendations(); ok {
		_spec.AddField(trendpipelineexecution.FieldTotalRecommendations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalGaps(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalGaps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalGaps(); ok {
		_spec.AddField(trendpipelineexecution.FieldTotalGaps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutlierAnalysis(); ok {
		_spec.SetField(trendpipelineexecution.FieldOutlierAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.OutlierAnalysisCleared() {
		_spec.ClearField(trendpipelineexecution.FieldOutlierAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(trendpipelineexecution.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(trendpipelineexecution.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(trendpipelineexecution.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(trendpipelineexecution.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(trendpipelineexecution.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(trendpipelineexecution.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(trendpipelineexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(trendpipelineexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(trendpipelineexecution.FieldIsValid, field.TypeBool, value)
	}
	if _u.mutation.ClustersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClustersIDs(); len(nodes) > 0 && !_u.mutation.ClustersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClustersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutliersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutliersIDs(); len(nodes) > 0 && !_u.mutation.OutliersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutliersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trendpipelineexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrendPipelineExecutionUpdateOne is the builder for updating a single TrendPipelineExecution entity.
type TrendPipelineExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrendPipelineExecutionMutation
}

// SetExecutionID sets the "execution_id" field.
func (_u *TrendPipelineExecutionUpdateOne) SetExecutionID(v string) *TrendPipelineExecutionUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableExecutionID(v *string) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetClientDomain sets the "client_domain" field.
func (_u *TrendPipelineExecutionUpdateOne) SetClientDomain(v string) *TrendPipelineExecutionUpdateOne {
	_u.mutation.SetClientDomain(v)
	return _u
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableClientDomain(v *string) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetClientDomain(*v)
	}
	return _u
}

// ClearClientDomain clears the value of the "client_domain" field.
func (_u *TrendPipelineExecutionUpdateOne) ClearClientDomain() *TrendPipelineExecutionUpdateOne {
	_u.mutation.ClearClientDomain()
	return _u
}

// SetDomainsAnalyzed sets the "domains_analyzed" field.
func (_u *TrendPipelineExecutionUpdateOne) SetDomainsAnalyzed(v []string) *TrendPipelineExecutionUpdateOne {
	_u.mutation.SetDomainsAnalyzed(v)
	return _u
}

// AppendDomainsAnalyzed appends value to the "domains_analyzed" field.
func (_u *TrendPipelineExecutionUpdateOne) AppendDomainsAnalyzed(v []string) *TrendPipelineExecutionUpdateOne {
	_u.mutation.AppendDomainsAnalyzed(v)
	return _u
}

// ClearDomainsAnalyzed clears the value of the "domains_analyzed" field.
func (_u *TrendPipelineExecutionUpdateOne) ClearDomainsAnalyzed() *TrendPipelineExecutionUpdateOne {
	_u.mutation.ClearDomainsAnalyzed()
	return _u
}

// SetTimeWindowDays sets the "time_window_days" field.
func (_u *TrendPipelineExecutionUpdateOne) SetTimeWindowDays(v int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.ResetTimeWindowDays()
	_u.mutation.SetTimeWindowDays(v)
	return _u
}

// SetNillableTimeWindowDays sets the "time_window_days" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableTimeWindowDays(v *int) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetTimeWindowDays(*v)
	}
	return _u
}

// AddTimeWindowDays adds value to the "time_window_days" field.
func (_u *TrendPipelineExecutionUpdateOne) AddTimeWindowDays(v int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.AddTimeWindowDays(v)
	return _u
}

// SetStage1ClusteringStatus sets the "stage_1_clustering_status" field.
func (_u *TrendPipelineExecutionUpdateOne) SetStage1ClusteringStatus(v trendpipelineexecution.Stage1ClusteringStatus) *TrendPipelineExecutionUpdateOne {
	_u.mutation.SetStage1ClusteringStatus(v)
	return _u
}

// SetNillableStage1ClusteringStatus sets the "stage_1_clustering_status" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableStage1ClusteringStatus(v *trendpipelineexecution.Stage1ClusteringStatus) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetStage1ClusteringStatus(*v)
	}
	return _u
}

// SetStage2TemporalStatus sets the "stage_2_temporal_status" field.
func (_u *TrendPipelineExecutionUpdateOne) SetStage2TemporalStatus(v trendpipelineexecution.Stage2TemporalStatus) *TrendPipelineExecutionUpdateOne {
	_u.mutation.SetStage2TemporalStatus(v)
	return _u
}

// SetNillableStage2TemporalStatus sets the "stage_2_temporal_status" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableStage2TemporalStatus(v *trendpipelineexecution.Stage2TemporalStatus) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetStage2TemporalStatus(*v)
	}
	return _u
}

// SetStage3LlmStatus sets the "stage_3_llm_status" field.
func (_u *TrendPipelineExecutionUpdateOne) SetStage3LlmStatus(v trendpipelineexecution.Stage3LlmStatus) *TrendPipelineExecutionUpdateOne {
	_u.mutation.SetStage3LlmStatus(v)
	return _u
}

// SetNillableStage3LlmStatus sets the "stage_3_llm_status" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableStage3LlmStatus(v *trendpipelineexecution.Stage3LlmStatus) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetStage3LlmStatus(*v)
	}
	return _u
}

// SetStage4GapStatus sets the "stage_4_gap_status" field.
func (_u *TrendPipelineExecutionUpdateOne) SetStage4GapStatus(v trendpipelineexecution.Stage4GapStatus) *TrendPipelineExecutionUpdateOne {
	_u.mutation.SetStage4GapStatus(v)
	return _u
}

// SetNillableStage4GapStatus sets the "stage_4_gap_status" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableStage4GapStatus(v *trendpipelineexecution.Stage4GapStatus) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetStage4GapStatus(*v)
	}
	return _u
}

// SetTotalArticles sets the "total_articles" field.
func (_u *TrendPipelineExecutionUpdateOne) SetTotalArticles(v int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.ResetTotalArticles()
	_u.mutation.SetTotalArticles(v)
	return _u
}

// SetNillableTotalArticles sets the "total_articles" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableTotalArticles(v *int) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetTotalArticles(*v)
	}
	return _u
}

// AddTotalArticles adds value to the "total_articles" field.
func (_u *TrendPipelineExecutionUpdateOne) AddTotalArticles(v int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.AddTotalArticles(v)
	return _u
}

// SetTotalClusters sets the "total_clusters" field.
func (_u *TrendPipelineExecutionUpdateOne) SetTotalClusters(v int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.ResetTotalClusters()
	_u.mutation.SetTotalClusters(v)
	return _u
}

// SetNillableTotalClusters sets the "total_clusters" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableTotalClusters(v *int) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetTotalClusters(*v)
	}
	return _u
}

// AddTotalClusters adds value to the "total_clusters" field.
func (_u *TrendPipelineExecutionUpdateOne) AddTotalClusters(v int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.AddTotalClusters(v)
	return _u
}

// SetTotalOutliers sets the "total_outliers" field.
func (_u *TrendPipelineExecutionUpdateOne) SetTotalOutliers(v int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.ResetTotalOutliers()
	_u.mutation.SetTotalOutliers(v)
	return _u
}

// SetNillableTotalOutliers sets the "total_outliers" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableTotalOutliers(v *int) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetTotalOutliers(*v)
	}
	return _u
}

// AddTotalOutliers adds value to the "total_outliers" field.
func (_u *TrendPipelineExecutionUpdateOne) AddTotalOutliers(v int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.AddTotalOutliers(v)
	return _u
}

// SetTotalRecommendations sets the "total_recommendations" field.
func (_u *TrendPipelineExecutionUpdateOne) SetTotalRecommendations(v int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.ResetTotalRecommendations()
	_u.mutation.SetTotalRecommendations(v)
	return _u
}

// SetNillableTotalRecommendations sets the "total_recommendations" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableTotalRecommendations(v *int) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetTotalRecommendations(*v)
	}
	return _u
}

// AddTotalRecommendations adds value to the "total_recommendations" field.
func (_u *TrendPipelineExecutionUpdateOne) AddTotalRecommendations(v int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.AddTotalRecommendations(v)
	return _u
}

// SetTotalGaps sets the "total_gaps" field.
func (_u *TrendPipelineExecutionUpdateOne) SetTotalGaps(v int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.ResetTotalGaps()
	_u.mutation.SetTotalGaps(v)
	return _u
}

// SetNillableTotalGaps sets the "total_gaps" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableTotalGaps(v *int) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetTotalGaps(*v)
	}
	return _u
}

// AddTotalGaps adds value to the "total_gaps" field.
func (_u *TrendPipelineExecutionUpdateOne) AddTotalGaps(v int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.AddTotalGaps(v)
	return _u
}

// SetOutlierAnalysis sets the "outlier_analysis" field.
func (_u *TrendPipelineExecutionUpdateOne) SetOutlierAnalysis(v map[string]interface{}) *TrendPipelineExecutionUpdateOne {
	_u.mutation.SetOutlierAnalysis(v)
	return _u
}

// ClearOutlierAnalysis clears the value of the "outlier_analysis" field.
func (_u *TrendPipelineExecutionUpdateOne) ClearOutlierAnalysis() *TrendPipelineExecutionUpdateOne {
	_u.mutation.ClearOutlierAnalysis()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TrendPipelineExecutionUpdateOne) SetStartTime(v time.Time) *TrendPipelineExecutionUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableStartTime(v *time.Time) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TrendPipelineExecutionUpdateOne) SetEndTime(v time.Time) *TrendPipelineExecutionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableEndTime(v *time.Time) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *TrendPipelineExecutionUpdateOne) ClearEndTime() *TrendPipelineExecutionUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *TrendPipelineExecutionUpdateOne) SetDurationSeconds(v float64) *TrendPipelineExecutionUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableDurationSeconds(v *float64) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *TrendPipelineExecutionUpdateOne) AddDurationSeconds(v float64) *TrendPipelineExecutionUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *TrendPipelineExecutionUpdateOne) ClearDurationSeconds() *TrendPipelineExecutionUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TrendPipelineExecutionUpdateOne) SetErrorMessage(v string) *TrendPipelineExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableErrorMessage(v *string) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TrendPipelineExecutionUpdateOne) ClearErrorMessage() *TrendPipelineExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *TrendPipelineExecutionUpdateOne) SetIsValid(v bool) *TrendPipelineExecutionUpdateOne {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *TrendPipelineExecutionUpdateOne) SetNillableIsValid(v *bool) *TrendPipelineExecutionUpdateOne {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// AddClusterIDs adds the "clusters" edge to the TopicCluster entity by IDs.
func (_u *TrendPipelineExecutionUpdateOne) AddClusterIDs(ids ...int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.AddClusterIDs(ids...)
	return _u
}

// AddClusters adds the "clusters" edges to the TopicCluster entity.
func (_u *TrendPipelineExecutionUpdateOne) AddClusters(v ...*TopicCluster) *TrendPipelineExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClusterIDs(ids...)
}

// AddOutlierIDs adds the "outliers" edge to the TopicOutlier entity by IDs.
func (_u *TrendPipelineExecutionUpdateOne) AddOutlierIDs(ids ...int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.AddOutlierIDs(ids...)
	return _u
}

// AddOutliers adds the "outliers" edges to the TopicOutlier entity.
func (_u *TrendPipelineExecutionUpdateOne) AddOutliers(v ...*TopicOutlier) *TrendPipelineExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutlierIDs(ids...)
}

// Mutation returns the TrendPipelineExecutionMutation object of the builder.
func (_u *TrendPipelineExecutionUpdateOne) Mutation() *TrendPipelineExecutionMutation {
	return _u.mutation
}

// ClearClusters clears all "clusters" edges to the TopicCluster entity.
func (_u *TrendPipelineExecutionUpdateOne) ClearClusters() *TrendPipelineExecutionUpdateOne {
	_u.mutation.ClearClusters()
	return _u
}

// RemoveClusterIDs removes the "clusters" edge to TopicCluster entities by IDs.
func (_u *TrendPipelineExecutionUpdateOne) RemoveClusterIDs(ids ...int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.RemoveClusterIDs(ids...)
	return _u
}

// RemoveClusters removes "clusters" edges to TopicCluster entities.
func (_u *TrendPipelineExecutionUpdateOne) RemoveClusters(v ...*TopicCluster) *TrendPipelineExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClusterIDs(ids...)
}

// ClearOutliers clears all "outliers" edges to the TopicOutlier entity.
func (_u *TrendPipelineExecutionUpdateOne) ClearOutliers() *TrendPipelineExecutionUpdateOne {
	_u.mutation.ClearOutliers()
	return _u
}

// RemoveOutlierIDs removes the "outliers" edge to TopicOutlier entities by IDs.
func (_u *TrendPipelineExecutionUpdateOne) RemoveOutlierIDs(ids ...int) *TrendPipelineExecutionUpdateOne {
	_u.mutation.RemoveOutlierIDs(ids...)
	return _u
}

// RemoveOutliers removes "outliers" edges to TopicOutlier entities.
func (_u *TrendPipelineExecutionUpdateOne) RemoveOutliers(v ...*TopicOutlier) *TrendPipelineExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutlierIDs(ids...)
}

// Where appends a list predicates to the TrendPipelineExecutionUpdate builder.
func (_u *TrendPipelineExecutionUpdateOne) Where(ps ...predicate.TrendPipelineExecution) *TrendPipelineExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrendPipelineExecutionUpdateOne) Select(field string, fields ...string) *TrendPipelineExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrendPipelineExecution entity.
func (_u *TrendPipelineExecutionUpdateOne) Save(ctx context.Context) (*TrendPipelineExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrendPipelineExecutionUpdateOne) SaveX(ctx context.Context) *TrendPipelineExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrendPipelineExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrendPipelineExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrendPipelineExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Stage1ClusteringStatus(); ok {
		if err := trendpipelineexecution.Stage1ClusteringStatusValidator(v); err != nil {
			return &ValidationError{Name: "stage_1_clustering_status", err: fmt.Errorf(`ent: validator failed for field "TrendPipelineExecution.stage_1_clustering_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage2TemporalStatus(); ok {
		if err := trendpipelineexecution.Stage2TemporalStatusValidator(v); err != nil {
			return &ValidationError{Name: "stage_2_temporal_status", err: fmt.Errorf(`ent: validator failed for field "TrendPipelineExecution.stage_2_temporal_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage3LlmStatus(); ok {
		if err := trendpipelineexecution.Stage3LlmStatusValidator(v); err != nil {
			return &ValidationError{Name: "stage_3_llm_status", err: fmt.Errorf(`ent: validator failed for field "TrendPipelineExecution.stage_3_llm_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage4GapStatus(); ok {
		if err := trendpipelineexecution.Stage4GapStatusValidator(v); err != nil {
			return &ValidationError{Name: "stage_4_gap_status", err: fmt.Errorf(`ent: validator failed for field "TrendPipelineExecution.stage_4_gap_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TrendPipelineExecutionUpdateOne) sqlSave(ctx context.Context) (_node *TrendPipelineExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trendpipelineexecution.Table, trendpipelineexecution.Columns, sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrendPipelineExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trendpipelineexecution.FieldID)
		for _, f := range fields {
			if !trendpipelineexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trendpipelineexecution.FieldID {
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
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(trendpipelineexecution.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientDomain(); ok {
		_spec.SetField(trendpipelineexecution.FieldClientDomain, field.TypeString, value)
	}
	if _u.mutation.ClientDomainCleared() {
		_spec.ClearField(trendpipelineexecution.FieldClientDomain, field.TypeString)
	}
	if value, ok := _u.mutation.DomainsAnalyzed(); ok {
		_spec.SetField(trendpipelineexecution.FieldDomainsAnalyzed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDomainsAnalyzed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trendpipelineexecution.FieldDomainsAnalyzed, value)
		})
	}
	if _u.mutation.DomainsAnalyzedCleared() {
		_spec.ClearField(trendpipelineexecution.FieldDomainsAnalyzed, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeWindowDays(); ok {
		_spec.SetField(trendpipelineexecution.FieldTimeWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeWindowDays(); ok {
		_spec.AddField(trendpipelineexecution.FieldTimeWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stage1ClusteringStatus(); ok {
		_spec.SetField(trendpipelineexecution.FieldStage1ClusteringStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage2TemporalStatus(); ok {
		_spec.SetField(trendpipelineexecution.FieldStage2TemporalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage3LlmStatus(); ok {
		_spec.SetField(trendpipelineexecution.FieldStage3LlmStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage4GapStatus(); ok {
		_spec.SetField(trendpipelineexecution.FieldStage4GapStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalArticles(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalArticles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalArticles(); ok {
		_spec.AddField(trendpipelineexecution.FieldTotalArticles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalClusters(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalClusters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalClusters(); ok {
		_spec.AddField(trendpipelineexecution.FieldTotalClusters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOutliers(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalOutliers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOutliers(); ok {
		_spec.AddField(trendpipelineexecution.FieldTotalOutliers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalRecommendations(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalRecommendations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRecommendations(); ok {
		_spec.AddField(trendpipelineexecution.FieldTotalRecommendations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalGaps(); ok {
		_spec.SetField(trendpipelineexecution.FieldTotalGaps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalGaps(); ok {
		_spec.AddField(trendpipelineexecution.FieldTotalGaps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutlierAnalysis(); ok {
		_spec.SetField(trendpipelineexecution.FieldOutlierAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.OutlierAnalysisCleared() {
		_spec.ClearField(trendpipelineexecution.FieldOutlierAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(trendpipelineexecution.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(trendpipelineexecution.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(trendpipelineexecution.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(trendpipelineexecution.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(trendpipelineexecution.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(trendpipelineexecution.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(trendpipelineexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(trendpipelineexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(trendpipelineexecution.FieldIsValid, field.TypeBool, value)
	}
	if _u.mutation.ClustersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClustersIDs(); len(nodes) > 0 && !_u.mutation.ClustersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClustersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutliersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutliersIDs(); len(nodes) > 0 && !_u.mutation.OutliersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutliersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TrendPipelineExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trendpipelineexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
