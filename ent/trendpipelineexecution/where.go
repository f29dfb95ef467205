// Code generated by ent, DO NOT EDIT.

package trendpipelineexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldExecutionID, v))
}

// ClientDomain applies equality check predicate on the "client_domain" field. It's identical to ClientDomainEQ.
func ClientDomain(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldClientDomain, v))
}

// TimeWindowDays applies equality check predicate on the "time_window_days" field. It's identical to TimeWindowDaysEQ.
func TimeWindowDays(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldTimeWindowDays, v))
}

// TotalArticles applies equality check predicate on the "total_articles" field. It's identical to TotalArticlesEQ.
func TotalArticles(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldTotalArticles, v))
}

// TotalClusters applies equality check predicate on the "total_clusters" field. It's identical to TotalClustersEQ.
func TotalClusters(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldTotalClusters, v))
}

// TotalOutliers applies equality check predicate on the "total_outliers" field. It's identical to TotalOutliersEQ.
func TotalOutliers(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldTotalOutliers, v))
}

// TotalRecommendations applies equality check predicate on the "total_recommendations" field. It's identical to TotalRecommendationsEQ.
func TotalRecommendations(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldTotalRecommendations, v))
}

// TotalGaps applies equality check predicate on the "total_gaps" field. It's identical to TotalGapsEQ.
func TotalGaps(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldTotalGaps, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldEndTime, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldDurationSeconds, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// IsValid applies equality check predicate on the "is_valid" field. It's identical to IsValidEQ.
func IsValid(v bool) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldIsValid, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldContainsFold(FieldExecutionID, v))
}

// ClientDomainEQ applies the EQ predicate on the "client_domain" field.
func ClientDomainEQ(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldClientDomain, v))
}

// ClientDomainNEQ applies the NEQ predicate on the "client_domain" field.
func ClientDomainNEQ(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldClientDomain, v))
}

// ClientDomainIn applies the In predicate on the "client_domain" field.
func ClientDomainIn(vs ...string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldClientDomain, vs...))
}

// ClientDomainNotIn applies the NotIn predicate on the "client_domain" field.
func ClientDomainNotIn(vs ...string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldClientDomain, vs...))
}

// ClientDomainGT applies the GT predicate on the "client_domain" field.
func ClientDomainGT(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldClientDomain, v))
}

// ClientDomainGTE applies the GTE predicate on the "client_domain" field.
func ClientDomainGTE(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldClientDomain, v))
}

// ClientDomainLT applies the LT predicate on the "client_domain" field.
func ClientDomainLT(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldClientDomain, v))
}

// ClientDomainLTE applies the LTE predicate on the "client_domain" field.
func ClientDomainLTE(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldClientDomain, v))
}

// ClientDomainContains applies the Contains predicate on the "client_domain" field.
func ClientDomainContains(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldContains(FieldClientDomain, v))
}

// ClientDomainHasPrefix applies the HasPrefix predicate on the "client_domain" field.
func ClientDomainHasPrefix(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldHasPrefix(FieldClientDomain, v))
}

// ClientDomainHasSuffix applies the HasSuffix predicate on the "client_domain" field.
func ClientDomainHasSuffix(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldHasSuffix(FieldClientDomain, v))
}

// ClientDomainIsNil applies the IsNil predicate on the "client_domain" field.
func ClientDomainIsNil() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIsNull(FieldClientDomain))
}

// ClientDomainNotNil applies the NotNil predicate on the "client_domain" field.
func ClientDomainNotNil() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotNull(FieldClientDomain))
}

// ClientDomainEqualFold applies the EqualFold predicate on the "client_domain" field.
func ClientDomainEqualFold(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEqualFold(FieldClientDomain, v))
}

// ClientDomainContainsFold applies the ContainsFold predicate on the "client_domain" field.
func ClientDomainContainsFold(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldContainsFold(FieldClientDomain, v))
}

// DomainsAnalyzedIsNil applies the IsNil predicate on the "domains_analyzed" field.
func DomainsAnalyzedIsNil() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIsNull(FieldDomainsAnalyzed))
}

// DomainsAnalyzedNotNil applies the NotNil predicate on the "domains_analyzed" field.
func DomainsAnalyzedNotNil() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotNull(FieldDomainsAnalyzed))
}

// TimeWindowDaysEQ applies the EQ predicate on the "time_window_days" field.
func TimeWindowDaysEQ(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldTimeWindowDays, v))
}

// TimeWindowDaysNEQ applies the NEQ predicate on the "time_window_days" field.
func TimeWindowDaysNEQ(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldTimeWindowDays, v))
}

// TimeWindowDaysIn applies the In predicate on the "time_window_days" field.
func TimeWindowDaysIn(vs ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldTimeWindowDays, vs...))
}

// TimeWindowDaysNotIn applies the NotIn predicate on the "time_window_days" field.
func TimeWindowDaysNotIn(vs ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldTimeWindowDays, vs...))
}

// TimeWindowDaysGT applies the GT predicate on the "time_window_days" field.
func TimeWindowDaysGT(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldTimeWindowDays, v))
}

// TimeWindowDaysGTE applies the GTE predicate on the "time_window_days" field.
func TimeWindowDaysGTE(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldTimeWindowDays, v))
}

// TimeWindowDaysLT applies the LT predicate on the "time_window_days" field.
func TimeWindowDaysLT(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldTimeWindowDays, v))
}

// TimeWindowDaysLTE applies the LTE predicate on the "time_window_days" field.
func TimeWindowDaysLTE(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldTimeWindowDays, v))
}

// Stage1ClusteringStatusEQ applies the EQ predicate on the "stage_1_clustering_status" field.
func Stage1ClusteringStatusEQ(v Stage1ClusteringStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldStage1ClusteringStatus, v))
}

// Stage1ClusteringStatusNEQ applies the NEQ predicate on the "stage_1_clustering_status" field.
func Stage1ClusteringStatusNEQ(v Stage1ClusteringStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldStage1ClusteringStatus, v))
}

// Stage1ClusteringStatusIn applies the In predicate on the "stage_1_clustering_status" field.
func Stage1ClusteringStatusIn(vs ...Stage1ClusteringStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldStage1ClusteringStatus, vs...))
}

// Stage1ClusteringStatusNotIn applies the NotIn predicate on the "stage_1_clustering_status" field.
func Stage1ClusteringStatusNotIn(vs ...Stage1ClusteringStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldStage1ClusteringStatus, vs...))
}

// Stage2TemporalStatusEQ applies the EQ predicate on the "stage_2_temporal_status" field.
func Stage2TemporalStatusEQ(v Stage2TemporalStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldStage2TemporalStatus, v))
}

// Stage2TemporalStatusNEQ applies the NEQ predicate on the "stage_2_temporal_status" field.
func Stage2TemporalStatusNEQ(v Stage2TemporalStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldStage2TemporalStatus, v))
}

// Stage2TemporalStatusIn applies the In predicate on the "stage_2_temporal_status" field.
func Stage2TemporalStatusIn(vs ...Stage2TemporalStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldStage2TemporalStatus, vs...))
}

// Stage2TemporalStatusNotIn applies the NotIn predicate on the "stage_2_temporal_status" field.
func Stage2TemporalStatusNotIn(vs ...Stage2TemporalStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldStage2TemporalStatus, vs...))
}

// Stage3LlmStatusEQ applies the EQ predicate on the "stage_3_llm_status" field.
func Stage3LlmStatusEQ(v Stage3LlmStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldStage3LlmStatus, v))
}

// Stage3LlmStatusNEQ applies the NEQ predicate on the "stage_3_llm_status" field.
func Stage3LlmStatusNEQ(v Stage3LlmStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldStage3LlmStatus, v))
}

// Stage3LlmStatusIn applies the In predicate on the "stage_3_llm_status" field.
func Stage3LlmStatusIn(vs ...Stage3LlmStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldStage3LlmStatus, vs...))
}

// Stage3LlmStatusNotIn applies the NotIn predicate on the "stage_3_llm_status" field.
func Stage3LlmStatusNotIn(vs ...Stage3LlmStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldStage3LlmStatus, vs...))
}

// Stage4GapStatusEQ applies the EQ predicate on the "stage_4_gap_status" field.
func Stage4GapStatusEQ(v Stage4GapStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldStage4GapStatus, v))
}

// Stage4GapStatusNEQ applies the NEQ predicate on the "stage_4_gap_status" field.
func Stage4GapStatusNEQ(v Stage4GapStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldStage4GapStatus, v))
}

// Stage4GapStatusIn applies the In predicate on the "stage_4_gap_status" field.
func Stage4GapStatusIn(vs ...Stage4GapStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldStage4GapStatus, vs...))
}

// Stage4GapStatusNotIn applies the NotIn predicate on the "stage_4_gap_status" field.
func Stage4GapStatusNotIn(vs ...Stage4GapStatus) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldStage4GapStatus, vs...))
}

// TotalArticlesEQ applies the EQ predicate on the "total_articles" field.
func TotalArticlesEQ(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldTotalArticles, v))
}

// TotalArticlesNEQ applies the NEQ predicate on the "total_articles" field.
func TotalArticlesNEQ(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldTotalArticles, v))
}

// TotalArticlesIn applies the In predicate on the "total_articles" field.
func TotalArticlesIn(vs ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldTotalArticles, vs...))
}

// TotalArticlesNotIn applies the NotIn predicate on the "total_articles" field.
func TotalArticlesNotIn(vs ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldTotalArticles, vs...))
}

// TotalArticlesGT applies the GT predicate on the "total_articles" field.
func TotalArticlesGT(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldTotalArticles, v))
}

// TotalArticlesGTE applies the GTE predicate on the "total_articles" field.
func TotalArticlesGTE(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldTotalArticles, v))
}

// TotalArticlesLT applies the LT predicate on the "total_articles" field.
func TotalArticlesLT(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldTotalArticles, v))
}

// TotalArticlesLTE applies the LTE predicate on the "total_articles" field.
func TotalArticlesLTE(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldTotalArticles, v))
}

// TotalClustersEQ applies the EQ predicate on the "total_clusters" field.
func TotalClustersEQ(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldTotalClusters, v))
}

// TotalClustersNEQ applies the NEQ predicate on the "total_clusters" field.
func TotalClustersNEQ(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldTotalClusters, v))
}

// TotalClustersIn applies the In predicate on the "total_clusters" field.
func TotalClustersIn(vs ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldTotalClusters, vs...))
}

// TotalClustersNotIn applies the NotIn predicate on the "total_clusters" field.
func TotalClustersNotIn(vs ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldTotalClusters, vs...))
}

// TotalClustersGT applies the GT predicate on the "total_clusters" field.
func TotalClustersGT(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldTotalClusters, v))
}

// TotalClustersGTE applies the GTE predicate on the "total_clusters" field.
func TotalClustersGTE(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldTotalClusters, v))
}

// TotalClustersLT applies the LT predicate on the "total_clusters" field.
func TotalClustersLT(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldTotalClusters, v))
}

// TotalClustersLTE applies the LTE predicate on the "total_clusters" field.
func TotalClustersLTE(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldTotalClusters, v))
}

// TotalOutliersEQ applies the EQ predicate on the "total_outliers" field.
func TotalOutliersEQ(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldTotalOutliers, v))
}

// TotalOutliersNEQ applies the NEQ predicate on the "total_outliers" field.
func TotalOutliersNEQ(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldTotalOutliers, v))
}

// TotalOutliersIn applies the In predicate on the "total_outliers" field.
func TotalOutliersIn(vs ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldTotalOutliers, vs...))
}

// TotalOutliersNotIn applies the NotIn predicate on the "total_outliers" field.
func TotalOutliersNotIn(vs ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldTotalOutliers, vs...))
}

// TotalOutliersGT applies the GT predicate on the "total_outliers" field.
func TotalOutliersGT(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldTotalOutliers, v))
}

// TotalOutliersGTE applies the GTE predicate on the "total_outliers" field.
func TotalOutliersGTE(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldTotalOutliers, v))
}

// TotalOutliersLT applies the LT predicate on the "total_outliers" field.
func TotalOutliersLT(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldTotalOutliers, v))
}

// TotalOutliersLTE applies the LTE predicate on the "total_outliers" field.
func TotalOutliersLTE(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldTotalOutliers, v))
}

// TotalRecommendationsEQ applies the EQ predicate on the "total_recommendations" field.
func TotalRecommendationsEQ(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldTotalRecommendations, v))
}

// TotalRecommendationsNEQ applies the NEQ predicate on the "total_recommendations" field.
func TotalRecommendationsNEQ(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldTotalRecommendations, v))
}

// TotalRecommendationsIn applies the In predicate on the "total_recommendations" field.
func TotalRecommendationsIn(vs ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldTotalRecommendations, vs...))
}

// TotalRecommendationsNotIn applies the NotIn predicate on the "total_recommendations" field.
func TotalRecommendationsNotIn(vs ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldTotalRecommendations, vs...))
}

// TotalRecommendationsGT applies the GT predicate on the "total_recommendations" field.
func TotalRecommendationsGT(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldTotalRecommendations, v))
}

// TotalRecommendationsGTE applies the GTE predicate on the "total_recommendations" field.
func TotalRecommendationsGTE(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldTotalRecommendations, v))
}

// TotalRecommendationsLT applies the LT predicate on the "total_recommendations" field.
func TotalRecommendationsLT(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldTotalRecommendations, v))
}

// TotalRecommendationsLTE applies the LTE predicate on the "total_recommendations" field.
func TotalRecommendationsLTE(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldTotalRecommendations, v))
}

// TotalGapsEQ applies the EQ predicate on the "total_gaps" field.
func TotalGapsEQ(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldTotalGaps, v))
}

// TotalGapsNEQ applies the NEQ predicate on the "total_gaps" field.
func TotalGapsNEQ(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldTotalGaps, v))
}

// TotalGapsIn applies the In predicate on the "total_gaps" field.
func TotalGapsIn(vs ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldTotalGaps, vs...))
}

// TotalGapsNotIn applies the NotIn predicate on the "total_gaps" field.
func TotalGapsNotIn(vs ...int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldTotalGaps, vs...))
}

// TotalGapsGT applies the GT predicate on the "total_gaps" field.
func TotalGapsGT(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldTotalGaps, v))
}

// TotalGapsGTE applies the GTE predicate on the "total_gaps" field.
func TotalGapsGTE(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldTotalGaps, v))
}

// TotalGapsLT applies the LT predicate on the "total_gaps" field.
func TotalGapsLT(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldTotalGaps, v))
}

// TotalGapsLTE applies the LTE predicate on the "total_gaps" field.
func TotalGapsLTE(v int) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldTotalGaps, v))
}

// OutlierAnalysisIsNil applies the IsNil predicate on the "outlier_analysis" field.
func OutlierAnalysisIsNil() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIsNull(FieldOutlierAnalysis))
}

// OutlierAnalysisNotNil applies the NotNil predicate on the "outlier_analysis" field.
func OutlierAnalysisNotNil() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotNull(FieldOutlierAnalysis))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotNull(FieldEndTime))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotNull(FieldDurationSeconds))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// IsValidEQ applies the EQ predicate on the "is_valid" field.
func IsValidEQ(v bool) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldIsValid, v))
}

// IsValidNEQ applies the NEQ predicate on the "is_valid" field.
func IsValidNEQ(v bool) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldIsValid, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// HasClusters applies the HasEdge predicate on the "clusters" edge.
func HasClusters() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ClustersTable, ClustersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClustersWith applies the HasEdge predicate on the "clusters" edge with a given conditions (other predicates).
func HasClustersWith(preds ...predicate.TopicCluster) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(func(s *sql.Selector) {
		step := newClustersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutliers applies the HasEdge predicate on the "outliers" edge.
func HasOutliers() predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutliersTable, OutliersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutliersWith applies the HasEdge predicate on the "outliers" edge with a given conditions (other predicates).
func HasOutliersWith(preds ...predicate.TopicOutlier) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(func(s *sql.Selector) {
		step := newOutliersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrendPipelineExecution) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrendPipelineExecution) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrendPipelineExecution) predicate.TrendPipelineExecution {
	return predicate.TrendPipelineExecution(sql.NotPredicates(p))
}
