// Code generated by ent, DO NOT EDIT.

package trendpipelineexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the trendpipelineexecution type in the database.
	Label = "trend_pipeline_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldClientDomain holds the string denoting the client_domain field in the database.
	FieldClientDomain = "client_domain"
	// FieldDomainsAnalyzed holds the string denoting the domains_analyzed field in the database.
	FieldDomainsAnalyzed = "domains_analyzed"
	// FieldTimeWindowDays holds the string denoting the time_window_days field in the database.
	FieldTimeWindowDays = "time_window_days"
	// FieldStage1ClusteringStatus holds the string denoting the stage_1_clustering_status field in the database.
	FieldStage1ClusteringStatus = "stage_1_clustering_status"
	// FieldStage2TemporalStatus holds the string denoting the stage_2_temporal_status field in the database.
	FieldStage2TemporalStatus = "stage_2_temporal_status"
	// FieldStage3LlmStatus holds the string denoting the stage_3_llm_status field in the database.
	FieldStage3LlmStatus = "stage_3_llm_status"
	// FieldStage4GapStatus holds the string denoting the stage_4_gap_status field in the database.
	FieldStage4GapStatus = "stage_4_gap_status"
	// FieldTotalArticles holds the string denoting the total_articles field in the database.
	FieldTotalArticles = "total_articles"
	// FieldTotalClusters holds the string denoting the total_clusters field in the database.
	FieldTotalClusters = "total_clusters"
	// FieldTotalOutliers holds the string denoting the total_outliers field in the database.
	FieldTotalOutliers = "total_outliers"
	// FieldTotalRecommendations holds the string denoting the total_recommendations field in the database.
	FieldTotalRecommendations = "total_recommendations"
	// FieldTotalGaps holds the string denoting the total_gaps field in the database.
	FieldTotalGaps = "total_gaps"
	// FieldOutlierAnalysis holds the string denoting the outlier_analysis field in the database.
	FieldOutlierAnalysis = "outlier_analysis"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldIsValid holds the string denoting the is_valid field in the database.
	FieldIsValid = "is_valid"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeClusters holds the string denoting the clusters edge name in mutations.
	EdgeClusters = "clusters"
	// EdgeOutliers holds the string denoting the outliers edge name in mutations.
	EdgeOutliers = "outliers"
	// Table holds the table name of the trendpipelineexecution in the database.
	Table = "trend_pipeline_executions"
	// ClustersTable is the table that holds the clusters relation/edge.
	ClustersTable = "topic_clusters"
	// ClustersInverseTable is the table name for the TopicCluster entity.
	// It exists in this package in order to avoid circular dependency with the "topiccluster" package.
	ClustersInverseTable = "topic_clusters"
	// ClustersColumn is the table column denoting the clusters relation/edge.
	ClustersColumn = "analysis_id"
	// OutliersTable is the table that holds the outliers relation/edge.
	OutliersTable = "topic_outliers"
	// OutliersInverseTable is the table name for the TopicOutlier entity.
	// It exists in this package in order to avoid circular dependency with the "topicoutlier" package.
	OutliersInverseTable = "topic_outliers"
	// OutliersColumn is the table column denoting the outliers relation/edge.
	OutliersColumn = "analysis_id"
)

// Columns holds all SQL columns for trendpipelineexecution fields.
var Columns = []string{
	FieldID,
	FieldExecutionID,
	FieldClientDomain,
	FieldDomainsAnalyzed,
	FieldTimeWindowDays,
	FieldStage1ClusteringStatus,
	FieldStage2TemporalStatus,
	FieldStage3LlmStatus,
	FieldStage4GapStatus,
	FieldTotalArticles,
	FieldTotalClusters,
	FieldTotalOutliers,
	FieldTotalRecommendations,
	FieldTotalGaps,
	FieldOutlierAnalysis,
	FieldStartTime,
	FieldEndTime,
	FieldDurationSeconds,
	FieldErrorMessage,
	FieldIsValid,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimeWindowDays holds the default value on creation for the "time_window_days" field.
	DefaultTimeWindowDays int
	// DefaultTotalArticles holds the default value on creation for the "total_articles" field.
	DefaultTotalArticles int
	// DefaultTotalClusters holds the default value on creation for the "total_clusters" field.
	DefaultTotalClusters int
	// DefaultTotalOutliers holds the default value on creation for the "total_outliers" field.
	DefaultTotalOutliers int
	// DefaultTotalRecommendations holds the default value on creation for the "total_recommendations" field.
	DefaultTotalRecommendations int
	// DefaultTotalGaps holds the default value on creation for the "total_gaps" field.
	DefaultTotalGaps int
	// DefaultStartTime holds the default value on creation for the "start_time" field.
	DefaultStartTime func() time.Time
	// DefaultIsValid holds the default value on creation for the "is_valid" field.
	DefaultIsValid bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Stage1ClusteringStatus defines the type for the "stage_1_clustering_status" enum field.
type Stage1ClusteringStatus string

// Stage1ClusteringStatusPending is the default value of the Stage1ClusteringStatus enum.
const DefaultStage1ClusteringStatus = Stage1ClusteringStatusPending

// Stage1ClusteringStatus values.
const (
	Stage1ClusteringStatusPending    Stage1ClusteringStatus = "pending"
	Stage1ClusteringStatusInProgress Stage1ClusteringStatus = "in_progress"
	Stage1ClusteringStatusCompleted  Stage1ClusteringStatus = "completed"
	Stage1ClusteringStatusFailed     Stage1ClusteringStatus = "failed"
	Stage1ClusteringStatusSkipped    Stage1ClusteringStatus = "skipped"
)

func (stage_1_clustering_status Stage1ClusteringStatus) String() string {
	return string(stage_1_clustering_status)
}

// Stage1ClusteringStatusValidator is a validator for the "stage_1_clustering_status" field enum values. It is called by the builders before save.
func Stage1ClusteringStatusValidator(stage_1_clustering_status Stage1ClusteringStatus) error {
	switch stage_1_clustering_status {
	case Stage1ClusteringStatusPending, Stage1ClusteringStatusInProgress, Stage1ClusteringStatusCompleted, Stage1ClusteringStatusFailed, Stage1ClusteringStatusSkipped:
		return nil
	default:
		return fmt.Errorf("trendpipelineexecution: invalid enum value for stage_1_clustering_status field: %q", stage_1_clustering_status)
	}
}

// Stage2TemporalStatus defines the type for the "stage_2_temporal_status" enum field.
type Stage2TemporalStatus string

// Stage2TemporalStatusPending is the default value of the Stage2TemporalStatus enum.
const DefaultStage2TemporalStatus = Stage2TemporalStatusPending

// Stage2TemporalStatus values.
const (
	Stage2TemporalStatusPending    Stage2TemporalStatus = "pending"
	Stage2TemporalStatusInProgress Stage2TemporalStatus = "in_progress"
	Stage2TemporalStatusCompleted  Stage2TemporalStatus = "completed"
	Stage2TemporalStatusFailed     Stage2TemporalStatus = "failed"
	Stage2TemporalStatusSkipped    Stage2TemporalStatus = "skipped"
)

func (stage_2_temporal_status Stage2TemporalStatus) String() string {
	return string(stage_2_temporal_status)
}

// Stage2TemporalStatusValidator is a validator for the "stage_2_temporal_status" field enum values. It is called by the builders before save.
func Stage2TemporalStatusValidator(stage_2_temporal_status Stage2TemporalStatus) error {
	switch stage_2_temporal_status {
	case Stage2TemporalStatusPending, Stage2TemporalStatusInProgress, Stage2TemporalStatusCompleted, Stage2TemporalStatusFailed, Stage2TemporalStatusSkipped:
		return nil
	default:
		return fmt.Errorf("trendpipelineexecution: invalid enum value for stage_2_temporal_status field: %q", stage_2_temporal_status)
	}
}

// Stage3LlmStatus defines the type for the "stage_3_llm_status" enum field.
type Stage3LlmStatus string

// Stage3LlmStatusPending is the default value of the Stage3LlmStatus enum.
const DefaultStage3LlmStatus = Stage3LlmStatusPending

// Stage3LlmStatus values.
const (
	Stage3LlmStatusPending    Stage3LlmStatus = "pending"
	Stage3LlmStatusInProgress Stage3LlmStatus = "in_progress"
	Stage3LlmStatusCompleted  Stage3LlmStatus = "completed"
	Stage3LlmStatusFailed     Stage3LlmStatus = "failed"
	Stage3LlmStatusSkipped    Stage3LlmStatus = "skipped"
)

func (stage_3_llm_status Stage3LlmStatus) String() string {
	return string(stage_3_llm_status)
}

// Stage3LlmStatusValidator is a validator for the "stage_3_llm_status" field enum values. It is called by the builders before save.
func Stage3LlmStatusValidator(stage_3_llm_status Stage3LlmStatus) error {
	switch stage_3_llm_status {
	case Stage3LlmStatusPending, Stage3LlmStatusInProgress, Stage3LlmStatusCompleted, Stage3LlmStatusFailed, Stage3LlmStatusSkipped:
		return nil
	default:
		return fmt.Errorf("trendpipelineexecution: invalid enum value for stage_3_llm_status field: %q", stage_3_llm_status)
	}
}

// Stage4GapStatus defines the type for the "stage_4_gap_status" enum field.
type Stage4GapStatus string

// Stage4GapStatusPending is the default value of the Stage4GapStatus enum.
const DefaultStage4GapStatus = Stage4GapStatusPending

// Stage4GapStatus values.
const (
	Stage4GapStatusPending    Stage4GapStatus = "pending"
	Stage4GapStatusInProgress Stage4GapStatus = "in_progress"
	Stage4GapStatusCompleted  Stage4GapStatus = "completed"
	Stage4GapStatusFailed     Stage4GapStatus = "failed"
	Stage4GapStatusSkipped    Stage4GapStatus = "skipped"
)

func (stage_4_gap_status Stage4GapStatus) String() string {
	return string(stage_4_gap_status)
}

// Stage4GapStatusValidator is a validator for the "stage_4_gap_status" field enum values. It is called by the builders before save.
func Stage4GapStatusValidator(stage_4_gap_status Stage4GapStatus) error {
	switch stage_4_gap_status {
	case Stage4GapStatusPending, Stage4GapStatusInProgress, Stage4GapStatusCompleted, Stage4GapStatusFailed, Stage4GapStatusSkipped:
		return nil
	default:
		return fmt.Errorf("trendpipelineexecution: invalid enum value for stage_4_gap_status field: %q", stage_4_gap_status)
	}
}

// OrderOption defines the ordering options for the TrendPipelineExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByClientDomain orders the results by the client_domain field.
func ByClientDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientDomain, opts...).ToFunc()
}

// ByTimeWindowDays orders the results by the time_window_days field.
func ByTimeWindowDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeWindowDays, opts...).ToFunc()
}

// ByStage1ClusteringStatus orders the results by the stage_1_clustering_status field.
func ByStage1ClusteringStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage1ClusteringStatus, opts...).ToFunc()
}

// ByStage2TemporalStatus orders the results by the stage_2_temporal_status field.
func ByStage2TemporalStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage2TemporalStatus, opts...).ToFunc()
}

// ByStage3LlmStatus orders the results by the stage_3_llm_status field.
func ByStage3LlmStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage3LlmStatus, opts...).ToFunc()
}

// ByStage4GapStatus orders the results by the stage_4_gap_status field.
func ByStage4GapStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage4GapStatus, opts...).ToFunc()
}

// ByTotalArticles orders the results by the total_articles field.
func ByTotalArticles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalArticles, opts...).ToFunc()
}

// ByTotalClusters orders the results by the total_clusters field.
func ByTotalClusters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalClusters, opts...).ToFunc()
}

// ByTotalOutliers orders the results by the total_outliers field.
func ByTotalOutliers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalOutliers, opts...).ToFunc()
}

// ByTotalRecommendations orders the results by the total_recommendations field.
func ByTotalRecommendations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRecommendations, opts...).ToFunc()
}

// ByTotalGaps orders the results by the total_gaps field.
func ByTotalGaps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalGaps, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByIsValid orders the results by the is_valid field.
func ByIsValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsValid, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByClustersCount orders the results by clusters count.
func ByClustersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newClustersStep(), opts...)
	}
}

// ByClusters orders the results by clusters terms.
func ByClusters(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClustersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOutliersCount orders the results by outliers count.
func ByOutliersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutliersStep(), opts...)
	}
}

// ByOutliers orders the results by outliers terms.
func ByOutliers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutliersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newClustersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClustersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ClustersTable, ClustersColumn),
	)
}
func newOutliersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutliersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutliersTable, OutliersColumn),
	)
}
