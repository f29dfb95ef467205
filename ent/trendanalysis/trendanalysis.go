// Code generated by ent, DO NOT EDIT.

package trendanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the trendanalysis type in the database.
	Label = "trend_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicClusterID holds the string denoting the topic_cluster_id field in the database.
	FieldTopicClusterID = "topic_cluster_id"
	// FieldSynthesis holds the string denoting the synthesis field in the database.
	FieldSynthesis = "synthesis"
	// FieldSaturatedAngles holds the string denoting the saturated_angles field in the database.
	FieldSaturatedAngles = "saturated_angles"
	// FieldOpportunities holds the string denoting the opportunities field in the database.
	FieldOpportunities = "opportunities"
	// FieldLlmModelUsed holds the string denoting the llm_model_used field in the database.
	FieldLlmModelUsed = "llm_model_used"
	// FieldProcessingTimeSeconds holds the string denoting the processing_time_seconds field in the database.
	FieldProcessingTimeSeconds = "processing_time_seconds"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCluster holds the string denoting the cluster edge name in mutations.
	EdgeCluster = "cluster"
	// Table holds the table name of the trendanalysis in the database.
	Table = "trend_analyses"
	// ClusterTable is the table that holds the cluster relation/edge.
	ClusterTable = "trend_analyses"
	// ClusterInverseTable is the table name for the TopicCluster entity.
	// It exists in this package in order to avoid circular dependency with the "topiccluster" package.
	ClusterInverseTable = "topic_clusters"
	// ClusterColumn is the table column denoting the cluster relation/edge.
	ClusterColumn = "topic_cluster_id"
)

// Columns holds all SQL columns for trendanalysis fields.
var Columns = []string{
	FieldID,
	FieldTopicClusterID,
	FieldSynthesis,
	FieldSaturatedAngles,
	FieldOpportunities,
	FieldLlmModelUsed,
	FieldProcessingTimeSeconds,
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
	// DefaultProcessingTimeSeconds holds the default value on creation for the "processing_time_seconds" field.
	DefaultProcessingTimeSeconds float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TrendAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicClusterID orders the results by the topic_cluster_id field.
func ByTopicClusterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicClusterID, opts...).ToFunc()
}

// BySynthesis orders the results by the synthesis field.
func BySynthesis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSynthesis, opts...).ToFunc()
}

// ByLlmModelUsed orders the results by the llm_model_used field.
func ByLlmModelUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmModelUsed, opts...).ToFunc()
}

// ByProcessingTimeSeconds orders the results by the processing_time_seconds field.
func ByProcessingTimeSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTimeSeconds, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByClusterField orders the results by cluster field.
func ByClusterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClusterStep(), sql.OrderByField(field, opts...))
	}
}
func newClusterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClusterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClusterTable, ClusterColumn),
	)
}
