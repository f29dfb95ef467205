// Code generated by ent, DO NOT EDIT.

package topictemporalmetrics

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the topictemporalmetrics type in the database.
	Label = "topic_temporal_metrics"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicClusterID holds the string denoting the topic_cluster_id field in the database.
	FieldTopicClusterID = "topic_cluster_id"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldWindowEnd holds the string denoting the window_end field in the database.
	FieldWindowEnd = "window_end"
	// FieldVolume holds the string denoting the volume field in the database.
	FieldVolume = "volume"
	// FieldVelocity holds the string denoting the velocity field in the database.
	FieldVelocity = "velocity"
	// FieldVelocityTrend holds the string denoting the velocity_trend field in the database.
	FieldVelocityTrend = "velocity_trend"
	// FieldFreshnessRatio holds the string denoting the freshness_ratio field in the database.
	FieldFreshnessRatio = "freshness_ratio"
	// FieldSourceDiversity holds the string denoting the source_diversity field in the database.
	FieldSourceDiversity = "source_diversity"
	// FieldCohesionScore holds the string denoting the cohesion_score field in the database.
	FieldCohesionScore = "cohesion_score"
	// FieldPotentialScore holds the string denoting the potential_score field in the database.
	FieldPotentialScore = "potential_score"
	// FieldDriftDetected holds the string denoting the drift_detected field in the database.
	FieldDriftDetected = "drift_detected"
	// FieldDriftDistance holds the string denoting the drift_distance field in the database.
	FieldDriftDistance = "drift_distance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCluster holds the string denoting the cluster edge name in mutations.
	EdgeCluster = "cluster"
	// Table holds the table name of the topictemporalmetrics in the database.
	Table = "topic_temporal_metrics"
	// ClusterTable is the table that holds the cluster relation/edge.
	ClusterTable = "topic_temporal_metrics"
	// ClusterInverseTable is the table name for the TopicCluster entity.
	// It exists in this package in order to avoid circular dependency with the "topiccluster" package.
	ClusterInverseTable = "topic_clusters"
	// ClusterColumn is the table column denoting the cluster relation/edge.
	ClusterColumn = "topic_cluster_id"
)

// Columns holds all SQL columns for topictemporalmetrics fields.
var Columns = []string{
	FieldID,
	FieldTopicClusterID,
	FieldWindowStart,
	FieldWindowEnd,
	FieldVolume,
	FieldVelocity,
	FieldVelocityTrend,
	FieldFreshnessRatio,
	FieldSourceDiversity,
	FieldCohesionScore,
	FieldPotentialScore,
	FieldDriftDetected,
	FieldDriftDistance,
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
	// DefaultDriftDetected holds the default value on creation for the "drift_detected" field.
	DefaultDriftDetected bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TopicTemporalMetrics queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicClusterID orders the results by the topic_cluster_id field.
func ByTopicClusterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicClusterID, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByWindowEnd orders the results by the window_end field.
func ByWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEnd, opts...).ToFunc()
}

// ByVolume orders the results by the volume field.
func ByVolume(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVolume, opts...).ToFunc()
}

// ByVelocity orders the results by the velocity field.
func ByVelocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVelocity, opts...).ToFunc()
}

// ByVelocityTrend orders the results by the velocity_trend field.
func ByVelocityTrend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVelocityTrend, opts...).ToFunc()
}

// ByFreshnessRatio orders the results by the freshness_ratio field.
func ByFreshnessRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreshnessRatio, opts...).ToFunc()
}

// BySourceDiversity orders the results by the source_diversity field.
func BySourceDiversity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceDiversity, opts...).ToFunc()
}

// ByCohesionScore orders the results by the cohesion_score field.
func ByCohesionScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCohesionScore, opts...).ToFunc()
}

// ByPotentialScore orders the results by the potential_score field.
func ByPotentialScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPotentialScore, opts...).ToFunc()
}

// ByDriftDetected orders the results by the drift_detected field.
func ByDriftDetected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDriftDetected, opts...).ToFunc()
}

// ByDriftDistance orders the results by the drift_distance field.
func ByDriftDistance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDriftDistance, opts...).ToFunc()
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
