// Code generated by ent, DO NOT EDIT.

package clientstrength

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the clientstrength type in the database.
	Label = "client_strength"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClientDomain holds the string denoting the client_domain field in the database.
	FieldClientDomain = "client_domain"
	// FieldTopicClusterID holds the string denoting the topic_cluster_id field in the database.
	FieldTopicClusterID = "topic_cluster_id"
	// FieldClientCount holds the string denoting the client_count field in the database.
	FieldClientCount = "client_count"
	// FieldCompetitorCount holds the string denoting the competitor_count field in the database.
	FieldCompetitorCount = "competitor_count"
	// FieldCoverageScore holds the string denoting the coverage_score field in the database.
	FieldCoverageScore = "coverage_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCluster holds the string denoting the cluster edge name in mutations.
	EdgeCluster = "cluster"
	// Table holds the table name of the clientstrength in the database.
	Table = "client_strengths"
	// ClusterTable is the table that holds the cluster relation/edge.
	ClusterTable = "client_strengths"
	// ClusterInverseTable is the table name for the TopicCluster entity.
	// It exists in this package in order to avoid circular dependency with the "topiccluster" package.
	ClusterInverseTable = "topic_clusters"
	// ClusterColumn is the table column denoting the cluster relation/edge.
	ClusterColumn = "topic_cluster_id"
)

// Columns holds all SQL columns for clientstrength fields.
var Columns = []string{
	FieldID,
	FieldClientDomain,
	FieldTopicClusterID,
	FieldClientCount,
	FieldCompetitorCount,
	FieldCoverageScore,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ClientStrength queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClientDomain orders the results by the client_domain field.
func ByClientDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientDomain, opts...).ToFunc()
}

// ByTopicClusterID orders the results by the topic_cluster_id field.
func ByTopicClusterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicClusterID, opts...).ToFunc()
}

// ByClientCount orders the results by the client_count field.
func ByClientCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientCount, opts...).ToFunc()
}

// ByCompetitorCount orders the results by the competitor_count field.
func ByCompetitorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompetitorCount, opts...).ToFunc()
}

// ByCoverageScore orders the results by the coverage_score field.
func ByCoverageScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverageScore, opts...).ToFunc()
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
