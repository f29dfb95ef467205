// Code generated by ent, DO NOT EDIT.

package coverageanalysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the coverageanalysis type in the database.
	Label = "coverage_analysis"
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
	// FieldDistinctCompetitorDomains holds the string denoting the distinct_competitor_domains field in the database.
	FieldDistinctCompetitorDomains = "distinct_competitor_domains"
	// FieldAvgCompetitor holds the string denoting the avg_competitor field in the database.
	FieldAvgCompetitor = "avg_competitor"
	// FieldCoverageScore holds the string denoting the coverage_score field in the database.
	FieldCoverageScore = "coverage_score"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCluster holds the string denoting the cluster edge name in mutations.
	EdgeCluster = "cluster"
	// Table holds the table name of the coverageanalysis in the database.
	Table = "coverage_analyses"
	// ClusterTable is the table that holds the cluster relation/edge.
	ClusterTable = "coverage_analyses"
	// ClusterInverseTable is the table name for the TopicCluster entity.
	// It exists in this package in order to avoid circular dependency with the "topiccluster" package.
	ClusterInverseTable = "topic_clusters"
	// ClusterColumn is the table column denoting the cluster relation/edge.
	ClusterColumn = "topic_cluster_id"
)

// Columns holds all SQL columns for coverageanalysis fields.
var Columns = []string{
	FieldID,
	FieldClientDomain,
	FieldTopicClusterID,
	FieldClientCount,
	FieldCompetitorCount,
	FieldDistinctCompetitorDomains,
	FieldAvgCompetitor,
	FieldCoverageScore,
	FieldLevel,
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

// Level defines the type for the "level" enum field.
type Level string

// Level values.
const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelWeak      Level = "weak"
	LevelGap       Level = "gap"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelExcellent, LevelGood, LevelWeak, LevelGap:
		return nil
	default:
		return fmt.Errorf("coverageanalysis: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the CoverageAnalysis queries.
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

// ByDistinctCompetitorDomains orders the results by the distinct_competitor_domains field.
func ByDistinctCompetitorDomains(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistinctCompetitorDomains, opts...).ToFunc()
}

// ByAvgCompetitor orders the results by the avg_competitor field.
func ByAvgCompetitor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgCompetitor, opts...).ToFunc()
}

// ByCoverageScore orders the results by the coverage_score field.
func ByCoverageScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverageScore, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
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
