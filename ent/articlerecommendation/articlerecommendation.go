// Code generated by ent, DO NOT EDIT.

package articlerecommendation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the articlerecommendation type in the database.
	Label = "article_recommendation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicClusterID holds the string denoting the topic_cluster_id field in the database.
	FieldTopicClusterID = "topic_cluster_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldHook holds the string denoting the hook field in the database.
	FieldHook = "hook"
	// FieldOutline holds the string denoting the outline field in the database.
	FieldOutline = "outline"
	// FieldDifferentiationScore holds the string denoting the differentiation_score field in the database.
	FieldDifferentiationScore = "differentiation_score"
	// FieldEffortLevel holds the string denoting the effort_level field in the database.
	FieldEffortLevel = "effort_level"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCluster holds the string denoting the cluster edge name in mutations.
	EdgeCluster = "cluster"
	// EdgeRoadmapEntries holds the string denoting the roadmap_entries edge name in mutations.
	EdgeRoadmapEntries = "roadmap_entries"
	// Table holds the table name of the articlerecommendation in the database.
	Table = "article_recommendations"
	// ClusterTable is the table that holds the cluster relation/edge.
	ClusterTable = "article_recommendations"
	// ClusterInverseTable is the table name for the TopicCluster entity.
	// It exists in this package in order to avoid circular dependency with the "topiccluster" package.
	ClusterInverseTable = "topic_clusters"
	// ClusterColumn is the table column denoting the cluster relation/edge.
	ClusterColumn = "topic_cluster_id"
	// RoadmapEntriesTable is the table that holds the roadmap_entries relation/edge.
	RoadmapEntriesTable = "content_roadmaps"
	// RoadmapEntriesInverseTable is the table name for the ContentRoadmap entity.
	// It exists in this package in order to avoid circular dependency with the "contentroadmap" package.
	RoadmapEntriesInverseTable = "content_roadmaps"
	// RoadmapEntriesColumn is the table column denoting the roadmap_entries relation/edge.
	RoadmapEntriesColumn = "recommendation_id"
)

// Columns holds all SQL columns for articlerecommendation fields.
var Columns = []string{
	FieldID,
	FieldTopicClusterID,
	FieldTitle,
	FieldHook,
	FieldOutline,
	FieldDifferentiationScore,
	FieldEffortLevel,
	FieldStatus,
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
	// DefaultDifferentiationScore holds the default value on creation for the "differentiation_score" field.
	DefaultDifferentiationScore float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EffortLevel defines the type for the "effort_level" enum field.
type EffortLevel string

// EffortLevelMedium is the default value of the EffortLevel enum.
const DefaultEffortLevel = EffortLevelMedium

// EffortLevel values.
const (
	EffortLevelEasy    EffortLevel = "easy"
	EffortLevelMedium  EffortLevel = "medium"
	EffortLevelComplex EffortLevel = "complex"
)

func (el EffortLevel) String() string {
	return string(el)
}

// EffortLevelValidator is a validator for the "effort_level" field enum values. It is called by the builders before save.
func EffortLevelValidator(el EffortLevel) error {
	switch el {
	case EffortLevelEasy, EffortLevelMedium, EffortLevelComplex:
		return nil
	default:
		return fmt.Errorf("articlerecommendation: invalid enum value for effort_level field: %q", el)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusSuggested is the default value of the Status enum.
const DefaultStatus = StatusSuggested

// Status values.
const (
	StatusSuggested Status = "suggested"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusPublished Status = "published"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuggested, StatusAccepted, StatusRejected, StatusPublished:
		return nil
	default:
		return fmt.Errorf("articlerecommendation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ArticleRecommendation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicClusterID orders the results by the topic_cluster_id field.
func ByTopicClusterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicClusterID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByHook orders the results by the hook field.
func ByHook(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHook, opts...).ToFunc()
}

// ByDifferentiationScore orders the results by the differentiation_score field.
func ByDifferentiationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifferentiationScore, opts...).ToFunc()
}

// ByEffortLevel orders the results by the effort_level field.
func ByEffortLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffortLevel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
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

// ByRoadmapEntriesCount orders the results by roadmap_entries count.
func ByRoadmapEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRoadmapEntriesStep(), opts...)
	}
}

// ByRoadmapEntries orders the results by roadmap_entries terms.
func ByRoadmapEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoadmapEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newClusterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClusterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClusterTable, ClusterColumn),
	)
}
func newRoadmapEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoadmapEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RoadmapEntriesTable, RoadmapEntriesColumn),
	)
}
