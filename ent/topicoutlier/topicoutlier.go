// Code generated by ent, DO NOT EDIT.

package topicoutlier

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the topicoutlier type in the database.
	Label = "topic_outlier"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAnalysisID holds the string denoting the analysis_id field in the database.
	FieldAnalysisID = "analysis_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldArticleID holds the string denoting the article_id field in the database.
	FieldArticleID = "article_id"
	// FieldNearestTopicID holds the string denoting the nearest_topic_id field in the database.
	FieldNearestTopicID = "nearest_topic_id"
	// FieldPotentialCategory holds the string denoting the potential_category field in the database.
	FieldPotentialCategory = "potential_category"
	// FieldEmbeddingDistance holds the string denoting the embedding_distance field in the database.
	FieldEmbeddingDistance = "embedding_distance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAnalysis holds the string denoting the analysis edge name in mutations.
	EdgeAnalysis = "analysis"
	// Table holds the table name of the topicoutlier in the database.
	Table = "topic_outliers"
	// AnalysisTable is the table that holds the analysis relation/edge.
	AnalysisTable = "topic_outliers"
	// AnalysisInverseTable is the table name for the TrendPipelineExecution entity.
	// It exists in this package in order to avoid circular dependency with the "trendpipelineexecution" package.
	AnalysisInverseTable = "trend_pipeline_executions"
	// AnalysisColumn is the table column denoting the analysis relation/edge.
	AnalysisColumn = "analysis_id"
)

// Columns holds all SQL columns for topicoutlier fields.
var Columns = []string{
	FieldID,
	FieldAnalysisID,
	FieldDocumentID,
	FieldArticleID,
	FieldNearestTopicID,
	FieldPotentialCategory,
	FieldEmbeddingDistance,
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

// OrderOption defines the ordering options for the TopicOutlier queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnalysisID orders the results by the analysis_id field.
func ByAnalysisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByArticleID orders the results by the article_id field.
func ByArticleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleID, opts...).ToFunc()
}

// ByNearestTopicID orders the results by the nearest_topic_id field.
func ByNearestTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNearestTopicID, opts...).ToFunc()
}

// ByPotentialCategory orders the results by the potential_category field.
func ByPotentialCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPotentialCategory, opts...).ToFunc()
}

// ByEmbeddingDistance orders the results by the embedding_distance field.
func ByEmbeddingDistance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbeddingDistance, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAnalysisField orders the results by analysis field.
func ByAnalysisField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysisStep(), sql.OrderByField(field, opts...))
	}
}
func newAnalysisStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysisInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnalysisTable, AnalysisColumn),
	)
}
