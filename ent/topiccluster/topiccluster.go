// Code generated by ent, DO NOT EDIT.

package topiccluster

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the topiccluster type in the database.
	Label = "topic_cluster"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAnalysisID holds the string denoting the analysis_id field in the database.
	FieldAnalysisID = "analysis_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldTopTerms holds the string denoting the top_terms field in the database.
	FieldTopTerms = "top_terms"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldDocumentIds holds the string denoting the document_ids field in the database.
	FieldDocumentIds = "document_ids"
	// FieldCentroidVectorID holds the string denoting the centroid_vector_id field in the database.
	FieldCentroidVectorID = "centroid_vector_id"
	// FieldCoherenceScore holds the string denoting the coherence_score field in the database.
	FieldCoherenceScore = "coherence_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAnalysis holds the string denoting the analysis edge name in mutations.
	EdgeAnalysis = "analysis"
	// EdgeTemporalMetrics holds the string denoting the temporal_metrics edge name in mutations.
	EdgeTemporalMetrics = "temporal_metrics"
	// EdgeTrendAnalyses holds the string denoting the trend_analyses edge name in mutations.
	EdgeTrendAnalyses = "trend_analyses"
	// EdgeRecommendations holds the string denoting the recommendations edge name in mutations.
	EdgeRecommendations = "recommendations"
	// EdgeGaps holds the string denoting the gaps edge name in mutations.
	EdgeGaps = "gaps"
	// EdgeStrengths holds the string denoting the strengths edge name in mutations.
	EdgeStrengths = "strengths"
	// EdgeCoverageAnalyses holds the string denoting the coverage_analyses edge name in mutations.
	EdgeCoverageAnalyses = "coverage_analyses"
	// Table holds the table name of the topiccluster in the database.
	Table = "topic_clusters"
	// AnalysisTable is the table that holds the analysis relation/edge.
	AnalysisTable = "topic_clusters"
	// AnalysisInverseTable is the table name for the TrendPipelineExecution entity.
	// It exists in this package in order to avoid circular dependency with the "trendpipelineexecution" package.
	AnalysisInverseTable = "trend_pipeline_executions"
	// AnalysisColumn is the table column denoting the analysis relation/edge.
	AnalysisColumn = "analysis_id"
	// TemporalMetricsTable is the table that holds the temporal_metrics relation/edge.
	TemporalMetricsTable = "topic_temporal_metrics"
	// TemporalMetricsInverseTable is the table name for the TopicTemporalMetrics entity.
	// It exists in this package in order to avoid circular dependency with the "topictemporalmetrics" package.
	TemporalMetricsInverseTable = "topic_temporal_metrics"
	// TemporalMetricsColumn is the table column denoting the temporal_metrics relation/edge.
	TemporalMetricsColumn = "topic_cluster_id"
	// TrendAnalysesTable is the table that holds the trend_analyses relation/edge.
	TrendAnalysesTable = "trend_analyses"
	// TrendAnalysesInverseTable is the table name for the TrendAnalysis entity.
	// It exists in this package in order to avoid circular dependency with the "trendanalysis" package.
	TrendAnalysesInverseTable = "trend_analyses"
	// TrendAnalysesColumn is the table column denoting the trend_analyses relation/edge.
	TrendAnalysesColumn = "topic_cluster_id"
	// RecommendationsTable is the table that holds the recommendations relation/edge.
	RecommendationsTable = "article_recommendations"
	// RecommendationsInverseTable is the table name for the ArticleRecommendation entity.
	// It exists in this package in order to avoid circular dependency with the "articlerecommendation" package.
	RecommendationsInverseTable = "article_recommendations"
	// RecommendationsColumn is the table column denoting the recommendations relation/edge.
	RecommendationsColumn = "topic_cluster_id"
	// GapsTable is the table that holds the gaps relation/edge.
	GapsTable = "editorial_gaps"
	// GapsInverseTable is the table name for the EditorialGap entity.
	// It exists in this package in order to avoid circular dependency with the "editorialgap" package.
	GapsInverseTable = "editorial_gaps"
	// GapsColumn is the table column denoting the gaps relation/edge.
	GapsColumn = "topic_cluster_id"
	// StrengthsTable is the table that holds the strengths relation/edge.
	StrengthsTable = "client_strengths"
	// StrengthsInverseTable is the table name for the ClientStrength entity.
	// It exists in this package in order to avoid circular dependency with the "clientstrength" package.
	StrengthsInverseTable = "client_strengths"
	// StrengthsColumn is the table column denoting the strengths relation/edge.
	StrengthsColumn = "topic_cluster_id"
	// CoverageAnalysesTable is the table that holds the coverage_analyses relation/edge.
	CoverageAnalysesTable = "coverage_analyses"
	// CoverageAnalysesInverseTable is the table name for the CoverageAnalysis entity.
	// It exists in this package in order to avoid circular dependency with the "coverageanalysis" package.
	CoverageAnalysesInverseTable = "coverage_analyses"
	// CoverageAnalysesColumn is the table column denoting the coverage_analyses relation/edge.
	CoverageAnalysesColumn = "topic_cluster_id"
)

// Columns holds all SQL columns for topiccluster fields.
var Columns = []string{
	FieldID,
	FieldAnalysisID,
	FieldTopicID,
	FieldLabel,
	FieldTopTerms,
	FieldSize,
	FieldDocumentIds,
	FieldCentroidVectorID,
	FieldCoherenceScore,
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
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(int) error
	// DefaultCoherenceScore holds the default value on creation for the "coherence_score" field.
	DefaultCoherenceScore float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TopicCluster queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnalysisID orders the results by the analysis_id field.
func ByAnalysisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
}

// ByCentroidVectorID orders the results by the centroid_vector_id field.
func ByCentroidVectorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCentroidVectorID, opts...).ToFunc()
}

// ByCoherenceScore orders the results by the coherence_score field.
func ByCoherenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoherenceScore, opts...).ToFunc()
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

// ByTemporalMetricsCount orders the results by temporal_metrics count.
func ByTemporalMetricsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTemporalMetricsStep(), opts...)
	}
}

// ByTemporalMetrics orders the results by temporal_metrics terms.
func ByTemporalMetrics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTemporalMetricsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTrendAnalysesCount orders the results by trend_analyses count.
func ByTrendAnalysesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTrendAnalysesStep(), opts...)
	}
}

// ByTrendAnalyses orders the results by trend_analyses terms.
func ByTrendAnalyses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrendAnalysesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRecommendationsCount orders the results by recommendations count.
func ByRecommendationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecommendationsStep(), opts...)
	}
}

// ByRecommendations orders the results by recommendations terms.
func ByRecommendations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecommendationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGapsCount orders the results by gaps count.
func ByGapsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGapsStep(), opts...)
	}
}

// ByGaps orders the results by gaps terms.
func ByGaps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGapsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStrengthsCount orders the results by strengths count.
func ByStrengthsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStrengthsStep(), opts...)
	}
}

// ByStrengths orders the results by strengths terms.
func ByStrengths(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStrengthsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCoverageAnalysesCount orders the results by coverage_analyses count.
func ByCoverageAnalysesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCoverageAnalysesStep(), opts...)
	}
}

// ByCoverageAnalyses orders the results by coverage_analyses terms.
func ByCoverageAnalyses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCoverageAnalysesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAnalysisStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysisInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnalysisTable, AnalysisColumn),
	)
}
func newTemporalMetricsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TemporalMetricsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TemporalMetricsTable, TemporalMetricsColumn),
	)
}
func newTrendAnalysesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrendAnalysesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TrendAnalysesTable, TrendAnalysesColumn),
	)
}
func newRecommendationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecommendationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecommendationsTable, RecommendationsColumn),
	)
}
func newGapsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GapsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GapsTable, GapsColumn),
	)
}
func newStrengthsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StrengthsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StrengthsTable, StrengthsColumn),
	)
}
func newCoverageAnalysesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CoverageAnalysesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CoverageAnalysesTable, CoverageAnalysesColumn),
	)
}
