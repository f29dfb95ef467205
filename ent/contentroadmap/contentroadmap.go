// Code generated by ent, DO NOT EDIT.

package contentroadmap

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the contentroadmap type in the database.
	Label = "content_roadmap"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClientDomain holds the string denoting the client_domain field in the database.
	FieldClientDomain = "client_domain"
	// FieldGapID holds the string denoting the gap_id field in the database.
	FieldGapID = "gap_id"
	// FieldRecommendationID holds the string denoting the recommendation_id field in the database.
	FieldRecommendationID = "recommendation_id"
	// FieldPriorityOrder holds the string denoting the priority_order field in the database.
	FieldPriorityOrder = "priority_order"
	// FieldPriorityTier holds the string denoting the priority_tier field in the database.
	FieldPriorityTier = "priority_tier"
	// FieldEstimatedEffort holds the string denoting the estimated_effort field in the database.
	FieldEstimatedEffort = "estimated_effort"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeGap holds the string denoting the gap edge name in mutations.
	EdgeGap = "gap"
	// EdgeRecommendation holds the string denoting the recommendation edge name in mutations.
	EdgeRecommendation = "recommendation"
	// Table holds the table name of the contentroadmap in the database.
	Table = "content_roadmaps"
	// GapTable is the table that holds the gap relation/edge.
	GapTable = "content_roadmaps"
	// GapInverseTable is the table name for the EditorialGap entity.
	// It exists in this package in order to avoid circular dependency with the "editorialgap" package.
	GapInverseTable = "editorial_gaps"
	// GapColumn is the table column denoting the gap relation/edge.
	GapColumn = "gap_id"
	// RecommendationTable is the table that holds the recommendation relation/edge.
	RecommendationTable = "content_roadmaps"
	// RecommendationInverseTable is the table name for the ArticleRecommendation entity.
	// It exists in this package in order to avoid circular dependency with the "articlerecommendation" package.
	RecommendationInverseTable = "article_recommendations"
	// RecommendationColumn is the table column denoting the recommendation relation/edge.
	RecommendationColumn = "recommendation_id"
)

// Columns holds all SQL columns for contentroadmap fields.
var Columns = []string{
	FieldID,
	FieldClientDomain,
	FieldGapID,
	FieldRecommendationID,
	FieldPriorityOrder,
	FieldPriorityTier,
	FieldEstimatedEffort,
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
	// PriorityOrderValidator is a validator for the "priority_order" field. It is called by the builders before save.
	PriorityOrderValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// PriorityTier defines the type for the "priority_tier" enum field.
type PriorityTier string

// PriorityTier values.
const (
	PriorityTierHigh   PriorityTier = "high"
	PriorityTierMedium PriorityTier = "medium"
	PriorityTierLow    PriorityTier = "low"
)

func (pt PriorityTier) String() string {
	return string(pt)
}

// PriorityTierValidator is a validator for the "priority_tier" field enum values. It is called by the builders before save.
func PriorityTierValidator(pt PriorityTier) error {
	switch pt {
	case PriorityTierHigh, PriorityTierMedium, PriorityTierLow:
		return nil
	default:
		return fmt.Errorf("contentroadmap: invalid enum value for priority_tier field: %q", pt)
	}
}

// EstimatedEffort defines the type for the "estimated_effort" enum field.
type EstimatedEffort string

// EstimatedEffort values.
const (
	EstimatedEffortEasy    EstimatedEffort = "easy"
	EstimatedEffortMedium  EstimatedEffort = "medium"
	EstimatedEffortComplex EstimatedEffort = "complex"
)

func (ee EstimatedEffort) String() string {
	return string(ee)
}

// EstimatedEffortValidator is a validator for the "estimated_effort" field enum values. It is called by the builders before save.
func EstimatedEffortValidator(ee EstimatedEffort) error {
	switch ee {
	case EstimatedEffortEasy, EstimatedEffortMedium, EstimatedEffortComplex:
		return nil
	default:
		return fmt.Errorf("contentroadmap: invalid enum value for estimated_effort field: %q", ee)
	}
}

// OrderOption defines the ordering options for the ContentRoadmap queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClientDomain orders the results by the client_domain field.
func ByClientDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientDomain, opts...).ToFunc()
}

// ByGapID orders the results by the gap_id field.
func ByGapID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGapID, opts...).ToFunc()
}

// ByRecommendationID orders the results by the recommendation_id field.
func ByRecommendationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendationID, opts...).ToFunc()
}

// ByPriorityOrder orders the results by the priority_order field.
func ByPriorityOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityOrder, opts...).ToFunc()
}

// ByPriorityTier orders the results by the priority_tier field.
func ByPriorityTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityTier, opts...).ToFunc()
}

// ByEstimatedEffort orders the results by the estimated_effort field.
func ByEstimatedEffort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedEffort, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByGapField orders the results by gap field.
func ByGapField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGapStep(), sql.OrderByField(field, opts...))
	}
}

// ByRecommendationField orders the results by recommendation field.
func ByRecommendationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecommendationStep(), sql.OrderByField(field, opts...))
	}
}
func newGapStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GapInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GapTable, GapColumn),
	)
}
func newRecommendationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecommendationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecommendationTable, RecommendationColumn),
	)
}
