// Code generated by ent, DO NOT EDIT.

package topicoutlier

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLTE(FieldID, id))
}

// AnalysisID applies equality check predicate on the "analysis_id" field. It's identical to AnalysisIDEQ.
func AnalysisID(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldAnalysisID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldDocumentID, v))
}

// ArticleID applies equality check predicate on the "article_id" field. It's identical to ArticleIDEQ.
func ArticleID(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldArticleID, v))
}

// NearestTopicID applies equality check predicate on the "nearest_topic_id" field. It's identical to NearestTopicIDEQ.
func NearestTopicID(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldNearestTopicID, v))
}

// PotentialCategory applies equality check predicate on the "potential_category" field. It's identical to PotentialCategoryEQ.
func PotentialCategory(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldPotentialCategory, v))
}

// EmbeddingDistance applies equality check predicate on the "embedding_distance" field. It's identical to EmbeddingDistanceEQ.
func EmbeddingDistance(v float64) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldEmbeddingDistance, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldCreatedAt, v))
}

// AnalysisIDEQ applies the EQ predicate on the "analysis_id" field.
func AnalysisIDEQ(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldAnalysisID, v))
}

// AnalysisIDNEQ applies the NEQ predicate on the "analysis_id" field.
func AnalysisIDNEQ(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNEQ(FieldAnalysisID, v))
}

// AnalysisIDIn applies the In predicate on the "analysis_id" field.
func AnalysisIDIn(vs ...int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldIn(FieldAnalysisID, vs...))
}

// AnalysisIDNotIn applies the NotIn predicate on the "analysis_id" field.
func AnalysisIDNotIn(vs ...int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNotIn(FieldAnalysisID, vs...))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldContainsFold(FieldDocumentID, v))
}

// ArticleIDEQ applies the EQ predicate on the "article_id" field.
func ArticleIDEQ(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldArticleID, v))
}

// ArticleIDNEQ applies the NEQ predicate on the "article_id" field.
func ArticleIDNEQ(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNEQ(FieldArticleID, v))
}

// ArticleIDIn applies the In predicate on the "article_id" field.
func ArticleIDIn(vs ...int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldIn(FieldArticleID, vs...))
}

// ArticleIDNotIn applies the NotIn predicate on the "article_id" field.
func ArticleIDNotIn(vs ...int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNotIn(FieldArticleID, vs...))
}

// ArticleIDGT applies the GT predicate on the "article_id" field.
func ArticleIDGT(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGT(FieldArticleID, v))
}

// ArticleIDGTE applies the GTE predicate on the "article_id" field.
func ArticleIDGTE(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGTE(FieldArticleID, v))
}

// ArticleIDLT applies the LT predicate on the "article_id" field.
func ArticleIDLT(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLT(FieldArticleID, v))
}

// ArticleIDLTE applies the LTE predicate on the "article_id" field.
func ArticleIDLTE(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLTE(FieldArticleID, v))
}

// ArticleIDIsNil applies the IsNil predicate on the "article_id" field.
func ArticleIDIsNil() predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldIsNull(FieldArticleID))
}

// ArticleIDNotNil applies the NotNil predicate on the "article_id" field.
func ArticleIDNotNil() predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNotNull(FieldArticleID))
}

// NearestTopicIDEQ applies the EQ predicate on the "nearest_topic_id" field.
func NearestTopicIDEQ(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldNearestTopicID, v))
}

// NearestTopicIDNEQ applies the NEQ predicate on the "nearest_topic_id" field.
func NearestTopicIDNEQ(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNEQ(FieldNearestTopicID, v))
}

// NearestTopicIDIn applies the In predicate on the "nearest_topic_id" field.
func NearestTopicIDIn(vs ...int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldIn(FieldNearestTopicID, vs...))
}

// NearestTopicIDNotIn applies the NotIn predicate on the "nearest_topic_id" field.
func NearestTopicIDNotIn(vs ...int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNotIn(FieldNearestTopicID, vs...))
}

// NearestTopicIDGT applies the GT predicate on the "nearest_topic_id" field.
func NearestTopicIDGT(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGT(FieldNearestTopicID, v))
}

// NearestTopicIDGTE applies the GTE predicate on the "nearest_topic_id" field.
func NearestTopicIDGTE(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGTE(FieldNearestTopicID, v))
}

// NearestTopicIDLT applies the LT predicate on the "nearest_topic_id" field.
func NearestTopicIDLT(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLT(FieldNearestTopicID, v))
}

// NearestTopicIDLTE applies the LTE predicate on the "nearest_topic_id" field.
func NearestTopicIDLTE(v int) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLTE(FieldNearestTopicID, v))
}

// NearestTopicIDIsNil applies the IsNil predicate on the "nearest_topic_id" field.
func NearestTopicIDIsNil() predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldIsNull(FieldNearestTopicID))
}

// NearestTopicIDNotNil applies the NotNil predicate on the "nearest_topic_id" field.
func NearestTopicIDNotNil() predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNotNull(FieldNearestTopicID))
}

// PotentialCategoryEQ applies the EQ predicate on the "potential_category" field.
func PotentialCategoryEQ(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldPotentialCategory, v))
}

// PotentialCategoryNEQ applies the NEQ predicate on the "potential_category" field.
func PotentialCategoryNEQ(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNEQ(FieldPotentialCategory, v))
}

// PotentialCategoryIn applies the In predicate on the "potential_category" field.
func PotentialCategoryIn(vs ...string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldIn(FieldPotentialCategory, vs...))
}

// PotentialCategoryNotIn applies the NotIn predicate on the "potential_category" field.
func PotentialCategoryNotIn(vs ...string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNotIn(FieldPotentialCategory, vs...))
}

// PotentialCategoryGT applies the GT predicate on the "potential_category" field.
func PotentialCategoryGT(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGT(FieldPotentialCategory, v))
}

// PotentialCategoryGTE applies the GTE predicate on the "potential_category" field.
func PotentialCategoryGTE(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGTE(FieldPotentialCategory, v))
}

// PotentialCategoryLT applies the LT predicate on the "potential_category" field.
func PotentialCategoryLT(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLT(FieldPotentialCategory, v))
}

// PotentialCategoryLTE applies the LTE predicate on the "potential_category" field.
func PotentialCategoryLTE(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLTE(FieldPotentialCategory, v))
}

// PotentialCategoryContains applies the Contains predicate on the "potential_category" field.
func PotentialCategoryContains(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldContains(FieldPotentialCategory, v))
}

// PotentialCategoryHasPrefix applies the HasPrefix predicate on the "potential_category" field.
func PotentialCategoryHasPrefix(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldHasPrefix(FieldPotentialCategory, v))
}

// PotentialCategoryHasSuffix applies the HasSuffix predicate on the "potential_category" field.
func PotentialCategoryHasSuffix(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldHasSuffix(FieldPotentialCategory, v))
}

// PotentialCategoryIsNil applies the IsNil predicate on the "potential_category" field.
func PotentialCategoryIsNil() predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldIsNull(FieldPotentialCategory))
}

// PotentialCategoryNotNil applies the NotNil predicate on the "potential_category" field.
func PotentialCategoryNotNil() predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNotNull(FieldPotentialCategory))
}

// PotentialCategoryEqualFold applies the EqualFold predicate on the "potential_category" field.
func PotentialCategoryEqualFold(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEqualFold(FieldPotentialCategory, v))
}

// PotentialCategoryContainsFold applies the ContainsFold predicate on the "potential_category" field.
func PotentialCategoryContainsFold(v string) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldContainsFold(FieldPotentialCategory, v))
}

// EmbeddingDistanceEQ applies the EQ predicate on the "embedding_distance" field.
func EmbeddingDistanceEQ(v float64) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldEmbeddingDistance, v))
}

// EmbeddingDistanceNEQ applies the NEQ predicate on the "embedding_distance" field.
func EmbeddingDistanceNEQ(v float64) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNEQ(FieldEmbeddingDistance, v))
}

// EmbeddingDistanceIn applies the In predicate on the "embedding_distance" field.
func EmbeddingDistanceIn(vs ...float64) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldIn(FieldEmbeddingDistance, vs...))
}

// EmbeddingDistanceNotIn applies the NotIn predicate on the "embedding_distance" field.
func EmbeddingDistanceNotIn(vs ...float64) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNotIn(FieldEmbeddingDistance, vs...))
}

// EmbeddingDistanceGT applies the GT predicate on the "embedding_distance" field.
func EmbeddingDistanceGT(v float64) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGT(FieldEmbeddingDistance, v))
}

// EmbeddingDistanceGTE applies the GTE predicate on the "embedding_distance" field.
func EmbeddingDistanceGTE(v float64) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGTE(FieldEmbeddingDistance, v))
}

// EmbeddingDistanceLT applies the LT predicate on the "embedding_distance" field.
func EmbeddingDistanceLT(v float64) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLT(FieldEmbeddingDistance, v))
}

// EmbeddingDistanceLTE applies the LTE predicate on the "embedding_distance" field.
func EmbeddingDistanceLTE(v float64) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLTE(FieldEmbeddingDistance, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAnalysis applies the HasEdge predicate on the "analysis" edge.
func HasAnalysis() predicate.TopicOutlier {
	return predicate.TopicOutlier(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnalysisTable, AnalysisColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysisWith applies the HasEdge predicate on the "analysis" edge with a given conditions (other predicates).
func HasAnalysisWith(preds ...predicate.TrendPipelineExecution) predicate.TopicOutlier {
	return predicate.TopicOutlier(func(s *sql.Selector) {
		step := newAnalysisStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicOutlier) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicOutlier) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicOutlier) predicate.TopicOutlier {
	return predicate.TopicOutlier(sql.NotPredicates(p))
}
