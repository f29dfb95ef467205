// Code generated by ent, DO NOT EDIT.

package topiccluster

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLTE(FieldID, id))
}

// AnalysisID applies equality check predicate on the "analysis_id" field. It's identical to AnalysisIDEQ.
func AnalysisID(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldAnalysisID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldTopicID, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldSize, v))
}

// CentroidVectorID applies equality check predicate on the "centroid_vector_id" field. It's identical to CentroidVectorIDEQ.
func CentroidVectorID(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldCentroidVectorID, v))
}

// CoherenceScore applies equality check predicate on the "coherence_score" field. It's identical to CoherenceScoreEQ.
func CoherenceScore(v float64) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldCoherenceScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldCreatedAt, v))
}

// AnalysisIDEQ applies the EQ predicate on the "analysis_id" field.
func AnalysisIDEQ(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldAnalysisID, v))
}

// AnalysisIDNEQ applies the NEQ predicate on the "analysis_id" field.
func AnalysisIDNEQ(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNEQ(FieldAnalysisID, v))
}

// AnalysisIDIn applies the In predicate on the "analysis_id" field.
func AnalysisIDIn(vs ...int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldIn(FieldAnalysisID, vs...))
}

// AnalysisIDNotIn applies the NotIn predicate on the "analysis_id" field.
func AnalysisIDNotIn(vs ...int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNotIn(FieldAnalysisID, vs...))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLTE(FieldTopicID, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldContainsFold(FieldLabel, v))
}

// TopTermsIsNil applies the IsNil predicate on the "top_terms" field.
func TopTermsIsNil() predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldIsNull(FieldTopTerms))
}

// TopTermsNotNil applies the NotNil predicate on the "top_terms" field.
func TopTermsNotNil() predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNotNull(FieldTopTerms))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v int) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLTE(FieldSize, v))
}

// CentroidVectorIDEQ applies the EQ predicate on the "centroid_vector_id" field.
func CentroidVectorIDEQ(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldCentroidVectorID, v))
}

// CentroidVectorIDNEQ applies the NEQ predicate on the "centroid_vector_id" field.
func CentroidVectorIDNEQ(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNEQ(FieldCentroidVectorID, v))
}

// CentroidVectorIDIn applies the In predicate on the "centroid_vector_id" field.
func CentroidVectorIDIn(vs ...string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldIn(FieldCentroidVectorID, vs...))
}

// CentroidVectorIDNotIn applies the NotIn predicate on the "centroid_vector_id" field.
func CentroidVectorIDNotIn(vs ...string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNotIn(FieldCentroidVectorID, vs...))
}

// CentroidVectorIDGT applies the GT predicate on the "centroid_vector_id" field.
func CentroidVectorIDGT(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGT(FieldCentroidVectorID, v))
}

// CentroidVectorIDGTE applies the GTE predicate on the "centroid_vector_id" field.
func CentroidVectorIDGTE(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGTE(FieldCentroidVectorID, v))
}

// CentroidVectorIDLT applies the LT predicate on the "centroid_vector_id" field.
func CentroidVectorIDLT(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLT(FieldCentroidVectorID, v))
}

// CentroidVectorIDLTE applies the LTE predicate on the "centroid_vector_id" field.
func CentroidVectorIDLTE(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLTE(FieldCentroidVectorID, v))
}

// CentroidVectorIDContains applies the Contains predicate on the "centroid_vector_id" field.
func CentroidVectorIDContains(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldContains(FieldCentroidVectorID, v))
}

// CentroidVectorIDHasPrefix applies the HasPrefix predicate on the "centroid_vector_id" field.
func CentroidVectorIDHasPrefix(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldHasPrefix(FieldCentroidVectorID, v))
}

// CentroidVectorIDHasSuffix applies the HasSuffix predicate on the "centroid_vector_id" field.
func CentroidVectorIDHasSuffix(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldHasSuffix(FieldCentroidVectorID, v))
}

// CentroidVectorIDIsNil applies the IsNil predicate on the "centroid_vector_id" field.
func CentroidVectorIDIsNil() predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldIsNull(FieldCentroidVectorID))
}

// CentroidVectorIDNotNil applies the NotNil predicate on the "centroid_vector_id" field.
func CentroidVectorIDNotNil() predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNotNull(FieldCentroidVectorID))
}

// CentroidVectorIDEqualFold applies the EqualFold predicate on the "centroid_vector_id" field.
func CentroidVectorIDEqualFold(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEqualFold(FieldCentroidVectorID, v))
}

// CentroidVectorIDContainsFold applies the ContainsFold predicate on the "centroid_vector_id" field.
func CentroidVectorIDContainsFold(v string) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldContainsFold(FieldCentroidVectorID, v))
}

// CoherenceScoreEQ applies the EQ predicate on the "coherence_score" field.
func CoherenceScoreEQ(v float64) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldCoherenceScore, v))
}

// CoherenceScoreNEQ applies the NEQ predicate on the "coherence_score" field.
func CoherenceScoreNEQ(v float64) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNEQ(FieldCoherenceScore, v))
}

// CoherenceScoreIn applies the In predicate on the "coherence_score" field.
func CoherenceScoreIn(vs ...float64) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldIn(FieldCoherenceScore, vs...))
}

// CoherenceScoreNotIn applies the NotIn predicate on the "coherence_score" field.
func CoherenceScoreNotIn(vs ...float64) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNotIn(FieldCoherenceScore, vs...))
}

// CoherenceScoreGT applies the GT predicate on the "coherence_score" field.
func CoherenceScoreGT(v float64) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGT(FieldCoherenceScore, v))
}

// CoherenceScoreGTE applies the GTE predicate on the "coherence_score" field.
func CoherenceScoreGTE(v float64) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGTE(FieldCoherenceScore, v))
}

// CoherenceScoreLT applies the LT predicate on the "coherence_score" field.
func CoherenceScoreLT(v float64) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLT(FieldCoherenceScore, v))
}

// CoherenceScoreLTE applies the LTE predicate on the "coherence_score" field.
func CoherenceScoreLTE(v float64) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLTE(FieldCoherenceScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TopicCluster {
	return predicate.TopicCluster(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAnalysis applies the HasEdge predicate on the "analysis" edge.
func HasAnalysis() predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnalysisTable, AnalysisColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysisWith applies the HasEdge predicate on the "analysis" edge with a given conditions (other predicates).
func HasAnalysisWith(preds ...predicate.TrendPipelineExecution) predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := newAnalysisStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTemporalMetrics applies the HasEdge predicate on the "temporal_metrics" edge.
func HasTemporalMetrics() predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TemporalMetricsTable, TemporalMetricsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTemporalMetricsWith applies the HasEdge predicate on the "temporal_metrics" edge with a given conditions (other predicates).
func HasTemporalMetricsWith(preds ...predicate.TopicTemporalMetrics) predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := newTemporalMetricsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTrendAnalyses applies the HasEdge predicate on the "trend_analyses" edge.
func HasTrendAnalyses() predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TrendAnalysesTable, TrendAnalysesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTrendAnalysesWith applies the HasEdge predicate on the "trend_analyses" edge with a given conditions (other predicates).
func HasTrendAnalysesWith(preds ...predicate.TrendAnalysis) predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := newTrendAnalysesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecommendations applies the HasEdge predicate on the "recommendations" edge.
func HasRecommendations() predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecommendationsTable, RecommendationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecommendationsWith applies the HasEdge predicate on the "recommendations" edge with a given conditions (other predicates).
func HasRecommendationsWith(preds ...predicate.ArticleRecommendation) predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := newRecommendationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGaps applies the HasEdge predicate on the "gaps" edge.
func HasGaps() predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GapsTable, GapsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGapsWith applies the HasEdge predicate on the "gaps" edge with a given conditions (other predicates).
func HasGapsWith(preds ...predicate.EditorialGap) predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := newGapsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStrengths applies the HasEdge predicate on the "strengths" edge.
func HasStrengths() predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StrengthsTable, StrengthsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStrengthsWith applies the HasEdge predicate on the "strengths" edge with a given conditions (other predicates).
func HasStrengthsWith(preds ...predicate.ClientStrength) predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := newStrengthsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCoverageAnalyses applies the HasEdge predicate on the "coverage_analyses" edge.
func HasCoverageAnalyses() predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CoverageAnalysesTable, CoverageAnalysesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCoverageAnalysesWith applies the HasEdge predicate on the "coverage_analyses" edge with a given conditions (other predicates).
func HasCoverageAnalysesWith(preds ...predicate.CoverageAnalysis) predicate.TopicCluster {
	return predicate.TopicCluster(func(s *sql.Selector) {
		step := newCoverageAnalysesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicCluster) predicate.TopicCluster {
	return predicate.TopicCluster(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicCluster) predicate.TopicCluster {
	return predicate.TopicCluster(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicCluster) predicate.TopicCluster {
	return predicate.TopicCluster(sql.NotPredicates(p))
}
