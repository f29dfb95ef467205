// Code generated by ent, DO NOT EDIT.

package trendanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldLTE(FieldID, id))
}

// TopicClusterID applies equality check predicate on the "topic_cluster_id" field. It's identical to TopicClusterIDEQ.
func TopicClusterID(v int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEQ(FieldTopicClusterID, v))
}

// Synthesis applies equality check predicate on the "synthesis" field. It's identical to SynthesisEQ.
func Synthesis(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEQ(FieldSynthesis, v))
}

// LlmModelUsed applies equality check predicate on the "llm_model_used" field. It's identical to LlmModelUsedEQ.
func LlmModelUsed(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEQ(FieldLlmModelUsed, v))
}

// ProcessingTimeSeconds applies equality check predicate on the "processing_time_seconds" field. It's identical to ProcessingTimeSecondsEQ.
func ProcessingTimeSeconds(v float64) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEQ(FieldProcessingTimeSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// TopicClusterIDEQ applies the EQ predicate on the "topic_cluster_id" field.
func TopicClusterIDEQ(v int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEQ(FieldTopicClusterID, v))
}

// TopicClusterIDNEQ applies the NEQ predicate on the "topic_cluster_id" field.
func TopicClusterIDNEQ(v int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNEQ(FieldTopicClusterID, v))
}

// TopicClusterIDIn applies the In predicate on the "topic_cluster_id" field.
func TopicClusterIDIn(vs ...int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldIn(FieldTopicClusterID, vs...))
}

// TopicClusterIDNotIn applies the NotIn predicate on the "topic_cluster_id" field.
func TopicClusterIDNotIn(vs ...int) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNotIn(FieldTopicClusterID, vs...))
}

// SynthesisEQ applies the EQ predicate on the "synthesis" field.
func SynthesisEQ(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEQ(FieldSynthesis, v))
}

// SynthesisNEQ applies the NEQ predicate on the "synthesis" field.
func SynthesisNEQ(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNEQ(FieldSynthesis, v))
}

// SynthesisIn applies the In predicate on the "synthesis" field.
func SynthesisIn(vs ...string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldIn(FieldSynthesis, vs...))
}

// SynthesisNotIn applies the NotIn predicate on the "synthesis" field.
func SynthesisNotIn(vs ...string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNotIn(FieldSynthesis, vs...))
}

// SynthesisGT applies the GT predicate on the "synthesis" field.
func SynthesisGT(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldGT(FieldSynthesis, v))
}

// SynthesisGTE applies the GTE predicate on the "synthesis" field.
func SynthesisGTE(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldGTE(FieldSynthesis, v))
}

// SynthesisLT applies the LT predicate on the "synthesis" field.
func SynthesisLT(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldLT(FieldSynthesis, v))
}

// SynthesisLTE applies the LTE predicate on the "synthesis" field.
func SynthesisLTE(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldLTE(FieldSynthesis, v))
}

// SynthesisContains applies the Contains predicate on the "synthesis" field.
func SynthesisContains(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldContains(FieldSynthesis, v))
}

// SynthesisHasPrefix applies the HasPrefix predicate on the "synthesis" field.
func SynthesisHasPrefix(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldHasPrefix(FieldSynthesis, v))
}

// SynthesisHasSuffix applies the HasSuffix predicate on the "synthesis" field.
func SynthesisHasSuffix(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldHasSuffix(FieldSynthesis, v))
}

// SynthesisIsNil applies the IsNil predicate on the "synthesis" field.
func SynthesisIsNil() predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldIsNull(FieldSynthesis))
}

// SynthesisNotNil applies the NotNil predicate on the "synthesis" field.
func SynthesisNotNil() predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNotNull(FieldSynthesis))
}

// SynthesisEqualFold applies the EqualFold predicate on the "synthesis" field.
func SynthesisEqualFold(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEqualFold(FieldSynthesis, v))
}

// SynthesisContainsFold applies the ContainsFold predicate on the "synthesis" field.
func SynthesisContainsFold(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldContainsFold(FieldSynthesis, v))
}

// SaturatedAnglesIsNil applies the IsNil predicate on the "saturated_angles" field.
func SaturatedAnglesIsNil() predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldIsNull(FieldSaturatedAngles))
}

// SaturatedAnglesNotNil applies the NotNil predicate on the "saturated_angles" field.
func SaturatedAnglesNotNil() predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNotNull(FieldSaturatedAngles))
}

// OpportunitiesIsNil applies the IsNil predicate on the "opportunities" field.
func OpportunitiesIsNil() predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldIsNull(FieldOpportunities))
}

// OpportunitiesNotNil applies the NotNil predicate on the "opportunities" field.
func OpportunitiesNotNil() predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNotNull(FieldOpportunities))
}

// LlmModelUsedEQ applies the EQ predicate on the "llm_model_used" field.
func LlmModelUsedEQ(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEQ(FieldLlmModelUsed, v))
}

// LlmModelUsedNEQ applies the NEQ predicate on the "llm_model_used" field.
func LlmModelUsedNEQ(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNEQ(FieldLlmModelUsed, v))
}

// LlmModelUsedIn applies the In predicate on the "llm_model_used" field.
func LlmModelUsedIn(vs ...string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldIn(FieldLlmModelUsed, vs...))
}

// LlmModelUsedNotIn applies the NotIn predicate on the "llm_model_used" field.
func LlmModelUsedNotIn(vs ...string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNotIn(FieldLlmModelUsed, vs...))
}

// LlmModelUsedGT applies the GT predicate on the "llm_model_used" field.
func LlmModelUsedGT(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldGT(FieldLlmModelUsed, v))
}

// LlmModelUsedGTE applies the GTE predicate on the "llm_model_used" field.
func LlmModelUsedGTE(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldGTE(FieldLlmModelUsed, v))
}

// LlmModelUsedLT applies the LT predicate on the "llm_model_used" field.
func LlmModelUsedLT(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldLT(FieldLlmModelUsed, v))
}

// LlmModelUsedLTE applies the LTE predicate on the "llm_model_used" field.
func LlmModelUsedLTE(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldLTE(FieldLlmModelUsed, v))
}

// LlmModelUsedContains applies the Contains predicate on the "llm_model_used" field.
func LlmModelUsedContains(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldContains(FieldLlmModelUsed, v))
}

// LlmModelUsedHasPrefix applies the HasPrefix predicate on the "llm_model_used" field.
func LlmModelUsedHasPrefix(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldHasPrefix(FieldLlmModelUsed, v))
}

// LlmModelUsedHasSuffix applies the HasSuffix predicate on the "llm_model_used" field.
func LlmModelUsedHasSuffix(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldHasSuffix(FieldLlmModelUsed, v))
}

// LlmModelUsedIsNil applies the IsNil predicate on the "llm_model_used" field.
func LlmModelUsedIsNil() predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldIsNull(FieldLlmModelUsed))
}

// LlmModelUsedNotNil applies the NotNil predicate on the "llm_model_used" field.
func LlmModelUsedNotNil() predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNotNull(FieldLlmModelUsed))
}

// LlmModelUsedEqualFold applies the EqualFold predicate on the "llm_model_used" field.
func LlmModelUsedEqualFold(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEqualFold(FieldLlmModelUsed, v))
}

// LlmModelUsedContainsFold applies the ContainsFold predicate on the "llm_model_used" field.
func LlmModelUsedContainsFold(v string) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldContainsFold(FieldLlmModelUsed, v))
}

// ProcessingTimeSecondsEQ applies the EQ predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsEQ(v float64) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEQ(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsNEQ applies the NEQ predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsNEQ(v float64) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNEQ(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsIn applies the In predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsIn(vs ...float64) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldIn(FieldProcessingTimeSeconds, vs...))
}

// ProcessingTimeSecondsNotIn applies the NotIn predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsNotIn(vs ...float64) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNotIn(FieldProcessingTimeSeconds, vs...))
}

// ProcessingTimeSecondsGT applies the GT predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsGT(v float64) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldGT(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsGTE applies the GTE predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsGTE(v float64) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldGTE(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsLT applies the LT predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsLT(v float64) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldLT(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsLTE applies the LTE predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsLTE(v float64) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldLTE(FieldProcessingTimeSeconds, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCluster applies the HasEdge predicate on the "cluster" edge.
func HasCluster() predicate.TrendAnalysis {
	return predicate.TrendAnalysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClusterTable, ClusterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClusterWith applies the HasEdge predicate on the "cluster" edge with a given conditions (other predicates).
func HasClusterWith(preds ...predicate.TopicCluster) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(func(s *sql.Selector) {
		step := newClusterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrendAnalysis) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrendAnalysis) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrendAnalysis) predicate.TrendAnalysis {
	return predicate.TrendAnalysis(sql.NotPredicates(p))
}
