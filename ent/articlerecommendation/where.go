// Code generated by ent, DO NOT EDIT.

package articlerecommendation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldLTE(FieldID, id))
}

// TopicClusterID applies equality check predicate on the "topic_cluster_id" field. It's identical to TopicClusterIDEQ.
func TopicClusterID(v int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldTopicClusterID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldTitle, v))
}

// Hook applies equality check predicate on the "hook" field. It's identical to HookEQ.
func Hook(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldHook, v))
}

// DifferentiationScore applies equality check predicate on the "differentiation_score" field. It's identical to DifferentiationScoreEQ.
func DifferentiationScore(v float64) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldDifferentiationScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldCreatedAt, v))
}

// TopicClusterIDEQ applies the EQ predicate on the "topic_cluster_id" field.
func TopicClusterIDEQ(v int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldTopicClusterID, v))
}

// TopicClusterIDNEQ applies the NEQ predicate on the "topic_cluster_id" field.
func TopicClusterIDNEQ(v int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNEQ(FieldTopicClusterID, v))
}

// TopicClusterIDIn applies the In predicate on the "topic_cluster_id" field.
func TopicClusterIDIn(vs ...int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldIn(FieldTopicClusterID, vs...))
}

// TopicClusterIDNotIn applies the NotIn predicate on the "topic_cluster_id" field.
func TopicClusterIDNotIn(vs ...int) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNotIn(FieldTopicClusterID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldContainsFold(FieldTitle, v))
}

// HookEQ applies the EQ predicate on the "hook" field.
func HookEQ(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldHook, v))
}

// HookNEQ applies the NEQ predicate on the "hook" field.
func HookNEQ(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNEQ(FieldHook, v))
}

// HookIn applies the In predicate on the "hook" field.
func HookIn(vs ...string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldIn(FieldHook, vs...))
}

// HookNotIn applies the NotIn predicate on the "hook" field.
func HookNotIn(vs ...string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNotIn(FieldHook, vs...))
}

// HookGT applies the GT predicate on the "hook" field.
func HookGT(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldGT(FieldHook, v))
}

// HookGTE applies the GTE predicate on the "hook" field.
func HookGTE(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldGTE(FieldHook, v))
}

// HookLT applies the LT predicate on the "hook" field.
func HookLT(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldLT(FieldHook, v))
}

// HookLTE applies the LTE predicate on the "hook" field.
func HookLTE(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldLTE(FieldHook, v))
}

// HookContains applies the Contains predicate on the "hook" field.
func HookContains(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldContains(FieldHook, v))
}

// HookHasPrefix applies the HasPrefix predicate on the "hook" field.
func HookHasPrefix(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldHasPrefix(FieldHook, v))
}

// HookHasSuffix applies the HasSuffix predicate on the "hook" field.
func HookHasSuffix(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldHasSuffix(FieldHook, v))
}

// HookIsNil applies the IsNil predicate on the "hook" field.
func HookIsNil() predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldIsNull(FieldHook))
}

// HookNotNil applies the NotNil predicate on the "hook" field.
func HookNotNil() predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNotNull(FieldHook))
}

// HookEqualFold applies the EqualFold predicate on the "hook" field.
func HookEqualFold(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEqualFold(FieldHook, v))
}

// HookContainsFold applies the ContainsFold predicate on the "hook" field.
func HookContainsFold(v string) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldContainsFold(FieldHook, v))
}

// OutlineIsNil applies the IsNil predicate on the "outline" field.
func OutlineIsNil() predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldIsNull(FieldOutline))
}

// OutlineNotNil applies the NotNil predicate on the "outline" field.
func OutlineNotNil() predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNotNull(FieldOutline))
}

// DifferentiationScoreEQ applies the EQ predicate on the "differentiation_score" field.
func DifferentiationScoreEQ(v float64) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldDifferentiationScore, v))
}

// DifferentiationScoreNEQ applies the NEQ predicate on the "differentiation_score" field.
func DifferentiationScoreNEQ(v float64) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNEQ(FieldDifferentiationScore, v))
}

// DifferentiationScoreIn applies the In predicate on the "differentiation_score" field.
func DifferentiationScoreIn(vs ...float64) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldIn(FieldDifferentiationScore, vs...))
}

// DifferentiationScoreNotIn applies the NotIn predicate on the "differentiation_score" field.
func DifferentiationScoreNotIn(vs ...float64) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNotIn(FieldDifferentiationScore, vs...))
}

// DifferentiationScoreGT applies the GT predicate on the "differentiation_score" field.
func DifferentiationScoreGT(v float64) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldGT(FieldDifferentiationScore, v))
}

// DifferentiationScoreGTE applies the GTE predicate on the "differentiation_score" field.
func DifferentiationScoreGTE(v float64) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldGTE(FieldDifferentiationScore, v))
}

// DifferentiationScoreLT applies the LT predicate on the "differentiation_score" field.
func DifferentiationScoreLT(v float64) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldLT(FieldDifferentiationScore, v))
}

// DifferentiationScoreLTE applies the LTE predicate on the "differentiation_score" field.
func DifferentiationScoreLTE(v float64) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldLTE(FieldDifferentiationScore, v))
}

// EffortLevelEQ applies the EQ predicate on the "effort_level" field.
func EffortLevelEQ(v EffortLevel) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldEffortLevel, v))
}

// EffortLevelNEQ applies the NEQ predicate on the "effort_level" field.
func EffortLevelNEQ(v EffortLevel) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNEQ(FieldEffortLevel, v))
}

// EffortLevelIn applies the In predicate on the "effort_level" field.
func EffortLevelIn(vs ...EffortLevel) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldIn(FieldEffortLevel, vs...))
}

// EffortLevelNotIn applies the NotIn predicate on the "effort_level" field.
func EffortLevelNotIn(vs ...EffortLevel) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNotIn(FieldEffortLevel, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCluster applies the HasEdge predicate on the "cluster" edge.
func HasCluster() predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClusterTable, ClusterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClusterWith applies the HasEdge predicate on the "cluster" edge with a given conditions (other predicates).
func HasClusterWith(preds ...predicate.TopicCluster) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(func(s *sql.Selector) {
		step := newClusterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRoadmapEntries applies the HasEdge predicate on the "roadmap_entries" edge.
func HasRoadmapEntries() predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RoadmapEntriesTable, RoadmapEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoadmapEntriesWith applies the HasEdge predicate on the "roadmap_entries" edge with a given conditions (other predicates).
func HasRoadmapEntriesWith(preds ...predicate.ContentRoadmap) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(func(s *sql.Selector) {
		step := newRoadmapEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ArticleRecommendation) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ArticleRecommendation) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ArticleRecommendation) predicate.ArticleRecommendation {
	return predicate.ArticleRecommendation(sql.NotPredicates(p))
}
