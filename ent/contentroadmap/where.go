// Code generated by ent, DO NOT EDIT.

package contentroadmap

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldLTE(FieldID, id))
}

// ClientDomain applies equality check predicate on the "client_domain" field. It's identical to ClientDomainEQ.
func ClientDomain(v string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldClientDomain, v))
}

// GapID applies equality check predicate on the "gap_id" field. It's identical to GapIDEQ.
func GapID(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldGapID, v))
}

// RecommendationID applies equality check predicate on the "recommendation_id" field. It's identical to RecommendationIDEQ.
func RecommendationID(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldRecommendationID, v))
}

// PriorityOrder applies equality check predicate on the "priority_order" field. It's identical to PriorityOrderEQ.
func PriorityOrder(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldPriorityOrder, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldCreatedAt, v))
}

// ClientDomainEQ applies the EQ predicate on the "client_domain" field.
func ClientDomainEQ(v string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldClientDomain, v))
}

// ClientDomainNEQ applies the NEQ predicate on the "client_domain" field.
func ClientDomainNEQ(v string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNEQ(FieldClientDomain, v))
}

// ClientDomainIn applies the In predicate on the "client_domain" field.
func ClientDomainIn(vs ...string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldIn(FieldClientDomain, vs...))
}

// ClientDomainNotIn applies the NotIn predicate on the "client_domain" field.
func ClientDomainNotIn(vs ...string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNotIn(FieldClientDomain, vs...))
}

// ClientDomainGT applies the GT predicate on the "client_domain" field.
func ClientDomainGT(v string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldGT(FieldClientDomain, v))
}

// ClientDomainGTE applies the GTE predicate on the "client_domain" field.
func ClientDomainGTE(v string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldGTE(FieldClientDomain, v))
}

// ClientDomainLT applies the LT predicate on the "client_domain" field.
func ClientDomainLT(v string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldLT(FieldClientDomain, v))
}

// ClientDomainLTE applies the LTE predicate on the "client_domain" field.
func ClientDomainLTE(v string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldLTE(FieldClientDomain, v))
}

// ClientDomainContains applies the Contains predicate on the "client_domain" field.
func ClientDomainContains(v string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldContains(FieldClientDomain, v))
}

// ClientDomainHasPrefix applies the HasPrefix predicate on the "client_domain" field.
func ClientDomainHasPrefix(v string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldHasPrefix(FieldClientDomain, v))
}

// ClientDomainHasSuffix applies the HasSuffix predicate on the "client_domain" field.
func ClientDomainHasSuffix(v string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldHasSuffix(FieldClientDomain, v))
}

// ClientDomainEqualFold applies the EqualFold predicate on the "client_domain" field.
func ClientDomainEqualFold(v string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEqualFold(FieldClientDomain, v))
}

// ClientDomainContainsFold applies the ContainsFold predicate on the "client_domain" field.
func ClientDomainContainsFold(v string) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldContainsFold(FieldClientDomain, v))
}

// GapIDEQ applies the EQ predicate on the "gap_id" field.
func GapIDEQ(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldGapID, v))
}

// GapIDNEQ applies the NEQ predicate on the "gap_id" field.
func GapIDNEQ(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNEQ(FieldGapID, v))
}

// GapIDIn applies the In predicate on the "gap_id" field.
func GapIDIn(vs ...int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldIn(FieldGapID, vs...))
}

// GapIDNotIn applies the NotIn predicate on the "gap_id" field.
func GapIDNotIn(vs ...int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNotIn(FieldGapID, vs...))
}

// RecommendationIDEQ applies the EQ predicate on the "recommendation_id" field.
func RecommendationIDEQ(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldRecommendationID, v))
}

// RecommendationIDNEQ applies the NEQ predicate on the "recommendation_id" field.
func RecommendationIDNEQ(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNEQ(FieldRecommendationID, v))
}

// RecommendationIDIn applies the In predicate on the "recommendation_id" field.
func RecommendationIDIn(vs ...int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldIn(FieldRecommendationID, vs...))
}

// RecommendationIDNotIn applies the NotIn predicate on the "recommendation_id" field.
func RecommendationIDNotIn(vs ...int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNotIn(FieldRecommendationID, vs...))
}

// PriorityOrderEQ applies the EQ predicate on the "priority_order" field.
func PriorityOrderEQ(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldPriorityOrder, v))
}

// PriorityOrderNEQ applies the NEQ predicate on the "priority_order" field.
func PriorityOrderNEQ(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNEQ(FieldPriorityOrder, v))
}

// PriorityOrderIn applies the In predicate on the "priority_order" field.
func PriorityOrderIn(vs ...int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldIn(FieldPriorityOrder, vs...))
}

// PriorityOrderNotIn applies the NotIn predicate on the "priority_order" field.
func PriorityOrderNotIn(vs ...int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNotIn(FieldPriorityOrder, vs...))
}

// PriorityOrderGT applies the GT predicate on the "priority_order" field.
func PriorityOrderGT(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldGT(FieldPriorityOrder, v))
}

// PriorityOrderGTE applies the GTE predicate on the "priority_order" field.
func PriorityOrderGTE(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldGTE(FieldPriorityOrder, v))
}

// PriorityOrderLT applies the LT predicate on the "priority_order" field.
func PriorityOrderLT(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldLT(FieldPriorityOrder, v))
}

// PriorityOrderLTE applies the LTE predicate on the "priority_order" field.
func PriorityOrderLTE(v int) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldLTE(FieldPriorityOrder, v))
}

// PriorityTierEQ applies the EQ predicate on the "priority_tier" field.
func PriorityTierEQ(v PriorityTier) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldPriorityTier, v))
}

// PriorityTierNEQ applies the NEQ predicate on the "priority_tier" field.
func PriorityTierNEQ(v PriorityTier) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNEQ(FieldPriorityTier, v))
}

// PriorityTierIn applies the In predicate on the "priority_tier" field.
func PriorityTierIn(vs ...PriorityTier) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldIn(FieldPriorityTier, vs...))
}

// PriorityTierNotIn applies the NotIn predicate on the "priority_tier" field.
func PriorityTierNotIn(vs ...PriorityTier) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNotIn(FieldPriorityTier, vs...))
}

// EstimatedEffortEQ applies the EQ predicate on the "estimated_effort" field.
func EstimatedEffortEQ(v EstimatedEffort) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldEstimatedEffort, v))
}

// EstimatedEffortNEQ applies the NEQ predicate on the "estimated_effort" field.
func EstimatedEffortNEQ(v EstimatedEffort) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNEQ(FieldEstimatedEffort, v))
}

// EstimatedEffortIn applies the In predicate on the "estimated_effort" field.
func EstimatedEffortIn(vs ...EstimatedEffort) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldIn(FieldEstimatedEffort, vs...))
}

// EstimatedEffortNotIn applies the NotIn predicate on the "estimated_effort" field.
func EstimatedEffortNotIn(vs ...EstimatedEffort) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNotIn(FieldEstimatedEffort, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.FieldLTE(FieldCreatedAt, v))
}

// HasGap applies the HasEdge predicate on the "gap" edge.
func HasGap() predicate.ContentRoadmap {
	return predicate.ContentRoadmap(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GapTable, GapColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGapWith applies the HasEdge predicate on the "gap" edge with a given conditions (other predicates).
func HasGapWith(preds ...predicate.EditorialGap) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(func(s *sql.Selector) {
		step := newGapStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecommendation applies the HasEdge predicate on the "recommendation" edge.
func HasRecommendation() predicate.ContentRoadmap {
	return predicate.ContentRoadmap(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecommendationTable, RecommendationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecommendationWith applies the HasEdge predicate on the "recommendation" edge with a given conditions (other predicates).
func HasRecommendationWith(preds ...predicate.ArticleRecommendation) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(func(s *sql.Selector) {
		step := newRecommendationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentRoadmap) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentRoadmap) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentRoadmap) predicate.ContentRoadmap {
	return predicate.ContentRoadmap(sql.NotPredicates(p))
}
