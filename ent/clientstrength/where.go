// Code generated by ent, DO NOT EDIT.

package clientstrength

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldLTE(FieldID, id))
}

// ClientDomain applies equality check predicate on the "client_domain" field. It's identical to ClientDomainEQ.
func ClientDomain(v string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldClientDomain, v))
}

// TopicClusterID applies equality check predicate on the "topic_cluster_id" field. It's identical to TopicClusterIDEQ.
func TopicClusterID(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldTopicClusterID, v))
}

// ClientCount applies equality check predicate on the "client_count" field. It's identical to ClientCountEQ.
func ClientCount(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldClientCount, v))
}

// CompetitorCount applies equality check predicate on the "competitor_count" field. It's identical to CompetitorCountEQ.
func CompetitorCount(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldCompetitorCount, v))
}

// CoverageScore applies equality check predicate on the "coverage_score" field. It's identical to CoverageScoreEQ.
func CoverageScore(v float64) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldCoverageScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldCreatedAt, v))
}

// ClientDomainEQ applies the EQ predicate on the "client_domain" field.
func ClientDomainEQ(v string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldClientDomain, v))
}

// ClientDomainNEQ applies the NEQ predicate on the "client_domain" field.
func ClientDomainNEQ(v string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNEQ(FieldClientDomain, v))
}

// ClientDomainIn applies the In predicate on the "client_domain" field.
func ClientDomainIn(vs ...string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldIn(FieldClientDomain, vs...))
}

// ClientDomainNotIn applies the NotIn predicate on the "client_domain" field.
func ClientDomainNotIn(vs ...string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNotIn(FieldClientDomain, vs...))
}

// ClientDomainGT applies the GT predicate on the "client_domain" field.
func ClientDomainGT(v string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldGT(FieldClientDomain, v))
}

// ClientDomainGTE applies the GTE predicate on the "client_domain" field.
func ClientDomainGTE(v string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldGTE(FieldClientDomain, v))
}

// ClientDomainLT applies the LT predicate on the "client_domain" field.
func ClientDomainLT(v string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldLT(FieldClientDomain, v))
}

// ClientDomainLTE applies the LTE predicate on the "client_domain" field.
func ClientDomainLTE(v string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldLTE(FieldClientDomain, v))
}

// ClientDomainContains applies the Contains predicate on the "client_domain" field.
func ClientDomainContains(v string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldContains(FieldClientDomain, v))
}

// ClientDomainHasPrefix applies the HasPrefix predicate on the "client_domain" field.
func ClientDomainHasPrefix(v string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldHasPrefix(FieldClientDomain, v))
}

// ClientDomainHasSuffix applies the HasSuffix predicate on the "client_domain" field.
func ClientDomainHasSuffix(v string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldHasSuffix(FieldClientDomain, v))
}

// ClientDomainEqualFold applies the EqualFold predicate on the "client_domain" field.
func ClientDomainEqualFold(v string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEqualFold(FieldClientDomain, v))
}

// ClientDomainContainsFold applies the ContainsFold predicate on the "client_domain" field.
func ClientDomainContainsFold(v string) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldContainsFold(FieldClientDomain, v))
}

// TopicClusterIDEQ applies the EQ predicate on the "topic_cluster_id" field.
func TopicClusterIDEQ(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldTopicClusterID, v))
}

// TopicClusterIDNEQ applies the NEQ predicate on the "topic_cluster_id" field.
func TopicClusterIDNEQ(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNEQ(FieldTopicClusterID, v))
}

// TopicClusterIDIn applies the In predicate on the "topic_cluster_id" field.
func TopicClusterIDIn(vs ...int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldIn(FieldTopicClusterID, vs...))
}

// TopicClusterIDNotIn applies the NotIn predicate on the "topic_cluster_id" field.
func TopicClusterIDNotIn(vs ...int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNotIn(FieldTopicClusterID, vs...))
}

// ClientCountEQ applies the EQ predicate on the "client_count" field.
func ClientCountEQ(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldClientCount, v))
}

// ClientCountNEQ applies the NEQ predicate on the "client_count" field.
func ClientCountNEQ(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNEQ(FieldClientCount, v))
}

// ClientCountIn applies the In predicate on the "client_count" field.
func ClientCountIn(vs ...int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldIn(FieldClientCount, vs...))
}

// ClientCountNotIn applies the NotIn predicate on the "client_count" field.
func ClientCountNotIn(vs ...int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNotIn(FieldClientCount, vs...))
}

// ClientCountGT applies the GT predicate on the "client_count" field.
func ClientCountGT(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldGT(FieldClientCount, v))
}

// ClientCountGTE applies the GTE predicate on the "client_count" field.
func ClientCountGTE(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldGTE(FieldClientCount, v))
}

// ClientCountLT applies the LT predicate on the "client_count" field.
func ClientCountLT(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldLT(FieldClientCount, v))
}

// ClientCountLTE applies the LTE predicate on the "client_count" field.
func ClientCountLTE(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldLTE(FieldClientCount, v))
}

// CompetitorCountEQ applies the EQ predicate on the "competitor_count" field.
func CompetitorCountEQ(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldCompetitorCount, v))
}

// CompetitorCountNEQ applies the NEQ predicate on the "competitor_count" field.
func CompetitorCountNEQ(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNEQ(FieldCompetitorCount, v))
}

// CompetitorCountIn applies the In predicate on the "competitor_count" field.
func CompetitorCountIn(vs ...int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldIn(FieldCompetitorCount, vs...))
}

// CompetitorCountNotIn applies the NotIn predicate on the "competitor_count" field.
func CompetitorCountNotIn(vs ...int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNotIn(FieldCompetitorCount, vs...))
}

// CompetitorCountGT applies the GT predicate on the "competitor_count" field.
func CompetitorCountGT(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldGT(FieldCompetitorCount, v))
}

// CompetitorCountGTE applies the GTE predicate on the "competitor_count" field.
func CompetitorCountGTE(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldGTE(FieldCompetitorCount, v))
}

// CompetitorCountLT applies the LT predicate on the "competitor_count" field.
func CompetitorCountLT(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldLT(FieldCompetitorCount, v))
}

// CompetitorCountLTE applies the LTE predicate on the "competitor_count" field.
func CompetitorCountLTE(v int) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldLTE(FieldCompetitorCount, v))
}

// CoverageScoreEQ applies the EQ predicate on the "coverage_score" field.
func CoverageScoreEQ(v float64) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldCoverageScore, v))
}

// CoverageScoreNEQ applies the NEQ predicate on the "coverage_score" field.
func CoverageScoreNEQ(v float64) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNEQ(FieldCoverageScore, v))
}

// CoverageScoreIn applies the In predicate on the "coverage_score" field.
func CoverageScoreIn(vs ...float64) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldIn(FieldCoverageScore, vs...))
}

// CoverageScoreNotIn applies the NotIn predicate on the "coverage_score" field.
func CoverageScoreNotIn(vs ...float64) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNotIn(FieldCoverageScore, vs...))
}

// CoverageScoreGT applies the GT predicate on the "coverage_score" field.
func CoverageScoreGT(v float64) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldGT(FieldCoverageScore, v))
}

// CoverageScoreGTE applies the GTE predicate on the "coverage_score" field.
func CoverageScoreGTE(v float64) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldGTE(FieldCoverageScore, v))
}

// CoverageScoreLT applies the LT predicate on the "coverage_score" field.
func CoverageScoreLT(v float64) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldLT(FieldCoverageScore, v))
}

// CoverageScoreLTE applies the LTE predicate on the "coverage_score" field.
func CoverageScoreLTE(v float64) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldLTE(FieldCoverageScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClientStrength {
	return predicate.ClientStrength(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCluster applies the HasEdge predicate on the "cluster" edge.
func HasCluster() predicate.ClientStrength {
	return predicate.ClientStrength(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClusterTable, ClusterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClusterWith applies the HasEdge predicate on the "cluster" edge with a given conditions (other predicates).
func HasClusterWith(preds ...predicate.TopicCluster) predicate.ClientStrength {
	return predicate.ClientStrength(func(s *sql.Selector) {
		step := newClusterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClientStrength) predicate.ClientStrength {
	return predicate.ClientStrength(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClientStrength) predicate.ClientStrength {
	return predicate.ClientStrength(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClientStrength) predicate.ClientStrength {
	return predicate.ClientStrength(sql.NotPredicates(p))
}
