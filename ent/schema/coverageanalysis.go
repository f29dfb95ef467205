package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoverageAnalysis holds the schema definition for the CoverageAnalysis
// entity: raw client-vs-competitor coverage numbers per topic, from which
// gaps and strengths are derived.
type CoverageAnalysis struct {
	ent.Schema
}

// Fields of the CoverageAnalysis.
func (CoverageAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("client_domain"),
		field.Int("topic_cluster_id"),
		field.Int("client_count"),
		field.Int("competitor_count"),
		field.Int("distinct_competitor_domains"),
		field.Float("avg_competitor"),
		field.Float("coverage_score"),
		field.Enum("level").
			Values("excellent", "good", "weak", "gap"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CoverageAnalysis.
func (CoverageAnalysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cluster", TopicCluster.Type).
			Ref("coverage_analyses").
			Field("topic_cluster_id").
			Unique().
			Required(),
	}
}

// Indexes of the CoverageAnalysis.
func (CoverageAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_domain", "topic_cluster_id").
			Unique(),
	}
}
