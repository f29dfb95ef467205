package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EditorialGap holds the schema definition for the EditorialGap entity.
// A topic where the client's coverage is materially below competitors'.
type EditorialGap struct {
	ent.Schema
}

// Fields of the EditorialGap.
func (EditorialGap) Fields() []ent.Field {
	return []ent.Field{
		field.String("client_domain"),
		field.Int("topic_cluster_id"),
		field.Int("client_count"),
		field.Int("competitor_count"),
		field.Float("avg_competitor"),
		field.Float("coverage_score"),
		field.Enum("level").
			Values("excellent", "good", "weak", "gap"),
		field.Float("priority_score"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EditorialGap.
func (EditorialGap) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cluster", TopicCluster.Type).
			Ref("gaps").
			Field("topic_cluster_id").
			Unique().
			Required(),
		edge.To("roadmap_entries", ContentRoadmap.Type),
	}
}

// Indexes of the EditorialGap.
func (EditorialGap) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_domain", "priority_score"),
	}
}
