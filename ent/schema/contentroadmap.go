package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentRoadmap holds the schema definition for the ContentRoadmap entity.
// One prioritized entry of the client's content plan: a gap paired with the
// recommendation chosen by the effort-balance rule.
type ContentRoadmap struct {
	ent.Schema
}

// Fields of the ContentRoadmap.
func (ContentRoadmap) Fields() []ent.Field {
	return []ent.Field{
		field.String("client_domain"),
		field.Int("gap_id"),
		field.Int("recommendation_id"),
		field.Int("priority_order").
			Positive().
			Comment("Dense 1..N per client_domain"),
		field.Enum("priority_tier").
			Values("high", "medium", "low"),
		field.Enum("estimated_effort").
			Values("easy", "medium", "complex"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ContentRoadmap.
func (ContentRoadmap) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("gap", EditorialGap.Type).
			Ref("roadmap_entries").
			Field("gap_id").
			Unique().
			Required(),
		edge.From("recommendation", ArticleRecommendation.Type).
			Ref("roadmap_entries").
			Field("recommendation_id").
			Unique().
			Required(),
	}
}

// Indexes of the ContentRoadmap.
func (ContentRoadmap) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_domain", "priority_order").
			Unique(),
	}
}
