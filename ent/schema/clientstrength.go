package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClientStrength holds the schema definition for the ClientStrength entity.
// A topic where the client's coverage meets or exceeds the significance
// threshold relative to competitors.
type ClientStrength struct {
	ent.Schema
}

// Fields of the ClientStrength.
func (ClientStrength) Fields() []ent.Field {
	return []ent.Field{
		field.String("client_domain"),
		field.Int("topic_cluster_id"),
		field.Int("client_count"),
		field.Int("competitor_count"),
		field.Float("coverage_score"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ClientStrength.
func (ClientStrength) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cluster", TopicCluster.Type).
			Ref("strengths").
			Field("topic_cluster_id").
			Unique().
			Required(),
	}
}

// Indexes of the ClientStrength.
func (ClientStrength) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_domain"),
	}
}
