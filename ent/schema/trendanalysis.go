package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// TrendAnalysis holds the schema definition for the TrendAnalysis entity.
// LLM-generated synthesis for one topic cluster.
type TrendAnalysis struct {
	ent.Schema
}

// Fields of the TrendAnalysis.
func (TrendAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_cluster_id"),
		field.Text("synthesis").
			Optional(),
		field.JSON("saturated_angles", []string{}).
			Optional(),
		field.JSON("opportunities", []string{}).
			Optional(),
		field.String("llm_model_used").
			Optional(),
		field.Float("processing_time_seconds").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TrendAnalysis.
func (TrendAnalysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cluster", TopicCluster.Type).
			Ref("trend_analyses").
			Field("topic_cluster_id").
			Unique().
			Required(),
	}
}
