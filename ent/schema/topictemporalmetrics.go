package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicTemporalMetrics holds the schema definition for the
// TopicTemporalMetrics entity: windowed dynamics of one topic cluster.
type TopicTemporalMetrics struct {
	ent.Schema
}

// Fields of the TopicTemporalMetrics.
func (TopicTemporalMetrics) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_cluster_id"),
		field.Time("window_start"),
		field.Time("window_end"),
		field.Int("volume"),
		field.Float("velocity").
			Comment("rate_7d / rate_30d; 1.0 when either rate is zero"),
		field.String("velocity_trend").
			Optional().
			Comment("accelerating / stable / decelerating"),
		field.Float("freshness_ratio"),
		field.Int("source_diversity"),
		field.Float("cohesion_score"),
		field.Float("potential_score"),
		field.Bool("drift_detected").
			Default(false),
		field.Float("drift_distance").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TopicTemporalMetrics.
func (TopicTemporalMetrics) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cluster", TopicCluster.Type).
			Ref("temporal_metrics").
			Field("topic_cluster_id").
			Unique().
			Required(),
	}
}

// Indexes of the TopicTemporalMetrics.
func (TopicTemporalMetrics) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_cluster_id"),
	}
}
