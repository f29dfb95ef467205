package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicOutlier holds the schema definition for the TopicOutlier entity.
// A document the density clustering labeled -1, surfaced rather than dropped.
type TopicOutlier struct {
	ent.Schema
}

// Fields of the TopicOutlier.
func (TopicOutlier) Fields() []ent.Field {
	return []ent.Field{
		field.Int("analysis_id"),
		field.String("document_id").
			Comment("Vector store point id of the outlier document"),
		field.Int("article_id").
			Optional().
			Nillable(),
		field.Int("nearest_topic_id").
			Optional().
			Nillable(),
		field.String("potential_category").
			Optional().
			Comment("Rule-based category from keyword heuristics over the text"),
		field.Float("embedding_distance").
			Comment("Distance to the nearest cluster centroid"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TopicOutlier.
func (TopicOutlier) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("analysis", TrendPipelineExecution.Type).
			Ref("outliers").
			Field("analysis_id").
			Unique().
			Required(),
	}
}

// Indexes of the TopicOutlier.
func (TopicOutlier) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("analysis_id"),
	}
}
