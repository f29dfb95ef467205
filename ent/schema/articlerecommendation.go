package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ArticleRecommendation holds the schema definition for the
// ArticleRecommendation entity: a concrete article idea for a topic.
type ArticleRecommendation struct {
	ent.Schema
}

// Fields of the ArticleRecommendation.
func (ArticleRecommendation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_cluster_id"),
		field.String("title"),
		field.Text("hook").
			Optional(),
		field.JSON("outline", []string{}).
			Optional(),
		field.Float("differentiation_score").
			Default(0),
		field.Enum("effort_level").
			Values("easy", "medium", "complex").
			Default("medium"),
		field.Enum("status").
			Values("suggested", "accepted", "rejected", "published").
			Default("suggested"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ArticleRecommendation.
func (ArticleRecommendation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cluster", TopicCluster.Type).
			Ref("recommendations").
			Field("topic_cluster_id").
			Unique().
			Required(),
		edge.To("roadmap_entries", ContentRoadmap.Type),
	}
}

// Indexes of the ArticleRecommendation.
func (ArticleRecommendation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_cluster_id", "status"),
	}
}
