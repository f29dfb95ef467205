package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicCluster holds the schema definition for the TopicCluster entity.
// A density-coherent group of article embeddings within one pipeline run.
// Invariant: size == len(document_ids.indices). topic_id -1 is reserved for
// the outlier bucket and never stored as a cluster row.
type TopicCluster struct {
	ent.Schema
}

// Fields of the TopicCluster.
func (TopicCluster) Fields() []ent.Field {
	return []ent.Field{
		field.Int("analysis_id"),
		field.Int("topic_id").
			NonNegative(),
		field.String("label"),
		field.JSON("top_terms", []map[string]interface{}{}).
			Optional().
			Comment("Ordered list of {term, weight}"),
		field.Int("size"),
		field.JSON("document_ids", map[string]interface{}{}).
			Comment("{indices: [int], ids: [uuid]}"),
		field.String("centroid_vector_id").
			Optional().
			Nillable().
			Comment("Point id in the centroids collection, when upserted"),
		field.Float("coherence_score").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TopicCluster.
func (TopicCluster) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("analysis", TrendPipelineExecution.Type).
			Ref("clusters").
			Field("analysis_id").
			Unique().
			Required(),
		edge.To("temporal_metrics", TopicTemporalMetrics.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("trend_analyses", TrendAnalysis.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("recommendations", ArticleRecommendation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("gaps", EditorialGap.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("strengths", ClientStrength.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("coverage_analyses", CoverageAnalysis.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TopicCluster.
func (TopicCluster) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("analysis_id", "topic_id").
			Unique(),
	}
}
