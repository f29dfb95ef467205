package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrendPipelineExecution holds the schema definition for the
// TrendPipelineExecution entity: one row per run of the four-stage trend
// pipeline, with per-stage status and rolled-up totals.
type TrendPipelineExecution struct {
	ent.Schema
}

// stageStatusValues are shared by the four stage status columns.
var stageStatusValues = []string{"pending", "in_progress", "completed", "failed", "skipped"}

// Fields of the TrendPipelineExecution.
func (TrendPipelineExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("execution_id").
			Unique().
			Comment("UUID; links back to the owning WorkflowExecution"),
		field.String("client_domain").
			Optional(),
		field.JSON("domains_analyzed", []string{}).
			Optional(),
		field.Int("time_window_days").
			Default(0),
		field.Enum("stage_1_clustering_status").
			Values(stageStatusValues...).
			Default("pending"),
		field.Enum("stage_2_temporal_status").
			Values(stageStatusValues...).
			Default("pending"),
		field.Enum("stage_3_llm_status").
			Values(stageStatusValues...).
			Default("pending"),
		field.Enum("stage_4_gap_status").
			Values(stageStatusValues...).
			Default("pending"),
		field.Int("total_articles").
			Default(0),
		field.Int("total_clusters").
			Default(0),
		field.Int("total_outliers").
			Default(0),
		field.Int("total_recommendations").
			Default(0),
		field.Int("total_gaps").
			Default(0),
		field.JSON("outlier_analysis", map[string]interface{}{}).
			Optional().
			Comment("LLM verdict on the unclustered documents"),
		field.Time("start_time").
			Default(time.Now),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.Float("duration_seconds").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Bool("is_valid").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TrendPipelineExecution.
func (TrendPipelineExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("clusters", TopicCluster.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("outliers", TopicOutlier.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TrendPipelineExecution.
func (TrendPipelineExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_domain", "created_at"),
	}
}
