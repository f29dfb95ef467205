package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowExecution holds the schema definition for the WorkflowExecution entity.
// One row per workflow invocation (editorial analysis, scraping, trend pipeline,
// audit orchestrator, ...) with full lifecycle and I/O tracking.
type WorkflowExecution struct {
	ent.Schema
}

// Fields of the WorkflowExecution.
func (WorkflowExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.Enum("workflow_type").
			Values(
				"editorial_analysis",
				"competitor_search",
				"scraping",
				"client_scraping",
				"trends_analysis",
				"trend_pipeline",
				"article_generation",
				"audit_orchestrator",
			),
		field.String("domain").
			Optional().
			Comment("Client domain this execution targets (extracted from input for indexing)"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.Bool("was_success").
			Optional().
			Nillable(),
		field.JSON("input_data", map[string]interface{}{}).
			Optional(),
		field.JSON("output_data", map[string]interface{}{}).
			Optional().
			Comment("JSON-safe normalized output (Inf/NaN replaced by null at write)"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("start_time").
			Optional().
			Nillable().
			Comment("Stamped on first transition to running"),
		field.Time("end_time").
			Optional().
			Nillable().
			Comment("Stamped on transition to a terminal state"),
		field.Float("duration_seconds").
			Optional().
			Nillable(),
		field.String("parent_execution_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the WorkflowExecution.
func (WorkflowExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", WorkflowExecution.Type).
			From("parent").
			Field("parent_execution_id").
			Unique(),
		edge.To("audit_logs", AuditLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("performance_metrics", PerformanceMetric.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkflowExecution.
func (WorkflowExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_type"),
		index.Fields("status"),
		index.Fields("domain"),
		index.Fields("workflow_type", "domain", "status"),
		index.Fields("workflow_type", "status", "created_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),

		// Race-freedom for concurrent audit requests: at most one in-flight
		// orchestrator execution per domain. Concurrent creators hit a
		// constraint violation and join the surviving row.
		index.Fields("workflow_type", "domain").
			Unique().
			Annotations(entsql.IndexWhere(
				"workflow_type = 'audit_orchestrator' AND status IN ('pending', 'running') AND deleted_at IS NULL")),
	}
}
