package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PerformanceMetric holds the schema definition for the PerformanceMetric
// entity. Append-only timing/counting samples attached to an execution.
type PerformanceMetric struct {
	ent.Schema
}

// Fields of the PerformanceMetric.
func (PerformanceMetric) Fields() []ent.Field {
	return []ent.Field{
		field.String("execution_id"),
		field.String("agent_name").
			Optional(),
		field.String("metric_type"),
		field.Float("metric_value"),
		field.String("metric_unit").
			Optional(),
		field.JSON("additional_data", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PerformanceMetric.
func (PerformanceMetric) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", WorkflowExecution.Type).
			Ref("performance_metrics").
			Field("execution_id").
			Unique().
			Required(),
	}
}

// Indexes of the PerformanceMetric.
func (PerformanceMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "metric_type"),
	}
}
