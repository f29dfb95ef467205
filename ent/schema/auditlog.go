package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Append-only trace of workflow steps; rows are never updated or deleted
// except by cascade from their owning execution.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("execution_id").
			Optional().
			Nillable(),
		field.String("action"),
		field.String("agent_name").
			Optional(),
		field.String("step_name").
			Optional(),
		field.Enum("status").
			Values("info", "success", "error").
			Default("info"),
		field.Text("message").
			Optional(),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
		field.Text("error_traceback").
			Optional().
			Nillable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("Microsecond resolution; total order within an execution"),
	}
}

// Edges of the AuditLog.
func (AuditLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", WorkflowExecution.Type).
			Ref("audit_logs").
			Field("execution_id").
			Unique(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "timestamp"),
		index.Fields("status"),
	}
}
