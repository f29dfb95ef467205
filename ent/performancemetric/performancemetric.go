// Code generated by ent, DO NOT EDIT.

package performancemetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the performancemetric type in the database.
	Label = "performance_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldMetricType holds the string denoting the metric_type field in the database.
	FieldMetricType = "metric_type"
	// FieldMetricValue holds the string denoting the metric_value field in the database.
	FieldMetricValue = "metric_value"
	// FieldMetricUnit holds the string denoting the metric_unit field in the database.
	FieldMetricUnit = "metric_unit"
	// FieldAdditionalData holds the string denoting the additional_data field in the database.
	FieldAdditionalData = "additional_data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeExecution holds the string denoting the execution edge name in mutations.
	EdgeExecution = "execution"
	// WorkflowExecutionFieldID holds the string denoting the ID field of the WorkflowExecution.
	WorkflowExecutionFieldID = "execution_id"
	// Table holds the table name of the performancemetric in the database.
	Table = "performance_metrics"
	// ExecutionTable is the table that holds the execution relation/edge.
	ExecutionTable = "performance_metrics"
	// ExecutionInverseTable is the table name for the WorkflowExecution entity.
	// It exists in this package in order to avoid circular dependency with the "workflowexecution" package.
	ExecutionInverseTable = "workflow_executions"
	// ExecutionColumn is the table column denoting the execution relation/edge.
	ExecutionColumn = "execution_id"
)

// Columns holds all SQL columns for performancemetric fields.
var Columns = []string{
	FieldID,
	FieldExecutionID,
	FieldAgentName,
	FieldMetricType,
	FieldMetricValue,
	FieldMetricUnit,
	FieldAdditionalData,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PerformanceMetric queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByMetricType orders the results by the metric_type field.
func ByMetricType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricType, opts...).ToFunc()
}

// ByMetricValue orders the results by the metric_value field.
func ByMetricValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricValue, opts...).ToFunc()
}

// ByMetricUnit orders the results by the metric_unit field.
func ByMetricUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricUnit, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExecutionField orders the results by execution field.
func ByExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionStep(), sql.OrderByField(field, opts...))
	}
}
func newExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionInverseTable, WorkflowExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
	)
}
