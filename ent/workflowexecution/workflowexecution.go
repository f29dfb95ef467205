// Code generated by ent, DO NOT EDIT.

package workflowexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflowexecution type in the database.
	Label = "workflow_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldWorkflowType holds the string denoting the workflow_type field in the database.
	FieldWorkflowType = "workflow_type"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldWasSuccess holds the string denoting the was_success field in the database.
	FieldWasSuccess = "was_success"
	// FieldInputData holds the string denoting the input_data field in the database.
	FieldInputData = "input_data"
	// FieldOutputData holds the string denoting the output_data field in the database.
	FieldOutputData = "output_data"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldParentExecutionID holds the string denoting the parent_execution_id field in the database.
	FieldParentExecutionID = "parent_execution_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeChildren holds the string denoting the children edge name in mutations.
	EdgeChildren = "children"
	// EdgeAuditLogs holds the string denoting the audit_logs edge name in mutations.
	EdgeAuditLogs = "audit_logs"
	// EdgePerformanceMetrics holds the string denoting the performance_metrics edge name in mutations.
	EdgePerformanceMetrics = "performance_metrics"
	// AuditLogFieldID holds the string denoting the ID field of the AuditLog.
	AuditLogFieldID = "id"
	// PerformanceMetricFieldID holds the string denoting the ID field of the PerformanceMetric.
	PerformanceMetricFieldID = "id"
	// Table holds the table name of the workflowexecution in the database.
	Table = "workflow_executions"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "workflow_executions"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_execution_id"
	// ChildrenTable is the table that holds the children relation/edge.
	ChildrenTable = "workflow_executions"
	// ChildrenColumn is the table column denoting the children relation/edge.
	ChildrenColumn = "parent_execution_id"
	// AuditLogsTable is the table that holds the audit_logs relation/edge.
	AuditLogsTable = "audit_logs"
	// AuditLogsInverseTable is the table name for the AuditLog entity.
	// It exists in this package in order to avoid circular dependency with the "auditlog" package.
	AuditLogsInverseTable = "audit_logs"
	// AuditLogsColumn is the table column denoting the audit_logs relation/edge.
	AuditLogsColumn = "execution_id"
	// PerformanceMetricsTable is the table that holds the performance_metrics relation/edge.
	PerformanceMetricsTable = "performance_metrics"
	// PerformanceMetricsInverseTable is the table name for the PerformanceMetric entity.
	// It exists in this package in order to avoid circular dependency with the "performancemetric" package.
	PerformanceMetricsInverseTable = "performance_metrics"
	// PerformanceMetricsColumn is the table column denoting the performance_metrics relation/edge.
	PerformanceMetricsColumn = "execution_id"
)

// Columns holds all SQL columns for workflowexecution fields.
var Columns = []string{
	FieldID,
	FieldWorkflowType,
	FieldDomain,
	FieldStatus,
	FieldWasSuccess,
	FieldInputData,
	FieldOutputData,
	FieldErrorMessage,
	FieldStartTime,
	FieldEndTime,
	FieldDurationSeconds,
	FieldParentExecutionID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// WorkflowType defines the type for the "workflow_type" enum field.
type WorkflowType string

// WorkflowType values.
const (
	WorkflowTypeEditorialAnalysis WorkflowType = "editorial_analysis"
	WorkflowTypeCompetitorSearch  WorkflowType = "competitor_search"
	WorkflowTypeScraping          WorkflowType = "scraping"
	WorkflowTypeClientScraping    WorkflowType = "client_scraping"
	WorkflowTypeTrendsAnalysis    WorkflowType = "trends_analysis"
	WorkflowTypeTrendPipeline     WorkflowType = "trend_pipeline"
	WorkflowTypeArticleGeneration WorkflowType = "article_generation"
	WorkflowTypeAuditOrchestrator WorkflowType = "audit_orchestrator"
)

func (wt WorkflowType) String() string {
	return string(wt)
}

// WorkflowTypeValidator is a validator for the "workflow_type" field enum values. It is called by the builders before save.
func WorkflowTypeValidator(wt WorkflowType) error {
	switch wt {
	case WorkflowTypeEditorialAnalysis, WorkflowTypeCompetitorSearch, WorkflowTypeScraping, WorkflowTypeClientScraping, WorkflowTypeTrendsAnalysis, WorkflowTypeTrendPipeline, WorkflowTypeArticleGeneration, WorkflowTypeAuditOrchestrator:
		return nil
	default:
		return fmt.Errorf("workflowexecution: invalid enum value for workflow_type field: %q", wt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("workflowexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WorkflowExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowType orders the results by the workflow_type field.
func ByWorkflowType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowType, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByWasSuccess orders the results by the was_success field.
func ByWasSuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasSuccess, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByParentExecutionID orders the results by the parent_execution_id field.
func ByParentExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentExecutionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildrenCount orders the results by children count.
func ByChildrenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildrenStep(), opts...)
	}
}

// ByChildren orders the results by children terms.
func ByChildren(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildrenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuditLogsCount orders the results by audit_logs count.
func ByAuditLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditLogsStep(), opts...)
	}
}

// ByAuditLogs orders the results by audit_logs terms.
func ByAuditLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPerformanceMetricsCount orders the results by performance_metrics count.
func ByPerformanceMetricsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPerformanceMetricsStep(), opts...)
	}
}

// ByPerformanceMetrics orders the results by performance_metrics terms.
func ByPerformanceMetrics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPerformanceMetricsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newChildrenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
	)
}
func newAuditLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditLogsInverseTable, AuditLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
	)
}
func newPerformanceMetricsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PerformanceMetricsInverseTable, PerformanceMetricFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PerformanceMetricsTable, PerformanceMetricsColumn),
	)
}
