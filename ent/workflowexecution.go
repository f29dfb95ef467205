// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/workflowexecution"
)

// WorkflowExecution is the model entity for the WorkflowExecution schema.
type WorkflowExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowType holds the value of the "workflow_type" field.
	WorkflowType workflowexecution.WorkflowType `json:"workflow_type,omitempty"`
	// Client domain this execution targets (extracted from input for indexing)
	Domain string `json:"domain,omitempty"`
	// Status holds the value of the "status" field.
	Status workflowexecution.Status `json:"status,omitempty"`
	// WasSuccess holds the value of the "was_success" field.
	WasSuccess *bool `json:"was_success,omitempty"`
	// InputData holds the value of the "input_data" field.
	InputData map[string]interface{} `json:"input_data,omitempty"`
	// JSON-safe normalized output (Inf/NaN replaced by null at write)
	OutputData map[string]interface{} `json:"output_data,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Stamped on first transition to running
	StartTime *time.Time `json:"start_time,omitempty"`
	// Stamped on transition to a terminal state
	EndTime *time.Time `json:"end_time,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	// ParentExecutionID holds the value of the "parent_execution_id" field.
	ParentExecutionID *string `json:"parent_execution_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowExecutionQuery when eager-loading is set.
	Edges        WorkflowExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowExecutionEdges holds the relations/edges for other nodes in the graph.
type WorkflowExecutionEdges struct {
	// Parent holds the value of the parent edge.
	Parent *WorkflowExecution `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*WorkflowExecution `json:"children,omitempty"`
	// AuditLogs holds the value of the audit_logs edge.
	AuditLogs []*AuditLog `json:"audit_logs,omitempty"`
	// PerformanceMetrics holds the value of the performance_metrics edge.
	PerformanceMetrics []*PerformanceMetric `json:"performance_metrics,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowExecutionEdges) ParentOrErr() (*WorkflowExecution, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowexecution.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowExecutionEdges) ChildrenOrErr() ([]*WorkflowExecution, error) {
	if e.loadedTypes[1] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowExecutionEdges) AuditLogsOrErr() ([]*AuditLog, error) {
	if e.loadedTypes[2] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// PerformanceMetricsOrErr returns the PerformanceMetrics value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowExecutionEdges) PerformanceMetricsOrErr() ([]*PerformanceMetric, error) {
	if e.loadedTypes[3] {
		return e.PerformanceMetrics, nil
	}
	return nil, &NotLoadedError{edge: "performance_metrics"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowexecution.FieldInputData, workflowexecution.FieldOutputData:
			values[i] = new([]byte)
		case workflowexecution.FieldWasSuccess:
			values[i] = new(sql.NullBool)
		case workflowexecution.FieldDurationSeconds:
			values[i] = new(sql.NullFloat64)
		case workflowexecution.FieldID, workflowexecution.FieldWorkflowType, workflowexecution.FieldDomain, workflowexecution.FieldStatus, workflowexecution.FieldErrorMessage, workflowexecution.FieldParentExecutionID:
			values[i] = new(sql.NullString)
		case workflowexecution.FieldStartTime, workflowexecution.FieldEndTime, workflowexecution.FieldCreatedAt, workflowexecution.FieldUpdatedAt, workflowexecution.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowExecution fields.
func (_m *WorkflowExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflowexecution.FieldWorkflowType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_type", values[i])
			} else if value.Valid {
				_m.WorkflowType = workflowexecution.WorkflowType(value.String)
			}
		case workflowexecution.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case workflowexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workflowexecution.Status(value.String)
			}
		case workflowexecution.FieldWasSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field was_success", values[i])
			} else if value.Valid {
				_m.WasSuccess = new(bool)
				*_m.WasSuccess = value.Bool
			}
		case workflowexecution.FieldInputData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputData); err != nil {
					return fmt.Errorf("unmarshal field input_data: %w", err)
				}
			}
		case workflowexecution.FieldOutputData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutputData); err != nil {
					return fmt.Errorf("unmarshal field output_data: %w", err)
				}
			}
		case workflowexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case workflowexecution.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = new(time.Time)
				*_m.StartTime = value.Time
			}
		case workflowexecution.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(time.Time)
				*_m.EndTime = value.Time
			}
		case workflowexecution.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = new(float64)
				*_m.DurationSeconds = value.Float64
			}
		case workflowexecution.FieldParentExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_execution_id", values[i])
			} else if value.Valid {
				_m.ParentExecutionID = new(string)
				*_m.ParentExecutionID = value.String
			}
		case workflowexecution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflowexecution.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case workflowexecution.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowExecution.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the WorkflowExecution entity.
func (_m *WorkflowExecution) QueryParent() *WorkflowExecutionQuery {
	return NewWorkflowExecutionClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the WorkflowExecution entity.
func (_m *WorkflowExecution) QueryChildren() *WorkflowExecutionQuery {
	return NewWorkflowExecutionClient(_m.config).QueryChildren(_m)
}

// QueryAuditLogs queries the "audit_logs" edge of the WorkflowExecution entity.
func (_m *WorkflowExecution) QueryAuditLogs() *AuditLogQuery {
	return NewWorkflowExecutionClient(_m.config).QueryAuditLogs(_m)
}

// QueryPerformanceMetrics queries the "performance_metrics" edge of the WorkflowExecution entity.
func (_m *WorkflowExecution) QueryPerformanceMetrics() *PerformanceMetricQuery {
	return NewWorkflowExecutionClient(_m.config).QueryPerformanceMetrics(_m)
}

// Update returns a builder for updating this WorkflowExecution.
// Note that you need to call WorkflowExecution.Unwrap() before calling this method if this WorkflowExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowExecution) Update() *WorkflowExecutionUpdateOne {
	return NewWorkflowExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowExecution) Unwrap() *WorkflowExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowExecution) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkflowType))
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.WasSuccess; v != nil {
		builder.WriteString("was_success=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("input_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputData))
	builder.WriteString(", ")
	builder.WriteString("output_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputData))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartTime; v != nil {
		builder.WriteString("start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationSeconds; v != nil {
		builder.WriteString("duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ParentExecutionID; v != nil {
		builder.WriteString("parent_execution_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowExecutions is a parsable slice of WorkflowExecution.
type WorkflowExecutions []*WorkflowExecution
