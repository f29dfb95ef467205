// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/performancemetric"
	"github.com/trendscope/trendscope/ent/workflowexecution"
)

// PerformanceMetric is the model entity for the PerformanceMetric schema.
type PerformanceMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// MetricType holds the value of the "metric_type" field.
	MetricType string `json:"metric_type,omitempty"`
	// MetricValue holds the value of the "metric_value" field.
	MetricValue float64 `json:"metric_value,omitempty"`
	// MetricUnit holds the value of the "metric_unit" field.
	MetricUnit string `json:"metric_unit,omitempty"`
	// AdditionalData holds the value of the "additional_data" field.
	AdditionalData map[string]interface{} `json:"additional_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PerformanceMetricQuery when eager-loading is set.
	Edges        PerformanceMetricEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PerformanceMetricEdges holds the relations/edges for other nodes in the graph.
type PerformanceMetricEdges struct {
	// Execution holds the value of the execution edge.
	Execution *WorkflowExecution `json:"execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PerformanceMetricEdges) ExecutionOrErr() (*WorkflowExecution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowexecution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PerformanceMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case performancemetric.FieldAdditionalData:
			values[i] = new([]byte)
		case performancemetric.FieldMetricValue:
			values[i] = new(sql.NullFloat64)
		case performancemetric.FieldID:
			values[i] = new(sql.NullInt64)
		case performancemetric.FieldExecutionID, performancemetric.FieldAgentName, performancemetric.FieldMetricType, performancemetric.FieldMetricUnit:
			values[i] = new(sql.NullString)
		case performancemetric.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PerformanceMetric fields.
func (_m *PerformanceMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case performancemetric.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case performancemetric.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case performancemetric.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case performancemetric.FieldMetricType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric_type", values[i])
			} else if value.Valid {
				_m.MetricType = value.String
			}
		case performancemetric.FieldMetricValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field metric_value", values[i])
			} else if value.Valid {
				_m.MetricValue = value.Float64
			}
		case performancemetric.FieldMetricUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric_unit", values[i])
			} else if value.Valid {
				_m.MetricUnit = value.String
			}
		case performancemetric.FieldAdditionalData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field additional_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AdditionalData); err != nil {
					return fmt.Errorf("unmarshal field additional_data: %w", err)
				}
			}
		case performancemetric.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PerformanceMetric.
// This includes values selected through modifiers, order, etc.
func (_m *PerformanceMetric) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the PerformanceMetric entity.
func (_m *PerformanceMetric) QueryExecution() *WorkflowExecutionQuery {
	return NewPerformanceMetricClient(_m.config).QueryExecution(_m)
}

// Update returns a builder for updating this PerformanceMetric.
// Note that you need to call PerformanceMetric.Unwrap() before calling this method if this PerformanceMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PerformanceMetric) Update() *PerformanceMetricUpdateOne {
	return NewPerformanceMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PerformanceMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PerformanceMetric) Unwrap() *PerformanceMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PerformanceMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PerformanceMetric) String() string {
	var builder strings.Builder
	builder.WriteString("PerformanceMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("metric_type=")
	builder.WriteString(_m.MetricType)
	builder.WriteString(", ")
	builder.WriteString("metric_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetricValue))
	builder.WriteString(", ")
	builder.WriteString("metric_unit=")
	builder.WriteString(_m.MetricUnit)
	builder.WriteString(", ")
	builder.WriteString("additional_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdditionalData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PerformanceMetrics is a parsable slice of PerformanceMetric.
type PerformanceMetrics []*PerformanceMetric
