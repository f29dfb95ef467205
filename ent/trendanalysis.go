// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/trendanalysis"
)

// TrendAnalysis is the model entity for the TrendAnalysis schema.
type TrendAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TopicClusterID holds the value of the "topic_cluster_id" field.
	TopicClusterID int `json:"topic_cluster_id,omitempty"`
	// Synthesis holds the value of the "synthesis" field.
	Synthesis string `json:"synthesis,omitempty"`
	// SaturatedAngles holds the value of the "saturated_angles" field.
	SaturatedAngles []string `json:"saturated_angles,omitempty"`
	// Opportunities holds the value of the "opportunities" field.
	Opportunities []string `json:"opportunities,omitempty"`
	// LlmModelUsed holds the value of the "llm_model_used" field.
	LlmModelUsed string `json:"llm_model_used,omitempty"`
	// ProcessingTimeSeconds holds the value of the "processing_time_seconds" field.
	ProcessingTimeSeconds float64 `json:"processing_time_seconds,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrendAnalysisQuery when eager-loading is set.
	Edges        TrendAnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TrendAnalysisEdges holds the relations/edges for other nodes in the graph.
type TrendAnalysisEdges struct {
	// Cluster holds the value of the cluster edge.
	Cluster *TopicCluster `json:"cluster,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClusterOrErr returns the Cluster value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrendAnalysisEdges) ClusterOrErr() (*TopicCluster, error) {
	if e.Cluster != nil {
		return e.Cluster, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: topiccluster.Label}
	}
	return nil, &NotLoadedError{edge: "cluster"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrendAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trendanalysis.FieldSaturatedAngles, trendanalysis.FieldOpportunities:
			values[i] = new([]byte)
		case trendanalysis.FieldProcessingTimeSeconds:
			values[i] = new(sql.NullFloat64)
		case trendanalysis.FieldID, trendanalysis.FieldTopicClusterID:
			values[i] = new(sql.NullInt64)
		case trendanalysis.FieldSynthesis, trendanalysis.FieldLlmModelUsed:
			values[i] = new(sql.NullString)
		case trendanalysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrendAnalysis fields.
func (_m *TrendAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trendanalysis.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trendanalysis.FieldTopicClusterID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_cluster_id", values[i])
			} else if value.Valid {
				_m.TopicClusterID = int(value.Int64)
			}
		case trendanalysis.FieldSynthesis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field synthesis", values[i])
			} else if value.Valid {
				_m.Synthesis = value.String
			}
		case trendanalysis.FieldSaturatedAngles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field saturated_angles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SaturatedAngles); err != nil {
					return fmt.Errorf("unmarshal field saturated_angles: %w", err)
				}
			}
		case trendanalysis.FieldOpportunities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field opportunities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Opportunities); err != nil {
					return fmt.Errorf("unmarshal field opportunities: %w", err)
				}
			}
		case trendanalysis.FieldLlmModelUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_model_used", values[i])
			} else if value.Valid {
				_m.LlmModelUsed = value.String
			}
		case trendanalysis.FieldProcessingTimeSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time_seconds", values[i])
			} else if value.Valid {
				_m.ProcessingTimeSeconds = value.Float64
			}
		case trendanalysis.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TrendAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *TrendAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCluster queries the "cluster" edge of the TrendAnalysis entity.
func (_m *TrendAnalysis) QueryCluster() *TopicClusterQuery {
	return NewTrendAnalysisClient(_m.config).QueryCluster(_m)
}

// Update returns a builder for updating this TrendAnalysis.
// Note that you need to call TrendAnalysis.Unwrap() before calling this method if this TrendAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrendAnalysis) Update() *TrendAnalysisUpdateOne {
	return NewTrendAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrendAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrendAnalysis) Unwrap() *TrendAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrendAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrendAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("TrendAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic_cluster_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicClusterID))
	builder.WriteString(", ")
	builder.WriteString("synthesis=")
	builder.WriteString(_m.Synthesis)
	builder.WriteString(", ")
	builder.WriteString("saturated_angles=")
	builder.WriteString(fmt.Sprintf("%v", _m.SaturatedAngles))
	builder.WriteString(", ")
	builder.WriteString("opportunities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Opportunities))
	builder.WriteString(", ")
	builder.WriteString("llm_model_used=")
	builder.WriteString(_m.LlmModelUsed)
	builder.WriteString(", ")
	builder.WriteString("processing_time_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingTimeSeconds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrendAnalyses is a parsable slice of TrendAnalysis.
type TrendAnalyses []*TrendAnalysis
