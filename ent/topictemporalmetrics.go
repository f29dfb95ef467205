// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/topictemporalmetrics"
)

// TopicTemporalMetrics is the model entity for the TopicTemporalMetrics schema.
type TopicTemporalMetrics struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TopicClusterID holds the value of the "topic_cluster_id" field.
	TopicClusterID int `json:"topic_cluster_id,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// WindowEnd holds the value of the "window_end" field.
	WindowEnd time.Time `json:"window_end,omitempty"`
	// Volume holds the value of the "volume" field.
	Volume int `json:"volume,omitempty"`
	// rate_7d / rate_30d; 1.0 when either rate is zero
	Velocity float64 `json:"velocity,omitempty"`
	// accelerating / stable / decelerating
	VelocityTrend string `json:"velocity_trend,omitempty"`
	// FreshnessRatio holds the value of the "freshness_ratio" field.
	FreshnessRatio float64 `json:"freshness_ratio,omitempty"`
	// SourceDiversity holds the value of the "source_diversity" field.
	SourceDiversity int `json:"source_diversity,omitempty"`
	// CohesionScore holds the value of the "cohesion_score" field.
	CohesionScore float64 `json:"cohesion_score,omitempty"`
	// PotentialScore holds the value of the "potential_score" field.
	PotentialScore float64 `json:"potential_score,omitempty"`
	// DriftDetected holds the value of the "drift_detected" field.
	DriftDetected bool `json:"drift_detected,omitempty"`
	// DriftDistance holds the value of the "drift_distance" field.
	DriftDistance *float64 `json:"drift_distance,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TopicTemporalMetricsQuery when eager-loading is set.
	Edges        TopicTemporalMetricsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TopicTemporalMetricsEdges holds the relations/edges for other nodes in the graph.
type TopicTemporalMetricsEdges struct {
	// Cluster holds the value of the cluster edge.
	Cluster *TopicCluster `json:"cluster,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClusterOrErr returns the Cluster value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TopicTemporalMetricsEdges) ClusterOrErr() (*TopicCluster, error) {
	if e.Cluster != nil {
		return e.Cluster, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: topiccluster.Label}
	}
	return nil, &NotLoadedError{edge: "cluster"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicTemporalMetrics) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topictemporalmetrics.FieldDriftDetected:
			values[i] = new(sql.NullBool)
		case topictemporalmetrics.FieldVelocity, topictemporalmetrics.FieldFreshnessRatio, topictemporalmetrics.FieldCohesionScore, topictemporalmetrics.FieldPotentialScore, topictemporalmetrics.FieldDriftDistance:
			values[i] = new(sql.NullFloat64)
		case topictemporalmetrics.FieldID, topictemporalmetrics.FieldTopicClusterID, topictemporalmetrics.FieldVolume, topictemporalmetrics.FieldSourceDiversity:
			values[i] = new(sql.NullInt64)
		case topictemporalmetrics.FieldVelocityTrend:
			values[i] = new(sql.NullString)
		case topictemporalmetrics.FieldWindowStart, topictemporalmetrics.FieldWindowEnd, topictemporalmetrics.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicTemporalMetrics fields.
func (_m *TopicTemporalMetrics) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topictemporalmetrics.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topictemporalmetrics.FieldTopicClusterID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_cluster_id", values[i])
			} else if value.Valid {
				_m.TopicClusterID = int(value.Int64)
			}
		case topictemporalmetrics.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case topictemporalmetrics.FieldWindowEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_end", values[i])
			} else if value.Valid {
				_m.WindowEnd = value.Time
			}
		case topictemporalmetrics.FieldVolume:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field volume", values[i])
			} else if value.Valid {
				_m.Volume = int(value.Int64)
			}
		case topictemporalmetrics.FieldVelocity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field velocity", values[i])
			} else if value.Valid {
				_m.Velocity = value.Float64
			}
		case topictemporalmetrics.FieldVelocityTrend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field velocity_trend", values[i])
			} else if value.Valid {
				_m.VelocityTrend = value.String
			}
		case topictemporalmetrics.FieldFreshnessRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field freshness_ratio", values[i])
			} else if value.Valid {
				_m.FreshnessRatio = value.Float64
			}
		case topictemporalmetrics.FieldSourceDiversity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_diversity", values[i])
			} else if value.Valid {
				_m.SourceDiversity = int(value.Int64)
			}
		case topictemporalmetrics.FieldCohesionScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cohesion_score", values[i])
			} else if value.Valid {
				_m.CohesionScore = value.Float64
			}
		case topictemporalmetrics.FieldPotentialScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field potential_score", values[i])
			} else if value.Valid {
				_m.PotentialScore = value.Float64
			}
		case topictemporalmetrics.FieldDriftDetected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field drift_detected", values[i])
			} else if value.Valid {
				_m.DriftDetected = value.Bool
			}
		case topictemporalmetrics.FieldDriftDistance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field drift_distance", values[i])
			} else if value.Valid {
				_m.DriftDistance = new(float64)
				*_m.DriftDistance = value.Float64
			}
		case topictemporalmetrics.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TopicTemporalMetrics.
// This includes values selected through modifiers, order, etc.
func (_m *TopicTemporalMetrics) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCluster queries the "cluster" edge of the TopicTemporalMetrics entity.
func (_m *TopicTemporalMetrics) QueryCluster() *TopicClusterQuery {
	return NewTopicTemporalMetricsClient(_m.config).QueryCluster(_m)
}

// Update returns a builder for updating this TopicTemporalMetrics.
// Note that you need to call TopicTemporalMetrics.Unwrap() before calling this method if this TopicTemporalMetrics
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicTemporalMetrics) Update() *TopicTemporalMetricsUpdateOne {
	return NewTopicTemporalMetricsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicTemporalMetrics entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicTemporalMetrics) Unwrap() *TopicTemporalMetrics {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicTemporalMetrics is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicTemporalMetrics) String() string {
	var builder strings.Builder
	builder.WriteString("TopicTemporalMetrics(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic_cluster_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicClusterID))
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("window_end=")
	builder.WriteString(_m.WindowEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("volume=")
	builder.WriteString(fmt.Sprintf("%v", _m.Volume))
	builder.WriteString(", ")
	builder.WriteString("velocity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Velocity))
	builder.WriteString(", ")
	builder.WriteString("velocity_trend=")
	builder.WriteString(_m.VelocityTrend)
	builder.WriteString(", ")
	builder.WriteString("freshness_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.FreshnessRatio))
	builder.WriteString(", ")
	builder.WriteString("source_diversity=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceDiversity))
	builder.WriteString(", ")
	builder.WriteString("cohesion_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CohesionScore))
	builder.WriteString(", ")
	builder.WriteString("potential_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PotentialScore))
	builder.WriteString(", ")
	builder.WriteString("drift_detected=")
	builder.WriteString(fmt.Sprintf("%v", _m.DriftDetected))
	builder.WriteString(", ")
	if v := _m.DriftDistance; v != nil {
		builder.WriteString("drift_distance=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TopicTemporalMetricsSlice is a parsable slice of TopicTemporalMetrics.
type TopicTemporalMetricsSlice []*TopicTemporalMetrics
