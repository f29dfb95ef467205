// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/clientstrength"
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// ClientStrength is the model entity for the ClientStrength schema.
type ClientStrength struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ClientDomain holds the value of the "client_domain" field.
	ClientDomain string `json:"client_domain,omitempty"`
	// TopicClusterID holds the value of the "topic_cluster_id" field.
	TopicClusterID int `json:"topic_cluster_id,omitempty"`
	// ClientCount holds the value of the "client_count" field.
	ClientCount int `json:"client_count,omitempty"`
	// CompetitorCount holds the value of the "competitor_count" field.
	CompetitorCount int `json:"competitor_count,omitempty"`
	// CoverageScore holds the value of the "coverage_score" field.
	CoverageScore float64 `json:"coverage_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClientStrengthQuery when eager-loading is set.
	Edges        ClientStrengthEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClientStrengthEdges holds the relations/edges for other nodes in the graph.
type ClientStrengthEdges struct {
	// Cluster holds the value of the cluster edge.
	Cluster *TopicCluster `json:"cluster,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClusterOrErr returns the Cluster value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClientStrengthEdges) ClusterOrErr() (*TopicCluster, error) {
	if e.Cluster != nil {
		return e.Cluster, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: topiccluster.Label}
	}
	return nil, &NotLoadedError{edge: "cluster"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClientStrength) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clientstrength.FieldCoverageScore:
			values[i] = new(sql.NullFloat64)
		case clientstrength.FieldID, clientstrength.FieldTopicClusterID, clientstrength.FieldClientCount, clientstrength.FieldCompetitorCount:
			values[i] = new(sql.NullInt64)
		case clientstrength.FieldClientDomain:
			values[i] = new(sql.NullString)
		case clientstrength.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClientStrength fields.
func (_m *ClientStrength) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clientstrength.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case clientstrength.FieldClientDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_domain", values[i])
			} else if value.Valid {
				_m.ClientDomain = value.String
			}
		case clientstrength.FieldTopicClusterID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_cluster_id", values[i])
			} else if value.Valid {
				_m.TopicClusterID = int(value.Int64)
			}
		case clientstrength.FieldClientCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field client_count", values[i])
			} else if value.Valid {
				_m.ClientCount = int(value.Int64)
			}
		case clientstrength.FieldCompetitorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field competitor_count", values[i])
			} else if value.Valid {
				_m.CompetitorCount = int(value.Int64)
			}
		case clientstrength.FieldCoverageScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coverage_score", values[i])
			} else if value.Valid {
				_m.CoverageScore = value.Float64
			}
		case clientstrength.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ClientStrength.
// This includes values selected through modifiers, order, etc.
func (_m *ClientStrength) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCluster queries the "cluster" edge of the ClientStrength entity.
func (_m *ClientStrength) QueryCluster() *TopicClusterQuery {
	return NewClientStrengthClient(_m.config).QueryCluster(_m)
}

// Update returns a builder for updating this ClientStrength.
// Note that you need to call ClientStrength.Unwrap() before calling this method if this ClientStrength
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClientStrength) Update() *ClientStrengthUpdateOne {
	return NewClientStrengthClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClientStrength entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClientStrength) Unwrap() *ClientStrength {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClientStrength is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClientStrength) String() string {
	var builder strings.Builder
	builder.WriteString("ClientStrength(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("client_domain=")
	builder.WriteString(_m.ClientDomain)
	builder.WriteString(", ")
	builder.WriteString("topic_cluster_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicClusterID))
	builder.WriteString(", ")
	builder.WriteString("client_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientCount))
	builder.WriteString(", ")
	builder.WriteString("competitor_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompetitorCount))
	builder.WriteString(", ")
	builder.WriteString("coverage_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoverageScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClientStrengths is a parsable slice of ClientStrength.
type ClientStrengths []*ClientStrength
