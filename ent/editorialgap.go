// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// EditorialGap is the model entity for the EditorialGap schema.
type EditorialGap struct {
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
	// AvgCompetitor holds the value of the "avg_competitor" field.
	AvgCompetitor float64 `json:"avg_competitor,omitempty"`
	// CoverageScore holds the value of the "coverage_score" field.
	CoverageScore float64 `json:"coverage_score,omitempty"`
	// Level holds the value of the "level" field.
	Level editorialgap.Level `json:"level,omitempty"`
	// PriorityScore holds the value of the "priority_score" field.
	PriorityScore float64 `json:"priority_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EditorialGapQuery when eager-loading is set.
	Edges        EditorialGapEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EditorialGapEdges holds the relations/edges for other nodes in the graph.
type EditorialGapEdges struct {
	// Cluster holds the value of the cluster edge.
	Cluster *TopicCluster `json:"cluster,omitempty"`
	// RoadmapEntries holds the value of the roadmap_entries edge.
	RoadmapEntries []*ContentRoadmap `json:"roadmap_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ClusterOrErr returns the Cluster value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EditorialGapEdges) ClusterOrErr() (*TopicCluster, error) {
	if e.Cluster != nil {
		return e.Cluster, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: topiccluster.Label}
	}
	return nil, &NotLoadedError{edge: "cluster"}
}

// RoadmapEntriesOrErr returns the RoadmapEntries value or an error if the edge
// was not loaded in eager-loading.
func (e EditorialGapEdges) RoadmapEntriesOrErr() ([]*ContentRoadmap, error) {
	if e.loadedTypes[1] {
		return e.RoadmapEntries, nil
	}
	return nil, &NotLoadedError{edge: "roadmap_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EditorialGap) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case editorialgap.FieldAvgCompetitor, editorialgap.FieldCoverageScore, editorialgap.FieldPriorityScore:
			values[i] = new(sql.NullFloat64)
		case editorialgap.FieldID, editorialgap.FieldTopicClusterID, editorialgap.FieldClientCount, editorialgap.FieldCompetitorCount:
			values[i] = new(sql.NullInt64)
		case editorialgap.FieldClientDomain, editorialgap.FieldLevel:
			values[i] = new(sql.NullString)
		case editorialgap.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EditorialGap fields.
func (_m *EditorialGap) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case editorialgap.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case editorialgap.FieldClientDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_domain", values[i])
			} else if value.Valid {
				_m.ClientDomain = value.String
			}
		case editorialgap.FieldTopicClusterID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_cluster_id", values[i])
			} else if value.Valid {
				_m.TopicClusterID = int(value.Int64)
			}
		case editorialgap.FieldClientCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field client_count", values[i])
			} else if value.Valid {
				_m.ClientCount = int(value.Int64)
			}
		case editorialgap.FieldCompetitorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field competitor_count", values[i])
			} else if value.Valid {
				_m.CompetitorCount = int(value.Int64)
			}
		case editorialgap.FieldAvgCompetitor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_competitor", values[i])
			} else if value.Valid {
				_m.AvgCompetitor = value.Float64
			}
		case editorialgap.FieldCoverageScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coverage_score", values[i])
			} else if value.Valid {
				_m.CoverageScore = value.Float64
			}
		case editorialgap.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = editorialgap.Level(value.String)
			}
		case editorialgap.FieldPriorityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field priority_score", values[i])
			} else if value.Valid {
				_m.PriorityScore = value.Float64
			}
		case editorialgap.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EditorialGap.
// This includes values selected through modifiers, order, etc.
func (_m *EditorialGap) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCluster queries the "cluster" edge of the EditorialGap entity.
func (_m *EditorialGap) QueryCluster() *TopicClusterQuery {
	return NewEditorialGapClient(_m.config).QueryCluster(_m)
}

// QueryRoadmapEntries queries the "roadmap_entries" edge of the EditorialGap entity.
func (_m *EditorialGap) QueryRoadmapEntries() *ContentRoadmapQuery {
	return NewEditorialGapClient(_m.config).QueryRoadmapEntries(_m)
}

// Update returns a builder for updating this EditorialGap.
// Note that you need to call EditorialGap.Unwrap() before calling this method if this EditorialGap
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EditorialGap) Update() *EditorialGapUpdateOne {
	return NewEditorialGapClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EditorialGap entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EditorialGap) Unwrap() *EditorialGap {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EditorialGap is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EditorialGap) String() string {
	var builder strings.Builder
	builder.WriteString("EditorialGap(")
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
	builder.WriteString("avg_competitor=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgCompetitor))
	builder.WriteString(", ")
	builder.WriteString("coverage_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoverageScore))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("priority_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EditorialGaps is a parsable slice of EditorialGap.
type EditorialGaps []*EditorialGap
