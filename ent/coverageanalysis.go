// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/coverageanalysis"
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// CoverageAnalysis is the model entity for the CoverageAnalysis schema.
type CoverageAnalysis struct {
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
	// DistinctCompetitorDomains holds the value of the "distinct_competitor_domains" field.
	DistinctCompetitorDomains int `json:"distinct_competitor_domains,omitempty"`
	// AvgCompetitor holds the value of the "avg_competitor" field.
	AvgCompetitor float64 `json:"avg_competitor,omitempty"`
	// CoverageScore holds the value of the "coverage_score" field.
	CoverageScore float64 `json:"coverage_score,omitempty"`
	// Level holds the value of the "level" field.
	Level coverageanalysis.Level `json:"level,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CoverageAnalysisQuery when eager-loading is set.
	Edges        CoverageAnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CoverageAnalysisEdges holds the relations/edges for other nodes in the graph.
type CoverageAnalysisEdges struct {
	// Cluster holds the value of the cluster edge.
	Cluster *TopicCluster `json:"cluster,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClusterOrErr returns the Cluster value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CoverageAnalysisEdges) ClusterOrErr() (*TopicCluster, error) {
	if e.Cluster != nil {
		return e.Cluster, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: topiccluster.Label}
	}
	return nil, &NotLoadedError{edge: "cluster"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CoverageAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case coverageanalysis.FieldAvgCompetitor, coverageanalysis.FieldCoverageScore:
			values[i] = new(sql.NullFloat64)
		case coverageanalysis.FieldID, coverageanalysis.FieldTopicClusterID, coverageanalysis.FieldClientCount, coverageanalysis.FieldCompetitorCount, coverageanalysis.FieldDistinctCompetitorDomains:
			values[i] = new(sql.NullInt64)
		case coverageanalysis.FieldClientDomain, coverageanalysis.FieldLevel:
			values[i] = new(sql.NullString)
		case coverageanalysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CoverageAnalysis fields.
func (_m *CoverageAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case coverageanalysis.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case coverageanalysis.FieldClientDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_domain", values[i])
			} else if value.Valid {
				_m.ClientDomain = value.String
			}
		case coverageanalysis.FieldTopicClusterID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_cluster_id", values[i])
			} else if value.Valid {
				_m.TopicClusterID = int(value.Int64)
			}
		case coverageanalysis.FieldClientCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field client_count", values[i])
			} else if value.Valid {
				_m.ClientCount = int(value.Int64)
			}
		case coverageanalysis.FieldCompetitorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field competitor_count", values[i])
			} else if value.Valid {
				_m.CompetitorCount = int(value.Int64)
			}
		case coverageanalysis.FieldDistinctCompetitorDomains:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field distinct_competitor_domains", values[i])
			} else if value.Valid {
				_m.DistinctCompetitorDomains = int(value.Int64)
			}
		case coverageanalysis.FieldAvgCompetitor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_competitor", values[i])
			} else if value.Valid {
				_m.AvgCompetitor = value.Float64
			}
		case coverageanalysis.FieldCoverageScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coverage_score", values[i])
			} else if value.Valid {
				_m.CoverageScore = value.Float64
			}
		case coverageanalysis.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = coverageanalysis.Level(value.String)
			}
		case coverageanalysis.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CoverageAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *CoverageAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCluster queries the "cluster" edge of the CoverageAnalysis entity.
func (_m *CoverageAnalysis) QueryCluster() *TopicClusterQuery {
	return NewCoverageAnalysisClient(_m.config).QueryCluster(_m)
}

// Update returns a builder for updating this CoverageAnalysis.
// Note that you need to call CoverageAnalysis.Unwrap() before calling this method if this CoverageAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CoverageAnalysis) Update() *CoverageAnalysisUpdateOne {
	return NewCoverageAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CoverageAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CoverageAnalysis) Unwrap() *CoverageAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CoverageAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CoverageAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("CoverageAnalysis(")
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
	builder.WriteString("distinct_competitor_domains=")
	builder.WriteString(fmt.Sprintf("%v", _m.DistinctCompetitorDomains))
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
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CoverageAnalyses is a parsable slice of CoverageAnalysis.
type CoverageAnalyses []*CoverageAnalysis
