// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// ArticleRecommendation is the model entity for the ArticleRecommendation schema.
type ArticleRecommendation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TopicClusterID holds the value of the "topic_cluster_id" field.
	TopicClusterID int `json:"topic_cluster_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Hook holds the value of the "hook" field.
	Hook string `json:"hook,omitempty"`
	// Outline holds the value of the "outline" field.
	Outline []string `json:"outline,omitempty"`
	// DifferentiationScore holds the value of the "differentiation_score" field.
	DifferentiationScore float64 `json:"differentiation_score,omitempty"`
	// EffortLevel holds the value of the "effort_level" field.
	EffortLevel articlerecommendation.EffortLevel `json:"effort_level,omitempty"`
	// Status holds the value of the "status" field.
	Status articlerecommendation.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ArticleRecommendationQuery when eager-loading is set.
	Edges        ArticleRecommendationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ArticleRecommendationEdges holds the relations/edges for other nodes in the graph.
type ArticleRecommendationEdges struct {
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
func (e ArticleRecommendationEdges) ClusterOrErr() (*TopicCluster, error) {
	if e.Cluster != nil {
		return e.Cluster, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: topiccluster.Label}
	}
	return nil, &NotLoadedError{edge: "cluster"}
}

// RoadmapEntriesOrErr returns the RoadmapEntries value or an error if the edge
// was not loaded in eager-loading.
func (e ArticleRecommendationEdges) RoadmapEntriesOrErr() ([]*ContentRoadmap, error) {
	if e.loadedTypes[1] {
		return e.RoadmapEntries, nil
	}
	return nil, &NotLoadedError{edge: "roadmap_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ArticleRecommendation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case articlerecommendation.FieldOutline:
			values[i] = new([]byte)
		case articlerecommendation.FieldDifferentiationScore:
			values[i] = new(sql.NullFloat64)
		case articlerecommendation.FieldID, articlerecommendation.FieldTopicClusterID:
			values[i] = new(sql.NullInt64)
		case articlerecommendation.FieldTitle, articlerecommendation.FieldHook, articlerecommendation.FieldEffortLevel, articlerecommendation.FieldStatus:
			values[i] = new(sql.NullString)
		case articlerecommendation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ArticleRecommendation fields.
func (_m *ArticleRecommendation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case articlerecommendation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case articlerecommendation.FieldTopicClusterID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_cluster_id", values[i])
			} else if value.Valid {
				_m.TopicClusterID = int(value.Int64)
			}
		case articlerecommendation.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case articlerecommendation.FieldHook:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hook", values[i])
			} else if value.Valid {
				_m.Hook = value.String
			}
		case articlerecommendation.FieldOutline:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outline", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outline); err != nil {
					return fmt.Errorf("unmarshal field outline: %w", err)
				}
			}
		case articlerecommendation.FieldDifferentiationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field differentiation_score", values[i])
			} else if value.Valid {
				_m.DifferentiationScore = value.Float64
			}
		case articlerecommendation.FieldEffortLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field effort_level", values[i])
			} else if value.Valid {
				_m.EffortLevel = articlerecommendation.EffortLevel(value.String)
			}
		case articlerecommendation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = articlerecommendation.Status(value.String)
			}
		case articlerecommendation.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ArticleRecommendation.
// This includes values selected through modifiers, order, etc.
func (_m *ArticleRecommendation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCluster queries the "cluster" edge of the ArticleRecommendation entity.
func (_m *ArticleRecommendation) QueryCluster() *TopicClusterQuery {
	return NewArticleRecommendationClient(_m.config).QueryCluster(_m)
}

// QueryRoadmapEntries queries the "roadmap_entries" edge of the ArticleRecommendation entity.
func (_m *ArticleRecommendation) QueryRoadmapEntries() *ContentRoadmapQuery {
	return NewArticleRecommendationClient(_m.config).QueryRoadmapEntries(_m)
}

// Update returns a builder for updating this ArticleRecommendation.
// Note that you need to call ArticleRecommendation.Unwrap() before calling this method if this ArticleRecommendation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ArticleRecommendation) Update() *ArticleRecommendationUpdateOne {
	return NewArticleRecommendationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ArticleRecommendation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ArticleRecommendation) Unwrap() *ArticleRecommendation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ArticleRecommendation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ArticleRecommendation) String() string {
	var builder strings.Builder
	builder.WriteString("ArticleRecommendation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic_cluster_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicClusterID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("hook=")
	builder.WriteString(_m.Hook)
	builder.WriteString(", ")
	builder.WriteString("outline=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outline))
	builder.WriteString(", ")
	builder.WriteString("differentiation_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifferentiationScore))
	builder.WriteString(", ")
	builder.WriteString("effort_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.EffortLevel))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ArticleRecommendations is a parsable slice of ArticleRecommendation.
type ArticleRecommendations []*ArticleRecommendation
