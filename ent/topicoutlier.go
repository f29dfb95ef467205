// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/topicoutlier"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// TopicOutlier is the model entity for the TopicOutlier schema.
type TopicOutlier struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AnalysisID holds the value of the "analysis_id" field.
	AnalysisID int `json:"analysis_id,omitempty"`
	// Vector store point id of the outlier document
	DocumentID string `json:"document_id,omitempty"`
	// ArticleID holds the value of the "article_id" field.
	ArticleID *int `json:"article_id,omitempty"`
	// NearestTopicID holds the value of the "nearest_topic_id" field.
	NearestTopicID *int `json:"nearest_topic_id,omitempty"`
	// Rule-based category from keyword heuristics over the text
	PotentialCategory string `json:"potential_category,omitempty"`
	// Distance to the nearest cluster centroid
	EmbeddingDistance float64 `json:"embedding_distance,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TopicOutlierQuery when eager-loading is set.
	Edges        TopicOutlierEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TopicOutlierEdges holds the relations/edges for other nodes in the graph.
type TopicOutlierEdges struct {
	// Analysis holds the value of the analysis edge.
	Analysis *TrendPipelineExecution `json:"analysis,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnalysisOrErr returns the Analysis value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TopicOutlierEdges) AnalysisOrErr() (*TrendPipelineExecution, error) {
	if e.Analysis != nil {
		return e.Analysis, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: trendpipelineexecution.Label}
	}
	return nil, &NotLoadedError{edge: "analysis"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicOutlier) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicoutlier.FieldEmbeddingDistance:
			values[i] = new(sql.NullFloat64)
		case topicoutlier.FieldID, topicoutlier.FieldAnalysisID, topicoutlier.FieldArticleID, topicoutlier.FieldNearestTopicID:
			values[i] = new(sql.NullInt64)
		case topicoutlier.FieldDocumentID, topicoutlier.FieldPotentialCategory:
			values[i] = new(sql.NullString)
		case topicoutlier.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicOutlier fields.
func (_m *TopicOutlier) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicoutlier.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topicoutlier.FieldAnalysisID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_id", values[i])
			} else if value.Valid {
				_m.AnalysisID = int(value.Int64)
			}
		case topicoutlier.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case topicoutlier.FieldArticleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				_m.ArticleID = new(int)
				*_m.ArticleID = int(value.Int64)
			}
		case topicoutlier.FieldNearestTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field nearest_topic_id", values[i])
			} else if value.Valid {
				_m.NearestTopicID = new(int)
				*_m.NearestTopicID = int(value.Int64)
			}
		case topicoutlier.FieldPotentialCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field potential_category", values[i])
			} else if value.Valid {
				_m.PotentialCategory = value.String
			}
		case topicoutlier.FieldEmbeddingDistance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field embedding_distance", values[i])
			} else if value.Valid {
				_m.EmbeddingDistance = value.Float64
			}
		case topicoutlier.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TopicOutlier.
// This includes values selected through modifiers, order, etc.
func (_m *TopicOutlier) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnalysis queries the "analysis" edge of the TopicOutlier entity.
func (_m *TopicOutlier) QueryAnalysis() *TrendPipelineExecutionQuery {
	return NewTopicOutlierClient(_m.config).QueryAnalysis(_m)
}

// Update returns a builder for updating this TopicOutlier.
// Note that you need to call TopicOutlier.Unwrap() before calling this method if this TopicOutlier
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicOutlier) Update() *TopicOutlierUpdateOne {
	return NewTopicOutlierClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicOutlier entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicOutlier) Unwrap() *TopicOutlier {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicOutlier is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicOutlier) String() string {
	var builder strings.Builder
	builder.WriteString("TopicOutlier(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("analysis_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisID))
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	if v := _m.ArticleID; v != nil {
		builder.WriteString("article_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NearestTopicID; v != nil {
		builder.WriteString("nearest_topic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("potential_category=")
	builder.WriteString(_m.PotentialCategory)
	builder.WriteString(", ")
	builder.WriteString("embedding_distance=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmbeddingDistance))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TopicOutliers is a parsable slice of TopicOutlier.
type TopicOutliers []*TopicOutlier
