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
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// TopicCluster is the model entity for the TopicCluster schema.
type TopicCluster struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AnalysisID holds the value of the "analysis_id" field.
	AnalysisID int `json:"analysis_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID int `json:"topic_id,omitempty"`
	// Label holds the value of the "label" field.
	Label string `json:"label,omitempty"`
	// Ordered list of {term, weight}
	TopTerms []map[string]interface{} `json:"top_terms,omitempty"`
	// Size holds the value of the "size" field.
	Size int `json:"size,omitempty"`
	// {indices: [int], ids: [uuid]}
	DocumentIds map[string]interface{} `json:"document_ids,omitempty"`
	// Point id in the centroids collection, when upserted
	CentroidVectorID *string `json:"centroid_vector_id,omitempty"`
	// CoherenceScore holds the value of the "coherence_score" field.
	CoherenceScore float64 `json:"coherence_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TopicClusterQuery when eager-loading is set.
	Edges        TopicClusterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TopicClusterEdges holds the relations/edges for other nodes in the graph.
type TopicClusterEdges struct {
	// Analysis holds the value of the analysis edge.
	Analysis *TrendPipelineExecution `json:"analysis,omitempty"`
	// TemporalMetrics holds the value of the temporal_metrics edge.
	TemporalMetrics []*TopicTemporalMetrics `json:"temporal_metrics,omitempty"`
	// TrendAnalyses holds the value of the trend_analyses edge.
	TrendAnalyses []*TrendAnalysis `json:"trend_analyses,omitempty"`
	// Recommendations holds the value of the recommendations edge.
	Recommendations []*ArticleRecommendation `json:"recommendations,omitempty"`
	// Gaps holds the value of the gaps edge.
	Gaps []*EditorialGap `json:"gaps,omitempty"`
	// Strengths holds the value of the strengths edge.
	Strengths []*ClientStrength `json:"strengths,omitempty"`
	// CoverageAnalyses holds the value of the coverage_analyses edge.
	CoverageAnalyses []*CoverageAnalysis `json:"coverage_analyses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// AnalysisOrErr returns the Analysis value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TopicClusterEdges) AnalysisOrErr() (*TrendPipelineExecution, error) {
	if e.Analysis != nil {
		return e.Analysis, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: trendpipelineexecution.Label}
	}
	return nil, &NotLoadedError{edge: "analysis"}
}

// TemporalMetricsOrErr returns the TemporalMetrics value or an error if the edge
// was not loaded in eager-loading.
func (e TopicClusterEdges) TemporalMetricsOrErr() ([]*TopicTemporalMetrics, error) {
	if e.loadedTypes[1] {
		return e.TemporalMetrics, nil
	}
	return nil, &NotLoadedError{edge: "temporal_metrics"}
}

// TrendAnalysesOrErr returns the TrendAnalyses value or an error if the edge
// was not loaded in eager-loading.
func (e TopicClusterEdges) TrendAnalysesOrErr() ([]*TrendAnalysis, error) {
	if e.loadedTypes[2] {
		return e.TrendAnalyses, nil
	}
	return nil, &NotLoadedError{edge: "trend_analyses"}
}

// RecommendationsOrErr returns the Recommendations value or an error if the edge
// was not loaded in eager-loading.
func (e TopicClusterEdges) RecommendationsOrErr() ([]*ArticleRecommendation, error) {
	if e.loadedTypes[3] {
		return e.Recommendations, nil
	}
	return nil, &NotLoadedError{edge: "recommendations"}
}

// GapsOrErr returns the Gaps value or an error if the edge
// was not loaded in eager-loading.
func (e TopicClusterEdges) GapsOrErr() ([]*EditorialGap, error) {
	if e.loadedTypes[4] {
		return e.Gaps, nil
	}
	return nil, &NotLoadedError{edge: "gaps"}
}

// StrengthsOrErr returns the Strengths value or an error if the edge
// was not loaded in eager-loading.
func (e TopicClusterEdges) StrengthsOrErr() ([]*ClientStrength, error) {
	if e.loadedTypes[5] {
		return e.Strengths, nil
	}
	return nil, &NotLoadedError{edge: "strengths"}
}

// CoverageAnalysesOrErr returns the CoverageAnalyses value or an error if the edge
// was not loaded in eager-loading.
func (e TopicClusterEdges) CoverageAnalysesOrErr() ([]*CoverageAnalysis, error) {
	if e.loadedTypes[6] {
		return e.CoverageAnalyses, nil
	}
	return nil, &NotLoadedError{edge: "coverage_analyses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicCluster) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topiccluster.FieldTopTerms, topiccluster.FieldDocumentIds:
			values[i] = new([]byte)
		case topiccluster.FieldCoherenceScore:
			values[i] = new(sql.NullFloat64)
		case topiccluster.FieldID, topiccluster.FieldAnalysisID, topiccluster.FieldTopicID, topiccluster.FieldSize:
			values[i] = new(sql.NullInt64)
		case topiccluster.FieldLabel, topiccluster.FieldCentroidVectorID:
			values[i] = new(sql.NullString)
		case topiccluster.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicCluster fields.
func (_m *TopicCluster) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topiccluster.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topiccluster.FieldAnalysisID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_id", values[i])
			} else if value.Valid {
				_m.AnalysisID = int(value.Int64)
			}
		case topiccluster.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = int(value.Int64)
			}
		case topiccluster.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case topiccluster.FieldTopTerms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field top_terms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopTerms); err != nil {
					return fmt.Errorf("unmarshal field top_terms: %w", err)
				}
			}
		case topiccluster.FieldSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				_m.Size = int(value.Int64)
			}
		case topiccluster.FieldDocumentIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field document_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DocumentIds); err != nil {
					return fmt.Errorf("unmarshal field document_ids: %w", err)
				}
			}
		case topiccluster.FieldCentroidVectorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field centroid_vector_id", values[i])
			} else if value.Valid {
				_m.CentroidVectorID = new(string)
				*_m.CentroidVectorID = value.String
			}
		case topiccluster.FieldCoherenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coherence_score", values[i])
			} else if value.Valid {
				_m.CoherenceScore = value.Float64
			}
		case topiccluster.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TopicCluster.
// This includes values selected through modifiers, order, etc.
func (_m *TopicCluster) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnalysis queries the "analysis" edge of the TopicCluster entity.
func (_m *TopicCluster) QueryAnalysis() *TrendPipelineExecutionQuery {
	return NewTopicClusterClient(_m.config).QueryAnalysis(_m)
}

// QueryTemporalMetrics queries the "temporal_metrics" edge of the TopicCluster entity.
func (_m *TopicCluster) QueryTemporalMetrics() *TopicTemporalMetricsQuery {
	return NewTopicClusterClient(_m.config).QueryTemporalMetrics(_m)
}

// QueryTrendAnalyses queries the "trend_analyses" edge of the TopicCluster entity.
func (_m *TopicCluster) QueryTrendAnalyses() *TrendAnalysisQuery {
	return NewTopicClusterClient(_m.config).QueryTrendAnalyses(_m)
}

// QueryRecommendations queries the "recommendations" edge of the TopicCluster entity.
func (_m *TopicCluster) QueryRecommendations() *ArticleRecommendationQuery {
	return NewTopicClusterClient(_m.config).QueryRecommendations(_m)
}

// QueryGaps queries the "gaps" edge of the TopicCluster entity.
func (_m *TopicCluster) QueryGaps() *EditorialGapQuery {
	return NewTopicClusterClient(_m.config).QueryGaps(_m)
}

// QueryStrengths queries the "strengths" edge of the TopicCluster entity.
func (_m *TopicCluster) QueryStrengths() *ClientStrengthQuery {
	return NewTopicClusterClient(_m.config).QueryStrengths(_m)
}

// QueryCoverageAnalyses queries the "coverage_analyses" edge of the TopicCluster entity.
func (_m *TopicCluster) QueryCoverageAnalyses() *CoverageAnalysisQuery {
	return NewTopicClusterClient(_m.config).QueryCoverageAnalyses(_m)
}

// Update returns a builder for updating this TopicCluster.
// Note that you need to call TopicCluster.Unwrap() before calling this method if this TopicCluster
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicCluster) Update() *TopicClusterUpdateOne {
	return NewTopicClusterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicCluster entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicCluster) Unwrap() *TopicCluster {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicCluster is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicCluster) String() string {
	var builder strings.Builder
	builder.WriteString("TopicCluster(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("analysis_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisID))
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicID))
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("top_terms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopTerms))
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", _m.Size))
	builder.WriteString(", ")
	builder.WriteString("document_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentIds))
	builder.WriteString(", ")
	if v := _m.CentroidVectorID; v != nil {
		builder.WriteString("centroid_vector_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("coherence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoherenceScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TopicClusters is a parsable slice of TopicCluster.
type TopicClusters []*TopicCluster
