// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// TrendPipelineExecution is the model entity for the TrendPipelineExecution schema.
type TrendPipelineExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID; links back to the owning WorkflowExecution
	ExecutionID string `json:"execution_id,omitempty"`
	// ClientDomain holds the value of the "client_domain" field.
	ClientDomain string `json:"client_domain,omitempty"`
	// DomainsAnalyzed holds the value of the "domains_analyzed" field.
	DomainsAnalyzed []string `json:"domains_analyzed,omitempty"`
	// TimeWindowDays holds the value of the "time_window_days" field.
	TimeWindowDays int `json:"time_window_days,omitempty"`
	// Stage1ClusteringStatus holds the value of the "stage_1_clustering_status" field.
	Stage1ClusteringStatus trendpipelineexecution.Stage1ClusteringStatus `json:"stage_1_clustering_status,omitempty"`
	// Stage2TemporalStatus holds the value of the "stage_2_temporal_status" field.
	Stage2TemporalStatus trendpipelineexecution.Stage2TemporalStatus `json:"stage_2_temporal_status,omitempty"`
	// Stage3LlmStatus holds the value of the "stage_3_llm_status" field.
	Stage3LlmStatus trendpipelineexecution.Stage3LlmStatus `json:"stage_3_llm_status,omitempty"`
	// Stage4GapStatus holds the value of the "stage_4_gap_status" field.
	Stage4GapStatus trendpipelineexecution.Stage4GapStatus `json:"stage_4_gap_status,omitempty"`
	// TotalArticles holds the value of the "total_articles" field.
	TotalArticles int `json:"total_articles,omitempty"`
	// TotalClusters holds the value of the "total_clusters" field.
	TotalClusters int `json:"total_clusters,omitempty"`
	// TotalOutliers holds the value of the "total_outliers" field.
	TotalOutliers int `json:"total_outliers,omitempty"`
	// TotalRecommendations holds the value of the "total_recommendations" field.
	TotalRecommendations int `json:"total_recommendations,omitempty"`
	// TotalGaps holds the value of the "total_gaps" field.
	TotalGaps int `json:"total_gaps,omitempty"`
	// LLM verdict on the unclustered documents
	OutlierAnalysis map[string]interface{} `json:"outlier_analysis,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime *time.Time `json:"end_time,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// IsValid holds the value of the "is_valid" field.
	IsValid bool `json:"is_valid,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrendPipelineExecutionQuery when eager-loading is set.
	Edges        TrendPipelineExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TrendPipelineExecutionEdges holds the relations/edges for other nodes in the graph.
type TrendPipelineExecutionEdges struct {
	// Clusters holds the value of the clusters edge.
	Clusters []*TopicCluster `json:"clusters,omitempty"`
	// Outliers holds the value of the outliers edge.
	Outliers []*TopicOutlier `json:"outliers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ClustersOrErr returns the Clusters value or an error if the edge
// was not loaded in eager-loading.
func (e TrendPipelineExecutionEdges) ClustersOrErr() ([]*TopicCluster, error) {
	if e.loadedTypes[0] {
		return e.Clusters, nil
	}
	return nil, &NotLoadedError{edge: "clusters"}
}

// OutliersOrErr returns the Outliers value or an error if the edge
// was not loaded in eager-loading.
func (e TrendPipelineExecutionEdges) OutliersOrErr() ([]*TopicOutlier, error) {
	if e.loadedTypes[1] {
		return e.Outliers, nil
	}
	return nil, &NotLoadedError{edge: "outliers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrendPipelineExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trendpipelineexecution.FieldDomainsAnalyzed, trendpipelineexecution.FieldOutlierAnalysis:
			values[i] = new([]byte)
		case trendpipelineexecution.FieldIsValid:
			values[i] = new(sql.NullBool)
		case trendpipelineexecution.FieldDurationSeconds:
			values[i] = new(sql.NullFloat64)
		case trendpipelineexecution.FieldID, trendpipelineexecution.FieldTimeWindowDays, trendpipelineexecution.FieldTotalArticles, trendpipelineexecution.FieldTotalClusters, trendpipelineexecution.FieldTotalOutliers, trendpipelineexecution.FieldTotalRecommendations, trendpipelineexecution.FieldTotalGaps:
			values[i] = new(sql.NullInt64)
		case trendpipelineexecution.FieldExecutionID, trendpipelineexecution.FieldClientDomain, trendpipelineexecution.FieldStage1ClusteringStatus, trendpipelineexecution.FieldStage2TemporalStatus, trendpipelineexecution.FieldStage3LlmStatus, trendpipelineexecution.FieldStage4GapStatus, trendpipelineexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case trendpipelineexecution.FieldStartTime, trendpipelineexecution.FieldEndTime, trendpipelineexecution.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrendPipelineExecution fields.
func (_m *TrendPipelineExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trendpipelineexecution.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trendpipelineexecution.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case trendpipelineexecution.FieldClientDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_domain", values[i])
			} else if value.Valid {
				_m.ClientDomain = value.String
			}
		case trendpipelineexecution.FieldDomainsAnalyzed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field domains_analyzed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DomainsAnalyzed); err != nil {
					return fmt.Errorf("unmarshal field domains_analyzed: %w", err)
				}
			}
		case trendpipelineexecution.FieldTimeWindowDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_window_days", values[i])
			} else if value.Valid {
				_m.TimeWindowDays = int(value.Int64)
			}
		case trendpipelineexecution.FieldStage1ClusteringStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_1_clustering_status", values[i])
			} else if value.Valid {
				_m.Stage1ClusteringStatus = trendpipelineexecution.Stage1ClusteringStatus(value.String)
			}
		case trendpipelineexecution.FieldStage2TemporalStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_2_temporal_status", values[i])
			} else if value.Valid {
				_m.Stage2TemporalStatus = trendpipelineexecution.Stage2TemporalStatus(value.String)
			}
		case trendpipelineexecution.FieldStage3LlmStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_3_llm_status", values[i])
			} else if value.Valid {
				_m.Stage3LlmStatus = trendpipelineexecution.Stage3LlmStatus(value.String)
			}
		case trendpipelineexecution.FieldStage4GapStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_4_gap_status", values[i])
			} else if value.Valid {
				_m.Stage4GapStatus = trendpipelineexecution.Stage4GapStatus(value.String)
			}
		case trendpipelineexecution.FieldTotalArticles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_articles", values[i])
			} else if value.Valid {
				_m.TotalArticles = int(value.Int64)
			}
		case trendpipelineexecution.FieldTotalClusters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_clusters", values[i])
			} else if value.Valid {
				_m.TotalClusters = int(value.Int64)
			}
		case trendpipelineexecution.FieldTotalOutliers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_outliers", values[i])
			} else if value.Valid {
				_m.TotalOutliers = int(value.Int64)
			}
		case trendpipelineexecution.FieldTotalRecommendations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_recommendations", values[i])
			} else if value.Valid {
				_m.TotalRecommendations = int(value.Int64)
			}
		case trendpipelineexecution.FieldTotalGaps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_gaps", values[i])
			} else if value.Valid {
				_m.TotalGaps = int(value.Int64)
			}
		case trendpipelineexecution.FieldOutlierAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outlier_analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutlierAnalysis); err != nil {
					return fmt.Errorf("unmarshal field outlier_analysis: %w", err)
				}
			}
		case trendpipelineexecution.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case trendpipelineexecution.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(time.Time)
				*_m.EndTime = value.Time
			}
		case trendpipelineexecution.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = new(float64)
				*_m.DurationSeconds = value.Float64
			}
		case trendpipelineexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case trendpipelineexecution.FieldIsValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_valid", values[i])
			} else if value.Valid {
				_m.IsValid = value.Bool
			}
		case trendpipelineexecution.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TrendPipelineExecution.
// This includes values selected through modifiers, order, etc.
func (_m *TrendPipelineExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClusters queries the "clusters" edge of the TrendPipelineExecution entity.
func (_m *TrendPipelineExecution) QueryClusters() *TopicClusterQuery {
	return NewTrendPipelineExecutionClient(_m.config).QueryClusters(_m)
}

// QueryOutliers queries the "outliers" edge of the TrendPipelineExecution entity.
func (_m *TrendPipelineExecution) QueryOutliers() *TopicOutlierQuery {
	return NewTrendPipelineExecutionClient(_m.config).QueryOutliers(_m)
}

// Update returns a builder for updating this TrendPipelineExecution.
// Note that you need to call TrendPipelineExecution.Unwrap() before calling this method if this TrendPipelineExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrendPipelineExecution) Update() *TrendPipelineExecutionUpdateOne {
	return NewTrendPipelineExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrendPipelineExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrendPipelineExecution) Unwrap() *TrendPipelineExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrendPipelineExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrendPipelineExecution) String() string {
	var builder strings.Builder
	builder.WriteString("TrendPipelineExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("client_domain=")
	builder.WriteString(_m.ClientDomain)
	builder.WriteString(", ")
	builder.WriteString("domains_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainsAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("time_window_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeWindowDays))
	builder.WriteString(", ")
	builder.WriteString("stage_1_clustering_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage1ClusteringStatus))
	builder.WriteString(", ")
	builder.WriteString("stage_2_temporal_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage2TemporalStatus))
	builder.WriteString(", ")
	builder.WriteString("stage_3_llm_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage3LlmStatus))
	builder.WriteString(", ")
	builder.WriteString("stage_4_gap_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage4GapStatus))
	builder.WriteString(", ")
	builder.WriteString("total_articles=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalArticles))
	builder.WriteString(", ")
	builder.WriteString("total_clusters=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalClusters))
	builder.WriteString(", ")
	builder.WriteString("total_outliers=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalOutliers))
	builder.WriteString(", ")
	builder.WriteString("total_recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRecommendations))
	builder.WriteString(", ")
	builder.WriteString("total_gaps=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalGaps))
	builder.WriteString(", ")
	builder.WriteString("outlier_analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutlierAnalysis))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
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
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsValid))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrendPipelineExecutions is a parsable slice of TrendPipelineExecution.
type TrendPipelineExecutions []*TrendPipelineExecution
