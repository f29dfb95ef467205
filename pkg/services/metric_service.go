package services

import (
	"context"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/performancemetric"
)

// MetricService records per-execution performance samples and aggregates
// them for audit reports and profile comparisons.
type MetricService struct {
	client *ent.Client
}

// NewMetricService creates a new MetricService.
func NewMetricService(client *ent.Client) *MetricService {
	return &MetricService{client: client}
}

// MetricInput is one performance sample.
type MetricInput struct {
	ExecutionID    string
	AgentName      string
	MetricType     string
	MetricValue    float64
	MetricUnit     string
	AdditionalData map[string]any
}

// Create records a single metric sample.
func (s *MetricService) Create(ctx context.Context, in MetricInput) (*ent.PerformanceMetric, error) {
	if in.ExecutionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	if in.MetricType == "" {
		return nil, NewValidationError("metric_type", "required")
	}

	builder := s.client.PerformanceMetric.Create().
		SetExecutionID(in.ExecutionID).
		SetMetricType(in.MetricType).
		SetMetricValue(in.MetricValue)

	if in.AgentName != "" {
		builder.SetAgentName(in.AgentName)
	}
	if in.MetricUnit != "" {
		builder.SetMetricUnit(in.MetricUnit)
	}
	if in.AdditionalData != nil {
		builder.SetAdditionalData(SanitizeJSONMap(in.AdditionalData))
	}

	metric, err := builder.Save(ctx)
	if err != nil {
		return nil, classifyDBError("create metric", err)
	}
	return metric, nil
}

// CreateBatch records several samples in one transaction.
func (s *MetricService) CreateBatch(ctx context.Context, inputs []MetricInput) error {
	if len(inputs) == 0 {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return classifyDBError("begin metric batch", err)
	}
	defer func() { _ = tx.Rollback() }()

	builders := make([]*ent.PerformanceMetricCreate, 0, len(inputs))
	for _, in := range inputs {
		if in.ExecutionID == "" || in.MetricType == "" {
			return NewValidationError("metrics", "execution_id and metric_type are required on every sample")
		}
		b := tx.PerformanceMetric.Create().
			SetExecutionID(in.ExecutionID).
			SetMetricType(in.MetricType).
			SetMetricValue(in.MetricValue)
		if in.AgentName != "" {
			b.SetAgentName(in.AgentName)
		}
		if in.MetricUnit != "" {
			b.SetMetricUnit(in.MetricUnit)
		}
		if in.AdditionalData != nil {
			b.SetAdditionalData(SanitizeJSONMap(in.AdditionalData))
		}
		builders = append(builders, b)
	}

	if err := tx.PerformanceMetric.CreateBulk(builders...).Exec(ctx); err != nil {
		return classifyDBError("create metric batch", err)
	}
	return tx.Commit()
}

// MetricSummary aggregates samples of one metric type.
type MetricSummary struct {
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Unit    string  `json:"unit,omitempty"`
}

// GetMetricsSummary aggregates all samples of an execution grouped by
// metric_type.
func (s *MetricService) GetMetricsSummary(ctx context.Context, executionID string) (map[string]MetricSummary, error) {
	metrics, err := s.client.PerformanceMetric.Query().
		Where(performancemetric.ExecutionIDEQ(executionID)).
		Order(ent.Asc(performancemetric.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, classifyDBError("get metrics summary", err)
	}

	summary := make(map[string]MetricSummary)
	for _, m := range metrics {
		entry := summary[m.MetricType]
		entry.Total += m.MetricValue
		entry.Count++
		if entry.Unit == "" {
			entry.Unit = m.MetricUnit
		}
		summary[m.MetricType] = entry
	}
	for metricType, entry := range summary {
		entry.Average = entry.Total / float64(entry.Count)
		summary[metricType] = entry
	}
	return summary, nil
}
