package services_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/pkg/services"
	testdb "github.com/trendscope/trendscope/test/database"
)

func newMetricService(t *testing.T) *services.MetricService {
	t.Helper()
	return services.NewMetricService(testdb.NewTestClient(t).Client)
}

func TestMetricCreate(t *testing.T) {
	svc := newMetricService(t)
	ctx := context.Background()

	metric, err := svc.Create(ctx, services.MetricInput{
		ExecutionID: "exec-1",
		AgentName:   "scraper",
		MetricType:  "pages_scraped",
		MetricValue: 42,
		MetricUnit:  "pages",
		AdditionalData: map[string]any{
			"rate": math.Inf(1), // sanitized to null
			"ok":   true,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(42), metric.MetricValue)
	assert.Nil(t, metric.AdditionalData["rate"])
	assert.Equal(t, true, metric.AdditionalData["ok"])

	_, err = svc.Create(ctx, services.MetricInput{MetricType: "x"})
	assert.True(t, services.IsValidationError(err))
	_, err = svc.Create(ctx, services.MetricInput{ExecutionID: "exec-1"})
	assert.True(t, services.IsValidationError(err))
}

func TestMetricsSummary(t *testing.T) {
	svc := newMetricService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateBatch(ctx, []services.MetricInput{
		{ExecutionID: "exec-2", MetricType: "stage_duration", MetricValue: 2.0, MetricUnit: "seconds"},
		{ExecutionID: "exec-2", MetricType: "stage_duration", MetricValue: 4.0, MetricUnit: "seconds"},
		{ExecutionID: "exec-2", MetricType: "llm_calls", MetricValue: 7},
		{ExecutionID: "other", MetricType: "stage_duration", MetricValue: 99},
	}))

	summary, err := svc.GetMetricsSummary(ctx, "exec-2")
	require.NoError(t, err)
	require.Len(t, summary, 2)

	duration := summary["stage_duration"]
	assert.Equal(t, 6.0, duration.Total)
	assert.Equal(t, 2, duration.Count)
	assert.Equal(t, 3.0, duration.Average)
	assert.Equal(t, "seconds", duration.Unit)

	calls := summary["llm_calls"]
	assert.Equal(t, 1, calls.Count)
	assert.Empty(t, calls.Unit)

	empty, err := svc.GetMetricsSummary(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMetricCreateBatch_Validation(t *testing.T) {
	svc := newMetricService(t)
	ctx := context.Background()

	err := svc.CreateBatch(ctx, []services.MetricInput{
		{ExecutionID: "exec-3", MetricType: "ok", MetricValue: 1},
		{ExecutionID: "", MetricType: "bad"},
	})
	assert.True(t, services.IsValidationError(err))

	// The failed batch must not partially persist.
	summary, err := svc.GetMetricsSummary(ctx, "exec-3")
	require.NoError(t, err)
	assert.Empty(t, summary)

	assert.NoError(t, svc.CreateBatch(ctx, nil))
}
