package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// ExecutionDetailResponse is the full view of one workflow execution.
type ExecutionDetailResponse struct {
	ExecutionID     string                    `json:"execution_id"`
	WorkflowType    string                    `json:"workflow_type"`
	Domain          string                    `json:"domain,omitempty"`
	Status          string                    `json:"status"`
	WasSuccess      *bool                     `json:"was_success,omitempty"`
	InputData       map[string]any            `json:"input_data,omitempty"`
	OutputData      map[string]any            `json:"output_data,omitempty"`
	ErrorMessage    string                    `json:"error_message,omitempty"`
	StartTime       *time.Time                `json:"start_time,omitempty"`
	EndTime         *time.Time                `json:"end_time,omitempty"`
	DurationSeconds *float64                  `json:"duration_seconds,omitempty"`
	ParentID        string                    `json:"parent_execution_id,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
	Children        []ExecutionChildSummary   `json:"children,omitempty"`
	Logs            []ExecutionLogEntry       `json:"logs,omitempty"`
	Metrics         map[string]MetricsSummary `json:"metrics,omitempty"`
}

// ExecutionChildSummary is one child workflow of an orchestrator execution.
type ExecutionChildSummary struct {
	ExecutionID  string `json:"execution_id"`
	WorkflowType string `json:"workflow_type"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// ExecutionLogEntry is one audit log line of an execution.
type ExecutionLogEntry struct {
	Action    string         `json:"action"`
	StepName  string         `json:"step_name,omitempty"`
	Status    string         `json:"status"`
	Message   string         `json:"message,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// MetricsSummary aggregates one metric type over an execution.
type MetricsSummary struct {
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Unit    string  `json:"unit,omitempty"`
}

// getExecutionHandler handles GET /api/v1/executions/:execution_id.
func (s *Server) getExecutionHandler(c *echo.Context) error {
	executionID := c.Param("execution_id")
	if executionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "execution_id is required")
	}
	ctx := c.Request().Context()

	exec, err := s.executions.GetExecution(ctx, executionID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := ExecutionDetailResponse{
		ExecutionID:     exec.ID,
		WorkflowType:    string(exec.WorkflowType),
		Domain:          exec.Domain,
		Status:          string(exec.Status),
		WasSuccess:      exec.WasSuccess,
		InputData:       exec.InputData,
		OutputData:      exec.OutputData,
		StartTime:       exec.StartTime,
		EndTime:         exec.EndTime,
		DurationSeconds: exec.DurationSeconds,
		CreatedAt:       exec.CreatedAt,
	}
	if exec.ErrorMessage != nil {
		resp.ErrorMessage = *exec.ErrorMessage
	}
	if exec.ParentExecutionID != nil {
		resp.ParentID = *exec.ParentExecutionID
	}

	if children, err := s.executions.ListChildren(ctx, executionID); err == nil {
		for _, child := range children {
			summary := ExecutionChildSummary{
				ExecutionID:  child.ID,
				WorkflowType: string(child.WorkflowType),
				Status:       string(child.Status),
			}
			if child.ErrorMessage != nil {
				summary.ErrorMessage = *child.ErrorMessage
			}
			resp.Children = append(resp.Children, summary)
		}
	}

	if c.QueryParam("include_logs") != "false" {
		if logs, err := s.auditLogs.GetLogs(ctx, executionID); err == nil {
			for _, entry := range logs {
				resp.Logs = append(resp.Logs, ExecutionLogEntry{
					Action:    entry.Action,
					StepName:  entry.StepName,
					Status:    string(entry.Status),
					Message:   entry.Message,
					Details:   entry.Details,
					Timestamp: entry.Timestamp,
				})
			}
		}
	}

	if c.QueryParam("include_metrics") == "true" {
		if summary, err := s.metrics.GetMetricsSummary(ctx, executionID); err == nil {
			resp.Metrics = make(map[string]MetricsSummary, len(summary))
			for metricType, m := range summary {
				resp.Metrics[metricType] = MetricsSummary{
					Total:   m.Total,
					Count:   m.Count,
					Average: m.Average,
					Unit:    m.Unit,
				}
			}
		}
	}
	return c.JSON(http.StatusOK, resp)
}
