package events

// AuditProgressPayload is the payload for audit.progress events. Published
// on every audit step transition; Step is empty for audit-level terminal
// events.
type AuditProgressPayload struct {
	Type        string  `json:"type"`           // always EventTypeAuditProgress
	ExecutionID string  `json:"execution_id"`   // orchestrator execution
	Domain      string  `json:"domain"`         // audited client domain
	Step        string  `json:"step,omitempty"` // workflow step name, empty for audit-level events
	Status      string  `json:"status"`         // running, completed, failed
	Progress    float64 `json:"progress"`       // 0-100
	Timestamp   string  `json:"timestamp"`      // RFC3339Nano
}

// ExecutionStatusPayload is the payload for execution.status events.
type ExecutionStatusPayload struct {
	Type         string `json:"type"`          // always EventTypeExecutionStatus
	ExecutionID  string `json:"execution_id"`  //
	WorkflowType string `json:"workflow_type"` // editorial_analysis, trend_pipeline, ...
	Domain       string `json:"domain,omitempty"`
	Status       string `json:"status"`    // pending, running, completed, failed
	Timestamp    string `json:"timestamp"` // RFC3339Nano
}

// PipelineStagePayload is the payload for pipeline.stage events, one per
// stage status transition of a trend pipeline run.
type PipelineStagePayload struct {
	Type        string `json:"type"`         // always EventTypePipelineStage
	ExecutionID string `json:"execution_id"` // owning trend_pipeline execution
	PipelineID  int    `json:"pipeline_id"`  // trend_pipeline_executions row
	Stage       int    `json:"stage"`        // 1-4
	StageName   string `json:"stage_name"`   // clustering, temporal, llm, gap_analysis
	Status      string `json:"status"`       // in_progress, completed, failed, skipped
	Timestamp   string `json:"timestamp"`    // RFC3339Nano
}

// ProgressTickPayload is the payload for progress.tick transient events,
// fine-grained progress inside a running step.
type ProgressTickPayload struct {
	Type        string  `json:"type"`         // always EventTypeProgressTick
	ExecutionID string  `json:"execution_id"` //
	Step        string  `json:"step,omitempty"`
	Done        int     `json:"done"`
	Total       int     `json:"total"`
	Progress    float64 `json:"progress"`  // 0-100
	Timestamp   string  `json:"timestamp"` // RFC3339Nano
}
