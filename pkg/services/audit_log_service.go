package services

import (
	"context"
	"log/slog"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/auditlog"
)

// AuditLogService appends workflow trace entries. Logging must never fail a
// workflow, so append errors are logged and swallowed.
type AuditLogService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewAuditLogService creates a new AuditLogService.
func NewAuditLogService(client *ent.Client, logger *slog.Logger) *AuditLogService {
	return &AuditLogService{
		client: client,
		logger: logger.With("component", "audit_log"),
	}
}

// AppendInput carries one trace entry.
type AppendInput struct {
	ExecutionID string
	Action      string
	AgentName   string
	StepName    string
	Status      auditlog.Status
	Message     string
	Details     map[string]any
	Traceback   string
}

// Append writes a trace entry. Failures are reported through the logger and
// do not propagate.
func (s *AuditLogService) Append(ctx context.Context, in AppendInput) {
	status := in.Status
	if status == "" {
		status = auditlog.StatusInfo
	}

	builder := s.client.AuditLog.Create().
		SetAction(in.Action).
		SetStatus(status)

	if in.ExecutionID != "" {
		builder.SetExecutionID(in.ExecutionID)
	}
	if in.AgentName != "" {
		builder.SetAgentName(in.AgentName)
	}
	if in.StepName != "" {
		builder.SetStepName(in.StepName)
	}
	if in.Message != "" {
		builder.SetMessage(in.Message)
	}
	if in.Details != nil {
		builder.SetDetails(SanitizeJSONMap(in.Details))
	}
	if in.Traceback != "" {
		builder.SetErrorTraceback(in.Traceback)
	}

	if err := builder.Exec(ctx); err != nil {
		s.logger.Warn("failed to append audit log entry",
			"execution_id", in.ExecutionID,
			"action", in.Action,
			"error", err)
	}
}

// GetLogs returns the trace of an execution in timestamp order.
func (s *AuditLogService) GetLogs(ctx context.Context, executionID string) ([]*ent.AuditLog, error) {
	logs, err := s.client.AuditLog.Query().
		Where(auditlog.ExecutionIDEQ(executionID)).
		Order(ent.Asc(auditlog.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, classifyDBError("get audit logs", err)
	}
	return logs, nil
}
