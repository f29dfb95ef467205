package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/workflowexecution"
)

// ExecutionService manages WorkflowExecution lifecycle: creation, status
// transitions with terminal-state protection, and in-flight lookups for
// audit dedup.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService.
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// CreateExecutionInput carries the fields for a new workflow execution.
type CreateExecutionInput struct {
	Type     workflowexecution.WorkflowType
	Domain   string
	Input    map[string]any
	Status   workflowexecution.Status
	ParentID string
}

// CreateExecution creates a new workflow execution row.
//
// For audit_orchestrator executions in a non-terminal status, the partial
// unique index on (workflow_type, domain) makes concurrent creates race on a
// constraint violation; callers translate ErrAlreadyExists into "join the
// surviving execution".
func (s *ExecutionService) CreateExecution(ctx context.Context, in CreateExecutionInput) (*ent.WorkflowExecution, error) {
	if in.Type == "" {
		return nil, NewValidationError("workflow_type", "required")
	}
	status := in.Status
	if status == "" {
		status = workflowexecution.StatusPending
	}

	builder := s.client.WorkflowExecution.Create().
		SetID(uuid.New().String()).
		SetWorkflowType(in.Type).
		SetStatus(status)

	if in.Domain != "" {
		builder.SetDomain(in.Domain)
	}
	if in.Input != nil {
		builder.SetInputData(SanitizeJSONMap(in.Input))
	}
	if in.ParentID != "" {
		builder.SetParentExecutionID(in.ParentID)
	}
	if status == workflowexecution.StatusRunning {
		builder.SetStartTime(time.Now())
	}

	exec, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, classifyDBError("create execution", err)
	}
	return exec, nil
}

// GetExecution retrieves an execution by id.
func (s *ExecutionService) GetExecution(ctx context.Context, executionID string) (*ent.WorkflowExecution, error) {
	exec, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.IDEQ(executionID),
			workflowexecution.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, classifyDBError("get execution", err)
	}
	return exec, nil
}

// FindLatestFilter narrows FindLatest queries.
type FindLatestFilter struct {
	Domain     string
	Statuses   []workflowexecution.Status
	WasSuccess *bool
	ParentID   string
}

// FindLatest returns the most recently created execution of the given type
// matching the filter, or ErrNotFound.
func (s *ExecutionService) FindLatest(ctx context.Context, wfType workflowexecution.WorkflowType, filter FindLatestFilter) (*ent.WorkflowExecution, error) {
	query := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.WorkflowTypeEQ(wfType),
			workflowexecution.DeletedAtIsNil(),
		)

	if filter.Domain != "" {
		query = query.Where(workflowexecution.DomainEQ(filter.Domain))
	}
	if len(filter.Statuses) > 0 {
		query = query.Where(workflowexecution.StatusIn(filter.Statuses...))
	}
	if filter.WasSuccess != nil {
		query = query.Where(workflowexecution.WasSuccessEQ(*filter.WasSuccess))
	}
	if filter.ParentID != "" {
		query = query.Where(workflowexecution.ParentExecutionIDEQ(filter.ParentID))
	}

	exec, err := query.
		Order(ent.Desc(workflowexecution.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, classifyDBError("find latest execution", err)
	}
	return exec, nil
}

// FindInflightOrchestrator returns the pending/running audit_orchestrator
// execution for a domain, or ErrNotFound.
func (s *ExecutionService) FindInflightOrchestrator(ctx context.Context, domain string) (*ent.WorkflowExecution, error) {
	return s.FindLatest(ctx, workflowexecution.WorkflowTypeAuditOrchestrator, FindLatestFilter{
		Domain: domain,
		Statuses: []workflowexecution.Status{
			workflowexecution.StatusPending,
			workflowexecution.StatusRunning,
		},
	})
}

// ListChildren returns all child executions of an orchestrator, oldest first.
func (s *ExecutionService) ListChildren(ctx context.Context, parentID string) ([]*ent.WorkflowExecution, error) {
	children, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.ParentExecutionIDEQ(parentID),
			workflowexecution.DeletedAtIsNil(),
		).
		Order(ent.Asc(workflowexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, classifyDBError("list child executions", err)
	}
	return children, nil
}

// UpdateExecutionInput carries the mutable fields of an execution update.
// Nil fields are left untouched.
type UpdateExecutionInput struct {
	Status     *workflowexecution.Status
	Output     map[string]any
	Error      *string
	WasSuccess *bool
}

// terminalStatuses lists the absorbing execution states.
func isTerminal(status workflowexecution.Status) bool {
	return status == workflowexecution.StatusCompleted || status == workflowexecution.StatusFailed
}

// UpdateExecution applies a lifecycle update in a single transaction.
//
// Rules:
//   - start_time is stamped on the first transition to running
//   - end_time and duration_seconds are stamped on transition to a terminal
//     state
//   - a terminal status is never reverted; repeating the same terminal
//     status is a no-op (idempotent), a conflicting one returns
//     ErrTerminalState
//   - output passes the JSON-safety normalization
func (s *ExecutionService) UpdateExecution(ctx context.Context, executionID string, in UpdateExecutionInput) (*ent.WorkflowExecution, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, classifyDBError("begin update execution", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.WorkflowExecution.Query().
		Where(workflowexecution.IDEQ(executionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, classifyDBError("lock execution", err)
	}

	update := current.Update()
	now := time.Now()

	if in.Status != nil {
		next := *in.Status
		if isTerminal(current.Status) {
			if next == current.Status {
				// Idempotent terminal re-apply; still allow output/error enrichment below.
				next = current.Status
			} else {
				return nil, fmt.Errorf("%w: %s -> %s", ErrTerminalState, current.Status, next)
			}
		}

		update.SetStatus(next)

		if next == workflowexecution.StatusRunning && current.StartTime == nil {
			update.SetStartTime(now)
		}
		if isTerminal(next) && current.EndTime == nil {
			update.SetEndTime(now)
			start := current.CreatedAt
			if current.StartTime != nil {
				start = *current.StartTime
			}
			update.SetDurationSeconds(now.Sub(start).Seconds())
		}
	}

	if in.Output != nil {
		update.SetOutputData(SanitizeJSONMap(in.Output))
	}
	if in.Error != nil {
		update.SetErrorMessage(*in.Error)
	}
	if in.WasSuccess != nil {
		update.SetWasSuccess(*in.WasSuccess)
	}

	exec, err := update.Save(ctx)
	if err != nil {
		return nil, classifyDBError("update execution", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, classifyDBError("commit update execution", err)
	}
	return exec, nil
}

// RequestCancellation toggles output_data.cancel_requested on the execution.
// Workers poll this flag between suspension points.
func (s *ExecutionService) RequestCancellation(ctx context.Context, executionID string) error {
	exec, err := s.GetExecution(ctx, executionID)
	if err != nil {
		return err
	}
	if isTerminal(exec.Status) {
		return fmt.Errorf("%w: cannot cancel %s execution", ErrTerminalState, exec.Status)
	}

	output := exec.OutputData
	if output == nil {
		output = map[string]any{}
	}
	output["cancel_requested"] = true

	_, err = s.UpdateExecution(ctx, executionID, UpdateExecutionInput{Output: output})
	return err
}

// IsCancelRequested reports whether cancellation has been requested for the
// execution. Lookup failures are treated as "not cancelled" so a flaky read
// never aborts a healthy workflow.
func (s *ExecutionService) IsCancelRequested(ctx context.Context, executionID string) bool {
	exec, err := s.GetExecution(ctx, executionID)
	if err != nil {
		return false
	}
	if exec.OutputData == nil {
		return false
	}
	cancelled, _ := exec.OutputData["cancel_requested"].(bool)
	return cancelled
}

// SoftDeleteTerminalBefore tombstones terminal executions created before
// the cutoff. Used by the retention sweep; idempotent across replicas.
func (s *ExecutionService) SoftDeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.WorkflowExecution.Update().
		Where(
			workflowexecution.StatusIn(
				workflowexecution.StatusCompleted,
				workflowexecution.StatusFailed,
			),
			workflowexecution.CreatedAtLT(cutoff),
			workflowexecution.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, classifyDBError("soft delete old executions", err)
	}
	return count, nil
}

// FindStaleInflight returns pending/running executions whose last update is
// older than the threshold — candidates for orphan recovery after a crash.
func (s *ExecutionService) FindStaleInflight(ctx context.Context, threshold time.Time) ([]*ent.WorkflowExecution, error) {
	stale, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.StatusIn(
				workflowexecution.StatusPending,
				workflowexecution.StatusRunning,
			),
			workflowexecution.UpdatedAtLT(threshold),
			workflowexecution.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, classifyDBError("find stale executions", err)
	}
	return stale, nil
}

// SoftDelete tombstones an execution for retention cleanup.
func (s *ExecutionService) SoftDelete(ctx context.Context, executionID string) error {
	err := s.client.WorkflowExecution.UpdateOneID(executionID).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return classifyDBError("soft delete execution", err)
	}
	return nil
}
