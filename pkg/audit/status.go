package audit

import (
	"context"
	"fmt"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/workflowexecution"
	"github.com/trendscope/trendscope/pkg/models"
	"github.com/trendscope/trendscope/pkg/services"
)

// AlreadyCompletedID is the sentinel execution id reported when an audit was
// served entirely from persisted data, without launching a worker. Status
// polls with this id resolve to the most recent terminal orchestrator run.
const AlreadyCompletedID = "already-completed"

// GetAuditStatus reports step-level progress of an orchestrator execution.
func (o *Orchestrator) GetAuditStatus(ctx context.Context, executionID, domain string) (*models.AuditStatusResponse, error) {
	var (
		exec *ent.WorkflowExecution
		err  error
	)
	if executionID == AlreadyCompletedID {
		if domain == "" {
			return nil, services.NewValidationError("domain", "required to resolve a completed audit")
		}
		exec, err = o.executions.FindLatest(ctx, workflowexecution.WorkflowTypeAuditOrchestrator, services.FindLatestFilter{
			Domain:   domain,
			Statuses: []workflowexecution.Status{workflowexecution.StatusCompleted, workflowexecution.StatusFailed},
		})
	} else {
		exec, err = o.executions.GetExecution(ctx, executionID)
	}
	if err != nil {
		return nil, err
	}
	if exec.WorkflowType != workflowexecution.WorkflowTypeAuditOrchestrator {
		return nil, fmt.Errorf("%w: execution %s is not an audit", services.ErrNotFound, exec.ID)
	}

	steps := o.stepStates(ctx, exec)
	resp := &models.AuditStatusResponse{
		ExecutionID:     exec.ID,
		Domain:          exec.Domain,
		OverallStatus:   string(exec.Status),
		OverallProgress: overallProgress(exec, steps),
		Steps:           steps,
		StartTime:       exec.StartTime,
		EndTime:         exec.EndTime,
	}
	if exec.ErrorMessage != nil {
		resp.ErrorMessage = *exec.ErrorMessage
	}
	return resp, nil
}

// stepStates derives the canonical five-step view from the orchestrator's
// child executions. Steps whose prerequisite data was already present at
// launch show as skipped; steps with no child yet show as pending.
func (o *Orchestrator) stepStates(ctx context.Context, exec *ent.WorkflowExecution) []models.WorkflowStep {
	children, err := o.executions.ListChildren(ctx, exec.ID)
	if err != nil {
		o.logger.Warn("failed to list audit children", "execution_id", exec.ID, "error", err)
	}

	// Latest child per workflow type wins.
	latest := make(map[workflowexecution.WorkflowType]*ent.WorkflowExecution, len(children))
	for _, child := range children {
		latest[child.WorkflowType] = child
	}

	satisfied := launchDataStatus(exec)

	steps := make([]models.WorkflowStep, 0, 5)
	for _, name := range models.AuditSteps() {
		step := models.WorkflowStep{Name: name, Status: "pending"}
		if child, ok := latest[stepWorkflowTypes[name]]; ok {
			step.ExecutionID = child.ID
			step.Status = string(child.Status)
			switch child.Status {
			case workflowexecution.StatusCompleted:
				step.Progress = 100
			case workflowexecution.StatusRunning:
				step.Progress = 50
			}
			if child.ErrorMessage != nil {
				step.Error = *child.ErrorMessage
			}
		} else if stepSatisfiedAtLaunch(name, satisfied) {
			step.Status = "skipped"
			step.Progress = 100
		}
		steps = append(steps, step)
	}
	return steps
}

// launchDataStatus recovers the data_status snapshot stored on the
// orchestrator's input at launch.
func launchDataStatus(exec *ent.WorkflowExecution) models.DataStatus {
	var status models.DataStatus
	raw, ok := exec.InputData["data_status"].(map[string]any)
	if !ok {
		return status
	}
	flag := func(key string) bool {
		b, _ := raw[key].(bool)
		return b
	}
	status.HasProfile = flag("has_profile")
	status.HasCompetitors = flag("has_competitors")
	status.HasClientArticles = flag("has_client_articles")
	status.HasCompetitorArticles = flag("has_competitor_articles")
	status.HasTrendPipeline = flag("has_trend_pipeline")
	return status
}

func stepSatisfiedAtLaunch(step string, s models.DataStatus) bool {
	switch step {
	case models.StepEditorialAnalysis:
		return s.HasProfile
	case models.StepCompetitorSearch:
		return s.HasCompetitors
	case models.StepClientScraping:
		return s.HasClientArticles
	case models.StepCompetitorScraping:
		return s.HasCompetitorArticles
	case models.StepTrendPipeline:
		return s.HasTrendPipeline
	}
	return false
}

// overallProgress is the mean of step progress, forced to 100 on terminal
// orchestrator states.
func overallProgress(exec *ent.WorkflowExecution, steps []models.WorkflowStep) float64 {
	switch exec.Status {
	case workflowexecution.StatusCompleted, workflowexecution.StatusFailed:
		return 100
	}
	if len(steps) == 0 {
		return 0
	}
	var sum float64
	for _, s := range steps {
		sum += s.Progress
	}
	return sum / float64(len(steps))
}
