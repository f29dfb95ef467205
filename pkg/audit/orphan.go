package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/auditlog"
	"github.com/trendscope/trendscope/ent/workflowexecution"
	"github.com/trendscope/trendscope/pkg/services"
)

// StartOrphanScan launches the periodic orphan recovery loop. In-flight
// executions whose updated_at is older than the configured threshold are
// assumed to belong to a crashed process and are failed so the launch gate
// frees up for the domain. All replicas run the scan; recovery is idempotent.
func (o *Orchestrator) StartOrphanScan(ctx context.Context) {
	if o.orphanCancel != nil {
		return
	}
	ctx, o.orphanCancel = context.WithCancel(ctx)
	o.orphanDone = make(chan struct{})

	go func() {
		defer close(o.orphanDone)

		ticker := time.NewTicker(o.cfg.OrphanScanInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := o.RecoverOrphans(ctx); err != nil {
					o.logger.Error("orphan scan failed", "error", err)
				}
			}
		}
	}()

	o.logger.Info("orphan scan started",
		"threshold", o.cfg.OrphanThreshold,
		"interval", o.cfg.OrphanScanInterval)
}

// StopOrphanScan stops the recovery loop and waits for it to exit.
func (o *Orchestrator) StopOrphanScan() {
	if o.orphanCancel == nil {
		return
	}
	o.orphanCancel()
	<-o.orphanDone
}

// RecoverOrphans fails every stale in-flight execution and returns the count
// recovered. An execution is stale when nothing has touched it for longer
// than the orphan threshold; live workers update their rows on every step
// transition.
func (o *Orchestrator) RecoverOrphans(ctx context.Context) (int, error) {
	threshold := time.Now().Add(-o.cfg.OrphanThreshold)

	orphans, err := o.executions.FindStaleInflight(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale executions: %w", err)
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	o.logger.Warn("detected orphaned executions", "count", len(orphans))

	recovered := 0
	for _, exec := range orphans {
		if err := o.recoverOrphan(ctx, exec); err != nil {
			o.logger.Error("failed to recover orphaned execution",
				"execution_id", exec.ID,
				"workflow_type", exec.WorkflowType,
				"error", err)
			continue
		}
		recovered++
	}
	return recovered, nil
}

func (o *Orchestrator) recoverOrphan(ctx context.Context, exec *ent.WorkflowExecution) error {
	failed := workflowexecution.StatusFailed
	errMsg := fmt.Sprintf("Orphaned: no progress since %s", exec.UpdatedAt.Format(time.RFC3339))

	_, err := o.executions.UpdateExecution(ctx, exec.ID, services.UpdateExecutionInput{
		Status:     &failed,
		Error:      &errMsg,
		WasSuccess: boolPtr(false),
	})
	if err != nil {
		return err
	}

	o.auditLog.Append(ctx, services.AppendInput{
		ExecutionID: exec.ID,
		Action:      "orphan_recovered",
		Status:      auditlog.StatusError,
		Message:     errMsg,
		Details: map[string]any{
			"workflow_type": string(exec.WorkflowType),
			"last_update":   exec.UpdatedAt.Format(time.RFC3339),
		},
	})

	if exec.WorkflowType == workflowexecution.WorkflowTypeAuditOrchestrator {
		o.publishProgress(ctx, exec.ID, exec.Domain, "orchestrator", "failed", 0)
	}

	o.logger.Info("recovered orphaned execution",
		"execution_id", exec.ID,
		"workflow_type", exec.WorkflowType)
	return nil
}
