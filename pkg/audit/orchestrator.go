package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/workflowexecution"
	"github.com/trendscope/trendscope/pkg/collab"
	"github.com/trendscope/trendscope/pkg/config"
	"github.com/trendscope/trendscope/pkg/models"
	"github.com/trendscope/trendscope/pkg/services"
	"github.com/trendscope/trendscope/pkg/trends"
)

var hostnameRe = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`)

// ValidateDomain checks the hostname format of an audit target.
func ValidateDomain(domain string) error {
	if !hostnameRe.MatchString(domain) {
		return services.NewValidationError("domain", fmt.Sprintf("invalid domain format: %q", domain))
	}
	return nil
}

// ProgressPublisher receives audit progress events for realtime delivery.
type ProgressPublisher interface {
	PublishAuditProgress(ctx context.Context, executionID, domain, step, status string, progress float64)
}

// Orchestrator is the top-level audit workflow: it detects missing
// prerequisites, deduplicates concurrent audits per domain, spawns the
// background worker chaining the sub-workflows, and assembles the final
// audit response from persisted data.
type Orchestrator struct {
	cfg         config.AuditConfig
	executions  *services.ExecutionService
	auditLog    *services.AuditLogService
	profiles    *services.ProfileService
	competitors *services.CompetitorService
	articles    *services.ArticleService
	trends      *services.TrendService
	pipeline    *trends.Pipeline
	analysis    *collab.AnalysisClient
	search      *collab.CompetitorSearchClient
	scraper     *collab.ScraperClient
	publisher   ProgressPublisher
	logger      *slog.Logger

	workers sync.WaitGroup

	orphanCancel context.CancelFunc
	orphanDone   chan struct{}
}

// Deps bundles the orchestrator's collaborators.
type Deps struct {
	Executions  *services.ExecutionService
	AuditLog    *services.AuditLogService
	Profiles    *services.ProfileService
	Competitors *services.CompetitorService
	Articles    *services.ArticleService
	Trends      *services.TrendService
	Pipeline    *trends.Pipeline
	Analysis    *collab.AnalysisClient
	Search      *collab.CompetitorSearchClient
	Scraper     *collab.ScraperClient
	Publisher   ProgressPublisher
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(cfg config.AuditConfig, deps Deps, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:         cfg,
		executions:  deps.Executions,
		auditLog:    deps.AuditLog,
		profiles:    deps.Profiles,
		competitors: deps.Competitors,
		articles:    deps.Articles,
		trends:      deps.Trends,
		pipeline:    deps.Pipeline,
		analysis:    deps.Analysis,
		search:      deps.Search,
		scraper:     deps.Scraper,
		publisher:   deps.Publisher,
		logger:      logger.With("component", "audit_orchestrator"),
	}
}

// AuditResult is the union returned by RequestAudit: exactly one of Full or
// Pending is set.
type AuditResult struct {
	Full    *models.SiteAuditResponse
	Pending *models.PendingAuditResponse
}

// RequestAudit is the audit entry point.
//
// Decision order: validate, gather prerequisite state, reuse a terminal
// orchestrator when essentials are present, short-circuit on essentials even
// without one, otherwise join the in-flight orchestrator or create one
// through the launch gate and spawn the worker.
func (o *Orchestrator) RequestAudit(ctx context.Context, domain string, flags models.AuditViewFlags) (*AuditResult, error) {
	if err := ValidateDomain(domain); err != nil {
		return nil, err
	}
	logger := o.logger.With("domain", domain)

	status, err := o.checkPrerequisites(ctx, domain)
	if err != nil {
		return nil, err
	}

	if status.Essential() {
		// Reuse check and same-state short-circuit collapse to the same
		// response: essentials present means the view is assemblable.
		response, err := o.BuildResponse(ctx, domain, status, flags)
		if err != nil {
			return nil, err
		}
		logger.Info("audit served from persisted data", "data_status", status)
		return &AuditResult{Full: response}, nil
	}

	// Launch gate. The partial unique index makes create race-free:
	// concurrent creators get a constraint violation and join the winner.
	if inflight, err := o.executions.FindInflightOrchestrator(ctx, domain); err == nil {
		return &AuditResult{Pending: o.pendingResponse(ctx, inflight, domain, status)}, nil
	} else if !errors.Is(err, services.ErrNotFound) {
		return nil, err
	}

	exec, err := o.executions.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: domain,
		Status: workflowexecution.StatusPending,
		Input: map[string]any{
			"domain":      domain,
			"data_status": dataStatusMap(status),
		},
	})
	if errors.Is(err, services.ErrAlreadyExists) {
		// Lost the race; join the surviving execution.
		inflight, ferr := o.executions.FindInflightOrchestrator(ctx, domain)
		if ferr != nil {
			return nil, fmt.Errorf("lost launch race but found no survivor: %w", ferr)
		}
		return &AuditResult{Pending: o.pendingResponse(ctx, inflight, domain, status)}, nil
	}
	if err != nil {
		return nil, err
	}

	logger.Info("audit launched", "execution_id", exec.ID)
	o.spawnWorker(exec.ID, domain, status)
	return &AuditResult{Pending: o.pendingResponse(ctx, exec, domain, status)}, nil
}

// checkPrerequisites gathers the data_status bitmap. The profile check is
// sequential (it gates the rest); the three independent checks run in
// parallel with failures isolated as "missing".
func (o *Orchestrator) checkPrerequisites(ctx context.Context, domain string) (models.DataStatus, error) {
	var status models.DataStatus

	if _, err := o.profiles.GetLatestProfile(ctx, domain); err == nil {
		status.HasProfile = true
	} else if !errors.Is(err, services.ErrNotFound) {
		return status, err
	}

	var (
		mu                sync.Mutex
		validatedDomains  []string
	)
	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		_, err := o.executions.FindLatest(gctx, workflowexecution.WorkflowTypeCompetitorSearch, services.FindLatestFilter{
			Domain:     domain,
			Statuses:   []workflowexecution.Status{workflowexecution.StatusCompleted},
			WasSuccess: boolPtr(true),
		})
		if err != nil {
			return nil // missing or failed check: treated as missing
		}
		domains, derr := o.competitors.ValidatedDomains(gctx, domain)
		if derr != nil || len(domains) == 0 {
			return nil
		}
		mu.Lock()
		status.HasCompetitors = true
		validatedDomains = domains
		mu.Unlock()
		return nil
	})

	group.Go(func() error {
		pipeline, err := o.trends.GetLatestPipeline(gctx, domain)
		if err != nil {
			return nil
		}
		if stagesThroughLLMComplete(pipeline) {
			mu.Lock()
			status.HasTrendPipeline = true
			mu.Unlock()
		}
		return nil
	})

	group.Go(func() error {
		count, err := o.articles.CountClientArticles(gctx, domain)
		if err != nil {
			return nil
		}
		if count >= o.cfg.MinClientArticles {
			mu.Lock()
			status.HasClientArticles = true
			mu.Unlock()
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return status, err
	}

	if status.HasCompetitors {
		count, err := o.articles.CountCompetitorArticles(ctx, validatedDomains)
		if err == nil && count >= o.cfg.MinCompetitorArticles {
			status.HasCompetitorArticles = true
		}
	}
	return status, nil
}

// stagesThroughLLMComplete reports whether stages 1-3 of a pipeline run
// completed (stage 3 skipped also counts: the topic data is usable).
func stagesThroughLLMComplete(p *ent.TrendPipelineExecution) bool {
	if p.Stage1ClusteringStatus != "completed" || p.Stage2TemporalStatus != "completed" {
		return false
	}
	return p.Stage3LlmStatus == "completed" || p.Stage3LlmStatus == "skipped"
}

func (o *Orchestrator) pendingResponse(ctx context.Context, exec *ent.WorkflowExecution, domain string, status models.DataStatus) *models.PendingAuditResponse {
	steps := o.stepStates(ctx, exec)
	return &models.PendingAuditResponse{
		Status:        "pending",
		ExecutionID:   exec.ID,
		Domain:        domain,
		WorkflowSteps: steps,
		DataStatus:    status,
		Message:       "audit in progress; poll the status endpoint",
	}
}

func dataStatusMap(s models.DataStatus) map[string]any {
	return map[string]any{
		"has_profile":             s.HasProfile,
		"has_competitors":         s.HasCompetitors,
		"has_client_articles":     s.HasClientArticles,
		"has_competitor_articles": s.HasCompetitorArticles,
		"has_trend_pipeline":      s.HasTrendPipeline,
	}
}

func boolPtr(b bool) *bool { return &b }

// Cancel requests cooperative cancellation of a running audit.
func (o *Orchestrator) Cancel(ctx context.Context, executionID string) error {
	return o.executions.RequestCancellation(ctx, executionID)
}

// Drain waits for running audit workers, bounded by the shutdown timeout.
func (o *Orchestrator) Drain(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		o.workers.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		o.logger.Warn("shutdown timeout reached with audit workers still running")
	}
}
