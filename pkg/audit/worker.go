package audit

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trendscope/trendscope/ent/auditlog"
	"github.com/trendscope/trendscope/ent/siteprofile"
	"github.com/trendscope/trendscope/ent/workflowexecution"
	"github.com/trendscope/trendscope/pkg/collab"
	"github.com/trendscope/trendscope/pkg/embeddings"
	"github.com/trendscope/trendscope/pkg/models"
	"github.com/trendscope/trendscope/pkg/services"
	"github.com/trendscope/trendscope/pkg/trends"
)

const defaultWorkflowTimeout = 10 * time.Minute

// stepWorkflowTypes maps step names to child workflow types.
var stepWorkflowTypes = map[string]workflowexecution.WorkflowType{
	models.StepEditorialAnalysis:  workflowexecution.WorkflowTypeEditorialAnalysis,
	models.StepCompetitorSearch:   workflowexecution.WorkflowTypeCompetitorSearch,
	models.StepClientScraping:     workflowexecution.WorkflowTypeClientScraping,
	models.StepCompetitorScraping: workflowexecution.WorkflowTypeScraping,
	models.StepTrendPipeline:      workflowexecution.WorkflowTypeTrendPipeline,
}

// spawnWorker launches the background worker for a freshly created
// orchestrator execution. The worker runs detached from the request context.
func (o *Orchestrator) spawnWorker(executionID, domain string, status models.DataStatus) {
	o.workers.Add(1)
	go func() {
		defer o.workers.Done()
		ctx := context.Background()
		if err := o.runWorker(ctx, executionID, domain, status); err != nil {
			o.logger.Error("audit worker failed",
				"execution_id", executionID,
				"domain", domain,
				"error", err)
		}
	}()
}

// runWorker chains the missing child workflows in dependency order:
// editorial_analysis → competitor_search → (client ∥ competitor scraping) →
// trend_pipeline. The cancellation flag is polled between children.
func (o *Orchestrator) runWorker(ctx context.Context, executionID, domain string, status models.DataStatus) error {
	running := workflowexecution.StatusRunning
	if _, err := o.executions.UpdateExecution(ctx, executionID, services.UpdateExecutionInput{Status: &running}); err != nil {
		return fmt.Errorf("failed to mark orchestrator running: %w", err)
	}
	o.auditLog.Append(ctx, services.AppendInput{
		ExecutionID: executionID,
		Action:      "audit_started",
		Status:      auditlog.StatusInfo,
		Details:     map[string]any{"domain": domain, "data_status": dataStatusMap(status)},
	})

	// failures is appended to from the parallel scraping goroutines as well as
	// the sequential steps, so every append goes through failMu.
	var (
		failMu   sync.Mutex
		failures []string
	)
	output := map[string]any{"domain": domain}

	fail := func(step string, err error) {
		failMu.Lock()
		failures = append(failures, fmt.Sprintf("%s: %v", step, err))
		failMu.Unlock()
		o.auditLog.Append(ctx, services.AppendInput{
			ExecutionID: executionID,
			Action:      "audit_step_failed",
			StepName:    step,
			Status:      auditlog.StatusError,
			Message:     err.Error(),
		})
		o.publishProgress(ctx, executionID, domain, step, "failed", 0)
	}

	failed := func() bool {
		failMu.Lock()
		defer failMu.Unlock()
		return len(failures) > 0
	}

	cancelled := func() bool {
		if o.executions.IsCancelRequested(ctx, executionID) {
			failMu.Lock()
			failures = append(failures, "cancelled")
			failMu.Unlock()
			return true
		}
		return false
	}

	// Editorial analysis gates everything downstream.
	if !status.HasProfile && !failed() {
		if err := o.runChild(ctx, executionID, domain, models.StepEditorialAnalysis, o.childEditorialAnalysis); err != nil {
			fail(models.StepEditorialAnalysis, err)
		}
	}

	if !failed() && !cancelled() && !status.HasCompetitors {
		if err := o.runChild(ctx, executionID, domain, models.StepCompetitorSearch, o.childCompetitorSearch); err != nil {
			fail(models.StepCompetitorSearch, err)
		}
	}

	// Client and competitor scraping are independent of each other.
	if !failed() && !cancelled() {
		group, gctx := errgroup.WithContext(ctx)
		if !status.HasClientArticles {
			group.Go(func() error {
				if err := o.runChild(gctx, executionID, domain, models.StepClientScraping, o.childClientScraping); err != nil {
					fail(models.StepClientScraping, err)
				}
				return nil
			})
		}
		if !status.HasCompetitorArticles {
			group.Go(func() error {
				if err := o.runChild(gctx, executionID, domain, models.StepCompetitorScraping, o.childCompetitorScraping); err != nil {
					fail(models.StepCompetitorScraping, err)
				}
				return nil
			})
		}
		_ = group.Wait()
	}

	if !failed() && !cancelled() && !status.HasTrendPipeline {
		childID, err := o.runChildWithID(ctx, executionID, domain, models.StepTrendPipeline, o.childTrendPipeline)
		if err != nil {
			fail(models.StepTrendPipeline, err)
		} else {
			output["trend_execution_id"] = childID
		}
	}

	if failed() {
		failedStatus := workflowexecution.StatusFailed
		errMsg := strings.Join(failures, "; ")
		_, err := o.executions.UpdateExecution(ctx, executionID, services.UpdateExecutionInput{
			Status:     &failedStatus,
			Error:      &errMsg,
			WasSuccess: boolPtr(false),
			Output:     output,
		})
		o.publishProgress(ctx, executionID, domain, "", "failed", 100)
		return err
	}

	completed := workflowexecution.StatusCompleted
	_, err := o.executions.UpdateExecution(ctx, executionID, services.UpdateExecutionInput{
		Status:     &completed,
		WasSuccess: boolPtr(true),
		Output:     output,
	})
	o.auditLog.Append(ctx, services.AppendInput{
		ExecutionID: executionID,
		Action:      "audit_completed",
		Status:      auditlog.StatusSuccess,
	})
	o.publishProgress(ctx, executionID, domain, "", "completed", 100)
	return err
}

type childFunc func(ctx context.Context, domain, childExecutionID string) (map[string]any, error)

// runChild wraps one child workflow: create the execution, run the step
// under its timeout, record the outcome on the child row.
func (o *Orchestrator) runChild(ctx context.Context, parentID, domain, step string, fn childFunc) error {
	_, err := o.runChildWithID(ctx, parentID, domain, step, fn)
	return err
}

func (o *Orchestrator) runChildWithID(ctx context.Context, parentID, domain, step string, fn childFunc) (string, error) {
	wfType := stepWorkflowTypes[step]
	child, err := o.executions.CreateExecution(ctx, services.CreateExecutionInput{
		Type:     wfType,
		Domain:   domain,
		Status:   workflowexecution.StatusRunning,
		ParentID: parentID,
		Input:    map[string]any{"domain": domain, "step": step},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create child execution: %w", err)
	}
	o.publishProgress(ctx, parentID, domain, step, "running", 0)

	timeout := o.cfg.WorkflowTimeouts[string(wfType)]
	if timeout <= 0 {
		timeout = defaultWorkflowTimeout
	}
	childCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	output, runErr := fn(childCtx, domain, child.ID)
	if runErr != nil {
		failed := workflowexecution.StatusFailed
		errMsg := runErr.Error()
		_, uerr := o.executions.UpdateExecution(ctx, child.ID, services.UpdateExecutionInput{
			Status:     &failed,
			Error:      &errMsg,
			WasSuccess: boolPtr(false),
		})
		if uerr != nil {
			o.logger.Error("failed to record child failure", "child_id", child.ID, "error", uerr)
		}
		return child.ID, runErr
	}

	completed := workflowexecution.StatusCompleted
	_, err = o.executions.UpdateExecution(ctx, child.ID, services.UpdateExecutionInput{
		Status:     &completed,
		WasSuccess: boolPtr(true),
		Output:     output,
	})
	if err != nil {
		return child.ID, err
	}
	o.publishProgress(ctx, parentID, domain, step, "completed", 100)
	return child.ID, nil
}

func (o *Orchestrator) publishProgress(ctx context.Context, executionID, domain, step, status string, progress float64) {
	if o.publisher == nil {
		return
	}
	o.publisher.PublishAuditProgress(ctx, executionID, domain, step, status, progress)
}

// ── Child workflow bodies ───────────────────────────────────────────────────

func (o *Orchestrator) childEditorialAnalysis(ctx context.Context, domain, _ string) (map[string]any, error) {
	analysis, err := o.analysis.Analyze(ctx, domain, 0)
	if err != nil {
		return nil, err
	}
	profile, err := o.profiles.SaveProfile(ctx, services.ProfileInput{
		Domain:           domain,
		LanguageLevel:    languageLevel(analysis.LanguageLevel),
		EditorialTone:    analysis.EditorialTone,
		TargetAudience:   analysis.TargetAudience,
		ActivityDomains:  analysis.ActivityDomains,
		ContentStructure: analysis.ContentStructure,
		Keywords:         analysis.Keywords,
		StyleFeatures:    analysis.StyleFeatures,
		PagesAnalyzed:    analysis.PagesAnalyzed,
		LLMModelsUsed:    analysis.LLMModelsUsed,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"profile_id": profile.ID, "pages_analyzed": profile.PagesAnalyzed}, nil
}

func (o *Orchestrator) childCompetitorSearch(ctx context.Context, domain, _ string) (map[string]any, error) {
	result, err := o.search.Search(ctx, domain, o.cfg.MaxCompetitors)
	if err != nil {
		return nil, err
	}
	discovered := make([]services.DiscoveredCompetitor, 0, len(result.Competitors))
	for _, c := range result.Competitors {
		discovered = append(discovered, services.DiscoveredCompetitor{
			Domain:         c.Domain,
			Source:         c.Source,
			RelevanceScore: c.RelevanceScore,
		})
	}
	inserted, err := o.competitors.SaveDiscovered(ctx, domain, discovered)
	if err != nil {
		return nil, err
	}
	validated, err := o.competitors.AutoValidateTop(ctx, domain, o.cfg.MaxCompetitors)
	if err != nil {
		return nil, err
	}
	return map[string]any{"discovered": len(discovered), "inserted": inserted, "validated": validated}, nil
}

func (o *Orchestrator) childClientScraping(ctx context.Context, domain, _ string) (map[string]any, error) {
	result, err := o.scraper.Scrape(ctx, []string{domain}, 0)
	if err != nil {
		return nil, err
	}
	stored, err := o.articles.SaveClientArticles(ctx, toArticleInputs(result.Articles))
	if err != nil {
		return nil, err
	}
	return map[string]any{"scraped": result.Scraped, "stored": stored}, nil
}

func (o *Orchestrator) childCompetitorScraping(ctx context.Context, domain, _ string) (map[string]any, error) {
	domains, err := o.competitors.ValidatedDomains(ctx, domain)
	if err != nil {
		return nil, err
	}
	if len(domains) == 0 {
		return map[string]any{"scraped": 0, "stored": 0}, nil
	}
	result, err := o.scraper.Scrape(ctx, domains, 0)
	if err != nil {
		return nil, err
	}
	stored, err := o.articles.SaveCompetitorArticles(ctx, toArticleInputs(result.Articles))
	if err != nil {
		return nil, err
	}
	return map[string]any{"scraped": result.Scraped, "stored": stored, "domains": len(domains)}, nil
}

func (o *Orchestrator) childTrendPipeline(ctx context.Context, domain, childID string) (map[string]any, error) {
	competitorDomains, err := o.competitors.ValidatedDomains(ctx, domain)
	if err != nil {
		return nil, err
	}
	result, err := o.pipeline.Execute(ctx, trends.ExecuteInput{
		ExecutionID:    childID,
		ClientDomain:   domain,
		Domains:        append([]string{domain}, competitorDomains...),
		TimeWindowDays: 0,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"pipeline_id":     result.PipelineID,
		"total_articles":  result.TotalArticles,
		"total_clusters":  result.TotalClusters,
		"total_outliers":  result.TotalOutliers,
		"recommendations": result.Recommendations,
		"gaps":            result.Gaps,
	}, nil
}

func toArticleInputs(articles []collab.ScrapedArticle) []services.ArticleInput {
	inputs := make([]services.ArticleInput, 0, len(articles))
	for _, a := range articles {
		input := services.ArticleInput{
			Domain:      a.Domain,
			URL:         a.URL,
			Title:       a.Title,
			ContentText: a.ContentText,
			Author:      a.Author,
			Keywords:    a.Keywords,
		}
		if a.PublishedDate != "" {
			if t, ok := embeddings.ParseISODate(a.PublishedDate); ok {
				input.PublishedDate = &t
			}
		}
		inputs = append(inputs, input)
	}
	return inputs
}

// languageLevel maps the analysis service's free-form level onto the
// profile enum, defaulting to intermediate.
func languageLevel(s string) siteprofile.LanguageLevel {
	switch siteprofile.LanguageLevel(s) {
	case siteprofile.LanguageLevelSimple,
		siteprofile.LanguageLevelIntermediate,
		siteprofile.LanguageLevelAdvanced,
		siteprofile.LanguageLevelExpert:
		return siteprofile.LanguageLevel(s)
	}
	return siteprofile.LanguageLevelIntermediate
}
