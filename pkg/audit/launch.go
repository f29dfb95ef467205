package audit

import (
	"context"
	"fmt"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/workflowexecution"
	"github.com/trendscope/trendscope/pkg/models"
	"github.com/trendscope/trendscope/pkg/services"
	"github.com/trendscope/trendscope/pkg/trends"
)

// LaunchWorkflow starts a single workflow step outside an audit, returning
// the created execution immediately. The step runs in a tracked background
// goroutine under its configured timeout.
func (o *Orchestrator) LaunchWorkflow(ctx context.Context, step, domain string) (*ent.WorkflowExecution, error) {
	if err := ValidateDomain(domain); err != nil {
		return nil, err
	}
	fn := o.stepFunc(step)
	if fn == nil {
		return nil, services.NewValidationError("step", fmt.Sprintf("unknown workflow step %q", step))
	}
	return o.launch(stepWorkflowTypes[step], domain, map[string]any{"domain": domain}, fn)
}

// LaunchScrape starts an article scraping run for explicit domains. When the
// target list is exactly the client domain, articles land in the client
// table; otherwise they are stored as competitor articles.
func (o *Orchestrator) LaunchScrape(ctx context.Context, clientDomain string, domains []string, maxPerDomain int) (*ent.WorkflowExecution, error) {
	if err := ValidateDomain(clientDomain); err != nil {
		return nil, err
	}
	if len(domains) == 0 {
		domains = []string{clientDomain}
	}
	clientSide := len(domains) == 1 && domains[0] == clientDomain

	wfType := workflowexecution.WorkflowTypeScraping
	if clientSide {
		wfType = workflowexecution.WorkflowTypeClientScraping
	}
	input := map[string]any{
		"domain":                  clientDomain,
		"domains":                 domains,
		"max_articles_per_domain": maxPerDomain,
	}
	return o.launch(wfType, clientDomain, input, func(ctx context.Context, _, _ string) (map[string]any, error) {
		result, err := o.scraper.Scrape(ctx, domains, maxPerDomain)
		if err != nil {
			return nil, err
		}
		var stored int
		if clientSide {
			stored, err = o.articles.SaveClientArticles(ctx, toArticleInputs(result.Articles))
		} else {
			stored, err = o.articles.SaveCompetitorArticles(ctx, toArticleInputs(result.Articles))
		}
		if err != nil {
			return nil, err
		}
		return map[string]any{"scraped": result.Scraped, "failed": result.Failed, "stored": stored}, nil
	})
}

// LaunchTrendPipeline starts a standalone trend pipeline run.
func (o *Orchestrator) LaunchTrendPipeline(ctx context.Context, req models.TrendsAnalyzeRequest) (*ent.WorkflowExecution, error) {
	domains := req.Domains
	if req.ClientDomain != "" {
		if err := ValidateDomain(req.ClientDomain); err != nil {
			return nil, err
		}
		if len(domains) == 0 {
			validated, err := o.competitors.ValidatedDomains(ctx, req.ClientDomain)
			if err != nil {
				return nil, err
			}
			domains = append([]string{req.ClientDomain}, validated...)
		}
	}
	if len(domains) == 0 {
		return nil, services.NewValidationError("domains", "client_domain or domains required")
	}

	input := map[string]any{
		"client_domain":    req.ClientDomain,
		"domains":          domains,
		"time_window_days": req.TimeWindowDays,
		"min_topic_size":   req.MinTopicSize,
	}
	return o.launch(workflowexecution.WorkflowTypeTrendPipeline, req.ClientDomain, input, func(ctx context.Context, _, executionID string) (map[string]any, error) {
		result, err := o.pipeline.Execute(ctx, trends.ExecuteInput{
			ExecutionID:    executionID,
			ClientDomain:   req.ClientDomain,
			Domains:        domains,
			TimeWindowDays: req.TimeWindowDays,
			MinTopicSize:   req.MinTopicSize,
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
	})
}

// stepFunc maps a workflow step name to its body.
func (o *Orchestrator) stepFunc(step string) childFunc {
	switch step {
	case models.StepEditorialAnalysis:
		return o.childEditorialAnalysis
	case models.StepCompetitorSearch:
		return o.childCompetitorSearch
	case models.StepClientScraping:
		return o.childClientScraping
	case models.StepCompetitorScraping:
		return o.childCompetitorScraping
	case models.StepTrendPipeline:
		return o.childTrendPipeline
	}
	return nil
}

// launch creates a running execution and runs fn in a tracked goroutine.
func (o *Orchestrator) launch(wfType workflowexecution.WorkflowType, domain string, input map[string]any, fn childFunc) (*ent.WorkflowExecution, error) {
	exec, err := o.executions.CreateExecution(context.Background(), services.CreateExecutionInput{
		Type:   wfType,
		Domain: domain,
		Status: workflowexecution.StatusRunning,
		Input:  input,
	})
	if err != nil {
		return nil, err
	}

	timeout := o.cfg.WorkflowTimeouts[string(wfType)]
	if timeout <= 0 {
		timeout = defaultWorkflowTimeout
	}

	o.workers.Add(1)
	go func() {
		defer o.workers.Done()
		runCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		output, runErr := fn(runCtx, domain, exec.ID)
		if runErr != nil {
			failed := workflowexecution.StatusFailed
			errMsg := runErr.Error()
			if _, err := o.executions.UpdateExecution(context.Background(), exec.ID, services.UpdateExecutionInput{
				Status:     &failed,
				Error:      &errMsg,
				WasSuccess: boolPtr(false),
			}); err != nil {
				o.logger.Error("failed to record workflow failure", "execution_id", exec.ID, "error", err)
			}
			o.logger.Error("workflow failed",
				"execution_id", exec.ID, "workflow_type", wfType, "domain", domain, "error", runErr)
			return
		}

		completed := workflowexecution.StatusCompleted
		if _, err := o.executions.UpdateExecution(context.Background(), exec.ID, services.UpdateExecutionInput{
			Status:     &completed,
			WasSuccess: boolPtr(true),
			Output:     output,
		}); err != nil {
			o.logger.Error("failed to record workflow completion", "execution_id", exec.ID, "error", err)
		}
	}()

	return exec, nil
}
