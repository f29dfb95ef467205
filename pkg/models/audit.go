package models

import "time"

// Canonical workflow step names, in dependency order.
const (
	StepEditorialAnalysis  = "Editorial Analysis"
	StepCompetitorSearch   = "Competitor Search"
	StepClientScraping     = "Client Site Scraping"
	StepCompetitorScraping = "Competitor Scraping"
	StepTrendPipeline      = "Trend Pipeline"
)

// AuditSteps lists the orchestrator's workflow steps in launch order.
func AuditSteps() []string {
	return []string{
		StepEditorialAnalysis,
		StepCompetitorSearch,
		StepClientScraping,
		StepCompetitorScraping,
		StepTrendPipeline,
	}
}

// DataStatus is the prerequisite bitmap reported to the client before and
// during an audit.
type DataStatus struct {
	HasProfile            bool `json:"has_profile"`
	HasCompetitors        bool `json:"has_competitors"`
	HasClientArticles     bool `json:"has_client_articles"`
	HasCompetitorArticles bool `json:"has_competitor_articles"`
	HasTrendPipeline      bool `json:"has_trend_pipeline"`
}

// Essential reports whether the data required to assemble a full audit
// response is present. Scraping counts are advisory only.
func (d DataStatus) Essential() bool {
	return d.HasProfile && d.HasCompetitors && d.HasTrendPipeline
}

// WorkflowStep is one planned or running audit step.
type WorkflowStep struct {
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	ExecutionID string  `json:"execution_id,omitempty"`
	Progress    float64 `json:"progress"`
	Error       string  `json:"error,omitempty"`
}

// PendingAuditResponse is returned when an audit is in flight or was just
// launched.
type PendingAuditResponse struct {
	Status        string         `json:"status"`
	ExecutionID   string         `json:"execution_id"`
	Domain        string         `json:"domain"`
	WorkflowSteps []WorkflowStep `json:"workflow_steps"`
	DataStatus    DataStatus     `json:"data_status"`
	Message       string         `json:"message,omitempty"`
}

// AuditStatusResponse is the polling shape for a running audit.
type AuditStatusResponse struct {
	ExecutionID     string         `json:"execution_id"`
	Domain          string         `json:"domain"`
	OverallStatus   string         `json:"overall_status"`
	OverallProgress float64        `json:"overall_progress"`
	Steps           []WorkflowStep `json:"steps"`
	StartTime       *time.Time     `json:"start_time,omitempty"`
	EndTime         *time.Time     `json:"end_time,omitempty"`
	ErrorMessage    string         `json:"error_message,omitempty"`
}

// SiteAuditResponse is the complete audit view assembled from persisted data.
type SiteAuditResponse struct {
	Domain        string                 `json:"domain"`
	GeneratedAt   time.Time              `json:"generated_at"`
	Profile       *SiteProfileResponse   `json:"profile,omitempty"`
	Competitors   []CompetitorResponse   `json:"competitors,omitempty"`
	DataStatus    DataStatus             `json:"data_status"`
	Topics        []TopicResponse        `json:"topics,omitempty"`
	Trending      []TopicResponse        `json:"trending,omitempty"`
	Gaps          []GapResponse          `json:"gaps,omitempty"`
	Strengths     []StrengthResponse     `json:"strengths,omitempty"`
	Roadmap       []RoadmapEntryResponse `json:"roadmap,omitempty"`
	Opportunities []TopicResponse        `json:"opportunities,omitempty"`
	AnalysisID    int                    `json:"analysis_id,omitempty"`
}

// AuditViewFlags selects which sections of the audit response to populate.
type AuditViewFlags struct {
	IncludeTopics        bool
	IncludeTrending      bool
	IncludeAnalyses      bool
	IncludeTemporal      bool
	IncludeOpportunities bool
}

// DefaultAuditViewFlags returns everything enabled.
func DefaultAuditViewFlags() AuditViewFlags {
	return AuditViewFlags{
		IncludeTopics:        true,
		IncludeTrending:      true,
		IncludeAnalyses:      true,
		IncludeTemporal:      true,
		IncludeOpportunities: true,
	}
}
