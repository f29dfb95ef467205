// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ArticleRecommendation is the predicate function for articlerecommendation builders.
type ArticleRecommendation func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// ClientArticle is the predicate function for clientarticle builders.
type ClientArticle func(*sql.Selector)

// ClientStrength is the predicate function for clientstrength builders.
type ClientStrength func(*sql.Selector)

// Competitor is the predicate function for competitor builders.
type Competitor func(*sql.Selector)

// CompetitorArticle is the predicate function for competitorarticle builders.
type CompetitorArticle func(*sql.Selector)

// ContentRoadmap is the predicate function for contentroadmap builders.
type ContentRoadmap func(*sql.Selector)

// CoverageAnalysis is the predicate function for coverageanalysis builders.
type CoverageAnalysis func(*sql.Selector)

// EditorialGap is the predicate function for editorialgap builders.
type EditorialGap func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// PerformanceMetric is the predicate function for performancemetric builders.
type PerformanceMetric func(*sql.Selector)

// SiteProfile is the predicate function for siteprofile builders.
type SiteProfile func(*sql.Selector)

// TopicCluster is the predicate function for topiccluster builders.
type TopicCluster func(*sql.Selector)

// TopicOutlier is the predicate function for topicoutlier builders.
type TopicOutlier func(*sql.Selector)

// TopicTemporalMetrics is the predicate function for topictemporalmetrics builders.
type TopicTemporalMetrics func(*sql.Selector)

// TrendAnalysis is the predicate function for trendanalysis builders.
type TrendAnalysis func(*sql.Selector)

// TrendPipelineExecution is the predicate function for trendpipelineexecution builders.
type TrendPipelineExecution func(*sql.Selector)

// WorkflowExecution is the predicate function for workflowexecution builders.
type WorkflowExecution func(*sql.Selector)
