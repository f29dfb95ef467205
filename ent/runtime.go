// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/auditlog"
	"github.com/trendscope/trendscope/ent/clientarticle"
	"github.com/trendscope/trendscope/ent/clientstrength"
	"github.com/trendscope/trendscope/ent/competitor"
	"github.com/trendscope/trendscope/ent/competitorarticle"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/coverageanalysis"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/event"
	"github.com/trendscope/trendscope/ent/performancemetric"
	"github.com/trendscope/trendscope/ent/schema"
	"github.com/trendscope/trendscope/ent/siteprofile"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/topicoutlier"
	"github.com/trendscope/trendscope/ent/topictemporalmetrics"
	"github.com/trendscope/trendscope/ent/trendanalysis"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
	"github.com/trendscope/trendscope/ent/workflowexecution"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	articlerecommendationFields := schema.ArticleRecommendation{}.Fields()
	_ = articlerecommendationFields
	// articlerecommendationDescDifferentiationScore is the schema descriptor for differentiation_score field.
	articlerecommendationDescDifferentiationScore := articlerecommendationFields[4].Descriptor()
	// articlerecommendation.DefaultDifferentiationScore holds the default value on creation for the differentiation_score field.
	articlerecommendation.DefaultDifferentiationScore = articlerecommendationDescDifferentiationScore.Default.(float64)
	// articlerecommendationDescCreatedAt is the schema descriptor for created_at field.
	articlerecommendationDescCreatedAt := articlerecommendationFields[7].Descriptor()
	// articlerecommendation.DefaultCreatedAt holds the default value on creation for the created_at field.
	articlerecommendation.DefaultCreatedAt = articlerecommendationDescCreatedAt.Default.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescTimestamp is the schema descriptor for timestamp field.
	auditlogDescTimestamp := auditlogFields[8].Descriptor()
	// auditlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	auditlog.DefaultTimestamp = auditlogDescTimestamp.Default.(func() time.Time)
	clientarticleFields := schema.ClientArticle{}.Fields()
	_ = clientarticleFields
	// clientarticleDescIsValid is the schema descriptor for is_valid field.
	clientarticleDescIsValid := clientarticleFields[11].Descriptor()
	// clientarticle.DefaultIsValid holds the default value on creation for the is_valid field.
	clientarticle.DefaultIsValid = clientarticleDescIsValid.Default.(bool)
	// clientarticleDescCreatedAt is the schema descriptor for created_at field.
	clientarticleDescCreatedAt := clientarticleFields[12].Descriptor()
	// clientarticle.DefaultCreatedAt holds the default value on creation for the created_at field.
	clientarticle.DefaultCreatedAt = clientarticleDescCreatedAt.Default.(func() time.Time)
	clientstrengthFields := schema.ClientStrength{}.Fields()
	_ = clientstrengthFields
	// clientstrengthDescCreatedAt is the schema descriptor for created_at field.
	clientstrengthDescCreatedAt := clientstrengthFields[5].Descriptor()
	// clientstrength.DefaultCreatedAt holds the default value on creation for the created_at field.
	clientstrength.DefaultCreatedAt = clientstrengthDescCreatedAt.Default.(func() time.Time)
	competitorFields := schema.Competitor{}.Fields()
	_ = competitorFields
	// competitorDescRelevanceScore is the schema descriptor for relevance_score field.
	competitorDescRelevanceScore := competitorFields[3].Descriptor()
	// competitor.DefaultRelevanceScore holds the default value on creation for the relevance_score field.
	competitor.DefaultRelevanceScore = competitorDescRelevanceScore.Default.(float64)
	// competitorDescValidated is the schema descriptor for validated field.
	competitorDescValidated := competitorFields[4].Descriptor()
	// competitor.DefaultValidated holds the default value on creation for the validated field.
	competitor.DefaultValidated = competitorDescValidated.Default.(bool)
	// competitorDescExcluded is the schema descriptor for excluded field.
	competitorDescExcluded := competitorFields[5].Descriptor()
	// competitor.DefaultExcluded holds the default value on creation for the excluded field.
	competitor.DefaultExcluded = competitorDescExcluded.Default.(bool)
	// competitorDescIsValid is the schema descriptor for is_valid field.
	competitorDescIsValid := competitorFields[7].Descriptor()
	// competitor.DefaultIsValid holds the default value on creation for the is_valid field.
	competitor.DefaultIsValid = competitorDescIsValid.Default.(bool)
	// competitorDescCreatedAt is the schema descriptor for created_at field.
	competitorDescCreatedAt := competitorFields[8].Descriptor()
	// competitor.DefaultCreatedAt holds the default value on creation for the created_at field.
	competitor.DefaultCreatedAt = competitorDescCreatedAt.Default.(func() time.Time)
	competitorarticleFields := schema.CompetitorArticle{}.Fields()
	_ = competitorarticleFields
	// competitorarticleDescIsValid is the schema descriptor for is_valid field.
	competitorarticleDescIsValid := competitorarticleFields[10].Descriptor()
	// competitorarticle.DefaultIsValid holds the default value on creation for the is_valid field.
	competitorarticle.DefaultIsValid = competitorarticleDescIsValid.Default.(bool)
	// competitorarticleDescCreatedAt is the schema descriptor for created_at field.
	competitorarticleDescCreatedAt := competitorarticleFields[11].Descriptor()
	// competitorarticle.DefaultCreatedAt holds the default value on creation for the created_at field.
	competitorarticle.DefaultCreatedAt = competitorarticleDescCreatedAt.Default.(func() time.Time)
	contentroadmapFields := schema.ContentRoadmap{}.Fields()
	_ = contentroadmapFields
	// contentroadmapDescPriorityOrder is the schema descriptor for priority_order field.
	contentroadmapDescPriorityOrder := contentroadmapFields[3].Descriptor()
	// contentroadmap.PriorityOrderValidator is a validator for the "priority_order" field. It is called by the builders before save.
	contentroadmap.PriorityOrderValidator = contentroadmapDescPriorityOrder.Validators[0].(func(int) error)
	// contentroadmapDescCreatedAt is the schema descriptor for created_at field.
	contentroadmapDescCreatedAt := contentroadmapFields[6].Descriptor()
	// contentroadmap.DefaultCreatedAt holds the default value on creation for the created_at field.
	contentroadmap.DefaultCreatedAt = contentroadmapDescCreatedAt.Default.(func() time.Time)
	coverageanalysisFields := schema.CoverageAnalysis{}.Fields()
	_ = coverageanalysisFields
	// coverageanalysisDescCreatedAt is the schema descriptor for created_at field.
	coverageanalysisDescCreatedAt := coverageanalysisFields[8].Descriptor()
	// coverageanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	coverageanalysis.DefaultCreatedAt = coverageanalysisDescCreatedAt.Default.(func() time.Time)
	editorialgapFields := schema.EditorialGap{}.Fields()
	_ = editorialgapFields
	// editorialgapDescCreatedAt is the schema descriptor for created_at field.
	editorialgapDescCreatedAt := editorialgapFields[8].Descriptor()
	// editorialgap.DefaultCreatedAt holds the default value on creation for the created_at field.
	editorialgap.DefaultCreatedAt = editorialgapDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	performancemetricFields := schema.PerformanceMetric{}.Fields()
	_ = performancemetricFields
	// performancemetricDescCreatedAt is the schema descriptor for created_at field.
	performancemetricDescCreatedAt := performancemetricFields[6].Descriptor()
	// performancemetric.DefaultCreatedAt holds the default value on creation for the created_at field.
	performancemetric.DefaultCreatedAt = performancemetricDescCreatedAt.Default.(func() time.Time)
	siteprofileFields := schema.SiteProfile{}.Fields()
	_ = siteprofileFields
	// siteprofileDescAnalysisDate is the schema descriptor for analysis_date field.
	siteprofileDescAnalysisDate := siteprofileFields[1].Descriptor()
	// siteprofile.DefaultAnalysisDate holds the default value on creation for the analysis_date field.
	siteprofile.DefaultAnalysisDate = siteprofileDescAnalysisDate.Default.(func() time.Time)
	// siteprofileDescPagesAnalyzed is the schema descriptor for pages_analyzed field.
	siteprofileDescPagesAnalyzed := siteprofileFields[9].Descriptor()
	// siteprofile.DefaultPagesAnalyzed holds the default value on creation for the pages_analyzed field.
	siteprofile.DefaultPagesAnalyzed = siteprofileDescPagesAnalyzed.Default.(int)
	// siteprofileDescIsValid is the schema descriptor for is_valid field.
	siteprofileDescIsValid := siteprofileFields[11].Descriptor()
	// siteprofile.DefaultIsValid holds the default value on creation for the is_valid field.
	siteprofile.DefaultIsValid = siteprofileDescIsValid.Default.(bool)
	// siteprofileDescCreatedAt is the schema descriptor for created_at field.
	siteprofileDescCreatedAt := siteprofileFields[12].Descriptor()
	// siteprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	siteprofile.DefaultCreatedAt = siteprofileDescCreatedAt.Default.(func() time.Time)
	topicclusterFields := schema.TopicCluster{}.Fields()
	_ = topicclusterFields
	// topicclusterDescTopicID is the schema descriptor for topic_id field.
	topicclusterDescTopicID := topicclusterFields[1].Descriptor()
	// topiccluster.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	topiccluster.TopicIDValidator = topicclusterDescTopicID.Validators[0].(func(int) error)
	// topicclusterDescCoherenceScore is the schema descriptor for coherence_score field.
	topicclusterDescCoherenceScore := topicclusterFields[7].Descriptor()
	// topiccluster.DefaultCoherenceScore holds the default value on creation for the coherence_score field.
	topiccluster.DefaultCoherenceScore = topicclusterDescCoherenceScore.Default.(float64)
	// topicclusterDescCreatedAt is the schema descriptor for created_at field.
	topicclusterDescCreatedAt := topicclusterFields[8].Descriptor()
	// topiccluster.DefaultCreatedAt holds the default value on creation for the created_at field.
	topiccluster.DefaultCreatedAt = topicclusterDescCreatedAt.Default.(func() time.Time)
	topicoutlierFields := schema.TopicOutlier{}.Fields()
	_ = topicoutlierFields
	// topicoutlierDescCreatedAt is the schema descriptor for created_at field.
	topicoutlierDescCreatedAt := topicoutlierFields[6].Descriptor()
	// topicoutlier.DefaultCreatedAt holds the default value on creation for the created_at field.
	topicoutlier.DefaultCreatedAt = topicoutlierDescCreatedAt.Default.(func() time.Time)
	topictemporalmetricsFields := schema.TopicTemporalMetrics{}.Fields()
	_ = topictemporalmetricsFields
	// topictemporalmetricsDescDriftDetected is the schema descriptor for drift_detected field.
	topictemporalmetricsDescDriftDetected := topictemporalmetricsFields[10].Descriptor()
	// topictemporalmetrics.DefaultDriftDetected holds the default value on creation for the drift_detected field.
	topictemporalmetrics.DefaultDriftDetected = topictemporalmetricsDescDriftDetected.Default.(bool)
	// topictemporalmetricsDescCreatedAt is the schema descriptor for created_at field.
	topictemporalmetricsDescCreatedAt := topictemporalmetricsFields[12].Descriptor()
	// topictemporalmetrics.DefaultCreatedAt holds the default value on creation for the created_at field.
	topictemporalmetrics.DefaultCreatedAt = topictemporalmetricsDescCreatedAt.Default.(func() time.Time)
	trendanalysisFields := schema.TrendAnalysis{}.Fields()
	_ = trendanalysisFields
	// trendanalysisDescProcessingTimeSeconds is the schema descriptor for processing_time_seconds field.
	trendanalysisDescProcessingTimeSeconds := trendanalysisFields[5].Descriptor()
	// trendanalysis.DefaultProcessingTimeSeconds holds the default value on creation for the processing_time_seconds field.
	trendanalysis.DefaultProcessingTimeSeconds = trendanalysisDescProcessingTimeSeconds.Default.(float64)
	// trendanalysisDescCreatedAt is the schema descriptor for created_at field.
	trendanalysisDescCreatedAt := trendanalysisFields[6].Descriptor()
	// trendanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	trendanalysis.DefaultCreatedAt = trendanalysisDescCreatedAt.Default.(func() time.Time)
	trendpipelineexecutionFields := schema.TrendPipelineExecution{}.Fields()
	_ = trendpipelineexecutionFields
	// trendpipelineexecutionDescTimeWindowDays is the schema descriptor for time_window_days field.
	trendpipelineexecutionDescTimeWindowDays := trendpipelineexecutionFields[3].Descriptor()
	// trendpipelineexecution.DefaultTimeWindowDays holds the default value on creation for the time_window_days field.
	trendpipelineexecution.DefaultTimeWindowDays = trendpipelineexecutionDescTimeWindowDays.Default.(int)
	// trendpipelineexecutionDescTotalArticles is the schema descriptor for total_articles field.
	trendpipelineexecutionDescTotalArticles := trendpipelineexecutionFields[8].Descriptor()
	// trendpipelineexecution.DefaultTotalArticles holds the default value on creation for the total_articles field.
	trendpipelineexecution.DefaultTotalArticles = trendpipelineexecutionDescTotalArticles.Default.(int)
	// trendpipelineexecutionDescTotalClusters is the schema descriptor for total_clusters field.
	trendpipelineexecutionDescTotalClusters := trendpipelineexecutionFields[9].Descriptor()
	// trendpipelineexecution.DefaultTotalClusters holds the default value on creation for the total_clusters field.
	trendpipelineexecution.DefaultTotalClusters = trendpipelineexecutionDescTotalClusters.Default.(int)
	// trendpipelineexecutionDescTotalOutliers is the schema descriptor for total_outliers field.
	trendpipelineexecutionDescTotalOutliers := trendpipelineexecutionFields[10].Descriptor()
	// trendpipelineexecution.DefaultTotalOutliers holds the default value on creation for the total_outliers field.
	trendpipelineexecution.DefaultTotalOutliers = trendpipelineexecutionDescTotalOutliers.Default.(int)
	// trendpipelineexecutionDescTotalRecommendations is the schema descriptor for total_recommendations field.
	trendpipelineexecutionDescTotalRecommendations := trendpipelineexecutionFields[11].Descriptor()
	// trendpipelineexecution.DefaultTotalRecommendations holds the default value on creation for the total_recommendations field.
	trendpipelineexecution.DefaultTotalRecommendations = trendpipelineexecutionDescTotalRecommendations.Default.(int)
	// trendpipelineexecutionDescTotalGaps is the schema descriptor for total_gaps field.
	trendpipelineexecutionDescTotalGaps := trendpipelineexecutionFields[12].Descriptor()
	// trendpipelineexecution.DefaultTotalGaps holds the default value on creation for the total_gaps field.
	trendpipelineexecution.DefaultTotalGaps = trendpipelineexecutionDescTotalGaps.Default.(int)
	// trendpipelineexecutionDescStartTime is the schema descriptor for start_time field.
	trendpipelineexecutionDescStartTime := trendpipelineexecutionFields[14].Descriptor()
	// trendpipelineexecution.DefaultStartTime holds the default value on creation for the start_time field.
	trendpipelineexecution.DefaultStartTime = trendpipelineexecutionDescStartTime.Default.(func() time.Time)
	// trendpipelineexecutionDescIsValid is the schema descriptor for is_valid field.
	trendpipelineexecutionDescIsValid := trendpipelineexecutionFields[18].Descriptor()
	// trendpipelineexecution.DefaultIsValid holds the default value on creation for the is_valid field.
	trendpipelineexecution.DefaultIsValid = trendpipelineexecutionDescIsValid.Default.(bool)
	// trendpipelineexecutionDescCreatedAt is the schema descriptor for created_at field.
	trendpipelineexecutionDescCreatedAt := trendpipelineexecutionFields[19].Descriptor()
	// trendpipelineexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	trendpipelineexecution.DefaultCreatedAt = trendpipelineexecutionDescCreatedAt.Default.(func() time.Time)
	workflowexecutionFields := schema.WorkflowExecution{}.Fields()
	_ = workflowexecutionFields
	// workflowexecutionDescCreatedAt is the schema descriptor for created_at field.
	workflowexecutionDescCreatedAt := workflowexecutionFields[12].Descriptor()
	// workflowexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowexecution.DefaultCreatedAt = workflowexecutionDescCreatedAt.Default.(func() time.Time)
	// workflowexecutionDescUpdatedAt is the schema descriptor for updated_at field.
	workflowexecutionDescUpdatedAt := workflowexecutionFields[13].Descriptor()
	// workflowexecution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowexecution.DefaultUpdatedAt = workflowexecutionDescUpdatedAt.Default.(func() time.Time)
	// workflowexecution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowexecution.UpdateDefaultUpdatedAt = workflowexecutionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
