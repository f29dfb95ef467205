// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArticleRecommendationsColumns holds the columns for the "article_recommendations" table.
	ArticleRecommendationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "hook", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "outline", Type: field.TypeJSON, Nullable: true},
		{Name: "differentiation_score", Type: field.TypeFloat64, Default: 0},
		{Name: "effort_level", Type: field.TypeEnum, Enums: []string{"easy", "medium", "complex"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"suggested", "accepted", "rejected", "published"}, Default: "suggested"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "topic_cluster_id", Type: field.TypeInt},
	}
	// ArticleRecommendationsTable holds the schema information for the "article_recommendations" table.
	ArticleRecommendationsTable = &schema.Table{
		Name:       "article_recommendations",
		Columns:    ArticleRecommendationsColumns,
		PrimaryKey: []*schema.Column{ArticleRecommendationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "article_recommendations_topic_clusters_recommendations",
				Columns:    []*schema.Column{ArticleRecommendationsColumns[8]},
				RefColumns: []*schema.Column{TopicClustersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "articlerecommendation_topic_cluster_id_status",
				Unique:  false,
				Columns: []*schema.Column{ArticleRecommendationsColumns[8], ArticleRecommendationsColumns[6]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "action", Type: field.TypeString},
		{Name: "agent_name", Type: field.TypeString, Nullable: true},
		{Name: "step_name", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"info", "success", "error"}, Default: "info"},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "error_traceback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_workflow_executions_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[9]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_execution_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[9], AuditLogsColumns[8]},
			},
			{
				Name:    "auditlog_status",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[4]},
			},
		},
	}
	// ClientArticlesColumns holds the columns for the "client_articles" table.
	ClientArticlesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "domain", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "url_hash", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "content_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "published_date", Type: field.TypeTime, Nullable: true},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "topic_id", Type: field.TypeInt, Nullable: true},
		{Name: "qdrant_point_id", Type: field.TypeString, Nullable: true},
		{Name: "is_valid", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "site_profile_id", Type: field.TypeInt, Nullable: true},
	}
	// ClientArticlesTable holds the schema information for the "client_articles" table.
	ClientArticlesTable = &schema.Table{
		Name:       "client_articles",
		Columns:    ClientArticlesColumns,
		PrimaryKey: []*schema.Column{ClientArticlesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "client_articles_site_profiles_client_articles",
				Columns:    []*schema.Column{ClientArticlesColumns[13]},
				RefColumns: []*schema.Column{SiteProfilesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clientarticle_domain_is_valid",
				Unique:  false,
				Columns: []*schema.Column{ClientArticlesColumns[1], ClientArticlesColumns[11]},
			},
			{
				Name:    "clientarticle_site_profile_id",
				Unique:  false,
				Columns: []*schema.Column{ClientArticlesColumns[13]},
			},
			{
				Name:    "clientarticle_published_date",
				Unique:  false,
				Columns: []*schema.Column{ClientArticlesColumns[7]},
			},
		},
	}
	// ClientStrengthsColumns holds the columns for the "client_strengths" table.
	ClientStrengthsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "client_domain", Type: field.TypeString},
		{Name: "client_count", Type: field.TypeInt},
		{Name: "competitor_count", Type: field.TypeInt},
		{Name: "coverage_score", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "topic_cluster_id", Type: field.TypeInt},
	}
	// ClientStrengthsTable holds the schema information for the "client_strengths" table.
	ClientStrengthsTable = &schema.Table{
		Name:       "client_strengths",
		Columns:    ClientStrengthsColumns,
		PrimaryKey: []*schema.Column{ClientStrengthsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "client_strengths_topic_clusters_strengths",
				Columns:    []*schema.Column{ClientStrengthsColumns[6]},
				RefColumns: []*schema.Column{TopicClustersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clientstrength_client_domain",
				Unique:  false,
				Columns: []*schema.Column{ClientStrengthsColumns[1]},
			},
		},
	}
	// CompetitorsColumns holds the columns for the "competitors" table.
	CompetitorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "client_domain", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "relevance_score", Type: field.TypeFloat64, Default: 0},
		{Name: "validated", Type: field.TypeBool, Default: false},
		{Name: "excluded", Type: field.TypeBool, Default: false},
		{Name: "validation_date", Type: field.TypeTime, Nullable: true},
		{Name: "is_valid", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CompetitorsTable holds the schema information for the "competitors" table.
	CompetitorsTable = &schema.Table{
		Name:       "competitors",
		Columns:    CompetitorsColumns,
		PrimaryKey: []*schema.Column{CompetitorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "competitor_client_domain_domain",
				Unique:  true,
				Columns: []*schema.Column{CompetitorsColumns[1], CompetitorsColumns[2]},
			},
			{
				Name:    "competitor_client_domain_validated_excluded",
				Unique:  false,
				Columns: []*schema.Column{CompetitorsColumns[1], CompetitorsColumns[5], CompetitorsColumns[6]},
			},
		},
	}
	// CompetitorArticlesColumns holds the columns for the "competitor_articles" table.
	CompetitorArticlesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "domain", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "url_hash", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "content_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "published_date", Type: field.TypeTime, Nullable: true},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "topic_id", Type: field.TypeInt, Nullable: true},
		{Name: "qdrant_point_id", Type: field.TypeString, Nullable: true},
		{Name: "is_valid", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CompetitorArticlesTable holds the schema information for the "competitor_articles" table.
	CompetitorArticlesTable = &schema.Table{
		Name:       "competitor_articles",
		Columns:    CompetitorArticlesColumns,
		PrimaryKey: []*schema.Column{CompetitorArticlesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "competitorarticle_domain_is_valid",
				Unique:  false,
				Columns: []*schema.Column{CompetitorArticlesColumns[1], CompetitorArticlesColumns[11]},
			},
			{
				Name:    "competitorarticle_published_date",
				Unique:  false,
				Columns: []*schema.Column{CompetitorArticlesColumns[7]},
			},
		},
	}
	// ContentRoadmapsColumns holds the columns for the "content_roadmaps" table.
	ContentRoadmapsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "client_domain", Type: field.TypeString},
		{Name: "priority_order", Type: field.TypeInt},
		{Name: "priority_tier", Type: field.TypeEnum, Enums: []string{"high", "medium", "low"}},
		{Name: "estimated_effort", Type: field.TypeEnum, Enums: []string{"easy", "medium", "complex"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recommendation_id", Type: field.TypeInt},
		{Name: "gap_id", Type: field.TypeInt},
	}
	// ContentRoadmapsTable holds the schema information for the "content_roadmaps" table.
	ContentRoadmapsTable = &schema.Table{
		Name:       "content_roadmaps",
		Columns:    ContentRoadmapsColumns,
		PrimaryKey: []*schema.Column{ContentRoadmapsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "content_roadmaps_article_recommendations_roadmap_entries",
				Columns:    []*schema.Column{ContentRoadmapsColumns[6]},
				RefColumns: []*schema.Column{ArticleRecommendationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "content_roadmaps_editorial_gaps_roadmap_entries",
				Columns:    []*schema.Column{ContentRoadmapsColumns[7]},
				RefColumns: []*schema.Column{EditorialGapsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contentroadmap_client_domain_priority_order",
				Unique:  true,
				Columns: []*schema.Column{ContentRoadmapsColumns[1], ContentRoadmapsColumns[2]},
			},
		},
	}
	// CoverageAnalysesColumns holds the columns for the "coverage_analyses" table.
	CoverageAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "client_domain", Type: field.TypeString},
		{Name: "client_count", Type: field.TypeInt},
		{Name: "competitor_count", Type: field.TypeInt},
		{Name: "distinct_competitor_domains", Type: field.TypeInt},
		{Name: "avg_competitor", Type: field.TypeFloat64},
		{Name: "coverage_score", Type: field.TypeFloat64},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"excellent", "good", "weak", "gap"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "topic_cluster_id", Type: field.TypeInt},
	}
	// CoverageAnalysesTable holds the schema information for the "coverage_analyses" table.
	CoverageAnalysesTable = &schema.Table{
		Name:       "coverage_analyses",
		Columns:    CoverageAnalysesColumns,
		PrimaryKey: []*schema.Column{CoverageAnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "coverage_analyses_topic_clusters_coverage_analyses",
				Columns:    []*schema.Column{CoverageAnalysesColumns[9]},
				RefColumns: []*schema.Column{TopicClustersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "coverageanalysis_client_domain_topic_cluster_id",
				Unique:  true,
				Columns: []*schema.Column{CoverageAnalysesColumns[1], CoverageAnalysesColumns[9]},
			},
		},
	}
	// EditorialGapsColumns holds the columns for the "editorial_gaps" table.
	EditorialGapsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "client_domain", Type: field.TypeString},
		{Name: "client_count", Type: field.TypeInt},
		{Name: "competitor_count", Type: field.TypeInt},
		{Name: "avg_competitor", Type: field.TypeFloat64},
		{Name: "coverage_score", Type: field.TypeFloat64},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"excellent", "good", "weak", "gap"}},
		{Name: "priority_score", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "topic_cluster_id", Type: field.TypeInt},
	}
	// EditorialGapsTable holds the schema information for the "editorial_gaps" table.
	EditorialGapsTable = &schema.Table{
		Name:       "editorial_gaps",
		Columns:    EditorialGapsColumns,
		PrimaryKey: []*schema.Column{EditorialGapsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "editorial_gaps_topic_clusters_gaps",
				Columns:    []*schema.Column{EditorialGapsColumns[9]},
				RefColumns: []*schema.Column{TopicClustersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "editorialgap_client_domain_priority_score",
				Unique:  false,
				Columns: []*schema.Column{EditorialGapsColumns[1], EditorialGapsColumns[7]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_execution_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// PerformanceMetricsColumns holds the columns for the "performance_metrics" table.
	PerformanceMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_name", Type: field.TypeString, Nullable: true},
		{Name: "metric_type", Type: field.TypeString},
		{Name: "metric_value", Type: field.TypeFloat64},
		{Name: "metric_unit", Type: field.TypeString, Nullable: true},
		{Name: "additional_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
	}
	// PerformanceMetricsTable holds the schema information for the "performance_metrics" table.
	PerformanceMetricsTable = &schema.Table{
		Name:       "performance_metrics",
		Columns:    PerformanceMetricsColumns,
		PrimaryKey: []*schema.Column{PerformanceMetricsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "performance_metrics_workflow_executions_performance_metrics",
				Columns:    []*schema.Column{PerformanceMetricsColumns[7]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "performancemetric_execution_id_metric_type",
				Unique:  false,
				Columns: []*schema.Column{PerformanceMetricsColumns[7], PerformanceMetricsColumns[2]},
			},
		},
	}
	// SiteProfilesColumns holds the columns for the "site_profiles" table.
	SiteProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "domain", Type: field.TypeString},
		{Name: "analysis_date", Type: field.TypeTime},
		{Name: "language_level", Type: field.TypeEnum, Enums: []string{"simple", "intermediate", "advanced", "expert"}, Default: "intermediate"},
		{Name: "editorial_tone", Type: field.TypeString, Nullable: true},
		{Name: "target_audience", Type: field.TypeJSON, Nullable: true},
		{Name: "activity_domains", Type: field.TypeJSON, Nullable: true},
		{Name: "content_structure", Type: field.TypeJSON, Nullable: true},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "style_features", Type: field.TypeJSON, Nullable: true},
		{Name: "pages_analyzed", Type: field.TypeInt, Default: 0},
		{Name: "llm_models_used", Type: field.TypeJSON, Nullable: true},
		{Name: "is_valid", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SiteProfilesTable holds the schema information for the "site_profiles" table.
	SiteProfilesTable = &schema.Table{
		Name:       "site_profiles",
		Columns:    SiteProfilesColumns,
		PrimaryKey: []*schema.Column{SiteProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "siteprofile_domain_is_valid",
				Unique:  false,
				Columns: []*schema.Column{SiteProfilesColumns[1], SiteProfilesColumns[12]},
			},
			{
				Name:    "siteprofile_domain_analysis_date",
				Unique:  false,
				Columns: []*schema.Column{SiteProfilesColumns[1], SiteProfilesColumns[2]},
			},
		},
	}
	// TopicClustersColumns holds the columns for the "topic_clusters" table.
	TopicClustersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeInt},
		{Name: "label", Type: field.TypeString},
		{Name: "top_terms", Type: field.TypeJSON, Nullable: true},
		{Name: "size", Type: field.TypeInt},
		{Name: "document_ids", Type: field.TypeJSON},
		{Name: "centroid_vector_id", Type: field.TypeString, Nullable: true},
		{Name: "coherence_score", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "analysis_id", Type: field.TypeInt},
	}
	// TopicClustersTable holds the schema information for the "topic_clusters" table.
	TopicClustersTable = &schema.Table{
		Name:       "topic_clusters",
		Columns:    TopicClustersColumns,
		PrimaryKey: []*schema.Column{TopicClustersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "topic_clusters_trend_pipeline_executions_clusters",
				Columns:    []*schema.Column{TopicClustersColumns[9]},
				RefColumns: []*schema.Column{TrendPipelineExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "topiccluster_analysis_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{TopicClustersColumns[9], TopicClustersColumns[1]},
			},
		},
	}
	// TopicOutliersColumns holds the columns for the "topic_outliers" table.
	TopicOutliersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "article_id", Type: field.TypeInt, Nullable: true},
		{Name: "nearest_topic_id", Type: field.TypeInt, Nullable: true},
		{Name: "potential_category", Type: field.TypeString, Nullable: true},
		{Name: "embedding_distance", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "analysis_id", Type: field.TypeInt},
	}
	// TopicOutliersTable holds the schema information for the "topic_outliers" table.
	TopicOutliersTable = &schema.Table{
		Name:       "topic_outliers",
		Columns:    TopicOutliersColumns,
		PrimaryKey: []*schema.Column{TopicOutliersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "topic_outliers_trend_pipeline_executions_outliers",
				Columns:    []*schema.Column{TopicOutliersColumns[7]},
				RefColumns: []*schema.Column{TrendPipelineExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "topicoutlier_analysis_id",
				Unique:  false,
				Columns: []*schema.Column{TopicOutliersColumns[7]},
			},
		},
	}
	// TopicTemporalMetricsColumns holds the columns for the "topic_temporal_metrics" table.
	TopicTemporalMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "window_end", Type: field.TypeTime},
		{Name: "volume", Type: field.TypeInt},
		{Name: "velocity", Type: field.TypeFloat64},
		{Name: "velocity_trend", Type: field.TypeString, Nullable: true},
		{Name: "freshness_ratio", Type: field.TypeFloat64},
		{Name: "source_diversity", Type: field.TypeInt},
		{Name: "cohesion_score", Type: field.TypeFloat64},
		{Name: "potential_score", Type: field.TypeFloat64},
		{Name: "drift_detected", Type: field.TypeBool, Default: false},
		{Name: "drift_distance", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "topic_cluster_id", Type: field.TypeInt},
	}
	// TopicTemporalMetricsTable holds the schema information for the "topic_temporal_metrics" table.
	TopicTemporalMetricsTable = &schema.Table{
		Name:       "topic_temporal_metrics",
		Columns:    TopicTemporalMetricsColumns,
		PrimaryKey: []*schema.Column{TopicTemporalMetricsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "topic_temporal_metrics_topic_clusters_temporal_metrics",
				Columns:    []*schema.Column{TopicTemporalMetricsColumns[13]},
				RefColumns: []*schema.Column{TopicClustersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "topictemporalmetrics_topic_cluster_id",
				Unique:  false,
				Columns: []*schema.Column{TopicTemporalMetricsColumns[13]},
			},
		},
	}
	// TrendAnalysesColumns holds the columns for the "trend_analyses" table.
	TrendAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "synthesis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "saturated_angles", Type: field.TypeJSON, Nullable: true},
		{Name: "opportunities", Type: field.TypeJSON, Nullable: true},
		{Name: "llm_model_used", Type: field.TypeString, Nullable: true},
		{Name: "processing_time_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "topic_cluster_id", Type: field.TypeInt},
	}
	// TrendAnalysesTable holds the schema information for the "trend_analyses" table.
	TrendAnalysesTable = &schema.Table{
		Name:       "trend_analyses",
		Columns:    TrendAnalysesColumns,
		PrimaryKey: []*schema.Column{TrendAnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "trend_analyses_topic_clusters_trend_analyses",
				Columns:    []*schema.Column{TrendAnalysesColumns[7]},
				RefColumns: []*schema.Column{TopicClustersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// TrendPipelineExecutionsColumns holds the columns for the "trend_pipeline_executions" table.
	TrendPipelineExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "client_domain", Type: field.TypeString, Nullable: true},
		{Name: "domains_analyzed", Type: field.TypeJSON, Nullable: true},
		{Name: "time_window_days", Type: field.TypeInt, Default: 0},
		{Name: "stage_1_clustering_status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "stage_2_temporal_status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "stage_3_llm_status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "stage_4_gap_status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "total_articles", Type: field.TypeInt, Default: 0},
		{Name: "total_clusters", Type: field.TypeInt, Default: 0},
		{Name: "total_outliers", Type: field.TypeInt, Default: 0},
		{Name: "total_recommendations", Type: field.TypeInt, Default: 0},
		{Name: "total_gaps", Type: field.TypeInt, Default: 0},
		{Name: "outlier_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "is_valid", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TrendPipelineExecutionsTable holds the schema information for the "trend_pipeline_executions" table.
	TrendPipelineExecutionsTable = &schema.Table{
		Name:       "trend_pipeline_executions",
		Columns:    TrendPipelineExecutionsColumns,
		PrimaryKey: []*schema.Column{TrendPipelineExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trendpipelineexecution_client_domain_created_at",
				Unique:  false,
				Columns: []*schema.Column{TrendPipelineExecutionsColumns[2], TrendPipelineExecutionsColumns[20]},
			},
		},
	}
	// WorkflowExecutionsColumns holds the columns for the "workflow_executions" table.
	WorkflowExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_type", Type: field.TypeEnum, Enums: []string{"editorial_analysis", "competitor_search", "scraping", "client_scraping", "trends_analysis", "trend_pipeline", "article_generation", "audit_orchestrator"}},
		{Name: "domain", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "was_success", Type: field.TypeBool, Nullable: true},
		{Name: "input_data", Type: field.TypeJSON, Nullable: true},
		{Name: "output_data", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "start_time", Type: field.TypeTime, Nullable: true},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "parent_execution_id", Type: field.TypeString, Nullable: true},
	}
	// WorkflowExecutionsTable holds the schema information for the "workflow_executions" table.
	WorkflowExecutionsTable = &schema.Table{
		Name:       "workflow_executions",
		Columns:    WorkflowExecutionsColumns,
		PrimaryKey: []*schema.Column{WorkflowExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_executions_workflow_executions_children",
				Columns:    []*schema.Column{WorkflowExecutionsColumns[14]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowexecution_workflow_type",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[1]},
			},
			{
				Name:    "workflowexecution_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[3]},
			},
			{
				Name:    "workflowexecution_domain",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[2]},
			},
			{
				Name:    "workflowexecution_workflow_type_domain_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[1], WorkflowExecutionsColumns[2], WorkflowExecutionsColumns[3]},
			},
			{
				Name:    "workflowexecution_workflow_type_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[1], WorkflowExecutionsColumns[3], WorkflowExecutionsColumns[11]},
			},
			{
				Name:    "workflowexecution_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[13]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
			{
				Name:    "workflowexecution_workflow_type_domain",
				Unique:  true,
				Columns: []*schema.Column{WorkflowExecutionsColumns[1], WorkflowExecutionsColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "workflow_type = 'audit_orchestrator' AND status IN ('pending', 'running') AND deleted_at IS NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArticleRecommendationsTable,
		AuditLogsTable,
		ClientArticlesTable,
		ClientStrengthsTable,
		CompetitorsTable,
		CompetitorArticlesTable,
		ContentRoadmapsTable,
		CoverageAnalysesTable,
		EditorialGapsTable,
		EventsTable,
		PerformanceMetricsTable,
		SiteProfilesTable,
		TopicClustersTable,
		TopicOutliersTable,
		TopicTemporalMetricsTable,
		TrendAnalysesTable,
		TrendPipelineExecutionsTable,
		WorkflowExecutionsTable,
	}
)

func init() {
	ArticleRecommendationsTable.ForeignKeys[0].RefTable = TopicClustersTable
	AuditLogsTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
	ClientArticlesTable.ForeignKeys[0].RefTable = SiteProfilesTable
	ClientStrengthsTable.ForeignKeys[0].RefTable = TopicClustersTable
	ContentRoadmapsTable.ForeignKeys[0].RefTable = ArticleRecommendationsTable
	ContentRoadmapsTable.ForeignKeys[1].RefTable = EditorialGapsTable
	CoverageAnalysesTable.ForeignKeys[0].RefTable = TopicClustersTable
	EditorialGapsTable.ForeignKeys[0].RefTable = TopicClustersTable
	PerformanceMetricsTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
	TopicClustersTable.ForeignKeys[0].RefTable = TrendPipelineExecutionsTable
	TopicOutliersTable.ForeignKeys[0].RefTable = TrendPipelineExecutionsTable
	TopicTemporalMetricsTable.ForeignKeys[0].RefTable = TopicClustersTable
	TrendAnalysesTable.ForeignKeys[0].RefTable = TopicClustersTable
	WorkflowExecutionsTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
}
