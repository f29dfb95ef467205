// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/trendscope/trendscope/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
	"github.com/trendscope/trendscope/ent/siteprofile"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/topicoutlier"
	"github.com/trendscope/trendscope/ent/topictemporalmetrics"
	"github.com/trendscope/trendscope/ent/trendanalysis"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
	"github.com/trendscope/trendscope/ent/workflowexecution"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ArticleRecommendation is the client for interacting with the ArticleRecommendation builders.
	ArticleRecommendation *ArticleRecommendationClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// ClientArticle is the client for interacting with the ClientArticle builders.
	ClientArticle *ClientArticleClient
	// ClientStrength is the client for interacting with the ClientStrength builders.
	ClientStrength *ClientStrengthClient
	// Competitor is the client for interacting with the Competitor builders.
	Competitor *CompetitorClient
	// CompetitorArticle is the client for interacting with the CompetitorArticle builders.
	CompetitorArticle *CompetitorArticleClient
	// ContentRoadmap is the client for interacting with the ContentRoadmap builders.
	ContentRoadmap *ContentRoadmapClient
	// CoverageAnalysis is the client for interacting with the CoverageAnalysis builders.
	CoverageAnalysis *CoverageAnalysisClient
	// EditorialGap is the client for interacting with the EditorialGap builders.
	EditorialGap *EditorialGapClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// PerformanceMetric is the client for interacting with the PerformanceMetric builders.
	PerformanceMetric *PerformanceMetricClient
	// SiteProfile is the client for interacting with the SiteProfile builders.
	SiteProfile *SiteProfileClient
	// TopicCluster is the client for interacting with the TopicCluster builders.
	TopicCluster *TopicClusterClient
	// TopicOutlier is the client for interacting with the TopicOutlier builders.
	TopicOutlier *TopicOutlierClient
	// TopicTemporalMetrics is the client for interacting with the TopicTemporalMetrics builders.
	TopicTemporalMetrics *TopicTemporalMetricsClient
	// TrendAnalysis is the client for interacting with the TrendAnalysis builders.
	TrendAnalysis *TrendAnalysisClient
	// TrendPipelineExecution is the client for interacting with the TrendPipelineExecution builders.
	TrendPipelineExecution *TrendPipelineExecutionClient
	// WorkflowExecution is the client for interacting with the WorkflowExecution builders.
	WorkflowExecution *WorkflowExecutionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ArticleRecommendation = NewArticleRecommendationClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.ClientArticle = NewClientArticleClient(c.config)
	c.ClientStrength = NewClientStrengthClient(c.config)
	c.Competitor = NewCompetitorClient(c.config)
	c.CompetitorArticle = NewCompetitorArticleClient(c.config)
	c.ContentRoadmap = NewContentRoadmapClient(c.config)
	c.CoverageAnalysis = NewCoverageAnalysisClient(c.config)
	c.EditorialGap = NewEditorialGapClient(c.config)
	c.Event = NewEventClient(c.config)
	c.PerformanceMetric = NewPerformanceMetricClient(c.config)
	c.SiteProfile = NewSiteProfileClient(c.config)
	c.TopicCluster = NewTopicClusterClient(c.config)
	c.TopicOutlier = NewTopicOutlierClient(c.config)
	c.TopicTemporalMetrics = NewTopicTemporalMetricsClient(c.config)
	c.TrendAnalysis = NewTrendAnalysisClient(c.config)
	c.TrendPipelineExecution = NewTrendPipelineExecutionClient(c.config)
	c.WorkflowExecution = NewWorkflowExecutionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		ArticleRecommendation:  NewArticleRecommendationClient(cfg),
		AuditLog:               NewAuditLogClient(cfg),
		ClientArticle:          NewClientArticleClient(cfg),
		ClientStrength:         NewClientStrengthClient(cfg),
		Competitor:             NewCompetitorClient(cfg),
		CompetitorArticle:      NewCompetitorArticleClient(cfg),
		ContentRoadmap:         NewContentRoadmapClient(cfg),
		CoverageAnalysis:       NewCoverageAnalysisClient(cfg),
		EditorialGap:           NewEditorialGapClient(cfg),
		Event:                  NewEventClient(cfg),
		PerformanceMetric:      NewPerformanceMetricClient(cfg),
		SiteProfile:            NewSiteProfileClient(cfg),
		TopicCluster:           NewTopicClusterClient(cfg),
		TopicOutlier:           NewTopicOutlierClient(cfg),
		TopicTemporalMetrics:   NewTopicTemporalMetricsClient(cfg),
		TrendAnalysis:          NewTrendAnalysisClient(cfg),
		TrendPipelineExecution: NewTrendPipelineExecutionClient(cfg),
		WorkflowExecution:      NewWorkflowExecutionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		ArticleRecommendation:  NewArticleRecommendationClient(cfg),
		AuditLog:               NewAuditLogClient(cfg),
		ClientArticle:          NewClientArticleClient(cfg),
		ClientStrength:         NewClientStrengthClient(cfg),
		Competitor:             NewCompetitorClient(cfg),
		CompetitorArticle:      NewCompetitorArticleClient(cfg),
		ContentRoadmap:         NewContentRoadmapClient(cfg),
		CoverageAnalysis:       NewCoverageAnalysisClient(cfg),
		EditorialGap:           NewEditorialGapClient(cfg),
		Event:                  NewEventClient(cfg),
		PerformanceMetric:      NewPerformanceMetricClient(cfg),
		SiteProfile:            NewSiteProfileClient(cfg),
		TopicCluster:           NewTopicClusterClient(cfg),
		TopicOutlier:           NewTopicOutlierClient(cfg),
		TopicTemporalMetrics:   NewTopicTemporalMetricsClient(cfg),
		TrendAnalysis:          NewTrendAnalysisClient(cfg),
		TrendPipelineExecution: NewTrendPipelineExecutionClient(cfg),
		WorkflowExecution:      NewWorkflowExecutionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ArticleRecommendation.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ArticleRecommendation, c.AuditLog, c.ClientArticle, c.ClientStrength,
		c.Competitor, c.CompetitorArticle, c.ContentRoadmap, c.CoverageAnalysis,
		c.EditorialGap, c.Event, c.PerformanceMetric, c.SiteProfile, c.TopicCluster,
		c.TopicOutlier, c.TopicTemporalMetrics, c.TrendAnalysis,
		c.TrendPipelineExecution, c.WorkflowExecution,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ArticleRecommendation, c.AuditLog, c.ClientArticle, c.ClientStrength,
		c.Competitor, c.CompetitorArticle, c.ContentRoadmap, c.CoverageAnalysis,
		c.EditorialGap, c.Event, c.PerformanceMetric, c.SiteProfile, c.TopicCluster,
		c.TopicOutlier, c.TopicTemporalMetrics, c.TrendAnalysis,
		c.TrendPipelineExecution, c.WorkflowExecution,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArticleRecommendationMutation:
		return c.ArticleRecommendation.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *ClientArticleMutation:
		return c.ClientArticle.mutate(ctx, m)
	case *ClientStrengthMutation:
		return c.ClientStrength.mutate(ctx, m)
	case *CompetitorMutation:
		return c.Competitor.mutate(ctx, m)
	case *CompetitorArticleMutation:
		return c.CompetitorArticle.mutate(ctx, m)
	case *ContentRoadmapMutation:
		return c.ContentRoadmap.mutate(ctx, m)
	case *CoverageAnalysisMutation:
		return c.CoverageAnalysis.mutate(ctx, m)
	case *EditorialGapMutation:
		return c.EditorialGap.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *PerformanceMetricMutation:
		return c.PerformanceMetric.mutate(ctx, m)
	case *SiteProfileMutation:
		return c.SiteProfile.mutate(ctx, m)
	case *TopicClusterMutation:
		return c.TopicCluster.mutate(ctx, m)
	case *TopicOutlierMutation:
		return c.TopicOutlier.mutate(ctx, m)
	case *TopicTemporalMetricsMutation:
		return c.TopicTemporalMetrics.mutate(ctx, m)
	case *TrendAnalysisMutation:
		return c.TrendAnalysis.mutate(ctx, m)
	case *TrendPipelineExecutionMutation:
		return c.TrendPipelineExecution.mutate(ctx, m)
	case *WorkflowExecutionMutation:
		return c.WorkflowExecution.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArticleRecommendationClient is a client for the ArticleRecommendation schema.
type ArticleRecommendationClient struct {
	config
}

// NewArticleRecommendationClient returns a client for the ArticleRecommendation from the given config.
func NewArticleRecommendationClient(c config) *ArticleRecommendationClient {
	return &ArticleRecommendationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `articlerecommendation.Hooks(f(g(h())))`.
func (c *ArticleRecommendationClient) Use(hooks ...Hook) {
	c.hooks.ArticleRecommendation = append(c.hooks.ArticleRecommendation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `articlerecommendation.Intercept(f(g(h())))`.
func (c *ArticleRecommendationClient) Intercept(interceptors ...Interceptor) {
	c.inters.ArticleRecommendation = append(c.inters.ArticleRecommendation, interceptors...)
}

// Create returns a builder for creating a ArticleRecommendation entity.
func (c *ArticleRecommendationClient) Create() *ArticleRecommendationCreate {
	mutation := newArticleRecommendationMutation(c.config, OpCreate)
	return &ArticleRecommendationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ArticleRecommendation entities.
func (c *ArticleRecommendationClient) CreateBulk(builders ...*ArticleRecommendationCreate) *ArticleRecommendationCreateBulk {
	return &ArticleRecommendationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArticleRecommendationClient) MapCreateBulk(slice any, setFunc func(*ArticleRecommendationCreate, int)) *ArticleRecommendationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArticleRecommendationCreateBulk{err: fmt.Errorf("calling to ArticleRecommendationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArticleRecommendationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArticleRecommendationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ArticleRecommendation.
func (c *ArticleRecommendationClient) Update() *ArticleRecommendationUpdate {
	mutation := newArticleRecommendationMutation(c.config, OpUpdate)
	return &ArticleRecommendationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArticleRecommendationClient) UpdateOne(_m *ArticleRecommendation) *ArticleRecommendationUpdateOne {
	mutation := newArticleRecommendationMutation(c.config, OpUpdateOne, withArticleRecommendation(_m))
	return &ArticleRecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArticleRecommendationClient) UpdateOneID(id int) *ArticleRecommendationUpdateOne {
	mutation := newArticleRecommendationMutation(c.config, OpUpdateOne, withArticleRecommendationID(id))
	return &ArticleRecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ArticleRecommendation.
func (c *ArticleRecommendationClient) Delete() *ArticleRecommendationDelete {
	mutation := newArticleRecommendationMutation(c.config, OpDelete)
	return &ArticleRecommendationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArticleRecommendationClient) DeleteOne(_m *ArticleRecommendation) *ArticleRecommendationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArticleRecommendationClient) DeleteOneID(id int) *ArticleRecommendationDeleteOne {
	builder := c.Delete().Where(articlerecommendation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArticleRecommendationDeleteOne{builder}
}

// Query returns a query builder for ArticleRecommendation.
func (c *ArticleRecommendationClient) Query() *ArticleRecommendationQuery {
	return &ArticleRecommendationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArticleRecommendation},
		inters: c.Interceptors(),
	}
}

// Get returns a ArticleRecommendation entity by its id.
func (c *ArticleRecommendationClient) Get(ctx context.Context, id int) (*ArticleRecommendation, error) {
	return c.Query().Where(articlerecommendation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArticleRecommendationClient) GetX(ctx context.Context, id int) *ArticleRecommendation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCluster queries the cluster edge of a ArticleRecommendation.
func (c *ArticleRecommendationClient) QueryCluster(_m *ArticleRecommendation) *TopicClusterQuery {
	query := (&TopicClusterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(articlerecommendation.Table, articlerecommendation.FieldID, id),
			sqlgraph.To(topiccluster.Table, topiccluster.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, articlerecommendation.ClusterTable, articlerecommendation.ClusterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRoadmapEntries queries the roadmap_entries edge of a ArticleRecommendation.
func (c *ArticleRecommendationClient) QueryRoadmapEntries(_m *ArticleRecommendation) *ContentRoadmapQuery {
	query := (&ContentRoadmapClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(articlerecommendation.Table, articlerecommendation.FieldID, id),
			sqlgraph.To(contentroadmap.Table, contentroadmap.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, articlerecommendation.RoadmapEntriesTable, articlerecommendation.RoadmapEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArticleRecommendationClient) Hooks() []Hook {
	return c.hooks.ArticleRecommendation
}

// Interceptors returns the client interceptors.
func (c *ArticleRecommendationClient) Interceptors() []Interceptor {
	return c.inters.ArticleRecommendation
}

func (c *ArticleRecommendationClient) mutate(ctx context.Context, m *ArticleRecommendationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArticleRecommendationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArticleRecommendationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArticleRecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArticleRecommendationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ArticleRecommendation mutation op: %q", m.Op())
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id int) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id int) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id int) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id int) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a AuditLog.
func (c *AuditLogClient) QueryExecution(_m *AuditLog) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditlog.Table, auditlog.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditlog.ExecutionTable, auditlog.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// ClientArticleClient is a client for the ClientArticle schema.
type ClientArticleClient struct {
	config
}

// NewClientArticleClient returns a client for the ClientArticle from the given config.
func NewClientArticleClient(c config) *ClientArticleClient {
	return &ClientArticleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clientarticle.Hooks(f(g(h())))`.
func (c *ClientArticleClient) Use(hooks ...Hook) {
	c.hooks.ClientArticle = append(c.hooks.ClientArticle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clientarticle.Intercept(f(g(h())))`.
func (c *ClientArticleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClientArticle = append(c.inters.ClientArticle, interceptors...)
}

// Create returns a builder for creating a ClientArticle entity.
func (c *ClientArticleClient) Create() *ClientArticleCreate {
	mutation := newClientArticleMutation(c.config, OpCreate)
	return &ClientArticleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClientArticle entities.
func (c *ClientArticleClient) CreateBulk(builders ...*ClientArticleCreate) *ClientArticleCreateBulk {
	return &ClientArticleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClientArticleClient) MapCreateBulk(slice any, setFunc func(*ClientArticleCreate, int)) *ClientArticleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClientArticleCreateBulk{err: fmt.Errorf("calling to ClientArticleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClientArticleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClientArticleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClientArticle.
func (c *ClientArticleClient) Update() *ClientArticleUpdate {
	mutation := newClientArticleMutation(c.config, OpUpdate)
	return &ClientArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClientArticleClient) UpdateOne(_m *ClientArticle) *ClientArticleUpdateOne {
	mutation := newClientArticleMutation(c.config, OpUpdateOne, withClientArticle(_m))
	return &ClientArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClientArticleClient) UpdateOneID(id int) *ClientArticleUpdateOne {
	mutation := newClientArticleMutation(c.config, OpUpdateOne, withClientArticleID(id))
	return &ClientArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClientArticle.
func (c *ClientArticleClient) Delete() *ClientArticleDelete {
	mutation := newClientArticleMutation(c.config, OpDelete)
	return &ClientArticleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClientArticleClient) DeleteOne(_m *ClientArticle) *ClientArticleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClientArticleClient) DeleteOneID(id int) *ClientArticleDeleteOne {
	builder := c.Delete().Where(clientarticle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClientArticleDeleteOne{builder}
}

// Query returns a query builder for ClientArticle.
func (c *ClientArticleClient) Query() *ClientArticleQuery {
	return &ClientArticleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClientArticle},
		inters: c.Interceptors(),
	}
}

// Get returns a ClientArticle entity by its id.
func (c *ClientArticleClient) Get(ctx context.Context, id int) (*ClientArticle, error) {
	return c.Query().Where(clientarticle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClientArticleClient) GetX(ctx context.Context, id int) *ClientArticle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySiteProfile queries the site_profile edge of a ClientArticle.
func (c *ClientArticleClient) QuerySiteProfile(_m *ClientArticle) *SiteProfileQuery {
	query := (&SiteProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clientarticle.Table, clientarticle.FieldID, id),
			sqlgraph.To(siteprofile.Table, siteprofile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clientarticle.SiteProfileTable, clientarticle.SiteProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClientArticleClient) Hooks() []Hook {
	return c.hooks.ClientArticle
}

// Interceptors returns the client interceptors.
func (c *ClientArticleClient) Interceptors() []Interceptor {
	return c.inters.ClientArticle
}

func (c *ClientArticleClient) mutate(ctx context.Context, m *ClientArticleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClientArticleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClientArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClientArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClientArticleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClientArticle mutation op: %q", m.Op())
	}
}

// ClientStrengthClient is a client for the ClientStrength schema.
type ClientStrengthClient struct {
	config
}

// NewClientStrengthClient returns a client for the ClientStrength from the given config.
func NewClientStrengthClient(c config) *ClientStrengthClient {
	return &ClientStrengthClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clientstrength.Hooks(f(g(h())))`.
func (c *ClientStrengthClient) Use(hooks ...Hook) {
	c.hooks.ClientStrength = append(c.hooks.ClientStrength, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clientstrength.Intercept(f(g(h())))`.
func (c *ClientStrengthClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClientStrength = append(c.inters.ClientStrength, interceptors...)
}

// Create returns a builder for creating a ClientStrength entity.
func (c *ClientStrengthClient) Create() *ClientStrengthCreate {
	mutation := newClientStrengthMutation(c.config, OpCreate)
	return &ClientStrengthCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClientStrength entities.
func (c *ClientStrengthClient) CreateBulk(builders ...*ClientStrengthCreate) *ClientStrengthCreateBulk {
	return &ClientStrengthCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClientStrengthClient) MapCreateBulk(slice any, setFunc func(*ClientStrengthCreate, int)) *ClientStrengthCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClientStrengthCreateBulk{err: fmt.Errorf("calling to ClientStrengthClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClientStrengthCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClientStrengthCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClientStrength.
func (c *ClientStrengthClient) Update() *ClientStrengthUpdate {
	mutation := newClientStrengthMutation(c.config, OpUpdate)
	return &ClientStrengthUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClientStrengthClient) UpdateOne(_m *ClientStrength) *ClientStrengthUpdateOne {
	mutation := newClientStrengthMutation(c.config, OpUpdateOne, withClientStrength(_m))
	return &ClientStrengthUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClientStrengthClient) UpdateOneID(id int) *ClientStrengthUpdateOne {
	mutation := newClientStrengthMutation(c.config, OpUpdateOne, withClientStrengthID(id))
	return &ClientStrengthUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClientStrength.
func (c *ClientStrengthClient) Delete() *ClientStrengthDelete {
	mutation := newClientStrengthMutation(c.config, OpDelete)
	return &ClientStrengthDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClientStrengthClient) DeleteOne(_m *ClientStrength) *ClientStrengthDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClientStrengthClient) DeleteOneID(id int) *ClientStrengthDeleteOne {
	builder := c.Delete().Where(clientstrength.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClientStrengthDeleteOne{builder}
}

// Query returns a query builder for ClientStrength.
func (c *ClientStrengthClient) Query() *ClientStrengthQuery {
	return &ClientStrengthQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClientStrength},
		inters: c.Interceptors(),
	}
}

// Get returns a ClientStrength entity by its id.
func (c *ClientStrengthClient) Get(ctx context.Context, id int) (*ClientStrength, error) {
	return c.Query().Where(clientstrength.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClientStrengthClient) GetX(ctx context.Context, id int) *ClientStrength {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCluster queries the cluster edge of a ClientStrength.
func (c *ClientStrengthClient) QueryCluster(_m *ClientStrength) *TopicClusterQuery {
	query := (&TopicClusterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clientstrength.Table, clientstrength.FieldID, id),
			sqlgraph.To(topiccluster.Table, topiccluster.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clientstrength.ClusterTable, clientstrength.ClusterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClientStrengthClient) Hooks() []Hook {
	return c.hooks.ClientStrength
}

// Interceptors returns the client interceptors.
func (c *ClientStrengthClient) Interceptors() []Interceptor {
	return c.inters.ClientStrength
}

func (c *ClientStrengthClient) mutate(ctx context.Context, m *ClientStrengthMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClientStrengthCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClientStrengthUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClientStrengthUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClientStrengthDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClientStrength mutation op: %q", m.Op())
	}
}

// CompetitorClient is a client for the Competitor schema.
type CompetitorClient struct {
	config
}

// NewCompetitorClient returns a client for the Competitor from the given config.
func NewCompetitorClient(c config) *CompetitorClient {
	return &CompetitorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `competitor.Hooks(f(g(h())))`.
func (c *CompetitorClient) Use(hooks ...Hook) {
	c.hooks.Competitor = append(c.hooks.Competitor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `competitor.Intercept(f(g(h())))`.
func (c *CompetitorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Competitor = append(c.inters.Competitor, interceptors...)
}

// Create returns a builder for creating a Competitor entity.
func (c *CompetitorClient) Create() *CompetitorCreate {
	mutation := newCompetitorMutation(c.config, OpCreate)
	return &CompetitorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Competitor entities.
func (c *CompetitorClient) CreateBulk(builders ...*CompetitorCreate) *CompetitorCreateBulk {
	return &CompetitorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompetitorClient) MapCreateBulk(slice any, setFunc func(*CompetitorCreate, int)) *CompetitorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompetitorCreateBulk{err: fmt.Errorf("calling to CompetitorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompetitorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompetitorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Competitor.
func (c *CompetitorClient) Update() *CompetitorUpdate {
	mutation := newCompetitorMutation(c.config, OpUpdate)
	return &CompetitorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompetitorClient) UpdateOne(_m *Competitor) *CompetitorUpdateOne {
	mutation := newCompetitorMutation(c.config, OpUpdateOne, withCompetitor(_m))
	return &CompetitorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompetitorClient) UpdateOneID(id int) *CompetitorUpdateOne {
	mutation := newCompetitorMutation(c.config, OpUpdateOne, withCompetitorID(id))
	return &CompetitorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Competitor.
func (c *CompetitorClient) Delete() *CompetitorDelete {
	mutation := newCompetitorMutation(c.config, OpDelete)
	return &CompetitorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompetitorClient) DeleteOne(_m *Competitor) *CompetitorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompetitorClient) DeleteOneID(id int) *CompetitorDeleteOne {
	builder := c.Delete().Where(competitor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompetitorDeleteOne{builder}
}

// Query returns a query builder for Competitor.
func (c *CompetitorClient) Query() *CompetitorQuery {
	return &CompetitorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompetitor},
		inters: c.Interceptors(),
	}
}

// Get returns a Competitor entity by its id.
func (c *CompetitorClient) Get(ctx context.Context, id int) (*Competitor, error) {
	return c.Query().Where(competitor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompetitorClient) GetX(ctx context.Context, id int) *Competitor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompetitorClient) Hooks() []Hook {
	return c.hooks.Competitor
}

// Interceptors returns the client interceptors.
func (c *CompetitorClient) Interceptors() []Interceptor {
	return c.inters.Competitor
}

func (c *CompetitorClient) mutate(ctx context.Context, m *CompetitorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompetitorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompetitorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompetitorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompetitorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Competitor mutation op: %q", m.Op())
	}
}

// CompetitorArticleClient is a client for the CompetitorArticle schema.
type CompetitorArticleClient struct {
	config
}

// NewCompetitorArticleClient returns a client for the CompetitorArticle from the given config.
func NewCompetitorArticleClient(c config) *CompetitorArticleClient {
	return &CompetitorArticleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `competitorarticle.Hooks(f(g(h())))`.
func (c *CompetitorArticleClient) Use(hooks ...Hook) {
	c.hooks.CompetitorArticle = append(c.hooks.CompetitorArticle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `competitorarticle.Intercept(f(g(h())))`.
func (c *CompetitorArticleClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompetitorArticle = append(c.inters.CompetitorArticle, interceptors...)
}

// Create returns a builder for creating a CompetitorArticle entity.
func (c *CompetitorArticleClient) Create() *CompetitorArticleCreate {
	mutation := newCompetitorArticleMutation(c.config, OpCreate)
	return &CompetitorArticleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompetitorArticle entities.
func (c *CompetitorArticleClient) CreateBulk(builders ...*CompetitorArticleCreate) *CompetitorArticleCreateBulk {
	return &CompetitorArticleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompetitorArticleClient) MapCreateBulk(slice any, setFunc func(*CompetitorArticleCreate, int)) *CompetitorArticleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompetitorArticleCreateBulk{err: fmt.Errorf("calling to CompetitorArticleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompetitorArticleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompetitorArticleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompetitorArticle.
func (c *CompetitorArticleClient) Update() *CompetitorArticleUpdate {
	mutation := newCompetitorArticleMutation(c.config, OpUpdate)
	return &CompetitorArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompetitorArticleClient) UpdateOne(_m *CompetitorArticle) *CompetitorArticleUpdateOne {
	mutation := newCompetitorArticleMutation(c.config, OpUpdateOne, withCompetitorArticle(_m))
	return &CompetitorArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompetitorArticleClient) UpdateOneID(id int) *CompetitorArticleUpdateOne {
	mutation := newCompetitorArticleMutation(c.config, OpUpdateOne, withCompetitorArticleID(id))
	return &CompetitorArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompetitorArticle.
func (c *CompetitorArticleClient) Delete() *CompetitorArticleDelete {
	mutation := newCompetitorArticleMutation(c.config, OpDelete)
	return &CompetitorArticleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompetitorArticleClient) DeleteOne(_m *CompetitorArticle) *CompetitorArticleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompetitorArticleClient) DeleteOneID(id int) *CompetitorArticleDeleteOne {
	builder := c.Delete().Where(competitorarticle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompetitorArticleDeleteOne{builder}
}

// Query returns a query builder for CompetitorArticle.
func (c *CompetitorArticleClient) Query() *CompetitorArticleQuery {
	return &CompetitorArticleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompetitorArticle},
		inters: c.Interceptors(),
	}
}

// Get returns a CompetitorArticle entity by its id.
func (c *CompetitorArticleClient) Get(ctx context.Context, id int) (*CompetitorArticle, error) {
	return c.Query().Where(competitorarticle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompetitorArticleClient) GetX(ctx context.Context, id int) *CompetitorArticle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompetitorArticleClient) Hooks() []Hook {
	return c.hooks.CompetitorArticle
}

// Interceptors returns the client interceptors.
func (c *CompetitorArticleClient) Interceptors() []Interceptor {
	return c.inters.CompetitorArticle
}

func (c *CompetitorArticleClient) mutate(ctx context.Context, m *CompetitorArticleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompetitorArticleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompetitorArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompetitorArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompetitorArticleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompetitorArticle mutation op: %q", m.Op())
	}
}

// ContentRoadmapClient is a client for the ContentRoadmap schema.
type ContentRoadmapClient struct {
	config
}

// NewContentRoadmapClient returns a client for the ContentRoadmap from the given config.
func NewContentRoadmapClient(c config) *ContentRoadmapClient {
	return &ContentRoadmapClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentroadmap.Hooks(f(g(h())))`.
func (c *ContentRoadmapClient) Use(hooks ...Hook) {
	c.hooks.ContentRoadmap = append(c.hooks.ContentRoadmap, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentroadmap.Intercept(f(g(h())))`.
func (c *ContentRoadmapClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentRoadmap = append(c.inters.ContentRoadmap, interceptors...)
}

// Create returns a builder for creating a ContentRoadmap entity.
func (c *ContentRoadmapClient) Create() *ContentRoadmapCreate {
	mutation := newContentRoadmapMutation(c.config, OpCreate)
	return &ContentRoadmapCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentRoadmap entities.
func (c *ContentRoadmapClient) CreateBulk(builders ...*ContentRoadmapCreate) *ContentRoadmapCreateBulk {
	return &ContentRoadmapCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentRoadmapClient) MapCreateBulk(slice any, setFunc func(*ContentRoadmapCreate, int)) *ContentRoadmapCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentRoadmapCreateBulk{err: fmt.Errorf("calling to ContentRoadmapClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentRoadmapCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentRoadmapCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentRoadmap.
func (c *ContentRoadmapClient) Update() *ContentRoadmapUpdate {
	mutation := newContentRoadmapMutation(c.config, OpUpdate)
	return &ContentRoadmapUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentRoadmapClient) UpdateOne(_m *ContentRoadmap) *ContentRoadmapUpdateOne {
	mutation := newContentRoadmapMutation(c.config, OpUpdateOne, withContentRoadmap(_m))
	return &ContentRoadmapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentRoadmapClient) UpdateOneID(id int) *ContentRoadmapUpdateOne {
	mutation := newContentRoadmapMutation(c.config, OpUpdateOne, withContentRoadmapID(id))
	return &ContentRoadmapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentRoadmap.
func (c *ContentRoadmapClient) Delete() *ContentRoadmapDelete {
	mutation := newContentRoadmapMutation(c.config, OpDelete)
	return &ContentRoadmapDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentRoadmapClient) DeleteOne(_m *ContentRoadmap) *ContentRoadmapDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentRoadmapClient) DeleteOneID(id int) *ContentRoadmapDeleteOne {
	builder := c.Delete().Where(contentroadmap.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentRoadmapDeleteOne{builder}
}

// Query returns a query builder for ContentRoadmap.
func (c *ContentRoadmapClient) Query() *ContentRoadmapQuery {
	return &ContentRoadmapQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentRoadmap},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentRoadmap entity by its id.
func (c *ContentRoadmapClient) Get(ctx context.Context, id int) (*ContentRoadmap, error) {
	return c.Query().Where(contentroadmap.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentRoadmapClient) GetX(ctx context.Context, id int) *ContentRoadmap {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGap queries the gap edge of a ContentRoadmap.
func (c *ContentRoadmapClient) QueryGap(_m *ContentRoadmap) *EditorialGapQuery {
	query := (&EditorialGapClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contentroadmap.Table, contentroadmap.FieldID, id),
			sqlgraph.To(editorialgap.Table, editorialgap.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contentroadmap.GapTable, contentroadmap.GapColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecommendation queries the recommendation edge of a ContentRoadmap.
func (c *ContentRoadmapClient) QueryRecommendation(_m *ContentRoadmap) *ArticleRecommendationQuery {
	query := (&ArticleRecommendationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contentroadmap.Table, contentroadmap.FieldID, id),
			sqlgraph.To(articlerecommendation.Table, articlerecommendation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contentroadmap.RecommendationTable, contentroadmap.RecommendationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContentRoadmapClient) Hooks() []Hook {
	return c.hooks.ContentRoadmap
}

// Interceptors returns the client interceptors.
func (c *ContentRoadmapClient) Interceptors() []Interceptor {
	return c.inters.ContentRoadmap
}

func (c *ContentRoadmapClient) mutate(ctx context.Context, m *ContentRoadmapMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentRoadmapCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentRoadmapUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentRoadmapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentRoadmapDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentRoadmap mutation op: %q", m.Op())
	}
}

// CoverageAnalysisClient is a client for the CoverageAnalysis schema.
type CoverageAnalysisClient struct {
	config
}

// NewCoverageAnalysisClient returns a client for the CoverageAnalysis from the given config.
func NewCoverageAnalysisClient(c config) *CoverageAnalysisClient {
	return &CoverageAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coverageanalysis.Hooks(f(g(h())))`.
func (c *CoverageAnalysisClient) Use(hooks ...Hook) {
	c.hooks.CoverageAnalysis = append(c.hooks.CoverageAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coverageanalysis.Intercept(f(g(h())))`.
func (c *CoverageAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.CoverageAnalysis = append(c.inters.CoverageAnalysis, interceptors...)
}

// Create returns a builder for creating a CoverageAnalysis entity.
func (c *CoverageAnalysisClient) Create() *CoverageAnalysisCreate {
	mutation := newCoverageAnalysisMutation(c.config, OpCreate)
	return &CoverageAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CoverageAnalysis entities.
func (c *CoverageAnalysisClient) CreateBulk(builders ...*CoverageAnalysisCreate) *CoverageAnalysisCreateBulk {
	return &CoverageAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CoverageAnalysisClient) MapCreateBulk(slice any, setFunc func(*CoverageAnalysisCreate, int)) *CoverageAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CoverageAnalysisCreateBulk{err: fmt.Errorf("calling to CoverageAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CoverageAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CoverageAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CoverageAnalysis.
func (c *CoverageAnalysisClient) Update() *CoverageAnalysisUpdate {
	mutation := newCoverageAnalysisMutation(c.config, OpUpdate)
	return &CoverageAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CoverageAnalysisClient) UpdateOne(_m *CoverageAnalysis) *CoverageAnalysisUpdateOne {
	mutation := newCoverageAnalysisMutation(c.config, OpUpdateOne, withCoverageAnalysis(_m))
	return &CoverageAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CoverageAnalysisClient) UpdateOneID(id int) *CoverageAnalysisUpdateOne {
	mutation := newCoverageAnalysisMutation(c.config, OpUpdateOne, withCoverageAnalysisID(id))
	return &CoverageAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CoverageAnalysis.
func (c *CoverageAnalysisClient) Delete() *CoverageAnalysisDelete {
	mutation := newCoverageAnalysisMutation(c.config, OpDelete)
	return &CoverageAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CoverageAnalysisClient) DeleteOne(_m *CoverageAnalysis) *CoverageAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CoverageAnalysisClient) DeleteOneID(id int) *CoverageAnalysisDeleteOne {
	builder := c.Delete().Where(coverageanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CoverageAnalysisDeleteOne{builder}
}

// Query returns a query builder for CoverageAnalysis.
func (c *CoverageAnalysisClient) Query() *CoverageAnalysisQuery {
	return &CoverageAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCoverageAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a CoverageAnalysis entity by its id.
func (c *CoverageAnalysisClient) Get(ctx context.Context, id int) (*CoverageAnalysis, error) {
	return c.Query().Where(coverageanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CoverageAnalysisClient) GetX(ctx context.Context, id int) *CoverageAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCluster queries the cluster edge of a CoverageAnalysis.
func (c *CoverageAnalysisClient) QueryCluster(_m *CoverageAnalysis) *TopicClusterQuery {
	query := (&TopicClusterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(coverageanalysis.Table, coverageanalysis.FieldID, id),
			sqlgraph.To(topiccluster.Table, topiccluster.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, coverageanalysis.ClusterTable, coverageanalysis.ClusterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CoverageAnalysisClient) Hooks() []Hook {
	return c.hooks.CoverageAnalysis
}

// Interceptors returns the client interceptors.
func (c *CoverageAnalysisClient) Interceptors() []Interceptor {
	return c.inters.CoverageAnalysis
}

func (c *CoverageAnalysisClient) mutate(ctx context.Context, m *CoverageAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CoverageAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CoverageAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CoverageAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CoverageAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CoverageAnalysis mutation op: %q", m.Op())
	}
}

// EditorialGapClient is a client for the EditorialGap schema.
type EditorialGapClient struct {
	config
}

// NewEditorialGapClient returns a client for the EditorialGap from the given config.
func NewEditorialGapClient(c config) *EditorialGapClient {
	return &EditorialGapClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `editorialgap.Hooks(f(g(h())))`.
func (c *EditorialGapClient) Use(hooks ...Hook) {
	c.hooks.EditorialGap = append(c.hooks.EditorialGap, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `editorialgap.Intercept(f(g(h())))`.
func (c *EditorialGapClient) Intercept(interceptors ...Interceptor) {
	c.inters.EditorialGap = append(c.inters.EditorialGap, interceptors...)
}

// Create returns a builder for creating a EditorialGap entity.
func (c *EditorialGapClient) Create() *EditorialGapCreate {
	mutation := newEditorialGapMutation(c.config, OpCreate)
	return &EditorialGapCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EditorialGap entities.
func (c *EditorialGapClient) CreateBulk(builders ...*EditorialGapCreate) *EditorialGapCreateBulk {
	return &EditorialGapCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EditorialGapClient) MapCreateBulk(slice any, setFunc func(*EditorialGapCreate, int)) *EditorialGapCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EditorialGapCreateBulk{err: fmt.Errorf("calling to EditorialGapClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EditorialGapCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EditorialGapCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EditorialGap.
func (c *EditorialGapClient) Update() *EditorialGapUpdate {
	mutation := newEditorialGapMutation(c.config, OpUpdate)
	return &EditorialGapUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EditorialGapClient) UpdateOne(_m *EditorialGap) *EditorialGapUpdateOne {
	mutation := newEditorialGapMutation(c.config, OpUpdateOne, withEditorialGap(_m))
	return &EditorialGapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EditorialGapClient) UpdateOneID(id int) *EditorialGapUpdateOne {
	mutation := newEditorialGapMutation(c.config, OpUpdateOne, withEditorialGapID(id))
	return &EditorialGapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EditorialGap.
func (c *EditorialGapClient) Delete() *EditorialGapDelete {
	mutation := newEditorialGapMutation(c.config, OpDelete)
	return &EditorialGapDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EditorialGapClient) DeleteOne(_m *EditorialGap) *EditorialGapDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EditorialGapClient) DeleteOneID(id int) *EditorialGapDeleteOne {
	builder := c.Delete().Where(editorialgap.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EditorialGapDeleteOne{builder}
}

// Query returns a query builder for EditorialGap.
func (c *EditorialGapClient) Query() *EditorialGapQuery {
	return &EditorialGapQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEditorialGap},
		inters: c.Interceptors(),
	}
}

// Get returns a EditorialGap entity by its id.
func (c *EditorialGapClient) Get(ctx context.Context, id int) (*EditorialGap, error) {
	return c.Query().Where(editorialgap.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EditorialGapClient) GetX(ctx context.Context, id int) *EditorialGap {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCluster queries the cluster edge of a EditorialGap.
func (c *EditorialGapClient) QueryCluster(_m *EditorialGap) *TopicClusterQuery {
	query := (&TopicClusterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(editorialgap.Table, editorialgap.FieldID, id),
			sqlgraph.To(topiccluster.Table, topiccluster.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, editorialgap.ClusterTable, editorialgap.ClusterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRoadmapEntries queries the roadmap_entries edge of a EditorialGap.
func (c *EditorialGapClient) QueryRoadmapEntries(_m *EditorialGap) *ContentRoadmapQuery {
	query := (&ContentRoadmapClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(editorialgap.Table, editorialgap.FieldID, id),
			sqlgraph.To(contentroadmap.Table, contentroadmap.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, editorialgap.RoadmapEntriesTable, editorialgap.RoadmapEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EditorialGapClient) Hooks() []Hook {
	return c.hooks.EditorialGap
}

// Interceptors returns the client interceptors.
func (c *EditorialGapClient) Interceptors() []Interceptor {
	return c.inters.EditorialGap
}

func (c *EditorialGapClient) mutate(ctx context.Context, m *EditorialGapMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EditorialGapCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EditorialGapUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EditorialGapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EditorialGapDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EditorialGap mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// PerformanceMetricClient is a client for the PerformanceMetric schema.
type PerformanceMetricClient struct {
	config
}

// NewPerformanceMetricClient returns a client for the PerformanceMetric from the given config.
func NewPerformanceMetricClient(c config) *PerformanceMetricClient {
	return &PerformanceMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `performancemetric.Hooks(f(g(h())))`.
func (c *PerformanceMetricClient) Use(hooks ...Hook) {
	c.hooks.PerformanceMetric = append(c.hooks.PerformanceMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `performancemetric.Intercept(f(g(h())))`.
func (c *PerformanceMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.PerformanceMetric = append(c.inters.PerformanceMetric, interceptors...)
}

// Create returns a builder for creating a PerformanceMetric entity.
func (c *PerformanceMetricClient) Create() *PerformanceMetricCreate {
	mutation := newPerformanceMetricMutation(c.config, OpCreate)
	return &PerformanceMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PerformanceMetric entities.
func (c *PerformanceMetricClient) CreateBulk(builders ...*PerformanceMetricCreate) *PerformanceMetricCreateBulk {
	return &PerformanceMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PerformanceMetricClient) MapCreateBulk(slice any, setFunc func(*PerformanceMetricCreate, int)) *PerformanceMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PerformanceMetricCreateBulk{err: fmt.Errorf("calling to PerformanceMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PerformanceMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PerformanceMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PerformanceMetric.
func (c *PerformanceMetricClient) Update() *PerformanceMetricUpdate {
	mutation := newPerformanceMetricMutation(c.config, OpUpdate)
	return &PerformanceMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PerformanceMetricClient) UpdateOne(_m *PerformanceMetric) *PerformanceMetricUpdateOne {
	mutation := newPerformanceMetricMutation(c.config, OpUpdateOne, withPerformanceMetric(_m))
	return &PerformanceMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PerformanceMetricClient) UpdateOneID(id int) *PerformanceMetricUpdateOne {
	mutation := newPerformanceMetricMutation(c.config, OpUpdateOne, withPerformanceMetricID(id))
	return &PerformanceMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PerformanceMetric.
func (c *PerformanceMetricClient) Delete() *PerformanceMetricDelete {
	mutation := newPerformanceMetricMutation(c.config, OpDelete)
	return &PerformanceMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PerformanceMetricClient) DeleteOne(_m *PerformanceMetric) *PerformanceMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PerformanceMetricClient) DeleteOneID(id int) *PerformanceMetricDeleteOne {
	builder := c.Delete().Where(performancemetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PerformanceMetricDeleteOne{builder}
}

// Query returns a query builder for PerformanceMetric.
func (c *PerformanceMetricClient) Query() *PerformanceMetricQuery {
	return &PerformanceMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePerformanceMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a PerformanceMetric entity by its id.
func (c *PerformanceMetricClient) Get(ctx context.Context, id int) (*PerformanceMetric, error) {
	return c.Query().Where(performancemetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PerformanceMetricClient) GetX(ctx context.Context, id int) *PerformanceMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a PerformanceMetric.
func (c *PerformanceMetricClient) QueryExecution(_m *PerformanceMetric) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(performancemetric.Table, performancemetric.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, performancemetric.ExecutionTable, performancemetric.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PerformanceMetricClient) Hooks() []Hook {
	return c.hooks.PerformanceMetric
}

// Interceptors returns the client interceptors.
func (c *PerformanceMetricClient) Interceptors() []Interceptor {
	return c.inters.PerformanceMetric
}

func (c *PerformanceMetricClient) mutate(ctx context.Context, m *PerformanceMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PerformanceMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PerformanceMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PerformanceMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PerformanceMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PerformanceMetric mutation op: %q", m.Op())
	}
}

// SiteProfileClient is a client for the SiteProfile schema.
type SiteProfileClient struct {
	config
}

// NewSiteProfileClient returns a client for the SiteProfile from the given config.
func NewSiteProfileClient(c config) *SiteProfileClient {
	return &SiteProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `siteprofile.Hooks(f(g(h())))`.
func (c *SiteProfileClient) Use(hooks ...Hook) {
	c.hooks.SiteProfile = append(c.hooks.SiteProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `siteprofile.Intercept(f(g(h())))`.
func (c *SiteProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.SiteProfile = append(c.inters.SiteProfile, interceptors...)
}

// Create returns a builder for creating a SiteProfile entity.
func (c *SiteProfileClient) Create() *SiteProfileCreate {
	mutation := newSiteProfileMutation(c.config, OpCreate)
	return &SiteProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SiteProfile entities.
func (c *SiteProfileClient) CreateBulk(builders ...*SiteProfileCreate) *SiteProfileCreateBulk {
	return &SiteProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SiteProfileClient) MapCreateBulk(slice any, setFunc func(*SiteProfileCreate, int)) *SiteProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SiteProfileCreateBulk{err: fmt.Errorf("calling to SiteProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SiteProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SiteProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SiteProfile.
func (c *SiteProfileClient) Update() *SiteProfileUpdate {
	mutation := newSiteProfileMutation(c.config, OpUpdate)
	return &SiteProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SiteProfileClient) UpdateOne(_m *SiteProfile) *SiteProfileUpdateOne {
	mutation := newSiteProfileMutation(c.config, OpUpdateOne, withSiteProfile(_m))
	return &SiteProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SiteProfileClient) UpdateOneID(id int) *SiteProfileUpdateOne {
	mutation := newSiteProfileMutation(c.config, OpUpdateOne, withSiteProfileID(id))
	return &SiteProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SiteProfile.
func (c *SiteProfileClient) Delete() *SiteProfileDelete {
	mutation := newSiteProfileMutation(c.config, OpDelete)
	return &SiteProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SiteProfileClient) DeleteOne(_m *SiteProfile) *SiteProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SiteProfileClient) DeleteOneID(id int) *SiteProfileDeleteOne {
	builder := c.Delete().Where(siteprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SiteProfileDeleteOne{builder}
}

// Query returns a query builder for SiteProfile.
func (c *SiteProfileClient) Query() *SiteProfileQuery {
	return &SiteProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSiteProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a SiteProfile entity by its id.
func (c *SiteProfileClient) Get(ctx context.Context, id int) (*SiteProfile, error) {
	return c.Query().Where(siteprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SiteProfileClient) GetX(ctx context.Context, id int) *SiteProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClientArticles queries the client_articles edge of a SiteProfile.
func (c *SiteProfileClient) QueryClientArticles(_m *SiteProfile) *ClientArticleQuery {
	query := (&ClientArticleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(siteprofile.Table, siteprofile.FieldID, id),
			sqlgraph.To(clientarticle.Table, clientarticle.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, siteprofile.ClientArticlesTable, siteprofile.ClientArticlesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SiteProfileClient) Hooks() []Hook {
	return c.hooks.SiteProfile
}

// Interceptors returns the client interceptors.
func (c *SiteProfileClient) Interceptors() []Interceptor {
	return c.inters.SiteProfile
}

func (c *SiteProfileClient) mutate(ctx context.Context, m *SiteProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SiteProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SiteProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SiteProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SiteProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SiteProfile mutation op: %q", m.Op())
	}
}

// TopicClusterClient is a client for the TopicCluster schema.
type TopicClusterClient struct {
	config
}

// NewTopicClusterClient returns a client for the TopicCluster from the given config.
func NewTopicClusterClient(c config) *TopicClusterClient {
	return &TopicClusterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topiccluster.Hooks(f(g(h())))`.
func (c *TopicClusterClient) Use(hooks ...Hook) {
	c.hooks.TopicCluster = append(c.hooks.TopicCluster, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topiccluster.Intercept(f(g(h())))`.
func (c *TopicClusterClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicCluster = append(c.inters.TopicCluster, interceptors...)
}

// Create returns a builder for creating a TopicCluster entity.
func (c *TopicClusterClient) Create() *TopicClusterCreate {
	mutation := newTopicClusterMutation(c.config, OpCreate)
	return &TopicClusterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicCluster entities.
func (c *TopicClusterClient) CreateBulk(builders ...*TopicClusterCreate) *TopicClusterCreateBulk {
	return &TopicClusterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicClusterClient) MapCreateBulk(slice any, setFunc func(*TopicClusterCreate, int)) *TopicClusterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicClusterCreateBulk{err: fmt.Errorf("calling to TopicClusterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicClusterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicClusterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicCluster.
func (c *TopicClusterClient) Update() *TopicClusterUpdate {
	mutation := newTopicClusterMutation(c.config, OpUpdate)
	return &TopicClusterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicClusterClient) UpdateOne(_m *TopicCluster) *TopicClusterUpdateOne {
	mutation := newTopicClusterMutation(c.config, OpUpdateOne, withTopicCluster(_m))
	return &TopicClusterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicClusterClient) UpdateOneID(id int) *TopicClusterUpdateOne {
	mutation := newTopicClusterMutation(c.config, OpUpdateOne, withTopicClusterID(id))
	return &TopicClusterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicCluster.
func (c *TopicClusterClient) Delete() *TopicClusterDelete {
	mutation := newTopicClusterMutation(c.config, OpDelete)
	return &TopicClusterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicClusterClient) DeleteOne(_m *TopicCluster) *TopicClusterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicClusterClient) DeleteOneID(id int) *TopicClusterDeleteOne {
	builder := c.Delete().Where(topiccluster.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicClusterDeleteOne{builder}
}

// Query returns a query builder for TopicCluster.
func (c *TopicClusterClient) Query() *TopicClusterQuery {
	return &TopicClusterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicCluster},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicCluster entity by its id.
func (c *TopicClusterClient) Get(ctx context.Context, id int) (*TopicCluster, error) {
	return c.Query().Where(topiccluster.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicClusterClient) GetX(ctx context.Context, id int) *TopicCluster {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnalysis queries the analysis edge of a TopicCluster.
func (c *TopicClusterClient) QueryAnalysis(_m *TopicCluster) *TrendPipelineExecutionQuery {
	query := (&TrendPipelineExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, id),
			sqlgraph.To(trendpipelineexecution.Table, trendpipelineexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, topiccluster.AnalysisTable, topiccluster.AnalysisColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemporalMetrics queries the temporal_metrics edge of a TopicCluster.
func (c *TopicClusterClient) QueryTemporalMetrics(_m *TopicCluster) *TopicTemporalMetricsQuery {
	query := (&TopicTemporalMetricsClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, id),
			sqlgraph.To(topictemporalmetrics.Table, topictemporalmetrics.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topiccluster.TemporalMetricsTable, topiccluster.TemporalMetricsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTrendAnalyses queries the trend_analyses edge of a TopicCluster.
func (c *TopicClusterClient) QueryTrendAnalyses(_m *TopicCluster) *TrendAnalysisQuery {
	query := (&TrendAnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, id),
			sqlgraph.To(trendanalysis.Table, trendanalysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topiccluster.TrendAnalysesTable, topiccluster.TrendAnalysesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecommendations queries the recommendations edge of a TopicCluster.
func (c *TopicClusterClient) QueryRecommendations(_m *TopicCluster) *ArticleRecommendationQuery {
	query := (&ArticleRecommendationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, id),
			sqlgraph.To(articlerecommendation.Table, articlerecommendation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topiccluster.RecommendationsTable, topiccluster.RecommendationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGaps queries the gaps edge of a TopicCluster.
func (c *TopicClusterClient) QueryGaps(_m *TopicCluster) *EditorialGapQuery {
	query := (&EditorialGapClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, id),
			sqlgraph.To(editorialgap.Table, editorialgap.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topiccluster.GapsTable, topiccluster.GapsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStrengths queries the strengths edge of a TopicCluster.
func (c *TopicClusterClient) QueryStrengths(_m *TopicCluster) *ClientStrengthQuery {
	query := (&ClientStrengthClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, id),
			sqlgraph.To(clientstrength.Table, clientstrength.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topiccluster.StrengthsTable, topiccluster.StrengthsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCoverageAnalyses queries the coverage_analyses edge of a TopicCluster.
func (c *TopicClusterClient) QueryCoverageAnalyses(_m *TopicCluster) *CoverageAnalysisQuery {
	query := (&CoverageAnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, id),
			sqlgraph.To(coverageanalysis.Table, coverageanalysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topiccluster.CoverageAnalysesTable, topiccluster.CoverageAnalysesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TopicClusterClient) Hooks() []Hook {
	return c.hooks.TopicCluster
}

// Interceptors returns the client interceptors.
func (c *TopicClusterClient) Interceptors() []Interceptor {
	return c.inters.TopicCluster
}

func (c *TopicClusterClient) mutate(ctx context.Context, m *TopicClusterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicClusterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicClusterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicClusterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicClusterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicCluster mutation op: %q", m.Op())
	}
}

// TopicOutlierClient is a client for the TopicOutlier schema.
type TopicOutlierClient struct {
	config
}

// NewTopicOutlierClient returns a client for the TopicOutlier from the given config.
func NewTopicOutlierClient(c config) *TopicOutlierClient {
	return &TopicOutlierClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicoutlier.Hooks(f(g(h())))`.
func (c *TopicOutlierClient) Use(hooks ...Hook) {
	c.hooks.TopicOutlier = append(c.hooks.TopicOutlier, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicoutlier.Intercept(f(g(h())))`.
func (c *TopicOutlierClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicOutlier = append(c.inters.TopicOutlier, interceptors...)
}

// Create returns a builder for creating a TopicOutlier entity.
func (c *TopicOutlierClient) Create() *TopicOutlierCreate {
	mutation := newTopicOutlierMutation(c.config, OpCreate)
	return &TopicOutlierCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicOutlier entities.
func (c *TopicOutlierClient) CreateBulk(builders ...*TopicOutlierCreate) *TopicOutlierCreateBulk {
	return &TopicOutlierCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicOutlierClient) MapCreateBulk(slice any, setFunc func(*TopicOutlierCreate, int)) *TopicOutlierCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicOutlierCreateBulk{err: fmt.Errorf("calling to TopicOutlierClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicOutlierCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicOutlierCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicOutlier.
func (c *TopicOutlierClient) Update() *TopicOutlierUpdate {
	mutation := newTopicOutlierMutation(c.config, OpUpdate)
	return &TopicOutlierUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicOutlierClient) UpdateOne(_m *TopicOutlier) *TopicOutlierUpdateOne {
	mutation := newTopicOutlierMutation(c.config, OpUpdateOne, withTopicOutlier(_m))
	return &TopicOutlierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicOutlierClient) UpdateOneID(id int) *TopicOutlierUpdateOne {
	mutation := newTopicOutlierMutation(c.config, OpUpdateOne, withTopicOutlierID(id))
	return &TopicOutlierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicOutlier.
func (c *TopicOutlierClient) Delete() *TopicOutlierDelete {
	mutation := newTopicOutlierMutation(c.config, OpDelete)
	return &TopicOutlierDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicOutlierClient) DeleteOne(_m *TopicOutlier) *TopicOutlierDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicOutlierClient) DeleteOneID(id int) *TopicOutlierDeleteOne {
	builder := c.Delete().Where(topicoutlier.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicOutlierDeleteOne{builder}
}

// Query returns a query builder for TopicOutlier.
func (c *TopicOutlierClient) Query() *TopicOutlierQuery {
	return &TopicOutlierQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicOutlier},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicOutlier entity by its id.
func (c *TopicOutlierClient) Get(ctx context.Context, id int) (*TopicOutlier, error) {
	return c.Query().Where(topicoutlier.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicOutlierClient) GetX(ctx context.Context, id int) *TopicOutlier {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnalysis queries the analysis edge of a TopicOutlier.
func (c *TopicOutlierClient) QueryAnalysis(_m *TopicOutlier) *TrendPipelineExecutionQuery {
	query := (&TrendPipelineExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topicoutlier.Table, topicoutlier.FieldID, id),
			sqlgraph.To(trendpipelineexecution.Table, trendpipelineexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, topicoutlier.AnalysisTable, topicoutlier.AnalysisColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TopicOutlierClient) Hooks() []Hook {
	return c.hooks.TopicOutlier
}

// Interceptors returns the client interceptors.
func (c *TopicOutlierClient) Interceptors() []Interceptor {
	return c.inters.TopicOutlier
}

func (c *TopicOutlierClient) mutate(ctx context.Context, m *TopicOutlierMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicOutlierCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicOutlierUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicOutlierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicOutlierDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicOutlier mutation op: %q", m.Op())
	}
}

// TopicTemporalMetricsClient is a client for the TopicTemporalMetrics schema.
type TopicTemporalMetricsClient struct {
	config
}

// NewTopicTemporalMetricsClient returns a client for the TopicTemporalMetrics from the given config.
func NewTopicTemporalMetricsClient(c config) *TopicTemporalMetricsClient {
	return &TopicTemporalMetricsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topictemporalmetrics.Hooks(f(g(h())))`.
func (c *TopicTemporalMetricsClient) Use(hooks ...Hook) {
	c.hooks.TopicTemporalMetrics = append(c.hooks.TopicTemporalMetrics, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topictemporalmetrics.Intercept(f(g(h())))`.
func (c *TopicTemporalMetricsClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicTemporalMetrics = append(c.inters.TopicTemporalMetrics, interceptors...)
}

// Create returns a builder for creating a TopicTemporalMetrics entity.
func (c *TopicTemporalMetricsClient) Create() *TopicTemporalMetricsCreate {
	mutation := newTopicTemporalMetricsMutation(c.config, OpCreate)
	return &TopicTemporalMetricsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicTemporalMetrics entities.
func (c *TopicTemporalMetricsClient) CreateBulk(builders ...*TopicTemporalMetricsCreate) *TopicTemporalMetricsCreateBulk {
	return &TopicTemporalMetricsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicTemporalMetricsClient) MapCreateBulk(slice any, setFunc func(*TopicTemporalMetricsCreate, int)) *TopicTemporalMetricsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicTemporalMetricsCreateBulk{err: fmt.Errorf("calling to TopicTemporalMetricsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicTemporalMetricsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicTemporalMetricsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicTemporalMetrics.
func (c *TopicTemporalMetricsClient) Update() *TopicTemporalMetricsUpdate {
	mutation := newTopicTemporalMetricsMutation(c.config, OpUpdate)
	return &TopicTemporalMetricsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicTemporalMetricsClient) UpdateOne(_m *TopicTemporalMetrics) *TopicTemporalMetricsUpdateOne {
	mutation := newTopicTemporalMetricsMutation(c.config, OpUpdateOne, withTopicTemporalMetrics(_m))
	return &TopicTemporalMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicTemporalMetricsClient) UpdateOneID(id int) *TopicTemporalMetricsUpdateOne {
	mutation := newTopicTemporalMetricsMutation(c.config, OpUpdateOne, withTopicTemporalMetricsID(id))
	return &TopicTemporalMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicTemporalMetrics.
func (c *TopicTemporalMetricsClient) Delete() *TopicTemporalMetricsDelete {
	mutation := newTopicTemporalMetricsMutation(c.config, OpDelete)
	return &TopicTemporalMetricsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicTemporalMetricsClient) DeleteOne(_m *TopicTemporalMetrics) *TopicTemporalMetricsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicTemporalMetricsClient) DeleteOneID(id int) *TopicTemporalMetricsDeleteOne {
	builder := c.Delete().Where(topictemporalmetrics.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicTemporalMetricsDeleteOne{builder}
}

// Query returns a query builder for TopicTemporalMetrics.
func (c *TopicTemporalMetricsClient) Query() *TopicTemporalMetricsQuery {
	return &TopicTemporalMetricsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicTemporalMetrics},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicTemporalMetrics entity by its id.
func (c *TopicTemporalMetricsClient) Get(ctx context.Context, id int) (*TopicTemporalMetrics, error) {
	return c.Query().Where(topictemporalmetrics.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicTemporalMetricsClient) GetX(ctx context.Context, id int) *TopicTemporalMetrics {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCluster queries the cluster edge of a TopicTemporalMetrics.
func (c *TopicTemporalMetricsClient) QueryCluster(_m *TopicTemporalMetrics) *TopicClusterQuery {
	query := (&TopicClusterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topictemporalmetrics.Table, topictemporalmetrics.FieldID, id),
			sqlgraph.To(topiccluster.Table, topiccluster.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, topictemporalmetrics.ClusterTable, topictemporalmetrics.ClusterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TopicTemporalMetricsClient) Hooks() []Hook {
	return c.hooks.TopicTemporalMetrics
}

// Interceptors returns the client interceptors.
func (c *TopicTemporalMetricsClient) Interceptors() []Interceptor {
	return c.inters.TopicTemporalMetrics
}

func (c *TopicTemporalMetricsClient) mutate(ctx context.Context, m *TopicTemporalMetricsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicTemporalMetricsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicTemporalMetricsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicTemporalMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicTemporalMetricsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicTemporalMetrics mutation op: %q", m.Op())
	}
}

// TrendAnalysisClient is a client for the TrendAnalysis schema.
type TrendAnalysisClient struct {
	config
}

// NewTrendAnalysisClient returns a client for the TrendAnalysis from the given config.
func NewTrendAnalysisClient(c config) *TrendAnalysisClient {
	return &TrendAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trendanalysis.Hooks(f(g(h())))`.
func (c *TrendAnalysisClient) Use(hooks ...Hook) {
	c.hooks.TrendAnalysis = append(c.hooks.TrendAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trendanalysis.Intercept(f(g(h())))`.
func (c *TrendAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrendAnalysis = append(c.inters.TrendAnalysis, interceptors...)
}

// Create returns a builder for creating a TrendAnalysis entity.
func (c *TrendAnalysisClient) Create() *TrendAnalysisCreate {
	mutation := newTrendAnalysisMutation(c.config, OpCreate)
	return &TrendAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrendAnalysis entities.
func (c *TrendAnalysisClient) CreateBulk(builders ...*TrendAnalysisCreate) *TrendAnalysisCreateBulk {
	return &TrendAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrendAnalysisClient) MapCreateBulk(slice any, setFunc func(*TrendAnalysisCreate, int)) *TrendAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrendAnalysisCreateBulk{err: fmt.Errorf("calling to TrendAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrendAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrendAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrendAnalysis.
func (c *TrendAnalysisClient) Update() *TrendAnalysisUpdate {
	mutation := newTrendAnalysisMutation(c.config, OpUpdate)
	return &TrendAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrendAnalysisClient) UpdateOne(_m *TrendAnalysis) *TrendAnalysisUpdateOne {
	mutation := newTrendAnalysisMutation(c.config, OpUpdateOne, withTrendAnalysis(_m))
	return &TrendAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrendAnalysisClient) UpdateOneID(id int) *TrendAnalysisUpdateOne {
	mutation := newTrendAnalysisMutation(c.config, OpUpdateOne, withTrendAnalysisID(id))
	return &TrendAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrendAnalysis.
func (c *TrendAnalysisClient) Delete() *TrendAnalysisDelete {
	mutation := newTrendAnalysisMutation(c.config, OpDelete)
	return &TrendAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrendAnalysisClient) DeleteOne(_m *TrendAnalysis) *TrendAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrendAnalysisClient) DeleteOneID(id int) *TrendAnalysisDeleteOne {
	builder := c.Delete().Where(trendanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrendAnalysisDeleteOne{builder}
}

// Query returns a query builder for TrendAnalysis.
func (c *TrendAnalysisClient) Query() *TrendAnalysisQuery {
	return &TrendAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrendAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a TrendAnalysis entity by its id.
func (c *TrendAnalysisClient) Get(ctx context.Context, id int) (*TrendAnalysis, error) {
	return c.Query().Where(trendanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrendAnalysisClient) GetX(ctx context.Context, id int) *TrendAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCluster queries the cluster edge of a TrendAnalysis.
func (c *TrendAnalysisClient) QueryCluster(_m *TrendAnalysis) *TopicClusterQuery {
	query := (&TopicClusterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trendanalysis.Table, trendanalysis.FieldID, id),
			sqlgraph.To(topiccluster.Table, topiccluster.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trendanalysis.ClusterTable, trendanalysis.ClusterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrendAnalysisClient) Hooks() []Hook {
	return c.hooks.TrendAnalysis
}

// Interceptors returns the client interceptors.
func (c *TrendAnalysisClient) Interceptors() []Interceptor {
	return c.inters.TrendAnalysis
}

func (c *TrendAnalysisClient) mutate(ctx context.Context, m *TrendAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrendAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrendAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrendAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrendAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrendAnalysis mutation op: %q", m.Op())
	}
}

// TrendPipelineExecutionClient is a client for the TrendPipelineExecution schema.
type TrendPipelineExecutionClient struct {
	config
}

// NewTrendPipelineExecutionClient returns a client for the TrendPipelineExecution from the given config.
func NewTrendPipelineExecutionClient(c config) *TrendPipelineExecutionClient {
	return &TrendPipelineExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trendpipelineexecution.Hooks(f(g(h())))`.
func (c *TrendPipelineExecutionClient) Use(hooks ...Hook) {
	c.hooks.TrendPipelineExecution = append(c.hooks.TrendPipelineExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trendpipelineexecution.Intercept(f(g(h())))`.
func (c *TrendPipelineExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrendPipelineExecution = append(c.inters.TrendPipelineExecution, interceptors...)
}

// Create returns a builder for creating a TrendPipelineExecution entity.
func (c *TrendPipelineExecutionClient) Create() *TrendPipelineExecutionCreate {
	mutation := newTrendPipelineExecutionMutation(c.config, OpCreate)
	return &TrendPipelineExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrendPipelineExecution entities.
func (c *TrendPipelineExecutionClient) CreateBulk(builders ...*TrendPipelineExecutionCreate) *TrendPipelineExecutionCreateBulk {
	return &TrendPipelineExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrendPipelineExecutionClient) MapCreateBulk(slice any, setFunc func(*TrendPipelineExecutionCreate, int)) *TrendPipelineExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrendPipelineExecutionCreateBulk{err: fmt.Errorf("calling to TrendPipelineExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrendPipelineExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrendPipelineExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrendPipelineExecution.
func (c *TrendPipelineExecutionClient) Update() *TrendPipelineExecutionUpdate {
	mutation := newTrendPipelineExecutionMutation(c.config, OpUpdate)
	return &TrendPipelineExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrendPipelineExecutionClient) UpdateOne(_m *TrendPipelineExecution) *TrendPipelineExecutionUpdateOne {
	mutation := newTrendPipelineExecutionMutation(c.config, OpUpdateOne, withTrendPipelineExecution(_m))
	return &TrendPipelineExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrendPipelineExecutionClient) UpdateOneID(id int) *TrendPipelineExecutionUpdateOne {
	mutation := newTrendPipelineExecutionMutation(c.config, OpUpdateOne, withTrendPipelineExecutionID(id))
	return &TrendPipelineExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrendPipelineExecution.
func (c *TrendPipelineExecutionClient) Delete() *TrendPipelineExecutionDelete {
	mutation := newTrendPipelineExecutionMutation(c.config, OpDelete)
	return &TrendPipelineExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrendPipelineExecutionClient) DeleteOne(_m *TrendPipelineExecution) *TrendPipelineExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrendPipelineExecutionClient) DeleteOneID(id int) *TrendPipelineExecutionDeleteOne {
	builder := c.Delete().Where(trendpipelineexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrendPipelineExecutionDeleteOne{builder}
}

// Query returns a query builder for TrendPipelineExecution.
func (c *TrendPipelineExecutionClient) Query() *TrendPipelineExecutionQuery {
	return &TrendPipelineExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrendPipelineExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a TrendPipelineExecution entity by its id.
func (c *TrendPipelineExecutionClient) Get(ctx context.Context, id int) (*TrendPipelineExecution, error) {
	return c.Query().Where(trendpipelineexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrendPipelineExecutionClient) GetX(ctx context.Context, id int) *TrendPipelineExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClusters queries the clusters edge of a TrendPipelineExecution.
func (c *TrendPipelineExecutionClient) QueryClusters(_m *TrendPipelineExecution) *TopicClusterQuery {
	query := (&TopicClusterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trendpipelineexecution.Table, trendpipelineexecution.FieldID, id),
			sqlgraph.To(topiccluster.Table, topiccluster.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, trendpipelineexecution.ClustersTable, trendpipelineexecution.ClustersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutliers queries the outliers edge of a TrendPipelineExecution.
func (c *TrendPipelineExecutionClient) QueryOutliers(_m *TrendPipelineExecution) *TopicOutlierQuery {
	query := (&TopicOutlierClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trendpipelineexecution.Table, trendpipelineexecution.FieldID, id),
			sqlgraph.To(topicoutlier.Table, topicoutlier.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, trendpipelineexecution.OutliersTable, trendpipelineexecution.OutliersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrendPipelineExecutionClient) Hooks() []Hook {
	return c.hooks.TrendPipelineExecution
}

// Interceptors returns the client interceptors.
func (c *TrendPipelineExecutionClient) Interceptors() []Interceptor {
	return c.inters.TrendPipelineExecution
}

func (c *TrendPipelineExecutionClient) mutate(ctx context.Context, m *TrendPipelineExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrendPipelineExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrendPipelineExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrendPipelineExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrendPipelineExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrendPipelineExecution mutation op: %q", m.Op())
	}
}

// WorkflowExecutionClient is a client for the WorkflowExecution schema.
type WorkflowExecutionClient struct {
	config
}

// NewWorkflowExecutionClient returns a client for the WorkflowExecution from the given config.
func NewWorkflowExecutionClient(c config) *WorkflowExecutionClient {
	return &WorkflowExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowexecution.Hooks(f(g(h())))`.
func (c *WorkflowExecutionClient) Use(hooks ...Hook) {
	c.hooks.WorkflowExecution = append(c.hooks.WorkflowExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowexecution.Intercept(f(g(h())))`.
func (c *WorkflowExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowExecution = append(c.inters.WorkflowExecution, interceptors...)
}

// Create returns a builder for creating a WorkflowExecution entity.
func (c *WorkflowExecutionClient) Create() *WorkflowExecutionCreate {
	mutation := newWorkflowExecutionMutation(c.config, OpCreate)
	return &WorkflowExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowExecution entities.
func (c *WorkflowExecutionClient) CreateBulk(builders ...*WorkflowExecutionCreate) *WorkflowExecutionCreateBulk {
	return &WorkflowExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowExecutionClient) MapCreateBulk(slice any, setFunc func(*WorkflowExecutionCreate, int)) *WorkflowExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowExecutionCreateBulk{err: fmt.Errorf("calling to WorkflowExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Update() *WorkflowExecutionUpdate {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdate)
	return &WorkflowExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowExecutionClient) UpdateOne(_m *WorkflowExecution) *WorkflowExecutionUpdateOne {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdateOne, withWorkflowExecution(_m))
	return &WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowExecutionClient) UpdateOneID(id string) *WorkflowExecutionUpdateOne {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdateOne, withWorkflowExecutionID(id))
	return &WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Delete() *WorkflowExecutionDelete {
	mutation := newWorkflowExecutionMutation(c.config, OpDelete)
	return &WorkflowExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowExecutionClient) DeleteOne(_m *WorkflowExecution) *WorkflowExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowExecutionClient) DeleteOneID(id string) *WorkflowExecutionDeleteOne {
	builder := c.Delete().Where(workflowexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowExecutionDeleteOne{builder}
}

// Query returns a query builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Query() *WorkflowExecutionQuery {
	return &WorkflowExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowExecution entity by its id.
func (c *WorkflowExecutionClient) Get(ctx context.Context, id string) (*WorkflowExecution, error) {
	return c.Query().Where(workflowexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowExecutionClient) GetX(ctx context.Context, id string) *WorkflowExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryParent(_m *WorkflowExecution) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowexecution.ParentTable, workflowexecution.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryChildren(_m *WorkflowExecution) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.ChildrenTable, workflowexecution.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuditLogs queries the audit_logs edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryAuditLogs(_m *WorkflowExecution) *AuditLogQuery {
	query := (&AuditLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(auditlog.Table, auditlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.AuditLogsTable, workflowexecution.AuditLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPerformanceMetrics queries the performance_metrics edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryPerformanceMetrics(_m *WorkflowExecution) *PerformanceMetricQuery {
	query := (&PerformanceMetricClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(performancemetric.Table, performancemetric.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.PerformanceMetricsTable, workflowexecution.PerformanceMetricsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowExecutionClient) Hooks() []Hook {
	return c.hooks.WorkflowExecution
}

// Interceptors returns the client interceptors.
func (c *WorkflowExecutionClient) Interceptors() []Interceptor {
	return c.inters.WorkflowExecution
}

func (c *WorkflowExecutionClient) mutate(ctx context.Context, m *WorkflowExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowExecution mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ArticleRecommendation, AuditLog, ClientArticle, ClientStrength, Competitor,
		CompetitorArticle, ContentRoadmap, CoverageAnalysis, EditorialGap, Event,
		PerformanceMetric, SiteProfile, TopicCluster, TopicOutlier,
		TopicTemporalMetrics, TrendAnalysis, TrendPipelineExecution,
		WorkflowExecution []ent.Hook
	}
	inters struct {
		ArticleRecommendation, AuditLog, ClientArticle, ClientStrength, Competitor,
		CompetitorArticle, ContentRoadmap, CoverageAnalysis, EditorialGap, Event,
		PerformanceMetric, SiteProfile, TopicCluster, TopicOutlier,
		TopicTemporalMetrics, TrendAnalysis, TrendPipelineExecution,
		WorkflowExecution []ent.Interceptor
	}
)
