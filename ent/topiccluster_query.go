// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/clientstrength"
	"github.com/trendscope/trendscope/ent/coverageanalysis"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/topictemporalmetrics"
	"github.com/trendscope/trendscope/ent/trendanalysis"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// TopicClusterQuery is the builder for querying TopicCluster entities.
type TopicClusterQuery struct {
	config
	ctx                  *QueryContext
	order                []topiccluster.OrderOption
	inters               []Interceptor
	predicates           []predicate.TopicCluster
	withAnalysis         *TrendPipelineExecutionQuery
	withTemporalMetrics  *TopicTemporalMetricsQuery
	withTrendAnalyses    *TrendAnalysisQuery
	withRecommendations  *ArticleRecommendationQuery
	withGaps             *EditorialGapQuery
	withStrengths        *ClientStrengthQuery
	withCoverageAnalyses *CoverageAnalysisQuery
	modifiers            []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TopicClusterQuery builder.
func (_q *TopicClusterQuery) Where(ps ...predicate.TopicCluster) *TopicClusterQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TopicClusterQuery) Limit(limit int) *TopicClusterQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TopicClusterQuery) Offset(offset int) *TopicClusterQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TopicClusterQuery) Unique(unique bool) *TopicClusterQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TopicClusterQuery) Order(o ...topiccluster.OrderOption) *TopicClusterQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAnalysis chains the current query on the "analysis" edge.
func (_q *TopicClusterQuery) QueryAnalysis() *TrendPipelineExecutionQuery {
	query := (&TrendPipelineExecutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, selector),
			sqlgraph.To(trendpipelineexecution.Table, trendpipelineexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, topiccluster.AnalysisTable, topiccluster.AnalysisColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTemporalMetrics chains the current query on the "temporal_metrics" edge.
func (_q *TopicClusterQuery) QueryTemporalMetrics() *TopicTemporalMetricsQuery {
	query := (&TopicTemporalMetricsClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, selector),
			sqlgraph.To(topictemporalmetrics.Table, topictemporalmetrics.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topiccluster.TemporalMetricsTable, topiccluster.TemporalMetricsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTrendAnalyses chains the current query on the "trend_analyses" edge.
func (_q *TopicClusterQuery) QueryTrendAnalyses() *TrendAnalysisQuery {
	query := (&TrendAnalysisClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, selector),
			sqlgraph.To(trendanalysis.Table, trendanalysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topiccluster.TrendAnalysesTable, topiccluster.TrendAnalysesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRecommendations chains the current query on the "recommendations" edge.
func (_q *TopicClusterQuery) QueryRecommendations() *ArticleRecommendationQuery {
	query := (&ArticleRecommendationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, selector),
			sqlgraph.To(articlerecommendation.Table, articlerecommendation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topiccluster.RecommendationsTable, topiccluster.RecommendationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGaps chains the current query on the "gaps" edge.
func (_q *TopicClusterQuery) QueryGaps() *EditorialGapQuery {
	query := (&EditorialGapClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, selector),
			sqlgraph.To(editorialgap.Table, editorialgap.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topiccluster.GapsTable, topiccluster.GapsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStrengths chains the current query on the "strengths" edge.
func (_q *TopicClusterQuery) QueryStrengths() *ClientStrengthQuery {
	query := (&ClientStrengthClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, selector),
			sqlgraph.To(clientstrength.Table, clientstrength.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topiccluster.StrengthsTable, topiccluster.StrengthsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCoverageAnalyses chains the current query on the "coverage_analyses" edge.
func (_q *TopicClusterQuery) QueryCoverageAnalyses() *CoverageAnalysisQuery {
	query := (&CoverageAnalysisClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(topiccluster.Table, topiccluster.FieldID, selector),
			sqlgraph.To(coverageanalysis.Table, coverageanalysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topiccluster.CoverageAnalysesTable, topiccluster.CoverageAnalysesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TopicCluster entity from the query.
// Returns a *NotFoundError when no TopicCluster was found.
func (_q *TopicClusterQuery) First(ctx context.Context) (*TopicCluster, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{topiccluster.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TopicClusterQuery) FirstX(ctx context.Context) *TopicCluster {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TopicCluster ID from the query.
// Returns a *NotFoundError when no TopicCluster ID was found.
func (_q *TopicClusterQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{topiccluster.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TopicClusterQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TopicCluster entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TopicCluster entity is found.
// Returns a *NotFoundError when no TopicCluster entities are found.
func (_q *TopicClusterQuery) Only(ctx context.Context) (*TopicCluster, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{topiccluster.Label}
	default:
		return nil, &NotSingularError{topiccluster.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TopicClusterQuery) OnlyX(ctx context.Context) *TopicCluster {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TopicCluster ID in the query.
// Returns a *NotSingularError when more than one TopicCluster ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TopicClusterQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{topiccluster.Label}
	default:
		err = &NotSingularError{topiccluster.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TopicClusterQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TopicClusters.
func (_q *TopicClusterQuery) All(ctx context.Context) ([]*TopicCluster, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TopicCluster, *TopicClusterQuery]()
	return withInterceptors[[]*TopicCluster](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TopicClusterQuery) AllX(ctx context.Context) []*TopicCluster {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TopicCluster IDs.
func (_q *TopicClusterQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(topiccluster.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TopicClusterQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TopicClusterQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TopicClusterQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TopicClusterQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TopicClusterQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *TopicClusterQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TopicClusterQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TopicClusterQuery) Clone() *TopicClusterQuery {
	if _q == nil {
		return nil
	}
	return &TopicClusterQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]topiccluster.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.TopicCluster{}, _q.predicates...),
		withAnalysis:         _q.withAnalysis.Clone(),
		withTemporalMetrics:  _q.withTemporalMetrics.Clone(),
		withTrendAnalyses:    _q.withTrendAnalyses.Clone(),
		withRecommendations:  _q.withRecommendations.Clone(),
		withGaps:             _q.withGaps.Clone(),
		withStrengths:        _q.withStrengths.Clone(),
		withCoverageAnalyses: _q.withCoverageAnalyses.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAnalysis tells the query-builder to eager-load the nodes that are connected to
// the "analysis" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TopicClusterQuery) WithAnalysis(opts ...func(*TrendPipelineExecutionQuery)) *TopicClusterQuery {
	query := (&TrendPipelineExecutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnalysis = query
	return _q
}

// WithTemporalMetrics tells the query-builder to eager-load the nodes that are connected to
// the "temporal_metrics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TopicClusterQuery) WithTemporalMetrics(opts ...func(*TopicTemporalMetricsQuery)) *TopicClusterQuery {
	query := (&TopicTemporalMetricsClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTemporalMetrics = query
	return _q
}

// WithTrendAnalyses tells the query-builder to eager-load the nodes that are connected to
// the "trend_analyses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TopicClusterQuery) WithTrendAnalyses(opts ...func(*TrendAnalysisQuery)) *TopicClusterQuery {
	query := (&TrendAnalysisClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTrendAnalyses = query
	return _q
}

// WithRecommendations tells the query-builder to eager-load the nodes that are connected to
// the "recommendations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TopicClusterQuery) WithRecommendations(opts ...func(*ArticleRecommendationQuery)) *TopicClusterQuery {
	query := (&ArticleRecommendationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecommendations = query
	return _q
}

// WithGaps tells the query-builder to eager-load the nodes that are connected to
// the "gaps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TopicClusterQuery) WithGaps(opts ...func(*EditorialGapQuery)) *TopicClusterQuery {
	query := (&EditorialGapClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGaps = query
	return _q
}

// WithStrengths tells the query-builder to eager-load the nodes that are connected to
// the "strengths" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TopicClusterQuery) WithStrengths(opts ...func(*ClientStrengthQuery)) *TopicClusterQuery {
	query := (&ClientStrengthClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStrengths = query
	return _q
}

// WithCoverageAnalyses tells the query-builder to eager-load the nodes that are connected to
// the "coverage_analyses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TopicClusterQuery) WithCoverageAnalyses(opts ...func(*CoverageAnalysisQuery)) *TopicClusterQuery {
	query := (&CoverageAnalysisClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCoverageAnalyses = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AnalysisID int `json:"analysis_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TopicCluster.Query().
//		GroupBy(topiccluster.FieldAnalysisID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TopicClusterQuery) GroupBy(field string, fields ...string) *TopicClusterGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TopicClusterGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = topiccluster.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AnalysisID int `json:"analysis_id,omitempty"`
//	}
//
//	client.TopicCluster.Query().
//		Select(topiccluster.FieldAnalysisID).
//		Scan(ctx, &v)
func (_q *TopicClusterQuery) Select(fields ...string) *TopicClusterSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TopicClusterSelect{TopicClusterQuery: _q}
	sbuild.label = topiccluster.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TopicClusterSelect configured with the given aggregations.
func (_q *TopicClusterQuery) Aggregate(fns ...AggregateFunc) *TopicClusterSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TopicClusterQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !topiccluster.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *TopicClusterQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TopicCluster, error) {
	var (
		nodes       = []*TopicCluster{}
		_spec       = _q.querySpec()
		loadedTypes = [7]bool{
			_q.withAnalysis != nil,
			_q.withTemporalMetrics != nil,
			_q.withTrendAnalyses != nil,
			_q.withRecommendations != nil,
			_q.withGaps != nil,
			_q.withStrengths != nil,
			_q.withCoverageAnalyses != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TopicCluster).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TopicCluster{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withAnalysis; query != nil {
		if err := _q.loadAnalysis(ctx, query, nodes, nil,
			func(n *TopicCluster, e *TrendPipelineExecution) { n.Edges.Analysis = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTemporalMetrics; query != nil {
		if err := _q.loadTemporalMetrics(ctx, query, nodes,
			func(n *TopicCluster) { n.Edges.TemporalMetrics = []*TopicTemporalMetrics{} },
			func(n *TopicCluster, e *TopicTemporalMetrics) {
				n.Edges.TemporalMetrics = append(n.Edges.TemporalMetrics, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withTrendAnalyses; query != nil {
		if err := _q.loadTrendAnalyses(ctx, query, nodes,
			func(n *TopicCluster) { n.Edges.TrendAnalyses = []*TrendAnalysis{} },
			func(n *TopicCluster, e *TrendAnalysis) { n.Edges.TrendAnalyses = append(n.Edges.TrendAnalyses, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRecommendations; query != nil {
		if err := _q.loadRecommendations(ctx, query, nodes,
			func(n *TopicCluster) { n.Edges.Recommendations = []*ArticleRecommendation{} },
			func(n *TopicCluster, e *ArticleRecommendation) {
				n.Edges.Recommendations = append(n.Edges.Recommendations, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withGaps; query != nil {
		if err := _q.loadGaps(ctx, query, nodes,
			func(n *TopicCluster) { n.Edges.Gaps = []*EditorialGap{} },
			func(n *TopicCluster, e *EditorialGap) { n.Edges.Gaps = append(n.Edges.Gaps, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStrengths; query != nil {
		if err := _q.loadStrengths(ctx, query, nodes,
			func(n *TopicCluster) { n.Edges.Strengths = []*ClientStrength{} },
			func(n *TopicCluster, e *ClientStrength) { n.Edges.Strengths = append(n.Edges.Strengths, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCoverageAnalyses; query != nil {
		if err := _q.loadCoverageAnalyses(ctx, query, nodes,
			func(n *TopicCluster) { n.Edges.CoverageAnalyses = []*CoverageAnalysis{} },
			func(n *TopicCluster, e *CoverageAnalysis) {
				n.Edges.CoverageAnalyses = append(n.Edges.CoverageAnalyses, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TopicClusterQuery) loadAnalysis(ctx context.Context, query *TrendPipelineExecutionQuery, nodes []*TopicCluster, init func(*TopicCluster), assign func(*TopicCluster, *TrendPipelineExecution)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*TopicCluster)
	for i := range nodes {
		fk := nodes[i].AnalysisID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(trendpipelineexecution.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "analysis_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TopicClusterQuery) loadTemporalMetrics(ctx context.Context, query *TopicTemporalMetricsQuery, nodes []*TopicCluster, init func(*TopicCluster), assign func(*TopicCluster, *TopicTemporalMetrics)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TopicCluster)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(topictemporalmetrics.FieldTopicClusterID)
	}
	query.Where(predicate.TopicTemporalMetrics(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(topiccluster.TemporalMetricsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TopicClusterID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "topic_cluster_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TopicClusterQuery) loadTrendAnalyses(ctx context.Context, query *TrendAnalysisQuery, nodes []*TopicCluster, init func(*TopicCluster), assign func(*TopicCluster, *TrendAnalysis)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TopicCluster)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(trendanalysis.FieldTopicClusterID)
	}
	query.Where(predicate.TrendAnalysis(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(topiccluster.TrendAnalysesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TopicClusterID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "topic_cluster_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TopicClusterQuery) loadRecommendations(ctx context.Context, query *ArticleRecommendationQuery, nodes []*TopicCluster, init func(*TopicCluster), assign func(*TopicCluster, *ArticleRecommendation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TopicCluster)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(articlerecommendation.FieldTopicClusterID)
	}
	query.Where(predicate.ArticleRecommendation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(topiccluster.RecommendationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TopicClusterID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "topic_cluster_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TopicClusterQuery) loadGaps(ctx context.Context, query *EditorialGapQuery, nodes []*TopicCluster, init func(*TopicCluster), assign func(*TopicCluster, *EditorialGap)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TopicCluster)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(editorialgap.FieldTopicClusterID)
	}
	query.Where(predicate.EditorialGap(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(topiccluster.GapsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TopicClusterID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "topic_cluster_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TopicClusterQuery) loadStrengths(ctx context.Context, query *ClientStrengthQuery, nodes []*TopicCluster, init func(*TopicCluster), assign func(*TopicCluster, *ClientStrength)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TopicCluster)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(clientstrength.FieldTopicClusterID)
	}
	query.Where(predicate.ClientStrength(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(topiccluster.StrengthsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TopicClusterID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "topic_cluster_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TopicClusterQuery) loadCoverageAnalyses(ctx context.Context, query *CoverageAnalysisQuery, nodes []*TopicCluster, init func(*TopicCluster), assign func(*TopicCluster, *CoverageAnalysis)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TopicCluster)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(coverageanalysis.FieldTopicClusterID)
	}
	query.Where(predicate.CoverageAnalysis(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(topiccluster.CoverageAnalysesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TopicClusterID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "topic_cluster_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TopicClusterQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TopicClusterQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(topiccluster.Table, topiccluster.Columns, sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topiccluster.FieldID)
		for i := range fields {
			if fields[i] != topiccluster.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAnalysis != nil {
			_spec.Node.AddColumnOnce(topiccluster.FieldAnalysisID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *TopicClusterQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(topiccluster.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = topiccluster.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *TopicClusterQuery) ForUpdate(opts ...sql.LockOption) *TopicClusterQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *TopicClusterQuery) ForShare(opts ...sql.LockOption) *TopicClusterQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// TopicClusterGroupBy is the group-by builder for TopicCluster entities.
type TopicClusterGroupBy struct {
	selector
	build *TopicClusterQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TopicClusterGroupBy) Aggregate(fns ...AggregateFunc) *TopicClusterGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TopicClusterGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TopicClusterQuery, *TopicClusterGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TopicClusterGroupBy) sqlScan(ctx context.Context, root *TopicClusterQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TopicClusterSelect is the builder for selecting fields of TopicCluster entities.
type TopicClusterSelect struct {
	*TopicClusterQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TopicClusterSelect) Aggregate(fns ...AggregateFunc) *TopicClusterSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TopicClusterSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TopicClusterQuery, *TopicClusterSelect](ctx, _s.TopicClusterQuery, _s, _s.inters, v)
}

func (_s *TopicClusterSelect) sqlScan(ctx context.Context, root *TopicClusterQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
