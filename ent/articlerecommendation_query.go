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
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// ArticleRecommendationQuery is the builder for querying ArticleRecommendation entities.
type ArticleRecommendationQuery struct {
	config
	ctx                *QueryContext
	order              []articlerecommendation.OrderOption
	inters             []Interceptor
	predicates         []predicate.ArticleRecommendation
	withCluster        *TopicClusterQuery
	withRoadmapEntries *ContentRoadmapQuery
	modifiers          []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ArticleRecommendationQuery builder.
func (_q *ArticleRecommendationQuery) Where(ps ...predicate.ArticleRecommendation) *ArticleRecommendationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ArticleRecommendationQuery) Limit(limit int) *ArticleRecommendationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ArticleRecommendationQuery) Offset(offset int) *ArticleRecommendationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ArticleRecommendationQuery) Unique(unique bool) *ArticleRecommendationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ArticleRecommendationQuery) Order(o ...articlerecommendation.OrderOption) *ArticleRecommendationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCluster chains the current query on the "cluster" edge.
func (_q *ArticleRecommendationQuery) QueryCluster() *TopicClusterQuery {
	query := (&TopicClusterClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(articlerecommendation.Table, articlerecommendation.FieldID, selector),
			sqlgraph.To(topiccluster.Table, topiccluster.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, articlerecommendation.ClusterTable, articlerecommendation.ClusterColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRoadmapEntries chains the current query on the "roadmap_entries" edge.
func (_q *ArticleRecommendationQuery) QueryRoadmapEntries() *ContentRoadmapQuery {
	query := (&ContentRoadmapClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(articlerecommendation.Table, articlerecommendation.FieldID, selector),
			sqlgraph.To(contentroadmap.Table, contentroadmap.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, articlerecommendation.RoadmapEntriesTable, articlerecommendation.RoadmapEntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ArticleRecommendation entity from the query.
// Returns a *NotFoundError when no ArticleRecommendation was found.
func (_q *ArticleRecommendationQuery) First(ctx context.Context) (*ArticleRecommendation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{articlerecommendation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ArticleRecommendationQuery) FirstX(ctx context.Context) *ArticleRecommendation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ArticleRecommendation ID from the query.
// Returns a *NotFoundError when no ArticleRecommendation ID was found.
func (_q *ArticleRecommendationQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{articlerecommendation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ArticleRecommendationQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ArticleRecommendation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ArticleRecommendation entity is found.
// Returns a *NotFoundError when no ArticleRecommendation entities are found.
func (_q *ArticleRecommendationQuery) Only(ctx context.Context) (*ArticleRecommendation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{articlerecommendation.Label}
	default:
		return nil, &NotSingularError{articlerecommendation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ArticleRecommendationQuery) OnlyX(ctx context.Context) *ArticleRecommendation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ArticleRecommendation ID in the query.
// Returns a *NotSingularError when more than one ArticleRecommendation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ArticleRecommendationQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{articlerecommendation.Label}
	default:
		err = &NotSingularError{articlerecommendation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ArticleRecommendationQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ArticleRecommendations.
func (_q *ArticleRecommendationQuery) All(ctx context.Context) ([]*ArticleRecommendation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ArticleRecommendation, *ArticleRecommendationQuery]()
	return withInterceptors[[]*ArticleRecommendation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ArticleRecommendationQuery) AllX(ctx context.Context) []*ArticleRecommendation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ArticleRecommendation IDs.
func (_q *ArticleRecommendationQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(articlerecommendation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ArticleRecommendationQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ArticleRecommendationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ArticleRecommendationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ArticleRecommendationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ArticleRecommendationQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ArticleRecommendationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ArticleRecommendationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ArticleRecommendationQuery) Clone() *ArticleRecommendationQuery {
	if _q == nil {
		return nil
	}
	return &ArticleRecommendationQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]articlerecommendation.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.ArticleRecommendation{}, _q.predicates...),
		withCluster:        _q.withCluster.Clone(),
		withRoadmapEntries: _q.withRoadmapEntries.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCluster tells the query-builder to eager-load the nodes that are connected to
// the "cluster" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ArticleRecommendationQuery) WithCluster(opts ...func(*TopicClusterQuery)) *ArticleRecommendationQuery {
	query := (&TopicClusterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCluster = query
	return _q
}

// WithRoadmapEntries tells the query-builder to eager-load the nodes that are connected to
// the "roadmap_entries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ArticleRecommendationQuery) WithRoadmapEntries(opts ...func(*ContentRoadmapQuery)) *ArticleRecommendationQuery {
	query := (&ContentRoadmapClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRoadmapEntries = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TopicClusterID int `json:"topic_cluster_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ArticleRecommendation.Query().
//		GroupBy(articlerecommendation.FieldTopicClusterID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ArticleRecommendationQuery) GroupBy(field string, fields ...string) *ArticleRecommendationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ArticleRecommendationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = articlerecommendation.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TopicClusterID int `json:"topic_cluster_id,omitempty"`
//	}
//
//	client.ArticleRecommendation.Query().
//		Select(articlerecommendation.FieldTopicClusterID).
//		Scan(ctx, &v)
func (_q *ArticleRecommendationQuery) Select(fields ...string) *ArticleRecommendationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ArticleRecommendationSelect{ArticleRecommendationQuery: _q}
	sbuild.label = articlerecommendation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ArticleRecommendationSelect configured with the given aggregations.
func (_q *ArticleRecommendationQuery) Aggregate(fns ...AggregateFunc) *ArticleRecommendationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ArticleRecommendationQuery) prepareQuery(ctx context.Context) error {
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
		if !articlerecommendation.ValidColumn(f) {
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

func (_q *ArticleRecommendationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ArticleRecommendation, error) {
	var (
		nodes       = []*ArticleRecommendation{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withCluster != nil,
			_q.withRoadmapEntries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ArticleRecommendation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ArticleRecommendation{config: _q.config}
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
	if query := _q.withCluster; query != nil {
		if err := _q.loadCluster(ctx, query, nodes, nil,
			func(n *ArticleRecommendation, e *TopicCluster) { n.Edges.Cluster = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRoadmapEntries; query != nil {
		if err := _q.loadRoadmapEntries(ctx, query, nodes,
			func(n *ArticleRecommendation) { n.Edges.RoadmapEntries = []*ContentRoadmap{} },
			func(n *ArticleRecommendation, e *ContentRoadmap) {
				n.Edges.RoadmapEntries = append(n.Edges.RoadmapEntries, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ArticleRecommendationQuery) loadCluster(ctx context.Context, query *TopicClusterQuery, nodes []*ArticleRecommendation, init func(*ArticleRecommendation), assign func(*ArticleRecommendation, *TopicCluster)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ArticleRecommendation)
	for i := range nodes {
		fk := nodes[i].TopicClusterID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(topiccluster.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "topic_cluster_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ArticleRecommendationQuery) loadRoadmapEntries(ctx context.Context, query *ContentRoadmapQuery, nodes []*ArticleRecommendation, init func(*ArticleRecommendation), assign func(*ArticleRecommendation, *ContentRoadmap)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ArticleRecommendation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(contentroadmap.FieldRecommendationID)
	}
	query.Where(predicate.ContentRoadmap(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(articlerecommendation.RoadmapEntriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RecommendationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "recommendation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ArticleRecommendationQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *ArticleRecommendationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(articlerecommendation.Table, articlerecommendation.Columns, sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, articlerecommendation.FieldID)
		for i := range fields {
			if fields[i] != articlerecommendation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCluster != nil {
			_spec.Node.AddColumnOnce(articlerecommendation.FieldTopicClusterID)
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

func (_q *ArticleRecommendationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(articlerecommendation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = articlerecommendation.Columns
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
func (_q *ArticleRecommendationQuery) ForUpdate(opts ...sql.LockOption) *ArticleRecommendationQuery {
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
func (_q *ArticleRecommendationQuery) ForShare(opts ...sql.LockOption) *ArticleRecommendationQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ArticleRecommendationGroupBy is the group-by builder for ArticleRecommendation entities.
type ArticleRecommendationGroupBy struct {
	selector
	build *ArticleRecommendationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ArticleRecommendationGroupBy) Aggregate(fns ...AggregateFunc) *ArticleRecommendationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ArticleRecommendationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ArticleRecommendationQuery, *ArticleRecommendationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ArticleRecommendationGroupBy) sqlScan(ctx context.Context, root *ArticleRecommendationQuery, v any) error {
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

// ArticleRecommendationSelect is the builder for selecting fields of ArticleRecommendation entities.
type ArticleRecommendationSelect struct {
	*ArticleRecommendationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ArticleRecommendationSelect) Aggregate(fns ...AggregateFunc) *ArticleRecommendationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ArticleRecommendationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ArticleRecommendationQuery, *ArticleRecommendationSelect](ctx, _s.ArticleRecommendationQuery, _s, _s.inters, v)
}

func (_s *ArticleRecommendationSelect) sqlScan(ctx context.Context, root *ArticleRecommendationQuery, v any) error {
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
