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
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/topicoutlier"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// TrendPipelineExecutionQuery is the builder for querying TrendPipelineExecution entities.
type TrendPipelineExecutionQuery struct {
	config
	ctx          *QueryContext
	order        []trendpipelineexecution.OrderOption
	inters       []Interceptor
	predicates   []predicate.TrendPipelineExecution
	withClusters *TopicClusterQuery
	withOutliers *TopicOutlierQuery
	modifiers    []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TrendPipelineExecutionQuery builder.
func (_q *TrendPipelineExecutionQuery) Where(ps ...predicate.TrendPipelineExecution) *TrendPipelineExecutionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TrendPipelineExecutionQuery) Limit(limit int) *TrendPipelineExecutionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TrendPipelineExecutionQuery) Offset(offset int) *TrendPipelineExecutionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TrendPipelineExecutionQuery) Unique(unique bool) *TrendPipelineExecutionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TrendPipelineExecutionQuery) Order(o ...trendpipelineexecution.OrderOption) *TrendPipelineExecutionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryClusters chains the current query on the "clusters" edge.
func (_q *TrendPipelineExecutionQuery) QueryClusters() *TopicClusterQuery {
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
			sqlgraph.From(trendpipelineexecution.Table, trendpipelineexecution.FieldID, selector),
			sqlgraph.To(topiccluster.Table, topiccluster.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, trendpipelineexecution.ClustersTable, trendpipelineexecution.ClustersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOutliers chains the current query on the "outliers" edge.
func (_q *TrendPipelineExecutionQuery) QueryOutliers() *TopicOutlierQuery {
	query := (&TopicOutlierClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(trendpipelineexecution.Table, trendpipelineexecution.FieldID, selector),
			sqlgraph.To(topicoutlier.Table, topicoutlier.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, trendpipelineexecution.OutliersTable, trendpipelineexecution.OutliersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TrendPipelineExecution entity from the query.
// Returns a *NotFoundError when no TrendPipelineExecution was found.
func (_q *TrendPipelineExecutionQuery) First(ctx context.Context) (*TrendPipelineExecution, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{trendpipelineexecution.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TrendPipelineExecutionQuery) FirstX(ctx context.Context) *TrendPipelineExecution {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TrendPipelineExecution ID from the query.
// Returns a *NotFoundError when no TrendPipelineExecution ID was found.
func (_q *TrendPipelineExecutionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{trendpipelineexecution.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TrendPipelineExecutionQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TrendPipelineExecution entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TrendPipelineExecution entity is found.
// Returns a *NotFoundError when no TrendPipelineExecution entities are found.
func (_q *TrendPipelineExecutionQuery) Only(ctx context.Context) (*TrendPipelineExecution, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{trendpipelineexecution.Label}
	default:
		return nil, &NotSingularError{trendpipelineexecution.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TrendPipelineExecutionQuery) OnlyX(ctx context.Context) *TrendPipelineExecution {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TrendPipelineExecution ID in the query.
// Returns a *NotSingularError when more than one TrendPipelineExecution ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TrendPipelineExecutionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{trendpipelineexecution.Label}
	default:
		err = &NotSingularError{trendpipelineexecution.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TrendPipelineExecutionQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TrendPipelineExecutions.
func (_q *TrendPipelineExecutionQuery) All(ctx context.Context) ([]*TrendPipelineExecution, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TrendPipelineExecution, *TrendPipelineExecutionQuery]()
	return withInterceptors[[]*TrendPipelineExecution](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TrendPipelineExecutionQuery) AllX(ctx context.Context) []*TrendPipelineExecution {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TrendPipelineExecution IDs.
func (_q *TrendPipelineExecutionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(trendpipelineexecution.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TrendPipelineExecutionQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TrendPipelineExecutionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TrendPipelineExecutionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TrendPipelineExecutionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TrendPipelineExecutionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TrendPipelineExecutionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TrendPipelineExecutionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TrendPipelineExecutionQuery) Clone() *TrendPipelineExecutionQuery {
	if _q == nil {
		return nil
	}
	return &TrendPipelineExecutionQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]trendpipelineexecution.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.TrendPipelineExecution{}, _q.predicates...),
		withClusters: _q.withClusters.Clone(),
		withOutliers: _q.withOutliers.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithClusters tells the query-builder to eager-load the nodes that are connected to
// the "clusters" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TrendPipelineExecutionQuery) WithClusters(opts ...func(*TopicClusterQuery)) *TrendPipelineExecutionQuery {
	query := (&TopicClusterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withClusters = query
	return _q
}

// WithOutliers tells the query-builder to eager-load the nodes that are connected to
// the "outliers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TrendPipelineExecutionQuery) WithOutliers(opts ...func(*TopicOutlierQuery)) *TrendPipelineExecutionQuery {
	query := (&TopicOutlierClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOutliers = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ExecutionID string `json:"execution_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TrendPipelineExecution.Query().
//		GroupBy(trendpipelineexecution.FieldExecutionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TrendPipelineExecutionQuery) GroupBy(field string, fields ...string) *TrendPipelineExecutionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TrendPipelineExecutionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = trendpipelineexecution.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ExecutionID string `json:"execution_id,omitempty"`
//	}
//
//	client.TrendPipelineExecution.Query().
//		Select(trendpipelineexecution.FieldExecutionID).
//		Scan(ctx, &v)
func (_q *TrendPipelineExecutionQuery) Select(fields ...string) *TrendPipelineExecutionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TrendPipelineExecutionSelect{TrendPipelineExecutionQuery: _q}
	sbuild.label = trendpipelineexecution.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TrendPipelineExecutionSelect configured with the given aggregations.
func (_q *TrendPipelineExecutionQuery) Aggregate(fns ...AggregateFunc) *TrendPipelineExecutionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TrendPipelineExecutionQuery) prepareQuery(ctx context.Context) error {
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
		if !trendpipelineexecution.ValidColumn(f) {
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

func (_q *TrendPipelineExecutionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TrendPipelineExecution, error) {
	var (
		nodes       = []*TrendPipelineExecution{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withClusters != nil,
			_q.withOutliers != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TrendPipelineExecution).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TrendPipelineExecution{config: _q.config}
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
	if query := _q.withClusters; query != nil {
		if err := _q.loadClusters(ctx, query, nodes,
			func(n *TrendPipelineExecution) { n.Edges.Clusters = []*TopicCluster{} },
			func(n *TrendPipelineExecution, e *TopicCluster) { n.Edges.Clusters = append(n.Edges.Clusters, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOutliers; query != nil {
		if err := _q.loadOutliers(ctx, query, nodes,
			func(n *TrendPipelineExecution) { n.Edges.Outliers = []*TopicOutlier{} },
			func(n *TrendPipelineExecution, e *TopicOutlier) { n.Edges.Outliers = append(n.Edges.Outliers, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TrendPipelineExecutionQuery) loadClusters(ctx context.Context, query *TopicClusterQuery, nodes []*TrendPipelineExecution, init func(*TrendPipelineExecution), assign func(*TrendPipelineExecution, *TopicCluster)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TrendPipelineExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(topiccluster.FieldAnalysisID)
	}
	query.Where(predicate.TopicCluster(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(trendpipelineexecution.ClustersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnalysisID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "analysis_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TrendPipelineExecutionQuery) loadOutliers(ctx context.Context, query *TopicOutlierQuery, nodes []*TrendPipelineExecution, init func(*TrendPipelineExecution), assign func(*TrendPipelineExecution, *TopicOutlier)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TrendPipelineExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(topicoutlier.FieldAnalysisID)
	}
	query.Where(predicate.TopicOutlier(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(trendpipelineexecution.OutliersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnalysisID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "analysis_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TrendPipelineExecutionQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *TrendPipelineExecutionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(trendpipelineexecution.Table, trendpipelineexecution.Columns, sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trendpipelineexecution.FieldID)
		for i := range fields {
			if fields[i] != trendpipelineexecution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *TrendPipelineExecutionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(trendpipelineexecution.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = trendpipelineexecution.Columns
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
func (_q *TrendPipelineExecutionQuery) ForUpdate(opts ...sql.LockOption) *TrendPipelineExecutionQuery {
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
func (_q *TrendPipelineExecutionQuery) ForShare(opts ...sql.LockOption) *TrendPipelineExecutionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// TrendPipelineExecutionGroupBy is the group-by builder for TrendPipelineExecution entities.
type TrendPipelineExecutionGroupBy struct {
	selector
	build *TrendPipelineExecutionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TrendPipelineExecutionGroupBy) Aggregate(fns ...AggregateFunc) *TrendPipelineExecutionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TrendPipelineExecutionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TrendPipelineExecutionQuery, *TrendPipelineExecutionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TrendPipelineExecutionGroupBy) sqlScan(ctx context.Context, root *TrendPipelineExecutionQuery, v any) error {
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

// TrendPipelineExecutionSelect is the builder for selecting fields of TrendPipelineExecution entities.
type TrendPipelineExecutionSelect struct {
	*TrendPipelineExecutionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TrendPipelineExecutionSelect) Aggregate(fns ...AggregateFunc) *TrendPipelineExecutionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TrendPipelineExecutionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TrendPipelineExecutionQuery, *TrendPipelineExecutionSelect](ctx, _s.TrendPipelineExecutionQuery, _s, _s.inters, v)
}

func (_s *TrendPipelineExecutionSelect) sqlScan(ctx context.Context, root *TrendPipelineExecutionQuery, v any) error {
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
