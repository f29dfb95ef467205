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
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// EditorialGapQuery is the builder for querying EditorialGap entities.
type EditorialGapQuery struct {
	config
	ctx                *QueryContext
	order              []editorialgap.OrderOption
	inters             []Interceptor
	predicates         []predicate.EditorialGap
	withCluster        *TopicClusterQuery
	withRoadmapEntries *ContentRoadmapQuery
	modifiers          []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EditorialGapQuery builder.
func (_q *EditorialGapQuery) Where(ps ...predicate.EditorialGap) *EditorialGapQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EditorialGapQuery) Limit(limit int) *EditorialGapQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EditorialGapQuery) Offset(offset int) *EditorialGapQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EditorialGapQuery) Unique(unique bool) *EditorialGapQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EditorialGapQuery) Order(o ...editorialgap.OrderOption) *EditorialGapQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCluster chains the current query on the "cluster" edge.
func (_q *EditorialGapQuery) QueryCluster() *TopicClusterQuery {
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
			sqlgraph.From(editorialgap.Table, editorialgap.FieldID, selector),
			sqlgraph.To(topiccluster.Table, topiccluster.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, editorialgap.ClusterTable, editorialgap.ClusterColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRoadmapEntries chains the current query on the "roadmap_entries" edge.
func (_q *EditorialGapQuery) QueryRoadmapEntries() *ContentRoadmapQuery {
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
			sqlgraph.From(editorialgap.Table, editorialgap.FieldID, selector),
			sqlgraph.To(contentroadmap.Table, contentroadmap.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, editorialgap.RoadmapEntriesTable, editorialgap.RoadmapEntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first EditorialGap entity from the query.
// Returns a *NotFoundError when no EditorialGap was found.
func (_q *EditorialGapQuery) First(ctx context.Context) (*EditorialGap, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{editorialgap.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EditorialGapQuery) FirstX(ctx context.Context) *EditorialGap {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EditorialGap ID from the query.
// Returns a *NotFoundError when no EditorialGap ID was found.
func (_q *EditorialGapQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{editorialgap.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EditorialGapQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EditorialGap entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EditorialGap entity is found.
// Returns a *NotFoundError when no EditorialGap entities are found.
func (_q *EditorialGapQuery) Only(ctx context.Context) (*EditorialGap, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{editorialgap.Label}
	default:
		return nil, &NotSingularError{editorialgap.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EditorialGapQuery) OnlyX(ctx context.Context) *EditorialGap {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EditorialGap ID in the query.
// Returns a *NotSingularError when more than one EditorialGap ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EditorialGapQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{editorialgap.Label}
	default:
		err = &NotSingularError{editorialgap.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EditorialGapQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EditorialGaps.
func (_q *EditorialGapQuery) All(ctx context.Context) ([]*EditorialGap, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EditorialGap, *EditorialGapQuery]()
	return withInterceptors[[]*EditorialGap](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EditorialGapQuery) AllX(ctx context.Context) []*EditorialGap {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EditorialGap IDs.
func (_q *EditorialGapQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(editorialgap.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EditorialGapQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EditorialGapQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EditorialGapQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EditorialGapQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EditorialGapQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *EditorialGapQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EditorialGapQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EditorialGapQuery) Clone() *EditorialGapQuery {
	if _q == nil {
		return nil
	}
	return &EditorialGapQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]editorialgap.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.EditorialGap{}, _q.predicates...),
		withCluster:        _q.withCluster.Clone(),
		withRoadmapEntries: _q.withRoadmapEntries.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCluster tells the query-builder to eager-load the nodes that are connected to
// the "cluster" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EditorialGapQuery) WithCluster(opts ...func(*TopicClusterQuery)) *EditorialGapQuery {
	query := (&TopicClusterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCluster = query
	return _q
}

// WithRoadmapEntries tells the query-builder to eager-load the nodes that are connected to
// the "roadmap_entries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EditorialGapQuery) WithRoadmapEntries(opts ...func(*ContentRoadmapQuery)) *EditorialGapQuery {
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
//		ClientDomain string `json:"client_domain,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.EditorialGap.Query().
//		GroupBy(editorialgap.FieldClientDomain).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EditorialGapQuery) GroupBy(field string, fields ...string) *EditorialGapGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EditorialGapGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = editorialgap.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ClientDomain string `json:"client_domain,omitempty"`
//	}
//
//	client.EditorialGap.Query().
//		Select(editorialgap.FieldClientDomain).
//		Scan(ctx, &v)
func (_q *EditorialGapQuery) Select(fields ...string) *EditorialGapSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EditorialGapSelect{EditorialGapQuery: _q}
	sbuild.label = editorialgap.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EditorialGapSelect configured with the given aggregations.
func (_q *EditorialGapQuery) Aggregate(fns ...AggregateFunc) *EditorialGapSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EditorialGapQuery) prepareQuery(ctx context.Context) error {
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
		if !editorialgap.ValidColumn(f) {
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

func (_q *EditorialGapQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EditorialGap, error) {
	var (
		nodes       = []*EditorialGap{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withCluster != nil,
			_q.withRoadmapEntries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EditorialGap).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EditorialGap{config: _q.config}
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
			func(n *EditorialGap, e *TopicCluster) { n.Edges.Cluster = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRoadmapEntries; query != nil {
		if err := _q.loadRoadmapEntries(ctx, query, nodes,
			func(n *EditorialGap) { n.Edges.RoadmapEntries = []*ContentRoadmap{} },
			func(n *EditorialGap, e *ContentRoadmap) { n.Edges.RoadmapEntries = append(n.Edges.RoadmapEntries, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EditorialGapQuery) loadCluster(ctx context.Context, query *TopicClusterQuery, nodes []*EditorialGap, init func(*EditorialGap), assign func(*EditorialGap, *TopicCluster)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*EditorialGap)
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
func (_q *EditorialGapQuery) loadRoadmapEntries(ctx context.Context, query *ContentRoadmapQuery, nodes []*EditorialGap, init func(*EditorialGap), assign func(*EditorialGap, *ContentRoadmap)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*EditorialGap)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(contentroadmap.FieldGapID)
	}
	query.Where(predicate.ContentRoadmap(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(editorialgap.RoadmapEntriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.GapID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "gap_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *EditorialGapQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *EditorialGapQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(editorialgap.Table, editorialgap.Columns, sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, editorialgap.FieldID)
		for i := range fields {
			if fields[i] != editorialgap.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCluster != nil {
			_spec.Node.AddColumnOnce(editorialgap.FieldTopicClusterID)
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

func (_q *EditorialGapQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(editorialgap.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = editorialgap.Columns
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
func (_q *EditorialGapQuery) ForUpdate(opts ...sql.LockOption) *EditorialGapQuery {
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
func (_q *EditorialGapQuery) ForShare(opts ...sql.LockOption) *EditorialGapQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// EditorialGapGroupBy is the group-by builder for EditorialGap entities.
type EditorialGapGroupBy struct {
	selector
	build *EditorialGapQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EditorialGapGroupBy) Aggregate(fns ...AggregateFunc) *EditorialGapGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EditorialGapGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EditorialGapQuery, *EditorialGapGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EditorialGapGroupBy) sqlScan(ctx context.Context, root *EditorialGapQuery, v any) error {
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

// EditorialGapSelect is the builder for selecting fields of EditorialGap entities.
type EditorialGapSelect struct {
	*EditorialGapQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EditorialGapSelect) Aggregate(fns ...AggregateFunc) *EditorialGapSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EditorialGapSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EditorialGapQuery, *EditorialGapSelect](ctx, _s.EditorialGapQuery, _s, _s.inters, v)
}

func (_s *EditorialGapSelect) sqlScan(ctx context.Context, root *EditorialGapQuery, v any) error {
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
