// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ContentRoadmapQuery is the builder for querying ContentRoadmap entities.
type ContentRoadmapQuery struct {
	config
	ctx                *QueryContext
	order              []contentroadmap.OrderOption
	inters             []Interceptor
	predicates         []predicate.ContentRoadmap
	withGap            *EditorialGapQuery
	withRecommendation *ArticleRecommendationQuery
	modifiers          []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ContentRoadmapQuery builder.
func (_q *ContentRoadmapQuery) Where(ps ...predicate.ContentRoadmap) *ContentRoadmapQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ContentRoadmapQuery) Limit(limit int) *ContentRoadmapQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ContentRoadmapQuery) Offset(offset int) *ContentRoadmapQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ContentRoadmapQuery) Unique(unique bool) *ContentRoadmapQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ContentRoadmapQuery) Order(o ...contentroadmap.OrderOption) *ContentRoadmapQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryGap chains the current query on the "gap" edge.
func (_q *ContentRoadmapQuery) QueryGap() *EditorialGapQuery {
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
			sqlgraph.From(contentroadmap.Table, contentroadmap.FieldID, selector),
			sqlgraph.To(editorialgap.Table, editorialgap.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contentroadmap.GapTable, contentroadmap.GapColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRecommendation chains the current query on the "recommendation" edge.
func (_q *ContentRoadmapQuery) QueryRecommendation() *ArticleRecommendationQuery {
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
			sqlgraph.From(contentroadmap.Table, contentroadmap.FieldID, selector),
			sqlgraph.To(articlerecommendation.Table, articlerecommendation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contentroadmap.RecommendationTable, contentroadmap.RecommendationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ContentRoadmap entity from the query.
// Returns a *NotFoundError when no ContentRoadmap was found.
func (_q *ContentRoadmapQuery) First(ctx context.Context) (*ContentRoadmap, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{contentroadmap.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ContentRoadmapQuery) FirstX(ctx context.Context) *ContentRoadmap {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ContentRoadmap ID from the query.
// Returns a *NotFoundError when no ContentRoadmap ID was found.
func (_q *ContentRoadmapQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{contentroadmap.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ContentRoadmapQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ContentRoadmap entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ContentRoadmap entity is found.
// Returns a *NotFoundError when no ContentRoadmap entities are found.
func (_q *ContentRoadmapQuery) Only(ctx context.Context) (*ContentRoadmap, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{contentroadmap.Label}
	default:
		return nil, &NotSingularError{contentroadmap.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ContentRoadmapQuery) OnlyX(ctx context.Context) *ContentRoadmap {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ContentRoadmap ID in the query.
// Returns a *NotSingularError when more than one ContentRoadmap ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ContentRoadmapQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{contentroadmap.Label}
	default:
		err = &NotSingularError{contentroadmap.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ContentRoadmapQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ContentRoadmaps.
func (_q *ContentRoadmapQuery) All(ctx context.Context) ([]*ContentRoadmap, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ContentRoadmap, *ContentRoadmapQuery]()
	return withInterceptors[[]*ContentRoadmap](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ContentRoadmapQuery) AllX(ctx context.Context) []*ContentRoadmap {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ContentRoadmap IDs.
func (_q *ContentRoadmapQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(contentroadmap.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ContentRoadmapQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ContentRoadmapQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ContentRoadmapQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ContentRoadmapQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ContentRoadmapQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ContentRoadmapQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ContentRoadmapQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ContentRoadmapQuery) Clone() *ContentRoadmapQuery {
	if _q == nil {
		return nil
	}
	return &ContentRoadmapQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]contentroadmap.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.ContentRoadmap{}, _q.predicates...),
		withGap:            _q.withGap.Clone(),
		withRecommendation: _q.withRecommendation.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithGap tells the query-builder to eager-load the nodes that are connected to
// the "gap" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ContentRoadmapQuery) WithGap(opts ...func(*EditorialGapQuery)) *ContentRoadmapQuery {
	query := (&EditorialGapClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGap = query
	return _q
}

// WithRecommendation tells the query-builder to eager-load the nodes that are connected to
// the "recommendation" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ContentRoadmapQuery) WithRecommendation(opts ...func(*ArticleRecommendationQuery)) *ContentRoadmapQuery {
	query := (&ArticleRecommendationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecommendation = query
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
//	client.ContentRoadmap.Query().
//		GroupBy(contentroadmap.FieldClientDomain).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ContentRoadmapQuery) GroupBy(field string, fields ...string) *ContentRoadmapGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ContentRoadmapGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = contentroadmap.Label
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
//	client.ContentRoadmap.Query().
//		Select(contentroadmap.FieldClientDomain).
//		Scan(ctx, &v)
func (_q *ContentRoadmapQuery) Select(fields ...string) *ContentRoadmapSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ContentRoadmapSelect{ContentRoadmapQuery: _q}
	sbuild.label = contentroadmap.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ContentRoadmapSelect configured with the given aggregations.
func (_q *ContentRoadmapQuery) Aggregate(fns ...AggregateFunc) *ContentRoadmapSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ContentRoadmapQuery) prepareQuery(ctx context.Context) error {
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
		if !contentroadmap.ValidColumn(f) {
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

func (_q *ContentRoadmapQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ContentRoadmap, error) {
	var (
		nodes       = []*ContentRoadmap{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withGap != nil,
			_q.withRecommendation != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ContentRoadmap).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ContentRoadmap{config: _q.config}
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
	if query := _q.withGap; query != nil {
		if err := _q.loadGap(ctx, query, nodes, nil,
			func(n *ContentRoadmap, e *EditorialGap) { n.Edges.Gap = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRecommendation; query != nil {
		if err := _q.loadRecommendation(ctx, query, nodes, nil,
			func(n *ContentRoadmap, e *ArticleRecommendation) { n.Edges.Recommendation = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ContentRoadmapQuery) loadGap(ctx context.Context, query *EditorialGapQuery, nodes []*ContentRoadmap, init func(*ContentRoadmap), assign func(*ContentRoadmap, *EditorialGap)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ContentRoadmap)
	for i := range nodes {
		fk := nodes[i].GapID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(editorialgap.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "gap_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ContentRoadmapQuery) loadRecommendation(ctx context.Context, query *ArticleRecommendationQuery, nodes []*ContentRoadmap, init func(*ContentRoadmap), assign func(*ContentRoadmap, *ArticleRecommendation)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ContentRoadmap)
	for i := range nodes {
		fk := nodes[i].RecommendationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(articlerecommendation.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "recommendation_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ContentRoadmapQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *ContentRoadmapQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(contentroadmap.Table, contentroadmap.Columns, sqlgraph.NewFieldSpec(contentroadmap.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentroadmap.FieldID)
		for i := range fields {
			if fields[i] != contentroadmap.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withGap != nil {
			_spec.Node.AddColumnOnce(contentroadmap.FieldGapID)
		}
		if _q.withRecommendation != nil {
			_spec.Node.AddColumnOnce(contentroadmap.FieldRecommendationID)
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

func (_q *ContentRoadmapQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(contentroadmap.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = contentroadmap.Columns
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
func (_q *ContentRoadmapQuery) ForUpdate(opts ...sql.LockOption) *ContentRoadmapQuery {
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
func (_q *ContentRoadmapQuery) ForShare(opts ...sql.LockOption) *ContentRoadmapQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ContentRoadmapGroupBy is the group-by builder for ContentRoadmap entities.
type ContentRoadmapGroupBy struct {
	selector
	build *ContentRoadmapQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ContentRoadmapGroupBy) Aggregate(fns ...AggregateFunc) *ContentRoadmapGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ContentRoadmapGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContentRoadmapQuery, *ContentRoadmapGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ContentRoadmapGroupBy) sqlScan(ctx context.Context, root *ContentRoadmapQuery, v any) error {
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

// ContentRoadmapSelect is the builder for selecting fields of ContentRoadmap entities.
type ContentRoadmapSelect struct {
	*ContentRoadmapQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ContentRoadmapSelect) Aggregate(fns ...AggregateFunc) *ContentRoadmapSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ContentRoadmapSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContentRoadmapQuery, *ContentRoadmapSelect](ctx, _s.ContentRoadmapQuery, _s, _s.inters, v)
}

func (_s *ContentRoadmapSelect) sqlScan(ctx context.Context, root *ContentRoadmapQuery, v any) error {
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
