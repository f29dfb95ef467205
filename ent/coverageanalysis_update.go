// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/coverageanalysis"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// CoverageAnalysisUpdate is the builder for updating CoverageAnalysis entities.
type CoverageAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *CoverageAnalysisMutation
}

// Where appends a list predicates to the CoverageAnalysisUpdate builder.
func (_u *CoverageAnalysisUpdate) Where(ps ...predicate.CoverageAnalysis) *CoverageAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientDomain sets the "client_domain" field.
func (_u *CoverageAnalysisUpdate) SetClientDomain(v string) *CoverageAnalysisUpdate {
	_u.mutation.SetClientDomain(v)
	return _u
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_u *CoverageAnalysisUpdate) SetNillableClientDomain(v *string) *CoverageAnalysisUpdate {
	if v != nil {
		_u.SetClientDomain(*v)
	}
	return _u
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_u *CoverageAnalysisUpdate) SetTopicClusterID(v int) *CoverageAnalysisUpdate {
	_u.mutation.SetTopicClusterID(v)
	return _u
}

// SetNillableTopicClusterID sets the "topic_cluster_id" field if the given value is not nil.
func (_u *CoverageAnalysisUpdate) SetNillableTopicClusterID(v *int) *CoverageAnalysisUpdate {
	if v != nil {
		_u.SetTopicClusterID(*v)
	}
	return _u
}

// SetClientCount sets the "client_count" field.
func (_u *CoverageAnalysisUpdate) SetClientCount(v int) *CoverageAnalysisUpdate {
	_u.mutation.ResetClientCount()
	_u.mutation.SetClientCount(v)
	return _u
}

// SetNillableClientCount sets the "client_count" field if the given value is not nil.
func (_u *CoverageAnalysisUpdate) SetNillableClientCount(v *int) *CoverageAnalysisUpdate {
	if v != nil {
		_u.SetClientCount(*v)
	}
	return _u
}

// AddClientCount adds value to the "client_count" field.
func (_u *CoverageAnalysisUpdate) AddClientCount(v int) *CoverageAnalysisUpdate {
	_u.mutation.AddClientCount(v)
	return _u
}

// SetCompetitorCount sets the "competitor_count" field.
func (_u *CoverageAnalysisUpdate) SetCompetitorCount(v int) *CoverageAnalysisUpdate {
	_u.mutation.ResetCompetitorCount()
	_u.mutation.SetCompetitorCount(v)
	return _u
}

// SetNillableCompetitorCount sets the "competitor_count" field if the given value is not nil.
func (_u *CoverageAnalysisUpdate) SetNillableCompetitorCount(v *int) *CoverageAnalysisUpdate {
	if v != nil {
		_u.SetCompetitorCount(*v)
	}
	return _u
}

// AddCompetitorCount adds value to the "competitor_count" field.
func (_u *CoverageAnalysisUpdate) AddCompetitorCount(v int) *CoverageAnalysisUpdate {
	_u.mutation.AddCompetitorCount(v)
	return _u
}

// SetDistinctCompetitorDomains sets the "distinct_competitor_domains" field.
func (_u *CoverageAnalysisUpdate) SetDistinctCompetitorDomains(v int) *CoverageAnalysisUpdate {
	_u.mutation.ResetDistinctCompetitorDomains()
	_u.mutation.SetDistinctCompetitorDomains(v)
	return _u
}

// SetNillableDistinctCompetitorDomains sets the "distinct_competitor_domains" field if the given value is not nil.
func (_u *CoverageAnalysisUpdate) SetNillableDistinctCompetitorDomains(v *int) *CoverageAnalysisUpdate {
	if v != nil {
		_u.SetDistinctCompetitorDomains(*v)
	}
	return _u
}

// AddDistinctCompetitorDomains adds value to the "distinct_competitor_domains" field.
func (_u *CoverageAnalysisUpdate) AddDistinctCompetitorDomains(v int) *CoverageAnalysisUpdate {
	_u.mutation.AddDistinctCompetitorDomains(v)
	return _u
}

// SetAvgCompetitor sets the "avg_competitor" field.
func (_u *CoverageAnalysisUpdate) SetAvgCompetitor(v float64) *CoverageAnalysisUpdate {
	_u.mutation.ResetAvgCompetitor()
	_u.mutation.SetAvgCompetitor(v)
	return _u
}

// SetNillableAvgCompetitor sets the "avg_competitor" field if the given value is not nil.
func (_u *CoverageAnalysisUpdate) SetNillableAvgCompetitor(v *float64) *CoverageAnalysisUpdate {
	if v != nil {
		_u.SetAvgCompetitor(*v)
	}
	return _u
}

// AddAvgCompetitor adds value to the "avg_competitor" field.
func (_u *CoverageAnalysisUpdate) AddAvgCompetitor(v float64) *CoverageAnalysisUpdate {
	_u.mutation.AddAvgCompetitor(v)
	return _u
}

// SetCoverageScore sets the "coverage_score" field.
func (_u *CoverageAnalysisUpdate) SetCoverageScore(v float64) *CoverageAnalysisUpdate {
	_u.mutation.ResetCoverageScore()
	_u.mutation.SetCoverageScore(v)
	return _u
}

// SetNillableCoverageScore sets the "coverage_score" field if the given value is not nil.
func (_u *CoverageAnalysisUpdate) SetNillableCoverageScore(v *float64) *CoverageAnalysisUpdate {
	if v != nil {
		_u.SetCoverageScore(*v)
	}
	return _u
}

// AddCoverageScore adds value to the "coverage_score" field.
func (_u *CoverageAnalysisUpdate) AddCoverageScore(v float64) *CoverageAnalysisUpdate {
	_u.mutation.AddCoverageScore(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *CoverageAnalysisUpdate) SetLevel(v coverageanalysis.Level) *CoverageAnalysisUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CoverageAnalysisUpdate) SetNillableLevel(v *coverageanalysis.Level) *CoverageAnalysisUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_u *CoverageAnalysisUpdate) SetClusterID(id int) *CoverageAnalysisUpdate {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_u *CoverageAnalysisUpdate) SetCluster(v *TopicCluster) *CoverageAnalysisUpdate {
	return _u.SetClusterID(v.ID)
}

// Mutation returns the CoverageAnalysisMutation object of the builder.
func (_u *CoverageAnalysisUpdate) Mutation() *CoverageAnalysisMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (_u *CoverageAnalysisUpdate) ClearCluster() *CoverageAnalysisUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoverageAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoverageAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoverageAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoverageAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoverageAnalysisUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := coverageanalysis.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "CoverageAnalysis.level": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CoverageAnalysis.cluster"`)
	}
	return nil
}

func (_u *CoverageAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coverageanalysis.Table, coverageanalysis.Columns, sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientDomain(); ok {
		_spec.SetField(coverageanalysis.FieldClientDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientCount(); ok {
		_spec.SetField(coverageanalysis.FieldClientCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClientCount(); ok {
		_spec.AddField(coverageanalysis.FieldClientCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompetitorCount(); ok {
		_spec.SetField(coverageanalysis.FieldCompetitorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompetitorCount(); ok {
		_spec.AddField(coverageanalysis.FieldCompetitorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DistinctCompetitorDomains(); ok {
		_spec.SetField(coverageanalysis.FieldDistinctCompetitorDomains, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDistinctCompetitorDomains(); ok {
		_spec.AddField(coverageanalysis.FieldDistinctCompetitorDomains, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgCompetitor(); ok {
		_spec.SetField(coverageanalysis.FieldAvgCompetitor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgCompetitor(); ok {
		_spec.AddField(coverageanalysis.FieldAvgCompetitor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CoverageScore(); ok {
		_spec.SetField(coverageanalysis.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverageScore(); ok {
		_spec.AddField(coverageanalysis.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(coverageanalysis.FieldLevel, field.TypeEnum, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   coverageanalysis.ClusterTable,
			Columns: []string{coverageanalysis.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   coverageanalysis.ClusterTable,
			Columns: []string{coverageanalysis.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coverageanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoverageAnalysisUpdateOne is the builder for updating a single CoverageAnalysis entity.
type CoverageAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoverageAnalysisMutation
}

// SetClientDomain sets the "client_domain" field.
func (_u *CoverageAnalysisUpdateOne) SetClientDomain(v string) *CoverageAnalysisUpdateOne {
	_u.mutation.SetClientDomain(v)
	return _u
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_u *CoverageAnalysisUpdateOne) SetNillableClientDomain(v *string) *CoverageAnalysisUpdateOne {
	if v != nil {
		_u.SetClientDomain(*v)
	}
	return _u
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_u *CoverageAnalysisUpdateOne) SetTopicClusterID(v int) *CoverageAnalysisUpdateOne {
	_u.mutation.SetTopicClusterID(v)
	return _u
}

// SetNillableTopicClusterID sets the "topic_cluster_id" field if the given value is not nil.
func (_u *CoverageAnalysisUpdateOne) SetNillableTopicClusterID(v *int) *CoverageAnalysisUpdateOne {
	if v != nil {
		_u.SetTopicClusterID(*v)
	}
	return _u
}

// SetClientCount sets the "client_count" field.
func (_u *CoverageAnalysisUpdateOne) SetClientCount(v int) *CoverageAnalysisUpdateOne {
	_u.mutation.ResetClientCount()
	_u.mutation.SetClientCount(v)
	return _u
}

// SetNillableClientCount sets the "client_count" field if the given value is not nil.
func (_u *CoverageAnalysisUpdateOne) SetNillableClientCount(v *int) *CoverageAnalysisUpdateOne {
	if v != nil {
		_u.SetClientCount(*v)
	}
	return _u
}

// AddClientCount adds value to the "client_count" field.
func (_u *CoverageAnalysisUpdateOne) AddClientCount(v int) *CoverageAnalysisUpdateOne {
	_u.mutation.AddClientCount(v)
	return _u
}

// SetCompetitorCount sets the "competitor_count" field.
func (_u *CoverageAnalysisUpdateOne) SetCompetitorCount(v int) *CoverageAnalysisUpdateOne {
	_u.mutation.ResetCompetitorCount()
	_u.mutation.SetCompetitorCount(v)
	return _u
}

// SetNillableCompetitorCount sets the "competitor_count" field if the given value is not nil.
func (_u *CoverageAnalysisUpdateOne) SetNillableCompetitorCount(v *int) *CoverageAnalysisUpdateOne {
	if v != nil {
		_u.SetCompetitorCount(*v)
	}
	return _u
}

// AddCompetitorCount adds value to the "competitor_count" field.
func (_u *CoverageAnalysisUpdateOne) AddCompetitorCount(v int) *CoverageAnalysisUpdateOne {
	_u.mutation.AddCompetitorCount(v)
	return _u
}

// SetDistinctCompetitorDomains sets the "distinct_competitor_domains" field.
func (_u *CoverageAnalysisUpdateOne) SetDistinctCompetitorDomains(v int) *CoverageAnalysisUpdateOne {
	_u.mutation.ResetDistinctCompetitorDomains()
	_u.mutation.SetDistinctCompetitorDomains(v)
	return _u
}

// SetNillableDistinctCompetitorDomains sets the "distinct_competitor_domains" field if the given value is not nil.
func (_u *CoverageAnalysisUpdateOne) SetNillableDistinctCompetitorDomains(v *int) *CoverageAnalysisUpdateOne {
	if v != nil {
		_u.SetDistinctCompetitorDomains(*v)
	}
	return _u
}

// AddDistinctCompetitorDomains adds value to the "distinct_competitor_domains" field.
func (_u *CoverageAnalysisUpdateOne) AddDistinctCompetitorDomains(v int) *CoverageAnalysisUpdateOne {
	_u.mutation.AddDistinctCompetitorDomains(v)
	return _u
}

// SetAvgCompetitor sets the "avg_competitor" field.
func (_u *CoverageAnalysisUpdateOne) SetAvgCompetitor(v float64) *CoverageAnalysisUpdateOne {
	_u.mutation.ResetAvgCompetitor()
	_u.mutation.SetAvgCompetitor(v)
	return _u
}

// SetNillableAvgCompetitor sets the "avg_competitor" field if the given value is not nil.
func (_u *CoverageAnalysisUpdateOne) SetNillableAvgCompetitor(v *float64) *CoverageAnalysisUpdateOne {
	if v != nil {
		_u.SetAvgCompetitor(*v)
	}
	return _u
}

// AddAvgCompetitor adds value to the "avg_competitor" field.
func (_u *CoverageAnalysisUpdateOne) AddAvgCompetitor(v float64) *CoverageAnalysisUpdateOne {
	_u.mutation.AddAvgCompetitor(v)
	return _u
}

// SetCoverageScore sets the "coverage_score" field.
func (_u *CoverageAnalysisUpdateOne) SetCoverageScore(v float64) *CoverageAnalysisUpdateOne {
	_u.mutation.ResetCoverageScore()
	_u.mutation.SetCoverageScore(v)
	return _u
}

// SetNillableCoverageScore sets the "coverage_score" field if the given value is not nil.
func (_u *CoverageAnalysisUpdateOne) SetNillableCoverageScore(v *float64) *CoverageAnalysisUpdateOne {
	if v != nil {
		_u.SetCoverageScore(*v)
	}
	return _u
}

// AddCoverageScore adds value to the "coverage_score" field.
func (_u *CoverageAnalysisUpdateOne) AddCoverageScore(v float64) *CoverageAnalysisUpdateOne {
	_u.mutation.AddCoverageScore(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *CoverageAnalysisUpdateOne) SetLevel(v coverageanalysis.Level) *CoverageAnalysisUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CoverageAnalysisUpdateOne) SetNillableLevel(v *coverageanalysis.Level) *CoverageAnalysisUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_u *CoverageAnalysisUpdateOne) SetClusterID(id int) *CoverageAnalysisUpdateOne {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_u *CoverageAnalysisUpdateOne) SetCluster(v *TopicCluster) *CoverageAnalysisUpdateOne {
	return _u.SetClusterID(v.ID)
}

// Mutation returns the CoverageAnalysisMutation object of the builder.
func (_u *CoverageAnalysisUpdateOne) Mutation() *CoverageAnalysisMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (_u *CoverageAnalysisUpdateOne) ClearCluster() *CoverageAnalysisUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// Where appends a list predicates to the CoverageAnalysisUpdate builder.
func (_u *CoverageAnalysisUpdateOne) Where(ps ...predicate.CoverageAnalysis) *CoverageAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoverageAnalysisUpdateOne) Select(field string, fields ...string) *CoverageAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoverageAnalysis entity.
func (_u *CoverageAnalysisUpdateOne) Save(ctx context.Context) (*CoverageAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoverageAnalysisUpdateOne) SaveX(ctx context.Context) *CoverageAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoverageAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoverageAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoverageAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := coverageanalysis.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "CoverageAnalysis.level": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CoverageAnalysis.cluster"`)
	}
	return nil
}

func (_u *CoverageAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *CoverageAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coverageanalysis.Table, coverageanalysis.Columns, sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoverageAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coverageanalysis.FieldID)
		for _, f := range fields {
			if !coverageanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coverageanalysis.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientDomain(); ok {
		_spec.SetField(coverageanalysis.FieldClientDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientCount(); ok {
		_spec.SetField(coverageanalysis.FieldClientCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClientCount(); ok {
		_spec.AddField(coverageanalysis.FieldClientCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompetitorCount(); ok {
		_spec.SetField(coverageanalysis.FieldCompetitorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompetitorCount(); ok {
		_spec.AddField(coverageanalysis.FieldCompetitorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DistinctCompetitorDomains(); ok {
		_spec.SetField(coverageanalysis.FieldDistinctCompetitorDomains, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDistinctCompetitorDomains(); ok {
		_spec.AddField(coverageanalysis.FieldDistinctCompetitorDomains, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgCompetitor(); ok {
		_spec.SetField(coverageanalysis.FieldAvgCompetitor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgCompetitor(); ok {
		_spec.AddField(coverageanalysis.FieldAvgCompetitor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CoverageScore(); ok {
		_spec.SetField(coverageanalysis.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverageScore(); ok {
		_spec.AddField(coverageanalysis.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(coverageanalysis.FieldLevel, field.TypeEnum, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   coverageanalysis.ClusterTable,
			Columns: []string{coverageanalysis.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   coverageanalysis.ClusterTable,
			Columns: []string{coverageanalysis.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topiccluster.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CoverageAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coverageanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
