// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// EditorialGapUpdate is the builder for updating EditorialGap entities.
type EditorialGapUpdate struct {
	config
	hooks    []Hook
	mutation *EditorialGapMutation
}

// Where appends a list predicates to the EditorialGapUpdate builder.
func (_u *EditorialGapUpdate) Where(ps ...predicate.EditorialGap) *EditorialGapUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientDomain sets the "client_domain" field.
func (_u *EditorialGapUpdate) SetClientDomain(v string) *EditorialGapUpdate {
	_u.mutation.SetClientDomain(v)
	return _u
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_u *EditorialGapUpdate) SetNillableClientDomain(v *string) *EditorialGapUpdate {
	if v != nil {
		_u.SetClientDomain(*v)
	}
	return _u
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_u *EditorialGapUpdate) SetTopicClusterID(v int) *EditorialGapUpdate {
	_u.mutation.SetTopicClusterID(v)
	return _u
}

// SetNillableTopicClusterID sets the "topic_cluster_id" field if the given value is not nil.
func (_u *EditorialGapUpdate) SetNillableTopicClusterID(v *int) *EditorialGapUpdate {
	if v != nil {
		_u.SetTopicClusterID(*v)
	}
	return _u
}

// SetClientCount sets the "client_count" field.
func (_u *EditorialGapUpdate) SetClientCount(v int) *EditorialGapUpdate {
	_u.mutation.ResetClientCount()
	_u.mutation.SetClientCount(v)
	return _u
}

// SetNillableClientCount sets the "client_count" field if the given value is not nil.
func (_u *EditorialGapUpdate) SetNillableClientCount(v *int) *EditorialGapUpdate {
	if v != nil {
		_u.SetClientCount(*v)
	}
	return _u
}

// AddClientCount adds value to the "client_count" field.
func (_u *EditorialGapUpdate) AddClientCount(v int) *EditorialGapUpdate {
	_u.mutation.AddClientCount(v)
	return _u
}

// SetCompetitorCount sets the "competitor_count" field.
func (_u *EditorialGapUpdate) SetCompetitorCount(v int) *EditorialGapUpdate {
	_u.mutation.ResetCompetitorCount()
	_u.mutation.SetCompetitorCount(v)
	return _u
}

// SetNillableCompetitorCount sets the "competitor_count" field if the given value is not nil.
func (_u *EditorialGapUpdate) SetNillableCompetitorCount(v *int) *EditorialGapUpdate {
	if v != nil {
		_u.SetCompetitorCount(*v)
	}
	return _u
}

// AddCompetitorCount adds value to the "competitor_count" field.
func (_u *EditorialGapUpdate) AddCompetitorCount(v int) *EditorialGapUpdate {
	_u.mutation.AddCompetitorCount(v)
	return _u
}

// SetAvgCompetitor sets the "avg_competitor" field.
func (_u *EditorialGapUpdate) SetAvgCompetitor(v float64) *EditorialGapUpdate {
	_u.mutation.ResetAvgCompetitor()
	_u.mutation.SetAvgCompetitor(v)
	return _u
}

// SetNillableAvgCompetitor sets the "avg_competitor" field if the given value is not nil.
func (_u *EditorialGapUpdate) SetNillableAvgCompetitor(v *float64) *EditorialGapUpdate {
	if v != nil {
		_u.SetAvgCompetitor(*v)
	}
	return _u
}

// AddAvgCompetitor adds value to the "avg_competitor" field.
func (_u *EditorialGapUpdate) AddAvgCompetitor(v float64) *EditorialGapUpdate {
	_u.mutation.AddAvgCompetitor(v)
	return _u
}

// SetCoverageScore sets the "coverage_score" field.
func (_u *EditorialGapUpdate) SetCoverageScore(v float64) *EditorialGapUpdate {
	_u.mutation.ResetCoverageScore()
	_u.mutation.SetCoverageScore(v)
	return _u
}

// SetNillableCoverageScore sets the "coverage_score" field if the given value is not nil.
func (_u *EditorialGapUpdate) SetNillableCoverageScore(v *float64) *EditorialGapUpdate {
	if v != nil {
		_u.SetCoverageScore(*v)
	}
	return _u
}

// AddCoverageScore adds value to the "coverage_score" field.
func (_u *EditorialGapUpdate) AddCoverageScore(v float64) *EditorialGapUpdate {
	_u.mutation.AddCoverageScore(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *EditorialGapUpdate) SetLevel(v editorialgap.Level) *EditorialGapUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *EditorialGapUpdate) SetNillableLevel(v *editorialgap.Level) *EditorialGapUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *EditorialGapUpdate) SetPriorityScore(v float64) *EditorialGapUpdate {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *EditorialGapUpdate) SetNillablePriorityScore(v *float64) *EditorialGapUpdate {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *EditorialGapUpdate) AddPriorityScore(v float64) *EditorialGapUpdate {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_u *EditorialGapUpdate) SetClusterID(id int) *EditorialGapUpdate {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_u *EditorialGapUpdate) SetCluster(v *TopicCluster) *EditorialGapUpdate {
	return _u.SetClusterID(v.ID)
}

// AddRoadmapEntryIDs adds the "roadmap_entries" edge to the ContentRoadmap entity by IDs.
func (_u *EditorialGapUpdate) AddRoadmapEntryIDs(ids ...int) *EditorialGapUpdate {
	_u.mutation.AddRoadmapEntryIDs(ids...)
	return _u
}

// AddRoadmapEntries adds the "roadmap_entries" edges to the ContentRoadmap entity.
func (_u *EditorialGapUpdate) AddRoadmapEntries(v ...*ContentRoadmap) *EditorialGapUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoadmapEntryIDs(ids...)
}

// Mutation returns the EditorialGapMutation object of the builder.
func (_u *EditorialGapUpdate) Mutation() *EditorialGapMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (_u *EditorialGapUpdate) ClearCluster() *EditorialGapUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// ClearRoadmapEntries clears all "roadmap_entries" edges to the ContentRoadmap entity.
func (_u *EditorialGapUpdate) ClearRoadmapEntries() *EditorialGapUpdate {
	_u.mutation.ClearRoadmapEntries()
	return _u
}

// RemoveRoadmapEntryIDs removes the "roadmap_entries" edge to ContentRoadmap entities by IDs.
func (_u *EditorialGapUpdate) RemoveRoadmapEntryIDs(ids ...int) *EditorialGapUpdate {
	_u.mutation.RemoveRoadmapEntryIDs(ids...)
	return _u
}

// RemoveRoadmapEntries removes "roadmap_entries" edges to ContentRoadmap entities.
func (_u *EditorialGapUpdate) RemoveRoadmapEntries(v ...*ContentRoadmap) *EditorialGapUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoadmapEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EditorialGapUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EditorialGapUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EditorialGapUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EditorialGapUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EditorialGapUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := editorialgap.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "EditorialGap.level": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EditorialGap.cluster"`)
	}
	return nil
}

func (_u *EditorialGapUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(editorialgap.Table, editorialgap.Columns, sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientDomain(); ok {
		_spec.SetField(editorialgap.FieldClientDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientCount(); ok {
		_spec.SetField(editorialgap.FieldClientCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClientCount(); ok {
		_spec.AddField(editorialgap.FieldClientCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompetitorCount(); ok {
		_spec.SetField(editorialgap.FieldCompetitorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompetitorCount(); ok {
		_spec.AddField(editorialgap.FieldCompetitorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgCompetitor(); ok {
		_spec.SetField(editorialgap.FieldAvgCompetitor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgCompetitor(); ok {
		_spec.AddField(editorialgap.FieldAvgCompetitor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CoverageScore(); ok {
		_spec.SetField(editorialgap.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverageScore(); ok {
		_spec.AddField(editorialgap.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(editorialgap.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(editorialgap.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(editorialgap.FieldPriorityScore, field.TypeFloat64, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   editorialgap.ClusterTable,
			Columns: []string{editorialgap.ClusterColumn},
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
			Table:   editorialgap.ClusterTable,
			Columns: []string{editorialgap.ClusterColumn},
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
	if _u.mutation.RoadmapEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   editorialgap.RoadmapEntriesTable,
			Columns: []string{editorialgap.RoadmapEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentroadmap.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoadmapEntriesIDs(); len(nodes) > 0 && !_u.mutation.RoadmapEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   editorialgap.RoadmapEntriesTable,
			Columns: []string{editorialgap.RoadmapEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentroadmap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoadmapEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   editorialgap.RoadmapEntriesTable,
			Columns: []string{editorialgap.RoadmapEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentroadmap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{editorialgap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EditorialGapUpdateOne is the builder for updating a single EditorialGap entity.
type EditorialGapUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EditorialGapMutation
}

// SetClientDomain sets the "client_domain" field.
func (_u *EditorialGapUpdateOne) SetClientDomain(v string) *EditorialGapUpdateOne {
	_u.mutation.SetClientDomain(v)
	return _u
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_u *EditorialGapUpdateOne) SetNillableClientDomain(v *string) *EditorialGapUpdateOne {
	if v != nil {
		_u.SetClientDomain(*v)
	}
	return _u
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_u *EditorialGapUpdateOne) SetTopicClusterID(v int) *EditorialGapUpdateOne {
	_u.mutation.SetTopicClusterID(v)
	return _u
}

// SetNillableTopicClusterID sets the "topic_cluster_id" field if the given value is not nil.
func (_u *EditorialGapUpdateOne) SetNillableTopicClusterID(v *int) *EditorialGapUpdateOne {
	if v != nil {
		_u.SetTopicClusterID(*v)
	}
	return _u
}

// SetClientCount sets the "client_count" field.
func (_u *EditorialGapUpdateOne) SetClientCount(v int) *EditorialGapUpdateOne {
	_u.mutation.ResetClientCount()
	_u.mutation.SetClientCount(v)
	return _u
}

// SetNillableClientCount sets the "client_count" field if the given value is not nil.
func (_u *EditorialGapUpdateOne) SetNillableClientCount(v *int) *EditorialGapUpdateOne {
	if v != nil {
		_u.SetClientCount(*v)
	}
	return _u
}

// AddClientCount adds value to the "client_count" field.
func (_u *EditorialGapUpdateOne) AddClientCount(v int) *EditorialGapUpdateOne {
	_u.mutation.AddClientCount(v)
	return _u
}

// SetCompetitorCount sets the "competitor_count" field.
func (_u *EditorialGapUpdateOne) SetCompetitorCount(v int) *EditorialGapUpdateOne {
	_u.mutation.ResetCompetitorCount()
	_u.mutation.SetCompetitorCount(v)
	return _u
}

// SetNillableCompetitorCount sets the "competitor_count" field if the given value is not nil.
func (_u *EditorialGapUpdateOne) SetNillableCompetitorCount(v *int) *EditorialGapUpdateOne {
	if v != nil {
		_u.SetCompetitorCount(*v)
	}
	return _u
}

// AddCompetitorCount adds value to the "competitor_count" field.
func (_u *EditorialGapUpdateOne) AddCompetitorCount(v int) *EditorialGapUpdateOne {
	_u.mutation.AddCompetitorCount(v)
	return _u
}

// SetAvgCompetitor sets the "avg_competitor" field.
func (_u *EditorialGapUpdateOne) SetAvgCompetitor(v float64) *EditorialGapUpdateOne {
	_u.mutation.ResetAvgCompetitor()
	_u.mutation.SetAvgCompetitor(v)
	return _u
}

// SetNillableAvgCompetitor sets the "avg_competitor" field if the given value is not nil.
func (_u *EditorialGapUpdateOne) SetNillableAvgCompetitor(v *float64) *EditorialGapUpdateOne {
	if v != nil {
		_u.SetAvgCompetitor(*v)
	}
	return _u
}

// AddAvgCompetitor adds value to the "avg_competitor" field.
func (_u *EditorialGapUpdateOne) AddAvgCompetitor(v float64) *EditorialGapUpdateOne {
	_u.mutation.AddAvgCompetitor(v)
	return _u
}

// SetCoverageScore sets the "coverage_score" field.
func (_u *EditorialGapUpdateOne) SetCoverageScore(v float64) *EditorialGapUpdateOne {
	_u.mutation.ResetCoverageScore()
	_u.mutation.SetCoverageScore(v)
	return _u
}

// SetNillableCoverageScore sets the "coverage_score" field if the given value is not nil.
func (_u *EditorialGapUpdateOne) SetNillableCoverageScore(v *float64) *EditorialGapUpdateOne {
	if v != nil {
		_u.SetCoverageScore(*v)
	}
	return _u
}

// AddCoverageScore adds value to the "coverage_score" field.
func (_u *EditorialGapUpdateOne) AddCoverageScore(v float64) *EditorialGapUpdateOne {
	_u.mutation.AddCoverageScore(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *EditorialGapUpdateOne) SetLevel(v editorialgap.Level) *EditorialGapUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *EditorialGapUpdateOne) SetNillableLevel(v *editorialgap.Level) *EditorialGapUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *EditorialGapUpdateOne) SetPriorityScore(v float64) *EditorialGapUpdateOne {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *EditorialGapUpdateOne) SetNillablePriorityScore(v *float64) *EditorialGapUpdateOne {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *EditorialGapUpdateOne) AddPriorityScore(v float64) *EditorialGapUpdateOne {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_u *EditorialGapUpdateOne) SetClusterID(id int) *EditorialGapUpdateOne {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_u *EditorialGapUpdateOne) SetCluster(v *TopicCluster) *EditorialGapUpdateOne {
	return _u.SetClusterID(v.ID)
}

// AddRoadmapEntryIDs adds the "roadmap_entries" edge to the ContentRoadmap entity by IDs.
func (_u *EditorialGapUpdateOne) AddRoadmapEntryIDs(ids ...int) *EditorialGapUpdateOne {
	_u.mutation.AddRoadmapEntryIDs(ids...)
	return _u
}

// AddRoadmapEntries adds the "roadmap_entries" edges to the ContentRoadmap entity.
func (_u *EditorialGapUpdateOne) AddRoadmapEntries(v ...*ContentRoadmap) *EditorialGapUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoadmapEntryIDs(ids...)
}

// Mutation returns the EditorialGapMutation object of the builder.
func (_u *EditorialGapUpdateOne) Mutation() *EditorialGapMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (_u *EditorialGapUpdateOne) ClearCluster() *EditorialGapUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// ClearRoadmapEntries clears all "roadmap_entries" edges to the ContentRoadmap entity.
func (_u *EditorialGapUpdateOne) ClearRoadmapEntries() *EditorialGapUpdateOne {
	_u.mutation.ClearRoadmapEntries()
	return _u
}

// RemoveRoadmapEntryIDs removes the "roadmap_entries" edge to ContentRoadmap entities by IDs.
func (_u *EditorialGapUpdateOne) RemoveRoadmapEntryIDs(ids ...int) *EditorialGapUpdateOne {
	_u.mutation.RemoveRoadmapEntryIDs(ids...)
	return _u
}

// RemoveRoadmapEntries removes "roadmap_entries" edges to ContentRoadmap entities.
func (_u *EditorialGapUpdateOne) RemoveRoadmapEntries(v ...*ContentRoadmap) *EditorialGapUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoadmapEntryIDs(ids...)
}

// Where appends a list predicates to the EditorialGapUpdate builder.
func (_u *EditorialGapUpdateOne) Where(ps ...predicate.EditorialGap) *EditorialGapUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EditorialGapUpdateOne) Select(field string, fields ...string) *EditorialGapUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EditorialGap entity.
func (_u *EditorialGapUpdateOne) Save(ctx context.Context) (*EditorialGap, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EditorialGapUpdateOne) SaveX(ctx context.Context) *EditorialGap {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EditorialGapUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EditorialGapUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EditorialGapUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := editorialgap.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "EditorialGap.level": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EditorialGap.cluster"`)
	}
	return nil
}

func (_u *EditorialGapUpdateOne) sqlSave(ctx context.Context) (_node *EditorialGap, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(editorialgap.Table, editorialgap.Columns, sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EditorialGap.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, editorialgap.FieldID)
		for _, f := range fields {
			if !editorialgap.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != editorialgap.FieldID {
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
		_spec.SetField(editorialgap.FieldClientDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientCount(); ok {
		_spec.SetField(editorialgap.FieldClientCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClientCount(); ok {
		_spec.AddField(editorialgap.FieldClientCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompetitorCount(); ok {
		_spec.SetField(editorialgap.FieldCompetitorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompetitorCount(); ok {
		_spec.AddField(editorialgap.FieldCompetitorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgCompetitor(); ok {
		_spec.SetField(editorialgap.FieldAvgCompetitor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgCompetitor(); ok {
		_spec.AddField(editorialgap.FieldAvgCompetitor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CoverageScore(); ok {
		_spec.SetField(editorialgap.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverageScore(); ok {
		_spec.AddField(editorialgap.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(editorialgap.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(editorialgap.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(editorialgap.FieldPriorityScore, field.TypeFloat64, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   editorialgap.ClusterTable,
			Columns: []string{editorialgap.ClusterColumn},
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
			Table:   editorialgap.ClusterTable,
			Columns: []string{editorialgap.ClusterColumn},
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
	if _u.mutation.RoadmapEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   editorialgap.RoadmapEntriesTable,
			Columns: []string{editorialgap.RoadmapEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentroadmap.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoadmapEntriesIDs(); len(nodes) > 0 && !_u.mutation.RoadmapEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   editorialgap.RoadmapEntriesTable,
			Columns: []string{editorialgap.RoadmapEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentroadmap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoadmapEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   editorialgap.RoadmapEntriesTable,
			Columns: []string{editorialgap.RoadmapEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentroadmap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EditorialGap{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{editorialgap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
