// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// ArticleRecommendationUpdate is the builder for updating ArticleRecommendation entities.
type ArticleRecommendationUpdate struct {
	config
	hooks    []Hook
	mutation *ArticleRecommendationMutation
}

// Where appends a list predicates to the ArticleRecommendationUpdate builder.
func (_u *ArticleRecommendationUpdate) Where(ps ...predicate.ArticleRecommendation) *ArticleRecommendationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_u *ArticleRecommendationUpdate) SetTopicClusterID(v int) *ArticleRecommendationUpdate {
	_u.mutation.SetTopicClusterID(v)
	return _u
}

// SetNillableTopicClusterID sets the "topic_cluster_id" field if the given value is not nil.
func (_u *ArticleRecommendationUpdate) SetNillableTopicClusterID(v *int) *ArticleRecommendationUpdate {
	if v != nil {
		_u.SetTopicClusterID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArticleRecommendationUpdate) SetTitle(v string) *ArticleRecommendationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArticleRecommendationUpdate) SetNillableTitle(v *string) *ArticleRecommendationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetHook sets the "hook" field.
func (_u *ArticleRecommendationUpdate) SetHook(v string) *ArticleRecommendationUpdate {
	_u.mutation.SetHook(v)
	return _u
}

// SetNillableHook sets the "hook" field if the given value is not nil.
func (_u *ArticleRecommendationUpdate) SetNillableHook(v *string) *ArticleRecommendationUpdate {
	if v != nil {
		_u.SetHook(*v)
	}
	return _u
}

// ClearHook clears the value of the "hook" field.
func (_u *ArticleRecommendationUpdate) ClearHook() *ArticleRecommendationUpdate {
	_u.mutation.ClearHook()
	return _u
}

// SetOutline sets the "outline" field.
func (_u *ArticleRecommendationUpdate) SetOutline(v []string) *ArticleRecommendationUpdate {
	_u.mutation.SetOutline(v)
	return _u
}

// AppendOutline appends value to the "outline" field.
func (_u *ArticleRecommendationUpdate) AppendOutline(v []string) *ArticleRecommendationUpdate {
	_u.mutation.AppendOutline(v)
	return _u
}

// ClearOutline clears the value of the "outline" field.
func (_u *ArticleRecommendationUpdate) ClearOutline() *ArticleRecommendationUpdate {
	_u.mutation.ClearOutline()
	return _u
}

// SetDifferentiationScore sets the "differentiation_score" field.
func (_u *ArticleRecommendationUpdate) SetDifferentiationScore(v float64) *ArticleRecommendationUpdate {
	_u.mutation.ResetDifferentiationScore()
	_u.mutation.SetDifferentiationScore(v)
	return _u
}

// SetNillableDifferentiationScore sets the "differentiation_score" field if the given value is not nil.
func (_u *ArticleRecommendationUpdate) SetNillableDifferentiationScore(v *float64) *ArticleRecommendationUpdate {
	if v != nil {
		_u.SetDifferentiationScore(*v)
	}
	return _u
}

// AddDifferentiationScore adds value to the "differentiation_score" field.
func (_u *ArticleRecommendationUpdate) AddDifferentiationScore(v float64) *ArticleRecommendationUpdate {
	_u.mutation.AddDifferentiationScore(v)
	return _u
}

// SetEffortLevel sets the "effort_level" field.
func (_u *ArticleRecommendationUpdate) SetEffortLevel(v articlerecommendation.EffortLevel) *ArticleRecommendationUpdate {
	_u.mutation.SetEffortLevel(v)
	return _u
}

// SetNillableEffortLevel sets the "effort_level" field if the given value is not nil.
func (_u *ArticleRecommendationUpdate) SetNillableEffortLevel(v *articlerecommendation.EffortLevel) *ArticleRecommendationUpdate {
	if v != nil {
		_u.SetEffortLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ArticleRecommendationUpdate) SetStatus(v articlerecommendation.Status) *ArticleRecommendationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ArticleRecommendationUpdate) SetNillableStatus(v *articlerecommendation.Status) *ArticleRecommendationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_u *ArticleRecommendationUpdate) SetClusterID(id int) *ArticleRecommendationUpdate {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_u *ArticleRecommendationUpdate) SetCluster(v *TopicCluster) *ArticleRecommendationUpdate {
	return _u.SetClusterID(v.ID)
}

// AddRoadmapEntryIDs adds the "roadmap_entries" edge to the ContentRoadmap entity by IDs.
func (_u *ArticleRecommendationUpdate) AddRoadmapEntryIDs(ids ...int) *ArticleRecommendationUpdate {
	_u.mutation.AddRoadmapEntryIDs(ids...)
	return _u
}

// AddRoadmapEntries adds the "roadmap_entries" edges to the ContentRoadmap entity.
func (_u *ArticleRecommendationUpdate) AddRoadmapEntries(v ...*ContentRoadmap) *ArticleRecommendationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoadmapEntryIDs(ids...)
}

// Mutation returns the ArticleRecommendationMutation object of the builder.
func (_u *ArticleRecommendationUpdate) Mutation() *ArticleRecommendationMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (_u *ArticleRecommendationUpdate) ClearCluster() *ArticleRecommendationUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// ClearRoadmapEntries clears all "roadmap_entries" edges to the ContentRoadmap entity.
func (_u *ArticleRecommendationUpdate) ClearRoadmapEntries() *ArticleRecommendationUpdate {
	_u.mutation.ClearRoadmapEntries()
	return _u
}

// RemoveRoadmapEntryIDs removes the "roadmap_entries" edge to ContentRoadmap entities by IDs.
func (_u *ArticleRecommendationUpdate) RemoveRoadmapEntryIDs(ids ...int) *ArticleRecommendationUpdate {
	_u.mutation.RemoveRoadmapEntryIDs(ids...)
	return _u
}

// RemoveRoadmapEntries removes "roadmap_entries" edges to ContentRoadmap entities.
func (_u *ArticleRecommendationUpdate) RemoveRoadmapEntries(v ...*ContentRoadmap) *ArticleRecommendationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoadmapEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArticleRecommendationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleRecommendationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArticleRecommendationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleRecommendationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleRecommendationUpdate) check() error {
	if v, ok := _u.mutation.EffortLevel(); ok {
		if err := articlerecommendation.EffortLevelValidator(v); err != nil {
			return &ValidationError{Name: "effort_level", err: fmt.Errorf(`ent: validator failed for field "ArticleRecommendation.effort_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := articlerecommendation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ArticleRecommendation.status": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArticleRecommendation.cluster"`)
	}
	return nil
}

func (_u *ArticleRecommendationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(articlerecommendation.Table, articlerecommendation.Columns, sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(articlerecommendation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hook(); ok {
		_spec.SetField(articlerecommendation.FieldHook, field.TypeString, value)
	}
	if _u.mutation.HookCleared() {
		_spec.ClearField(articlerecommendation.FieldHook, field.TypeString)
	}
	if value, ok := _u.mutation.Outline(); ok {
		_spec.SetField(articlerecommendation.FieldOutline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutline(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, articlerecommendation.FieldOutline, value)
		})
	}
	if _u.mutation.OutlineCleared() {
		_spec.ClearField(articlerecommendation.FieldOutline, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifferentiationScore(); ok {
		_spec.SetField(articlerecommendation.FieldDifferentiationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifferentiationScore(); ok {
		_spec.AddField(articlerecommendation.FieldDifferentiationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EffortLevel(); ok {
		_spec.SetField(articlerecommendation.FieldEffortLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(articlerecommendation.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   articlerecommendation.ClusterTable,
			Columns: []string{articlerecommendation.ClusterColumn},
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
			Table:   articlerecommendation.ClusterTable,
			Columns: []string{articlerecommendation.ClusterColumn},
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
			Table:   articlerecommendation.RoadmapEntriesTable,
			Columns: []string{articlerecommendation.RoadmapEntriesColumn},
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
			Table:   articlerecommendation.RoadmapEntriesTable,
			Columns: []string{articlerecommendation.RoadmapEntriesColumn},
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
			Table:   articlerecommendation.RoadmapEntriesTable,
			Columns: []string{articlerecommendation.RoadmapEntriesColumn},
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
			err = &NotFoundError{articlerecommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArticleRecommendationUpdateOne is the builder for updating a single ArticleRecommendation entity.
type ArticleRecommendationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArticleRecommendationMutation
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_u *ArticleRecommendationUpdateOne) SetTopicClusterID(v int) *ArticleRecommendationUpdateOne {
	_u.mutation.SetTopicClusterID(v)
	return _u
}

// SetNillableTopicClusterID sets the "topic_cluster_id" field if the given value is not nil.
func (_u *ArticleRecommendationUpdateOne) SetNillableTopicClusterID(v *int) *ArticleRecommendationUpdateOne {
	if v != nil {
		_u.SetTopicClusterID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArticleRecommendationUpdateOne) SetTitle(v string) *ArticleRecommendationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArticleRecommendationUpdateOne) SetNillableTitle(v *string) *ArticleRecommendationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetHook sets the "hook" field.
func (_u *ArticleRecommendationUpdateOne) SetHook(v string) *ArticleRecommendationUpdateOne {
	_u.mutation.SetHook(v)
	return _u
}

// SetNillableHook sets the "hook" field if the given value is not nil.
func (_u *ArticleRecommendationUpdateOne) SetNillableHook(v *string) *ArticleRecommendationUpdateOne {
	if v != nil {
		_u.SetHook(*v)
	}
	return _u
}

// ClearHook clears the value of the "hook" field.
func (_u *ArticleRecommendationUpdateOne) ClearHook() *ArticleRecommendationUpdateOne {
	_u.mutation.ClearHook()
	return _u
}

// SetOutline sets the "outline" field.
func (_u *ArticleRecommendationUpdateOne) SetOutline(v []string) *ArticleRecommendationUpdateOne {
	_u.mutation.SetOutline(v)
	return _u
}

// AppendOutline appends value to the "outline" field.
func (_u *ArticleRecommendationUpdateOne) AppendOutline(v []string) *ArticleRecommendationUpdateOne {
	_u.mutation.AppendOutline(v)
	return _u
}

// ClearOutline clears the value of the "outline" field.
func (_u *ArticleRecommendationUpdateOne) ClearOutline() *ArticleRecommendationUpdateOne {
	_u.mutation.ClearOutline()
	return _u
}

// SetDifferentiationScore sets the "differentiation_score" field.
func (_u *ArticleRecommendationUpdateOne) SetDifferentiationScore(v float64) *ArticleRecommendationUpdateOne {
	_u.mutation.ResetDifferentiationScore()
	_u.mutation.SetDifferentiationScore(v)
	return _u
}

// SetNillableDifferentiationScore sets the "differentiation_score" field if the given value is not nil.
func (_u *ArticleRecommendationUpdateOne) SetNillableDifferentiationScore(v *float64) *ArticleRecommendationUpdateOne {
	if v != nil {
		_u.SetDifferentiationScore(*v)
	}
	return _u
}

// AddDifferentiationScore adds value to the "differentiation_score" field.
func (_u *ArticleRecommendationUpdateOne) AddDifferentiationScore(v float64) *ArticleRecommendationUpdateOne {
	_u.mutation.AddDifferentiationScore(v)
	return _u
}

// SetEffortLevel sets the "effort_level" field.
func (_u *ArticleRecommendationUpdateOne) SetEffortLevel(v articlerecommendation.EffortLevel) *ArticleRecommendationUpdateOne {
	_u.mutation.SetEffortLevel(v)
	return _u
}

// SetNillableEffortLevel sets the "effort_level" field if the given value is not nil.
func (_u *ArticleRecommendationUpdateOne) SetNillableEffortLevel(v *articlerecommendation.EffortLevel) *ArticleRecommendationUpdateOne {
	if v != nil {
		_u.SetEffortLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ArticleRecommendationUpdateOne) SetStatus(v articlerecommendation.Status) *ArticleRecommendationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ArticleRecommendationUpdateOne) SetNillableStatus(v *articlerecommendation.Status) *ArticleRecommendationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_u *ArticleRecommendationUpdateOne) SetClusterID(id int) *ArticleRecommendationUpdateOne {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_u *ArticleRecommendationUpdateOne) SetCluster(v *TopicCluster) *ArticleRecommendationUpdateOne {
	return _u.SetClusterID(v.ID)
}

// AddRoadmapEntryIDs adds the "roadmap_entries" edge to the ContentRoadmap entity by IDs.
func (_u *ArticleRecommendationUpdateOne) AddRoadmapEntryIDs(ids ...int) *ArticleRecommendationUpdateOne {
	_u.mutation.AddRoadmapEntryIDs(ids...)
	return _u
}

// AddRoadmapEntries adds the "roadmap_entries" edges to the ContentRoadmap entity.
func (_u *ArticleRecommendationUpdateOne) AddRoadmapEntries(v ...*ContentRoadmap) *ArticleRecommendationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoadmapEntryIDs(ids...)
}

// Mutation returns the ArticleRecommendationMutation object of the builder.
func (_u *ArticleRecommendationUpdateOne) Mutation() *ArticleRecommendationMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (_u *ArticleRecommendationUpdateOne) ClearCluster() *ArticleRecommendationUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// ClearRoadmapEntries clears all "roadmap_entries" edges to the ContentRoadmap entity.
func (_u *ArticleRecommendationUpdateOne) ClearRoadmapEntries() *ArticleRecommendationUpdateOne {
	_u.mutation.ClearRoadmapEntries()
	return _u
}

// RemoveRoadmapEntryIDs removes the "roadmap_entries" edge to ContentRoadmap entities by IDs.
func (_u *ArticleRecommendationUpdateOne) RemoveRoadmapEntryIDs(ids ...int) *ArticleRecommendationUpdateOne {
	_u.mutation.RemoveRoadmapEntryIDs(ids...)
	return _u
}

// RemoveRoadmapEntries removes "roadmap_entries" edges to ContentRoadmap entities.
func (_u *ArticleRecommendationUpdateOne) RemoveRoadmapEntries(v ...*ContentRoadmap) *ArticleRecommendationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoadmapEntryIDs(ids...)
}

// Where appends a list predicates to the ArticleRecommendationUpdate builder.
func (_u *ArticleRecommendationUpdateOne) Where(ps ...predicate.ArticleRecommendation) *ArticleRecommendationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArticleRecommendationUpdateOne) Select(field string, fields ...string) *ArticleRecommendationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArticleRecommendation entity.
func (_u *ArticleRecommendationUpdateOne) Save(ctx context.Context) (*ArticleRecommendation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleRecommendationUpdateOne) SaveX(ctx context.Context) *ArticleRecommendation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArticleRecommendationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleRecommendationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleRecommendationUpdateOne) check() error {
	if v, ok := _u.mutation.EffortLevel(); ok {
		if err := articlerecommendation.EffortLevelValidator(v); err != nil {
			return &ValidationError{Name: "effort_level", err: fmt.Errorf(`ent: validator failed for field "ArticleRecommendation.effort_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := articlerecommendation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ArticleRecommendation.status": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArticleRecommendation.cluster"`)
	}
	return nil
}

func (_u *ArticleRecommendationUpdateOne) sqlSave(ctx context.Context) (_node *ArticleRecommendation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(articlerecommendation.Table, articlerecommendation.Columns, sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArticleRecommendation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, articlerecommendation.FieldID)
		for _, f := range fields {
			if !articlerecommendation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != articlerecommendation.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(articlerecommendation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hook(); ok {
		_spec.SetField(articlerecommendation.FieldHook, field.TypeString, value)
	}
	if _u.mutation.HookCleared() {
		_spec.ClearField(articlerecommendation.FieldHook, field.TypeString)
	}
	if value, ok := _u.mutation.Outline(); ok {
		_spec.SetField(articlerecommendation.FieldOutline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutline(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, articlerecommendation.FieldOutline, value)
		})
	}
	if _u.mutation.OutlineCleared() {
		_spec.ClearField(articlerecommendation.FieldOutline, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifferentiationScore(); ok {
		_spec.SetField(articlerecommendation.FieldDifferentiationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifferentiationScore(); ok {
		_spec.AddField(articlerecommendation.FieldDifferentiationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EffortLevel(); ok {
		_spec.SetField(articlerecommendation.FieldEffortLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(articlerecommendation.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   articlerecommendation.ClusterTable,
			Columns: []string{articlerecommendation.ClusterColumn},
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
			Table:   articlerecommendation.ClusterTable,
			Columns: []string{articlerecommendation.ClusterColumn},
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
			Table:   articlerecommendation.RoadmapEntriesTable,
			Columns: []string{articlerecommendation.RoadmapEntriesColumn},
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
			Table:   articlerecommendation.RoadmapEntriesTable,
			Columns: []string{articlerecommendation.RoadmapEntriesColumn},
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
			Table:   articlerecommendation.RoadmapEntriesTable,
			Columns: []string{articlerecommendation.RoadmapEntriesColumn},
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
	_node = &ArticleRecommendation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{articlerecommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
