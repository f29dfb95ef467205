// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ContentRoadmapUpdate is the builder for updating ContentRoadmap entities.
type ContentRoadmapUpdate struct {
	config
	hooks    []Hook
	mutation *ContentRoadmapMutation
}

// Where appends a list predicates to the ContentRoadmapUpdate builder.
func (_u *ContentRoadmapUpdate) Where(ps ...predicate.ContentRoadmap) *ContentRoadmapUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientDomain sets the "client_domain" field.
func (_u *ContentRoadmapUpdate) SetClientDomain(v string) *ContentRoadmapUpdate {
	_u.mutation.SetClientDomain(v)
	return _u
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_u *ContentRoadmapUpdate) SetNillableClientDomain(v *string) *ContentRoadmapUpdate {
	if v != nil {
		_u.SetClientDomain(*v)
	}
	return _u
}

// SetGapID sets the "gap_id" field.
func (_u *ContentRoadmapUpdate) SetGapID(v int) *ContentRoadmapUpdate {
	_u.mutation.SetGapID(v)
	return _u
}

// SetNillableGapID sets the "gap_id" field if the given value is not nil.
func (_u *ContentRoadmapUpdate) SetNillableGapID(v *int) *ContentRoadmapUpdate {
	if v != nil {
		_u.SetGapID(*v)
	}
	return _u
}

// SetRecommendationID sets the "recommendation_id" field.
func (_u *ContentRoadmapUpdate) SetRecommendationID(v int) *ContentRoadmapUpdate {
	_u.mutation.SetRecommendationID(v)
	return _u
}

// SetNillableRecommendationID sets the "recommendation_id" field if the given value is not nil.
func (_u *ContentRoadmapUpdate) SetNillableRecommendationID(v *int) *ContentRoadmapUpdate {
	if v != nil {
		_u.SetRecommendationID(*v)
	}
	return _u
}

// SetPriorityOrder sets the "priority_order" field.
func (_u *ContentRoadmapUpdate) SetPriorityOrder(v int) *ContentRoadmapUpdate {
	_u.mutation.ResetPriorityOrder()
	_u.mutation.SetPriorityOrder(v)
	return _u
}

// SetNillablePriorityOrder sets the "priority_order" field if the given value is not nil.
func (_u *ContentRoadmapUpdate) SetNillablePriorityOrder(v *int) *ContentRoadmapUpdate {
	if v != nil {
		_u.SetPriorityOrder(*v)
	}
	return _u
}

// AddPriorityOrder adds value to the "priority_order" field.
func (_u *ContentRoadmapUpdate) AddPriorityOrder(v int) *ContentRoadmapUpdate {
	_u.mutation.AddPriorityOrder(v)
	return _u
}

// SetPriorityTier sets the "priority_tier" field.
func (_u *ContentRoadmapUpdate) SetPriorityTier(v contentroadmap.PriorityTier) *ContentRoadmapUpdate {
	_u.mutation.SetPriorityTier(v)
	return _u
}

// SetNillablePriorityTier sets the "priority_tier" field if the given value is not nil.
func (_u *ContentRoadmapUpdate) SetNillablePriorityTier(v *contentroadmap.PriorityTier) *ContentRoadmapUpdate {
	if v != nil {
		_u.SetPriorityTier(*v)
	}
	return _u
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (_u *ContentRoadmapUpdate) SetEstimatedEffort(v contentroadmap.EstimatedEffort) *ContentRoadmapUpdate {
	_u.mutation.SetEstimatedEffort(v)
	return _u
}

// SetNillableEstimatedEffort sets the "estimated_effort" field if the given value is not nil.
func (_u *ContentRoadmapUpdate) SetNillableEstimatedEffort(v *contentroadmap.EstimatedEffort) *ContentRoadmapUpdate {
	if v != nil {
		_u.SetEstimatedEffort(*v)
	}
	return _u
}

// SetGap sets the "gap" edge to the EditorialGap entity.
func (_u *ContentRoadmapUpdate) SetGap(v *EditorialGap) *ContentRoadmapUpdate {
	return _u.SetGapID(v.ID)
}

// SetRecommendation sets the "recommendation" edge to the ArticleRecommendation entity.
func (_u *ContentRoadmapUpdate) SetRecommendation(v *ArticleRecommendation) *ContentRoadmapUpdate {
	return _u.SetRecommendationID(v.ID)
}

// Mutation returns the ContentRoadmapMutation object of the builder.
func (_u *ContentRoadmapUpdate) Mutation() *ContentRoadmapMutation {
	return _u.mutation
}

// ClearGap clears the "gap" edge to the EditorialGap entity.
func (_u *ContentRoadmapUpdate) ClearGap() *ContentRoadmapUpdate {
	_u.mutation.ClearGap()
	return _u
}

// ClearRecommendation clears the "recommendation" edge to the ArticleRecommendation entity.
func (_u *ContentRoadmapUpdate) ClearRecommendation() *ContentRoadmapUpdate {
	_u.mutation.ClearRecommendation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentRoadmapUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentRoadmapUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentRoadmapUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentRoadmapUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentRoadmapUpdate) check() error {
	if v, ok := _u.mutation.PriorityOrder(); ok {
		if err := contentroadmap.PriorityOrderValidator(v); err != nil {
			return &ValidationError{Name: "priority_order", err: fmt.Errorf(`ent: validator failed for field "ContentRoadmap.priority_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriorityTier(); ok {
		if err := contentroadmap.PriorityTierValidator(v); err != nil {
			return &ValidationError{Name: "priority_tier", err: fmt.Errorf(`ent: validator failed for field "ContentRoadmap.priority_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedEffort(); ok {
		if err := contentroadmap.EstimatedEffortValidator(v); err != nil {
			return &ValidationError{Name: "estimated_effort", err: fmt.Errorf(`ent: validator failed for field "ContentRoadmap.estimated_effort": %w`, err)}
		}
	}
	if _u.mutation.GapCleared() && len(_u.mutation.GapIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContentRoadmap.gap"`)
	}
	if _u.mutation.RecommendationCleared() && len(_u.mutation.RecommendationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContentRoadmap.recommendation"`)
	}
	return nil
}

func (_u *ContentRoadmapUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentroadmap.Table, contentroadmap.Columns, sqlgraph.NewFieldSpec(contentroadmap.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientDomain(); ok {
		_spec.SetField(contentroadmap.FieldClientDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityOrder(); ok {
		_spec.SetField(contentroadmap.FieldPriorityOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityOrder(); ok {
		_spec.AddField(contentroadmap.FieldPriorityOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PriorityTier(); ok {
		_spec.SetField(contentroadmap.FieldPriorityTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EstimatedEffort(); ok {
		_spec.SetField(contentroadmap.FieldEstimatedEffort, field.TypeEnum, value)
	}
	if _u.mutation.GapCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contentroadmap.GapTable,
			Columns: []string{contentroadmap.GapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GapIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contentroadmap.GapTable,
			Columns: []string{contentroadmap.GapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecommendationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contentroadmap.RecommendationTable,
			Columns: []string{contentroadmap.RecommendationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecommendationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contentroadmap.RecommendationTable,
			Columns: []string{contentroadmap.RecommendationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentroadmap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentRoadmapUpdateOne is the builder for updating a single ContentRoadmap entity.
type ContentRoadmapUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentRoadmapMutation
}

// SetClientDomain sets the "client_domain" field.
func (_u *ContentRoadmapUpdateOne) SetClientDomain(v string) *ContentRoadmapUpdateOne {
	_u.mutation.SetClientDomain(v)
	return _u
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_u *ContentRoadmapUpdateOne) SetNillableClientDomain(v *string) *ContentRoadmapUpdateOne {
	if v != nil {
		_u.SetClientDomain(*v)
	}
	return _u
}

// SetGapID sets the "gap_id" field.
func (_u *ContentRoadmapUpdateOne) SetGapID(v int) *ContentRoadmapUpdateOne {
	_u.mutation.SetGapID(v)
	return _u
}

// SetNillableGapID sets the "gap_id" field if the given value is not nil.
func (_u *ContentRoadmapUpdateOne) SetNillableGapID(v *int) *ContentRoadmapUpdateOne {
	if v != nil {
		_u.SetGapID(*v)
	}
	return _u
}

// SetRecommendationID sets the "recommendation_id" field.
func (_u *ContentRoadmapUpdateOne) SetRecommendationID(v int) *ContentRoadmapUpdateOne {
	_u.mutation.SetRecommendationID(v)
	return _u
}

// SetNillableRecommendationID sets the "recommendation_id" field if the given value is not nil.
func (_u *ContentRoadmapUpdateOne) SetNillableRecommendationID(v *int) *ContentRoadmapUpdateOne {
	if v != nil {
		_u.SetRecommendationID(*v)
	}
	return _u
}

// SetPriorityOrder sets the "priority_order" field.
func (_u *ContentRoadmapUpdateOne) SetPriorityOrder(v int) *ContentRoadmapUpdateOne {
	_u.mutation.ResetPriorityOrder()
	_u.mutation.SetPriorityOrder(v)
	return _u
}

// SetNillablePriorityOrder sets the "priority_order" field if the given value is not nil.
func (_u *ContentRoadmapUpdateOne) SetNillablePriorityOrder(v *int) *ContentRoadmapUpdateOne {
	if v != nil {
		_u.SetPriorityOrder(*v)
	}
	return _u
}

// AddPriorityOrder adds value to the "priority_order" field.
func (_u *ContentRoadmapUpdateOne) AddPriorityOrder(v int) *ContentRoadmapUpdateOne {
	_u.mutation.AddPriorityOrder(v)
	return _u
}

// SetPriorityTier sets the "priority_tier" field.
func (_u *ContentRoadmapUpdateOne) SetPriorityTier(v contentroadmap.PriorityTier) *ContentRoadmapUpdateOne {
	_u.mutation.SetPriorityTier(v)
	return _u
}

// SetNillablePriorityTier sets the "priority_tier" field if the given value is not nil.
func (_u *ContentRoadmapUpdateOne) SetNillablePriorityTier(v *contentroadmap.PriorityTier) *ContentRoadmapUpdateOne {
	if v != nil {
		_u.SetPriorityTier(*v)
	}
	return _u
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (_u *ContentRoadmapUpdateOne) SetEstimatedEffort(v contentroadmap.EstimatedEffort) *ContentRoadmapUpdateOne {
	_u.mutation.SetEstimatedEffort(v)
	return _u
}

// SetNillableEstimatedEffort sets the "estimated_effort" field if the given value is not nil.
func (_u *ContentRoadmapUpdateOne) SetNillableEstimatedEffort(v *contentroadmap.EstimatedEffort) *ContentRoadmapUpdateOne {
	if v != nil {
		_u.SetEstimatedEffort(*v)
	}
	return _u
}

// SetGap sets the "gap" edge to the EditorialGap entity.
func (_u *ContentRoadmapUpdateOne) SetGap(v *EditorialGap) *ContentRoadmapUpdateOne {
	return _u.SetGapID(v.ID)
}

// SetRecommendation sets the "recommendation" edge to the ArticleRecommendation entity.
func (_u *ContentRoadmapUpdateOne) SetRecommendation(v *ArticleRecommendation) *ContentRoadmapUpdateOne {
	return _u.SetRecommendationID(v.ID)
}

// Mutation returns the ContentRoadmapMutation object of the builder.
func (_u *ContentRoadmapUpdateOne) Mutation() *ContentRoadmapMutation {
	return _u.mutation
}

// ClearGap clears the "gap" edge to the EditorialGap entity.
func (_u *ContentRoadmapUpdateOne) ClearGap() *ContentRoadmapUpdateOne {
	_u.mutation.ClearGap()
	return _u
}

// ClearRecommendation clears the "recommendation" edge to the ArticleRecommendation entity.
func (_u *ContentRoadmapUpdateOne) ClearRecommendation() *ContentRoadmapUpdateOne {
	_u.mutation.ClearRecommendation()
	return _u
}

// Where appends a list predicates to the ContentRoadmapUpdate builder.
func (_u *ContentRoadmapUpdateOne) Where(ps ...predicate.ContentRoadmap) *ContentRoadmapUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentRoadmapUpdateOne) Select(field string, fields ...string) *ContentRoadmapUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentRoadmap entity.
func (_u *ContentRoadmapUpdateOne) Save(ctx context.Context) (*ContentRoadmap, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentRoadmapUpdateOne) SaveX(ctx context.Context) *ContentRoadmap {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentRoadmapUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentRoadmapUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentRoadmapUpdateOne) check() error {
	if v, ok := _u.mutation.PriorityOrder(); ok {
		if err := contentroadmap.PriorityOrderValidator(v); err != nil {
			return &ValidationError{Name: "priority_order", err: fmt.Errorf(`ent: validator failed for field "ContentRoadmap.priority_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriorityTier(); ok {
		if err := contentroadmap.PriorityTierValidator(v); err != nil {
			return &ValidationError{Name: "priority_tier", err: fmt.Errorf(`ent: validator failed for field "ContentRoadmap.priority_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedEffort(); ok {
		if err := contentroadmap.EstimatedEffortValidator(v); err != nil {
			return &ValidationError{Name: "estimated_effort", err: fmt.Errorf(`ent: validator failed for field "ContentRoadmap.estimated_effort": %w`, err)}
		}
	}
	if _u.mutation.GapCleared() && len(_u.mutation.GapIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContentRoadmap.gap"`)
	}
	if _u.mutation.RecommendationCleared() && len(_u.mutation.RecommendationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContentRoadmap.recommendation"`)
	}
	return nil
}

func (_u *ContentRoadmapUpdateOne) sqlSave(ctx context.Context) (_node *ContentRoadmap, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentroadmap.Table, contentroadmap.Columns, sqlgraph.NewFieldSpec(contentroadmap.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentRoadmap.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentroadmap.FieldID)
		for _, f := range fields {
			if !contentroadmap.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentroadmap.FieldID {
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
		_spec.SetField(contentroadmap.FieldClientDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityOrder(); ok {
		_spec.SetField(contentroadmap.FieldPriorityOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityOrder(); ok {
		_spec.AddField(contentroadmap.FieldPriorityOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PriorityTier(); ok {
		_spec.SetField(contentroadmap.FieldPriorityTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EstimatedEffort(); ok {
		_spec.SetField(contentroadmap.FieldEstimatedEffort, field.TypeEnum, value)
	}
	if _u.mutation.GapCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contentroadmap.GapTable,
			Columns: []string{contentroadmap.GapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GapIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contentroadmap.GapTable,
			Columns: []string{contentroadmap.GapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editorialgap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecommendationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contentroadmap.RecommendationTable,
			Columns: []string{contentroadmap.RecommendationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecommendationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contentroadmap.RecommendationTable,
			Columns: []string{contentroadmap.RecommendationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(articlerecommendation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ContentRoadmap{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentroadmap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
