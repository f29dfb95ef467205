// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/competitor"
	"github.com/trendscope/trendscope/ent/predicate"
)

// CompetitorUpdate is the builder for updating Competitor entities.
type CompetitorUpdate struct {
	config
	hooks    []Hook
	mutation *CompetitorMutation
}

// Where appends a list predicates to the CompetitorUpdate builder.
func (_u *CompetitorUpdate) Where(ps ...predicate.Competitor) *CompetitorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientDomain sets the "client_domain" field.
func (_u *CompetitorUpdate) SetClientDomain(v string) *CompetitorUpdate {
	_u.mutation.SetClientDomain(v)
	return _u
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_u *CompetitorUpdate) SetNillableClientDomain(v *string) *CompetitorUpdate {
	if v != nil {
		_u.SetClientDomain(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *CompetitorUpdate) SetDomain(v string) *CompetitorUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *CompetitorUpdate) SetNillableDomain(v *string) *CompetitorUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *CompetitorUpdate) SetSource(v string) *CompetitorUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CompetitorUpdate) SetNillableSource(v *string) *CompetitorUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *CompetitorUpdate) ClearSource() *CompetitorUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *CompetitorUpdate) SetRelevanceScore(v float64) *CompetitorUpdate {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *CompetitorUpdate) SetNillableRelevanceScore(v *float64) *CompetitorUpdate {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *CompetitorUpdate) AddRelevanceScore(v float64) *CompetitorUpdate {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// SetValidated sets the "validated" field.
func (_u *CompetitorUpdate) SetValidated(v bool) *CompetitorUpdate {
	_u.mutation.SetValidated(v)
	return _u
}

// SetNillableValidated sets the "validated" field if the given value is not nil.
func (_u *CompetitorUpdate) SetNillableValidated(v *bool) *CompetitorUpdate {
	if v != nil {
		_u.SetValidated(*v)
	}
	return _u
}

// SetExcluded sets the "excluded" field.
func (_u *CompetitorUpdate) SetExcluded(v bool) *CompetitorUpdate {
	_u.mutation.SetExcluded(v)
	return _u
}

// SetNillableExcluded sets the "excluded" field if the given value is not nil.
func (_u *CompetitorUpdate) SetNillableExcluded(v *bool) *CompetitorUpdate {
	if v != nil {
		_u.SetExcluded(*v)
	}
	return _u
}

// SetValidationDate sets the "validation_date" field.
func (_u *CompetitorUpdate) SetValidationDate(v time.Time) *CompetitorUpdate {
	_u.mutation.SetValidationDate(v)
	return _u
}

// SetNillableValidationDate sets the "validation_date" field if the given value is not nil.
func (_u *CompetitorUpdate) SetNillableValidationDate(v *time.Time) *CompetitorUpdate {
	if v != nil {
		_u.SetValidationDate(*v)
	}
	return _u
}

// ClearValidationDate clears the value of the "validation_date" field.
func (_u *CompetitorUpdate) ClearValidationDate() *CompetitorUpdate {
	_u.mutation.ClearValidationDate()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *CompetitorUpdate) SetIsValid(v bool) *CompetitorUpdate {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *CompetitorUpdate) SetNillableIsValid(v *bool) *CompetitorUpdate {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// Mutation returns the CompetitorMutation object of the builder.
func (_u *CompetitorUpdate) Mutation() *CompetitorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompetitorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompetitorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompetitorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompetitorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CompetitorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(competitor.Table, competitor.Columns, sqlgraph.NewFieldSpec(competitor.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientDomain(); ok {
		_spec.SetField(competitor.FieldClientDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(competitor.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(competitor.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(competitor.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(competitor.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(competitor.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Validated(); ok {
		_spec.SetField(competitor.FieldValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Excluded(); ok {
		_spec.SetField(competitor.FieldExcluded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationDate(); ok {
		_spec.SetField(competitor.FieldValidationDate, field.TypeTime, value)
	}
	if _u.mutation.ValidationDateCleared() {
		_spec.ClearField(competitor.FieldValidationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(competitor.FieldIsValid, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{competitor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompetitorUpdateOne is the builder for updating a single Competitor entity.
type CompetitorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompetitorMutation
}

// SetClientDomain sets the "client_domain" field.
func (_u *CompetitorUpdateOne) SetClientDomain(v string) *CompetitorUpdateOne {
	_u.mutation.SetClientDomain(v)
	return _u
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_u *CompetitorUpdateOne) SetNillableClientDomain(v *string) *CompetitorUpdateOne {
	if v != nil {
		_u.SetClientDomain(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *CompetitorUpdateOne) SetDomain(v string) *CompetitorUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *CompetitorUpdateOne) SetNillableDomain(v *string) *CompetitorUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *CompetitorUpdateOne) SetSource(v string) *CompetitorUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CompetitorUpdateOne) SetNillableSource(v *string) *CompetitorUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *CompetitorUpdateOne) ClearSource() *CompetitorUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *CompetitorUpdateOne) SetRelevanceScore(v float64) *CompetitorUpdateOne {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *CompetitorUpdateOne) SetNillableRelevanceScore(v *float64) *CompetitorUpdateOne {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *CompetitorUpdateOne) AddRelevanceScore(v float64) *CompetitorUpdateOne {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// SetValidated sets the "validated" field.
func (_u *CompetitorUpdateOne) SetValidated(v bool) *CompetitorUpdateOne {
	_u.mutation.SetValidated(v)
	return _u
}

// SetNillableValidated sets the "validated" field if the given value is not nil.
func (_u *CompetitorUpdateOne) SetNillableValidated(v *bool) *CompetitorUpdateOne {
	if v != nil {
		_u.SetValidated(*v)
	}
	return _u
}

// SetExcluded sets the "excluded" field.
func (_u *CompetitorUpdateOne) SetExcluded(v bool) *CompetitorUpdateOne {
	_u.mutation.SetExcluded(v)
	return _u
}

// SetNillableExcluded sets the "excluded" field if the given value is not nil.
func (_u *CompetitorUpdateOne) SetNillableExcluded(v *bool) *CompetitorUpdateOne {
	if v != nil {
		_u.SetExcluded(*v)
	}
	return _u
}

// SetValidationDate sets the "validation_date" field.
func (_u *CompetitorUpdateOne) SetValidationDate(v time.Time) *CompetitorUpdateOne {
	_u.mutation.SetValidationDate(v)
	return _u
}

// SetNillableValidationDate sets the "validation_date" field if the given value is not nil.
func (_u *CompetitorUpdateOne) SetNillableValidationDate(v *time.Time) *CompetitorUpdateOne {
	if v != nil {
		_u.SetValidationDate(*v)
	}
	return _u
}

// ClearValidationDate clears the value of the "validation_date" field.
func (_u *CompetitorUpdateOne) ClearValidationDate() *CompetitorUpdateOne {
	_u.mutation.ClearValidationDate()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *CompetitorUpdateOne) SetIsValid(v bool) *CompetitorUpdateOne {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *CompetitorUpdateOne) SetNillableIsValid(v *bool) *CompetitorUpdateOne {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// Mutation returns the CompetitorMutation object of the builder.
func (_u *CompetitorUpdateOne) Mutation() *CompetitorMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompetitorUpdate builder.
func (_u *CompetitorUpdateOne) Where(ps ...predicate.Competitor) *CompetitorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompetitorUpdateOne) Select(field string, fields ...string) *CompetitorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Competitor entity.
func (_u *CompetitorUpdateOne) Save(ctx context.Context) (*Competitor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompetitorUpdateOne) SaveX(ctx context.Context) *Competitor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompetitorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompetitorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CompetitorUpdateOne) sqlSave(ctx context.Context) (_node *Competitor, err error) {
	_spec := sqlgraph.NewUpdateSpec(competitor.Table, competitor.Columns, sqlgraph.NewFieldSpec(competitor.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Competitor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, competitor.FieldID)
		for _, f := range fields {
			if !competitor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != competitor.FieldID {
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
		_spec.SetField(competitor.FieldClientDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(competitor.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(competitor.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(competitor.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(competitor.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(competitor.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Validated(); ok {
		_spec.SetField(competitor.FieldValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Excluded(); ok {
		_spec.SetField(competitor.FieldExcluded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationDate(); ok {
		_spec.SetField(competitor.FieldValidationDate, field.TypeTime, value)
	}
	if _u.mutation.ValidationDateCleared() {
		_spec.ClearField(competitor.FieldValidationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(competitor.FieldIsValid, field.TypeBool, value)
	}
	_node = &Competitor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{competitor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
