// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/clientstrength"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topiccluster"
)

// ClientStrengthUpdate is the builder for updating ClientStrength entities.
type ClientStrengthUpdate struct {
	config
	hooks    []Hook
	mutation *ClientStrengthMutation
}

// Where appends a list predicates to the ClientStrengthUpdate builder.
func (_u *ClientStrengthUpdate) Where(ps ...predicate.ClientStrength) *ClientStrengthUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientDomain sets the "client_domain" field.
func (_u *ClientStrengthUpdate) SetClientDomain(v string) *ClientStrengthUpdate {
	_u.mutation.SetClientDomain(v)
	return _u
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_u *ClientStrengthUpdate) SetNillableClientDomain(v *string) *ClientStrengthUpdate {
	if v != nil {
		_u.SetClientDomain(*v)
	}
	return _u
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_u *ClientStrengthUpdate) SetTopicClusterID(v int) *ClientStrengthUpdate {
	_u.mutation.SetTopicClusterID(v)
	return _u
}

// SetNillableTopicClusterID sets the "topic_cluster_id" field if the given value is not nil.
func (_u *ClientStrengthUpdate) SetNillableTopicClusterID(v *int) *ClientStrengthUpdate {
	if v != nil {
		_u.SetTopicClusterID(*v)
	}
	return _u
}

// SetClientCount sets the "client_count" field.
func (_u *ClientStrengthUpdate) SetClientCount(v int) *ClientStrengthUpdate {
	_u.mutation.ResetClientCount()
	_u.mutation.SetClientCount(v)
	return _u
}

// SetNillableClientCount sets the "client_count" field if the given value is not nil.
func (_u *ClientStrengthUpdate) SetNillableClientCount(v *int) *ClientStrengthUpdate {
	if v != nil {
		_u.SetClientCount(*v)
	}
	return _u
}

// AddClientCount adds value to the "client_count" field.
func (_u *ClientStrengthUpdate) AddClientCount(v int) *ClientStrengthUpdate {
	_u.mutation.AddClientCount(v)
	return _u
}

// SetCompetitorCount sets the "competitor_count" field.
func (_u *ClientStrengthUpdate) SetCompetitorCount(v int) *ClientStrengthUpdate {
	_u.mutation.ResetCompetitorCount()
	_u.mutation.SetCompetitorCount(v)
	return _u
}

// SetNillableCompetitorCount sets the "competitor_count" field if the given value is not nil.
func (_u *ClientStrengthUpdate) SetNillableCompetitorCount(v *int) *ClientStrengthUpdate {
	if v != nil {
		_u.SetCompetitorCount(*v)
	}
	return _u
}

// AddCompetitorCount adds value to the "competitor_count" field.
func (_u *ClientStrengthUpdate) AddCompetitorCount(v int) *ClientStrengthUpdate {
	_u.mutation.AddCompetitorCount(v)
	return _u
}

// SetCoverageScore sets the "coverage_score" field.
func (_u *ClientStrengthUpdate) SetCoverageScore(v float64) *ClientStrengthUpdate {
	_u.mutation.ResetCoverageScore()
	_u.mutation.SetCoverageScore(v)
	return _u
}

// SetNillableCoverageScore sets the "coverage_score" field if the given value is not nil.
func (_u *ClientStrengthUpdate) SetNillableCoverageScore(v *float64) *ClientStrengthUpdate {
	if v != nil {
		_u.SetCoverageScore(*v)
	}
	return _u
}

// AddCoverageScore adds value to the "coverage_score" field.
func (_u *ClientStrengthUpdate) AddCoverageScore(v float64) *ClientStrengthUpdate {
	_u.mutation.AddCoverageScore(v)
	return _u
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_u *ClientStrengthUpdate) SetClusterID(id int) *ClientStrengthUpdate {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_u *ClientStrengthUpdate) SetCluster(v *TopicCluster) *ClientStrengthUpdate {
	return _u.SetClusterID(v.ID)
}

// Mutation returns the ClientStrengthMutation object of the builder.
func (_u *ClientStrengthUpdate) Mutation() *ClientStrengthMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (_u *ClientStrengthUpdate) ClearCluster() *ClientStrengthUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClientStrengthUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientStrengthUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClientStrengthUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientStrengthUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientStrengthUpdate) check() error {
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClientStrength.cluster"`)
	}
	return nil
}

func (_u *ClientStrengthUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientstrength.Table, clientstrength.Columns, sqlgraph.NewFieldSpec(clientstrength.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientDomain(); ok {
		_spec.SetField(clientstrength.FieldClientDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientCount(); ok {
		_spec.SetField(clientstrength.FieldClientCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClientCount(); ok {
		_spec.AddField(clientstrength.FieldClientCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompetitorCount(); ok {
		_spec.SetField(clientstrength.FieldCompetitorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompetitorCount(); ok {
		_spec.AddField(clientstrength.FieldCompetitorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CoverageScore(); ok {
		_spec.SetField(clientstrength.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverageScore(); ok {
		_spec.AddField(clientstrength.FieldCoverageScore, field.TypeFloat64, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clientstrength.ClusterTable,
			Columns: []string{clientstrength.ClusterColumn},
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
			Table:   clientstrength.ClusterTable,
			Columns: []string{clientstrength.ClusterColumn},
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
			err = &NotFoundError{clientstrength.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClientStrengthUpdateOne is the builder for updating a single ClientStrength entity.
type ClientStrengthUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClientStrengthMutation
}

// SetClientDomain sets the "client_domain" field.
func (_u *ClientStrengthUpdateOne) SetClientDomain(v string) *ClientStrengthUpdateOne {
	_u.mutation.SetClientDomain(v)
	return _u
}

// SetNillableClientDomain sets the "client_domain" field if the given value is not nil.
func (_u *ClientStrengthUpdateOne) SetNillableClientDomain(v *string) *ClientStrengthUpdateOne {
	if v != nil {
		_u.SetClientDomain(*v)
	}
	return _u
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (_u *ClientStrengthUpdateOne) SetTopicClusterID(v int) *ClientStrengthUpdateOne {
	_u.mutation.SetTopicClusterID(v)
	return _u
}

// SetNillableTopicClusterID sets the "topic_cluster_id" field if the given value is not nil.
func (_u *ClientStrengthUpdateOne) SetNillableTopicClusterID(v *int) *ClientStrengthUpdateOne {
	if v != nil {
		_u.SetTopicClusterID(*v)
	}
	return _u
}

// SetClientCount sets the "client_count" field.
func (_u *ClientStrengthUpdateOne) SetClientCount(v int) *ClientStrengthUpdateOne {
	_u.mutation.ResetClientCount()
	_u.mutation.SetClientCount(v)
	return _u
}

// SetNillableClientCount sets the "client_count" field if the given value is not nil.
func (_u *ClientStrengthUpdateOne) SetNillableClientCount(v *int) *ClientStrengthUpdateOne {
	if v != nil {
		_u.SetClientCount(*v)
	}
	return _u
}

// AddClientCount adds value to the "client_count" field.
func (_u *ClientStrengthUpdateOne) AddClientCount(v int) *ClientStrengthUpdateOne {
	_u.mutation.AddClientCount(v)
	return _u
}

// SetCompetitorCount sets the "competitor_count" field.
func (_u *ClientStrengthUpdateOne) SetCompetitorCount(v int) *ClientStrengthUpdateOne {
	_u.mutation.ResetCompetitorCount()
	_u.mutation.SetCompetitorCount(v)
	return _u
}

// SetNillableCompetitorCount sets the "competitor_count" field if the given value is not nil.
func (_u *ClientStrengthUpdateOne) SetNillableCompetitorCount(v *int) *ClientStrengthUpdateOne {
	if v != nil {
		_u.SetCompetitorCount(*v)
	}
	return _u
}

// AddCompetitorCount adds value to the "competitor_count" field.
func (_u *ClientStrengthUpdateOne) AddCompetitorCount(v int) *ClientStrengthUpdateOne {
	_u.mutation.AddCompetitorCount(v)
	return _u
}

// SetCoverageScore sets the "coverage_score" field.
func (_u *ClientStrengthUpdateOne) SetCoverageScore(v float64) *ClientStrengthUpdateOne {
	_u.mutation.ResetCoverageScore()
	_u.mutation.SetCoverageScore(v)
	return _u
}

// SetNillableCoverageScore sets the "coverage_score" field if the given value is not nil.
func (_u *ClientStrengthUpdateOne) SetNillableCoverageScore(v *float64) *ClientStrengthUpdateOne {
	if v != nil {
		_u.SetCoverageScore(*v)
	}
	return _u
}

// AddCoverageScore adds value to the "coverage_score" field.
func (_u *ClientStrengthUpdateOne) AddCoverageScore(v float64) *ClientStrengthUpdateOne {
	_u.mutation.AddCoverageScore(v)
	return _u
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by ID.
func (_u *ClientStrengthUpdateOne) SetClusterID(id int) *ClientStrengthUpdateOne {
	_u.mutation.SetClusterID(id)
	return _u
}

// SetCluster sets the "cluster" edge to the TopicCluster entity.
func (_u *ClientStrengthUpdateOne) SetCluster(v *TopicCluster) *ClientStrengthUpdateOne {
	return _u.SetClusterID(v.ID)
}

// Mutation returns the ClientStrengthMutation object of the builder.
func (_u *ClientStrengthUpdateOne) Mutation() *ClientStrengthMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (_u *ClientStrengthUpdateOne) ClearCluster() *ClientStrengthUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// Where appends a list predicates to the ClientStrengthUpdate builder.
func (_u *ClientStrengthUpdateOne) Where(ps ...predicate.ClientStrength) *ClientStrengthUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClientStrengthUpdateOne) Select(field string, fields ...string) *ClientStrengthUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClientStrength entity.
func (_u *ClientStrengthUpdateOne) Save(ctx context.Context) (*ClientStrength, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientStrengthUpdateOne) SaveX(ctx context.Context) *ClientStrength {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClientStrengthUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientStrengthUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientStrengthUpdateOne) check() error {
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClientStrength.cluster"`)
	}
	return nil
}

func (_u *ClientStrengthUpdateOne) sqlSave(ctx context.Context) (_node *ClientStrength, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientstrength.Table, clientstrength.Columns, sqlgraph.NewFieldSpec(clientstrength.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClientStrength.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clientstrength.FieldID)
		for _, f := range fields {
			if !clientstrength.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clientstrength.FieldID {
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
		_spec.SetField(clientstrength.FieldClientDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientCount(); ok {
		_spec.SetField(clientstrength.FieldClientCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClientCount(); ok {
		_spec.AddField(clientstrength.FieldClientCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompetitorCount(); ok {
		_spec.SetField(clientstrength.FieldCompetitorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompetitorCount(); ok {
		_spec.AddField(clientstrength.FieldCompetitorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CoverageScore(); ok {
		_spec.SetField(clientstrength.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverageScore(); ok {
		_spec.AddField(clientstrength.FieldCoverageScore, field.TypeFloat64, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clientstrength.ClusterTable,
			Columns: []string{clientstrength.ClusterColumn},
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
			Table:   clientstrength.ClusterTable,
			Columns: []string{clientstrength.ClusterColumn},
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
	_node = &ClientStrength{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientstrength.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
