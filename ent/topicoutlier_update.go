// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/topicoutlier"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
)

// TopicOutlierUpdate is the builder for updating TopicOutlier entities.
type TopicOutlierUpdate struct {
	config
	hooks    []Hook
	mutation *TopicOutlierMutation
}

// Where appends a list predicates to the TopicOutlierUpdate builder.
func (_u *TopicOutlierUpdate) Where(ps ...predicate.TopicOutlier) *TopicOutlierUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *TopicOutlierUpdate) SetAnalysisID(v int) *TopicOutlierUpdate {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *TopicOutlierUpdate) SetNillableAnalysisID(v *int) *TopicOutlierUpdate {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *TopicOutlierUpdate) SetDocumentID(v string) *TopicOutlierUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *TopicOutlierUpdate) SetNillableDocumentID(v *string) *TopicOutlierUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetArticleID sets the "article_id" field.
func (_u *TopicOutlierUpdate) SetArticleID(v int) *TopicOutlierUpdate {
	_u.mutation.ResetArticleID()
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *TopicOutlierUpdate) SetNillableArticleID(v *int) *TopicOutlierUpdate {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// AddArticleID adds value to the "article_id" field.
func (_u *TopicOutlierUpdate) AddArticleID(v int) *TopicOutlierUpdate {
	_u.mutation.AddArticleID(v)
	return _u
}

// ClearArticleID clears the value of the "article_id" field.
func (_u *TopicOutlierUpdate) ClearArticleID() *TopicOutlierUpdate {
	_u.mutation.ClearArticleID()
	return _u
}

// SetNearestTopicID sets the "nearest_topic_id" field.
func (_u *TopicOutlierUpdate) SetNearestTopicID(v int) *TopicOutlierUpdate {
	_u.mutation.ResetNearestTopicID()
	_u.mutation.SetNearestTopicID(v)
	return _u
}

// SetNillableNearestTopicID sets the "nearest_topic_id" field if the given value is not nil.
func (_u *TopicOutlierUpdate) SetNillableNearestTopicID(v *int) *TopicOutlierUpdate {
	if v != nil {
		_u.SetNearestTopicID(*v)
	}
	return _u
}

// AddNearestTopicID adds value to the "nearest_topic_id" field.
func (_u *TopicOutlierUpdate) AddNearestTopicID(v int) *TopicOutlierUpdate {
	_u.mutation.AddNearestTopicID(v)
	return _u
}

// ClearNearestTopicID clears the value of the "nearest_topic_id" field.
func (_u *TopicOutlierUpdate) ClearNearestTopicID() *TopicOutlierUpdate {
	_u.mutation.ClearNearestTopicID()
	return _u
}

// SetPotentialCategory sets the "potential_category" field.
func (_u *TopicOutlierUpdate) SetPotentialCategory(v string) *TopicOutlierUpdate {
	_u.mutation.SetPotentialCategory(v)
	return _u
}

// SetNillablePotentialCategory sets the "potential_category" field if the given value is not nil.
func (_u *TopicOutlierUpdate) SetNillablePotentialCategory(v *string) *TopicOutlierUpdate {
	if v != nil {
		_u.SetPotentialCategory(*v)
	}
	return _u
}

// ClearPotentialCategory clears the value of the "potential_category" field.
func (_u *TopicOutlierUpdate) ClearPotentialCategory() *TopicOutlierUpdate {
	_u.mutation.ClearPotentialCategory()
	return _u
}

// SetEmbeddingDistance sets the "embedding_distance" field.
func (_u *TopicOutlierUpdate) SetEmbeddingDistance(v float64) *TopicOutlierUpdate {
	_u.mutation.ResetEmbeddingDistance()
	_u.mutation.SetEmbeddingDistance(v)
	return _u
}

// SetNillableEmbeddingDistance sets the "embedding_distance" field if the given value is not nil.
func (_u *TopicOutlierUpdate) SetNillableEmbeddingDistance(v *float64) *TopicOutlierUpdate {
	if v != nil {
		_u.SetEmbeddingDistance(*v)
	}
	return _u
}

// AddEmbeddingDistance adds value to the "embedding_distance" field.
func (_u *TopicOutlierUpdate) AddEmbeddingDistance(v float64) *TopicOutlierUpdate {
	_u.mutation.AddEmbeddingDistance(v)
	return _u
}

// SetAnalysis sets the "analysis" edge to the TrendPipelineExecution entity.
func (_u *TopicOutlierUpdate) SetAnalysis(v *TrendPipelineExecution) *TopicOutlierUpdate {
	return _u.SetAnalysisID(v.ID)
}

// Mutation returns the TopicOutlierMutation object of the builder.
func (_u *TopicOutlierUpdate) Mutation() *TopicOutlierMutation {
	return _u.mutation
}

// ClearAnalysis clears the "analysis" edge to the TrendPipelineExecution entity.
func (_u *TopicOutlierUpdate) ClearAnalysis() *TopicOutlierUpdate {
	_u.mutation.ClearAnalysis()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicOutlierUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicOutlierUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicOutlierUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicOutlierUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicOutlierUpdate) check() error {
	if _u.mutation.AnalysisCleared() && len(_u.mutation.AnalysisIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TopicOutlier.analysis"`)
	}
	return nil
}

func (_u *TopicOutlierUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicoutlier.Table, topicoutlier.Columns, sqlgraph.NewFieldSpec(topicoutlier.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(topicoutlier.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArticleID(); ok {
		_spec.SetField(topicoutlier.FieldArticleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleID(); ok {
		_spec.AddField(topicoutlier.FieldArticleID, field.TypeInt, value)
	}
	if _u.mutation.ArticleIDCleared() {
		_spec.ClearField(topicoutlier.FieldArticleID, field.TypeInt)
	}
	if value, ok := _u.mutation.NearestTopicID(); ok {
		_spec.SetField(topicoutlier.FieldNearestTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNearestTopicID(); ok {
		_spec.AddField(topicoutlier.FieldNearestTopicID, field.TypeInt, value)
	}
	if _u.mutation.NearestTopicIDCleared() {
		_spec.ClearField(topicoutlier.FieldNearestTopicID, field.TypeInt)
	}
	if value, ok := _u.mutation.PotentialCategory(); ok {
		_spec.SetField(topicoutlier.FieldPotentialCategory, field.TypeString, value)
	}
	if _u.mutation.PotentialCategoryCleared() {
		_spec.ClearField(topicoutlier.FieldPotentialCategory, field.TypeString)
	}
	if value, ok := _u.mutation.EmbeddingDistance(); ok {
		_spec.SetField(topicoutlier.FieldEmbeddingDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmbeddingDistance(); ok {
		_spec.AddField(topicoutlier.FieldEmbeddingDistance, field.TypeFloat64, value)
	}
	if _u.mutation.AnalysisCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topicoutlier.AnalysisTable,
			Columns: []string{topicoutlier.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topicoutlier.AnalysisTable,
			Columns: []string{topicoutlier.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicoutlier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicOutlierUpdateOne is the builder for updating a single TopicOutlier entity.
type TopicOutlierUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicOutlierMutation
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *TopicOutlierUpdateOne) SetAnalysisID(v int) *TopicOutlierUpdateOne {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *TopicOutlierUpdateOne) SetNillableAnalysisID(v *int) *TopicOutlierUpdateOne {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *TopicOutlierUpdateOne) SetDocumentID(v string) *TopicOutlierUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *TopicOutlierUpdateOne) SetNillableDocumentID(v *string) *TopicOutlierUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetArticleID sets the "article_id" field.
func (_u *TopicOutlierUpdateOne) SetArticleID(v int) *TopicOutlierUpdateOne {
	_u.mutation.ResetArticleID()
	_u.mutation.SetArticleID(v)
	return _u
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (_u *TopicOutlierUpdateOne) SetNillableArticleID(v *int) *TopicOutlierUpdateOne {
	if v != nil {
		_u.SetArticleID(*v)
	}
	return _u
}

// AddArticleID adds value to the "article_id" field.
func (_u *TopicOutlierUpdateOne) AddArticleID(v int) *TopicOutlierUpdateOne {
	_u.mutation.AddArticleID(v)
	return _u
}

// ClearArticleID clears the value of the "article_id" field.
func (_u *TopicOutlierUpdateOne) ClearArticleID() *TopicOutlierUpdateOne {
	_u.mutation.ClearArticleID()
	return _u
}

// SetNearestTopicID sets the "nearest_topic_id" field.
func (_u *TopicOutlierUpdateOne) SetNearestTopicID(v int) *TopicOutlierUpdateOne {
	_u.mutation.ResetNearestTopicID()
	_u.mutation.SetNearestTopicID(v)
	return _u
}

// SetNillableNearestTopicID sets the "nearest_topic_id" field if the given value is not nil.
func (_u *TopicOutlierUpdateOne) SetNillableNearestTopicID(v *int) *TopicOutlierUpdateOne {
	if v != nil {
		_u.SetNearestTopicID(*v)
	}
	return _u
}

// AddNearestTopicID adds value to the "nearest_topic_id" field.
func (_u *TopicOutlierUpdateOne) AddNearestTopicID(v int) *TopicOutlierUpdateOne {
	_u.mutation.AddNearestTopicID(v)
	return _u
}

// ClearNearestTopicID clears the value of the "nearest_topic_id" field.
func (_u *TopicOutlierUpdateOne) ClearNearestTopicID() *TopicOutlierUpdateOne {
	_u.mutation.ClearNearestTopicID()
	return _u
}

// SetPotentialCategory sets the "potential_category" field.
func (_u *TopicOutlierUpdateOne) SetPotentialCategory(v string) *TopicOutlierUpdateOne {
	_u.mutation.SetPotentialCategory(v)
	return _u
}

// SetNillablePotentialCategory sets the "potential_category" field if the given value is not nil.
func (_u *TopicOutlierUpdateOne) SetNillablePotentialCategory(v *string) *TopicOutlierUpdateOne {
	if v != nil {
		_u.SetPotentialCategory(*v)
	}
	return _u
}

// ClearPotentialCategory clears the value of the "potential_category" field.
func (_u *TopicOutlierUpdateOne) ClearPotentialCategory() *TopicOutlierUpdateOne {
	_u.mutation.ClearPotentialCategory()
	return _u
}

// SetEmbeddingDistance sets the "embedding_distance" field.
func (_u *TopicOutlierUpdateOne) SetEmbeddingDistance(v float64) *TopicOutlierUpdateOne {
	_u.mutation.ResetEmbeddingDistance()
	_u.mutation.SetEmbeddingDistance(v)
	return _u
}

// SetNillableEmbeddingDistance sets the "embedding_distance" field if the given value is not nil.
func (_u *TopicOutlierUpdateOne) SetNillableEmbeddingDistance(v *float64) *TopicOutlierUpdateOne {
	if v != nil {
		_u.SetEmbeddingDistance(*v)
	}
	return _u
}

// AddEmbeddingDistance adds value to the "embedding_distance" field.
func (_u *TopicOutlierUpdateOne) AddEmbeddingDistance(v float64) *TopicOutlierUpdateOne {
	_u.mutation.AddEmbeddingDistance(v)
	return _u
}

// SetAnalysis sets the "analysis" edge to the TrendPipelineExecution entity.
func (_u *TopicOutlierUpdateOne) SetAnalysis(v *TrendPipelineExecution) *TopicOutlierUpdateOne {
	return _u.SetAnalysisID(v.ID)
}

// Mutation returns the TopicOutlierMutation object of the builder.
func (_u *TopicOutlierUpdateOne) Mutation() *TopicOutlierMutation {
	return _u.mutation
}

// ClearAnalysis clears the "analysis" edge to the TrendPipelineExecution entity.
func (_u *TopicOutlierUpdateOne) ClearAnalysis() *TopicOutlierUpdateOne {
	_u.mutation.ClearAnalysis()
	return _u
}

// Where appends a list predicates to the TopicOutlierUpdate builder.
func (_u *TopicOutlierUpdateOne) Where(ps ...predicate.TopicOutlier) *TopicOutlierUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicOutlierUpdateOne) Select(field string, fields ...string) *TopicOutlierUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicOutlier entity.
func (_u *TopicOutlierUpdateOne) Save(ctx context.Context) (*TopicOutlier, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicOutlierUpdateOne) SaveX(ctx context.Context) *TopicOutlier {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicOutlierUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicOutlierUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicOutlierUpdateOne) check() error {
	if _u.mutation.AnalysisCleared() && len(_u.mutation.AnalysisIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TopicOutlier.analysis"`)
	}
	return nil
}

func (_u *TopicOutlierUpdateOne) sqlSave(ctx context.Context) (_node *TopicOutlier, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicoutlier.Table, topicoutlier.Columns, sqlgraph.NewFieldSpec(topicoutlier.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicOutlier.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicoutlier.FieldID)
		for _, f := range fields {
			if !topicoutlier.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicoutlier.FieldID {
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
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(topicoutlier.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArticleID(); ok {
		_spec.SetField(topicoutlier.FieldArticleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleID(); ok {
		_spec.AddField(topicoutlier.FieldArticleID, field.TypeInt, value)
	}
	if _u.mutation.ArticleIDCleared() {
		_spec.ClearField(topicoutlier.FieldArticleID, field.TypeInt)
	}
	if value, ok := _u.mutation.NearestTopicID(); ok {
		_spec.SetField(topicoutlier.FieldNearestTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNearestTopicID(); ok {
		_spec.AddField(topicoutlier.FieldNearestTopicID, field.TypeInt, value)
	}
	if _u.mutation.NearestTopicIDCleared() {
		_spec.ClearField(topicoutlier.FieldNearestTopicID, field.TypeInt)
	}
	if value, ok := _u.mutation.PotentialCategory(); ok {
		_spec.SetField(topicoutlier.FieldPotentialCategory, field.TypeString, value)
	}
	if _u.mutation.PotentialCategoryCleared() {
		_spec.ClearField(topicoutlier.FieldPotentialCategory, field.TypeString)
	}
	if value, ok := _u.mutation.EmbeddingDistance(); ok {
		_spec.SetField(topicoutlier.FieldEmbeddingDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmbeddingDistance(); ok {
		_spec.AddField(topicoutlier.FieldEmbeddingDistance, field.TypeFloat64, value)
	}
	if _u.mutation.AnalysisCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topicoutlier.AnalysisTable,
			Columns: []string{topicoutlier.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topicoutlier.AnalysisTable,
			Columns: []string{topicoutlier.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trendpipelineexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TopicOutlier{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicoutlier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
