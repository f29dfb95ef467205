// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/competitorarticle"
	"github.com/trendscope/trendscope/ent/predicate"
)

// CompetitorArticleUpdate is the builder for updating CompetitorArticle entities.
type CompetitorArticleUpdate struct {
	config
	hooks    []Hook
	mutation *CompetitorArticleMutation
}

// Where appends a list predicates to the CompetitorArticleUpdate builder.
func (_u *CompetitorArticleUpdate) Where(ps ...predicate.CompetitorArticle) *CompetitorArticleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDomain sets the "domain" field.
func (_u *CompetitorArticleUpdate) SetDomain(v string) *CompetitorArticleUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *CompetitorArticleUpdate) SetNillableDomain(v *string) *CompetitorArticleUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *CompetitorArticleUpdate) SetURL(v string) *CompetitorArticleUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CompetitorArticleUpdate) SetNillableURL(v *string) *CompetitorArticleUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetURLHash sets the "url_hash" field.
func (_u *CompetitorArticleUpdate) SetURLHash(v string) *CompetitorArticleUpdate {
	_u.mutation.SetURLHash(v)
	return _u
}

// SetNillableURLHash sets the "url_hash" field if the given value is not nil.
func (_u *CompetitorArticleUpdate) SetNillableURLHash(v *string) *CompetitorArticleUpdate {
	if v != nil {
		_u.SetURLHash(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CompetitorArticleUpdate) SetTitle(v string) *CompetitorArticleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CompetitorArticleUpdate) SetNillableTitle(v *string) *CompetitorArticleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CompetitorArticleUpdate) ClearTitle() *CompetitorArticleUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetContentText sets the "content_text" field.
func (_u *CompetitorArticleUpdate) SetContentText(v string) *CompetitorArticleUpdate {
	_u.mutation.SetContentText(v)
	return _u
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_u *CompetitorArticleUpdate) SetNillableContentText(v *string) *CompetitorArticleUpdate {
	if v != nil {
		_u.SetContentText(*v)
	}
	return _u
}

// ClearContentText clears the value of the "content_text" field.
func (_u *CompetitorArticleUpdate) ClearContentText() *CompetitorArticleUpdate {
	_u.mutation.ClearContentText()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *CompetitorArticleUpdate) SetAuthor(v string) *CompetitorArticleUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *CompetitorArticleUpdate) SetNillableAuthor(v *string) *CompetitorArticleUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *CompetitorArticleUpdate) ClearAuthor() *CompetitorArticleUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetPublishedDate sets the "published_date" field.
func (_u *CompetitorArticleUpdate) SetPublishedDate(v time.Time) *CompetitorArticleUpdate {
	_u.mutation.SetPublishedDate(v)
	return _u
}

// SetNillablePublishedDate sets the "published_date" field if the given value is not nil.
func (_u *CompetitorArticleUpdate) SetNillablePublishedDate(v *time.Time) *CompetitorArticleUpdate {
	if v != nil {
		_u.SetPublishedDate(*v)
	}
	return _u
}

// ClearPublishedDate clears the value of the "published_date" field.
func (_u *CompetitorArticleUpdate) ClearPublishedDate() *CompetitorArticleUpdate {
	_u.mutation.ClearPublishedDate()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *CompetitorArticleUpdate) SetKeywords(v []string) *CompetitorArticleUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *CompetitorArticleUpdate) AppendKeywords(v []string) *CompetitorArticleUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *CompetitorArticleUpdate) ClearKeywords() *CompetitorArticleUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *CompetitorArticleUpdate) SetTopicID(v int) *CompetitorArticleUpdate {
	_u.mutation.ResetTopicID()
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *CompetitorArticleUpdate) SetNillableTopicID(v *int) *CompetitorArticleUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// AddTopicID adds value to the "topic_id" field.
func (_u *CompetitorArticleUpdate) AddTopicID(v int) *CompetitorArticleUpdate {
	_u.mutation.AddTopicID(v)
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *CompetitorArticleUpdate) ClearTopicID() *CompetitorArticleUpdate {
	_u.mutation.ClearTopicID()
	return _u
}

// SetQdrantPointID sets the "qdrant_point_id" field.
func (_u *CompetitorArticleUpdate) SetQdrantPointID(v string) *CompetitorArticleUpdate {
	_u.mutation.SetQdrantPointID(v)
	return _u
}

// SetNillableQdrantPointID sets the "qdrant_point_id" field if the given value is not nil.
func (_u *CompetitorArticleUpdate) SetNillableQdrantPointID(v *string) *CompetitorArticleUpdate {
	if v != nil {
		_u.SetQdrantPointID(*v)
	}
	return _u
}

// ClearQdrantPointID clears the value of the "qdrant_point_id" field.
func (_u *CompetitorArticleUpdate) ClearQdrantPointID() *CompetitorArticleUpdate {
	_u.mutation.ClearQdrantPointID()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *CompetitorArticleUpdate) SetIsValid(v bool) *CompetitorArticleUpdate {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *CompetitorArticleUpdate) SetNillableIsValid(v *bool) *CompetitorArticleUpdate {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// Mutation returns the CompetitorArticleMutation object of the builder.
func (_u *CompetitorArticleUpdate) Mutation() *CompetitorArticleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompetitorArticleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompetitorArticleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompetitorArticleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompetitorArticleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CompetitorArticleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(competitorarticle.Table, competitorarticle.Columns, sqlgraph.NewFieldSpec(competitorarticle.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(competitorarticle.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(competitorarticle.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.URLHash(); ok {
		_spec.SetField(competitorarticle.FieldURLHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(competitorarticle.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(competitorarticle.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ContentText(); ok {
		_spec.SetField(competitorarticle.FieldContentText, field.TypeString, value)
	}
	if _u.mutation.ContentTextCleared() {
		_spec.ClearField(competitorarticle.FieldContentText, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(competitorarticle.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(competitorarticle.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedDate(); ok {
		_spec.SetField(competitorarticle.FieldPublishedDate, field.TypeTime, value)
	}
	if _u.mutation.PublishedDateCleared() {
		_spec.ClearField(competitorarticle.FieldPublishedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(competitorarticle.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, competitorarticle.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(competitorarticle.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(competitorarticle.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicID(); ok {
		_spec.AddField(competitorarticle.FieldTopicID, field.TypeInt, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(competitorarticle.FieldTopicID, field.TypeInt)
	}
	if value, ok := _u.mutation.QdrantPointID(); ok {
		_spec.SetField(competitorarticle.FieldQdrantPointID, field.TypeString, value)
	}
	if _u.mutation.QdrantPointIDCleared() {
		_spec.ClearField(competitorarticle.FieldQdrantPointID, field.TypeString)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(competitorarticle.FieldIsValid, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{competitorarticle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompetitorArticleUpdateOne is the builder for updating a single CompetitorArticle entity.
type CompetitorArticleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompetitorArticleMutation
}

// SetDomain sets the "domain" field.
func (_u *CompetitorArticleUpdateOne) SetDomain(v string) *CompetitorArticleUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *CompetitorArticleUpdateOne) SetNillableDomain(v *string) *CompetitorArticleUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *CompetitorArticleUpdateOne) SetURL(v string) *CompetitorArticleUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CompetitorArticleUpdateOne) SetNillableURL(v *string) *CompetitorArticleUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetURLHash sets the "url_hash" field.
func (_u *CompetitorArticleUpdateOne) SetURLHash(v string) *CompetitorArticleUpdateOne {
	_u.mutation.SetURLHash(v)
	return _u
}

// SetNillableURLHash sets the "url_hash" field if the given value is not nil.
func (_u *CompetitorArticleUpdateOne) SetNillableURLHash(v *string) *CompetitorArticleUpdateOne {
	if v != nil {
		_u.SetURLHash(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CompetitorArticleUpdateOne) SetTitle(v string) *CompetitorArticleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CompetitorArticleUpdateOne) SetNillableTitle(v *string) *CompetitorArticleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CompetitorArticleUpdateOne) ClearTitle() *CompetitorArticleUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetContentText sets the "content_text" field.
func (_u *CompetitorArticleUpdateOne) SetContentText(v string) *CompetitorArticleUpdateOne {
	_u.mutation.SetContentText(v)
	return _u
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_u *CompetitorArticleUpdateOne) SetNillableContentText(v *string) *CompetitorArticleUpdateOne {
	if v != nil {
		_u.SetContentText(*v)
	}
	return _u
}

// ClearContentText clears the value of the "content_text" field.
func (_u *CompetitorArticleUpdateOne) ClearContentText() *CompetitorArticleUpdateOne {
	_u.mutation.ClearContentText()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *CompetitorArticleUpdateOne) SetAuthor(v string) *CompetitorArticleUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *CompetitorArticleUpdateOne) SetNillableAuthor(v *string) *CompetitorArticleUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *CompetitorArticleUpdateOne) ClearAuthor() *CompetitorArticleUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetPublishedDate sets the "published_date" field.
func (_u *CompetitorArticleUpdateOne) SetPublishedDate(v time.Time) *CompetitorArticleUpdateOne {
	_u.mutation.SetPublishedDate(v)
	return _u
}

// SetNillablePublishedDate sets the "published_date" field if the given value is not nil.
func (_u *CompetitorArticleUpdateOne) SetNillablePublishedDate(v *time.Time) *CompetitorArticleUpdateOne {
	if v != nil {
		_u.SetPublishedDate(*v)
	}
	return _u
}

// ClearPublishedDate clears the value of the "published_date" field.
func (_u *CompetitorArticleUpdateOne) ClearPublishedDate() *CompetitorArticleUpdateOne {
	_u.mutation.ClearPublishedDate()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *CompetitorArticleUpdateOne) SetKeywords(v []string) *CompetitorArticleUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *CompetitorArticleUpdateOne) AppendKeywords(v []string) *CompetitorArticleUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *CompetitorArticleUpdateOne) ClearKeywords() *CompetitorArticleUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *CompetitorArticleUpdateOne) SetTopicID(v int) *CompetitorArticleUpdateOne {
	_u.mutation.ResetTopicID()
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *CompetitorArticleUpdateOne) SetNillableTopicID(v *int) *CompetitorArticleUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// AddTopicID adds value to the "topic_id" field.
func (_u *CompetitorArticleUpdateOne) AddTopicID(v int) *CompetitorArticleUpdateOne {
	_u.mutation.AddTopicID(v)
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *CompetitorArticleUpdateOne) ClearTopicID() *CompetitorArticleUpdateOne {
	_u.mutation.ClearTopicID()
	return _u
}

// SetQdrantPointID sets the "qdrant_point_id" field.
func (_u *CompetitorArticleUpdateOne) SetQdrantPointID(v string) *CompetitorArticleUpdateOne {
	_u.mutation.SetQdrantPointID(v)
	return _u
}

// SetNillableQdrantPointID sets the "qdrant_point_id" field if the given value is not nil.
func (_u *CompetitorArticleUpdateOne) SetNillableQdrantPointID(v *string) *CompetitorArticleUpdateOne {
	if v != nil {
		_u.SetQdrantPointID(*v)
	}
	return _u
}

// ClearQdrantPointID clears the value of the "qdrant_point_id" field.
func (_u *CompetitorArticleUpdateOne) ClearQdrantPointID() *CompetitorArticleUpdateOne {
	_u.mutation.ClearQdrantPointID()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *CompetitorArticleUpdateOne) SetIsValid(v bool) *CompetitorArticleUpdateOne {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *CompetitorArticleUpdateOne) SetNillableIsValid(v *bool) *CompetitorArticleUpdateOne {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// Mutation returns the CompetitorArticleMutation object of the builder.
func (_u *CompetitorArticleUpdateOne) Mutation() *CompetitorArticleMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompetitorArticleUpdate builder.
func (_u *CompetitorArticleUpdateOne) Where(ps ...predicate.CompetitorArticle) *CompetitorArticleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompetitorArticleUpdateOne) Select(field string, fields ...string) *CompetitorArticleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompetitorArticle entity.
func (_u *CompetitorArticleUpdateOne) Save(ctx context.Context) (*CompetitorArticle, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompetitorArticleUpdateOne) SaveX(ctx context.Context) *CompetitorArticle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompetitorArticleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompetitorArticleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CompetitorArticleUpdateOne) sqlSave(ctx context.Context) (_node *CompetitorArticle, err error) {
	_spec := sqlgraph.NewUpdateSpec(competitorarticle.Table, competitorarticle.Columns, sqlgraph.NewFieldSpec(competitorarticle.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompetitorArticle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, competitorarticle.FieldID)
		for _, f := range fields {
			if !competitorarticle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != competitorarticle.FieldID {
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
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(competitorarticle.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(competitorarticle.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.URLHash(); ok {
		_spec.SetField(competitorarticle.FieldURLHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(competitorarticle.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(competitorarticle.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ContentText(); ok {
		_spec.SetField(competitorarticle.FieldContentText, field.TypeString, value)
	}
	if _u.mutation.ContentTextCleared() {
		_spec.ClearField(competitorarticle.FieldContentText, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(competitorarticle.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(competitorarticle.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedDate(); ok {
		_spec.SetField(competitorarticle.FieldPublishedDate, field.TypeTime, value)
	}
	if _u.mutation.PublishedDateCleared() {
		_spec.ClearField(competitorarticle.FieldPublishedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(competitorarticle.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, competitorarticle.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(competitorarticle.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(competitorarticle.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicID(); ok {
		_spec.AddField(competitorarticle.FieldTopicID, field.TypeInt, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(competitorarticle.FieldTopicID, field.TypeInt)
	}
	if value, ok := _u.mutation.QdrantPointID(); ok {
		_spec.SetField(competitorarticle.FieldQdrantPointID, field.TypeString, value)
	}
	if _u.mutation.QdrantPointIDCleared() {
		_spec.ClearField(competitorarticle.FieldQdrantPointID, field.TypeString)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(competitorarticle.FieldIsValid, field.TypeBool, value)
	}
	_node = &CompetitorArticle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{competitorarticle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
