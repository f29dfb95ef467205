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
	"github.com/trendscope/trendscope/ent/clientarticle"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/siteprofile"
)

// ClientArticleUpdate is the builder for updating ClientArticle entities.
type ClientArticleUpdate struct {
	config
	hooks    []Hook
	mutation *ClientArticleMutation
}

// Where appends a list predicates to the ClientArticleUpdate builder.
func (_u *ClientArticleUpdate) Where(ps ...predicate.ClientArticle) *ClientArticleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSiteProfileID sets the "site_profile_id" field.
func (_u *ClientArticleUpdate) SetSiteProfileID(v int) *ClientArticleUpdate {
	_u.mutation.SetSiteProfileID(v)
	return _u
}

// SetNillableSiteProfileID sets the "site_profile_id" field if the given value is not nil.
func (_u *ClientArticleUpdate) SetNillableSiteProfileID(v *int) *ClientArticleUpdate {
	if v != nil {
		_u.SetSiteProfileID(*v)
	}
	return _u
}

// ClearSiteProfileID clears the value of the "site_profile_id" field.
func (_u *ClientArticleUpdate) ClearSiteProfileID() *ClientArticleUpdate {
	_u.mutation.ClearSiteProfileID()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *ClientArticleUpdate) SetDomain(v string) *ClientArticleUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *ClientArticleUpdate) SetNillableDomain(v *string) *ClientArticleUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ClientArticleUpdate) SetURL(v string) *ClientArticleUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ClientArticleUpdate) SetNillableURL(v *string) *ClientArticleUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetURLHash sets the "url_hash" field.
func (_u *ClientArticleUpdate) SetURLHash(v string) *ClientArticleUpdate {
	_u.mutation.SetURLHash(v)
	return _u
}

// SetNillableURLHash sets the "url_hash" field if the given value is not nil.
func (_u *ClientArticleUpdate) SetNillableURLHash(v *string) *ClientArticleUpdate {
	if v != nil {
		_u.SetURLHash(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ClientArticleUpdate) SetTitle(v string) *ClientArticleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ClientArticleUpdate) SetNillableTitle(v *string) *ClientArticleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ClientArticleUpdate) ClearTitle() *ClientArticleUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetContentText sets the "content_text" field.
func (_u *ClientArticleUpdate) SetContentText(v string) *ClientArticleUpdate {
	_u.mutation.SetContentText(v)
	return _u
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_u *ClientArticleUpdate) SetNillableContentText(v *string) *ClientArticleUpdate {
	if v != nil {
		_u.SetContentText(*v)
	}
	return _u
}

// ClearContentText clears the value of the "content_text" field.
func (_u *ClientArticleUpdate) ClearContentText() *ClientArticleUpdate {
	_u.mutation.ClearContentText()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *ClientArticleUpdate) SetAuthor(v string) *ClientArticleUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *ClientArticleUpdate) SetNillableAuthor(v *string) *ClientArticleUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *ClientArticleUpdate) ClearAuthor() *ClientArticleUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetPublishedDate sets the "published_date" field.
func (_u *ClientArticleUpdate) SetPublishedDate(v time.Time) *ClientArticleUpdate {
	_u.mutation.SetPublishedDate(v)
	return _u
}

// SetNillablePublishedDate sets the "published_date" field if the given value is not nil.
func (_u *ClientArticleUpdate) SetNillablePublishedDate(v *time.Time) *ClientArticleUpdate {
	if v != nil {
		_u.SetPublishedDate(*v)
	}
	return _u
}

// ClearPublishedDate clears the value of the "published_date" field.
func (_u *ClientArticleUpdate) ClearPublishedDate() *ClientArticleUpdate {
	_u.mutation.ClearPublishedDate()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *ClientArticleUpdate) SetKeywords(v []string) *ClientArticleUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *ClientArticleUpdate) AppendKeywords(v []string) *ClientArticleUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *ClientArticleUpdate) ClearKeywords() *ClientArticleUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ClientArticleUpdate) SetTopicID(v int) *ClientArticleUpdate {
	_u.mutation.ResetTopicID()
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ClientArticleUpdate) SetNillableTopicID(v *int) *ClientArticleUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// AddTopicID adds value to the "topic_id" field.
func (_u *ClientArticleUpdate) AddTopicID(v int) *ClientArticleUpdate {
	_u.mutation.AddTopicID(v)
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *ClientArticleUpdate) ClearTopicID() *ClientArticleUpdate {
	_u.mutation.ClearTopicID()
	return _u
}

// SetQdrantPointID sets the "qdrant_point_id" field.
func (_u *ClientArticleUpdate) SetQdrantPointID(v string) *ClientArticleUpdate {
	_u.mutation.SetQdrantPointID(v)
	return _u
}

// SetNillableQdrantPointID sets the "qdrant_point_id" field if the given value is not nil.
func (_u *ClientArticleUpdate) SetNillableQdrantPointID(v *string) *ClientArticleUpdate {
	if v != nil {
		_u.SetQdrantPointID(*v)
	}
	return _u
}

// ClearQdrantPointID clears the value of the "qdrant_point_id" field.
func (_u *ClientArticleUpdate) ClearQdrantPointID() *ClientArticleUpdate {
	_u.mutation.ClearQdrantPointID()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *ClientArticleUpdate) SetIsValid(v bool) *ClientArticleUpdate {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *ClientArticleUpdate) SetNillableIsValid(v *bool) *ClientArticleUpdate {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetSiteProfile sets the "site_profile" edge to the SiteProfile entity.
func (_u *ClientArticleUpdate) SetSiteProfile(v *SiteProfile) *ClientArticleUpdate {
	return _u.SetSiteProfileID(v.ID)
}

// Mutation returns the ClientArticleMutation object of the builder.
func (_u *ClientArticleUpdate) Mutation() *ClientArticleMutation {
	return _u.mutation
}

// ClearSiteProfile clears the "site_profile" edge to the SiteProfile entity.
func (_u *ClientArticleUpdate) ClearSiteProfile() *ClientArticleUpdate {
	_u.mutation.ClearSiteProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClientArticleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientArticleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClientArticleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientArticleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ClientArticleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(clientarticle.Table, clientarticle.Columns, sqlgraph.NewFieldSpec(clientarticle.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(clientarticle.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(clientarticle.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.URLHash(); ok {
		_spec.SetField(clientarticle.FieldURLHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(clientarticle.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(clientarticle.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ContentText(); ok {
		_spec.SetField(clientarticle.FieldContentText, field.TypeString, value)
	}
	if _u.mutation.ContentTextCleared() {
		_spec.ClearField(clientarticle.FieldContentText, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(clientarticle.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(clientarticle.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedDate(); ok {
		_spec.SetField(clientarticle.FieldPublishedDate, field.TypeTime, value)
	}
	if _u.mutation.PublishedDateCleared() {
		_spec.ClearField(clientarticle.FieldPublishedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(clientarticle.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, clientarticle.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(clientarticle.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(clientarticle.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicID(); ok {
		_spec.AddField(clientarticle.FieldTopicID, field.TypeInt, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(clientarticle.FieldTopicID, field.TypeInt)
	}
	if value, ok := _u.mutation.QdrantPointID(); ok {
		_spec.SetField(clientarticle.FieldQdrantPointID, field.TypeString, value)
	}
	if _u.mutation.QdrantPointIDCleared() {
		_spec.ClearField(clientarticle.FieldQdrantPointID, field.TypeString)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(clientarticle.FieldIsValid, field.TypeBool, value)
	}
	if _u.mutation.SiteProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clientarticle.SiteProfileTable,
			Columns: []string{clientarticle.SiteProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(siteprofile.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SiteProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clientarticle.SiteProfileTable,
			Columns: []string{clientarticle.SiteProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(siteprofile.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientarticle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClientArticleUpdateOne is the builder for updating a single ClientArticle entity.
type ClientArticleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClientArticleMutation
}

// SetSiteProfileID sets the "site_profile_id" field.
func (_u *ClientArticleUpdateOne) SetSiteProfileID(v int) *ClientArticleUpdateOne {
	_u.mutation.SetSiteProfileID(v)
	return _u
}

// SetNillableSiteProfileID sets the "site_profile_id" field if the given value is not nil.
func (_u *ClientArticleUpdateOne) SetNillableSiteProfileID(v *int) *ClientArticleUpdateOne {
	if v != nil {
		_u.SetSiteProfileID(*v)
	}
	return _u
}

// ClearSiteProfileID clears the value of the "site_profile_id" field.
func (_u *ClientArticleUpdateOne) ClearSiteProfileID() *ClientArticleUpdateOne {
	_u.mutation.ClearSiteProfileID()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *ClientArticleUpdateOne) SetDomain(v string) *ClientArticleUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *ClientArticleUpdateOne) SetNillableDomain(v *string) *ClientArticleUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ClientArticleUpdateOne) SetURL(v string) *ClientArticleUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ClientArticleUpdateOne) SetNillableURL(v *string) *ClientArticleUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetURLHash sets the "url_hash" field.
func (_u *ClientArticleUpdateOne) SetURLHash(v string) *ClientArticleUpdateOne {
	_u.mutation.SetURLHash(v)
	return _u
}

// SetNillableURLHash sets the "url_hash" field if the given value is not nil.
func (_u *ClientArticleUpdateOne) SetNillableURLHash(v *string) *ClientArticleUpdateOne {
	if v != nil {
		_u.SetURLHash(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ClientArticleUpdateOne) SetTitle(v string) *ClientArticleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ClientArticleUpdateOne) SetNillableTitle(v *string) *ClientArticleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ClientArticleUpdateOne) ClearTitle() *ClientArticleUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetContentText sets the "content_text" field.
func (_u *ClientArticleUpdateOne) SetContentText(v string) *ClientArticleUpdateOne {
	_u.mutation.SetContentText(v)
	return _u
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_u *ClientArticleUpdateOne) SetNillableContentText(v *string) *ClientArticleUpdateOne {
	if v != nil {
		_u.SetContentText(*v)
	}
	return _u
}

// ClearContentText clears the value of the "content_text" field.
func (_u *ClientArticleUpdateOne) ClearContentText() *ClientArticleUpdateOne {
	_u.mutation.ClearContentText()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *ClientArticleUpdateOne) SetAuthor(v string) *ClientArticleUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *ClientArticleUpdateOne) SetNillableAuthor(v *string) *ClientArticleUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *ClientArticleUpdateOne) ClearAuthor() *ClientArticleUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetPublishedDate sets the "published_date" field.
func (_u *ClientArticleUpdateOne) SetPublishedDate(v time.Time) *ClientArticleUpdateOne {
	_u.mutation.SetPublishedDate(v)
	return _u
}

// SetNillablePublishedDate sets the "published_date" field if the given value is not nil.
func (_u *ClientArticleUpdateOne) SetNillablePublishedDate(v *time.Time) *ClientArticleUpdateOne {
	if v != nil {
		_u.SetPublishedDate(*v)
	}
	return _u
}

// ClearPublishedDate clears the value of the "published_date" field.
func (_u *ClientArticleUpdateOne) ClearPublishedDate() *ClientArticleUpdateOne {
	_u.mutation.ClearPublishedDate()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *ClientArticleUpdateOne) SetKeywords(v []string) *ClientArticleUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *ClientArticleUpdateOne) AppendKeywords(v []string) *ClientArticleUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *ClientArticleUpdateOne) ClearKeywords() *ClientArticleUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ClientArticleUpdateOne) SetTopicID(v int) *ClientArticleUpdateOne {
	_u.mutation.ResetTopicID()
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ClientArticleUpdateOne) SetNillableTopicID(v *int) *ClientArticleUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// AddTopicID adds value to the "topic_id" field.
func (_u *ClientArticleUpdateOne) AddTopicID(v int) *ClientArticleUpdateOne {
	_u.mutation.AddTopicID(v)
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *ClientArticleUpdateOne) ClearTopicID() *ClientArticleUpdateOne {
	_u.mutation.ClearTopicID()
	return _u
}

// SetQdrantPointID sets the "qdrant_point_id" field.
func (_u *ClientArticleUpdateOne) SetQdrantPointID(v string) *ClientArticleUpdateOne {
	_u.mutation.SetQdrantPointID(v)
	return _u
}

// SetNillableQdrantPointID sets the "qdrant_point_id" field if the given value is not nil.
func (_u *ClientArticleUpdateOne) SetNillableQdrantPointID(v *string) *ClientArticleUpdateOne {
	if v != nil {
		_u.SetQdrantPointID(*v)
	}
	return _u
}

// ClearQdrantPointID clears the value of the "qdrant_point_id" field.
func (_u *ClientArticleUpdateOne) ClearQdrantPointID() *ClientArticleUpdateOne {
	_u.mutation.ClearQdrantPointID()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *ClientArticleUpdateOne) SetIsValid(v bool) *ClientArticleUpdateOne {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *ClientArticleUpdateOne) SetNillableIsValid(v *bool) *ClientArticleUpdateOne {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetSiteProfile sets the "site_profile" edge to the SiteProfile entity.
func (_u *ClientArticleUpdateOne) SetSiteProfile(v *SiteProfile) *ClientArticleUpdateOne {
	return _u.SetSiteProfileID(v.ID)
}

// Mutation returns the ClientArticleMutation object of the builder.
func (_u *ClientArticleUpdateOne) Mutation() *ClientArticleMutation {
	return _u.mutation
}

// ClearSiteProfile clears the "site_profile" edge to the SiteProfile entity.
func (_u *ClientArticleUpdateOne) ClearSiteProfile() *ClientArticleUpdateOne {
	_u.mutation.ClearSiteProfile()
	return _u
}

// Where appends a list predicates to the ClientArticleUpdate builder.
func (_u *ClientArticleUpdateOne) Where(ps ...predicate.ClientArticle) *ClientArticleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClientArticleUpdateOne) Select(field string, fields ...string) *ClientArticleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClientArticle entity.
func (_u *ClientArticleUpdateOne) Save(ctx context.Context) (*ClientArticle, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientArticleUpdateOne) SaveX(ctx context.Context) *ClientArticle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClientArticleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientArticleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ClientArticleUpdateOne) sqlSave(ctx context.Context) (_node *ClientArticle, err error) {
	_spec := sqlgraph.NewUpdateSpec(clientarticle.Table, clientarticle.Columns, sqlgraph.NewFieldSpec(clientarticle.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClientArticle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clientarticle.FieldID)
		for _, f := range fields {
			if !clientarticle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clientarticle.FieldID {
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
		_spec.SetField(clientarticle.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(clientarticle.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.URLHash(); ok {
		_spec.SetField(clientarticle.FieldURLHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(clientarticle.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(clientarticle.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ContentText(); ok {
		_spec.SetField(clientarticle.FieldContentText, field.TypeString, value)
	}
	if _u.mutation.ContentTextCleared() {
		_spec.ClearField(clientarticle.FieldContentText, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(clientarticle.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(clientarticle.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedDate(); ok {
		_spec.SetField(clientarticle.FieldPublishedDate, field.TypeTime, value)
	}
	if _u.mutation.PublishedDateCleared() {
		_spec.ClearField(clientarticle.FieldPublishedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(clientarticle.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, clientarticle.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(clientarticle.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(clientarticle.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicID(); ok {
		_spec.AddField(clientarticle.FieldTopicID, field.TypeInt, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(clientarticle.FieldTopicID, field.TypeInt)
	}
	if value, ok := _u.mutation.QdrantPointID(); ok {
		_spec.SetField(clientarticle.FieldQdrantPointID, field.TypeString, value)
	}
	if _u.mutation.QdrantPointIDCleared() {
		_spec.ClearField(clientarticle.FieldQdrantPointID, field.TypeString)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(clientarticle.FieldIsValid, field.TypeBool, value)
	}
	if _u.mutation.SiteProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clientarticle.SiteProfileTable,
			Columns: []string{clientarticle.SiteProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(siteprofile.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SiteProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clientarticle.SiteProfileTable,
			Columns: []string{clientarticle.SiteProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(siteprofile.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClientArticle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientarticle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
