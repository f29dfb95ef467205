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

// SiteProfileUpdate is the builder for updating SiteProfile entities.
type SiteProfileUpdate struct {
	config
	hooks    []Hook
	mutation *SiteProfileMutation
}

// Where appends a list predicates to the SiteProfileUpdate builder.
func (_u *SiteProfileUpdate) Where(ps ...predicate.SiteProfile) *SiteProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDomain sets the "domain" field.
func (_u *SiteProfileUpdate) SetDomain(v string) *SiteProfileUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *SiteProfileUpdate) SetNillableDomain(v *string) *SiteProfileUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetAnalysisDate sets the "analysis_date" field.
func (_u *SiteProfileUpdate) SetAnalysisDate(v time.Time) *SiteProfileUpdate {
	_u.mutation.SetAnalysisDate(v)
	return _u
}

// SetNillableAnalysisDate sets the "analysis_date" field if the given value is not nil.
func (_u *SiteProfileUpdate) SetNillableAnalysisDate(v *time.Time) *SiteProfileUpdate {
	if v != nil {
		_u.SetAnalysisDate(*v)
	}
	return _u
}

// SetLanguageLevel sets the "language_level" field.
func (_u *SiteProfileUpdate) SetLanguageLevel(v siteprofile.LanguageLevel) *SiteProfileUpdate {
	_u.mutation.SetLanguageLevel(v)
	return _u
}

// SetNillableLanguageLevel sets the "language_level" field if the given value is not nil.
func (_u *SiteProfileUpdate) SetNillableLanguageLevel(v *siteprofile.LanguageLevel) *SiteProfileUpdate {
	if v != nil {
		_u.SetLanguageLevel(*v)
	}
	return _u
}

// SetEditorialTone sets the "editorial_tone" field.
func (_u *SiteProfileUpdate) SetEditorialTone(v string) *SiteProfileUpdate {
	_u.mutation.SetEditorialTone(v)
	return _u
}

// SetNillableEditorialTone sets the "editorial_tone" field if the given value is not nil.
func (_u *SiteProfileUpdate) SetNillableEditorialTone(v *string) *SiteProfileUpdate {
	if v != nil {
		_u.SetEditorialTone(*v)
	}
	return _u
}

// ClearEditorialTone clears the value of the "editorial_tone" field.
func (_u *SiteProfileUpdate) ClearEditorialTone() *SiteProfileUpdate {
	_u.mutation.ClearEditorialTone()
	return _u
}

// SetTargetAudience sets the "target_audience" field.
func (_u *SiteProfileUpdate) SetTargetAudience(v map[string]interface{}) *SiteProfileUpdate {
	_u.mutation.SetTargetAudience(v)
	return _u
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (_u *SiteProfileUpdate) ClearTargetAudience() *SiteProfileUpdate {
	_u.mutation.ClearTargetAudience()
	return _u
}

// SetActivityDomains sets the "activity_domains" field.
func (_u *SiteProfileUpdate) SetActivityDomains(v map[string]interface{}) *SiteProfileUpdate {
	_u.mutation.SetActivityDomains(v)
	return _u
}

// ClearActivityDomains clears the value of the "activity_domains" field.
func (_u *SiteProfileUpdate) ClearActivityDomains() *SiteProfileUpdate {
	_u.mutation.ClearActivityDomains()
	return _u
}

// SetContentStructure sets the "content_structure" field.
func (_u *SiteProfileUpdate) SetContentStructure(v map[string]interface{}) *SiteProfileUpdate {
	_u.mutation.SetContentStructure(v)
	return _u
}

// ClearContentStructure clears the value of the "content_structure" field.
func (_u *SiteProfileUpdate) ClearContentStructure() *SiteProfileUpdate {
	_u.mutation.ClearContentStructure()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *SiteProfileUpdate) SetKeywords(v map[string]interface{}) *SiteProfileUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *SiteProfileUpdate) ClearKeywords() *SiteProfileUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetStyleFeatures sets the "style_features" field.
func (_u *SiteProfileUpdate) SetStyleFeatures(v map[string]interface{}) *SiteProfileUpdate {
	_u.mutation.SetStyleFeatures(v)
	return _u
}

// ClearStyleFeatures clears the value of the "style_features" field.
func (_u *SiteProfileUpdate) ClearStyleFeatures() *SiteProfileUpdate {
	_u.mutation.ClearStyleFeatures()
	return _u
}

// SetPagesAnalyzed sets the "pages_analyzed" field.
func (_u *SiteProfileUpdate) SetPagesAnalyzed(v int) *SiteProfileUpdate {
	_u.mutation.ResetPagesAnalyzed()
	_u.mutation.SetPagesAnalyzed(v)
	return _u
}

// SetNillablePagesAnalyzed sets the "pages_analyzed" field if the given value is not nil.
func (_u *SiteProfileUpdate) SetNillablePagesAnalyzed(v *int) *SiteProfileUpdate {
	if v != nil {
		_u.SetPagesAnalyzed(*v)
	}
	return _u
}

// AddPagesAnalyzed adds value to the "pages_analyzed" field.
func (_u *SiteProfileUpdate) AddPagesAnalyzed(v int) *SiteProfileUpdate {
	_u.mutation.AddPagesAnalyzed(v)
	return _u
}

// SetLlmModelsUsed sets the "llm_models_used" field.
func (_u *SiteProfileUpdate) SetLlmModelsUsed(v []string) *SiteProfileUpdate {
	_u.mutation.SetLlmModelsUsed(v)
	return _u
}

// AppendLlmModelsUsed appends value to the "llm_models_used" field.
func (_u *SiteProfileUpdate) AppendLlmModelsUsed(v []string) *SiteProfileUpdate {
	_u.mutation.AppendLlmModelsUsed(v)
	return _u
}

// ClearLlmModelsUsed clears the value of the "llm_models_used" field.
func (_u *SiteProfileUpdate) ClearLlmModelsUsed() *SiteProfileUpdate {
	_u.mutation.ClearLlmModelsUsed()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *SiteProfileUpdate) SetIsValid(v bool) *SiteProfileUpdate {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *SiteProfileUpdate) SetNillableIsValid(v *bool) *SiteProfileUpdate {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// AddClientArticleIDs adds the "client_articles" edge to the ClientArticle entity by IDs.
func (_u *SiteProfileUpdate) AddClientArticleIDs(ids ...int) *SiteProfileUpdate {
	_u.mutation.AddClientArticleIDs(ids...)
	return _u
}

// AddClientArticles adds the "client_articles" edges to the ClientArticle entity.
func (_u *SiteProfileUpdate) AddClientArticles(v ...*ClientArticle) *SiteProfileUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClientArticleIDs(ids...)
}

// Mutation returns the SiteProfileMutation object of the builder.
func (_u *SiteProfileUpdate) Mutation() *SiteProfileMutation {
	return _u.mutation
}

// ClearClientArticles clears all "client_articles" edges to the ClientArticle entity.
func (_u *SiteProfileUpdate) ClearClientArticles() *SiteProfileUpdate {
	_u.mutation.ClearClientArticles()
	return _u
}

// RemoveClientArticleIDs removes the "client_articles" edge to ClientArticle entities by IDs.
func (_u *SiteProfileUpdate) RemoveClientArticleIDs(ids ...int) *SiteProfileUpdate {
	_u.mutation.RemoveClientArticleIDs(ids...)
	return _u
}

// RemoveClientArticles removes "client_articles" edges to ClientArticle entities.
func (_u *SiteProfileUpdate) RemoveClientArticles(v ...*ClientArticle) *SiteProfileUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClientArticleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SiteProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SiteProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SiteProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SiteProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SiteProfileUpdate) check() error {
	if v, ok := _u.mutation.LanguageLevel(); ok {
		if err := siteprofile.LanguageLevelValidator(v); err != nil {
			return &ValidationError{Name: "language_level", err: fmt.Errorf(`ent: validator failed for field "SiteProfile.language_level": %w`, err)}
		}
	}
	return nil
}

func (_u *SiteProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(siteprofile.Table, siteprofile.Columns, sqlgraph.NewFieldSpec(siteprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(siteprofile.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnalysisDate(); ok {
		_spec.SetField(siteprofile.FieldAnalysisDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LanguageLevel(); ok {
		_spec.SetField(siteprofile.FieldLanguageLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EditorialTone(); ok {
		_spec.SetField(siteprofile.FieldEditorialTone, field.TypeString, value)
	}
	if _u.mutation.EditorialToneCleared() {
		_spec.ClearField(siteprofile.FieldEditorialTone, field.TypeString)
	}
	if value, ok := _u.mutation.TargetAudience(); ok {
		_spec.SetField(siteprofile.FieldTargetAudience, field.TypeJSON, value)
	}
	if _u.mutation.TargetAudienceCleared() {
		_spec.ClearField(siteprofile.FieldTargetAudience, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActivityDomains(); ok {
		_spec.SetField(siteprofile.FieldActivityDomains, field.TypeJSON, value)
	}
	if _u.mutation.ActivityDomainsCleared() {
		_spec.ClearField(siteprofile.FieldActivityDomains, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentStructure(); ok {
		_spec.SetField(siteprofile.FieldContentStructure, field.TypeJSON, value)
	}
	if _u.mutation.ContentStructureCleared() {
		_spec.ClearField(siteprofile.FieldContentStructure, field.TypeJSON)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(siteprofile.FieldKeywords, field.TypeJSON, value)
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(siteprofile.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.StyleFeatures(); ok {
		_spec.SetField(siteprofile.FieldStyleFeatures, field.TypeJSON, value)
	}
	if _u.mutation.StyleFeaturesCleared() {
		_spec.ClearField(siteprofile.FieldStyleFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.PagesAnalyzed(); ok {
		_spec.SetField(siteprofile.FieldPagesAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPagesAnalyzed(); ok {
		_spec.AddField(siteprofile.FieldPagesAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LlmModelsUsed(); ok {
		_spec.SetField(siteprofile.FieldLlmModelsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLlmModelsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, siteprofile.FieldLlmModelsUsed, value)
		})
	}
	if _u.mutation.LlmModelsUsedCleared() {
		_spec.ClearField(siteprofile.FieldLlmModelsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(siteprofile.FieldIsValid, field.TypeBool, value)
	}
	if _u.mutation.ClientArticlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   siteprofile.ClientArticlesTable,
			Columns: []string{siteprofile.ClientArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientarticle.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClientArticlesIDs(); len(nodes) > 0 && !_u.mutation.ClientArticlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   siteprofile.ClientArticlesTable,
			Columns: []string{siteprofile.ClientArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientarticle.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientArticlesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   siteprofile.ClientArticlesTable,
			Columns: []string{siteprofile.ClientArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientarticle.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{siteprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SiteProfileUpdateOne is the builder for updating a single SiteProfile entity.
type SiteProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SiteProfileMutation
}

// SetDomain sets the "domain" field.
func (_u *SiteProfileUpdateOne) SetDomain(v string) *SiteProfileUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *SiteProfileUpdateOne) SetNillableDomain(v *string) *SiteProfileUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetAnalysisDate sets the "analysis_date" field.
func (_u *SiteProfileUpdateOne) SetAnalysisDate(v time.Time) *SiteProfileUpdateOne {
	_u.mutation.SetAnalysisDate(v)
	return _u
}

// SetNillableAnalysisDate sets the "analysis_date" field if the given value is not nil.
func (_u *SiteProfileUpdateOne) SetNillableAnalysisDate(v *time.Time) *SiteProfileUpdateOne {
	if v != nil {
		_u.SetAnalysisDate(*v)
	}
	return _u
}

// SetLanguageLevel sets the "language_level" field.
func (_u *SiteProfileUpdateOne) SetLanguageLevel(v siteprofile.LanguageLevel) *SiteProfileUpdateOne {
	_u.mutation.SetLanguageLevel(v)
	return _u
}

// SetNillableLanguageLevel sets the "language_level" field if the given value is not nil.
func (_u *SiteProfileUpdateOne) SetNillableLanguageLevel(v *siteprofile.LanguageLevel) *SiteProfileUpdateOne {
	if v != nil {
		_u.SetLanguageLevel(*v)
	}
	return _u
}

// SetEditorialTone sets the "editorial_tone" field.
func (_u *SiteProfileUpdateOne) SetEditorialTone(v string) *SiteProfileUpdateOne {
	_u.mutation.SetEditorialTone(v)
	return _u
}

// SetNillableEditorialTone sets the "editorial_tone" field if the given value is not nil.
func (_u *SiteProfileUpdateOne) SetNillableEditorialTone(v *string) *SiteProfileUpdateOne {
	if v != nil {
		_u.SetEditorialTone(*v)
	}
	return _u
}

// ClearEditorialTone clears the value of the "editorial_tone" field.
func (_u *SiteProfileUpdateOne) ClearEditorialTone() *SiteProfileUpdateOne {
	_u.mutation.ClearEditorialTone()
	return _u
}

// SetTargetAudience sets the "target_audience" field.
func (_u *SiteProfileUpdateOne) SetTargetAudience(v map[string]interface{}) *SiteProfileUpdateOne {
	_u.mutation.SetTargetAudience(v)
	return _u
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (_u *SiteProfileUpdateOne) ClearTargetAudience() *SiteProfileUpdateOne {
	_u.mutation.ClearTargetAudience()
	return _u
}

// SetActivityDomains sets the "activity_domains" field.
func (_u *SiteProfileUpdateOne) SetActivityDomains(v map[string]interface{}) *SiteProfileUpdateOne {
	_u.mutation.SetActivityDomains(v)
	return _u
}

// ClearActivityDomains clears the value of the "activity_domains" field.
func (_u *SiteProfileUpdateOne) ClearActivityDomains() *SiteProfileUpdateOne {
	_u.mutation.ClearActivityDomains()
	return _u
}

// SetContentStructure sets the "content_structure" field.
func (_u *SiteProfileUpdateOne) SetContentStructure(v map[string]interface{}) *SiteProfileUpdateOne {
	_u.mutation.SetContentStructure(v)
	return _u
}

// ClearContentStructure clears the value of the "content_structure" field.
func (_u *SiteProfileUpdateOne) ClearContentStructure() *SiteProfileUpdateOne {
	_u.mutation.ClearContentStructure()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *SiteProfileUpdateOne) SetKeywords(v map[string]interface{}) *SiteProfileUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *SiteProfileUpdateOne) ClearKeywords() *SiteProfileUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetStyleFeatures sets the "style_features" field.
func (_u *SiteProfileUpdateOne) SetStyleFeatures(v map[string]interface{}) *SiteProfileUpdateOne {
	_u.mutation.SetStyleFeatures(v)
	return _u
}

// ClearStyleFeatures clears the value of the "style_features" field.
func (_u *SiteProfileUpdateOne) ClearStyleFeatures() *SiteProfileUpdateOne {
	_u.mutation.ClearStyleFeatures()
	return _u
}

// SetPagesAnalyzed sets the "pages_analyzed" field.
func (_u *SiteProfileUpdateOne) SetPagesAnalyzed(v int) *SiteProfileUpdateOne {
	_u.mutation.ResetPagesAnalyzed()
	_u.mutation.SetPagesAnalyzed(v)
	return _u
}

// SetNillablePagesAnalyzed sets the "pages_analyzed" field if the given value is not nil.
func (_u *SiteProfileUpdateOne) SetNillablePagesAnalyzed(v *int) *SiteProfileUpdateOne {
	if v != nil {
		_u.SetPagesAnalyzed(*v)
	}
	return _u
}

// AddPagesAnalyzed adds value to the "pages_analyzed" field.
func (_u *SiteProfileUpdateOne) AddPagesAnalyzed(v int) *SiteProfileUpdateOne {
	_u.mutation.AddPagesAnalyzed(v)
	return _u
}

// SetLlmModelsUsed sets the "llm_models_used" field.
func (_u *SiteProfileUpdateOne) SetLlmModelsUsed(v []string) *SiteProfileUpdateOne {
	_u.mutation.SetLlmModelsUsed(v)
	return _u
}

// AppendLlmModelsUsed appends value to the "llm_models_used" field.
func (_u *SiteProfileUpdateOne) AppendLlmModelsUsed(v []string) *SiteProfileUpdateOne {
	_u.mutation.AppendLlmModelsUsed(v)
	return _u
}

// ClearLlmModelsUsed clears the value of the "llm_models_used" field.
func (_u *SiteProfileUpdateOne) ClearLlmModelsUsed() *SiteProfileUpdateOne {
	_u.mutation.ClearLlmModelsUsed()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *SiteProfileUpdateOne) SetIsValid(v bool) *SiteProfileUpdateOne {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *SiteProfileUpdateOne) SetNillableIsValid(v *bool) *SiteProfileUpdateOne {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// AddClientArticleIDs adds the "client_articles" edge to the ClientArticle entity by IDs.
func (_u *SiteProfileUpdateOne) AddClientArticleIDs(ids ...int) *SiteProfileUpdateOne {
	_u.mutation.AddClientArticleIDs(ids...)
	return _u
}

// AddClientArticles adds the "client_articles" edges to the ClientArticle entity.
func (_u *SiteProfileUpdateOne) AddClientArticles(v ...*ClientArticle) *SiteProfileUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClientArticleIDs(ids...)
}

// Mutation returns the SiteProfileMutation object of the builder.
func (_u *SiteProfileUpdateOne) Mutation() *SiteProfileMutation {
	return _u.mutation
}

// ClearClientArticles clears all "client_articles" edges to the ClientArticle entity.
func (_u *SiteProfileUpdateOne) ClearClientArticles() *SiteProfileUpdateOne {
	_u.mutation.ClearClientArticles()
	return _u
}

// RemoveClientArticleIDs removes the "client_articles" edge to ClientArticle entities by IDs.
func (_u *SiteProfileUpdateOne) RemoveClientArticleIDs(ids ...int) *SiteProfileUpdateOne {
	_u.mutation.RemoveClientArticleIDs(ids...)
	return _u
}

// RemoveClientArticles removes "client_articles" edges to ClientArticle entities.
func (_u *SiteProfileUpdateOne) RemoveClientArticles(v ...*ClientArticle) *SiteProfileUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClientArticleIDs(ids...)
}

// Where appends a list predicates to the SiteProfileUpdate builder.
func (_u *SiteProfileUpdateOne) Where(ps ...predicate.SiteProfile) *SiteProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SiteProfileUpdateOne) Select(field string, fields ...string) *SiteProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SiteProfile entity.
func (_u *SiteProfileUpdateOne) Save(ctx context.Context) (*SiteProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SiteProfileUpdateOne) SaveX(ctx context.Context) *SiteProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SiteProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SiteProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SiteProfileUpdateOne) check() error {
	if v, ok := _u.mutation.LanguageLevel(); ok {
		if err := siteprofile.LanguageLevelValidator(v); err != nil {
			return &ValidationError{Name: "language_level", err: fmt.Errorf(`ent: validator failed for field "SiteProfile.language_level": %w`, err)}
		}
	}
	return nil
}

func (_u *SiteProfileUpdateOne) sqlSave(ctx context.Context) (_node *SiteProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(siteprofile.Table, siteprofile.Columns, sqlgraph.NewFieldSpec(siteprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SiteProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, siteprofile.FieldID)
		for _, f := range fields {
			if !siteprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != siteprofile.FieldID {
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
		_spec.SetField(siteprofile.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnalysisDate(); ok {
		_spec.SetField(siteprofile.FieldAnalysisDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LanguageLevel(); ok {
		_spec.SetField(siteprofile.FieldLanguageLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EditorialTone(); ok {
		_spec.SetField(siteprofile.FieldEditorialTone, field.TypeString, value)
	}
	if _u.mutation.EditorialToneCleared() {
		_spec.ClearField(siteprofile.FieldEditorialTone, field.TypeString)
	}
	if value, ok := _u.mutation.TargetAudience(); ok {
		_spec.SetField(siteprofile.FieldTargetAudience, field.TypeJSON, value)
	}
	if _u.mutation.TargetAudienceCleared() {
		_spec.ClearField(siteprofile.FieldTargetAudience, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActivityDomains(); ok {
		_spec.SetField(siteprofile.FieldActivityDomains, field.TypeJSON, value)
	}
	if _u.mutation.ActivityDomainsCleared() {
		_spec.ClearField(siteprofile.FieldActivityDomains, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentStructure(); ok {
		_spec.SetField(siteprofile.FieldContentStructure, field.TypeJSON, value)
	}
	if _u.mutation.ContentStructureCleared() {
		_spec.ClearField(siteprofile.FieldContentStructure, field.TypeJSON)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(siteprofile.FieldKeywords, field.TypeJSON, value)
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(siteprofile.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.StyleFeatures(); ok {
		_spec.SetField(siteprofile.FieldStyleFeatures, field.TypeJSON, value)
	}
	if _u.mutation.StyleFeaturesCleared() {
		_spec.ClearField(siteprofile.FieldStyleFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.PagesAnalyzed(); ok {
		_spec.SetField(siteprofile.FieldPagesAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPagesAnalyzed(); ok {
		_spec.AddField(siteprofile.FieldPagesAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LlmModelsUsed(); ok {
		_spec.SetField(siteprofile.FieldLlmModelsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLlmModelsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, siteprofile.FieldLlmModelsUsed, value)
		})
	}
	if _u.mutation.LlmModelsUsedCleared() {
		_spec.ClearField(siteprofile.FieldLlmModelsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(siteprofile.FieldIsValid, field.TypeBool, value)
	}
	if _u.mutation.ClientArticlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   siteprofile.ClientArticlesTable,
			Columns: []string{siteprofile.ClientArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientarticle.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClientArticlesIDs(); len(nodes) > 0 && !_u.mutation.ClientArticlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   siteprofile.ClientArticlesTable,
			Columns: []string{siteprofile.ClientArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientarticle.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientArticlesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   siteprofile.ClientArticlesTable,
			Columns: []string{siteprofile.ClientArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientarticle.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SiteProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{siteprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
