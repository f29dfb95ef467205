// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trendscope/trendscope/ent/clientarticle"
	"github.com/trendscope/trendscope/ent/siteprofile"
)

// SiteProfileCreate is the builder for creating a SiteProfile entity.
type SiteProfileCreate struct {
	config
	mutation *SiteProfileMutation
	hooks    []Hook
}

// SetDomain sets the "domain" field.
func (_c *SiteProfileCreate) SetDomain(v string) *SiteProfileCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetAnalysisDate sets the "analysis_date" field.
func (_c *SiteProfileCreate) SetAnalysisDate(v time.Time) *SiteProfileCreate {
	_c.mutation.SetAnalysisDate(v)
	return _c
}

// SetNillableAnalysisDate sets the "analysis_date" field if the given value is not nil.
func (_c *SiteProfileCreate) SetNillableAnalysisDate(v *time.Time) *SiteProfileCreate {
	if v != nil {
		_c.SetAnalysisDate(*v)
	}
	return _c
}

// SetLanguageLevel sets the "language_level" field.
func (_c *SiteProfileCreate) SetLanguageLevel(v siteprofile.LanguageLevel) *SiteProfileCreate {
	_c.mutation.SetLanguageLevel(v)
	return _c
}

// SetNillableLanguageLevel sets the "language_level" field if the given value is not nil.
func (_c *SiteProfileCreate) SetNillableLanguageLevel(v *siteprofile.LanguageLevel) *SiteProfileCreate {
	if v != nil {
		_c.SetLanguageLevel(*v)
	}
	return _c
}

// SetEditorialTone sets the "editorial_tone" field.
func (_c *SiteProfileCreate) SetEditorialTone(v string) *SiteProfileCreate {
	_c.mutation.SetEditorialTone(v)
	return _c
}

// SetNillableEditorialTone sets the "editorial_tone" field if the given value is not nil.
func (_c *SiteProfileCreate) SetNillableEditorialTone(v *string) *SiteProfileCreate {
	if v != nil {
		_c.SetEditorialTone(*v)
	}
	return _c
}

// SetTargetAudience sets the "target_audience" field.
func (_c *SiteProfileCreate) SetTargetAudience(v map[string]interface{}) *SiteProfileCreate {
	_c.mutation.SetTargetAudience(v)
	return _c
}

// SetActivityDomains sets the "activity_domains" field.
func (_c *SiteProfileCreate) SetActivityDomains(v map[string]interface{}) *SiteProfileCreate {
	_c.mutation.SetActivityDomains(v)
	return _c
}

// SetContentStructure sets the "content_structure" field.
func (_c *SiteProfileCreate) SetContentStructure(v map[string]interface{}) *SiteProfileCreate {
	_c.mutation.SetContentStructure(v)
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *SiteProfileCreate) SetKeywords(v map[string]interface{}) *SiteProfileCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetStyleFeatures sets the "style_features" field.
func (_c *SiteProfileCreate) SetStyleFeatures(v map[string]interface{}) *SiteProfileCreate {
	_c.mutation.SetStyleFeatures(v)
	return _c
}

// SetPagesAnalyzed sets the "pages_analyzed" field.
func (_c *SiteProfileCreate) SetPagesAnalyzed(v int) *SiteProfileCreate {
	_c.mutation.SetPagesAnalyzed(v)
	return _c
}

// SetNillablePagesAnalyzed sets the "pages_analyzed" field if the given value is not nil.
func (_c *SiteProfileCreate) SetNillablePagesAnalyzed(v *int) *SiteProfileCreate {
	if v != nil {
		_c.SetPagesAnalyzed(*v)
	}
	return _c
}

// SetLlmModelsUsed sets the "llm_models_used" field.
func (_c *SiteProfileCreate) SetLlmModelsUsed(v []string) *SiteProfileCreate {
	_c.mutation.SetLlmModelsUsed(v)
	return _c
}

// SetIsValid sets the "is_valid" field.
func (_c *SiteProfileCreate) SetIsValid(v bool) *SiteProfileCreate {
	_c.mutation.SetIsValid(v)
	return _c
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_c *SiteProfileCreate) SetNillableIsValid(v *bool) *SiteProfileCreate {
	if v != nil {
		_c.SetIsValid(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SiteProfileCreate) SetCreatedAt(v time.Time) *SiteProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SiteProfileCreate) SetNillableCreatedAt(v *time.Time) *SiteProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddClientArticleIDs adds the "client_articles" edge to the ClientArticle entity by IDs.
func (_c *SiteProfileCreate) AddClientArticleIDs(ids ...int) *SiteProfileCreate {
	_c.mutation.AddClientArticleIDs(ids...)
	return _c
}

// AddClientArticles adds the "client_articles" edges to the ClientArticle entity.
func (_c *SiteProfileCreate) AddClientArticles(v ...*ClientArticle) *SiteProfileCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClientArticleIDs(ids...)
}

// Mutation returns the SiteProfileMutation object of the builder.
func (_c *SiteProfileCreate) Mutation() *SiteProfileMutation {
	return _c.mutation
}

// Save creates the SiteProfile in the database.
func (_c *SiteProfileCreate) Save(ctx context.Context) (*SiteProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SiteProfileCreate) SaveX(ctx context.Context) *SiteProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SiteProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SiteProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SiteProfileCreate) defaults() {
	if _, ok := _c.mutation.AnalysisDate(); !ok {
		v := siteprofile.DefaultAnalysisDate()
		_c.mutation.SetAnalysisDate(v)
	}
	if _, ok := _c.mutation.LanguageLevel(); !ok {
		v := siteprofile.DefaultLanguageLevel
		_c.mutation.SetLanguageLevel(v)
	}
	if _, ok := _c.mutation.PagesAnalyzed(); !ok {
		v := siteprofile.DefaultPagesAnalyzed
		_c.mutation.SetPagesAnalyzed(v)
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		v := siteprofile.DefaultIsValid
		_c.mutation.SetIsValid(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := siteprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SiteProfileCreate) check() error {
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "SiteProfile.domain"`)}
	}
	if _, ok := _c.mutation.AnalysisDate(); !ok {
		return &ValidationError{Name: "analysis_date", err: errors.New(`ent: missing required field "SiteProfile.analysis_date"`)}
	}
	if _, ok := _c.mutation.LanguageLevel(); !ok {
		return &ValidationError{Name: "language_level", err: errors.New(`ent: missing required field "SiteProfile.language_level"`)}
	}
	if v, ok := _c.mutation.LanguageLevel(); ok {
		if err := siteprofile.LanguageLevelValidator(v); err != nil {
			return &ValidationError{Name: "language_level", err: fmt.Errorf(`ent: validator failed for field "SiteProfile.language_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PagesAnalyzed(); !ok {
		return &ValidationError{Name: "pages_analyzed", err: errors.New(`ent: missing required field "SiteProfile.pages_analyzed"`)}
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		return &ValidationError{Name: "is_valid", err: errors.New(`ent: missing required field "SiteProfile.is_valid"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SiteProfile.created_at"`)}
	}
	return nil
}

func (_c *SiteProfileCreate) sqlSave(ctx context.Context) (*SiteProfile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SiteProfileCreate) createSpec() (*SiteProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &SiteProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(siteprofile.Table, sqlgraph.NewFieldSpec(siteprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(siteprofile.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.AnalysisDate(); ok {
		_spec.SetField(siteprofile.FieldAnalysisDate, field.TypeTime, value)
		_node.AnalysisDate = value
	}
	if value, ok := _c.mutation.LanguageLevel(); ok {
		_spec.SetField(siteprofile.FieldLanguageLevel, field.TypeEnum, value)
		_node.LanguageLevel = value
	}
	if value, ok := _c.mutation.EditorialTone(); ok {
		_spec.SetField(siteprofile.FieldEditorialTone, field.TypeString, value)
		_node.EditorialTone = value
	}
	if value, ok := _c.mutation.TargetAudience(); ok {
		_spec.SetField(siteprofile.FieldTargetAudience, field.TypeJSON, value)
		_node.TargetAudience = value
	}
	if value, ok := _c.mutation.ActivityDomains(); ok {
		_spec.SetField(siteprofile.FieldActivityDomains, field.TypeJSON, value)
		_node.ActivityDomains = value
	}
	if value, ok := _c.mutation.ContentStructure(); ok {
		_spec.SetField(siteprofile.FieldContentStructure, field.TypeJSON, value)
		_node.ContentStructure = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(siteprofile.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.StyleFeatures(); ok {
		_spec.SetField(siteprofile.FieldStyleFeatures, field.TypeJSON, value)
		_node.StyleFeatures = value
	}
	if value, ok := _c.mutation.PagesAnalyzed(); ok {
		_spec.SetField(siteprofile.FieldPagesAnalyzed, field.TypeInt, value)
		_node.PagesAnalyzed = value
	}
	if value, ok := _c.mutation.LlmModelsUsed(); ok {
		_spec.SetField(siteprofile.FieldLlmModelsUsed, field.TypeJSON, value)
		_node.LlmModelsUsed = value
	}
	if value, ok := _c.mutation.IsValid(); ok {
		_spec.SetField(siteprofile.FieldIsValid, field.TypeBool, value)
		_node.IsValid = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(siteprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClientArticlesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SiteProfileCreateBulk is the builder for creating many SiteProfile entities in bulk.
type SiteProfileCreateBulk struct {
	config
	err      error
	builders []*SiteProfileCreate
}

// Save creates the SiteProfile entities in the database.
func (_c *SiteProfileCreateBulk) Save(ctx context.Context) ([]*SiteProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SiteProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SiteProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SiteProfileCreateBulk) SaveX(ctx context.Context) []*SiteProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SiteProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SiteProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
