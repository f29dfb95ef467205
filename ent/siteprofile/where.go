// Code generated by ent, DO NOT EDIT.

package siteprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldLTE(FieldID, id))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldDomain, v))
}

// AnalysisDate applies equality check predicate on the "analysis_date" field. It's identical to AnalysisDateEQ.
func AnalysisDate(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldAnalysisDate, v))
}

// EditorialTone applies equality check predicate on the "editorial_tone" field. It's identical to EditorialToneEQ.
func EditorialTone(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldEditorialTone, v))
}

// PagesAnalyzed applies equality check predicate on the "pages_analyzed" field. It's identical to PagesAnalyzedEQ.
func PagesAnalyzed(v int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldPagesAnalyzed, v))
}

// IsValid applies equality check predicate on the "is_valid" field. It's identical to IsValidEQ.
func IsValid(v bool) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldIsValid, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldContainsFold(FieldDomain, v))
}

// AnalysisDateEQ applies the EQ predicate on the "analysis_date" field.
func AnalysisDateEQ(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldAnalysisDate, v))
}

// AnalysisDateNEQ applies the NEQ predicate on the "analysis_date" field.
func AnalysisDateNEQ(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNEQ(FieldAnalysisDate, v))
}

// AnalysisDateIn applies the In predicate on the "analysis_date" field.
func AnalysisDateIn(vs ...time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIn(FieldAnalysisDate, vs...))
}

// AnalysisDateNotIn applies the NotIn predicate on the "analysis_date" field.
func AnalysisDateNotIn(vs ...time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotIn(FieldAnalysisDate, vs...))
}

// AnalysisDateGT applies the GT predicate on the "analysis_date" field.
func AnalysisDateGT(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldGT(FieldAnalysisDate, v))
}

// AnalysisDateGTE applies the GTE predicate on the "analysis_date" field.
func AnalysisDateGTE(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldGTE(FieldAnalysisDate, v))
}

// AnalysisDateLT applies the LT predicate on the "analysis_date" field.
func AnalysisDateLT(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldLT(FieldAnalysisDate, v))
}

// AnalysisDateLTE applies the LTE predicate on the "analysis_date" field.
func AnalysisDateLTE(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldLTE(FieldAnalysisDate, v))
}

// LanguageLevelEQ applies the EQ predicate on the "language_level" field.
func LanguageLevelEQ(v LanguageLevel) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldLanguageLevel, v))
}

// LanguageLevelNEQ applies the NEQ predicate on the "language_level" field.
func LanguageLevelNEQ(v LanguageLevel) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNEQ(FieldLanguageLevel, v))
}

// LanguageLevelIn applies the In predicate on the "language_level" field.
func LanguageLevelIn(vs ...LanguageLevel) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIn(FieldLanguageLevel, vs...))
}

// LanguageLevelNotIn applies the NotIn predicate on the "language_level" field.
func LanguageLevelNotIn(vs ...LanguageLevel) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotIn(FieldLanguageLevel, vs...))
}

// EditorialToneEQ applies the EQ predicate on the "editorial_tone" field.
func EditorialToneEQ(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldEditorialTone, v))
}

// EditorialToneNEQ applies the NEQ predicate on the "editorial_tone" field.
func EditorialToneNEQ(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNEQ(FieldEditorialTone, v))
}

// EditorialToneIn applies the In predicate on the "editorial_tone" field.
func EditorialToneIn(vs ...string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIn(FieldEditorialTone, vs...))
}

// EditorialToneNotIn applies the NotIn predicate on the "editorial_tone" field.
func EditorialToneNotIn(vs ...string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotIn(FieldEditorialTone, vs...))
}

// EditorialToneGT applies the GT predicate on the "editorial_tone" field.
func EditorialToneGT(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldGT(FieldEditorialTone, v))
}

// EditorialToneGTE applies the GTE predicate on the "editorial_tone" field.
func EditorialToneGTE(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldGTE(FieldEditorialTone, v))
}

// EditorialToneLT applies the LT predicate on the "editorial_tone" field.
func EditorialToneLT(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldLT(FieldEditorialTone, v))
}

// EditorialToneLTE applies the LTE predicate on the "editorial_tone" field.
func EditorialToneLTE(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldLTE(FieldEditorialTone, v))
}

// EditorialToneContains applies the Contains predicate on the "editorial_tone" field.
func EditorialToneContains(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldContains(FieldEditorialTone, v))
}

// EditorialToneHasPrefix applies the HasPrefix predicate on the "editorial_tone" field.
func EditorialToneHasPrefix(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldHasPrefix(FieldEditorialTone, v))
}

// EditorialToneHasSuffix applies the HasSuffix predicate on the "editorial_tone" field.
func EditorialToneHasSuffix(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldHasSuffix(FieldEditorialTone, v))
}

// EditorialToneIsNil applies the IsNil predicate on the "editorial_tone" field.
func EditorialToneIsNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIsNull(FieldEditorialTone))
}

// EditorialToneNotNil applies the NotNil predicate on the "editorial_tone" field.
func EditorialToneNotNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotNull(FieldEditorialTone))
}

// EditorialToneEqualFold applies the EqualFold predicate on the "editorial_tone" field.
func EditorialToneEqualFold(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEqualFold(FieldEditorialTone, v))
}

// EditorialToneContainsFold applies the ContainsFold predicate on the "editorial_tone" field.
func EditorialToneContainsFold(v string) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldContainsFold(FieldEditorialTone, v))
}

// TargetAudienceIsNil applies the IsNil predicate on the "target_audience" field.
func TargetAudienceIsNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIsNull(FieldTargetAudience))
}

// TargetAudienceNotNil applies the NotNil predicate on the "target_audience" field.
func TargetAudienceNotNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotNull(FieldTargetAudience))
}

// ActivityDomainsIsNil applies the IsNil predicate on the "activity_domains" field.
func ActivityDomainsIsNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIsNull(FieldActivityDomains))
}

// ActivityDomainsNotNil applies the NotNil predicate on the "activity_domains" field.
func ActivityDomainsNotNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotNull(FieldActivityDomains))
}

// ContentStructureIsNil applies the IsNil predicate on the "content_structure" field.
func ContentStructureIsNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIsNull(FieldContentStructure))
}

// ContentStructureNotNil applies the NotNil predicate on the "content_structure" field.
func ContentStructureNotNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotNull(FieldContentStructure))
}

// KeywordsIsNil applies the IsNil predicate on the "keywords" field.
func KeywordsIsNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIsNull(FieldKeywords))
}

// KeywordsNotNil applies the NotNil predicate on the "keywords" field.
func KeywordsNotNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotNull(FieldKeywords))
}

// StyleFeaturesIsNil applies the IsNil predicate on the "style_features" field.
func StyleFeaturesIsNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIsNull(FieldStyleFeatures))
}

// StyleFeaturesNotNil applies the NotNil predicate on the "style_features" field.
func StyleFeaturesNotNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotNull(FieldStyleFeatures))
}

// PagesAnalyzedEQ applies the EQ predicate on the "pages_analyzed" field.
func PagesAnalyzedEQ(v int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldPagesAnalyzed, v))
}

// PagesAnalyzedNEQ applies the NEQ predicate on the "pages_analyzed" field.
func PagesAnalyzedNEQ(v int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNEQ(FieldPagesAnalyzed, v))
}

// PagesAnalyzedIn applies the In predicate on the "pages_analyzed" field.
func PagesAnalyzedIn(vs ...int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIn(FieldPagesAnalyzed, vs...))
}

// PagesAnalyzedNotIn applies the NotIn predicate on the "pages_analyzed" field.
func PagesAnalyzedNotIn(vs ...int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotIn(FieldPagesAnalyzed, vs...))
}

// PagesAnalyzedGT applies the GT predicate on the "pages_analyzed" field.
func PagesAnalyzedGT(v int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldGT(FieldPagesAnalyzed, v))
}

// PagesAnalyzedGTE applies the GTE predicate on the "pages_analyzed" field.
func PagesAnalyzedGTE(v int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldGTE(FieldPagesAnalyzed, v))
}

// PagesAnalyzedLT applies the LT predicate on the "pages_analyzed" field.
func PagesAnalyzedLT(v int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldLT(FieldPagesAnalyzed, v))
}

// PagesAnalyzedLTE applies the LTE predicate on the "pages_analyzed" field.
func PagesAnalyzedLTE(v int) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldLTE(FieldPagesAnalyzed, v))
}

// LlmModelsUsedIsNil applies the IsNil predicate on the "llm_models_used" field.
func LlmModelsUsedIsNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIsNull(FieldLlmModelsUsed))
}

// LlmModelsUsedNotNil applies the NotNil predicate on the "llm_models_used" field.
func LlmModelsUsedNotNil() predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotNull(FieldLlmModelsUsed))
}

// IsValidEQ applies the EQ predicate on the "is_valid" field.
func IsValidEQ(v bool) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldIsValid, v))
}

// IsValidNEQ applies the NEQ predicate on the "is_valid" field.
func IsValidNEQ(v bool) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNEQ(FieldIsValid, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SiteProfile {
	return predicate.SiteProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// HasClientArticles applies the HasEdge predicate on the "client_articles" edge.
func HasClientArticles() predicate.SiteProfile {
	return predicate.SiteProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ClientArticlesTable, ClientArticlesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientArticlesWith applies the HasEdge predicate on the "client_articles" edge with a given conditions (other predicates).
func HasClientArticlesWith(preds ...predicate.ClientArticle) predicate.SiteProfile {
	return predicate.SiteProfile(func(s *sql.Selector) {
		step := newClientArticlesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SiteProfile) predicate.SiteProfile {
	return predicate.SiteProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SiteProfile) predicate.SiteProfile {
	return predicate.SiteProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SiteProfile) predicate.SiteProfile {
	return predicate.SiteProfile(sql.NotPredicates(p))
}
