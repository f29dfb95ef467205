// Code generated by ent, DO NOT EDIT.

package competitor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Competitor {
	return predicate.Competitor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Competitor {
	return predicate.Competitor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Competitor {
	return predicate.Competitor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Competitor {
	return predicate.Competitor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Competitor {
	return predicate.Competitor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Competitor {
	return predicate.Competitor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Competitor {
	return predicate.Competitor(sql.FieldLTE(FieldID, id))
}

// ClientDomain applies equality check predicate on the "client_domain" field. It's identical to ClientDomainEQ.
func ClientDomain(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldClientDomain, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldDomain, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldSource, v))
}

// RelevanceScore applies equality check predicate on the "relevance_score" field. It's identical to RelevanceScoreEQ.
func RelevanceScore(v float64) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldRelevanceScore, v))
}

// Validated applies equality check predicate on the "validated" field. It's identical to ValidatedEQ.
func Validated(v bool) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldValidated, v))
}

// Excluded applies equality check predicate on the "excluded" field. It's identical to ExcludedEQ.
func Excluded(v bool) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldExcluded, v))
}

// ValidationDate applies equality check predicate on the "validation_date" field. It's identical to ValidationDateEQ.
func ValidationDate(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldValidationDate, v))
}

// IsValid applies equality check predicate on the "is_valid" field. It's identical to IsValidEQ.
func IsValid(v bool) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldIsValid, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldCreatedAt, v))
}

// ClientDomainEQ applies the EQ predicate on the "client_domain" field.
func ClientDomainEQ(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldClientDomain, v))
}

// ClientDomainNEQ applies the NEQ predicate on the "client_domain" field.
func ClientDomainNEQ(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldNEQ(FieldClientDomain, v))
}

// ClientDomainIn applies the In predicate on the "client_domain" field.
func ClientDomainIn(vs ...string) predicate.Competitor {
	return predicate.Competitor(sql.FieldIn(FieldClientDomain, vs...))
}

// ClientDomainNotIn applies the NotIn predicate on the "client_domain" field.
func ClientDomainNotIn(vs ...string) predicate.Competitor {
	return predicate.Competitor(sql.FieldNotIn(FieldClientDomain, vs...))
}

// ClientDomainGT applies the GT predicate on the "client_domain" field.
func ClientDomainGT(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldGT(FieldClientDomain, v))
}

// ClientDomainGTE applies the GTE predicate on the "client_domain" field.
func ClientDomainGTE(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldGTE(FieldClientDomain, v))
}

// ClientDomainLT applies the LT predicate on the "client_domain" field.
func ClientDomainLT(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldLT(FieldClientDomain, v))
}

// ClientDomainLTE applies the LTE predicate on the "client_domain" field.
func ClientDomainLTE(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldLTE(FieldClientDomain, v))
}

// ClientDomainContains applies the Contains predicate on the "client_domain" field.
func ClientDomainContains(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldContains(FieldClientDomain, v))
}

// ClientDomainHasPrefix applies the HasPrefix predicate on the "client_domain" field.
func ClientDomainHasPrefix(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldHasPrefix(FieldClientDomain, v))
}

// ClientDomainHasSuffix applies the HasSuffix predicate on the "client_domain" field.
func ClientDomainHasSuffix(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldHasSuffix(FieldClientDomain, v))
}

// ClientDomainEqualFold applies the EqualFold predicate on the "client_domain" field.
func ClientDomainEqualFold(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldEqualFold(FieldClientDomain, v))
}

// ClientDomainContainsFold applies the ContainsFold predicate on the "client_domain" field.
func ClientDomainContainsFold(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldContainsFold(FieldClientDomain, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Competitor {
	return predicate.Competitor(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Competitor {
	return predicate.Competitor(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldContainsFold(FieldDomain, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Competitor {
	return predicate.Competitor(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Competitor {
	return predicate.Competitor(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.Competitor {
	return predicate.Competitor(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.Competitor {
	return predicate.Competitor(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Competitor {
	return predicate.Competitor(sql.FieldContainsFold(FieldSource, v))
}

// RelevanceScoreEQ applies the EQ predicate on the "relevance_score" field.
func RelevanceScoreEQ(v float64) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldRelevanceScore, v))
}

// RelevanceScoreNEQ applies the NEQ predicate on the "relevance_score" field.
func RelevanceScoreNEQ(v float64) predicate.Competitor {
	return predicate.Competitor(sql.FieldNEQ(FieldRelevanceScore, v))
}

// RelevanceScoreIn applies the In predicate on the "relevance_score" field.
func RelevanceScoreIn(vs ...float64) predicate.Competitor {
	return predicate.Competitor(sql.FieldIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreNotIn applies the NotIn predicate on the "relevance_score" field.
func RelevanceScoreNotIn(vs ...float64) predicate.Competitor {
	return predicate.Competitor(sql.FieldNotIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreGT applies the GT predicate on the "relevance_score" field.
func RelevanceScoreGT(v float64) predicate.Competitor {
	return predicate.Competitor(sql.FieldGT(FieldRelevanceScore, v))
}

// RelevanceScoreGTE applies the GTE predicate on the "relevance_score" field.
func RelevanceScoreGTE(v float64) predicate.Competitor {
	return predicate.Competitor(sql.FieldGTE(FieldRelevanceScore, v))
}

// RelevanceScoreLT applies the LT predicate on the "relevance_score" field.
func RelevanceScoreLT(v float64) predicate.Competitor {
	return predicate.Competitor(sql.FieldLT(FieldRelevanceScore, v))
}

// RelevanceScoreLTE applies the LTE predicate on the "relevance_score" field.
func RelevanceScoreLTE(v float64) predicate.Competitor {
	return predicate.Competitor(sql.FieldLTE(FieldRelevanceScore, v))
}

// ValidatedEQ applies the EQ predicate on the "validated" field.
func ValidatedEQ(v bool) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldValidated, v))
}

// ValidatedNEQ applies the NEQ predicate on the "validated" field.
func ValidatedNEQ(v bool) predicate.Competitor {
	return predicate.Competitor(sql.FieldNEQ(FieldValidated, v))
}

// ExcludedEQ applies the EQ predicate on the "excluded" field.
func ExcludedEQ(v bool) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldExcluded, v))
}

// ExcludedNEQ applies the NEQ predicate on the "excluded" field.
func ExcludedNEQ(v bool) predicate.Competitor {
	return predicate.Competitor(sql.FieldNEQ(FieldExcluded, v))
}

// ValidationDateEQ applies the EQ predicate on the "validation_date" field.
func ValidationDateEQ(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldValidationDate, v))
}

// ValidationDateNEQ applies the NEQ predicate on the "validation_date" field.
func ValidationDateNEQ(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldNEQ(FieldValidationDate, v))
}

// ValidationDateIn applies the In predicate on the "validation_date" field.
func ValidationDateIn(vs ...time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldIn(FieldValidationDate, vs...))
}

// ValidationDateNotIn applies the NotIn predicate on the "validation_date" field.
func ValidationDateNotIn(vs ...time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldNotIn(FieldValidationDate, vs...))
}

// ValidationDateGT applies the GT predicate on the "validation_date" field.
func ValidationDateGT(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldGT(FieldValidationDate, v))
}

// ValidationDateGTE applies the GTE predicate on the "validation_date" field.
func ValidationDateGTE(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldGTE(FieldValidationDate, v))
}

// ValidationDateLT applies the LT predicate on the "validation_date" field.
func ValidationDateLT(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldLT(FieldValidationDate, v))
}

// ValidationDateLTE applies the LTE predicate on the "validation_date" field.
func ValidationDateLTE(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldLTE(FieldValidationDate, v))
}

// ValidationDateIsNil applies the IsNil predicate on the "validation_date" field.
func ValidationDateIsNil() predicate.Competitor {
	return predicate.Competitor(sql.FieldIsNull(FieldValidationDate))
}

// ValidationDateNotNil applies the NotNil predicate on the "validation_date" field.
func ValidationDateNotNil() predicate.Competitor {
	return predicate.Competitor(sql.FieldNotNull(FieldValidationDate))
}

// IsValidEQ applies the EQ predicate on the "is_valid" field.
func IsValidEQ(v bool) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldIsValid, v))
}

// IsValidNEQ applies the NEQ predicate on the "is_valid" field.
func IsValidNEQ(v bool) predicate.Competitor {
	return predicate.Competitor(sql.FieldNEQ(FieldIsValid, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Competitor {
	return predicate.Competitor(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Competitor) predicate.Competitor {
	return predicate.Competitor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Competitor) predicate.Competitor {
	return predicate.Competitor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Competitor) predicate.Competitor {
	return predicate.Competitor(sql.NotPredicates(p))
}
