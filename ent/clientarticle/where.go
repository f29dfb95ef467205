// Code generated by ent, DO NOT EDIT.

package clientarticle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLTE(FieldID, id))
}

// SiteProfileID applies equality check predicate on the "site_profile_id" field. It's identical to SiteProfileIDEQ.
func SiteProfileID(v int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldSiteProfileID, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldDomain, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldURL, v))
}

// URLHash applies equality check predicate on the "url_hash" field. It's identical to URLHashEQ.
func URLHash(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldURLHash, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldTitle, v))
}

// ContentText applies equality check predicate on the "content_text" field. It's identical to ContentTextEQ.
func ContentText(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldContentText, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldAuthor, v))
}

// PublishedDate applies equality check predicate on the "published_date" field. It's identical to PublishedDateEQ.
func PublishedDate(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldPublishedDate, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldTopicID, v))
}

// QdrantPointID applies equality check predicate on the "qdrant_point_id" field. It's identical to QdrantPointIDEQ.
func QdrantPointID(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldQdrantPointID, v))
}

// IsValid applies equality check predicate on the "is_valid" field. It's identical to IsValidEQ.
func IsValid(v bool) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldIsValid, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldCreatedAt, v))
}

// SiteProfileIDEQ applies the EQ predicate on the "site_profile_id" field.
func SiteProfileIDEQ(v int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldSiteProfileID, v))
}

// SiteProfileIDNEQ applies the NEQ predicate on the "site_profile_id" field.
func SiteProfileIDNEQ(v int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldSiteProfileID, v))
}

// SiteProfileIDIn applies the In predicate on the "site_profile_id" field.
func SiteProfileIDIn(vs ...int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIn(FieldSiteProfileID, vs...))
}

// SiteProfileIDNotIn applies the NotIn predicate on the "site_profile_id" field.
func SiteProfileIDNotIn(vs ...int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotIn(FieldSiteProfileID, vs...))
}

// SiteProfileIDIsNil applies the IsNil predicate on the "site_profile_id" field.
func SiteProfileIDIsNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIsNull(FieldSiteProfileID))
}

// SiteProfileIDNotNil applies the NotNil predicate on the "site_profile_id" field.
func SiteProfileIDNotNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotNull(FieldSiteProfileID))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContainsFold(FieldDomain, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContainsFold(FieldURL, v))
}

// URLHashEQ applies the EQ predicate on the "url_hash" field.
func URLHashEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldURLHash, v))
}

// URLHashNEQ applies the NEQ predicate on the "url_hash" field.
func URLHashNEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldURLHash, v))
}

// URLHashIn applies the In predicate on the "url_hash" field.
func URLHashIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIn(FieldURLHash, vs...))
}

// URLHashNotIn applies the NotIn predicate on the "url_hash" field.
func URLHashNotIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotIn(FieldURLHash, vs...))
}

// URLHashGT applies the GT predicate on the "url_hash" field.
func URLHashGT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGT(FieldURLHash, v))
}

// URLHashGTE applies the GTE predicate on the "url_hash" field.
func URLHashGTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGTE(FieldURLHash, v))
}

// URLHashLT applies the LT predicate on the "url_hash" field.
func URLHashLT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLT(FieldURLHash, v))
}

// URLHashLTE applies the LTE predicate on the "url_hash" field.
func URLHashLTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLTE(FieldURLHash, v))
}

// URLHashContains applies the Contains predicate on the "url_hash" field.
func URLHashContains(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContains(FieldURLHash, v))
}

// URLHashHasPrefix applies the HasPrefix predicate on the "url_hash" field.
func URLHashHasPrefix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasPrefix(FieldURLHash, v))
}

// URLHashHasSuffix applies the HasSuffix predicate on the "url_hash" field.
func URLHashHasSuffix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasSuffix(FieldURLHash, v))
}

// URLHashEqualFold applies the EqualFold predicate on the "url_hash" field.
func URLHashEqualFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEqualFold(FieldURLHash, v))
}

// URLHashContainsFold applies the ContainsFold predicate on the "url_hash" field.
func URLHashContainsFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContainsFold(FieldURLHash, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContainsFold(FieldTitle, v))
}

// ContentTextEQ applies the EQ predicate on the "content_text" field.
func ContentTextEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldContentText, v))
}

// ContentTextNEQ applies the NEQ predicate on the "content_text" field.
func ContentTextNEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldContentText, v))
}

// ContentTextIn applies the In predicate on the "content_text" field.
func ContentTextIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIn(FieldContentText, vs...))
}

// ContentTextNotIn applies the NotIn predicate on the "content_text" field.
func ContentTextNotIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotIn(FieldContentText, vs...))
}

// ContentTextGT applies the GT predicate on the "content_text" field.
func ContentTextGT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGT(FieldContentText, v))
}

// ContentTextGTE applies the GTE predicate on the "content_text" field.
func ContentTextGTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGTE(FieldContentText, v))
}

// ContentTextLT applies the LT predicate on the "content_text" field.
func ContentTextLT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLT(FieldContentText, v))
}

// ContentTextLTE applies the LTE predicate on the "content_text" field.
func ContentTextLTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLTE(FieldContentText, v))
}

// ContentTextContains applies the Contains predicate on the "content_text" field.
func ContentTextContains(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContains(FieldContentText, v))
}

// ContentTextHasPrefix applies the HasPrefix predicate on the "content_text" field.
func ContentTextHasPrefix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasPrefix(FieldContentText, v))
}

// ContentTextHasSuffix applies the HasSuffix predicate on the "content_text" field.
func ContentTextHasSuffix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasSuffix(FieldContentText, v))
}

// ContentTextIsNil applies the IsNil predicate on the "content_text" field.
func ContentTextIsNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIsNull(FieldContentText))
}

// ContentTextNotNil applies the NotNil predicate on the "content_text" field.
func ContentTextNotNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotNull(FieldContentText))
}

// ContentTextEqualFold applies the EqualFold predicate on the "content_text" field.
func ContentTextEqualFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEqualFold(FieldContentText, v))
}

// ContentTextContainsFold applies the ContainsFold predicate on the "content_text" field.
func ContentTextContainsFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContainsFold(FieldContentText, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContainsFold(FieldAuthor, v))
}

// PublishedDateEQ applies the EQ predicate on the "published_date" field.
func PublishedDateEQ(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldPublishedDate, v))
}

// PublishedDateNEQ applies the NEQ predicate on the "published_date" field.
func PublishedDateNEQ(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldPublishedDate, v))
}

// PublishedDateIn applies the In predicate on the "published_date" field.
func PublishedDateIn(vs ...time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIn(FieldPublishedDate, vs...))
}

// PublishedDateNotIn applies the NotIn predicate on the "published_date" field.
func PublishedDateNotIn(vs ...time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotIn(FieldPublishedDate, vs...))
}

// PublishedDateGT applies the GT predicate on the "published_date" field.
func PublishedDateGT(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGT(FieldPublishedDate, v))
}

// PublishedDateGTE applies the GTE predicate on the "published_date" field.
func PublishedDateGTE(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGTE(FieldPublishedDate, v))
}

// PublishedDateLT applies the LT predicate on the "published_date" field.
func PublishedDateLT(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLT(FieldPublishedDate, v))
}

// PublishedDateLTE applies the LTE predicate on the "published_date" field.
func PublishedDateLTE(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLTE(FieldPublishedDate, v))
}

// PublishedDateIsNil applies the IsNil predicate on the "published_date" field.
func PublishedDateIsNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIsNull(FieldPublishedDate))
}

// PublishedDateNotNil applies the NotNil predicate on the "published_date" field.
func PublishedDateNotNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotNull(FieldPublishedDate))
}

// KeywordsIsNil applies the IsNil predicate on the "keywords" field.
func KeywordsIsNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIsNull(FieldKeywords))
}

// KeywordsNotNil applies the NotNil predicate on the "keywords" field.
func KeywordsNotNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotNull(FieldKeywords))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v int) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDIsNil applies the IsNil predicate on the "topic_id" field.
func TopicIDIsNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIsNull(FieldTopicID))
}

// TopicIDNotNil applies the NotNil predicate on the "topic_id" field.
func TopicIDNotNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotNull(FieldTopicID))
}

// QdrantPointIDEQ applies the EQ predicate on the "qdrant_point_id" field.
func QdrantPointIDEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldQdrantPointID, v))
}

// QdrantPointIDNEQ applies the NEQ predicate on the "qdrant_point_id" field.
func QdrantPointIDNEQ(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldQdrantPointID, v))
}

// QdrantPointIDIn applies the In predicate on the "qdrant_point_id" field.
func QdrantPointIDIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIn(FieldQdrantPointID, vs...))
}

// QdrantPointIDNotIn applies the NotIn predicate on the "qdrant_point_id" field.
func QdrantPointIDNotIn(vs ...string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotIn(FieldQdrantPointID, vs...))
}

// QdrantPointIDGT applies the GT predicate on the "qdrant_point_id" field.
func QdrantPointIDGT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGT(FieldQdrantPointID, v))
}

// QdrantPointIDGTE applies the GTE predicate on the "qdrant_point_id" field.
func QdrantPointIDGTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGTE(FieldQdrantPointID, v))
}

// QdrantPointIDLT applies the LT predicate on the "qdrant_point_id" field.
func QdrantPointIDLT(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLT(FieldQdrantPointID, v))
}

// QdrantPointIDLTE applies the LTE predicate on the "qdrant_point_id" field.
func QdrantPointIDLTE(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLTE(FieldQdrantPointID, v))
}

// QdrantPointIDContains applies the Contains predicate on the "qdrant_point_id" field.
func QdrantPointIDContains(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContains(FieldQdrantPointID, v))
}

// QdrantPointIDHasPrefix applies the HasPrefix predicate on the "qdrant_point_id" field.
func QdrantPointIDHasPrefix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasPrefix(FieldQdrantPointID, v))
}

// QdrantPointIDHasSuffix applies the HasSuffix predicate on the "qdrant_point_id" field.
func QdrantPointIDHasSuffix(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldHasSuffix(FieldQdrantPointID, v))
}

// QdrantPointIDIsNil applies the IsNil predicate on the "qdrant_point_id" field.
func QdrantPointIDIsNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIsNull(FieldQdrantPointID))
}

// QdrantPointIDNotNil applies the NotNil predicate on the "qdrant_point_id" field.
func QdrantPointIDNotNil() predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotNull(FieldQdrantPointID))
}

// QdrantPointIDEqualFold applies the EqualFold predicate on the "qdrant_point_id" field.
func QdrantPointIDEqualFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEqualFold(FieldQdrantPointID, v))
}

// QdrantPointIDContainsFold applies the ContainsFold predicate on the "qdrant_point_id" field.
func QdrantPointIDContainsFold(v string) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldContainsFold(FieldQdrantPointID, v))
}

// IsValidEQ applies the EQ predicate on the "is_valid" field.
func IsValidEQ(v bool) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldIsValid, v))
}

// IsValidNEQ applies the NEQ predicate on the "is_valid" field.
func IsValidNEQ(v bool) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldIsValid, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClientArticle {
	return predicate.ClientArticle(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSiteProfile applies the HasEdge predicate on the "site_profile" edge.
func HasSiteProfile() predicate.ClientArticle {
	return predicate.ClientArticle(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SiteProfileTable, SiteProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSiteProfileWith applies the HasEdge predicate on the "site_profile" edge with a given conditions (other predicates).
func HasSiteProfileWith(preds ...predicate.SiteProfile) predicate.ClientArticle {
	return predicate.ClientArticle(func(s *sql.Selector) {
		step := newSiteProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClientArticle) predicate.ClientArticle {
	return predicate.ClientArticle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClientArticle) predicate.ClientArticle {
	return predicate.ClientArticle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClientArticle) predicate.ClientArticle {
	return predicate.ClientArticle(sql.NotPredicates(p))
}
