// Code generated by ent, DO NOT EDIT.

package clientarticle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the clientarticle type in the database.
	Label = "client_article"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSiteProfileID holds the string denoting the site_profile_id field in the database.
	FieldSiteProfileID = "site_profile_id"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldURLHash holds the string denoting the url_hash field in the database.
	FieldURLHash = "url_hash"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldContentText holds the string denoting the content_text field in the database.
	FieldContentText = "content_text"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldPublishedDate holds the string denoting the published_date field in the database.
	FieldPublishedDate = "published_date"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldQdrantPointID holds the string denoting the qdrant_point_id field in the database.
	FieldQdrantPointID = "qdrant_point_id"
	// FieldIsValid holds the string denoting the is_valid field in the database.
	FieldIsValid = "is_valid"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSiteProfile holds the string denoting the site_profile edge name in mutations.
	EdgeSiteProfile = "site_profile"
	// Table holds the table name of the clientarticle in the database.
	Table = "client_articles"
	// SiteProfileTable is the table that holds the site_profile relation/edge.
	SiteProfileTable = "client_articles"
	// SiteProfileInverseTable is the table name for the SiteProfile entity.
	// It exists in this package in order to avoid circular dependency with the "siteprofile" package.
	SiteProfileInverseTable = "site_profiles"
	// SiteProfileColumn is the table column denoting the site_profile relation/edge.
	SiteProfileColumn = "site_profile_id"
)

// Columns holds all SQL columns for clientarticle fields.
var Columns = []string{
	FieldID,
	FieldSiteProfileID,
	FieldDomain,
	FieldURL,
	FieldURLHash,
	FieldTitle,
	FieldContentText,
	FieldAuthor,
	FieldPublishedDate,
	FieldKeywords,
	FieldTopicID,
	FieldQdrantPointID,
	FieldIsValid,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsValid holds the default value on creation for the "is_valid" field.
	DefaultIsValid bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ClientArticle queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySiteProfileID orders the results by the site_profile_id field.
func BySiteProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSiteProfileID, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByURLHash orders the results by the url_hash field.
func ByURLHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURLHash, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByContentText orders the results by the content_text field.
func ByContentText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentText, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByPublishedDate orders the results by the published_date field.
func ByPublishedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedDate, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByQdrantPointID orders the results by the qdrant_point_id field.
func ByQdrantPointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQdrantPointID, opts...).ToFunc()
}

// ByIsValid orders the results by the is_valid field.
func ByIsValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsValid, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySiteProfileField orders the results by site_profile field.
func BySiteProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSiteProfileStep(), sql.OrderByField(field, opts...))
	}
}
func newSiteProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SiteProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SiteProfileTable, SiteProfileColumn),
	)
}
