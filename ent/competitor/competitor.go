// Code generated by ent, DO NOT EDIT.

package competitor

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the competitor type in the database.
	Label = "competitor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClientDomain holds the string denoting the client_domain field in the database.
	FieldClientDomain = "client_domain"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldRelevanceScore holds the string denoting the relevance_score field in the database.
	FieldRelevanceScore = "relevance_score"
	// FieldValidated holds the string denoting the validated field in the database.
	FieldValidated = "validated"
	// FieldExcluded holds the string denoting the excluded field in the database.
	FieldExcluded = "excluded"
	// FieldValidationDate holds the string denoting the validation_date field in the database.
	FieldValidationDate = "validation_date"
	// FieldIsValid holds the string denoting the is_valid field in the database.
	FieldIsValid = "is_valid"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the competitor in the database.
	Table = "competitors"
)

// Columns holds all SQL columns for competitor fields.
var Columns = []string{
	FieldID,
	FieldClientDomain,
	FieldDomain,
	FieldSource,
	FieldRelevanceScore,
	FieldValidated,
	FieldExcluded,
	FieldValidationDate,
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
	// DefaultRelevanceScore holds the default value on creation for the "relevance_score" field.
	DefaultRelevanceScore float64
	// DefaultValidated holds the default value on creation for the "validated" field.
	DefaultValidated bool
	// DefaultExcluded holds the default value on creation for the "excluded" field.
	DefaultExcluded bool
	// DefaultIsValid holds the default value on creation for the "is_valid" field.
	DefaultIsValid bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Competitor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClientDomain orders the results by the client_domain field.
func ByClientDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientDomain, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByRelevanceScore orders the results by the relevance_score field.
func ByRelevanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevanceScore, opts...).ToFunc()
}

// ByValidated orders the results by the validated field.
func ByValidated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidated, opts...).ToFunc()
}

// ByExcluded orders the results by the excluded field.
func ByExcluded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcluded, opts...).ToFunc()
}

// ByValidationDate orders the results by the validation_date field.
func ByValidationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationDate, opts...).ToFunc()
}

// ByIsValid orders the results by the is_valid field.
func ByIsValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsValid, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
