// Code generated by ent, DO NOT EDIT.

package siteprofile

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the siteprofile type in the database.
	Label = "site_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldAnalysisDate holds the string denoting the analysis_date field in the database.
	FieldAnalysisDate = "analysis_date"
	// FieldLanguageLevel holds the string denoting the language_level field in the database.
	FieldLanguageLevel = "language_level"
	// FieldEditorialTone holds the string denoting the editorial_tone field in the database.
	FieldEditorialTone = "editorial_tone"
	// FieldTargetAudience holds the string denoting the target_audience field in the database.
	FieldTargetAudience = "target_audience"
	// FieldActivityDomains holds the string denoting the activity_domains field in the database.
	FieldActivityDomains = "activity_domains"
	// FieldContentStructure holds the string denoting the content_structure field in the database.
	FieldContentStructure = "content_structure"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// FieldStyleFeatures holds the string denoting the style_features field in the database.
	FieldStyleFeatures = "style_features"
	// FieldPagesAnalyzed holds the string denoting the pages_analyzed field in the database.
	FieldPagesAnalyzed = "pages_analyzed"
	// FieldLlmModelsUsed holds the string denoting the llm_models_used field in the database.
	FieldLlmModelsUsed = "llm_models_used"
	// FieldIsValid holds the string denoting the is_valid field in the database.
	FieldIsValid = "is_valid"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeClientArticles holds the string denoting the client_articles edge name in mutations.
	EdgeClientArticles = "client_articles"
	// Table holds the table name of the siteprofile in the database.
	Table = "site_profiles"
	// ClientArticlesTable is the table that holds the client_articles relation/edge.
	ClientArticlesTable = "client_articles"
	// ClientArticlesInverseTable is the table name for the ClientArticle entity.
	// It exists in this package in order to avoid circular dependency with the "clientarticle" package.
	ClientArticlesInverseTable = "client_articles"
	// ClientArticlesColumn is the table column denoting the client_articles relation/edge.
	ClientArticlesColumn = "site_profile_id"
)

// Columns holds all SQL columns for siteprofile fields.
var Columns = []string{
	FieldID,
	FieldDomain,
	FieldAnalysisDate,
	FieldLanguageLevel,
	FieldEditorialTone,
	FieldTargetAudience,
	FieldActivityDomains,
	FieldContentStructure,
	FieldKeywords,
	FieldStyleFeatures,
	FieldPagesAnalyzed,
	FieldLlmModelsUsed,
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
	// DefaultAnalysisDate holds the default value on creation for the "analysis_date" field.
	DefaultAnalysisDate func() time.Time
	// DefaultPagesAnalyzed holds the default value on creation for the "pages_analyzed" field.
	DefaultPagesAnalyzed int
	// DefaultIsValid holds the default value on creation for the "is_valid" field.
	DefaultIsValid bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// LanguageLevel defines the type for the "language_level" enum field.
type LanguageLevel string

// LanguageLevelIntermediate is the default value of the LanguageLevel enum.
const DefaultLanguageLevel = LanguageLevelIntermediate

// LanguageLevel values.
const (
	LanguageLevelSimple       LanguageLevel = "simple"
	LanguageLevelIntermediate LanguageLevel = "intermediate"
	LanguageLevelAdvanced     LanguageLevel = "advanced"
	LanguageLevelExpert       LanguageLevel = "expert"
)

func (ll LanguageLevel) String() string {
	return string(ll)
}

// LanguageLevelValidator is a validator for the "language_level" field enum values. It is called by the builders before save.
func LanguageLevelValidator(ll LanguageLevel) error {
	switch ll {
	case LanguageLevelSimple, LanguageLevelIntermediate, LanguageLevelAdvanced, LanguageLevelExpert:
		return nil
	default:
		return fmt.Errorf("siteprofile: invalid enum value for language_level field: %q", ll)
	}
}

// OrderOption defines the ordering options for the SiteProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByAnalysisDate orders the results by the analysis_date field.
func ByAnalysisDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisDate, opts...).ToFunc()
}

// ByLanguageLevel orders the results by the language_level field.
func ByLanguageLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguageLevel, opts...).ToFunc()
}

// ByEditorialTone orders the results by the editorial_tone field.
func ByEditorialTone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEditorialTone, opts...).ToFunc()
}

// ByPagesAnalyzed orders the results by the pages_analyzed field.
func ByPagesAnalyzed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPagesAnalyzed, opts...).ToFunc()
}

// ByIsValid orders the results by the is_valid field.
func ByIsValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsValid, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByClientArticlesCount orders the results by client_articles count.
func ByClientArticlesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newClientArticlesStep(), opts...)
	}
}

// ByClientArticles orders the results by client_articles terms.
func ByClientArticles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClientArticlesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newClientArticlesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClientArticlesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ClientArticlesTable, ClientArticlesColumn),
	)
}
