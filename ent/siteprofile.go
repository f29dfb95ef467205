// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/siteprofile"
)

// SiteProfile is the model entity for the SiteProfile schema.
type SiteProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// AnalysisDate holds the value of the "analysis_date" field.
	AnalysisDate time.Time `json:"analysis_date,omitempty"`
	// LanguageLevel holds the value of the "language_level" field.
	LanguageLevel siteprofile.LanguageLevel `json:"language_level,omitempty"`
	// EditorialTone holds the value of the "editorial_tone" field.
	EditorialTone string `json:"editorial_tone,omitempty"`
	// TargetAudience holds the value of the "target_audience" field.
	TargetAudience map[string]interface{} `json:"target_audience,omitempty"`
	// LLM output: primary_domains, secondary_domains, domain_details; shape varies
	ActivityDomains map[string]interface{} `json:"activity_domains,omitempty"`
	// ContentStructure holds the value of the "content_structure" field.
	ContentStructure map[string]interface{} `json:"content_structure,omitempty"`
	// Keywords holds the value of the "keywords" field.
	Keywords map[string]interface{} `json:"keywords,omitempty"`
	// StyleFeatures holds the value of the "style_features" field.
	StyleFeatures map[string]interface{} `json:"style_features,omitempty"`
	// PagesAnalyzed holds the value of the "pages_analyzed" field.
	PagesAnalyzed int `json:"pages_analyzed,omitempty"`
	// LlmModelsUsed holds the value of the "llm_models_used" field.
	LlmModelsUsed []string `json:"llm_models_used,omitempty"`
	// Tombstone: false once superseded by a re-analysis
	IsValid bool `json:"is_valid,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SiteProfileQuery when eager-loading is set.
	Edges        SiteProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SiteProfileEdges holds the relations/edges for other nodes in the graph.
type SiteProfileEdges struct {
	// ClientArticles holds the value of the client_articles edge.
	ClientArticles []*ClientArticle `json:"client_articles,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClientArticlesOrErr returns the ClientArticles value or an error if the edge
// was not loaded in eager-loading.
func (e SiteProfileEdges) ClientArticlesOrErr() ([]*ClientArticle, error) {
	if e.loadedTypes[0] {
		return e.ClientArticles, nil
	}
	return nil, &NotLoadedError{edge: "client_articles"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SiteProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case siteprofile.FieldTargetAudience, siteprofile.FieldActivityDomains, siteprofile.FieldContentStructure, siteprofile.FieldKeywords, siteprofile.FieldStyleFeatures, siteprofile.FieldLlmModelsUsed:
			values[i] = new([]byte)
		case siteprofile.FieldIsValid:
			values[i] = new(sql.NullBool)
		case siteprofile.FieldID, siteprofile.FieldPagesAnalyzed:
			values[i] = new(sql.NullInt64)
		case siteprofile.FieldDomain, siteprofile.FieldLanguageLevel, siteprofile.FieldEditorialTone:
			values[i] = new(sql.NullString)
		case siteprofile.FieldAnalysisDate, siteprofile.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SiteProfile fields.
func (_m *SiteProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case siteprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case siteprofile.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case siteprofile.FieldAnalysisDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_date", values[i])
			} else if value.Valid {
				_m.AnalysisDate = value.Time
			}
		case siteprofile.FieldLanguageLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language_level", values[i])
			} else if value.Valid {
				_m.LanguageLevel = siteprofile.LanguageLevel(value.String)
			}
		case siteprofile.FieldEditorialTone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field editorial_tone", values[i])
			} else if value.Valid {
				_m.EditorialTone = value.String
			}
		case siteprofile.FieldTargetAudience:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field target_audience", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TargetAudience); err != nil {
					return fmt.Errorf("unmarshal field target_audience: %w", err)
				}
			}
		case siteprofile.FieldActivityDomains:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field activity_domains", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActivityDomains); err != nil {
					return fmt.Errorf("unmarshal field activity_domains: %w", err)
				}
			}
		case siteprofile.FieldContentStructure:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_structure", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContentStructure); err != nil {
					return fmt.Errorf("unmarshal field content_structure: %w", err)
				}
			}
		case siteprofile.FieldKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Keywords); err != nil {
					return fmt.Errorf("unmarshal field keywords: %w", err)
				}
			}
		case siteprofile.FieldStyleFeatures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field style_features", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StyleFeatures); err != nil {
					return fmt.Errorf("unmarshal field style_features: %w", err)
				}
			}
		case siteprofile.FieldPagesAnalyzed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pages_analyzed", values[i])
			} else if value.Valid {
				_m.PagesAnalyzed = int(value.Int64)
			}
		case siteprofile.FieldLlmModelsUsed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field llm_models_used", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LlmModelsUsed); err != nil {
					return fmt.Errorf("unmarshal field llm_models_used: %w", err)
				}
			}
		case siteprofile.FieldIsValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_valid", values[i])
			} else if value.Valid {
				_m.IsValid = value.Bool
			}
		case siteprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SiteProfile.
// This includes values selected through modifiers, order, etc.
func (_m *SiteProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClientArticles queries the "client_articles" edge of the SiteProfile entity.
func (_m *SiteProfile) QueryClientArticles() *ClientArticleQuery {
	return NewSiteProfileClient(_m.config).QueryClientArticles(_m)
}

// Update returns a builder for updating this SiteProfile.
// Note that you need to call SiteProfile.Unwrap() before calling this method if this SiteProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SiteProfile) Update() *SiteProfileUpdateOne {
	return NewSiteProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SiteProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SiteProfile) Unwrap() *SiteProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SiteProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SiteProfile) String() string {
	var builder strings.Builder
	builder.WriteString("SiteProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("analysis_date=")
	builder.WriteString(_m.AnalysisDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("language_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.LanguageLevel))
	builder.WriteString(", ")
	builder.WriteString("editorial_tone=")
	builder.WriteString(_m.EditorialTone)
	builder.WriteString(", ")
	builder.WriteString("target_audience=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetAudience))
	builder.WriteString(", ")
	builder.WriteString("activity_domains=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActivityDomains))
	builder.WriteString(", ")
	builder.WriteString("content_structure=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentStructure))
	builder.WriteString(", ")
	builder.WriteString("keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.Keywords))
	builder.WriteString(", ")
	builder.WriteString("style_features=")
	builder.WriteString(fmt.Sprintf("%v", _m.StyleFeatures))
	builder.WriteString(", ")
	builder.WriteString("pages_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PagesAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("llm_models_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmModelsUsed))
	builder.WriteString(", ")
	builder.WriteString("is_valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsValid))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SiteProfiles is a parsable slice of SiteProfile.
type SiteProfiles []*SiteProfile
