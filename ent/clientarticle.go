// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/clientarticle"
	"github.com/trendscope/trendscope/ent/siteprofile"
)

// ClientArticle is the model entity for the ClientArticle schema.
type ClientArticle struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SiteProfileID holds the value of the "site_profile_id" field.
	SiteProfileID *int `json:"site_profile_id,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// SHA-256 of normalized URL, dedup key
	URLHash string `json:"url_hash,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// ContentText holds the value of the "content_text" field.
	ContentText string `json:"content_text,omitempty"`
	// Author holds the value of the "author" field.
	Author string `json:"author,omitempty"`
	// PublishedDate holds the value of the "published_date" field.
	PublishedDate *time.Time `json:"published_date,omitempty"`
	// Keywords holds the value of the "keywords" field.
	Keywords []string `json:"keywords,omitempty"`
	// Last clustering assignment; -1 means outlier
	TopicID *int `json:"topic_id,omitempty"`
	// QdrantPointID holds the value of the "qdrant_point_id" field.
	QdrantPointID *string `json:"qdrant_point_id,omitempty"`
	// IsValid holds the value of the "is_valid" field.
	IsValid bool `json:"is_valid,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClientArticleQuery when eager-loading is set.
	Edges        ClientArticleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClientArticleEdges holds the relations/edges for other nodes in the graph.
type ClientArticleEdges struct {
	// SiteProfile holds the value of the site_profile edge.
	SiteProfile *SiteProfile `json:"site_profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SiteProfileOrErr returns the SiteProfile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClientArticleEdges) SiteProfileOrErr() (*SiteProfile, error) {
	if e.SiteProfile != nil {
		return e.SiteProfile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: siteprofile.Label}
	}
	return nil, &NotLoadedError{edge: "site_profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClientArticle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clientarticle.FieldKeywords:
			values[i] = new([]byte)
		case clientarticle.FieldIsValid:
			values[i] = new(sql.NullBool)
		case clientarticle.FieldID, clientarticle.FieldSiteProfileID, clientarticle.FieldTopicID:
			values[i] = new(sql.NullInt64)
		case clientarticle.FieldDomain, clientarticle.FieldURL, clientarticle.FieldURLHash, clientarticle.FieldTitle, clientarticle.FieldContentText, clientarticle.FieldAuthor, clientarticle.FieldQdrantPointID:
			values[i] = new(sql.NullString)
		case clientarticle.FieldPublishedDate, clientarticle.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClientArticle fields.
func (_m *ClientArticle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clientarticle.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case clientarticle.FieldSiteProfileID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field site_profile_id", values[i])
			} else if value.Valid {
				_m.SiteProfileID = new(int)
				*_m.SiteProfileID = int(value.Int64)
			}
		case clientarticle.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case clientarticle.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case clientarticle.FieldURLHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url_hash", values[i])
			} else if value.Valid {
				_m.URLHash = value.String
			}
		case clientarticle.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case clientarticle.FieldContentText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_text", values[i])
			} else if value.Valid {
				_m.ContentText = value.String
			}
		case clientarticle.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = value.String
			}
		case clientarticle.FieldPublishedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_date", values[i])
			} else if value.Valid {
				_m.PublishedDate = new(time.Time)
				*_m.PublishedDate = value.Time
			}
		case clientarticle.FieldKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Keywords); err != nil {
					return fmt.Errorf("unmarshal field keywords: %w", err)
				}
			}
		case clientarticle.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = new(int)
				*_m.TopicID = int(value.Int64)
			}
		case clientarticle.FieldQdrantPointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field qdrant_point_id", values[i])
			} else if value.Valid {
				_m.QdrantPointID = new(string)
				*_m.QdrantPointID = value.String
			}
		case clientarticle.FieldIsValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_valid", values[i])
			} else if value.Valid {
				_m.IsValid = value.Bool
			}
		case clientarticle.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ClientArticle.
// This includes values selected through modifiers, order, etc.
func (_m *ClientArticle) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySiteProfile queries the "site_profile" edge of the ClientArticle entity.
func (_m *ClientArticle) QuerySiteProfile() *SiteProfileQuery {
	return NewClientArticleClient(_m.config).QuerySiteProfile(_m)
}

// Update returns a builder for updating this ClientArticle.
// Note that you need to call ClientArticle.Unwrap() before calling this method if this ClientArticle
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClientArticle) Update() *ClientArticleUpdateOne {
	return NewClientArticleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClientArticle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClientArticle) Unwrap() *ClientArticle {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClientArticle is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClientArticle) String() string {
	var builder strings.Builder
	builder.WriteString("ClientArticle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.SiteProfileID; v != nil {
		builder.WriteString("site_profile_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("url_hash=")
	builder.WriteString(_m.URLHash)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("content_text=")
	builder.WriteString(_m.ContentText)
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(_m.Author)
	builder.WriteString(", ")
	if v := _m.PublishedDate; v != nil {
		builder.WriteString("published_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.Keywords))
	builder.WriteString(", ")
	if v := _m.TopicID; v != nil {
		builder.WriteString("topic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.QdrantPointID; v != nil {
		builder.WriteString("qdrant_point_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsValid))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClientArticles is a parsable slice of ClientArticle.
type ClientArticles []*ClientArticle
