// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/competitorarticle"
)

// CompetitorArticle is the model entity for the CompetitorArticle schema.
type CompetitorArticle struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// URLHash holds the value of the "url_hash" field.
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
	// TopicID holds the value of the "topic_id" field.
	TopicID *int `json:"topic_id,omitempty"`
	// QdrantPointID holds the value of the "qdrant_point_id" field.
	QdrantPointID *string `json:"qdrant_point_id,omitempty"`
	// IsValid holds the value of the "is_valid" field.
	IsValid bool `json:"is_valid,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompetitorArticle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case competitorarticle.FieldKeywords:
			values[i] = new([]byte)
		case competitorarticle.FieldIsValid:
			values[i] = new(sql.NullBool)
		case competitorarticle.FieldID, competitorarticle.FieldTopicID:
			values[i] = new(sql.NullInt64)
		case competitorarticle.FieldDomain, competitorarticle.FieldURL, competitorarticle.FieldURLHash, competitorarticle.FieldTitle, competitorarticle.FieldContentText, competitorarticle.FieldAuthor, competitorarticle.FieldQdrantPointID:
			values[i] = new(sql.NullString)
		case competitorarticle.FieldPublishedDate, competitorarticle.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompetitorArticle fields.
func (_m *CompetitorArticle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case competitorarticle.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case competitorarticle.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case competitorarticle.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case competitorarticle.FieldURLHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url_hash", values[i])
			} else if value.Valid {
				_m.URLHash = value.String
			}
		case competitorarticle.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case competitorarticle.FieldContentText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_text", values[i])
			} else if value.Valid {
				_m.ContentText = value.String
			}
		case competitorarticle.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = value.String
			}
		case competitorarticle.FieldPublishedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_date", values[i])
			} else if value.Valid {
				_m.PublishedDate = new(time.Time)
				*_m.PublishedDate = value.Time
			}
		case competitorarticle.FieldKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Keywords); err != nil {
					return fmt.Errorf("unmarshal field keywords: %w", err)
				}
			}
		case competitorarticle.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = new(int)
				*_m.TopicID = int(value.Int64)
			}
		case competitorarticle.FieldQdrantPointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field qdrant_point_id", values[i])
			} else if value.Valid {
				_m.QdrantPointID = new(string)
				*_m.QdrantPointID = value.String
			}
		case competitorarticle.FieldIsValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_valid", values[i])
			} else if value.Valid {
				_m.IsValid = value.Bool
			}
		case competitorarticle.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CompetitorArticle.
// This includes values selected through modifiers, order, etc.
func (_m *CompetitorArticle) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CompetitorArticle.
// Note that you need to call CompetitorArticle.Unwrap() before calling this method if this CompetitorArticle
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompetitorArticle) Update() *CompetitorArticleUpdateOne {
	return NewCompetitorArticleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompetitorArticle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompetitorArticle) Unwrap() *CompetitorArticle {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompetitorArticle is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompetitorArticle) String() string {
	var builder strings.Builder
	builder.WriteString("CompetitorArticle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
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

// CompetitorArticles is a parsable slice of CompetitorArticle.
type CompetitorArticles []*CompetitorArticle
