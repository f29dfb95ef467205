// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/competitor"
)

// Competitor is the model entity for the Competitor schema.
type Competitor struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ClientDomain holds the value of the "client_domain" field.
	ClientDomain string `json:"client_domain,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// Discovery source (search engine, LLM suggestion, ...)
	Source string `json:"source,omitempty"`
	// RelevanceScore holds the value of the "relevance_score" field.
	RelevanceScore float64 `json:"relevance_score,omitempty"`
	// Validated holds the value of the "validated" field.
	Validated bool `json:"validated,omitempty"`
	// Excluded holds the value of the "excluded" field.
	Excluded bool `json:"excluded,omitempty"`
	// ValidationDate holds the value of the "validation_date" field.
	ValidationDate *time.Time `json:"validation_date,omitempty"`
	// IsValid holds the value of the "is_valid" field.
	IsValid bool `json:"is_valid,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Competitor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case competitor.FieldValidated, competitor.FieldExcluded, competitor.FieldIsValid:
			values[i] = new(sql.NullBool)
		case competitor.FieldRelevanceScore:
			values[i] = new(sql.NullFloat64)
		case competitor.FieldID:
			values[i] = new(sql.NullInt64)
		case competitor.FieldClientDomain, competitor.FieldDomain, competitor.FieldSource:
			values[i] = new(sql.NullString)
		case competitor.FieldValidationDate, competitor.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Competitor fields.
func (_m *Competitor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case competitor.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case competitor.FieldClientDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_domain", values[i])
			} else if value.Valid {
				_m.ClientDomain = value.String
			}
		case competitor.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case competitor.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case competitor.FieldRelevanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_score", values[i])
			} else if value.Valid {
				_m.RelevanceScore = value.Float64
			}
		case competitor.FieldValidated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field validated", values[i])
			} else if value.Valid {
				_m.Validated = value.Bool
			}
		case competitor.FieldExcluded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field excluded", values[i])
			} else if value.Valid {
				_m.Excluded = value.Bool
			}
		case competitor.FieldValidationDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validation_date", values[i])
			} else if value.Valid {
				_m.ValidationDate = new(time.Time)
				*_m.ValidationDate = value.Time
			}
		case competitor.FieldIsValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_valid", values[i])
			} else if value.Valid {
				_m.IsValid = value.Bool
			}
		case competitor.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Competitor.
// This includes values selected through modifiers, order, etc.
func (_m *Competitor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Competitor.
// Note that you need to call Competitor.Unwrap() before calling this method if this Competitor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Competitor) Update() *CompetitorUpdateOne {
	return NewCompetitorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Competitor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Competitor) Unwrap() *Competitor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Competitor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Competitor) String() string {
	var builder strings.Builder
	builder.WriteString("Competitor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("client_domain=")
	builder.WriteString(_m.ClientDomain)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("relevance_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelevanceScore))
	builder.WriteString(", ")
	builder.WriteString("validated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Validated))
	builder.WriteString(", ")
	builder.WriteString("excluded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Excluded))
	builder.WriteString(", ")
	if v := _m.ValidationDate; v != nil {
		builder.WriteString("validation_date=")
		builder.WriteString(v.Format(time.ANSIC))
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

// Competitors is a parsable slice of Competitor.
type Competitors []*Competitor
