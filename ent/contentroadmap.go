// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/editorialgap"
)

// ContentRoadmap is the model entity for the ContentRoadmap schema.
type ContentRoadmap struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ClientDomain holds the value of the "client_domain" field.
	ClientDomain string `json:"client_domain,omitempty"`
	// GapID holds the value of the "gap_id" field.
	GapID int `json:"gap_id,omitempty"`
	// RecommendationID holds the value of the "recommendation_id" field.
	RecommendationID int `json:"recommendation_id,omitempty"`
	// Dense 1..N per client_domain
	PriorityOrder int `json:"priority_order,omitempty"`
	// PriorityTier holds the value of the "priority_tier" field.
	PriorityTier contentroadmap.PriorityTier `json:"priority_tier,omitempty"`
	// EstimatedEffort holds the value of the "estimated_effort" field.
	EstimatedEffort contentroadmap.EstimatedEffort `json:"estimated_effort,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContentRoadmapQuery when eager-loading is set.
	Edges        ContentRoadmapEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContentRoadmapEdges holds the relations/edges for other nodes in the graph.
type ContentRoadmapEdges struct {
	// Gap holds the value of the gap edge.
	Gap *EditorialGap `json:"gap,omitempty"`
	// Recommendation holds the value of the recommendation edge.
	Recommendation *ArticleRecommendation `json:"recommendation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// GapOrErr returns the Gap value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContentRoadmapEdges) GapOrErr() (*EditorialGap, error) {
	if e.Gap != nil {
		return e.Gap, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: editorialgap.Label}
	}
	return nil, &NotLoadedError{edge: "gap"}
}

// RecommendationOrErr returns the Recommendation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContentRoadmapEdges) RecommendationOrErr() (*ArticleRecommendation, error) {
	if e.Recommendation != nil {
		return e.Recommendation, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: articlerecommendation.Label}
	}
	return nil, &NotLoadedError{edge: "recommendation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContentRoadmap) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contentroadmap.FieldID, contentroadmap.FieldGapID, contentroadmap.FieldRecommendationID, contentroadmap.FieldPriorityOrder:
			values[i] = new(sql.NullInt64)
		case contentroadmap.FieldClientDomain, contentroadmap.FieldPriorityTier, contentroadmap.FieldEstimatedEffort:
			values[i] = new(sql.NullString)
		case contentroadmap.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContentRoadmap fields.
func (_m *ContentRoadmap) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contentroadmap.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case contentroadmap.FieldClientDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_domain", values[i])
			} else if value.Valid {
				_m.ClientDomain = value.String
			}
		case contentroadmap.FieldGapID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gap_id", values[i])
			} else if value.Valid {
				_m.GapID = int(value.Int64)
			}
		case contentroadmap.FieldRecommendationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation_id", values[i])
			} else if value.Valid {
				_m.RecommendationID = int(value.Int64)
			}
		case contentroadmap.FieldPriorityOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority_order", values[i])
			} else if value.Valid {
				_m.PriorityOrder = int(value.Int64)
			}
		case contentroadmap.FieldPriorityTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority_tier", values[i])
			} else if value.Valid {
				_m.PriorityTier = contentroadmap.PriorityTier(value.String)
			}
		case contentroadmap.FieldEstimatedEffort:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_effort", values[i])
			} else if value.Valid {
				_m.EstimatedEffort = contentroadmap.EstimatedEffort(value.String)
			}
		case contentroadmap.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ContentRoadmap.
// This includes values selected through modifiers, order, etc.
func (_m *ContentRoadmap) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGap queries the "gap" edge of the ContentRoadmap entity.
func (_m *ContentRoadmap) QueryGap() *EditorialGapQuery {
	return NewContentRoadmapClient(_m.config).QueryGap(_m)
}

// QueryRecommendation queries the "recommendation" edge of the ContentRoadmap entity.
func (_m *ContentRoadmap) QueryRecommendation() *ArticleRecommendationQuery {
	return NewContentRoadmapClient(_m.config).QueryRecommendation(_m)
}

// Update returns a builder for updating this ContentRoadmap.
// Note that you need to call ContentRoadmap.Unwrap() before calling this method if this ContentRoadmap
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContentRoadmap) Update() *ContentRoadmapUpdateOne {
	return NewContentRoadmapClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContentRoadmap entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContentRoadmap) Unwrap() *ContentRoadmap {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContentRoadmap is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContentRoadmap) String() string {
	var builder strings.Builder
	builder.WriteString("ContentRoadmap(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("client_domain=")
	builder.WriteString(_m.ClientDomain)
	builder.WriteString(", ")
	builder.WriteString("gap_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GapID))
	builder.WriteString(", ")
	builder.WriteString("recommendation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendationID))
	builder.WriteString(", ")
	builder.WriteString("priority_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityOrder))
	builder.WriteString(", ")
	builder.WriteString("priority_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityTier))
	builder.WriteString(", ")
	builder.WriteString("estimated_effort=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedEffort))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContentRoadmaps is a parsable slice of ContentRoadmap.
type ContentRoadmaps []*ContentRoadmap
