package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Competitor holds the schema definition for the Competitor entity.
// A competitor domain discovered for a client domain, with validation flags
// controlling whether it participates in scraping and trend analysis.
type Competitor struct {
	ent.Schema
}

// Fields of the Competitor.
func (Competitor) Fields() []ent.Field {
	return []ent.Field{
		field.String("client_domain"),
		field.String("domain"),
		field.String("source").
			Optional().
			Comment("Discovery source (search engine, LLM suggestion, ...)"),
		field.Float("relevance_score").
			Default(0),
		field.Bool("validated").
			Default(false),
		field.Bool("excluded").
			Default(false),
		field.Time("validation_date").
			Optional().
			Nillable(),
		field.Bool("is_valid").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Competitor.
func (Competitor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_domain", "domain").
			Unique(),
		index.Fields("client_domain", "validated", "excluded"),
	}
}
