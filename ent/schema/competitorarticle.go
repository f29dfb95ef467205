package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompetitorArticle holds the schema definition for the CompetitorArticle
// entity. Same shape as ClientArticle but scoped by competitor domain.
type CompetitorArticle struct {
	ent.Schema
}

// Fields of the CompetitorArticle.
func (CompetitorArticle) Fields() []ent.Field {
	return []ent.Field{
		field.String("domain"),
		field.String("url"),
		field.String("url_hash").
			Unique(),
		field.String("title").
			Optional(),
		field.Text("content_text").
			Optional(),
		field.String("author").
			Optional(),
		field.Time("published_date").
			Optional().
			Nillable(),
		field.JSON("keywords", []string{}).
			Optional(),
		field.Int("topic_id").
			Optional().
			Nillable(),
		field.String("qdrant_point_id").
			Optional().
			Nillable(),
		field.Bool("is_valid").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CompetitorArticle.
func (CompetitorArticle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain", "is_valid"),
		index.Fields("published_date"),
	}
}
