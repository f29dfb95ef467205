package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClientArticle holds the schema definition for the ClientArticle entity.
// A scraped article from the client's own site. The full text lives here;
// the embedding lives in the vector store, linked by qdrant_point_id.
type ClientArticle struct {
	ent.Schema
}

// Fields of the ClientArticle.
func (ClientArticle) Fields() []ent.Field {
	return []ent.Field{
		field.Int("site_profile_id").
			Optional().
			Nillable(),
		field.String("domain"),
		field.String("url"),
		field.String("url_hash").
			Unique().
			Comment("SHA-256 of normalized URL, dedup key"),
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
			Nillable().
			Comment("Last clustering assignment; -1 means outlier"),
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

// Edges of the ClientArticle.
func (ClientArticle) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("site_profile", SiteProfile.Type).
			Ref("client_articles").
			Field("site_profile_id").
			Unique(),
	}
}

// Indexes of the ClientArticle.
func (ClientArticle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain", "is_valid"),
		index.Fields("site_profile_id"),
		index.Fields("published_date"),
	}
}
