package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SiteProfile holds the schema definition for the SiteProfile entity.
// The editorial profile of a domain produced by the editorial analysis
// workflow. Re-analysis creates a new row and tombstones the previous one;
// older versions remain queryable through the history endpoint.
type SiteProfile struct {
	ent.Schema
}

// Fields of the SiteProfile.
func (SiteProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("domain"),
		field.Time("analysis_date").
			Default(time.Now),
		field.Enum("language_level").
			Values("simple", "intermediate", "advanced", "expert").
			Default("intermediate"),
		field.String("editorial_tone").
			Optional(),
		field.JSON("target_audience", map[string]interface{}{}).
			Optional(),
		field.JSON("activity_domains", map[string]interface{}{}).
			Optional().
			Comment("LLM output: primary_domains, secondary_domains, domain_details; shape varies"),
		field.JSON("content_structure", map[string]interface{}{}).
			Optional(),
		field.JSON("keywords", map[string]interface{}{}).
			Optional(),
		field.JSON("style_features", map[string]interface{}{}).
			Optional(),
		field.Int("pages_analyzed").
			Default(0),
		field.JSON("llm_models_used", []string{}).
			Optional(),
		field.Bool("is_valid").
			Default(true).
			Comment("Tombstone: false once superseded by a re-analysis"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SiteProfile.
func (SiteProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("client_articles", ClientArticle.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SiteProfile.
func (SiteProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain", "is_valid"),
		index.Fields("domain", "analysis_date"),
	}
}
