package services

import (
	"context"
	"time"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/siteprofile"
)

// ProfileService manages editorial site profiles. Re-analysis never mutates
// an existing profile: it tombstones the current one and inserts a new row,
// so the history endpoint can show how the editorial reading evolved.
type ProfileService struct {
	client *ent.Client
}

// NewProfileService creates a new ProfileService.
func NewProfileService(client *ent.Client) *ProfileService {
	return &ProfileService{client: client}
}

// ProfileInput carries the analysis output for one domain.
type ProfileInput struct {
	Domain           string
	LanguageLevel    siteprofile.LanguageLevel
	EditorialTone    string
	TargetAudience   map[string]any
	ActivityDomains  map[string]any
	ContentStructure map[string]any
	Keywords         map[string]any
	StyleFeatures    map[string]any
	PagesAnalyzed    int
	LLMModelsUsed    []string
}

// SaveProfile stores a fresh analysis for a domain, invalidating any
// previous valid profile in the same transaction.
func (s *ProfileService) SaveProfile(ctx context.Context, in ProfileInput) (*ent.SiteProfile, error) {
	if in.Domain == "" {
		return nil, NewValidationError("domain", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, classifyDBError("begin save profile", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.SiteProfile.Update().
		Where(
			siteprofile.DomainEQ(in.Domain),
			siteprofile.IsValid(true),
		).
		SetIsValid(false).
		Save(ctx)
	if err != nil {
		return nil, classifyDBError("invalidate previous profile", err)
	}

	builder := tx.SiteProfile.Create().
		SetDomain(in.Domain).
		SetAnalysisDate(time.Now()).
		SetPagesAnalyzed(in.PagesAnalyzed)

	if in.LanguageLevel != "" {
		builder.SetLanguageLevel(in.LanguageLevel)
	}
	if in.EditorialTone != "" {
		builder.SetEditorialTone(in.EditorialTone)
	}
	if in.TargetAudience != nil {
		builder.SetTargetAudience(SanitizeJSONMap(in.TargetAudience))
	}
	if in.ActivityDomains != nil {
		builder.SetActivityDomains(SanitizeJSONMap(in.ActivityDomains))
	}
	if in.ContentStructure != nil {
		builder.SetContentStructure(SanitizeJSONMap(in.ContentStructure))
	}
	if in.Keywords != nil {
		builder.SetKeywords(SanitizeJSONMap(in.Keywords))
	}
	if in.StyleFeatures != nil {
		builder.SetStyleFeatures(SanitizeJSONMap(in.StyleFeatures))
	}
	if len(in.LLMModelsUsed) > 0 {
		builder.SetLlmModelsUsed(in.LLMModelsUsed)
	}

	profile, err := builder.Save(ctx)
	if err != nil {
		return nil, classifyDBError("create profile", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, classifyDBError("commit save profile", err)
	}
	return profile, nil
}

// GetLatestProfile returns the current valid profile of a domain, or
// ErrNotFound when the domain has never been analyzed.
func (s *ProfileService) GetLatestProfile(ctx context.Context, domain string) (*ent.SiteProfile, error) {
	profile, err := s.client.SiteProfile.Query().
		Where(
			siteprofile.DomainEQ(domain),
			siteprofile.IsValid(true),
		).
		Order(ent.Desc(siteprofile.FieldAnalysisDate)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, classifyDBError("get latest profile", err)
	}
	return profile, nil
}

// GetProfileHistory returns all profile versions of a domain, newest first,
// including tombstoned ones.
func (s *ProfileService) GetProfileHistory(ctx context.Context, domain string, limit int) ([]*ent.SiteProfile, error) {
	query := s.client.SiteProfile.Query().
		Where(siteprofile.DomainEQ(domain)).
		Order(ent.Desc(siteprofile.FieldAnalysisDate))
	if limit > 0 {
		query = query.Limit(limit)
	}

	profiles, err := query.All(ctx)
	if err != nil {
		return nil, classifyDBError("get profile history", err)
	}
	return profiles, nil
}

// MetricComparison is one field-level diff between two profile versions.
type MetricComparison struct {
	Field    string `json:"field"`
	Previous any    `json:"previous"`
	Current  any    `json:"current"`
	Changed  bool   `json:"changed"`
}

// CompareProfiles computes a field-by-field comparison between two profile
// versions of the same domain.
func CompareProfiles(previous, current *ent.SiteProfile) []MetricComparison {
	compare := func(field string, prev, cur any) MetricComparison {
		return MetricComparison{
			Field:    field,
			Previous: prev,
			Current:  cur,
			Changed:  !jsonEqual(prev, cur),
		}
	}
	return []MetricComparison{
		compare("language_level", string(previous.LanguageLevel), string(current.LanguageLevel)),
		compare("editorial_tone", previous.EditorialTone, current.EditorialTone),
		compare("pages_analyzed", previous.PagesAnalyzed, current.PagesAnalyzed),
		compare("activity_domains", previous.ActivityDomains, current.ActivityDomains),
		compare("keywords", previous.Keywords, current.Keywords),
	}
}
