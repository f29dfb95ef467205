package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/competitor"
)

// CompetitorService manages discovered competitor domains and their
// validation lifecycle.
type CompetitorService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewCompetitorService creates a new CompetitorService.
func NewCompetitorService(client *ent.Client, logger *slog.Logger) *CompetitorService {
	return &CompetitorService{
		client: client,
		logger: logger.With("component", "competitors"),
	}
}

// DiscoveredCompetitor is one search result from competitor discovery.
type DiscoveredCompetitor struct {
	Domain         string
	Source         string
	RelevanceScore float64
}

// SaveDiscovered upserts discovery results for a client domain. Existing
// rows keep their validation flags; only source and relevance are refreshed.
// Returns the number of newly inserted competitors.
func (s *CompetitorService) SaveDiscovered(ctx context.Context, clientDomain string, results []DiscoveredCompetitor) (int, error) {
	if clientDomain == "" {
		return 0, NewValidationError("client_domain", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, classifyDBError("begin save competitors", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	for _, result := range results {
		if result.Domain == "" || result.Domain == clientDomain {
			continue
		}

		existing, err := tx.Competitor.Query().
			Where(
				competitor.ClientDomainEQ(clientDomain),
				competitor.DomainEQ(result.Domain),
			).
			Only(ctx)
		switch {
		case err == nil:
			err = existing.Update().
				SetSource(result.Source).
				SetRelevanceScore(result.RelevanceScore).
				Exec(ctx)
			if err != nil {
				return 0, classifyDBError("refresh competitor", err)
			}
		case ent.IsNotFound(err):
			err = tx.Competitor.Create().
				SetClientDomain(clientDomain).
				SetDomain(result.Domain).
				SetSource(result.Source).
				SetRelevanceScore(result.RelevanceScore).
				Exec(ctx)
			if err != nil {
				return 0, classifyDBError("insert competitor", err)
			}
			inserted++
		default:
			return 0, classifyDBError("lookup competitor", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, classifyDBError("commit save competitors", err)
	}
	return inserted, nil
}

// AutoValidateTop marks the top maxCount competitors by relevance as
// validated, skipping excluded ones. Idempotent: already-validated rows are
// counted toward the cap but not re-stamped.
func (s *CompetitorService) AutoValidateTop(ctx context.Context, clientDomain string, maxCount int) (int, error) {
	candidates, err := s.client.Competitor.Query().
		Where(
			competitor.ClientDomainEQ(clientDomain),
			competitor.Excluded(false),
			competitor.IsValid(true),
		).
		Order(ent.Desc(competitor.FieldRelevanceScore), ent.Asc(competitor.FieldDomain)).
		Limit(maxCount).
		All(ctx)
	if err != nil {
		return 0, classifyDBError("query auto-validate candidates", err)
	}

	validated := 0
	now := time.Now()
	for _, c := range candidates {
		if c.Validated {
			validated++
			continue
		}
		err := c.Update().
			SetValidated(true).
			SetValidationDate(now).
			Exec(ctx)
		if err != nil {
			return validated, classifyDBError("auto-validate competitor", err)
		}
		validated++
	}

	s.logger.Info("auto-validated competitors",
		"client_domain", clientDomain,
		"validated", validated,
		"cap", maxCount)
	return validated, nil
}

// SetValidation applies a manual validation decision for one competitor.
// Excluding a competitor also clears its validated flag.
func (s *CompetitorService) SetValidation(ctx context.Context, clientDomain, domain string, validated, excluded bool) (*ent.Competitor, error) {
	existing, err := s.client.Competitor.Query().
		Where(
			competitor.ClientDomainEQ(clientDomain),
			competitor.DomainEQ(domain),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, classifyDBError("lookup competitor", err)
	}

	update := existing.Update().SetExcluded(excluded)
	if excluded {
		update.SetValidated(false)
	} else {
		update.SetValidated(validated)
		if validated {
			update.SetValidationDate(time.Now())
		}
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, classifyDBError("update competitor validation", err)
	}
	return updated, nil
}

// ListCompetitors returns all competitors of a client domain ordered by
// relevance.
func (s *CompetitorService) ListCompetitors(ctx context.Context, clientDomain string) ([]*ent.Competitor, error) {
	competitors, err := s.client.Competitor.Query().
		Where(
			competitor.ClientDomainEQ(clientDomain),
			competitor.IsValid(true),
		).
		Order(ent.Desc(competitor.FieldRelevanceScore)).
		All(ctx)
	if err != nil {
		return nil, classifyDBError("list competitors", err)
	}
	return competitors, nil
}

// ValidatedDomains returns the domains that participate in competitor
// scraping and trend analysis.
func (s *CompetitorService) ValidatedDomains(ctx context.Context, clientDomain string) ([]string, error) {
	domains, err := s.client.Competitor.Query().
		Where(
			competitor.ClientDomainEQ(clientDomain),
			competitor.Validated(true),
			competitor.Excluded(false),
			competitor.IsValid(true),
		).
		Order(ent.Desc(competitor.FieldRelevanceScore)).
		Select(competitor.FieldDomain).
		Strings(ctx)
	if err != nil {
		return nil, classifyDBError("list validated domains", err)
	}
	return domains, nil
}
