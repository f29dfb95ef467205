package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/clientarticle"
	"github.com/trendscope/trendscope/ent/competitorarticle"
)

// ArticleService stores scraped articles and answers the article-count
// questions the audit orchestrator asks before launching.
type ArticleService struct {
	client *ent.Client
}

// NewArticleService creates a new ArticleService.
func NewArticleService(client *ent.Client) *ArticleService {
	return &ArticleService{client: client}
}

// URLHash computes the dedup key for an article URL. Scheme and trailing
// slash differences must not produce duplicate rows.
func URLHash(rawURL string) string {
	normalized := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(rawURL)), "/")
	normalized = strings.TrimPrefix(normalized, "https://")
	normalized = strings.TrimPrefix(normalized, "http://")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// ArticleInput is one scraped article.
type ArticleInput struct {
	Domain        string
	URL           string
	Title         string
	ContentText   string
	Author        string
	PublishedDate *time.Time
	Keywords      []string
	QdrantPointID string
	SiteProfileID *int
}

// SaveClientArticles stores client articles, skipping URL duplicates.
// Returns the number of newly stored rows.
func (s *ArticleService) SaveClientArticles(ctx context.Context, articles []ArticleInput) (int, error) {
	stored := 0
	for _, a := range articles {
		if a.Domain == "" || a.URL == "" {
			continue
		}
		builder := s.client.ClientArticle.Create().
			SetDomain(a.Domain).
			SetURL(a.URL).
			SetURLHash(URLHash(a.URL)).
			SetTitle(a.Title).
			SetContentText(a.ContentText).
			SetAuthor(a.Author)
		if a.PublishedDate != nil {
			builder.SetPublishedDate(*a.PublishedDate)
		}
		if len(a.Keywords) > 0 {
			builder.SetKeywords(a.Keywords)
		}
		if a.QdrantPointID != "" {
			builder.SetQdrantPointID(a.QdrantPointID)
		}
		if a.SiteProfileID != nil {
			builder.SetSiteProfileID(*a.SiteProfileID)
		}

		if err := builder.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				continue // already stored
			}
			return stored, classifyDBError("save client article", err)
		}
		stored++
	}
	return stored, nil
}

// SaveCompetitorArticles stores competitor articles, skipping URL duplicates.
func (s *ArticleService) SaveCompetitorArticles(ctx context.Context, articles []ArticleInput) (int, error) {
	stored := 0
	for _, a := range articles {
		if a.Domain == "" || a.URL == "" {
			continue
		}
		builder := s.client.CompetitorArticle.Create().
			SetDomain(a.Domain).
			SetURL(a.URL).
			SetURLHash(URLHash(a.URL)).
			SetTitle(a.Title).
			SetContentText(a.ContentText).
			SetAuthor(a.Author)
		if a.PublishedDate != nil {
			builder.SetPublishedDate(*a.PublishedDate)
		}
		if len(a.Keywords) > 0 {
			builder.SetKeywords(a.Keywords)
		}
		if a.QdrantPointID != "" {
			builder.SetQdrantPointID(a.QdrantPointID)
		}

		if err := builder.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return stored, classifyDBError("save competitor article", err)
		}
		stored++
	}
	return stored, nil
}

// CountClientArticles returns the valid client article count for a domain.
func (s *ArticleService) CountClientArticles(ctx context.Context, domain string) (int, error) {
	count, err := s.client.ClientArticle.Query().
		Where(
			clientarticle.DomainEQ(domain),
			clientarticle.IsValid(true),
		).
		Count(ctx)
	if err != nil {
		return 0, classifyDBError("count client articles", err)
	}
	return count, nil
}

// CountCompetitorArticles returns the total valid competitor article count
// across the given domains.
func (s *ArticleService) CountCompetitorArticles(ctx context.Context, domains []string) (int, error) {
	if len(domains) == 0 {
		return 0, nil
	}
	count, err := s.client.CompetitorArticle.Query().
		Where(
			competitorarticle.DomainIn(domains...),
			competitorarticle.IsValid(true),
		).
		Count(ctx)
	if err != nil {
		return 0, classifyDBError("count competitor articles", err)
	}
	return count, nil
}

// KeywordCount is one keyword with its article frequency.
type KeywordCount struct {
	Keyword string
	Count   int
}

// AuthorCount is one author with their article count.
type AuthorCount struct {
	Author string
	Count  int
}

// TrainingPatterns aggregates the editorial habits visible in a domain's
// stored articles: volume, length, cadence, and the recurring keywords and
// authors.
type TrainingPatterns struct {
	Domain           string
	ArticlesAnalyzed int
	AvgWordCount     float64
	ArticlesPerWeek  float64
	TopKeywords      []KeywordCount
	TopAuthors       []AuthorCount
	EarliestArticle  *time.Time
	LatestArticle    *time.Time
}

const (
	defaultTrainingArticles = 200
	maxTrainingArticles     = 1000
	topPatternEntries       = 10
)

// AnalyzeTrainingPatterns computes publication patterns over the newest valid
// client articles of a domain. Returns ErrNotFound when the domain has no
// stored articles.
func (s *ArticleService) AnalyzeTrainingPatterns(ctx context.Context, domain string, maxArticles int) (*TrainingPatterns, error) {
	if domain == "" {
		return nil, NewValidationError("domain", "required")
	}
	if maxArticles <= 0 {
		maxArticles = defaultTrainingArticles
	}
	if maxArticles > maxTrainingArticles {
		maxArticles = maxTrainingArticles
	}

	articles, err := s.client.ClientArticle.Query().
		Where(
			clientarticle.DomainEQ(domain),
			clientarticle.IsValid(true),
		).
		Order(ent.Desc(clientarticle.FieldPublishedDate), ent.Desc(clientarticle.FieldCreatedAt)).
		Limit(maxArticles).
		All(ctx)
	if err != nil {
		return nil, classifyDBError("load training articles", err)
	}
	if len(articles) == 0 {
		return nil, ErrNotFound
	}

	patterns := &TrainingPatterns{
		Domain:           domain,
		ArticlesAnalyzed: len(articles),
	}

	words := 0
	keywords := map[string]int{}
	authors := map[string]int{}
	for _, a := range articles {
		words += len(strings.Fields(a.ContentText))
		for _, kw := range a.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords[kw]++
			}
		}
		if author := strings.TrimSpace(a.Author); author != "" {
			authors[author]++
		}
		if a.PublishedDate == nil {
			continue
		}
		if patterns.EarliestArticle == nil || a.PublishedDate.Before(*patterns.EarliestArticle) {
			patterns.EarliestArticle = a.PublishedDate
		}
		if patterns.LatestArticle == nil || a.PublishedDate.After(*patterns.LatestArticle) {
			patterns.LatestArticle = a.PublishedDate
		}
	}
	patterns.AvgWordCount = float64(words) / float64(len(articles))
	patterns.TopKeywords = topKeywords(keywords)
	patterns.TopAuthors = topAuthors(authors)

	if patterns.EarliestArticle != nil && patterns.LatestArticle != nil {
		// A single dated article still counts as one week of output.
		weeks := patterns.LatestArticle.Sub(*patterns.EarliestArticle).Hours() / (24 * 7)
		if weeks < 1 {
			weeks = 1
		}
		patterns.ArticlesPerWeek = float64(len(articles)) / weeks
	}
	return patterns, nil
}

func topKeywords(counts map[string]int) []KeywordCount {
	ranked := make([]KeywordCount, 0, len(counts))
	for kw, n := range counts {
		ranked = append(ranked, KeywordCount{Keyword: kw, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Keyword < ranked[j].Keyword
	})
	if len(ranked) > topPatternEntries {
		ranked = ranked[:topPatternEntries]
	}
	return ranked
}

func topAuthors(counts map[string]int) []AuthorCount {
	ranked := make([]AuthorCount, 0, len(counts))
	for author, n := range counts {
		ranked = append(ranked, AuthorCount{Author: author, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Author < ranked[j].Author
	})
	if len(ranked) > topPatternEntries {
		ranked = ranked[:topPatternEntries]
	}
	return ranked
}

// UpdateTopicAssignments writes the clustering result back onto client
// articles, keyed by qdrant point id. Unknown point ids are ignored.
func (s *ArticleService) UpdateTopicAssignments(ctx context.Context, assignments map[string]int) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return classifyDBError("begin topic assignments", err)
	}
	defer func() { _ = tx.Rollback() }()

	for pointID, topicID := range assignments {
		_, err := tx.ClientArticle.Update().
			Where(clientarticle.QdrantPointIDEQ(pointID)).
			SetTopicID(topicID).
			Save(ctx)
		if err != nil {
			return classifyDBError("assign topic", err)
		}
	}
	return tx.Commit()
}
