package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/ent/clientarticle"
	"github.com/trendscope/trendscope/pkg/database"
	"github.com/trendscope/trendscope/pkg/services"
	testdb "github.com/trendscope/trendscope/test/database"
)

func newArticleService(t *testing.T) (*database.Client, *services.ArticleService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewArticleService(client.Client)
}

func TestURLHash(t *testing.T) {
	base := services.URLHash("https://example.com/post/1")

	// Scheme, case and trailing-slash differences collapse to one key.
	assert.Equal(t, base, services.URLHash("http://example.com/post/1"))
	assert.Equal(t, base, services.URLHash("https://Example.COM/post/1/"))
	assert.Equal(t, base, services.URLHash("  https://example.com/post/1 "))

	assert.NotEqual(t, base, services.URLHash("https://example.com/post/2"))
}

func TestSaveClientArticles_DedupsOnURL(t *testing.T) {
	_, svc := newArticleService(t)
	ctx := context.Background()

	published := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	articles := []services.ArticleInput{
		{
			Domain:        "client.example.com",
			URL:           "https://client.example.com/post/1",
			Title:         "First",
			ContentText:   "body",
			PublishedDate: &published,
			Keywords:      []string{"go"},
			QdrantPointID: "point-1",
		},
		{
			Domain: "client.example.com",
			URL:    "https://client.example.com/post/2",
			Title:  "Second",
		},
		// Same URL with a different scheme: a duplicate.
		{
			Domain: "client.example.com",
			URL:    "http://client.example.com/post/1",
			Title:  "First again",
		},
		// Missing URL: skipped silently.
		{Domain: "client.example.com", Title: "no url"},
	}

	stored, err := svc.SaveClientArticles(ctx, articles)
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	// Replaying the batch stores nothing new.
	stored, err = svc.SaveClientArticles(ctx, articles)
	require.NoError(t, err)
	assert.Zero(t, stored)

	count, err := svc.CountClientArticles(ctx, "client.example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSaveCompetitorArticlesAndCounts(t *testing.T) {
	_, svc := newArticleService(t)
	ctx := context.Background()

	stored, err := svc.SaveCompetitorArticles(ctx, []services.ArticleInput{
		{Domain: "rival-a.com", URL: "https://rival-a.com/1", Title: "A1"},
		{Domain: "rival-a.com", URL: "https://rival-a.com/2", Title: "A2"},
		{Domain: "rival-b.com", URL: "https://rival-b.com/1", Title: "B1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, stored)

	count, err := svc.CountCompetitorArticles(ctx, []string{"rival-a.com"})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = svc.CountCompetitorArticles(ctx, []string{"rival-a.com", "rival-b.com"})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = svc.CountCompetitorArticles(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count, "no domains means no competitor corpus")
}

func TestAnalyzeTrainingPatterns(t *testing.T) {
	_, svc := newArticleService(t)
	ctx := context.Background()
	domain := "patterns.example.com"

	// Three articles over two weeks, two by the same author, one undated.
	week0 := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	week2 := week0.AddDate(0, 0, 14)
	_, err := svc.SaveClientArticles(ctx, []services.ArticleInput{
		{
			Domain:        domain,
			URL:           "https://patterns.example.com/1",
			ContentText:   "one two three four",
			Author:        "Ada",
			Keywords:      []string{"Energy", "grid"},
			PublishedDate: &week0,
		},
		{
			Domain:        domain,
			URL:           "https://patterns.example.com/2",
			ContentText:   "one two",
			Author:        "Ada",
			Keywords:      []string{"energy"},
			PublishedDate: &week2,
		},
		{
			Domain:      domain,
			URL:         "https://patterns.example.com/3",
			ContentText: "one two three four five six",
			Keywords:    []string{"hydrogen"},
		},
	})
	require.NoError(t, err)

	patterns, err := svc.AnalyzeTrainingPatterns(ctx, domain, 0)
	require.NoError(t, err)

	assert.Equal(t, domain, patterns.Domain)
	assert.Equal(t, 3, patterns.ArticlesAnalyzed)
	assert.InDelta(t, 4.0, patterns.AvgWordCount, 0.001)

	// Keywords fold case; ties break alphabetically.
	require.NotEmpty(t, patterns.TopKeywords)
	assert.Equal(t, services.KeywordCount{Keyword: "energy", Count: 2}, patterns.TopKeywords[0])

	require.Len(t, patterns.TopAuthors, 1, "blank authors are dropped")
	assert.Equal(t, services.AuthorCount{Author: "Ada", Count: 2}, patterns.TopAuthors[0])

	// Cadence spans the dated articles only: 3 articles over 2 weeks.
	require.NotNil(t, patterns.EarliestArticle)
	require.NotNil(t, patterns.LatestArticle)
	assert.InDelta(t, 1.5, patterns.ArticlesPerWeek, 0.001)

	_, err = svc.AnalyzeTrainingPatterns(ctx, "never-scraped.example.com", 0)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.AnalyzeTrainingPatterns(ctx, "", 0)
	assert.True(t, services.IsValidationError(err))
}

func TestUpdateTopicAssignments(t *testing.T) {
	client, svc := newArticleService(t)
	ctx := context.Background()

	_, err := svc.SaveClientArticles(ctx, []services.ArticleInput{
		{Domain: "c.com", URL: "https://c.com/1", QdrantPointID: "p1"},
		{Domain: "c.com", URL: "https://c.com/2", QdrantPointID: "p2"},
	})
	require.NoError(t, err)

	err = svc.UpdateTopicAssignments(ctx, map[string]int{
		"p1":      3,
		"p2":      0,
		"unknown": 9, // ignored
	})
	require.NoError(t, err)

	a1, err := client.ClientArticle.Query().
		Where(clientarticle.QdrantPointIDEQ("p1")).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, a1.TopicID)
	assert.Equal(t, 3, *a1.TopicID)

	a2, err := client.ClientArticle.Query().
		Where(clientarticle.QdrantPointIDEQ("p2")).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, a2.TopicID)
	assert.Equal(t, 0, *a2.TopicID)

	assert.NoError(t, svc.UpdateTopicAssignments(ctx, nil))
}
