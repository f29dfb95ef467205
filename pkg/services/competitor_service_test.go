package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/pkg/services"
	testdb "github.com/trendscope/trendscope/test/database"
)

func newCompetitorService(t *testing.T) *services.CompetitorService {
	t.Helper()
	return services.NewCompetitorService(testdb.NewTestClient(t).Client, slog.Default())
}

func discoveryBatch() []services.DiscoveredCompetitor {
	return []services.DiscoveredCompetitor{
		{Domain: "rival-a.com", Source: "serp", RelevanceScore: 0.9},
		{Domain: "rival-b.com", Source: "serp", RelevanceScore: 0.7},
		{Domain: "rival-c.com", Source: "llm", RelevanceScore: 0.5},
	}
}

func TestSaveDiscovered(t *testing.T) {
	svc := newCompetitorService(t)
	ctx := context.Background()
	client := "client.example.com"

	inserted, err := svc.SaveDiscovered(ctx, client, discoveryBatch())
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	// Re-discovery refreshes source and relevance without duplicating rows.
	inserted, err = svc.SaveDiscovered(ctx, client, []services.DiscoveredCompetitor{
		{Domain: "rival-a.com", Source: "llm", RelevanceScore: 0.95},
		{Domain: "rival-d.com", Source: "serp", RelevanceScore: 0.4},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	competitors, err := svc.ListCompetitors(ctx, client)
	require.NoError(t, err)
	require.Len(t, competitors, 4)
	assert.Equal(t, "rival-a.com", competitors[0].Domain)
	assert.Equal(t, 0.95, competitors[0].RelevanceScore)
	assert.Equal(t, "llm", competitors[0].Source)
}

func TestSaveDiscovered_SkipsSelfAndEmpty(t *testing.T) {
	svc := newCompetitorService(t)
	ctx := context.Background()

	inserted, err := svc.SaveDiscovered(ctx, "client.example.com", []services.DiscoveredCompetitor{
		{Domain: "client.example.com", Source: "serp", RelevanceScore: 1.0},
		{Domain: "", Source: "serp"},
	})
	require.NoError(t, err)
	assert.Zero(t, inserted)

	_, err = svc.SaveDiscovered(ctx, "", discoveryBatch())
	assert.True(t, services.IsValidationError(err))
}

func TestAutoValidateTop(t *testing.T) {
	svc := newCompetitorService(t)
	ctx := context.Background()
	client := "client.example.com"

	_, err := svc.SaveDiscovered(ctx, client, discoveryBatch())
	require.NoError(t, err)

	validated, err := svc.AutoValidateTop(ctx, client, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, validated)

	domains, err := svc.ValidatedDomains(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, []string{"rival-a.com", "rival-b.com"}, domains)

	// Idempotent: a second pass re-counts the already validated rows.
	validated, err = svc.AutoValidateTop(ctx, client, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, validated)

	domains, err = svc.ValidatedDomains(ctx, client)
	require.NoError(t, err)
	assert.Len(t, domains, 2)
}

func TestAutoValidateTop_SkipsExcluded(t *testing.T) {
	svc := newCompetitorService(t)
	ctx := context.Background()
	client := "client.example.com"

	_, err := svc.SaveDiscovered(ctx, client, discoveryBatch())
	require.NoError(t, err)

	// The top competitor gets excluded by an editor before auto-validation.
	_, err = svc.SetValidation(ctx, client, "rival-a.com", false, true)
	require.NoError(t, err)

	validated, err := svc.AutoValidateTop(ctx, client, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, validated)

	domains, err := svc.ValidatedDomains(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, []string{"rival-b.com", "rival-c.com"}, domains)
}

func TestSetValidation(t *testing.T) {
	svc := newCompetitorService(t)
	ctx := context.Background()
	client := "client.example.com"

	_, err := svc.SaveDiscovered(ctx, client, discoveryBatch())
	require.NoError(t, err)

	updated, err := svc.SetValidation(ctx, client, "rival-b.com", true, false)
	require.NoError(t, err)
	assert.True(t, updated.Validated)
	assert.NotNil(t, updated.ValidationDate)

	// Excluding clears the validated flag.
	updated, err = svc.SetValidation(ctx, client, "rival-b.com", true, true)
	require.NoError(t, err)
	assert.True(t, updated.Excluded)
	assert.False(t, updated.Validated)

	domains, err := svc.ValidatedDomains(ctx, client)
	require.NoError(t, err)
	assert.Empty(t, domains)

	_, err = svc.SetValidation(ctx, client, "nobody.com", true, false)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
