package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/ent/siteprofile"
	"github.com/trendscope/trendscope/pkg/services"
	testdb "github.com/trendscope/trendscope/test/database"
)

func newProfileService(t *testing.T) *services.ProfileService {
	t.Helper()
	return services.NewProfileService(testdb.NewTestClient(t).Client)
}

func TestSaveProfile_VersionHistory(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()
	domain := "client.example.com"

	_, err := svc.GetLatestProfile(ctx, domain)
	assert.ErrorIs(t, err, services.ErrNotFound)

	first, err := svc.SaveProfile(ctx, services.ProfileInput{
		Domain:        domain,
		LanguageLevel: siteprofile.LanguageLevelIntermediate,
		EditorialTone: "informative",
		Keywords:      map[string]any{"top": []any{"energy", "climate"}},
		PagesAnalyzed: 40,
		LLMModelsUsed: []string{"test-model"},
	})
	require.NoError(t, err)
	assert.True(t, first.IsValid)

	time.Sleep(5 * time.Millisecond)

	second, err := svc.SaveProfile(ctx, services.ProfileInput{
		Domain:        domain,
		LanguageLevel: siteprofile.LanguageLevelAdvanced,
		EditorialTone: "analytical",
		PagesAnalyzed: 55,
	})
	require.NoError(t, err)

	// Re-analysis tombstones the previous version instead of mutating it.
	latest, err := svc.GetLatestProfile(ctx, domain)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, siteprofile.LanguageLevelAdvanced, latest.LanguageLevel)

	history, err := svc.GetProfileHistory(ctx, domain, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID, "newest first")
	assert.False(t, history[1].IsValid)

	limited, err := svc.GetProfileHistory(ctx, domain, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSaveProfile_RequiresDomain(t *testing.T) {
	svc := newProfileService(t)
	_, err := svc.SaveProfile(context.Background(), services.ProfileInput{})
	assert.True(t, services.IsValidationError(err))
}

func TestCompareProfiles(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()
	domain := "compare.example.com"

	previous, err := svc.SaveProfile(ctx, services.ProfileInput{
		Domain:          domain,
		LanguageLevel:   siteprofile.LanguageLevelSimple,
		EditorialTone:   "casual",
		ActivityDomains: map[string]any{"primary": "lifestyle"},
		PagesAnalyzed:   20,
	})
	require.NoError(t, err)

	current, err := svc.SaveProfile(ctx, services.ProfileInput{
		Domain:          domain,
		LanguageLevel:   siteprofile.LanguageLevelSimple,
		EditorialTone:   "serious",
		ActivityDomains: map[string]any{"primary": "lifestyle"},
		PagesAnalyzed:   35,
	})
	require.NoError(t, err)

	comparisons := services.CompareProfiles(previous, current)
	byField := map[string]services.MetricComparison{}
	for _, c := range comparisons {
		byField[c.Field] = c
	}

	assert.False(t, byField["language_level"].Changed)
	assert.False(t, byField["activity_domains"].Changed)
	assert.True(t, byField["editorial_tone"].Changed)
	assert.Equal(t, "casual", byField["editorial_tone"].Previous)
	assert.Equal(t, "serious", byField["editorial_tone"].Current)
	assert.True(t, byField["pages_analyzed"].Changed)
}
