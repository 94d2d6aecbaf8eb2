package service

import (
	"path/filepath"
	"testing"

	"ghars/internal/catalog"
	"ghars/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Fixture compatibilities for Muscat summer: Alpha 1.0, Beta 0.65
// (humidity and soil miss), Gamma 0.45 (rainfall miss, partial
// temperature).
func newTestCatalogs(t *testing.T) *catalog.Catalogs {
	t.Helper()
	c, err := catalog.New(filepath.Join("testdata", "trees.json"), filepath.Join("testdata", "climate.json"))
	require.NoError(t, err)
	return c
}

func TestRecommendKeepsOnlyGoodTier(t *testing.T) {
	svc := NewRecommendationService(newTestCatalogs(t), zap.NewNop())

	recommendations := svc.Recommend("Muscat", models.SeasonSummer, 3)

	require.Len(t, recommendations, 2, "only Alpha and Beta clear the 0.6 floor")
	assert.Equal(t, "Alpha", recommendations[0].Species.NameEn)
	assert.Equal(t, "Beta", recommendations[1].Species.NameEn)
	for _, rec := range recommendations {
		assert.Greater(t, rec.Score, 0.6)
		assert.NotEmpty(t, rec.Reason)
	}
}

func TestRecommendSortedDescending(t *testing.T) {
	svc := NewRecommendationService(newTestCatalogs(t), zap.NewNop())

	recommendations := svc.Recommend("مسقط", models.SeasonSummer, 10)
	for i := 1; i < len(recommendations); i++ {
		assert.GreaterOrEqual(t, recommendations[i-1].Score, recommendations[i].Score)
	}
}

func TestRecommendTruncatesToTopK(t *testing.T) {
	svc := NewRecommendationService(newTestCatalogs(t), zap.NewNop())

	recommendations := svc.Recommend("Muscat", models.SeasonSummer, 1)
	require.Len(t, recommendations, 1)
	assert.Equal(t, "Alpha", recommendations[0].Species.NameEn)
}

func TestRecommendDefaultTopK(t *testing.T) {
	svc := NewRecommendationService(newTestCatalogs(t), zap.NewNop())

	recommendations := svc.Recommend("Muscat", models.SeasonSummer, 0)
	assert.LessOrEqual(t, len(recommendations), DefaultTopK)
	assert.NotEmpty(t, recommendations)
}

func TestRecommendUnknownRegionOrSeason(t *testing.T) {
	svc := NewRecommendationService(newTestCatalogs(t), zap.NewNop())

	assert.Empty(t, svc.Recommend("Atlantis", models.SeasonSummer, 5))
	// Dhofar has no winter profile in the fixture.
	assert.Empty(t, svc.Recommend("Dhofar", models.SeasonWinter, 5))
}

func TestRecommendReproducible(t *testing.T) {
	svc := NewRecommendationService(newTestCatalogs(t), zap.NewNop())

	first := svc.Recommend("Muscat", models.SeasonSummer, 5)
	second := svc.Recommend("Muscat", models.SeasonSummer, 5)
	assert.Equal(t, first, second)
}
