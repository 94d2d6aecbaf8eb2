package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"ghars/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogs(t *testing.T) *Catalogs {
	t.Helper()
	c, err := New(filepath.Join("testdata", "trees.json"), filepath.Join("testdata", "climate.json"))
	require.NoError(t, err)
	return c
}

func TestNewLoadsBothCollections(t *testing.T) {
	c := newTestCatalogs(t)

	assert.Len(t, c.Species(), 2)
	assert.Len(t, c.Governorates(), 2)
}

func TestSpeciesByName(t *testing.T) {
	c := newTestCatalogs(t)

	tests := []struct {
		name   string
		lookup string
		wantEn string
		wantOK bool
	}{
		{"arabic name", "اللبان", "Frankincense", true},
		{"english name", "Frankincense", "Frankincense", true},
		{"english name lowercase", "frankincense", "Frankincense", true},
		{"english name mixed case", "FRANKINCENSE", "Frankincense", true},
		{"second species", "Ghaf", "Ghaf", true},
		{"unknown", "Baobab", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			species, ok := c.SpeciesByName(tt.lookup)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantEn, species.NameEn)
			}
		})
	}
}

func TestClimateForResolvesByEitherName(t *testing.T) {
	c := newTestCatalogs(t)

	byArabic, ok := c.ClimateFor("مسقط", models.SeasonSummer)
	require.True(t, ok)
	byEnglish, ok := c.ClimateFor("muscat", models.SeasonSummer)
	require.True(t, ok)

	assert.Equal(t, byArabic, byEnglish)
	assert.Equal(t, 5.0, byArabic.Rainfall)
	assert.Equal(t, 42.0, byArabic.TemperatureAvg)
}

func TestClimateForUnknownPairs(t *testing.T) {
	c := newTestCatalogs(t)

	_, ok := c.ClimateFor("Atlantis", models.SeasonSummer)
	assert.False(t, ok, "unknown governorate must not resolve")

	// Dhofar has only a summer profile in the fixture.
	_, ok = c.ClimateFor("Dhofar", models.SeasonWinter)
	assert.False(t, ok, "missing season must not yield a default profile")
}

func TestClimateDefaultsAppliedAtLoad(t *testing.T) {
	c := newTestCatalogs(t)

	// Muscat winter omits humidity, soil, pH, and organic matter.
	profile, ok := c.ClimateFor("Muscat", models.SeasonWinter)
	require.True(t, ok)

	assert.Equal(t, 80.0, profile.Rainfall)
	assert.Equal(t, 22.0, profile.TemperatureAvg)
	assert.Equal(t, 50.0, profile.Humidity)
	assert.Equal(t, "sandy", profile.SoilType)
	assert.Equal(t, 7.5, profile.PH)
	assert.Equal(t, 2.0, profile.OrganicMatter)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New("testdata/absent.json", filepath.Join("testdata", "climate.json"))
	assert.Error(t, err)

	_, err = New(filepath.Join("testdata", "trees.json"), "testdata/absent.json")
	assert.Error(t, err)
}

func TestNewMalformedData(t *testing.T) {
	dir := t.TempDir()

	badJSON := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badJSON, []byte("{not json"), 0o644))

	_, err := New(badJSON, filepath.Join("testdata", "climate.json"))
	assert.ErrorContains(t, err, "load species catalog")
}

func TestNewEmptyCollections(t *testing.T) {
	dir := t.TempDir()

	emptyTrees := filepath.Join(dir, "trees.json")
	require.NoError(t, os.WriteFile(emptyTrees, []byte(`{"trees": []}`), 0o644))
	_, err := New(emptyTrees, filepath.Join("testdata", "climate.json"))
	assert.ErrorContains(t, err, "no species records")

	emptyClimate := filepath.Join(dir, "climate.json")
	require.NoError(t, os.WriteFile(emptyClimate, []byte(`{"governorates": []}`), 0o644))
	_, err = New(filepath.Join("testdata", "trees.json"), emptyClimate)
	assert.ErrorContains(t, err, "no governorates")
}

func TestNewUnknownSeasonLabel(t *testing.T) {
	dir := t.TempDir()

	climate := filepath.Join(dir, "climate.json")
	payload := `{"governorates": [{"name": "مسقط", "name_en": "Muscat", "seasons": {"monsoon": {}}}]}`
	require.NoError(t, os.WriteFile(climate, []byte(payload), 0o644))

	_, err := New(filepath.Join("testdata", "trees.json"), climate)
	assert.ErrorContains(t, err, "unknown season label")
}
