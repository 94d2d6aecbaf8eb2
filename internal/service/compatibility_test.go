package service

import (
	"testing"

	"ghars/internal/models"
	"github.com/stretchr/testify/assert"
)

func frankincenseLike() models.SpeciesRecord {
	return models.SpeciesRecord{
		Name:   "اللبان",
		NameEn: "Frankincense",
		Type:   models.SpeciesTypeDesert,
		Requirements: models.Requirements{
			RainfallMin:    50,
			RainfallMax:    300,
			TemperatureMin: 20,
			TemperatureMax: 35,
			HumidityMin:    40,
			HumidityMax:    80,
			PHMin:          6.5,
			PHMax:          8,
			SoilTypes:      []string{"sandy"},
		},
	}
}

func idealClimate() models.ClimateProfile {
	return models.ClimateProfile{
		Rainfall:       150,
		TemperatureAvg: 28,
		Humidity:       60,
		SoilType:       "sandy",
		PH:             7.2,
		OrganicMatter:  2.5,
	}
}

func TestCompatibilityAllCriteriaSatisfied(t *testing.T) {
	score := Compatibility(frankincenseLike(), idealClimate())

	assert.InDelta(t, 1.0, score, 1e-9)
	assert.Equal(t, TierExcellent, TierFor(score))
}

func TestCompatibilityRainfallPartialCredit(t *testing.T) {
	climate := idealClimate()
	climate.Rainfall = 10 // 40 below the minimum, inside the 50 mm band

	score := Compatibility(frankincenseLike(), climate)

	// Half rainfall credit: 0.125 instead of 0.25.
	assert.InDelta(t, 0.875, score, 1e-9)
	assert.Equal(t, TierExcellent, TierFor(score))
}

func TestCompatibilityRainfallOutsideTolerance(t *testing.T) {
	climate := idealClimate()
	climate.Rainfall = 400 // 100 above max, and 350 from the min anchor

	score := Compatibility(frankincenseLike(), climate)
	assert.InDelta(t, 0.75, score, 1e-9)
}

func TestCompatibilityTemperaturePartialCredit(t *testing.T) {
	climate := idealClimate()
	climate.TemperatureAvg = 12 // 8 below the minimum, inside the 10 degree band

	score := Compatibility(frankincenseLike(), climate)

	// 0.6 temperature credit: 0.15 instead of 0.25.
	assert.InDelta(t, 0.9, score, 1e-9)
}

func TestCompatibilityAllOrNothingCriteria(t *testing.T) {
	species := frankincenseLike()

	humidity := idealClimate()
	humidity.Humidity = 90
	assert.InDelta(t, 0.85, Compatibility(species, humidity), 1e-9)

	ph := idealClimate()
	ph.PH = 9
	assert.InDelta(t, 0.85, Compatibility(species, ph), 1e-9)

	soil := idealClimate()
	soil.SoilType = "clay"
	assert.InDelta(t, 0.8, Compatibility(species, soil), 1e-9)
}

func TestCompatibilitySoilCaseInsensitive(t *testing.T) {
	climate := idealClimate()
	climate.SoilType = "Sandy"

	assert.InDelta(t, 1.0, Compatibility(frankincenseLike(), climate), 1e-9)
}

func TestCompatibilityMonotonicRainfallTolerance(t *testing.T) {
	species := frankincenseLike()
	climate := idealClimate()

	// Moving rainfall further below the minimum never increases the score.
	prev := 2.0
	for _, rainfall := range []float64{50, 40, 30, 20, 10, 1, 0, -10} {
		climate.Rainfall = rainfall
		score := Compatibility(species, climate)
		assert.LessOrEqual(t, score, prev, "rainfall %v", rainfall)
		prev = score
	}
}

func TestCompatibilityBounds(t *testing.T) {
	species := frankincenseLike()

	for _, rainfall := range []float64{-100, 0, 49, 50, 175, 300, 301, 1000} {
		for _, temp := range []float64{-10, 0, 19, 27, 36, 60} {
			for _, soil := range []string{"sandy", "clay", ""} {
				climate := models.ClimateProfile{
					Rainfall:       rainfall,
					TemperatureAvg: temp,
					Humidity:       55,
					SoilType:       soil,
					PH:             7,
					OrganicMatter:  2,
				}
				score := Compatibility(species, climate)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 1.0)
			}
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Tier
	}{
		{1.0, TierExcellent},
		{0.8, TierExcellent},
		{0.79, TierGood},
		{0.6, TierGood},
		{0.59, TierLimited},
		{0, TierLimited},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.score), "score %v", tt.score)
	}
}

func TestCompatibilityReasonMentionsSpecies(t *testing.T) {
	species := frankincenseLike()

	assert.Contains(t, CompatibilityReason(species, 0.9), species.Name)
	assert.Contains(t, CompatibilityReason(species, 0.9), "ممتاز")
	assert.Contains(t, CompatibilityReason(species, 0.7), "جيد")
	assert.Contains(t, CompatibilityReason(species, 0.3), "محدود")
}
