// Package predictor defines the optional external success-probability
// capability. The advisory engine works fully without it; when a model
// endpoint is configured its probability replaces the deterministic
// compatibility fallback.
package predictor

import (
	"context"
	"strings"

	"ghars/internal/models"
)

// SuccessPredictor maps a feature vector to a planting success
// probability in [0, 1]. Any error from an implementation makes the
// caller fall back to the deterministic scorer; it is never surfaced to
// API clients.
type SuccessPredictor interface {
	Predict(ctx context.Context, features FeatureVector) (float64, error)
}

// FeatureVector is the fixed input layout of the external classifier.
// Categorical fields use the encodings below.
type FeatureVector struct {
	Rainfall       float64 `json:"rainfall"`
	TemperatureAvg float64 `json:"temperature_avg"`
	Humidity       float64 `json:"humidity"`
	SoilType       int     `json:"soil_type"`
	PH             float64 `json:"pH"`
	OrganicMatter  float64 `json:"organic_matter"`
	Season         int     `json:"season"`
	SpeciesType    int     `json:"species_type"`
}

// NewFeatureVector encodes a climate profile, season, and species type
// into the classifier's input layout.
func NewFeatureVector(climate models.ClimateProfile, season models.Season, speciesType models.SpeciesType) FeatureVector {
	return FeatureVector{
		Rainfall:       climate.Rainfall,
		TemperatureAvg: climate.TemperatureAvg,
		Humidity:       climate.Humidity,
		SoilType:       EncodeSoilType(climate.SoilType),
		PH:             climate.PH,
		OrganicMatter:  climate.OrganicMatter,
		Season:         EncodeSeason(season),
		SpeciesType:    EncodeSpeciesType(speciesType),
	}
}

var soilEncoding = map[string]int{
	"sandy":      1,
	"رملية":      1,
	"clay":       2,
	"طينية":      2,
	"rocky":      3,
	"صخرية":      3,
	"calcareous": 4,
	"جيرية":      4,
	"loamy":      5,
	"طميية":      5,
}

var seasonEncoding = map[models.Season]int{
	models.SeasonSpring: 1,
	models.SeasonSummer: 2,
	models.SeasonAutumn: 3,
	models.SeasonWinter: 4,
}

var speciesTypeEncoding = map[models.SpeciesType]int{
	models.SpeciesTypeEvergreen: 1,
	models.SpeciesTypeDeciduous: 2,
	models.SpeciesTypePalm:      3,
	models.SpeciesTypeDesert:    4,
	models.SpeciesTypeMountain:  5,
	models.SpeciesTypeCoastal:   6,
}

// EncodeSoilType maps a soil label (Arabic or English) to its categorical
// code. Unknown labels encode to the 0 sentinel rather than failing; the
// classifier was trained with that convention.
func EncodeSoilType(soil string) int {
	return soilEncoding[strings.ToLower(strings.TrimSpace(soil))]
}

// EncodeSeason maps a season to its categorical code, 0 when unknown.
func EncodeSeason(season models.Season) int {
	return seasonEncoding[season]
}

// EncodeSpeciesType maps a species type to its categorical code, 0 when
// unknown.
func EncodeSpeciesType(t models.SpeciesType) int {
	return speciesTypeEncoding[t]
}
