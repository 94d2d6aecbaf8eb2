package service

import (
	"fmt"
	"math"
	"strings"

	"ghars/internal/models"
)

// Criterion weights for the compatibility score. They sum to 1.0; the
// soil and humidity/pH criteria are all-or-nothing, rainfall and
// temperature give partial credit near the lower bound of the range.
const (
	weightRainfall    = 0.25
	weightTemperature = 0.25
	weightHumidity    = 0.15
	weightPH          = 0.15
	weightSoil        = 0.20

	rainfallTolerance    = 50.0
	temperatureTolerance = 10.0

	rainfallPartialCredit    = 0.5
	temperaturePartialCredit = 0.6
)

// Tier buckets a compatibility score for narrative text. The same
// thresholds gate inclusion in recommendation lists.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierLimited   Tier = "limited"

	tierExcellentFloor = 0.8
	tierGoodFloor      = 0.6
)

// Compatibility scores how well a climate profile satisfies a species'
// requirements. The result is always in [0, 1]; the function is total and
// deterministic for any well-formed pair.
func Compatibility(species models.SpeciesRecord, climate models.ClimateProfile) float64 {
	req := species.Requirements
	score := 0.0

	switch {
	case req.RainfallMin <= climate.Rainfall && climate.Rainfall <= req.RainfallMax:
		score += weightRainfall
	case math.Abs(climate.Rainfall-req.RainfallMin) < rainfallTolerance:
		score += weightRainfall * rainfallPartialCredit
	}

	switch {
	case req.TemperatureMin <= climate.TemperatureAvg && climate.TemperatureAvg <= req.TemperatureMax:
		score += weightTemperature
	case math.Abs(climate.TemperatureAvg-req.TemperatureMin) < temperatureTolerance:
		score += weightTemperature * temperaturePartialCredit
	}

	if req.HumidityMin <= climate.Humidity && climate.Humidity <= req.HumidityMax {
		score += weightHumidity
	}

	if req.PHMin <= climate.PH && climate.PH <= req.PHMax {
		score += weightPH
	}

	if soilAccepted(req.SoilTypes, climate.SoilType) {
		score += weightSoil
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// TierFor classifies a compatibility score.
func TierFor(score float64) Tier {
	switch {
	case score >= tierExcellentFloor:
		return TierExcellent
	case score >= tierGoodFloor:
		return TierGood
	default:
		return TierLimited
	}
}

// CompatibilityReason renders the one-line narrative attached to
// recommendations.
func CompatibilityReason(species models.SpeciesRecord, score float64) string {
	switch TierFor(score) {
	case TierExcellent:
		return fmt.Sprintf("توافق ممتاز - %s مثالية لهذه الظروف المناخية", species.Name)
	case TierGood:
		return fmt.Sprintf("توافق جيد - %s مناسبة مع رعاية معتدلة", species.Name)
	default:
		return fmt.Sprintf("توافق محدود - %s تحتاج رعاية مكثفة", species.Name)
	}
}

func soilAccepted(accepted []string, soil string) bool {
	for _, s := range accepted {
		if strings.EqualFold(s, soil) {
			return true
		}
	}
	return false
}
