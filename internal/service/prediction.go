package service

import (
	"context"
	"fmt"
	"math"

	"ghars/internal/catalog"
	"ghars/internal/models"
	"ghars/internal/predictor"
	"go.uber.org/zap"
)

// Advisory thresholds for the rule-driven recommendation strings.
const (
	excellentRateFloor  = 80.0
	acceptableRateFloor = 60.0
	organicMatterFloor  = 2.0
	phNeutral           = 7.0
	phDeviationLimit    = 1.0
)

// PredictionResult is the outcome of one success estimate. A request for
// an unknown species or governorate/season yields the degenerate result
// (rate 0, single "data unavailable" recommendation) rather than an error.
type PredictionResult struct {
	SuccessRate         float64               `json:"success_rate"`
	Recommendations     []string              `json:"recommendations"`
	SeasonalNotes       []string              `json:"seasonal_notes"`
	OptimalPlantingTime string                `json:"optimal_planting_time"`
	Tree                *models.SpeciesRecord  `json:"tree_info,omitempty"`
	Climate             *models.ClimateProfile `json:"climate_data,omitempty"`
}

// PredictionService estimates planting success for one species in one
// governorate and season. When an external predictor is configured its
// probability drives the rate; otherwise, and on any predictor failure,
// the deterministic compatibility score does.
type PredictionService struct {
	catalogs  *catalog.Catalogs
	predictor predictor.SuccessPredictor
	logger    *zap.Logger
}

// NewPredictionService wires the estimator. pred may be nil; that is the
// supported default configuration.
func NewPredictionService(catalogs *catalog.Catalogs, pred predictor.SuccessPredictor, logger *zap.Logger) *PredictionService {
	return &PredictionService{
		catalogs:  catalogs,
		predictor: pred,
		logger:    logger,
	}
}

// PredictSuccess resolves the species and climate, applies the caller's
// overrides, and produces the success rate plus advisory text. It never
// returns an error for well-typed input.
func (s *PredictionService) PredictSuccess(
	ctx context.Context,
	speciesName string,
	governorate string,
	season models.Season,
	overrides *models.ClimateOverrides,
) PredictionResult {
	species, speciesOK := s.catalogs.SpeciesByName(speciesName)
	climate, climateOK := s.catalogs.ClimateFor(governorate, season)
	if !speciesOK || !climateOK {
		s.logger.Debug("prediction request with unresolvable data",
			zap.String("species", speciesName),
			zap.String("governorate", governorate),
			zap.String("season", string(season)),
		)
		return PredictionResult{
			SuccessRate:     0,
			Recommendations: []string{"بيانات غير متوفرة"},
			SeasonalNotes:   []string{},
		}
	}

	effective := overrides.Apply(climate)
	rate := s.successRate(ctx, species, effective, season)

	result := PredictionResult{
		SuccessRate:         math.Round(rate*10) / 10,
		Recommendations:     adviseOnClimate(species, effective, rate),
		SeasonalNotes:       seasonalNotes(species, season),
		OptimalPlantingTime: species.PlantingTime(),
		Tree:                &species,
		Climate:             &effective,
	}
	return result
}

func (s *PredictionService) successRate(ctx context.Context, species models.SpeciesRecord, climate models.ClimateProfile, season models.Season) float64 {
	if s.predictor != nil {
		features := predictor.NewFeatureVector(climate, season, species.Type)
		probability, err := s.predictor.Predict(ctx, features)
		if err == nil {
			return probability * 100
		}
		s.logger.Warn("external predictor unavailable, falling back to compatibility score",
			zap.Error(err),
		)
	}
	return Compatibility(species, climate) * 100
}

// adviseOnClimate evaluates the fixed advisory rules against the
// effective climate. Rules are independent; any subset may fire after the
// verdict banner.
func adviseOnClimate(species models.SpeciesRecord, climate models.ClimateProfile, rate float64) []string {
	req := species.Requirements
	recommendations := make([]string, 0, 5)

	switch {
	case rate >= excellentRateFloor:
		recommendations = append(recommendations, fmt.Sprintf("موسم ممتاز لزراعة %s", species.Name))
	case rate >= acceptableRateFloor:
		recommendations = append(recommendations, fmt.Sprintf("موسم مقبول لزراعة %s مع الرعاية الإضافية", species.Name))
	default:
		recommendations = append(recommendations, "يُنصح بتأجيل الزراعة إلى موسم أفضل")
	}

	if climate.Rainfall < req.RainfallMin {
		deficit := req.RainfallMin - climate.Rainfall
		recommendations = append(recommendations, fmt.Sprintf("يُنصح بالري المنتظم (نقص أمطار: %.0f مم)", deficit))
	}

	if climate.TemperatureAvg > req.TemperatureMax {
		recommendations = append(recommendations, "استخدام شبكات التظليل في ساعات الذروة")
	}

	if climate.OrganicMatter < organicMatterFloor {
		recommendations = append(recommendations, "إضافة السماد العضوي (2-3 كجم لكل شجرة)")
	}

	if math.Abs(climate.PH-phNeutral) > phDeviationLimit {
		if climate.PH < phNeutral {
			recommendations = append(recommendations, "إضافة الجير لرفع حموضة التربة")
		} else {
			recommendations = append(recommendations, "إضافة الكبريت لخفض قلوية التربة")
		}
	}

	return recommendations
}

func seasonalNotes(species models.SpeciesRecord, season models.Season) []string {
	if notes, ok := species.SeasonalCare[season]; ok {
		return notes
	}
	return []string{}
}
