package service

import (
	"sort"

	"ghars/internal/catalog"
	"ghars/internal/models"
	"go.uber.org/zap"
)

// DefaultTopK bounds a recommendation list when the caller does not ask
// for a specific size.
const DefaultTopK = 5

// Recommendation pairs a species with its compatibility for a resolved
// climate profile.
type Recommendation struct {
	Species models.SpeciesRecord `json:"tree"`
	Score   float64              `json:"compatibility"`
	Reason  string               `json:"reason"`
}

// RecommendationService ranks catalog species against the climate of a
// governorate and season.
type RecommendationService struct {
	catalogs *catalog.Catalogs
	logger   *zap.Logger
}

func NewRecommendationService(catalogs *catalog.Catalogs, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		catalogs: catalogs,
		logger:   logger,
	}
}

// Recommend scores every species against the (governorate, season)
// climate, keeps those above the "good" tier floor, and returns the top
// topK ordered by descending score. Ties keep catalog order. An unknown
// governorate or season yields an empty list; that is a normal outcome,
// not an error.
func (s *RecommendationService) Recommend(governorate string, season models.Season, topK int) []Recommendation {
	if topK <= 0 {
		topK = DefaultTopK
	}

	climate, ok := s.catalogs.ClimateFor(governorate, season)
	if !ok {
		s.logger.Debug("no climate data for recommendation request",
			zap.String("governorate", governorate),
			zap.String("season", string(season)),
		)
		return []Recommendation{}
	}

	recommendations := make([]Recommendation, 0, len(s.catalogs.Species()))
	for _, species := range s.catalogs.Species() {
		score := Compatibility(species, climate)
		if score <= tierGoodFloor {
			continue
		}
		recommendations = append(recommendations, Recommendation{
			Species: species,
			Score:   score,
			Reason:  CompatibilityReason(species, score),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > topK {
		recommendations = recommendations[:topK]
	}
	return recommendations
}
