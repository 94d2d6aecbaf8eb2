package models

// SpeciesType categorizes a tree by its growth habit and habitat.
type SpeciesType string

const (
	SpeciesTypeEvergreen SpeciesType = "evergreen"
	SpeciesTypeDeciduous SpeciesType = "deciduous"
	SpeciesTypePalm      SpeciesType = "palm"
	SpeciesTypeDesert    SpeciesType = "desert"
	SpeciesTypeMountain  SpeciesType = "mountain"
	SpeciesTypeCoastal   SpeciesType = "coastal"
)

// Requirements describes the climate conditions a species needs to thrive.
// Ranges are closed intervals; SoilTypes holds acceptable soil labels.
type Requirements struct {
	RainfallMin    float64  `json:"rainfall_min"`
	RainfallMax    float64  `json:"rainfall_max"`
	TemperatureMin float64  `json:"temperature_min"`
	TemperatureMax float64  `json:"temperature_max"`
	HumidityMin    float64  `json:"humidity_min"`
	HumidityMax    float64  `json:"humidity_max"`
	PHMin          float64  `json:"pH_min"`
	PHMax          float64  `json:"pH_max"`
	SoilTypes      []string `json:"soil_types"`
}

// SpeciesRecord is one tree in the reference catalog. The Arabic name and
// the English name together identify a species; either resolves it.
// Records are loaded once at startup and never mutated.
type SpeciesRecord struct {
	Name                string              `json:"name"`
	NameEn              string              `json:"name_en"`
	Type                SpeciesType         `json:"type"`
	Description         string              `json:"description"`
	HeightRange         string              `json:"height_range"`
	OptimalPlantingTime string              `json:"optimal_planting_time"`
	CareTips            []string            `json:"care_tips"`
	SeasonalCare        map[Season][]string `json:"seasonal_care"`
	Requirements        Requirements        `json:"requirements"`
}

// DefaultPlantingTime is used when a record does not declare an optimal
// planting window.
const DefaultPlantingTime = "الخريف والشتاء"

// PlantingTime returns the species' optimal planting window, falling back
// to the catalog-wide default.
func (s *SpeciesRecord) PlantingTime() string {
	if s.OptimalPlantingTime == "" {
		return DefaultPlantingTime
	}
	return s.OptimalPlantingTime
}
