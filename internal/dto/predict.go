package dto

import "ghars/internal/models"

// PredictRequest asks for a success estimate for one species in one
// governorate and season. The optional fields override the resolved
// climate profile field-by-field.
type PredictRequest struct {
	Governorate   string   `json:"governorate"`
	Season        string   `json:"season"`
	TreeName      string   `json:"tree_name"`
	Rainfall      *float64 `json:"rainfall,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	Humidity      *float64 `json:"humidity,omitempty"`
	PH            *float64 `json:"pH,omitempty"`
	OrganicMatter *float64 `json:"organic_matter,omitempty"`
	SoilType      *string  `json:"soil_type,omitempty"`
}

// Overrides converts the optional request fields into climate overrides,
// or nil when none were supplied.
func (r *PredictRequest) Overrides() *models.ClimateOverrides {
	if r.Rainfall == nil && r.Temperature == nil && r.Humidity == nil &&
		r.PH == nil && r.OrganicMatter == nil && r.SoilType == nil {
		return nil
	}
	return &models.ClimateOverrides{
		Rainfall:       r.Rainfall,
		TemperatureAvg: r.Temperature,
		Humidity:       r.Humidity,
		SoilType:       r.SoilType,
		PH:             r.PH,
		OrganicMatter:  r.OrganicMatter,
	}
}

// BatchPredictRequest carries several predict requests in one call.
type BatchPredictRequest []PredictRequest
