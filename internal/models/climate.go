package models

import "strings"

// Season is the English season key used throughout the API. The reference
// climate table indexes seasons by their Arabic labels; ParseSeason and
// ArabicLabel translate between the two forms.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

var seasonLabels = map[Season]string{
	SeasonSpring: "الربيع",
	SeasonSummer: "الصيف",
	SeasonAutumn: "الخريف",
	SeasonWinter: "الشتاء",
}

// ParseSeason resolves an English season key, case-insensitively.
func ParseSeason(s string) (Season, bool) {
	season := Season(strings.ToLower(strings.TrimSpace(s)))
	_, ok := seasonLabels[season]
	return season, ok
}

// ArabicLabel returns the localized label for the season, or the raw key
// when the season is unknown.
func (s Season) ArabicLabel() string {
	if label, ok := seasonLabels[s]; ok {
		return label
	}
	return string(s)
}

// SeasonFromArabic resolves the localized label used by the reference
// climate table back to a season key.
func SeasonFromArabic(label string) (Season, bool) {
	for season, l := range seasonLabels {
		if l == label {
			return season, true
		}
	}
	return "", false
}

// Seasons lists all seasons in calendar order.
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}
}

// ClimateProfile holds the expected conditions for one governorate and
// season. Profiles are derived from the reference table with missing
// fields already defaulted at load time, so every field is always set.
type ClimateProfile struct {
	Rainfall       float64 `json:"rainfall"`
	TemperatureAvg float64 `json:"temperature_avg"`
	Humidity       float64 `json:"humidity"`
	SoilType       string  `json:"soil_type"`
	PH             float64 `json:"pH"`
	OrganicMatter  float64 `json:"organic_matter"`
}

// ClimateOverrides carries caller-supplied replacements for individual
// profile fields. Nil fields keep the resolved value.
type ClimateOverrides struct {
	Rainfall       *float64 `json:"rainfall,omitempty"`
	TemperatureAvg *float64 `json:"temperature_avg,omitempty"`
	Humidity       *float64 `json:"humidity,omitempty"`
	SoilType       *string  `json:"soil_type,omitempty"`
	PH             *float64 `json:"pH,omitempty"`
	OrganicMatter  *float64 `json:"organic_matter,omitempty"`
}

// Apply returns a copy of the profile with the overrides laid on top.
// The receiver is never mutated.
func (o *ClimateOverrides) Apply(p ClimateProfile) ClimateProfile {
	if o == nil {
		return p
	}
	if o.Rainfall != nil {
		p.Rainfall = *o.Rainfall
	}
	if o.TemperatureAvg != nil {
		p.TemperatureAvg = *o.TemperatureAvg
	}
	if o.Humidity != nil {
		p.Humidity = *o.Humidity
	}
	if o.SoilType != nil {
		p.SoilType = *o.SoilType
	}
	if o.PH != nil {
		p.PH = *o.PH
	}
	if o.OrganicMatter != nil {
		p.OrganicMatter = *o.OrganicMatter
	}
	return p
}
