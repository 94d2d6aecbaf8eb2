package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ghars/internal/models"
)

// Catalogs holds the read-only reference data the engines work against:
// the species catalog and the governorate/season climate table. Both are
// loaded once at startup and safe for concurrent reads without locking.
type Catalogs struct {
	species      []models.SpeciesRecord
	speciesIndex map[string]int

	governorates []Governorate
	govIndex     map[string]int
}

// Governorate is one region of the climate table with its seasonal
// profiles, keyed by season.
type Governorate struct {
	Name    string
	NameEn  string
	seasons map[models.Season]models.ClimateProfile
}

type treesFile struct {
	Trees []models.SpeciesRecord `json:"trees"`
}

type climateFile struct {
	Governorates []governorateRaw `json:"governorates"`
}

type governorateRaw struct {
	Name    string               `json:"name"`
	NameEn  string               `json:"name_en"`
	Seasons map[string]seasonRaw `json:"seasons"`
}

// seasonRaw mirrors the reference data file. Pointer fields distinguish
// "absent" from zero so defaults are applied exactly once, at load time.
type seasonRaw struct {
	RainfallMM     *float64 `json:"rainfall_mm"`
	AvgTemperature *float64 `json:"avg_temperature"`
	Humidity       *float64 `json:"humidity"`
	SoilType       *string  `json:"soil_type"`
	SoilPH         *float64 `json:"soil_ph"`
	OrganicMatter  *float64 `json:"organic_matter"`
}

// Climate defaults for fields the reference data omits.
const (
	defaultRainfall      = 50
	defaultTemperature   = 25
	defaultHumidity      = 50
	defaultSoilType      = "sandy"
	defaultPH            = 7.5
	defaultOrganicMatter = 2.0
)

// New loads both reference collections. Any missing file, malformed
// record, or empty collection is a configuration error: the caller is
// expected to treat it as fatal.
func New(treesPath, climatePath string) (*Catalogs, error) {
	c := &Catalogs{
		speciesIndex: make(map[string]int),
		govIndex:     make(map[string]int),
	}

	if err := c.loadSpecies(treesPath); err != nil {
		return nil, fmt.Errorf("load species catalog: %w", err)
	}
	if err := c.loadClimate(climatePath); err != nil {
		return nil, fmt.Errorf("load climate table: %w", err)
	}

	return c, nil
}

func (c *Catalogs) loadSpecies(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file treesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Trees) == 0 {
		return fmt.Errorf("%s contains no species records", path)
	}

	for i, rec := range file.Trees {
		if rec.Name == "" || rec.NameEn == "" {
			return fmt.Errorf("species record %d is missing a name", i)
		}
		c.species = append(c.species, rec)
		c.speciesIndex[rec.Name] = i
		c.speciesIndex[strings.ToLower(rec.NameEn)] = i
	}

	return nil
}

func (c *Catalogs) loadClimate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file climateFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Governorates) == 0 {
		return fmt.Errorf("%s contains no governorates", path)
	}

	for i, raw := range file.Governorates {
		if raw.Name == "" {
			return fmt.Errorf("governorate record %d is missing a name", i)
		}
		gov := Governorate{
			Name:    raw.Name,
			NameEn:  raw.NameEn,
			seasons: make(map[models.Season]models.ClimateProfile, len(raw.Seasons)),
		}
		for label, rawSeason := range raw.Seasons {
			season, ok := models.SeasonFromArabic(label)
			if !ok {
				return fmt.Errorf("governorate %q: unknown season label %q", raw.Name, label)
			}
			gov.seasons[season] = resolveProfile(rawSeason)
		}
		c.governorates = append(c.governorates, gov)
		c.govIndex[raw.Name] = i
		if raw.NameEn != "" {
			c.govIndex[strings.ToLower(raw.NameEn)] = i
		}
	}

	return nil
}

func resolveProfile(raw seasonRaw) models.ClimateProfile {
	p := models.ClimateProfile{
		Rainfall:       defaultRainfall,
		TemperatureAvg: defaultTemperature,
		Humidity:       defaultHumidity,
		SoilType:       defaultSoilType,
		PH:             defaultPH,
		OrganicMatter:  defaultOrganicMatter,
	}
	if raw.RainfallMM != nil {
		p.Rainfall = *raw.RainfallMM
	}
	if raw.AvgTemperature != nil {
		p.TemperatureAvg = *raw.AvgTemperature
	}
	if raw.Humidity != nil {
		p.Humidity = *raw.Humidity
	}
	if raw.SoilType != nil {
		p.SoilType = *raw.SoilType
	}
	if raw.SoilPH != nil {
		p.PH = *raw.SoilPH
	}
	if raw.OrganicMatter != nil {
		p.OrganicMatter = *raw.OrganicMatter
	}
	return p
}

// Species returns the catalog in insertion order. Callers must treat the
// slice as read-only.
func (c *Catalogs) Species() []models.SpeciesRecord {
	return c.species
}

// SpeciesByName resolves a species by its Arabic name or, case-
// insensitively, its English name.
func (c *Catalogs) SpeciesByName(name string) (models.SpeciesRecord, bool) {
	name = strings.TrimSpace(name)
	if i, ok := c.speciesIndex[name]; ok {
		return c.species[i], true
	}
	if i, ok := c.speciesIndex[strings.ToLower(name)]; ok {
		return c.species[i], true
	}
	return models.SpeciesRecord{}, false
}

// ClimateFor resolves the climate profile for a governorate and season.
// The governorate matches by Arabic name or English alias. An unknown
// combination returns ok=false, never a defaulted profile.
func (c *Catalogs) ClimateFor(governorate string, season models.Season) (models.ClimateProfile, bool) {
	gov, ok := c.governorate(governorate)
	if !ok {
		return models.ClimateProfile{}, false
	}
	profile, ok := gov.seasons[season]
	return profile, ok
}

// Governorates lists governorate names in table order.
func (c *Catalogs) Governorates() []Governorate {
	return c.governorates
}

func (c *Catalogs) governorate(name string) (Governorate, bool) {
	name = strings.TrimSpace(name)
	if i, ok := c.govIndex[name]; ok {
		return c.governorates[i], true
	}
	if i, ok := c.govIndex[strings.ToLower(name)]; ok {
		return c.governorates[i], true
	}
	return Governorate{}, false
}
