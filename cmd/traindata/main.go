// Command traindata emits the synthetic training set for the external
// success classifier: one row per governorate, season, and species, with
// the feature vector encoding used at prediction time and a binary label
// derived from the compatibility score. The classifier itself is trained
// and served outside this repository.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"ghars/internal/catalog"
	"ghars/internal/models"
	"ghars/internal/predictor"
	"ghars/internal/service"
	"ghars/pkg/config"
	"ghars/pkg/logger"

	"go.uber.org/zap"
)

// Rows with compatibility at or above this threshold are labelled
// successful.
const successLabelThreshold = 0.7

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	catalogs, err := catalog.New(cfg.Data.TreesPath, cfg.Data.ClimatePath)
	if err != nil {
		appLogger.Fatal("Failed to load reference catalogs", zap.Error(err))
	}

	out := os.Stdout
	if len(os.Args) > 1 {
		f, err := os.Create(os.Args[1])
		if err != nil {
			appLogger.Fatal("Failed to create output file", zap.Error(err))
		}
		defer f.Close()
		out = f
	}

	rows, err := writeTrainingData(out, catalogs)
	if err != nil {
		appLogger.Fatal("Failed to write training data", zap.Error(err))
	}
	appLogger.Info("Training data written", zap.Int("rows", rows))
}

func writeTrainingData(out *os.File, catalogs *catalog.Catalogs) (int, error) {
	w := csv.NewWriter(out)
	header := []string{
		"rainfall", "temperature_avg", "humidity", "soil_type",
		"pH", "organic_matter", "season", "species_type", "label",
	}
	if err := w.Write(header); err != nil {
		return 0, err
	}

	rows := 0
	for _, gov := range catalogs.Governorates() {
		for _, season := range models.Seasons() {
			climate, ok := catalogs.ClimateFor(gov.Name, season)
			if !ok {
				continue
			}
			for _, species := range catalogs.Species() {
				features := predictor.NewFeatureVector(climate, season, species.Type)
				label := 0
				if service.Compatibility(species, climate) >= successLabelThreshold {
					label = 1
				}
				record := []string{
					formatFloat(features.Rainfall),
					formatFloat(features.TemperatureAvg),
					formatFloat(features.Humidity),
					strconv.Itoa(features.SoilType),
					formatFloat(features.PH),
					formatFloat(features.OrganicMatter),
					strconv.Itoa(features.Season),
					strconv.Itoa(features.SpeciesType),
					strconv.Itoa(label),
				}
				if err := w.Write(record); err != nil {
					return rows, err
				}
				rows++
			}
		}
	}

	w.Flush()
	return rows, w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
