package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Predictor PredictorConfig
	Chat      ChatConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DataConfig points at the reference data files loaded at startup.
type DataConfig struct {
	TreesPath   string
	ClimatePath string
}

// PredictorConfig configures the optional external success classifier.
// An empty URL means the deterministic compatibility fallback is used
// exclusively.
type PredictorConfig struct {
	URL     string
	Timeout time.Duration
}

type ChatConfig struct {
	HistoryLimit int
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work for Docker/K8s.
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	predictorTimeout, _ := strconv.Atoi(getEnv("PREDICTOR_TIMEOUT", "5"))
	historyLimit, _ := strconv.Atoi(getEnv("CHAT_HISTORY_LIMIT", "200"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Data: DataConfig{
			TreesPath:   getEnv("TREES_PATH", "data/trees.json"),
			ClimatePath: getEnv("CLIMATE_PATH", "data/climate.json"),
		},
		Predictor: PredictorConfig{
			URL:     getEnv("PREDICTOR_URL", ""),
			Timeout: time.Duration(predictorTimeout) * time.Second,
		},
		Chat: ChatConfig{
			HistoryLimit: historyLimit,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
