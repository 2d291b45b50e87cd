package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Address     string
	CatalogURL  string
	CatalogPath string
	WeightsPath string
	DBPath      string

	FetchTimeoutMs int
	FetchRetries   int
	LaborRate      float64
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		Address:     getEnv("API_ADDRESS", ":8080"),
		CatalogURL:  getEnv("CATALOG_URL", ""),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		WeightsPath: getEnv("WEIGHTS_PATH", ""),
		DBPath:      getEnv("DB_PATH", "data/estimator.db"),

		FetchTimeoutMs: getEnvInt("CATALOG_FETCH_TIMEOUT_MS", 3000),
		FetchRetries:   getEnvInt("CATALOG_FETCH_RETRIES", 3),
		LaborRate:      getEnvFloat("LABOR_RATE", 150.0),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}
