package config

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
	// roster config
	SEED_FILE    string
	MINIMUM_WAGE string
	// walkthrough config
	DELETE_NAME   string
	RAISE_PERCENT float64
	REPORT_PATH   string
}

// LoadEnvConfig reads .env when present and fills DefaultEnvConfig from the
// environment. A missing .env is not an error.
func LoadEnvConfig(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		LOG_FILE_PATH: getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:     getEnvString("LOG_LEVEL", "info"),
		SEED_FILE:     getEnvString("SEED_FILE", ""),
		MINIMUM_WAGE:  getEnvString("MINIMUM_WAGE", "1212.00"),
		DELETE_NAME:   getEnvString("DELETE_NAME", "João"),
		RAISE_PERCENT: getEnvFloat("RAISE_PERCENT", 10),
		REPORT_PATH:   getEnvString("REPORT_PATH", ""),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return fallback
}
