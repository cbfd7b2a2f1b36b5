package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	DataDir        string
	DBName         string
	SeedSampleData bool
	CORSOrigins    string
}

var AppConfig *Config

// Load reads .env (when present) and the process environment into AppConfig
func Load() *Config {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:           GetEnv("PORT", "3000"),
		Env:            GetEnv("ENV", "development"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		DataDir:        GetEnv("DATA_DIR", "./data"),
		DBName:         GetEnv("DB_NAME", "notesdb"),
		SeedSampleData: GetEnvBool("SEED_SAMPLE_DATA", true),
		CORSOrigins:    GetEnv("CORS_ORIGINS", "*"),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvBool falls back to defaultValue when the variable is unset or not a bool
func GetEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
