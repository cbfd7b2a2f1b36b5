package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "DATA_DIR", "DB_NAME", "SEED_SAMPLE_DATA", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Same(t, AppConfig, cfg)
	assert.Equal(t, &Config{
		Port:           "3000",
		Env:            "development",
		LogLevel:       "info",
		DataDir:        "./data",
		DBName:         "notesdb",
		SeedSampleData: true,
		CORSOrigins:    "*",
	}, cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATA_DIR", "/var/lib/notes")
	t.Setenv("DB_NAME", "work")
	t.Setenv("SEED_SAMPLE_DATA", "false")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/var/lib/notes", cfg.DataDir)
	assert.Equal(t, "work", cfg.DBName)
	assert.False(t, cfg.SeedSampleData)
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		want     bool
	}{
		{"Unset uses fallback", "", true, true},
		{"True", "1", false, true},
		{"False", "false", true, false},
		{"Garbage uses fallback", "maybe", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NOTES_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("NOTES_TEST_BOOL", tt.fallback))
		})
	}
}
