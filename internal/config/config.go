// Package config loads defaults for the command line from the environment
// and an optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds defaults that command line flags override
type Config struct {
	Code        string
	Grade       string
	SectionType string
	Output      string // human, json or yaml
	Project     string
	Author      string
	HistoryDB   string
	Workers     int
	Logging     LoggerConfig
}

// LoggerConfig holds the logger settings
type LoggerConfig struct {
	Level  string
	Format string // text or json
}

// Load reads the .env file in the working directory, if any, and then the
// GOSTEEL_* environment variables. Variables already set in the
// environment win over the file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Code:        getEnv("GOSTEEL_CODE", "egyptian"),
		Grade:       getEnv("GOSTEEL_GRADE", "St37"),
		SectionType: getEnv("GOSTEEL_SECTION", "I-Beam"),
		Output:      strings.ToLower(getEnv("GOSTEEL_OUTPUT", "human")),
		Project:     getEnv("GOSTEEL_PROJECT", ""),
		Author:      getEnv("GOSTEEL_AUTHOR", ""),
		HistoryDB:   getEnv("GOSTEEL_HISTORY_DB", defaultHistoryDB()),
		Workers:     getEnvAsInt("GOSTEEL_WORKERS", 4),
		Logging: LoggerConfig{
			Level:  getEnv("GOSTEEL_LOG_LEVEL", "warn"),
			Format: getEnv("GOSTEEL_LOG_FORMAT", "text"),
		},
	}
}

func defaultHistoryDB() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gosteel-history.db"
	}
	return dir + string(os.PathSeparator) + "gosteel" + string(os.PathSeparator) + "history.db"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(name string, defaultValue int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil && value > 0 {
		return value
	}
	return defaultValue
}
