package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"GOSTEEL_CODE", "GOSTEEL_GRADE", "GOSTEEL_SECTION", "GOSTEEL_OUTPUT",
		"GOSTEEL_WORKERS", "GOSTEEL_LOG_LEVEL", "GOSTEEL_LOG_FORMAT", "GOSTEEL_PROJECT"} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())

	cfg := Load()
	assert.Equal(t, "egyptian", cfg.Code)
	assert.Equal(t, "St37", cfg.Grade)
	assert.Equal(t, "I-Beam", cfg.SectionType)
	assert.Equal(t, "human", cfg.Output)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Project)
	assert.NotEmpty(t, cfg.HistoryDB)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GOSTEEL_CODE", "american")
	t.Setenv("GOSTEEL_GRADE", "A572")
	t.Setenv("GOSTEEL_OUTPUT", "JSON")
	t.Setenv("GOSTEEL_WORKERS", "8")
	t.Setenv("GOSTEEL_PROJECT", "Warehouse")
	t.Setenv("GOSTEEL_HISTORY_DB", "/tmp/h.db")

	cfg := Load()
	assert.Equal(t, "american", cfg.Code)
	assert.Equal(t, "A572", cfg.Grade)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "Warehouse", cfg.Project)
	assert.Equal(t, "/tmp/h.db", cfg.HistoryDB)
}

func TestGetEnvAsInt_Invalid(t *testing.T) {
	t.Setenv("GOSTEEL_WORKERS", "many")
	assert.Equal(t, 4, getEnvAsInt("GOSTEEL_WORKERS", 4))

	t.Setenv("GOSTEEL_WORKERS", "-2")
	assert.Equal(t, 4, getEnvAsInt("GOSTEEL_WORKERS", 4))
}
