package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "127.0.0.1", cfg.Reference.Host)
	assert.Equal(t, "3306", cfg.Reference.Port)
	assert.Equal(t, "root", cfg.Reference.User)
	assert.Equal(t, "timecard", cfg.Reference.Name)
	assert.Equal(t, cfg.Reference, cfg.Candidate)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CANDIDATE_DB_HOST", "10.0.0.5")
	t.Setenv("CANDIDATE_DB_PORT", "3307")
	t.Setenv("CANDIDATE_DB_NAME", "timecard_recalc")

	cfg := Load()

	assert.Equal(t, "10.0.0.5", cfg.Candidate.Host)
	assert.Equal(t, "3307", cfg.Candidate.Port)
	assert.Equal(t, "timecard_recalc", cfg.Candidate.Name)
	// reference side keeps defaults
	assert.Equal(t, "127.0.0.1", cfg.Reference.Host)
}

func TestDSN(t *testing.T) {
	db := DB{Host: "10.0.0.5", Port: "3307", User: "verify", Password: "secret", Name: "timecard"}
	dsn := db.DSN()

	assert.Contains(t, dsn, "verify:secret@tcp(10.0.0.5:3307)/timecard")
}
