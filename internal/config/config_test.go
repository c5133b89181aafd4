package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 86400, cfg.Units.DaySeconds)
	assert.Equal(t, 3600, cfg.Units.HourSeconds)
	assert.Equal(t, 60, cfg.Units.MinuteSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)

	lengths := cfg.Units.Lengths()
	assert.Equal(t, 24*time.Hour, lengths.Day)
	assert.Equal(t, time.Hour, lengths.Hour)
	assert.Equal(t, time.Minute, lengths.Minute)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
units:
  day_seconds: 86400
  hour_seconds: 3600
  minute_seconds: 60
location: UTC
log:
  file: /tmp/calstep.log
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.Location)
	assert.Equal(t, "/tmp/calstep.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)

	loc, err := cfg.GetLocation()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "location: UTC\n")
	t.Setenv("CALSTEP_UNITS_HOUR_SECONDS", "1800")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1800, cfg.Units.HourSeconds)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Units:    UnitsConfig{DaySeconds: 86400, HourSeconds: 3600, MinuteSeconds: 60},
			Location: "UTC",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty location means local", func(c *Config) { c.Location = "" }, false},
		{"zero day", func(c *Config) { c.Units.DaySeconds = 0 }, true},
		{"negative hour", func(c *Config) { c.Units.HourSeconds = -1 }, true},
		{"zero minute", func(c *Config) { c.Units.MinuteSeconds = 0 }, true},
		{"unknown location", func(c *Config) { c.Location = "Mars/Olympus_Mons" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
