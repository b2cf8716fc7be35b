package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunawell/nudge/pkg/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
database:
  dsn: file:test.db?mode=rwc

scheduler:
  startup_delay: 30s
  interval: 10m

defaults:
  tone: calm-minimal
  max_per_day: 2
  quiet_hours_start: 21
  quiet_hours_end: 8
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "file:test.db?mode=rwc", cfg.Database.DSN)
		assert.Equal(t, 30*time.Second, cfg.Scheduler.StartupDelay)
		assert.Equal(t, 10*time.Minute, cfg.Scheduler.Interval)
		assert.Equal(t, "calm-minimal", cfg.Defaults.Tone)
		assert.Equal(t, 2, cfg.Defaults.MaxPerDay)
		assert.Equal(t, 21, cfg.Defaults.QuietHoursStart)
		assert.Equal(t, 8, cfg.Defaults.QuietHoursEnd)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "{}"))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Contains(t, cfg.Database.DSN, "nudge.db")
		assert.Equal(t, 15*time.Second, cfg.Scheduler.StartupDelay)
		assert.Equal(t, 5*time.Minute, cfg.Scheduler.Interval)
		assert.Equal(t, "cute-soft", cfg.Defaults.Tone)
		assert.Equal(t, 3, cfg.Defaults.MaxPerDay)
		assert.Equal(t, 22, cfg.Defaults.QuietHoursStart)
		assert.Equal(t, 7, cfg.Defaults.QuietHoursEnd)
	})

	t.Run("environment variable expansion", func(t *testing.T) {
		t.Setenv("TEST_NUDGE_DSN", "file:env.db?mode=rwc")
		cfg, err := Load(writeConfig(t, "database:\n  dsn: ${TEST_NUDGE_DSN}\n"))
		require.NoError(t, err)
		assert.Equal(t, "file:env.db?mode=rwc", cfg.Database.DSN)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("does-not-exist.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "scheduler: [broken"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			"unknown tone",
			"defaults:\n  tone: shouty\n",
			"not a known tone mode",
		},
		{
			"max per day too high",
			"defaults:\n  max_per_day: 9\n",
			"max_per_day must be between 1 and 5",
		},
		{
			"quiet start out of range",
			"defaults:\n  quiet_hours_start: 25\n",
			"quiet_hours_start must be between 0 and 23",
		},
		{
			"interval too short",
			"scheduler:\n  interval: 100ms\n",
			"interval must be at least 1 second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDefaultsConfig_Preferences(t *testing.T) {
	d := DefaultsConfig{Tone: "affirmations", MaxPerDay: 4, QuietHoursStart: 23, QuietHoursEnd: 6}
	prefs := d.Preferences()

	assert.Equal(t, domain.ToneAffirmations, prefs.Tone)
	assert.Equal(t, 4, prefs.MaxPerDay)
	assert.Equal(t, 23, prefs.QuietStart)
	assert.Equal(t, 6, prefs.QuietEnd)
	assert.False(t, prefs.PausedForToday)
}
