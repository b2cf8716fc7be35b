package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		cfg := &Config{}
		cfg.Database.DSN = "file:test.db"
		cfg.Scheduler.Interval = 1
		cfg.Defaults.Tone = "cute-soft"

		assert.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
	})

	t.Run("missing dsn fails", func(t *testing.T) {
		cfg := &Config{}
		cfg.Scheduler.Interval = 1
		cfg.Defaults.Tone = "cute-soft"

		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.dsn")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}
