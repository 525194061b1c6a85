package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"path-mapper/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "catalog", cfg.Database.Name)
		assert.Equal(t, "mysql", cfg.Database.Driver)
		assert.Equal(t, 8, cfg.Identify.Workers)
		assert.Equal(t, "game", cfg.Identify.GamePrefix)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("IDENTIFY_WORKERS", "3")
		t.Setenv("DATABASE_DRIVER", "sqlite")
		t.Setenv("STORAGE_BUCKET", "ffxiv")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 3, cfg.Identify.Workers)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "ffxiv", cfg.Storage.Bucket)
	})

	t.Run("Env File", func(t *testing.T) {
		// Registers cleanup for the variable the .env file overloads.
		t.Setenv("IDENTIFY_OUTPUT", "")

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("IDENTIFY_OUTPUT=out.json\n"), 0o644))

		cfg, err := config.LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "out.json", cfg.Identify.Output)
	})
}
