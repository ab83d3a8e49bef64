package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DefaultCatalogURL, cfg.Catalog.BaseURL)
	assert.Equal(t, "null", cfg.Catalog.Token)
	assert.Zero(t, cfg.Catalog.Timeout)
	assert.Equal(t, "2257", cfg.Watch.Term)
	assert.Equal(t, []string{"CSE 476"}, cfg.Watch.Classes)
	assert.Equal(t, []string{"88926"}, cfg.Watch.Whitelist)
	assert.Equal(t, 8, cfg.Watch.CheckIntervalMinutes)
	assert.Equal(t, 6, cfg.Watch.MaxNotificationsPerClass)
	assert.Equal(t, "monitor-data", cfg.Mongo.Database)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Heartbeat.Interval)
}

func TestLoadFromEnvFile(t *testing.T) {
	// Empty values keep godotenv from exporting the file into the process env.
	for _, key := range []string{"PORT", "CLASS_SEARCH_NAME", "WHITELIST", "CATALOG_TIMEOUT", "ENABLE_CACHE"} {
		t.Setenv(key, "")
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nCLASS_SEARCH_NAME=\"CSE 476, MAT 343\"\nWHITELIST=88926,12345\nCATALOG_TIMEOUT=5s\nENABLE_CACHE=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"CSE 476", "MAT 343"}, cfg.Watch.Classes)
	assert.Equal(t, []string{"88926", "12345"}, cfg.Watch.Whitelist)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.True(t, cfg.Cache.Enabled)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("TERM_NUMBER", "2261")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "2261", cfg.Watch.Term)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , ,b "))
}
