package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "en-US", cfg.Format.Locale)
	assert.Equal(t, "UTC", cfg.Format.TimeZone)
	assert.Equal(t, ".", cfg.Settings.Dir)
	assert.Equal(t, 5, cfg.Database.TimeoutSeconds)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("FORMAT_LOCALE", "de-DE")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "de-DE", cfg.Format.Locale)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FORMAT_TIME_ZONE=Europe/Berlin\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FORMAT_TIME_ZONE") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", cfg.Format.TimeZone)
}

func TestFormatConfig(t *testing.T) {
	c := FormatConfig{Locale: "de-DE", DateLayout: "02.01.2006", TimeZone: "UTC"}

	tag, err := c.Language()
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("de-DE"), tag)

	f, err := c.DateFormat()
	require.NoError(t, err)
	assert.Equal(t, "02.01.2006", f.Layouts[0])
	assert.Equal(t, time.UTC, f.Location)

	_, err = FormatConfig{Locale: "??"}.Language()
	assert.Error(t, err)

	_, err = FormatConfig{TimeZone: "Mars/Olympus"}.DateFormat()
	assert.Error(t, err)
}
