package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolkit/core/settings"
)

func write(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestLoad_EmptyDir(t *testing.T) {
	s, err := settings.Load(t.TempDir())
	require.NoError(t, err)

	_, ok := s.Get("missing.key")
	assert.False(t, ok)
	_, ok = s.ConnectionString("main")
	assert.False(t, ok)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "settings.yaml", "app:\n  title: Toolkit\nconnection_strings:\n  main: host=db user=app\n")

	s, err := settings.Load(dir)
	require.NoError(t, err)

	v, ok := s.Get("app.title")
	assert.True(t, ok)
	assert.Equal(t, "Toolkit", v)

	dsn, ok := s.ConnectionString("main")
	assert.True(t, ok)
	assert.Equal(t, "host=db user=app", dsn)
}

func TestLoad_DotEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "settings.yaml", "app:\n  title: FromFile\n")
	write(t, dir, ".env", "TOOLKIT_APP_TITLE=FromDotEnv\nTOOLKIT_CONNECTION_STRINGS_REPORTS=dsn-reports\nOTHER=ignored\n")

	s, err := settings.Load(dir)
	require.NoError(t, err)

	v, _ := s.Get("app.title")
	assert.Equal(t, "FromDotEnv", v)

	dsn, ok := s.ConnectionString("reports")
	assert.True(t, ok)
	assert.Equal(t, "dsn-reports", dsn)

	_, ok = s.Get("other")
	assert.False(t, ok)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "settings.yaml", "connection_strings:\n  main: from-file\n")
	t.Setenv("TOOLKIT_CONNECTION_STRINGS_MAIN", "from-env")

	s, err := settings.Load(dir)
	require.NoError(t, err)

	dsn, ok := s.ConnectionString("main")
	assert.True(t, ok)
	assert.Equal(t, "from-env", dsn)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "settings.yaml", "app: [unterminated\n")

	_, err := settings.Load(dir)
	assert.Error(t, err)
}

func TestStore_SetGet(t *testing.T) {
	s := settings.New()

	s.Set("feature.flag", "true")
	v, ok := s.Get("feature.flag")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	s.Set("Feature.Flag", "false")
	v, _ = s.Get("feature.flag")
	assert.Equal(t, "false", v, "keys are case-insensitive")

	assert.Contains(t, s.Keys(), "feature.flag")
}

func TestStore_SetOverridesFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "settings.yaml", "connection_strings:\n  main: from-file\n")

	s, err := settings.Load(dir)
	require.NoError(t, err)

	s.Set("connection_strings.main", "from-set")
	dsn, _ := s.ConnectionString("main")
	assert.Equal(t, "from-set", dsn)
}

func TestStore_Interfaces(t *testing.T) {
	var (
		_ settings.Getter            = settings.New()
		_ settings.Setter            = settings.New()
		_ settings.ConnectionStrings = settings.New()
	)
}

func TestStore_SaveReload(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "settings.yaml", "app:\n  title: Toolkit\n")

	s, err := settings.Load(dir)
	require.NoError(t, err)
	s.Set("connection_strings.archive", "dsn-archive")
	require.NoError(t, s.Save())

	reloaded, err := settings.Load(dir)
	require.NoError(t, err)

	v, _ := reloaded.Get("app.title")
	assert.Equal(t, "Toolkit", v)
	dsn, ok := reloaded.ConnectionString("archive")
	assert.True(t, ok)
	assert.Equal(t, "dsn-archive", dsn)
}

func TestLoad_DotEnvFlatAndNestedKeys(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, ".env", "TOOLKIT_API_KEY=from-dotenv\n")

	fromDotEnv, err := settings.Load(dir)
	require.NoError(t, err)
	for _, key := range []string{"api.key", "api_key"} {
		v, ok := fromDotEnv.Get(key)
		assert.True(t, ok, key)
		assert.Equal(t, "from-dotenv", v, key)
	}

	t.Setenv("TOOLKIT_API_KEY", "from-env")
	fromEnv, err := settings.Load(t.TempDir())
	require.NoError(t, err)
	for _, key := range []string{"api.key", "api_key"} {
		v, ok := fromEnv.Get(key)
		assert.True(t, ok, key)
		assert.Equal(t, "from-env", v, key)
	}
}
