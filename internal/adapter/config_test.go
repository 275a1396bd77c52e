package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644))
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := loadConfig(viper.New(), t.TempDir())
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Storage, cfg.Storage)
	assert.Equal(t, 5, cfg.Preferences.RecentNotes)
	assert.Equal(t, PageHome, cfg.Preferences.DefaultPage)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "pagemark.log", filepath.Base(cfg.Logging.File))
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
storage:
  backend: badger
  path: /tmp/pagemark-data
preferences:
  recent_notes: 3
logging:
  level: debug
`)

	cfg, err := loadConfig(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, "badger", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/pagemark-data", cfg.Storage.Path)
	assert.Equal(t, 3, cfg.Preferences.RecentNotes)
	assert.Equal(t, PageHome, cfg.Preferences.DefaultPage, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "preferences:\n  default_page: notes\n")
	t.Setenv("PAGEMARK_PREFERENCES_DEFAULT_PAGE", "stats")
	t.Setenv("PAGEMARK_PREFERENCES_RECENT_NOTES", "9")

	cfg, err := loadConfig(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, PageStats, cfg.Preferences.DefaultPage)
	assert.Equal(t, 9, cfg.Preferences.RecentNotes)
}

func TestLoadConfig_EmptyEnvSelectsMemoryStorage(t *testing.T) {
	t.Setenv("PAGEMARK_STORAGE_PATH", "")

	cfg, err := loadConfig(viper.New(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Storage.Path)
}

func TestLoadConfig_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	dir := t.TempDir()
	writeConfig(t, dir, "storage:\n  path: ~/books\n")

	cfg, err := loadConfig(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "books"), cfg.Storage.Path)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "storage: [unclosed\n")

	_, err := loadConfig(viper.New(), dir)
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	want := DefaultConfig()
	want.Storage.Backend = "badger"
	want.Preferences.RecentNotes = 7

	path, err := SaveConfig(want, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)

	got, err := loadConfig(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "x", "y"), ExpandPath("~/x/y"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "~user/x", ExpandPath("~user/x"))
	assert.Equal(t, "", ExpandPath(""))
}
