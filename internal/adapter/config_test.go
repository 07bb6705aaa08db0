package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := loadConfig(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Main Library", cfg.Data.Profile)
	assert.Equal(t, FontMedium, cfg.Reader.FontSize)
	assert.Equal(t, 15, cfg.Player.SkipSeconds)
	assert.True(t, cfg.Preferences.Notifications)
	assert.True(t, cfg.Preferences.OfflineReading)
	assert.False(t, cfg.Preferences.AutoDownload)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.NotNil(t, cfg.Catalog.Filters)
}

func Test_LoadConfig_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
data:
  dir: /tmp/shelf
  profile: Branch
reader:
  font_size: LARGE
player:
  skip_seconds: 30
preferences:
  auto_download: true
catalog:
  filters:
    short: "pages < 300"
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))

	cfg, err := loadConfig(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/shelf", cfg.Data.Dir)
	assert.Equal(t, "Branch", cfg.Data.Profile)
	assert.Equal(t, FontLarge, cfg.Reader.FontSize)
	assert.Equal(t, 30, cfg.Player.SkipSeconds)
	assert.True(t, cfg.Preferences.AutoDownload)
	assert.True(t, cfg.Preferences.Notifications)
	assert.Equal(t, map[string]string{"short": "pages < 300"}, cfg.Catalog.Filters)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func Test_LoadConfig_NormalizesBadValues(t *testing.T) {
	dir := t.TempDir()
	yaml := "reader:\n  font_size: huge\nplayer:\n  skip_seconds: -5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))

	cfg, err := loadConfig(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, FontMedium, cfg.Reader.FontSize)
	assert.Equal(t, 15, cfg.Player.SkipSeconds)
}

func Test_LoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("data: [unclosed"), 0600))

	_, err := loadConfig(viper.New(), dir)
	assert.Error(t, err)
}

func Test_LoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("BOOKSHELF_DATA_PROFILE", "Env Library")
	t.Setenv("BOOKSHELF_LOGGING_LEVEL", "WARN")

	cfg, err := loadConfig(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Env Library", cfg.Data.Profile)
	assert.Equal(t, "WARN", cfg.Logging.Level)
}

func Test_SaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Data.Profile = "Saved"
	cfg.Reader.FontSize = FontSmall
	cfg.Preferences.NewReleaseAlerts = true

	require.NoError(t, saveConfig(viper.New(), cfg, dir))
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	loaded, err := loadConfig(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, "Saved", loaded.Data.Profile)
	assert.Equal(t, FontSmall, loaded.Reader.FontSize)
	assert.True(t, loaded.Preferences.NewReleaseAlerts)
}

func Test_ClearData(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.MkdirAll(dir, 0755))

	require.NoError(t, ClearData(&Config{Data: DataConfig{Dir: dir}}))
	assert.NoDirExists(t, dir)

	require.NoError(t, ClearData(&Config{}))
}
