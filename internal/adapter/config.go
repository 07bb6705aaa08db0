package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const appName = "bookshelf"

// Font sizes accepted by the reader
const (
	FontSmall  = "small"
	FontMedium = "medium"
	FontLarge  = "large"
)

// Config holds all application configuration
type Config struct {
	Data        DataConfig        `mapstructure:"data"`
	Reader      ReaderConfig      `mapstructure:"reader"`
	Player      PlayerConfig      `mapstructure:"player"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// DataConfig controls where circulation state is persisted
type DataConfig struct {
	Dir     string `mapstructure:"dir"`     // Empty = memory only
	Profile string `mapstructure:"profile"` // Library name; each profile keeps separate state
}

// ReaderConfig holds reader modal preferences
type ReaderConfig struct {
	FontSize string `mapstructure:"font_size"` // "small", "medium", "large"
	Theme    string `mapstructure:"theme"`     // "light", "sepia", "dark"
}

// PlayerConfig holds audio player preferences
type PlayerConfig struct {
	SkipSeconds int `mapstructure:"skip_seconds"`
}

// PreferencesConfig holds the Settings toggles
type PreferencesConfig struct {
	Notifications    bool `mapstructure:"notifications"`
	DueDateReminders bool `mapstructure:"due_date_reminders"`
	NewReleaseAlerts bool `mapstructure:"new_release_alerts"`
	AutoDownload     bool `mapstructure:"auto_download"`
	OfflineReading   bool `mapstructure:"offline_reading"`
}

// CatalogConfig holds user-defined quick filters (name -> expression)
type CatalogConfig struct {
	Filters map[string]string `mapstructure:"filters"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:     defaultDataPath(),
			Profile: "Main Library",
		},
		Reader: ReaderConfig{
			FontSize: FontMedium,
			Theme:    "light",
		},
		Player: PlayerConfig{
			SkipSeconds: 15,
		},
		Preferences: PreferencesConfig{
			Notifications:    true,
			DueDateReminders: true,
			NewReleaseAlerts: false,
			AutoDownload:     false,
			OfflineReading:   true,
		},
		Catalog: CatalogConfig{
			Filters: map[string]string{},
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName, appName+".log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName, appName+".log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// defaultDataPath returns the default state directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), appName, "data")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName, "data")
	}
}

// LoadConfig loads configuration from the default locations and environment
func LoadConfig() (*Config, error) {
	return loadConfig(viper.GetViper(), defaultConfigPath(), ".")
}

func loadConfig(v *viper.Viper, paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Environment variable overrides (BOOKSHELF_DATA_DIR, BOOKSHELF_LOGGING_LEVEL, ...)
	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// bindEnvKeys registers every scalar key so AutomaticEnv applies during Unmarshal.
func bindEnvKeys(v *viper.Viper) {
	for _, key := range []string{
		"data.dir", "data.profile",
		"reader.font_size", "reader.theme",
		"player.skip_seconds",
		"logging.file", "logging.level",
	} {
		v.BindEnv(key)
	}
}

func (c *Config) normalize() {
	switch strings.ToLower(c.Reader.FontSize) {
	case FontSmall, FontMedium, FontLarge:
		c.Reader.FontSize = strings.ToLower(c.Reader.FontSize)
	default:
		c.Reader.FontSize = FontMedium
	}
	if c.Player.SkipSeconds <= 0 {
		c.Player.SkipSeconds = 15
	}
	if c.Catalog.Filters == nil {
		c.Catalog.Filters = map[string]string{}
	}
}

// SaveConfig saves the current configuration to the default location
func SaveConfig(cfg *Config) error {
	return saveConfig(viper.GetViper(), cfg, defaultConfigPath())
}

func saveConfig(v *viper.Viper, cfg *Config, configPath string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("data.dir", cfg.Data.Dir)
	v.Set("data.profile", cfg.Data.Profile)

	v.Set("reader.font_size", cfg.Reader.FontSize)
	v.Set("reader.theme", cfg.Reader.Theme)

	v.Set("player.skip_seconds", cfg.Player.SkipSeconds)

	v.Set("preferences.notifications", cfg.Preferences.Notifications)
	v.Set("preferences.due_date_reminders", cfg.Preferences.DueDateReminders)
	v.Set("preferences.new_release_alerts", cfg.Preferences.NewReleaseAlerts)
	v.Set("preferences.auto_download", cfg.Preferences.AutoDownload)
	v.Set("preferences.offline_reading", cfg.Preferences.OfflineReading)

	v.Set("catalog.filters", cfg.Catalog.Filters)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ClearData removes all persisted circulation state
func ClearData(cfg *Config) error {
	if cfg.Data.Dir == "" {
		return nil
	}
	if err := os.RemoveAll(cfg.Data.Dir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	return nil
}
