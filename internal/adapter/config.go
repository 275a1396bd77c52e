package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Page names accepted by preferences.default_page
const (
	PageHome    = "home"
	PageLibrary = "library"
	PageNotes   = "notes"
	PageStats   = "stats"
)

// Config holds all application configuration
type Config struct {
	Storage     StorageConfig     `mapstructure:"storage"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// StorageConfig selects where the library is kept
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // "bolt" or "badger"
	Path    string `mapstructure:"path"`    // Data directory; empty keeps everything in memory
}

// PreferencesConfig holds user preferences
type PreferencesConfig struct {
	RecentNotes int    `mapstructure:"recent_notes"` // Notes shown on the home page
	DefaultPage string `mapstructure:"default_page"` // Page shown at startup
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "bolt",
			Path:    defaultDataPath(),
		},
		Preferences: PreferencesConfig{
			RecentNotes: 5,
			DefaultPage: PageHome,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "pagemark.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "pagemark")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "pagemark")
	}
}

// DefaultConfigPath returns the default config directory for the current OS
func DefaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "pagemark")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "pagemark")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), DefaultConfigPath(), ".")
}

func loadConfig(v *viper.Viper, paths ...string) (*Config, error) {
	setDefaults(v, DefaultConfig())

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Environment variable overrides: PAGEMARK_STORAGE_PATH etc.
	// An empty value is honoured so storage can be forced into memory.
	v.SetEnvPrefix("PAGEMARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Storage.Path = ExpandPath(cfg.Storage.Path)
	cfg.Logging.File = ExpandPath(cfg.Logging.File)
	return cfg, nil
}

// setDefaults registers every key so env overrides apply without a config file
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("storage.backend", cfg.Storage.Backend)
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("preferences.recent_notes", cfg.Preferences.RecentNotes)
	v.SetDefault("preferences.default_page", cfg.Preferences.DefaultPage)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// SaveConfig writes cfg as config.yaml in dir, creating dir if needed.
// Returns the path written.
func SaveConfig(cfg *Config, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("storage.backend", cfg.Storage.Backend)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("preferences.recent_notes", cfg.Preferences.RecentNotes)
	v.Set("preferences.default_page", cfg.Preferences.DefaultPage)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configFile, nil
}

// ExpandPath replaces a leading ~ with the user's home directory
func ExpandPath(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
