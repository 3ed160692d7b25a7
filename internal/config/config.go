// ABOUTME: fittrack configuration management.
// ABOUTME: Handles settings and the factories for storage, preferences and workout sources.

package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/harperreed/fittrack/internal/client"
	"github.com/harperreed/fittrack/internal/prefs"
	"github.com/harperreed/fittrack/internal/source"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/joho/godotenv"
)

// Config stores fittrack configuration.
type Config struct {
	// DataDir is the root directory for data storage.
	// SQLite puts fittrack.db here and preferences live in prefs/.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/fittrack.
	DataDir string `json:"data_dir,omitempty"`

	// CatalogURL is the base URL of a remote exercise catalog serving GET /exercises.
	CatalogURL string `json:"catalog_url,omitempty"`

	// CatalogFile replaces the built-in static catalog with a YAML list of entries.
	CatalogFile string `json:"catalog_file,omitempty"`

	// MaxPageSize caps workout listings. Defaults to 50.
	MaxPageSize int `json:"max_page_size,omitempty"`

	// LogLevel is a logrus level name. Defaults to "info".
	LogLevel string `json:"log_level,omitempty"`

	// MetricsAddr enables a Prometheus endpoint for the MCP server, e.g. ":9090".
	MetricsAddr string `json:"metrics_addr,omitempty"`
}

// Keys lists the settable configuration keys.
var Keys = []string{"data_dir", "catalog_url", "catalog_file", "max_page_size", "log_level", "metrics_addr"}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetMaxPageSize returns the configured page cap, defaulting to 50.
func (c *Config) GetMaxPageSize() int {
	if c.MaxPageSize <= 0 {
		return source.DefaultMaxPageSize
	}
	return c.MaxPageSize
}

// GetLogLevel returns the configured log level, defaulting to "info".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

// DBPath returns the SQLite database location.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "fittrack.db")
}

// PrefsDir returns the preference store directory.
func (c *Config) PrefsDir() string {
	return filepath.Join(c.GetDataDir(), "prefs")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite repository in the data directory.
func (c *Config) OpenStorage() (*storage.DB, error) {
	return storage.Open(c.DBPath())
}

// OpenPreferences opens the badger preference store in the data directory.
func (c *Config) OpenPreferences() (*prefs.Store, error) {
	dir := c.PrefsDir()
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create preferences directory: %w", err)
	}
	return prefs.Open(dir)
}

// CatalogSource returns the remote catalog source, or nil when no URL is configured.
func (c *Config) CatalogSource() (*source.RemoteCatalogSource, error) {
	if c.CatalogURL == "" {
		return nil, nil
	}

	raw := c.CatalogURL
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse catalog_url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("parse catalog_url: unsupported scheme %q", base.Scheme)
	}
	return source.NewRemoteCatalogSource(client.NewClient(base, nil)), nil
}

// StaticCatalog returns the fallback catalog, loaded from CatalogFile when set.
func (c *Config) StaticCatalog() (*source.StaticCatalogSource, error) {
	if c.CatalogFile == "" {
		return source.NewStaticCatalogSource(nil), nil
	}
	return source.LoadStaticCatalog(ExpandPath(c.CatalogFile))
}

// Get returns the raw value of key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "data_dir":
		return c.DataDir, nil
	case "catalog_url":
		return c.CatalogURL, nil
	case "catalog_file":
		return c.CatalogFile, nil
	case "max_page_size":
		if c.MaxPageSize == 0 {
			return "", nil
		}
		return strconv.Itoa(c.MaxPageSize), nil
	case "log_level":
		return c.LogLevel, nil
	case "metrics_addr":
		return c.MetricsAddr, nil
	default:
		return "", fmt.Errorf("unknown config key: %q", key)
	}
}

// Set assigns key from its string form. An empty value resets the default.
func (c *Config) Set(key, value string) error {
	switch key {
	case "data_dir":
		c.DataDir = value
	case "catalog_url":
		c.CatalogURL = value
	case "catalog_file":
		c.CatalogFile = value
	case "max_page_size":
		if value == "" {
			c.MaxPageSize = 0
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("max_page_size must be a positive integer, got %q", value)
		}
		c.MaxPageSize = n
	case "log_level":
		c.LogLevel = value
	case "metrics_addr":
		c.MetricsAddr = value
	default:
		return fmt.Errorf("unknown config key: %q", key)
	}
	return nil
}

// envKeys maps environment variables to the config key they override.
var envKeys = map[string]string{
	"FITTRACK_DATA_DIR":      "data_dir",
	"FITTRACK_CATALOG_URL":   "catalog_url",
	"FITTRACK_CATALOG_FILE":  "catalog_file",
	"FITTRACK_MAX_PAGE_SIZE": "max_page_size",
	"FITTRACK_LOG_LEVEL":     "log_level",
	"FITTRACK_METRICS_ADDR":  "metrics_addr",
}

// GetEnvPath returns the optional .env file next to the config file.
func GetEnvPath() string {
	return filepath.Join(filepath.Dir(GetConfigPath()), ".env")
}

// ApplyEnv loads the .env file when present and applies FITTRACK_* overrides.
// Variables already set in the environment win over the .env file.
func (c *Config) ApplyEnv() error {
	envPath := GetEnvPath()
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	for env, key := range envKeys {
		value := os.Getenv(env)
		if value == "" {
			continue
		}
		if err := c.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fittrack", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
