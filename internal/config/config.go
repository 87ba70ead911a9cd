package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/flowboard/internal/config/colors"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendAzure  = "aztables"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Environment overrides
const (
	EnvStorage   = "FLOWBOARD_STORAGE"
	EnvDataDir   = "FLOWBOARD_DATA_DIR"
	EnvRedisAddr = "FLOWBOARD_REDIS_ADDR"
	EnvAzureConn = "FLOWBOARD_AZURE_CONNECTION_STRING"
	EnvThemeFile = "FLOWBOARD_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	Log         LogConfig          `yaml:"log"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects where the task slot lives
type StorageConfig struct {
	Backend       string      `yaml:"backend"`
	Path          string      `yaml:"path"` // sqlite database file or file-slot directory
	Key           string      `yaml:"key"`
	StrictRecords bool        `yaml:"strict_records"`
	Redis         RedisConfig `yaml:"redis"`
	Azure         AzureConfig `yaml:"azure"`
}

// RedisConfig holds connection settings for the redis backend
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// AzureConfig holds Azure Table Storage settings for the aztables backend
type AzureConfig struct {
	ConnectionString string `yaml:"connection_string"`
	Table            string `yaml:"table"`
	Partition        string `yaml:"partition"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Default returns a fully populated default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from FLOWBOARD_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return finish(&Config{})
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return finish(&Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return finish(&config)
}

// finish layers theme file, env overrides and defaults onto config, in that order
func finish(config *Config) (*Config, error) {
	loadThemeFile(config)
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate rejects settings no backend can serve
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendRedis, BackendAzure, BackendMemory, BackendNone:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Storage.Backend)
	}
	if c.Storage.Backend == BackendRedis && c.Storage.Redis.Addr == "" {
		return ErrMissingRedisAddr
	}
	if c.Storage.Backend == BackendAzure && c.Storage.Azure.ConnectionString == "" {
		return ErrMissingAzureConn
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "flowboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "flowboard", "config.yaml"), nil
}

// applyEnv overrides file values with FLOWBOARD_* variables
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvStorage); v != "" {
		c.Storage.Backend = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Storage.Redis.Addr = v
	}
	if v := os.Getenv(EnvAzureConn); v != "" {
		c.Storage.Azure.ConnectionString = v
	}
	if v := os.Getenv("FLOWBOARD_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FLOWBOARD_REDIS_DB %q: %w", v, err)
		}
		c.Storage.Redis.DB = db
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.Redis.Prefix == "" {
		c.Storage.Redis.Prefix = "flowboard:"
	}
	if c.Storage.Azure.Table == "" {
		c.Storage.Azure.Table = "flowboard"
	}
	if c.Storage.Azure.Partition == "" {
		c.Storage.Azure.Partition = "slots"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
