package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	// Path is the SQLite file; relative paths resolve against the working directory.
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig controls the application log.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`

	// File receives log output. Empty disables logging.
	File string `mapstructure:"file" yaml:"file"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

const (
	defaultDatabasePath = "todo-app.db"
	defaultLogLevel     = "info"
)

// configDir returns ~/.config/todoapp, or "." when the home directory is unknown.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "todoapp")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/todoapp/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{Path: defaultDatabasePath},
		Log: LogConfig{
			Level: defaultLogLevel,
			File:  filepath.Join(configDir(), "todo.log"),
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// Environment variables prefixed TODO_ (TODO_DATABASE_PATH, TODO_LOG_LEVEL)
// override file values. If the file does not exist, defaults are used.
func LoadConfig(path string) (*AppConfig, error) {
	def := DefaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if strings.TrimSpace(cfg.Database.Path) == "" {
		cfg.Database.Path = def.Database.Path
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
