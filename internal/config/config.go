// Package config loads recipebox settings from defaults, an optional YAML
// file and RECIPEBOX_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hammamikhairi/recipebox/internal/mealdb"
	"github.com/hammamikhairi/recipebox/internal/steps"
)

// EnvPrefix prefixes every environment override, e.g. RECIPEBOX_API_BASE_URL.
const EnvPrefix = "RECIPEBOX"

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config represents the complete recipebox configuration
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Favorites FavoritesConfig `mapstructure:"favorites"`
	Steps     StepsConfig     `mapstructure:"steps"`
	Random    RandomConfig    `mapstructure:"random"`
	Log       LogConfig       `mapstructure:"log"`
}

// APIConfig controls the remote recipe API
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	// Offline skips the remote API and serves the sample recipes.
	Offline bool `mapstructure:"offline"`
}

// StorageConfig selects the key-value backend
type StorageConfig struct {
	// Driver is "memory" or "sqlite"
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// FavoritesConfig controls favorites persistence
type FavoritesConfig struct {
	Key string `mapstructure:"key"`
}

// StepsConfig holds the cooking-mode merge thresholds
type StepsConfig struct {
	MaxCombinedLength int `mapstructure:"max_combined_length"`
	MaxNoteLength     int `mapstructure:"max_note_length"`
}

// Limits converts the thresholds for the step optimizer.
func (c StepsConfig) Limits() steps.Limits {
	return steps.Limits{
		MaxCombinedLength: c.MaxCombinedLength,
		MaxNoteLength:     c.MaxNoteLength,
	}
}

// RandomConfig controls the random recipe feed
type RandomConfig struct {
	Count       int `mapstructure:"count"`
	Concurrency int `mapstructure:"concurrency"`
}

// LogConfig controls logging
type LogConfig struct {
	// Level is "off", "warn", "info" or "debug"
	Level string `mapstructure:"level"`
	// File receives JSON records in addition to the console; empty disables it.
	File string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: mealdb.DefaultBaseURL,
			Timeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Driver: DriverSQLite,
			Path:   filepath.Join(dataDir(), "recipebox.db"),
		},
		Favorites: FavoritesConfig{Key: "favorites"},
		Steps: StepsConfig{
			MaxCombinedLength: steps.DefaultMaxCombinedLength,
			MaxNoteLength:     steps.DefaultMaxNoteLength,
		},
		Random: RandomConfig{Count: 6, Concurrency: 4},
		Log:    LogConfig{Level: "warn"},
	}
}

func dataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "recipebox")
	}
	return ".recipebox"
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("api.offline", d.API.Offline)

	v.SetDefault("storage.driver", d.Storage.Driver)
	v.SetDefault("storage.path", d.Storage.Path)

	v.SetDefault("favorites.key", d.Favorites.Key)

	v.SetDefault("steps.max_combined_length", d.Steps.MaxCombinedLength)
	v.SetDefault("steps.max_note_length", d.Steps.MaxNoteLength)

	v.SetDefault("random.count", d.Random.Count)
	v.SetDefault("random.concurrency", d.Random.Concurrency)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Load reads the configuration. When path is empty, recipebox.yaml is
// looked up in the working directory and the user config directory; a
// missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("recipebox")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(dataDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the rest of the program cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if !c.API.Offline && c.API.BaseURL == "" {
		errs = append(errs, errors.New("api.base_url is required unless api.offline is set"))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout))
	}
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.Path == "" {
			errs = append(errs, errors.New("storage.path is required for the sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be %q or %q, got %q", DriverMemory, DriverSQLite, c.Storage.Driver))
	}
	if c.Favorites.Key == "" {
		errs = append(errs, errors.New("favorites.key must not be empty"))
	}
	if c.Steps.MaxCombinedLength < 1 || c.Steps.MaxNoteLength < 0 {
		errs = append(errs, fmt.Errorf("steps limits out of range: combined=%d note=%d",
			c.Steps.MaxCombinedLength, c.Steps.MaxNoteLength))
	}
	if c.Random.Count < 0 || c.Random.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("random.count must be >= 0 and random.concurrency >= 1"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
