// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/tomtom215/marquee/internal/recommend"
)

// DefaultConfigPaths lists the paths searched for a config file when none is
// named. The first file found is used.
var DefaultConfigPaths = []string{
	"marquee.yaml",
	"marquee.yml",
}

const (
	// ConfigPathEnvVar overrides the config file path.
	ConfigPathEnvVar = "MARQUEE_CONFIG"

	// EnvPrefix is the prefix of every environment variable Marquee reads.
	EnvPrefix = "MARQUEE_"

	// DefaultEnvFile is loaded into the environment when it exists.
	DefaultEnvFile = ".env"
)

// Options controls where Load looks for configuration.
type Options struct {
	// Flags are parsed command-line flags registered with RegisterFlags.
	// Nil skips the flag layer.
	Flags *pflag.FlagSet

	// EnvFile is the dotenv file to load; empty uses DefaultEnvFile.
	EnvFile string
}

// defaultConfig returns a Config with every default set. These are applied
// first, then overridden by the config file, environment and flags.
func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			MoviesPath: "IMDB-Movie-Data.csv",
			AwardsPath: "oscar_data.csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Recommend: *recommend.DefaultConfig(),
		Prefs: PrefsConfig{
			MinRuntime: 1,
		},
		Session: SessionConfig{
			Interactive: true,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, the
// environment and command-line flags, then validates it.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// The dotenv file only seeds the process environment; variables that are
	// already set keep their value.
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	configPath, err := findConfigFile(opts.Flags)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, flagTransformFunc(opts.Flags)), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the config file to load: the --config flag, then
// MARQUEE_CONFIG, then the first of DefaultConfigPaths that exists. A named
// file that does not exist is an error; a missing default is not.
func findConfigFile(flags *pflag.FlagSet) (string, error) {
	named := ""
	if flags != nil {
		if f := flags.Lookup(FlagConfig); f != nil && f.Changed {
			named = f.Value.String()
		}
	}
	if named == "" {
		named = os.Getenv(ConfigPathEnvVar)
	}
	if named != "" {
		if _, err := os.Stat(named); err != nil {
			return "", fmt.Errorf("config file %s: %w", named, err)
		}
		return named, nil
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}

// sliceConfigPaths are keys that accept a comma-separated string from the
// environment.
var sliceConfigPaths = []string{
	"recommend.hard_constraints",
	"session.seen",
}

// processSliceFields converts comma-separated strings to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		strVal, ok := val.(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased variable names, without the MARQUEE_ prefix,
// to config keys.
var envMappings = map[string]string{
	"movies_path": "data.movies_path",
	"awards_path": "data.awards_path",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"output_format": "output.format",

	"k":                 "recommend.k",
	"hard_constraints":  "recommend.hard_constraints",
	"runtime_tolerance": "recommend.runtime_tolerance",
	"vote_share":        "recommend.vote_share",
	"weight_genre":      "recommend.weights.genre",
	"weight_rating":     "recommend.weights.rating",
	"weight_year":       "recommend.weights.year",
	"weight_runtime":    "recommend.weights.runtime",
	"weight_actor":      "recommend.weights.actor",
	"weight_quality":    "recommend.weights.quality",

	"min_runtime": "prefs.min_runtime",

	"interactive": "session.interactive",
	"seen":        "session.seen",
	"genre":       "session.preferences.genre",
	"min_rating":  "session.preferences.min_rating",
	"min_year":    "session.preferences.min_year",
	"max_year":    "session.preferences.max_year",
	"max_runtime": "session.preferences.max_runtime",
	"actor":       "session.preferences.actor",

	"metrics_textfile": "metrics.textfile",
}

// envTransformFunc maps MARQUEE_* variables to config keys. Unknown
// variables return "" and are ignored.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return envMappings[key]
}
