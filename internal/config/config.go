// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/prefs"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/validation"
)

// ErrInvalid is wrapped by every validation failure returned from Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all Marquee configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig
//  2. Config File: optional YAML file (--config, MARQUEE_CONFIG or ./marquee.yaml)
//  3. .env file: copied into the process environment when present
//  4. Environment Variables: MARQUEE_* keys, see envMappings
//  5. Command-line flags: only flags the user actually set
//
// Config is immutable after Load.
type Config struct {
	Data      DataConfig       `koanf:"data" json:"data"`
	Logging   LoggingConfig    `koanf:"logging" json:"logging"`
	Output    OutputConfig     `koanf:"output" json:"output"`
	Recommend recommend.Config `koanf:"recommend" json:"recommend"`
	Prefs     PrefsConfig      `koanf:"prefs" json:"prefs"`
	Session   SessionConfig    `koanf:"session" json:"session"`
	Metrics   MetricsConfig    `koanf:"metrics" json:"metrics"`
}

// DataConfig locates the input files.
type DataConfig struct {
	// MoviesPath is the movie catalogue CSV (IMDB layout).
	// Default: IMDB-Movie-Data.csv
	MoviesPath string `koanf:"movies_path" json:"movies_path" validate:"required"`

	// AwardsPath is the Academy Awards CSV. Empty disables award annotations.
	// Default: oscar_data.csv
	AwardsPath string `koanf:"awards_path" json:"awards_path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" json:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`

	// Format is the output format: json or console.
	// Console output goes to stderr so it never mixes with prompts.
	// Default: console
	Format string `koanf:"format" json:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller" json:"caller"`
}

// OutputConfig selects how recommendations are rendered.
type OutputConfig struct {
	// Format is text or json.
	// Default: text
	Format string `koanf:"format" json:"format" validate:"oneof=text json"`
}

// PrefsConfig tunes preference collection.
type PrefsConfig struct {
	// MinRuntime is the smallest accepted maximum-runtime answer in minutes.
	// Default: 1
	MinRuntime int `koanf:"min_runtime" json:"min_runtime" validate:"gte=1"`
}

// SessionConfig controls how a session runs.
type SessionConfig struct {
	// Interactive prompts for preferences and seen movies.
	// Default: true; --batch sets it to false.
	Interactive bool `koanf:"interactive" json:"interactive"`

	// Seen lists titles already watched. They are never recommended.
	Seen []string `koanf:"seen" json:"seen,omitempty"`

	// Preferences are used in batch mode instead of prompting.
	Preferences prefs.Preferences `koanf:"preferences" json:"preferences"`
}

// MetricsConfig controls the Prometheus textfile snapshot.
type MetricsConfig struct {
	// Textfile is written with every registered metric when the program
	// exits. Empty disables the snapshot.
	Textfile string `koanf:"textfile" json:"textfile,omitempty"`
}

// Validate checks every field and the cross-field rules that tags cannot
// express. All messages name the koanf key.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, verr.Error())
	}

	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("%w: recommend: %v", ErrInvalid, err)
	}

	p := c.Session.Preferences
	if p.MinYear != nil && p.MaxYear != nil && *p.MinYear > *p.MaxYear {
		return fmt.Errorf("%w: session.preferences: min_year %d is after max_year %d",
			ErrInvalid, *p.MinYear, *p.MaxYear)
	}
	if p.MaxRuntime != nil && *p.MaxRuntime < c.Prefs.MinRuntime {
		return fmt.Errorf("%w: session.preferences: max_runtime must be at least %d",
			ErrInvalid, c.Prefs.MinRuntime)
	}

	return nil
}

// LoggingOptions converts the logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Config {
	opts := logging.DefaultConfig()
	opts.Level = c.Logging.Level
	opts.Format = c.Logging.Format
	opts.Caller = c.Logging.Caller
	return opts
}

// JSON returns the effective configuration as indented JSON.
func (c *Config) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return b, nil
}
