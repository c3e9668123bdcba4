// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagConfig          = "config"
	FlagMovies          = "movies"
	FlagAwards          = "awards"
	FlagFormat          = "format"
	FlagBatch           = "batch"
	FlagLogLevel        = "log-level"
	FlagLogFormat       = "log-format"
	FlagK               = "k"
	FlagSeen            = "seen"
	FlagMetricsTextfile = "metrics-textfile"
)

// flagKeys maps flag names to config keys. --config and --batch are
// handled separately.
var flagKeys = map[string]string{
	FlagMovies:          "data.movies_path",
	FlagAwards:          "data.awards_path",
	FlagFormat:          "output.format",
	FlagLogLevel:        "logging.level",
	FlagLogFormat:       "logging.format",
	FlagK:               "recommend.k",
	FlagSeen:            "session.seen",
	FlagMetricsTextfile: "metrics.textfile",
}

// RegisterFlags adds Marquee's flags to fs. The defaults shown in help come
// from the built-in configuration; only flags the user sets override the
// lower layers.
func RegisterFlags(fs *pflag.FlagSet) {
	d := defaultConfig()

	fs.String(FlagConfig, "", "path to a YAML config file (env "+ConfigPathEnvVar+")")
	fs.String(FlagMovies, d.Data.MoviesPath, "movie catalogue CSV")
	fs.String(FlagAwards, d.Data.AwardsPath, "Academy Awards CSV (empty disables award notes)")
	fs.String(FlagFormat, d.Output.Format, "output format: text or json")
	fs.Bool(FlagBatch, false, "do not prompt; use preferences from config and environment")
	fs.String(FlagLogLevel, d.Logging.Level, "log level: trace, debug, info, warn, error")
	fs.String(FlagLogFormat, d.Logging.Format, "log format: console or json")
	fs.Int(FlagK, d.Recommend.K, "number of recommendations to show (1-20)")
	fs.StringSlice(FlagSeen, nil, "titles already seen, comma-separated")
	fs.String(FlagMetricsTextfile, "", "write Prometheus metrics to this file on exit")
}

// flagTransformFunc maps a flag to its config key and value. Unknown flags
// return an empty key and are skipped.
func flagTransformFunc(fs *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		if f.Name == FlagBatch {
			batch, _ := fs.GetBool(FlagBatch)
			return "session.interactive", !batch
		}
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}
