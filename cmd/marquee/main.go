// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/prefs"
	"github.com/tomtom215/marquee/internal/present"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/session"
)

// Exit codes.
const (
	exitOK     = 0
	exitLoad   = 1
	exitConfig = 2
)

const flagPrintConfig = "print-config"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
//
//nolint:gocyclo // Sequential setup steps
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("marquee", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	printConfig := fs.Bool(flagPrintConfig, false, "print the effective configuration as JSON and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}

	// Logging is not configured yet; errors before Init go to stderr as console lines.
	logging.Init(logging.Config{Level: "info", Format: "console", Timestamp: true, Output: stderr})

	cfg, err := config.Load(config.Options{Flags: fs})
	if err != nil {
		logging.Err(err).Msg("Failed to load configuration")
		return exitConfig
	}

	logOpts := cfg.LoggingOptions()
	logOpts.Output = stderr
	logging.Init(logOpts)

	code := runSession(cfg, *printConfig, stdin, stdout)

	if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		logging.Warn().Err(err).Str("path", cfg.Metrics.Textfile).Msg("Failed to write metrics textfile")
	} else if cfg.Metrics.Textfile != "" {
		logging.Debug().Str("path", cfg.Metrics.Textfile).Msg("Metrics textfile written")
	}

	return code
}

func runSession(cfg *config.Config, printConfig bool, stdin io.Reader, stdout io.Writer) int {
	if printConfig {
		b, err := cfg.JSON()
		if err != nil {
			logging.Err(err).Msg("Failed to encode configuration")
			return exitLoad
		}
		if _, err := fmt.Fprintln(stdout, string(b)); err != nil {
			return exitLoad
		}
		return exitOK
	}

	logging.Info().
		Str("movies", cfg.Data.MoviesPath).
		Str("awards", cfg.Data.AwardsPath).
		Str("format", cfg.Output.Format).
		Bool("interactive", cfg.Session.Interactive).
		Msg("Configuration loaded")

	cat, err := loadCatalogue(cfg.Data)
	if err != nil {
		logging.Err(err).Msg("Failed to load data")
		return exitLoad
	}

	engine, err := recommend.NewEngine(cat.movies, &cfg.Recommend)
	if err != nil {
		logging.Err(err).Msg("Failed to create recommendation engine")
		return exitConfig
	}

	renderer, err := present.New(cfg.Output.Format, cat.awards)
	if err != nil {
		logging.Err(err).Msg("Failed to create renderer")
		return exitConfig
	}

	runner := session.New(
		engine,
		prefs.NewDomain(cat.movies, cfg.Prefs.MinRuntime),
		renderer,
		stdin,
		stdout,
		logging.Logger(),
		session.Options{
			Interactive: cfg.Session.Interactive,
			Preferences: cfg.Session.Preferences,
			Seen:        cfg.Session.Seen,
		},
	)

	if _, err := runner.Run(context.Background()); err != nil {
		if errors.Is(err, prefs.ErrInvalidPreference) {
			logging.Err(err).Msg("Invalid batch preferences")
			return exitConfig
		}
		logging.Err(err).Msg("Session failed")
		return exitLoad
	}

	return exitOK
}
