// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/awards"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

// catalogue is the loaded input data.
type catalogue struct {
	movies *dataset.MovieTable
	awards *awards.Index
}

// loadCatalogue loads the movie file and, when a path is configured, the
// award file. Files are read fully and closed before returning.
func loadCatalogue(cfg config.DataConfig) (*catalogue, error) {
	logger := logging.WithComponent("dataset")

	start := time.Now()
	movies, report, err := dataset.LoadMovies(cfg.MoviesPath)
	recordLoad(logger, "movies", report, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	cat := &catalogue{movies: movies, awards: awards.Build(nil)}
	if cfg.AwardsPath == "" {
		logger.Info().Msg("No award file configured; award notes disabled")
		return cat, nil
	}

	start = time.Now()
	table, report, err := dataset.LoadAwards(cfg.AwardsPath)
	recordLoad(logger, "awards", report, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if table.Len() == 0 {
		logger.Warn().Str("path", cfg.AwardsPath).Msg("Award file has no usable rows; award notes disabled")
	}

	cat.awards = awards.Build(table)
	stats := cat.awards.Stats()
	logger.Debug().
		Int("films", stats.Films).
		Int("won", stats.Won).
		Int("nominated", stats.Nominated).
		Msg("Award index built")

	return cat, nil
}

// recordLoad logs the cleaning report and records load metrics. report may
// be nil when the file could not be opened.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func recordLoad(logger zerolog.Logger, name string, report *dataset.LoadReport, elapsed time.Duration, err error) {
	if report == nil {
		report = &dataset.LoadReport{}
	}
	counts := report.DropCounts()
	metrics.RecordDatasetLoad(name, report.Kept, report.Repaired, counts, elapsed, err)

	if err != nil {
		return
	}

	event := logger.Info().
		Str("dataset", name).
		Str("path", report.Path).
		Int("rows", report.Rows).
		Int("kept", report.Kept).
		Int("dropped", len(report.Dropped)).
		Int("repaired", report.Repaired).
		Dur("elapsed", elapsed)
	for _, reason := range report.DropReasons() {
		event = event.Int("dropped_"+reason, counts[reason])
	}
	event.Msg("Dataset loaded")

	for _, d := range report.Dropped {
		logger.Debug().
			Str("dataset", name).
			Int("line", d.Line).
			Str("reason", d.Reason).
			Str("detail", d.Detail).
			Msg("Row dropped")
	}
}
