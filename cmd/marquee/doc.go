// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package main is the entry point for the marquee command.
//
// Marquee picks a handful of movies for tonight from an IMDB-style catalogue,
// asking for a genre, minimum rating, release years, maximum runtime and a
// favourite actor. Each pick is annotated with its Academy Award record.
// After the list is shown the user can mark movies they have already seen
// and get fresh picks in their place.
//
// # Application Flow
//
//  1. Configuration: defaults, YAML file, .env, MARQUEE_* variables, flags (Koanf v2)
//  2. Logging: zerolog to stderr so prompts on stdout stay clean
//  3. Data: load and clean the movie and award CSV files
//  4. Session: prompt, rank, present, swap seen movies
//  5. Metrics: optional Prometheus textfile snapshot on exit
//
// # Example Usage
//
// Interactive:
//
//	marquee --movies IMDB-Movie-Data.csv --awards oscar_data.csv
//
// Batch, as JSON:
//
//	MARQUEE_GENRE=Comedy MARQUEE_MIN_RATING=7 marquee --batch --format json
//
// # Exit Codes
//
//   - 0: the session finished, including empty results and closed input
//   - 1: an input file is missing or unreadable, or output failed
//   - 2: the configuration or batch preferences are invalid
package main
