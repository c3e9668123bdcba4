// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package dataset loads the movie catalogue and the award history from CSV
// files into immutable in-memory tables.
//
// # Movie file
//
// The movie file follows the IMDB-Movie-Data layout. Header matching is
// case-insensitive and column order is free.
//
//	Required: Title, Genre, Year, Runtime (Minutes), Rating, Votes
//	Optional: Rank, Director, Actors, Description, Revenue (Millions), Metascore
//
// The Genre and Actors cells hold comma-separated lists. Genres are trimmed,
// title-cased and de-duplicated into a sorted set; a row whose genre set ends
// up empty is dropped.
//
// # Award file
//
// The award file follows the Academy Awards layout (one row per nomination).
//
//	Required: film, year_film, category, winner
//	Optional: year_ceremony, ceremony, name
//
// # Cleaning
//
// Rows missing a required value or failing numeric coercion are dropped and
// recorded in a LoadReport. Optional numeric fields that fail coercion are
// cleared and counted as repaired. A missing file, a missing required column
// or a file with no usable rows is a load error:
//
//	movies, report, err := dataset.LoadMovies("IMDB-Movie-Data.csv")
//	if errors.Is(err, dataset.ErrFileNotFound) {
//	    ...
//	}
//
// Tables are never modified after load. Accessors return copies.
package dataset
