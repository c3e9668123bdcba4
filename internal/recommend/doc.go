// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package recommend ranks the movie catalogue against a user's preferences.
//
// # Scoring
//
// Each criterion the user answered (genre, rating, year, runtime, actor)
// yields a value in [0, 1]; a quality signal built from rating and vote count
// is always added. Criteria listed in Config.HardConstraints must score 1 or
// the movie is excluded. The remaining movies are scored by the weighted mean
// of their criterion values, using Config.Weights normalized to sum to 1.
//
// Ranking is a total order: score, then rating, votes, title and year. The
// same catalogue and preferences always produce the same ranking.
//
// # Sessions
//
// A Session shows the top K picks of a Ranking and lets the user mark picks
// as already seen. A seen slot is refilled in place with the next unseen
// pick; when the pool runs dry the slot is dropped.
//
// # Usage
//
//	engine, err := recommend.NewEngine(table, recommend.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	ranking := engine.Rank(ctx, preferences)
//	session := engine.NewSession(ranking)
//	for _, pick := range session.Current() {
//	    fmt.Println(pick.Slot, pick.Movie.Title)
//	}
//	session.MarkSeen(2, 4)
//
// # Thread Safety
//
// Engine and Ranking are read-only after construction and safe for concurrent
// use. Session is not.
package recommend
