// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"time"

	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/prefs"
)

// Pick is a ranked movie with its score.
type Pick struct {
	// Movie is a copy of the catalogue row.
	Movie dataset.Movie `json:"movie"`

	// Score is the combined score (0-1, higher is better).
	Score float64 `json:"score"`

	// Breakdown holds the unweighted value (0-1) of each scored criterion.
	Breakdown map[string]float64 `json:"breakdown,omitempty"`

	// Rank is the 1-based position in the full ranking.
	Rank int `json:"rank"`

	// Slot is the 1-based display position; set by Session.Current.
	Slot int `json:"slot,omitempty"`

	// ActorMatch is true when the favourite actor appears in the cast.
	ActorMatch bool `json:"actor_match,omitempty"`
}

// Ranking is the ordered pool of movies that passed every hard constraint.
// It never changes after Engine.Rank returns.
type Ranking struct {
	prefs        prefs.Preferences
	picks        []Pick
	considered   int
	excluded     int
	actorMatches int
	elapsed      time.Duration
}

// Preferences returns the preferences the ranking was computed for.
func (r *Ranking) Preferences() prefs.Preferences {
	return r.prefs
}

// Len returns the number of ranked movies.
func (r *Ranking) Len() int {
	return len(r.picks)
}

// At returns a copy of the i-th ranked pick.
func (r *Ranking) At(i int) Pick {
	return r.picks[i].clone()
}

// Top returns copies of the first k picks.
func (r *Ranking) Top(k int) []Pick {
	if k > len(r.picks) {
		k = len(r.picks)
	}
	out := make([]Pick, k)
	for i := range out {
		out[i] = r.picks[i].clone()
	}
	return out
}

// Considered returns the number of catalogue rows that were scored.
func (r *Ranking) Considered() int {
	return r.considered
}

// Excluded returns the number of movies removed by hard constraints.
func (r *Ranking) Excluded() int {
	return r.excluded
}

// ActorMatches returns the number of ranked movies featuring the favourite actor.
func (r *Ranking) ActorMatches() int {
	return r.actorMatches
}

// Elapsed returns how long the ranking pass took.
func (r *Ranking) Elapsed() time.Duration {
	return r.elapsed
}

//nolint:gocritic // hugeParam: value receiver keeps Pick immutable
func (p Pick) clone() Pick {
	c := p
	c.Movie = dataset.CloneMovie(p.Movie)
	if p.Breakdown != nil {
		c.Breakdown = make(map[string]float64, len(p.Breakdown))
		for k, v := range p.Breakdown {
			c.Breakdown[k] = v
		}
	}
	return c
}

// Replacement records a seen slot that received a new movie.
type Replacement struct {
	Slot int           `json:"slot"`
	Seen dataset.Movie `json:"seen"`
	Next dataset.Movie `json:"next"`
}

// Removal records a seen slot that could not be refilled.
type Removal struct {
	Slot int           `json:"slot"`
	Seen dataset.Movie `json:"seen"`
}

// SeenResult is the outcome of one Session.MarkSeen call.
type SeenResult struct {
	Replaced []Replacement `json:"replaced,omitempty"`
	Removed  []Removal     `json:"removed,omitempty"`
	// Ignored lists slot numbers that were out of range or repeated.
	Ignored []int `json:"ignored,omitempty"`
}

// Changed reports whether any slot was replaced or removed.
//
//nolint:gocritic // hugeParam: value receiver is fine for a result value
func (r SeenResult) Changed() bool {
	return len(r.Replaced) > 0 || len(r.Removed) > 0
}
