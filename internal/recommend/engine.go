// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/prefs"
)

// ErrNoCatalogue is returned by NewEngine when no movie table is supplied.
var ErrNoCatalogue = errors.New("movie catalogue is required")

// Engine scores and ranks the movie catalogue against preferences.
// The catalogue and configuration are read-only after construction, so an
// Engine is safe for concurrent use.
type Engine struct {
	config   *Config
	weights  Weights
	table    *dataset.MovieTable
	maxVotes int
}

// NewEngine creates a new recommendation engine over table.
func NewEngine(table *dataset.MovieTable, cfg *Config) (*Engine, error) {
	if table == nil {
		return nil, ErrNoCatalogue
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg = cfg.Clone()
	return &Engine{
		config:   cfg,
		weights:  cfg.Weights.Normalize(),
		table:    table,
		maxVotes: table.MaxVotes(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Rank scores every movie against p and returns the movies that pass every
// hard constraint, best first. The catalogue is not modified. Logging goes
// to the logger carried by ctx.
//
//nolint:gocritic // hugeParam: p passed by value for immutability
func (e *Engine) Rank(ctx context.Context, p prefs.Preferences) *Ranking {
	start := time.Now()

	q := newQuery(p)
	r := &Ranking{prefs: p}

	e.table.Each(func(_ int, m dataset.Movie) {
		r.considered++

		breakdown, pass := e.evaluate(&m, q)
		if !pass {
			r.excluded++
			return
		}

		pick := Pick{
			Movie:     m,
			Score:     e.combine(breakdown),
			Breakdown: breakdown,
		}
		if q.actor != "" && breakdown[CriterionActor] == 1 {
			pick.ActorMatch = true
			r.actorMatches++
		}
		r.picks = append(r.picks, pick)
	})

	sortPicks(r.picks)
	for i := range r.picks {
		r.picks[i].Rank = i + 1
	}

	r.elapsed = time.Since(start)

	logging.Ctx(ctx).Debug().
		Str("component", "recommend").
		Str("preferences", p.String()).
		Int("considered", r.considered).
		Int("excluded", r.excluded).
		Int("ranked", len(r.picks)).
		Int("actor_matches", r.actorMatches).
		Dur("elapsed", r.elapsed).
		Msg("ranking complete")

	return r
}

// query is the preference set prepared for scoring.
type query struct {
	prefs  prefs.Preferences
	genre  string
	actor  string
	active []string
}

//nolint:gocritic // hugeParam: p passed by value for immutability
func newQuery(p prefs.Preferences) query {
	q := query{prefs: p, active: p.Active()}
	if p.Genre != "" {
		q.genre = dataset.CanonicalGenre(p.Genre)
	}
	if p.Actor != "" {
		q.actor = strings.ToLower(dataset.CollapseSpaces(p.Actor))
	}
	return q
}

// evaluate computes the per-criterion values for m and reports whether every
// hard constraint is fully met.
func (e *Engine) evaluate(m *dataset.Movie, q query) (map[string]float64, bool) {
	breakdown := make(map[string]float64, len(q.active)+1)

	for _, c := range q.active {
		v := e.criterion(c, m, q)
		if v < 1 && e.config.IsHard(c) {
			return nil, false
		}
		breakdown[c] = v
	}

	breakdown[CriterionQuality] = e.quality(m)
	return breakdown, true
}

func (e *Engine) criterion(name string, m *dataset.Movie, q query) float64 {
	p := q.prefs
	switch name {
	case CriterionGenre:
		return indicator(m.HasGenre(q.genre))
	case CriterionRating:
		return indicator(m.Rating >= *p.MinRating)
	case CriterionYear:
		inRange := (p.MinYear == nil || m.Year >= *p.MinYear) &&
			(p.MaxYear == nil || m.Year <= *p.MaxYear)
		return indicator(inRange)
	case CriterionRuntime:
		return e.runtimeScore(m.Runtime, *p.MaxRuntime)
	case CriterionActor:
		return indicator(hasActor(m.Actors, q.actor))
	default:
		return 0
	}
}

// runtimeScore is 1 within the limit and decays linearly to 0 over the
// configured tolerance.
func (e *Engine) runtimeScore(runtime, limit int) float64 {
	if runtime <= limit {
		return 1
	}
	tol := e.config.RuntimeTolerance
	over := runtime - limit
	if tol <= 0 || over >= tol {
		return 0
	}
	return 1 - float64(over)/float64(tol)
}

// quality blends rating with a log-scaled vote count.
func (e *Engine) quality(m *dataset.Movie) float64 {
	rating := m.Rating / 10

	votes := 0.0
	if e.maxVotes > 0 {
		votes = math.Log10(float64(m.Votes)+1) / math.Log10(float64(e.maxVotes)+1)
	}

	share := e.config.VoteShare
	return (1-share)*rating + share*votes
}

// criteriaOrder fixes the summation order so scores are bit-for-bit stable.
var criteriaOrder = []string{
	CriterionGenre, CriterionRating, CriterionYear,
	CriterionRuntime, CriterionActor, CriterionQuality,
}

// combine returns the weighted mean of the scored criteria.
func (e *Engine) combine(breakdown map[string]float64) float64 {
	weights := e.weights.ToMap()

	var sum, total float64
	for _, c := range criteriaOrder {
		v, ok := breakdown[c]
		if !ok {
			continue
		}
		w := weights[c]
		sum += w * v
		total += w
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// sortPicks orders by score, then rating, votes, title and year, giving a
// total order over distinct movies.
func sortPicks(picks []Pick) {
	sort.SliceStable(picks, func(i, j int) bool {
		a, b := &picks[i], &picks[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Movie.Rating != b.Movie.Rating {
			return a.Movie.Rating > b.Movie.Rating
		}
		if a.Movie.Votes != b.Movie.Votes {
			return a.Movie.Votes > b.Movie.Votes
		}
		if a.Movie.Title != b.Movie.Title {
			return a.Movie.Title < b.Movie.Title
		}
		return a.Movie.Year < b.Movie.Year
	})
}

func hasActor(actors []string, needle string) bool {
	for _, a := range actors {
		if strings.Contains(strings.ToLower(a), needle) {
			return true
		}
	}
	return false
}

func indicator(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
