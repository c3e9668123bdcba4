// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"fmt"

	"github.com/tomtom215/marquee/internal/prefs"
)

// Criterion names. The first five mirror the preference fields; quality is
// always scored.
const (
	CriterionGenre   = prefs.FieldGenre
	CriterionRating  = prefs.FieldRating
	CriterionYear    = prefs.FieldYear
	CriterionRuntime = prefs.FieldRuntime
	CriterionActor   = prefs.FieldActor
	CriterionQuality = "quality"
)

// MaxK is the largest accepted number of simultaneous picks.
const MaxK = 20

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the relative contribution of each criterion.
	// Weights are normalized at runtime, so they don't need to sum to 1.0.
	Weights Weights `json:"weights" koanf:"weights"`

	// HardConstraints lists criteria a movie must fully satisfy to be ranked.
	// Default: genre, rating, year, runtime.
	HardConstraints []string `json:"hard_constraints" koanf:"hard_constraints" validate:"dive,oneof=genre rating year runtime actor"`

	// K is the number of picks shown at once.
	// Default: 5.
	K int `json:"k" koanf:"k" validate:"gte=1,lte=20"`

	// RuntimeTolerance is how many minutes over the maximum runtime a movie may
	// run before its runtime score reaches zero. Only used when runtime is soft.
	// Default: 15.
	RuntimeTolerance int `json:"runtime_tolerance" koanf:"runtime_tolerance" validate:"gte=0"`

	// VoteShare is the share of the quality signal taken from vote count; the
	// rest comes from rating.
	// Default: 0.2.
	VoteShare float64 `json:"vote_share" koanf:"vote_share" validate:"gte=0,lte=1"`
}

// Weights defines the relative contribution of each criterion.
type Weights struct {
	Genre   float64 `json:"genre" koanf:"genre" validate:"gte=0"`
	Rating  float64 `json:"rating" koanf:"rating" validate:"gte=0"`
	Year    float64 `json:"year" koanf:"year" validate:"gte=0"`
	Runtime float64 `json:"runtime" koanf:"runtime" validate:"gte=0"`
	Actor   float64 `json:"actor" koanf:"actor" validate:"gte=0"`
	Quality float64 `json:"quality" koanf:"quality" validate:"gte=0"`
}

// Normalize returns a copy with weights normalized to sum to 1.0.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Normalize() Weights {
	sum := w.Genre + w.Rating + w.Year + w.Runtime + w.Actor + w.Quality

	if sum == 0 {
		const equalWeight = 1.0 / 6.0
		return Weights{
			Genre: equalWeight, Rating: equalWeight, Year: equalWeight,
			Runtime: equalWeight, Actor: equalWeight, Quality: equalWeight,
		}
	}

	return Weights{
		Genre:   w.Genre / sum,
		Rating:  w.Rating / sum,
		Year:    w.Year / sum,
		Runtime: w.Runtime / sum,
		Actor:   w.Actor / sum,
		Quality: w.Quality / sum,
	}
}

// ToMap returns the weights keyed by criterion name.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) ToMap() map[string]float64 {
	return map[string]float64{
		CriterionGenre:   w.Genre,
		CriterionRating:  w.Rating,
		CriterionYear:    w.Year,
		CriterionRuntime: w.Runtime,
		CriterionActor:   w.Actor,
		CriterionQuality: w.Quality,
	}
}

// DefaultConfig returns a Config whose hard constraints reproduce a plain
// filter on genre, rating, year and runtime, with a favourite actor lifting
// matching movies above all others.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Genre:   0.15,
			Rating:  0.10,
			Year:    0.10,
			Runtime: 0.10,
			Actor:   0.40,
			Quality: 0.15,
		},
		HardConstraints:  []string{CriterionGenre, CriterionRating, CriterionYear, CriterionRuntime},
		K:                5,
		RuntimeTolerance: 15,
		VoteShare:        0.2,
	}
}

var knownCriteria = map[string]struct{}{
	CriterionGenre:   {},
	CriterionRating:  {},
	CriterionYear:    {},
	CriterionRuntime: {},
	CriterionActor:   {},
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	w := c.Weights
	for name, v := range w.ToMap() {
		if v < 0 {
			return fmt.Errorf("weights.%s must be non-negative, got %f", name, v)
		}
	}

	for _, hc := range c.HardConstraints {
		if _, ok := knownCriteria[hc]; !ok {
			return fmt.Errorf("hard_constraints: unknown criterion %q", hc)
		}
	}

	if c.K < 1 || c.K > MaxK {
		return fmt.Errorf("k must be in [1, %d], got %d", MaxK, c.K)
	}
	if c.RuntimeTolerance < 0 {
		return fmt.Errorf("runtime_tolerance must be non-negative, got %d", c.RuntimeTolerance)
	}
	if c.VoteShare < 0 || c.VoteShare > 1 {
		return fmt.Errorf("vote_share must be in [0, 1], got %f", c.VoteShare)
	}

	return nil
}

// IsHard reports whether criterion is configured as a hard constraint.
func (c *Config) IsHard(criterion string) bool {
	for _, hc := range c.HardConstraints {
		if hc == criterion {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	return &Config{
		Weights:          c.Weights,
		HardConstraints:  append([]string(nil), c.HardConstraints...),
		K:                c.K,
		RuntimeTolerance: c.RuntimeTolerance,
		VoteShare:        c.VoteShare,
	}
}
