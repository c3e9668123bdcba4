// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package prefs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/validation"
)

// Rating scale bounds.
const (
	MinRatingBound = 0.0
	MaxRatingBound = 10.0
)

// Criterion field names, used in prompts, metrics labels and score breakdowns.
const (
	FieldGenre   = "genre"
	FieldRating  = "rating"
	FieldYear    = "year"
	FieldRuntime = "runtime"
	FieldActor   = "actor"
)

// ErrInvalidPreference is wrapped by every Preferences.Validate failure.
var ErrInvalidPreference = errors.New("invalid preference")

// Preferences is the user's stated criteria. A nil pointer or empty string
// means the criterion was skipped.
type Preferences struct {
	Genre      string   `json:"genre,omitempty" koanf:"genre"`
	MinRating  *float64 `json:"min_rating,omitempty" koanf:"min_rating"`
	MinYear    *int     `json:"min_year,omitempty" koanf:"min_year"`
	MaxYear    *int     `json:"max_year,omitempty" koanf:"max_year"`
	MaxRuntime *int     `json:"max_runtime,omitempty" koanf:"max_runtime"`
	Actor      string   `json:"actor,omitempty" koanf:"actor"`
}

// IsEmpty reports whether every criterion was skipped.
//
//nolint:gocritic // hugeParam: value receiver keeps Preferences immutable
func (p Preferences) IsEmpty() bool {
	return p.Genre == "" && p.MinRating == nil && p.MinYear == nil &&
		p.MaxYear == nil && p.MaxRuntime == nil && p.Actor == ""
}

// Active returns the names of the criteria that were not skipped.
//
//nolint:gocritic // hugeParam: value receiver keeps Preferences immutable
func (p Preferences) Active() []string {
	var out []string
	if p.Genre != "" {
		out = append(out, FieldGenre)
	}
	if p.MinRating != nil {
		out = append(out, FieldRating)
	}
	if p.MinYear != nil || p.MaxYear != nil {
		out = append(out, FieldYear)
	}
	if p.MaxRuntime != nil {
		out = append(out, FieldRuntime)
	}
	if p.Actor != "" {
		out = append(out, FieldActor)
	}
	return out
}

// Normalize returns a copy with the genre mapped to the domain's canonical
// spelling (exact or unique prefix) and the actor mapped to its cast spelling.
//
//nolint:gocritic // hugeParam: value receiver keeps Preferences immutable
func (p Preferences) Normalize(d *Domain) Preferences {
	out := p
	out.Genre = strings.TrimSpace(out.Genre)
	if out.Genre != "" && d != nil {
		if g, _, ok := d.vocabulary().Resolve(out.Genre); ok {
			out.Genre = g
		}
	}
	if d != nil {
		out.Actor = d.CanonicalActor(out.Actor)
	} else {
		out.Actor = dataset.TitleCase(out.Actor)
	}
	return out
}

// Validate checks every supplied criterion against the domain. All problems
// are reported together.
//
//nolint:gocritic // hugeParam: value receiver keeps Preferences immutable
func (p Preferences) Validate(d *Domain) error {
	var errs []error

	if p.Genre != "" {
		if _, ok := d.vocabulary().Lookup(p.Genre); !ok {
			errs = append(errs, fmt.Errorf("%w: unknown genre %q", ErrInvalidPreference, p.Genre))
		}
	}
	if p.MinRating != nil {
		errs = appendVar(errs, *p.MinRating, d.ratingTag(), "minimum rating")
	}
	if p.MinYear != nil {
		errs = appendVar(errs, *p.MinYear, d.yearTag(), "earliest year")
	}
	if p.MaxYear != nil {
		errs = appendVar(errs, *p.MaxYear, d.yearTag(), "latest year")
	}
	if p.MinYear != nil && p.MaxYear != nil && *p.MinYear > *p.MaxYear {
		errs = append(errs, fmt.Errorf("%w: earliest year %d is after latest year %d",
			ErrInvalidPreference, *p.MinYear, *p.MaxYear))
	}
	if p.MaxRuntime != nil {
		errs = appendVar(errs, *p.MaxRuntime, d.runtimeTag(), "maximum runtime")
	}

	return errors.Join(errs...)
}

func appendVar(errs []error, value interface{}, tag, field string) []error {
	if verr := validation.ValidateVar(value, tag, field); verr != nil {
		return append(errs, fmt.Errorf("%w: %s", ErrInvalidPreference, verr.Error()))
	}
	return errs
}

// String renders the preferences for logs and summaries.
//
//nolint:gocritic // hugeParam: value receiver keeps Preferences immutable
func (p Preferences) String() string {
	if p.IsEmpty() {
		return "any movie"
	}

	var parts []string
	if p.Genre != "" {
		parts = append(parts, "genre "+p.Genre)
	}
	if p.MinRating != nil {
		parts = append(parts, fmt.Sprintf("rating >= %.1f", *p.MinRating))
	}
	switch {
	case p.MinYear != nil && p.MaxYear != nil:
		parts = append(parts, fmt.Sprintf("released %d-%d", *p.MinYear, *p.MaxYear))
	case p.MinYear != nil:
		parts = append(parts, fmt.Sprintf("released %d or later", *p.MinYear))
	case p.MaxYear != nil:
		parts = append(parts, fmt.Sprintf("released %d or earlier", *p.MaxYear))
	}
	if p.MaxRuntime != nil {
		parts = append(parts, fmt.Sprintf("runtime <= %d min", *p.MaxRuntime))
	}
	if p.Actor != "" {
		parts = append(parts, "featuring "+p.Actor)
	}
	return strings.Join(parts, ", ")
}
