// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package prefs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tomtom215/marquee/internal/dataset"
)

// DefaultMinRuntime is the smallest accepted maximum-runtime answer.
const DefaultMinRuntime = 1

// Domain holds the values a preference may take, derived from the loaded catalogue.
type Domain struct {
	Genres     []string
	MinYear    int
	MaxYear    int
	MinRuntime int // smallest accepted maximum-runtime answer
	Actors     []string

	vocabOnce sync.Once
	vocab     *Vocabulary

	castOnce sync.Once
	cast     map[string]string
}

// NewDomain derives a Domain from table. minRuntime below 1 is raised to 1.
func NewDomain(table *dataset.MovieTable, minRuntime int) *Domain {
	if minRuntime < DefaultMinRuntime {
		minRuntime = DefaultMinRuntime
	}
	minYear, maxYear := table.YearBounds()
	return &Domain{
		Genres:     table.Genres(),
		MinYear:    minYear,
		MaxYear:    maxYear,
		MinRuntime: minRuntime,
		Actors:     table.Actors(),
	}
}

// CanonicalActor returns the catalogue's spelling of name when a cast member
// matches it ignoring case and spacing, and name title-cased otherwise.
func (d *Domain) CanonicalActor(name string) string {
	key := strings.ToLower(dataset.CollapseSpaces(name))
	if key == "" {
		return ""
	}
	d.castOnce.Do(func() {
		d.cast = make(map[string]string, len(d.Actors))
		for _, a := range d.Actors {
			d.cast[strings.ToLower(dataset.CollapseSpaces(a))] = a
		}
	})
	if a, ok := d.cast[key]; ok {
		return a
	}
	return dataset.TitleCase(name)
}

func (d *Domain) vocabulary() *Vocabulary {
	d.vocabOnce.Do(func() {
		d.vocab = NewVocabulary(d.Genres)
	})
	return d.vocab
}

func (d *Domain) ratingTag() string {
	return fmt.Sprintf("gte=%g,lte=%g", MinRatingBound, MaxRatingBound)
}

func (d *Domain) yearTag() string {
	return fmt.Sprintf("gte=%d,lte=%d", d.MinYear, d.MaxYear)
}

func (d *Domain) runtimeTag() string {
	minRuntime := d.MinRuntime
	if minRuntime < DefaultMinRuntime {
		minRuntime = DefaultMinRuntime
	}
	return fmt.Sprintf("gte=%d", minRuntime)
}
