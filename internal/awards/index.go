// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package awards indexes Academy Award nominations by normalized film title
// and release year, and resolves the best status a film achieved.
//
// Lookups are exact on the normalized key: lower case, collapsed whitespace,
// surrounding quotes stripped. A film with no rows in the award file is
// reported as not found with status none; a lookup never fails.
package awards

import (
	"fmt"
	"sort"

	"github.com/tomtom215/marquee/internal/dataset"
)

// Status is the best award outcome for a film.
type Status int

const (
	// StatusNone means no nomination is recorded.
	StatusNone Status = iota
	// StatusNominated means at least one nomination and no win.
	StatusNominated
	// StatusWon means at least one win.
	StatusWon
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusNominated:
		return "nominated"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "won":
		*s = StatusWon
	case "nominated":
		*s = StatusNominated
	case "none", "":
		*s = StatusNone
	default:
		return fmt.Errorf("unknown award status %q", b)
	}
	return nil
}

// Entry is one nomination attached to a film.
type Entry struct {
	Category string         `json:"category"`
	Result   dataset.Result `json:"result"`
	Nominee  string         `json:"nominee,omitempty"`
	Ceremony int            `json:"ceremony,omitempty"`
}

// Won reports whether the nomination was a win.
func (e Entry) Won() bool {
	return e.Result == dataset.ResultWon
}

// Annotation is the award information for one (title, year) pair.
type Annotation struct {
	Status Status  `json:"status"`
	Awards []Entry `json:"awards,omitempty"`
	Found  bool    `json:"found"`
}

// Stats summarizes the index.
type Stats struct {
	Films     int `json:"films"`
	Won       int `json:"won"`
	Nominated int `json:"nominated"`
	Rows      int `json:"rows"`
}

// Index maps normalized (title, year) keys to their nominations.
type Index struct {
	byKey map[string]*Annotation
	rows  int
}

// Build indexes every row of table. A nil table yields an empty index.
func Build(table *dataset.AwardTable) *Index {
	idx := &Index{byKey: make(map[string]*Annotation)}
	if table == nil {
		return idx
	}

	for _, a := range table.All() {
		key := a.Key()
		ann, ok := idx.byKey[key]
		if !ok {
			ann = &Annotation{Found: true}
			idx.byKey[key] = ann
		}
		ann.Awards = append(ann.Awards, Entry{
			Category: a.Category,
			Result:   a.Result,
			Nominee:  a.Nominee,
			Ceremony: a.Ceremony,
		})
		idx.rows++
	}

	for _, ann := range idx.byKey {
		ann.Status = resolve(ann.Awards)
		sortEntries(ann.Awards)
	}

	return idx
}

// resolve returns the best status among entries: won beats nominated.
func resolve(entries []Entry) Status {
	best := StatusNone
	for _, e := range entries {
		switch {
		case e.Won():
			return StatusWon
		case e.Result == dataset.ResultNominated:
			best = StatusNominated
		}
	}
	return best
}

// sortEntries orders wins first, then category, then nominee.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Won() != b.Won() {
			return a.Won()
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Nominee < b.Nominee
	})
}

// Lookup returns the annotation for title and year. The returned value is a
// copy and may be modified by the caller.
func (idx *Index) Lookup(title string, year int) Annotation {
	ann, ok := idx.byKey[dataset.TitleKey(title, year)]
	if !ok {
		return Annotation{Status: StatusNone}
	}
	out := *ann
	out.Awards = append([]Entry(nil), ann.Awards...)
	return out
}

// Len returns the number of distinct films in the index.
func (idx *Index) Len() int {
	return len(idx.byKey)
}

// Stats returns counts of films by best status.
func (idx *Index) Stats() Stats {
	s := Stats{Films: len(idx.byKey), Rows: idx.rows}
	for _, ann := range idx.byKey {
		switch ann.Status {
		case StatusWon:
			s.Won++
		case StatusNominated:
			s.Nominated++
		}
	}
	return s
}

// Categories returns the categories of entries with the given result, in
// index order.
func (a Annotation) Categories(result dataset.Result) []string {
	var out []string
	for _, e := range a.Awards {
		if e.Result == result {
			out = append(out, e.Category)
		}
	}
	return out
}
