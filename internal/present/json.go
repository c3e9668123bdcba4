// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package present

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/awards"
	"github.com/tomtom215/marquee/internal/prefs"
	"github.com/tomtom215/marquee/internal/recommend"
)

// JSON renders one JSON document per call.
type JSON struct {
	awards *awards.Index

	// Indent is the per-level indent; empty writes compact JSON.
	Indent string
}

// Document is the JSON shape written by Render.
type Document struct {
	SessionID    string            `json:"session_id,omitempty"`
	Preferences  prefs.Preferences `json:"preferences"`
	Picks        []DocumentPick    `json:"picks"`
	K            int               `json:"k"`
	Shortfall    int               `json:"shortfall"`
	Ranked       int               `json:"ranked"`
	Excluded     int               `json:"excluded"`
	ActorMatches *int              `json:"actor_matches,omitempty"`
}

// DocumentPick is one pick with its award annotation.
type DocumentPick struct {
	Slot       int                `json:"slot"`
	Rank       int                `json:"rank"`
	Title      string             `json:"title"`
	Year       int                `json:"year"`
	Genres     []string           `json:"genres"`
	Rating     float64            `json:"rating"`
	Votes      int                `json:"votes"`
	Runtime    int                `json:"runtime"`
	Director   string             `json:"director,omitempty"`
	Actors     []string           `json:"actors,omitempty"`
	Score      float64            `json:"score"`
	Breakdown  map[string]float64 `json:"breakdown,omitempty"`
	Awards     awards.Annotation  `json:"awards"`
	FeaturedAs string             `json:"featured_actor,omitempty"`
}

// NewDocument builds the JSON document for v.
//
//nolint:gocritic // hugeParam: View passed by value for immutability
func (j *JSON) NewDocument(v View) Document {
	doc := Document{
		SessionID:   v.SessionID,
		Preferences: v.Preferences,
		Picks:       make([]DocumentPick, 0, len(v.Picks)),
		K:           v.K,
		Shortfall:   v.Shortfall(),
		Ranked:      v.Ranked,
		Excluded:    v.Excluded,
	}
	if v.Preferences.Actor != "" {
		n := v.ActorMatches
		doc.ActorMatches = &n
	}

	for _, p := range v.Picks {
		m := p.Movie
		dp := DocumentPick{
			Slot:      p.Slot,
			Rank:      p.Rank,
			Title:     m.Title,
			Year:      m.Year,
			Genres:    m.Genres,
			Rating:    m.Rating,
			Votes:     m.Votes,
			Runtime:   m.Runtime,
			Director:  m.Director,
			Actors:    m.Actors,
			Score:     p.Score,
			Breakdown: p.Breakdown,
			Awards:    j.awards.Lookup(m.Title, m.Year),
		}
		if p.ActorMatch {
			dp.FeaturedAs = featuredActor(m, v.Preferences.Actor)
		}
		doc.Picks = append(doc.Picks, dp)
	}

	return doc
}

// Render writes the document for v.
//
//nolint:gocritic // hugeParam: View passed by value for immutability
func (j *JSON) Render(w io.Writer, v View) error {
	return j.encode(w, j.NewDocument(v))
}

// RenderSeen writes the seen-swap outcome as {"seen": {...}}.
//
//nolint:gocritic // hugeParam: SeenResult passed by value for immutability
func (j *JSON) RenderSeen(w io.Writer, res recommend.SeenResult) error {
	return j.encode(w, struct {
		Seen recommend.SeenResult `json:"seen"`
	}{res})
}

func (j *JSON) encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
