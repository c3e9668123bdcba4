// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package present renders recommendations for the terminal or as JSON.
// Renderers write only to the writer they are given.
package present

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/marquee/internal/awards"
	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/prefs"
	"github.com/tomtom215/marquee/internal/recommend"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by New for an unsupported format.
var ErrUnknownFormat = errors.New("unknown output format")

// View is everything a renderer needs for one screen of picks.
type View struct {
	SessionID   string
	Preferences prefs.Preferences
	Picks       []recommend.Pick
	K           int
	Ranked      int
	Excluded    int
	// ActorMatches counts ranked movies featuring the favourite actor.
	ActorMatches int
}

// Shortfall returns how many fewer than K picks the view holds.
//
//nolint:gocritic // hugeParam: value receiver keeps View immutable
func (v View) Shortfall() int {
	if n := v.K - len(v.Picks); n > 0 {
		return n
	}
	return 0
}

// NewView builds a View from the current state of a session.
func NewView(sessionID string, s *recommend.Session) View {
	r := s.Ranking()
	return View{
		SessionID:    sessionID,
		Preferences:  r.Preferences(),
		Picks:        s.Current(),
		K:            s.K(),
		Ranked:       r.Len(),
		Excluded:     r.Excluded(),
		ActorMatches: r.ActorMatches(),
	}
}

// Renderer writes picks and seen-swap outcomes.
type Renderer interface {
	// Render writes one screen of picks.
	Render(w io.Writer, v View) error

	// RenderSeen writes the outcome of marking picks as seen.
	RenderSeen(w io.Writer, res recommend.SeenResult) error
}

// New returns the renderer for format. idx may be nil when no award data
// was loaded.
func New(format string, idx *awards.Index) (Renderer, error) {
	if idx == nil {
		idx = awards.Build(nil)
	}
	switch strings.ToLower(format) {
	case "", FormatText:
		return &Text{awards: idx}, nil
	case FormatJSON:
		return &JSON{awards: idx, Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// featuredActor returns the cast member matching the favourite actor, or "".
//
//nolint:gocritic // hugeParam: value receiver keeps Movie immutable
func featuredActor(m dataset.Movie, favourite string) string {
	needle := strings.ToLower(dataset.CollapseSpaces(favourite))
	if needle == "" {
		return ""
	}
	for _, a := range m.Actors {
		if strings.Contains(strings.ToLower(a), needle) {
			return a
		}
	}
	return ""
}
