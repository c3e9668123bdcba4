// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package present

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/marquee/internal/awards"
	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/recommend"
)

// Text renders numbered plain-text lines.
type Text struct {
	awards *awards.Index
}

// Render writes a header, one line per pick and any shortfall notes.
//
//nolint:gocritic // hugeParam: View passed by value for immutability
func (t *Text) Render(w io.Writer, v View) error {
	bw := bufio.NewWriter(w)

	if len(v.Picks) == 0 {
		fmt.Fprintf(bw, "No movies matched your preferences (%s). Try relaxing a criterion.\n", v.Preferences)
		return bw.Flush()
	}

	fmt.Fprintf(bw, "Recommendations for %s:\n", v.Preferences)
	for _, p := range v.Picks {
		fmt.Fprintln(bw, t.Line(p, v.Preferences.Actor))
	}

	if n := len(v.Picks); v.Shortfall() > 0 {
		fmt.Fprintf(bw, "Only %d %s left that %s your preferences.\n", n, plural(n, "movie", "movies"), plural(n, "matches", "match"))
	}
	if v.Preferences.Actor != "" && v.ActorMatches == 0 {
		fmt.Fprintf(bw, "None of the matching movies feature %s.\n", v.Preferences.Actor)
	}

	return bw.Flush()
}

// Line formats one pick:
//
//	1. La La Land (2016) | Comedy, Drama, Music | 8.3★ | 128 min | Won: Actress In A Leading Role; Nominated: Best Picture (features Emma Stone)
//
//nolint:gocritic // hugeParam: Pick passed by value for immutability
func (t *Text) Line(p recommend.Pick, favourite string) string {
	m := p.Movie

	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s (%d) | %s | %.1f★ | %d min",
		p.Slot, m.Title, m.Year, strings.Join(m.Genres, ", "), m.Rating, m.Runtime)

	if note := awardNote(t.awards.Lookup(m.Title, m.Year)); note != "" {
		b.WriteString(" | ")
		b.WriteString(note)
	}

	if p.ActorMatch {
		if a := featuredActor(m, favourite); a != "" {
			fmt.Fprintf(&b, " (features %s)", a)
		}
	}

	return b.String()
}

// awardNote summarizes an annotation; empty when the film has no award rows.
//
//nolint:gocritic // hugeParam: Annotation passed by value for immutability
func awardNote(a awards.Annotation) string {
	if !a.Found {
		return ""
	}

	var parts []string
	if won := a.Categories(dataset.ResultWon); len(won) > 0 {
		parts = append(parts, "Won: "+joinCategories(won))
	}
	if nom := a.Categories(dataset.ResultNominated); len(nom) > 0 {
		parts = append(parts, "Nominated: "+joinCategories(nom))
	}
	return strings.Join(parts, "; ")
}

func joinCategories(cats []string) string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = dataset.TitleCase(c)
	}
	return strings.Join(out, ", ")
}

// RenderSeen reports each replaced, removed and ignored slot.
//
//nolint:gocritic // hugeParam: SeenResult passed by value for immutability
func (t *Text) RenderSeen(w io.Writer, res recommend.SeenResult) error {
	bw := bufio.NewWriter(w)

	for _, slot := range res.Ignored {
		fmt.Fprintf(bw, "Ignoring #%d: not a listed movie number.\n", slot)
	}
	for _, r := range res.Replaced {
		fmt.Fprintf(bw, "Replaced #%d %s with %s.\n", r.Slot, r.Seen.Title, r.Next.Title)
	}
	for _, r := range res.Removed {
		fmt.Fprintf(bw, "No more new recommendations to replace movie #%d (%s).\n", r.Slot, r.Seen.Title)
	}

	return bw.Flush()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
