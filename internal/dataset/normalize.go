// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CollapseSpaces trims s and folds internal whitespace runs to a single space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleCase returns s in English title case after collapsing whitespace.
// A new Caser is built per call because Casers are not safe for concurrent use.
func TitleCase(s string) string {
	s = CollapseSpaces(s)
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ToLower(s))
}

// CanonicalGenre returns the canonical spelling of a genre name.
func CanonicalGenre(g string) string {
	return TitleCase(g)
}

// SplitList splits a comma-separated cell, trimming each part and dropping empties.
func SplitList(cell string) []string {
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = CollapseSpaces(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseGenres turns a compound genre cell into a sorted set of canonical genres.
func ParseGenres(cell string) []string {
	seen := make(map[string]struct{})
	genres := make([]string, 0, 3)
	for _, g := range SplitList(cell) {
		g = CanonicalGenre(g)
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		genres = append(genres, g)
	}
	sort.Strings(genres)
	return genres
}

// NormalizeTitle returns the lookup form of a title: quotes stripped,
// whitespace collapsed, lower case.
func NormalizeTitle(title string) string {
	title = CollapseSpaces(title)
	title = strings.Trim(title, `"'`)
	return strings.ToLower(CollapseSpaces(title))
}

// TitleKey returns the identity key for a (title, year) pair.
func TitleKey(title string, year int) string {
	return fmt.Sprintf("%s|%d", NormalizeTitle(title), year)
}

// parseInt parses an integer cell, tolerating thousands separators and a
// trailing ".0" written by spreadsheet exports.
func parseInt(cell string) (int, error) {
	cell = strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	cell = strings.ReplaceAll(cell, "_", "")
	if cell == "" {
		return 0, strconv.ErrSyntax
	}
	if n, err := strconv.Atoi(cell); err == nil {
		return n, nil
	}
	f, err := parseFloat(cell)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, strconv.ErrSyntax
	}
	return int(f), nil
}

// parseFloat parses a float cell. NaN and infinities are rejected so every
// kept value orders and encodes normally.
func parseFloat(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}

// parseBool parses the award winner flag.
func parseBool(cell string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "true", "1", "yes", "y", "won", "winner":
		return true, nil
	case "false", "0", "no", "n", "nominated", "nominee":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognised winner flag %q", cell)
	}
}
