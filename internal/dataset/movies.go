// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package dataset

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// Plausible release years. Rows outside are dropped as out of range.
const (
	MinReleaseYear = 1870
	MaxReleaseYear = 2100
)

// Movie is one cleaned row of the movie catalogue.
type Movie struct {
	// Rank is the position in the source list, 0 when absent.
	Rank int `json:"rank,omitempty"`

	// Title is the display title. Together with Year it identifies the movie.
	Title string `json:"title"`

	// Year is the release year.
	Year int `json:"year"`

	// Runtime is the running time in minutes.
	Runtime int `json:"runtime"`

	// Genres is the sorted, non-empty set of canonical genre names.
	Genres []string `json:"genres"`

	// Rating is the audience rating (0-10).
	Rating float64 `json:"rating"`

	// Votes is the number of ratings behind Rating.
	Votes int `json:"votes"`

	Director    string   `json:"director,omitempty"`
	Actors      []string `json:"actors,omitempty"`
	Description string   `json:"description,omitempty"`

	// Revenue is the box office gross in millions, nil when unknown.
	Revenue *float64 `json:"revenue,omitempty"`

	// Metascore is the critic score (0-100), nil when unknown.
	Metascore *int `json:"metascore,omitempty"`
}

// Key returns the identity key of the movie.
//
//nolint:gocritic // hugeParam: value receiver keeps Movie immutable
func (m Movie) Key() string {
	return TitleKey(m.Title, m.Year)
}

// HasGenre reports whether the movie carries genre (canonical spelling).
//
//nolint:gocritic // hugeParam: value receiver keeps Movie immutable
func (m Movie) HasGenre(genre string) bool {
	i := sort.SearchStrings(m.Genres, genre)
	return i < len(m.Genres) && m.Genres[i] == genre
}

// CloneMovie returns a deep copy of m.
//
//nolint:gocritic // hugeParam: value receiver keeps Movie immutable
func CloneMovie(m Movie) Movie {
	return m.clone()
}

// clone returns a deep copy so callers cannot reach the table's backing arrays.
//
//nolint:gocritic // hugeParam: value receiver keeps Movie immutable
func (m Movie) clone() Movie {
	c := m
	c.Genres = append([]string(nil), m.Genres...)
	if m.Actors != nil {
		c.Actors = append([]string(nil), m.Actors...)
	}
	if m.Revenue != nil {
		v := *m.Revenue
		c.Revenue = &v
	}
	if m.Metascore != nil {
		v := *m.Metascore
		c.Metascore = &v
	}
	return c
}

// MovieTable is the immutable, cleaned movie catalogue.
type MovieTable struct {
	movies []Movie

	genres  []string
	actors  []string
	minYear int
	maxYear int
	minRun  int
	maxRun  int
	maxVote int
}

// Len returns the number of movies.
func (t *MovieTable) Len() int {
	return len(t.movies)
}

// At returns a copy of the i-th movie.
func (t *MovieTable) At(i int) Movie {
	return t.movies[i].clone()
}

// All returns a copy of every movie in load order.
func (t *MovieTable) All() []Movie {
	out := make([]Movie, len(t.movies))
	for i := range t.movies {
		out[i] = t.movies[i].clone()
	}
	return out
}

// Each calls fn for every movie in load order. fn receives a copy.
func (t *MovieTable) Each(fn func(i int, m Movie)) {
	for i := range t.movies {
		fn(i, t.movies[i].clone())
	}
}

// Genres returns the sorted union of all genres.
func (t *MovieTable) Genres() []string {
	return append([]string(nil), t.genres...)
}

// Actors returns the sorted union of all actor names.
func (t *MovieTable) Actors() []string {
	return append([]string(nil), t.actors...)
}

// YearBounds returns the earliest and latest release year.
func (t *MovieTable) YearBounds() (minYear, maxYear int) {
	return t.minYear, t.maxYear
}

// RuntimeBounds returns the shortest and longest runtime.
func (t *MovieTable) RuntimeBounds() (minRuntime, maxRuntime int) {
	return t.minRun, t.maxRun
}

// MaxVotes returns the highest vote count in the table.
func (t *MovieTable) MaxVotes() int {
	return t.maxVote
}

// LoadMovies reads and cleans the movie file at path.
func LoadMovies(path string) (*MovieTable, *LoadReport, error) {
	f, err := openCSV(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	table, report, err := ReadMovies(f)
	if report != nil {
		report.Path = path
	}
	if err != nil {
		return nil, report, fmt.Errorf("load movies %s: %w", path, err)
	}
	return table, report, nil
}

// ReadMovies reads and cleans movie CSV from r.
func ReadMovies(r io.Reader) (*MovieTable, *LoadReport, error) {
	cr := newCSVReader(r)
	idx, err := readHeader(cr, movieColumns)
	if err != nil {
		return nil, nil, err
	}

	report := &LoadReport{}
	table := &MovieTable{}
	seen := make(map[string]struct{})

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		report.Rows++
		line, _ := cr.FieldPos(0)

		m, reason, detail, repaired := parseMovie(idx, record)
		if reason != "" {
			report.drop(line, reason, detail)
			continue
		}

		key := m.Key()
		if _, dup := seen[key]; dup {
			report.drop(line, ReasonDuplicate, m.Title)
			continue
		}
		seen[key] = struct{}{}

		report.Repaired += repaired
		table.movies = append(table.movies, m)
	}

	report.Kept = len(table.movies)
	if report.Kept == 0 {
		return nil, report, ErrNoRows
	}

	table.index()
	return table, report, nil
}

// parseMovie converts one record. A non-empty reason means the row is dropped.
func parseMovie(idx headerIndex, record []string) (m Movie, reason, detail string, repaired int) {
	if len(record) <= maxRequiredIndex(idx, movieColumns) {
		return m, ReasonShortRow, fmt.Sprintf("%d fields", len(record)), 0
	}

	m.Title = CollapseSpaces(idx.cell(record, colTitle))
	if m.Title == "" {
		return m, ReasonMissingField, colTitle, 0
	}

	genreCell := idx.cell(record, colGenre)
	if genreCell == "" {
		return m, ReasonMissingField, colGenre, 0
	}
	m.Genres = ParseGenres(genreCell)
	if len(m.Genres) == 0 {
		return m, ReasonNoGenre, genreCell, 0
	}

	var err error
	if m.Year, err = requiredInt(idx, record, colYear); err != nil {
		return m, classify(err), colYear, 0
	}
	if m.Year < MinReleaseYear || m.Year > MaxReleaseYear {
		return m, ReasonOutOfRange, colYear, 0
	}

	if m.Runtime, err = requiredInt(idx, record, colRuntime); err != nil {
		return m, classify(err), colRuntime, 0
	}
	if m.Runtime <= 0 {
		return m, ReasonOutOfRange, colRuntime, 0
	}

	ratingCell := idx.cell(record, colRating)
	if ratingCell == "" {
		return m, ReasonMissingField, colRating, 0
	}
	if m.Rating, err = parseFloat(ratingCell); err != nil {
		return m, ReasonBadNumber, colRating, 0
	}
	if m.Rating < 0 || m.Rating > 10 {
		return m, ReasonOutOfRange, colRating, 0
	}

	if m.Votes, err = requiredInt(idx, record, colVotes); err != nil {
		return m, classify(err), colVotes, 0
	}
	if m.Votes < 0 {
		return m, ReasonOutOfRange, colVotes, 0
	}

	m.Director = CollapseSpaces(idx.cell(record, colDirector))
	m.Description = CollapseSpaces(idx.cell(record, colDescription))
	if actors := SplitList(idx.cell(record, colActors)); len(actors) > 0 {
		m.Actors = actors
	}

	if cell := idx.cell(record, colRank); cell != "" {
		if rank, err := parseInt(cell); err == nil && rank > 0 {
			m.Rank = rank
		} else {
			repaired++
		}
	}
	if cell := idx.cell(record, colRevenue); cell != "" {
		if rev, err := parseFloat(cell); err == nil && rev >= 0 {
			m.Revenue = &rev
		} else {
			repaired++
		}
	}
	if cell := idx.cell(record, colMetascore); cell != "" {
		if ms, err := parseInt(cell); err == nil && ms >= 0 && ms <= 100 {
			m.Metascore = &ms
		} else {
			repaired++
		}
	}

	return m, "", "", repaired
}

// errMissing marks an empty required cell.
var errMissing = errors.New("missing value")

func requiredInt(idx headerIndex, record []string, key string) (int, error) {
	cell := idx.cell(record, key)
	if cell == "" {
		return 0, errMissing
	}
	return parseInt(cell)
}

func classify(err error) string {
	if errors.Is(err, errMissing) {
		return ReasonMissingField
	}
	return ReasonBadNumber
}

// maxRequiredIndex returns the highest record position any required column needs.
func maxRequiredIndex(idx headerIndex, cols []column) int {
	highest := -1
	for _, c := range cols {
		if !c.required {
			continue
		}
		if i, ok := idx[c.key]; ok && i > highest {
			highest = i
		}
	}
	return highest
}

// index computes the derived vocabularies and bounds.
func (t *MovieTable) index() {
	genres := make(map[string]struct{})
	actors := make(map[string]struct{})

	for i := range t.movies {
		m := &t.movies[i]
		for _, g := range m.Genres {
			genres[g] = struct{}{}
		}
		for _, a := range m.Actors {
			actors[a] = struct{}{}
		}

		if i == 0 || m.Year < t.minYear {
			t.minYear = m.Year
		}
		if i == 0 || m.Year > t.maxYear {
			t.maxYear = m.Year
		}
		if i == 0 || m.Runtime < t.minRun {
			t.minRun = m.Runtime
		}
		if i == 0 || m.Runtime > t.maxRun {
			t.maxRun = m.Runtime
		}
		if m.Votes > t.maxVote {
			t.maxVote = m.Votes
		}
	}

	t.genres = sortedKeys(genres)
	t.actors = sortedKeys(actors)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
