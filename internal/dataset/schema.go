// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrFileNotFound is returned when an input file does not exist.
	ErrFileNotFound = errors.New("dataset file not found")

	// ErrSchema is returned when required columns are missing or the file is empty.
	ErrSchema = errors.New("dataset schema mismatch")

	// ErrMalformed is returned when the file is not parseable CSV.
	ErrMalformed = errors.New("dataset file is malformed")

	// ErrNoRows is returned when no movie row survives cleaning.
	ErrNoRows = errors.New("dataset has no usable rows")
)

// column describes one logical column and the header spellings accepted for it.
type column struct {
	key      string
	names    []string
	required bool
}

// Movie column keys.
const (
	colRank        = "rank"
	colTitle       = "title"
	colGenre       = "genre"
	colDescription = "description"
	colDirector    = "director"
	colActors      = "actors"
	colYear        = "year"
	colRuntime     = "runtime"
	colRating      = "rating"
	colVotes       = "votes"
	colRevenue     = "revenue"
	colMetascore   = "metascore"
)

var movieColumns = []column{
	{key: colTitle, names: []string{"title"}, required: true},
	{key: colGenre, names: []string{"genre", "genres"}, required: true},
	{key: colYear, names: []string{"year"}, required: true},
	{key: colRuntime, names: []string{"runtime (minutes)", "runtime"}, required: true},
	{key: colRating, names: []string{"rating"}, required: true},
	{key: colVotes, names: []string{"votes"}, required: true},
	{key: colRank, names: []string{"rank"}},
	{key: colDirector, names: []string{"director"}},
	{key: colActors, names: []string{"actors"}},
	{key: colDescription, names: []string{"description"}},
	{key: colRevenue, names: []string{"revenue (millions)", "revenue"}},
	{key: colMetascore, names: []string{"metascore"}},
}

// Award column keys.
const (
	colFilm         = "film"
	colYearFilm     = "year_film"
	colYearCeremony = "year_ceremony"
	colCeremony     = "ceremony"
	colCategory     = "category"
	colName         = "name"
	colWinner       = "winner"
)

var awardColumns = []column{
	{key: colFilm, names: []string{"film"}, required: true},
	{key: colYearFilm, names: []string{"year_film"}, required: true},
	{key: colCategory, names: []string{"category"}, required: true},
	{key: colWinner, names: []string{"winner"}, required: true},
	{key: colYearCeremony, names: []string{"year_ceremony"}},
	{key: colCeremony, names: []string{"ceremony"}},
	{key: colName, names: []string{"name"}},
}

// headerIndex maps column keys to their position in a record.
type headerIndex map[string]int

// cell returns the trimmed value of key in record, or "" when the column is
// absent or the record is short.
func (h headerIndex) cell(record []string, key string) string {
	i, ok := h[key]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// has reports whether the header carried key.
func (h headerIndex) has(key string) bool {
	_, ok := h[key]
	return ok
}

// normalizeHeader lower-cases a header cell and strips a UTF-8 BOM.
func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToLower(CollapseSpaces(name))
}

// openCSV opens path, mapping a missing file to ErrFileNotFound.
func openCSV(path string) (*os.File, error) {
	f, err := os.Open(path) //nolint:gosec // path is operator-supplied configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// newCSVReader returns a reader tolerant of ragged rows and stray quotes.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	return cr
}

// readHeader reads the first record and resolves cols against it.
func readHeader(cr *csv.Reader, cols []column) (headerIndex, error) {
	record, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file is empty", ErrSchema)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformed, err)
	}

	positions := make(map[string]int, len(record))
	for i, name := range record {
		n := normalizeHeader(name)
		if _, dup := positions[n]; !dup {
			positions[n] = i
		}
	}

	idx := make(headerIndex, len(cols))
	var missing []string
	for _, c := range cols {
		found := false
		for _, name := range c.names {
			if pos, ok := positions[name]; ok {
				idx[c.key] = pos
				found = true
				break
			}
		}
		if !found && c.required {
			missing = append(missing, c.names[0])
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrSchema, strings.Join(missing, ", "))
	}

	return idx, nil
}
