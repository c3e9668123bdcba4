// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package dataset

import (
	"errors"
	"fmt"
	"io"
)

// Result is the outcome of one nomination.
type Result int

const (
	// ResultNominated means the film was nominated but did not win.
	ResultNominated Result = iota + 1
	// ResultWon means the film won the category.
	ResultWon
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case ResultNominated:
		return "nominated"
	case ResultWon:
		return "won"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Result) UnmarshalText(b []byte) error {
	switch string(b) {
	case "won":
		*r = ResultWon
	case "nominated":
		*r = ResultNominated
	default:
		return fmt.Errorf("unknown result %q", b)
	}
	return nil
}

// Award is one nomination row.
type Award struct {
	// Title is the film title as written in the award file.
	Title string `json:"title"`

	// Year is the film's release year (year_film).
	Year int `json:"year"`

	// Ceremony is the ceremony number, 0 when absent.
	Ceremony int `json:"ceremony,omitempty"`

	// CeremonyYear is the year the ceremony was held, 0 when absent.
	CeremonyYear int `json:"ceremony_year,omitempty"`

	// Category is the award category, e.g. "BEST PICTURE".
	Category string `json:"category"`

	// Nominee is the credited person or company, when present.
	Nominee string `json:"nominee,omitempty"`

	// Result is nominated or won.
	Result Result `json:"result"`
}

// Key returns the (title, year) identity key the award attaches to.
//
//nolint:gocritic // hugeParam: value receiver keeps Award immutable
func (a Award) Key() string {
	return TitleKey(a.Title, a.Year)
}

// AwardTable is the immutable list of cleaned award rows.
type AwardTable struct {
	awards []Award
}

// Len returns the number of award rows.
func (t *AwardTable) Len() int {
	return len(t.awards)
}

// At returns the i-th award row.
func (t *AwardTable) At(i int) Award {
	return t.awards[i]
}

// All returns a copy of every award row in load order.
func (t *AwardTable) All() []Award {
	return append([]Award(nil), t.awards...)
}

// LoadAwards reads and cleans the award file at path.
func LoadAwards(path string) (*AwardTable, *LoadReport, error) {
	f, err := openCSV(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	table, report, err := ReadAwards(f)
	if report != nil {
		report.Path = path
	}
	if err != nil {
		return nil, report, fmt.Errorf("load awards %s: %w", path, err)
	}
	return table, report, nil
}

// ReadAwards reads and cleans award CSV from r. Unlike movies, an award file
// with no usable rows is not an error; it yields an empty table.
func ReadAwards(r io.Reader) (*AwardTable, *LoadReport, error) {
	cr := newCSVReader(r)
	idx, err := readHeader(cr, awardColumns)
	if err != nil {
		return nil, nil, err
	}

	report := &LoadReport{}
	table := &AwardTable{}

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

		a, reason, detail, repaired := parseAward(idx, record)
		if reason != "" {
			report.drop(line, reason, detail)
			continue
		}

		report.Repaired += repaired
		table.awards = append(table.awards, a)
	}

	report.Kept = len(table.awards)
	return table, report, nil
}

func parseAward(idx headerIndex, record []string) (a Award, reason, detail string, repaired int) {
	if len(record) <= maxRequiredIndex(idx, awardColumns) {
		return a, ReasonShortRow, fmt.Sprintf("%d fields", len(record)), 0
	}

	a.Title = CollapseSpaces(idx.cell(record, colFilm))
	if a.Title == "" {
		return a, ReasonMissingField, colFilm, 0
	}

	a.Category = CollapseSpaces(idx.cell(record, colCategory))
	if a.Category == "" {
		return a, ReasonMissingField, colCategory, 0
	}

	var err error
	if a.Year, err = requiredInt(idx, record, colYearFilm); err != nil {
		return a, classify(err), colYearFilm, 0
	}
	if a.Year < MinReleaseYear || a.Year > MaxReleaseYear {
		return a, ReasonOutOfRange, colYearFilm, 0
	}

	won, err := parseBool(idx.cell(record, colWinner))
	if err != nil {
		return a, ReasonBadFlag, colWinner, 0
	}
	a.Result = ResultNominated
	if won {
		a.Result = ResultWon
	}

	a.Nominee = CollapseSpaces(idx.cell(record, colName))

	if idx.has(colCeremony) {
		if cell := idx.cell(record, colCeremony); cell != "" {
			if n, err := parseInt(cell); err == nil && n > 0 {
				a.Ceremony = n
			} else {
				repaired++
			}
		}
	}
	if idx.has(colYearCeremony) {
		if cell := idx.cell(record, colYearCeremony); cell != "" {
			if y, err := parseInt(cell); err == nil && y >= MinReleaseYear {
				a.CeremonyYear = y
			} else {
				repaired++
			}
		}
	}

	return a, "", "", repaired
}
