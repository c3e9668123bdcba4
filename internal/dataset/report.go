// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package dataset

import "sort"

// Drop reasons recorded in a LoadReport.
const (
	ReasonMissingField = "missing_field"
	ReasonBadNumber    = "bad_number"
	ReasonOutOfRange   = "out_of_range"
	ReasonNoGenre      = "no_genre"
	ReasonDuplicate    = "duplicate"
	ReasonBadFlag      = "bad_flag"
	ReasonShortRow     = "short_row"
)

// DroppedRow records a row discarded during cleaning.
type DroppedRow struct {
	// Line is the 1-based line number in the file (header is line 1).
	Line int `json:"line"`

	// Reason is one of the Reason* constants.
	Reason string `json:"reason"`

	// Detail names the offending field or value.
	Detail string `json:"detail,omitempty"`
}

// LoadReport summarises how a file was cleaned.
type LoadReport struct {
	Path     string       `json:"path"`
	Rows     int          `json:"rows"`
	Kept     int          `json:"kept"`
	Repaired int          `json:"repaired"`
	Dropped  []DroppedRow `json:"dropped,omitempty"`
}

// drop records a dropped row.
func (r *LoadReport) drop(line int, reason, detail string) {
	r.Dropped = append(r.Dropped, DroppedRow{Line: line, Reason: reason, Detail: detail})
}

// DropCounts returns the number of dropped rows per reason.
func (r *LoadReport) DropCounts() map[string]int {
	counts := make(map[string]int)
	for _, d := range r.Dropped {
		counts[d.Reason]++
	}
	return counts
}

// DropReasons returns the distinct drop reasons in sorted order.
func (r *LoadReport) DropReasons() []string {
	counts := r.DropCounts()
	reasons := make([]string, 0, len(counts))
	for reason := range counts {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	return reasons
}
