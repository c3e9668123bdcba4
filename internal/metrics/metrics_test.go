// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDatasetLoad(t *testing.T) {
	tests := []struct {
		name     string
		dataset  string
		kept     int
		repaired int
		dropped  map[string]int
		err      error
	}{
		{
			name:     "clean movie load",
			dataset:  "test_movies_clean",
			kept:     1000,
			repaired: 3,
		},
		{
			name:    "load with drops",
			dataset: "test_movies_drops",
			kept:    990,
			dropped: map[string]int{"bad_number": 4, "duplicate": 6},
		},
		{
			name:    "failed load",
			dataset: "test_awards_failed",
			err:     errors.New("dataset file not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errBefore := testutil.ToFloat64(DatasetLoadErrors.WithLabelValues(tt.dataset))

			RecordDatasetLoad(tt.dataset, tt.kept, tt.repaired, tt.dropped, 5*time.Millisecond, tt.err)

			if got := testutil.ToFloat64(DatasetRowsLoaded.WithLabelValues(tt.dataset)); got != float64(tt.kept) {
				t.Errorf("rows loaded = %v, want %d", got, tt.kept)
			}
			if got := testutil.ToFloat64(DatasetRowsRepaired.WithLabelValues(tt.dataset)); got != float64(tt.repaired) {
				t.Errorf("rows repaired = %v, want %d", got, tt.repaired)
			}
			for reason, n := range tt.dropped {
				if got := testutil.ToFloat64(DatasetRowsDropped.WithLabelValues(tt.dataset, reason)); got != float64(n) {
					t.Errorf("rows dropped[%s] = %v, want %d", reason, got, n)
				}
			}

			wantErr := errBefore
			if tt.err != nil {
				wantErr++
			}
			if got := testutil.ToFloat64(DatasetLoadErrors.WithLabelValues(tt.dataset)); got != wantErr {
				t.Errorf("load errors = %v, want %v", got, wantErr)
			}
		})
	}
}

func TestRecordPromptRetry(t *testing.T) {
	before := testutil.ToFloat64(PromptRetries.WithLabelValues("runtime"))

	RecordPromptRetry("runtime")
	RecordPromptRetry("runtime")

	if got := testutil.ToFloat64(PromptRetries.WithLabelValues("runtime")); got != before+2 {
		t.Errorf("prompt retries = %v, want %v", got, before+2)
	}
}

func TestRecordPromptSkip(t *testing.T) {
	before := testutil.ToFloat64(PromptSkips.WithLabelValues("actor"))
	RecordPromptSkip("actor")
	if got := testutil.ToFloat64(PromptSkips.WithLabelValues("actor")); got != before+1 {
		t.Errorf("prompt skips = %v, want %v", got, before+1)
	}
}

func TestRecordRanking(t *testing.T) {
	before := testutil.ToFloat64(RankingsTotal)

	RecordRanking(7, 3, time.Millisecond)

	if got := testutil.ToFloat64(RankingsTotal); got != before+1 {
		t.Errorf("rankings = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(RankingCandidates); got != 7 {
		t.Errorf("candidates gauge = %v, want 7", got)
	}
	if got := testutil.ToFloat64(RankingExcluded); got != 3 {
		t.Errorf("excluded gauge = %v, want 3", got)
	}
}

func TestRecordSeenSwaps(t *testing.T) {
	replaced := testutil.ToFloat64(SeenSwaps.WithLabelValues("replaced"))
	removed := testutil.ToFloat64(SeenSwaps.WithLabelValues("removed"))
	ignored := testutil.ToFloat64(SeenSwaps.WithLabelValues("ignored"))

	RecordSeenSwaps(2, 1, 0)

	if got := testutil.ToFloat64(SeenSwaps.WithLabelValues("replaced")); got != replaced+2 {
		t.Errorf("replaced = %v, want %v", got, replaced+2)
	}
	if got := testutil.ToFloat64(SeenSwaps.WithLabelValues("removed")); got != removed+1 {
		t.Errorf("removed = %v, want %v", got, removed+1)
	}
	if got := testutil.ToFloat64(SeenSwaps.WithLabelValues("ignored")); got != ignored {
		t.Errorf("ignored = %v, want %v", got, ignored)
	}
}

func TestRecordSession(t *testing.T) {
	before := testutil.ToFloat64(SessionsTotal.WithLabelValues("accepted"))
	RecordSession("accepted")
	if got := testutil.ToFloat64(SessionsTotal.WithLabelValues("accepted")); got != before+1 {
		t.Errorf("sessions = %v, want %v", got, before+1)
	}
}

func TestWriteTextfile(t *testing.T) {
	RecordPromptRetry("genre")

	path := filepath.Join(t.TempDir(), "marquee.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `marquee_prompt_retries_total{field="genre"}`) {
		t.Errorf("textfile missing prompt retries sample:\n%s", data)
	}
}

func TestWriteTextfile_EmptyPath(t *testing.T) {
	if err := WriteTextfile(""); err != nil {
		t.Errorf("WriteTextfile(\"\") error = %v, want nil", err)
	}
}

func TestWriteTextfile_BadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "marquee.prom")
	if err := WriteTextfile(path); err == nil {
		t.Error("WriteTextfile() into a missing directory should fail")
	}
}
