// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package prefs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/testinfra"
)

func sampleDomain(t *testing.T) *Domain {
	t.Helper()
	table, _, err := dataset.ReadMovies(strings.NewReader(testinfra.SampleMoviesCSV))
	if err != nil {
		t.Fatalf("ReadMovies() error = %v", err)
	}
	return NewDomain(table, DefaultMinRuntime)
}

func collectAnswers(t *testing.T, input string) (Preferences, string, error) {
	t.Helper()
	var out bytes.Buffer
	c := NewCollector(sampleDomain(t), strings.NewReader(input), &out, logging.Nop())
	p, err := c.Collect(context.Background())
	return p, out.String(), err
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestCollect_AllAnswered(t *testing.T) {
	p, _, err := collectAnswers(t, "comedy\n7\n2007\n2016\n120\nemma   STONE\n")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := Preferences{
		Genre:      "Comedy",
		MinRating:  floatPtr(7),
		MinYear:    intPtr(2007),
		MaxYear:    intPtr(2016),
		MaxRuntime: intPtr(120),
		Actor:      "Emma Stone",
	}
	if p.String() != want.String() {
		t.Errorf("Collect() = %s, want %s", p, want)
	}
}

func TestCollect_AllSkipped(t *testing.T) {
	p, out, err := collectAnswers(t, "\n\n\n\n\n\n")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if !p.IsEmpty() {
		t.Errorf("Collect() = %s, want empty", p)
	}
	for _, prompt := range []string{"Preferred genre", "Minimum rating 0-10", "Earliest release year 2007-2016",
		"Latest release year 2007-2016", "Maximum runtime", "Favourite actor"} {
		if !strings.Contains(out, prompt) {
			t.Errorf("output missing prompt %q", prompt)
		}
	}
}

func TestCollect_NegativeRuntimeReprompts(t *testing.T) {
	before := testutil.ToFloat64(metrics.PromptRetries.WithLabelValues(FieldRuntime))

	p, out, err := collectAnswers(t, "\n\n\n\n-5\n100\n\n")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if p.MaxRuntime == nil || *p.MaxRuntime != 100 {
		t.Errorf("MaxRuntime = %v, want 100", p.MaxRuntime)
	}
	if !strings.Contains(out, "Maximum runtime must be greater than or equal to 1.") {
		t.Errorf("output missing runtime message:\n%s", out)
	}
	if strings.Count(out, "Maximum runtime in minutes") != 2 {
		t.Errorf("runtime should be asked twice:\n%s", out)
	}
	if got := testutil.ToFloat64(metrics.PromptRetries.WithLabelValues(FieldRuntime)); got != before+1 {
		t.Errorf("runtime retries = %v, want %v", got, before+1)
	}
}

func TestCollect_GenreCompletion(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantGenre string
		wantOut   []string
	}{
		{
			name:      "unique prefix",
			input:     "sci\n\n\n\n\n\n",
			wantGenre: "Sci-Fi",
			wantOut:   []string{"Using genre Sci-Fi."},
		},
		{
			name:      "ambiguous prefix then exact",
			input:     "a\nDRAMA\n\n\n\n\n\n",
			wantGenre: "Drama",
			wantOut:   []string{`"a" matches several genres: Action, Adventure.`},
		},
		{
			name:      "unknown genre with list",
			input:     "horror\nmaybe\ny\nromance\n\n\n\n\n\n",
			wantGenre: "Romance",
			wantOut: []string{
				`Unknown genre "horror".`,
				"Please answer y or n.",
				"Available genres: Action, Adventure, Biography, Comedy, Drama, Music, Romance, Sci-Fi",
			},
		},
		{
			name:      "unknown genre without list",
			input:     "western\nn\n\n\n\n\n\n\n",
			wantGenre: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out, err := collectAnswers(t, tt.input)
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}
			if p.Genre != tt.wantGenre {
				t.Errorf("Genre = %q, want %q", p.Genre, tt.wantGenre)
			}
			for _, w := range tt.wantOut {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestCollect_RatingValidation(t *testing.T) {
	p, out, err := collectAnswers(t, "\n11\nabc\n8.5\n\n\n\n\n")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if p.MinRating == nil || *p.MinRating != 8.5 {
		t.Errorf("MinRating = %v, want 8.5", p.MinRating)
	}
	if !strings.Contains(out, "Minimum rating must be less than or equal to 10.") {
		t.Errorf("output missing range message:\n%s", out)
	}
	if !strings.Contains(out, "Please enter a number") {
		t.Errorf("output missing number message:\n%s", out)
	}
}

func TestCollect_YearRange(t *testing.T) {
	t.Run("outside dataset bounds", func(t *testing.T) {
		p, out, err := collectAnswers(t, "\n\n1999\n2008\n\n\n\n")
		if err != nil {
			t.Fatalf("Collect() error = %v", err)
		}
		if p.MinYear == nil || *p.MinYear != 2008 || p.MaxYear != nil {
			t.Errorf("years = %v, %v; want 2008, nil", p.MinYear, p.MaxYear)
		}
		if !strings.Contains(out, "Earliest year must be greater than or equal to 2007.") {
			t.Errorf("output missing bounds message:\n%s", out)
		}
	})

	t.Run("reversed range asks both again", func(t *testing.T) {
		p, out, err := collectAnswers(t, "\n\n2016\n2010\n2010\n2016\n\n\n")
		if err != nil {
			t.Fatalf("Collect() error = %v", err)
		}
		if *p.MinYear != 2010 || *p.MaxYear != 2016 {
			t.Errorf("years = %d-%d, want 2010-2016", *p.MinYear, *p.MaxYear)
		}
		if strings.Count(out, "Earliest release year") != 2 || strings.Count(out, "Latest release year") != 2 {
			t.Errorf("both years should be asked twice:\n%s", out)
		}
	})
}

func TestCollect_EndOfInput(t *testing.T) {
	_, _, err := collectAnswers(t, "comedy\n7\n")
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("error = %v, want ErrInputClosed", err)
	}
}

func TestCollect_FinalLineWithoutNewline(t *testing.T) {
	p, _, err := collectAnswers(t, "\n\n\n\n\ntom hanks")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if p.Actor != "Tom Hanks" {
		t.Errorf("Actor = %q, want Tom Hanks", p.Actor)
	}
}

func TestCollect_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCollector(sampleDomain(t), strings.NewReader("comedy\n"), &bytes.Buffer{}, logging.Nop())
	if _, err := c.Collect(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
