// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package session

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/prefs"
	"github.com/tomtom215/marquee/internal/present"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/testinfra"
)

type fixture struct {
	engine *recommend.Engine
	domain *prefs.Domain
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	table, _, err := dataset.ReadMovies(strings.NewReader(testinfra.SampleMoviesCSV))
	if err != nil {
		t.Fatalf("ReadMovies() error = %v", err)
	}
	engine, err := recommend.NewEngine(table, nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return fixture{engine: engine, domain: prefs.NewDomain(table, prefs.DefaultMinRuntime)}
}

func (f fixture) runner(t *testing.T, format, input string, out *bytes.Buffer, opts Options) *Runner {
	t.Helper()

	renderer, err := present.New(format, nil)
	if err != nil {
		t.Fatalf("present.New() error = %v", err)
	}
	return New(f.engine, f.domain, renderer, strings.NewReader(input), out, logging.Nop(), opts)
}

func titles(picks []recommend.Pick) []string {
	out := make([]string, len(picks))
	for i, p := range picks {
		out[i] = p.Movie.Title
	}
	return out
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestRun_InteractiveSwaps(t *testing.T) {
	f := newFixture(t)

	input := strings.Join([]string{
		"comedy", "7", "2007", "2016", "", "",
		"y", "1",
		"maybe",
		"y", "1, x, 9",
		"n",
	}, "\n") + "\n"

	before := testutil.ToFloat64(metrics.SessionsTotal.WithLabelValues(string(OutcomeAccepted)))
	replacedBefore := testutil.ToFloat64(metrics.SeenSwaps.WithLabelValues("replaced"))

	var out bytes.Buffer
	res, err := f.runner(t, present.FormatText, input, &out, Options{Interactive: true}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Outcome != OutcomeAccepted {
		t.Errorf("Outcome = %s, want accepted", res.Outcome)
	}
	if res.ID == "" {
		t.Error("session ID should be set")
	}
	if res.Rounds != 3 || res.Replaced != 2 || res.Removed != 0 {
		t.Errorf("Rounds/Replaced/Removed = %d/%d/%d, want 3/2/0", res.Rounds, res.Replaced, res.Removed)
	}

	want := []string{"Superbad", "La La Land", "The Grand Budapest Hotel", "Deadpool", "The Hangover"}
	if got := titles(res.Final); !reflect.DeepEqual(got, want) {
		t.Errorf("Final = %v, want %v", got, want)
	}

	text := out.String()
	for _, msg := range []string{
		"Replaced #1 The Intouchables with Silver Linings Playbook.",
		"Please answer y or n.",
		`Ignoring "x": not a number.`,
		"Ignoring #9: not a listed movie number.",
		"Replaced #1 Silver Linings Playbook with Superbad.",
		"Enjoy the movie!",
	} {
		if !strings.Contains(text, msg) {
			t.Errorf("output missing %q:\n%s", msg, text)
		}
	}

	if got := testutil.ToFloat64(metrics.SessionsTotal.WithLabelValues(string(OutcomeAccepted))); got != before+1 {
		t.Errorf("sessions accepted = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(metrics.SeenSwaps.WithLabelValues("replaced")); got != replacedBefore+2 {
		t.Errorf("replaced swaps = %v, want %v", got, replacedBefore+2)
	}
}

func TestRun_Exhausted(t *testing.T) {
	f := newFixture(t)

	// Only The Intouchables is a comedy rated 8.5 or higher.
	input := "comedy\n8.5\n\n\n\n\ny\n1\n"

	var out bytes.Buffer
	res, err := f.runner(t, present.FormatText, input, &out, Options{Interactive: true}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Outcome != OutcomeExhausted {
		t.Errorf("Outcome = %s, want exhausted", res.Outcome)
	}
	if res.Removed != 1 {
		t.Errorf("Removed = %d, want 1", res.Removed)
	}
	if !strings.Contains(out.String(), "No more new recommendations to replace movie #1 (The Intouchables).") {
		t.Errorf("output missing exhaustion notice:\n%s", out.String())
	}
}

func TestRun_NoMatches(t *testing.T) {
	f := newFixture(t)

	// Nothing in the sample is a sci-fi movie under 100 minutes.
	input := "sci\n\n\n\n100\n\n"

	var out bytes.Buffer
	res, err := f.runner(t, present.FormatText, input, &out, Options{Interactive: true}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Outcome != OutcomeExhausted || len(res.Final) != 0 || res.Rounds != 1 {
		t.Errorf("res = %+v, want exhausted with no picks after one round", res)
	}
	if !strings.Contains(out.String(), "No movies matched your preferences") {
		t.Errorf("output missing empty-result message:\n%s", out.String())
	}
}

func TestRun_InputClosed(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name       string
		input      string
		wantRounds int
	}{
		{"during preferences", "comedy\n7\n", 0},
		{"at seen prompt", "comedy\n\n\n\n\n\n", 1},
		{"at slot prompt", "comedy\n\n\n\n\n\ny\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			res, err := f.runner(t, present.FormatText, tt.input, &out, Options{Interactive: true}).Run(context.Background())
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if res.Outcome != OutcomeInputClosed {
				t.Errorf("Outcome = %s, want input_closed", res.Outcome)
			}
			if res.Rounds != tt.wantRounds {
				t.Errorf("Rounds = %d, want %d", res.Rounds, tt.wantRounds)
			}
		})
	}
}

func TestRun_Batch(t *testing.T) {
	f := newFixture(t)

	opts := Options{
		Preferences: prefs.Preferences{
			Genre:     "comedy",
			MinRating: floatPtr(7),
			MinYear:   intPtr(2007),
			MaxYear:   intPtr(2016),
		},
		Seen: []string{"the  intouchables"},
	}

	var out bytes.Buffer
	res, err := f.runner(t, present.FormatJSON, "", &out, opts).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Outcome != OutcomeBatch || res.Rounds != 1 {
		t.Errorf("Outcome/Rounds = %s/%d, want batch/1", res.Outcome, res.Rounds)
	}
	if res.Preferences.Genre != "Comedy" {
		t.Errorf("Preferences.Genre = %q, want normalized Comedy", res.Preferences.Genre)
	}

	var doc present.Document
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if doc.SessionID != res.ID {
		t.Errorf("SessionID = %q, want %q", doc.SessionID, res.ID)
	}

	got := make([]string, len(doc.Picks))
	for i, p := range doc.Picks {
		got[i] = p.Title
	}
	want := []string{"Silver Linings Playbook", "La La Land", "The Grand Budapest Hotel", "Deadpool", "The Hangover"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("picks = %v, want %v", got, want)
	}
}

func TestRun_LogsCarrySessionID(t *testing.T) {
	prev := logging.GetLevel()
	logging.SetLevelString("debug")
	t.Cleanup(func() { logging.SetLevelString(prev.String()) })

	f := newFixture(t)
	renderer, err := present.New(present.FormatText, nil)
	if err != nil {
		t.Fatal(err)
	}

	var out, logs bytes.Buffer
	opts := Options{Preferences: prefs.Preferences{Genre: "Comedy"}}
	res, err := New(f.engine, f.domain, renderer, nil, &out, logging.NewTestLogger(&logs), opts).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected several log lines, got:\n%s", logs.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, `"session_id":"`+res.ID+`"`) {
			t.Errorf("log line without session_id: %s", line)
		}
	}
	for _, want := range []string{`"component":"session"`, `"component":"recommend"`, "ranking complete", "session finished"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs missing %s:\n%s", want, logs.String())
		}
	}
}

func TestRun_BatchInvalidPreferences(t *testing.T) {
	f := newFixture(t)

	opts := Options{Preferences: prefs.Preferences{Genre: "Horror", MaxRuntime: intPtr(-5)}}

	var out bytes.Buffer
	_, err := f.runner(t, present.FormatText, "", &out, opts).Run(context.Background())
	if !errors.Is(err, prefs.ErrInvalidPreference) {
		t.Fatalf("Run() error = %v, want ErrInvalidPreference", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be rendered on invalid preferences, got:\n%s", out.String())
	}
}

func TestRun_Cancelled(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := f.runner(t, present.FormatText, "", &out, Options{}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestParseSlots(t *testing.T) {
	tests := []struct {
		line      string
		wantSlots []int
		wantBad   []string
	}{
		{"1,3", []int{1, 3}, nil},
		{" 2 , #4 ,, ", []int{2, 4}, nil},
		{"one, 2", []int{2}, []string{"one"}},
		{"", nil, nil},
		{"1.5", nil, []string{"1.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			slots, bad := ParseSlots(tt.line)
			if !reflect.DeepEqual(slots, tt.wantSlots) || !reflect.DeepEqual(bad, tt.wantBad) {
				t.Errorf("ParseSlots(%q) = %v, %v; want %v, %v", tt.line, slots, bad, tt.wantSlots, tt.wantBad)
			}
		})
	}
}

func TestState_String(t *testing.T) {
	want := map[State]string{
		StateCollect: "collect",
		StateRank:    "rank",
		StatePresent: "present",
		StateAskSeen: "ask_seen",
		StateDone:    "done",
		State(99):    "unknown",
	}
	for s, name := range want {
		if got := s.String(); got != name {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, name)
		}
	}
}
