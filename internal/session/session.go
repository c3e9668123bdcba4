// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/prefs"
	"github.com/tomtom215/marquee/internal/present"
	"github.com/tomtom215/marquee/internal/recommend"
)

// State is a step of the session state machine.
type State int

const (
	StateCollect State = iota
	StateRank
	StatePresent
	StateAskSeen
	StateDone
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StateCollect:
		return "collect"
	case StateRank:
		return "rank"
	case StatePresent:
		return "present"
	case StateAskSeen:
		return "ask_seen"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Outcome is how a session ended.
type Outcome string

const (
	// OutcomeAccepted means the user had seen none of the picks on screen.
	OutcomeAccepted Outcome = "accepted"
	// OutcomeExhausted means no unseen picks were left to show.
	OutcomeExhausted Outcome = "exhausted"
	// OutcomeInputClosed means input ended at a prompt.
	OutcomeInputClosed Outcome = "input_closed"
	// OutcomeBatch means a batch session presented its picks.
	OutcomeBatch Outcome = "batch"
)

// Options configures a Runner.
type Options struct {
	// Interactive prompts for preferences and seen movies when true.
	Interactive bool

	// Preferences are used as-is in batch mode.
	Preferences prefs.Preferences

	// Seen lists titles the user has already watched; they are skipped in
	// both modes.
	Seen []string
}

// Result summarizes a finished session.
type Result struct {
	ID          string
	Outcome     Outcome
	Preferences prefs.Preferences
	Final       []recommend.Pick
	Rounds      int // times the picks were presented
	Replaced    int
	Removed     int
}

// Runner runs sessions against one engine and domain.
type Runner struct {
	engine   *recommend.Engine
	domain   *prefs.Domain
	renderer present.Renderer
	in       io.Reader
	out      io.Writer
	logger   zerolog.Logger
	opts     Options
}

// New creates a Runner. in may be nil for batch sessions.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(engine *recommend.Engine, domain *prefs.Domain, renderer present.Renderer, in io.Reader, out io.Writer, logger zerolog.Logger, opts Options) *Runner {
	return &Runner{
		engine:   engine,
		domain:   domain,
		renderer: renderer,
		in:       in,
		out:      out,
		logger:   logger,
		opts:     opts,
	}
}

// run holds the state of one session.
type run struct {
	*Runner

	ctx     context.Context
	id      string
	logger  zerolog.Logger
	input   *bufio.Reader
	prefs   prefs.Preferences
	session *recommend.Session
	result  *Result
}

// Run executes one session. End of input at any prompt ends the session
// normally with OutcomeInputClosed. In batch mode an invalid configured
// preference returns an error wrapping prefs.ErrInvalidPreference.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	id := logging.NewSessionID()
	ctx = logging.ContextWithLogger(ctx, r.logger)
	ctx = logging.ContextWithSessionID(ctx, id)
	logger := logging.Ctx(ctx).With().Str("component", "session").Logger()

	s := &run{
		Runner: r,
		ctx:    ctx,
		id:     id,
		logger: logger,
		result: &Result{ID: id},
	}

	state := StateCollect
	for state != StateDone {
		if err := ctx.Err(); err != nil {
			return s.result, err
		}

		next, err := s.step(state)
		if err != nil {
			return s.result, err
		}
		logger.Debug().Stringer("from", state).Stringer("to", next).Msg("session transition")
		state = next
	}

	metrics.RecordSession(string(s.result.Outcome))
	logger.Info().
		Str("outcome", string(s.result.Outcome)).
		Int("rounds", s.result.Rounds).
		Int("replaced", s.result.Replaced).
		Int("removed", s.result.Removed).
		Msg("session finished")

	return s.result, nil
}

func (s *run) step(state State) (State, error) {
	switch state {
	case StateCollect:
		return s.collect()
	case StateRank:
		return s.rank()
	case StatePresent:
		return s.present()
	case StateAskSeen:
		return s.askSeen()
	default:
		return StateDone, fmt.Errorf("session: unexpected state %s", state)
	}
}

func (s *run) collect() (State, error) {
	if !s.opts.Interactive {
		p := s.opts.Preferences.Normalize(s.domain)
		if err := p.Validate(s.domain); err != nil {
			return StateDone, fmt.Errorf("batch preferences: %w", err)
		}
		s.prefs = p
		return StateRank, nil
	}

	collector := prefs.NewCollector(s.domain, s.in, s.out, *logging.Ctx(s.ctx))
	s.input = collector.Reader()

	p, err := collector.Collect(s.ctx)
	if errors.Is(err, prefs.ErrInputClosed) {
		return s.finish(OutcomeInputClosed), nil
	}
	if err != nil {
		return StateDone, fmt.Errorf("collect preferences: %w", err)
	}
	s.prefs = p
	return StateRank, nil
}

func (s *run) rank() (State, error) {
	ranking := s.engine.Rank(s.ctx, s.prefs)
	metrics.RecordRanking(ranking.Len(), ranking.Excluded(), ranking.Elapsed())

	s.result.Preferences = ranking.Preferences()
	s.session = s.engine.NewSession(ranking)

	if len(s.opts.Seen) > 0 {
		matched := s.session.SkipTitles(s.opts.Seen...)
		s.logger.Debug().Int("titles", len(s.opts.Seen)).Int("matched", matched).Msg("skipped configured seen titles")
	}

	return StatePresent, nil
}

func (s *run) present() (State, error) {
	s.result.Rounds++
	s.result.Final = s.session.Current()

	if err := s.renderer.Render(s.out, present.NewView(s.id, s.session)); err != nil {
		return StateDone, fmt.Errorf("render picks: %w", err)
	}

	switch {
	case !s.opts.Interactive:
		return s.finish(OutcomeBatch), nil
	case s.session.Exhausted():
		return s.finish(OutcomeExhausted), nil
	default:
		return StateAskSeen, nil
	}
}

// askSeen asks whether the user has seen any pick and, if so, which ones.
// It returns StatePresent once at least one slot changed.
func (s *run) askSeen() (State, error) {
	for {
		answer, err := s.prompt("Have you already seen any of these? (y/n): ")
		if errors.Is(err, prefs.ErrInputClosed) {
			return s.finish(OutcomeInputClosed), nil
		}
		if err != nil {
			return StateDone, err
		}

		switch strings.ToLower(answer) {
		case "n", "no":
			s.say("Enjoy the movie!")
			return s.finish(OutcomeAccepted), nil
		case "y", "yes":
		default:
			s.say("Please answer y or n.")
			continue
		}

		line, err := s.prompt("Which ones? Enter the numbers separated by commas: ")
		if errors.Is(err, prefs.ErrInputClosed) {
			return s.finish(OutcomeInputClosed), nil
		}
		if err != nil {
			return StateDone, err
		}

		slots, bad := ParseSlots(line)
		for _, b := range bad {
			s.say(fmt.Sprintf("Ignoring %q: not a number.", b))
		}
		if len(slots) == 0 {
			s.say("No movie numbers given.")
			continue
		}

		res := s.session.MarkSeen(slots...)
		metrics.RecordSeenSwaps(len(res.Replaced), len(res.Removed), len(res.Ignored))
		s.result.Replaced += len(res.Replaced)
		s.result.Removed += len(res.Removed)

		if err := s.renderer.RenderSeen(s.out, res); err != nil {
			return StateDone, fmt.Errorf("render seen: %w", err)
		}
		if s.session.Exhausted() {
			s.say("You have seen every movie that matches your preferences.")
			return s.finish(OutcomeExhausted), nil
		}
		if res.Changed() {
			return StatePresent, nil
		}
	}
}

func (s *run) finish(outcome Outcome) State {
	s.result.Outcome = outcome
	return StateDone
}

func (s *run) prompt(text string) (string, error) {
	if _, err := fmt.Fprint(s.out, text); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	return prefs.ReadLine(s.input)
}

func (s *run) say(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}

// ParseSlots splits a comma-separated answer into slot numbers. Entries that
// are not integers are returned in bad; empty entries are skipped.
func ParseSlots(line string) (slots []int, bad []string) {
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(part, "#"))
		if err != nil {
			bad = append(bad, part)
			continue
		}
		slots = append(slots, n)
	}
	return slots, bad
}
