// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package prefs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/validation"
)

// ErrInputClosed is returned when input ends before a prompt is answered.
var ErrInputClosed = errors.New("input closed")

// Collector asks the user for each criterion in turn, re-prompting on
// invalid input until an answer is accepted or skipped.
type Collector struct {
	domain *Domain
	in     *bufio.Reader
	out    io.Writer
	logger zerolog.Logger
}

// NewCollector creates a Collector reading answers from in and writing
// prompts to out.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCollector(d *Domain, in io.Reader, out io.Writer, logger zerolog.Logger) *Collector {
	return &Collector{
		domain: d,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger.With().Str("component", "prefs").Logger(),
	}
}

// Reader returns the buffered input so later prompts share its buffer.
func (c *Collector) Reader() *bufio.Reader {
	return c.in
}

// Collect runs the prompts in order: genre, minimum rating, earliest year,
// latest year, maximum runtime, favourite actor.
func (c *Collector) Collect(ctx context.Context) (Preferences, error) {
	var p Preferences

	steps := []func() error{
		func() (err error) { p.Genre, err = c.askGenre(); return err },
		func() (err error) { p.MinRating, err = c.askRating(); return err },
		func() (err error) { p.MinYear, p.MaxYear, err = c.askYears(); return err },
		func() (err error) { p.MaxRuntime, err = c.askRuntime(); return err },
		func() (err error) { p.Actor, err = c.askActor(); return err },
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return Preferences{}, err
		}
		if err := step(); err != nil {
			return Preferences{}, err
		}
	}

	c.logger.Debug().
		Strs("criteria", p.Active()).
		Str("preferences", p.String()).
		Msg("preferences collected")

	return p, nil
}

// prompt writes text and reads one trimmed line. A final line without a
// newline is returned; a read at end of input returns ErrInputClosed.
func (c *Collector) prompt(text string) (string, error) {
	if _, err := fmt.Fprint(c.out, text); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	return ReadLine(c.in)
}

// ReadLine reads one trimmed line from r.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// retry reports an invalid answer and counts the re-prompt.
func (c *Collector) retry(field, message string) {
	metrics.RecordPromptRetry(field)
	c.logger.Debug().Str("field", field).Str("reason", message).Msg("re-prompting")
	_, _ = fmt.Fprintf(c.out, "%s\n", message)
}

func (c *Collector) skip(field string) {
	metrics.RecordPromptSkip(field)
}

func (c *Collector) askGenre() (string, error) {
	vocab := c.domain.vocabulary()

	for {
		answer, err := c.prompt("Preferred genre (Enter to skip): ")
		if err != nil {
			return "", err
		}
		if answer == "" {
			c.skip(FieldGenre)
			return "", nil
		}

		genre, candidates, ok := vocab.Resolve(answer)
		if ok {
			if !strings.EqualFold(genre, answer) {
				_, _ = fmt.Fprintf(c.out, "Using genre %s.\n", genre)
			}
			return genre, nil
		}

		if len(candidates) > 0 {
			c.retry(FieldGenre, fmt.Sprintf("%q matches several genres: %s.", answer, strings.Join(candidates, ", ")))
			continue
		}

		c.retry(FieldGenre, fmt.Sprintf("Unknown genre %q.", answer))
		if err := c.offerGenreList(); err != nil {
			return "", err
		}
	}
}

// offerGenreList asks whether to print every known genre, re-asking until
// the answer is y or n.
func (c *Collector) offerGenreList() error {
	for {
		answer, err := c.prompt("Show available genres? (y/n): ")
		if err != nil {
			return err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			_, _ = fmt.Fprintf(c.out, "Available genres: %s\n", strings.Join(c.domain.vocabulary().All(), ", "))
			return nil
		case "n", "no":
			return nil
		default:
			c.retry(FieldGenre, "Please answer y or n.")
		}
	}
}

func (c *Collector) askRating() (*float64, error) {
	text := fmt.Sprintf("Minimum rating %g-%g (Enter to skip): ", MinRatingBound, MaxRatingBound)
	for {
		answer, err := c.prompt(text)
		if err != nil {
			return nil, err
		}
		if answer == "" {
			c.skip(FieldRating)
			return nil, nil
		}

		v, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			c.retry(FieldRating, "Please enter a number, for example 7.5.")
			continue
		}
		if verr := validation.ValidateVar(v, c.domain.ratingTag(), "minimum rating"); verr != nil {
			c.retry(FieldRating, capitalize(verr.Error())+".")
			continue
		}
		return &v, nil
	}
}

func (c *Collector) askYears() (minYear, maxYear *int, err error) {
	for {
		if minYear, err = c.askYear("Earliest", "earliest year"); err != nil {
			return nil, nil, err
		}
		if maxYear, err = c.askYear("Latest", "latest year"); err != nil {
			return nil, nil, err
		}
		if minYear != nil && maxYear != nil && *minYear > *maxYear {
			c.retry(FieldYear, fmt.Sprintf("Earliest year %d is after latest year %d; please enter both again.", *minYear, *maxYear))
			continue
		}
		return minYear, maxYear, nil
	}
}

func (c *Collector) askYear(label, field string) (*int, error) {
	text := fmt.Sprintf("%s release year %d-%d (Enter to skip): ", label, c.domain.MinYear, c.domain.MaxYear)
	for {
		answer, err := c.prompt(text)
		if err != nil {
			return nil, err
		}
		if answer == "" {
			c.skip(FieldYear)
			return nil, nil
		}

		y, err := strconv.Atoi(answer)
		if err != nil {
			c.retry(FieldYear, "Please enter a whole year, for example 2010.")
			continue
		}
		if verr := validation.ValidateVar(y, c.domain.yearTag(), field); verr != nil {
			c.retry(FieldYear, capitalize(verr.Error())+".")
			continue
		}
		return &y, nil
	}
}

func (c *Collector) askRuntime() (*int, error) {
	for {
		answer, err := c.prompt("Maximum runtime in minutes (Enter to skip): ")
		if err != nil {
			return nil, err
		}
		if answer == "" {
			c.skip(FieldRuntime)
			return nil, nil
		}

		v, err := strconv.Atoi(answer)
		if err != nil {
			c.retry(FieldRuntime, "Please enter a whole number of minutes.")
			continue
		}
		if verr := validation.ValidateVar(v, c.domain.runtimeTag(), "maximum runtime"); verr != nil {
			c.retry(FieldRuntime, capitalize(verr.Error())+".")
			continue
		}
		return &v, nil
	}
}

func (c *Collector) askActor() (string, error) {
	answer, err := c.prompt("Favourite actor (Enter to skip): ")
	if err != nil {
		return "", err
	}
	if answer == "" {
		c.skip(FieldActor)
		return "", nil
	}
	return c.domain.CanonicalActor(answer), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
