// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset Metrics
	DatasetRowsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_dataset_rows_loaded_total",
			Help: "Total number of rows kept after cleaning",
		},
		[]string{"dataset"}, // "movies", "awards"
	)

	DatasetRowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_dataset_rows_dropped_total",
			Help: "Total number of rows dropped during cleaning",
		},
		[]string{"dataset", "reason"},
	)

	DatasetRowsRepaired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_dataset_rows_repaired_total",
			Help: "Total number of optional fields reset to absent during cleaning",
		},
		[]string{"dataset"},
	)

	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marquee_dataset_load_duration_seconds",
			Help:    "Duration of dataset loads in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"dataset"},
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_dataset_load_errors_total",
			Help: "Total number of failed dataset loads",
		},
		[]string{"dataset"},
	)

	// Preference Metrics
	PromptRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_prompt_retries_total",
			Help: "Total number of re-prompts after invalid input",
		},
		[]string{"field"},
	)

	PromptSkips = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_prompt_skips_total",
			Help: "Total number of criteria skipped by the user",
		},
		[]string{"field"},
	)

	// Ranking Metrics
	RankingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marquee_rankings_total",
			Help: "Total number of rankings computed",
		},
	)

	RankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "marquee_ranking_duration_seconds",
			Help:    "Duration of ranking passes in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
	)

	RankingCandidates = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marquee_ranking_candidates",
			Help: "Number of movies that passed hard constraints in the last ranking",
		},
	)

	RankingExcluded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marquee_ranking_excluded",
			Help: "Number of movies excluded by hard constraints in the last ranking",
		},
	)

	// Session Metrics
	SeenSwaps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_seen_swaps_total",
			Help: "Total number of slots marked as seen, by outcome",
		},
		[]string{"outcome"}, // "replaced", "removed", "ignored"
	)

	SessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_sessions_total",
			Help: "Total number of sessions by final state",
		},
		[]string{"state"},
	)
)

// RecordDatasetLoad records the outcome of loading one dataset.
func RecordDatasetLoad(dataset string, kept, repaired int, dropped map[string]int, duration time.Duration, err error) {
	DatasetLoadDuration.WithLabelValues(dataset).Observe(duration.Seconds())
	if err != nil {
		DatasetLoadErrors.WithLabelValues(dataset).Inc()
	}
	DatasetRowsLoaded.WithLabelValues(dataset).Add(float64(kept))
	DatasetRowsRepaired.WithLabelValues(dataset).Add(float64(repaired))
	for reason, n := range dropped {
		DatasetRowsDropped.WithLabelValues(dataset, reason).Add(float64(n))
	}
}

// RecordPromptRetry records a re-prompt for field.
func RecordPromptRetry(field string) {
	PromptRetries.WithLabelValues(field).Inc()
}

// RecordPromptSkip records that the user skipped field.
func RecordPromptSkip(field string) {
	PromptSkips.WithLabelValues(field).Inc()
}

// RecordRanking records one ranking pass.
func RecordRanking(candidates, excluded int, duration time.Duration) {
	RankingsTotal.Inc()
	RankingDuration.Observe(duration.Seconds())
	RankingCandidates.Set(float64(candidates))
	RankingExcluded.Set(float64(excluded))
}

// RecordSeenSwaps records the outcome of one mark-seen round.
func RecordSeenSwaps(replaced, removed, ignored int) {
	SeenSwaps.WithLabelValues("replaced").Add(float64(replaced))
	SeenSwaps.WithLabelValues("removed").Add(float64(removed))
	SeenSwaps.WithLabelValues("ignored").Add(float64(ignored))
}

// RecordSession records a finished session.
func RecordSession(state string) {
	SessionsTotal.WithLabelValues(state).Inc()
}

// WriteTextfile writes every registered metric to path in the Prometheus
// text exposition format, for pickup by a node exporter textfile collector.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
