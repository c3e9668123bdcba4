// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus instrumentation for a recommendation session.

Marquee is a short-lived command, so nothing is served over HTTP. Counters
accumulate in the default registry and can be written once at exit with
WriteTextfile, in the format read by the node exporter textfile collector:

	MARQUEE_METRICS_TEXTFILE=/var/lib/node_exporter/marquee.prom marquee --batch

# Available Metrics

Dataset Metrics:
  - marquee_dataset_rows_loaded_total: Rows kept after cleaning (counter)
    Labels: dataset
  - marquee_dataset_rows_dropped_total: Rows dropped during cleaning (counter)
    Labels: dataset, reason
  - marquee_dataset_rows_repaired_total: Optional fields reset to absent (counter)
    Labels: dataset
  - marquee_dataset_load_duration_seconds: Load time (histogram)
    Labels: dataset
  - marquee_dataset_load_errors_total: Failed loads (counter)
    Labels: dataset

Preference Metrics:
  - marquee_prompt_retries_total: Re-prompts after invalid input (counter)
    Labels: field
  - marquee_prompt_skips_total: Skipped criteria (counter)
    Labels: field

Ranking Metrics:
  - marquee_rankings_total: Rankings computed (counter)
  - marquee_ranking_duration_seconds: Ranking time (histogram)
  - marquee_ranking_candidates: Movies passing hard constraints (gauge)
  - marquee_ranking_excluded: Movies excluded by hard constraints (gauge)

Session Metrics:
  - marquee_seen_swaps_total: Seen slots by outcome (counter)
    Labels: outcome (replaced, removed, ignored)
  - marquee_sessions_total: Finished sessions (counter)
    Labels: state

# Usage

	start := time.Now()
	table, report, err := dataset.LoadMovies(path)
	metrics.RecordDatasetLoad("movies", report.Kept, report.Repaired,
	    report.DropCounts(), time.Since(start), err)

# Thread Safety

All metric operations are safe for concurrent use.
*/
package metrics
