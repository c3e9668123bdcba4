// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config loads and validates Marquee configuration with Koanf v2.

# Configuration Sources

Later layers override earlier ones:

 1. Built-in defaults
 2. YAML file named by --config or MARQUEE_CONFIG, else ./marquee.yaml
 3. .env file in the working directory (seeds the environment only)
 4. MARQUEE_* environment variables
 5. Command-line flags the user set explicitly

# Example File

	data:
	  movies_path: data/IMDB-Movie-Data.csv
	  awards_path: data/oscar_data.csv
	output:
	  format: text
	recommend:
	  k: 5
	  hard_constraints: [genre, rating, year, runtime]
	  weights:
	    actor: 0.4
	session:
	  interactive: false
	  seen: ["The Hangover"]
	  preferences:
	    genre: Comedy
	    min_rating: 7
	    min_year: 2006
	    max_year: 2016

# Environment Variables

Data:
  - MARQUEE_MOVIES_PATH, MARQUEE_AWARDS_PATH

Logging:
  - MARQUEE_LOG_LEVEL, MARQUEE_LOG_FORMAT, MARQUEE_LOG_CALLER

Output and metrics:
  - MARQUEE_OUTPUT_FORMAT: text or json
  - MARQUEE_METRICS_TEXTFILE: Prometheus snapshot path

Recommendation engine:
  - MARQUEE_K: picks shown (1-20, default 5)
  - MARQUEE_HARD_CONSTRAINTS: comma-separated criteria
  - MARQUEE_RUNTIME_TOLERANCE, MARQUEE_VOTE_SHARE
  - MARQUEE_WEIGHT_GENRE, _RATING, _YEAR, _RUNTIME, _ACTOR, _QUALITY

Session:
  - MARQUEE_INTERACTIVE: false for batch mode
  - MARQUEE_SEEN: comma-separated titles
  - MARQUEE_GENRE, MARQUEE_MIN_RATING, MARQUEE_MIN_YEAR, MARQUEE_MAX_YEAR,
    MARQUEE_MAX_RUNTIME, MARQUEE_ACTOR: batch preferences
  - MARQUEE_MIN_RUNTIME: smallest accepted maximum runtime

# Validation

Load validates struct tags through the validation package, then checks
rules that span fields. Every failure wraps ErrInvalid.
*/
package config
