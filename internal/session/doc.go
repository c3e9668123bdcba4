// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package session drives one recommendation session from preferences to the
final list of picks.

An interactive session moves through these states:

	collect -> rank -> present -> ask seen -> present -> ... -> done

The user is asked "Have you already seen any of these? (y/n)". On y they
enter comma-separated movie numbers; each seen movie is swapped for the next
best unseen one and the list is shown again. On n the session ends. It also
ends when no picks are left or input is closed.

A batch session takes its preferences and seen titles from configuration,
presents once and ends without reading input.

# Usage

	runner := session.New(engine, domain, renderer, os.Stdin, os.Stdout, logger, session.Options{
	    Interactive: true,
	})
	result, err := runner.Run(ctx)

Every session gets a random ID that is attached to its log lines and to the
JSON output.
*/
package session
