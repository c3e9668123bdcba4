// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package testinfra provides shared test fixtures: a ten-movie sample
// catalogue in the IMDB layout, a matching award file in the Academy Awards
// layout, and helpers to write them to a temporary directory.
//
//	dir := t.TempDir()
//	moviesPath := testinfra.WriteFile(t, dir, "movies.csv", testinfra.SampleMoviesCSV)
//
// The package has no dependency on domain packages so that any package's
// internal tests can import it.
package testinfra

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleMoviesCSV is a ten-movie catalogue. Seven rows are comedies released
// 2006-2016 with a rating of at least 7.0; Grown Ups is a comedy rated 6.0.
const SampleMoviesCSV = `Rank,Title,Genre,Description,Director,Actors,Year,Runtime (Minutes),Rating,Votes,Revenue (Millions),Metascore
1,Guardians of the Galaxy,"Action,Adventure,Sci-Fi",A group of intergalactic criminals are forced to work together.,James Gunn,"Chris Pratt, Vin Diesel, Bradley Cooper, Zoe Saldana",2014,121,8.1,757074,333.13,76
2,La La Land,"Comedy,Drama,Music",A jazz pianist falls for an aspiring actress in Los Angeles.,Damien Chazelle,"Ryan Gosling, Emma Stone, Rosemarie DeWitt, J.K. Simmons",2016,128,8.3,258682,151.06,93
3,The Grand Budapest Hotel,"Adventure,Comedy,Drama",The adventures of a legendary concierge at a famous hotel.,Wes Anderson,"Ralph Fiennes, F. Murray Abraham, Mathieu Amalric, Adrien Brody",2014,99,8.1,530881,59.07,88
4,Deadpool,"Action,Adventure,Comedy",A fast-talking mercenary hunts the man who nearly destroyed his life.,Tim Miller,"Ryan Reynolds, Morena Baccarin, T.J. Miller, Ed Skrein",2016,108,8.0,627797,363.02,65
5,Superbad,Comedy,Two co-dependent high school seniors are forced to deal with separation anxiety.,Greg Mottola,"Michael Cera, Jonah Hill, Christopher Mintz-Plasse, Bill Hader",2007,113,7.6,447379,121.46,76
6,The Intouchables,"Biography,Comedy,Drama",An aristocrat hires a young man from the projects to be his caregiver.,Olivier Nakache,"François Cluzet, Omar Sy, Anne Le Ny, Audrey Fleurot",2011,112,8.6,557965,13.18,57
7,Silver Linings Playbook,"Comedy,Drama,Romance",After a stint in a mental institution a former teacher moves back in with his parents.,David O. Russell,"Bradley Cooper, Jennifer Lawrence, Robert De Niro, Jacki Weaver",2012,122,7.8,564364,132.09,81
8,The Hangover,Comedy,Three buddies wake up from a bachelor party with no memory of the night.,Todd Phillips,"Zach Galifianakis, Bradley Cooper, Justin Bartha, Ed Helms",2009,100,7.8,611563,277.31,73
9,Grown Ups,Comedy,Five childhood friends reunite for a Fourth of July holiday weekend.,Dennis Dugan,"Adam Sandler, Salma Hayek, Kevin James, Chris Rock",2010,102,6.0,190385,162.00,30
10,Inception,"Action,Adventure,Sci-Fi",A thief who steals corporate secrets through dream-sharing technology.,Christopher Nolan,"Leonardo DiCaprio, Joseph Gordon-Levitt, Ellen Page, Ken Watanabe",2010,148,8.8,1583625,292.57,74
`

// SampleAwardsCSV holds nominations for some of the sample movies plus one
// film that is not in the catalogue.
const SampleAwardsCSV = `year_film,year_ceremony,ceremony,category,name,film,winner
2016,2017,89,ACTRESS IN A LEADING ROLE,Emma Stone,La La Land,True
2016,2017,89,BEST PICTURE,"Fred Berger, Jordan Horowitz and Marc Platt, Producers",La La Land,False
2016,2017,89,DIRECTING,Damien Chazelle,La La Land,True
2014,2015,87,COSTUME DESIGN,Milena Canonero,The Grand Budapest Hotel,True
2014,2015,87,BEST PICTURE,"Wes Anderson, Scott Rudin, Steven Rales and Jeremy Dawson, Producers",The Grand Budapest Hotel,False
2012,2013,85,ACTOR IN A LEADING ROLE,Bradley Cooper,Silver Linings Playbook,False
2012,2013,85,ACTRESS IN A LEADING ROLE,Jennifer Lawrence,Silver Linings Playbook,True
2014,2015,87,VISUAL EFFECTS,"Stephane Ceretti, Nicolas Aithadi, Jonathan Fawkner and Paul Corbould",Guardians of the Galaxy,False
2010,2011,83,CINEMATOGRAPHY,Wally Pfister,Inception,True
1934,1935,7,OUTSTANDING PRODUCTION,Columbia,It Happened One Night,True
`

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}

// WriteSample writes both sample files into a fresh temp dir and returns their paths.
func WriteSample(t testing.TB) (moviesPath, awardsPath string) {
	t.Helper()

	dir := t.TempDir()
	return WriteFile(t, dir, "movies.csv", SampleMoviesCSV),
		WriteFile(t, dir, "awards.csv", SampleAwardsCSV)
}
