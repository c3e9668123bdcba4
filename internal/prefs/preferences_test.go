// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package prefs

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestPreferences_Validate(t *testing.T) {
	d := sampleDomain(t)

	tests := []struct {
		name    string
		prefs   Preferences
		wantErr []string
	}{
		{
			name:  "empty is valid",
			prefs: Preferences{},
		},
		{
			name: "all valid",
			prefs: Preferences{
				Genre: "Comedy", MinRating: floatPtr(7), MinYear: intPtr(2007),
				MaxYear: intPtr(2016), MaxRuntime: intPtr(120), Actor: "Emma Stone",
			},
		},
		{
			name:    "unknown genre",
			prefs:   Preferences{Genre: "Western"},
			wantErr: []string{`unknown genre "Western"`},
		},
		{
			name:    "rating out of range",
			prefs:   Preferences{MinRating: floatPtr(-1)},
			wantErr: []string{"minimum rating must be greater than or equal to 0"},
		},
		{
			name:    "negative runtime",
			prefs:   Preferences{MaxRuntime: intPtr(-5)},
			wantErr: []string{"maximum runtime must be greater than or equal to 1"},
		},
		{
			name:  "several problems reported together",
			prefs: Preferences{MinYear: intPtr(2016), MaxYear: intPtr(2030)},
			wantErr: []string{
				"latest year must be less than or equal to 2016",
				"earliest year 2016 is after latest year 2030",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prefs.Validate(d)
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidPreference) {
				t.Fatalf("Validate() error = %v, want ErrInvalidPreference", err)
			}
			for _, w := range tt.wantErr {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error %q missing %q", err.Error(), w)
				}
			}
		})
	}
}

func TestPreferences_Normalize(t *testing.T) {
	d := sampleDomain(t)

	p := Preferences{Genre: " sci ", Actor: "chris  pratt"}.Normalize(d)
	if p.Genre != "Sci-Fi" {
		t.Errorf("Genre = %q, want Sci-Fi", p.Genre)
	}
	if p.Actor != "Chris Pratt" {
		t.Errorf("Actor = %q, want Chris Pratt", p.Actor)
	}

	unknown := Preferences{Genre: "western"}.Normalize(d)
	if unknown.Genre != "western" {
		t.Errorf("unknown genre should be left for Validate, got %q", unknown.Genre)
	}
}

func TestDomain_CanonicalActor(t *testing.T) {
	d := sampleDomain(t)

	tests := []struct {
		in   string
		want string
	}{
		{"j.k.  simmons", "J.K. Simmons"},
		{"FRANÇOIS CLUZET", "François Cluzet"},
		{" leonardo dicaprio ", "Leonardo DiCaprio"},
		{"tom hanks", "Tom Hanks"},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := d.CanonicalActor(tt.in); got != tt.want {
				t.Errorf("CanonicalActor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if len(d.Actors) != 38 {
		t.Errorf("len(Actors) = %d, want 38 distinct cast members", len(d.Actors))
	}
}

func TestPreferences_Active(t *testing.T) {
	p := Preferences{Genre: "Comedy", MaxYear: intPtr(2010), Actor: "X"}
	if got, want := p.Active(), []string{FieldGenre, FieldYear, FieldActor}; !reflect.DeepEqual(got, want) {
		t.Errorf("Active() = %v, want %v", got, want)
	}
}

func TestPreferences_String(t *testing.T) {
	tests := []struct {
		prefs Preferences
		want  string
	}{
		{Preferences{}, "any movie"},
		{Preferences{Genre: "Comedy", MinRating: floatPtr(7)}, "genre Comedy, rating >= 7.0"},
		{Preferences{MinYear: intPtr(2006), MaxYear: intPtr(2016)}, "released 2006-2016"},
		{Preferences{MaxYear: intPtr(2000), MaxRuntime: intPtr(90)}, "released 2000 or earlier, runtime <= 90 min"},
		{Preferences{Actor: "Emma Stone"}, "featuring Emma Stone"},
	}
	for _, tt := range tests {
		if got := tt.prefs.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
