// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("weights sum to approximately 1", func(t *testing.T) {
		w := cfg.Weights
		sum := w.Genre + w.Rating + w.Year + w.Runtime + w.Actor + w.Quality
		if sum < 0.99 || sum > 1.01 {
			t.Errorf("weights sum = %f, want ~1.0", sum)
		}
	})

	t.Run("actor outweighs quality", func(t *testing.T) {
		if cfg.Weights.Actor <= cfg.Weights.Quality {
			t.Errorf("Actor = %f, want > Quality (%f)", cfg.Weights.Actor, cfg.Weights.Quality)
		}
	})

	t.Run("hard constraints filter on four criteria", func(t *testing.T) {
		want := []string{CriterionGenre, CriterionRating, CriterionYear, CriterionRuntime}
		if !reflect.DeepEqual(cfg.HardConstraints, want) {
			t.Errorf("HardConstraints = %v, want %v", cfg.HardConstraints, want)
		}
		if cfg.IsHard(CriterionActor) {
			t.Error("actor should be soft by default")
		}
	})

	t.Run("five picks", func(t *testing.T) {
		if cfg.K != 5 {
			t.Errorf("K = %d, want 5", cfg.K)
		}
	})

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name:      "negative weight",
			modify:    func(c *Config) { c.Weights.Actor = -1 },
			wantError: true,
		},
		{
			name:      "unknown hard constraint",
			modify:    func(c *Config) { c.HardConstraints = []string{"genre", "mood"} },
			wantError: true,
		},
		{
			name:   "no hard constraints",
			modify: func(c *Config) { c.HardConstraints = nil },
		},
		{
			name:      "zero K",
			modify:    func(c *Config) { c.K = 0 },
			wantError: true,
		},
		{
			name:      "K above maximum",
			modify:    func(c *Config) { c.K = MaxK + 1 },
			wantError: true,
		},
		{
			name:      "negative runtime tolerance",
			modify:    func(c *Config) { c.RuntimeTolerance = -1 },
			wantError: true,
		},
		{
			name:      "vote share above 1",
			modify:    func(c *Config) { c.VoteShare = 1.5 },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestWeights_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
	}{
		{"defaults", DefaultConfig().Weights},
		{"unequal", Weights{Genre: 3, Actor: 1}},
		{"all zeros returns equal weights", Weights{}},
		{"large values", Weights{Rating: 100, Year: 200, Quality: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := 0.0
			for _, v := range tt.weights.Normalize().ToMap() {
				sum += v
			}
			if sum < 0.99 || sum > 1.01 {
				t.Errorf("normalized weights sum = %f, want ~1.0", sum)
			}
		})
	}
}

func TestWeights_ToMap(t *testing.T) {
	m := Weights{Genre: 1, Rating: 2, Year: 3, Runtime: 4, Actor: 5, Quality: 6}.ToMap()
	want := map[string]float64{"genre": 1, "rating": 2, "year": 3, "runtime": 4, "actor": 5, "quality": 6}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("ToMap() = %v, want %v", m, want)
	}
}

func TestConfig_Clone(t *testing.T) {
	orig := DefaultConfig()
	clone := orig.Clone()

	clone.HardConstraints[0] = "actor"
	clone.Weights.Genre = 9

	if orig.HardConstraints[0] != CriterionGenre {
		t.Error("Clone shares the HardConstraints slice")
	}
	if orig.Weights.Genre == 9 {
		t.Error("Clone shares Weights")
	}
}
