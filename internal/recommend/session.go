// Marquee - Movie Night Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"sort"

	"github.com/tomtom215/marquee/internal/dataset"
)

// Session tracks which picks of a Ranking are on screen and which the user
// has already seen. A seen movie is never shown again in the same session.
// A Session is not safe for concurrent use.
type Session struct {
	ranking *Ranking
	k       int
	shown   []int // indices into ranking.picks, in display order
	next    int   // next ranking index not yet considered for display
	seen    map[int]struct{}
}

// NewSession shows the first k picks of r. k is clamped to [1, MaxK].
func NewSession(r *Ranking, k int) *Session {
	if k < 1 {
		k = 1
	}
	if k > MaxK {
		k = MaxK
	}

	s := &Session{
		ranking: r,
		k:       k,
		seen:    make(map[int]struct{}),
	}
	for len(s.shown) < k {
		idx, ok := s.advance()
		if !ok {
			break
		}
		s.shown = append(s.shown, idx)
	}
	return s
}

// NewSession starts a seen-tracking session over r using the engine's K.
func (e *Engine) NewSession(r *Ranking) *Session {
	return NewSession(r, e.config.K)
}

// Ranking returns the ranking the session draws from.
func (s *Session) Ranking() *Ranking {
	return s.ranking
}

// K returns the number of picks the session tries to show.
func (s *Session) K() int {
	return s.k
}

// Current returns copies of the picks on screen with Slot set from 1.
func (s *Session) Current() []Pick {
	out := make([]Pick, len(s.shown))
	for i, idx := range s.shown {
		p := s.ranking.picks[idx].clone()
		p.Slot = i + 1
		out[i] = p
	}
	return out
}

// Shortfall returns how many fewer than K picks are on screen.
func (s *Session) Shortfall() int {
	return s.k - len(s.shown)
}

// Exhausted reports whether nothing is left on screen.
func (s *Session) Exhausted() bool {
	return len(s.shown) == 0
}

// SeenCount returns the number of movies marked as seen.
func (s *Session) SeenCount() int {
	return len(s.seen)
}

// Remaining returns how many unseen picks are still waiting off screen.
func (s *Session) Remaining() int {
	n := 0
	for i := s.next; i < len(s.ranking.picks); i++ {
		if _, seen := s.seen[i]; !seen {
			n++
		}
	}
	return n
}

// MarkSeen marks the picks in the given 1-based slots as seen. Each seen slot
// is refilled in place with the best unseen pick not yet shown; when none is
// left the slot is removed and the remaining picks close up. Slot numbers
// that are out of range or repeated are returned in Ignored.
func (s *Session) MarkSeen(slots ...int) SeenResult {
	var res SeenResult

	n := len(s.shown)
	marked := make(map[int]struct{}, len(slots))
	order := make([]int, 0, len(slots))
	for _, slot := range slots {
		if _, dup := marked[slot]; dup || slot < 1 || slot > n {
			res.Ignored = append(res.Ignored, slot)
			continue
		}
		marked[slot] = struct{}{}
		order = append(order, slot)
	}
	sort.Ints(order)

	removed := make(map[int]struct{})
	for _, slot := range order {
		idx := s.shown[slot-1]
		s.seen[idx] = struct{}{}
		seenMovie := dataset.CloneMovie(s.ranking.picks[idx].Movie)

		next, ok := s.advance()
		if !ok {
			removed[slot-1] = struct{}{}
			res.Removed = append(res.Removed, Removal{Slot: slot, Seen: seenMovie})
			continue
		}
		s.shown[slot-1] = next
		res.Replaced = append(res.Replaced, Replacement{
			Slot: slot,
			Seen: seenMovie,
			Next: dataset.CloneMovie(s.ranking.picks[next].Movie),
		})
	}

	if len(removed) > 0 {
		kept := make([]int, 0, len(s.shown)-len(removed))
		for i, idx := range s.shown {
			if _, gone := removed[i]; !gone {
				kept = append(kept, idx)
			}
		}
		s.shown = kept
	}

	return res
}

// SkipTitles marks every ranked movie whose title matches one of titles
// (case and spacing insensitive) as seen, refilling any on screen. It returns
// the number of ranked movies matched.
func (s *Session) SkipTitles(titles ...string) int {
	want := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		if key := dataset.NormalizeTitle(t); key != "" {
			want[key] = struct{}{}
		}
	}
	if len(want) == 0 {
		return 0
	}

	matched := 0
	for i := range s.ranking.picks {
		if _, ok := want[dataset.NormalizeTitle(s.ranking.picks[i].Movie.Title)]; ok {
			s.seen[i] = struct{}{}
			matched++
		}
	}

	var slots []int
	for i, idx := range s.shown {
		if _, seen := s.seen[idx]; seen {
			slots = append(slots, i+1)
		}
	}
	if len(slots) > 0 {
		s.MarkSeen(slots...)
	}

	return matched
}

// advance returns the next unseen ranking index not yet considered.
func (s *Session) advance() (int, bool) {
	for s.next < len(s.ranking.picks) {
		idx := s.next
		s.next++
		if _, seen := s.seen[idx]; !seen {
			return idx, true
		}
	}
	return 0, false
}
