// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kdmap

import "fmt"

// History is an append-only sequence of reach map states, one per edit distance.
//
// A snapshot only copies the window of diagonals that can have been visited at its distance, all
// other diagonals report the fallback value of the map it was taken from. The copies share a
// single buffer that's owned by the history.
type History struct {
	buf   []int
	snaps []span
}

type span struct {
	first      int // first diagonal in the window
	start, end int // window in buf
	lo, hi     int // declared range of the map
	fallback   int
}

// Append records the state of m for the next distance. Only diagonals in [first, last] are
// copied, the window is clipped to the declared range of m.
func (h *History) Append(m *Map, first, last int) {
	first, last = max(first, m.lo), min(last, m.hi)
	start := len(h.buf)
	if first <= last {
		h.buf = append(h.buf, m.v[first-m.lo:last-m.lo+1]...)
	}
	h.snaps = append(h.snaps, span{
		first:    first,
		start:    start,
		end:      len(h.buf),
		lo:       m.lo,
		hi:       m.hi,
		fallback: m.fallback,
	})
}

// Len returns the number of snapshots in h. After a search it is the edit distance plus one.
func (h *History) Len() int { return len(h.snaps) }

// Snapshot returns the reach map state recorded for distance d.
func (h *History) Snapshot(d int) Snapshot {
	if d < 0 || d >= len(h.snaps) {
		panic(fmt.Sprintf("kdmap: no snapshot for distance %d, history has %d", d, len(h.snaps)))
	}
	sp := h.snaps[d]
	return Snapshot{
		v:        h.buf[sp.start:sp.end:sp.end],
		first:    sp.first,
		lo:       sp.lo,
		hi:       sp.hi,
		fallback: sp.fallback,
	}
}

// Reach returns the furthest reaching x coordinate on diagonal k at distance d.
func (h *History) Reach(d, k int) int {
	return h.Snapshot(d).Reach(k)
}

// Snapshot is a read-only view of a reach map at a given distance.
type Snapshot struct {
	v        []int
	first    int
	lo, hi   int
	fallback int
}

// Reach returns the furthest reaching x coordinate on diagonal k.
func (s Snapshot) Reach(k int) int {
	if k < s.lo || k > s.hi {
		panic(fmt.Sprintf("kdmap: diagonal %d outside of [%d, %d]", k, s.lo, s.hi))
	}
	if i := k - s.first; i >= 0 && i < len(s.v) {
		return s.v[i]
	}
	return s.fallback
}
