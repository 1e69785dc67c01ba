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

// Package kdmap provides the diagonal reach map used by the greedy search and the history of its
// states that is needed to reconstruct an edit script.
//
// A reach map stores the furthest reaching x coordinate for every diagonal k = x - y. Only the
// x coordinate is stored, because y = x - k. All diagonals in the declared range of a map are
// defined: diagonals that haven't been visited yet report the map's fallback value. Accessing a
// diagonal outside of the declared range is a programming error and panics.
package kdmap

import "fmt"

// Map is a reach map for a fixed range of diagonals.
type Map struct {
	// v[k-lo] is the furthest reaching x coordinate on diagonal k.
	v        []int
	lo, hi   int
	fallback int
}

// New returns a reach map for the diagonals in [lo, hi]. Unvisited diagonals report fallback.
func New(lo, hi, fallback int) *Map {
	if lo > hi {
		panic(fmt.Sprintf("kdmap: invalid diagonal range [%d, %d]", lo, hi))
	}
	m := &Map{
		v:        make([]int, hi-lo+1),
		lo:       lo,
		hi:       hi,
		fallback: fallback,
	}
	m.Reset()
	return m
}

// Reset forgets all visited diagonals.
func (m *Map) Reset() {
	for i := range m.v {
		m.v[i] = m.fallback
	}
}

// Bounds returns the declared range of diagonals.
func (m *Map) Bounds() (lo, hi int) { return m.lo, m.hi }

// Fallback returns the value reported for unvisited diagonals.
func (m *Map) Fallback() int { return m.fallback }

// Reach returns the furthest reaching x coordinate on diagonal k.
func (m *Map) Reach(k int) int {
	return m.v[m.index(k)]
}

// Set stores x as the furthest reaching x coordinate on diagonal k.
func (m *Map) Set(k, x int) {
	m.v[m.index(k)] = x
}

func (m *Map) index(k int) int {
	if k < m.lo || k > m.hi {
		panic(fmt.Sprintf("kdmap: diagonal %d outside of [%d, %d]", k, m.lo, m.hi))
	}
	return k - m.lo
}
