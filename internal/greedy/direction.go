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

package greedy

import (
	"slices"

	"znkr.io/ses/internal/edits"
)

// Reacher provides the furthest reaching x coordinate per diagonal. It's implemented by the live
// reach map and by the snapshots in its history.
type Reacher interface {
	Reach(k int) int
}

// Direction is the strategy that decides how a search proceeds.
//
// All decisions are pure functions of their inputs, this allows the reconstruction to replay the
// decisions of the search exactly.
type Direction interface {
	// delta returns the diagonal the search starts on.
	delta(n, m int) int

	// fallback returns the reach of unvisited diagonals. The search relies on it to seed the
	// reach map with a virtual point just outside the edit graph.
	fallback(n, m int) int

	// from returns the neighbour of diagonal k whose furthest reaching (d-1)-path is extended to
	// the furthest reaching d-path on k.
	from(k, d, delta int, r Reacher) int

	// step moves from x on diagonal prev onto the adjacent diagonal k.
	step(x, prev, k int) int

	// slide follows diagonal k from x for as long as elements match and returns the end of the
	// snake.
	slide(x, k, n, m int, match func(s, t int) bool) int

	// done reports if (x, y) is the corner opposite of where the search started.
	done(x, y, n, m int) bool

	// origin returns the corner the search starts in.
	origin(n, m int) edits.Point

	// terminus returns the corner the search ends in.
	terminus(n, m int) edits.Point

	// arrange puts a script collected from the terminus towards the origin into its final order.
	arrange(s edits.Script)
}

// Forward is the strategy for a search from (0,0) to (N,M).
//
// When both neighbours reach equally far, the path on k comes from diagonal k-1 (a deletion),
// unless k is the lowest diagonal of the search frontier (k = -d) where only a step down from k+1
// is possible.
type Forward struct{}

func (Forward) delta(n, m int) int    { return 0 }
func (Forward) fallback(n, m int) int { return 0 }

func (Forward) from(k, d, delta int, r Reacher) int {
	if k == -d || (k != d && r.Reach(k-1) < r.Reach(k+1)) {
		return k + 1 // down
	}
	return k - 1 // right
}

func (Forward) step(x, prev, k int) int {
	if prev < k {
		return x + 1
	}
	return x
}

func (Forward) slide(x, k, n, m int, match func(s, t int) bool) int {
	for x < n && x-k < m && match(x, x-k) {
		x++
	}
	return x
}

func (Forward) done(x, y, n, m int) bool { return x >= n && y >= m }

func (Forward) origin(n, m int) edits.Point   { return edits.Point{X: 0, Y: 0} }
func (Forward) terminus(n, m int) edits.Point { return edits.Point{X: n, Y: m} }

// Forward scripts read from the origin to the terminus.
func (Forward) arrange(s edits.Script) { slices.Reverse(s) }

// Backward is the strategy for a search from (N,M) to (0,0).
//
// When both neighbours reach equally far, the path on k comes from diagonal k+1 (a deletion),
// unless k is the highest diagonal of the search frontier (k = d + Δ) where only a step up from
// k-1 is possible.
type Backward struct{}

func (Backward) delta(n, m int) int    { return n - m }
func (Backward) fallback(n, m int) int { return n }

func (Backward) from(k, d, delta int, r Reacher) int {
	if k == d+delta || (k != -d+delta && r.Reach(k-1) < r.Reach(k+1)) {
		return k - 1 // up
	}
	return k + 1 // left
}

func (Backward) step(x, prev, k int) int {
	if prev > k {
		return x - 1
	}
	return x
}

func (Backward) slide(x, k, n, m int, match func(s, t int) bool) int {
	for x > 0 && x-k > 0 && match(x-1, x-k-1) {
		x--
	}
	return x
}

func (Backward) done(x, y, n, m int) bool { return x <= 0 && y <= 0 }

func (Backward) origin(n, m int) edits.Point   { return edits.Point{X: n, Y: m} }
func (Backward) terminus(n, m int) edits.Point { return edits.Point{X: 0, Y: 0} }

// Backward scripts start at (0,0) like forward scripts, each edit points towards (0,0).
func (Backward) arrange(s edits.Script) {}
