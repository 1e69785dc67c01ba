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

import "znkr.io/ses/internal/kdmap"

// Search computes the edit distance between x and y in direction dir and returns it together with
// the history of reach maps that's needed to reconstruct the path, see [Reconstruct].
//
// If limit is non-negative and the edit distance exceeds it, the search is abandoned and Search
// returns false.
func Search[T any](x, y []T, eq func(a, b T) bool, dir Direction, limit int) (int, *kdmap.History, bool) {
	h := new(kdmap.History)
	d, ok := walk(x, y, eq, dir, limit, h)
	if !ok {
		return 0, nil, false
	}
	return d, h, true
}

// Distance computes the edit distance between x and y in direction dir without recording a
// history. It returns false if limit is non-negative and the edit distance exceeds it.
func Distance[T any](x, y []T, eq func(a, b T) bool, dir Direction, limit int) (int, bool) {
	return walk(x, y, eq, dir, limit, nil)
}

func walk[T any](x, y []T, eq func(a, b T) bool, dir Direction, limit int, h *kdmap.History) (int, bool) {
	n, m := len(x), len(y)
	delta := dir.delta(n, m)

	// The outermost diagonals are only ever read, they hold the virtual seed point.
	v := kdmap.New(delta-(n+m)-1, delta+(n+m)+1, dir.fallback(n, m))
	match := func(s, t int) bool { return eq(x[s], y[t]) }

	for d := 0; ; d++ {
		if limit >= 0 && d > limit {
			return 0, false
		}
		for k := delta - d; k <= delta+d; k += 2 {
			prev := dir.from(k, d, delta, v)
			x0 := dir.step(v.Reach(prev), prev, k)
			x0 = dir.slide(x0, k, n, m, match)
			v.Set(k, x0)
			if dir.done(x0, x0-k, n, m) {
				if h != nil {
					h.Append(v, delta-d-1, delta+d+1)
				}
				return d, true
			}
		}
		if h != nil {
			h.Append(v, delta-d-1, delta+d+1)
		}
	}
}
