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

// Package rvecs contains functions to work with the result vectors, the internal representation
// that's used by the linear space search and is then translated to an edit script. rx[s] marks
// x[s] as deleted and ry[t] marks y[t] as inserted. Both vectors carry a border element at the end
// that's always false.
package rvecs

// Make allocates result vectors for x and y with a single allocation.
func Make[T any](x, y []T) (rx, ry []bool) {
	r := make([]bool, (len(x) + len(y) + 2))
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]
	return
}

// Distance returns the number of deletions and insertions in rx and ry.
func Distance(rx, ry []bool) int {
	d := 0
	for _, r := range rx {
		if r {
			d++
		}
	}
	for _, r := range ry {
		if r {
			d++
		}
	}
	return d
}
