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

package rvecs

import (
	"iter"
	"slices"

	"znkr.io/ses/internal/edits"
)

// Edits returns the edits of a forward script described by rx and ry.
//
// Deletions are ordered before insertions. A common prefix of x and y is reported as the run of a
// virtual edit that starts on (0,-1), like a forward search reconstructs it.
func Edits(rx, ry []bool) iter.Seq[edits.Edit] {
	return func(yield func(edits.Edit) bool) {
		n, m := len(rx)-1, len(ry)-1
		s, t := 0, 0 // current index into x, y
		run := func() {
			for s < n && t < m && !rx[s] && !ry[t] {
				s++
				t++
			}
		}

		run()
		if s > 0 {
			if !yield(edits.NewVirtual(edits.Point{X: 0, Y: -1}, edits.Point{X: s, Y: t})) {
				return
			}
		}
		for s < n || t < m {
			start := edits.Point{X: s, Y: t}
			switch {
			case rx[s]:
				s++
			case ry[t]:
				t++
			default:
				panic("result vectors don't describe a path from x to y")
			}
			run()
			if !yield(edits.New(start, edits.Point{X: s, Y: t})) {
				return
			}
		}
	}
}

// Script collects the edits described by rx and ry.
func Script(rx, ry []bool) edits.Script {
	return slices.Collect(Edits(rx, ry))
}
