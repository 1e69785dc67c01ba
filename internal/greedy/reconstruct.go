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
	"fmt"

	"znkr.io/ses/internal/edits"
	"znkr.io/ses/internal/kdmap"
)

// Reconstruct builds the edit script for a search of an n×m edit graph in direction dir from the
// history h that the search recorded.
//
// The reconstruction starts in the corner where the search ended and replays the decisions of the
// search for every distance, from the last one down to 0. The edit for distance 0 starts on the
// virtual seed point outside of the edit graph, it's only part of the script if it contains
// matches.
func Reconstruct(h *kdmap.History, n, m int, dir Direction) edits.Script {
	delta := dir.delta(n, m)
	origin := dir.origin(n, m)
	cur := dir.terminus(n, m)

	var script edits.Script
	for d := h.Len() - 1; d >= 0 && cur != origin; d-- {
		snap := h.Snapshot(d)
		k := cur.X - cur.Y
		xe := snap.Reach(k)
		end := edits.Point{X: xe, Y: xe - k}
		if end != cur {
			panic(fmt.Sprintf("reconstruction diverged at distance %d: expected %v, found %v", d, cur, end))
		}
		prev := dir.from(k, d, delta, snap)
		xs := snap.Reach(prev)
		start := edits.Point{X: xs, Y: xs - prev}
		if d == 0 {
			// The step off the seed point lands on the origin.
			script = append(script, edits.NewVirtual(start, end))
			xm := dir.step(xs, prev, k)
			cur = edits.Point{X: xm, Y: xm - k}
			break
		}
		script = append(script, edits.New(start, end))
		cur = start
	}
	if cur != origin {
		panic(fmt.Sprintf("reconstruction ended at %v instead of %v", cur, origin))
	}
	dir.arrange(script)
	return script
}
