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

// Package greedy contains the greedy O(ND) search of Myers' algorithm that retains the full
// history of furthest reaching paths and the reconstruction of an edit script from that history.
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to y.
// For the inputs x = "ABCABBA" and y = "CBABAC", all possible edits are represented by the graph:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// A step to the right deletes an element of x, a step down inserts an element of y, and a
// diagonal step is a match. An optimal edit script is a path from (0,0) to (N,M) with the fewest
// horizontal and vertical steps.
//
// A D-path is a path with exactly D non-diagonal steps. A furthest reaching D-path on diagonal
// k = x - y can be decomposed into a furthest reaching (D-1)-path on diagonal k-1 followed by a
// horizontal step, or a furthest reaching (D-1)-path on diagonal k+1 followed by a vertical step,
// in both cases followed by as many diagonal steps as possible (a snake). The search computes the
// furthest reaching D-paths for D = 0, 1, 2, ... until one of them reaches the opposite corner.
//
// The search can run in two directions: forward from (0,0) to (N,M) and backward from (N,M) to
// (0,0). The backward search numbers its diagonals consistently with the forward search, it
// starts on diagonal Δ = N - M. Both directions share the same walker, the differences are
// captured in the [Direction] strategies [Forward] and [Backward].
//
// To reconstruct the path, the search records the reach map after every distance. The
// reconstruction walks the history from the last distance down to 0 and replays the same
// decisions the search made. This requires O(D^2) memory for the history, see package linear for
// a refinement that only needs linear space.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package greedy
