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

// Package linear contains the linear space refinement of Myers' algorithm described in section 4.2
// of the paper.
//
// Instead of keeping the history of all furthest reaching D-paths, the refinement searches forward
// from (0,0) and backward from (N,M) at the same time. The two searches meet in a "middle snake",
// a possibly empty sequence of diagonals that's part of an optimal path. The problem is then
// divided into the two rectangles before and after the middle snake and solved recursively.
//
// Lemma 3: There is a D-path from (0,0) to (N,M) if and only if there is a ⌈D/2⌉-path from (0,0)
// to some point (s,t) and a ⌊D/2⌋-path from some point (s',t') to (N,M) such that:
//
//   - (feasibility)  s'+t' >= ⌈D/2⌉ and s+t <= N+M-⌊D/2⌋, and
//   - (overlap)      s-t = s'-t' and s >= s'
//
// Moreover, both D/2-paths are contained within D-paths from (0,0) to (N,M).
//
// Since the parity of D is the parity of N-M, overlaps only need to be checked by the forward
// search if N-M is odd and by the backward search if N-M is even. A middle snake found by the
// forward search in round d splits a (2d-1)-path and one found by the backward search in round d
// splits a 2d-path. This means that the first round already decides the edit distance of the
// whole problem and a search with a distance limit can be abandoned as soon as the next round
// can't produce a short enough path.
//
// The time complexity is O((N+M)D) and the working memory is O(N+M).
package linear
