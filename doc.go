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

// Package ses computes the shortest edit script between two slices: the minimal number of
// insertions and deletions that transform one slice into the other, and the ordered sequence of
// those edits.
//
// The main functions are [Difference], which only computes the edit distance, and [Diff], which
// also returns the [Script]. The Func variants accept an equivalence predicate and work for
// arbitrary element types. The Bounded variants give up as soon as the edit distance is known to
// exceed a limit.
//
// All functions use Myers' O(ND) difference algorithm, where N = len(x) + len(y) and D is the edit
// distance. By default, the search proceeds forward from the start of both slices. With
// [Backward], it starts at their ends instead. Both directions produce minimal scripts, but ties
// between equally short scripts are broken differently. The greedy search keeps a history of its
// frontier to reconstruct the script, which takes O(D^2) space. With [Linear], the search uses a
// divide and conquer refinement that only needs O(N) space.
//
// # Edit scripts
//
// An [Edit] is a single insertion or deletion followed by a, possibly empty, run of matches. For
// forward scripts, an edit leaves [Edit.Start] with the insert or delete step and continues along
// the matches to [Edit.End]. Backward scripts are mirrored: every edit points towards the start of
// both slices.
//
// The first edit of a forward search starts outside of both slices, at (0,-1). Its step doesn't
// refer to an element, only its run of matches is meaningful: it's the common prefix of x and y.
// Such an edit is [Edit.Virtual] and it's only part of a script if x and y have a common prefix.
// Backward scripts use (len(x), len(y)+1) for the same purpose and the run is the common suffix.
//
// Performance: The time complexity is O(ND) and the space complexity is O(N + D^2) for the default
// and backward searches and O(N) with [Linear].
package ses
