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

// Package impl dispatches to the search engines according to the configuration.
package impl

import (
	"fmt"

	"znkr.io/ses/internal/config"
	"znkr.io/ses/internal/edits"
	"znkr.io/ses/internal/greedy"
	"znkr.io/ses/internal/linear"
	"znkr.io/ses/internal/rvecs"
)

// Diff compares the contents of x and y and returns the edit script that transforms x into y. It
// returns false if the edit distance exceeds cfg.MaxDistance.
func Diff[T comparable](x, y []T, cfg config.Config) (edits.Script, bool) {
	if !cfg.Linear {
		return greedyDiff(x, y, equal[T], cfg)
	}
	rx, ry, ok := linearDiff(x, y, cfg.MaxDistance)
	if !ok {
		return nil, false
	}
	return rvecs.Script(rx, ry), true
}

// DiffFunc compares the contents of x and y using eq and returns the edit script that transforms
// x into y. It returns false if the edit distance exceeds cfg.MaxDistance.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) (edits.Script, bool) {
	if !cfg.Linear {
		return greedyDiff(x, y, eq, cfg)
	}
	rx, ry := rvecs.Make(x, y)
	if _, ok := linear.Compare(rx, ry, x, y, nil, nil, eq, cfg.MaxDistance); !ok {
		return nil, false
	}
	return rvecs.Script(rx, ry), true
}

// Distance returns the edit distance between x and y. It returns false if the edit distance
// exceeds cfg.MaxDistance.
func Distance[T comparable](x, y []T, cfg config.Config) (int, bool) {
	if !cfg.Linear {
		return greedy.Distance(x, y, equal[T], direction(cfg), cfg.MaxDistance)
	}
	rx, ry, ok := linearDiff(x, y, cfg.MaxDistance)
	if !ok {
		return 0, false
	}
	return rvecs.Distance(rx, ry), true
}

// DistanceFunc returns the edit distance between x and y using eq. It returns false if the edit
// distance exceeds cfg.MaxDistance.
func DistanceFunc[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) (int, bool) {
	if !cfg.Linear {
		return greedy.Distance(x, y, eq, direction(cfg), cfg.MaxDistance)
	}
	return linear.Distance(x, y, eq, cfg.MaxDistance)
}

func greedyDiff[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) (edits.Script, bool) {
	dir := direction(cfg)
	_, h, ok := greedy.Search(x, y, eq, dir, cfg.MaxDistance)
	if !ok {
		return nil, false
	}
	return greedy.Reconstruct(h, len(x), len(y), dir), true
}

func direction(cfg config.Config) greedy.Direction {
	switch cfg.Direction {
	case config.SearchForward:
		return greedy.Forward{}
	case config.SearchBackward:
		return greedy.Backward{}
	default:
		panic(fmt.Sprintf("unknown direction: %v", cfg.Direction))
	}
}

func equal[T comparable](a, b T) bool { return a == b }

// linearDiff runs the linear space search on a reduced problem, see [preprocess].
func linearDiff[T comparable](x, y []T, limit int) (rx, ry []bool, ok bool) {
	rx, ry = rvecs.Make(x, y)

	// Elements of a common prefix or suffix are matches. If one of the remaining ranges is empty,
	// preprocess marks all of the other one and leaves nothing to search.
	smin, smax, tmin, tmax := linear.Bounds(x, y, 0, len(x), 0, len(y), equal[T])

	// Preprocess x and y to reduce the problem size and to work with integer IDs instead of Ts.
	// This is only possible for comparable types, because mapping from T to a unique ID requires
	// a map.
	x0, y0, xidx, yidx := preprocess(rx, ry, smin, smax, tmin, tmax, x, y)
	if limit >= 0 {
		// Elements unique to one side are part of every path.
		limit -= rvecs.Distance(rx, ry)
		if limit < 0 {
			return nil, nil, false
		}
	}
	if _, ok := linear.Compare(rx, ry, x0, y0, xidx, yidx, equal[int], limit); !ok {
		return nil, nil, false
	}
	return rx, ry, true
}

// preprocess reduces the problem size before the search.
//
// Assign a unique ID to every input element in x[smin:smax] and y[tmin:tmax] that appears in both.
// This allows us to search on integers instead of T and provides a dense ID space that makes it
// possible to use a slice instead of a map to determine which elements exist in both x and y.
//
// Drop all elements that only appear in x or y. These are always deletions and insertions
// respectively and they are marked in rx and ry right away. They can't be part of any match, so
// the edit distance of the reduced problem plus the dropped elements is the edit distance of the
// original problem.
//
// The results are the following slices:
//   - x0:     x[smin:smax] as IDs except for elements that appear only in x
//   - y0:     y[tmin:tmax] as IDs except for elements that appear only in y
//   - xidx:   A mapping from x0 to x: x0[s] corresponds to x[xidx[s]]
//   - yidx:   A mapping from y0 to y: y0[t] corresponds to y[yidx[t]]
func preprocess[T comparable](rx, ry []bool, smin, smax, tmin, tmax int, x, y []T) (x0, y0 []int, xidx, yidx []int) {
	idx := make(map[T]int, smax-smin) // temporary map from element to ID
	buf := make([]int, 2*(smax-smin)+2*(tmax-tmin))
	x0, buf = buf[:0:smax-smin], buf[smax-smin:]
	xidx, buf = buf[:0:smax-smin], buf[smax-smin:]
	y0, buf = buf[:0:tmax-tmin], buf[tmax-tmin:]
	yidx, buf = buf[:0:tmax-tmin], buf[tmax-tmin:]
	if len(buf) != 0 && cap(buf) != 0 {
		panic("something went wrong during buffer assignments")
	}
	inY := make([]bool, smax-smin)
	// Step 1: Create an ID for every element in x[smin:smax].
	for _, e := range x[smin:smax] {
		id, ok := idx[e]
		if !ok {
			id = len(idx)
			idx[e] = id
		}
		x0 = append(x0, id)
	}
	// Step 2: Do the same for y, but ignore everything that's not in x, except for marking these
	// elements as insertions.
	for i, e := range y[tmin:tmax] {
		id, ok := idx[e]
		if !ok {
			// Not in x, this is always an insertion.
			ry[i+tmin] = true
			continue
		}
		inY[id] = true
		yidx = append(yidx, i+tmin)
		y0 = append(y0, id)
	}
	// Step 3: Filter out elements from x0 that are not in y.
	i := 0
	for j, e := range x0 {
		if inY[e] {
			xidx = append(xidx, j+smin)
			x0[i] = e
			i++
		} else {
			rx[j+smin] = true // always a deletion
		}
	}
	x0 = x0[:i]
	return
}
