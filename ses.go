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

package ses

import (
	"znkr.io/ses/internal/config"
	"znkr.io/ses/internal/edits"
	"znkr.io/ses/internal/impl"
)

// Point is a vertex of the edit graph. X indexes into the first slice and Y into the second one.
type Point = edits.Point

// Command describes the non-diagonal step of an [Edit].
type Command = edits.Command

const (
	Insert = edits.Insert // An element of the second slice is inserted.
	Delete = edits.Delete // An element of the first slice is deleted.
)

// Edit is a single insert or delete step followed by a, possibly empty, run of matches.
type Edit = edits.Edit

// Script is an ordered sequence of edits. Its [Script.Distance] is the edit distance.
type Script = edits.Script

// Difference returns the minimal number of insertions and deletions to transform x into y.
//
// The following options are supported: [ses.Backward], [ses.Linear]
func Difference[T comparable](x, y []T, opts ...Option) int {
	cfg := config.FromOptions(opts, config.Backward|config.Linear)
	switch {
	case len(x) == 0:
		return len(y)
	case len(y) == 0:
		return len(x)
	}
	d, _ := impl.Distance(x, y, cfg)
	return d
}

// DifferenceFunc returns the minimal number of insertions and deletions to transform x into y
// using the provided equivalence predicate.
//
// The following options are supported: [ses.Backward], [ses.Linear]
func DifferenceFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) int {
	cfg := config.FromOptions(opts, config.Backward|config.Linear)
	switch {
	case len(x) == 0:
		return len(y)
	case len(y) == 0:
		return len(x)
	}
	d, _ := impl.DistanceFunc(x, y, eq, cfg)
	return d
}

// Diff compares the contents of x and y and returns the shortest edit script that transforms x
// into y.
//
// If x and y are identical, the script consists of at most one virtual edit covering both slices.
//
// The following options are supported: [ses.Backward], [ses.Linear]
func Diff[T comparable](x, y []T, opts ...Option) Script {
	cfg := config.FromOptions(opts, config.Backward|config.Linear)
	s, _ := impl.Diff(x, y, cfg)
	return s
}

// DiffFunc compares the contents of x and y using the provided equivalence predicate and returns
// the shortest edit script that transforms x into y.
//
// The following options are supported: [ses.Backward], [ses.Linear]
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) Script {
	cfg := config.FromOptions(opts, config.Backward|config.Linear)
	s, _ := impl.DiffFunc(x, y, eq, cfg)
	return s
}

// BoundedDifference is like [Difference], but it gives up as soon as the edit distance is known to
// exceed limit. In that case, it returns false.
func BoundedDifference[T comparable](x, y []T, limit int, opts ...Option) (int, bool) {
	cfg := config.FromOptions(opts, config.Backward|config.Linear)
	if limit < 0 {
		return 0, false
	}
	cfg.MaxDistance = limit
	return impl.Distance(x, y, cfg)
}

// BoundedDifferenceFunc is like [DifferenceFunc], but it gives up as soon as the edit distance is
// known to exceed limit. In that case, it returns false.
func BoundedDifferenceFunc[T any](x, y []T, eq func(a, b T) bool, limit int, opts ...Option) (int, bool) {
	cfg := config.FromOptions(opts, config.Backward|config.Linear)
	if limit < 0 {
		return 0, false
	}
	cfg.MaxDistance = limit
	return impl.DistanceFunc(x, y, eq, cfg)
}

// BoundedDiff is like [Diff], but it gives up as soon as the edit distance is known to exceed
// limit. In that case, it returns false and no script.
func BoundedDiff[T comparable](x, y []T, limit int, opts ...Option) (Script, bool) {
	cfg := config.FromOptions(opts, config.Backward|config.Linear)
	if limit < 0 {
		return nil, false
	}
	cfg.MaxDistance = limit
	return impl.Diff(x, y, cfg)
}

// BoundedDiffFunc is like [DiffFunc], but it gives up as soon as the edit distance is known to
// exceed limit. In that case, it returns false and no script.
func BoundedDiffFunc[T any](x, y []T, eq func(a, b T) bool, limit int, opts ...Option) (Script, bool) {
	cfg := config.FromOptions(opts, config.Backward|config.Linear)
	if limit < 0 {
		return nil, false
	}
	cfg.MaxDistance = limit
	return impl.DiffFunc(x, y, eq, cfg)
}
