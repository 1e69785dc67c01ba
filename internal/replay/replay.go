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

// Package replay interprets edit scripts against the sequences they were computed for.
package replay

import (
	"iter"
	"strings"

	"znkr.io/ses/internal/edits"
)

// Op describes the origin of an element in a merged sequence.
type Op int

const (
	Match  Op = iota // Element is present in both sequences.
	Delete           // Element is only present in x.
	Insert           // Element is only present in y.
)

func (op Op) rune() rune {
	switch op {
	case Match:
		return 'M'
	case Delete:
		return 'D'
	case Insert:
		return 'I'
	default:
		panic("never reached")
	}
}

// Elem is an element of a merged sequence.
type Elem[T any] struct {
	Op    Op
	X     int // Index of the element in x, -1 for insertions.
	Y     int // Index of the element in y, -1 for deletions.
	Value T   // The element, taken from x unless it's an insertion.
}

// Merge returns the elements of x and y in the order described by the edit script s.
//
// For forward scripts, every edit contributes its step followed by its run of matches. Backward
// scripts start at (0,0) as well, but every edit points towards the origin: the run of matches
// comes first and the step last. The step of a virtual edit contributes nothing.
func Merge[T any](x, y []T, s edits.Script) iter.Seq[Elem[T]] {
	return func(yield func(Elem[T]) bool) {
		for _, e := range s {
			if !visit(x, y, e, yield) {
				return
			}
		}
	}
}

// visit yields the elements covered by e in the order of the sequences.
func visit[T any](x, y []T, e edits.Edit, yield func(Elem[T]) bool) bool {
	r := e.Matches()
	step := func(at edits.Point) bool {
		switch {
		case e.Virtual():
			return true
		case e.Command() == edits.Delete:
			return yield(Elem[T]{Op: Delete, X: at.X, Y: -1, Value: x[at.X]})
		default:
			return yield(Elem[T]{Op: Insert, X: -1, Y: at.Y, Value: y[at.Y]})
		}
	}
	matches := func(from edits.Point) bool {
		for i := range r {
			if !yield(Elem[T]{Op: Match, X: from.X + i, Y: from.Y + i, Value: x[from.X+i]}) {
				return false
			}
		}
		return true
	}

	if e.Direction() > 0 {
		return step(e.Start()) && matches(e.Mid())
	}
	end := e.End()
	return matches(end) && step(edits.Point{X: end.X + r, Y: end.Y + r})
}

// Apply replays s on x and returns the resulting sequence. For a script computed from x and y, the
// result equals y.
func Apply[T any](x, y []T, s edits.Script) []T {
	var out []T
	for e := range Merge(x, y, s) {
		if e.Op != Delete {
			out = append(out, e.Value)
		}
	}
	return out
}

// Revert is the inverse of [Apply]: it returns the sequence s was computed from.
func Revert[T any](x, y []T, s edits.Script) []T {
	var out []T
	for e := range Merge(x, y, s) {
		if e.Op != Insert {
			out = append(out, e.Value)
		}
	}
	return out
}

// Render returns a compact representation of s: one character per element of the merged
// sequence, M for matches, D for deletions and I for insertions.
func Render(s edits.Script) string {
	var sb strings.Builder
	for _, e := range s {
		step := Insert
		if e.Command() == edits.Delete {
			step = Delete
		}
		run := strings.Repeat(string(Match.rune()), e.Matches())
		switch {
		case e.Virtual():
			sb.WriteString(run)
		case e.Direction() > 0:
			sb.WriteRune(step.rune())
			sb.WriteString(run)
		default:
			sb.WriteString(run)
			sb.WriteRune(step.rune())
		}
	}
	return sb.String()
}
