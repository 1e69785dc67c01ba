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

// Package edits contains the edit script representation produced by the search engines in this
// module. The root package re-exports these types.
package edits

import (
	"fmt"
	"strings"
)

// Point is a vertex of the edit graph. X indexes into the first sequence and Y into the second.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Command is the non-diagonal step of an edit.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Command
type Command int

const (
	Insert Command = iota // A vertical step, an element of the second sequence is inserted.
	Delete                // A horizontal step, an element of the first sequence is deleted.
)

// Edit is a single insert or delete step followed by a, possibly empty, run of matches.
//
// For forward scripts, the step leaves Start and the run ends in End. For backward scripts, the
// roles are mirrored: the step leaves Start towards the origin and the run continues towards the
// origin until End.
type Edit struct {
	start, end Point
	virtual    bool
}

// New returns the edit from start to end.
func New(start, end Point) Edit {
	return Edit{start: start, end: end}
}

// NewVirtual returns an edit whose step starts on the seed point outside of the edit graph. Only
// its run of matches is meaningful.
func NewVirtual(start, end Point) Edit {
	return Edit{start: start, end: end, virtual: true}
}

// Start returns the point the edit starts in.
func (e Edit) Start() Point { return e.start }

// End returns the point the edit ends in.
func (e Edit) End() Point { return e.end }

// Command returns Delete if the edit covers more horizontal than vertical distance and Insert
// otherwise.
func (e Edit) Command() Command {
	if abs(e.end.X-e.start.X) > abs(e.end.Y-e.start.Y) {
		return Delete
	}
	return Insert
}

// Matches returns the length of the run of matches following the step.
func (e Edit) Matches() int {
	if e.Command() == Delete {
		return abs(e.start.Y - e.end.Y)
	}
	return abs(e.start.X - e.end.X)
}

// Direction returns +1 for edits of a forward search and -1 for edits of a backward search.
func (e Edit) Direction() int {
	if e.end.X > e.start.X || e.end.Y > e.start.Y {
		return 1
	}
	return -1
}

// Differences returns the number of moves in the edit graph covered by e: the step plus its run.
func (e Edit) Differences() int { return e.Matches() + 1 }

// Virtual reports whether the step of e lies outside of the edit graph. This is only ever the case
// for the edit reconstructed for distance 0, its run of matches is the common prefix (forward) or
// common suffix (backward) of both sequences.
func (e Edit) Virtual() bool { return e.virtual }

// Mid returns the point reached after the step, where the run of matches begins.
func (e Edit) Mid() Point {
	dir := e.Direction()
	if e.Command() == Delete {
		return Point{e.start.X + dir, e.start.Y}
	}
	return Point{e.start.X, e.start.Y + dir}
}

func (e Edit) String() string {
	s := fmt.Sprintf("%v %v->%v", e.Command(), e.start, e.end)
	if e.virtual {
		s += " (virtual)"
	}
	return s
}

// Script is an ordered sequence of edits.
type Script []Edit

// Distance returns the number of insert and delete steps in s.
func (s Script) Distance() int {
	d := 0
	for _, e := range s {
		if !e.virtual {
			d++
		}
	}
	return d
}

func (s Script) String() string {
	var sb strings.Builder
	for i, e := range s {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
