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

package main

import (
	"unicode/utf8"

	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// A reference is a third-party diff implementation. References are not necessarily minimal, but
// none of them may ever find a script that is shorter than the edit distance.
type reference struct {
	name     string
	distance func(x, y []string) int
}

var references = []reference{
	{
		name: "mb0",
		distance: func(x, y []string) int {
			d := 0
			for _, ch := range mb0.Diff(len(x), len(y), mb0lines{x, y}) {
				d += ch.Del + ch.Ins
			}
			return d
		},
	},
	{
		name: "godebug",
		distance: func(x, y []string) int {
			d := 0
			for _, ch := range godebug.DiffChunks(x, y) {
				d += len(ch.Added) + len(ch.Deleted)
			}
			return d
		},
	},
	{
		name: "diffmatchpatch",
		distance: func(x, y []string) int {
			// Encode elements as runes the same way DiffLinesToRunes does for lines.
			ids := make(map[string]rune)
			encode := func(in []string) []rune {
				out := make([]rune, len(in))
				for i, s := range in {
					r, ok := ids[s]
					if !ok {
						r = rune(len(ids) + 1)
						if r >= 0xD800 {
							r += 0x800 // skip surrogates
						}
						ids[s] = r
					}
					out[i] = r
				}
				return out
			}
			rx, ry := encode(x), encode(y)

			dmp := diffmatchpatch.New()
			dmp.DiffTimeout = 0
			d := 0
			for _, diff := range dmp.DiffMainRunes(rx, ry, false) {
				if diff.Type != diffmatchpatch.DiffEqual {
					d += utf8.RuneCountInString(diff.Text)
				}
			}
			return d
		},
	},
}

type mb0lines struct {
	x, y []string
}

func (d mb0lines) Equal(i, j int) bool { return d.x[i] == d.y[j] }
