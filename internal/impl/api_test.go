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

package impl

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/ses/internal/config"
	"znkr.io/ses/internal/replay"
)

var (
	cfgForward  = config.Default
	cfgBackward = config.Config{Direction: config.SearchBackward, MaxDistance: -1}
	cfgLinear   = config.Config{Linear: true, MaxDistance: -1}
)

func TestDiff(t *testing.T) {
	largishX := strings.Split("x"+strings.Repeat("a", 71)+"y", "")
	largishY := strings.Split("w"+strings.Repeat("a", 71)+"it", "")
	tests := []struct {
		name                      string
		x, y                      []string
		forward, backward, linear string
	}{
		{
			name:     "identical",
			x:        []string{"foo", "bar", "baz"},
			y:        []string{"foo", "bar", "baz"},
			forward:  "MMM",
			backward: "MMM",
			linear:   "MMM",
		},
		{
			name: "empty",
		},
		{
			name:     "x-empty",
			x:        nil,
			y:        []string{"foo", "bar", "baz"},
			forward:  "III",
			backward: "III",
			linear:   "III",
		},
		{
			name:     "y-empty",
			x:        []string{"foo", "bar", "baz"},
			y:        nil,
			forward:  "DDD",
			backward: "DDD",
			linear:   "DDD",
		},
		{
			name:     "ABCABBA_to_CBABAC",
			x:        strings.Split("ABCABBA", ""),
			y:        strings.Split("CBABAC", ""),
			forward:  "DDMIMMDMI",
			backward: "IDMDMDMMI",
			linear:   "DIMDMMDMI",
		},
		{
			name:     "same-prefix",
			x:        []string{"foo", "bar"},
			y:        []string{"foo", "baz"},
			forward:  "MDI",
			backward: "MID",
			linear:   "MDI",
		},
		{
			name:     "same-suffix",
			x:        []string{"foo", "bar"},
			y:        []string{"loo", "bar"},
			forward:  "DIM",
			backward: "IDM",
			linear:   "DIM",
		},
		{
			name:     "largish",
			x:        largishX,
			y:        largishY,
			forward:  "DI" + strings.Repeat("M", 71) + "DII",
			backward: "ID" + strings.Repeat("M", 71) + "IID",
			linear:   "DI" + strings.Repeat("M", 71) + "DII",
		},
	}

	eq := func(a, b string) bool { return a == b }
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, variant := range []struct {
				name string
				cfg  config.Config
				want string
			}{
				{"forward", cfgForward, tt.forward},
				{"backward", cfgBackward, tt.backward},
				{"linear", cfgLinear, tt.linear},
			} {
				t.Run(variant.name, func(t *testing.T) {
					wantDistance := strings.Count(variant.want, "D") + strings.Count(variant.want, "I")

					s, ok := Diff(tt.x, tt.y, variant.cfg)
					if !ok {
						t.Fatalf("Diff(...) gave up without a limit")
					}
					if diff := cmp.Diff(variant.want, replay.Render(s)); diff != "" {
						t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
					}

					s, ok = DiffFunc(tt.x, tt.y, eq, variant.cfg)
					if !ok {
						t.Fatalf("DiffFunc(...) gave up without a limit")
					}
					if diff := cmp.Diff(variant.want, replay.Render(s)); diff != "" {
						t.Errorf("DiffFunc(...) differs [-want,+got]:\n%s", diff)
					}

					if d, ok := Distance(tt.x, tt.y, variant.cfg); !ok || d != wantDistance {
						t.Errorf("Distance(...) = %d, %v, want %d, true", d, ok, wantDistance)
					}
					if d, ok := DistanceFunc(tt.x, tt.y, eq, variant.cfg); !ok || d != wantDistance {
						t.Errorf("DistanceFunc(...) = %d, %v, want %d, true", d, ok, wantDistance)
					}
				})
			}
		})
	}
}

func TestDiff_maxDistance(t *testing.T) {
	// abcxyz and abcuvw share a prefix, x/y/z and u/v/w are unique to one side. The preprocessing
	// of the linear search drops the unique elements before the search.
	x := strings.Split("abcxyzabc", "")
	y := strings.Split("abcuvwcba", "")
	const want = 10

	for _, cfg := range []config.Config{cfgForward, cfgBackward, cfgLinear} {
		for limit := want - 2; limit <= want+1; limit++ {
			cfg.MaxDistance = limit
			wantOK := limit >= want

			if _, ok := Diff(x, y, cfg); ok != wantOK {
				t.Errorf("Diff(..., %+v) ok = %v, want %v", cfg, ok, wantOK)
			}
			if d, ok := Distance(x, y, cfg); ok != wantOK || (ok && d != want) {
				t.Errorf("Distance(..., %+v) = %d, %v, want %d, %v", cfg, d, ok, want, wantOK)
			}
			eq := func(a, b string) bool { return a == b }
			if _, ok := DiffFunc(x, y, eq, cfg); ok != wantOK {
				t.Errorf("DiffFunc(..., %+v) ok = %v, want %v", cfg, ok, wantOK)
			}
			if d, ok := DistanceFunc(x, y, eq, cfg); ok != wantOK || (ok && d != want) {
				t.Errorf("DistanceFunc(..., %+v) = %d, %v, want %d, %v", cfg, d, ok, want, wantOK)
			}
		}
	}
}

func TestDiff_trivialBounds(t *testing.T) {
	// After stripping the common prefix and suffix, one side is empty.
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{"insert-middle", "abyz", "abcdyz", "MMIIMM"},
		{"delete-middle", "abcdyz", "abyz", "MMDDMM"},
		{"append", "ab", "abcd", "MMII"},
		{"identical", "abc", "abc", "MMM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := strings.Split(tt.x, ""), strings.Split(tt.y, "")
			wantDistance := strings.Count(tt.want, "D") + strings.Count(tt.want, "I")
			for limit := max(wantDistance-1, 0); limit <= wantDistance; limit++ {
				cfg := cfgLinear
				cfg.MaxDistance = limit
				s, ok := Diff(x, y, cfg)
				if wantOK := limit >= wantDistance; ok != wantOK {
					t.Fatalf("Diff(..., limit=%d) ok = %v, want %v", limit, ok, wantOK)
				}
				if !ok {
					continue
				}
				if diff := cmp.Diff(tt.want, replay.Render(s)); diff != "" {
					t.Errorf("Diff(..., limit=%d) differs [-want,+got]:\n%s", limit, diff)
				}
			}
		})
	}
}

func TestDiff_random(t *testing.T) {
	for i := range 100 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		rng := rand.New(rand.NewChaCha8(seed))
		x := randomInput(rng, 30)
		y := randomInput(rng, 30)

		want, _ := Distance(x, y, cfgForward)
		for _, cfg := range []config.Config{cfgBackward, cfgLinear} {
			if d, _ := Distance(x, y, cfg); d != want {
				t.Errorf("Distance(%q, %q, %+v) = %d, want %d", x, y, cfg, d, want)
			}
			s, _ := Diff(x, y, cfg)
			if s.Distance() != want {
				t.Errorf("Diff(%q, %q, %+v) has distance %d, want %d", x, y, cfg, s.Distance(), want)
			}
			if got := string(replay.Apply(x, y, s)); got != string(y) {
				t.Errorf("Diff(%q, %q, %+v) replays to %q", x, y, cfg, got)
			}
		}
	}
}

func TestPreprocess(t *testing.T) {
	x := []string{"a", "x", "b", "c"}
	y := []string{"c", "b", "y", "a"}
	rx := make([]bool, len(x)+1)
	ry := make([]bool, len(y)+1)
	x0, y0, xidx, yidx := preprocess(rx, ry, 0, len(x), 0, len(y), x, y)

	if diff := cmp.Diff([]int{0, 2, 3}, x0); diff != "" {
		t.Errorf("x0 differs [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 2, 0}, y0); diff != "" {
		t.Errorf("y0 differs [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2, 3}, xidx); diff != "" {
		t.Errorf("xidx differs [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 3}, yidx); diff != "" {
		t.Errorf("yidx differs [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]bool{false, true, false, false, false}, rx); diff != "" {
		t.Errorf("rx differs [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]bool{false, false, true, false, false}, ry); diff != "" {
		t.Errorf("ry differs [-want,+got]:\n%s", diff)
	}
}

func randomInput(rng *rand.Rand, maxLen int) []byte {
	out := make([]byte, rng.IntN(maxLen+1))
	for i := range out {
		out[i] = byte('a' + rng.IntN(6))
	}
	return out
}
