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

package rvecs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScript(t *testing.T) {
	tests := []struct {
		name         string
		render       string
		wantDistance int
		want         []string
	}{
		{
			name: "empty",
		},
		{
			name:   "identical",
			render: "MMM",
			want:   []string{"Insert (0,-1)->(3,3) (virtual)"},
		},
		{
			name:         "ABCABBA_to_CBABAC",
			render:       "DIMDMMDMI",
			wantDistance: 5,
			want: []string{
				"Delete (0,0)->(1,0)",
				"Insert (1,0)->(2,2)",
				"Delete (2,2)->(5,4)",
				"Delete (5,4)->(7,5)",
				"Insert (7,5)->(7,6)",
			},
		},
		{
			name:         "same-prefix",
			render:       "MDI",
			wantDistance: 2,
			want: []string{
				"Insert (0,-1)->(1,1) (virtual)",
				"Delete (1,1)->(2,1)",
				"Insert (2,1)->(2,2)",
			},
		},
		{
			name:         "x-empty",
			render:       "III",
			wantDistance: 3,
			want: []string{
				"Insert (0,0)->(0,1)",
				"Insert (0,1)->(0,2)",
				"Insert (0,2)->(0,3)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, ry := parse(tt.render)
			if got := Distance(rx, ry); got != tt.wantDistance {
				t.Errorf("Distance(...) = %d, want %d", got, tt.wantDistance)
			}
			script := Script(rx, ry)
			var got []string
			for _, e := range script {
				got = append(got, e.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Script(...) differs [-want,+got]:\n%s", diff)
			}
			if script.Distance() != tt.wantDistance {
				t.Errorf("Script(...).Distance() = %d, want %d", script.Distance(), tt.wantDistance)
			}
		})
	}
}

func TestEdits_stop(t *testing.T) {
	rx, ry := parse("DIMDMMDMI")
	n := 0
	for range Edits(rx, ry) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iteration didn't stop after 2 edits, got %d", n)
	}
}

func TestScript_invalid(t *testing.T) {
	// x has an element left that's neither matched nor deleted.
	rx := []bool{false, false}
	ry := []bool{false}
	defer func() {
		if recover() == nil {
			t.Errorf("Script(...) didn't panic for invalid result vectors")
		}
	}()
	Script(rx, ry)
}

// parse converts a rendering like "DIM" into result vectors.
func parse(render string) (rx, ry []bool) {
	n := strings.Count(render, "M") + strings.Count(render, "D")
	m := strings.Count(render, "M") + strings.Count(render, "I")
	rx, ry = Make(make([]struct{}, n), make([]struct{}, m))
	s, t := 0, 0
	for _, c := range render {
		switch c {
		case 'D':
			rx[s] = true
			s++
		case 'I':
			ry[t] = true
			t++
		case 'M':
			s++
			t++
		}
	}
	return rx, ry
}
