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
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"znkr.io/ses"
	"znkr.io/ses/internal/replay"
)

var variants = []struct {
	name string
	opts []ses.Option
}{
	{"forward", nil},
	{"backward", []ses.Option{ses.Backward()}},
	{"linear", []ses.Option{ses.Linear()}},
}

// result is the outcome of evaluating one variant on one pair of inputs.
type result struct {
	source   string
	variant  string
	n, m     int
	distance int
	edits    int // -1 for references
	duration time.Duration
}

// evaluate computes the difference between x and y with every variant and validates the results.
// The references are compared against the edit distance. All violations are joined into the
// returned error.
func evaluate(source string, x, y []string) ([]result, error) {
	var (
		results []result
		errs    []error
	)
	want := -1
	for _, v := range variants {
		fail := func(format string, args ...any) {
			errs = append(errs, fmt.Errorf("%s: %s", v.name, fmt.Sprintf(format, args...)))
		}

		start := time.Now()
		s := ses.Diff(x, y, v.opts...)
		elapsed := time.Since(start)

		d := ses.Difference(x, y, v.opts...)
		switch {
		case want < 0:
			want = d
		case d != want:
			fail("distance %d disagrees with %s distance %d", d, variants[0].name, want)
		}
		if got := s.Distance(); got != d {
			fail("script has distance %d, want %d", got, d)
		}
		if got := replay.Apply(x, y, s); !slices.Equal(got, y) {
			fail("replaying the script doesn't reproduce y")
		}
		if got := replay.Revert(x, y, s); !slices.Equal(got, x) {
			fail("reverting the script doesn't reproduce x")
		}
		if got, ok := ses.BoundedDifference(x, y, d, v.opts...); !ok || got != d {
			fail("bounded by %d: got %d, %v, want %d, true", d, got, ok, d)
		}
		if d > 0 {
			if _, ok := ses.BoundedDiff(x, y, d-1, v.opts...); ok {
				fail("bounded by %d: found a script shorter than the distance", d-1)
			}
		}

		results = append(results, result{
			source:   source,
			variant:  v.name,
			n:        len(x),
			m:        len(y),
			distance: d,
			edits:    len(s),
			duration: elapsed,
		})
	}

	for _, ref := range references {
		start := time.Now()
		d := ref.distance(x, y)
		elapsed := time.Since(start)
		if d < want {
			errs = append(errs, fmt.Errorf("%s: found a script with %d edits, shorter than the distance %d", ref.name, d, want))
		}
		results = append(results, result{
			source:   source,
			variant:  ref.name,
			n:        len(x),
			m:        len(y),
			distance: d,
			edits:    -1,
			duration: elapsed,
		})
	}
	return results, errors.Join(errs...)
}

// evaluator evaluates input pairs concurrently and keeps track of validation failures.
type evaluator struct {
	logger *log.Logger
	stats  *statsWriter

	evaluated atomic.Int64
	failed    atomic.Int64
}

// eval evaluates x and y. Validation failures are logged, only failing to write stats is an error.
func (e *evaluator) eval(source string, x, y []string) error {
	results, err := evaluate(source, x, y)
	e.evaluated.Add(1)
	if err != nil {
		e.failed.Add(1)
		e.logger.Error("validation failed", "source", source, "err", err)
	} else {
		e.logger.Debug("evaluated", "source", source, "n", len(x), "m", len(y), "distance", results[0].distance)
	}
	if e.stats != nil {
		if err := e.stats.write(results); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}
	return nil
}

// err returns an error if any evaluation failed validation.
func (e *evaluator) err() error {
	if n := e.failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d evaluations failed validation", n, e.evaluated.Load())
	}
	return nil
}
