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
	"encoding/csv"
	"io"
	"strconv"
	"sync"
)

var statsHeader = []string{"source", "variant", "n", "m", "distance", "edits", "duration_ns"}

// statsWriter writes results as CSV records. It's safe for concurrent use.
type statsWriter struct {
	mu sync.Mutex
	w  *csv.Writer
}

func newStatsWriter(w io.Writer) (*statsWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(statsHeader); err != nil {
		return nil, err
	}
	return &statsWriter{w: cw}, nil
}

func (s *statsWriter) write(results []result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range results {
		rec := []string{
			r.source,
			r.variant,
			strconv.Itoa(r.n),
			strconv.Itoa(r.m),
			strconv.Itoa(r.distance),
			strconv.Itoa(r.edits),
			strconv.FormatInt(r.duration.Nanoseconds(), 10),
		}
		if err := s.w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func (s *statsWriter) flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.Flush()
	return s.w.Error()
}
