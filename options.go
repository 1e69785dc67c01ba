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

import "znkr.io/ses/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Backward searches from the ends of both slices towards their starts. The edit distance is the
// same as for a forward search, but ties between equally short scripts are resolved differently
// and every edit of the script points towards the start of both slices.
//
// Backward can't be combined with [Linear].
func Backward() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Direction = config.SearchBackward
		return config.Backward
	}
}

// Linear uses the linear space refinement of the search. It combines a forward and a backward
// search that meet in the middle and recurses on both halves. This reduces the space complexity
// from O(N + D^2) to O(N) for a constant factor in runtime. Scripts have the forward shape.
//
// Linear can't be combined with [Backward].
func Linear() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Linear = true
		return config.Linear
	}
}
