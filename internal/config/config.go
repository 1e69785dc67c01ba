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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// ses.Option.
package config

// Direction describes where the greedy search starts.
type Direction int

const (
	// Search from (0,0) towards (N,M).
	SearchForward Direction = iota

	// Search from (N,M) towards (0,0).
	SearchBackward
)

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Direction of the greedy search.
	Direction Direction

	// If set, the linear space middle snake refinement is used instead of the greedy search. It
	// combines a forward and a backward search and ignores Direction.
	Linear bool

	// Maximum edit distance a caller is interested in, a negative value means there is no limit.
	// This configuration is not exposed via an option, it's set by the bounded entry points.
	MaxDistance int
}

// Default is the default configuration.
var Default = Config{
	Direction:   SearchForward,
	Linear:      false,
	MaxDistance: -1,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Backward Flag = 1 << iota
	Linear
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	var set Flag
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
		set |= flag
	}
	if set&Backward != 0 && set&Linear != 0 {
		panic("Options ses.Backward and ses.Linear are mutually exclusive")
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Backward:
		return "ses.Backward"
	case Linear:
		return "ses.Linear"
	default:
		panic("never reached")
	}
}
