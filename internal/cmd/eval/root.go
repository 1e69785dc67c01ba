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
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// options are shared by all subcommands.
type options struct {
	parallel int
	stats    string
}

func newRootCmd(w io.Writer) *cobra.Command {
	var (
		verbose bool
		opts    options
	)

	root := &cobra.Command{
		Use:          "eval",
		Short:        "eval validates the shortest edit script engines",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.parallel < 1 {
				return fmt.Errorf("--parallel must be positive, got %d", opts.parallel)
			}
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(w, level)))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().IntVar(&opts.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	root.PersistentFlags().StringVar(&opts.stats, "stats", "", "CSV file to store stats in")

	root.AddCommand(newRandomCmd(&opts))
	root.AddCommand(newGitCmd(&opts))
	return root
}

// newEvaluator creates an evaluator that writes stats to the file configured in opts, if any. The
// returned function finishes the stats file.
func newEvaluator(l *log.Logger, opts *options) (*evaluator, func() error, error) {
	e := &evaluator{logger: l}
	if opts.stats == "" {
		return e, func() error { return nil }, nil
	}

	f, err := os.Create(opts.stats)
	if err != nil {
		return nil, nil, fmt.Errorf("creating stats file: %w", err)
	}
	e.stats, err = newStatsWriter(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("writing stats header: %w", err)
	}
	finish := func() error {
		if err := e.stats.flush(); err != nil {
			f.Close()
			return fmt.Errorf("flushing stats: %w", err)
		}
		return f.Close()
	}
	return e, finish, nil
}
