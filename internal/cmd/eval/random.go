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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type randomOptions struct {
	count    int
	seed     int
	maxLen   int
	alphabet int
}

func newRandomCmd(opts *options) *cobra.Command {
	var ropts randomOptions

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Evaluate on randomly generated inputs",
		Long: `Evaluate on pseudo random inputs.

Half of the input pairs are independent of each other, the other half are edits of a common
sequence. The inputs are reproducible for a given seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ropts.maxLen < 0 || ropts.alphabet < 1 {
				return fmt.Errorf("invalid input shape: --max-len=%d, --alphabet=%d", ropts.maxLen, ropts.alphabet)
			}
			return runRandom(cmd, opts, ropts)
		},
	}

	cmd.Flags().IntVar(&ropts.count, "count", 1000, "number of input pairs")
	cmd.Flags().IntVar(&ropts.seed, "seed", 0, "seed for the input generator")
	cmd.Flags().IntVar(&ropts.maxLen, "max-len", 200, "maximum length of an input")
	cmd.Flags().IntVar(&ropts.alphabet, "alphabet", 8, "number of distinct elements")
	return cmd
}

func runRandom(cmd *cobra.Command, opts *options, ropts randomOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	e, finish, err := newEvaluator(logger, opts)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.parallel)
	for i := range ropts.count {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			x, y := randomPair(ropts, i)
			return e.eval(fmt.Sprintf("random:%d:%d", ropts.seed, i), x, y)
		})
	}
	err = g.Wait()
	if ferr := finish(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	prog.done("Evaluated random inputs", "pairs", e.evaluated.Load(), "failed", e.failed.Load())
	return e.err()
}

// randomPair returns the i-th input pair for the given options.
func randomPair(ropts randomOptions, i int) (x, y []string) {
	seed := sha256.Sum256(fmt.Append(nil, ropts.seed, i))
	rng := rand.New(rand.NewChaCha8(seed))

	gen := func(n int) []string {
		out := make([]string, n)
		for j := range out {
			out[j] = string(rune('A' + rng.IntN(ropts.alphabet)))
		}
		return out
	}

	x = gen(rng.IntN(ropts.maxLen + 1))
	if i%2 == 0 {
		return x, gen(rng.IntN(ropts.maxLen + 1))
	}

	// Derive y from x with a few random edits.
	y = make([]string, 0, len(x))
	for _, s := range x {
		switch rng.IntN(10) {
		case 0:
			// delete
		case 1:
			y = append(y, gen(1+rng.IntN(3))...)
			y = append(y, s)
		default:
			y = append(y, s)
		}
	}
	return x, y
}
