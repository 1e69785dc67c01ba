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
	"path"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"znkr.io/ses/internal/cmd/eval/internal/git"
)

// Files with these extensions are skipped, they are rarely line oriented.
var binaryExts = map[string]bool{
	".gz":   true,
	".jpg":  true,
	".pdf":  true,
	".png":  true,
	".syso": true,
	".zip":  true,
}

func newGitCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "git <repo>",
		Short: "Evaluate on the line changes in the history of a git repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGit(cmd, opts, args[0], limit)
		},
	}

	cmd.Flags().IntVar(&limit, "commits", 0, "evaluate at most this many commits (0 means all)")
	return cmd
}

func runGit(cmd *cobra.Command, opts *options, dir string, limit int) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	repo, err := git.Open(ctx, dir)
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}
	revs, err := repo.RevList(ctx)
	if err != nil {
		return fmt.Errorf("listing commits: %w", err)
	}
	if limit > 0 && len(revs) > limit {
		revs = revs[:limit]
	}
	logger.Info("Evaluating commits", "repo", dir, "commits", len(revs))

	e, finish, err := newEvaluator(logger, opts)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.parallel)
	for _, rev := range revs {
		files, err := repo.DiffTree(gctx, rev)
		if err != nil {
			g.Go(func() error { return fmt.Errorf("reading commit %s: %w", rev, err) })
			break
		}
		for _, f := range files {
			if binaryExts[path.Ext(f.Name)] {
				continue
			}
			g.Go(func() error {
				x, err := repo.Blob(gctx, f.OldID)
				if err != nil {
					return err
				}
				y, err := repo.Blob(gctx, f.NewID)
				if err != nil {
					return err
				}
				if strings.IndexByte(x, 0) >= 0 || strings.IndexByte(y, 0) >= 0 {
					logger.Debug("skipping binary file", "commit", rev, "file", f.Name)
					return nil
				}
				return e.eval(rev[:min(len(rev), 12)]+":"+f.Name, lines(x), lines(y))
			})
		}
	}
	err = g.Wait()
	if ferr := finish(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	prog.done("Evaluated repository", "changes", e.evaluated.Load(), "failed", e.failed.Load())
	return e.err()
}

// lines splits s into lines, keeping the line endings. It returns nil for an empty s.
func lines(s string) []string {
	if s == "" {
		return nil
	}
	out := strings.SplitAfter(s, "\n")
	if out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}
