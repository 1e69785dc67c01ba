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

// Package git provides a simplified git interface for reading a repository for evaluations
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ZeroID is the object id git reports for the missing side of an added or deleted file.
const ZeroID = "0000000000000000000000000000000000000000"

type Repo struct {
	dir string
}

// Open opens the git repository in dir.
func Open(ctx context.Context, dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	r := &Repo{dir: dir}
	if _, err := r.git(ctx, "rev-parse", "--git-dir"); err != nil {
		return nil, fmt.Errorf("%s is not a git repository: %w", dir, err)
	}
	return r, nil
}

// RevList returns all non-merge commits reachable from HEAD, newest first.
func (r *Repo) RevList(ctx context.Context) ([]string, error) {
	out, err := r.git(ctx, "rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

type FileDiff struct {
	Name  string
	OldID string
	NewID string
}

// DiffTree returns the files changed by commit. Root commits have no changes.
func (r *Repo) DiffTree(ctx context.Context, commit string) ([]FileDiff, error) {
	out, err := r.git(ctx, "diff-tree", "-r", "--no-renames", commit)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(out, "\n")
	var ret []FileDiff
	for _, line := range lines[1:] {
		if len(line) == 0 {
			continue
		}
		if line[0] != ':' {
			return nil, fmt.Errorf("diff-tree file not starting with ':': %q", line)
		}
		meta, name, ok := strings.Cut(line[1:], "\t")
		fields := strings.Fields(meta)
		if !ok || len(fields) < 4 {
			return nil, fmt.Errorf("malformed diff-tree line: %q", line)
		}
		ret = append(ret, FileDiff{
			Name:  name,
			OldID: fields[2],
			NewID: fields[3],
		})
	}
	return ret, nil
}

// Blob returns the contents of the blob with the given id. The zero id has empty contents.
func (r *Repo) Blob(ctx context.Context, id string) (string, error) {
	if id == ZeroID {
		return "", nil
	}
	return r.git(ctx, "cat-file", "blob", id)
}

func (r *Repo) git(ctx context.Context, args ...string) (string, error) {
	var wout, werr strings.Builder
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", r.dir}, args...)...)
	cmd.Stdout = &wout
	cmd.Stderr = &werr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running git command %v: %w\n%s", cmd, err, werr.String())
	}
	return wout.String(), nil
}
