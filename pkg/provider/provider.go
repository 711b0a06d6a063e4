// Copyright 2025 walteh LLC
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

package provider

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Provider enumerates the files a run should touch. Paths are relative
// to Root and slash separated.
type Provider interface {
	// 📁 Root returns the absolute directory all paths are relative to
	Root() string

	// 📂 ListTargets yields candidate paths in a deterministic order. Each
	// range walks the source again. A non-nil error is tied to its path and
	// never ends the sequence.
	ListTargets(ctx context.Context) iter.Seq2[string, error]
}

// DefaultExcludeDirs are directory names a recursive scan never enters
var DefaultExcludeDirs = []string{".git", "node_modules", "__pycache__", ".venv", "venv", "js", "images"}

// DefaultPatterns select the files a recursive scan yields
var DefaultPatterns = []string{"**/*.html", "**/*.htm"}

// 📋 FixedList yields a caller supplied list of paths, in order, dropping
// those that do not exist. A missing path marked as required is yielded
// with an error wrapping ErrNotFound instead.
type FixedList struct {
	root     string
	paths    []string
	required map[string]struct{}
}

// NewFixedList creates a FixedList rooted at root
func NewFixedList(root string, paths []string) *FixedList {
	return &FixedList{
		root:  absRoot(root),
		paths: slices.Clone(paths),
	}
}

// Require marks paths whose absence is an error rather than a skip
func (p *FixedList) Require(paths ...string) *FixedList {
	if p.required == nil {
		p.required = make(map[string]struct{}, len(paths))
	}
	for _, path := range paths {
		p.required[filepath.ToSlash(filepath.Clean(path))] = struct{}{}
	}
	return p
}

func (p *FixedList) Root() string {
	return p.root
}

func (p *FixedList) ListTargets(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		logger := zerolog.Ctx(ctx)
		for _, path := range p.paths {
			path = filepath.ToSlash(filepath.Clean(path))
			_, err := os.Stat(filepath.Join(p.root, filepath.FromSlash(path)))
			switch {
			case err == nil:
				if !yield(path, nil) {
					return
				}
			case errors.Is(err, fs.ErrNotExist):
				if _, ok := p.required[path]; ok {
					if !yield(path, errors.Errorf("%w: %s", ErrNotFound, path)) {
						return
					}
					continue
				}
				logger.Debug().Str("path", path).Msg("skipping missing file")
			default:
				if !yield(path, errors.Errorf("checking %s: %w", path, err)) {
					return
				}
			}
		}
	}
}

// 🌳 RecursiveScan walks a directory tree and yields every file matching
// one of its patterns, skipping excluded directory names.
type RecursiveScan struct {
	root     string
	excludes map[string]struct{}
	patterns []string
}

// ScanOption configures a RecursiveScan
type ScanOption func(*RecursiveScan)

// WithExcludeDirs replaces the excluded directory names
func WithExcludeDirs(names ...string) ScanOption {
	return func(s *RecursiveScan) {
		s.excludes = make(map[string]struct{}, len(names))
		for _, name := range names {
			s.excludes[name] = struct{}{}
		}
	}
}

// WithExtraExcludeDirs adds names to the excluded directories, keeping the
// ones already set
func WithExtraExcludeDirs(names ...string) ScanOption {
	return func(s *RecursiveScan) {
		for _, name := range names {
			s.excludes[name] = struct{}{}
		}
	}
}

// WithPatterns replaces the doublestar patterns files must match
func WithPatterns(patterns ...string) ScanOption {
	return func(s *RecursiveScan) {
		s.patterns = slices.Clone(patterns)
	}
}

// NewRecursiveScan creates a RecursiveScan rooted at root
func NewRecursiveScan(root string, opts ...ScanOption) *RecursiveScan {
	s := &RecursiveScan{root: absRoot(root)}
	WithExcludeDirs(DefaultExcludeDirs...)(s)
	WithPatterns(DefaultPatterns...)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RecursiveScan) Root() string {
	return s.root
}

type scanEntry struct {
	path string
	err  error
}

func (s *RecursiveScan) ListTargets(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, entry := range s.scan(ctx) {
			if !yield(entry.path, entry.err) {
				return
			}
		}
	}
}

// scan collects and sorts the whole tree so the order depends only on the
// full relative path.
func (s *RecursiveScan) scan(ctx context.Context) []scanEntry {
	logger := zerolog.Ctx(ctx)

	var entries []scanEntry
	walkErr := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if err != nil {
			if rel == "." {
				return err
			}
			entries = append(entries, scanEntry{path: rel, err: errors.Errorf("walking %s: %w", rel, err)})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if rel != "." {
				if _, skip := s.excludes[d.Name()]; skip {
					logger.Debug().Str("dir", rel).Msg("skipping excluded directory")
					return fs.SkipDir
				}
			}
			return nil
		}

		if s.matches(rel) {
			entries = append(entries, scanEntry{path: rel})
		}
		return nil
	})
	if walkErr != nil {
		entries = append(entries, scanEntry{path: ".", err: errors.Errorf("walking %s: %w", s.root, walkErr)})
	}

	slices.SortStableFunc(entries, func(a, b scanEntry) int {
		switch {
		case a.path < b.path:
			return -1
		case a.path > b.path:
			return 1
		default:
			return 0
		}
	})
	return entries
}

func (s *RecursiveScan) matches(rel string) bool {
	for _, pattern := range s.patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// Collect drains a provider into a slice, stopping at the first error
func Collect(ctx context.Context, p Provider) ([]string, error) {
	var paths []string
	for path, err := range p.ListTargets(ctx) {
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func absRoot(root string) string {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return filepath.Clean(root)
	}
	return abs
}
