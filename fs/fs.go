// Package fs resolves markdown input files from doublestar glob patterns.
package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/marky"
)

// Source is one input document.
type Source struct {
	Path    string
	Content string
}

// Glob returns the regular files matching patterns, in pattern order and
// lexical order within a pattern. Patterns support ** for recursive
// matching; a pattern without meta characters names a single file. A file
// matched by several patterns is returned once.
func Glob(patterns []string) ([]string, error) {
	var matches []string
	seen := make(map[string]bool)
	for _, p := range patterns {
		found, err := glob(p)
		if err != nil {
			return nil, err
		}
		for _, path := range found {
			if seen[path] {
				continue
			}
			seen[path] = true
			matches = append(matches, path)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %q: %w", patterns, marky.ErrNoInput)
	}
	return matches, nil
}

func glob(pattern string) ([]string, error) {
	slashed := filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(slashed) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, marky.ErrValidation)
	}

	base, rest := doublestar.SplitPattern(slashed)
	info, err := os.Stat(filepath.FromSlash(base))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("access %s: %w", base, err)
	}
	if !info.IsDir() {
		return []string{filepath.FromSlash(slashed)}, nil
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(filepath.FromSlash(base)), rest, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.Join(filepath.FromSlash(base), filepath.FromSlash(path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("match %q: %w", pattern, err)
	}
	slices.Sort(matches)
	return matches, nil
}

// Read loads the content of each path.
func Read(paths []string) ([]Source, error) {
	sources := make([]Source, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		sources[i] = Source{Path: p, Content: string(data)}
	}
	return sources, nil
}
