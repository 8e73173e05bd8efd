// Package docs discovers documentation files and extracts the metadata the
// navigation engine needs from them.
package docs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	derrors "git.home.luguber.info/inful/docnav/internal/docs/errors"
	"git.home.luguber.info/inful/docnav/internal/links"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// DefaultExcludes are always applied in addition to caller excludes.
var DefaultExcludes = []string{
	"**/node_modules/**",
	"**/dist/**",
	"**/.git/**",
}

// skippedDirs short-circuits the walk for the default deny list.
var skippedDirs = map[string]struct{}{
	"node_modules": {},
	"dist":         {},
	".git":         {},
}

// ScanOptions configures a Scanner.
type ScanOptions struct {
	// Extension is the document suffix to keep, e.g. ".md".
	Extension string
	Include   []string
	Exclude   []string
}

// Scanner walks a directory tree and returns matching documentation files.
type Scanner struct {
	extension string
	matcher   *links.Matcher
}

// NewScanner compiles the scan rules.
func NewScanner(opts ScanOptions) (*Scanner, error) {
	ext := opts.Extension
	if ext == "" {
		ext = ".md"
	}
	exclude := append(slices.Clone(DefaultExcludes), opts.Exclude...)
	m, err := links.NewMatcher(opts.Include, exclude)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", derrors.ErrInvalidPattern, err)
	}
	return &Scanner{extension: ext, matcher: m}, nil
}

// Scan returns the absolute paths of every matching file under root,
// sorted lexically. Include and exclude patterns are matched against the
// '/'-separated path relative to root.
func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", derrors.ErrScanRootNotFound, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrScanRootNotFound, absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", derrors.ErrScanRootNotDir, absRoot)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := skippedDirs[d.Name()]; skip && path != absRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), s.extension) {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		rel = links.NormalizePath(rel)
		if !s.matcher.Includes(rel) {
			slog.DebugContext(ctx, "Excluded file", logfields.File(rel))
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", derrors.ErrDocsDirWalkFailed, err)
	}

	slices.Sort(files)
	slog.DebugContext(ctx, "Scanned documentation files", logfields.Path(absRoot), logfields.Count(len(files)))
	return files, nil
}

// Filter returns the files under root that pass include and exclude. It is
// used to derive per-surface file sets from one scan.
func Filter(root string, files []string, include, exclude []string) ([]string, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return files, nil
	}
	m, err := links.NewMatcher(include, exclude)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", derrors.ErrInvalidPattern, err)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(absRoot, f)
		if err != nil {
			return nil, err
		}
		if m.Includes(links.NormalizePath(rel)) {
			out = append(out, f)
		}
	}
	return out, nil
}
