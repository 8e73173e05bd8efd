package docs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/inful/mdfp"

	derrors "git.home.luguber.info/inful/docnav/internal/docs/errors"
	"git.home.luguber.info/inful/docnav/internal/frontmatter"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/markdown"
	"git.home.luguber.info/inful/docnav/internal/metacache"
	"git.home.luguber.info/inful/docnav/internal/tree"
)

// ExtractStats counts extraction outcomes for a run.
type ExtractStats struct {
	Extracted int
	CacheHits int
	Failures  int
}

// Extractor reads front matter and the first heading of documentation
// files. Results are memoized per path for the lifetime of the Extractor,
// so building several forests from overlapping file sets reads each file once.
type Extractor struct {
	cache    *metacache.Store
	logger   *slog.Logger
	readFile func(string) ([]byte, error)
	memo     map[string]tree.FileMeta
	stats    ExtractStats
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithCache enables the persistent metadata cache.
func WithCache(store *metacache.Store) ExtractorOption {
	return func(e *Extractor) { e.cache = store }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) { e.logger = logger }
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		logger:   slog.Default(),
		readFile: os.ReadFile,
		memo:     make(map[string]tree.FileMeta),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stats returns the counters accumulated so far.
func (e *Extractor) Stats() ExtractStats {
	return e.stats
}

// Extract implements tree.Extractor. It never fails: unreadable files and
// malformed front matter are logged and yield empty metadata, so the title
// falls back to later sources.
func (e *Extractor) Extract(ctx context.Context, absPath string) tree.FileMeta {
	if meta, ok := e.memo[absPath]; ok {
		return meta
	}
	meta := e.extract(ctx, absPath)
	e.memo[absPath] = meta
	return meta
}

func (e *Extractor) extract(ctx context.Context, absPath string) tree.FileMeta {
	content, err := e.readFile(absPath)
	if err != nil {
		e.stats.Failures++
		e.logger.WarnContext(ctx, "Unable to read documentation file",
			logfields.File(absPath),
			logfields.Error(fmt.Errorf("%w: %w", derrors.ErrFileReadFailed, err)))
		return tree.FileMeta{Frontmatter: map[string]any{}}
	}

	fm, body, _, splitErr := frontmatter.Split(content)
	if splitErr != nil {
		fm, body = nil, content
	}
	fingerprint := mdfp.CalculateFingerprintFromParts(strings.TrimSuffix(string(fm), "\n"), string(body))

	if entry, ok := e.lookup(ctx, absPath, fingerprint); ok {
		e.stats.CacheHits++
		return tree.FileMeta{
			Frontmatter:  nonNil(entry.Frontmatter),
			FirstHeading: entry.FirstHeading,
			Fingerprint:  fingerprint,
		}
	}

	fields := map[string]any{}
	switch {
	case splitErr != nil:
		e.logger.WarnContext(ctx, "Ignoring malformed front matter", logfields.File(absPath), logfields.Error(splitErr))
	case fm != nil:
		parsed, err := frontmatter.ParseYAML(fm)
		if err != nil {
			e.logger.WarnContext(ctx, "Ignoring malformed front matter", logfields.File(absPath), logfields.Error(err))
		} else {
			fields = parsed
		}
	}
	heading, _ := markdown.FirstHeading(body)

	e.stats.Extracted++
	e.store(ctx, absPath, fingerprint, metacache.Entry{Frontmatter: fields, FirstHeading: heading})
	return tree.FileMeta{Frontmatter: fields, FirstHeading: heading, Fingerprint: fingerprint}
}

func (e *Extractor) lookup(ctx context.Context, absPath, fingerprint string) (metacache.Entry, bool) {
	if e.cache == nil {
		return metacache.Entry{}, false
	}
	entry, ok, err := e.cache.Get(ctx, absPath, fingerprint)
	if err != nil {
		e.logger.WarnContext(ctx, "Metadata cache lookup failed", logfields.File(absPath), logfields.Error(err))
		return metacache.Entry{}, false
	}
	return entry, ok
}

func (e *Extractor) store(ctx context.Context, absPath, fingerprint string, entry metacache.Entry) {
	if e.cache == nil {
		return
	}
	if err := e.cache.Put(ctx, absPath, fingerprint, entry); err != nil && !errors.Is(err, context.Canceled) {
		e.logger.WarnContext(ctx, "Metadata cache update failed", logfields.File(absPath), logfields.Error(err))
	}
}

func nonNil(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
