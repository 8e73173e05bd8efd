// Package generator runs one navigation generation: scan the docs
// directory, build the per-surface forests, then derive the nav and the
// sidebar from them.
package generator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/docs"
	docserrors "git.home.luguber.info/inful/docnav/internal/docs/errors"
	"git.home.luguber.info/inful/docnav/internal/foundation"
	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/links"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metacache"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/observability"
	"git.home.luguber.info/inful/docnav/internal/sorting"
	"git.home.luguber.info/inful/docnav/internal/tree"
)

// Result is the generated navigation data.
type Result struct {
	Nav     []nav.Item  `json:"nav" yaml:"nav"`
	Sidebar nav.Sidebar `json:"sidebar" yaml:"sidebar"`

	Stats Stats `json:"-" yaml:"-"`
}

// Stats summarizes a run.
type Stats struct {
	RunID    string
	Files    int
	Duration time.Duration
	Extract  docs.ExtractStats
}

type textfileWriter interface {
	WriteTextfile(path string) error
}

// Generator produces a Result from a finalized configuration.
type Generator struct {
	cfg      *config.Config
	recorder metrics.Recorder
	newRunID func() string
}

// New creates a Generator. When cfg.Metrics.Textfile is set a Prometheus
// recorder is installed so the run can be exported.
func New(cfg *config.Config) *Generator {
	g := &Generator{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
		newRunID: uuid.NewString,
	}
	if cfg != nil && cfg.Metrics.Textfile != "" {
		g.recorder = metrics.NewPrometheusRecorder(nil)
	}
	return g
}

// WithRecorder replaces the metrics recorder.
func (g *Generator) WithRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	g.recorder = r
	return g
}

// Scan returns the absolute paths of the documentation files selected by
// the configuration, without building anything.
func (g *Generator) Scan(ctx context.Context) ([]string, error) {
	if g.cfg == nil {
		return nil, derrors.ConfigError("config required").Build()
	}
	scanner, err := docs.NewScanner(docs.ScanOptions{
		Extension: g.cfg.Extension,
		Include:   g.cfg.Include,
		Exclude:   g.cfg.Exclude,
	})
	if err != nil {
		return nil, classifyScanError(err, g.cfg.Dir)
	}
	files, err := scanner.Scan(ctx, g.cfg.Dir)
	if err != nil {
		return nil, classifyScanError(err, g.cfg.Dir)
	}
	return files, nil
}

// Generate runs the whole pipeline.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	start := time.Now()
	runID := g.newRunID()
	ctx = observability.WithRunID(ctx, runID)

	result, err := g.generate(ctx)
	duration := time.Since(start)
	g.recorder.ObserveRunDuration(duration)
	switch {
	case err == nil:
		g.recorder.IncRunOutcome(metrics.ResultSuccess)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		g.recorder.IncRunOutcome(metrics.ResultCanceled)
	default:
		g.recorder.IncRunOutcome(metrics.ResultFailed)
	}
	g.exportMetrics(ctx)

	if err != nil {
		return nil, err
	}
	result.Stats.RunID = runID
	result.Stats.Duration = duration
	slog.InfoContext(ctx, "Navigation generated",
		logfields.Count(result.Stats.Files),
		logfields.DurationMS(float64(duration.Microseconds())/1000))
	return result, nil
}

func (g *Generator) generate(ctx context.Context) (*Result, error) {
	if g.cfg == nil {
		return nil, derrors.ConfigError("config required").Build()
	}
	cfg := g.cfg
	ctx = observability.WithConfigHash(ctx, cfg.Snapshot())

	// Stage 1: scan
	var files []string
	err := g.stage(ctx, metrics.StageScan, func(ctx context.Context) error {
		var err error
		files, err = g.Scan(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	g.recorder.SetFilesScanned(len(files))
	slog.InfoContext(ctx, "Scanned documentation", logfields.Path(cfg.Dir), logfields.Count(len(files)))

	store := g.openCache(ctx)
	if store != nil {
		defer g.closeCache(ctx, store, files)
	}
	extractor := docs.NewExtractor(docs.WithCache(store))

	// Stage 2: per-surface forests
	var navForest, sidebarForest *tree.Forest
	err = g.stage(ctx, metrics.StageTree, func(ctx context.Context) error {
		var err error
		if navForest, err = g.buildForest(ctx, files, cfg.Nav, extractor); err != nil {
			return err
		}
		sidebarForest, err = g.buildForest(ctx, files, cfg.Sidebar.SurfaceConfig, extractor)
		return err
	})
	stats := extractor.Stats()
	g.recorder.AddExtractions(stats.Extracted, stats.CacheHits, stats.Failures)
	if err != nil {
		return nil, err
	}

	linker := g.linker()
	sorter := sorting.New(cfg.Sort)

	// Stage 3: nav
	var navItems []nav.Item
	err = g.stage(ctx, metrics.StageNav, func(context.Context) error {
		navItems = nav.GenerateNav(navForest, g.surfaceOptions(cfg.Nav, linker, sorter))
		return nil
	})
	if err != nil {
		return nil, err
	}
	g.recorder.SetNavItems(nav.Count(navItems))

	// Stage 4: sidebar
	var sidebar nav.Sidebar
	err = g.stage(ctx, metrics.StageSidebar, func(ctx context.Context) error {
		opts := nav.SidebarOptions{
			Options:   g.surfaceOptions(cfg.Sidebar.SurfaceConfig, linker, sorter),
			Collapsed: foundation.FromPointer(cfg.Sidebar.Collapsed),
			Scope:     cfg.Sidebar.Scope,
		}
		sidebar = nav.GenerateSidebar(ctx, sidebarForest, navItems, opts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	g.recorder.SetSidebarSections(len(sidebar))

	if navItems == nil {
		navItems = []nav.Item{}
	}
	return &Result{
		Nav:     navItems,
		Sidebar: sidebar,
		Stats:   Stats{Files: len(files), Extract: stats},
	}, nil
}

// stage runs fn with the stage recorded in the log context and in metrics.
func (g *Generator) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	stageStart := time.Now()
	ctx = observability.WithStage(ctx, name)
	slog.DebugContext(ctx, "Stage started")

	err := fn(ctx)
	if err == nil {
		err = ctx.Err()
	}
	g.recorder.ObserveStageDuration(name, time.Since(stageStart))
	switch {
	case err == nil:
		g.recorder.IncStageResult(name, metrics.ResultSuccess)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		g.recorder.IncStageResult(name, metrics.ResultCanceled)
		slog.WarnContext(ctx, "Stage canceled")
	default:
		g.recorder.IncStageResult(name, metrics.ResultFailed)
		slog.ErrorContext(ctx, "Stage failed", logfields.Error(err))
	}
	return err
}

func (g *Generator) buildForest(ctx context.Context, files []string, surface config.SurfaceConfig, extractor tree.Extractor) (*tree.Forest, error) {
	selected, err := docs.Filter(g.cfg.Dir, files, surface.Include, surface.Exclude)
	if err != nil {
		return nil, classifyScanError(err, g.cfg.Dir)
	}
	forest, err := tree.Build(ctx, selected, tree.BuildOptions{
		ScanRoot:  g.cfg.Dir,
		LinkRoot:  g.cfg.LinkRoot(),
		Extractor: extractor,
	})
	if err != nil {
		return nil, err
	}
	fileCount, dirCount := forest.Counts()
	slog.DebugContext(ctx, "Built forest",
		slog.Int("files", fileCount),
		slog.Int("dirs", dirCount))
	return forest, nil
}

func (g *Generator) linker() links.Linker {
	return links.Linker{
		Extension:     g.cfg.Extension,
		IndexName:     g.cfg.IndexName,
		CollapseIndex: g.cfg.CollapseIndexEnabled(),
	}
}

// surfaceOptions resolves the options of one surface. Surface title
// overrides win over the global table.
func (g *Generator) surfaceOptions(surface config.SurfaceConfig, linker links.Linker, sorter *sorting.Sorter) nav.Options {
	surfaceDir, surfaceFile := nav.TitleMapHooks(surface.Titles, linker)
	globalDir, globalFile := nav.TitleMapHooks(g.cfg.Titles, linker)
	return nav.Options{
		Linker:           linker,
		Sorter:           sorter,
		Depth:            surface.Depth,
		OnDirectory:      nav.FirstDirectoryHook(surfaceDir, globalDir),
		OnFile:           nav.FirstFileHook(surfaceFile, globalFile),
		ExcludeRootIndex: g.cfg.ExcludeRootIndex,
		FormatSortPrefix: g.cfg.FormatSortPrefix,
	}
}

func (g *Generator) openCache(ctx context.Context) *metacache.Store {
	path := g.cfg.Cache.Path
	if path == "" {
		return nil
	}
	store, err := metacache.Open(path)
	if err != nil {
		slog.WarnContext(ctx, "Metadata cache unavailable",
			logfields.Path(path),
			logfields.Error(derrors.CacheError("open metadata cache").WithCause(err).Build()))
		return nil
	}
	return store
}

func (g *Generator) closeCache(ctx context.Context, store *metacache.Store, keep []string) {
	if ctx.Err() == nil {
		if pruned, err := store.Prune(ctx, keep); err != nil {
			slog.WarnContext(ctx, "Metadata cache prune failed", logfields.Error(err))
		} else if pruned > 0 {
			slog.DebugContext(ctx, "Pruned metadata cache", logfields.Count(pruned))
		}
	}
	if err := store.Close(); err != nil {
		slog.WarnContext(ctx, "Metadata cache close failed", logfields.Error(err))
	}
}

func (g *Generator) exportMetrics(ctx context.Context) {
	if g.cfg == nil || g.cfg.Metrics.Textfile == "" {
		return
	}
	path := g.cfg.Metrics.Textfile
	w, ok := g.recorder.(textfileWriter)
	if !ok {
		return
	}
	if err := w.WriteTextfile(path); err != nil {
		slog.WarnContext(ctx, "Metrics export failed", logfields.Path(path), logfields.Error(err))
	}
}

// classifyScanError maps scan sentinels onto error categories.
func classifyScanError(err error, dir string) error {
	var category derrors.ErrorCategory
	message := "documentation scan failed"
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, docserrors.ErrScanRootNotFound):
		category, message = derrors.CategoryNotFound, "documentation directory not found"
	case errors.Is(err, docserrors.ErrScanRootNotDir):
		category, message = derrors.CategoryValidation, "documentation path is not a directory"
	case errors.Is(err, docserrors.ErrInvalidPattern):
		category, message = derrors.CategoryValidation, "invalid include or exclude pattern"
	default:
		category = derrors.CategoryFileSystem
	}
	return derrors.WrapError(err, category, message).
		WithContext("dir", dir).
		Build()
}
