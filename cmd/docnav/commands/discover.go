package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/generator"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct {
	Dir     string   `arg:"" optional:"" help:"Documentation directory to scan"`
	Include []string `help:"Glob patterns to include (replaces the configured list)"`
	Exclude []string `help:"Glob patterns to exclude (replaces the configured list)"`
}

func (d *DiscoverCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	setString(&cfg.Dir, d.Dir)
	if len(d.Include) > 0 {
		cfg.Include = d.Include
	}
	if len(d.Exclude) > 0 {
		cfg.Exclude = d.Exclude
	}
	if cfg, err = config.Finalize(cfg); err != nil {
		return err
	}
	root.applyLogging(cfg)
	return RunDiscover(context.Background(), global, cfg)
}

// RunDiscover prints the scanned files relative to the docs directory.
func RunDiscover(ctx context.Context, global *Global, cfg *config.Config) error {
	files, err := generator.New(cfg).Scan(ctx)
	if err != nil {
		return err
	}
	absDir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return fmt.Errorf("resolve docs directory: %w", err)
	}

	out := global.stdout()
	for _, f := range files {
		rel, err := filepath.Rel(absDir, f)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, filepath.ToSlash(rel)); err != nil {
			return err
		}
	}
	slog.Info("Discovery completed", logfields.Path(absDir), logfields.Count(len(files)))
	return nil
}
