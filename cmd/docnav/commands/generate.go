package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/generator"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/sorting"
)

// GenerateCmd implements the 'generate' command. Flags override the
// configuration file.
type GenerateCmd struct {
	Dir          string   `arg:"" optional:"" help:"Documentation directory to scan"`
	Root         string   `help:"Directory links are relative to when --add-dir-prefix is set"`
	AddDirPrefix *bool    `name:"add-dir-prefix" help:"Prefix links with the path of the docs directory below --root"`
	Depth        *int     `name:"depth" help:"Nav depth (0 = unbounded)"`
	SidebarDepth *int     `name:"sidebar-depth" help:"Sidebar depth relative to each section (0 = unbounded)"`
	Scope        string   `help:"Sidebar sections: nav, tree or auto"`
	Collapsed    *bool    `help:"Mark sidebar groups collapsible and set their initial state"`
	Sort         string   `help:"Sibling order: asc or desc"`
	Include      []string `help:"Glob patterns to include (replaces the configured list)"`
	Exclude      []string `help:"Glob patterns to exclude (replaces the configured list)"`
	Cache        string   `help:"SQLite metadata cache path"`
	Format       string   `short:"f" help:"Output format: json or yaml"`
	Output       string   `short:"o" help:"Write the result to this file instead of stdout"`
	Metrics      string   `name:"metrics-textfile" help:"Write Prometheus metrics to this textfile"`

	ExcludeRootIndex *bool `name:"exclude-root-index" help:"Drop the top-level index page from nav"`
	FormatSortPrefix *bool `name:"format-sort-prefix" help:"Strip numeric sort prefixes from display text"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if cfg, err = g.apply(cfg); err != nil {
		return err
	}
	root.applyLogging(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return RunGenerate(ctx, global, cfg)
}

// RunGenerate generates and writes the result for cfg.
func RunGenerate(ctx context.Context, global *Global, cfg *config.Config) error {
	res, err := generator.New(cfg).Generate(ctx)
	if err != nil {
		return err
	}
	if cfg.Output.File != "" {
		if err := generator.WriteFile(cfg.Output.File, res, cfg.Output.Format); err != nil {
			return err
		}
		slog.Info("Wrote navigation", logfields.File(cfg.Output.File))
		return nil
	}
	return generator.Write(global.stdout(), res, cfg.Output.Format)
}

// apply overlays the flags onto cfg and finalizes the result.
func (g *GenerateCmd) apply(cfg *config.Config) (*config.Config, error) {
	setString(&cfg.Dir, g.Dir)
	setString(&cfg.Root, g.Root)
	setBool(&cfg.AddDirPrefix, g.AddDirPrefix)
	setBool(&cfg.ExcludeRootIndex, g.ExcludeRootIndex)
	setBool(&cfg.FormatSortPrefix, g.FormatSortPrefix)
	if g.Depth != nil {
		cfg.Nav.Depth = *g.Depth
	}
	if g.SidebarDepth != nil {
		cfg.Sidebar.Depth = *g.SidebarDepth
	}
	if g.Scope != "" {
		cfg.Sidebar.Scope = nav.Scope(g.Scope)
	}
	if g.Collapsed != nil {
		collapsed := *g.Collapsed
		cfg.Sidebar.Collapsed = &collapsed
	}
	if g.Sort != "" {
		cfg.Sort = sorting.Mode(g.Sort)
	}
	if len(g.Include) > 0 {
		cfg.Include = g.Include
	}
	if len(g.Exclude) > 0 {
		cfg.Exclude = g.Exclude
	}
	setString(&cfg.Cache.Path, g.Cache)
	if g.Format != "" {
		cfg.Output.Format = config.OutputFormat(g.Format)
	}
	setString(&cfg.Output.File, g.Output)
	setString(&cfg.Metrics.Textfile, g.Metrics)
	return config.Finalize(cfg)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
