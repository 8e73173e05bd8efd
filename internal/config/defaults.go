package config

import (
	"fmt"

	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/sorting"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// ScanDefaultApplier handles scan root and link derivation defaults.
type ScanDefaultApplier struct{}

func (ScanDefaultApplier) Domain() string { return "scan" }

func (ScanDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Extension == "" {
		cfg.Extension = ".md"
	}
	if cfg.IndexName == "" {
		cfg.IndexName = "index"
	}
	if cfg.CollapseIndex == nil {
		enabled := true
		cfg.CollapseIndex = &enabled
	}
	if cfg.Sort == "" {
		cfg.Sort = sorting.ModeAsc
	}
	return nil
}

// SidebarDefaultApplier handles sidebar defaults.
type SidebarDefaultApplier struct{}

func (SidebarDefaultApplier) Domain() string { return "sidebar" }

func (SidebarDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Sidebar.Scope == "" {
		cfg.Sidebar.Scope = nav.ScopeNav
	}
	return nil
}

// LoggingDefaultApplier handles logging defaults.
type LoggingDefaultApplier struct{}

func (LoggingDefaultApplier) Domain() string { return "logging" }

func (LoggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	return nil
}

// OutputDefaultApplier handles output defaults.
type OutputDefaultApplier struct{}

func (OutputDefaultApplier) Domain() string { return "output" }

func (OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Format == "" {
		cfg.Output.Format = OutputFormatJSON
	}
	return nil
}

// CompositeDefaultApplier applies defaults across all configuration domains.
type CompositeDefaultApplier struct {
	appliers []DefaultApplier
}

// NewDefaultApplier creates a composite default applier with all domain appliers.
func NewDefaultApplier() *CompositeDefaultApplier {
	return &CompositeDefaultApplier{
		appliers: []DefaultApplier{
			ScanDefaultApplier{},
			SidebarDefaultApplier{},
			LoggingDefaultApplier{},
			OutputDefaultApplier{},
		},
	}
}

// ApplyDefaults applies defaults for all configuration domains.
func (c *CompositeDefaultApplier) ApplyDefaults(cfg *Config) error {
	for _, applier := range c.appliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("applying defaults for %s: %w", applier.Domain(), err)
		}
	}
	return nil
}

