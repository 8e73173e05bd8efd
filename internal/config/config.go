// Package config loads the docnav configuration file.
//
// Loading runs in fixed order: .env files, ${VAR} expansion, YAML decoding,
// normalization of enumerated fields, defaults, validation. The returned
// Config is treated as read-only afterwards.
package config

import (
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/sorting"
)

// DefaultConfigFile is looked up in the working directory when no path is given.
const DefaultConfigFile = "docnav.yaml"

// Config is the complete docnav configuration.
type Config struct {
	// Dir is the scan root.
	Dir string `yaml:"dir"`
	// Root is the process root links are relative to when AddDirPrefix is set.
	Root         string `yaml:"root"`
	AddDirPrefix bool   `yaml:"add_dir_prefix"`

	Extension string `yaml:"extension"`
	IndexName string `yaml:"index_name"`
	// CollapseIndex maps index files onto their directory link. Unset means true.
	CollapseIndex *bool `yaml:"collapse_index"`

	Include []string     `yaml:"include"`
	Exclude []string     `yaml:"exclude"`
	Sort    sorting.Mode `yaml:"sort"`
	// Titles overrides display text by relative path for both surfaces.
	Titles map[string]string `yaml:"titles,omitempty"`

	ExcludeRootIndex bool `yaml:"exclude_root_index"`
	FormatSortPrefix bool `yaml:"format_sort_prefix"`

	Nav     SurfaceConfig `yaml:"nav"`
	Sidebar SidebarConfig `yaml:"sidebar"`

	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SurfaceConfig holds per-surface (nav or sidebar) settings.
type SurfaceConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
	// Depth bounds emitted levels; 0 is unbounded.
	Depth  int               `yaml:"depth"`
	Titles map[string]string `yaml:"titles,omitempty"`
}

// SidebarConfig extends SurfaceConfig with sidebar-only settings.
type SidebarConfig struct {
	SurfaceConfig `yaml:",inline"`
	// Collapsed is tri-state: unset leaves groups non-collapsible.
	Collapsed *bool     `yaml:"collapsed"`
	Scope     nav.Scope `yaml:"scope"`
}

// CacheConfig configures the SQLite metadata cache.
type CacheConfig struct {
	// Path of the database file; empty disables the cache.
	Path string `yaml:"path"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig configures metrics export.
type MetricsConfig struct {
	// Textfile is the Prometheus textfile path; empty disables export.
	Textfile string `yaml:"textfile"`
}

// CollapseIndexEnabled resolves the tri-state CollapseIndex.
func (c *Config) CollapseIndexEnabled() bool {
	return c.CollapseIndex == nil || *c.CollapseIndex
}

// LinkRoot returns the directory links are computed relative to.
func (c *Config) LinkRoot() string {
	if c.AddDirPrefix {
		return c.Root
	}
	return c.Dir
}
