package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/links"
)

// ValidateConfig validates a normalized, defaulted configuration.
func ValidateConfig(cfg *Config) error {
	return newConfigurationValidator(cfg).validate()
}

type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	if cv.config == nil {
		return errors.New("config nil")
	}
	if err := cv.validateNames(); err != nil {
		return err
	}
	if err := cv.validatePaths(); err != nil {
		return err
	}
	return cv.validatePatterns()
}

func (cv *configurationValidator) validateNames() error {
	c := cv.config
	if strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("extension must not contain path separators: %q", c.Extension)
	}
	if c.IndexName == "" || strings.ContainsAny(c.IndexName, `/\`) {
		return fmt.Errorf("index_name must be a bare file name: %q", c.IndexName)
	}
	return nil
}

// validatePaths rejects a scan root outside the link root when links are
// prefixed with the scan directory.
func (cv *configurationValidator) validatePaths() error {
	c := cv.config
	if !c.AddDirPrefix {
		return nil
	}
	dir, err := filepath.Abs(c.Dir)
	if err != nil {
		return fmt.Errorf("resolve dir: %w", err)
	}
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("dir %s must be inside root %s when add_dir_prefix is set", c.Dir, c.Root)
	}
	return nil
}

func (cv *configurationValidator) validatePatterns() error {
	c := cv.config
	sets := []struct {
		label            string
		include, exclude []string
	}{
		{"", c.Include, c.Exclude},
		{"nav.", c.Nav.Include, c.Nav.Exclude},
		{"sidebar.", c.Sidebar.Include, c.Sidebar.Exclude},
	}
	for _, s := range sets {
		if _, err := links.NewMatcher(s.include, s.exclude); err != nil {
			return fmt.Errorf("%sinclude/exclude: %w", s.label, err)
		}
	}
	return nil
}
