package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// Load loads and validates the configuration file at configPath.
func Load(configPath string) (*Config, error) {
	loadEnv()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, derrors.NotFoundError("configuration file not found").
			WithContext("path", configPath).
			WithCause(err).
			Build()
	}
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "invalid configuration").
			WithContext("path", configPath).
			Fatal().
			Build()
	}
	return cfg, nil
}

// LoadOrDefault loads configPath when it exists and falls back to Default
// otherwise. found reports whether a file was read.
func LoadOrDefault(configPath string) (cfg *Config, found bool, err error) {
	if _, statErr := os.Stat(configPath); errors.Is(statErr, fs.ErrNotExist) {
		loadEnv()
		cfg, err = Default()
		return cfg, false, err
	}
	cfg, err = Load(configPath)
	return cfg, err == nil, err
}

// Default returns the configuration used without a config file.
func Default() (*Config, error) {
	return finalize(&Config{})
}

// Parse decodes YAML after ${VAR} expansion, then normalizes, applies
// defaults and validates. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return finalize(&cfg)
}

// Finalize normalizes, defaults and validates a config assembled in code,
// for example after CLI overrides were applied.
func Finalize(cfg *Config) (*Config, error) {
	out, err := finalize(cfg)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "invalid configuration").Build()
	}
	return out, nil
}

func finalize(cfg *Config) (*Config, error) {
	nres, err := NormalizeConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	for _, w := range nres.Warnings {
		slog.Warn("Config normalization", slog.String("warning", w))
	}
	if err := NewDefaultApplier().ApplyDefaults(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func loadEnv() {
	name, err := loadEnvFile()
	switch {
	case err != nil:
		slog.Warn("Could not load .env file", logfields.Error(err))
	case name != "":
		slog.Debug("Loaded environment variables", logfields.File(name))
	}
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	collapsed := false
	collapseIndex := true
	example := Config{
		Dir:           "docs",
		Root:          ".",
		Extension:     ".md",
		IndexName:     "index",
		CollapseIndex: &collapseIndex,
		Exclude:       []string{"**/drafts/**"},
		Sort:          "asc",
		Nav: SurfaceConfig{
			Depth: 2,
		},
		Sidebar: SidebarConfig{
			Collapsed: &collapsed,
			Scope:     "nav",
		},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
		Output:  OutputConfig{Format: OutputFormatJSON},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
