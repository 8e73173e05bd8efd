package config

import (
	"errors"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/sorting"
)

// NormalizationResult captures adjustments and warnings from the normalization pass.
type NormalizationResult struct {
	Warnings []string
}

// NormalizeConfig canonicalizes enumerated and bounded fields in place
// before defaults are applied. Unknown logging values fall back with a
// warning; unknown values that change the generated output are errors.
func NormalizeConfig(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, errors.New("config nil")
	}
	res := &NormalizationResult{}

	mode, err := sorting.ParseMode(string(c.Sort))
	if err != nil {
		return nil, fmt.Errorf("sort: %w", err)
	}
	c.Sort = mode

	scope, err := nav.ParseScope(string(c.Sidebar.Scope))
	if err != nil {
		return nil, fmt.Errorf("sidebar.scope: %w", err)
	}
	c.Sidebar.Scope = scope

	format, err := ParseOutputFormat(string(c.Output.Format))
	if err != nil {
		return nil, fmt.Errorf("output.format: %w", err)
	}
	c.Output.Format = format

	normalizeLogging(&c.Logging, res)

	if ext := strings.TrimSpace(c.Extension); ext != "" && !strings.HasPrefix(ext, ".") {
		res.Warnings = append(res.Warnings, warnChanged("extension", c.Extension, "."+ext))
		c.Extension = "." + ext
	}

	c.Include = normalizeStringSlice("include", c.Include, res)
	c.Exclude = normalizeStringSlice("exclude", c.Exclude, res)
	normalizeSurface("nav", &c.Nav, res)
	normalizeSurface("sidebar", &c.Sidebar.SurfaceConfig, res)
	return res, nil
}

func normalizeSurface(label string, s *SurfaceConfig, res *NormalizationResult) {
	s.Include = normalizeStringSlice(label+".include", s.Include, res)
	s.Exclude = normalizeStringSlice(label+".exclude", s.Exclude, res)
	if s.Depth < 0 {
		res.Warnings = append(res.Warnings, warnChanged(label+".depth", s.Depth, 0))
		s.Depth = 0
	}
}

func normalizeLogging(l *LoggingConfig, res *NormalizationResult) {
	if raw := strings.TrimSpace(string(l.Level)); raw != "" {
		lvl := NormalizeLogLevel(raw)
		if !strings.EqualFold(raw, string(lvl)) && !strings.EqualFold(raw, "warning") {
			res.Warnings = append(res.Warnings, warnUnknown("logging.level", raw, string(lvl)))
		}
		l.Level = lvl
	}
	if raw := strings.TrimSpace(string(l.Format)); raw != "" {
		f := NormalizeLogFormat(raw)
		if !strings.EqualFold(raw, string(f)) {
			res.Warnings = append(res.Warnings, warnUnknown("logging.format", raw, string(f)))
		}
		l.Format = f
	}
}

// normalizeStringSlice trims and dedupes a pattern list, keeping order.
func normalizeStringSlice(label string, in []string, res *NormalizationResult) []string {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		t := strings.TrimSpace(v)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) != len(in) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("normalized %s: removed %d empty or duplicate entries", label, len(in)-len(out)))
	}
	return out
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnUnknown(field, value, def string) string {
	return fmt.Sprintf("unknown %s '%s', defaulting to %s", field, value, def)
}
