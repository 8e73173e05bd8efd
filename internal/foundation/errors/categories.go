package errors

import (
	"log/slog"
	"maps"
	"slices"
)

// ErrorCategory groups errors by who has to act on them.
type ErrorCategory string

const (
	// CategoryConfig covers the configuration file and command-line flags.
	CategoryConfig ErrorCategory = "config"
	// CategoryValidation covers input that breaks a precondition, such as a
	// document outside the scan root.
	CategoryValidation ErrorCategory = "validation"
	CategoryNotFound   ErrorCategory = "not_found"
	CategoryFileSystem ErrorCategory = "filesystem"
	// CategoryCache failures only cost performance.
	CategoryCache    ErrorCategory = "cache"
	CategoryOutput   ErrorCategory = "output"
	CategoryInternal ErrorCategory = "internal"
)

var exitCodes = map[ErrorCategory]int{
	CategoryValidation: 2,
	CategoryNotFound:   4,
	CategoryConfig:     7,
	CategoryInternal:   10,
	CategoryFileSystem: 11,
	CategoryCache:      11,
	CategoryOutput:     11,
}

// ExitCode is the process status for a run that failed with c.
func (c ErrorCategory) ExitCode() int {
	if code, ok := exitCodes[c]; ok {
		return code
	}
	return 1
}

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"
	SeverityError   ErrorSeverity = "error"
	SeverityWarning ErrorSeverity = "warning"
)

// Level maps the severity onto a slog level.
func (s ErrorSeverity) Level() slog.Level {
	if s == SeverityWarning {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// ErrorContext is structured detail attached to an error.
type ErrorContext map[string]any

// Attrs returns the context as slog attributes in key order.
func (c ErrorContext) Attrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, len(c))
	for _, k := range slices.Sorted(maps.Keys(c)) {
		attrs = append(attrs, slog.Any(k, c[k]))
	}
	return attrs
}
