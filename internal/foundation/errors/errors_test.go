package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("path lies outside the scan root")

func TestClassifiedError_Fields(t *testing.T) {
	err := ValidationError("invalid path").
		WithContext("path", "/tmp/other/a.md").
		WithContext("root", "/tmp/docs").
		WithCause(errSentinel).
		Build()

	assert.Equal(t, CategoryValidation, err.Category())
	assert.Equal(t, SeverityFatal, err.Severity())
	assert.Equal(t, "invalid path", err.Message())
	assert.Equal(t, "/tmp/other/a.md", err.Context()["path"])
	assert.Equal(t,
		"[validation:fatal] invalid path path=/tmp/other/a.md root=/tmp/docs: path lies outside the scan root",
		err.Error())
}

func TestClassifiedError_UnwrapsCause(t *testing.T) {
	err := WrapError(errSentinel, CategoryFileSystem, "scan failed").Build()
	assert.ErrorIs(t, err, errSentinel)

	wrapped := fmt.Errorf("generate: %w", err)
	classified, ok := AsClassified(wrapped)
	require.True(t, ok)
	assert.Equal(t, CategoryFileSystem, classified.Category())
	assert.True(t, HasCategory(wrapped, CategoryFileSystem))
	assert.False(t, HasCategory(wrapped, CategoryConfig))
	assert.False(t, HasCategory(errSentinel, CategoryFileSystem))
}

func TestClassifiedError_IsComparesCategoryAndMessage(t *testing.T) {
	a := ConfigError("bad sort mode").WithContext("value", "x").Build()
	b := ConfigError("bad sort mode").Build()
	c := ValidationError("bad sort mode").Build()

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, c)
}

func TestBuilder_BuildCopiesContext(t *testing.T) {
	template := NotFoundError("missing").WithContext("dir", "docs")
	first := template.Build()
	second := template.WithContext("dir", "guide").Build()

	assert.Equal(t, "docs", first.Context()["dir"])
	assert.Equal(t, "guide", second.Context()["dir"])
}

func TestDefaultSeverities(t *testing.T) {
	tests := []struct {
		err  *ClassifiedError
		want ErrorSeverity
	}{
		{ConfigError("x").Build(), SeverityFatal},
		{ValidationError("x").Build(), SeverityFatal},
		{NotFoundError("x").Build(), SeverityError},
		{CacheError("x").Build(), SeverityWarning},
		{OutputError("x").Build(), SeverityError},
		{NewError(CategoryInternal, "x").Fatal().Build(), SeverityFatal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Severity(), tt.err.Category())
	}
	assert.Equal(t, slog.LevelWarn, SeverityWarning.Level())
	assert.Equal(t, slog.LevelError, SeverityFatal.Level())
}

func TestErrorContext_AttrsSorted(t *testing.T) {
	attrs := ErrorContext{"b": 2, "a": 1}.Attrs()
	require.Len(t, attrs, 2)
	assert.Equal(t, "a", attrs[0].Key)
	assert.Equal(t, "b", attrs[1].Key)
	assert.Empty(t, ErrorContext(nil).Attrs())
}
