package errors

import "maps"

// Builder assembles a ClassifiedError. The category constructors below pick
// a default severity; callers add a cause and context.
type Builder struct {
	e ClassifiedError
}

func newBuilder(category ErrorCategory, severity ErrorSeverity, message string) *Builder {
	return &Builder{e: ClassifiedError{category: category, severity: severity, message: message}}
}

// NewError starts an error of any category with SeverityError.
func NewError(category ErrorCategory, message string) *Builder {
	return newBuilder(category, SeverityError, message)
}

// WrapError is NewError with err as the cause.
func WrapError(err error, category ErrorCategory, message string) *Builder {
	return NewError(category, message).WithCause(err)
}

func (b *Builder) WithCause(err error) *Builder {
	b.e.cause = err
	return b
}

// WithContext records key=value; a repeated key overwrites the earlier value.
func (b *Builder) WithContext(key string, value any) *Builder {
	if b.e.context == nil {
		b.e.context = ErrorContext{}
	}
	b.e.context[key] = value
	return b
}

// Fatal marks the error as ending the run.
func (b *Builder) Fatal() *Builder {
	b.e.severity = SeverityFatal
	return b
}

// Build returns a new error; the builder can keep being used as a template.
func (b *Builder) Build() *ClassifiedError {
	e := b.e
	e.context = maps.Clone(b.e.context)
	return &e
}

func ConfigError(message string) *Builder {
	return newBuilder(CategoryConfig, SeverityFatal, message)
}

func ValidationError(message string) *Builder {
	return newBuilder(CategoryValidation, SeverityFatal, message)
}

func NotFoundError(message string) *Builder {
	return newBuilder(CategoryNotFound, SeverityError, message)
}

// CacheError defaults to a warning: the run continues uncached.
func CacheError(message string) *Builder {
	return newBuilder(CategoryCache, SeverityWarning, message)
}

func OutputError(message string) *Builder {
	return newBuilder(CategoryOutput, SeverityError, message)
}
