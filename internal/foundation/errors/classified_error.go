package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ClassifiedError is an error with a category, a severity and context.
// It unwraps to its cause so errors.Is still finds wrapped sentinels.
type ClassifiedError struct {
	category ErrorCategory
	severity ErrorSeverity
	message  string
	cause    error
	context  ErrorContext
}

// Error renders "[category:severity] message k=v ...: cause".
func (e *ClassifiedError) Error() string {
	var b strings.Builder
	b.WriteString("[" + string(e.category) + ":" + string(e.severity) + "] " + e.message)
	for _, attr := range e.context.Attrs() {
		fmt.Fprintf(&b, " %s=%v", attr.Key, attr.Value.Any())
	}
	if e.cause != nil {
		b.WriteString(": " + e.cause.Error())
	}
	return b.String()
}

func (e *ClassifiedError) Unwrap() error           { return e.cause }
func (e *ClassifiedError) Category() ErrorCategory { return e.category }
func (e *ClassifiedError) Severity() ErrorSeverity { return e.severity }
func (e *ClassifiedError) Message() string         { return e.message }
func (e *ClassifiedError) Cause() error            { return e.cause }
func (e *ClassifiedError) Context() ErrorContext   { return e.context }

// Is matches another ClassifiedError with the same category and message,
// ignoring context and cause.
func (e *ClassifiedError) Is(target error) bool {
	other, ok := target.(*ClassifiedError)
	return ok && e.category == other.category && e.message == other.message
}

// AsClassified returns the outermost ClassifiedError in err's chain.
func AsClassified(err error) (*ClassifiedError, bool) {
	var classified *ClassifiedError
	ok := errors.As(err, &classified)
	return classified, ok
}

// HasCategory reports whether the outermost ClassifiedError in err's chain
// belongs to category.
func HasCategory(err error, category ErrorCategory) bool {
	classified, ok := AsClassified(err)
	return ok && classified.category == category
}
