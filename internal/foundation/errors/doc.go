// Package errors provides the classified error type used across docnav.
//
// A ClassifiedError carries a broad category (config, validation, filesystem,
// internal), a severity and structured context. The CLI adapter maps
// categories onto process exit codes.
//
// Example usage:
//
//	err := errors.ValidationError("path outside scan root").
//		WithContext("path", p).
//		WithCause(tree.ErrInvalidPath).
//		Build()
package errors
