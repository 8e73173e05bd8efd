package errors

// Package errors provides sentinel errors for documentation scanning and
// metadata extraction. Callers wrap them with %w so errors.Is keeps working.

import "errors"

var (
	// ErrScanRootNotFound indicates the configured scan root does not exist.
	ErrScanRootNotFound = errors.New("scan root not found")

	// ErrScanRootNotDir indicates the configured scan root is not a directory.
	ErrScanRootNotDir = errors.New("scan root is not a directory")

	// ErrDocsDirWalkFailed indicates filesystem traversal of the scan root failed.
	ErrDocsDirWalkFailed = errors.New("documentation directory walk failed")

	// ErrFileReadFailed indicates reading a discovered documentation file failed.
	ErrFileReadFailed = errors.New("documentation file read failed")

	// ErrInvalidPattern indicates an include or exclude glob did not compile.
	ErrInvalidPattern = errors.New("invalid glob pattern")
)
