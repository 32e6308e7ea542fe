package services

import "errors"

// Error categories surfaced to handlers. Services wrap these with
// context (fmt.Errorf("story %q: %w", slug, ErrNotFound)) and handlers
// map the category to an HTTP status with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("conflict")
	ErrValidation       = errors.New("validation failed")
)
