// Package apperr defines the sentinel errors shared across the exporter.
package apperr

import "errors"

var (
	// ErrTokenMissing means no usable Joplin API token could be obtained.
	ErrTokenMissing = errors.New("joplin api token missing")
	// ErrUnreachable means the Joplin clipper service did not answer.
	ErrUnreachable = errors.New("joplin api unreachable")
	// ErrNotFound covers missing tags and missing API records.
	ErrNotFound = errors.New("not found")
	// ErrMalformedHierarchy means the notebook forest contains a parent cycle.
	ErrMalformedHierarchy = errors.New("malformed notebook hierarchy")
)
