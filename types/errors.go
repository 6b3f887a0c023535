package types

import "errors"

var (
	// ErrAccessDenied means the requester is not allowed to query the
	// document. Surfaced as 403, distinct from ErrNotFound.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound means the referenced document or curriculum entry has
	// no record.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedFormat marks a file whose format has no extractor.
	// Ingestion degrades to empty text instead of failing on it.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrDependencyUnavailable wraps failures of the embedding service,
	// vector index or language model. Retryable by the caller.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
