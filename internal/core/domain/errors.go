package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoContent indicates a raw event yields no usable title or text.
	// Ingestion treats this as a silent no-op, never a failure.
	ErrNoContent = errors.New("no extractable content")

	// ErrDuplicate indicates a candidate matches an existing record's
	// (text, source) pair. Ingestion aborts without mutating any store.
	ErrDuplicate = errors.New("duplicate content")

	// ErrUnsupportedSource indicates an unknown capture provenance.
	ErrUnsupportedSource = errors.New("unsupported source")

	// ErrShutdown indicates the engine has been shut down.
	ErrShutdown = errors.New("engine shut down")
)
