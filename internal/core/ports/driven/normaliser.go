package driven

import (
	"context"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

// Normaliser builds a candidate ContentRecord from a raw capture.
// Each normaliser handles exactly one source provenance.
type Normaliser interface {
	// Source returns the provenance this normaliser handles.
	Source() domain.Source

	// Build produces a candidate record from a raw event.
	// It is a pure transform: no store access, no side effects.
	// Returns domain.ErrNoContent when neither title nor text can be
	// derived; callers must not index that result.
	Build(ctx context.Context, raw *domain.RawEvent) (*domain.ContentRecord, error)
}

// NormaliserRegistry dispatches raw events to the normaliser for their
// source provenance.
type NormaliserRegistry interface {
	// Register adds a normaliser for its source.
	Register(normaliser Normaliser)

	// Build dispatches to the registered normaliser.
	// Returns domain.ErrUnsupportedSource for unknown provenances.
	Build(ctx context.Context, raw *domain.RawEvent, source domain.Source) (*domain.ContentRecord, error)
}
