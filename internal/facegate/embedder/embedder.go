// Package embedder turns a captured photo into a fixed-length face
// embedding by calling an external inference server.  The server owns the
// model; this package owns image preprocessing and the wire exchange.
package embedder

import (
	"context"
	"errors"
)

// ErrModelUnavailable means the inference backend cannot be reached or
// reports that its model artifact is missing.  Callers treat this
// distinctly from a failed inference on a reachable backend.
var ErrModelUnavailable = errors.New("embedding model unavailable")

// ErrInferenceFailed wraps any decode or inference error from a reachable
// backend.
var ErrInferenceFailed = errors.New("face embedding inference failed")

// Embedder computes a face embedding for an image.
type Embedder interface {
	// Embed returns the embedding vector for the photo bytes.  Fails
	// with ErrModelUnavailable if the backend is down, or an error
	// wrapping ErrInferenceFailed for anything the backend rejected.
	Embed(ctx context.Context, image []byte) ([]float32, error)

	// Ready reports whether the inference backend is reachable.  Used
	// by the verification path to detect a degraded environment before
	// deciding anything.
	Ready(ctx context.Context) bool
}
