package database

import (
	"context"

	"github.com/eduquery/eduquery-be/types"
)

// VectorIndex stores embedded chunks and answers nearest-neighbour
// queries filtered by document id. Implementations must support
// concurrent upserts and queries; the core holds no locks around it.
type VectorIndex interface {
	// Upsert writes one record per chunk. Records are keyed by chunk id,
	// so writing the same id again overwrites instead of duplicating.
	Upsert(ctx context.Context, records []types.VectorRecord) error

	// Query returns up to topK matches for the embedding, restricted to
	// records whose document id equals documentID, most similar first.
	// No matches is an empty slice, not an error.
	Query(ctx context.Context, embedding []float32, topK int, documentID string) ([]types.SearchMatch, error)
}
