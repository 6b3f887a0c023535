package service

import (
	"context"
	"fmt"

	"github.com/eduquery/eduquery-be/database"
)

const DefaultTopK = 5

// RetrievalService runs the read path: embed the question and fetch the
// top-k most similar chunks of one document from the vector index.
type RetrievalService struct {
	embedder Embedder
	index    database.VectorIndex
}

func NewRetrievalService(embedder Embedder, index database.VectorIndex) *RetrievalService {
	return &RetrievalService{
		embedder: embedder,
		index:    index,
	}
}

// Retrieve returns the chunk texts most relevant to the question within
// the given document, most similar first. A document with nothing
// indexed yields an empty slice, not an error.
func (s *RetrievalService) Retrieve(ctx context.Context, question, documentID string, topK int) ([]string, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	embedding, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}

	matches, err := s.index.Query(ctx, embedding, topK, documentID)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}

	texts := make([]string, 0, len(matches))
	for _, match := range matches {
		texts = append(texts, match.Text)
	}
	return texts, nil
}
