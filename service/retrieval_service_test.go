package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduquery/eduquery-be/types"
)

func TestRetrieveFiltersByDocument(t *testing.T) {
	embedder := newFakeEmbedder(2)
	embedder.vectors["what is light"] = []float32{1, 0}

	index := newFakeIndex()
	// The chunk in the other document is a perfect match for the query
	// vector; it must never leak into document A's results.
	require.NoError(t, index.Upsert(context.Background(), []types.VectorRecord{
		{ID: "doc-a-0", Text: "light is radiation", DocumentID: "doc-a", Embedding: []float32{0.5, 0}},
		{ID: "doc-b-0", Text: "light travels fast", DocumentID: "doc-b", Embedding: []float32{1, 0}},
	}))

	retrieval := NewRetrievalService(embedder, index)
	chunks, err := retrieval.Retrieve(context.Background(), "what is light", "doc-a", 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"light is radiation"}, chunks)
}

func TestRetrieveOrdersBySimilarity(t *testing.T) {
	embedder := newFakeEmbedder(2)
	embedder.vectors["query"] = []float32{1, 0}

	index := newFakeIndex()
	require.NoError(t, index.Upsert(context.Background(), []types.VectorRecord{
		{ID: "doc-0", Text: "far", DocumentID: "doc", Embedding: []float32{0.1, 0}},
		{ID: "doc-1", Text: "near", DocumentID: "doc", Embedding: []float32{0.9, 0}},
		{ID: "doc-2", Text: "middle", DocumentID: "doc", Embedding: []float32{0.5, 0}},
	}))

	retrieval := NewRetrievalService(embedder, index)
	chunks, err := retrieval.Retrieve(context.Background(), "query", "doc", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"near", "middle"}, chunks)
}

func TestRetrieveEmptyDocument(t *testing.T) {
	retrieval := NewRetrievalService(newFakeEmbedder(2), newFakeIndex())
	chunks, err := retrieval.Retrieve(context.Background(), "anything", "missing-doc", 5)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestRetrieveDefaultTopK(t *testing.T) {
	embedder := newFakeEmbedder(2)
	index := newFakeIndex()
	records := make([]types.VectorRecord, 0, 8)
	for i := 0; i < 8; i++ {
		records = append(records, types.VectorRecord{
			ID:         string(rune('a' + i)),
			Text:       "chunk",
			DocumentID: "doc",
			Embedding:  []float32{1, 0},
		})
	}
	require.NoError(t, index.Upsert(context.Background(), records))

	retrieval := NewRetrievalService(embedder, index)
	chunks, err := retrieval.Retrieve(context.Background(), "query", "doc", 0)
	require.NoError(t, err)
	assert.Len(t, chunks, DefaultTopK)
}
