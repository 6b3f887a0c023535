package service

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/eduquery/eduquery-be/types"
)

// Embedder maps a text string to a fixed-dimension dense vector. It must
// be deterministic per input text; retrieval depends on the query and
// the indexed chunks living in the same vector space.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}

// OpenAIEmbedder talks to any OpenAI-compatible embeddings endpoint,
// including a locally hosted sentence-transformer server.
type OpenAIEmbedder struct {
	client    *openai.Client
	model     string
	dimension int
}

func NewOpenAIEmbedder(baseURL, apiKey, model string, dimension int) *OpenAIEmbedder {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIEmbedder{
		client:    openai.NewClientWithConfig(config),
		model:     model,
		dimension: dimension,
	}
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: embedding request failed: %v", types.ErrDependencyUnavailable, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: embedding response contained no data", types.ErrDependencyUnavailable)
	}
	embedding := resp.Data[0].Embedding
	if e.dimension > 0 && len(embedding) != e.dimension {
		return nil, fmt.Errorf("embedding dimension mismatch: got %d, index expects %d", len(embedding), e.dimension)
	}
	return embedding, nil
}

func (e *OpenAIEmbedder) Dimension() int {
	return e.dimension
}
