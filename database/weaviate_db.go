package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/filters"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"

	"github.com/eduquery/eduquery-be/types"
)

const BATCH_SIZE = 200

// Namespace for deriving Weaviate object UUIDs from chunk ids. A fixed
// namespace makes the object id a pure function of the chunk id, which
// is what gives Upsert its overwrite semantics.
var chunkIDNamespace = uuid.MustParse("8b2e1a94-5f63-4c6e-9a27-0d1f3b7c4e55")

var (
	CHUNK_CLASS        = "DocumentChunk"
	CHUNK_CLASS_OBJECT = &models.Class{
		Class: CHUNK_CLASS,
		Properties: []*models.Property{
			{Name: "chunkId", DataType: []string{"text"}},
			{Name: "content", DataType: []string{"text"}},
			{Name: "documentId", DataType: []string{"text"}},
			{Name: "chunkIndex", DataType: []string{"int"}},
		},
		// Vectors are computed client-side by the embedder; the index
		// only stores and searches them.
		Vectorizer:      "none",
		VectorIndexType: "hnsw",
	}
)

// WeaviateStore implements VectorIndex on a Weaviate class with
// client-supplied vectors.
type WeaviateStore struct {
	client *weaviate.Client
}

func NewWeaviateStore(host, apiKey string) (*WeaviateStore, error) {
	var scheme string
	if strings.Contains(host, "https") {
		scheme = "https"
	} else {
		scheme = "http"
	}
	host = strings.TrimPrefix(host, scheme+"://")
	cfg := weaviate.Config{
		Host:   host,
		Scheme: scheme,
	}
	if apiKey != "" {
		cfg.AuthConfig = auth.ApiKey{
			Value: apiKey,
		}
	}
	client, err := weaviate.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %w", err)
	}

	schema, err := client.Schema().Getter().Do(context.Background())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get schema: %v", types.ErrDependencyUnavailable, err)
	}

	hasChunkClass := false
	for _, class := range schema.Classes {
		if class.Class == CHUNK_CLASS {
			hasChunkClass = true
			break
		}
	}
	if !hasChunkClass {
		err = client.Schema().ClassCreator().WithClass(CHUNK_CLASS_OBJECT).Do(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to create %s class: %w", CHUNK_CLASS, err)
		}
	}
	return &WeaviateStore{
		client: client,
	}, nil
}

func (s *WeaviateStore) Upsert(ctx context.Context, records []types.VectorRecord) error {
	total := len(records)
	for i := 0; i < total; i += BATCH_SIZE {
		end := i + BATCH_SIZE
		if end > total {
			end = total
		}

		batcher := s.client.Batch().ObjectsBatcher()
		for j := i; j < end; j++ {
			rec := records[j]
			objectID := uuid.NewSHA1(chunkIDNamespace, []byte(rec.ID))
			batcher = batcher.WithObjects(&models.Object{
				ID:    strfmt.UUID(objectID.String()),
				Class: CHUNK_CLASS,
				Properties: map[string]interface{}{
					"chunkId":    rec.ID,
					"content":    rec.Text,
					"documentId": rec.DocumentID,
					"chunkIndex": rec.ChunkIndex,
				},
				Vector: rec.Embedding,
			})
		}

		if _, err := batcher.Do(ctx); err != nil {
			return fmt.Errorf("%w: failed to upsert batch %d-%d: %v", types.ErrDependencyUnavailable, i, end, err)
		}
		log.Debug().Int("from", i).Int("to", end).Int("total", total).Msg("upserted chunk batch")
	}

	return nil
}

func (s *WeaviateStore) Query(ctx context.Context, embedding []float32, topK int, documentID string) ([]types.SearchMatch, error) {
	fields := []graphql.Field{
		{Name: "content"},
		{Name: "documentId"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "distance"}}},
	}
	nearVector := s.client.GraphQL().NearVectorArgBuilder().
		WithVector(embedding)
	where := filters.Where().
		WithPath([]string{"documentId"}).
		WithOperator(filters.Equal).
		WithValueText(documentID)

	result, err := s.client.GraphQL().Get().
		WithClassName(CHUNK_CLASS).
		WithFields(fields...).
		WithNearVector(nearVector).
		WithWhere(where).
		WithLimit(topK).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: query failed: %v", types.ErrDependencyUnavailable, err)
	}
	if result.Errors != nil {
		return nil, fmt.Errorf("%w: query failed: %v", types.ErrDependencyUnavailable, result.Errors[0].Message)
	}

	return parseMatches(result.Data["Get"], topK), nil
}

// parseMatches walks the GraphQL Get payload with comma-ok assertions
// at every level; a malformed or missing payload yields no matches
// rather than a panic.
func parseMatches(raw interface{}, topK int) []types.SearchMatch {
	matches := make([]types.SearchMatch, 0, topK)
	data, ok := raw.(map[string]interface{})
	if !ok {
		return matches
	}
	items, ok := data[CHUNK_CLASS].([]interface{})
	if !ok {
		return matches
	}
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		content, ok := obj["content"].(string)
		if !ok {
			continue
		}
		match := types.SearchMatch{
			Text: content,
		}
		match.DocumentID, _ = obj["documentId"].(string)
		if additional, ok := obj["_additional"].(map[string]interface{}); ok {
			if distance, ok := additional["distance"].(float64); ok {
				match.Score = 1 - float32(distance)
			}
		}
		matches = append(matches, match)
	}
	return matches
}
