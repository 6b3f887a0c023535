package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/eduquery/eduquery-be/database"
	"github.com/eduquery/eduquery-be/repository"
	"github.com/eduquery/eduquery-be/types"
)

// IngestService runs the write path: extract text, chunk it, embed every
// chunk, upsert the vectors and register the document metadata. Each call
// generates a fresh document id, so re-uploading a file creates a new
// document instead of updating an old one.
type IngestService struct {
	extractor *ExtractService
	chunker   *Chunker
	embedder  Embedder
	index     database.VectorIndex
	documents repository.DocumentRepo
}

func NewIngestService(
	extractor *ExtractService,
	chunker *Chunker,
	embedder Embedder,
	index database.VectorIndex,
	documents repository.DocumentRepo,
) *IngestService {
	return &IngestService{
		extractor: extractor,
		chunker:   chunker,
		embedder:  embedder,
		index:     index,
		documents: documents,
	}
}

// Ingest processes the file at filePath and returns the new document id.
// A document whose text extracts to empty produces zero vector records;
// queries against it will always answer with the sentinel.
func (s *IngestService) Ingest(ctx context.Context, filePath, filename string, owner types.Requester) (string, error) {
	text, err := s.extractor.Extract(filePath)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", filename, err)
	}

	chunks := s.chunker.Chunk(text)
	documentID := uuid.NewString()

	records := make([]types.VectorRecord, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := s.embedder.Embed(ctx, chunk)
		if err != nil {
			return "", fmt.Errorf("embed chunk %d of %s: %w", i, filename, err)
		}
		records = append(records, types.VectorRecord{
			ID:         fmt.Sprintf("%s-%d", documentID, i),
			Embedding:  embedding,
			Text:       chunk,
			DocumentID: documentID,
			ChunkIndex: i,
		})
	}

	if len(records) > 0 {
		if err := s.index.Upsert(ctx, records); err != nil {
			return "", fmt.Errorf("index %s: %w", filename, err)
		}
	}

	doc := &types.Document{
		DocumentID: documentID,
		Filename:   filename,
		SourceKind: types.SOURCE_KIND_USER,
		OwnerID:    owner.UserID,
		OwnerEmail: owner.Email,
		CreatedAt:  time.Now().Unix(),
	}
	if err := s.documents.Register(ctx, doc); err != nil {
		return "", fmt.Errorf("register %s: %w", filename, err)
	}

	log.Info().
		Str("document_id", documentID).
		Str("filename", filename).
		Int("chunks", len(records)).
		Msg("document ingested")
	return documentID, nil
}
