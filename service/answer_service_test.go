package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduquery/eduquery-be/types"
)

type answerFixture struct {
	embedder *fakeEmbedder
	index    *fakeIndex
	docs     *fakeDocumentRepo
	gen      *fakeGenerator
	svc      *AnswerService
}

func newAnswerFixture(curriculum *fakeCurriculumRepo) *answerFixture {
	embedder := newFakeEmbedder(2)
	index := newFakeIndex()
	docs := newFakeDocumentRepo()
	gen := &fakeGenerator{response: "Light is electromagnetic radiation."}
	if curriculum == nil {
		curriculum = &fakeCurriculumRepo{}
	}
	return &answerFixture{
		embedder: embedder,
		index:    index,
		docs:     docs,
		gen:      gen,
		svc: NewAnswerService(
			NewAccessService(docs, curriculum),
			NewRetrievalService(embedder, index),
			NewSynthesizer(gen),
		),
	}
}

func (f *answerFixture) registerDoc(t *testing.T, documentID, ownerEmail string) {
	t.Helper()
	require.NoError(t, f.docs.Register(context.Background(), &types.Document{
		DocumentID: documentID,
		Filename:   documentID + ".txt",
		SourceKind: types.SOURCE_KIND_USER,
		OwnerEmail: ownerEmail,
	}))
}

func TestAnswerUserDocumentFound(t *testing.T) {
	f := newAnswerFixture(nil)
	f.registerDoc(t, "doc-1", "alice@example.com")
	require.NoError(t, f.index.Upsert(context.Background(), []types.VectorRecord{
		{ID: "doc-1-0", Text: "light is radiation", DocumentID: "doc-1", Embedding: []float32{1, 0}},
	}))

	result, err := f.svc.AnswerUserDocument(context.Background(), types.AnswerRequest{
		DocumentID: "doc-1",
		Question:   "what is light",
		Requester:  types.Requester{Email: "alice@example.com"},
	})
	require.NoError(t, err)

	assert.True(t, result.IsFound)
	assert.Equal(t, "doc-1", result.DocumentID)
	assert.Equal(t, "Light is electromagnetic radiation.", result.Answer)
	require.Len(t, f.gen.prompts, 1)
	assert.Contains(t, f.gen.prompts[0], "light is radiation")
}

func TestAnswerUserDocumentDeniedForNonOwner(t *testing.T) {
	f := newAnswerFixture(nil)
	f.registerDoc(t, "doc-1", "alice@example.com")

	_, err := f.svc.AnswerUserDocument(context.Background(), types.AnswerRequest{
		DocumentID: "doc-1",
		Question:   "what is light",
		Requester:  types.Requester{Email: "mallory@example.com"},
	})

	assert.ErrorIs(t, err, types.ErrAccessDenied)
	assert.Zero(t, f.gen.calls)
	assert.Zero(t, f.embedder.calls, "denied requests must not reach the embedder")
}

func TestAnswerUserDocumentUnknownID(t *testing.T) {
	f := newAnswerFixture(nil)

	_, err := f.svc.AnswerUserDocument(context.Background(), types.AnswerRequest{
		DocumentID: "missing",
		Question:   "what is light",
		Requester:  types.Requester{Email: "alice@example.com"},
	})

	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestAnswerNoContextReturnsSentinel(t *testing.T) {
	f := newAnswerFixture(nil)
	f.registerDoc(t, "doc-1", "alice@example.com")
	// Nothing indexed for doc-1.

	result, err := f.svc.AnswerUserDocument(context.Background(), types.AnswerRequest{
		DocumentID: "doc-1",
		Question:   "what is light",
		Requester:  types.Requester{Email: "alice@example.com"},
	})
	require.NoError(t, err)

	assert.False(t, result.IsFound)
	assert.Equal(t, AnswerNotFound, result.Answer)
	assert.Zero(t, f.gen.calls, "no context means no model call")
}

func TestAnswerModelSentinelNotFound(t *testing.T) {
	f := newAnswerFixture(nil)
	f.gen.response = AnswerNotFound
	f.registerDoc(t, "doc-1", "alice@example.com")
	require.NoError(t, f.index.Upsert(context.Background(), []types.VectorRecord{
		{ID: "doc-1-0", Text: "unrelated text", DocumentID: "doc-1", Embedding: []float32{1, 0}},
	}))

	result, err := f.svc.AnswerUserDocument(context.Background(), types.AnswerRequest{
		DocumentID: "doc-1",
		Question:   "what is light",
		Requester:  types.Requester{Email: "alice@example.com"},
	})
	require.NoError(t, err)

	assert.False(t, result.IsFound)
	assert.Equal(t, AnswerNotFound, result.Answer)
}

func TestAnswerSubjectResolvesCurriculum(t *testing.T) {
	curriculum := &fakeCurriculumRepo{entries: []types.CurriculumEntry{
		{Board: types.BOARD_CBSE, Class: "10", Subject: "physics", DocumentID: "syllabus-physics"},
	}}
	f := newAnswerFixture(curriculum)
	require.NoError(t, f.index.Upsert(context.Background(), []types.VectorRecord{
		{ID: "syllabus-physics-0", Text: "newton's laws of motion", DocumentID: "syllabus-physics", Embedding: []float32{1, 0}},
	}))

	requester := types.Requester{Email: "alice@example.com", Board: types.BOARD_CBSE, Class: "10"}
	result, err := f.svc.AnswerSubject(context.Background(), requester, "physics", "state newton's laws")
	require.NoError(t, err)

	assert.True(t, result.IsFound)
	assert.Equal(t, "syllabus-physics", result.DocumentID)
}

func TestAnswerSubjectMissingCurriculum(t *testing.T) {
	f := newAnswerFixture(nil)

	requester := types.Requester{Email: "alice@example.com", Board: types.BOARD_CBSE, Class: "10"}
	result, err := f.svc.AnswerSubject(context.Background(), requester, "alchemy", "how to make gold")
	require.NoError(t, err)

	assert.False(t, result.IsFound)
	assert.Equal(t, AnswerNotFound, result.Answer)
	assert.Empty(t, result.DocumentID)
	assert.Zero(t, f.gen.calls)
}

func TestIngestThenAnswerEndToEnd(t *testing.T) {
	f := newAnswerFixture(nil)
	chunker, err := NewChunker(500, 100)
	require.NoError(t, err)
	ingest := NewIngestService(NewExtractService(), chunker, f.embedder, f.index, f.docs)

	// 1200 bytes so the fact lives in the third chunk, past both full
	// windows.
	fact := "the speed of light is 299792458 meters per second"
	text := strings.Repeat("x", 1200-len(fact)) + fact
	path := writeTempFile(t, "physics.txt", text)

	owner := types.Requester{Email: "alice@example.com"}
	documentID, err := ingest.Ingest(context.Background(), path, "physics.txt", owner)
	require.NoError(t, err)

	// Pin the question to the same vector the third chunk embeds to so
	// it ranks first.
	thirdChunk := text[800:]
	vec, err := f.embedder.Embed(context.Background(), thirdChunk)
	require.NoError(t, err)
	f.embedder.vectors["how fast is light"] = vec

	result, err := f.svc.AnswerUserDocument(context.Background(), types.AnswerRequest{
		DocumentID: documentID,
		Question:   "how fast is light",
		Requester:  owner,
	})
	require.NoError(t, err)

	assert.True(t, result.IsFound)
	require.NotEmpty(t, f.gen.prompts)
	assert.Contains(t, f.gen.prompts[len(f.gen.prompts)-1], fact)
}
