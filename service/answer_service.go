package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/eduquery/eduquery-be/types"
)

// AnswerService is the read-path orchestrator: gate access, retrieve
// context, synthesize an answer. It holds no mutable state; concurrent
// calls are independent.
type AnswerService struct {
	access      *AccessService
	retrieval   *RetrievalService
	synthesizer *Synthesizer
}

func NewAnswerService(access *AccessService, retrieval *RetrievalService, synthesizer *Synthesizer) *AnswerService {
	return &AnswerService{
		access:      access,
		retrieval:   retrieval,
		synthesizer: synthesizer,
	}
}

// AnswerUserDocument answers a question from one of the requester's own
// uploaded documents.
func (s *AnswerService) AnswerUserDocument(ctx context.Context, req types.AnswerRequest) (*types.AnswerResult, error) {
	if err := s.access.AuthorizeUserDocument(ctx, req.Requester, req.DocumentID); err != nil {
		return nil, err
	}
	return s.answer(ctx, req.Question, req.DocumentID)
}

// AnswerSubject answers a question from the syllabus document matching
// the requester's board/class(/group) profile and the given subject. A
// missing curriculum entry is not an error: the caller gets the sentinel
// with an empty document id, mirroring a document with no content.
func (s *AnswerService) AnswerSubject(ctx context.Context, requester types.Requester, subject, question string) (*types.AnswerResult, error) {
	documentID, err := s.access.ResolveCurriculum(ctx, requester, subject)
	if errors.Is(err, types.ErrNotFound) {
		return &types.AnswerResult{
			Answer:  AnswerNotFound,
			IsFound: false,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.answer(ctx, question, documentID)
}

func (s *AnswerService) answer(ctx context.Context, question, documentID string) (*types.AnswerResult, error) {
	chunks, err := s.retrieval.Retrieve(ctx, question, documentID, DefaultTopK)
	if err != nil {
		return nil, err
	}

	answer, err := s.synthesizer.Synthesize(ctx, question, chunks)
	if err != nil {
		return nil, err
	}

	result := &types.AnswerResult{
		DocumentID: documentID,
		Answer:     answer,
		IsFound:    len(chunks) > 0 && answer != AnswerNotFound,
	}
	log.Debug().
		Str("document_id", documentID).
		Int("chunks", len(chunks)).
		Bool("is_found", result.IsFound).
		Msg("question answered")
	return result, nil
}
