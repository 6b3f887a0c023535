package service

import (
	"context"
	"fmt"

	"github.com/eduquery/eduquery-be/repository"
	"github.com/eduquery/eduquery-be/types"
)

// AccessService decides whether a requester may query a document. User
// documents demand an exact owner match; curriculum documents are open
// to any authenticated requester whose profile matches the lookup key.
type AccessService struct {
	documents  repository.DocumentRepo
	curriculum repository.CurriculumRepo
}

func NewAccessService(documents repository.DocumentRepo, curriculum repository.CurriculumRepo) *AccessService {
	return &AccessService{
		documents:  documents,
		curriculum: curriculum,
	}
}

// AuthorizeUserDocument grants access when the requester owns the
// document. An unknown document id is ErrNotFound; an existing document
// owned by someone else is ErrAccessDenied. Callers must surface these
// as distinct outcomes.
func (s *AccessService) AuthorizeUserDocument(ctx context.Context, requester types.Requester, documentID string) error {
	doc, err := s.documents.FindByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.OwnerEmail == "" || doc.OwnerEmail != requester.Email {
		return fmt.Errorf("%w: document %s does not belong to requester", types.ErrAccessDenied, documentID)
	}
	return nil
}

// ResolveCurriculum maps the requester's profile plus a subject to a
// syllabus document id. The lookup itself is the access decision: a
// profile that matches the key may read the document.
func (s *AccessService) ResolveCurriculum(ctx context.Context, requester types.Requester, subject string) (string, error) {
	return s.curriculum.FindDocumentID(ctx, requester.Board, requester.Class, subject, requester.Group)
}
