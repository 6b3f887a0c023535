package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/eduquery/eduquery-be/types"
)

// CurriculumRepo resolves board/class/subject(/group) keys to syllabus
// document ids. One collection per board, matching the source data.
type CurriculumRepo interface {
	FindDocumentID(ctx context.Context, board, class, subject, group string) (string, error)
	ListSubjects(ctx context.Context, board, class, group string) ([]string, error)
	ListGroups(ctx context.Context, board, class string) ([]string, error)
}

type curriculumRepo struct {
	stateboard *mongo.Collection
	cbse       *mongo.Collection
}

func NewCurriculumRepo(stateboard, cbse *mongo.Collection) CurriculumRepo {
	return &curriculumRepo{
		stateboard: stateboard,
		cbse:       cbse,
	}
}

func (r *curriculumRepo) boardCollection(board string) (*mongo.Collection, error) {
	switch board {
	case types.BOARD_STATEBOARD:
		return r.stateboard, nil
	case types.BOARD_CBSE:
		return r.cbse, nil
	default:
		return nil, types.ErrNotFound
	}
}

func (r *curriculumRepo) FindDocumentID(ctx context.Context, board, class, subject, group string) (string, error) {
	collection, err := r.boardCollection(board)
	if err != nil {
		return "", err
	}
	filter := bson.M{"class": class, "subject": subject}
	if group != "" {
		filter["group"] = group
	}

	var entry types.CurriculumEntry
	err = collection.FindOne(ctx, filter).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", types.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.DocumentID, nil
}

func (r *curriculumRepo) ListSubjects(ctx context.Context, board, class, group string) ([]string, error) {
	collection, err := r.boardCollection(board)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"class": class}
	if group != "" {
		filter["group"] = group
	}

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subjects []string
	for cursor.Next(ctx) {
		var entry types.CurriculumEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}
		subjects = append(subjects, entry.Subject)
	}
	return subjects, cursor.Err()
}

func (r *curriculumRepo) ListGroups(ctx context.Context, board, class string) ([]string, error) {
	collection, err := r.boardCollection(board)
	if err != nil {
		return nil, err
	}

	var groups []string
	res := collection.Distinct(ctx, "group", bson.M{"class": class})
	if err := res.Decode(&groups); err != nil {
		return nil, err
	}
	return groups, nil
}
