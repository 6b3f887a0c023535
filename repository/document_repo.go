package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/eduquery/eduquery-be/types"
)

// DocumentRepo stores metadata for user-uploaded documents. Records are
// created once at ingestion and never mutated.
type DocumentRepo interface {
	Register(ctx context.Context, doc *types.Document) error
	FindByID(ctx context.Context, documentID string) (*types.Document, error)
	FindByOwnerAndID(ctx context.Context, ownerEmail, documentID string) (*types.Document, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]types.Document, error)
}

type documentRepo struct {
	collection *mongo.Collection
}

func NewDocumentRepo(collection *mongo.Collection) DocumentRepo {
	return &documentRepo{
		collection: collection,
	}
}

func (r *documentRepo) Register(ctx context.Context, doc *types.Document) error {
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

func (r *documentRepo) FindByID(ctx context.Context, documentID string) (*types.Document, error) {
	var doc types.Document
	err := r.collection.FindOne(ctx, bson.M{"document_id": documentID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepo) FindByOwnerAndID(ctx context.Context, ownerEmail, documentID string) (*types.Document, error) {
	var doc types.Document
	err := r.collection.FindOne(ctx, bson.M{
		"document_id": documentID,
		"owner_email": ownerEmail,
	}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]types.Document, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_email": ownerEmail})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []types.Document
	for cursor.Next(ctx) {
		var doc types.Document
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, cursor.Err()
}
