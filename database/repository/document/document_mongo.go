package documentRepo

import (
	"context"
	"fmt"
	"time"

	"legato/database"
	"legato/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDocumentRepo implements DocumentRepository using MongoDB.
type MongoDocumentRepo struct {
	coll *mongo.Collection
}

// NewMongoDocumentRepo creates a new instance of DocumentRepository using MongoDB.
func NewMongoDocumentRepo() DocumentRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("documents")
	repo := &MongoDocumentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDocumentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_uid", Value: 1}, {Key: "uploaded_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new document record.
func (r *MongoDocumentRepo) Create(doc *models.Document) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	doc.UploadedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// ListByOwner retrieves a user's documents, newest first.
func (r *MongoDocumentRepo) ListByOwner(ownerUID string) ([]models.Document, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_uid": ownerUID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	return docs, nil
}

// Delete removes a document owned by ownerUID.
func (r *MongoDocumentRepo) Delete(ownerUID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "owner_uid": ownerUID})
	if err != nil {
		return fmt.Errorf("failed to delete document with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("document with id %s not found", id)
	}
	return nil
}
