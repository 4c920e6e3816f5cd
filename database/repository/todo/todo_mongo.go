package todoRepo

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

// MongoTodoRepo implements TodoRepository using MongoDB.
type MongoTodoRepo struct {
	coll *mongo.Collection
}

// NewMongoTodoRepo creates a new instance of TodoRepository using MongoDB.
func NewMongoTodoRepo() TodoRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("todos")
	repo := &MongoTodoRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTodoRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_uid", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new to-do item.
func (r *MongoTodoRepo) Create(item *models.TodoItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	item.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to create todo item: %w", err)
	}
	return nil
}

// ListByOwner retrieves a user's to-do items, newest first.
func (r *MongoTodoRepo) ListByOwner(ownerUID string) ([]models.TodoItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_uid": ownerUID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list todo items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.TodoItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode todo items: %w", err)
	}
	return items, nil
}

// SetDone toggles the completion flag of an item owned by ownerUID.
func (r *MongoTodoRepo) SetDone(ownerUID, id string, done bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "owner_uid": ownerUID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"done": done}})
	if err != nil {
		return fmt.Errorf("failed to update todo item with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("todo item with id %s not found", id)
	}
	return nil
}

// Delete removes an item owned by ownerUID.
func (r *MongoTodoRepo) Delete(ownerUID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "owner_uid": ownerUID})
	if err != nil {
		return fmt.Errorf("failed to delete todo item with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("todo item with id %s not found", id)
	}
	return nil
}
