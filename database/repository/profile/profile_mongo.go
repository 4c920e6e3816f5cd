package profileRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"legato/database"
	"legato/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("users")
	repo := &MongoProfileRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "lawyer.specialization", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new profile document.
func (r *MongoProfileRepo) Create(account *models.UserAccount) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByUID retrieves a profile by the account uid.
func (r *MongoProfileRepo) GetByUID(uid string) (*models.UserAccount, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var account models.UserAccount
	err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile with uid %s: %w", uid, err)
	}
	return &account, nil
}

// GetByEmail retrieves a profile by email address.
func (r *MongoProfileRepo) GetByEmail(email string) (*models.UserAccount, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var account models.UserAccount
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile with email %s: %w", email, err)
	}
	return &account, nil
}

// Update modifies an existing profile document. The stored role is preserved
// regardless of the role carried by the given account.
func (r *MongoProfileRepo) Update(account *models.UserAccount) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	account.UpdatedAt = time.Now()
	filter := bson.M{"uid": account.UID}
	// Role is immutable after creation, so it is excluded from the update.
	update := bson.M{"$set": bson.M{
		"email":        account.Email,
		"display_name": account.DisplayName,
		"phone":        account.Phone,
		"photo_url":    account.PhotoURL,
		"lawyer":       account.Lawyer,
		"updated_at":   account.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update profile with uid %s: %w", account.UID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("profile with uid %s not found", account.UID)
	}
	return nil
}

// ListLawyers retrieves lawyer profiles matching the filter.
func (r *MongoProfileRepo) ListLawyers(filter LawyerFilter) ([]models.UserAccount, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{"role": models.RoleLawyer}
	if filter.Specialization != "" {
		query["lawyer.specialization"] = filter.Specialization
	}
	if filter.Language != "" {
		query["lawyer.languages"] = filter.Language
	}
	if filter.VerifiedOnly {
		query["lawyer.verified"] = true
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "display_name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list lawyers: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []models.UserAccount
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode lawyer profiles: %w", err)
	}
	return accounts, nil
}
