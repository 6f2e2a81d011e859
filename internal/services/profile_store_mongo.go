package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
)

// MongoProfileStore keeps profiles in the profiles collection, one document
// per user enforced by a unique index on user_id.
type MongoProfileStore struct {
	db *mongo.Database
}

func NewMongoProfileStore(db *mongo.Database) *MongoProfileStore {
	return &MongoProfileStore{db: db}
}

func (s *MongoProfileStore) Get(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	err := s.db.Collection("profiles").FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "get profile", Err: err}
	}
	return &p, nil
}

func (s *MongoProfileStore) Save(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	profile.UpdatedAt = metadataTimestamp()

	upsert := true
	_, err := s.db.Collection("profiles").ReplaceOne(ctx,
		bson.M{"user_id": profile.UserID},
		profile,
		&options.ReplaceOptions{Upsert: &upsert})
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "save profile", Err: err}
	}

	return profile, nil
}
