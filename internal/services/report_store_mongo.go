package services

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
)

type MongoReportStore struct {
	db *mongo.Database
}

func NewMongoReportStore(db *mongo.Database) *MongoReportStore {
	return &MongoReportStore{db: db}
}

func (s *MongoReportStore) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	report.ID = uuid.New().String()
	report.CreatedAt = metadataTimestamp()

	if _, err := s.db.Collection("reports").InsertOne(ctx, report); err != nil {
		return nil, &apperrors.PersistenceError{Op: "create report", Err: err}
	}

	return report, nil
}

func (s *MongoReportStore) ListByUser(ctx context.Context, userID string) ([]models.Report, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := s.db.Collection("reports").Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "list reports", Err: err}
	}
	defer cursor.Close(ctx)

	reports := make([]models.Report, 0)
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, &apperrors.PersistenceError{Op: "list reports", Err: err}
	}

	return reports, nil
}
