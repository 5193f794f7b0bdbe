package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/vaxicare-api/internal/models"
)

type MongoDashboardStore struct {
	db *mongo.Database
}

func NewMongoDashboardStore(db *mongo.Database) *MongoDashboardStore {
	return &MongoDashboardStore{db: db}
}

func (s *MongoDashboardStore) Count(ctx context.Context, collection string) (int64, error) {
	return s.db.Collection(collection).CountDocuments(ctx, bson.M{})
}

func (s *MongoDashboardStore) CountAppointmentsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	filter := bson.M{"dateTime": bson.M{"$gte": from, "$lt": to}}
	return s.db.Collection("appointments").CountDocuments(ctx, filter)
}

func (s *MongoDashboardStore) RecentAppointments(ctx context.Context, limit int64) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := s.db.Collection("appointments").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *MongoDashboardStore) RecentUsers(ctx context.Context, limit int64) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := s.db.Collection("users").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
