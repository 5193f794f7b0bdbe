package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/vaxicare-api/internal/models"
)

// ErrInvalidUID marks a uid that is not a valid object id hex.
var ErrInvalidUID = errors.New("uid is not a valid user id")

type MongoClaimStore struct {
	db *mongo.Database
}

func NewMongoClaimStore(db *mongo.Database) *MongoClaimStore {
	return &MongoClaimStore{db: db}
}

func (s *MongoClaimStore) GetClaims(ctx context.Context, uid string) (map[string]interface{}, error) {
	var doc models.UserClaims
	err := s.db.Collection("user_claims").FindOne(ctx, bson.M{"_id": uid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Claims == nil {
		doc.Claims = map[string]interface{}{}
	}
	return doc.Claims, nil
}

func (s *MongoClaimStore) SetClaims(ctx context.Context, uid string, claims map[string]interface{}) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.db.Collection("user_claims").UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{"$set": bson.M{"claims": claims}},
		opts,
	)
	return err
}

type MongoProfileStore struct {
	db *mongo.Database
}

func NewMongoProfileStore(db *mongo.Database) *MongoProfileStore {
	return &MongoProfileStore{db: db}
}

func (s *MongoProfileStore) MergeAdminFlag(ctx context.Context, uid string, admin bool) error {
	oid, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return ErrInvalidUID
	}
	opts := options.Update().SetUpsert(true)
	_, err = s.db.Collection("users").UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"isAdmin": admin}},
		opts,
	)
	return err
}
