// Package mongo adapts a MongoDB database to the store.Store interface.
package mongo

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"socialnet/internal/config"
	"socialnet/internal/store"
)

type Storage struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(ctx context.Context, cfg config.Mongo) (*Storage, error) {
	slog.Info("connecting to mongodb", "uri", cfg.URI, "db", cfg.DBName)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	slog.Info("connected to mongodb")
	return &Storage{client: client, db: client.Database(cfg.DBName)}, nil
}

func (s *Storage) Cleanup(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Count(ctx context.Context, collection string, filter store.Filter) (int64, error) {
	return s.db.Collection(collection).CountDocuments(ctx, toBson(filter))
}

func (s *Storage) Find(ctx context.Context, collection string, filter store.Filter, srt store.Sort, skip, limit int) ([]store.Document, error) {
	dir := 1
	if srt.Desc {
		dir = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: srt.Field, Value: dir}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cur, err := s.db.Collection(collection).Find(ctx, toBson(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []store.Document
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		docs = append(docs, normalize(raw))
	}
	return docs, cur.Err()
}

func (s *Storage) FindOne(ctx context.Context, collection, id string) (store.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var raw bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return normalize(raw), nil
}

func (s *Storage) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (s *Storage) Update(ctx context.Context, collection, id string, fields store.Document) (store.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var raw bson.M
	err = s.db.Collection(collection).
		FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)}, opts).
		Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return normalize(raw), nil
}

func (s *Storage) Delete(ctx context.Context, collection, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *Storage) DistinctSortedValues(ctx context.Context, collection, field string) ([]string, error) {
	raw, err := s.db.Collection(collection).Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	sort.Strings(values)
	return values, nil
}
