package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoBackend keeps each collection as a single document in one Mongo
// collection: {_id: <name>, data: <JSON array bytes>}. Query semantics stay
// in this package; Mongo only provides remote durability.
type MongoBackend struct {
	client *mongo.Client
	col    *mongo.Collection
}

type mongoBlob struct {
	Key  string `bson:"_id"`
	Data []byte `bson:"data"`
}

func NewMongoBackend(ctx context.Context, uri, dbName string) (*MongoBackend, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	col := client.Database(dbName).Collection("collections")
	return &MongoBackend{client: client, col: col}, nil
}

func (m *MongoBackend) Load(ctx context.Context, key string) ([]byte, error) {
	var blob mongoBlob
	err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&blob)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return blob.Data, nil
}

func (m *MongoBackend) Save(ctx context.Context, key string, data []byte) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.col.ReplaceOne(ctx, bson.M{"_id": key}, mongoBlob{Key: key, Data: data}, opts)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (m *MongoBackend) Delete(ctx context.Context, key string) error {
	if _, err := m.col.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (m *MongoBackend) Close() error {
	return m.client.Disconnect(context.Background())
}
