// Package mongo stores documents in MongoDB, one Mongo collection per
// document collection.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri and pings the primary before returning.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Insert(ctx context.Context, collection, partitionKey string, doc ports.Document) error {
	id, err := ports.DocumentID(partitionKey, doc)
	if err != nil {
		return err
	}

	record := make(bson.M, len(doc)+1)
	for k, v := range doc {
		record[k] = v
	}
	// ids are unique per partition, as with a partitioned container
	record["_id"] = partitionKey + "/" + id

	if _, err := s.db.Collection(collection).InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert %s into %s: %w", id, collection, ports.ErrDocumentExists)
		}
		return fmt.Errorf("error inserting document: %w", err)
	}
	return nil
}

func (s *Store) Query(ctx context.Context, collection string, q ports.Query) ([]ports.Document, error) {
	filter := bson.D{}
	for _, c := range q.Where {
		filter = append(filter, bson.E{Key: c.Field, Value: c.Value})
	}

	opts := options.Find()
	if len(q.Fields) > 0 {
		projection := bson.D{{Key: "_id", Value: 0}}
		for _, f := range q.Fields {
			projection = append(projection, bson.E{Key: f, Value: 1})
		}
		opts.SetProjection(projection)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying documents: %w", err)
	}

	var records []bson.M
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding documents: %w", err)
	}

	docs := make([]ports.Document, 0, len(records))
	for _, r := range records {
		delete(r, "_id")
		docs = append(docs, ports.Document(r))
	}
	return docs, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close() error {
	if err := s.client.Disconnect(context.Background()); err != nil {
		return fmt.Errorf("error closing mongo client: %w", err)
	}
	return nil
}
