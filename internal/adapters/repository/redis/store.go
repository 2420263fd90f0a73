// Package redis stores each collection as a Redis hash of JSON documents
// keyed by partition key and id.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type Store struct {
	client *redis.Client
	prefix string
}

// NewStore parses a redis:// URL and checks the server answers.
func NewStore(ctx context.Context, addr, prefix string) (*Store, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis URL: %w", err)
	}

	c := redis.NewClient(opts)

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	return &Store{client: c, prefix: prefix}, nil
}

func (s *Store) key(collection string) string {
	return fmt.Sprintf("%s:%s:docs", s.prefix, collection)
}

func (s *Store) Insert(ctx context.Context, collection, partitionKey string, doc ports.Document) error {
	id, err := ports.DocumentID(partitionKey, doc)
	if err != nil {
		return err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}

	added, err := s.client.HSetNX(ctx, s.key(collection), partitionKey+"/"+id, body).Result()
	if err != nil {
		return fmt.Errorf("error writing document to redis: %w", err)
	}
	if !added {
		return fmt.Errorf("insert %s into %s: %w", id, collection, ports.ErrDocumentExists)
	}
	return nil
}

// Query scans the whole collection hash; filtering and projection happen
// client side.
func (s *Store) Query(ctx context.Context, collection string, q ports.Query) ([]ports.Document, error) {
	values, err := s.client.HVals(ctx, s.key(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("error reading documents from redis: %w", err)
	}

	var docs []ports.Document
	for _, v := range values {
		var doc ports.Document
		if err := json.Unmarshal([]byte(v), &doc); err != nil {
			return nil, fmt.Errorf("error decoding document: %w", err)
		}
		if q.Matches(doc) {
			docs = append(docs, q.Project(doc))
		}
	}
	return docs, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("error closing redis client: %w", err)
	}
	return nil
}
