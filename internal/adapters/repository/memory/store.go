// Package memory is an in-process document store used for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

type collection struct {
	docs []ports.Document
	keys map[string]struct{}
}

type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

func NewStore() *Store {
	return &Store{collections: make(map[string]*collection)}
}

func (s *Store) Insert(ctx context.Context, name, partitionKey string, doc ports.Document) error {
	id, err := ports.DocumentID(partitionKey, doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = &collection{keys: make(map[string]struct{})}
		s.collections[name] = c
	}

	key := partitionKey + "/" + id
	if _, exists := c.keys[key]; exists {
		return fmt.Errorf("insert %s into %s: %w", id, name, ports.ErrDocumentExists)
	}
	c.keys[key] = struct{}{}
	c.docs = append(c.docs, maps.Clone(doc))

	return nil
}

func (s *Store) Query(ctx context.Context, name string, q ports.Query) ([]ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return nil, nil
	}

	var out []ports.Document
	for _, doc := range c.docs {
		if q.Matches(doc) {
			out = append(out, maps.Clone(q.Project(doc)))
		}
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close() error {
	return nil
}
