package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

const uniqueViolation = "23505"

// Store keeps every collection in a single JSONB table.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

// Connect opens and pings a Postgres database.
func Connect(ctx context.Context, connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return NewStore(db), nil
}

func (s *Store) Insert(ctx context.Context, collection, partitionKey string, doc ports.Document) error {
	id, err := ports.DocumentID(partitionKey, doc)
	if err != nil {
		return err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	query := `
		INSERT INTO documents (collection, id, partition_key, body)
		VALUES ($1, $2, $3, $4);
	`
	_, err = s.db.ExecContext(ctx, query, collection, id, partitionKey, string(body))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("insert %s into %s: %w", id, collection, ports.ErrDocumentExists)
		}
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

func (s *Store) Query(ctx context.Context, collection string, q ports.Query) ([]ports.Document, error) {
	query := `SELECT body FROM documents WHERE collection = $1`
	args := []any{collection}

	if len(q.Where) > 0 {
		filter := make(map[string]any, len(q.Where))
		for _, c := range q.Where {
			filter[c.Field] = c.Value
		}
		containment, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to encode filter: %w", err)
		}
		query += ` AND body @> $2::jsonb`
		args = append(args, string(containment))
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []ports.Document
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		var doc ports.Document
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		docs = append(docs, q.Project(doc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return docs, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
