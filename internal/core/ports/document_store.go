package ports

import (
	"context"
	"errors"
	"reflect"
)

// Document is a schemaless record stored in a collection.
type Document map[string]any

// Condition is an equality predicate on a top-level document field.
type Condition struct {
	Field string
	Value any
}

func Eq(field string, value any) Condition {
	return Condition{Field: field, Value: value}
}

// Query selects documents of a collection. An empty Where is a full scan and
// an empty Fields returns whole documents.
type Query struct {
	Fields []string
	Where  []Condition
}

// Matches reports whether doc satisfies every condition of the query.
func (q Query) Matches(doc Document) bool {
	for _, c := range q.Where {
		v, ok := doc[c.Field]
		if !ok || !reflect.DeepEqual(v, c.Value) {
			return false
		}
	}
	return true
}

// Project keeps only the selected fields of doc. Fields absent from doc are
// left out of the result.
func (q Query) Project(doc Document) Document {
	if len(q.Fields) == 0 {
		return doc
	}
	out := make(Document, len(q.Fields))
	for _, f := range q.Fields {
		if v, ok := doc[f]; ok {
			out[f] = v
		}
	}
	return out
}

type DocumentStore interface {
	// Insert writes doc into collection, routed by partitionKey.
	Insert(ctx context.Context, collection, partitionKey string, doc Document) error
	Query(ctx context.Context, collection string, q Query) ([]Document, error)
	Ping(ctx context.Context) error
	Close() error
}

var (
	ErrDocumentExists      = errors.New("document already exists")
	ErrMissingPartitionKey = errors.New("partition key value is required")
	ErrMissingDocumentID   = errors.New("document id is required")
)

// DocumentID validates doc for insertion and returns its id.
func DocumentID(partitionKey string, doc Document) (string, error) {
	if partitionKey == "" {
		return "", ErrMissingPartitionKey
	}
	id, _ := doc["id"].(string)
	if id == "" {
		return "", ErrMissingDocumentID
	}
	return id, nil
}
