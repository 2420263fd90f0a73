// Package storetest holds the behaviour every ports.DocumentStore must share.
package storetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

// Run exercises store against the document store contract. Each subtest uses
// its own collection so the store does not need to be empty.
func Run(t *testing.T, store ports.DocumentStore) {
	t.Helper()

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, store.Ping(context.Background()))
	})

	t.Run("insert then full scan", func(t *testing.T) {
		ctx := context.Background()
		coll := collectionName("scan")

		first := newDoc("a@example.com", "Oui")
		second := newDoc("b@example.com", "Non")
		require.NoError(t, store.Insert(ctx, coll, "a@example.com", first))
		require.NoError(t, store.Insert(ctx, coll, "b@example.com", second))

		docs, err := store.Query(ctx, coll, ports.Query{})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.ElementsMatch(t, []ports.Document{first, second}, docs)
	})

	t.Run("equality filter", func(t *testing.T) {
		ctx := context.Background()
		coll := collectionName("filter")

		require.NoError(t, store.Insert(ctx, coll, "a@example.com", newDoc("a@example.com", "Oui")))
		require.NoError(t, store.Insert(ctx, coll, "b@example.com", newDoc("b@example.com", "Non")))
		require.NoError(t, store.Insert(ctx, coll, "a@example.com", newDoc("a@example.com", "Non")))

		docs, err := store.Query(ctx, coll, ports.Query{Where: []ports.Condition{ports.Eq("email", "a@example.com")}})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
		for _, d := range docs {
			assert.Equal(t, "a@example.com", d["email"])
		}

		docs, err = store.Query(ctx, coll, ports.Query{Where: []ports.Condition{ports.Eq("email", "nobody@example.com")}})
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("projection", func(t *testing.T) {
		ctx := context.Background()
		coll := collectionName("projection")

		require.NoError(t, store.Insert(ctx, coll, "a@example.com", newDoc("a@example.com", "Oui")))

		docs, err := store.Query(ctx, coll, ports.Query{Fields: []string{"choice"}})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, ports.Document{"choice": "Oui"}, docs[0])
	})

	t.Run("unknown collection is empty", func(t *testing.T) {
		docs, err := store.Query(context.Background(), collectionName("missing"), ports.Query{})
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("duplicate id in partition", func(t *testing.T) {
		ctx := context.Background()
		coll := collectionName("duplicate")
		doc := newDoc("a@example.com", "Oui")

		require.NoError(t, store.Insert(ctx, coll, "a@example.com", doc))
		err := store.Insert(ctx, coll, "a@example.com", doc)
		assert.ErrorIs(t, err, ports.ErrDocumentExists)
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		ctx := context.Background()
		coll := collectionName("invalid")

		err := store.Insert(ctx, coll, "", newDoc("a@example.com", "Oui"))
		assert.ErrorIs(t, err, ports.ErrMissingPartitionKey)

		err = store.Insert(ctx, coll, "a@example.com", ports.Document{"email": "a@example.com"})
		assert.ErrorIs(t, err, ports.ErrMissingDocumentID)
	})
}

func newDoc(email, choice string) ports.Document {
	return ports.Document{
		"id":        uuid.NewString(),
		"email":     email,
		"pseudo":    email,
		"choice":    choice,
		"createdAt": "2025-05-02T08:11:12.345678Z",
	}
}

func collectionName(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString()[:8])
}
