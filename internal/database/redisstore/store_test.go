package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookdirectory/internal/catalog"
	"github.com/mrlokans/bookdirectory/internal/entities"
)

// setupStore runs against an in-process miniredis, or against the Redis at
// REDIS_ADDR when it is set. Each store gets a throwaway prefix.
func setupStore(t *testing.T) *Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = miniredis.RunT(t).Addr()
	}
	ctx := context.Background()

	client, err := NewClient(ctx, Options{Addr: addr})
	require.NoError(t, err)

	store := New(client, "test-"+uuid.NewString())
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, store.prefix+":*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})
	return store
}

func newBook(name string) *entities.Book {
	return entities.NewBook(name, "Octavia Butler", time.Date(1993, 10, 1, 0, 0, 0, 0, time.UTC), "Sci-Fi")
}

func TestStore_KeyLayout(t *testing.T) {
	s := New(nil, "")

	assert.Equal(t, "book-directory:books:abc", s.bookKey("abc"))
	assert.Equal(t, "book-directory:books:index", s.indexKey())
}

func TestEncodeDecode_KeepsTimestamps(t *testing.T) {
	book := newBook("Kindred")
	book.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	book.AppendReview(entities.NewReview("great", 9))

	raw, err := encode(book)
	require.NoError(t, err)
	decoded, err := decode(raw)
	require.NoError(t, err)

	assert.True(t, book.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, book.Reviews[0], decoded.Reviews[0])
}

func TestDecode_NullReviews(t *testing.T) {
	decoded, err := decode([]byte(`{"id":"x","reviews":null}`))
	require.NoError(t, err)

	assert.NotNil(t, decoded.Reviews)
	assert.Empty(t, decoded.Reviews)
}

func TestStore_CRUD(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first := newBook("Parable of the Sower")
	require.NoError(t, store.InsertBook(ctx, first))
	time.Sleep(time.Millisecond)
	second := newBook("Kindred")
	require.NoError(t, store.InsertBook(ctx, second))

	assert.Error(t, store.InsertBook(ctx, first))

	all, err := store.FindAllBooks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	first.AppendReview(entities.NewReview("prescient", 10))
	require.NoError(t, store.ReplaceBook(ctx, first))

	found, err := store.FindBookByID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, found.Reviews, 1)
	assert.Equal(t, 10, found.Reviews[0].Rating)

	deleted, err := store.DeleteBook(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, deleted.ID)

	_, err = store.FindBookByID(ctx, first.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	_, err = store.DeleteBook(ctx, first.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.ErrorIs(t, store.ReplaceBook(ctx, first), catalog.ErrNotFound)

	all, err = store.FindAllBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_InsertBook_RejectsDuplicate(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	book := newBook("Dawn")
	require.NoError(t, store.InsertBook(ctx, book))
	assert.Error(t, store.InsertBook(ctx, book))

	all, err := store.FindAllBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_FindAllBooks_CreationOrder(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	all, err := store.FindAllBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	names := []string{"Wild Seed", "Mind of My Mind", "Clay's Ark"}
	for _, name := range names {
		require.NoError(t, store.InsertBook(ctx, newBook(name)))
		time.Sleep(time.Millisecond)
	}

	all, err = store.FindAllBooks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, name := range names {
		assert.Equal(t, name, all[i].BookName)
	}
}

func TestStore_MissingBook_NotFound(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.FindBookByID(ctx, "nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = store.DeleteBook(ctx, "nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	assert.ErrorIs(t, store.ReplaceBook(ctx, newBook("Ghost")), catalog.ErrNotFound)

	// A failed replace must not create the document.
	all, err := store.FindAllBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_DeleteBook_ReturnsRemovedBook(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	book := newBook("Fledgling")
	book.AppendReview(entities.NewReview("unsettling", 8))
	require.NoError(t, store.InsertBook(ctx, book))

	deleted, err := store.DeleteBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.ID, deleted.ID)
	require.Len(t, deleted.Reviews, 1)
	assert.Equal(t, "unsettling", deleted.Reviews[0].Review)

	n, err := store.client.ZCard(ctx, store.indexKey()).Result()
	require.NoError(t, err)
	assert.Zero(t, n)
}
