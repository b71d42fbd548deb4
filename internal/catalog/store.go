package catalog

import (
	"context"

	"github.com/mrlokans/bookdirectory/internal/entities"
)

// Store is the document store holding the books collection. Implementations
// return an error wrapping ErrNotFound when a book id has no record.
type Store interface {
	InsertBook(ctx context.Context, book *entities.Book) error
	FindBookByID(ctx context.Context, id string) (*entities.Book, error)
	// FindAllBooks returns every book in storage order. An empty collection
	// is not an error at this level.
	FindAllBooks(ctx context.Context) ([]entities.Book, error)
	// ReplaceBook overwrites the stored record with the same id.
	ReplaceBook(ctx context.Context, book *entities.Book) error
	// DeleteBook removes the record and returns what was stored.
	DeleteBook(ctx context.Context, id string) (*entities.Book, error)
	Ping(ctx context.Context) error
}
