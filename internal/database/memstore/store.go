// Package memstore keeps the books collection in process memory. It backs
// DATABASE_DRIVER=memory and is the store used by handler and report tests.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/datatypes"

	"github.com/mrlokans/bookdirectory/internal/catalog"
	"github.com/mrlokans/bookdirectory/internal/entities"
)

type Store struct {
	mu    sync.RWMutex
	books map[string]entities.Book
	order []string
}

func New() *Store {
	return &Store{
		books: make(map[string]entities.Book),
	}
}

func (s *Store) InsertBook(_ context.Context, book *entities.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.books[book.ID]; exists {
		return fmt.Errorf("book %s already exists", book.ID)
	}
	s.books[book.ID] = clone(*book)
	s.order = append(s.order, book.ID)
	return nil
}

func (s *Store) FindBookByID(_ context.Context, id string) (*entities.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return nil, fmt.Errorf("book %s: %w", id, catalog.ErrNotFound)
	}
	out := clone(book)
	return &out, nil
}

func (s *Store) FindAllBooks(_ context.Context) ([]entities.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]entities.Book, 0, len(s.order))
	for _, id := range s.order {
		books = append(books, clone(s.books[id]))
	}
	return books, nil
}

func (s *Store) ReplaceBook(_ context.Context, book *entities.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[book.ID]; !ok {
		return fmt.Errorf("book %s: %w", book.ID, catalog.ErrNotFound)
	}
	s.books[book.ID] = clone(*book)
	return nil
}

func (s *Store) DeleteBook(_ context.Context, id string) (*entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return nil, fmt.Errorf("book %s: %w", id, catalog.ErrNotFound)
	}
	delete(s.books, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return &book, nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

// clone copies the review slice so callers never share it with the store.
func clone(book entities.Book) entities.Book {
	reviews := make(datatypes.JSONSlice[entities.Review], len(book.Reviews))
	copy(reviews, book.Reviews)
	book.Reviews = reviews
	return book
}
