// Package catalog implements the book repository: CRUD over books and the
// management of the reviews embedded in them.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrlokans/bookdirectory/internal/entities"
	"github.com/mrlokans/bookdirectory/internal/logger"
)

// Service exposes the book operations on top of a Store.
type Service struct {
	store Store
	log   *logger.Logger
}

// NewService creates a new catalog service.
func NewService(store Store, log *logger.Logger) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "BooksService"),
	}
}

// CreateBook validates the input and persists a new book with no reviews.
func (s *Service) CreateBook(ctx context.Context, in entities.CreateBookInput) (*entities.Book, error) {
	if violations := in.Validate(); !violations.Valid() {
		return nil, &ValidationError{Violations: violations}
	}

	book, err := in.Book()
	if err != nil {
		return nil, &ValidationError{Violations: entities.Violations{{
			Field: "releaseDate", Rule: "isodate", Message: err.Error(),
		}}}
	}

	if err := s.store.InsertBook(ctx, book); err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}

	s.log.Info("Book created", "id", book.ID)
	return book, nil
}

// GetBook returns the book with the given id.
func (s *Service) GetBook(ctx context.Context, id string) (*entities.Book, error) {
	book, err := s.store.FindBookByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(id, err)
	}
	return book, nil
}

// GetAllBooks returns every book. An empty collection is a NotFoundError.
func (s *Service) GetAllBooks(ctx context.Context) ([]entities.Book, error) {
	books, err := s.store.FindAllBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	if len(books) == 0 {
		s.log.Error("Books Not found")
		return nil, BooksNotFound()
	}
	return books, nil
}

// UpdateBook replaces the supplied fields of a book and returns the result.
func (s *Service) UpdateBook(ctx context.Context, id string, in entities.UpdateBookInput) (*entities.Book, error) {
	if violations := in.Validate(); !violations.Valid() {
		return nil, &ValidationError{Violations: violations}
	}

	book, err := s.store.FindBookByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(id, err)
	}

	if err := in.ApplyTo(book); err != nil {
		return nil, &ValidationError{Violations: entities.Violations{{
			Field: "releaseDate", Rule: "isodate", Message: err.Error(),
		}}}
	}

	if err := s.store.ReplaceBook(ctx, book); err != nil {
		return nil, s.lookupError(id, err)
	}

	s.log.Info("Book updated", "id", id)
	return book, nil
}

// DeleteBook removes a book and returns the removed record.
func (s *Service) DeleteBook(ctx context.Context, id string) (*entities.Book, error) {
	book, err := s.store.DeleteBook(ctx, id)
	if err != nil {
		return nil, s.lookupError(id, err)
	}
	s.log.Info("Book deleted", "id", id)
	return book, nil
}

// AddReview appends a new review to a book.
func (s *Service) AddReview(ctx context.Context, bookID string, in entities.CreateReviewInput) (*entities.Book, error) {
	if violations := in.Validate(); !violations.Valid() {
		return nil, &ValidationError{Violations: violations}
	}

	book, err := s.store.FindBookByID(ctx, bookID)
	if err != nil {
		return nil, s.lookupError(bookID, err)
	}

	review := in.NewReview()
	book.AppendReview(review)

	if err := s.store.ReplaceBook(ctx, book); err != nil {
		return nil, s.lookupError(bookID, err)
	}

	s.log.Info("Book Review created", "book_id", bookID, "review_id", review.ID)
	return book, nil
}

// RemoveReview deletes a review from a book. An unknown review id leaves the
// book untouched and is not an error.
func (s *Service) RemoveReview(ctx context.Context, bookID, reviewID string) (*entities.Book, error) {
	book, err := s.store.FindBookByID(ctx, bookID)
	if err != nil {
		return nil, s.lookupError(bookID, err)
	}

	if !book.RemoveReview(reviewID) {
		s.log.Debug("Review not present on book", "book_id", bookID, "review_id", reviewID)
		return book, nil
	}

	if err := s.store.ReplaceBook(ctx, book); err != nil {
		return nil, s.lookupError(bookID, err)
	}

	s.log.Info("Book Review deleted", "book_id", bookID, "review_id", reviewID)
	return book, nil
}

// lookupError turns a store miss into a NotFoundError and wraps anything else.
func (s *Service) lookupError(id string, err error) error {
	if errors.Is(err, ErrNotFound) {
		s.log.Error("Book Not found", "id", id)
		return BookNotFound(id)
	}
	return fmt.Errorf("book %s: %w", id, err)
}
