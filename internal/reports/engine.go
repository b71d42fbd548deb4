package reports

import (
	"context"
	"fmt"

	"github.com/mrlokans/bookdirectory/internal/catalog"
	"github.com/mrlokans/bookdirectory/internal/entities"
	"github.com/mrlokans/bookdirectory/internal/logger"
)

// BookLister provides the snapshot the reports are computed from.
type BookLister interface {
	FindAllBooks(ctx context.Context) ([]entities.Book, error)
}

// Engine runs the reports against the current contents of the store.
type Engine struct {
	books BookLister
	log   *logger.Logger
}

func NewEngine(books BookLister, log *logger.Logger) *Engine {
	return &Engine{
		books: books,
		log:   log.With("service", "ReportsEngine"),
	}
}

func (e *Engine) GroupByGenre(ctx context.Context) ([]GenreGroup, error) {
	books, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByGenre(books), nil
}

func (e *Engine) GroupByGenreAndYear(ctx context.Context) ([]GenreYears, error) {
	books, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByGenreAndYear(books), nil
}

func (e *Engine) RatingByAuthor(ctx context.Context) ([]AuthorRating, error) {
	books, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return RatingByAuthor(books), nil
}

// snapshot loads all books; an empty collection is a NotFoundError.
func (e *Engine) snapshot(ctx context.Context) ([]entities.Book, error) {
	books, err := e.books.FindAllBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	if len(books) == 0 {
		e.log.Error("Books Not found")
		return nil, catalog.BooksNotFound()
	}
	return books, nil
}
