// Package books stores book documents in a SQL table through GORM. Reviews
// are kept in a JSON column of the book row.
//
// # Interface Implementation
//
//	var _ catalog.Store = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.FindBookByID(ctx, id)
package books

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mrlokans/bookdirectory/internal/catalog"
	"github.com/mrlokans/bookdirectory/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// InsertBook creates a new book row.
func (r *Repository) InsertBook(ctx context.Context, book *entities.Book) error {
	if book.Reviews == nil {
		book.Reviews = datatypes.JSONSlice[entities.Review]{}
	}
	return r.db.WithContext(ctx).Create(book).Error
}

// FindBookByID retrieves a book by its ID.
func (r *Repository) FindBookByID(ctx context.Context, id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("book %s: %w", id, catalog.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	normalize(&book)
	return &book, nil
}

// FindAllBooks retrieves every book ordered by creation time.
func (r *Repository) FindAllBooks(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&books).Error
	if err != nil {
		return nil, err
	}
	for i := range books {
		normalize(&books[i])
	}
	return books, nil
}

// ReplaceBook overwrites every column of an existing book except its
// creation time. Zero values are written too.
func (r *Repository) ReplaceBook(ctx context.Context, book *entities.Book) error {
	if book.Reviews == nil {
		book.Reviews = datatypes.JSONSlice[entities.Review]{}
	}
	result := r.db.WithContext(ctx).Model(book).Select("*").Omit("created_at").Updates(book)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("book %s: %w", book.ID, catalog.ErrNotFound)
	}
	return nil
}

// DeleteBook removes a book and returns the deleted row.
func (r *Repository) DeleteBook(ctx context.Context, id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&book).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Book{}, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("book %s: %w", id, catalog.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	normalize(&book)
	return &book, nil
}

// Ping checks the connection behind the repository.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// normalize makes a stored JSON null read back as an empty review list.
func normalize(book *entities.Book) {
	if book.Reviews == nil {
		book.Reviews = datatypes.JSONSlice[entities.Review]{}
	}
}
