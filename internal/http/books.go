package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookdirectory/internal/entities"
	"github.com/mrlokans/bookdirectory/internal/logger"
)

// BookService is the catalog behaviour the books routes need.
// catalog.Service satisfies it.
type BookService interface {
	CreateBook(ctx context.Context, in entities.CreateBookInput) (*entities.Book, error)
	GetBook(ctx context.Context, id string) (*entities.Book, error)
	GetAllBooks(ctx context.Context) ([]entities.Book, error)
	UpdateBook(ctx context.Context, id string, in entities.UpdateBookInput) (*entities.Book, error)
	DeleteBook(ctx context.Context, id string) (*entities.Book, error)
	AddReview(ctx context.Context, bookID string, in entities.CreateReviewInput) (*entities.Book, error)
	RemoveReview(ctx context.Context, bookID, reviewID string) (*entities.Book, error)
}

// Response messages and payload keys of the books API.
const (
	msgBookCreated   = "Book has been created successfully"
	msgBookUpdated   = "Book has been successfully updated"
	msgBooksFound    = "All books data found successfully"
	msgBookFound     = "Book found successfully"
	msgBookDeleted   = "Book deleted successfully"
	msgReviewAdded   = "Review has been added successfully"
	msgReviewDeleted = "Review deleted successfully"

	msgBookNotCreated = "Error: Book not created!"
	msgBookNotUpdated = "Error: Book not updated!"
	msgReviewNotAdded = "Error: Review not added!"

	keyNewBook      = "newBook"
	keyExistingBook = "existingBook"
	keyBooksData    = "booksData"
	keyDeletedBook  = "deletedBook"
)

type BooksController struct {
	service BookService
	log     *logger.Logger
}

func NewBooksController(service BookService, log *logger.Logger) *BooksController {
	return &BooksController{
		service: service,
		log:     log.With("controller", "BooksController"),
	}
}

// CreateBook handles POST /books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var input entities.CreateBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bc.log.Warn("Malformed create book body", "error", err)
		respondBadRequest(c, msgBookNotCreated)
		return
	}

	book, err := bc.service.CreateBook(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, bc.log, err, "create book", msgBookNotCreated)
		return
	}
	respondPayload(c, http.StatusCreated, msgBookCreated, keyNewBook, book)
}

// UpdateBook handles PUT /books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	var input entities.UpdateBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bc.log.Warn("Malformed update book body", "error", err)
		respondBadRequest(c, msgBookNotUpdated)
		return
	}

	book, err := bc.service.UpdateBook(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, bc.log, err, "update book", msgBookNotUpdated)
		return
	}
	respondPayload(c, http.StatusOK, msgBookUpdated, keyExistingBook, book)
}

// GetAllBooks handles GET /books
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	books, err := bc.service.GetAllBooks(c.Request.Context())
	if err != nil {
		respondServiceError(c, bc.log, err, "list books", "")
		return
	}
	respondPayload(c, http.StatusOK, msgBooksFound, keyBooksData, books)
}

// GetBook handles GET /books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	book, err := bc.service.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, bc.log, err, "get book", "")
		return
	}
	respondPayload(c, http.StatusOK, msgBookFound, keyExistingBook, book)
}

// DeleteBook handles DELETE /books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	book, err := bc.service.DeleteBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, bc.log, err, "delete book", "")
		return
	}
	respondPayload(c, http.StatusOK, msgBookDeleted, keyDeletedBook, book)
}

// AddReview handles POST /books/:id/review
func (bc *BooksController) AddReview(c *gin.Context) {
	var input entities.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bc.log.Warn("Malformed review body", "error", err)
		respondBadRequest(c, msgReviewNotAdded)
		return
	}

	book, err := bc.service.AddReview(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, bc.log, err, "add review", msgReviewNotAdded)
		return
	}
	respondPayload(c, http.StatusCreated, msgReviewAdded, keyNewBook, book)
}

// RemoveReview handles DELETE /books/:id/review/:reviewId
func (bc *BooksController) RemoveReview(c *gin.Context) {
	book, err := bc.service.RemoveReview(c.Request.Context(), c.Param("id"), c.Param("reviewId"))
	if err != nil {
		respondServiceError(c, bc.log, err, "remove review", "")
		return
	}
	respondPayload(c, http.StatusOK, msgReviewDeleted, keyDeletedBook, book)
}
