package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookdirectory/internal/entities"
	"github.com/mrlokans/bookdirectory/internal/logger"
	"github.com/mrlokans/bookdirectory/internal/reports"
)

func TestReportsController_EmptyCollection(t *testing.T) {
	router, _ := setupRouter(t)

	for _, path := range []string{"/books/group-by-genre", "/books/group-by-genre-and-year", "/books/rating-by-author"} {
		w := doRequest(router, http.MethodGet, path, nil)

		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "Books data not found!", decodeError(t, w).Message, path)
	}
}

func TestReportsController_GroupByGenre(t *testing.T) {
	router, _ := setupRouter(t)
	for _, genre := range []string{"Sci-Fi", "Fantasy", "Sci-Fi"} {
		body := validBook()
		body["genre"] = genre
		createBook(t, router, body)
	}

	w := doRequest(router, http.MethodGet, "/books/group-by-genre", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Message   string               `json:"message"`
		BooksData []reports.GenreGroup `json:"booksData"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "All books data found successfully", response.Message)
	require.Len(t, response.BooksData, 2)
	assert.Equal(t, "Sci-Fi", response.BooksData[0].Genre)
	assert.Len(t, response.BooksData[0].Books, 2)
	assert.Equal(t, "Fantasy", response.BooksData[1].Genre)
}

func TestReportsController_GroupByGenreAndYear(t *testing.T) {
	router, _ := setupRouter(t)
	for _, date := range []string{"2020-01-01", "2021-06-01"} {
		body := validBook()
		body["releaseDate"] = date
		createBook(t, router, body)
	}

	w := doRequest(router, http.MethodGet, "/books/group-by-genre-and-year", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		BooksData []reports.GenreYears `json:"booksData"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.BooksData, 1)
	require.Len(t, response.BooksData[0].Years, 2)
	assert.Equal(t, "2020", response.BooksData[0].Years[0].Year)
	assert.Equal(t, "2021", response.BooksData[0].Years[1].Year)
}

func TestReportsController_RatingByAuthor(t *testing.T) {
	router, _ := setupRouter(t)
	book := createBook(t, router, validBook())
	for _, rating := range []int{2, 4} {
		w := doRequest(router, http.MethodPost, "/books/"+book.ID+"/review", map[string]any{"review": "ok", "rating": rating})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(router, http.MethodGet, "/books/rating-by-author", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		BooksData []reports.AuthorRating `json:"booksData"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.BooksData, 1)
	assert.Equal(t, "Frank Herbert", response.BooksData[0].Author)
	assert.Equal(t, 6, response.BooksData[0].Sum)
	assert.InDelta(t, 3.0, response.BooksData[0].Average, 1e-9)
}

type brokenLister struct{}

func (brokenLister) FindAllBooks(_ context.Context) ([]entities.Book, error) {
	return nil, errors.New("connection refused")
}

func TestReportsController_StoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewReportsController(reports.NewEngine(brokenLister{}, logger.NewNop()), logger.NewNop())
	router := gin.New()
	router.GET("/books/rating-by-author", controller.RatingByAuthor)

	w := doRequest(router, http.MethodGet, "/books/rating-by-author", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	response := decodeError(t, w)
	assert.Equal(t, "internal server error", response.Message)
	assert.Equal(t, "Internal Server Error", response.Error)
}
