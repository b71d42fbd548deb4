package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookdirectory/internal/logger"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(SecurityHeadersMiddleware())

	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	health := NewHealthController(cfg.Store, cfg.Version)
	booksController := NewBooksController(cfg.Books, log)
	reportsController := NewReportsController(cfg.Reports, log)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", Ping)

	// Books API endpoints
	books := router.Group("/books")
	{
		books.POST("", booksController.CreateBook)
		books.GET("", booksController.GetAllBooks)

		// Report routes are static and win over /books/:id
		books.GET("/group-by-genre", reportsController.GroupByGenre)
		books.GET("/group-by-genre-and-year", reportsController.GroupByGenreAndYear)
		books.GET("/rating-by-author", reportsController.RatingByAuthor)

		books.GET("/:id", booksController.GetBook)
		books.PUT("/:id", booksController.UpdateBook)
		books.DELETE("/:id", booksController.DeleteBook)
		books.POST("/:id/review", booksController.AddReview)
		books.DELETE("/:id/review/:reviewId", booksController.RemoveReview)
	}

	// Task queue endpoints
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient)
		router.GET("/api/tasks/types", tasksController.ListTaskTypes)
		router.POST("/api/tasks/:type/run", tasksController.RunTask)
		router.GET("/api/tasks/:id", tasksController.GetTaskStatus)
	}

	return router
}
