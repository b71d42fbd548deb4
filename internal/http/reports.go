package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookdirectory/internal/logger"
	"github.com/mrlokans/bookdirectory/internal/reports"
)

// ReportService computes the aggregate views. reports.Engine satisfies it.
type ReportService interface {
	GroupByGenre(ctx context.Context) ([]reports.GenreGroup, error)
	GroupByGenreAndYear(ctx context.Context) ([]reports.GenreYears, error)
	RatingByAuthor(ctx context.Context) ([]reports.AuthorRating, error)
}

type ReportsController struct {
	reports ReportService
	log     *logger.Logger
}

func NewReportsController(reports ReportService, log *logger.Logger) *ReportsController {
	return &ReportsController{
		reports: reports,
		log:     log.With("controller", "ReportsController"),
	}
}

// GroupByGenre handles GET /books/group-by-genre
func (rc *ReportsController) GroupByGenre(c *gin.Context) {
	groups, err := rc.reports.GroupByGenre(c.Request.Context())
	rc.respond(c, "group by genre", groups, err)
}

// GroupByGenreAndYear handles GET /books/group-by-genre-and-year
func (rc *ReportsController) GroupByGenreAndYear(c *gin.Context) {
	groups, err := rc.reports.GroupByGenreAndYear(c.Request.Context())
	rc.respond(c, "group by genre and year", groups, err)
}

// RatingByAuthor handles GET /books/rating-by-author
func (rc *ReportsController) RatingByAuthor(c *gin.Context) {
	ratings, err := rc.reports.RatingByAuthor(c.Request.Context())
	rc.respond(c, "rating by author", ratings, err)
}

func (rc *ReportsController) respond(c *gin.Context, operation string, data any, err error) {
	if err != nil {
		respondServiceError(c, rc.log, err, operation, "")
		return
	}
	respondPayload(c, http.StatusOK, msgBooksFound, keyBooksData, data)
}
