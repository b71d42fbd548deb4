package exporters

import (
	"context"

	"github.com/mrlokans/bookdirectory/internal/reports"
)

// Report names, used as file name stems and in task results.
const (
	ReportGroupByGenre        = "group-by-genre"
	ReportGroupByGenreAndYear = "group-by-genre-and-year"
	ReportRatingByAuthor      = "rating-by-author"
)

// ReportSource computes the reports that get exported. reports.Engine
// satisfies it.
type ReportSource interface {
	GroupByGenre(ctx context.Context) ([]reports.GenreGroup, error)
	GroupByGenreAndYear(ctx context.Context) ([]reports.GenreYears, error)
	RatingByAuthor(ctx context.Context) ([]reports.AuthorRating, error)
}

type ExportResult struct {
	Files   []string `json:"files"`
	Skipped []string `json:"skipped"`
}
