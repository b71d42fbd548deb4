package entities

import (
	"fmt"
	"strings"
	"time"
)

// Accepted layouts for release dates, date-only first.
var releaseDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// ParseReleaseDate parses an ISO 8601 date ("2022-09-12") or timestamp.
func ParseReleaseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid release date %q", value)
}

// CreateBookInput is the payload for creating a book.
type CreateBookInput struct {
	BookName    string `json:"bookName" validate:"required,max=30"`
	Author      string `json:"author" validate:"required,max=30"`
	ReleaseDate string `json:"releaseDate" validate:"required,isodate"`
	Genre       string `json:"genre" validate:"required,max=30"`
}

func (in CreateBookInput) Validate() Violations {
	return validateStruct(in)
}

// Book converts a validated input into a new Book.
func (in CreateBookInput) Book() (*Book, error) {
	releaseDate, err := ParseReleaseDate(in.ReleaseDate)
	if err != nil {
		return nil, err
	}
	return NewBook(in.BookName, in.Author, releaseDate, in.Genre), nil
}

// UpdateBookInput carries a partial update; nil fields are left untouched.
type UpdateBookInput struct {
	BookName    *string `json:"bookName" validate:"omitempty,min=1,max=30"`
	Author      *string `json:"author" validate:"omitempty,min=1,max=30"`
	ReleaseDate *string `json:"releaseDate" validate:"omitempty,isodate"`
	Genre       *string `json:"genre" validate:"omitempty,min=1,max=30"`
}

func (in UpdateBookInput) Validate() Violations {
	return validateStruct(in)
}

// ApplyTo replaces the supplied fields on b.
func (in UpdateBookInput) ApplyTo(b *Book) error {
	if in.ReleaseDate != nil {
		releaseDate, err := ParseReleaseDate(*in.ReleaseDate)
		if err != nil {
			return err
		}
		b.ReleaseDate = releaseDate
	}
	if in.BookName != nil {
		b.BookName = *in.BookName
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.Genre != nil {
		b.Genre = *in.Genre
	}
	return nil
}

// CreateReviewInput is the payload for adding a review to a book.
type CreateReviewInput struct {
	Review string `json:"review" validate:"required,max=100"`
	Rating *int   `json:"rating" validate:"required,min=0,max=10"`
}

func (in CreateReviewInput) Validate() Violations {
	return validateStruct(in)
}

// NewReview converts a validated input into a review.
func (in CreateReviewInput) NewReview() Review {
	rating := 0
	if in.Rating != nil {
		rating = *in.Rating
	}
	return NewReview(in.Review, rating)
}
