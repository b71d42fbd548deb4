package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Book is a catalog entry. Reviews are stored inside the book record and
// have no lifecycle of their own.
type Book struct {
	ID          string                      `gorm:"primaryKey;size:36" json:"id"`
	BookName    string                      `gorm:"size:30;not null" json:"bookName"`
	Author      string                      `gorm:"size:30;not null;index" json:"author"`
	ReleaseDate time.Time                   `gorm:"not null" json:"releaseDate"`
	Genre       string                      `gorm:"size:30;not null;index" json:"genre"`
	Reviews     datatypes.JSONSlice[Review] `json:"reviews"`
	CreatedAt   time.Time                   `gorm:"index" json:"-"`
	UpdatedAt   time.Time                   `json:"-"`
}

func (Book) TableName() string {
	return "books"
}

// Review is a reader review embedded in a Book.
type Review struct {
	ID     string `json:"id"`
	Review string `json:"review"`
	Rating int    `json:"rating"`
}

// NewBook builds a book with a fresh identifier and no reviews.
func NewBook(bookName, author string, releaseDate time.Time, genre string) *Book {
	return &Book{
		ID:          uuid.NewString(),
		BookName:    bookName,
		Author:      author,
		ReleaseDate: releaseDate.UTC(),
		Genre:       genre,
		Reviews:     datatypes.JSONSlice[Review]{},
	}
}

// NewReview builds a review with a fresh identifier.
func NewReview(text string, rating int) Review {
	return Review{
		ID:     uuid.NewString(),
		Review: text,
		Rating: rating,
	}
}

// ReleaseYear returns the four digit calendar year of the release date in UTC.
func (b *Book) ReleaseYear() string {
	return b.ReleaseDate.UTC().Format("2006")
}

// AppendReview adds a review at the end of the review sequence.
func (b *Book) AppendReview(r Review) {
	b.Reviews = append(b.Reviews, r)
}

// RemoveReview drops the review with the given id, keeping the order of the
// remaining ones. It reports whether a review was removed.
func (b *Book) RemoveReview(reviewID string) bool {
	for i, r := range b.Reviews {
		if r.ID == reviewID {
			kept := make(datatypes.JSONSlice[Review], 0, len(b.Reviews)-1)
			kept = append(kept, b.Reviews[:i]...)
			kept = append(kept, b.Reviews[i+1:]...)
			b.Reviews = kept
			return true
		}
	}
	return false
}
