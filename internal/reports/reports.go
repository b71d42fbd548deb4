// Package reports computes the read-only aggregate views over the books
// collection: books per genre, books per genre and release year, and review
// ratings per author.
//
// The grouping functions are pure and operate on a snapshot; Engine loads the
// snapshot from a BookLister on every call.
package reports

import (
	"github.com/mrlokans/bookdirectory/internal/entities"
)

// GenreGroup holds the books sharing one genre.
type GenreGroup struct {
	Genre string          `json:"genre"`
	Books []entities.Book `json:"books"`
}

// YearGroup holds the books of one genre released in one year.
type YearGroup struct {
	Year  string          `json:"year"`
	Books []entities.Book `json:"books"`
}

// GenreYears holds the per-year buckets of one genre.
type GenreYears struct {
	Genre string      `json:"genre"`
	Years []YearGroup `json:"years"`
}

// AuthorRating is the rating rollup over every review of an author's books.
type AuthorRating struct {
	Author  string  `json:"author"`
	Sum     int     `json:"sum"`
	Average float64 `json:"average"`
}

// GroupByGenre partitions books by exact genre. Groups appear in the order
// their genre is first seen; books keep snapshot order inside a group.
func GroupByGenre(books []entities.Book) []GenreGroup {
	index := make(map[string]int)
	groups := make([]GenreGroup, 0)

	for _, book := range books {
		i, ok := index[book.Genre]
		if !ok {
			i = len(groups)
			index[book.Genre] = i
			groups = append(groups, GenreGroup{Genre: book.Genre})
		}
		groups[i].Books = append(groups[i].Books, book)
	}
	return groups
}

// GroupByGenreAndYear buckets books by (genre, release year) and then nests
// the year buckets under their genre.
func GroupByGenreAndYear(books []entities.Book) []GenreYears {
	type key struct{ genre, year string }
	type bucket struct {
		key   key
		books []entities.Book
	}

	bucketIndex := make(map[key]int)
	buckets := make([]bucket, 0)

	for _, book := range books {
		k := key{genre: book.Genre, year: book.ReleaseYear()}
		i, ok := bucketIndex[k]
		if !ok {
			i = len(buckets)
			bucketIndex[k] = i
			buckets = append(buckets, bucket{key: k})
		}
		buckets[i].books = append(buckets[i].books, book)
	}

	genreIndex := make(map[string]int)
	out := make([]GenreYears, 0)
	for _, b := range buckets {
		i, ok := genreIndex[b.key.genre]
		if !ok {
			i = len(out)
			genreIndex[b.key.genre] = i
			out = append(out, GenreYears{Genre: b.key.genre})
		}
		out[i].Years = append(out[i].Years, YearGroup{Year: b.key.year, Books: b.books})
	}
	return out
}

// RatingByAuthor sums and averages the ratings of all reviews across all of
// an author's books. Authors without reviews get sum 0 and average 0.
func RatingByAuthor(books []entities.Book) []AuthorRating {
	type tally struct {
		author string
		sum    int
		count  int
	}

	index := make(map[string]int)
	tallies := make([]tally, 0)

	for _, book := range books {
		i, ok := index[book.Author]
		if !ok {
			i = len(tallies)
			index[book.Author] = i
			tallies = append(tallies, tally{author: book.Author})
		}
		for _, review := range book.Reviews {
			tallies[i].sum += review.Rating
			tallies[i].count++
		}
	}

	out := make([]AuthorRating, 0, len(tallies))
	for _, t := range tallies {
		rating := AuthorRating{Author: t.author, Sum: t.sum}
		if t.count > 0 {
			rating.Average = float64(t.sum) / float64(t.count)
		}
		out = append(out, rating)
	}
	return out
}
