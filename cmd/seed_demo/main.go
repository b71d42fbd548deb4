// Command seed_demo fills a book directory store with sample books and reviews.
// Usage: go run ./cmd/seed_demo [-db path/to/demo.db] [-keep]
//
// The store is chosen by DATABASE_DRIVER; -db only applies to sqlite.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mrlokans/bookdirectory/internal/catalog"
	"github.com/mrlokans/bookdirectory/internal/config"
	"github.com/mrlokans/bookdirectory/internal/entities"
	"github.com/mrlokans/bookdirectory/internal/entrypoint"
	"github.com/mrlokans/bookdirectory/internal/logger"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoBook struct {
	Input   entities.CreateBookInput
	Reviews []demoReview
}

type demoReview struct {
	Text   string
	Rating int
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo sqlite database")
	keep := flag.Bool("keep", false, "append to an existing sqlite database instead of recreating it")
	flag.Parse()

	cfg := config.NewConfig()
	if cfg.Database.Driver == config.DriverSQLite {
		cfg.Database.Path = *dbPath
		if !*keep {
			if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
				log.Fatalf("Failed to remove existing demo database: %v", err)
			}
		}
		log.Printf("Seeding demo database at %s...", *dbPath)
	} else {
		log.Printf("Seeding %s store...", cfg.Database.Driver)
	}

	ctx := context.Background()
	store, closeStore, err := entrypoint.OpenStore(ctx, cfg, logger.NewNop())
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	service := catalog.NewService(store, logger.NewNop())

	for _, demo := range demoBooks() {
		book, err := service.CreateBook(ctx, demo.Input)
		if err != nil {
			log.Printf("Failed to save book %s: %v", demo.Input.BookName, err)
			continue
		}
		for _, r := range demo.Reviews {
			rating := r.Rating
			if _, err := service.AddReview(ctx, book.ID, entities.CreateReviewInput{Review: r.Text, Rating: &rating}); err != nil {
				log.Printf("Failed to add review to %s: %v", book.BookName, err)
			}
		}
		log.Printf("Saved: %s by %s (%d reviews)", book.BookName, book.Author, len(demo.Reviews))
	}

	log.Println("Demo data generated successfully!")
}

func demoBooks() []demoBook {
	return []demoBook{
		{
			Input: entities.CreateBookInput{BookName: "Pride and Prejudice", Author: "Jane Austen", ReleaseDate: "1813-01-28", Genre: "Romance"},
			Reviews: []demoReview{
				{"Sharp and funny from the first line.", 9},
				{"Mr. Darcy grows on you.", 8},
			},
		},
		{
			Input: entities.CreateBookInput{BookName: "Emma", Author: "Jane Austen", ReleaseDate: "1815-12-23", Genre: "Romance"},
			Reviews: []demoReview{
				{"Emma is hard to like, on purpose.", 6},
			},
		},
		{
			Input: entities.CreateBookInput{BookName: "Frankenstein", Author: "Mary Shelley", ReleaseDate: "1818-01-01", Genre: "Horror"},
			Reviews: []demoReview{
				{"The creature is the most human character.", 10},
				{"Slow middle section.", 5},
			},
		},
		{
			Input: entities.CreateBookInput{BookName: "Dracula", Author: "Bram Stoker", ReleaseDate: "1897-05-26", Genre: "Horror"},
		},
		{
			Input: entities.CreateBookInput{BookName: "The Time Machine", Author: "H. G. Wells", ReleaseDate: "1895-05-07", Genre: "Sci-Fi"},
			Reviews: []demoReview{
				{"Short and bleak.", 7},
			},
		},
		{
			Input: entities.CreateBookInput{BookName: "The War of the Worlds", Author: "H. G. Wells", ReleaseDate: "1898-01-01", Genre: "Sci-Fi"},
			Reviews: []demoReview{
				{"Still reads like a news report.", 8},
				{"Ending felt abrupt.", 4},
			},
		},
		{
			Input: entities.CreateBookInput{BookName: "Moby Dick", Author: "Herman Melville", ReleaseDate: "1851-10-18", Genre: "Adventure"},
			Reviews: []demoReview{
				{"Skip the cetology chapters.", 3},
			},
		},
	}
}
