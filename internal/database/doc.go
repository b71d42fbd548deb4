// Package database provides the data access layer for the books collection.
//
// # Architecture
//
//	database/
//	├── database.go      # SQL connection setup (sqlite, postgres) and migration
//	├── books/           # GORM-backed book documents, reviews in a JSON column
//	├── redisstore/      # Redis-backed book documents
//	└── memstore/        # In-process book documents
//
// Every backend implements catalog.Store:
//
//	db, err := database.NewDatabase(database.DriverSQLite, "./book-directory.db")
//	repo := books.NewRepository(db.DB)
//	svc := catalog.NewService(repo, log)
//
// Reviews have no table of their own. They live inside the book record so a
// book and its reviews are always read and written together.
package database
