package config

// Default locations for on-disk state
const (
	// DefaultDatabasePath is the default sqlite file for the books table
	DefaultDatabasePath = "./book-directory.db"

	// DefaultExportDir is where report exports are written
	DefaultExportDir = "./exports"

	// DefaultRedisKeyPrefix namespaces every key the redis store writes
	DefaultRedisKeyPrefix = "book-directory"
)

// Database drivers accepted in DATABASE_DRIVER
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)
