package entrypoint

import (
	"context"
	"fmt"

	"github.com/mrlokans/bookdirectory/internal/catalog"
	"github.com/mrlokans/bookdirectory/internal/config"
	"github.com/mrlokans/bookdirectory/internal/database"
	"github.com/mrlokans/bookdirectory/internal/database/books"
	"github.com/mrlokans/bookdirectory/internal/database/memstore"
	"github.com/mrlokans/bookdirectory/internal/database/redisstore"
	"github.com/mrlokans/bookdirectory/internal/logger"
)

// CloseFunc releases whatever OpenStore opened.
type CloseFunc func()

// OpenStore builds the catalog.Store selected by DATABASE_DRIVER.
func OpenStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (catalog.Store, CloseFunc, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.NewDatabase(cfg.Database.Driver, cfg.DatabaseDSN())
		if err != nil {
			return nil, nil, err
		}
		log.Info("Database initialized", "driver", db.Driver)
		closeFn := func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", "error", err)
			}
		}
		return books.NewRepository(db.DB), closeFn, nil

	case config.DriverRedis:
		client, err := redisstore.NewClient(ctx, redisstore.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info("Redis store initialized", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.KeyPrefix)
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Error("Error closing redis client", "error", err)
			}
		}
		return redisstore.New(client, cfg.Redis.KeyPrefix), closeFn, nil

	case config.DriverMemory:
		log.Warn("Using in-memory store, data is lost on restart")
		return memstore.New(), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
}
