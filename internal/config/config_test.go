package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.ShutdownTimeoutInSeconds)
	assert.Equal(t, "development", cfg.Log.Mode)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, DefaultRedisKeyPrefix, cfg.Redis.KeyPrefix)
	assert.Equal(t, DefaultExportDir, cfg.Export.Dir)
	assert.False(t, cfg.ReportExport.Enabled)
	assert.Equal(t, "0 * * * *", cfg.ReportExport.Schedule)
	assert.True(t, cfg.Tasks.Enabled)
	assert.Equal(t, 2, cfg.Tasks.Workers)
	assert.Equal(t, 15*time.Minute, cfg.Tasks.ReleaseAfter)
	assert.Equal(t, "book-directory-tasks.db", cfg.Tasks.DatabasePath)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_DSN", "host=localhost user=books dbname=books")
	t.Setenv("DATABASE_PATH", "/var/lib/books/main.db")
	t.Setenv("REPORT_EXPORT_ENABLED", "true")

	cfg := NewConfig()

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=localhost user=books dbname=books", cfg.DatabaseDSN())
	assert.Equal(t, "/var/lib/books/main-tasks.db", cfg.Tasks.DatabasePath)
	assert.True(t, cfg.ReportExport.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_TasksDatabasePathOverride(t *testing.T) {
	t.Setenv("TASKS_DATABASE_PATH", "/tmp/queue.db")

	assert.Equal(t, "/tmp/queue.db", NewConfig().Tasks.DatabasePath)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "mongo" }, "unsupported DATABASE_DRIVER"},
		{"postgres without dsn", func(c *Config) { c.Database.Driver = DriverPostgres }, "DATABASE_DSN is required"},
		{"no workers", func(c *Config) { c.Tasks.Workers = 0 }, "TASK_WORKERS"},
		{"memory", func(c *Config) { c.Database.Driver = DriverMemory }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
