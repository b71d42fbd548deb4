package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookdirectory/internal/exporters"
	"github.com/mrlokans/bookdirectory/internal/logger"
	"github.com/mrlokans/bookdirectory/internal/reports"
)

func newTestClient(t *testing.T) *Client {
	dbPath := filepath.Join(t.TempDir(), "test-tasks.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg, logger.NewNop())
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "queue.db")

	client, err := NewClient(dbPath, DefaultConfig(), logger.NewNop())
	require.NoError(t, err)
	require.NotNil(t, client)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "tasks database should be created")

	assert.NoError(t, client.Close())
}

func TestClientStartStop(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go client.Start(ctx)

	// Give it time to start
	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()

	success := client.Stop(stopCtx)
	assert.True(t, success, "stop should succeed gracefully")
}

func TestClientStopWithoutStart(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()

	assert.True(t, client.Stop(context.Background()))
}

// TestTask is a simple task for testing
type TestTask struct {
	Value string `json:"value"`
}

func (t TestTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "test_task",
		MaxAttempts: 1,
		Backoff:     time.Second,
		Timeout:     5 * time.Second,
	}
}

func TestTaskEnqueue(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()

	executed := make(chan string, 1)
	queue := backlite.NewQueue(func(ctx context.Context, task TestTask) error {
		executed <- task.Value
		return nil
	})
	client.Register(queue)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	ids, err := client.Add(TestTask{Value: "hello"}).Save()
	require.NoError(t, err)
	assert.Len(t, ids, 1)

	select {
	case val := <-executed:
		assert.Equal(t, "hello", val)
	case <-time.After(5 * time.Second):
		t.Fatal("task was not executed within timeout")
	}
}

func TestExportReportsTaskConfig(t *testing.T) {
	cfg := ExportReportsTask{}.Config()

	assert.Equal(t, "export_reports", cfg.Name)
	assert.Equal(t, 2, cfg.MaxAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

type stubSource struct{}

func (stubSource) GroupByGenre(context.Context) ([]reports.GenreGroup, error) {
	return []reports.GenreGroup{{Genre: "Sci-Fi"}}, nil
}

func (stubSource) GroupByGenreAndYear(context.Context) ([]reports.GenreYears, error) {
	return []reports.GenreYears{{Genre: "Sci-Fi"}}, nil
}

func (stubSource) RatingByAuthor(context.Context) ([]reports.AuthorRating, error) {
	return []reports.AuthorRating{{Author: "Asimov"}}, nil
}

type failingExporter struct{}

func (failingExporter) Export(context.Context, exporters.ReportSource) (exporters.ExportResult, error) {
	return exporters.ExportResult{}, errors.New("read-only filesystem")
}

func TestExportReportsProcessor(t *testing.T) {
	t.Run("writes files", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "exports")
		exporter := exporters.NewReportExporter(dir, logger.NewNop())
		process := ExportReportsProcessor(stubSource{}, exporter, logger.NewNop())

		require.NoError(t, process(context.Background(), ExportReportsTask{Trigger: "test"}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("propagates exporter errors", func(t *testing.T) {
		process := ExportReportsProcessor(stubSource{}, failingExporter{}, logger.NewNop())

		err := process(context.Background(), ExportReportsTask{})
		assert.ErrorContains(t, err, "read-only filesystem")
	})

	t.Run("not configured", func(t *testing.T) {
		process := ExportReportsProcessor(nil, nil, logger.NewNop())

		assert.Error(t, process(context.Background(), ExportReportsTask{}))
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}
