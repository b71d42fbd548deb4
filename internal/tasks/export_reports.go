package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/bookdirectory/internal/exporters"
	"github.com/mrlokans/bookdirectory/internal/logger"
)

const ExportReportsQueue = "export_reports"

// ReportsExporter writes the reports computed by a source.
type ReportsExporter interface {
	Export(ctx context.Context, source exporters.ReportSource) (exporters.ExportResult, error)
}

// ExportReportsTask writes all three reports to the export directory.
type ExportReportsTask struct {
	// Trigger records who enqueued the task, e.g. "api" or "scheduler".
	Trigger string `json:"trigger,omitempty"`
}

// Config returns the queue configuration for report exports.
func (t ExportReportsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        ExportReportsQueue,
		MaxAttempts: 2,
		Backoff:     30 * time.Second,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ExportReportsProcessor creates a processor function for ExportReportsTask.
func ExportReportsProcessor(source exporters.ReportSource, exporter ReportsExporter, log *logger.Logger) backlite.QueueProcessor[ExportReportsTask] {
	return func(ctx context.Context, task ExportReportsTask) error {
		if source == nil || exporter == nil {
			return fmt.Errorf("report exporter not configured")
		}

		result, err := exporter.Export(ctx, source)
		if err != nil {
			return fmt.Errorf("export reports: %w", err)
		}

		log.Info("Exported reports",
			"trigger", task.Trigger,
			"files", len(result.Files),
			"skipped", result.Skipped,
		)
		return nil
	}
}

// NewExportReportsQueue creates a backlite queue for report exports.
func NewExportReportsQueue(source exporters.ReportSource, exporter ReportsExporter, log *logger.Logger) backlite.Queue {
	return backlite.NewQueue(ExportReportsProcessor(source, exporter, log))
}
