package exporters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrlokans/bookdirectory/internal/catalog"
	"github.com/mrlokans/bookdirectory/internal/logger"
)

const timestampLayout = "20060102T150405Z"

// ReportExporter writes every report as an indented JSON file named
// <report>-<timestamp>.json inside Dir.
type ReportExporter struct {
	Dir string
	log *logger.Logger
	now func() time.Time
}

func NewReportExporter(dir string, log *logger.Logger) *ReportExporter {
	return &ReportExporter{
		Dir: dir,
		log: log.With("service", "ReportExporter"),
		now: time.Now,
	}
}

type reportFile struct {
	Report      string    `json:"report"`
	GeneratedAt time.Time `json:"generatedAt"`
	Data        any       `json:"data"`
}

// Export runs all reports and writes one file per report. A report that
// finds no books is skipped rather than failing the export.
func (e *ReportExporter) Export(ctx context.Context, source ReportSource) (ExportResult, error) {
	result := ExportResult{Files: []string{}, Skipped: []string{}}

	if err := e.ensureDir(); err != nil {
		return result, err
	}

	generatedAt := e.now().UTC()
	runs := []struct {
		name string
		run  func(context.Context) (any, error)
	}{
		{ReportGroupByGenre, func(ctx context.Context) (any, error) { return source.GroupByGenre(ctx) }},
		{ReportGroupByGenreAndYear, func(ctx context.Context) (any, error) { return source.GroupByGenreAndYear(ctx) }},
		{ReportRatingByAuthor, func(ctx context.Context) (any, error) { return source.RatingByAuthor(ctx) }},
	}

	for _, r := range runs {
		data, err := r.run(ctx)
		if catalog.IsNotFound(err) {
			e.log.Warn("Skipping report with no data", "report", r.name)
			result.Skipped = append(result.Skipped, r.name)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("compute %s: %w", r.name, err)
		}

		path, err := e.write(reportFile{Report: r.name, GeneratedAt: generatedAt, Data: data})
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, path)
	}

	e.log.Info("Reports exported", "files", len(result.Files), "skipped", len(result.Skipped))
	return result, nil
}

func (e *ReportExporter) write(file reportFile) (string, error) {
	filename := fmt.Sprintf("%s-%s.json", file.Report, file.GeneratedAt.Format(timestampLayout))
	path := filepath.Join(e.Dir, filename)

	jsonData, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", file.Report, err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func (e *ReportExporter) ensureDir() error {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	return nil
}
