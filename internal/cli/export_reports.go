package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/bookdirectory/internal/config"
	"github.com/mrlokans/bookdirectory/internal/entrypoint"
	"github.com/mrlokans/bookdirectory/internal/exporters"
	"github.com/mrlokans/bookdirectory/internal/logger"
	"github.com/mrlokans/bookdirectory/internal/reports"
)

// ExportReportsCommand writes every report to disk once and exits.
type ExportReportsCommand struct {
	OutputDir string
	Verbose   bool

	cfg *config.Config
}

func NewExportReportsCommand(cfg *config.Config) *ExportReportsCommand {
	return &ExportReportsCommand{cfg: cfg}
}

func (cmd *ExportReportsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-reports", flag.ContinueOnError)

	fs.StringVar(&cmd.OutputDir, "dir", cmd.cfg.Export.Dir, "Directory the report files are written to")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-reports [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Compute the genre, genre/year and author rating reports and write each\n")
		fmt.Fprintf(os.Stderr, "one as <report>-<timestamp>.json. The store is chosen by DATABASE_DRIVER.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ExportReportsCommand) Run(ctx context.Context) error {
	mode := "production"
	if cmd.Verbose {
		mode = "development"
	}
	log, err := logger.New(mode)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	store, closeStore, err := entrypoint.OpenStore(ctx, cmd.cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closeStore()

	engine := reports.NewEngine(store, log)
	exporter := exporters.NewReportExporter(cmd.OutputDir, log)

	result, err := exporter.Export(ctx, engine)
	if err != nil {
		return err
	}

	for _, path := range result.Files {
		fmt.Printf("  wrote   %s\n", path)
	}
	for _, name := range result.Skipped {
		fmt.Printf("  skipped %s (no books)\n", name)
	}
	fmt.Printf("Exported %d report(s) to %s\n", len(result.Files), cmd.OutputDir)
	return nil
}
