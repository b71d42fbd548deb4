package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookdirectory/internal/catalog"
	"github.com/mrlokans/bookdirectory/internal/config"
	"github.com/mrlokans/bookdirectory/internal/exporters"
	http_controllers "github.com/mrlokans/bookdirectory/internal/http"
	"github.com/mrlokans/bookdirectory/internal/logger"
	"github.com/mrlokans/bookdirectory/internal/reports"
	"github.com/mrlokans/bookdirectory/internal/scheduler"
	"github.com/mrlokans/bookdirectory/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, log *logger.Logger, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", "error", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown server", "timeout", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the listener goes away
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server shutdown", "error", err)
	}

	log.Info("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("Starting book directory", "version", version, "driver", cfg.Database.Driver)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize store", "error", err)
	}
	defer closeStore()

	service := catalog.NewService(store, log)
	engine := reports.NewEngine(store, log)
	exporter := exporters.NewReportExporter(cfg.Export.Dir, log)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Tasks.DatabasePath, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize task queue", "error", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Error("Error closing task client", "error", err)
			}
		}()

		taskClient.Register(tasks.NewExportReportsQueue(engine, exporter, log))
		go taskClient.Start(ctx)
	}

	var exportScheduler *scheduler.ReportExportScheduler
	if cfg.ReportExport.Enabled {
		exportScheduler = scheduler.NewReportExportScheduler(
			cfg.ReportExport.Schedule,
			exportFunc(taskClient, engine, exporter),
			log,
		)
		if err := exportScheduler.Start(ctx); err != nil {
			log.Fatal("Failed to start report export scheduler", "error", err)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Books:      service,
		Reports:    engine,
		Store:      store,
		Logger:     log,
		TaskClient: taskClient,
		Version:    version,
	})

	onShutdown := func(ctx context.Context) {
		if exportScheduler != nil {
			exportScheduler.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
		}
		cancel()
	}

	Serve(router, cfg, log, onShutdown)
}

// exportFunc enqueues an export when the task queue runs, and exports
// inline otherwise.
func exportFunc(client *tasks.Client, source exporters.ReportSource, exporter *exporters.ReportExporter) scheduler.ExportFunc {
	if client != nil {
		return func(_ context.Context, trigger string) error {
			_, err := client.Add(tasks.ExportReportsTask{Trigger: trigger}).Save()
			return err
		}
	}
	return func(ctx context.Context, _ string) error {
		_, err := exporter.Export(ctx, source)
		return err
	}
}
