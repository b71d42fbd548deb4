package http

import (
	"github.com/mrlokans/bookdirectory/internal/logger"
	"github.com/mrlokans/bookdirectory/internal/tasks"
)

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Books   BookService
	Reports ReportService
	Store   Pinger
	Logger  *logger.Logger

	// Task queue, nil when TASKS_ENABLED=false
	TaskClient *tasks.Client

	// Application info
	Version string
}
