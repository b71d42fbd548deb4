package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookdirectory/internal/catalog"
	"github.com/mrlokans/bookdirectory/internal/database"
	"github.com/mrlokans/bookdirectory/internal/database/books"
	"github.com/mrlokans/bookdirectory/internal/database/memstore"
	"github.com/mrlokans/bookdirectory/internal/database/redisstore"
	"github.com/mrlokans/bookdirectory/internal/exporters"
	"github.com/mrlokans/bookdirectory/internal/http"
	"github.com/mrlokans/bookdirectory/internal/reports"
	"github.com/mrlokans/bookdirectory/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Store implementations
var _ catalog.Store = (*books.Repository)(nil)
var _ catalog.Store = (*redisstore.Store)(nil)
var _ catalog.Store = (*memstore.Store)(nil)

// Report snapshots come from any store
var _ reports.BookLister = (catalog.Store)(nil)

// =============================================================================
// HTTP Boundary
// =============================================================================

var _ http.BookService = (*catalog.Service)(nil)
var _ http.ReportService = (*reports.Engine)(nil)
var _ http.Pinger = (catalog.Store)(nil)
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ exporters.ReportSource = (*reports.Engine)(nil)
var _ tasks.ReportsExporter = (*exporters.ReportExporter)(nil)
