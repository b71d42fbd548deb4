// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - catalog.Store: the books collection (internal/catalog/store.go).
//     Implemented by books.Repository (sqlite, postgres), redisstore.Store
//     and memstore.Store.
//   - reports.BookLister: the snapshot reports are computed from
//     (internal/reports/engine.go).
//
// ## HTTP Interfaces
//
//   - http.BookService: book and review operations (internal/http/books.go)
//   - http.ReportService: aggregate views (internal/http/reports.go)
//   - http.Pinger: store health (internal/http/health.go)
//
// ## Background Work Interfaces
//
//   - exporters.ReportSource: reports written by the exporter
//     (internal/exporters/generic.go)
//   - tasks.ReportsExporter: what the export_reports queue runs
//     (internal/tasks/export_reports.go)
//
// # Adding a New Store
//
//  1. Implement catalog.Store, returning errors that wrap catalog.ErrNotFound
//     for missing ids.
//  2. Keep reviews inside the book record so one write covers both.
//  3. Add a driver constant to internal/config and a case to
//     entrypoint.OpenStore.
//  4. Add a compile-time check to checks.go.
package interfaces
