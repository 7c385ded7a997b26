// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the services, so the same validation and query logic runs unchanged
// against the in-memory stores (internal/store/memory) and the PostgreSQL
// stores (internal/platform/postgres).
package store
