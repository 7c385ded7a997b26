// Package postgres provides PostgreSQL implementations of the store
// interfaces, backed by database/sql with the pgx stdlib driver. It also
// embeds the goose migrations that create the schema.
package postgres
