// Package migrations embeds the schema migration scripts so a single binary
// can bootstrap its own database.
package migrations

import "embed"

// SQL holds the numbered, forward-only migration files. The runner in
// internal/db applies them in order and records each in schema_migrations.
//
//go:embed *.sql
var SQL embed.FS
