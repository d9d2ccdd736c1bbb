// Package migrations embeds the goose SQL migrations for the application
// schema: two independent tables, no foreign keys, no indexes beyond the
// primary keys.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
