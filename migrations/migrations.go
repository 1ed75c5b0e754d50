// Package migrations embeds the SQL schema migration files.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
