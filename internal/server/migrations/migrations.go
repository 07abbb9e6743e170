// Package migrations embeds the goose SQL migrations of every service.
// Each service owns one directory and its own goose version table, so the
// three services can share a database.
package migrations

import "embed"

//go:embed auth/*.sql puisi/*.sql reaction/*.sql
var Migrations embed.FS
