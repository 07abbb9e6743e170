// Package migrations embeds the schema of the CLI's local session file.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
