// Package migrations embeds the goose SQL migrations so the server binary
// can provision its own schema at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
