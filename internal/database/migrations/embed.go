// Package migrations embeds the versioned schema migrations applied on
// startup with goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
