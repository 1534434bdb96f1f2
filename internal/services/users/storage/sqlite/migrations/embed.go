package migrations

import "embed"

// FS contains embedded SQLite migrations for users storage.
//
//go:embed *.sql
var FS embed.FS
