package migrations

import "embed"

// FS contains embedded Postgres migrations for users storage.
//
//go:embed *.sql
var FS embed.FS
