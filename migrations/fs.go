package migrations

import "embed"

// FS holds the embedded SQL migration files.
//
//go:embed sqlite/*.sql
var FS embed.FS
