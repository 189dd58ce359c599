// Package migrations embeds the SQL schema of the trip database.
package migrations

import "embed"

// FS contains the SQL migration files.
//
//go:embed *.sql
var FS embed.FS
