// Package migrations embeds the SQL schema migrations for both supported
// database engines.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
