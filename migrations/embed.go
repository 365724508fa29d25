// Package migrations embeds the SQL schema migrations so that binaries and
// integration tests can apply them without a checkout of this directory.
package migrations

import "embed"

// FS holds every *.sql migration of this directory
//
//go:embed *.sql
var FS embed.FS
