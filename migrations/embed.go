// Package migrations embeds the SQL schema migrations so the server binary
// and the tests do not depend on the working directory.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
