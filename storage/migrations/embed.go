// Package migrations embeds the SQL migrations for the sqlite slot driver.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
