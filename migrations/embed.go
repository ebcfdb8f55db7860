// Package migrations embeds the SQL schema and its atlas checksum file.
package migrations

import "embed"

//go:embed *.sql atlas.sum
var FS embed.FS
