// Package migrations embeds the SQL migration files. They are applied at
// startup through the golang-migrate iofs driver.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version последняя версия схемы
const Version = 2
