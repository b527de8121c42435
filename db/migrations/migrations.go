package migrations

import "embed"

// FS embeds the SQL migrations creating the dataset tables. The
// golang-migrate library reads them through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
