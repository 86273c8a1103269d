package migrations

import "embed"

// FS embeds the SQL migration files in this directory. The golang-migrate
// iofs driver reads them from here when applying migrations on startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the application expects. Migrate runs up
// to exactly this version.
const Version = 1
