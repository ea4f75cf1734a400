// Package estate holds assets embedded into the estate binary.
package estate

import "embed"

// Migrations contains the goose SQL migrations applied by `estate migrate`.
//
//go:embed migrations/*.sql
var Migrations embed.FS
