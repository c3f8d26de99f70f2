// Package sql embeds the schema migrations applied by facgen migrate.
package sql

import "embed"

// Migrations holds the schema migration files, applied in filename order.
//
//go:embed migrations
var Migrations embed.FS
