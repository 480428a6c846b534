//go:build tools
// +build tools

package tools

// Code generators and the migration CLI tracked in go.mod.
// Run via go run so versions stay pinned.

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
)
