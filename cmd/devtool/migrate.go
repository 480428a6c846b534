package main

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v2"

	"github.com/osse101/RiftStats_Go/internal/database"
)

const migrationsDir = "migrations"

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations: up, down, status, create <name>"
}

func (c *MigrateCommand) Flags() []cli.Flag { return nil }

func (c *MigrateCommand) Run(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return fmt.Errorf("subcommand required: up, down, status, create")
	}
	subcmd := ctx.Args().First()

	// create writes a new file and needs no connection
	if subcmd == "create" {
		name := ctx.Args().Get(1)
		if name == "" {
			return fmt.Errorf("migration name required for create")
		}
		goose.SetSequential(true)
		return goose.Create(nil, migrationsDir, name, "sql")
	}

	pool, err := openPool(ctx.Context)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch subcmd {
	case "up":
		if err := database.Migrate(ctx.Context, pool); err != nil {
			return err
		}
	case "down":
		if err := database.MigrateDown(ctx.Context, pool); err != nil {
			return err
		}
	case "status":
	default:
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}

	version, err := database.MigrationVersion(ctx.Context, pool)
	if err != nil {
		return err
	}
	PrintSuccess("Schema version: %d", version)
	return nil
}
