package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/osse101/RiftStats_Go/internal/database"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{Name: "timeout", Value: time.Minute, Usage: "give up after this long"},
	}
}

func (c *WaitForDBCommand) Run(ctx *cli.Context) error {
	PrintHeader("Waiting for database...")

	waitCtx, cancel := context.WithTimeout(ctx.Context, ctx.Duration("timeout"))
	defer cancel()

	dbURL := databaseURL()
	PrintInfo("Target: %s", redactPassword(dbURL))
	pool, err := database.WaitForPool(waitCtx, dbURL, devtoolMaxConns, devtoolIdle, devtoolLifetime)
	if err != nil {
		return err
	}
	pool.Close()

	PrintSuccess("Database is ready")
	return nil
}
