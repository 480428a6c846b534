package main

import (
	"bufio"
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/urfave/cli/v2"

	"github.com/osse101/RiftStats_Go/internal/database"
)

const maintenanceDB = "postgres"

// maintenanceURL points connStr at the maintenance database and returns the original target name
func maintenanceURL(connStr string) (string, string, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return "", "", fmt.Errorf("invalid database url: %w", err)
	}
	target := strings.TrimPrefix(u.Path, "/")
	if target == "" {
		return "", "", fmt.Errorf("database url %s names no database", redactPassword(connStr))
	}
	u.Path = "/" + maintenanceDB
	return u.String(), target, nil
}

func connectMaintenance(ctx context.Context) (*pgx.Conn, string, error) {
	adminURL, target, err := maintenanceURL(databaseURL())
	if err != nil {
		return nil, "", err
	}
	PrintInfo("Connecting to server: %s", redactPassword(adminURL))
	conn, err := pgx.Connect(ctx, adminURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to connect to %s database: %w", maintenanceDB, err)
	}
	return conn, target, nil
}

// DBSetupCommand creates the database when missing and applies migrations
type DBSetupCommand struct{}

func (c *DBSetupCommand) Name() string        { return "db-setup" }
func (c *DBSetupCommand) Description() string { return "Create the database if missing and migrate it" }
func (c *DBSetupCommand) Flags() []cli.Flag   { return nil }

func (c *DBSetupCommand) Run(ctx *cli.Context) error {
	PrintHeader("Setting up database...")

	conn, target, err := connectMaintenance(ctx.Context)
	if err != nil {
		return err
	}

	var exists bool
	err = conn.QueryRow(ctx.Context, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", target).Scan(&exists)
	if err == nil && !exists {
		PrintInfo("Creating database %s", target)
		_, err = conn.Exec(ctx.Context, "CREATE DATABASE "+pgx.Identifier{target}.Sanitize())
	}
	conn.Close(ctx.Context)
	if err != nil {
		return fmt.Errorf("failed to prepare database %s: %w", target, err)
	}
	if exists {
		PrintInfo("Database %s already exists", target)
	}

	pool, err := openPool(ctx.Context)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx.Context, pool); err != nil {
		return err
	}
	version, err := database.MigrationVersion(ctx.Context, pool)
	if err != nil {
		return err
	}
	PrintSuccess("Database %s ready at schema version %d", target, version)
	return nil
}

// DBResetCommand drops and recreates the database, leaving it empty
type DBResetCommand struct{}

func (c *DBResetCommand) Name() string        { return "db-reset" }
func (c *DBResetCommand) Description() string { return "Drop and recreate the database (destroys all data)" }

func (c *DBResetCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "yes", Usage: "skip the confirmation prompt"},
	}
}

func (c *DBResetCommand) Run(ctx *cli.Context) error {
	conn, target, err := connectMaintenance(ctx.Context)
	if err != nil {
		return err
	}
	defer conn.Close(ctx.Context)

	if !ctx.Bool("yes") {
		PrintWarning("This drops %s and every match, user and favorite in it.", target)
		fmt.Fprintf(out, "Type %q to continue: ", confirmYes)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(answer) != confirmYes {
			return fmt.Errorf("reset aborted")
		}
	}

	_, err = conn.Exec(ctx.Context, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, target)
	if err != nil {
		PrintWarning("Failed to terminate connections: %v", err)
	}

	quoted := pgx.Identifier{target}.Sanitize()
	if _, err := conn.Exec(ctx.Context, "DROP DATABASE IF EXISTS "+quoted); err != nil {
		return fmt.Errorf("failed to drop database: %w", err)
	}
	if _, err := conn.Exec(ctx.Context, "CREATE DATABASE "+quoted); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	PrintSuccess("Database %s reset", target)
	PrintInfo("Next: devtool migrate up, or start the server with AUTO_MIGRATE=true")
	return nil
}
