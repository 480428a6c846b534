package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/osse101/RiftStats_Go/internal/config"
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Start the docker compose database if needed and wait until it accepts connections"
}

func (c *CheckDBCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "service", Value: "db", Usage: "docker compose service name"},
		&cli.IntFlag{Name: "attempts", Value: 30, Usage: "readiness probes before giving up"},
	}
}

func (c *CheckDBCommand) Run(ctx *cli.Context) error {
	PrintHeader("Checking Docker database status...")
	service := ctx.String("service")

	if err := runCommand("docker", "compose", "version"); err != nil {
		return fmt.Errorf("docker compose not found. Please install Docker Compose")
	}

	out, err := getCommandOutput("docker", "compose", "ps", service)
	status := strings.ToLower(out)
	if err == nil && (strings.Contains(status, "up") || strings.Contains(status, "running")) {
		PrintSuccess("Database is already running")
		return nil
	}

	PrintInfo("Starting database...")
	if err := runCommandVerbose("docker", "compose", "up", "-d", service); err != nil {
		return fmt.Errorf("error starting database: %w", err)
	}

	dbUser := getEnv(config.EnvDBUser, "postgres")
	dbName := getEnv(config.EnvDBName, config.DefaultDBName)
	maxAttempts := ctx.Int("attempts")

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := runCommand("docker", "compose", "exec", "-T", service, "pg_isready", "-U", dbUser, "-d", dbName); err == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		PrintInfo("Waiting for database... (%d/%d)", attempt, maxAttempts)
		time.Sleep(time.Second)
	}

	PrintError("Database failed to start after %d attempts", maxAttempts)
	_ = runCommandVerbose("docker", "compose", "logs", service)
	return fmt.Errorf("database failed to start")
}
