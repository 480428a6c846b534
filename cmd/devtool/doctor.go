package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/osse101/RiftStats_Go/internal/config"
	"github.com/osse101/RiftStats_Go/internal/database"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (tools, .env, database, schema)"
}

func (c *DoctorCommand) Flags() []cli.Flag { return nil }

func (c *DoctorCommand) Run(ctx *cli.Context) error {
	PrintHeader("Running Doctor...")

	hasError := false

	if err := (&CheckDepsCommand{}).Run(ctx); err != nil {
		PrintError("Dependencies check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Dependencies OK")
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		PrintError("Environment check failed: %v", err)
		hasError = true
	} else {
		for _, w := range warnings {
			PrintWarning("%s", w)
		}
		PrintSuccess("Environment OK")
	}

	pool, err := openPool(ctx.Context)
	if err != nil {
		PrintError("Database check failed: %v", err)
		return fmt.Errorf("doctor found issues")
	}
	defer pool.Close()

	version, err := database.MigrationVersion(ctx.Context, pool)
	if err != nil {
		PrintWarning("Could not read schema version (run 'devtool migrate up'): %v", err)
	} else {
		PrintSuccess("Database OK (schema version %d)", version)
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
