package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func newRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CheckDepsCommand{})
	r.Register(&CheckDBCommand{})
	r.Register(&DoctorCommand{})
	r.Register(&MigrateCommand{})
	r.Register(&WaitForDBCommand{})
	r.Register(&DBSetupCommand{})
	r.Register(&DBResetCommand{})
	r.Register(&HealthCheckCommand{})
	r.Register(&SeedUsersCommand{})
	r.Register(&SetPasswordCommand{})
	r.Register(&SyncCommand{kind: syncChampions})
	r.Register(&SyncCommand{kind: syncItems})
	r.Register(&ReportCommand{})
	return r
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "devtool",
		Usage:    "development and operations helper for " + appName,
		Commands: newRegistry().CLICommands(),
	}
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}
}
