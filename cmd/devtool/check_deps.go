package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required local tools (go, docker)"
}

func (c *CheckDepsCommand) Flags() []cli.Flag { return nil }

type toolCheck struct {
	name     string
	args     []string
	field    int
	required bool
	hint     string
}

var toolChecks = []toolCheck{
	// go version go1.24.0 linux/amd64
	{name: "go", args: []string{"version"}, field: 2, required: true, hint: "https://go.dev/dl/"},
	// Docker version 24.0.5, build ced0996
	{name: "docker", args: []string{"--version"}, field: 2, required: true, hint: "https://docs.docker.com/get-docker/"},
	// Docker Compose version v2.20.2
	{name: "docker", args: []string{"compose", "version"}, field: 3, hint: "needed for check-db"},
}

func (c *CheckDepsCommand) Run(_ *cli.Context) error {
	PrintHeader("Checking dependencies...")

	var missing []string
	for _, tc := range toolChecks {
		label := strings.Join(append([]string{tc.name}, tc.args[:len(tc.args)-1]...), " ")
		version, err := getCommandOutput(tc.name, tc.args...)
		if err != nil {
			if tc.required {
				PrintError("%s not found (%s)", label, tc.hint)
				missing = append(missing, label)
			} else {
				PrintWarning("%s not found (%s)", label, tc.hint)
			}
			continue
		}
		PrintSuccess("%s installed: %s", label, versionField(version, tc.field))
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
	}
	return nil
}

// versionField picks one whitespace separated field, falling back to the whole line
func versionField(output string, field int) string {
	parts := strings.Fields(output)
	if field < len(parts) {
		return strings.TrimRight(parts[field], ",")
	}
	return output
}
