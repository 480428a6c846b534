package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/osse101/RiftStats_Go/internal/server"
)

type SetPasswordCommand struct{}

func (c *SetPasswordCommand) Name() string {
	return "set-password"
}

func (c *SetPasswordCommand) Description() string {
	return "Set an account's password, creating the account if needed"
}

func (c *SetPasswordCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "username", Required: true},
		&cli.StringFlag{Name: "password", Required: true},
		&cli.BoolFlag{Name: "admin", Usage: "grant admin rights"},
	}
}

func (c *SetPasswordCommand) Run(ctx *cli.Context) error {
	username := ctx.String("username")
	return withServices(ctx.Context, func(svc server.Services) error {
		created, err := svc.Auth.SetPassword(ctx.Context, username, ctx.String("password"), ctx.Bool("admin"))
		if err != nil {
			return fmt.Errorf("failed to set password for %s: %w", username, err)
		}
		if created {
			PrintSuccess("Created account %s", username)
		} else {
			PrintSuccess("Updated password for %s", username)
		}
		return nil
	})
}
