package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/osse101/RiftStats_Go/internal/server"
)

type syncKind string

const (
	syncChampions syncKind = "champions"
	syncItems     syncKind = "items"
)

// SyncCommand pulls the champion or item catalogue from Data Dragon
type SyncCommand struct {
	kind syncKind
}

func (c *SyncCommand) Name() string {
	return "sync-" + string(c.kind)
}

func (c *SyncCommand) Description() string {
	return fmt.Sprintf("Sync the %s catalogue from Data Dragon", c.kind)
}

func (c *SyncCommand) Flags() []cli.Flag { return nil }

func (c *SyncCommand) Run(ctx *cli.Context) error {
	PrintHeader("Syncing " + string(c.kind))
	return withServices(ctx.Context, func(svc server.Services) error {
		switch c.kind {
		case syncChampions:
			res, err := svc.Champions.SyncChampions(ctx.Context)
			if err != nil {
				return err
			}
			PrintSuccess("Version %s: %d inserted, %d already present, %d total", res.Version, res.Inserted, res.Skipped, res.Total)
		case syncItems:
			res, err := svc.Champions.SyncItems(ctx.Context)
			if err != nil {
				return err
			}
			PrintSuccess("Version %s: %d inserted, %d updated, %d removed, %d total", res.Version, res.Inserted, res.Updated, res.Removed, res.Total)
		}
		return nil
	})
}
