package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/server"
	"github.com/osse101/RiftStats_Go/internal/utils"
)

type ReportCommand struct{}

func (c *ReportCommand) Name() string {
	return "report"
}

func (c *ReportCommand) Description() string {
	return "Print patch statistics, dump them as JSON (--json file|-) or export the admin workbook (--out report.xlsx)"
}

func (c *ReportCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "side", Usage: "red or blue"},
		&cli.StringFlag{Name: "patch", Usage: "major.minor, e.g. 15.3"},
		&cli.StringFlag{Name: "out", Usage: "write an xlsx workbook to this path"},
		&cli.StringFlag{Name: "json", Usage: "write patch statistics as JSON to this path, - for stdout"},
	}
}

func (c *ReportCommand) Run(ctx *cli.Context) error {
	filter := domain.ReportFilter{
		Side:  domain.Side(strings.ToLower(ctx.String("side"))),
		Patch: ctx.String("patch"),
	}

	return withServices(ctx.Context, func(svc server.Services) error {
		if path := ctx.String("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := svc.Reports.ExportWorkbook(ctx.Context, filter, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			PrintSuccess("Workbook written to %s", path)
			return nil
		}

		stats, err := svc.Reports.PatchStats(ctx.Context)
		if err != nil {
			return err
		}
		stats = filterPatchStats(stats, filter.Patch)
		if path := ctx.String("json"); path != "" {
			return utils.SaveJSON(path, stats)
		}

		rows := make([][]string, 0, len(stats))
		for _, p := range stats {
			rows = append(rows, []string{
				p.Patch,
				strconv.FormatInt(p.Matches, 10),
				strconv.FormatInt(p.RedWins, 10),
				strconv.FormatInt(p.BlueWins, 10),
				fmt.Sprintf("%.2f", p.RedWinrate),
			})
		}
		PrintTable([]string{"PATCH", "MATCHES", "RED WINS", "BLUE WINS", "RED WR%"}, rows)
		return nil
	})
}

// filterPatchStats keeps the rows for patch, or all rows when patch is empty
func filterPatchStats(stats []domain.PatchStats, patch string) []domain.PatchStats {
	if patch == "" {
		return stats
	}
	kept := make([]domain.PatchStats, 0, 1)
	for _, p := range stats {
		if p.Patch == patch {
			kept = append(kept, p)
		}
	}
	return kept
}
