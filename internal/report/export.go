package report

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
)

var (
	winrateHeaders  = []interface{}{"Champion ID", "Champion", "Games", "Wins", "Winrate %"}
	topItemsHeaders = []interface{}{"Champion ID", "Champion", "Item ID", "Item", "Games", "Wins", "Winrate %"}
	patchHeaders    = []interface{}{"Patch", "Matches", "Red wins", "Blue wins", "Red winrate %", "Avg duration (s)"}
)

// ExportWorkbook writes the three admin reports as one xlsx workbook
func (s *service) ExportWorkbook(ctx context.Context, filter domain.ReportFilter, w io.Writer) error {
	winrates, err := s.AllChampionWinrates(ctx, filter)
	if err != nil {
		return err
	}
	items, err := s.AllTopItems(ctx, filter)
	if err != nil {
		return err
	}
	patches, err := s.PatchStats(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.FromContext(ctx).Warn("Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName(defaultSheet, SheetWinrate); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	for _, name := range []string{SheetTopItems, SheetPatches} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	winrateRows := make([][]interface{}, len(winrates))
	for i, r := range winrates {
		winrateRows[i] = []interface{}{r.ChampionID, r.ChampionName, r.TotalGames, r.Wins, r.Winrate}
	}
	itemRows := make([][]interface{}, len(items))
	for i, r := range items {
		itemRows[i] = []interface{}{r.ChampionID, r.ChampionName, r.ItemID, r.ItemName, r.Games, r.Wins, r.Winrate}
	}
	patchRows := make([][]interface{}, len(patches))
	for i, r := range patches {
		patchRows[i] = []interface{}{r.Patch, r.Matches, r.RedWins, r.BlueWins, r.RedWinrate, r.AvgDurationSeconds}
	}

	if err := writeSheet(f, SheetWinrate, winrateHeaders, winrateRows); err != nil {
		return err
	}
	if err := writeSheet(f, SheetTopItems, topItemsHeaders, itemRows); err != nil {
		return err
	}
	if err := writeSheet(f, SheetPatches, patchHeaders, patchRows); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headers []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, 14)
}
