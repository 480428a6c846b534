package handler

import (
	"bytes"
	"net/http"

	"github.com/osse101/RiftStats_Go/internal/report"
)

// ExportFilename is the attachment name of the workbook download
const ExportFilename = "riftstats-report.xlsx"

// ReportHandler serves the cross-champion admin reports
type ReportHandler struct {
	reports report.Service
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports report.Service) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// HandleWinrates lists every champion's win rate
// @Summary Win rate report
// @Tags admin-reports
// @Produce json
// @Security BearerAuth
// @Param side query string false "red or blue"
// @Param patch query string false "Patch"
// @Success 200 {array} domain.ChampionWinrateRow
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/reports/winrate [get]
func (h *ReportHandler) HandleWinrates(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reports.AllChampionWinrates(r.Context(), reportFilter(r))
	if err != nil {
		respondServiceError(w, r, "Failed to build win rate report", err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// HandleTopItems lists (champion, item) pairs with at least two games
// @Summary Top items report
// @Tags admin-reports
// @Produce json
// @Security BearerAuth
// @Param side query string false "red or blue"
// @Param patch query string false "Patch"
// @Success 200 {array} domain.ChampionItemRow
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/reports/top-items [get]
func (h *ReportHandler) HandleTopItems(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reports.AllTopItems(r.Context(), reportFilter(r))
	if err != nil {
		respondServiceError(w, r, "Failed to build top items report", err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// HandlePatches lists per-patch aggregates unfiltered; side and patch are not read
// @Summary Patch report
// @Tags admin-reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.PatchStats
// @Router /api/v1/admin/reports/patches [get]
func (h *ReportHandler) HandlePatches(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reports.PatchStats(r.Context())
	if err != nil {
		respondServiceError(w, r, "Failed to build patch report", err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// HandleExport downloads all three reports as one workbook
// @Summary Export reports
// @Tags admin-reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param side query string false "red or blue"
// @Param patch query string false "Patch"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/reports/export.xlsx [get]
func (h *ReportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.reports.ExportWorkbook(r.Context(), reportFilter(r), &buf); err != nil {
		respondServiceError(w, r, "Failed to export reports", err)
		return
	}
	respondBytes(w, ContentTypeXLSX, ExportFilename, &buf)
}
