package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/domain/models"
	"github.com/mmsports/backoffice/internal/service/reporting"
)

// normalizeShift keeps shift row lists as arrays. The stored singleton and
// every broadcast always carry `[]`, never `null`.
func normalizeShift(rows []models.ProductionEntry) []models.ProductionEntry {
	if rows == nil {
		return []models.ProductionEntry{}
	}
	return rows
}

// GetWorkspace returns the cached current-production singleton.
func (a *API) GetWorkspace(c *gin.Context) {
	c.JSON(http.StatusOK, a.state.Workspace())
}

// PutWorkspace replaces the workspace whole: local cache, broadcast and
// remote write happen in the same call.
func (a *API) PutWorkspace(c *gin.Context) {
	var ws models.Workspace
	if err := c.ShouldBindJSON(&ws); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace payload"})
		return
	}
	ws.Day = normalizeShift(ws.Day)
	ws.Night = normalizeShift(ws.Night)

	if err := a.state.UpdateWorkspace(c.Request.Context(), ws); err != nil {
		a.logger.Error("failed writing workspace", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to save workspace"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ResetWorkspace clears the editor back to one blank row per shift.
func (a *API) ResetWorkspace(c *gin.Context) {
	if err := a.state.ResetWorkspace(c.Request.Context()); err != nil {
		a.logger.Error("failed resetting workspace", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to reset workspace"})
		return
	}
	c.JSON(http.StatusOK, a.state.Workspace())
}

// SaveHistory snapshots the current workspace into a new history record.
// The summaries and grand totals are derived here, never taken from the
// client, so the cached aggregates always match the row data.
func (a *API) SaveHistory(c *gin.Context) {
	ws := a.state.Workspace()
	day, night, grandQty, grandTk := reporting.WorkspaceTotals(ws)

	if grandQty == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cannot save empty production"})
		return
	}

	now := a.now()
	rec := models.HistoryRecord{
		ID:           now.UnixMilli(),
		Date:         now.Format("1/2/2006"),
		Timestamp:    now.Format("3:04:05 PM"),
		TotalQty:     grandQty,
		TotalTk:      grandTk,
		DayData:      ws.Day,
		NightData:    ws.Night,
		DaySummary:   day,
		NightSummary: night,
	}

	docID, err := a.store.AddHistory(c.Request.Context(), rec)
	if err != nil {
		a.logger.Error("failed saving history record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to save record"})
		return
	}

	rec.DocID = docID
	c.JSON(http.StatusCreated, rec)
}

// UpdateHistory overwrites a saved record after recomputing its summaries
// from the submitted row data.
func (a *API) UpdateHistory(c *gin.Context) {
	var rec models.HistoryRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid history payload"})
		return
	}
	rec.DayData = normalizeShift(rec.DayData)
	rec.NightData = normalizeShift(rec.NightData)

	reporting.RecomputeHistory(&rec)

	docID := c.Param("id")
	if err := a.store.ReplaceHistory(c.Request.Context(), docID, rec); err != nil {
		a.logger.Error("failed updating history record", zap.String("docId", docID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update record"})
		return
	}

	rec.DocID = docID
	c.JSON(http.StatusOK, rec)
}

// DeleteHistory stages the removal behind an explicit confirmation.
func (a *API) DeleteHistory(c *gin.Context) {
	docID := c.Param("id")
	prompt := a.confirm.Stage(
		"Delete History?",
		"This production record will be permanently deleted from the cloud history.",
		func(ctx context.Context) error { return a.store.DeleteHistory(ctx, docID) },
	)
	c.JSON(http.StatusAccepted, prompt)
}
