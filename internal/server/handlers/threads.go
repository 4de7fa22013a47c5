package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/domain/models"
	"github.com/mmsports/backoffice/internal/service/reporting"
)

// AddThread creates a placeholder inventory row with the next sequence
// number; the user fills in code and color from the table afterwards.
func (a *API) AddThread(c *gin.Context) {
	thread := models.Thread{
		ID:   fmt.Sprintf("t%d", a.now().UnixMilli()),
		SN:   reporting.NextSN(a.state.Threads()),
		Code: "NEW",
		Name: "Color Name",
	}

	if err := a.store.PutThread(c.Request.Context(), thread); err != nil {
		a.logger.Error("failed adding thread", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add thread"})
		return
	}

	c.JSON(http.StatusCreated, thread)
}

// UpdateThread applies field-by-field edits straight through to the store.
func (a *API) UpdateThread(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid field update"})
		return
	}

	if err := a.store.UpdateThreadFields(c.Request.Context(), c.Param("id"), fields); err != nil {
		a.logger.Error("failed updating thread", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update thread"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteThread stages the removal behind an explicit confirmation.
func (a *API) DeleteThread(c *gin.Context) {
	id := c.Param("id")
	prompt := a.confirm.Stage(
		"Delete Thread?",
		"This item will be permanently removed from the color inventory.",
		func(ctx context.Context) error { return a.store.DeleteThread(ctx, id) },
	)
	c.JSON(http.StatusAccepted, prompt)
}
