package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/service/confirm"
)

// PendingConfirmation reports the currently staged destructive action.
func (a *API) PendingConfirmation(c *gin.Context) {
	prompt, ok := a.confirm.Pending()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no destructive action pending"})
		return
	}
	c.JSON(http.StatusOK, prompt)
}

// ConfirmPending executes the staged destructive action.
func (a *API) ConfirmPending(c *gin.Context) {
	err := a.confirm.Confirm(c.Request.Context())
	if errors.Is(err, confirm.ErrNothingPending) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no destructive action pending"})
		return
	}
	if err != nil {
		a.logger.Error("confirmed destructive action failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "action failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}

// CancelPending discards the staged destructive action without running it.
func (a *API) CancelPending(c *gin.Context) {
	if !a.confirm.Cancel() {
		c.JSON(http.StatusNotFound, gin.H{"error": "no destructive action pending"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
