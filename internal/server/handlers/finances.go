package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/domain/models"
)

type addTransactionRequest struct {
	Date   string                 `json:"date"`
	Name   string                 `json:"name" binding:"required"`
	Amount float64                `json:"amount" binding:"required"`
	Type   models.TransactionType `json:"type"`
}

// AddTransaction appends a ledger entry; the date defaults to today.
func (a *API) AddTransaction(c *gin.Context) {
	var req addTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.logger.Warn("invalid transaction payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Date == "" {
		req.Date = a.now().Format("2006-01-02")
	}
	if req.Type == "" {
		req.Type = models.TransactionEarn
	}

	tx := models.Transaction{
		Date:   req.Date,
		Name:   req.Name,
		Amount: req.Amount,
		Type:   req.Type,
	}

	id, err := a.store.AddTransaction(c.Request.Context(), tx)
	if err != nil {
		a.logger.Error("failed adding transaction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to log transaction"})
		return
	}

	tx.ID = id
	c.JSON(http.StatusCreated, tx)
}

// UpdateTransaction applies field-by-field edits straight through to the
// store. Type changes are permitted by the update API.
func (a *API) UpdateTransaction(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid field update"})
		return
	}

	if err := a.store.UpdateTransactionFields(c.Request.Context(), c.Param("id"), fields); err != nil {
		a.logger.Error("failed updating transaction", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update transaction"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTransaction stages the removal behind an explicit confirmation.
func (a *API) DeleteTransaction(c *gin.Context) {
	id := c.Param("id")
	prompt := a.confirm.Stage(
		"Delete Record?",
		"This financial transaction will be removed from your ledger permanently.",
		func(ctx context.Context) error { return a.store.DeleteTransaction(ctx, id) },
	)
	c.JSON(http.StatusAccepted, prompt)
}
