package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/domain/models"
)

type enrollStaffRequest struct {
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Salary float64 `json:"salary"`
}

// EnrollStaff creates a new payroll entry with a client-generated timestamp
// id and zeroed attendance, advance and overtime.
func (a *API) EnrollStaff(c *gin.Context) {
	var req enrollStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.logger.Warn("invalid enrollment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Name == "" {
		req.Name = "New Employee"
	}
	if req.Role == "" {
		req.Role = "Staff"
	}

	staff := models.Staff{
		ID:     strconv.FormatInt(a.now().UnixMilli(), 10),
		Name:   req.Name,
		Role:   req.Role,
		Salary: req.Salary,
	}

	if err := a.store.PutStaff(c.Request.Context(), staff); err != nil {
		a.logger.Error("failed enrolling staff", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to enroll staff"})
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// UpdateStaff applies field-by-field edits straight through to the store.
// Values are not validated or clamped here, matching the update API's
// field-level last-write-wins semantics.
func (a *API) UpdateStaff(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid field update"})
		return
	}

	if err := a.store.UpdateStaffFields(c.Request.Context(), c.Param("id"), fields); err != nil {
		a.logger.Error("failed updating staff", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update staff"})
		return
	}

	c.Status(http.StatusNoContent)
}

// AdjustPresent handles the attendance +/- buttons, clamping to [0, 31].
func (a *API) AdjustPresent(c *gin.Context) {
	id := c.Param("id")
	var delta int
	switch c.Param("direction") {
	case "increment":
		delta = 1
	case "decrement":
		delta = -1
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown direction"})
		return
	}

	var current *models.Staff
	for _, s := range a.state.Staff() {
		if s.ID == id {
			current = &s
			break
		}
	}
	if current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff not found"})
		return
	}

	present := current.Present + delta
	if present < 0 {
		present = 0
	}
	if present > models.MaxPresentDays {
		present = models.MaxPresentDays
	}

	if err := a.store.UpdateStaffFields(c.Request.Context(), id, map[string]any{"present": present}); err != nil {
		a.logger.Error("failed adjusting attendance", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to update attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"present": present})
}

// DeleteStaff stages the removal behind an explicit confirmation.
func (a *API) DeleteStaff(c *gin.Context) {
	id := c.Param("id")
	prompt := a.confirm.Stage(
		"Remove Employee?",
		"Are you sure you want to remove this employee from the payroll database?",
		func(ctx context.Context) error { return a.store.DeleteStaff(ctx, id) },
	)
	c.JSON(http.StatusAccepted, prompt)
}
