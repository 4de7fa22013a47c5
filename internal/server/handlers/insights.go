package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mmsports/backoffice/internal/service/insight"
)

const insightTimeout = 20 * time.Second

// GenerateInsight runs the configured provider over the current workspace
// snapshot and the staff count. A provider failure degrades to the canned
// fallback text, so this endpoint always answers 200.
func (a *API) GenerateInsight(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), insightTimeout)
	defer cancel()

	snap := insight.Snapshot{
		Workspace:  a.state.Workspace(),
		StaffCount: len(a.state.Staff()),
	}

	text := insight.Generate(ctx, a.insight, snap, a.logger)
	c.JSON(http.StatusOK, gin.H{"insights": text})
}
