package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(api *handlers.API, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/ws", api.Subscribe)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/state", api.State)

		apiGroup.POST("/staff", api.EnrollStaff)
		apiGroup.PATCH("/staff/:id", api.UpdateStaff)
		apiGroup.POST("/staff/:id/present/:direction", api.AdjustPresent)
		apiGroup.DELETE("/staff/:id", api.DeleteStaff)

		apiGroup.POST("/threads", api.AddThread)
		apiGroup.PATCH("/threads/:id", api.UpdateThread)
		apiGroup.DELETE("/threads/:id", api.DeleteThread)

		apiGroup.GET("/production/workspace", api.GetWorkspace)
		apiGroup.PUT("/production/workspace", api.PutWorkspace)
		apiGroup.POST("/production/workspace/reset", api.ResetWorkspace)
		apiGroup.POST("/production/history", api.SaveHistory)
		apiGroup.PUT("/production/history/:id", api.UpdateHistory)
		apiGroup.DELETE("/production/history/:id", api.DeleteHistory)

		apiGroup.POST("/finances", api.AddTransaction)
		apiGroup.PATCH("/finances/:id", api.UpdateTransaction)
		apiGroup.DELETE("/finances/:id", api.DeleteTransaction)

		apiGroup.GET("/confirm", api.PendingConfirmation)
		apiGroup.POST("/confirm", api.ConfirmPending)
		apiGroup.POST("/confirm/cancel", api.CancelPending)

		apiGroup.POST("/insights", api.GenerateInsight)

		apiGroup.GET("/reports/summary", api.Summary)
		apiGroup.GET("/reports/payroll.xlsx", api.PayrollExport)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
