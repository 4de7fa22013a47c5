package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/service/reporting"
)

// State serves the full cached application state plus readiness. The
// dashboard renders its loading screen until status flips to ready.
func (a *API) State(c *gin.Context) {
	c.JSON(http.StatusOK, a.state.State())
}

// Summary serves the dashboard aggregates, recomputed from raw records on
// every call.
func (a *API) Summary(c *gin.Context) {
	st := a.state.State()
	payroll := reporting.SumPayroll(st.Staff)
	ledger := reporting.SumLedger(st.Transactions)

	c.JSON(http.StatusOK, gin.H{
		"totalProductionValue": reporting.TotalProductionValue(st.History),
		"staffCount":           len(st.Staff),
		"presentCount":         reporting.PresentCount(st.Staff),
		"absentCount":          len(st.Staff) - reporting.PresentCount(st.Staff),
		"payroll":              payroll,
		"ledger":               ledger,
		"lowStockCount":        reporting.LowStockCount(st.Threads),
	})
}

// PayrollExport streams the salary sheet as an xlsx download.
func (a *API) PayrollExport(c *gin.Context) {
	f, err := reporting.BuildPayrollWorkbook(a.state.Staff())
	if err != nil {
		a.logger.Error("failed building payroll workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to build payroll export"})
		return
	}
	defer func() { _ = f.Close() }()

	c.Header("Content-Disposition", `attachment; filename="payroll.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		a.logger.Error("failed streaming payroll workbook", zap.Error(err))
	}
}
