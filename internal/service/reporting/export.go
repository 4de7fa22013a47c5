package reporting

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mmsports/backoffice/internal/domain/models"
)

// BuildPayrollWorkbook renders the salary sheet as an xlsx workbook, the
// printable form of the payroll tab. The caller owns closing the file.
func BuildPayrollWorkbook(staff []models.Staff) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	headers := []any{"Name", "Role", "Monthly Salary", "Present", "Daily Wage", "Earned", "Overtime", "Advance", "Net Payable"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	row := 2
	for _, s := range staff {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("resolve cell for row %d: %w", row, err)
		}
		values := []any{s.Name, s.Role, s.Salary, s.Present, DailyWage(s), Earned(s), Overtime(s), s.Advance, Net(s)}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	totals := SumPayroll(staff)
	cell, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return nil, fmt.Errorf("resolve totals cell: %w", err)
	}
	totalRow := []any{"TOTAL", "", "", "", "", totals.Base, totals.OT, totals.Advance, totals.Net}
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return nil, fmt.Errorf("write totals row: %w", err)
	}

	return f, nil
}
