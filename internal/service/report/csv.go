package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/report"
)

// RenderMonthlyCSV formats a monthly export as an Excel-friendly CSV: one
// header row with DD/MM day columns, one row per employee, hours with two
// decimals. The figures come straight from the export response; this layer
// only formats them.
func RenderMonthlyCSV(resp report.MonthlyExportResponse) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Employee ID", "Full Name"}
	for _, day := range resp.Days {
		parsed, err := time.Parse("2006-01-02", day)
		if err != nil {
			return nil, fmt.Errorf("invalid day column %q: %w", day, err)
		}
		header = append(header, parsed.Format("02/01"))
	}
	header = append(header, "Total Hours")
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range resp.Rows {
		record := []string{row.EmployeeID, row.EmployeeName}
		for _, hours := range row.DailyHours {
			record = append(record, strconv.FormatFloat(hours, 'f', 2, 64))
		}
		record = append(record, strconv.FormatFloat(row.TotalHours, 'f', 2, 64))
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
