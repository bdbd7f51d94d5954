package report

import "context"

// ReportService derives history and export figures purely from ledger reads.
type ReportService interface {
	// GetHistory returns per-day entries for one employee over a day, week
	// or month, plus the period total
	GetHistory(ctx context.Context, req HistoryRequest) (HistoryResponse, error)

	// GetMonthlyExport returns one row per active employee with per-day
	// hours for every calendar day of the month
	GetMonthlyExport(ctx context.Context, req MonthlyExportRequest) (MonthlyExportResponse, error)
}
