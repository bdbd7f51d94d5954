package report

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/report"
	dashboardservice "github.com/cmlabs-hris/geoattend-backend-go/internal/service/dashboard"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/service/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// History and the dashboard derive hours independently from the same ledger:
// decomposing a month into days must yield the same totals on both paths.
func TestHistoryAndDashboardAgreeOnMonthlyHours(t *testing.T) {
	shiftID := "shift-1"
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FullName: "Alice Nguyen", IsActive: true, ShiftID: &shiftID, Shift: testShift()},
	}}
	eventRepo := &fakeEventRepo{events: []clockevent.ClockEvent{
		testEvent(t, "emp-1", clockevent.TypeIn, "2026-03-02T09:00:00Z"),
		testEvent(t, "emp-1", clockevent.TypeOut, "2026-03-02T17:00:00Z"),
		testEvent(t, "emp-1", clockevent.TypeIn, "2026-03-10T09:00:00Z"),
		testEvent(t, "emp-1", clockevent.TypeOut, "2026-03-10T13:15:00Z"),
		testEvent(t, "emp-1", clockevent.TypeIn, "2026-03-20T10:00:00Z"),
		testEvent(t, "emp-1", clockevent.TypeOut, "2026-03-20T10:30:00Z"),
	}}

	reportSvc := newTestReportService(eventRepo, employeeRepo)
	dashboardSvc := dashboardservice.NewDashboardService(eventRepo, employeeRepo, timesheet.NewCalculator(time.UTC))

	history, err := reportSvc.GetHistory(context.Background(), report.HistoryRequest{
		EmployeeID: "emp-1",
		Period:     "month",
		Date:       "2026-03-15",
	})
	require.NoError(t, err)

	summary, err := dashboardSvc.GetSummary(context.Background(), dashboard.SummaryRequest{
		Date: "2026-03-15",
		View: "month",
	})
	require.NoError(t, err)

	assert.Equal(t, history.Start, summary.Start)
	assert.Equal(t, history.End, summary.End)

	// Period sum equals the sum of the dashboard's per-day decomposition.
	var dashboardTotal float64
	dashboardByDate := make(map[string]float64, len(summary.DailyHours))
	for _, day := range summary.DailyHours {
		dashboardTotal += day.Hours
		dashboardByDate[day.Date] = day.Hours
	}
	assert.InDelta(t, 12.75, history.SumHours, 0.001)
	assert.InDelta(t, history.SumHours, dashboardTotal, 0.001)

	// And day by day: every history entry matches the dashboard's bucket for
	// the same date; dashboard days without a history entry carry zero.
	historyByDate := make(map[string]float64, len(history.Days))
	for _, day := range history.Days {
		historyByDate[day.Date] = day.TotalHours
	}
	for date, hours := range dashboardByDate {
		assert.InDelta(t, historyByDate[date], hours, 0.001, "date %s", date)
	}
}
