package report

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/service/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events []clockevent.ClockEvent
}

func (f *fakeEventRepo) Create(ctx context.Context, event clockevent.ClockEvent) (clockevent.ClockEvent, error) {
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (clockevent.ClockEvent, error) {
	for _, ev := range f.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return clockevent.ClockEvent{}, clockevent.ErrEventNotFound
}

func (f *fakeEventRepo) CreateAudited(ctx context.Context, event clockevent.ClockEvent, log clockevent.ChangeLog) (clockevent.ClockEvent, error) {
	return f.Create(ctx, event)
}

func (f *fakeEventRepo) UpdateAudited(ctx context.Context, event clockevent.ClockEvent, log clockevent.ChangeLog) error {
	for i := range f.events {
		if f.events[i].ID == event.ID {
			f.events[i] = event
			return nil
		}
	}
	return clockevent.ErrEventNotFound
}

func (f *fakeEventRepo) ListByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) ([]clockevent.ClockEvent, error) {
	return f.ListByEmployeeBetween(ctx, employeeID, dayStart, dayEnd)
}

func (f *fakeEventRepo) ListByEmployeeBetween(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]clockevent.ClockEvent, error) {
	var out []clockevent.ClockEvent
	for _, ev := range f.events {
		if ev.EmployeeID != employeeID {
			continue
		}
		if ev.Timestamp.Before(rangeStart) || !ev.Timestamp.Before(rangeEnd) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (f *fakeEventRepo) ListBetween(ctx context.Context, rangeStart, rangeEnd time.Time) ([]clockevent.ClockEvent, error) {
	var out []clockevent.ClockEvent
	for _, ev := range f.events {
		if ev.Timestamp.Before(rangeStart) || !ev.Timestamp.Before(rangeEnd) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (f *fakeEventRepo) ListLatest(ctx context.Context, limit int) ([]clockevent.ClockEvent, error) {
	if limit > len(f.events) {
		limit = len(f.events)
	}
	return f.events[len(f.events)-limit:], nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return append([]employee.Employee(nil), f.employees...), nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.IsActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int64, error) {
	active, _ := f.ListActive(ctx)
	return int64(len(active)), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	for i := range f.employees {
		if f.employees[i].ID == emp.ID {
			f.employees[i] = emp
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func testShift() *shift.Shift {
	return &shift.Shift{
		ID:            "shift-1",
		Name:          "Office Hours",
		StartTime:     time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:       time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC),
		LateGraceMin:  10,
		EarlyGraceMin: 10,
	}
}

func testEvent(t *testing.T, employeeID string, typ clockevent.EventType, timestamp string) clockevent.ClockEvent {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, timestamp)
	require.NoError(t, err)
	return clockevent.ClockEvent{
		ID:         "ev-" + timestamp,
		EmployeeID: employeeID,
		Type:       typ,
		Timestamp:  ts,
	}
}

func newTestReportService(eventRepo *fakeEventRepo, employeeRepo *fakeEmployeeRepo) *ReportServiceImpl {
	svc := NewReportService(eventRepo, employeeRepo, timesheet.NewCalculator(time.UTC)).(*ReportServiceImpl)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestGetHistoryDayPeriod(t *testing.T) {
	shiftID := "shift-1"
	eventRepo := &fakeEventRepo{events: []clockevent.ClockEvent{
		testEvent(t, "emp-1", clockevent.TypeIn, "2026-03-02T09:20:00Z"),
		testEvent(t, "emp-1", clockevent.TypeOut, "2026-03-02T17:00:00Z"),
	}}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FullName: "Alice Nguyen", IsActive: true, ShiftID: &shiftID, Shift: testShift()},
	}}
	svc := newTestReportService(eventRepo, employeeRepo)

	resp, err := svc.GetHistory(context.Background(), report.HistoryRequest{
		EmployeeID: "emp-1",
		Period:     "day",
		Date:       "2026-03-02",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", resp.Start)
	assert.Equal(t, "2026-03-02", resp.End)
	require.Len(t, resp.Days, 1)

	day := resp.Days[0]
	assert.Equal(t, "2026-03-02", day.Date)
	assert.InDelta(t, 7.67, day.TotalHours, 1e-9)
	assert.True(t, day.Late)
	assert.False(t, day.EarlyLeave)
	assert.Equal(t, 1, day.SessionCount)
	assert.InDelta(t, 7.67, resp.SumHours, 1e-9)
}

func TestGetHistoryWeekComplianceIsPerDay(t *testing.T) {
	shiftID := "shift-1"
	// Late on Monday, on time on Tuesday. The Monday verdict must not
	// leak into Tuesday.
	eventRepo := &fakeEventRepo{events: []clockevent.ClockEvent{
		testEvent(t, "emp-1", clockevent.TypeIn, "2026-03-02T09:30:00Z"),
		testEvent(t, "emp-1", clockevent.TypeOut, "2026-03-02T17:00:00Z"),
		testEvent(t, "emp-1", clockevent.TypeIn, "2026-03-03T09:00:00Z"),
		testEvent(t, "emp-1", clockevent.TypeOut, "2026-03-03T17:00:00Z"),
	}}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FullName: "Alice Nguyen", IsActive: true, ShiftID: &shiftID, Shift: testShift()},
	}}
	svc := newTestReportService(eventRepo, employeeRepo)

	resp, err := svc.GetHistory(context.Background(), report.HistoryRequest{
		EmployeeID: "emp-1",
		Period:     "week",
		Date:       "2026-03-04",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", resp.Start)
	assert.Equal(t, "2026-03-08", resp.End)
	require.Len(t, resp.Days, 2)
	assert.True(t, resp.Days[0].Late)
	assert.False(t, resp.Days[1].Late)
}

func TestGetHistoryDefaultsToToday(t *testing.T) {
	eventRepo := &fakeEventRepo{}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FullName: "Alice Nguyen", IsActive: true},
	}}
	svc := newTestReportService(eventRepo, employeeRepo)

	resp, err := svc.GetHistory(context.Background(), report.HistoryRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", resp.Start)
	assert.Empty(t, resp.Days)
	assert.Zero(t, resp.SumHours)
}

func TestGetHistoryRejectsBadPeriod(t *testing.T) {
	svc := newTestReportService(&fakeEventRepo{}, &fakeEmployeeRepo{})

	_, err := svc.GetHistory(context.Background(), report.HistoryRequest{
		EmployeeID: "emp-1",
		Period:     "fortnight",
	})
	assert.Error(t, err)
}

func TestGetMonthlyExport(t *testing.T) {
	eventRepo := &fakeEventRepo{events: []clockevent.ClockEvent{
		testEvent(t, "emp-1", clockevent.TypeIn, "2026-03-02T09:00:00Z"),
		testEvent(t, "emp-1", clockevent.TypeOut, "2026-03-02T17:00:00Z"),
		testEvent(t, "emp-2", clockevent.TypeIn, "2026-03-03T10:00:00Z"),
		testEvent(t, "emp-2", clockevent.TypeOut, "2026-03-03T14:15:00Z"),
	}}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FullName: "Alice Nguyen", IsActive: true},
		{ID: "emp-2", FullName: "Binh Tran", IsActive: true},
		{ID: "emp-3", FullName: "Former Employee", IsActive: false},
	}}
	svc := newTestReportService(eventRepo, employeeRepo)

	resp, err := svc.GetMonthlyExport(context.Background(), report.MonthlyExportRequest{Month: "2026-03"})
	require.NoError(t, err)

	assert.Equal(t, "2026-03", resp.Month)
	require.Len(t, resp.Days, 31)
	require.Len(t, resp.Rows, 2, "inactive employees are excluded")

	alice := resp.Rows[0]
	require.Len(t, alice.DailyHours, 31)
	assert.InDelta(t, 8.0, alice.DailyHours[1], 1e-9) // March 2nd
	assert.InDelta(t, 8.0, alice.TotalHours, 1e-9)

	binh := resp.Rows[1]
	assert.InDelta(t, 4.25, binh.DailyHours[2], 1e-9) // March 3rd
	assert.InDelta(t, 4.25, binh.TotalHours, 1e-9)
}
