package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/service/timesheet"
)

type ReportServiceImpl struct {
	clockevent.ClockEventRepository
	employee.EmployeeRepository
	calc *timesheet.Calculator
	now  func() time.Time
}

func NewReportService(
	eventRepo clockevent.ClockEventRepository,
	employeeRepo employee.EmployeeRepository,
	calc *timesheet.Calculator,
) report.ReportService {
	return &ReportServiceImpl{
		ClockEventRepository: eventRepo,
		EmployeeRepository:   employeeRepo,
		calc:                 calc,
		now:                  time.Now,
	}
}

// GetHistory implements report.ReportService.
func (s *ReportServiceImpl) GetHistory(ctx context.Context, req report.HistoryRequest) (report.HistoryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.HistoryResponse{}, err
	}

	loc := s.calc.Location()
	base := s.baseDate(req.Date)

	var start, end time.Time
	switch report.HistoryPeriod(req.Period) {
	case report.PeriodWeek:
		start, end = utils.WeekBounds(base)
	case report.PeriodMonth:
		start, end = utils.MonthBounds(base)
	default:
		start, end = base, base
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.HistoryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	events, err := s.ClockEventRepository.ListByEmployeeBetween(ctx, emp.ID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return report.HistoryResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	byDay := groupByDay(events, loc)

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	resp := report.HistoryResponse{
		Period: req.Period,
		Start:  start.Format("2006-01-02"),
		End:    end.Format("2006-01-02"),
		Days:   make([]report.DayEntry, 0, len(days)),
	}

	var sumHours float64
	for _, day := range days {
		dayEvents := byDay[day]
		pair := s.calc.PairSessions(dayEvents)
		comp := s.calc.EvaluateCompliance(day, dayEvents, pair, emp.Shift)

		eventResponses := make([]clockevent.EventResponse, 0, len(dayEvents))
		for _, ev := range dayEvents {
			eventResponses = append(eventResponses, clockevent.ToEventResponse(ev))
		}

		resp.Days = append(resp.Days, report.DayEntry{
			Date:         day.Format("2006-01-02"),
			Events:       eventResponses,
			TotalHours:   utils.Round2(comp.WorkedHours),
			Late:         comp.Late,
			EarlyLeave:   comp.EarlyLeave,
			UnmatchedIn:  pair.UnmatchedIn,
			OrphanedOut:  pair.OrphanedOut,
			SessionCount: len(pair.Sessions),
		})
		sumHours += pair.TotalHours
	}

	resp.SumHours = utils.Round2(sumHours)
	return resp, nil
}

// GetMonthlyExport implements report.ReportService.
func (s *ReportServiceImpl) GetMonthlyExport(ctx context.Context, req report.MonthlyExportRequest) (report.MonthlyExportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyExportResponse{}, err
	}

	loc := s.calc.Location()
	var monthStart time.Time
	if req.Month == "" {
		now := s.now().In(loc)
		monthStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	} else {
		parsed, _ := time.ParseInLocation("2006-01", req.Month, loc)
		monthStart = parsed
	}
	_, monthEnd := utils.MonthBounds(monthStart)
	days := utils.DaysBetween(monthStart, monthEnd)

	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return report.MonthlyExportResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	resp := report.MonthlyExportResponse{
		Month: monthStart.Format("2006-01"),
		Days:  make([]string, 0, len(days)),
		Rows:  make([]report.MonthlyExportRow, 0, len(employees)),
	}
	for _, day := range days {
		resp.Days = append(resp.Days, day.Format("2006-01-02"))
	}

	// One ledger read per employee keeps the working set to a single
	// employee-month regardless of roster size.
	for _, emp := range employees {
		events, err := s.ClockEventRepository.ListByEmployeeBetween(ctx, emp.ID, monthStart, monthEnd.AddDate(0, 0, 1))
		if err != nil {
			return report.MonthlyExportResponse{}, fmt.Errorf("failed to list events for employee %s: %w", emp.ID, err)
		}

		byDay := groupByDay(events, loc)

		row := report.MonthlyExportRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			DailyHours:   make([]float64, 0, len(days)),
		}
		var total float64
		for _, day := range days {
			pair := s.calc.PairSessions(byDay[day])
			hours := utils.Round2(pair.TotalHours)
			row.DailyHours = append(row.DailyHours, hours)
			total += hours
		}
		row.TotalHours = utils.Round2(total)
		resp.Rows = append(resp.Rows, row)
	}

	return resp, nil
}

func (s *ReportServiceImpl) baseDate(dateStr string) time.Time {
	loc := s.calc.Location()
	if dateStr != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", dateStr, loc); err == nil {
			return parsed
		}
	}
	return utils.DateOf(s.now(), loc)
}

// groupByDay buckets events by their calendar day in the organizational
// timezone, preserving the ascending timestamp order within each day.
func groupByDay(events []clockevent.ClockEvent, loc *time.Location) map[time.Time][]clockevent.ClockEvent {
	byDay := make(map[time.Time][]clockevent.ClockEvent)
	for _, ev := range events {
		day := utils.DateOf(ev.Timestamp, loc)
		byDay[day] = append(byDay[day], ev)
	}
	return byDay
}
