package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/service/timesheet"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	clockevent.ClockEventRepository
	employee.EmployeeRepository
	calc *timesheet.Calculator
	now  func() time.Time
}

func NewDashboardService(
	eventRepo clockevent.ClockEventRepository,
	employeeRepo employee.EmployeeRepository,
	calc *timesheet.Calculator,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		ClockEventRepository: eventRepo,
		EmployeeRepository:   employeeRepo,
		calc:                 calc,
		now:                  time.Now,
	}
}

// GetSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context, req dashboard.SummaryRequest) (dashboard.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return dashboard.SummaryResponse{}, err
	}

	loc := s.calc.Location()
	base := utils.DateOf(s.now(), loc)
	if req.Date != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", req.Date, loc); err == nil {
			base = parsed
		}
	}

	var start, end time.Time
	switch req.View {
	case "month":
		start, end = utils.MonthBounds(base)
	case "year":
		start, end = utils.YearBounds(base)
	default:
		start, end = base, base
	}
	rangeEnd := end.AddDate(0, 0, 1)

	total, err := s.EmployeeRepository.CountActive(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count active employees: %w", err)
	}

	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	var present, lateCount int64
	for _, emp := range employees {
		events, err := s.ClockEventRepository.ListByEmployeeBetween(ctx, emp.ID, start, rangeEnd)
		if err != nil {
			return dashboard.SummaryResponse{}, fmt.Errorf("failed to list events for employee %s: %w", emp.ID, err)
		}

		firstIn := earliestIn(events)
		if firstIn == nil {
			continue
		}
		present++

		if emp.Shift == nil {
			continue
		}
		// Lateness on the earliest check-in of the window, judged against
		// that check-in's own day.
		day := utils.DateOf(firstIn.Timestamp, loc)
		shiftStart := utils.CombineDateAndTime(day, emp.Shift.StartTime)
		grace := time.Duration(emp.Shift.LateGraceMin) * time.Minute
		if firstIn.Timestamp.After(shiftStart.Add(grace)) {
			lateCount++
		}
	}

	absent := total - present
	if absent < 0 {
		absent = 0
	}

	dailyHours, err := s.dailyHours(ctx, utils.DaysBetween(start, end))
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	return dashboard.SummaryResponse{
		TotalEmployees: total,
		Present:        present,
		Absent:         absent,
		LateCount:      lateCount,
		Start:          start.Format("2006-01-02"),
		End:            end.Format("2006-01-02"),
		DailyHours:     dailyHours,
	}, nil
}

// dailyHours totals paired hours across the roster for every day of the
// window. Days are computed in parallel with bounded fan-out; each goroutine
// reads exactly one day of events.
func (s *DashboardServiceImpl) dailyHours(ctx context.Context, days []time.Time) ([]dashboard.DailyHours, error) {
	loc := s.calc.Location()
	results := make([]dashboard.DailyHours, len(days))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, day := range days {
		i, day := i, day
		g.Go(func() error {
			dayEvents, err := s.ClockEventRepository.ListBetween(gCtx, day, day.AddDate(0, 0, 1))
			if err != nil {
				return fmt.Errorf("failed to list events for %s: %w", day.Format("2006-01-02"), err)
			}

			byEmployee := make(map[string][]clockevent.ClockEvent)
			for _, ev := range dayEvents {
				byEmployee[ev.EmployeeID] = append(byEmployee[ev.EmployeeID], ev)
			}

			var hours float64
			for _, events := range byEmployee {
				pair := s.calc.PairSessions(events)
				hours += pair.TotalHours
			}

			results[i] = dashboard.DailyHours{
				Date:  day.In(loc).Format("2006-01-02"),
				Hours: utils.Round2(hours),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func earliestIn(events []clockevent.ClockEvent) *clockevent.ClockEvent {
	for i := range events {
		if events[i].Type == clockevent.TypeIn {
			return &events[i]
		}
	}
	return nil
}
