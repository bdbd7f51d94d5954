package clockevent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/service/timesheet"
)

// MissingCheckoutWatchdog scans the previous day's ledger for employees who
// checked in but never checked out and reports them on the application log.
// It never mutates the ledger; corrections stay a deliberate manual action.
type MissingCheckoutWatchdog struct {
	eventRepo    clockevent.ClockEventRepository
	employeeRepo employee.EmployeeRepository
	calc         *timesheet.Calculator
	now          func() time.Time
}

func NewMissingCheckoutWatchdog(
	eventRepo clockevent.ClockEventRepository,
	employeeRepo employee.EmployeeRepository,
	calc *timesheet.Calculator,
) *MissingCheckoutWatchdog {
	return &MissingCheckoutWatchdog{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
		calc:         calc,
		now:          time.Now,
	}
}

// Register adds the watchdog to the scheduler with a daily cadence.
func (w *MissingCheckoutWatchdog) Register(scheduler *cron.Scheduler) {
	scheduler.AddJob("missing-checkout-watchdog", 24*time.Hour, w.Run)
}

// Run checks yesterday's sessions for every active employee.
func (w *MissingCheckoutWatchdog) Run(ctx context.Context) error {
	loc := w.calc.Location()
	yesterday := utils.DateOf(w.now(), loc).AddDate(0, 0, -1)
	dayEnd := yesterday.AddDate(0, 0, 1)

	employees, err := w.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	var flagged int
	for _, emp := range employees {
		events, err := w.eventRepo.ListByEmployeeBetween(ctx, emp.ID, yesterday, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to list events for employee %s: %w", emp.ID, err)
		}
		if len(events) == 0 {
			continue
		}

		pair := w.calc.PairSessions(events)
		if pair.UnmatchedIn {
			flagged++
			slog.Warn("Employee has a check-in without a matching check-out",
				"employee_id", emp.ID,
				"employee_name", emp.FullName,
				"date", yesterday.Format("2006-01-02"),
				"sessions", len(pair.Sessions),
			)
		}
	}

	slog.Info("Missing checkout scan finished",
		"date", yesterday.Format("2006-01-02"),
		"employees_scanned", len(employees),
		"flagged", flagged,
	)
	return nil
}
