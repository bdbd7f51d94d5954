package report

import (
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/validator"
)

type HistoryPeriod string

const (
	PeriodDay   HistoryPeriod = "day"
	PeriodWeek  HistoryPeriod = "week"
	PeriodMonth HistoryPeriod = "month"
)

type HistoryRequest struct {
	EmployeeID string `json:"-"`
	Period     string `json:"period"` // day|week|month, default day
	Date       string `json:"date"`   // YYYY-MM-DD, default today
}

func (r *HistoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Period == "" {
		r.Period = string(PeriodDay)
	}
	switch HistoryPeriod(r.Period) {
	case PeriodDay, PeriodWeek, PeriodMonth:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be one of: day, week, month",
		})
	}

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayEntry is one calendar day of an employee's history: the raw events plus
// the derived figures for that day.
type DayEntry struct {
	Date         string                     `json:"date"`
	Events       []clockevent.EventResponse `json:"events"`
	TotalHours   float64                    `json:"total_hours"`
	Late         bool                       `json:"late"`
	EarlyLeave   bool                       `json:"early_leave"`
	UnmatchedIn  bool                       `json:"unmatched_in"`
	OrphanedOut  bool                       `json:"orphaned_out"`
	SessionCount int                        `json:"session_count"`
}

type HistoryResponse struct {
	Period   string     `json:"period"`
	Start    string     `json:"start"`
	End      string     `json:"end"`
	Days     []DayEntry `json:"days"`
	SumHours float64    `json:"sum_hours"`
}

type MonthlyExportRequest struct {
	Month string `json:"month"` // YYYY-MM, default current month
}

func (r *MonthlyExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != "" {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthlyExportRow is one employee's line of the monthly timesheet: one hours
// cell per calendar day plus the total, all rounded to 2 decimals.
type MonthlyExportRow struct {
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	DailyHours   []float64 `json:"daily_hours"`
	TotalHours   float64   `json:"total_hours"`
}

type MonthlyExportResponse struct {
	Month string             `json:"month"`
	Days  []string           `json:"days"` // YYYY-MM-DD per column
	Rows  []MonthlyExportRow `json:"rows"`
}
