package dashboard

import "context"

// DashboardService aggregates presence and hours across the whole roster.
type DashboardService interface {
	// GetSummary returns present/absent/late counts and per-day hours for a
	// day, month or year window around the given date
	GetSummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}
