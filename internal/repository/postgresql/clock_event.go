package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type clockEventRepository struct {
	db *database.DB
}

func NewClockEventRepository(db *database.DB) clockevent.ClockEventRepository {
	return &clockEventRepository{db: db}
}

const clockEventColumns = `
	id, employee_id, event_type, event_timestamp, latitude, longitude,
	distance_m, within_geofence, work_site_id, note, created_by, created_at
`

func scanClockEvent(row pgx.Row) (clockevent.ClockEvent, error) {
	var ev clockevent.ClockEvent
	err := row.Scan(
		&ev.ID, &ev.EmployeeID, &ev.Type, &ev.Timestamp, &ev.Latitude, &ev.Longitude,
		&ev.DistanceM, &ev.WithinGeofence, &ev.WorkSiteID, &ev.Note, &ev.CreatedBy, &ev.CreatedAt,
	)
	return ev, err
}

func insertClockEvent(ctx context.Context, q database.Querier, event clockevent.ClockEvent) (clockevent.ClockEvent, error) {
	query := `
		INSERT INTO clock_events (
			id, employee_id, event_type, event_timestamp, latitude, longitude,
			distance_m, within_geofence, work_site_id, note, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.Type,
		event.Timestamp,
		event.Latitude,
		event.Longitude,
		event.DistanceM,
		event.WithinGeofence,
		event.WorkSiteID,
		event.Note,
		event.CreatedBy,
	).Scan(&event.CreatedAt)

	if err != nil {
		return clockevent.ClockEvent{}, fmt.Errorf("failed to insert clock event: %w", err)
	}

	return event, nil
}

func insertChangeLog(ctx context.Context, q database.Querier, log clockevent.ChangeLog) error {
	query := `
		INSERT INTO clock_event_change_logs (
			id, clock_event_id, action, reason, before_data, after_data, changed_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err := q.Exec(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		log.ClockEventID,
		log.Action,
		log.Reason,
		log.BeforeData,
		log.AfterData,
		log.ChangedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert change log: %w", err)
	}
	return nil
}

// Create implements clockevent.ClockEventRepository.
func (r *clockEventRepository) Create(ctx context.Context, event clockevent.ClockEvent) (clockevent.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)
	return insertClockEvent(ctx, q, event)
}

// GetByID implements clockevent.ClockEventRepository.
func (r *clockEventRepository) GetByID(ctx context.Context, id string) (clockevent.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clockEventColumns + ` FROM clock_events WHERE id = $1`

	ev, err := scanClockEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return clockevent.ClockEvent{}, clockevent.ErrEventNotFound
		}
		return clockevent.ClockEvent{}, fmt.Errorf("failed to get clock event: %w", err)
	}

	return ev, nil
}

// CreateAudited implements clockevent.ClockEventRepository.
func (r *clockEventRepository) CreateAudited(ctx context.Context, event clockevent.ClockEvent, log clockevent.ChangeLog) (clockevent.ClockEvent, error) {
	var created clockevent.ClockEvent
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		created, err = insertClockEvent(ctx, tx, event)
		if err != nil {
			return err
		}
		return insertChangeLog(ctx, tx, log)
	})
	if err != nil {
		return clockevent.ClockEvent{}, err
	}
	return created, nil
}

// UpdateAudited implements clockevent.ClockEventRepository.
func (r *clockEventRepository) UpdateAudited(ctx context.Context, event clockevent.ClockEvent, log clockevent.ChangeLog) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE clock_events
			SET event_type = $2, event_timestamp = $3, latitude = $4, longitude = $5,
				distance_m = $6, within_geofence = $7, work_site_id = $8, note = $9
			WHERE id = $1
		`

		tag, err := tx.Exec(ctx, query,
			event.ID,
			event.Type,
			event.Timestamp,
			event.Latitude,
			event.Longitude,
			event.DistanceM,
			event.WithinGeofence,
			event.WorkSiteID,
			event.Note,
		)
		if err != nil {
			return fmt.Errorf("failed to update clock event: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return clockevent.ErrEventNotFound
		}

		return insertChangeLog(ctx, tx, log)
	})
}

// ListByEmployeeAndDay implements clockevent.ClockEventRepository.
func (r *clockEventRepository) ListByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) ([]clockevent.ClockEvent, error) {
	return r.ListByEmployeeBetween(ctx, employeeID, dayStart, dayEnd)
}

// ListByEmployeeBetween implements clockevent.ClockEventRepository.
func (r *clockEventRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]clockevent.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clockEventColumns + `
		FROM clock_events
		WHERE employee_id = $1
		  AND event_timestamp >= $2
		  AND event_timestamp < $3
		ORDER BY event_timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	defer rows.Close()

	return collectClockEvents(rows, false)
}

// ListBetween implements clockevent.ClockEventRepository.
func (r *clockEventRepository) ListBetween(ctx context.Context, rangeStart, rangeEnd time.Time) ([]clockevent.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ce.id, ce.employee_id, ce.event_type, ce.event_timestamp, ce.latitude, ce.longitude,
			   ce.distance_m, ce.within_geofence, ce.work_site_id, ce.note, ce.created_by, ce.created_at,
			   e.full_name, ws.name
		FROM clock_events ce
		JOIN employees e ON e.id = ce.employee_id
		LEFT JOIN work_sites ws ON ws.id = ce.work_site_id
		WHERE ce.event_timestamp >= $1
		  AND ce.event_timestamp < $2
		ORDER BY ce.event_timestamp ASC
	`

	rows, err := q.Query(ctx, query, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	defer rows.Close()

	return collectClockEvents(rows, true)
}

// ListLatest implements clockevent.ClockEventRepository.
func (r *clockEventRepository) ListLatest(ctx context.Context, limit int) ([]clockevent.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ce.id, ce.employee_id, ce.event_type, ce.event_timestamp, ce.latitude, ce.longitude,
			   ce.distance_m, ce.within_geofence, ce.work_site_id, ce.note, ce.created_by, ce.created_at,
			   e.full_name, ws.name
		FROM clock_events ce
		JOIN employees e ON e.id = ce.employee_id
		LEFT JOIN work_sites ws ON ws.id = ce.work_site_id
		ORDER BY ce.event_timestamp DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest clock events: %w", err)
	}
	defer rows.Close()

	return collectClockEvents(rows, true)
}

func collectClockEvents(rows pgx.Rows, joined bool) ([]clockevent.ClockEvent, error) {
	events := make([]clockevent.ClockEvent, 0)
	for rows.Next() {
		var ev clockevent.ClockEvent
		var err error
		if joined {
			err = rows.Scan(
				&ev.ID, &ev.EmployeeID, &ev.Type, &ev.Timestamp, &ev.Latitude, &ev.Longitude,
				&ev.DistanceM, &ev.WithinGeofence, &ev.WorkSiteID, &ev.Note, &ev.CreatedBy, &ev.CreatedAt,
				&ev.EmployeeName, &ev.WorkSiteName,
			)
		} else {
			err = rows.Scan(
				&ev.ID, &ev.EmployeeID, &ev.Type, &ev.Timestamp, &ev.Latitude, &ev.Longitude,
				&ev.DistanceM, &ev.WithinGeofence, &ev.WorkSiteID, &ev.Note, &ev.CreatedBy, &ev.CreatedAt,
			)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clock events: %w", err)
	}

	return events, nil
}
