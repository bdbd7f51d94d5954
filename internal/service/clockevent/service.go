package clockevent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/worksite"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/locker"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/service/timesheet"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type ClockEventServiceImpl struct {
	clockevent.ClockEventRepository
	employee.EmployeeRepository
	worksite.WorkSiteRepository
	calc *timesheet.Calculator
	// clockMu serializes read-resolve-append per employee so concurrent
	// clock requests cannot both resolve to the same type.
	clockMu *locker.KeyedMutex
	now     func() time.Time
}

func NewClockEventService(
	eventRepo clockevent.ClockEventRepository,
	employeeRepo employee.EmployeeRepository,
	siteRepo worksite.WorkSiteRepository,
	calc *timesheet.Calculator,
) clockevent.ClockEventService {
	return &ClockEventServiceImpl{
		ClockEventRepository: eventRepo,
		EmployeeRepository:   employeeRepo,
		WorkSiteRepository:   siteRepo,
		calc:                 calc,
		clockMu:              locker.NewKeyedMutex(),
		now:                  time.Now,
	}
}

// Clock implements clockevent.ClockEventService.
func (s *ClockEventServiceImpl) Clock(ctx context.Context, req clockevent.ClockRequest) (clockevent.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return clockevent.ClockResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return clockevent.ClockResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive {
		return clockevent.ClockResponse{}, employee.ErrEmployeeInactive
	}

	siteID, err := s.resolveSiteID(emp, req.WorkSiteID)
	if err != nil {
		return clockevent.ClockResponse{}, err
	}

	site, err := s.WorkSiteRepository.GetByID(ctx, siteID)
	if err != nil {
		return clockevent.ClockResponse{}, fmt.Errorf("failed to get work site: %w", err)
	}

	// A geofence violation does not block the clock action; it is recorded
	// as an advisory flag on the event.
	distanceM, within := utils.ValidateGeofence(req.Latitude, req.Longitude, site.Latitude, site.Longitude, site.RadiusM)

	s.clockMu.Lock(emp.ID)
	defer s.clockMu.Unlock(emp.ID)

	nowLocal := s.now().In(s.calc.Location())
	dayStart := utils.DateOf(nowLocal, s.calc.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	todaysEvents, err := s.ClockEventRepository.ListByEmployeeAndDay(ctx, emp.ID, dayStart, dayEnd)
	if err != nil {
		return clockevent.ClockResponse{}, fmt.Errorf("failed to list today's events: %w", err)
	}

	var proposed *clockevent.EventType
	if req.Type != nil {
		t := clockevent.EventType(*req.Type)
		proposed = &t
	}
	resolvedType := s.calc.ResolveType(proposed, todaysEvents)

	event := clockevent.ClockEvent{
		ID:             uuid.Must(uuid.NewV7()).String(),
		EmployeeID:     emp.ID,
		Type:           resolvedType,
		Timestamp:      nowLocal,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		DistanceM:      distanceM,
		WithinGeofence: within,
		WorkSiteID:     site.ID,
	}

	created, err := s.ClockEventRepository.Create(ctx, event)
	if err != nil {
		return clockevent.ClockResponse{}, fmt.Errorf("failed to create clock event: %w", err)
	}

	return clockevent.ClockResponse{
		Accepted:       true,
		WithinGeofence: within,
		DistanceM:      distanceM,
		Type:           resolvedType,
		Timestamp:      created.Timestamp.Format(time.RFC3339),
		WorkSite:       worksite.ToResponse(site),
	}, nil
}

// resolveSiteID picks the target site for a clock action: the requested site
// when it is in the employee's permitted set, else the employee's default
// permitted site.
func (s *ClockEventServiceImpl) resolveSiteID(emp employee.Employee, requested *string) (string, error) {
	if requested != nil && *requested != "" {
		if !emp.IsSiteAllowed(*requested) {
			return "", clockevent.ErrSiteNotPermitted
		}
		return *requested, nil
	}

	siteID := emp.DefaultSiteID()
	if siteID == "" {
		return "", clockevent.ErrNoSiteConfigured
	}
	return siteID, nil
}

// ListLatest implements clockevent.ClockEventService.
func (s *ClockEventServiceImpl) ListLatest(ctx context.Context, limit int) ([]clockevent.EventResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	events, err := s.ClockEventRepository.ListLatest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest events: %w", err)
	}

	responses := make([]clockevent.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, clockevent.ToEventResponse(ev))
	}
	return responses, nil
}

// CreateManual implements clockevent.ClockEventService.
func (s *ClockEventServiceImpl) CreateManual(ctx context.Context, req clockevent.ManualEventRequest) (clockevent.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return clockevent.EventResponse{}, err
	}

	operatorID, err := operatorFromContext(ctx)
	if err != nil {
		return clockevent.EventResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return clockevent.EventResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	site, err := s.WorkSiteRepository.GetByID(ctx, req.WorkSiteID)
	if err != nil {
		return clockevent.EventResponse{}, fmt.Errorf("failed to get work site: %w", err)
	}

	timestamp, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return clockevent.EventResponse{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}
	timestamp = timestamp.In(s.calc.Location())

	distanceM, within := utils.ValidateGeofence(req.Latitude, req.Longitude, site.Latitude, site.Longitude, site.RadiusM)

	event := clockevent.ClockEvent{
		ID:             uuid.Must(uuid.NewV7()).String(),
		EmployeeID:     emp.ID,
		Type:           clockevent.EventType(req.Type),
		Timestamp:      timestamp,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		DistanceM:      distanceM,
		WithinGeofence: within,
		WorkSiteID:     site.ID,
		Note:           req.Note,
		CreatedBy:      &operatorID,
	}

	after, err := snapshot(event)
	if err != nil {
		return clockevent.EventResponse{}, err
	}

	created, err := s.ClockEventRepository.CreateAudited(ctx, event, clockevent.ChangeLog{
		ClockEventID: event.ID,
		Action:       clockevent.ActionCreated,
		Reason:       req.Reason,
		AfterData:    after,
		ChangedBy:    operatorID,
	})
	if err != nil {
		return clockevent.EventResponse{}, fmt.Errorf("failed to create manual event: %w", err)
	}

	return clockevent.ToEventResponse(created), nil
}

// UpdateEvent implements clockevent.ClockEventService.
func (s *ClockEventServiceImpl) UpdateEvent(ctx context.Context, req clockevent.UpdateEventRequest) (clockevent.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return clockevent.EventResponse{}, err
	}

	operatorID, err := operatorFromContext(ctx)
	if err != nil {
		return clockevent.EventResponse{}, err
	}

	event, err := s.ClockEventRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, clockevent.ErrEventNotFound) {
			return clockevent.EventResponse{}, clockevent.ErrEventNotFound
		}
		return clockevent.EventResponse{}, fmt.Errorf("failed to get clock event: %w", err)
	}

	before, err := snapshot(event)
	if err != nil {
		return clockevent.EventResponse{}, err
	}

	if req.Type != nil {
		event.Type = clockevent.EventType(*req.Type)
	}
	if req.Timestamp != nil {
		ts, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			return clockevent.EventResponse{}, fmt.Errorf("failed to parse timestamp: %w", err)
		}
		event.Timestamp = ts.In(s.calc.Location())
	}
	if req.Latitude != nil {
		event.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		event.Longitude = *req.Longitude
	}
	if req.WorkSiteID != nil && *req.WorkSiteID != "" {
		event.WorkSiteID = *req.WorkSiteID
	}
	if req.Note != nil {
		event.Note = *req.Note
	}

	// The advisory geofence figures follow the edited coordinates and site.
	site, err := s.WorkSiteRepository.GetByID(ctx, event.WorkSiteID)
	if err != nil {
		return clockevent.EventResponse{}, fmt.Errorf("failed to get work site: %w", err)
	}
	event.DistanceM, event.WithinGeofence = utils.ValidateGeofence(event.Latitude, event.Longitude, site.Latitude, site.Longitude, site.RadiusM)

	after, err := snapshot(event)
	if err != nil {
		return clockevent.EventResponse{}, err
	}

	if err := s.ClockEventRepository.UpdateAudited(ctx, event, clockevent.ChangeLog{
		ClockEventID: event.ID,
		Action:       clockevent.ActionEdited,
		Reason:       req.Reason,
		BeforeData:   before,
		AfterData:    after,
		ChangedBy:    operatorID,
	}); err != nil {
		return clockevent.EventResponse{}, fmt.Errorf("failed to update clock event: %w", err)
	}

	return clockevent.ToEventResponse(event), nil
}

// snapshot serializes the audit-relevant fields of an event.
func snapshot(event clockevent.ClockEvent) ([]byte, error) {
	data, err := json.Marshal(clockevent.ToEventResponse(event))
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot clock event: %w", err)
	}
	return data, nil
}

// operatorFromContext extracts the acting user from JWT claims.
func operatorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}
