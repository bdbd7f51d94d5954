package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/clockevent"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ClockEventHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
	Monitor(w http.ResponseWriter, r *http.Request)
	CreateManual(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ClockEventHandlerImpl struct {
	clockEventService clockevent.ClockEventService
}

func NewClockEventHandler(clockEventService clockevent.ClockEventService) ClockEventHandler {
	return &ClockEventHandlerImpl{
		clockEventService: clockEventService,
	}
}

// Clock implements ClockEventHandler. The employee is taken from the access
// token, never from the body.
func (h *ClockEventHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	var clockReq clockevent.ClockRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&clockReq); err != nil {
		slog.Error("Clock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	clockReq.EmployeeID = employeeIDFromRequest(r)
	if clockReq.EmployeeID == "" {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}

	// Call service
	clockResponse, err := h.clockEventService.Clock(r.Context(), clockReq)
	if err != nil {
		slog.Error("Clock service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Clock event recorded",
		"employee_id", clockReq.EmployeeID,
		"type", clockResponse.Type,
		"within_geofence", clockResponse.WithinGeofence,
	)
	response.Created(w, "Clock event recorded", clockResponse)
}

// Monitor implements ClockEventHandler.
func (h *ClockEventHandlerImpl) Monitor(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	events, err := h.clockEventService.ListLatest(r.Context(), limit)
	if err != nil {
		slog.Error("Monitor service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// CreateManual implements ClockEventHandler.
func (h *ClockEventHandlerImpl) CreateManual(w http.ResponseWriter, r *http.Request) {
	var manualReq clockevent.ManualEventRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&manualReq); err != nil {
		slog.Error("CreateManual decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	eventResponse, err := h.clockEventService.CreateManual(r.Context(), manualReq)
	if err != nil {
		slog.Error("CreateManual service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Manual clock event created", "event_id", eventResponse.ID, "employee_id", manualReq.EmployeeID)
	response.Created(w, "Clock event created", eventResponse)
}

// Update implements ClockEventHandler.
func (h *ClockEventHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq clockevent.UpdateEventRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Call service
	eventResponse, err := h.clockEventService.UpdateEvent(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Clock event updated", "event_id", eventResponse.ID)
	response.SuccessWithMessage(w, "Clock event updated", eventResponse)
}
