package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/worksite"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// MasterHandler serves the work-site and shift master data.
type MasterHandler interface {
	ListWorkSites(w http.ResponseWriter, r *http.Request)
	GetWorkSite(w http.ResponseWriter, r *http.Request)
	CreateWorkSite(w http.ResponseWriter, r *http.Request)
	UpdateWorkSite(w http.ResponseWriter, r *http.Request)

	ListShifts(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	CreateShift(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	workSiteService worksite.WorkSiteService
	shiftService    shift.ShiftService
}

func NewMasterHandler(workSiteService worksite.WorkSiteService, shiftService shift.ShiftService) MasterHandler {
	return &MasterHandlerImpl{
		workSiteService: workSiteService,
		shiftService:    shiftService,
	}
}

// ListWorkSites implements MasterHandler.
func (h *MasterHandlerImpl) ListWorkSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.workSiteService.List(r.Context())
	if err != nil {
		slog.Error("ListWorkSites service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, sites)
}

// GetWorkSite implements MasterHandler.
func (h *MasterHandlerImpl) GetWorkSite(w http.ResponseWriter, r *http.Request) {
	site, err := h.workSiteService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, site)
}

// CreateWorkSite implements MasterHandler.
func (h *MasterHandlerImpl) CreateWorkSite(w http.ResponseWriter, r *http.Request) {
	var siteReq worksite.UpsertWorkSiteRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&siteReq); err != nil {
		slog.Error("CreateWorkSite decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	site, err := h.workSiteService.Create(r.Context(), siteReq)
	if err != nil {
		slog.Error("CreateWorkSite service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Work site created", "work_site_id", site.ID)
	response.Created(w, "Work site created", site)
}

// UpdateWorkSite implements MasterHandler.
func (h *MasterHandlerImpl) UpdateWorkSite(w http.ResponseWriter, r *http.Request) {
	var siteReq worksite.UpsertWorkSiteRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&siteReq); err != nil {
		slog.Error("UpdateWorkSite decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	siteReq.ID = chi.URLParam(r, "id")

	// Call service
	site, err := h.workSiteService.Update(r.Context(), siteReq)
	if err != nil {
		slog.Error("UpdateWorkSite service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Work site updated", "work_site_id", site.ID)
	response.SuccessWithMessage(w, "Work site updated", site)
}

// ListShifts implements MasterHandler.
func (h *MasterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.List(r.Context())
	if err != nil {
		slog.Error("ListShifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// GetShift implements MasterHandler.
func (h *MasterHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	sh, err := h.shiftService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sh)
}

// CreateShift implements MasterHandler.
func (h *MasterHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var shiftReq shift.UpsertShiftRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&shiftReq); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	sh, err := h.shiftService.Create(r.Context(), shiftReq)
	if err != nil {
		slog.Error("CreateShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Shift created", "shift_id", sh.ID)
	response.Created(w, "Shift created", sh)
}

// UpdateShift implements MasterHandler.
func (h *MasterHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var shiftReq shift.UpsertShiftRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&shiftReq); err != nil {
		slog.Error("UpdateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	shiftReq.ID = chi.URLParam(r, "id")

	// Call service
	sh, err := h.shiftService.Update(r.Context(), shiftReq)
	if err != nil {
		slog.Error("UpdateShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Shift updated", "shift_id", sh.ID)
	response.SuccessWithMessage(w, "Shift updated", sh)
}
