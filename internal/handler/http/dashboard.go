package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Summary implements DashboardHandler.
func (h *DashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	summaryReq := dashboard.SummaryRequest{
		Date: query.Get("date"),
		View: query.Get("view"),
	}

	summaryResponse, err := h.dashboardService.GetSummary(r.Context(), summaryReq)
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaryResponse)
}
