package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/handler/http/response"
	reportservice "github.com/cmlabs-hris/geoattend-backend-go/internal/service/report"
)

type ReportHandler interface {
	History(w http.ResponseWriter, r *http.Request)
	MonthlyExport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// History implements ReportHandler. Employees see their own history; admin,
// HR and managers may name another employee with the employee_id query param.
func (h *ReportHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	historyReq := report.HistoryRequest{
		EmployeeID: employeeIDFromRequest(r),
		Period:     query.Get("period"),
		Date:       query.Get("date"),
	}

	if target := query.Get("employee_id"); target != "" && target != historyReq.EmployeeID {
		if !roleFromRequest(r).CanManageRecords() {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}
		historyReq.EmployeeID = target
	}

	if historyReq.EmployeeID == "" {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}

	// Call service
	historyResponse, err := h.reportService.GetHistory(r.Context(), historyReq)
	if err != nil {
		slog.Error("History service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, historyResponse)
}

// MonthlyExport implements ReportHandler. With format=csv the timesheet is
// returned as a downloadable CSV instead of JSON.
func (h *ReportHandlerImpl) MonthlyExport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	exportReq := report.MonthlyExportRequest{
		Month: query.Get("month"),
	}

	// Call service
	exportResponse, err := h.reportService.GetMonthlyExport(r.Context(), exportReq)
	if err != nil {
		slog.Error("MonthlyExport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if query.Get("format") == "csv" {
		csvData, err := reportservice.RenderMonthlyCSV(exportResponse)
		if err != nil {
			slog.Error("MonthlyExport CSV render error", "error", err)
			response.InternalServerError(w, "Failed to render CSV")
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=attendance-%s.csv", exportResponse.Month))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(csvData)
		return
	}

	response.Success(w, exportResponse)
}
