package http

import (
	"net/http"
	"strconv"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/dashboard"
	"github.com/datasynergy/asistencia-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	// Search returns directory matches for a name/document substring
	Search(w http.ResponseWriter, r *http.Request)
	// GetMonthlyStats returns one employee's monthly statistics
	GetMonthlyStats(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewEmployeeHandler(dashboardService dashboard.DashboardService) EmployeeHandler {
	return &employeeHandlerImpl{dashboardService: dashboardService}
}

// Search handles GET /employees/search
func (h *employeeHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	results, err := h.dashboardService.SearchEmployees(r.Context(), term)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetMonthlyStats handles GET /employees/{id}/stats
func (h *employeeHandlerImpl) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	month := r.URL.Query().Get("month") // format: YYYY-MM, default: current month

	result, err := h.dashboardService.GetEmployeeMonthlyStats(r.Context(), id, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
