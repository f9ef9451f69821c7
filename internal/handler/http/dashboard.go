package http

import (
	"net/http"
	"strconv"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/dashboard"
	"github.com/datasynergy/asistencia-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns the combined dashboard payload
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetSeries returns a per-day entry series
	GetSeries(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := dashboard.Query{
		From:   params.Get("desde"),  // YYYY-MM-DD, default: first day of current month
		To:     params.Get("hasta"),  // YYYY-MM-DD, default: today
		Search: params.Get("search"), // employee name/document substring
	}

	if userID := params.Get("user_id"); userID != "" {
		id, err := strconv.ParseInt(userID, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid user_id", nil)
			return
		}
		q.EmployeeID = &id
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSeries handles GET /dashboard/series
func (h *dashboardHandlerImpl) GetSeries(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	onlyLate := params.Get("late") == "true"

	result, err := h.dashboardService.GetSeries(r.Context(), params.Get("desde"), params.Get("hasta"), onlyLate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
