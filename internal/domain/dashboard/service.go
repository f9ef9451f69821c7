package dashboard

import (
	"context"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/employee"
)

// DashboardService defines the report-rendering operations.
type DashboardService interface {
	// GetDashboard returns the combined dashboard payload for the query
	GetDashboard(ctx context.Context, q Query) (*DashboardResponse, error)

	// GetSeries returns a per-day entry series for the range; onlyLate
	// restricts it to late entries
	GetSeries(ctx context.Context, from, to string, onlyLate bool) ([]DayCount, error)

	// SearchEmployees matches name or document; empty terms return an
	// empty result without querying
	SearchEmployees(ctx context.Context, term string) ([]employee.Employee, error)

	// GetEmployeeMonthlyStats returns days worked, late entries and worked
	// time for one employee and month (YYYY-MM, default current)
	GetEmployeeMonthlyStats(ctx context.Context, employeeID int64, month string) (*EmployeeStatsResponse, error)
}
