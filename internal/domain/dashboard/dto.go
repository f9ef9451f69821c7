package dashboard

import (
	"github.com/datasynergy/asistencia-backend-go/internal/domain/employee"
)

// Query is the parsed dashboard request: desde/hasta range, optional search
// term and optional selected employee.
type Query struct {
	From       string // YYYY-MM-DD, defaults to first day of current month
	To         string // YYYY-MM-DD, defaults to today
	Search     string
	EmployeeID *int64
}

// DashboardResponse is the combined payload for the admin dashboard.
type DashboardResponse struct {
	Today            TodayStatsResponse      `json:"today"`
	MonthLateEntries int64                   `json:"month_late_entries"`
	EntriesPerDay    []DayCount              `json:"entries_per_day"`
	LatePerDay       []DayCount              `json:"late_per_day"`
	Range            RangeResponse           `json:"range"`
	Table            []TableRow              `json:"table"`
	SearchResults    []employee.Employee     `json:"search_results,omitempty"`
	EmployeeDetail   *EmployeeStatsResponse  `json:"employee_detail,omitempty"`
}

// TodayStatsResponse holds today's headline counters.
type TodayStatsResponse struct {
	Entries     int64  `json:"entries"`
	LateEntries int64  `json:"late_entries"`
	OnSite      int64  `json:"on_site"`
	Date        string `json:"date"` // YYYY-MM-DD
}

// DayCount is one point of a per-day series. Dates with zero matching
// events are omitted, so consumers must not assume contiguous coverage.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// RangeResponse echoes the resolved desde/hasta range back to the caller.
type RangeResponse struct {
	From string `json:"desde"`
	To   string `json:"hasta"`
}

// Day pair status labels.
const (
	StatusComplete   = "complete"    // entry and exit present
	StatusInProgress = "in_progress" // entry without a later exit
	StatusAbsent     = "absent"      // neither event
)

// TableRow is one employee-day of the range table: earliest entry paired
// with latest exit.
type TableRow struct {
	EmployeeID       int64   `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	EmployeeDocument string  `json:"employee_document"`
	Date             string  `json:"date"`            // YYYY-MM-DD
	Entry            *string `json:"entry,omitempty"` // HH:MM:SS
	Exit             *string `json:"exit,omitempty"`  // HH:MM:SS
	WorkedMinutes    int     `json:"worked_minutes"`
	Status           string  `json:"status"`
}

// EmployeeStatsResponse is the per-employee monthly detail view.
type EmployeeStatsResponse struct {
	Employee           employee.Employee `json:"employee"`
	Month              string            `json:"month"` // YYYY-MM
	DaysWorked         int64             `json:"days_worked"`
	LateEntries        int64             `json:"late_entries"`
	WorkedHours        int               `json:"worked_hours"`
	WorkedMinutes      int               `json:"worked_minutes"` // remainder, 0-59
	TotalWorkedMinutes int               `json:"total_worked_minutes"`
	DailyRecords       []DailyRecordItem `json:"daily_records"`
}

// DailyRecordItem is one day of the monthly detail.
type DailyRecordItem struct {
	Date          string  `json:"date"`
	Entry         *string `json:"entry,omitempty"`
	Exit          *string `json:"exit,omitempty"`
	WorkedMinutes int     `json:"worked_minutes"`
	Status        string  `json:"status"`
}
