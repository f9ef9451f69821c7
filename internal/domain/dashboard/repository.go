package dashboard

import (
	"context"
	"time"
)

// DailyPair is the earliest entry / latest exit for one employee-day.
// Either side may be missing.
type DailyPair struct {
	Date  time.Time
	Entry *time.Time
	Exit  *time.Time
}

// TableJoinRow is one raw employee-day row of the range table before
// presentation formatting.
type TableJoinRow struct {
	EmployeeID       int64
	EmployeeName     string
	EmployeeDocument string
	Date             time.Time
	Entry            *time.Time
	Exit             *time.Time
}

// MetricsRepository defines the aggregation queries over attendance
// records. Every method returns zero values on an empty table, never an
// error. Ranges are half-open [start, end).
type MetricsRepository interface {
	// CountEntriesOnDate counts entry events on a calendar day
	CountEntriesOnDate(ctx context.Context, date time.Time) (int64, error)

	// CountLateEntriesInRange counts entries whose time-of-day is strictly
	// after the late threshold
	CountLateEntriesInRange(ctx context.Context, start, end time.Time) (int64, error)

	// CountCurrentlyOnSite counts employees whose latest entry that day has
	// no later same-day exit
	CountCurrentlyOnSite(ctx context.Context, date time.Time) (int64, error)

	// EntriesPerDay returns (date, count) pairs ascending by date, dates
	// with zero matches omitted; onlyLate restricts to late entries
	EntriesPerDay(ctx context.Context, start, end time.Time, onlyLate bool) ([]DayCount, error)

	// DaysWorked counts distinct days with at least one event for the employee
	DaysWorked(ctx context.Context, employeeID int64, start, end time.Time) (int64, error)

	// CountLateEntriesForEmployee counts late entries for one employee
	CountLateEntriesForEmployee(ctx context.Context, employeeID int64, start, end time.Time) (int64, error)

	// DailyPairs returns earliest entry / latest exit per day for the
	// employee, ascending by date
	DailyPairs(ctx context.Context, employeeID int64, start, end time.Time) ([]DailyPair, error)

	// AttendanceTable returns employee-day pairs joined with the directory
	// for from..to (inclusive dates), ordered date descending then name
	// ascending
	AttendanceTable(ctx context.Context, from, to time.Time) ([]TableJoinRow, error)
}
