package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/dashboard"
	"github.com/datasynergy/asistencia-backend-go/internal/domain/employee"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.MetricsRepository
	employeeRepo employee.EmployeeRepository
}

func NewDashboardService(metricsRepo dashboard.MetricsRepository, employeeRepo employee.EmployeeRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		MetricsRepository: metricsRepo,
		employeeRepo:      employeeRepo,
	}
}

// monthWindow returns the half-open [first day of month, first day of next
// month) window containing ref.
func monthWindow(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return start, start.AddDate(0, 1, 0)
}

// parseDate parses YYYY-MM-DD, falling back on invalid or empty input.
func parseDate(date string, fallback time.Time) time.Time {
	if date == "" {
		return fallback
	}
	parsed, ok := validator.IsValidDate(date)
	if !ok {
		return fallback
	}
	return parsed
}

// parseMonth parses YYYY-MM, defaulting to the month containing now.
func parseMonth(month string, now time.Time) (time.Time, time.Time) {
	if month != "" {
		if parsed, ok := validator.IsValidMonth(month); ok {
			return monthWindow(parsed)
		}
	}
	return monthWindow(now)
}

// pairMinutes returns the worked minutes of one entry/exit pair. Days
// missing either side contribute zero; a pair where the exit precedes the
// entry is clock noise and clamps to zero.
func pairMinutes(entry, exit *time.Time) int {
	if entry == nil || exit == nil {
		return 0
	}
	d := exit.Sub(*entry)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// pairStatus labels one employee-day pair.
func pairStatus(entry, exit *time.Time) string {
	switch {
	case entry != nil && exit != nil:
		return dashboard.StatusComplete
	case entry != nil:
		return dashboard.StatusInProgress
	default:
		return dashboard.StatusAbsent
	}
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}

// buildTableRows formats raw join rows into presentation rows. Ordering is
// preserved from the repository (date DESC, name ASC).
func buildTableRows(rows []dashboard.TableJoinRow) []dashboard.TableRow {
	table := make([]dashboard.TableRow, 0, len(rows))
	for _, row := range rows {
		table = append(table, dashboard.TableRow{
			EmployeeID:       row.EmployeeID,
			EmployeeName:     row.EmployeeName,
			EmployeeDocument: row.EmployeeDocument,
			Date:             row.Date.Format("2006-01-02"),
			Entry:            formatClock(row.Entry),
			Exit:             formatClock(row.Exit),
			WorkedMinutes:    pairMinutes(row.Entry, row.Exit),
			Status:           pairStatus(row.Entry, row.Exit),
		})
	}
	return table
}

// totalWorkedMinutes sums the complete pairs of a month.
func totalWorkedMinutes(pairs []dashboard.DailyPair) int {
	total := 0
	for _, p := range pairs {
		total += pairMinutes(p.Entry, p.Exit)
	}
	return total
}

// GetDashboard returns the combined dashboard payload. The independent
// aggregate queries fan out in parallel goroutines.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, q dashboard.Query) (*dashboard.DashboardResponse, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart, nextMonth := monthWindow(now)

	from := parseDate(q.From, monthStart)
	to := parseDate(q.To, today)

	var (
		todayEntries  int64
		todayLate     int64
		onSite        int64
		monthLate     int64
		entriesPerDay []dashboard.DayCount
		latePerDay    []dashboard.DayCount
		tableRows     []dashboard.TableJoinRow
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		todayEntries, err = s.CountEntriesOnDate(gCtx, today)
		return err
	})

	g.Go(func() error {
		var err error
		todayLate, err = s.CountLateEntriesInRange(gCtx, today, today.AddDate(0, 0, 1))
		return err
	})

	g.Go(func() error {
		var err error
		onSite, err = s.CountCurrentlyOnSite(gCtx, today)
		return err
	})

	g.Go(func() error {
		var err error
		monthLate, err = s.CountLateEntriesInRange(gCtx, monthStart, nextMonth)
		return err
	})

	g.Go(func() error {
		var err error
		entriesPerDay, err = s.EntriesPerDay(gCtx, monthStart, nextMonth, false)
		return err
	})

	g.Go(func() error {
		var err error
		latePerDay, err = s.EntriesPerDay(gCtx, monthStart, nextMonth, true)
		return err
	})

	g.Go(func() error {
		var err error
		tableRows, err = s.AttendanceTable(gCtx, from, to)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dashboard.DashboardResponse{
		Today: dashboard.TodayStatsResponse{
			Entries:     todayEntries,
			LateEntries: todayLate,
			OnSite:      onSite,
			Date:        today.Format("2006-01-02"),
		},
		MonthLateEntries: monthLate,
		EntriesPerDay:    entriesPerDay,
		LatePerDay:       latePerDay,
		Range: dashboard.RangeResponse{
			From: from.Format("2006-01-02"),
			To:   to.Format("2006-01-02"),
		},
		Table: buildTableRows(tableRows),
	}

	if !validator.IsEmpty(q.Search) {
		results, err := s.SearchEmployees(ctx, q.Search)
		if err != nil {
			return nil, err
		}
		resp.SearchResults = results
	}

	if q.EmployeeID != nil {
		detail, err := s.GetEmployeeMonthlyStats(ctx, *q.EmployeeID, "")
		if err != nil {
			// Unknown employee yields an empty detail view, not an error
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return resp, nil
			}
			return nil, err
		}
		resp.EmployeeDetail = detail
	}

	return resp, nil
}

// GetSeries implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetSeries(ctx context.Context, from, to string, onlyLate bool) ([]dashboard.DayCount, error) {
	now := time.Now()
	monthStart, nextMonth := monthWindow(now)

	start := parseDate(from, monthStart)
	end := parseDate(to, nextMonth.AddDate(0, 0, -1))

	// end is an inclusive date; the query window is half-open
	endExclusive := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)

	return s.EntriesPerDay(ctx, start, endExclusive, onlyLate)
}

// SearchEmployees implements dashboard.DashboardService. Empty terms yield
// no query execution.
func (s *DashboardServiceImpl) SearchEmployees(ctx context.Context, term string) ([]employee.Employee, error) {
	if validator.IsEmpty(term) {
		return []employee.Employee{}, nil
	}
	return s.employeeRepo.Search(ctx, term)
}

// GetEmployeeMonthlyStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeMonthlyStats(ctx context.Context, employeeID int64, month string) (*dashboard.EmployeeStatsResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	monthStart, nextMonth := parseMonth(month, time.Now())

	var (
		daysWorked  int64
		lateEntries int64
		pairs       []dashboard.DailyPair
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		daysWorked, err = s.DaysWorked(gCtx, employeeID, monthStart, nextMonth)
		return err
	})

	g.Go(func() error {
		var err error
		lateEntries, err = s.CountLateEntriesForEmployee(gCtx, employeeID, monthStart, nextMonth)
		return err
	})

	g.Go(func() error {
		var err error
		pairs, err = s.DailyPairs(gCtx, employeeID, monthStart, nextMonth)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := totalWorkedMinutes(pairs)

	records := make([]dashboard.DailyRecordItem, 0, len(pairs))
	for _, p := range pairs {
		records = append(records, dashboard.DailyRecordItem{
			Date:          p.Date.Format("2006-01-02"),
			Entry:         formatClock(p.Entry),
			Exit:          formatClock(p.Exit),
			WorkedMinutes: pairMinutes(p.Entry, p.Exit),
			Status:        pairStatus(p.Entry, p.Exit),
		})
	}

	return &dashboard.EmployeeStatsResponse{
		Employee:           emp,
		Month:              monthStart.Format("2006-01"),
		DaysWorked:         daysWorked,
		LateEntries:        lateEntries,
		WorkedHours:        total / 60,
		WorkedMinutes:      total % 60,
		TotalWorkedMinutes: total,
		DailyRecords:       records,
	}, nil
}
