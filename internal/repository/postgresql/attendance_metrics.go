package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/attendance"
	"github.com/datasynergy/asistencia-backend-go/internal/domain/dashboard"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/database"
)

type metricsRepositoryImpl struct {
	db *database.DB
}

func NewMetricsRepository(db *database.DB) dashboard.MetricsRepository {
	return &metricsRepositoryImpl{db: db}
}

// dayBounds returns the half-open [00:00, next day 00:00) window of date.
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

// CountEntriesOnDate counts entry events on a calendar day.
func (r *metricsRepositoryImpl) CountEntriesOnDate(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)
	start, end := dayBounds(date)

	query := `
		SELECT COUNT(*)
		FROM registros_asistencia
		WHERE tipo_evento = $1
		AND fecha_hora >= $2 AND fecha_hora < $3
	`

	var count int64
	err := q.QueryRow(ctx, query, attendance.EventEntry, start, end).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries on date: %w", err)
	}
	return count, nil
}

// CountLateEntriesInRange counts entries strictly after the late threshold.
func (r *metricsRepositoryImpl) CountLateEntriesInRange(ctx context.Context, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM registros_asistencia
		WHERE tipo_evento = $1
		AND fecha_hora >= $2 AND fecha_hora < $3
		AND fecha_hora::time > $4::time
	`

	var count int64
	err := q.QueryRow(ctx, query, attendance.EventEntry, start, end, attendance.LateThreshold).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count late entries: %w", err)
	}
	return count, nil
}

// CountCurrentlyOnSite counts employees whose latest entry that day has no
// later same-day exit. Employees with several open entries count once.
func (r *metricsRepositoryImpl) CountCurrentlyOnSite(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)
	start, end := dayBounds(date)

	query := `
		SELECT COUNT(*)
		FROM (
			SELECT id_empleado, MAX(fecha_hora) AS ultima_entrada
			FROM registros_asistencia
			WHERE tipo_evento = $1
			AND fecha_hora >= $3 AND fecha_hora < $4
			GROUP BY id_empleado
		) le
		WHERE NOT EXISTS (
			SELECT 1 FROM registros_asistencia r2
			WHERE r2.id_empleado = le.id_empleado
			AND r2.tipo_evento = $2
			AND r2.fecha_hora >= $3 AND r2.fecha_hora < $4
			AND r2.fecha_hora > le.ultima_entrada
		)
	`

	var count int64
	err := q.QueryRow(ctx, query, attendance.EventEntry, attendance.EventExit, start, end).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count currently on site: %w", err)
	}
	return count, nil
}

// EntriesPerDay returns (date, count) pairs ascending by date; dates with
// zero matches are omitted by the GROUP BY.
func (r *metricsRepositoryImpl) EntriesPerDay(ctx context.Context, start, end time.Time, onlyLate bool) ([]dashboard.DayCount, error) {
	q := GetQuerier(ctx, r.db)

	lateFilter := ""
	args := []interface{}{attendance.EventEntry, start, end}
	if onlyLate {
		lateFilter = "AND fecha_hora::time > $4::time"
		args = append(args, attendance.LateThreshold)
	}

	query := fmt.Sprintf(`
		SELECT fecha_hora::date AS dia, COUNT(*)
		FROM registros_asistencia
		WHERE tipo_evento = $1
		AND fecha_hora >= $2 AND fecha_hora < $3
		%s
		GROUP BY dia
		ORDER BY dia ASC
	`, lateFilter)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries per day: %w", err)
	}
	defer rows.Close()

	var series []dashboard.DayCount
	for rows.Next() {
		var day time.Time
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan day count: %w", err)
		}
		series = append(series, dashboard.DayCount{
			Date:  day.Format("2006-01-02"),
			Count: count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return series, nil
}

// DaysWorked counts distinct days with at least one event for the employee.
func (r *metricsRepositoryImpl) DaysWorked(ctx context.Context, employeeID int64, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT fecha_hora::date)
		FROM registros_asistencia
		WHERE id_empleado = $1
		AND fecha_hora >= $2 AND fecha_hora < $3
	`

	var count int64
	err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count days worked: %w", err)
	}
	return count, nil
}

// CountLateEntriesForEmployee counts late entries for one employee.
func (r *metricsRepositoryImpl) CountLateEntriesForEmployee(ctx context.Context, employeeID int64, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM registros_asistencia
		WHERE id_empleado = $1
		AND tipo_evento = $2
		AND fecha_hora >= $3 AND fecha_hora < $4
		AND fecha_hora::time > $5::time
	`

	var count int64
	err := q.QueryRow(ctx, query, employeeID, attendance.EventEntry, start, end, attendance.LateThreshold).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employee late entries: %w", err)
	}
	return count, nil
}

// DailyPairs returns earliest entry / latest exit per day for the employee.
func (r *metricsRepositoryImpl) DailyPairs(ctx context.Context, employeeID int64, start, end time.Time) ([]dashboard.DailyPair, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT fecha_hora::date AS fecha,
			MIN(CASE WHEN tipo_evento = $2 THEN fecha_hora END) AS entrada,
			MAX(CASE WHEN tipo_evento = $3 THEN fecha_hora END) AS salida
		FROM registros_asistencia
		WHERE id_empleado = $1
		AND fecha_hora >= $4 AND fecha_hora < $5
		GROUP BY fecha
		ORDER BY fecha ASC
	`

	rows, err := q.Query(ctx, query, employeeID, attendance.EventEntry, attendance.EventExit, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily pairs: %w", err)
	}
	defer rows.Close()

	var pairs []dashboard.DailyPair
	for rows.Next() {
		var pair dashboard.DailyPair
		if err := rows.Scan(&pair.Date, &pair.Entry, &pair.Exit); err != nil {
			return nil, fmt.Errorf("failed to scan daily pair: %w", err)
		}
		pairs = append(pairs, pair)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pairs, nil
}

// AttendanceTable returns employee-day pairs joined with the directory for
// the inclusive from..to date range, ordered date DESC then name ASC.
func (r *metricsRepositoryImpl) AttendanceTable(ctx context.Context, from, to time.Time) ([]dashboard.TableJoinRow, error) {
	q := GetQuerier(ctx, r.db)

	start, _ := dayBounds(from)
	_, end := dayBounds(to)

	query := `
		SELECT e.id, e.nombre, e.documento, ra.fecha_hora::date AS fecha,
			MIN(CASE WHEN ra.tipo_evento = $1 THEN ra.fecha_hora END) AS entrada,
			MAX(CASE WHEN ra.tipo_evento = $2 THEN ra.fecha_hora END) AS salida
		FROM registros_asistencia ra
		JOIN empleados e ON e.id = ra.id_empleado
		WHERE ra.fecha_hora >= $3 AND ra.fecha_hora < $4
		GROUP BY e.id, e.nombre, e.documento, ra.fecha_hora::date
		ORDER BY fecha DESC, e.nombre ASC
	`

	rows, err := q.Query(ctx, query, attendance.EventEntry, attendance.EventExit, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance table: %w", err)
	}
	defer rows.Close()

	var table []dashboard.TableJoinRow
	for rows.Next() {
		var row dashboard.TableJoinRow
		if err := rows.Scan(&row.EmployeeID, &row.EmployeeName, &row.EmployeeDocument, &row.Date, &row.Entry, &row.Exit); err != nil {
			return nil, fmt.Errorf("failed to scan table row: %w", err)
		}
		table = append(table, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return table, nil
}
