package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/employee"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, nombre, documento, cargo, telefono
		FROM empleados
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Document, &emp.Position, &emp.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// Search implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Search(ctx context.Context, term string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, nombre, documento, cargo, telefono
		FROM empleados
		WHERE nombre ILIKE $1 OR documento ILIKE $1
		ORDER BY nombre ASC
	`

	searchPattern := "%" + term + "%"
	rows, err := q.Query(ctx, query, searchPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	defer rows.Close()

	var results []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Document, &emp.Position, &emp.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		results = append(results, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
