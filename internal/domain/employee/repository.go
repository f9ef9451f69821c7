package employee

import "context"

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	// GetByID retrieves one employee, ErrEmployeeNotFound when missing
	GetByID(ctx context.Context, id int64) (Employee, error)

	// Search matches term against name OR document, case-insensitive
	// substring, ordered by name ascending. Callers must guard empty terms.
	Search(ctx context.Context, term string) ([]Employee, error)
}
