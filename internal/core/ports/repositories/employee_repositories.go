package repositories

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by id.
	FindEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error)

	// FindEmployees retrieves all employees in id order.
	FindEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee and returns the stored row.
	SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)

	// UpdateEmployee updates an existing employee.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeleteEmployee removes an employee. Physical delete.
	DeleteEmployee(ctx context.Context, id int64) error

	// DeleteEmployees removes all employees whose id is in ids.
	DeleteEmployees(ctx context.Context, ids []int64) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
