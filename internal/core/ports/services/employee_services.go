package services

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/dto"
)

// EmployeeSvcFacade defines the employee service surface used by handlers.
type EmployeeSvcFacade interface {
	// CreateEmployee creates a new employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// GetEmployeeByID retrieves an employee by id.
	GetEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error)

	// ListEmployees retrieves all employees.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// UpdateEmployee applies a partial update to an existing employee.
	UpdateEmployee(ctx context.Context, id int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeleteEmployee removes an employee by id.
	DeleteEmployee(ctx context.Context, id int64) error

	// DeleteEmployees removes every employee in ids.
	DeleteEmployees(ctx context.Context, ids []int64) error
}
