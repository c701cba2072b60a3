package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nordpeak/backoffice_app/internal/apperrors"
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	portsrepo "github.com/nordpeak/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/nordpeak/backoffice_app/internal/core/ports/services"
	"github.com/nordpeak/backoffice_app/internal/dto"
	"github.com/nordpeak/backoffice_app/internal/utils/money"
)

// employeeService implements the employee CRUD surface.
type employeeService struct {
	BaseService
	repo        portsrepo.EmployeeRepositoryFacade
	strictMoney bool
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, cache portssvc.DashboardCache, strictMoney bool) portssvc.EmployeeSvcFacade {
	return &employeeService{
		BaseService: BaseService{Cache: cache},
		repo:        repo,
		strictMoney: strictMoney,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if s.strictMoney && req.Salary != "" && !money.IsValid(req.Salary) {
		return nil, fmt.Errorf("%w: salary must be numeric", apperrors.ErrValidation)
	}

	now := time.Now()
	employee := domain.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Status:     req.Status,
		ProjectID:  req.ProjectID,
		Salary:     req.Salary,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.repo.SaveEmployee(ctx, employee)
	if err != nil {
		s.LogError(ctx, err, "Failed to save employee")
		return nil, err
	}

	s.InvalidateDashboard()
	s.LogInfo(ctx, "Employee created", slog.Int64("employee_id", created.ID))
	return created, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.FindEmployeeByID(ctx, id)
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.FindEmployees(ctx)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.repo.FindEmployeeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}
	if req.ProjectID != nil {
		employee.ProjectID = req.ProjectID
	}
	if req.Salary != nil {
		if s.strictMoney && *req.Salary != "" && !money.IsValid(*req.Salary) {
			return nil, fmt.Errorf("%w: salary must be numeric", apperrors.ErrValidation)
		}
		employee.Salary = *req.Salary
	}
	employee.LastUpdatedAt = time.Now()

	if err := s.repo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.Int64("employee_id", id))
		return nil, err
	}

	s.InvalidateDashboard()
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}

func (s *employeeService) DeleteEmployees(ctx context.Context, ids []int64) error {
	if err := s.repo.DeleteEmployees(ctx, ids); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}
