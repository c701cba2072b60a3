package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nordpeak/backoffice_app/internal/apperrors"
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	portsrepo "github.com/nordpeak/backoffice_app/internal/core/ports/repositories"
	"github.com/nordpeak/backoffice_app/internal/models"
	"github.com/nordpeak/backoffice_app/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	model := mapping.ToModelEmployee(employee)

	query := `
		INSERT INTO employees (first_name, last_name, department, status, project_id, salary, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING employee_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		model.FirstName,
		model.LastName,
		model.Department,
		model.Status,
		model.ProjectID,
		model.Salary,
		model.CreatedAt,
		model.LastUpdatedAt,
	).Scan(&model.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	saved := mapping.ToDomainEmployee(model)
	return &saved, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := `
		SELECT employee_id, first_name, last_name, department, status, project_id, salary, created_at, last_updated_at
		FROM employees
		WHERE employee_id = $1;
	`
	var model models.Employee
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.FirstName,
		&model.LastName,
		&model.Department,
		&model.Status,
		&model.ProjectID,
		&model.Salary,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %d: %w", id, err)
	}

	employee := mapping.ToDomainEmployee(model)
	return &employee, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `
		SELECT employee_id, first_name, last_name, department, status, project_id, salary, created_at, last_updated_at
		FROM employees
		ORDER BY employee_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	modelEmployees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		var m models.Employee
		err := row.Scan(
			&m.ID,
			&m.FirstName,
			&m.LastName,
			&m.Department,
			&m.Status,
			&m.ProjectID,
			&m.Salary,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}

	return mapping.ToDomainEmployeeSlice(modelEmployees), nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	model := mapping.ToModelEmployee(employee)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, department = $3, status = $4, project_id = $5, salary = $6, last_updated_at = $7
		WHERE employee_id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.FirstName,
		model.LastName,
		model.Department,
		model.Status,
		model.ProjectID,
		model.Salary,
		model.LastUpdatedAt,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %d: %w", model.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) DeleteEmployees(ctx context.Context, ids []int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = ANY($1);`, ids)
	if err != nil {
		return fmt.Errorf("failed to delete employees: %w", err)
	}
	return nil
}
