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

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	model := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (category, description, amount, month, year, expense_date, payment_method, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING expense_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		model.Category,
		model.Description,
		model.Amount,
		model.Month,
		model.Year,
		model.Date,
		model.PaymentMethod,
		model.Notes,
		model.CreatedAt,
		model.LastUpdatedAt,
	).Scan(&model.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	saved := mapping.ToDomainExpense(model)
	return &saved, nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, id int64) (*domain.Expense, error) {
	query := `
		SELECT expense_id, category, description, amount, month, year, expense_date, payment_method, notes, created_at, last_updated_at
		FROM expenses
		WHERE expense_id = $1;
	`
	var model models.Expense
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.Category,
		&model.Description,
		&model.Amount,
		&model.Month,
		&model.Year,
		&model.Date,
		&model.PaymentMethod,
		&model.Notes,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %d: %w", id, err)
	}

	expense := mapping.ToDomainExpense(model)
	return &expense, nil
}

func (r *PgxExpenseRepository) FindExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, category, description, amount, month, year, expense_date, payment_method, notes, created_at, last_updated_at
		FROM expenses
		ORDER BY expense_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		var m models.Expense
		err := row.Scan(
			&m.ID,
			&m.Category,
			&m.Description,
			&m.Amount,
			&m.Month,
			&m.Year,
			&m.Date,
			&m.PaymentMethod,
			&m.Notes,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	model := mapping.ToModelExpense(expense)

	query := `
		UPDATE expenses
		SET category = $1, description = $2, amount = $3, month = $4, year = $5, expense_date = $6, payment_method = $7, notes = $8, last_updated_at = $9
		WHERE expense_id = $10;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.Category,
		model.Description,
		model.Amount,
		model.Month,
		model.Year,
		model.Date,
		model.PaymentMethod,
		model.Notes,
		model.LastUpdatedAt,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %d: %w", model.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpenses(ctx context.Context, ids []int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = ANY($1);`, ids)
	if err != nil {
		return fmt.Errorf("failed to delete expenses: %w", err)
	}
	return nil
}
