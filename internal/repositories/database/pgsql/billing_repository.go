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

type PgxBillingRepository struct {
	BaseRepository
}

// newPgxBillingRepository creates a new repository for billing data.
func newPgxBillingRepository(pool *pgxpool.Pool) portsrepo.BillingRepositoryFacade {
	return &PgxBillingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BillingRepositoryFacade = (*PgxBillingRepository)(nil)

func (r *PgxBillingRepository) SaveBilling(ctx context.Context, billing domain.Billing) (*domain.Billing, error) {
	model := mapping.ToModelBilling(billing)

	query := `
		INSERT INTO billings (project_id, month, year, amount, status, invoice_date, payment_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING billing_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		model.ProjectID,
		model.Month,
		model.Year,
		model.Amount,
		model.Status,
		model.InvoiceDate,
		model.PaymentDate,
		model.CreatedAt,
		model.LastUpdatedAt,
	).Scan(&model.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save billing: %w", err)
	}

	saved := mapping.ToDomainBilling(model)
	return &saved, nil
}

func (r *PgxBillingRepository) FindBillingByID(ctx context.Context, id int64) (*domain.Billing, error) {
	query := `
		SELECT billing_id, project_id, month, year, amount, status, invoice_date, payment_date, created_at, last_updated_at
		FROM billings
		WHERE billing_id = $1;
	`
	var model models.Billing
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.ProjectID,
		&model.Month,
		&model.Year,
		&model.Amount,
		&model.Status,
		&model.InvoiceDate,
		&model.PaymentDate,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find billing %d: %w", id, err)
	}

	billing := mapping.ToDomainBilling(model)
	return &billing, nil
}

func (r *PgxBillingRepository) FindBillings(ctx context.Context) ([]domain.Billing, error) {
	query := `
		SELECT billing_id, project_id, month, year, amount, status, invoice_date, payment_date, created_at, last_updated_at
		FROM billings
		ORDER BY billing_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query billings: %w", err)
	}
	defer rows.Close()

	modelBillings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Billing, error) {
		var m models.Billing
		err := row.Scan(
			&m.ID,
			&m.ProjectID,
			&m.Month,
			&m.Year,
			&m.Amount,
			&m.Status,
			&m.InvoiceDate,
			&m.PaymentDate,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan billings: %w", err)
	}

	return mapping.ToDomainBillingSlice(modelBillings), nil
}

func (r *PgxBillingRepository) UpdateBilling(ctx context.Context, billing domain.Billing) error {
	model := mapping.ToModelBilling(billing)

	query := `
		UPDATE billings
		SET project_id = $1, month = $2, year = $3, amount = $4, status = $5, invoice_date = $6, payment_date = $7, last_updated_at = $8
		WHERE billing_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.ProjectID,
		model.Month,
		model.Year,
		model.Amount,
		model.Status,
		model.InvoiceDate,
		model.PaymentDate,
		model.LastUpdatedAt,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update billing %d: %w", model.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBillingRepository) DeleteBilling(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM billings WHERE billing_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete billing %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBillingRepository) DeleteBillings(ctx context.Context, ids []int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM billings WHERE billing_id = ANY($1);`, ids)
	if err != nil {
		return fmt.Errorf("failed to delete billings: %w", err)
	}
	return nil
}
