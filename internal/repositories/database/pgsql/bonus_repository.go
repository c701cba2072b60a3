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

type PgxBonusRepository struct {
	BaseRepository
}

// newPgxBonusRepository creates a new repository for bonus data.
func newPgxBonusRepository(pool *pgxpool.Pool) portsrepo.BonusRepositoryFacade {
	return &PgxBonusRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BonusRepositoryFacade = (*PgxBonusRepository)(nil)

const insertBonusQuery = `
	INSERT INTO bonuses (project_id, employee_id, month, year, amount, percentage, status, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING bonus_id;
`

func (r *PgxBonusRepository) SaveBonus(ctx context.Context, bonus domain.Bonus) (*domain.Bonus, error) {
	model := mapping.ToModelBonus(bonus)

	err := r.Pool.QueryRow(ctx, insertBonusQuery,
		model.ProjectID,
		model.EmployeeID,
		model.Month,
		model.Year,
		model.Amount,
		model.Percentage,
		model.Status,
		model.CreatedAt,
		model.LastUpdatedAt,
	).Scan(&model.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save bonus: %w", err)
	}

	saved := mapping.ToDomainBonus(model)
	return &saved, nil
}

// SaveBonuses persists a batch in a single transaction so a partial quarterly
// calculation never reaches the table.
func (r *PgxBonusRepository) SaveBonuses(ctx context.Context, bonuses []domain.Bonus) ([]domain.Bonus, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	saved := make([]domain.Bonus, 0, len(bonuses))
	for _, bonus := range bonuses {
		model := mapping.ToModelBonus(bonus)
		err := tx.QueryRow(ctx, insertBonusQuery,
			model.ProjectID,
			model.EmployeeID,
			model.Month,
			model.Year,
			model.Amount,
			model.Percentage,
			model.Status,
			model.CreatedAt,
			model.LastUpdatedAt,
		).Scan(&model.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to save bonus for employee %d on project %d: %w", model.EmployeeID, model.ProjectID, err)
		}
		saved = append(saved, mapping.ToDomainBonus(model))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *PgxBonusRepository) FindBonusByID(ctx context.Context, id int64) (*domain.Bonus, error) {
	query := `
		SELECT bonus_id, project_id, employee_id, month, year, amount, percentage, status, created_at, last_updated_at
		FROM bonuses
		WHERE bonus_id = $1;
	`
	var model models.Bonus
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.ProjectID,
		&model.EmployeeID,
		&model.Month,
		&model.Year,
		&model.Amount,
		&model.Percentage,
		&model.Status,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bonus %d: %w", id, err)
	}

	bonus := mapping.ToDomainBonus(model)
	return &bonus, nil
}

func (r *PgxBonusRepository) FindBonuses(ctx context.Context) ([]domain.Bonus, error) {
	query := `
		SELECT bonus_id, project_id, employee_id, month, year, amount, percentage, status, created_at, last_updated_at
		FROM bonuses
		ORDER BY bonus_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bonuses: %w", err)
	}
	defer rows.Close()

	modelBonuses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Bonus, error) {
		var m models.Bonus
		err := row.Scan(
			&m.ID,
			&m.ProjectID,
			&m.EmployeeID,
			&m.Month,
			&m.Year,
			&m.Amount,
			&m.Percentage,
			&m.Status,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan bonuses: %w", err)
	}

	return mapping.ToDomainBonusSlice(modelBonuses), nil
}

func (r *PgxBonusRepository) UpdateBonus(ctx context.Context, bonus domain.Bonus) error {
	model := mapping.ToModelBonus(bonus)

	query := `
		UPDATE bonuses
		SET project_id = $1, employee_id = $2, month = $3, year = $4, amount = $5, percentage = $6, status = $7, last_updated_at = $8
		WHERE bonus_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.ProjectID,
		model.EmployeeID,
		model.Month,
		model.Year,
		model.Amount,
		model.Percentage,
		model.Status,
		model.LastUpdatedAt,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bonus %d: %w", model.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBonusRepository) DeleteBonus(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM bonuses WHERE bonus_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bonus %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBonusRepository) DeleteBonuses(ctx context.Context, ids []int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM bonuses WHERE bonus_id = ANY($1);`, ids)
	if err != nil {
		return fmt.Errorf("failed to delete bonuses: %w", err)
	}
	return nil
}
