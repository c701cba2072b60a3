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

type PgxDistributionRepository struct {
	BaseRepository
}

// newPgxDistributionRepository creates a new repository for profit distribution data.
func newPgxDistributionRepository(pool *pgxpool.Pool) portsrepo.DistributionRepositoryFacade {
	return &PgxDistributionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DistributionRepositoryFacade = (*PgxDistributionRepository)(nil)

func (r *PgxDistributionRepository) SaveDistribution(ctx context.Context, dist domain.ProfitDistribution) (*domain.ProfitDistribution, error) {
	model := mapping.ToModelDistribution(dist)

	query := `
		INSERT INTO profit_distributions (partner_id, month, year, amount, percentage, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING distribution_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		model.PartnerID,
		model.Month,
		model.Year,
		model.Amount,
		model.Percentage,
		model.CreatedAt,
		model.LastUpdatedAt,
	).Scan(&model.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save profit distribution: %w", err)
	}

	saved := mapping.ToDomainDistribution(model)
	return &saved, nil
}

func (r *PgxDistributionRepository) FindDistributionByID(ctx context.Context, id int64) (*domain.ProfitDistribution, error) {
	query := `
		SELECT distribution_id, partner_id, month, year, amount, percentage, created_at, last_updated_at
		FROM profit_distributions
		WHERE distribution_id = $1;
	`
	var model models.ProfitDistribution
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.PartnerID,
		&model.Month,
		&model.Year,
		&model.Amount,
		&model.Percentage,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profit distribution %d: %w", id, err)
	}

	dist := mapping.ToDomainDistribution(model)
	return &dist, nil
}

func (r *PgxDistributionRepository) FindDistributions(ctx context.Context) ([]domain.ProfitDistribution, error) {
	query := `
		SELECT distribution_id, partner_id, month, year, amount, percentage, created_at, last_updated_at
		FROM profit_distributions
		ORDER BY distribution_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profit distributions: %w", err)
	}
	defer rows.Close()

	modelDists, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ProfitDistribution, error) {
		var m models.ProfitDistribution
		err := row.Scan(
			&m.ID,
			&m.PartnerID,
			&m.Month,
			&m.Year,
			&m.Amount,
			&m.Percentage,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan profit distributions: %w", err)
	}

	return mapping.ToDomainDistributionSlice(modelDists), nil
}

func (r *PgxDistributionRepository) UpdateDistribution(ctx context.Context, dist domain.ProfitDistribution) error {
	model := mapping.ToModelDistribution(dist)

	query := `
		UPDATE profit_distributions
		SET partner_id = $1, month = $2, year = $3, amount = $4, percentage = $5, last_updated_at = $6
		WHERE distribution_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.PartnerID,
		model.Month,
		model.Year,
		model.Amount,
		model.Percentage,
		model.LastUpdatedAt,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profit distribution %d: %w", model.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDistributionRepository) DeleteDistribution(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM profit_distributions WHERE distribution_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profit distribution %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDistributionRepository) DeleteDistributions(ctx context.Context, ids []int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM profit_distributions WHERE distribution_id = ANY($1);`, ids)
	if err != nil {
		return fmt.Errorf("failed to delete profit distributions: %w", err)
	}
	return nil
}
