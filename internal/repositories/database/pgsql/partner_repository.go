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

type PgxPartnerRepository struct {
	BaseRepository
}

// newPgxPartnerRepository creates a new repository for partner data.
func newPgxPartnerRepository(pool *pgxpool.Pool) portsrepo.PartnerRepositoryFacade {
	return &PgxPartnerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PartnerRepositoryFacade = (*PgxPartnerRepository)(nil)

func (r *PgxPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) (*domain.Partner, error) {
	model := mapping.ToModelPartner(partner)

	query := `
		INSERT INTO partners (name, email, share, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING partner_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		model.Name,
		model.Email,
		model.Share,
		model.CreatedAt,
		model.LastUpdatedAt,
	).Scan(&model.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save partner: %w", err)
	}

	saved := mapping.ToDomainPartner(model)
	return &saved, nil
}

func (r *PgxPartnerRepository) FindPartnerByID(ctx context.Context, id int64) (*domain.Partner, error) {
	query := `
		SELECT partner_id, name, email, share, created_at, last_updated_at
		FROM partners
		WHERE partner_id = $1;
	`
	var model models.Partner
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.Name,
		&model.Email,
		&model.Share,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find partner %d: %w", id, err)
	}

	partner := mapping.ToDomainPartner(model)
	return &partner, nil
}

func (r *PgxPartnerRepository) FindPartners(ctx context.Context) ([]domain.Partner, error) {
	query := `
		SELECT partner_id, name, email, share, created_at, last_updated_at
		FROM partners
		ORDER BY partner_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}
	defer rows.Close()

	modelPartners, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Partner, error) {
		var m models.Partner
		err := row.Scan(
			&m.ID,
			&m.Name,
			&m.Email,
			&m.Share,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan partners: %w", err)
	}

	return mapping.ToDomainPartnerSlice(modelPartners), nil
}

func (r *PgxPartnerRepository) UpdatePartner(ctx context.Context, partner domain.Partner) error {
	model := mapping.ToModelPartner(partner)

	query := `
		UPDATE partners
		SET name = $1, email = $2, share = $3, last_updated_at = $4
		WHERE partner_id = $5;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.Name,
		model.Email,
		model.Share,
		model.LastUpdatedAt,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update partner %d: %w", model.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPartnerRepository) DeletePartner(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM partners WHERE partner_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete partner %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPartnerRepository) DeletePartners(ctx context.Context, ids []int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM partners WHERE partner_id = ANY($1);`, ids)
	if err != nil {
		return fmt.Errorf("failed to delete partners: %w", err)
	}
	return nil
}
