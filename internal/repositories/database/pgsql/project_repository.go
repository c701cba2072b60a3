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

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	model := mapping.ToModelProject(project)

	query := `
		INSERT INTO projects (name, client, status, progress, value, deadline, manager_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING project_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		model.Name,
		model.Client,
		model.Status,
		model.Progress,
		model.Value,
		model.Deadline,
		model.ManagerID,
		model.CreatedAt,
		model.LastUpdatedAt,
	).Scan(&model.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	saved := mapping.ToDomainProject(model)
	return &saved, nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `
		SELECT project_id, name, client, status, progress, value, deadline, manager_id, created_at, last_updated_at
		FROM projects
		WHERE project_id = $1;
	`
	var model models.Project
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.Name,
		&model.Client,
		&model.Status,
		&model.Progress,
		&model.Value,
		&model.Deadline,
		&model.ManagerID,
		&model.CreatedAt,
		&model.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project %d: %w", id, err)
	}

	project := mapping.ToDomainProject(model)
	return &project, nil
}

func (r *PgxProjectRepository) FindProjects(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT project_id, name, client, status, progress, value, deadline, manager_id, created_at, last_updated_at
		FROM projects
		ORDER BY project_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	modelProjects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Project, error) {
		var m models.Project
		err := row.Scan(
			&m.ID,
			&m.Name,
			&m.Client,
			&m.Status,
			&m.Progress,
			&m.Value,
			&m.Deadline,
			&m.ManagerID,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}

	return mapping.ToDomainProjectSlice(modelProjects), nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	model := mapping.ToModelProject(project)

	query := `
		UPDATE projects
		SET name = $1, client = $2, status = $3, progress = $4, value = $5, deadline = $6, manager_id = $7, last_updated_at = $8
		WHERE project_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.Name,
		model.Client,
		model.Status,
		model.Progress,
		model.Value,
		model.Deadline,
		model.ManagerID,
		model.LastUpdatedAt,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %d: %w", model.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE project_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) DeleteProjects(ctx context.Context, ids []int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE project_id = ANY($1);`, ids)
	if err != nil {
		return fmt.Errorf("failed to delete projects: %w", err)
	}
	return nil
}
