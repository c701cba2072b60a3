package repositories

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	FindProjectByID(ctx context.Context, id int64) (*domain.Project, error)
	FindProjects(ctx context.Context) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, id int64) error
	DeleteProjects(ctx context.Context, ids []int64) error
}

// ProjectRepositoryFacade combines all project repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
