package services

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/dto"
)

// ProjectSvcFacade defines the project service surface used by handlers.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, id int64, req dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	DeleteProjects(ctx context.Context, ids []int64) error
}
