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

// projectService implements the project CRUD surface.
type projectService struct {
	BaseService
	repo        portsrepo.ProjectRepositoryFacade
	strictMoney bool
}

// NewProjectService creates a new project service.
func NewProjectService(repo portsrepo.ProjectRepositoryFacade, cache portssvc.DashboardCache, strictMoney bool) portssvc.ProjectSvcFacade {
	return &projectService{
		BaseService: BaseService{Cache: cache},
		repo:        repo,
		strictMoney: strictMoney,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	if s.strictMoney && req.Value != "" && !money.IsValid(req.Value) {
		return nil, fmt.Errorf("%w: value must be numeric", apperrors.ErrValidation)
	}

	now := time.Now()
	project := domain.Project{
		Name:      req.Name,
		Client:    req.Client,
		Status:    req.Status,
		Progress:  req.Progress,
		Value:     req.Value,
		Deadline:  req.Deadline,
		ManagerID: req.ManagerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.repo.SaveProject(ctx, project)
	if err != nil {
		s.LogError(ctx, err, "Failed to save project")
		return nil, err
	}

	s.InvalidateDashboard()
	s.LogInfo(ctx, "Project created", slog.Int64("project_id", created.ID))
	return created, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.FindProjectByID(ctx, id)
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.repo.FindProjects(ctx)
}

func (s *projectService) UpdateProject(ctx context.Context, id int64, req dto.UpdateProjectRequest) (*domain.Project, error) {
	project, err := s.repo.FindProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Client != nil {
		project.Client = *req.Client
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}
	if req.Value != nil {
		if s.strictMoney && *req.Value != "" && !money.IsValid(*req.Value) {
			return nil, fmt.Errorf("%w: value must be numeric", apperrors.ErrValidation)
		}
		project.Value = *req.Value
	}
	if req.Deadline != nil {
		project.Deadline = req.Deadline
	}
	if req.ManagerID != nil {
		project.ManagerID = req.ManagerID
	}
	project.LastUpdatedAt = time.Now()

	if err := s.repo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.Int64("project_id", id))
		return nil, err
	}

	s.InvalidateDashboard()
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}

func (s *projectService) DeleteProjects(ctx context.Context, ids []int64) error {
	if err := s.repo.DeleteProjects(ctx, ids); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}
