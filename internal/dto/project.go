package dto

import (
	"time"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// CreateProjectRequest defines the data needed to create a new project.
type CreateProjectRequest struct {
	Name      string  `json:"name" binding:"required"`
	Client    string  `json:"client"`
	Status    string  `json:"status"`
	Progress  int     `json:"progress" binding:"min=0,max=100"`
	Value     string  `json:"value"`
	Deadline  *string `json:"deadline"`
	ManagerID *int64  `json:"managerId"`
}

// UpdateProjectRequest defines a partial update; nil fields are left untouched.
type UpdateProjectRequest struct {
	Name      *string `json:"name"`
	Client    *string `json:"client"`
	Status    *string `json:"status"`
	Progress  *int    `json:"progress" binding:"omitempty,min=0,max=100"`
	Value     *string `json:"value"`
	Deadline  *string `json:"deadline"`
	ManagerID *int64  `json:"managerId"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Client        string    `json:"client"`
	Status        string    `json:"status"`
	Progress      int       `json:"progress"`
	Value         string    `json:"value"`
	Deadline      *string   `json:"deadline"`
	ManagerID     *int64    `json:"managerId"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Client:        p.Client,
		Status:        p.Status,
		Progress:      p.Progress,
		Value:         p.Value,
		Deadline:      p.Deadline,
		ManagerID:     p.ManagerID,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProjectResponse converts a slice of domain.Project to response DTOs.
func ToListProjectResponse(projects []domain.Project) []ProjectResponse {
	res := make([]ProjectResponse, len(projects))
	for i := range projects {
		res[i] = ToProjectResponse(&projects[i])
	}
	return res
}
