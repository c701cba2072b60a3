package mapping

import (
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ID:        d.ID,
		Name:      d.Name,
		Client:    d.Client,
		Status:    d.Status,
		Progress:  d.Progress,
		Value:     d.Value,
		Deadline:  d.Deadline,
		ManagerID: d.ManagerID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ID:        m.ID,
		Name:      m.Name,
		Client:    m.Client,
		Status:    m.Status,
		Progress:  m.Progress,
		Value:     m.Value,
		Deadline:  m.Deadline,
		ManagerID: m.ManagerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainProjectSlice converts a slice of model Projects to domain Projects
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}
