package mapping

import (
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/models"
)

// ToModelBonus converts a domain Bonus to a model Bonus
func ToModelBonus(d domain.Bonus) models.Bonus {
	return models.Bonus{
		ID:         d.ID,
		ProjectID:  d.ProjectID,
		EmployeeID: d.EmployeeID,
		Month:      d.Month,
		Year:       d.Year,
		Amount:     d.Amount,
		Percentage: d.Percentage,
		Status:     string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainBonus converts a model Bonus to a domain Bonus
func ToDomainBonus(m models.Bonus) domain.Bonus {
	return domain.Bonus{
		ID:         m.ID,
		ProjectID:  m.ProjectID,
		EmployeeID: m.EmployeeID,
		Month:      m.Month,
		Year:       m.Year,
		Amount:     m.Amount,
		Percentage: m.Percentage,
		Status:     domain.BonusStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainBonusSlice converts a slice of model Bonuses to domain Bonuses
func ToDomainBonusSlice(ms []models.Bonus) []domain.Bonus {
	ds := make([]domain.Bonus, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBonus(m)
	}
	return ds
}
