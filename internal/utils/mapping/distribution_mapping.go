package mapping

import (
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/models"
)

// ToModelDistribution converts a domain ProfitDistribution to its model
func ToModelDistribution(d domain.ProfitDistribution) models.ProfitDistribution {
	return models.ProfitDistribution{
		ID:         d.ID,
		PartnerID:  d.PartnerID,
		Month:      d.Month,
		Year:       d.Year,
		Amount:     d.Amount,
		Percentage: d.Percentage,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainDistribution converts a model ProfitDistribution to its domain form
func ToDomainDistribution(m models.ProfitDistribution) domain.ProfitDistribution {
	return domain.ProfitDistribution{
		ID:         m.ID,
		PartnerID:  m.PartnerID,
		Month:      m.Month,
		Year:       m.Year,
		Amount:     m.Amount,
		Percentage: m.Percentage,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainDistributionSlice converts model ProfitDistributions to domain form
func ToDomainDistributionSlice(ms []models.ProfitDistribution) []domain.ProfitDistribution {
	ds := make([]domain.ProfitDistribution, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDistribution(m)
	}
	return ds
}
