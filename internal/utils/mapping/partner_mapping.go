package mapping

import (
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/models"
)

// ToModelPartner converts a domain Partner to a model Partner
func ToModelPartner(d domain.Partner) models.Partner {
	return models.Partner{
		ID:    d.ID,
		Name:  d.Name,
		Email: d.Email,
		Share: d.Share,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainPartner converts a model Partner to a domain Partner
func ToDomainPartner(m models.Partner) domain.Partner {
	return domain.Partner{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Share: m.Share,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainPartnerSlice converts a slice of model Partners to domain Partners
func ToDomainPartnerSlice(ms []models.Partner) []domain.Partner {
	ds := make([]domain.Partner, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPartner(m)
	}
	return ds
}
