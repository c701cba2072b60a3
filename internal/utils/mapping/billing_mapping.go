package mapping

import (
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/models"
)

// ToModelBilling converts a domain Billing to a model Billing
func ToModelBilling(d domain.Billing) models.Billing {
	return models.Billing{
		ID:          d.ID,
		ProjectID:   d.ProjectID,
		Month:       d.Month,
		Year:        d.Year,
		Amount:      d.Amount,
		Status:      d.Status,
		InvoiceDate: d.InvoiceDate,
		PaymentDate: d.PaymentDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainBilling converts a model Billing to a domain Billing
func ToDomainBilling(m models.Billing) domain.Billing {
	return domain.Billing{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Month:       m.Month,
		Year:        m.Year,
		Amount:      m.Amount,
		Status:      m.Status,
		InvoiceDate: m.InvoiceDate,
		PaymentDate: m.PaymentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainBillingSlice converts a slice of model Billings to domain Billings
func ToDomainBillingSlice(ms []models.Billing) []domain.Billing {
	ds := make([]domain.Billing, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBilling(m)
	}
	return ds
}
