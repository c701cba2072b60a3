package dto

import (
	"time"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// CreateBillingRequest defines the data needed to create a billing record.
// Month must be an English month name (custom `month` validator).
type CreateBillingRequest struct {
	ProjectID   int64   `json:"projectId" binding:"required,min=1"`
	Month       string  `json:"month" binding:"required,month"`
	Year        int     `json:"year" binding:"required,min=1000,max=9999"`
	Amount      string  `json:"amount"`
	Status      string  `json:"status"`
	InvoiceDate *string `json:"invoiceDate"`
	PaymentDate *string `json:"paymentDate"`
}

// UpdateBillingRequest defines a partial update; nil fields are left untouched.
type UpdateBillingRequest struct {
	ProjectID   *int64  `json:"projectId" binding:"omitempty,min=1"`
	Month       *string `json:"month" binding:"omitempty,month"`
	Year        *int    `json:"year" binding:"omitempty,min=1000,max=9999"`
	Amount      *string `json:"amount"`
	Status      *string `json:"status"`
	InvoiceDate *string `json:"invoiceDate"`
	PaymentDate *string `json:"paymentDate"`
}

// BillingResponse defines the data returned for a billing record.
type BillingResponse struct {
	ID            int64     `json:"id"`
	ProjectID     int64     `json:"projectId"`
	Month         string    `json:"month"`
	Year          int       `json:"year"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	InvoiceDate   *string   `json:"invoiceDate"`
	PaymentDate   *string   `json:"paymentDate"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToBillingResponse converts a domain.Billing to BillingResponse.
func ToBillingResponse(b *domain.Billing) BillingResponse {
	return BillingResponse{
		ID:            b.ID,
		ProjectID:     b.ProjectID,
		Month:         b.Month,
		Year:          b.Year,
		Amount:        b.Amount,
		Status:        b.Status,
		InvoiceDate:   b.InvoiceDate,
		PaymentDate:   b.PaymentDate,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBillingResponse converts a slice of domain.Billing to response DTOs.
func ToListBillingResponse(billings []domain.Billing) []BillingResponse {
	res := make([]BillingResponse, len(billings))
	for i := range billings {
		res[i] = ToBillingResponse(&billings[i])
	}
	return res
}
