package repositories

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// BillingReader defines read operations for billing data
type BillingReader interface {
	FindBillingByID(ctx context.Context, id int64) (*domain.Billing, error)

	// FindBillings retrieves the full billing set. Period filtering happens
	// in memory at the service layer.
	FindBillings(ctx context.Context) ([]domain.Billing, error)
}

// BillingWriter defines write operations for billing data
type BillingWriter interface {
	SaveBilling(ctx context.Context, billing domain.Billing) (*domain.Billing, error)
	UpdateBilling(ctx context.Context, billing domain.Billing) error
	DeleteBilling(ctx context.Context, id int64) error
	DeleteBillings(ctx context.Context, ids []int64) error
}

// BillingRepositoryFacade combines all billing repository interfaces
type BillingRepositoryFacade interface {
	BillingReader
	BillingWriter
}
