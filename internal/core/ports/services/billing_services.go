package services

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/dto"
)

// BillingSvcFacade defines the billing service surface used by handlers.
type BillingSvcFacade interface {
	CreateBilling(ctx context.Context, req dto.CreateBillingRequest) (*domain.Billing, error)
	GetBillingByID(ctx context.Context, id int64) (*domain.Billing, error)
	ListBillings(ctx context.Context) ([]domain.Billing, error)
	UpdateBilling(ctx context.Context, id int64, req dto.UpdateBillingRequest) (*domain.Billing, error)
	DeleteBilling(ctx context.Context, id int64) error
	DeleteBillings(ctx context.Context, ids []int64) error
}
