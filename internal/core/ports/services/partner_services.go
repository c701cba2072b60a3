package services

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/dto"
)

// PartnerSvcFacade defines the partner service surface used by handlers.
type PartnerSvcFacade interface {
	CreatePartner(ctx context.Context, req dto.CreatePartnerRequest) (*domain.Partner, error)
	GetPartnerByID(ctx context.Context, id int64) (*domain.Partner, error)
	ListPartners(ctx context.Context) ([]domain.Partner, error)
	UpdatePartner(ctx context.Context, id int64, req dto.UpdatePartnerRequest) (*domain.Partner, error)
	DeletePartner(ctx context.Context, id int64) error
	DeletePartners(ctx context.Context, ids []int64) error
}
