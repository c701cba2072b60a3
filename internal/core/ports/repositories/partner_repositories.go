package repositories

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// PartnerReader defines read operations for partner data
type PartnerReader interface {
	FindPartnerByID(ctx context.Context, id int64) (*domain.Partner, error)
	FindPartners(ctx context.Context) ([]domain.Partner, error)
}

// PartnerWriter defines write operations for partner data
type PartnerWriter interface {
	SavePartner(ctx context.Context, partner domain.Partner) (*domain.Partner, error)
	UpdatePartner(ctx context.Context, partner domain.Partner) error
	DeletePartner(ctx context.Context, id int64) error
	DeletePartners(ctx context.Context, ids []int64) error
}

// PartnerRepositoryFacade combines all partner repository interfaces
type PartnerRepositoryFacade interface {
	PartnerReader
	PartnerWriter
}
