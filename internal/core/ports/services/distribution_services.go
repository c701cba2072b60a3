package services

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/dto"
)

// DistributionSvcFacade defines the profit distribution service surface.
type DistributionSvcFacade interface {
	CreateDistribution(ctx context.Context, req dto.CreateDistributionRequest) (*domain.ProfitDistribution, error)
	GetDistributionByID(ctx context.Context, id int64) (*domain.ProfitDistribution, error)
	ListDistributions(ctx context.Context) ([]domain.ProfitDistribution, error)
	UpdateDistribution(ctx context.Context, id int64, req dto.UpdateDistributionRequest) (*domain.ProfitDistribution, error)
	DeleteDistribution(ctx context.Context, id int64) error
	DeleteDistributions(ctx context.Context, ids []int64) error
}
