package repositories

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// DistributionReader defines read operations for profit distribution data
type DistributionReader interface {
	FindDistributionByID(ctx context.Context, id int64) (*domain.ProfitDistribution, error)
	FindDistributions(ctx context.Context) ([]domain.ProfitDistribution, error)
}

// DistributionWriter defines write operations for profit distribution data
type DistributionWriter interface {
	SaveDistribution(ctx context.Context, dist domain.ProfitDistribution) (*domain.ProfitDistribution, error)
	UpdateDistribution(ctx context.Context, dist domain.ProfitDistribution) error
	DeleteDistribution(ctx context.Context, id int64) error
	DeleteDistributions(ctx context.Context, ids []int64) error
}

// DistributionRepositoryFacade combines all profit distribution repository interfaces
type DistributionRepositoryFacade interface {
	DistributionReader
	DistributionWriter
}
