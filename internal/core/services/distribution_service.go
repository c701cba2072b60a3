package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nordpeak/backoffice_app/internal/apperrors"
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	portsrepo "github.com/nordpeak/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/nordpeak/backoffice_app/internal/core/ports/services"
	"github.com/nordpeak/backoffice_app/internal/dto"
	"github.com/nordpeak/backoffice_app/internal/utils/money"
)

// distributionService implements the profit distribution CRUD surface.
type distributionService struct {
	BaseService
	repo        portsrepo.DistributionRepositoryFacade
	partnerRepo portsrepo.PartnerReader
	strictMoney bool
}

// NewDistributionService creates a new profit distribution service. Recorded
// rows reference a partner, so creation verifies the partner exists.
func NewDistributionService(repo portsrepo.DistributionRepositoryFacade, partnerRepo portsrepo.PartnerReader, cache portssvc.DashboardCache, strictMoney bool) portssvc.DistributionSvcFacade {
	return &distributionService{
		BaseService: BaseService{Cache: cache},
		repo:        repo,
		partnerRepo: partnerRepo,
		strictMoney: strictMoney,
	}
}

var _ portssvc.DistributionSvcFacade = (*distributionService)(nil)

func (s *distributionService) CreateDistribution(ctx context.Context, req dto.CreateDistributionRequest) (*domain.ProfitDistribution, error) {
	if s.strictMoney {
		if req.Amount != "" && !money.IsValid(req.Amount) {
			return nil, fmt.Errorf("%w: amount must be numeric", apperrors.ErrValidation)
		}
		if req.Percentage != "" && !money.IsValid(req.Percentage) {
			return nil, fmt.Errorf("%w: percentage must be numeric", apperrors.ErrValidation)
		}
	}

	if _, err := s.partnerRepo.FindPartnerByID(ctx, req.PartnerID); err != nil {
		return nil, err
	}

	now := time.Now()
	dist := domain.ProfitDistribution{
		PartnerID:  req.PartnerID,
		Month:      req.Month,
		Year:       req.Year,
		Amount:     req.Amount,
		Percentage: req.Percentage,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.repo.SaveDistribution(ctx, dist)
	if err != nil {
		s.LogError(ctx, err, "Failed to save profit distribution")
		return nil, err
	}

	s.InvalidateDashboard()
	s.LogInfo(ctx, "Profit distribution created",
		slog.Int64("distribution_id", created.ID),
		slog.Int64("partner_id", created.PartnerID))
	return created, nil
}

func (s *distributionService) GetDistributionByID(ctx context.Context, id int64) (*domain.ProfitDistribution, error) {
	return s.repo.FindDistributionByID(ctx, id)
}

func (s *distributionService) ListDistributions(ctx context.Context) ([]domain.ProfitDistribution, error) {
	return s.repo.FindDistributions(ctx)
}

func (s *distributionService) UpdateDistribution(ctx context.Context, id int64, req dto.UpdateDistributionRequest) (*domain.ProfitDistribution, error) {
	dist, err := s.repo.FindDistributionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PartnerID != nil {
		if _, err := s.partnerRepo.FindPartnerByID(ctx, *req.PartnerID); err != nil {
			return nil, err
		}
		dist.PartnerID = *req.PartnerID
	}
	if req.Month != nil {
		dist.Month = *req.Month
	}
	if req.Year != nil {
		dist.Year = *req.Year
	}
	if req.Amount != nil {
		if s.strictMoney && *req.Amount != "" && !money.IsValid(*req.Amount) {
			return nil, fmt.Errorf("%w: amount must be numeric", apperrors.ErrValidation)
		}
		dist.Amount = *req.Amount
	}
	if req.Percentage != nil {
		if s.strictMoney && *req.Percentage != "" && !money.IsValid(*req.Percentage) {
			return nil, fmt.Errorf("%w: percentage must be numeric", apperrors.ErrValidation)
		}
		dist.Percentage = *req.Percentage
	}
	dist.LastUpdatedAt = time.Now()

	if err := s.repo.UpdateDistribution(ctx, *dist); err != nil {
		s.LogError(ctx, err, "Failed to update profit distribution", slog.Int64("distribution_id", id))
		return nil, err
	}

	s.InvalidateDashboard()
	return dist, nil
}

func (s *distributionService) DeleteDistribution(ctx context.Context, id int64) error {
	if err := s.repo.DeleteDistribution(ctx, id); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}

func (s *distributionService) DeleteDistributions(ctx context.Context, ids []int64) error {
	if err := s.repo.DeleteDistributions(ctx, ids); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}
