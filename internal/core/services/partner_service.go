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

// partnerService implements the partner CRUD surface.
type partnerService struct {
	BaseService
	repo        portsrepo.PartnerRepositoryFacade
	strictMoney bool
}

// NewPartnerService creates a new partner service.
func NewPartnerService(repo portsrepo.PartnerRepositoryFacade, cache portssvc.DashboardCache, strictMoney bool) portssvc.PartnerSvcFacade {
	return &partnerService{
		BaseService: BaseService{Cache: cache},
		repo:        repo,
		strictMoney: strictMoney,
	}
}

var _ portssvc.PartnerSvcFacade = (*partnerService)(nil)

func (s *partnerService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest) (*domain.Partner, error) {
	if s.strictMoney && req.Share != "" && !money.IsValid(req.Share) {
		return nil, fmt.Errorf("%w: share must be numeric", apperrors.ErrValidation)
	}

	now := time.Now()
	partner := domain.Partner{
		Name:  req.Name,
		Email: req.Email,
		Share: req.Share,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.repo.SavePartner(ctx, partner)
	if err != nil {
		s.LogError(ctx, err, "Failed to save partner")
		return nil, err
	}

	s.InvalidateDashboard()
	s.LogInfo(ctx, "Partner created", slog.Int64("partner_id", created.ID))
	return created, nil
}

func (s *partnerService) GetPartnerByID(ctx context.Context, id int64) (*domain.Partner, error) {
	return s.repo.FindPartnerByID(ctx, id)
}

func (s *partnerService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	return s.repo.FindPartners(ctx)
}

func (s *partnerService) UpdatePartner(ctx context.Context, id int64, req dto.UpdatePartnerRequest) (*domain.Partner, error) {
	partner, err := s.repo.FindPartnerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.Email != nil {
		partner.Email = *req.Email
	}
	if req.Share != nil {
		if s.strictMoney && *req.Share != "" && !money.IsValid(*req.Share) {
			return nil, fmt.Errorf("%w: share must be numeric", apperrors.ErrValidation)
		}
		partner.Share = *req.Share
	}
	partner.LastUpdatedAt = time.Now()

	if err := s.repo.UpdatePartner(ctx, *partner); err != nil {
		s.LogError(ctx, err, "Failed to update partner", slog.Int64("partner_id", id))
		return nil, err
	}

	s.InvalidateDashboard()
	return partner, nil
}

func (s *partnerService) DeletePartner(ctx context.Context, id int64) error {
	if err := s.repo.DeletePartner(ctx, id); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}

func (s *partnerService) DeletePartners(ctx context.Context, ids []int64) error {
	if err := s.repo.DeletePartners(ctx, ids); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}
