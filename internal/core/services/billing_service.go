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

// billingService implements the billing CRUD surface.
type billingService struct {
	BaseService
	repo        portsrepo.BillingRepositoryFacade
	strictMoney bool
}

// NewBillingService creates a new billing service.
func NewBillingService(repo portsrepo.BillingRepositoryFacade, cache portssvc.DashboardCache, strictMoney bool) portssvc.BillingSvcFacade {
	return &billingService{
		BaseService: BaseService{Cache: cache},
		repo:        repo,
		strictMoney: strictMoney,
	}
}

var _ portssvc.BillingSvcFacade = (*billingService)(nil)

func (s *billingService) CreateBilling(ctx context.Context, req dto.CreateBillingRequest) (*domain.Billing, error) {
	if s.strictMoney && req.Amount != "" && !money.IsValid(req.Amount) {
		return nil, fmt.Errorf("%w: amount must be numeric", apperrors.ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = "Pending"
	}

	now := time.Now()
	billing := domain.Billing{
		ProjectID:   req.ProjectID,
		Month:       req.Month,
		Year:        req.Year,
		Amount:      req.Amount,
		Status:      status,
		InvoiceDate: req.InvoiceDate,
		PaymentDate: req.PaymentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.repo.SaveBilling(ctx, billing)
	if err != nil {
		s.LogError(ctx, err, "Failed to save billing")
		return nil, err
	}

	s.InvalidateDashboard()
	s.LogInfo(ctx, "Billing created",
		slog.Int64("billing_id", created.ID),
		slog.String("month", created.Month),
		slog.Int("year", created.Year))
	return created, nil
}

func (s *billingService) GetBillingByID(ctx context.Context, id int64) (*domain.Billing, error) {
	return s.repo.FindBillingByID(ctx, id)
}

func (s *billingService) ListBillings(ctx context.Context) ([]domain.Billing, error) {
	return s.repo.FindBillings(ctx)
}

func (s *billingService) UpdateBilling(ctx context.Context, id int64, req dto.UpdateBillingRequest) (*domain.Billing, error) {
	billing, err := s.repo.FindBillingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		billing.ProjectID = *req.ProjectID
	}
	if req.Month != nil {
		billing.Month = *req.Month
	}
	if req.Year != nil {
		billing.Year = *req.Year
	}
	if req.Amount != nil {
		if s.strictMoney && *req.Amount != "" && !money.IsValid(*req.Amount) {
			return nil, fmt.Errorf("%w: amount must be numeric", apperrors.ErrValidation)
		}
		billing.Amount = *req.Amount
	}
	if req.Status != nil {
		billing.Status = *req.Status
	}
	if req.InvoiceDate != nil {
		billing.InvoiceDate = req.InvoiceDate
	}
	if req.PaymentDate != nil {
		billing.PaymentDate = req.PaymentDate
	}
	billing.LastUpdatedAt = time.Now()

	if err := s.repo.UpdateBilling(ctx, *billing); err != nil {
		s.LogError(ctx, err, "Failed to update billing", slog.Int64("billing_id", id))
		return nil, err
	}

	s.InvalidateDashboard()
	return billing, nil
}

func (s *billingService) DeleteBilling(ctx context.Context, id int64) error {
	if err := s.repo.DeleteBilling(ctx, id); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}

func (s *billingService) DeleteBillings(ctx context.Context, ids []int64) error {
	if err := s.repo.DeleteBillings(ctx, ids); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}
