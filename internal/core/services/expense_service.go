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

// expenseService implements the expense CRUD surface.
type expenseService struct {
	BaseService
	repo        portsrepo.ExpenseRepositoryFacade
	strictMoney bool
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, cache portssvc.DashboardCache, strictMoney bool) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: BaseService{Cache: cache},
		repo:        repo,
		strictMoney: strictMoney,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if s.strictMoney && req.Amount != "" && !money.IsValid(req.Amount) {
		return nil, fmt.Errorf("%w: amount must be numeric", apperrors.ErrValidation)
	}

	now := time.Now()
	expense := domain.Expense{
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Month:         req.Month,
		Year:          req.Year,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.repo.SaveExpense(ctx, expense)
	if err != nil {
		s.LogError(ctx, err, "Failed to save expense")
		return nil, err
	}

	s.InvalidateDashboard()
	s.LogInfo(ctx, "Expense created",
		slog.Int64("expense_id", created.ID),
		slog.String("category", created.Category))
	return created, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, id int64) (*domain.Expense, error) {
	return s.repo.FindExpenseByID(ctx, id)
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	return s.repo.FindExpenses(ctx)
}

func (s *expenseService) UpdateExpense(ctx context.Context, id int64, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.repo.FindExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		if s.strictMoney && *req.Amount != "" && !money.IsValid(*req.Amount) {
			return nil, fmt.Errorf("%w: amount must be numeric", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.Month != nil {
		expense.Month = *req.Month
	}
	if req.Year != nil {
		expense.Year = *req.Year
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.PaymentMethod != nil {
		expense.PaymentMethod = req.PaymentMethod
	}
	if req.Notes != nil {
		expense.Notes = req.Notes
	}
	expense.LastUpdatedAt = time.Now()

	if err := s.repo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.Int64("expense_id", id))
		return nil, err
	}

	s.InvalidateDashboard()
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id int64) error {
	if err := s.repo.DeleteExpense(ctx, id); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}

func (s *expenseService) DeleteExpenses(ctx context.Context, ids []int64) error {
	if err := s.repo.DeleteExpenses(ctx, ids); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}
