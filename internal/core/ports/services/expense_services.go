package services

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/dto"
)

// ExpenseSvcFacade defines the expense service surface used by handlers.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, id int64) (*domain.Expense, error)
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, id int64, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
	DeleteExpenses(ctx context.Context, ids []int64) error
}
