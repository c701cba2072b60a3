package dto

import (
	"time"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to create an expense.
type CreateExpenseRequest struct {
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        string  `json:"amount"`
	Month         string  `json:"month" binding:"required,month"`
	Year          int     `json:"year" binding:"required,min=1000,max=9999"`
	Date          string  `json:"date" binding:"required"`
	PaymentMethod *string `json:"paymentMethod"`
	Notes         *string `json:"notes"`
}

// UpdateExpenseRequest defines a partial update; nil fields are left untouched.
type UpdateExpenseRequest struct {
	Category      *string `json:"category"`
	Description   *string `json:"description"`
	Amount        *string `json:"amount"`
	Month         *string `json:"month" binding:"omitempty,month"`
	Year          *int    `json:"year" binding:"omitempty,min=1000,max=9999"`
	Date          *string `json:"date"`
	PaymentMethod *string `json:"paymentMethod"`
	Notes         *string `json:"notes"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ID            int64     `json:"id"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	Month         string    `json:"month"`
	Year          int       `json:"year"`
	Date          string    `json:"date"`
	PaymentMethod *string   `json:"paymentMethod"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Category:      e.Category,
		Description:   e.Description,
		Amount:        e.Amount,
		Month:         e.Month,
		Year:          e.Year,
		Date:          e.Date,
		PaymentMethod: e.PaymentMethod,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to response DTOs.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
