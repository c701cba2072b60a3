package services

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/dto"
)

// BonusCalculatorSvc computes and persists quarterly bonuses.
type BonusCalculatorSvc interface {
	// CalculateQuarterlyBonuses creates one Pending bonus per (employee, project)
	// key in the request's percentage map that survives the skip rules, dated to
	// the last month of the quarter. Creation is all-or-nothing.
	CalculateQuarterlyBonuses(ctx context.Context, req dto.CalculateQuarterlyBonusesRequest) ([]domain.Bonus, error)
}

// BonusSvcFacade combines bonus CRUD with the quarterly calculator.
type BonusSvcFacade interface {
	CreateBonus(ctx context.Context, req dto.CreateBonusRequest) (*domain.Bonus, error)
	GetBonusByID(ctx context.Context, id int64) (*domain.Bonus, error)
	ListBonuses(ctx context.Context) ([]domain.Bonus, error)
	UpdateBonus(ctx context.Context, id int64, req dto.UpdateBonusRequest) (*domain.Bonus, error)
	DeleteBonus(ctx context.Context, id int64) error
	DeleteBonuses(ctx context.Context, ids []int64) error

	BonusCalculatorSvc
}
