package repositories

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// BonusReader defines read operations for bonus data
type BonusReader interface {
	FindBonusByID(ctx context.Context, id int64) (*domain.Bonus, error)
	FindBonuses(ctx context.Context) ([]domain.Bonus, error)
}

// BonusWriter defines write operations for bonus data
type BonusWriter interface {
	SaveBonus(ctx context.Context, bonus domain.Bonus) (*domain.Bonus, error)

	// SaveBonuses persists a batch of bonuses in a single transaction.
	// Either every row is created or none is.
	SaveBonuses(ctx context.Context, bonuses []domain.Bonus) ([]domain.Bonus, error)

	UpdateBonus(ctx context.Context, bonus domain.Bonus) error
	DeleteBonus(ctx context.Context, id int64) error
	DeleteBonuses(ctx context.Context, ids []int64) error
}

// BonusRepositoryFacade combines all bonus repository interfaces
type BonusRepositoryFacade interface {
	BonusReader
	BonusWriter
}
