package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/nordpeak/backoffice_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:     newPgxEmployeeRepository(dbPool),
		ProjectRepo:      newPgxProjectRepository(dbPool),
		BillingRepo:      newPgxBillingRepository(dbPool),
		PartnerRepo:      newPgxPartnerRepository(dbPool),
		BonusRepo:        newPgxBonusRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		DistributionRepo: newPgxDistributionRepository(dbPool),
	}
}
