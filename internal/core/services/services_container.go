package services

import (
	portsrepo "github.com/nordpeak/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/nordpeak/backoffice_app/internal/core/ports/services"
	"github.com/nordpeak/backoffice_app/pkg/config"
)

// NewServiceContainer wires every service with its repositories and the shared
// dashboard cache. Mutating services invalidate the cache through it.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	cache := NewDashboardCache()
	strict := cfg.StrictMoney

	return &portssvc.ServiceContainer{
		Employee:     NewEmployeeService(repos.EmployeeRepo, cache, strict),
		Project:      NewProjectService(repos.ProjectRepo, cache, strict),
		Billing:      NewBillingService(repos.BillingRepo, cache, strict),
		Partner:      NewPartnerService(repos.PartnerRepo, cache, strict),
		Bonus:        NewBonusService(repos.BonusRepo, repos.ProjectRepo, repos.EmployeeRepo, repos.BillingRepo, cache, strict),
		Expense:      NewExpenseService(repos.ExpenseRepo, cache, strict),
		Distribution: NewDistributionService(repos.DistributionRepo, repos.PartnerRepo, cache, strict),
		Dashboard:    NewDashboardService(repos, cache, strict),
	}
}
