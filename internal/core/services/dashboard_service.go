package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
	portsrepo "github.com/nordpeak/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/nordpeak/backoffice_app/internal/core/ports/services"
)

// dashboardService fetches the entity collections, applies the period filter
// and runs the aggregation.
type dashboardService struct {
	BaseService
	employeeRepo     portsrepo.EmployeeReader
	projectRepo      portsrepo.ProjectReader
	billingRepo      portsrepo.BillingReader
	partnerRepo      portsrepo.PartnerReader
	bonusRepo        portsrepo.BonusReader
	expenseRepo      portsrepo.ExpenseReader
	distributionRepo portsrepo.DistributionReader
	strictMoney      bool
}

// NewDashboardService creates a new dashboard service. The cache may be nil,
// in which case every request re-aggregates.
func NewDashboardService(repos portsrepo.RepositoryProvider, cache portssvc.DashboardCache, strictMoney bool) portssvc.DashboardSvc {
	return &dashboardService{
		BaseService:      BaseService{Cache: cache},
		employeeRepo:     repos.EmployeeRepo,
		projectRepo:      repos.ProjectRepo,
		billingRepo:      repos.BillingRepo,
		partnerRepo:      repos.PartnerRepo,
		bonusRepo:        repos.BonusRepo,
		expenseRepo:      repos.ExpenseRepo,
		distributionRepo: repos.DistributionRepo,
		strictMoney:      strictMoney,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// GetDashboardData implements the dashboard contract: both month and year must
// be present for period filtering to apply, otherwise the full collections are
// aggregated. Employees, projects and partners are never period-filtered.
func (s *dashboardService) GetDashboardData(ctx context.Context, month string, year int) (*domain.DashboardData, error) {
	periodSet := month != "" && year != 0
	if !periodSet {
		// One parameter without the other applies no filtering.
		month, year = "", 0
	}

	key := cacheKey(month, year)
	if s.Cache != nil {
		if data, ok := s.Cache.Get(key); ok {
			return data, nil
		}
	}

	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	projects, err := s.projectRepo.FindProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	billings, err := s.billingRepo.FindBillings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch billings: %w", err)
	}
	expenses, err := s.expenseRepo.FindExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}
	partners, err := s.partnerRepo.FindPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch partners: %w", err)
	}
	distributions, err := s.distributionRepo.FindDistributions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profit distributions: %w", err)
	}
	bonuses, err := s.bonusRepo.FindBonuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bonuses: %w", err)
	}

	if periodSet {
		billings = filterBillings(billings, month, year)
		expenses = filterExpenses(expenses, month, year)
		bonuses = filterBonuses(bonuses, month, year)
		distributions = filterDistributions(distributions, month, year)
	}

	data, err := s.aggregate(ctx, DashboardInput{
		Employees:     employees,
		Projects:      projects,
		Billings:      billings,
		Expenses:      expenses,
		Partners:      partners,
		Distributions: distributions,
		Bonuses:       bonuses,
		Month:         month,
		Year:          year,
		Strict:        s.strictMoney,
	})
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Set(key, data)
	}

	s.LogInfo(ctx, "Dashboard data aggregated",
		slog.String("month", month),
		slog.Int("year", year),
		slog.Int("billing_count", len(billings)),
		slog.Int("expense_count", len(expenses)))
	return data, nil
}

// aggregate runs the pure aggregation with a panic guard: any unexpected
// failure degrades to the all-zero payload instead of a 500. Strict-mode
// validation errors are still surfaced.
func (s *dashboardService) aggregate(ctx context.Context, in DashboardInput) (data *domain.DashboardData, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.LogError(ctx, fmt.Errorf("panic: %v", r), "Dashboard aggregation panicked, serving empty payload")
			data, err = EmptyDashboardData(), nil
		}
	}()
	return PrepareDashboardData(in)
}

func cacheKey(month string, year int) string {
	if month == "" && year == 0 {
		return "all"
	}
	return fmt.Sprintf("%s-%d", month, year)
}

func filterBillings(billings []domain.Billing, month string, year int) []domain.Billing {
	out := make([]domain.Billing, 0, len(billings))
	for _, b := range billings {
		if b.Month == month && b.Year == year {
			out = append(out, b)
		}
	}
	return out
}

func filterExpenses(expenses []domain.Expense, month string, year int) []domain.Expense {
	out := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Month == month && e.Year == year {
			out = append(out, e)
		}
	}
	return out
}

func filterBonuses(bonuses []domain.Bonus, month string, year int) []domain.Bonus {
	out := make([]domain.Bonus, 0, len(bonuses))
	for _, b := range bonuses {
		if b.Month == month && b.Year == year {
			out = append(out, b)
		}
	}
	return out
}

func filterDistributions(dists []domain.ProfitDistribution, month string, year int) []domain.ProfitDistribution {
	out := make([]domain.ProfitDistribution, 0, len(dists))
	for _, d := range dists {
		if d.Month == month && d.Year == year {
			out = append(out, d)
		}
	}
	return out
}
