package services

import (
	"fmt"

	"github.com/nordpeak/backoffice_app/internal/apperrors"
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// dashboardRecentLimit caps the recent-projects, recent-employees and
// bonus-widget lists on the dashboard.
const dashboardRecentLimit = 3

// DashboardInput carries the entity collections to aggregate. The caller is
// responsible for any period filtering; the aggregator sums whatever it is
// given. Month/Year describe the period the collections were filtered to and
// are only used to match recorded profit distributions; both zero means the
// dashboard is unfiltered.
type DashboardInput struct {
	Employees     []domain.Employee
	Projects      []domain.Project
	Billings      []domain.Billing
	Expenses      []domain.Expense
	Partners      []domain.Partner
	Distributions []domain.ProfitDistribution
	Bonuses       []domain.Bonus
	Month         string
	Year          int

	// Strict makes unparseable monetary fields an error instead of zero.
	Strict bool
}

// PrepareDashboardData aggregates the given collections into the dashboard
// summary. It is pure and side-effect free. In lenient mode (the default) it
// never fails: blank or non-numeric amounts contribute exactly zero. In strict
// mode the first unparseable amount aborts with a validation error.
func PrepareDashboardData(in DashboardInput) (*domain.DashboardData, error) {
	totalRevenue, err := sumBillingAmounts(in.Billings, in.Strict)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := sumExpenseAmounts(in.Expenses, in.Strict)
	if err != nil {
		return nil, err
	}

	profit := totalRevenue.Sub(totalExpenses)

	expenseRatio := "0.00"
	if !totalRevenue.IsZero() {
		expenseRatio = totalExpenses.Div(totalRevenue).Mul(decimal.NewFromInt(100)).StringFixed(2)
	}

	activeProjectCount := 0
	for _, p := range in.Projects {
		if p.IsActive() {
			activeProjectCount++
		}
	}

	breakdown, err := expenseBreakdown(in.Expenses, in.Strict)
	if err != nil {
		return nil, err
	}

	chart, err := revenueChart(in.Billings, in.Expenses, in.Strict)
	if err != nil {
		return nil, err
	}

	distributions, err := partnerDistributions(in, profit)
	if err != nil {
		return nil, err
	}

	activeProjects := firstActiveProjects(in.Projects, dashboardRecentLimit)

	projectBonuses, err := projectBonuses(activeProjects, in.Bonuses, in.Employees, in.Strict)
	if err != nil {
		return nil, err
	}

	totalBonusPool, err := sumBonusAmounts(in.Bonuses, in.Strict)
	if err != nil {
		return nil, err
	}

	recentEmployees := in.Employees
	if len(recentEmployees) > dashboardRecentLimit {
		recentEmployees = recentEmployees[:dashboardRecentLimit]
	}
	if recentEmployees == nil {
		recentEmployees = []domain.Employee{}
	}

	return &domain.DashboardData{
		Metrics: domain.DashboardMetrics{
			TotalRevenue:       totalRevenue,
			TotalExpenses:      totalExpenses,
			Profit:             profit,
			ExpenseRatio:       expenseRatio,
			EmployeeCount:      len(in.Employees),
			ProjectCount:       len(in.Projects),
			ActiveProjectCount: activeProjectCount,
		},
		RecentProjects:       activeProjects,
		RevenueChartData:     chart,
		ExpenseBreakdown:     breakdown,
		PartnerDistributions: distributions,
		ProjectBonuses:       projectBonuses,
		RecentEmployees:      recentEmployees,
		TotalBonusPool:       totalBonusPool,
	}, nil
}

// EmptyDashboardData returns the all-zero fallback payload served when the
// aggregation cannot be completed.
func EmptyDashboardData() *domain.DashboardData {
	return &domain.DashboardData{
		Metrics:              domain.DashboardMetrics{ExpenseRatio: "0.00"},
		RecentProjects:       []domain.Project{},
		RevenueChartData:     []domain.RevenueChartPoint{},
		ExpenseBreakdown:     []domain.CategoryTotal{},
		PartnerDistributions: []domain.PartnerDistribution{},
		ProjectBonuses:       []domain.ProjectBonus{},
		RecentEmployees:      []domain.Employee{},
	}
}

func parseAmount(raw, what string, id int64, strict bool) (decimal.Decimal, error) {
	v, ok := money.Parse(raw)
	if !ok {
		if strict {
			return decimal.Zero, fmt.Errorf("%w: %s %d has non-numeric amount %q", apperrors.ErrValidation, what, id, raw)
		}
		return decimal.Zero, nil
	}
	return v, nil
}

func sumBillingAmounts(billings []domain.Billing, strict bool) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, b := range billings {
		v, err := parseAmount(b.Amount, "billing", b.ID, strict)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	return total, nil
}

func sumExpenseAmounts(expenses []domain.Expense, strict bool) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range expenses {
		v, err := parseAmount(e.Amount, "expense", e.ID, strict)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	return total, nil
}

func sumBonusAmounts(bonuses []domain.Bonus, strict bool) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, b := range bonuses {
		v, err := parseAmount(b.Amount, "bonus", b.ID, strict)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	return total, nil
}

// expenseBreakdown groups expenses by category in first-seen order. Blank
// categories fall under "Uncategorized".
func expenseBreakdown(expenses []domain.Expense, strict bool) ([]domain.CategoryTotal, error) {
	breakdown := []domain.CategoryTotal{}
	index := map[string]int{}
	for _, e := range expenses {
		name := e.Category
		if name == "" {
			name = "Uncategorized"
		}
		v, err := parseAmount(e.Amount, "expense", e.ID, strict)
		if err != nil {
			return nil, err
		}
		if i, seen := index[name]; seen {
			breakdown[i].Value = breakdown[i].Value.Add(v)
			continue
		}
		index[name] = len(breakdown)
		breakdown = append(breakdown, domain.CategoryTotal{Name: name, Value: v})
	}
	return breakdown, nil
}

// revenueChart emits one point per distinct (month, year) present in the
// billing set, in first-occurrence order. Callers needing chronological order
// must sort afterwards.
func revenueChart(billings []domain.Billing, expenses []domain.Expense, strict bool) ([]domain.RevenueChartPoint, error) {
	type period struct {
		month string
		year  int
	}
	seen := map[period]bool{}
	periods := []period{}
	for _, b := range billings {
		p := period{b.Month, b.Year}
		if !seen[p] {
			seen[p] = true
			periods = append(periods, p)
		}
	}

	chart := make([]domain.RevenueChartPoint, 0, len(periods))
	for _, p := range periods {
		revenue := decimal.Zero
		for _, b := range billings {
			if b.Month != p.month || b.Year != p.year {
				continue
			}
			v, err := parseAmount(b.Amount, "billing", b.ID, strict)
			if err != nil {
				return nil, err
			}
			revenue = revenue.Add(v)
		}
		expensesTotal := decimal.Zero
		for _, e := range expenses {
			if e.Month != p.month || e.Year != p.year {
				continue
			}
			v, err := parseAmount(e.Amount, "expense", e.ID, strict)
			if err != nil {
				return nil, err
			}
			expensesTotal = expensesTotal.Add(v)
		}
		chart = append(chart, domain.RevenueChartPoint{
			Month:    p.month,
			Year:     p.year,
			Revenue:  revenue,
			Expenses: expensesTotal,
			Profit:   revenue.Sub(expensesTotal),
		})
	}
	return chart, nil
}

// partnerDistributions computes each partner's cut of the period profit. A
// recorded ProfitDistribution matching (partner, month, year) takes precedence
// over the live share calculation; with no period filter there is nothing to
// match and the live calculation always applies.
func partnerDistributions(in DashboardInput, profit decimal.Decimal) ([]domain.PartnerDistribution, error) {
	out := make([]domain.PartnerDistribution, 0, len(in.Partners))
	periodSet := in.Month != "" && in.Year != 0
	for _, p := range in.Partners {
		share, err := parseAmount(p.Share, "partner", p.ID, in.Strict)
		if err != nil {
			return nil, err
		}
		amount := profit.Mul(share).Div(decimal.NewFromInt(100)).Round(2)

		if periodSet {
			for _, d := range in.Distributions {
				if d.PartnerID != p.ID || d.Month != in.Month || d.Year != in.Year {
					continue
				}
				recorded, err := parseAmount(d.Amount, "profit distribution", d.ID, in.Strict)
				if err != nil {
					return nil, err
				}
				amount = recorded
				break
			}
		}

		out = append(out, domain.PartnerDistribution{
			PartnerID: p.ID,
			Name:      p.Name,
			Share:     p.Share,
			Amount:    amount,
		})
	}
	return out, nil
}

func firstActiveProjects(projects []domain.Project, limit int) []domain.Project {
	out := []domain.Project{}
	for _, p := range projects {
		if p.Status != domain.ProjectStatusActive {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// projectBonuses builds the bonus widget rows. Bonus totals span the entire
// bonus set handed in, regardless of the dashboard period.
func projectBonuses(projects []domain.Project, bonuses []domain.Bonus, employees []domain.Employee, strict bool) ([]domain.ProjectBonus, error) {
	managers := make(map[int64]string, len(employees))
	for _, e := range employees {
		managers[e.ID] = e.FullName()
	}

	out := make([]domain.ProjectBonus, 0, len(projects))
	for _, p := range projects {
		total := decimal.Zero
		for _, b := range bonuses {
			if b.ProjectID != p.ID {
				continue
			}
			v, err := parseAmount(b.Amount, "bonus", b.ID, strict)
			if err != nil {
				return nil, err
			}
			total = total.Add(v)
		}

		value, err := parseAmount(p.Value, "project", p.ID, strict)
		if err != nil {
			return nil, err
		}
		var roi int64
		if value.IsPositive() {
			roi = total.Div(value).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		}

		manager := "Unassigned"
		if p.ManagerID != nil {
			if name, ok := managers[*p.ManagerID]; ok {
				manager = name
			}
		}

		out = append(out, domain.ProjectBonus{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			Manager:     manager,
			Value:       p.Value,
			TotalBonus:  total,
			ROI:         roi,
		})
	}
	return out, nil
}
