package services_test

import (
	"testing"

	"github.com/nordpeak/backoffice_app/internal/apperrors"
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/nordpeak/backoffice_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestPrepareDashboardData_SumsSkipUnparseableAmounts(t *testing.T) {
	data, err := services.PrepareDashboardData(services.DashboardInput{
		Billings: []domain.Billing{
			{ID: 1, ProjectID: 1, Month: "January", Year: 2025, Amount: "1000.50"},
			{ID: 2, ProjectID: 1, Month: "January", Year: 2025, Amount: "abc"},
			{ID: 3, ProjectID: 1, Month: "January", Year: 2025, Amount: ""},
			{ID: 4, ProjectID: 1, Month: "January", Year: 2025, Amount: "499.50"},
		},
		Expenses: []domain.Expense{
			{ID: 1, Month: "January", Year: 2025, Amount: "100"},
			{ID: 2, Month: "January", Year: 2025, Amount: "not-a-number"},
		},
	})

	require.NoError(t, err)
	assert.True(t, data.Metrics.TotalRevenue.Equal(dec("1500.00")), "got %s", data.Metrics.TotalRevenue)
	assert.True(t, data.Metrics.TotalExpenses.Equal(dec("100")))
	assert.True(t, data.Metrics.Profit.Equal(dec("1400.00")))
}

func TestPrepareDashboardData_StrictModeRejectsUnparseableAmounts(t *testing.T) {
	_, err := services.PrepareDashboardData(services.DashboardInput{
		Billings: []domain.Billing{
			{ID: 7, ProjectID: 1, Month: "January", Year: 2025, Amount: "12,5"},
		},
		Strict: true,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPrepareDashboardData_ExpenseRatioZeroRevenue(t *testing.T) {
	data, err := services.PrepareDashboardData(services.DashboardInput{
		Expenses: []domain.Expense{
			{ID: 1, Month: "March", Year: 2025, Amount: "250"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "0.00", data.Metrics.ExpenseRatio)
}

func TestPrepareDashboardData_ExpenseRatioFormatted(t *testing.T) {
	data, err := services.PrepareDashboardData(services.DashboardInput{
		Billings: []domain.Billing{{ID: 1, ProjectID: 1, Month: "May", Year: 2025, Amount: "300"}},
		Expenses: []domain.Expense{{ID: 1, Month: "May", Year: 2025, Amount: "100"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "33.33", data.Metrics.ExpenseRatio)
}

func TestPrepareDashboardData_ActiveProjectCountIncludesInProgress(t *testing.T) {
	data, err := services.PrepareDashboardData(services.DashboardInput{
		Projects: []domain.Project{
			{ID: 1, Name: "A", Status: "Active"},
			{ID: 2, Name: "B", Status: "In Progress"},
			{ID: 3, Name: "C", Status: "Completed"},
			{ID: 4, Name: "D", Status: "active"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 4, data.Metrics.ProjectCount)
	assert.Equal(t, 2, data.Metrics.ActiveProjectCount)
}

func TestPrepareDashboardData_ExpenseBreakdownFirstSeenOrder(t *testing.T) {
	data, err := services.PrepareDashboardData(services.DashboardInput{
		Expenses: []domain.Expense{
			{ID: 1, Category: "Rent", Month: "June", Year: 2025, Amount: "1000"},
			{ID: 2, Category: "", Month: "June", Year: 2025, Amount: "50"},
			{ID: 3, Category: "Rent", Month: "June", Year: 2025, Amount: "200"},
			{ID: 4, Category: "Travel", Month: "June", Year: 2025, Amount: "75"},
		},
	})

	require.NoError(t, err)
	require.Len(t, data.ExpenseBreakdown, 3)
	assert.Equal(t, "Rent", data.ExpenseBreakdown[0].Name)
	assert.True(t, data.ExpenseBreakdown[0].Value.Equal(dec("1200")))
	assert.Equal(t, "Uncategorized", data.ExpenseBreakdown[1].Name)
	assert.Equal(t, "Travel", data.ExpenseBreakdown[2].Name)
}

func TestPrepareDashboardData_RevenueChartFirstOccurrenceOrder(t *testing.T) {
	data, err := services.PrepareDashboardData(services.DashboardInput{
		Billings: []domain.Billing{
			{ID: 1, ProjectID: 1, Month: "February", Year: 2025, Amount: "200"},
			{ID: 2, ProjectID: 1, Month: "January", Year: 2025, Amount: "100"},
			{ID: 3, ProjectID: 2, Month: "February", Year: 2025, Amount: "50"},
		},
		Expenses: []domain.Expense{
			{ID: 1, Month: "January", Year: 2025, Amount: "30"},
		},
	})

	require.NoError(t, err)
	require.Len(t, data.RevenueChartData, 2)
	assert.Equal(t, "February", data.RevenueChartData[0].Month)
	assert.True(t, data.RevenueChartData[0].Revenue.Equal(dec("250")))
	assert.True(t, data.RevenueChartData[0].Expenses.Equal(decimal.Zero))
	assert.Equal(t, "January", data.RevenueChartData[1].Month)
	assert.True(t, data.RevenueChartData[1].Profit.Equal(dec("70")))
}

func TestPrepareDashboardData_PartnerDistributionLiveCalculation(t *testing.T) {
	data, err := services.PrepareDashboardData(services.DashboardInput{
		Billings: []domain.Billing{{ID: 1, ProjectID: 1, Month: "April", Year: 2025, Amount: "1000"}},
		Partners: []domain.Partner{
			{ID: 1, Name: "Alex", Share: "60"},
			{ID: 2, Name: "Sam", Share: "40"},
		},
	})

	require.NoError(t, err)
	require.Len(t, data.PartnerDistributions, 2)
	assert.True(t, data.PartnerDistributions[0].Amount.Equal(dec("600")))
	assert.True(t, data.PartnerDistributions[1].Amount.Equal(dec("400")))
}

func TestPrepareDashboardData_RecordedDistributionOverridesLiveCalc(t *testing.T) {
	data, err := services.PrepareDashboardData(services.DashboardInput{
		Billings: []domain.Billing{{ID: 1, ProjectID: 1, Month: "April", Year: 2025, Amount: "1000"}},
		Partners: []domain.Partner{{ID: 1, Name: "Alex", Share: "50"}},
		Distributions: []domain.ProfitDistribution{
			{ID: 1, PartnerID: 1, Month: "April", Year: 2025, Amount: "123.45"},
			{ID: 2, PartnerID: 1, Month: "May", Year: 2025, Amount: "999"},
		},
		Month: "April",
		Year:  2025,
	})

	require.NoError(t, err)
	require.Len(t, data.PartnerDistributions, 1)
	assert.True(t, data.PartnerDistributions[0].Amount.Equal(dec("123.45")), "got %s", data.PartnerDistributions[0].Amount)
}

func TestPrepareDashboardData_RecentProjectsOnlyActiveStatusLimitThree(t *testing.T) {
	data, err := services.PrepareDashboardData(services.DashboardInput{
		Projects: []domain.Project{
			{ID: 1, Name: "A", Status: "Active"},
			{ID: 2, Name: "B", Status: "In Progress"},
			{ID: 3, Name: "C", Status: "Active"},
			{ID: 4, Name: "D", Status: "Active"},
			{ID: 5, Name: "E", Status: "Active"},
		},
	})

	require.NoError(t, err)
	require.Len(t, data.RecentProjects, 3)
	assert.Equal(t, int64(1), data.RecentProjects[0].ID)
	assert.Equal(t, int64(3), data.RecentProjects[1].ID)
	assert.Equal(t, int64(4), data.RecentProjects[2].ID)
}

func TestPrepareDashboardData_ProjectBonusROIAndManager(t *testing.T) {
	managerID := int64(9)
	data, err := services.PrepareDashboardData(services.DashboardInput{
		Employees: []domain.Employee{
			{ID: 9, FirstName: "Dana", LastName: "Reyes"},
		},
		Projects: []domain.Project{
			{ID: 1, Name: "Alpha", Status: "Active", Value: "10000", ManagerID: &managerID},
			{ID: 2, Name: "Beta", Status: "Active", Value: ""},
		},
		Bonuses: []domain.Bonus{
			{ID: 1, ProjectID: 1, EmployeeID: 9, Month: "March", Year: 2025, Amount: "250"},
			{ID: 2, ProjectID: 1, EmployeeID: 9, Month: "March", Year: 2025, Amount: "250"},
			{ID: 3, ProjectID: 2, EmployeeID: 9, Month: "March", Year: 2025, Amount: "100"},
		},
	})

	require.NoError(t, err)
	require.Len(t, data.ProjectBonuses, 2)

	alpha := data.ProjectBonuses[0]
	assert.Equal(t, "Dana Reyes", alpha.Manager)
	assert.True(t, alpha.TotalBonus.Equal(dec("500")))
	assert.Equal(t, int64(5), alpha.ROI)

	beta := data.ProjectBonuses[1]
	assert.Equal(t, "Unassigned", beta.Manager)
	assert.Equal(t, int64(0), beta.ROI)

	assert.True(t, data.TotalBonusPool.Equal(dec("600")))
}

func TestPrepareDashboardData_RecentEmployeesLimitThree(t *testing.T) {
	data, err := services.PrepareDashboardData(services.DashboardInput{
		Employees: []domain.Employee{
			{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 4, data.Metrics.EmployeeCount)
	require.Len(t, data.RecentEmployees, 3)
	assert.Equal(t, int64(1), data.RecentEmployees[0].ID)
}

func TestPrepareDashboardData_EmptyInputs(t *testing.T) {
	data, err := services.PrepareDashboardData(services.DashboardInput{})

	require.NoError(t, err)
	assert.True(t, data.Metrics.TotalRevenue.IsZero())
	assert.Equal(t, "0.00", data.Metrics.ExpenseRatio)
	assert.Empty(t, data.RecentProjects)
	assert.Empty(t, data.RevenueChartData)
	assert.Empty(t, data.ExpenseBreakdown)
	assert.Empty(t, data.PartnerDistributions)
	assert.Empty(t, data.ProjectBonuses)
	assert.Empty(t, data.RecentEmployees)
}

func TestEmptyDashboardData(t *testing.T) {
	data := services.EmptyDashboardData()

	assert.Equal(t, "0.00", data.Metrics.ExpenseRatio)
	assert.NotNil(t, data.RecentProjects)
	assert.NotNil(t, data.RevenueChartData)
	assert.NotNil(t, data.ExpenseBreakdown)
	assert.NotNil(t, data.PartnerDistributions)
	assert.NotNil(t, data.ProjectBonuses)
	assert.NotNil(t, data.RecentEmployees)
}
