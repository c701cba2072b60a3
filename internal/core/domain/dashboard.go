package domain

import "github.com/shopspring/decimal"

// DashboardMetrics is the headline metric block of the dashboard summary.
// ExpenseRatio is pre-formatted to two decimal places ("0.00" when revenue is zero).
type DashboardMetrics struct {
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	Profit             decimal.Decimal `json:"profit"`
	ExpenseRatio       string          `json:"expenseRatio"`
	EmployeeCount      int             `json:"employeeCount"`
	ProjectCount       int             `json:"projectCount"`
	ActiveProjectCount int             `json:"activeProjectCount"`
}

// RevenueChartPoint is one period of the revenue/expense/profit time series.
// Points follow first-occurrence order of the periods in the billing set, not
// chronological order.
type RevenueChartPoint struct {
	Month    string          `json:"month"`
	Year     int             `json:"year"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// PartnerDistribution is a partner's computed cut of the period profit.
type PartnerDistribution struct {
	PartnerID int64           `json:"partnerId"`
	Name      string          `json:"name"`
	Share     string          `json:"share"`
	Amount    decimal.Decimal `json:"amount"`
}

// ProjectBonus is one row of the dashboard bonus widget: the accumulated bonus
// total for a project and its rounded percentage of the project value.
type ProjectBonus struct {
	ProjectID   int64           `json:"projectId"`
	ProjectName string          `json:"projectName"`
	Manager     string          `json:"manager"`
	Value       string          `json:"value"`
	TotalBonus  decimal.Decimal `json:"totalBonus"`
	ROI         int64           `json:"roi"`
}

// DashboardData is the aggregated dashboard summary.
type DashboardData struct {
	Metrics              DashboardMetrics      `json:"metrics"`
	RecentProjects       []Project             `json:"recentProjects"`
	RevenueChartData     []RevenueChartPoint   `json:"revenueChartData"`
	ExpenseBreakdown     []CategoryTotal       `json:"expenseBreakdown"`
	PartnerDistributions []PartnerDistribution `json:"partnerDistributions"`
	ProjectBonuses       []ProjectBonus        `json:"projectBonuses"`
	RecentEmployees      []Employee            `json:"recentEmployees"`
	TotalBonusPool       decimal.Decimal       `json:"totalBonusPool"`
}
