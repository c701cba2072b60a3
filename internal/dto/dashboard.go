package dto

import (
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardQueryParams binds the optional period filter. Both month and year
// must be present for filtering to apply; one without the other is ignored.
type DashboardQueryParams struct {
	Month string `form:"month" binding:"omitempty,month"`
	Year  int    `form:"year" binding:"omitempty,min=1000,max=9999"`
}

// DashboardMetricsResponse is the headline metric block.
type DashboardMetricsResponse struct {
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	Profit             decimal.Decimal `json:"profit"`
	ExpenseRatio       string          `json:"expenseRatio"`
	EmployeeCount      int             `json:"employeeCount"`
	ProjectCount       int             `json:"projectCount"`
	ActiveProjectCount int             `json:"activeProjectCount"`
}

// RevenueChartPointResponse is one period of the revenue time series.
type RevenueChartPointResponse struct {
	Month    string          `json:"month"`
	Year     int             `json:"year"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// ExpenseBreakdownResponse is one slice of the expense breakdown.
type ExpenseBreakdownResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// PartnerDistributionResponse is one partner's cut of the period profit.
type PartnerDistributionResponse struct {
	PartnerID int64           `json:"partnerId"`
	Name      string          `json:"name"`
	Share     string          `json:"share"`
	Amount    decimal.Decimal `json:"amount"`
}

// ProjectBonusResponse is one row of the dashboard bonus widget.
type ProjectBonusResponse struct {
	ProjectID   int64           `json:"projectId"`
	ProjectName string          `json:"projectName"`
	Manager     string          `json:"manager"`
	Value       string          `json:"value"`
	TotalBonus  decimal.Decimal `json:"totalBonus"`
	ROI         int64           `json:"roi"`
}

// DashboardResponse is the dashboard endpoint payload.
type DashboardResponse struct {
	Metrics              DashboardMetricsResponse      `json:"metrics"`
	RecentProjects       []ProjectResponse             `json:"recentProjects"`
	RevenueChartData     []RevenueChartPointResponse   `json:"revenueChartData"`
	ExpenseBreakdown     []ExpenseBreakdownResponse    `json:"expenseBreakdown"`
	PartnerDistributions []PartnerDistributionResponse `json:"partnerDistributions"`
	ProjectBonuses       []ProjectBonusResponse        `json:"projectBonuses"`
	RecentEmployees      []EmployeeResponse            `json:"recentEmployees"`
	TotalBonusPool       decimal.Decimal               `json:"totalBonusPool"`
}

// ToDashboardResponse converts aggregated domain data to the response DTO.
func ToDashboardResponse(d *domain.DashboardData) DashboardResponse {
	resp := DashboardResponse{
		Metrics: DashboardMetricsResponse{
			TotalRevenue:       d.Metrics.TotalRevenue,
			TotalExpenses:      d.Metrics.TotalExpenses,
			Profit:             d.Metrics.Profit,
			ExpenseRatio:       d.Metrics.ExpenseRatio,
			EmployeeCount:      d.Metrics.EmployeeCount,
			ProjectCount:       d.Metrics.ProjectCount,
			ActiveProjectCount: d.Metrics.ActiveProjectCount,
		},
		RecentProjects:       ToListProjectResponse(d.RecentProjects),
		RevenueChartData:     make([]RevenueChartPointResponse, len(d.RevenueChartData)),
		ExpenseBreakdown:     make([]ExpenseBreakdownResponse, len(d.ExpenseBreakdown)),
		PartnerDistributions: make([]PartnerDistributionResponse, len(d.PartnerDistributions)),
		ProjectBonuses:       make([]ProjectBonusResponse, len(d.ProjectBonuses)),
		RecentEmployees:      ToListEmployeeResponse(d.RecentEmployees),
		TotalBonusPool:       d.TotalBonusPool,
	}

	for i, p := range d.RevenueChartData {
		resp.RevenueChartData[i] = RevenueChartPointResponse{
			Month:    p.Month,
			Year:     p.Year,
			Revenue:  p.Revenue,
			Expenses: p.Expenses,
			Profit:   p.Profit,
		}
	}
	for i, b := range d.ExpenseBreakdown {
		resp.ExpenseBreakdown[i] = ExpenseBreakdownResponse{Name: b.Name, Value: b.Value}
	}
	for i, p := range d.PartnerDistributions {
		resp.PartnerDistributions[i] = PartnerDistributionResponse{
			PartnerID: p.PartnerID,
			Name:      p.Name,
			Share:     p.Share,
			Amount:    p.Amount,
		}
	}
	for i, p := range d.ProjectBonuses {
		resp.ProjectBonuses[i] = ProjectBonusResponse{
			ProjectID:   p.ProjectID,
			ProjectName: p.ProjectName,
			Manager:     p.Manager,
			Value:       p.Value,
			TotalBonus:  p.TotalBonus,
			ROI:         p.ROI,
		}
	}

	return resp
}
