package services_test

import (
	"context"
	"testing"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
	portsrepo "github.com/nordpeak/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/nordpeak/backoffice_app/internal/core/ports/services"
	"github.com/nordpeak/backoffice_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo     *MockEmployeeRepository
	mockProjectRepo      *MockProjectRepository
	mockBillingRepo      *MockBillingRepository
	mockPartnerRepo      *MockPartnerRepository
	mockBonusRepo        *MockBonusRepository
	mockExpenseRepo      *MockExpenseRepository
	mockDistributionRepo *MockDistributionRepository
	cache                portssvc.DashboardCache
	service              portssvc.DashboardSvc
	ctx                  context.Context
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockBillingRepo = new(MockBillingRepository)
	suite.mockPartnerRepo = new(MockPartnerRepository)
	suite.mockBonusRepo = new(MockBonusRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockDistributionRepo = new(MockDistributionRepository)
	suite.cache = services.NewDashboardCache()
	suite.service = services.NewDashboardService(portsrepo.RepositoryProvider{
		EmployeeRepo:     suite.mockEmployeeRepo,
		ProjectRepo:      suite.mockProjectRepo,
		BillingRepo:      suite.mockBillingRepo,
		PartnerRepo:      suite.mockPartnerRepo,
		BonusRepo:        suite.mockBonusRepo,
		ExpenseRepo:      suite.mockExpenseRepo,
		DistributionRepo: suite.mockDistributionRepo,
	}, suite.cache, false)
	suite.ctx = context.Background()
}

func (suite *DashboardServiceTestSuite) expectAllFetchesOnce(
	employees []domain.Employee,
	projects []domain.Project,
	billings []domain.Billing,
	expenses []domain.Expense,
	partners []domain.Partner,
	distributions []domain.ProfitDistribution,
	bonuses []domain.Bonus,
) {
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return(employees, nil).Once()
	suite.mockProjectRepo.On("FindProjects", suite.ctx).Return(projects, nil).Once()
	suite.mockBillingRepo.On("FindBillings", suite.ctx).Return(billings, nil).Once()
	suite.mockExpenseRepo.On("FindExpenses", suite.ctx).Return(expenses, nil).Once()
	suite.mockPartnerRepo.On("FindPartners", suite.ctx).Return(partners, nil).Once()
	suite.mockDistributionRepo.On("FindDistributions", suite.ctx).Return(distributions, nil).Once()
	suite.mockBonusRepo.On("FindBonuses", suite.ctx).Return(bonuses, nil).Once()
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_Unfiltered() {
	suite.expectAllFetchesOnce(
		[]domain.Employee{{ID: 1, FirstName: "Ana", LastName: "Petrova"}},
		[]domain.Project{{ID: 1, Name: "Alpha", Status: "Active"}},
		[]domain.Billing{
			{ID: 1, ProjectID: 1, Month: "January", Year: 2025, Amount: "100"},
			{ID: 2, ProjectID: 1, Month: "February", Year: 2025, Amount: "200"},
		},
		[]domain.Expense{{ID: 1, Month: "January", Year: 2025, Amount: "50"}},
		[]domain.Partner{},
		[]domain.ProfitDistribution{},
		[]domain.Bonus{},
	)

	data, err := suite.service.GetDashboardData(suite.ctx, "", 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "300", data.Metrics.TotalRevenue.String())
	assert.Equal(suite.T(), "250", data.Metrics.Profit.String())
	assert.Len(suite.T(), data.RevenueChartData, 2)
	suite.mockBillingRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_PeriodFilterApplied() {
	suite.expectAllFetchesOnce(
		[]domain.Employee{},
		[]domain.Project{},
		[]domain.Billing{
			{ID: 1, ProjectID: 1, Month: "January", Year: 2025, Amount: "100"},
			{ID: 2, ProjectID: 1, Month: "February", Year: 2025, Amount: "200"},
			{ID: 3, ProjectID: 1, Month: "January", Year: 2024, Amount: "400"},
		},
		[]domain.Expense{
			{ID: 1, Month: "January", Year: 2025, Amount: "30"},
			{ID: 2, Month: "March", Year: 2025, Amount: "70"},
		},
		[]domain.Partner{},
		[]domain.ProfitDistribution{},
		[]domain.Bonus{},
	)

	data, err := suite.service.GetDashboardData(suite.ctx, "January", 2025)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "100", data.Metrics.TotalRevenue.String())
	assert.Equal(suite.T(), "30", data.Metrics.TotalExpenses.String())
	assert.Len(suite.T(), data.RevenueChartData, 1)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_MonthWithoutYearIsUnfiltered() {
	suite.expectAllFetchesOnce(
		[]domain.Employee{},
		[]domain.Project{},
		[]domain.Billing{
			{ID: 1, ProjectID: 1, Month: "January", Year: 2025, Amount: "100"},
			{ID: 2, ProjectID: 1, Month: "February", Year: 2025, Amount: "200"},
		},
		[]domain.Expense{},
		[]domain.Partner{},
		[]domain.ProfitDistribution{},
		[]domain.Bonus{},
	)

	data, err := suite.service.GetDashboardData(suite.ctx, "January", 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "300", data.Metrics.TotalRevenue.String())
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_SecondCallServedFromCache() {
	suite.expectAllFetchesOnce(
		[]domain.Employee{},
		[]domain.Project{},
		[]domain.Billing{{ID: 1, ProjectID: 1, Month: "May", Year: 2025, Amount: "500"}},
		[]domain.Expense{},
		[]domain.Partner{},
		[]domain.ProfitDistribution{},
		[]domain.Bonus{},
	)

	first, err := suite.service.GetDashboardData(suite.ctx, "May", 2025)
	assert.NoError(suite.T(), err)

	second, err := suite.service.GetDashboardData(suite.ctx, "May", 2025)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), first, second)

	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockBillingRepo.AssertExpectations(suite.T())
	suite.mockBonusRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_FetchErrorPropagates() {
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return([]domain.Employee{}, nil).Once()
	suite.mockProjectRepo.On("FindProjects", suite.ctx).Return(nil, assert.AnError).Once()

	data, err := suite.service.GetDashboardData(suite.ctx, "", 0)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), data)
	assert.Contains(suite.T(), err.Error(), "failed to fetch projects")
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
