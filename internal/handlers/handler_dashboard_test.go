package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nordpeak/backoffice_app/internal/apperrors"
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	portssvc "github.com/nordpeak/backoffice_app/internal/core/ports/services"
	"github.com/nordpeak/backoffice_app/internal/dto"
	"github.com/nordpeak/backoffice_app/internal/handlers"
	"github.com/nordpeak/backoffice_app/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboardData(ctx context.Context, month string, year int) (*domain.DashboardData, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardData), args.Error(1)
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)

// --- Test Suite ---
type DashboardHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockDashboardService *MockDashboardService
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()

	suite.mockDashboardService = new(MockDashboardService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Dashboard: suite.mockDashboardService,
	})
}

func testDashboardData() *domain.DashboardData {
	return &domain.DashboardData{
		Metrics: domain.DashboardMetrics{
			TotalRevenue:       decimal.NewFromInt(1500),
			TotalExpenses:      decimal.NewFromInt(500),
			Profit:             decimal.NewFromInt(1000),
			ExpenseRatio:       "33.33",
			EmployeeCount:      2,
			ProjectCount:       1,
			ActiveProjectCount: 1,
		},
		RecentProjects:       []domain.Project{{ID: 1, Name: "Alpha", Status: "Active"}},
		RevenueChartData:     []domain.RevenueChartPoint{},
		ExpenseBreakdown:     []domain.CategoryTotal{{Name: "Rent", Value: decimal.NewFromInt(500)}},
		PartnerDistributions: []domain.PartnerDistribution{},
		ProjectBonuses:       []domain.ProjectBonus{},
		RecentEmployees:      []domain.Employee{},
	}
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard_Success() {
	suite.mockDashboardService.On("GetDashboardData", mock.Anything, "", 0).
		Return(testDashboardData(), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DashboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("33.33", resp.Metrics.ExpenseRatio)
	suite.Equal(2, resp.Metrics.EmployeeCount)
	suite.Require().Len(resp.RecentProjects, 1)
	suite.Equal("Alpha", resp.RecentProjects[0].Name)
	suite.mockDashboardService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard_PeriodPassedThrough() {
	suite.mockDashboardService.On("GetDashboardData", mock.Anything, "January", 2025).
		Return(testDashboardData(), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard?month=January&year=2025", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockDashboardService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard_InvalidMonth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard?month=Smarch&year=2025", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ValidationErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Validation failed", resp.Error)
	suite.Contains(resp.Fields, "Month")
	suite.mockDashboardService.AssertNotCalled(suite.T(), "GetDashboardData")
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard_InvalidYear() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard?month=January&year=99", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDashboardService.AssertNotCalled(suite.T(), "GetDashboardData")
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard_ValidationErrorFromService() {
	suite.mockDashboardService.On("GetDashboardData", mock.Anything, "", 0).
		Return(nil, fmt.Errorf("%w: billing 3 has non-numeric amount \"x\"", apperrors.ErrValidation)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDashboardService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard_ServiceError() {
	suite.mockDashboardService.On("GetDashboardData", mock.Anything, "", 0).
		Return(nil, fmt.Errorf("failed to fetch billings: connection refused")).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Failed to load dashboard data", resp.Error)
	suite.mockDashboardService.AssertExpectations(suite.T())
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
