package services_test

import (
	"context"
	"testing"

	"github.com/nordpeak/backoffice_app/internal/apperrors"
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	portssvc "github.com/nordpeak/backoffice_app/internal/core/ports/services"
	"github.com/nordpeak/backoffice_app/internal/core/services"
	"github.com/nordpeak/backoffice_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BonusServiceTestSuite struct {
	suite.Suite
	mockBonusRepo    *MockBonusRepository
	mockProjectRepo  *MockProjectRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockBillingRepo  *MockBillingRepository
	service          portssvc.BonusSvcFacade
	ctx              context.Context
}

func (suite *BonusServiceTestSuite) SetupTest() {
	suite.mockBonusRepo = new(MockBonusRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockBillingRepo = new(MockBillingRepository)
	suite.service = services.NewBonusService(
		suite.mockBonusRepo,
		suite.mockProjectRepo,
		suite.mockEmployeeRepo,
		suite.mockBillingRepo,
		services.NewDashboardCache(),
		false,
	)
	suite.ctx = context.Background()
}

func (suite *BonusServiceTestSuite) TestCreateBonus_Success() {
	req := dto.CreateBonusRequest{
		ProjectID:  1,
		EmployeeID: 2,
		Month:      "March",
		Year:       2025,
		Amount:     "500.00",
		Percentage: "5",
	}
	expected := &domain.Bonus{ID: 10, ProjectID: 1, EmployeeID: 2, Month: "March", Year: 2025, Amount: "500.00", Status: domain.BonusPending}

	suite.mockBonusRepo.On("SaveBonus", suite.ctx, mock.AnythingOfType("domain.Bonus")).Return(expected, nil).Once()

	created, err := suite.service.CreateBonus(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, created)
	saved := suite.mockBonusRepo.Calls[0].Arguments.Get(1).(domain.Bonus)
	assert.Equal(suite.T(), domain.BonusPending, saved.Status)
	suite.mockBonusRepo.AssertExpectations(suite.T())
}

func (suite *BonusServiceTestSuite) TestCalculateQuarterlyBonuses_InvalidQuarter() {
	for _, quarter := range []int{0, 5, -1} {
		bonuses, err := suite.service.CalculateQuarterlyBonuses(suite.ctx, dto.CalculateQuarterlyBonusesRequest{
			Quarter: quarter,
			Year:    2025,
		})

		assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
		assert.Nil(suite.T(), bonuses)
	}
	suite.mockBonusRepo.AssertNotCalled(suite.T(), "SaveBonuses")
}

func (suite *BonusServiceTestSuite) TestCalculateQuarterlyBonuses_Success() {
	suite.mockProjectRepo.On("FindProjects", suite.ctx).Return([]domain.Project{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Beta"},
	}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return([]domain.Employee{
		{ID: 7, FirstName: "Dana"},
		{ID: 8, FirstName: "Lee"},
	}, nil).Once()
	suite.mockBillingRepo.On("FindBillings", suite.ctx).Return([]domain.Billing{
		{ID: 1, ProjectID: 1, Month: "April", Year: 2025, Amount: "1000"},
		{ID: 2, ProjectID: 1, Month: "June", Year: 2025, Amount: "500"},
		{ID: 3, ProjectID: 1, Month: "July", Year: 2025, Amount: "9999"},
		{ID: 4, ProjectID: 2, Month: "May", Year: 2025, Amount: "2000"},
		{ID: 5, ProjectID: 2, Month: "May", Year: 2024, Amount: "7777"},
	}, nil).Once()

	var saved []domain.Bonus
	suite.mockBonusRepo.On("SaveBonuses", suite.ctx, mock.AnythingOfType("[]domain.Bonus")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.Bonus)
		}).
		Return([]domain.Bonus{}, nil).Once()

	_, err := suite.service.CalculateQuarterlyBonuses(suite.ctx, dto.CalculateQuarterlyBonusesRequest{
		Quarter: 2,
		Year:    2025,
		Percentages: map[string]string{
			"7-1": "10",
			"8-2": "2.5",
		},
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), saved, 2)

	first := saved[0]
	assert.Equal(suite.T(), int64(7), first.EmployeeID)
	assert.Equal(suite.T(), int64(1), first.ProjectID)
	assert.Equal(suite.T(), "150.00", first.Amount)
	assert.Equal(suite.T(), "June", first.Month)
	assert.Equal(suite.T(), 2025, first.Year)
	assert.Equal(suite.T(), domain.BonusPending, first.Status)

	second := saved[1]
	assert.Equal(suite.T(), int64(8), second.EmployeeID)
	assert.Equal(suite.T(), int64(2), second.ProjectID)
	assert.Equal(suite.T(), "50.00", second.Amount)

	suite.mockBonusRepo.AssertExpectations(suite.T())
}

func (suite *BonusServiceTestSuite) TestCalculateQuarterlyBonuses_SkipRules() {
	suite.mockProjectRepo.On("FindProjects", suite.ctx).Return([]domain.Project{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Beta"},
	}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return([]domain.Employee{
		{ID: 7}, {ID: 8},
	}, nil).Once()
	suite.mockBillingRepo.On("FindBillings", suite.ctx).Return([]domain.Billing{
		{ID: 1, ProjectID: 1, Month: "January", Year: 2025, Amount: "1000"},
	}, nil).Once()

	var saved []domain.Bonus
	suite.mockBonusRepo.On("SaveBonuses", suite.ctx, mock.AnythingOfType("[]domain.Bonus")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.Bonus)
		}).
		Return([]domain.Bonus{}, nil).Once()

	_, err := suite.service.CalculateQuarterlyBonuses(suite.ctx, dto.CalculateQuarterlyBonusesRequest{
		Quarter:     1,
		Year:        2025,
		EmployeeIDs: []int64{7},
		Percentages: map[string]string{
			"7-1":   "10", // kept
			"8-1":   "10", // employee outside restriction
			"7-2":   "10", // project has no billing in the quarter
			"bogus": "10", // unparseable key
			"7-x":   "10", // unparseable project id
		},
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), saved, 1)
	assert.Equal(suite.T(), int64(7), saved[0].EmployeeID)
	assert.Equal(suite.T(), int64(1), saved[0].ProjectID)
	assert.Equal(suite.T(), "100.00", saved[0].Amount)
}

func (suite *BonusServiceTestSuite) TestCalculateQuarterlyBonuses_NonPositivePercentagesSkipped() {
	suite.mockProjectRepo.On("FindProjects", suite.ctx).Return([]domain.Project{{ID: 1}}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return([]domain.Employee{{ID: 7}}, nil).Once()
	suite.mockBillingRepo.On("FindBillings", suite.ctx).Return([]domain.Billing{
		{ID: 1, ProjectID: 1, Month: "October", Year: 2025, Amount: "1000"},
	}, nil).Once()

	bonuses, err := suite.service.CalculateQuarterlyBonuses(suite.ctx, dto.CalculateQuarterlyBonusesRequest{
		Quarter: 4,
		Year:    2025,
		Percentages: map[string]string{
			"7-1": "0",
			"7-2": "-5",
			"8-1": "abc",
		},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []domain.Bonus{}, bonuses)
	suite.mockBonusRepo.AssertNotCalled(suite.T(), "SaveBonuses")
}

func (suite *BonusServiceTestSuite) TestCalculateQuarterlyBonuses_SaveErrorPropagates() {
	suite.mockProjectRepo.On("FindProjects", suite.ctx).Return([]domain.Project{{ID: 1}}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return([]domain.Employee{{ID: 7}}, nil).Once()
	suite.mockBillingRepo.On("FindBillings", suite.ctx).Return([]domain.Billing{
		{ID: 1, ProjectID: 1, Month: "January", Year: 2025, Amount: "1000"},
	}, nil).Once()
	suite.mockBonusRepo.On("SaveBonuses", suite.ctx, mock.AnythingOfType("[]domain.Bonus")).Return(nil, assert.AnError).Once()

	bonuses, err := suite.service.CalculateQuarterlyBonuses(suite.ctx, dto.CalculateQuarterlyBonusesRequest{
		Quarter:     1,
		Year:        2025,
		Percentages: map[string]string{"7-1": "10"},
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), bonuses)
	suite.mockBonusRepo.AssertExpectations(suite.T())
}

func (suite *BonusServiceTestSuite) TestCalculateQuarterlyBonuses_StrictModeRejectsBadBillingAmount() {
	strictService := services.NewBonusService(
		suite.mockBonusRepo,
		suite.mockProjectRepo,
		suite.mockEmployeeRepo,
		suite.mockBillingRepo,
		services.NewDashboardCache(),
		true,
	)
	suite.mockProjectRepo.On("FindProjects", suite.ctx).Return([]domain.Project{{ID: 1}}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployees", suite.ctx).Return([]domain.Employee{{ID: 7}}, nil).Once()
	suite.mockBillingRepo.On("FindBillings", suite.ctx).Return([]domain.Billing{
		{ID: 1, ProjectID: 1, Month: "January", Year: 2025, Amount: "oops"},
	}, nil).Once()

	bonuses, err := strictService.CalculateQuarterlyBonuses(suite.ctx, dto.CalculateQuarterlyBonusesRequest{
		Quarter:     1,
		Year:        2025,
		Percentages: map[string]string{"7-1": "10"},
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), bonuses)
}

func (suite *BonusServiceTestSuite) TestDeleteBonus_RepoErrorPropagates() {
	suite.mockBonusRepo.On("DeleteBonus", suite.ctx, int64(3)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteBonus(suite.ctx, int64(3))

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockBonusRepo.AssertExpectations(suite.T())
}

func TestBonusServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BonusServiceTestSuite))
}
