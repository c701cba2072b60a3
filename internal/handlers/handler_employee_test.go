package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) GetEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, id int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeService) DeleteEmployees(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Test Suite ---
type EmployeeHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockEmployeeService *MockEmployeeService
}

func (suite *EmployeeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()

	suite.mockEmployeeService = new(MockEmployeeService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Employee: suite.mockEmployeeService,
	})
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee_Success() {
	expected := &domain.Employee{ID: 1, FirstName: "Ana", LastName: "Petrova", Department: "Engineering", Salary: "5200.00"}
	suite.mockEmployeeService.On("CreateEmployee", mock.Anything, mock.MatchedBy(func(req dto.CreateEmployeeRequest) bool {
		return req.FirstName == "Ana" && req.Salary == "5200.00"
	})).Return(expected, nil).Once()

	body, _ := json.Marshal(dto.CreateEmployeeRequest{
		FirstName:  "Ana",
		LastName:   "Petrova",
		Department: "Engineering",
		Salary:     "5200.00",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/employees", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EmployeeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.ID)
	suite.Equal("Ana", resp.FirstName)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee_MissingRequiredFields() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/employees", bytes.NewReader([]byte(`{"department":"Engineering"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ValidationErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Fields, "FirstName")
	suite.Contains(resp.Fields, "LastName")
	suite.mockEmployeeService.AssertNotCalled(suite.T(), "CreateEmployee")
}

func (suite *EmployeeHandlerTestSuite) TestListEmployees_Success() {
	suite.mockEmployeeService.On("ListEmployees", mock.Anything).Return([]domain.Employee{
		{ID: 1, FirstName: "Ana", LastName: "Petrova"},
		{ID: 2, FirstName: "Lee", LastName: "Chen"},
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.EmployeeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
}

func (suite *EmployeeHandlerTestSuite) TestGetEmployeeByID_NotFound() {
	suite.mockEmployeeService.On("GetEmployeeByID", mock.Anything, int64(42)).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/employees/42", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Employee not found", resp.Error)
}

func (suite *EmployeeHandlerTestSuite) TestUpdateEmployee_Success() {
	newDepartment := "Finance"
	expected := &domain.Employee{ID: 5, FirstName: "Ana", LastName: "Petrova", Department: "Finance"}
	suite.mockEmployeeService.On("UpdateEmployee", mock.Anything, int64(5), mock.MatchedBy(func(req dto.UpdateEmployeeRequest) bool {
		return req.Department != nil && *req.Department == newDepartment
	})).Return(expected, nil).Once()

	body, _ := json.Marshal(dto.UpdateEmployeeRequest{Department: &newDepartment})
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/employees/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EmployeeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Finance", resp.Department)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestDeleteEmployee_Success() {
	suite.mockEmployeeService.On("DeleteEmployee", mock.Anything, int64(3)).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/employees/3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestDeleteEmployee_InvalidID() {
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/employees/0", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEmployeeService.AssertNotCalled(suite.T(), "DeleteEmployee")
}

func TestEmployeeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
