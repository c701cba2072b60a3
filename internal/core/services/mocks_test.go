package services_test

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
	portsrepo "github.com/nordpeak/backoffice_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployees(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

var _ portsrepo.EmployeeRepositoryFacade = (*MockEmployeeRepository)(nil)

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProjects(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

var _ portsrepo.ProjectRepositoryFacade = (*MockProjectRepository)(nil)

// --- Mock BillingRepository ---
type MockBillingRepository struct {
	mock.Mock
}

func (m *MockBillingRepository) SaveBilling(ctx context.Context, billing domain.Billing) (*domain.Billing, error) {
	args := m.Called(ctx, billing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Billing), args.Error(1)
}

func (m *MockBillingRepository) FindBillingByID(ctx context.Context, id int64) (*domain.Billing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Billing), args.Error(1)
}

func (m *MockBillingRepository) FindBillings(ctx context.Context) ([]domain.Billing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Billing), args.Error(1)
}

func (m *MockBillingRepository) UpdateBilling(ctx context.Context, billing domain.Billing) error {
	args := m.Called(ctx, billing)
	return args.Error(0)
}

func (m *MockBillingRepository) DeleteBilling(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBillingRepository) DeleteBillings(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

var _ portsrepo.BillingRepositoryFacade = (*MockBillingRepository)(nil)

// --- Mock PartnerRepository ---
type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) (*domain.Partner, error) {
	args := m.Called(ctx, partner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindPartnerByID(ctx context.Context, id int64) (*domain.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindPartners(ctx context.Context) ([]domain.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) UpdatePartner(ctx context.Context, partner domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

func (m *MockPartnerRepository) DeletePartner(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPartnerRepository) DeletePartners(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

var _ portsrepo.PartnerRepositoryFacade = (*MockPartnerRepository)(nil)

// --- Mock BonusRepository ---
type MockBonusRepository struct {
	mock.Mock
}

func (m *MockBonusRepository) SaveBonus(ctx context.Context, bonus domain.Bonus) (*domain.Bonus, error) {
	args := m.Called(ctx, bonus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bonus), args.Error(1)
}

func (m *MockBonusRepository) SaveBonuses(ctx context.Context, bonuses []domain.Bonus) ([]domain.Bonus, error) {
	args := m.Called(ctx, bonuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bonus), args.Error(1)
}

func (m *MockBonusRepository) FindBonusByID(ctx context.Context, id int64) (*domain.Bonus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bonus), args.Error(1)
}

func (m *MockBonusRepository) FindBonuses(ctx context.Context) ([]domain.Bonus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bonus), args.Error(1)
}

func (m *MockBonusRepository) UpdateBonus(ctx context.Context, bonus domain.Bonus) error {
	args := m.Called(ctx, bonus)
	return args.Error(0)
}

func (m *MockBonusRepository) DeleteBonus(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBonusRepository) DeleteBonuses(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

var _ portsrepo.BonusRepositoryFacade = (*MockBonusRepository)(nil)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	args := m.Called(ctx, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, id int64) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpenses(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

// --- Mock DistributionRepository ---
type MockDistributionRepository struct {
	mock.Mock
}

func (m *MockDistributionRepository) SaveDistribution(ctx context.Context, dist domain.ProfitDistribution) (*domain.ProfitDistribution, error) {
	args := m.Called(ctx, dist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitDistribution), args.Error(1)
}

func (m *MockDistributionRepository) FindDistributionByID(ctx context.Context, id int64) (*domain.ProfitDistribution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitDistribution), args.Error(1)
}

func (m *MockDistributionRepository) FindDistributions(ctx context.Context) ([]domain.ProfitDistribution, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfitDistribution), args.Error(1)
}

func (m *MockDistributionRepository) UpdateDistribution(ctx context.Context, dist domain.ProfitDistribution) error {
	args := m.Called(ctx, dist)
	return args.Error(0)
}

func (m *MockDistributionRepository) DeleteDistribution(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDistributionRepository) DeleteDistributions(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

var _ portsrepo.DistributionRepositoryFacade = (*MockDistributionRepository)(nil)
