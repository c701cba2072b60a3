package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nordpeak/backoffice_app/internal/apperrors"
	"github.com/nordpeak/backoffice_app/internal/core/domain"
	portsrepo "github.com/nordpeak/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/nordpeak/backoffice_app/internal/core/ports/services"
	"github.com/nordpeak/backoffice_app/internal/dto"
	"github.com/nordpeak/backoffice_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// bonusService implements bonus CRUD and the quarterly bonus calculator.
type bonusService struct {
	BaseService
	bonusRepo    portsrepo.BonusRepositoryFacade
	projectRepo  portsrepo.ProjectReader
	employeeRepo portsrepo.EmployeeReader
	billingRepo  portsrepo.BillingReader
	strictMoney  bool
}

// NewBonusService creates a new bonus service.
func NewBonusService(
	bonusRepo portsrepo.BonusRepositoryFacade,
	projectRepo portsrepo.ProjectReader,
	employeeRepo portsrepo.EmployeeReader,
	billingRepo portsrepo.BillingReader,
	cache portssvc.DashboardCache,
	strictMoney bool,
) portssvc.BonusSvcFacade {
	return &bonusService{
		BaseService:  BaseService{Cache: cache},
		bonusRepo:    bonusRepo,
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
		billingRepo:  billingRepo,
		strictMoney:  strictMoney,
	}
}

var _ portssvc.BonusSvcFacade = (*bonusService)(nil)

func (s *bonusService) CreateBonus(ctx context.Context, req dto.CreateBonusRequest) (*domain.Bonus, error) {
	if s.strictMoney {
		if req.Amount != "" && !money.IsValid(req.Amount) {
			return nil, fmt.Errorf("%w: amount must be numeric", apperrors.ErrValidation)
		}
		if req.Percentage != "" && !money.IsValid(req.Percentage) {
			return nil, fmt.Errorf("%w: percentage must be numeric", apperrors.ErrValidation)
		}
	}

	status := domain.BonusStatus(req.Status)
	if status == "" {
		status = domain.BonusPending
	}

	now := time.Now()
	bonus := domain.Bonus{
		ProjectID:  req.ProjectID,
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Year:       req.Year,
		Amount:     req.Amount,
		Percentage: req.Percentage,
		Status:     status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.bonusRepo.SaveBonus(ctx, bonus)
	if err != nil {
		s.LogError(ctx, err, "Failed to save bonus")
		return nil, err
	}

	s.InvalidateDashboard()
	return created, nil
}

func (s *bonusService) GetBonusByID(ctx context.Context, id int64) (*domain.Bonus, error) {
	return s.bonusRepo.FindBonusByID(ctx, id)
}

func (s *bonusService) ListBonuses(ctx context.Context) ([]domain.Bonus, error) {
	return s.bonusRepo.FindBonuses(ctx)
}

func (s *bonusService) UpdateBonus(ctx context.Context, id int64, req dto.UpdateBonusRequest) (*domain.Bonus, error) {
	bonus, err := s.bonusRepo.FindBonusByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		bonus.ProjectID = *req.ProjectID
	}
	if req.EmployeeID != nil {
		bonus.EmployeeID = *req.EmployeeID
	}
	if req.Month != nil {
		bonus.Month = *req.Month
	}
	if req.Year != nil {
		bonus.Year = *req.Year
	}
	if req.Amount != nil {
		if s.strictMoney && *req.Amount != "" && !money.IsValid(*req.Amount) {
			return nil, fmt.Errorf("%w: amount must be numeric", apperrors.ErrValidation)
		}
		bonus.Amount = *req.Amount
	}
	if req.Percentage != nil {
		if s.strictMoney && *req.Percentage != "" && !money.IsValid(*req.Percentage) {
			return nil, fmt.Errorf("%w: percentage must be numeric", apperrors.ErrValidation)
		}
		bonus.Percentage = *req.Percentage
	}
	if req.Status != nil {
		bonus.Status = domain.BonusStatus(*req.Status)
	}
	bonus.LastUpdatedAt = time.Now()

	if err := s.bonusRepo.UpdateBonus(ctx, *bonus); err != nil {
		s.LogError(ctx, err, "Failed to update bonus", slog.Int64("bonus_id", id))
		return nil, err
	}

	s.InvalidateDashboard()
	return bonus, nil
}

func (s *bonusService) DeleteBonus(ctx context.Context, id int64) error {
	if err := s.bonusRepo.DeleteBonus(ctx, id); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}

func (s *bonusService) DeleteBonuses(ctx context.Context, ids []int64) error {
	if err := s.bonusRepo.DeleteBonuses(ctx, ids); err != nil {
		return err
	}
	s.InvalidateDashboard()
	return nil
}

// CalculateQuarterlyBonuses computes one bonus per (employee, project) key in
// the percentage map, as a share of the project's quarter-total billing.
// Entries with a non-positive or unparseable percentage, ids outside the
// optional restrictions, or no billing in the quarter are silently skipped.
// Created rows are dated to the last month of the quarter and persisted in a
// single transaction. There is no idempotency guard; re-invoking with the
// same inputs creates duplicate rows.
func (s *bonusService) CalculateQuarterlyBonuses(ctx context.Context, req dto.CalculateQuarterlyBonusesRequest) ([]domain.Bonus, error) {
	quarterMonths := domain.QuarterMonths(req.Quarter)
	if quarterMonths == nil {
		return nil, fmt.Errorf("%w: quarter must be between 1 and 4", apperrors.ErrValidation)
	}
	lastMonth := quarterMonths[2]

	projects, err := s.projectRepo.FindProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	allowedProjects := restrictionSet(projects, req.ProjectIDs, func(p domain.Project) int64 { return p.ID })
	allowedEmployees := restrictionSet(employees, req.EmployeeIDs, func(e domain.Employee) int64 { return e.ID })

	billings, err := s.billingRepo.FindBillings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch billings: %w", err)
	}

	inQuarter := map[string]bool{}
	for _, m := range quarterMonths {
		inQuarter[m] = true
	}

	projectTotals := map[int64]decimal.Decimal{}
	for _, b := range billings {
		if b.Year != req.Year || !inQuarter[b.Month] {
			continue
		}
		v, ok := money.Parse(b.Amount)
		if !ok {
			if s.strictMoney {
				return nil, fmt.Errorf("%w: billing %d has non-numeric amount %q", apperrors.ErrValidation, b.ID, b.Amount)
			}
			continue
		}
		projectTotals[b.ProjectID] = projectTotals[b.ProjectID].Add(v)
	}

	now := time.Now()
	bonuses := []domain.Bonus{}
	for _, key := range sortedPercentageKeys(req.Percentages) {
		pct, ok := money.Parse(req.Percentages[key])
		if !ok || !pct.IsPositive() {
			continue
		}

		employeeID, projectID, ok := parsePercentageKey(key)
		if !ok {
			continue
		}
		if allowedEmployees != nil && !allowedEmployees[employeeID] {
			continue
		}
		if allowedProjects != nil && !allowedProjects[projectID] {
			continue
		}

		total, ok := projectTotals[projectID]
		if !ok || !total.IsPositive() {
			// No billing in the quarter means no bonus is possible.
			continue
		}

		amount := total.Mul(pct).Div(decimal.NewFromInt(100))
		if !amount.IsPositive() {
			continue
		}

		bonuses = append(bonuses, domain.Bonus{
			ProjectID:  projectID,
			EmployeeID: employeeID,
			Month:      lastMonth,
			Year:       req.Year,
			Amount:     amount.StringFixed(2),
			Percentage: req.Percentages[key],
			Status:     domain.BonusPending,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		})
	}

	if len(bonuses) == 0 {
		return []domain.Bonus{}, nil
	}

	created, err := s.bonusRepo.SaveBonuses(ctx, bonuses)
	if err != nil {
		s.LogError(ctx, err, "Failed to persist quarterly bonuses",
			slog.Int("quarter", req.Quarter),
			slog.Int("year", req.Year),
			slog.Int("bonus_count", len(bonuses)))
		return nil, err
	}

	s.InvalidateDashboard()
	s.LogInfo(ctx, "Quarterly bonuses created",
		slog.Int("quarter", req.Quarter),
		slog.Int("year", req.Year),
		slog.Int("bonus_count", len(created)))
	return created, nil
}

// restrictionSet returns nil when ids is empty (no restriction), otherwise the
// set of requested ids that actually exist in the fetched collection.
func restrictionSet[T any](items []T, ids []int64, idOf func(T) int64) map[int64]bool {
	if len(ids) == 0 {
		return nil
	}
	requested := make(map[int64]bool, len(ids))
	for _, id := range ids {
		requested[id] = true
	}
	allowed := make(map[int64]bool, len(ids))
	for _, item := range items {
		if id := idOf(item); requested[id] {
			allowed[id] = true
		}
	}
	return allowed
}

// parsePercentageKey splits a "{employeeId}-{projectId}" map key.
func parsePercentageKey(key string) (employeeID, projectID int64, ok bool) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	employeeID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	projectID, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return employeeID, projectID, true
}

// sortedPercentageKeys makes calculator output order deterministic: Go map
// iteration order is random, so keys are sorted by employee then project id.
func sortedPercentageKeys(percentages map[string]string) []string {
	keys := make([]string, 0, len(percentages))
	for k := range percentages {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ei, pi, oki := parsePercentageKey(keys[i])
		ej, pj, okj := parsePercentageKey(keys[j])
		if oki && okj {
			if ei != ej {
				return ei < ej
			}
			return pi < pj
		}
		return keys[i] < keys[j]
	})
	return keys
}
