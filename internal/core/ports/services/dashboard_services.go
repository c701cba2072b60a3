package services

import (
	"context"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// DashboardSvc computes the dashboard summary for an optional month/year period.
type DashboardSvc interface {
	// GetDashboardData fetches all entity collections, applies the period filter
	// when both month and year are set (month non-empty, year non-zero), and
	// aggregates them. Supplying only one of the two applies no filtering.
	GetDashboardData(ctx context.Context, month string, year int) (*domain.DashboardData, error)
}

// DashboardCache memoizes dashboard payloads per period key. It replaces the
// original module-level query cache with an explicit service object: mutating
// services invalidate, the dashboard service reads through.
type DashboardCache interface {
	Get(key string) (*domain.DashboardData, bool)
	Set(key string, data *domain.DashboardData)
	Invalidate(key string)
	InvalidateAll()
}
