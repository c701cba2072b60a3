package services

import (
	"sync"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
	portssvc "github.com/nordpeak/backoffice_app/internal/core/ports/services"
)

// dashboardCache is a process-local memo of dashboard payloads keyed by
// period. Every entity write invalidates, so staleness is bounded by the
// single-process deployment model.
type dashboardCache struct {
	mu      sync.RWMutex
	entries map[string]*domain.DashboardData
}

// NewDashboardCache creates an empty in-memory dashboard cache.
func NewDashboardCache() portssvc.DashboardCache {
	return &dashboardCache{entries: make(map[string]*domain.DashboardData)}
}

var _ portssvc.DashboardCache = (*dashboardCache)(nil)

func (c *dashboardCache) Get(key string) (*domain.DashboardData, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.entries[key]
	return data, ok
}

func (c *dashboardCache) Set(key string, data *domain.DashboardData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
}

func (c *dashboardCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *dashboardCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*domain.DashboardData)
}
