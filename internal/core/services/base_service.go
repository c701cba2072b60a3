package services

import (
	"context"
	"log/slog"

	portssvc "github.com/nordpeak/backoffice_app/internal/core/ports/services"
	"github.com/nordpeak/backoffice_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Cache portssvc.DashboardCache
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Warn(msg, keyvals...)
}

// InvalidateDashboard drops every cached dashboard payload. Mutating services
// call this after any write since every entity feeds the dashboard.
func (s *BaseService) InvalidateDashboard() {
	if s.Cache != nil {
		s.Cache.InvalidateAll()
	}
}
