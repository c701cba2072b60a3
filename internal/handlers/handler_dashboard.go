package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nordpeak/backoffice_app/internal/apperrors"
	portssvc "github.com/nordpeak/backoffice_app/internal/core/ports/services"
	"github.com/nordpeak/backoffice_app/internal/dto"
	"github.com/nordpeak/backoffice_app/internal/middleware"
)

// dashboardHandler handles the aggregated dashboard endpoint.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func newDashboardHandler(ds portssvc.DashboardSvc) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := newDashboardHandler(dashboardService)
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get aggregated dashboard data
// @Description Returns headline metrics, charts and widget rows, optionally scoped to a month/year period. Both month and year must be supplied for the filter to apply.
// @Tags dashboard
// @Produce json
// @Param month query string false "Full English month name (e.g. January)"
// @Param year query int false "Four digit year"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid period parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to load dashboard data"
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.DashboardQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid dashboard query parameters", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	data, err := h.dashboardService.GetDashboardData(c.Request.Context(), params.Month, params.Year)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to load dashboard data", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load dashboard data"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(data))
}
