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

// distributionHandler handles HTTP requests related to profit distributions.
type distributionHandler struct {
	distributionService portssvc.DistributionSvcFacade
}

func newDistributionHandler(ds portssvc.DistributionSvcFacade) *distributionHandler {
	return &distributionHandler{distributionService: ds}
}

// registerDistributionRoutes registers routes related to profit distributions.
func registerDistributionRoutes(rg *gin.RouterGroup, distributionService portssvc.DistributionSvcFacade) {
	h := newDistributionHandler(distributionService)

	dists := rg.Group("/profit-distributions")
	{
		dists.POST("", h.createDistribution)
		dists.GET("", h.listDistributions)
		dists.GET("/:id", h.getDistributionByID)
		dists.PUT("/:id", h.updateDistribution)
		dists.DELETE("/:id", h.deleteDistribution)
		dists.POST("/bulk-delete", h.bulkDeleteDistributions)
	}
}

// createDistribution godoc
// @Summary Record a profit distribution
// @Description Records an actual payout to a partner for a month/year period
// @Tags profit-distributions
// @Accept json
// @Produce json
// @Param distribution body dto.CreateDistributionRequest true "Distribution details"
// @Success 201 {object} dto.DistributionResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Partner not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to create distribution"
// @Router /profit-distributions [post]
func (h *distributionHandler) createDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDistribution", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	created, err := h.distributionService.CreateDistribution(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Partner not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create distribution in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create distribution"})
		}
		return
	}

	logger.Info("Profit distribution created successfully", slog.Int64("distribution_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToDistributionResponse(created))
}

// listDistributions godoc
// @Summary List all profit distributions
// @Tags profit-distributions
// @Produce json
// @Success 200 {array} dto.DistributionResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list distributions"
// @Router /profit-distributions [get]
func (h *distributionHandler) listDistributions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dists, err := h.distributionService.ListDistributions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list distributions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list distributions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDistributionResponse(dists))
}

// getDistributionByID godoc
// @Summary Get a profit distribution by id
// @Tags profit-distributions
// @Produce json
// @Param id path int true "Distribution ID"
// @Success 200 {object} dto.DistributionResponse
// @Failure 404 {object} dto.ErrorResponse "Distribution not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve distribution"
// @Router /profit-distributions/{id} [get]
func (h *distributionHandler) getDistributionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	dist, err := h.distributionService.GetDistributionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Distribution not found"})
		} else {
			logger.Error("Failed to get distribution from service", slog.Int64("distribution_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve distribution"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDistributionResponse(dist))
}

// updateDistribution godoc
// @Summary Update a profit distribution
// @Description Applies a partial update; omitted fields are left unchanged
// @Tags profit-distributions
// @Accept json
// @Produce json
// @Param id path int true "Distribution ID"
// @Param distribution body dto.UpdateDistributionRequest true "Fields to update"
// @Success 200 {object} dto.DistributionResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Distribution not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update distribution"
// @Router /profit-distributions/{id} [put]
func (h *distributionHandler) updateDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDistribution", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	updated, err := h.distributionService.UpdateDistribution(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Distribution not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update distribution in service", slog.Int64("distribution_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update distribution"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDistributionResponse(updated))
}

// deleteDistribution godoc
// @Summary Delete a profit distribution
// @Tags profit-distributions
// @Produce json
// @Param id path int true "Distribution ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Distribution not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete distribution"
// @Router /profit-distributions/{id} [delete]
func (h *distributionHandler) deleteDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.distributionService.DeleteDistribution(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Distribution not found"})
		} else {
			logger.Error("Failed to delete distribution in service", slog.Int64("distribution_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete distribution"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// bulkDeleteDistributions godoc
// @Summary Delete multiple profit distributions
// @Tags profit-distributions
// @Accept json
// @Produce json
// @Param ids body dto.BulkDeleteRequest true "Distribution ids"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete distributions"
// @Router /profit-distributions/bulk-delete [post]
func (h *distributionHandler) bulkDeleteDistributions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.distributionService.DeleteDistributions(c.Request.Context(), req.IDs); err != nil {
		logger.Error("Failed to bulk delete distributions", slog.Int("count", len(req.IDs)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete distributions"})
		return
	}

	c.Status(http.StatusNoContent)
}
